package service

import (
	"testing"

	"studyhub_backend/internal/model"
	"studyhub_backend/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboard_RevenuePerCourse(t *testing.T) {
	db := newTestDB(t)
	svc := NewInstructorService(repository.NewCourseRepository(db))

	instructor := seedUser(t, db, "Grace", "Hopper", "grace@example.com", model.Instructor)
	course := seedCourse(t, db, "Compilers", instructor.ID, 100, []string{"60"})

	for i, email := range []string{"a@example.com", "b@example.com", "c@example.com", "d@example.com", "e@example.com"} {
		student := seedUser(t, db, "Student", string(rune('A'+i)), email, model.Student)
		enroll(t, db, student, course)
	}

	stats, err := svc.Dashboard(instructor.ID)
	require.NoError(t, err)
	require.Len(t, stats, 1)

	assert.Equal(t, "Compilers", stats[0].CourseName)
	assert.Equal(t, 5, stats[0].TotalStudentsEnrolled)
	assert.Equal(t, 500.0, stats[0].TotalAmountGenerated)
}

func TestDashboard_NoCoursesIsEmptyNotError(t *testing.T) {
	db := newTestDB(t)
	svc := NewInstructorService(repository.NewCourseRepository(db))

	instructor := seedUser(t, db, "Grace", "Hopper", "grace@example.com", model.Instructor)

	stats, err := svc.Dashboard(instructor.ID)
	require.NoError(t, err)
	assert.Empty(t, stats)
}

func TestDashboard_OnlyOwnCourses(t *testing.T) {
	db := newTestDB(t)
	svc := NewInstructorService(repository.NewCourseRepository(db))

	mine := seedUser(t, db, "Grace", "Hopper", "grace@example.com", model.Instructor)
	theirs := seedUser(t, db, "Alan", "Turing", "alan@example.com", model.Instructor)

	seedCourse(t, db, "Mine", mine.ID, 10)
	seedCourse(t, db, "Theirs", theirs.ID, 20)

	stats, err := svc.Dashboard(mine.ID)
	require.NoError(t, err)
	require.Len(t, stats, 1)
	assert.Equal(t, "Mine", stats[0].CourseName)
}
