package service

import (
	"testing"

	"studyhub_backend/internal/model"
	"studyhub_backend/internal/repository"
	"studyhub_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetEnrolledCourses_NoCourses(t *testing.T) {
	db := newTestDB(t)
	svc := NewEnrollmentService(
		repository.NewUserRepository(db),
		repository.NewCourseProgressRepository(db),
	)

	user := seedUser(t, db, "Ada", "Lovelace", "ada@example.com", model.Student)

	_, err := svc.GetEnrolledCourses(user.ID)
	assert.ErrorIs(t, err, util.ErrNoEnrolledCourses)

	// Unknown user id behaves the same.
	_, err = svc.GetEnrolledCourses(9999)
	assert.ErrorIs(t, err, util.ErrNoEnrolledCourses)
}

func TestGetEnrolledCourses_ProgressAndDuration(t *testing.T) {
	db := newTestDB(t)
	svc := NewEnrollmentService(
		repository.NewUserRepository(db),
		repository.NewCourseProgressRepository(db),
	)

	instructor := seedUser(t, db, "Grace", "Hopper", "grace@example.com", model.Instructor)
	user := seedUser(t, db, "Ada", "Lovelace", "ada@example.com", model.Student)

	// Four videos over two sections, 3661 seconds in total.
	course := seedCourse(t, db, "Compilers", instructor.ID, 100,
		[]string{"1800", "1800"},
		[]string{"60", "1"},
	)
	enroll(t, db, user, course)

	// Mark three of the four as completed.
	var subs []model.SubSection
	require.NoError(t, db.Order("id").Find(&subs).Error)
	require.Len(t, subs, 4)

	progress := &model.CourseProgress{
		UserID:          user.ID,
		CourseID:        course.ID,
		CompletedVideos: subs[:3],
	}
	require.NoError(t, db.Create(progress).Error)

	courses, err := svc.GetEnrolledCourses(user.ID)
	require.NoError(t, err)
	require.Len(t, courses, 1)

	assert.Equal(t, "1h 1m 1s", courses[0].TotalDuration)
	assert.Equal(t, 75, courses[0].ProgressPercentage)
}

func TestGetEnrolledCourses_ZeroVideosCountsAsComplete(t *testing.T) {
	db := newTestDB(t)
	svc := NewEnrollmentService(
		repository.NewUserRepository(db),
		repository.NewCourseProgressRepository(db),
	)

	instructor := seedUser(t, db, "Grace", "Hopper", "grace@example.com", model.Instructor)
	user := seedUser(t, db, "Ada", "Lovelace", "ada@example.com", model.Student)

	// A course with no content at all.
	course := seedCourse(t, db, "Placeholder", instructor.ID, 50)
	enroll(t, db, user, course)

	courses, err := svc.GetEnrolledCourses(user.ID)
	require.NoError(t, err)
	require.Len(t, courses, 1)

	assert.Equal(t, 100, courses[0].ProgressPercentage)
	assert.Equal(t, "0s", courses[0].TotalDuration)
}

func TestGetEnrolledCourses_NoProgressRecordIsZeroPercent(t *testing.T) {
	db := newTestDB(t)
	svc := NewEnrollmentService(
		repository.NewUserRepository(db),
		repository.NewCourseProgressRepository(db),
	)

	instructor := seedUser(t, db, "Grace", "Hopper", "grace@example.com", model.Instructor)
	user := seedUser(t, db, "Ada", "Lovelace", "ada@example.com", model.Student)

	course := seedCourse(t, db, "Databases", instructor.ID, 100, []string{"120", "240"})
	enroll(t, db, user, course)

	courses, err := svc.GetEnrolledCourses(user.ID)
	require.NoError(t, err)
	require.Len(t, courses, 1)

	assert.Equal(t, 0, courses[0].ProgressPercentage)
	assert.Equal(t, "6m", courses[0].TotalDuration)
}

func TestGetEnrolledCourses_MalformedDurationsCountAsZero(t *testing.T) {
	db := newTestDB(t)
	svc := NewEnrollmentService(
		repository.NewUserRepository(db),
		repository.NewCourseProgressRepository(db),
	)

	instructor := seedUser(t, db, "Grace", "Hopper", "grace@example.com", model.Instructor)
	user := seedUser(t, db, "Ada", "Lovelace", "ada@example.com", model.Student)

	course := seedCourse(t, db, "Odd data", instructor.ID, 10, []string{"", "n/a", "90.5"})
	enroll(t, db, user, course)

	courses, err := svc.GetEnrolledCourses(user.ID)
	require.NoError(t, err)
	require.Len(t, courses, 1)

	assert.Equal(t, "1m 30s", courses[0].TotalDuration)
}
