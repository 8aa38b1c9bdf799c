package service

import (
	"testing"

	"studyhub_backend/internal/model"
	"studyhub_backend/pkg/database"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// newTestDB opens an isolated in-memory database with the full schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	// A single connection keeps every query on the same in-memory database.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))

	return db
}

func seedUser(t *testing.T, db *gorm.DB, firstName, lastName, email string, role model.UserRole) *model.User {
	t.Helper()

	profile := &model.Profile{}
	require.NoError(t, db.Create(profile).Error)

	user := &model.User{
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
		Password:  "irrelevant",
		Role:      role,
		ProfileID: &profile.ID,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

// seedCourse creates a course whose sections each hold the given sub-section
// durations (one section per inner slice).
func seedCourse(t *testing.T, db *gorm.DB, name string, instructorID uint, price float64, sectionDurations ...[]string) *model.Course {
	t.Helper()

	course := &model.Course{
		CourseName:        name,
		CourseDescription: name + " description",
		Price:             price,
		InstructorID:      instructorID,
	}
	for i, durations := range sectionDurations {
		section := model.Section{
			SectionName: "Section",
			Position:    i + 1,
		}
		for j, d := range durations {
			section.SubSections = append(section.SubSections, model.SubSection{
				Title:        "Video",
				TimeDuration: d,
				Position:     j + 1,
			})
		}
		course.Sections = append(course.Sections, section)
	}
	require.NoError(t, db.Create(course).Error)
	return course
}

func enroll(t *testing.T, db *gorm.DB, user *model.User, course *model.Course) {
	t.Helper()
	require.NoError(t, db.Model(user).Association("Courses").Append(course))
}
