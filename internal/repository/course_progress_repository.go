package repository

import (
	"errors"

	"studyhub_backend/internal/model"

	"gorm.io/gorm"
)

type CourseProgressRepository struct {
	DB *gorm.DB
}

func NewCourseProgressRepository(db *gorm.DB) *CourseProgressRepository {
	return &CourseProgressRepository{DB: db}
}

func (r *CourseProgressRepository) FindByUserAndCourse(userID, courseID uint) (*model.CourseProgress, error) {
	var progress model.CourseProgress
	err := r.DB.
		Where("user_id = ? AND course_id = ?", userID, courseID).
		First(&progress).Error
	return &progress, err
}

// CountCompleted returns how many videos the user has completed in the
// course. A missing progress record counts as zero, not an error.
func (r *CourseProgressRepository) CountCompleted(userID, courseID uint) (int, error) {
	progress, err := r.FindByUserAndCourse(userID, courseID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}

	count := r.DB.Model(progress).Association("CompletedVideos").Count()
	return int(count), nil
}
