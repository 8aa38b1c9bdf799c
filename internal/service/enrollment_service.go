package service

import (
	"errors"
	"math"

	"studyhub_backend/internal/model"
	"studyhub_backend/internal/repository"
	"studyhub_backend/internal/util"

	"gorm.io/gorm"
)

// EnrollmentService computes the enrolled-course listing with per-course
// duration and completion percentage.
type EnrollmentService struct {
	UserRepo     *repository.UserRepository
	ProgressRepo *repository.CourseProgressRepository
}

func NewEnrollmentService(userRepo *repository.UserRepository, progressRepo *repository.CourseProgressRepository) *EnrollmentService {
	return &EnrollmentService{
		UserRepo:     userRepo,
		ProgressRepo: progressRepo,
	}
}

// EnrolledCourse is one course of the listing, annotated with the computed
// total duration and the caller's completion percentage.
type EnrolledCourse struct {
	model.Course
	TotalDuration      string `json:"totalDuration"`
	ProgressPercentage int    `json:"progressPercentage"`
}

// GetEnrolledCourses lists the user's courses with progress. A user with no
// enrollments (or an unknown user id) yields ErrNoEnrolledCourses.
func (s *EnrollmentService) GetEnrolledCourses(userID uint) ([]EnrolledCourse, error) {
	user, err := s.UserRepo.FindByIDWithCourses(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrNoEnrolledCourses
		}
		return nil, err
	}
	if len(user.Courses) == 0 {
		return nil, util.ErrNoEnrolledCourses
	}

	result := make([]EnrolledCourse, 0, len(user.Courses))
	for _, course := range user.Courses {
		totalSeconds := 0
		totalVideos := 0
		for _, section := range course.Sections {
			for _, sub := range section.SubSections {
				totalSeconds += util.CoerceSeconds(sub.TimeDuration)
			}
			totalVideos += len(section.SubSections)
		}

		completed, err := s.ProgressRepo.CountCompleted(userID, course.ID)
		if err != nil {
			return nil, err
		}

		result = append(result, EnrolledCourse{
			Course:             course,
			TotalDuration:      util.ConvertSecondsToDuration(totalSeconds),
			ProgressPercentage: progressPercentage(completed, totalVideos),
		})
	}

	return result, nil
}

// progressPercentage rounds completed/total to a whole percent. A course
// with zero videos counts as fully completed.
func progressPercentage(completed, totalVideos int) int {
	if totalVideos == 0 {
		return 100
	}
	return int(math.Round(float64(completed) / float64(totalVideos) * 100))
}
