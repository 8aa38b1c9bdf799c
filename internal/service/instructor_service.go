package service

import (
	"studyhub_backend/internal/repository"
)

// InstructorService aggregates per-course enrollment and revenue for the
// instructor dashboard. Pure read path, no mutation.
type InstructorService struct {
	CourseRepo *repository.CourseRepository
}

func NewInstructorService(courseRepo *repository.CourseRepository) *InstructorService {
	return &InstructorService{CourseRepo: courseRepo}
}

// CourseStats is one dashboard row.
type CourseStats struct {
	ID                    uint    `json:"id"`
	CourseName            string  `json:"courseName"`
	CourseDescription     string  `json:"courseDescription"`
	TotalStudentsEnrolled int     `json:"totalStudentsEnrolled"`
	TotalAmountGenerated  float64 `json:"totalAmountGenerated"`
}

// Dashboard lists every course the instructor owns with enrollment count and
// derived revenue. Zero owned courses yields an empty list, not an error.
func (s *InstructorService) Dashboard(instructorID uint) ([]CourseStats, error) {
	courses, err := s.CourseRepo.FindByInstructor(instructorID)
	if err != nil {
		return nil, err
	}

	stats := make([]CourseStats, 0, len(courses))
	for _, course := range courses {
		enrolled := len(course.Students)
		stats = append(stats, CourseStats{
			ID:                    course.ID,
			CourseName:            course.CourseName,
			CourseDescription:     course.CourseDescription,
			TotalStudentsEnrolled: enrolled,
			TotalAmountGenerated:  float64(enrolled) * course.Price,
		})
	}

	return stats, nil
}
