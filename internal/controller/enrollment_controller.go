package controller

import (
	"errors"

	"studyhub_backend/internal/service"
	"studyhub_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type EnrollmentController struct {
	EnrollmentService *service.EnrollmentService
}

func NewEnrollmentController(enrollmentService *service.EnrollmentService) *EnrollmentController {
	return &EnrollmentController{
		EnrollmentService: enrollmentService,
	}
}

// GetEnrolledCourses godoc
// @Summary List enrolled courses
// @Description Returns the caller's courses with total duration and completion percentage
// @Tags profile
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]service.EnrolledCourse}
// @Failure 404 {object} util.Response "no enrolled courses"
// @Failure 500 {object} util.Response
// @Router /api/profile/getEnrolledCourses [get]
func (c *EnrollmentController) GetEnrolledCourses(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)

	courses, err := c.EnrollmentService.GetEnrolledCourses(claims.UserID)
	if err != nil {
		if errors.Is(err, util.ErrNoEnrolledCourses) {
			util.NotFound(ctx, "No enrolled courses found")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, "Enrolled courses fetched successfully", courses)
}
