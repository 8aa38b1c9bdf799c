package controller

import (
	"studyhub_backend/internal/service"
	"studyhub_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type InstructorController struct {
	InstructorService *service.InstructorService
}

func NewInstructorController(instructorService *service.InstructorService) *InstructorController {
	return &InstructorController{
		InstructorService: instructorService,
	}
}

// Dashboard godoc
// @Summary Instructor dashboard
// @Description Lists the instructor's courses with enrollment count and generated revenue
// @Tags instructor
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Failure 401 {object} util.Response
// @Failure 403 {object} util.Response "caller is not an instructor"
// @Failure 500 {object} util.Response
// @Router /api/profile/instructorDashboard [get]
func (c *InstructorController) Dashboard(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)

	stats, err := c.InstructorService.Dashboard(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.SuccessWith(ctx, "Instructor dashboard fetched successfully", gin.H{
		"courses": stats,
	})
}
