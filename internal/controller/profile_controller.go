package controller

import (
	"errors"
	"io"

	"studyhub_backend/internal/service"
	"studyhub_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// ProfileController handles the caller's own profile: partial update,
// cascade delete, joined fetch, and display-picture upload.
type ProfileController struct {
	ProfileService *service.ProfileService
}

func NewProfileController(profileService *service.ProfileService) *ProfileController {
	return &ProfileController{
		ProfileService: profileService,
	}
}

// UpdateProfile godoc
// @Summary Update profile
// @Description Applies a partial update to the caller's name and demographic fields; empty fields keep their stored value
// @Tags profile
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   body body service.ProfileUpdate true "fields to update"
// @Success 200 {object} util.Response
// @Failure 400 {object} util.Response "invalid payload"
// @Failure 404 {object} util.Response "user not found"
// @Failure 500 {object} util.Response
// @Router /api/profile/updateProfile [put]
func (c *ProfileController) UpdateProfile(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)

	var req service.ProfileUpdate
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	user, err := c.ProfileService.UpdateProfile(claims.UserID, req)
	if err != nil {
		if errors.Is(err, util.ErrUserNotFound) {
			util.NotFound(ctx, "User not found")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.SuccessWith(ctx, "Profile updated successfully", gin.H{
		"updatedUserDetails": user,
	})
}

// DeleteProfile godoc
// @Summary Delete account
// @Description Irreversibly removes the caller's account, profile, enrollments and progress
// @Tags profile
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response "user not found"
// @Failure 500 {object} util.Response
// @Router /api/profile/deleteProfile [delete]
func (c *ProfileController) DeleteProfile(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)

	if err := c.ProfileService.DeleteAccount(claims.UserID); err != nil {
		if errors.Is(err, util.ErrUserNotFound) {
			util.NotFound(ctx, "User not found")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, "User deleted successfully", nil)
}

// GetUserDetails godoc
// @Summary Get own user details
// @Description Returns the caller's user record joined with its profile
// @Tags profile
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=model.User}
// @Failure 404 {object} util.Response "user not found"
// @Failure 500 {object} util.Response
// @Router /api/profile/getUserDetails [get]
func (c *ProfileController) GetUserDetails(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)

	user, err := c.ProfileService.GetUserDetails(claims.UserID)
	if err != nil {
		if errors.Is(err, util.ErrUserNotFound) {
			util.NotFound(ctx, "User not found")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, "User data fetched successfully", user)
}

// UpdateDisplayPicture godoc
// @Summary Update display picture
// @Description Uploads the image to the storage provider and stores the URL on the profile
// @Tags profile
// @Accept  multipart/form-data
// @Produce  json
// @Security ApiKeyAuth
// @Param   displayPicture formData file true "image file"
// @Success 200 {object} util.Response
// @Failure 400 {object} util.Response "no file uploaded"
// @Failure 404 {object} util.Response "user or profile not found"
// @Failure 500 {object} util.Response
// @Router /api/profile/updateDisplayPicture [put]
func (c *ProfileController) UpdateDisplayPicture(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)

	fileHeader, err := ctx.FormFile("displayPicture")
	if err != nil {
		util.BadRequest(ctx, "No file uploaded")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	defer file.Close()

	mimeType, err := util.ValidateMimeType(file, []string{"image/"})
	if err != nil {
		util.BadRequest(ctx, "Only image uploads are allowed")
		return
	}
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	profile, err := c.ProfileService.UpdateDisplayPicture(
		ctx.Request.Context(),
		claims.UserID,
		fileHeader.Filename,
		file,
		fileHeader.Size,
		mimeType,
	)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrUserNotFound):
			util.NotFound(ctx, "User not found")
		case errors.Is(err, util.ErrProfileNotFound):
			util.NotFound(ctx, "Profile not found")
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.SuccessWith(ctx, "Display picture updated successfully", gin.H{
		"profile": profile,
	})
}
