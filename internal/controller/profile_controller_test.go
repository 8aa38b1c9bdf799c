package controller

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"studyhub_backend/internal/config"
	"studyhub_backend/internal/model"
	"studyhub_backend/internal/repository"
	"studyhub_backend/internal/service"
	"studyhub_backend/internal/util"
	"studyhub_backend/pkg/database"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// pngHeader is the 8-byte PNG signature, enough for content sniffing.
var pngHeader = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

func newUploadRouter(t *testing.T) (*gin.Engine, *gorm.DB, *model.User) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, database.Migrate(db))

	profile := &model.Profile{}
	require.NoError(t, db.Create(profile).Error)
	user := &model.User{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
		Password:  "hashed",
		Role:      model.Student,
		ProfileID: &profile.ID,
	}
	require.NoError(t, db.Create(user).Error)

	cfg := &config.Config{}
	cfg.Storage.Type = "local"
	cfg.Storage.LocalPath = t.TempDir()

	svc := service.NewProfileService(
		repository.NewUserRepository(db),
		repository.NewProfileRepository(db),
		service.NewStorageService(cfg),
		db,
	)
	ctrl := NewProfileController(svc)

	router := gin.New()
	router.PUT("/api/profile/updateDisplayPicture", func(c *gin.Context) {
		c.Set("user", &util.Claims{UserID: user.ID, Role: user.Role, Email: user.Email})
	}, ctrl.UpdateDisplayPicture)

	return router, db, user
}

func multipartBody(t *testing.T, field, filename string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	if field != "" {
		part, err := writer.CreateFormFile(field, filename)
		require.NoError(t, err)
		_, err = part.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())
	return body, writer.FormDataContentType()
}

func TestUpdateDisplayPicture_MissingFileIsBadRequest(t *testing.T) {
	router, db, user := newUploadRouter(t)

	body, contentType := multipartBody(t, "", "", nil)
	req := httptest.NewRequest(http.MethodPut, "/api/profile/updateDisplayPicture", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp util.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, "No file uploaded", resp.Message)

	var profile model.Profile
	require.NoError(t, db.First(&profile, *user.ProfileID).Error)
	assert.Empty(t, profile.DisplayPicture)
}

func TestUpdateDisplayPicture_WrongFieldNameIsBadRequest(t *testing.T) {
	router, _, _ := newUploadRouter(t)

	body, contentType := multipartBody(t, "avatar", "pic.png", pngHeader)
	req := httptest.NewRequest(http.MethodPut, "/api/profile/updateDisplayPicture", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateDisplayPicture_RejectsNonImage(t *testing.T) {
	router, db, user := newUploadRouter(t)

	body, contentType := multipartBody(t, "displayPicture", "notes.txt", []byte("just some text"))
	req := httptest.NewRequest(http.MethodPut, "/api/profile/updateDisplayPicture", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var profile model.Profile
	require.NoError(t, db.First(&profile, *user.ProfileID).Error)
	assert.Empty(t, profile.DisplayPicture)
}

func TestUpdateDisplayPicture_StoresURLOnProfile(t *testing.T) {
	router, db, user := newUploadRouter(t)

	body, contentType := multipartBody(t, "displayPicture", "pic.png", pngHeader)
	req := httptest.NewRequest(http.MethodPut, "/api/profile/updateDisplayPicture", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp util.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)

	var profile model.Profile
	require.NoError(t, db.First(&profile, *user.ProfileID).Error)
	assert.Contains(t, profile.DisplayPicture, "/uploads/displaypictures/")
	assert.Contains(t, profile.DisplayPicture, ".png")
}
