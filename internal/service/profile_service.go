package service

import (
	"context"
	"errors"
	"io"
	"path"
	"strings"

	"studyhub_backend/internal/model"
	"studyhub_backend/internal/repository"
	"studyhub_backend/internal/util"
	"studyhub_backend/pkg/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// displayPictureFolder is the logical folder uploads land under on the
// storage provider.
const displayPictureFolder = "displaypictures"

// ProfileService owns the user/profile read and write paths, including the
// cascading account deletion.
type ProfileService struct {
	UserRepo    *repository.UserRepository
	ProfileRepo *repository.ProfileRepository
	Storage     *StorageService
	DB          *gorm.DB
}

func NewProfileService(
	userRepo *repository.UserRepository,
	profileRepo *repository.ProfileRepository,
	storage *StorageService,
	db *gorm.DB,
) *ProfileService {
	return &ProfileService{
		UserRepo:    userRepo,
		ProfileRepo: profileRepo,
		Storage:     storage,
		DB:          db,
	}
}

// ProfileUpdate carries the caller-supplied partial update. Nil fields were
// not supplied; empty strings are treated the same and never clobber stored
// values.
type ProfileUpdate struct {
	FirstName     *string `json:"firstName"`
	LastName      *string `json:"lastName"`
	DateOfBirth   *string `json:"dateOfBirth"`
	About         *string `json:"about"`
	ContactNumber *string `json:"contactNumber"`
	Gender        *string `json:"gender"`
}

// mergeField applies first-non-empty-wins semantics for one field.
func mergeField(dst *string, src *string) {
	if src != nil && *src != "" {
		*dst = *src
	}
}

// UpdateProfile applies the partial update to the user's name fields and its
// profile's demographic fields, then returns the refreshed joined view.
func (s *ProfileService) UpdateProfile(userID uint, upd ProfileUpdate) (*model.User, error) {
	user, err := s.UserRepo.FindByIDWithProfile(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrUserNotFound
		}
		return nil, err
	}

	mergeField(&user.FirstName, upd.FirstName)
	mergeField(&user.LastName, upd.LastName)
	if err := s.UserRepo.Update(user); err != nil {
		return nil, err
	}

	if user.Profile != nil {
		mergeField(&user.Profile.DateOfBirth, upd.DateOfBirth)
		mergeField(&user.Profile.About, upd.About)
		mergeField(&user.Profile.ContactNumber, upd.ContactNumber)
		mergeField(&user.Profile.Gender, upd.Gender)
		if err := s.ProfileRepo.Update(user.Profile); err != nil {
			return nil, err
		}
	}

	return s.UserRepo.FindByIDWithProfile(userID)
}

// GetUserDetails returns the joined user+profile view.
func (s *ProfileService) GetUserDetails(userID uint) (*model.User, error) {
	user, err := s.UserRepo.FindByIDWithProfile(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// DeleteAccount irreversibly removes the user and all dependent state:
// its profile, its id in every course's enrollment list, its progress
// records, and finally the user row itself. The whole cascade runs in one
// transaction so a failure part-way leaves nothing orphaned.
func (s *ProfileService) DeleteAccount(userID uint) error {
	user, err := s.UserRepo.FindByIDWithProfile(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrUserNotFound
		}
		return err
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		if user.ProfileID != nil {
			if err := tx.Delete(&model.Profile{}, *user.ProfileID).Error; err != nil {
				return err
			}
		}

		// Pull the user out of every course's enrollment list.
		if err := tx.Model(user).Association("Courses").Clear(); err != nil {
			return err
		}

		var progressIDs []uint
		if err := tx.Model(&model.CourseProgress{}).
			Where("user_id = ?", userID).
			Pluck("id", &progressIDs).Error; err != nil {
			return err
		}
		if len(progressIDs) > 0 {
			if err := tx.Exec("DELETE FROM course_progress_videos WHERE course_progress_id IN ?", progressIDs).Error; err != nil {
				return err
			}
			if err := tx.Delete(&model.CourseProgress{}, progressIDs).Error; err != nil {
				return err
			}
		}

		return tx.Delete(user).Error
	})
}

// UpdateDisplayPicture uploads the image to the storage provider under the
// display-picture folder and persists the returned URL on the profile.
func (s *ProfileService) UpdateDisplayPicture(ctx context.Context, userID uint, filename string, reader io.Reader, size int64, contentType string) (*model.Profile, error) {
	user, err := s.UserRepo.FindByIDWithProfile(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrUserNotFound
		}
		return nil, err
	}
	if user.Profile == nil {
		return nil, util.ErrProfileNotFound
	}

	objectName := displayPictureFolder + "/" + uuid.New().String() + path.Ext(filename)
	url, err := s.Storage.Upload(ctx, objectName, reader, size, contentType)
	if err != nil {
		return nil, err
	}

	previous := user.Profile.DisplayPicture

	user.Profile.DisplayPicture = url
	if err := s.ProfileRepo.Update(user.Profile); err != nil {
		return nil, err
	}

	// Remove the replaced picture from storage. Best effort, the new URL is
	// already persisted.
	if old := storageObjectName(previous); old != "" {
		if err := s.Storage.Delete(ctx, old); err != nil {
			logger.Log.Warn("Failed to delete replaced display picture",
				zap.String("object", old),
				zap.Error(err),
			)
		}
	}

	return user.Profile, nil
}

// storageObjectName recovers the storage object key from a stored display
// picture URL. Empty when the URL does not point into the upload folder.
func storageObjectName(url string) string {
	idx := strings.Index(url, displayPictureFolder+"/")
	if idx < 0 {
		return ""
	}
	return url[idx:]
}
