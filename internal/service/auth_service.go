package service

import (
	"errors"

	"studyhub_backend/internal/config"
	"studyhub_backend/internal/model"
	"studyhub_backend/internal/repository"
	"studyhub_backend/internal/util"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService struct {
	UserRepo *repository.UserRepository
	Cfg      *config.Config
	DB       *gorm.DB
}

func NewAuthService(userRepo *repository.UserRepository, cfg *config.Config, db *gorm.DB) *AuthService {
	return &AuthService{
		UserRepo: userRepo,
		Cfg:      cfg,
		DB:       db,
	}
}

// Register creates the user together with its (empty) profile record.
// Both rows land in one transaction so a user never exists half-initialized.
func (s *AuthService) Register(user *model.User) error {
	_, err := s.UserRepo.FindByEmail(user.Email)
	if err == nil {
		return util.ErrEmailRegistered
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.Password = string(hashedPassword)

	return s.DB.Transaction(func(tx *gorm.DB) error {
		profile := &model.Profile{}
		if err := tx.Create(profile).Error; err != nil {
			return err
		}
		user.ProfileID = &profile.ID
		if err := tx.Omit("Profile").Create(user).Error; err != nil {
			return err
		}
		user.Profile = profile
		return nil
	})
}

func (s *AuthService) Login(email, password string) (string, error) {
	user, err := s.UserRepo.FindByEmail(email)
	if err != nil {
		return "", errors.New("invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", errors.New("invalid credentials")
	}

	return util.GenerateJWT(user, s.Cfg.JWT.Secret, s.Cfg.JWT.ExpireTime)
}
