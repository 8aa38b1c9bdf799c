package repository

import (
	"studyhub_backend/internal/model"

	"gorm.io/gorm"
)

type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) Create(user *model.User) error {
	return r.DB.Create(user).Error
}

func (r *UserRepository) FindByID(id uint) (*model.User, error) {
	var user model.User
	err := r.DB.First(&user, id).Error
	return &user, err
}

func (r *UserRepository) FindByEmail(email string) (*model.User, error) {
	var user model.User
	err := r.DB.Where("email = ?", email).First(&user).Error
	return &user, err
}

// FindByIDWithProfile returns the user joined with its profile record.
func (r *UserRepository) FindByIDWithProfile(id uint) (*model.User, error) {
	var user model.User
	err := r.DB.Preload("Profile").First(&user, id).Error
	return &user, err
}

// FindByIDWithCourses loads the user with every enrolled course's full
// section/sub-section tree, ordered by position.
func (r *UserRepository) FindByIDWithCourses(id uint) (*model.User, error) {
	var user model.User
	err := r.DB.
		Preload("Courses").
		Preload("Courses.Sections", func(db *gorm.DB) *gorm.DB {
			return db.Order("sections.position ASC")
		}).
		Preload("Courses.Sections.SubSections", func(db *gorm.DB) *gorm.DB {
			return db.Order("sub_sections.position ASC")
		}).
		First(&user, id).Error
	return &user, err
}

func (r *UserRepository) Update(user *model.User) error {
	return r.DB.Save(user).Error
}
