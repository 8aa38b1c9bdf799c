package model

type UserRole string

const (
	Student    UserRole = "student"
	Instructor UserRole = "instructor"
	Admin      UserRole = "admin"
)

// swagger:model User
type User struct {
	BaseModel
	FirstName string   `gorm:"size:100;not null" json:"firstName"`
	LastName  string   `gorm:"size:100;not null" json:"lastName"`
	Email     string   `gorm:"size:100;unique;not null" json:"email"`
	Password  string   `gorm:"size:100;not null" json:"-"`
	Role      UserRole `gorm:"size:20;default:'student'" json:"role"`

	// ProfileID stays NULL until the profile is first populated.
	ProfileID *uint    `gorm:"index" json:"-"`
	Profile   *Profile `gorm:"foreignKey:ProfileID" json:"additionalDetails,omitempty"`

	Courses []Course `gorm:"many2many:course_enrollments;" json:"courses,omitempty"`
}

func (User) TableName() string {
	return "users"
}
