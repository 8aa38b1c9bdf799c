package model

// Profile holds the optional demographic details behind a user account.
// All fields start empty and are filled in through partial updates.
//
// swagger:model Profile
type Profile struct {
	BaseModel
	Gender         string `gorm:"size:20" json:"gender"`
	DateOfBirth    string `gorm:"size:20" json:"dateOfBirth"`
	About          string `gorm:"size:500" json:"about"`
	ContactNumber  string `gorm:"size:20" json:"contactNumber"`
	DisplayPicture string `gorm:"size:255" json:"displayPicture"`
}

func (Profile) TableName() string {
	return "profiles"
}
