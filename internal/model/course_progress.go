package model

// CourseProgress tracks which videos a user has completed in one course.
// At most one row exists per user/course pair.
//
// swagger:model CourseProgress
type CourseProgress struct {
	BaseModel
	UserID   uint `gorm:"uniqueIndex:idx_user_course;not null" json:"userId"`
	CourseID uint `gorm:"uniqueIndex:idx_user_course;not null" json:"courseId"`

	CompletedVideos []SubSection `gorm:"many2many:course_progress_videos;" json:"completedVideos,omitempty"`
}

func (CourseProgress) TableName() string {
	return "course_progress"
}
