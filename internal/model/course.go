package model

// swagger:model Course
type Course struct {
	BaseModel
	CourseName        string  `gorm:"size:200;not null" json:"courseName"`
	CourseDescription string  `gorm:"size:1000" json:"courseDescription"`
	Price             float64 `gorm:"not null;default:0" json:"price"`
	Thumbnail         string  `gorm:"size:255" json:"thumbnail"`

	InstructorID uint  `gorm:"index;not null" json:"instructorId"`
	Instructor   *User `gorm:"foreignKey:InstructorID" json:"instructor,omitempty"`

	Sections []Section `gorm:"foreignKey:CourseID" json:"courseContent,omitempty"`
	Students []User    `gorm:"many2many:course_enrollments;" json:"studentsEnrolled,omitempty"`
}

func (Course) TableName() string {
	return "courses"
}

// Section groups sub-sections inside a course, ordered by Position.
type Section struct {
	BaseModel
	CourseID    uint   `gorm:"index;not null" json:"courseId"`
	SectionName string `gorm:"size:200;not null" json:"sectionName"`
	Position    int    `gorm:"not null;default:0" json:"position"`

	SubSections []SubSection `gorm:"foreignKey:SectionID" json:"subSection,omitempty"`
}

func (Section) TableName() string {
	return "sections"
}

// SubSection is a single video lecture. TimeDuration keeps the stored string
// form; it may be fractional or malformed and is coerced when aggregated.
type SubSection struct {
	BaseModel
	SectionID    uint   `gorm:"index;not null" json:"sectionId"`
	Title        string `gorm:"size:200;not null" json:"title"`
	Description  string `gorm:"size:1000" json:"description"`
	VideoURL     string `gorm:"size:255" json:"videoUrl"`
	TimeDuration string `gorm:"size:32" json:"timeDuration"`
	Position     int    `gorm:"not null;default:0" json:"position"`
}

func (SubSection) TableName() string {
	return "sub_sections"
}
