package model

// swagger:model User
type User struct {
	BaseModel
	Name   string `gorm:"size:100;not null" json:"name"`
	Email  string `gorm:"size:100;unique;not null" json:"email"`
	Points int    `gorm:"default:0" json:"points"`

	// 由 enrollments / completed_levels 表加载
	CoursesEnrolled []uint `gorm:"-" json:"coursesEnrolled"`
	CompletedLevels []uint `gorm:"-" json:"completedLevels"`
}

func (User) TableName() string {
	return "users"
}
