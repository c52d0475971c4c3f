package model

type Enrollment struct {
	BaseModel
	UserID   uint     `gorm:"index:idx_enrollment_user_course,unique;not null" json:"userId"`
	CourseID uint     `gorm:"index:idx_enrollment_user_course,unique;not null" json:"courseId"`
	Progress *float64 `json:"progress"`
}

func (Enrollment) TableName() string {
	return "enrollments"
}

type CompletedLevel struct {
	BaseModel
	UserID  uint `gorm:"index;not null" json:"userId"`
	LevelID uint `gorm:"not null" json:"levelId"`
}

func (CompletedLevel) TableName() string {
	return "completed_levels"
}
