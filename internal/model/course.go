package model

// swagger:model Course
type Course struct {
	BaseModel
	Title       string `gorm:"size:255;not null" json:"title"`
	Description string `gorm:"type:text" json:"description,omitempty"`
	Category    string `gorm:"size:100" json:"category,omitempty"`

	// 学习者在该课程上的进度 0-100，未开始时为 nil
	Progress *float64 `gorm:"-" json:"progress"`
}

func (Course) TableName() string {
	return "courses"
}

// ProgressOrZero 未定义的进度按 0 计算
func (c Course) ProgressOrZero() float64 {
	if c.Progress == nil {
		return 0
	}
	return *c.Progress
}
