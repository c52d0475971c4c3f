package model

// ChartPoint 课程进度柱状图的单个数据点
type ChartPoint struct {
	Name     string   `json:"name"`
	Progress *float64 `json:"progress"`
}

// SkillRadarPoint 技能雷达图单项
type SkillRadarPoint struct {
	Subject string `json:"subject"`
	Score   int    `json:"score"`
	Max     int    `json:"max"`
}

type StatCard struct {
	Key   string `json:"key"`
	Title string `json:"title"`
	Value string `json:"value"`
	// 仅 overall_progress 卡片带进度条宽度 (0-100)
	ProgressBar *float64 `json:"progressBar,omitempty"`
}

type Link struct {
	Label string `json:"label"`
	Href  string `json:"href"`
}

type PageHeader struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	Action   Link   `json:"action"`
}

type Tab struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

type RadarChart struct {
	Title       string            `json:"title"`
	Description string            `json:"description"`
	DesignScore int               `json:"designScore"`
	Points      []SkillRadarPoint `json:"points"`
}

type ProgressChart struct {
	Title        string       `json:"title"`
	Description  string       `json:"description"`
	YAxisLabel   string       `json:"yAxisLabel"`
	Points       []ChartPoint `json:"points"`
	Fills        []string     `json:"fills"`
	EmptyMessage string       `json:"emptyMessage,omitempty"`
}

type EmptyState struct {
	Title   string `json:"title"`
	Message string `json:"message"`
}

// SkillGraph 技能图谱页面的完整视图数据
type SkillGraph struct {
	Header          PageHeader    `json:"header"`
	Stats           []StatCard    `json:"stats"`
	Tabs            []Tab         `json:"tabs"`
	DefaultTab      string        `json:"defaultTab"`
	Radar           RadarChart    `json:"radar"`
	CourseProgress  ProgressChart `json:"courseProgress"`
	EnrolledCourses []Course      `json:"enrolledCourses"`
	OverallProgress float64       `json:"overallProgress"`
	EmptyState      *EmptyState   `json:"emptyState,omitempty"`
}
