package dashboard

// CourseProgress is one row of the student dashboard course list.
type CourseProgress struct {
	ID               string `json:"id"`
	Title            string `json:"title"`
	Description      string `json:"description"`
	Image            string `json:"image"`
	TotalLessons     int    `json:"total_lessons"`
	CompletedLessons int    `json:"completed_lessons"`
	// Progress is the completion percentage, rounded to the nearest integer.
	Progress int `json:"progress"`
}

type StudentStats struct {
	CoursesInProgress  int     `json:"coursesInProgress"`
	CompletedCourses   int     `json:"completedCourses"`
	TotalLearningHours float64 `json:"totalLearningHours"`
	Streak             int     `json:"streak"`
}

type StudentDashboard struct {
	Stats   StudentStats     `json:"stats"`
	Courses []CourseProgress `json:"courses"`
}

type AdminStats struct {
	TotalUsers        int64  `json:"totalUsers"`
	ActiveStudents    int64  `json:"activeStudents"`
	CourseCompletions int64  `json:"courseCompletions"`
	Revenue           string `json:"revenue"`
}

type Activity struct {
	User   string `json:"user"`
	Action string `json:"action"`
	Time   string `json:"time"`
}

type AdminDashboard struct {
	Stats          AdminStats `json:"stats"`
	RecentActivity []Activity `json:"recentActivity"`
}
