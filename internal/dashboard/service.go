package dashboard

import (
	"context"
	"math"

	"github.com/Sachidanand-dev/ai-powered-lms-edu-ai/internal/config"
	"github.com/Sachidanand-dev/ai-powered-lms-edu-ai/internal/course"
	"github.com/Sachidanand-dev/ai-powered-lms-edu-ai/internal/progress"
	"github.com/Sachidanand-dev/ai-powered-lms-edu-ai/internal/user"
)

type DashboardService interface {
	StudentDashboard(ctx context.Context, userID string) (*StudentDashboard, error)
	AdminDashboard(ctx context.Context) (*AdminDashboard, error)
}

type dashboardService struct {
	courses  course.CourseRepository
	progress progress.ProgressRepository
	users    user.UserRepository
}

func NewService(courses course.CourseRepository, progressRepo progress.ProgressRepository, users user.UserRepository) DashboardService {
	return &dashboardService{courses: courses, progress: progressRepo, users: users}
}

// StudentDashboard joins the course catalog against the user's progress rows.
// Courses the user never touched show up with zero progress.
func (s *dashboardService) StudentDashboard(ctx context.Context, userID string) (*StudentDashboard, error) {
	log := config.WithContext(ctx)

	courses, err := s.courses.ListAll()
	if err != nil {
		log.WithError(err).Error("failed to list courses for dashboard")
		return nil, err
	}

	rows, err := s.progress.ListByUser(userID)
	if err != nil {
		log.WithError(err).Error("failed to list progress for dashboard")
		return nil, err
	}
	byCourse := make(map[string]*progress.Progress, len(rows))
	for _, p := range rows {
		byCourse[p.CourseID.String()] = p
	}

	dash := &StudentDashboard{Courses: make([]CourseProgress, 0, len(courses))}
	for _, c := range courses {
		row := CourseProgress{
			ID:           c.ID.String(),
			Title:        c.Title,
			Description:  c.Description,
			Image:        c.Image,
			TotalLessons: c.TotalLessons,
		}
		if p, ok := byCourse[c.ID.String()]; ok {
			row.CompletedLessons = p.CompletedLessons
			if c.TotalLessons > 0 {
				row.Progress = int(math.Round(float64(p.CompletedLessons) / float64(c.TotalLessons) * 100))
			}
			if p.IsCompleted {
				dash.Stats.CompletedCourses++
			} else if p.CompletedLessons > 0 {
				dash.Stats.CoursesInProgress++
			}
		}
		dash.Courses = append(dash.Courses, row)
	}

	// Learning hours are not tracked per lesson yet, so the stat is a fixed
	// placeholder until lesson durations feed into it.
	dash.Stats.TotalLearningHours = 12.5

	u, err := s.users.GetByID(userID)
	if err != nil {
		log.WithError(err).Error("failed to load user for dashboard")
		return nil, err
	}
	if u != nil {
		dash.Stats.Streak = u.Streak
	}

	return dash, nil
}

func (s *dashboardService) AdminDashboard(ctx context.Context) (*AdminDashboard, error) {
	log := config.WithContext(ctx)

	total, err := s.users.CountAll()
	if err != nil {
		log.WithError(err).Error("failed to count users")
		return nil, err
	}
	students, err := s.users.CountByRole(user.RoleStudent)
	if err != nil {
		log.WithError(err).Error("failed to count students")
		return nil, err
	}
	completions, err := s.progress.CountCompleted()
	if err != nil {
		log.WithError(err).Error("failed to count course completions")
		return nil, err
	}

	return &AdminDashboard{
		Stats: AdminStats{
			TotalUsers:        total,
			ActiveStudents:    students,
			CourseCompletions: completions,
			Revenue:           "$0",
		},
		RecentActivity: []Activity{
			{User: "System", Action: "Dashboard refreshed", Time: "just now"},
		},
	}, nil
}
