package container

import (
	"context"
	"log"
	"os"

	"github.com/Sachidanand-dev/ai-powered-lms-edu-ai/internal/aiquiz"
	"github.com/Sachidanand-dev/ai-powered-lms-edu-ai/internal/auth"
	"github.com/Sachidanand-dev/ai-powered-lms-edu-ai/internal/chat"
	"github.com/Sachidanand-dev/ai-powered-lms-edu-ai/internal/config"
	"github.com/Sachidanand-dev/ai-powered-lms-edu-ai/internal/course"
	"github.com/Sachidanand-dev/ai-powered-lms-edu-ai/internal/dashboard"
	"github.com/Sachidanand-dev/ai-powered-lms-edu-ai/internal/document"
	"github.com/Sachidanand-dev/ai-powered-lms-edu-ai/internal/mail"
	"github.com/Sachidanand-dev/ai-powered-lms-edu-ai/internal/progress"
	"github.com/Sachidanand-dev/ai-powered-lms-edu-ai/internal/provider"
	"github.com/Sachidanand-dev/ai-powered-lms-edu-ai/internal/quiz"
	"github.com/Sachidanand-dev/ai-powered-lms-edu-ai/internal/user"
)

type Container struct {
	UserContainer      *user.UserContainer
	CourseContainer    *course.CourseContainer
	ProgressContainer  *progress.ProgressContainer
	DashboardContainer *dashboard.DashboardContainer
	ChatContainer      *chat.ChatContainer
	AIQuizContainer    *aiquiz.AIQuizContainer
	QuizContainer      *quiz.QuizContainer
	DocumentHandler    *document.Handler
}

func New() *Container {
	config.Init()
	auth.Init()
	config.InitCrypto()

	ctx := context.Background()

	dsn := os.Getenv("DATABASE_DSN")
	if err := config.Connect(ctx, dsn); err != nil {
		log.Fatalf("failed to connect to DB: %v", err)
	}

	if os.Getenv("AUTO_MIGRATE") == "true" {
		err := config.DB.AutoMigrate(
			&user.User{},
			&course.Course{},
			&progress.Progress{},
			&chat.Chat{},
			&chat.ChatMessage{},
			&quiz.QuizResult{},
		)
		if err != nil {
			log.Fatalf("failed to run migrations: %v", err)
		}
	}

	creds := provider.LoadCredentials()
	generators, err := provider.NewGenerators(ctx, creds)
	if err != nil {
		log.Fatalf("failed to initialize AI providers: %v", err)
	}
	executor := provider.NewExecutor(generators)

	mailer := mail.NewFromEnv()

	userContainer := user.NewUserContainer(config.DB, mailer)
	courseContainer := course.NewCourseContainer(config.DB)
	progressContainer := progress.NewProgressContainer(config.DB, courseContainer.Repo)
	dashboardContainer := dashboard.NewDashboardContainer(
		courseContainer.Repo,
		progressContainer.Repo,
		userContainer.Repo,
	)
	chatContainer := chat.NewChatContainer(config.DB, executor)
	aiQuizContainer := aiquiz.NewAIQuizContainer(executor)
	quizContainer := quiz.NewQuizContainer(config.DB)

	return &Container{
		UserContainer:      userContainer,
		CourseContainer:    courseContainer,
		ProgressContainer:  progressContainer,
		DashboardContainer: dashboardContainer,
		ChatContainer:      chatContainer,
		AIQuizContainer:    aiQuizContainer,
		QuizContainer:      quizContainer,
		DocumentHandler:    document.NewHandler(),
	}
}
