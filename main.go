package main

import (
	"context"
	"net/http"
	"os"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/awslabs/aws-lambda-go-api-proxy/httpadapter"
	log "github.com/sirupsen/logrus"

	"github.com/Sachidanand-dev/ai-powered-lms-edu-ai/internal/container"
	"github.com/Sachidanand-dev/ai-powered-lms-edu-ai/internal/router"
)

func main() {
	c := container.New()

	handler := router.New(router.RouterConfig{
		UserHandler:      c.UserContainer.Handler,
		CourseHandler:    c.CourseContainer.Handler,
		ProgressHandler:  c.ProgressContainer.Handler,
		DashboardHandler: c.DashboardContainer.Handler,
		ChatHandler:      c.ChatContainer.Handler,
		AIQuizHandler:    c.AIQuizContainer.Handler,
		QuizHandler:      c.QuizContainer.Handler,
		DocumentHandler:  c.DocumentHandler,
	})

	if os.Getenv("AWS_LAMBDA_FUNCTION_NAME") != "" {
		adapter := httpadapter.New(handler)
		lambda.Start(func(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
			return adapter.ProxyWithContext(ctx, req)
		})
		return
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Infof("listening on :%s", port)
	if err := http.ListenAndServe(":"+port, handler); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
