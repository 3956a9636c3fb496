package main

import (
	"context"

	"github.com/aws/aws-lambda-go/events"
	awslambda "github.com/aws/aws-lambda-go/lambda"
	"github.com/sirupsen/logrus"

	"vibestore-api/internal/config"
	"vibestore-api/internal/handlers"
	"vibestore-api/pkg/lambda"
	"vibestore-api/pkg/server"
)

var (
	cfg    *config.Config
	logger *logrus.Logger
)

func init() {
	var err error
	cfg, err = config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	logger = logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})

	runtime := config.DetectRuntime()
	logger.WithFields(logrus.Fields{
		"mode":     string(runtime.Mode),
		"function": runtime.FunctionName,
		"stage":    runtime.Stage,
	}).Info("Contacts function initialized")
}

// handler serves one invocation of the contacts function. The container (and
// its database connection) lives for exactly this invocation; WithContainer
// closes it on every exit path. Errors returned here become invocation
// failures that the runtime turns into its generic error response.
func handler(ctx context.Context, event events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	req := &lambda.Request{
		Method:      event.HTTPMethod,
		Path:        event.Path,
		Headers:     event.Headers,
		QueryParams: event.QueryStringParameters,
		PathParams:  event.PathParameters,
		Body:        event.Body,
	}

	// Preflight needs no database access, so answer before opening anything
	if req.Method == "OPTIONS" {
		resp := lambda.Preflight("GET, PUT, OPTIONS")
		return toProxyResponse(resp), nil
	}

	resp, err := lambda.WithContainer(cfg, logger, func(c *server.Container) (*lambda.Response, error) {
		return handlers.NewContactHandler(c.ContactService).Handle(ctx, req)
	})
	if err != nil {
		logger.WithError(err).Error("Contact invocation failed")
		return events.APIGatewayProxyResponse{}, err
	}

	return toProxyResponse(resp), nil
}

func toProxyResponse(resp *lambda.Response) events.APIGatewayProxyResponse {
	return events.APIGatewayProxyResponse{
		StatusCode:      resp.StatusCode,
		Headers:         resp.Headers,
		Body:            resp.Body,
		IsBase64Encoded: resp.IsBase64Encoded,
	}
}

func main() {
	awslambda.Start(handler)
}
