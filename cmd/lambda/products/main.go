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
	}).Info("Products function initialized")
}

// handler serves one invocation of the products function. Same lifecycle as
// the contacts function: one container, one database connection, always
// released; infrastructure errors propagate to the runtime.
func handler(ctx context.Context, event events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	req := &lambda.Request{
		Method:      event.HTTPMethod,
		Path:        event.Path,
		Headers:     event.Headers,
		QueryParams: event.QueryStringParameters,
		PathParams:  event.PathParameters,
		Body:        event.Body,
	}

	if req.Method == "OPTIONS" {
		resp := lambda.Preflight("GET, POST, PUT, DELETE, OPTIONS")
		return toProxyResponse(resp), nil
	}

	resp, err := lambda.WithContainer(cfg, logger, func(c *server.Container) (*lambda.Response, error) {
		return handlers.NewProductHandler(c.ProductService).Handle(ctx, req)
	})
	if err != nil {
		logger.WithError(err).Error("Product invocation failed")
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
