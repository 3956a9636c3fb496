package lambda

import "encoding/json"

// Request represents a generic HTTP request for serverless functions
type Request struct {
	Method      string            `json:"httpMethod"`
	Path        string            `json:"path"`
	Headers     map[string]string `json:"headers"`
	QueryParams map[string]string `json:"queryStringParameters"`
	PathParams  map[string]string `json:"pathParams"`
	Body        string            `json:"body"`
}

// Response represents the structured HTTP response the function runtime
// expects back from a handler.
type Response struct {
	StatusCode      int               `json:"statusCode"`
	Headers         map[string]string `json:"headers"`
	Body            string            `json:"body"`
	IsBase64Encoded bool              `json:"isBase64Encoded"`
}

// JSON builds a response with a JSON-encoded body and permissive CORS headers
func JSON(statusCode int, v interface{}) (*Response, error) {
	body, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}

	return &Response{
		StatusCode: statusCode,
		Headers: map[string]string{
			"Content-Type":                "application/json",
			"Access-Control-Allow-Origin": "*",
		},
		Body: string(body),
	}, nil
}

// Error builds an error response with the {"error": message} body shape
func Error(statusCode int, message string) *Response {
	body, _ := json.Marshal(map[string]string{"error": message})

	return &Response{
		StatusCode: statusCode,
		Headers: map[string]string{
			"Content-Type":                "application/json",
			"Access-Control-Allow-Origin": "*",
		},
		Body: string(body),
	}
}

// Preflight builds the CORS preflight response advertising the given methods
func Preflight(allowMethods string) *Response {
	return &Response{
		StatusCode: 200,
		Headers: map[string]string{
			"Access-Control-Allow-Origin":  "*",
			"Access-Control-Allow-Methods": allowMethods,
			"Access-Control-Allow-Headers": "Content-Type, X-User-Id, X-Auth-Token",
			"Access-Control-Max-Age":       "86400",
		},
		Body: "",
	}
}
