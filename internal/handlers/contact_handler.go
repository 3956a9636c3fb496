package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"vibestore-api/internal/services"
	"vibestore-api/pkg/lambda"
)

// contactAllowedMethods advertises what the contact function accepts
const contactAllowedMethods = "GET, PUT, OPTIONS"

// ContactHandler handles contact-related HTTP requests
type ContactHandler struct {
	contactService services.ContactService
}

// NewContactHandler creates a new contact handler
func NewContactHandler(contactService services.ContactService) *ContactHandler {
	return &ContactHandler{
		contactService: contactService,
	}
}

// Handle dispatches a function-runtime request by HTTP method. Validation and
// method errors come back as structured responses; anything else (broken
// connection, SQL failure, malformed JSON body) is returned as an error so
// the runtime produces its generic failure.
func (h *ContactHandler) Handle(ctx context.Context, req *lambda.Request) (*lambda.Response, error) {
	switch req.Method {
	case http.MethodOptions:
		return lambda.Preflight(contactAllowedMethods), nil
	case http.MethodGet:
		return h.handleGet(ctx)
	case http.MethodPut:
		return h.handleUpdate(ctx, req)
	default:
		return lambda.Error(http.StatusMethodNotAllowed, "Method not allowed"), nil
	}
}

func (h *ContactHandler) handleGet(ctx context.Context) (*lambda.Response, error) {
	contact, err := h.contactService.GetContact(ctx)
	if err != nil {
		return nil, err
	}

	return lambda.JSON(http.StatusOK, contact)
}

// handleUpdate replaces the current contact. The first-ever create also
// answers 200 rather than 201; the storefront treats both paths identically.
func (h *ContactHandler) handleUpdate(ctx context.Context, req *lambda.Request) (*lambda.Response, error) {
	var updateReq services.UpdateContactRequest
	if err := json.Unmarshal([]byte(req.Body), &updateReq); err != nil {
		return nil, fmt.Errorf("failed to parse request body: %w", err)
	}

	contact, err := h.contactService.UpdateContact(ctx, &updateReq)
	if err != nil {
		if isValidationError(err) {
			return lambda.Error(http.StatusBadRequest, "Address, phone, and email are required"), nil
		}
		return nil, err
	}

	return lambda.JSON(http.StatusOK, contact)
}

// GetContact handles GET requests in server mode
func (h *ContactHandler) GetContact(c *gin.Context) {
	contact, err := h.contactService.GetContact(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "Failed to get contact",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, contact)
}

// UpdateContact handles PUT requests in server mode
func (h *ContactHandler) UpdateContact(c *gin.Context) {
	var req services.UpdateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "Invalid request body",
			Message: err.Error(),
		})
		return
	}

	contact, err := h.contactService.UpdateContact(c.Request.Context(), &req)
	if err != nil {
		if isValidationError(err) {
			c.JSON(http.StatusBadRequest, ErrorResponse{
				Error: "Address, phone, and email are required",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "Failed to update contact",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, contact)
}
