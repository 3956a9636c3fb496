package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"vibestore-api/internal/services"
	"vibestore-api/pkg/lambda"
)

// productAllowedMethods advertises what the products function accepts
const productAllowedMethods = "GET, POST, PUT, DELETE, OPTIONS"

// deleteConfirmation is the payload returned after a successful delete
type deleteConfirmation struct {
	Message string `json:"message"`
	ID      int64  `json:"id"`
}

// ProductHandler handles product-related HTTP requests
type ProductHandler struct {
	productService services.ProductService
}

// NewProductHandler creates a new product handler
func NewProductHandler(productService services.ProductService) *ProductHandler {
	return &ProductHandler{
		productService: productService,
	}
}

// Handle dispatches a function-runtime request by HTTP method. Same error
// policy as the contact handler: only validation, not-found and
// method-not-allowed become structured responses.
func (h *ProductHandler) Handle(ctx context.Context, req *lambda.Request) (*lambda.Response, error) {
	switch req.Method {
	case http.MethodOptions:
		return lambda.Preflight(productAllowedMethods), nil
	case http.MethodGet:
		return h.handleList(ctx)
	case http.MethodPost:
		return h.handleCreate(ctx, req)
	case http.MethodPut:
		return h.handleUpdate(ctx, req)
	case http.MethodDelete:
		return h.handleDelete(ctx, req)
	default:
		return lambda.Error(http.StatusMethodNotAllowed, "Method not allowed"), nil
	}
}

func (h *ProductHandler) handleList(ctx context.Context) (*lambda.Response, error) {
	products, err := h.productService.ListProducts(ctx)
	if err != nil {
		return nil, err
	}

	return lambda.JSON(http.StatusOK, products)
}

func (h *ProductHandler) handleCreate(ctx context.Context, req *lambda.Request) (*lambda.Response, error) {
	var createReq services.CreateProductRequest
	if err := json.Unmarshal([]byte(req.Body), &createReq); err != nil {
		return nil, fmt.Errorf("failed to parse request body: %w", err)
	}

	product, err := h.productService.CreateProduct(ctx, &createReq)
	if err != nil {
		if isValidationError(err) {
			return lambda.Error(http.StatusBadRequest, "Name, price, and category are required"), nil
		}
		return nil, err
	}

	return lambda.JSON(http.StatusCreated, product)
}

func (h *ProductHandler) handleUpdate(ctx context.Context, req *lambda.Request) (*lambda.Response, error) {
	id, resp := productIDFromPath(req)
	if resp != nil {
		return resp, nil
	}

	var updateReq services.UpdateProductRequest
	if err := json.Unmarshal([]byte(req.Body), &updateReq); err != nil {
		return nil, fmt.Errorf("failed to parse request body: %w", err)
	}

	product, err := h.productService.UpdateProduct(ctx, id, &updateReq)
	if err != nil {
		if isNotFoundError(err) {
			return lambda.Error(http.StatusNotFound, "Product not found"), nil
		}
		if isValidationError(err) {
			return lambda.Error(http.StatusBadRequest, "Name, price, and category are required"), nil
		}
		return nil, err
	}

	return lambda.JSON(http.StatusOK, product)
}

func (h *ProductHandler) handleDelete(ctx context.Context, req *lambda.Request) (*lambda.Response, error) {
	id, resp := productIDFromPath(req)
	if resp != nil {
		return resp, nil
	}

	if err := h.productService.DeleteProduct(ctx, id); err != nil {
		if isNotFoundError(err) {
			return lambda.Error(http.StatusNotFound, "Product not found"), nil
		}
		return nil, err
	}

	return lambda.JSON(http.StatusOK, deleteConfirmation{
		Message: "Product deleted successfully",
		ID:      id,
	})
}

// productIDFromPath extracts the product id path parameter. A missing or
// non-numeric id yields the 400 response to return as-is.
func productIDFromPath(req *lambda.Request) (int64, *lambda.Response) {
	raw := req.PathParams["id"]
	if raw == "" {
		return 0, lambda.Error(http.StatusBadRequest, "Product ID is required")
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, lambda.Error(http.StatusBadRequest, "Invalid product ID")
	}

	return id, nil
}

// ListProducts handles GET requests in server mode
func (h *ProductHandler) ListProducts(c *gin.Context) {
	products, err := h.productService.ListProducts(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "Failed to list products",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, products)
}

// CreateProduct handles POST requests in server mode
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var req services.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "Invalid request body",
			Message: err.Error(),
		})
		return
	}

	product, err := h.productService.CreateProduct(c.Request.Context(), &req)
	if err != nil {
		if isValidationError(err) {
			c.JSON(http.StatusBadRequest, ErrorResponse{
				Error: "Name, price, and category are required",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "Failed to create product",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, product)
}

// UpdateProduct handles PUT requests in server mode
func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "Product ID is required",
		})
		return
	}

	var req services.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "Invalid request body",
			Message: err.Error(),
		})
		return
	}

	product, err := h.productService.UpdateProduct(c.Request.Context(), id, &req)
	if err != nil {
		if isNotFoundError(err) {
			c.JSON(http.StatusNotFound, ErrorResponse{
				Error: "Product not found",
			})
			return
		}
		if isValidationError(err) {
			c.JSON(http.StatusBadRequest, ErrorResponse{
				Error: "Name, price, and category are required",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "Failed to update product",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, product)
}

// DeleteProduct handles DELETE requests in server mode
func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "Product ID is required",
		})
		return
	}

	if err := h.productService.DeleteProduct(c.Request.Context(), id); err != nil {
		if isNotFoundError(err) {
			c.JSON(http.StatusNotFound, ErrorResponse{
				Error: "Product not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "Failed to delete product",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, deleteConfirmation{
		Message: "Product deleted successfully",
		ID:      id,
	})
}
