package utils

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Response represents a standard API response
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Success bool        `json:"success"`
	Error   string      `json:"error"`
	Code    int         `json:"code,omitempty"`
	// Details carries structured records, e.g. payment flow errors
	Details interface{} `json:"details,omitempty"`
}

// SuccessResponse sends a success response with data
func SuccessResponse(c echo.Context, statusCode int, message string, data interface{}) error {
	return c.JSON(statusCode, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// ErrorResponseHandler sends an error response
func ErrorResponseHandler(c echo.Context, statusCode int, errorMessage string) error {
	return writeError(c, statusCode, errorMessage, nil)
}

// BadRequestResponse sends a 400 Bad Request response
func BadRequestResponse(c echo.Context, errorMessage string) error {
	return writeError(c, http.StatusBadRequest, errorMessage, nil)
}

// UnauthorizedResponse sends a 401 response, "Unauthorized" when errorMessage is empty
func UnauthorizedResponse(c echo.Context, errorMessage string) error {
	return writeError(c, http.StatusUnauthorized, errorMessage, nil)
}

// ForbiddenResponse sends a 403 response, "Forbidden" when errorMessage is empty
func ForbiddenResponse(c echo.Context, errorMessage string) error {
	return writeError(c, http.StatusForbidden, errorMessage, nil)
}

// NotFoundResponse sends a 404 response, "Resource not found" when errorMessage is empty
func NotFoundResponse(c echo.Context, errorMessage string) error {
	return writeError(c, http.StatusNotFound, errorMessage, nil)
}

// InternalServerErrorResponse sends a 500 response, "Internal server error" when errorMessage is empty
func InternalServerErrorResponse(c echo.Context, errorMessage string) error {
	return writeError(c, http.StatusInternalServerError, errorMessage, nil)
}

// UnprocessableEntityResponse sends a 422 response with structured details
func UnprocessableEntityResponse(c echo.Context, errorMessage string, details interface{}) error {
	return writeError(c, http.StatusUnprocessableEntity, errorMessage, details)
}

var defaultMessages = map[int]string{
	http.StatusUnauthorized:        "Unauthorized",
	http.StatusForbidden:           "Forbidden",
	http.StatusNotFound:            "Resource not found",
	http.StatusInternalServerError: "Internal server error",
}

func writeError(c echo.Context, statusCode int, errorMessage string, details interface{}) error {
	if errorMessage == "" {
		errorMessage = defaultMessages[statusCode]
	}
	return c.JSON(statusCode, ErrorResponse{
		Success: false,
		Error:   errorMessage,
		Code:    statusCode,
		Details: details,
	})
}
