package utils

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// ValidationErrorDetail represents the structure of a single validation error.
type ValidationErrorDetail struct {
	Field    string      `json:"field"`
	Message  string      `json:"message"`
	Expected string      `json:"expected"`
	Received interface{} `json:"received"`
}

// ValidationErrorData represents the data field in the validation error response.
type ValidationErrorData struct {
	Errors []ValidationErrorDetail `json:"errors"`
}

// BindAndValidate binds the request body to the given object and validates it.
// If validation fails, it sends a formatted error response and returns false.
// If validation succeeds, it returns true.
func BindAndValidate(c *gin.Context, obj interface{}) bool {
	err := c.ShouldBindJSON(obj)
	if err == nil {
		return true
	}

	var validationErrors []ValidationErrorDetail

	switch e := err.(type) {
	case validator.ValidationErrors:
		for _, fe := range e {
			detail := ValidationErrorDetail{
				Field:    fe.Field(),
				Message:  fmt.Sprintf("Field validation for '%s' failed on the '%s' tag", fe.Field(), fe.Tag()),
				Expected: fe.Param(),
				Received: fe.Value(),
			}
			if detail.Expected == "" {
				detail.Expected = fe.Tag()
			}

			switch fe.Tag() {
			case "required":
				detail.Message = fmt.Sprintf("Field '%s' is required", fe.Field())
				detail.Expected = "not null"
			case "oneof":
				detail.Message = fmt.Sprintf("Field '%s' must be one of: %s", fe.Field(), fe.Param())
			case "min":
				detail.Message = fmt.Sprintf("Field '%s' must be at least %s", fe.Field(), fe.Param())
			case "max":
				detail.Message = fmt.Sprintf("Field '%s' must be at most %s", fe.Field(), fe.Param())
			}

			validationErrors = append(validationErrors, detail)
		}
	case *json.UnmarshalTypeError:
		validationErrors = append(validationErrors, ValidationErrorDetail{
			Field:    e.Field,
			Message:  fmt.Sprintf("Field '%s' has invalid type", e.Field),
			Expected: e.Type.String(),
			Received: e.Value,
		})
	default:
		validationErrors = append(validationErrors, ValidationErrorDetail{
			Field:    "body",
			Message:  "Malformed JSON or invalid request body",
			Expected: "valid JSON",
			Received: "invalid",
		})
	}

	c.JSON(http.StatusBadRequest, Response{
		Status:  http.StatusBadRequest,
		Message: "Invalid request parameters",
		Data:    ValidationErrorData{Errors: validationErrors},
	})
	return false
}
