package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/kletskov/flightbooking/internal/domain"
)

// enumMessages maps an enum type to its allowed-values message, so a decode
// failure is classified once instead of walking a chain of type checks.
var enumMessages = map[string]string{
	"TripType": "Invalid trip type. Allowed values: [ONE_WAY, ROUND_TRIP]",
	"Gender":   "Invalid gender. Allowed values: [MALE, FEMALE, OTHER]",
	"Meal":     "Invalid meal type. Allowed values: [VEG, NON_VEG]",
}

// renderError maps the domain error taxonomy onto HTTP statuses; anything
// unclassified passes through as a 500 with its message.
func renderError(c *gin.Context, err error) {
	var validationErr *domain.ValidationError
	var notFoundErr *domain.NotFoundError
	var unavailableErr *domain.UnavailableError

	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Message})
	case errors.As(err, &notFoundErr):
		c.JSON(http.StatusNotFound, gin.H{"error": notFoundErr.Message})
	case errors.As(err, &unavailableErr):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": unavailableErr.Message})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

// renderBindError handles request decoding failures: field-level validation
// errors render as a field -> message map, enum decode failures look up the
// allowed-values table.
func renderBindError(c *gin.Context, err error) {
	var enumErr *domain.EnumError
	if errors.As(err, &enumErr) {
		msg, ok := enumMessages[enumErr.Enum]
		if !ok {
			msg = enumErr.Error()
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		fields := make(map[string]string, len(fieldErrs))
		for _, fe := range fieldErrs {
			fields[fe.Field()] = fieldMessage(fe)
		}
		c.JSON(http.StatusBadRequest, fields)
		return
	}

	c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON request"})
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "email":
		return "Invalid email format"
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}
