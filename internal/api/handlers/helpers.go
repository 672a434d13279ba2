package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// Every response carries the same envelope: successes wrap their payload in
// "data", failures describe themselves in "error". Clients can branch on
// "success" alone.

func respondOK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, gin.H{"success": true, "data": data})
}

func respondCreated(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, gin.H{"success": true, "data": data})
}

func respondMessage(c *gin.Context, message string) {
	c.JSON(http.StatusOK, gin.H{"success": true, "message": message})
}

func respondError(c *gin.Context, status int, err interface{}) {
	c.JSON(status, gin.H{"success": false, "error": err})
}

// parseIDParam reads a positive integer path parameter; a malformed value is
// a client error, reported through the standard envelope.
func parseIDParam(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		respondError(c, http.StatusBadRequest, fmt.Sprintf("Invalid %s parameter", name))
		return 0, false
	}
	return id, true
}

// bindAndValidate decodes the JSON body into req and runs struct validation,
// writing the 400 envelope itself on failure.
func bindAndValidate(c *gin.Context, validate *validator.Validate, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return false
	}
	if err := validate.Struct(req); err != nil {
		respondError(c, http.StatusBadRequest, FormatValidationErrors(err))
		return false
	}
	return true
}

// FormatValidationErrors flattens validator errors into a field -> message
// map suitable for the error envelope.
func FormatValidationErrors(err error) map[string]string {
	errorsMap := make(map[string]string)
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		errorsMap["error"] = "Invalid request payload"
		return errorsMap
	}
	for _, fieldError := range validationErrors {
		fieldName := fieldError.Field()
		switch fieldError.Tag() {
		case "required":
			errorsMap[fieldName] = fmt.Sprintf("Field '%s' is required", fieldName)
		case "email":
			errorsMap[fieldName] = fmt.Sprintf("Field '%s' must be a valid email address", fieldName)
		case "min":
			errorsMap[fieldName] = fmt.Sprintf("Field '%s' must be at least %s characters long", fieldName, fieldError.Param())
		case "max":
			errorsMap[fieldName] = fmt.Sprintf("Field '%s' must be at most %s characters long", fieldName, fieldError.Param())
		case "oneof":
			errorsMap[fieldName] = fmt.Sprintf("Field '%s' must be one of: %s", fieldName, fieldError.Param())
		case "datetime":
			errorsMap[fieldName] = fmt.Sprintf("Field '%s' must be a date in YYYY-MM-DD format", fieldName)
		case "gt":
			errorsMap[fieldName] = fmt.Sprintf("Field '%s' must be greater than %s", fieldName, fieldError.Param())
		default:
			errorsMap[fieldName] = fmt.Sprintf("Field validation for '%s' failed on the '%s' tag", fieldName, fieldError.Tag())
		}
	}
	return errorsMap
}
