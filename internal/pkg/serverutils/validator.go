package serverutils

import (
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateRequest checks a DTO against its validate tags. The resulting
// validator.ValidationErrors are mapped to 400 by ErrorHandlerMiddleware.
func ValidateRequest(req interface{}) error {
	return validate.Struct(req)
}
