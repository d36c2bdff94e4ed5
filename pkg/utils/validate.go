package utils

import (
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Validate valida uma struct com base nas tags `validate`.
func Validate(v interface{}) error {
	return validate.Struct(v)
}
