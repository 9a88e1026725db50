package model

import "github.com/go-playground/validator/v10"

var validate = validator.New()

// ValidateStruct runs the `validate` tags of any model struct. Validation is
// front-loaded at the write path; read paths assume well-formed records.
func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}
