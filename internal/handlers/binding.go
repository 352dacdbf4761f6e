package handlers

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Indian postal codes: six digits, no leading zero.
var pincodeRe = regexp.MustCompile(`^[1-9][0-9]{5}$`)

// registerCustomValidators adds domain validations to gin's binding engine.
func registerCustomValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("pincode", func(fl validator.FieldLevel) bool {
			return pincodeRe.MatchString(fl.Field().String())
		})
	}
}
