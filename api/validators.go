package api

import (
	"github.com/MartPlace/MartPlace-Backend/services/kyc"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// registerValidators wires the KYC field formats into gin's binding
// layer, so malformed input is rejected before a handler runs.
func registerValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("bvn", func(fl validator.FieldLevel) bool {
			return kyc.ValidBVN(fl.Field().String())
		})
		_ = v.RegisterValidation("acctnumber", func(fl validator.FieldLevel) bool {
			return kyc.ValidAccountNumber(fl.Field().String())
		})
	}
}
