package web

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-petr/pet-invest/internal/domain"
	"github.com/go-playground/validator/v10"
)

// ValidRiskLevel validates whether the risk level is supported.
var ValidRiskLevel validator.Func = func(fl validator.FieldLevel) bool {
	if s, ok := fl.Field().Interface().(string); ok {
		return domain.RiskLevel(s).Valid()
	}

	return false
}

// RegisterValidators adds the custom binding tags to gin's validator.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}

	return v.RegisterValidation("risklevel", ValidRiskLevel)
}
