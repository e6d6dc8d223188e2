package utils

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"main/model"
)

var Validate *validator.Validate

// InitValidator registers the custom rules with both the standalone
// validator and gin's binding engine.
func InitValidator() {
	Validate = validator.New()
	RegisterCustomValidators(Validate)
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		RegisterCustomValidators(v)
	}
}

func RegisterCustomValidators(v *validator.Validate) {
	v.RegisterValidation("isodate", ValidateDateRule)
	v.RegisterValidation("goalperiod", ValidateGoalPeriodRule)
	v.RegisterValidation("habitcategory", ValidateCategoryRule)
	v.RegisterValidation("timeperiod", ValidateTimePeriodRule)
}

// ValidateDateRule accepts only YYYY-MM-DD calendar dates.
func ValidateDateRule(fl validator.FieldLevel) bool {
	return ValidDate(fl.Field().String())
}

func ValidateGoalPeriodRule(fl validator.FieldLevel) bool {
	return model.ValidGoalPeriod(model.GoalPeriod(fl.Field().String()))
}

func ValidateCategoryRule(fl validator.FieldLevel) bool {
	return model.ValidCategory(model.HabitCategory(fl.Field().String()))
}

func ValidateTimePeriodRule(fl validator.FieldLevel) bool {
	return model.ValidTimePeriod(model.TimePeriod(fl.Field().String()))
}
