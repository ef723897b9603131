package utils

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("phone_number", validatePhoneNumber)
	validate.RegisterValidation("share_type", validateShareType)
	validate.RegisterValidation("blood_group", validateBloodGroup)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validatePhoneNumber(fl validator.FieldLevel) bool {
	phoneNumber := fl.Field().String()
	re := regexp.MustCompile(`^\+[1-9]\d{9,14}$`)
	return re.MatchString(phoneNumber)
}

func validateShareType(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return value == "doctor" || value == "acquaintance"
}

func validateBloodGroup(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	re := regexp.MustCompile(`^(A|B|AB|O)[+-]$`)
	return re.MatchString(value)
}
