package utils

import (
	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("appointment_datetime", validateAppointmentDatetime)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validateAppointmentDatetime(fl validator.FieldLevel) bool {
	_, err := ParseAppointmentTime(fl.Field().String())
	return err == nil
}
