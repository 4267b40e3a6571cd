package service

import (
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
)

// Package for custom validations
var (
	validate = validator.New()
	once     sync.Once
)

// InitValidator registers custom tags. Safe to call more than once.
func InitValidator() {
	once.Do(func() {
		validate.RegisterValidation("calendar_date", func(fl validator.FieldLevel) bool {
			_, err := time.Parse(time.DateOnly, fl.Field().String())
			return err == nil
		})
	})
}

// Validate exposes the shared validator to the transport layer.
func Validate(s any) error {
	InitValidator()
	return validate.Struct(s)
}
