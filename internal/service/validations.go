package service

import (
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/nmehta/activityclock/internal/timeutil"
)

// Package for custom validations
var (
	validate *validator.Validate
	once     sync.Once
)

func InitValidator() {
	once.Do(func() {
		validate = validator.New()
		validate.RegisterValidation("ymd", func(fl validator.FieldLevel) bool {
			return timeutil.IsDayKey(fl.Field().String())
		})
	})
}
