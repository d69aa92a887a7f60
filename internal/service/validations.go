package service

import (
	"sync"

	"github.com/go-playground/validator/v10"
)

// Package for custom validations
var (
	validate *validator.Validate
	once     sync.Once
)

func InitValidator() {
	once.Do(func() {
		validate = validator.New()
		validate.RegisterValidation("referral_code", func(fl validator.FieldLevel) bool {
			value := fl.Field().String()
			if len(value) != referralCodeLength {
				return false
			}
			for _, char := range value {
				// Codes are issued from an alphabet without 0, O, 1 and I
				if !isReferralChar(char) {
					return false
				}
			}
			return true
		})
	})
}
