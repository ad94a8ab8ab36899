package service

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"unicode"

	"github.com/go-playground/validator/v10"
	errorvalues "github.com/limbo/healthydev/internal/error_values"
	"github.com/limbo/healthydev/pkg/entity"
)

// Package for custom validations
var (
	validate *validator.Validate
	once     sync.Once
)

func InitValidator() {
	once.Do(func() {
		validate = validator.New()
		validate.RegisterValidation("alphanum_underscore", func(fl validator.FieldLevel) bool {
			value := fl.Field().String()
			for i, char := range value {
				// Cannot be started with a digit or underscore
				if i == 0 && (unicode.IsDigit(char) || char == '_') {
					return false
				}
				// Digits, letters or underscore
				if !unicode.IsLetter(char) && !unicode.IsDigit(char) && char != '_' {
					return false
				}
			}
			return true
		})
		validate.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
			return strings.TrimSpace(fl.Field().String()) != ""
		})
		validate.RegisterValidation("block_type", func(fl validator.FieldLevel) bool {
			switch entity.BlockType(fl.Field().String()) {
			case entity.BlockMorning, entity.BlockWork, entity.BlockHealth, entity.BlockEvening:
				return true
			}
			return false
		})
		validate.RegisterValidation("block_status", func(fl validator.FieldLevel) bool {
			switch entity.BlockStatus(fl.Field().String()) {
			case entity.StatusUpcoming, entity.StatusCurrent, entity.StatusCompleted, entity.StatusSkipped:
				return true
			}
			return false
		})
	})
}

// validateStruct reports failures as ErrValidation listing the offending fields.
func validateStruct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("%w: %s", errorvalues.ErrValidation, err.Error())
	}
	fields := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		fields = append(fields, fe.Field()+" failed "+fe.Tag())
	}
	return fmt.Errorf("%w: %s", errorvalues.ErrValidation, strings.Join(fields, ", "))
}
