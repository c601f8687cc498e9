package flogger

import (
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate
var once sync.Once

func validatorInstance() *validator.Validate {
	once.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

func validateConfig(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("%s: config is nil", errMsgConfigInvalid)
	}
	if err := validatorInstance().Struct(cfg); err != nil {
		return fmt.Errorf("%s: %w", errMsgConfigInvalid, err)
	}
	return nil
}

func validateOptions(opts *AggregatorOptions) error {
	if opts == nil {
		return fmt.Errorf("%s: options are nil", errMsgOptionsInvalid)
	}
	if err := validatorInstance().Struct(opts); err != nil {
		return fmt.Errorf("%s: %w", errMsgOptionsInvalid, err)
	}
	return nil
}
