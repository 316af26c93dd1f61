package config

import (
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		validateInst = validator.New(validator.WithRequiredStructEnabled())
	})
	return validateInst
}

// Validate checks every field against its constraints. The returned error
// wraps validator.ValidationErrors.
func (c *Config) Validate() error {
	return validatorInstance().Struct(c)
}
