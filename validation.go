package logs

import (
	"sync"

	"github.com/Station-Manager/errors"
	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate
var once sync.Once

func validateConfig(cfg *Config) error {
	const op errors.Op = "logs.validateConfig"
	if cfg == nil {
		return errors.New(op).Msg(errMsgNilConfig)
	}

	once.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		_ = validate.RegisterValidation("loglevel", func(fl validator.FieldLevel) bool {
			_, err := ParseLevel(fl.Field().String())
			return err == nil
		})
		_ = validate.RegisterValidation("logprofile", func(fl validator.FieldLevel) bool {
			_, err := ParseProfile(fl.Field().String())
			return err == nil
		})
	})

	if err := validate.Struct(cfg); err != nil {
		return errors.New(op).Err(err).Msg(errMsgConfigInvalid)
	}

	return nil
}
