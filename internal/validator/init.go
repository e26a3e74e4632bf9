package validator

import (
	"reflect"
	"strings"

	"ctchen222/Tic-Tac-Toe/internal/game"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	// Initialize validation
	validate = validator.New(validator.WithRequiredStructEnabled())

	// Report fields by the name users type: the JSON key or the env variable.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, key := range []string{"json", "env"} {
			name, _, _ := strings.Cut(fld.Tag.Get(key), ",")
			if name != "" && name != "-" {
				return name
			}
		}
		return ""
	})

	if err := validate.RegisterValidation("mark", validMark); err != nil {
		panic(err)
	}
}

func GetValidator() *validator.Validate {
	return validate
}

// validMark accepts the two playable marks, X and O.
func validMark(fl validator.FieldLevel) bool {
	return game.PlayerMark(fl.Field().String()).Valid()
}
