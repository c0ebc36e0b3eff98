package validator

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"
	"unicode"

	val "github.com/go-playground/validator/v10"

	"tzresolve/shared/failure"
)

var validate *val.Validate

// A zone name is a database identifier or an absolute path; parent segments
// and control characters are never valid.
func registerZoneNameValidation(field val.FieldLevel) bool {
	name, ok := field.Field().Interface().(string)
	if !ok {
		return false
	}

	if strings.IndexFunc(name, unicode.IsControl) >= 0 || strings.Contains(name, "\\") {
		return false
	}

	for _, part := range strings.Split(name, "/") {
		if part == ".." {
			return false
		}
	}

	return true
}

func registerRFC3339Validation(field val.FieldLevel) bool {
	value, ok := field.Field().Interface().(string)
	if !ok {
		return false
	}

	_, err := time.Parse(time.RFC3339, value)

	return err == nil
}

func init() {
	validate = val.New(val.WithRequiredStructEnabled())

	err := validate.RegisterValidation("zonename", registerZoneNameValidation)
	if err != nil {
		panic(err)
	}

	err = validate.RegisterValidation("rfc3339", registerRFC3339Validation)
	if err != nil {
		panic(err)
	}
}

// Validate reads from the given io.Reader into the given struct, and then performs validation
// on the struct using the validator package. If the struct is invalid according to the
// validation rules, an error is returned. Otherwise, nil is returned.
// https://github.com/go-playground/validator
func Validate[T any](r io.Reader, data *T) error {
	decoder := json.NewDecoder(r)
	err := decoder.Decode(data)

	if err != nil {
		return failure.BadRequest(fmt.Errorf("failed to decode request body: %w", err)) //nolint:wrapcheck
	}

	return ValidateStruct(data)
}

func ValidateStruct[T any](data *T) error {
	err := validate.Struct(data)

	if err != nil {
		msg := message(err)

		return failure.BadRequestFromString(msg) //nolint:wrapcheck
	}

	return nil
}

func ValidateVar(field any, tag string) error {
	err := validate.Var(field, tag)

	if err != nil {
		msg := message(err)

		return failure.BadRequestFromString(msg) //nolint:wrapcheck
	}

	return nil
}
