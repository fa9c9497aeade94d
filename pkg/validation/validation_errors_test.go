package validation

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

func TestTranslateValidatorErrors(t *testing.T) {
	type form struct {
		Email    string `validate:"required,email"`
		Password string `validate:"required,min=6"`
	}

	v := validator.New()
	err := v.Struct(form{Email: "not-an-email", Password: "abc"})
	assert.Error(t, err)

	msgs := Translate(err)
	assert.Len(t, msgs, 2)
	assert.Contains(t, msgs[0], "Email")
	assert.Contains(t, msgs[1], "Password")
}

func TestTranslateNonValidatorError(t *testing.T) {
	assert.Nil(t, Translate(errors.New("invalid character '}' looking for beginning of value")))
}
