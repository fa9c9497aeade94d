package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGenerateAndParse(t *testing.T) {
	svc := NewService("unit-secret", time.Hour)

	tok, err := svc.Generate(42, "ana@example.com", "candidate")
	assert.NoError(t, err)
	assert.NotEmpty(t, tok)

	claims, err := svc.Parse(tok)
	assert.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "ana@example.com", claims.Email)
	assert.Equal(t, "candidate", claims.Role)
}

func TestParseRejectsWrongSecret(t *testing.T) {
	tok, err := NewService("secret-a", time.Hour).Generate(1, "a@b.com", "recruiter")
	assert.NoError(t, err)

	_, err = NewService("secret-b", time.Hour).Parse(tok)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestParseRejectsExpired(t *testing.T) {
	svc := NewService("unit-secret", time.Minute)
	svc.now = func() time.Time { return time.Now().Add(-2 * time.Minute) }

	tok, err := svc.Generate(1, "a@b.com", "candidate")
	assert.NoError(t, err)

	_, err = svc.Parse(tok)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestParseRejectsGarbage(t *testing.T) {
	svc := NewService("unit-secret", time.Hour)

	_, err := svc.Parse("not-a-token")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}
