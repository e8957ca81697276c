package serverutils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

const testSecret = "test-secret"

func TestTokenRoundtrip(t *testing.T) {
	token, err := IssueToken(testSecret, "user@example.com", TokenTypeAccess, time.Minute)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	subject, err := VerifyToken(testSecret, token, TokenTypeAccess)
	assert.NoError(t, err)
	assert.Equal(t, "user@example.com", subject)
}

func TestVerifyTokenRejectsWrongType(t *testing.T) {
	refresh, err := IssueToken(testSecret, "user@example.com", TokenTypeRefresh, time.Minute)
	assert.NoError(t, err)

	_, err = VerifyToken(testSecret, refresh, TokenTypeAccess)
	assert.Error(t, err)

	access, err := IssueToken(testSecret, "user@example.com", TokenTypeAccess, time.Minute)
	assert.NoError(t, err)

	_, err = VerifyToken(testSecret, access, TokenTypeRefresh)
	assert.Error(t, err)
}

func TestVerifyTokenRejectsExpired(t *testing.T) {
	token, err := IssueToken(testSecret, "user@example.com", TokenTypeAccess, -time.Minute)
	assert.NoError(t, err)

	_, err = VerifyToken(testSecret, token, TokenTypeAccess)
	assert.Error(t, err)
}

func TestVerifyTokenRejectsWrongSecret(t *testing.T) {
	token, err := IssueToken(testSecret, "user@example.com", TokenTypeAccess, time.Minute)
	assert.NoError(t, err)

	_, err = VerifyToken("other-secret", token, TokenTypeAccess)
	assert.Error(t, err)
}

func TestVerifyTokenRejectsGarbage(t *testing.T) {
	_, err := VerifyToken(testSecret, "not.a.token", TokenTypeAccess)
	assert.Error(t, err)
}
