package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MRxhaqq/Luxury-Hijabi/models"
)

var secret = []byte("test-secret")

// TestToken_Roundtrip verifies the session projection survives sign/verify.
func TestToken_Roundtrip(t *testing.T) {
	t.Parallel()

	session := models.Session{ID: "u1", Username: "amina", Email: "a@x.com"}
	token, err := IssueSessionToken(session, secret)
	require.NoError(t, err)

	got, err := ParseSessionToken(token, secret)
	require.NoError(t, err)
	assert.Equal(t, session, got)
}

// TestToken_WrongSecret verifies a signature mismatch reads as no session.
func TestToken_WrongSecret(t *testing.T) {
	t.Parallel()

	token, err := IssueSessionToken(models.Session{ID: "u1"}, secret)
	require.NoError(t, err)

	_, err = ParseSessionToken(token, []byte("other-secret"))
	assert.Error(t, err)
}

// TestToken_Garbage verifies arbitrary stored bytes fail to parse.
func TestToken_Garbage(t *testing.T) {
	t.Parallel()

	_, err := ParseSessionToken("not-a-token", secret)
	assert.Error(t, err)
}
