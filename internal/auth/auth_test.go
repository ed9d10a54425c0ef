package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndVerify(t *testing.T) {
	m := NewManager("test-secret", "admin", "admin", time.Hour)

	token, err := m.Issue("admin")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := m.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Username)
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	issuer := NewManager("secret-a", "admin", "admin", time.Hour)
	verifier := NewManager("secret-b", "admin", "admin", time.Hour)

	token, err := issuer.Issue("admin")
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.Error(t, err)
}

func TestVerifyRejectsExpired(t *testing.T) {
	m := NewManager("test-secret", "admin", "admin", -time.Minute)

	token, err := m.Issue("admin")
	require.NoError(t, err)

	_, err = m.Verify(token)
	assert.Error(t, err)
}

func TestVerifyRejectsGarbage(t *testing.T) {
	m := NewManager("test-secret", "admin", "admin", time.Hour)
	_, err := m.Verify("not-a-token")
	assert.Error(t, err)
}

func TestEmptySecretGeneratesRandomKey(t *testing.T) {
	a := NewManager("", "admin", "admin", time.Hour)
	b := NewManager("", "admin", "admin", time.Hour)

	token, err := a.Issue("admin")
	require.NoError(t, err)

	_, err = a.Verify(token)
	assert.NoError(t, err)

	// A second manager has a different random key.
	_, err = b.Verify(token)
	assert.Error(t, err)
}

func TestCheckCredentials(t *testing.T) {
	m := NewManager("s", "admin", "hunter2", time.Hour)

	assert.True(t, m.CheckCredentials("admin", "hunter2"))
	assert.False(t, m.CheckCredentials("admin", "wrong"))
	assert.False(t, m.CheckCredentials("root", "hunter2"))
	assert.False(t, m.CheckCredentials("", ""))
}
