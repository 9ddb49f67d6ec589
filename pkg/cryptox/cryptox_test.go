package cryptox_test

import (
	"path/filepath"
	"testing"

	"github.com/sitewatch/sitewatch/pkg/cryptox"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	// Use a throwaway pepper so tests never touch a real one.
	dir, err := filepath.Abs("testdata")
	if err != nil {
		panic(err)
	}
	cryptox.SetPepperPath(filepath.Join(dir, "pepper"))
	m.Run()
}

func TestGenerateTokenUniqueness(t *testing.T) {
	seen := make(map[string]struct{})
	for range 100 {
		tok, err := cryptox.GenerateToken(cryptox.TokenSize256)
		require.NoError(t, err)
		require.Len(t, tok, 43) // 32 bytes base64url, no padding
		_, dup := seen[tok]
		require.False(t, dup)
		seen[tok] = struct{}{}
	}
}

func TestGenerateTokenRejectsZeroSize(t *testing.T) {
	_, err := cryptox.GenerateToken(0)
	require.Error(t, err)
}

func TestFingerprintIsDeterministic(t *testing.T) {
	require.Equal(t, cryptox.FingerprintToken("abc"), cryptox.FingerprintToken("abc"))
	require.NotEqual(t, cryptox.FingerprintToken("abc"), cryptox.FingerprintToken("abd"))
}

func TestPasswordRoundTrip(t *testing.T) {
	hash, err := cryptox.HashPassword("S3cure-Pass!")
	require.NoError(t, err)
	require.Contains(t, hash, "$argon2id$v=19$")

	require.NoError(t, cryptox.VerifyPassword("S3cure-Pass!", hash))
	require.ErrorIs(t, cryptox.VerifyPassword("wrong-pass", hash), cryptox.ErrPasswordMismatch)
}

func TestVerifyPasswordRejectsMalformedHash(t *testing.T) {
	require.Error(t, cryptox.VerifyPassword("anything", "not-a-phc-hash"))
	require.Error(t, cryptox.VerifyPassword("anything", "$bcrypt$v=19$m=1,t=1,p=1$salt$hash"))
}
