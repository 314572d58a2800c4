package cryptox_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/toolshed/handyman/pkg/cryptox"
)

func TestMain(m *testing.M) {
	// Point the pepper at a throwaway location so tests never touch a real
	// pepper file.
	dir, err := filepath.Abs("testdata_pepper")
	if err != nil {
		panic(err)
	}
	cryptox.SetPepperPath(filepath.Join(dir, "pepper"))
	m.Run()
}

func TestHashAndVerify(t *testing.T) {
	hash, err := cryptox.HashPassword("correct horse battery staple")
	require.NoError(t, err)
	require.Contains(t, hash, "$argon2id$v=19$")

	require.NoError(t, cryptox.VerifyPassword("correct horse battery staple", hash))
	require.ErrorIs(t, cryptox.VerifyPassword("wrong password", hash), cryptox.ErrPasswordMismatch)
}

func TestHashesAreSalted(t *testing.T) {
	a, err := cryptox.HashPassword("secret")
	require.NoError(t, err)
	b, err := cryptox.HashPassword("secret")
	require.NoError(t, err)

	require.NotEqual(t, a, b)
	require.NoError(t, cryptox.VerifyPassword("secret", a))
	require.NoError(t, cryptox.VerifyPassword("secret", b))
}

func TestVerifyRejectsMalformedHash(t *testing.T) {
	require.Error(t, cryptox.VerifyPassword("secret", "not-a-phc-string"))
	require.Error(t, cryptox.VerifyPassword("secret", "$bcrypt$v=19$m=1,t=1,p=1$abc$def"))
}

func TestGenerateEd25519Key(t *testing.T) {
	pemKey, err := cryptox.GenerateEd25519Key()
	require.NoError(t, err)
	require.Contains(t, string(pemKey), "PRIVATE KEY")
}
