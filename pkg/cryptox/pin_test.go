package cryptox

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "cryptox")
	if err != nil {
		panic(err)
	}
	SetPepperPath(filepath.Join(dir, "pepper"))

	code := m.Run()
	_ = os.RemoveAll(dir)
	os.Exit(code)
}

func TestHashPIN_Format(t *testing.T) {
	hash, err := HashPIN("1234")
	require.NoError(t, err)

	parts := strings.Split(hash, "$")
	require.Len(t, parts, 6)
	require.Equal(t, "argon2id", parts[1])
	require.Equal(t, "v=19", parts[2])
	require.Equal(t, "m=19456,t=2,p=1", parts[3])
	require.NotContains(t, hash, "1234")
}

func TestHashPIN_UniqueSalts(t *testing.T) {
	a, err := HashPIN("1234")
	require.NoError(t, err)
	b, err := HashPIN("1234")
	require.NoError(t, err)

	require.NotEqual(t, a, b)
	require.NoError(t, VerifyPIN("1234", a))
	require.NoError(t, VerifyPIN("1234", b))
}

func TestVerifyPIN_Mismatch(t *testing.T) {
	hash, err := HashPIN("482913")
	require.NoError(t, err)

	for _, wrong := range []string{"482914", "48291", "", "4829130", " 482913"} {
		t.Run(wrong, func(t *testing.T) {
			require.ErrorIs(t, VerifyPIN(wrong, hash), ErrMismatch)
		})
	}
}

func TestVerifyPIN_MalformedHash(t *testing.T) {
	tests := []struct {
		name string
		hash string
	}{
		{"empty", ""},
		{"bcrypt", "$2a$10$abcdefghijklmnopqrstuv"},
		{"wrong algorithm", "$argon2i$v=19$m=19456,t=2,p=1$c2FsdA$aGFzaA"},
		{"wrong version", "$argon2id$v=18$m=19456,t=2,p=1$c2FsdA$aGFzaA"},
		{"bad params", "$argon2id$v=19$nonsense$c2FsdA$aGFzaA"},
		{"bad salt", "$argon2id$v=19$m=19456,t=2,p=1$!!!$aGFzaA"},
		{"bad key", "$argon2id$v=19$m=19456,t=2,p=1$c2FsdA$!!!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.ErrorIs(t, VerifyPIN("1234", tt.hash), ErrMalformedHash)
		})
	}
}

func TestPepperChangeInvalidatesHashes(t *testing.T) {
	hash, err := HashPIN("1234")
	require.NoError(t, err)

	prev := pepperFile
	SetPepperPath(filepath.Join(t.TempDir(), "other-pepper"))
	t.Cleanup(func() { SetPepperPath(prev) })

	require.ErrorIs(t, VerifyPIN("1234", hash), ErrMismatch)
}

func TestLoadPepper_PersistsAcrossReloads(t *testing.T) {
	prev := pepperFile
	path := filepath.Join(t.TempDir(), "nested", "pepper")
	SetPepperPath(path)
	t.Cleanup(func() { SetPepperPath(prev) })

	first, err := LoadPepper()
	require.NoError(t, err)

	SetPepperPath(path)
	second, err := LoadPepper()
	require.NoError(t, err)
	require.Equal(t, first, second)

	onDisk, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, first, string(onDisk))
}

func TestLoadPepper_EmptyFile(t *testing.T) {
	prev := pepperFile
	path := filepath.Join(t.TempDir(), "pepper")
	require.NoError(t, os.WriteFile(path, nil, 0600))
	SetPepperPath(path)
	t.Cleanup(func() { SetPepperPath(prev) })

	_, err := LoadPepper()
	require.Error(t, err)
}
