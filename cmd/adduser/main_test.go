package main

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aussiebroadwan/inversie/internal/inversie/domain"
	"github.com/aussiebroadwan/inversie/internal/inversie/store/drivers/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type paths struct {
	db     string
	pepper string
}

func newPaths(t *testing.T) paths {
	dir := t.TempDir()
	return paths{db: filepath.Join(dir, "inversie.db"), pepper: filepath.Join(dir, "pepper")}
}

func (p paths) args(extra ...string) []string {
	return append([]string{"-db", p.db, "-pepper", p.pepper}, extra...)
}

func TestRun_CreateClient(t *testing.T) {
	p := newPaths(t)
	stdout := new(bytes.Buffer)

	err := run(p.args("-email", "Jan@Test.nl", "-first", "Jan", "-last", "de Vries", "-pin", "1234"),
		new(bytes.Buffer), stdout, new(bytes.Buffer))
	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "User jan@test.nl (CLIENT) created")

	st, err := sqlite.NewStore(sqlite.DSN(p.db))
	require.NoError(t, err)
	defer st.Close()

	u, err := st.Users().GetUserByEmail(context.Background(), "jan@test.nl")
	require.NoError(t, err)
	assert.Equal(t, domain.UserTypeClient, u.Type)
	assert.NotEqual(t, "1234", u.PINHash)
}

func TestRun_PINFromStdin(t *testing.T) {
	p := newPaths(t)
	stdout := new(bytes.Buffer)

	err := run(p.args("-email", "piet@test.nl", "-first", "Piet", "-last", "Jansen"),
		strings.NewReader("5678\n"), stdout, new(bytes.Buffer))
	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "PIN: ")
	assert.Contains(t, stdout.String(), "created")
}

func TestRun_GuardianLink(t *testing.T) {
	p := newPaths(t)

	require.NoError(t, run(p.args("-email", "jan@test.nl", "-first", "Jan", "-last", "de Vries", "-pin", "1234"),
		new(bytes.Buffer), new(bytes.Buffer), new(bytes.Buffer)))

	stdout := new(bytes.Buffer)
	err := run(p.args("-email", "bewindvoerder@test.nl", "-first", "Sanne", "-last", "Bakker",
		"-type", "bewindvoerder", "-pin", "1234", "-guardian-of", "jan@test.nl"),
		new(bytes.Buffer), stdout, new(bytes.Buffer))
	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "Linked bewindvoerder@test.nl as bewindvoerder of jan@test.nl")

	st, err := sqlite.NewStore(sqlite.DSN(p.db))
	require.NoError(t, err)
	defer st.Close()

	ctx := context.Background()
	jan, err := st.Users().GetUserByEmail(ctx, "jan@test.nl")
	require.NoError(t, err)
	guardian, err := st.Users().GetUserByEmail(ctx, "bewindvoerder@test.nl")
	require.NoError(t, err)

	ok, err := st.Guardians().RelationExists(ctx, jan.ID, guardian.ID)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestRun_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"missing flags", []string{"-email", "a@test.nl"}, "missing required flags"},
		{"bad type", []string{"-email", "a@test.nl", "-first", "A", "-last", "B", "-type", "admin", "-pin", "1234"}, "unknown account type"},
		{"link from client", []string{"-email", "a@test.nl", "-first", "A", "-last", "B", "-pin", "1234", "-guardian-of", "x@test.nl"}, "requires -type bewindvoerder"},
		{"weak pin", []string{"-email", "a@test.nl", "-first", "A", "-last", "B", "-pin", "12"}, "pin must be 4 to 6 digits"},
		{"unknown client", []string{"-email", "g@test.nl", "-first", "G", "-last", "B", "-type", "bewindvoerder", "-pin", "1234", "-guardian-of", "nobody@test.nl"}, "failed to link"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newPaths(t)
			err := run(p.args(tt.args...), new(bytes.Buffer), new(bytes.Buffer), new(bytes.Buffer))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestRun_DuplicateEmail(t *testing.T) {
	p := newPaths(t)
	args := p.args("-email", "jan@test.nl", "-first", "Jan", "-last", "de Vries", "-pin", "1234")

	require.NoError(t, run(args, new(bytes.Buffer), new(bytes.Buffer), new(bytes.Buffer)))

	err := run(args, new(bytes.Buffer), new(bytes.Buffer), new(bytes.Buffer))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already registered")
}
