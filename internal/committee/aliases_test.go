package committee

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/unicode/norm"
)

func TestResolve(t *testing.T) {
	a := New(nil)

	cases := []struct {
		name string
		raw  string
		want string
	}{
		{name: "renamed committee", raw: "문화유산위원회", want: "문화재위원회"},
		{name: "identity entry", raw: "문화재위원회", want: "문화재위원회"},
		{name: "unknown falls back", raw: "committeeA", want: "committeeA"},
		{name: "trimmed", raw: " 문화유산위원회 ", want: "문화재위원회"},
		{name: "decomposed hangul", raw: norm.NFD.String("문화유산위원회"), want: "문화재위원회"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, a.Resolve(tc.raw))
		})
	}
}

func TestLoadMergesOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "aliases.yaml")
	require.NoError(t, os.WriteFile(path, []byte("committeeB: committeeA\n자연문화재위원회: 자연유산위원회\n"), 0o644))

	a, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "committeeA", a.Resolve("committeeB"))
	assert.Equal(t, "자연유산위원회", a.Resolve("자연문화재위원회"))
	assert.Equal(t, "문화재위원회", a.Resolve("문화유산위원회"))
}

func TestLoadEmptyPathUsesDefaults(t *testing.T) {
	a, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, len(DefaultTable()), a.Len())
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("- not\n- a map\n"), 0o644))
	_, err = Load(path)
	require.Error(t, err)
}
