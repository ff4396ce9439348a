package xdg

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hay-kot/randwall/internal/core/wallpaper"
)

const sampleUserDirs = `# This file is written by xdg-user-dirs-update
# If you want to change or add directories, just edit the line you're
# interested in. All local changes will be retained on the next run.
# Format is XDG_xxx_DIR="$HOME/yyy", where yyy is a shell-escaped
# homedir-relative path, or XDG_xxx_DIR="/yyy", where /yyy is an
# absolute path. No other format is supported.
#
XDG_DESKTOP_DIR="$HOME/Desktop"
XDG_DOWNLOAD_DIR="$HOME/Downloads"
XDG_PICTURES_DIR="$HOME/Pictures"
XDG_VIDEOS_DIR="$HOME/Videos"
`

func envMap(m map[string]string) LookupEnv {
	return func(key string) (string, bool) {
		v, ok := m[key]
		return v, ok
	}
}

func writeUserDirs(t *testing.T, dir, content string) string {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0o755))
	path := filepath.Join(dir, userDirsFile)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestParseValue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		data   string
		want   string
		wantOK bool
	}{
		{name: "standard file", data: sampleUserDirs, want: "$HOME/Pictures", wantOK: true},
		{name: "unquoted", data: "XDG_PICTURES_DIR=/srv/pics\n", want: "/srv/pics", wantOK: true},
		{name: "spaces around", data: "  XDG_PICTURES_DIR = \"/srv/my pics\"  \n", want: "/srv/my pics", wantOK: true},
		{name: "single quotes", data: "XDG_PICTURES_DIR='/srv/pics'", want: "/srv/pics", wantOK: true},
		{name: "value containing equals", data: "XDG_PICTURES_DIR=\"/srv/a=b\"", want: "/srv/a=b", wantOK: true},
		{name: "commented out", data: "# XDG_PICTURES_DIR=\"/old\"\n", wantOK: false},
		{name: "missing key", data: "XDG_MUSIC_DIR=\"$HOME/Music\"\n", wantOK: false},
		{name: "empty lines only", data: "\n\n\n", wantOK: false},
		{name: "empty", data: "", wantOK: false},
		{name: "key without assignment", data: "XDG_PICTURES_DIR\n", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, ok := ParseValue(tt.data, PicturesKey)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPicturesDir_FromEnvironment(t *testing.T) {
	home := t.TempDir()
	pics := filepath.Join(home, "Pictures")
	require.NoError(t, os.Mkdir(pics, 0o755))

	r := NewResolver(envMap(map[string]string{
		"HOME":      home,
		PicturesKey: "$HOME/Pictures",
	}))

	got, err := r.PicturesDir()
	require.NoError(t, err)
	assert.Equal(t, pics, got)
}

func TestPicturesDir_EnvironmentNotADirectoryFallsBack(t *testing.T) {
	home := t.TempDir()
	writeUserDirs(t, filepath.Join(home, ".config"), "XDG_PICTURES_DIR=\"$HOME/Wallpapers\"\n")

	r := NewResolver(envMap(map[string]string{
		"HOME":      home,
		PicturesKey: filepath.Join(home, "missing"),
	}))

	got, err := r.PicturesDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "Wallpapers"), got)
}

func TestPicturesDir_PrefersConfigHome(t *testing.T) {
	home := t.TempDir()
	configHome := t.TempDir()
	writeUserDirs(t, filepath.Join(home, ".config"), "XDG_PICTURES_DIR=\"/from/home\"\n")
	writeUserDirs(t, configHome, "XDG_PICTURES_DIR=\"/from/config-home\"\n")

	r := NewResolver(envMap(map[string]string{
		"HOME":            home,
		"XDG_CONFIG_HOME": configHome,
	}))

	got, err := r.PicturesDir()
	require.NoError(t, err)
	assert.Equal(t, "/from/config-home", got)
}

func TestPicturesDir_ConfigHomeWithoutFile(t *testing.T) {
	home := t.TempDir()
	writeUserDirs(t, filepath.Join(home, ".config"), sampleUserDirs)

	r := NewResolver(envMap(map[string]string{
		"HOME":            home,
		"XDG_CONFIG_HOME": t.TempDir(),
	}))

	got, err := r.PicturesDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "Pictures"), got)
}

func TestPicturesDir_Errors(t *testing.T) {
	t.Run("no config file", func(t *testing.T) {
		r := NewResolver(envMap(map[string]string{"HOME": t.TempDir()}))

		_, err := r.PicturesDir()
		require.ErrorIs(t, err, wallpaper.ErrConfigDiscovery)
		assert.Contains(t, err.Error(), "doesn't exist")
	})

	t.Run("no home", func(t *testing.T) {
		r := NewResolver(envMap(map[string]string{}))

		_, err := r.PicturesDir()
		require.ErrorIs(t, err, wallpaper.ErrConfigDiscovery)
	})

	t.Run("key missing", func(t *testing.T) {
		home := t.TempDir()
		writeUserDirs(t, filepath.Join(home, ".config"), "XDG_MUSIC_DIR=\"$HOME/Music\"\n")
		r := NewResolver(envMap(map[string]string{"HOME": home}))

		_, err := r.PicturesDir()
		require.ErrorIs(t, err, wallpaper.ErrConfigDiscovery)
		assert.Contains(t, err.Error(), PicturesKey)
	})

	t.Run("empty value", func(t *testing.T) {
		home := t.TempDir()
		writeUserDirs(t, filepath.Join(home, ".config"), "XDG_PICTURES_DIR=\"\"\n")
		r := NewResolver(envMap(map[string]string{"HOME": home}))

		_, err := r.PicturesDir()
		require.ErrorIs(t, err, wallpaper.ErrConfigDiscovery)
	})
}

func TestUserDirsCandidates(t *testing.T) {
	r := NewResolver(envMap(map[string]string{
		"HOME":            "/home/u",
		"XDG_CONFIG_HOME": "/cfg",
	}))

	assert.Equal(t, []string{"/cfg/user-dirs.dirs", "/home/u/.config/user-dirs.dirs"}, r.UserDirsCandidates())
}
