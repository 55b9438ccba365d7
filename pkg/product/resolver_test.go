package product

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cerrors "github.com/NVIDIA/version-bypass/pkg/errors"
	"github.com/NVIDIA/version-bypass/pkg/settings"
)

type fakeFS map[string]bool

func (f fakeFS) exists(p string) bool { return f[p] }

func envOf(kv map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := kv[k]
		return v, ok
	}
}

func homeOf(dir string) func() (string, error) {
	return func() (string, error) { return dir, nil }
}

func TestResolveWindows(t *testing.T) {
	base := filepath.Join("C:", "Users", "me", "AppData", "Local")
	want := filepath.Join(base, "Programs", "Cursor", "resources", "app", "product.json")

	r := NewResolver(
		WithPlatform(PlatformWindows),
		WithEnvLookup(envOf(map[string]string{"LOCALAPPDATA": base})),
		WithExists(fakeFS{want: true}.exists),
	)

	got, err := r.Resolve()
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestResolveWindowsOverride(t *testing.T) {
	dir := filepath.Join("D:", "Cursor", "resources", "app")
	want := filepath.Join(dir, "product.json")

	r := NewResolver(
		WithPlatform(PlatformWindows),
		WithEnvLookup(envOf(map[string]string{"LOCALAPPDATA": "C:/x"})),
		WithSettings(settings.Static{
			settings.SectionWindowsPaths: {settings.KeyCursorPath: dir},
		}),
		WithExists(fakeFS{want: true}.exists),
	)

	got, err := r.Resolve()
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestResolveWindowsMissingEnv(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"unset", map[string]string{}},
		{"empty", map[string]string{"LOCALAPPDATA": ""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewResolver(
				WithPlatform(PlatformWindows),
				WithEnvLookup(envOf(tt.env)),
				// an override does not excuse the missing variable
				WithSettings(settings.Static{
					settings.SectionWindowsPaths: {settings.KeyCursorPath: "D:/Cursor"},
				}),
				WithExists(func(string) bool { return true }),
			)

			_, err := r.Resolve()
			require.Error(t, err)
			assert.Equal(t, cerrors.ErrCodeEnvVarMissing, cerrors.CodeOf(err))
		})
	}
}

func TestResolveMacDefault(t *testing.T) {
	r := NewResolver(
		WithPlatform(PlatformMacOS),
		WithExists(fakeFS{macDefaultPath: true}.exists),
	)

	got, err := r.Resolve()
	require.NoError(t, err)
	assert.Equal(t, macDefaultPath, got)
}

func TestResolveMacOverrideOnDisk(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.json")
	require.NoError(t, os.WriteFile(path, []byte(`{}`), 0o600))

	r := NewResolver(
		WithPlatform(PlatformMacOS),
		WithSettings(settings.Static{
			settings.SectionMacPaths: {settings.KeyProductJSONPath: path},
		}),
	)

	got, err := r.Resolve()
	require.NoError(t, err)
	assert.Equal(t, path, got)
}

func TestResolveMacOverrideMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent", "product.json")

	r := NewResolver(
		WithPlatform(PlatformMacOS),
		WithSettings(settings.Static{
			settings.SectionMacPaths: {settings.KeyProductJSONPath: path},
		}),
	)

	_, err := r.Resolve()
	require.Error(t, err)
	assert.Equal(t, cerrors.ErrCodeFileNotFound, cerrors.CodeOf(err))
	assert.Equal(t, path, cerrors.ContextOf(err)["path"])
}

func TestResolveLinuxOrder(t *testing.T) {
	r := NewResolver(
		WithPlatform(PlatformLinux),
		WithHomeDir(homeOf("/home/me")),
		WithExists(fakeFS{
			linuxPaths[1]: true,
			linuxPaths[2]: true,
		}.exists),
	)

	got, err := r.Resolve()
	require.NoError(t, err)
	assert.Equal(t, linuxPaths[1], got)
}

func TestResolveLinuxAppImage(t *testing.T) {
	extracted := filepath.Join("/home/me", linuxAppImagePath)

	r := NewResolver(
		WithPlatform(PlatformLinux),
		WithHomeDir(homeOf("/home/me")),
		WithExists(fakeFS{extracted: true}.exists),
	)

	got, err := r.Resolve()
	require.NoError(t, err)
	assert.Equal(t, extracted, got)

	candidates, err := r.Candidates()
	require.NoError(t, err)
	assert.Equal(t, append(append([]string{}, linuxPaths...), extracted), candidates)
}

func TestResolveLinuxAppImageOnDisk(t *testing.T) {
	home := t.TempDir()
	extracted := filepath.Join(home, linuxAppImagePath)
	require.NoError(t, os.MkdirAll(filepath.Dir(extracted), 0o755))
	require.NoError(t, os.WriteFile(extracted, []byte(`{"version":"1.0.0"}`), 0o600))

	r := NewResolver(
		WithPlatform(PlatformLinux),
		WithHomeDir(homeOf(home)),
		WithExists(func(p string) bool {
			// keep host install locations out of the picture
			for _, lp := range linuxPaths {
				if p == lp {
					return false
				}
			}
			return pathExists(p)
		}),
	)

	got, err := r.Resolve()
	require.NoError(t, err)
	assert.Equal(t, extracted, got)
}

func TestResolveLinuxNoneFound(t *testing.T) {
	r := NewResolver(
		WithPlatform(PlatformLinux),
		WithHomeDir(func() (string, error) { return "", errors.New("no home") }),
		WithExists(fakeFS{}.exists),
	)

	_, err := r.Resolve()
	require.Error(t, err)
	assert.Equal(t, cerrors.ErrCodeFileNotFound, cerrors.CodeOf(err))

	candidates, err := r.Candidates()
	require.NoError(t, err)
	assert.Equal(t, linuxPaths, candidates)
}

func TestResolveUnsupported(t *testing.T) {
	r := NewResolver(WithPlatform(Platform("plan9")))

	_, err := r.Resolve()
	require.Error(t, err)
	assert.Equal(t, cerrors.ErrCodeOSNotSupported, cerrors.CodeOf(err))
	assert.Equal(t, "plan9", cerrors.ContextOf(err)["system"])
	assert.Contains(t, err.Error(), "plan9")

	_, err = r.Candidates()
	assert.Equal(t, cerrors.ErrCodeOSNotSupported, cerrors.CodeOf(err))
}

func TestFinalExistenceCheck(t *testing.T) {
	// The windows branch never checks existence itself.
	r := NewResolver(
		WithPlatform(PlatformWindows),
		WithEnvLookup(envOf(map[string]string{"LOCALAPPDATA": "C:/nowhere"})),
		WithExists(fakeFS{}.exists),
	)

	_, err := r.Resolve()
	require.Error(t, err)
	assert.Equal(t, cerrors.ErrCodeFileNotFound, cerrors.CodeOf(err))
	assert.NotEmpty(t, cerrors.ContextOf(err)["path"])
}

func TestPlatform(t *testing.T) {
	assert.True(t, PlatformWindows.IsSupported())
	assert.True(t, PlatformMacOS.IsSupported())
	assert.True(t, PlatformLinux.IsSupported())
	assert.False(t, Platform("freebsd").IsSupported())
	assert.Len(t, SupportedPlatforms(), 3)
	assert.Equal(t, CurrentPlatform(), NewResolver().Platform())
}
