package resolver

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/showinfm/pkg/filemanager"
	"github.com/arthur-debert/showinfm/pkg/platform"
)

// fakeResolver returns a Resolver whose seams report: every executable on
// PATH, the given user preference, registry membership via the real table.
func fakeResolver(userDesktopFile string, execLine string, t *testing.T) *Resolver {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, userDesktopFile)
	content := fmt.Sprintf("[Desktop Entry]\nName=Test\nExec=%s\nType=Application\n", execLine)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	return &Resolver{
		LookPath:            func(name string) (string, error) { return "/usr/bin/" + name, nil },
		QueryDefaultHandler: func() (string, error) { return userDesktopFile, nil },
		LocateDesktopFile:   func(name string) (string, error) { return path, nil },
		Known:               filemanager.Known,
	}
}

func TestStock(t *testing.T) {
	r := New()

	tests := []struct {
		name string
		p    platform.Platform
		want string
	}{
		{"windows", platform.Platform{OS: platform.Windows}, "explorer.exe"},
		{"macos", platform.Platform{OS: platform.MacOS}, "open"},
		{"gnome", platform.Platform{OS: platform.Linux, Desktop: platform.DesktopGnome}, "nautilus"},
		{"kde", platform.Platform{OS: platform.Linux, Desktop: platform.DesktopKDE}, "dolphin"},
		{"cinnamon", platform.Platform{OS: platform.Linux, Desktop: platform.DesktopCinnamon}, "nemo"},
		{"mate", platform.Platform{OS: platform.Linux, Desktop: platform.DesktopMate}, "caja"},
		{"xfce", platform.Platform{OS: platform.Linux, Desktop: platform.DesktopXFCE}, "thunar"},
		{"lxqt", platform.Platform{OS: platform.Linux, Desktop: platform.DesktopLXQt}, "pcmanfm-qt"},
		{"pantheon", platform.Platform{OS: platform.Linux, Desktop: platform.DesktopPantheon}, "io.elementary.files"},
		{"unity folds to gnome", platform.Platform{OS: platform.Linux, Desktop: platform.DesktopUnity}, "nautilus"},
		{"ubuntugnome folds to gnome", platform.Platform{OS: platform.Linux, Desktop: platform.DesktopUbuntuGnome}, "nautilus"},
		{"popgnome folds to gnome", platform.Platform{OS: platform.Linux, Desktop: platform.DesktopPopGnome}, "nautilus"},
		{"zorin folds to gnome", platform.Platform{OS: platform.Linux, Desktop: platform.DesktopZorin}, "nautilus"},
		{"unknown desktop", platform.Platform{OS: platform.Linux, Desktop: platform.DesktopUnknown}, ""},
		{"wsl without desktop", platform.Platform{OS: platform.WSL, Desktop: platform.DesktopUnknown}, "explorer.exe"},
		{"wsl with desktop", platform.Platform{OS: platform.WSL, Desktop: platform.DesktopKDE}, "dolphin"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.Stock(tt.p))
		})
	}
}

func TestStockUnityCompoundDesktop(t *testing.T) {
	// End to end: the compound XDG_CURRENT_DESKTOP Unity spelling resolves
	// to the Gnome stock manager.
	r := New()
	p := platform.Platform{OS: platform.Linux, Desktop: platform.ParseDesktop("Unity:Unity7:ubuntu")}
	assert.Equal(t, "nautilus", r.Stock(p))
}

func TestUser(t *testing.T) {
	linux := platform.Platform{OS: platform.Linux, Desktop: platform.DesktopGnome}

	t.Run("parses exec line with placeholders", func(t *testing.T) {
		r := fakeResolver("org.gnome.Nautilus.desktop", "nautilus --new-window %U", t)
		fm, err := r.User(linux)
		require.NoError(t, err)
		assert.Equal(t, "nautilus", fm)
	})

	t.Run("strips path from exec", func(t *testing.T) {
		r := fakeResolver("dolphin.desktop", "/usr/bin/dolphin %u", t)
		fm, err := r.User(linux)
		require.NoError(t, err)
		assert.Equal(t, "dolphin", fm)
	})

	t.Run("query failure is recoverable", func(t *testing.T) {
		r := fakeResolver("x.desktop", "nautilus", t)
		r.QueryDefaultHandler = func() (string, error) { return "", fmt.Errorf("xdg-mime: not found") }
		_, err := r.User(linux)
		assert.Error(t, err)
	})

	t.Run("windows and macos report stock", func(t *testing.T) {
		r := New()
		fm, err := r.User(platform.Platform{OS: platform.Windows})
		require.NoError(t, err)
		assert.Equal(t, "explorer.exe", fm)

		fm, err = r.User(platform.Platform{OS: platform.MacOS})
		require.NoError(t, err)
		assert.Equal(t, "open", fm)
	})
}

func TestValid(t *testing.T) {
	gnome := platform.Platform{OS: platform.Linux, Desktop: platform.DesktopGnome}

	t.Run("registry-known user preference wins", func(t *testing.T) {
		r := fakeResolver("dolphin.desktop", "dolphin %u", t)
		assert.Equal(t, "dolphin", r.Valid(gnome, false))
	})

	t.Run("unknown user preference rejected in favor of stock", func(t *testing.T) {
		// A misconfigured MIME database pointing at a text editor must not
		// be trusted.
		r := fakeResolver("gedit.desktop", "gedit %U", t)
		assert.Equal(t, "nautilus", r.Valid(gnome, false))
	})

	t.Run("force stock bypasses user preference", func(t *testing.T) {
		r := fakeResolver("dolphin.desktop", "dolphin %u", t)
		assert.Equal(t, "nautilus", r.Valid(gnome, true))
	})

	t.Run("nothing resolvable yields empty", func(t *testing.T) {
		r := fakeResolver("gedit.desktop", "gedit %U", t)
		unknown := platform.Platform{OS: platform.Linux, Desktop: platform.DesktopUnknown}
		assert.Equal(t, "", r.Valid(unknown, false))
	})

	t.Run("missing executable falls back to stock", func(t *testing.T) {
		r := fakeResolver("dolphin.desktop", "dolphin %u", t)
		r.LookPath = func(name string) (string, error) {
			if name == "dolphin" {
				return "", fmt.Errorf("not found")
			}
			return "/usr/bin/" + name, nil
		}
		assert.Equal(t, "nautilus", r.Valid(gnome, false))
	})

	t.Run("valid never returns a non-registry user preference", func(t *testing.T) {
		r := fakeResolver("weird.desktop", "my-appimage %U", t)
		fm := r.Valid(gnome, false)
		if fm != "" {
			assert.True(t, filemanager.Known(fm))
		}
	})
}

func TestParseDesktopEntryExec(t *testing.T) {
	dir := t.TempDir()

	t.Run("reads only the Desktop Entry group", func(t *testing.T) {
		path := filepath.Join(dir, "a.desktop")
		content := "[Desktop Action new-window]\nExec=wrong --flag\n\n[Desktop Entry]\nExec=nautilus %U\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))

		name, err := parseDesktopEntryExec(path)
		require.NoError(t, err)
		assert.Equal(t, "nautilus", name)
	})

	t.Run("missing exec line", func(t *testing.T) {
		path := filepath.Join(dir, "b.desktop")
		require.NoError(t, os.WriteFile(path, []byte("[Desktop Entry]\nName=x\n"), 0644))

		_, err := parseDesktopEntryExec(path)
		assert.Error(t, err)
	})

	t.Run("quoted executable", func(t *testing.T) {
		path := filepath.Join(dir, "c.desktop")
		require.NoError(t, os.WriteFile(path, []byte("[Desktop Entry]\nExec=\"pcmanfm\" %f\n"), 0644))

		name, err := parseDesktopEntryExec(path)
		require.NoError(t, err)
		assert.Equal(t, "pcmanfm", name)
	})
}

func TestExecNameFromExecLine(t *testing.T) {
	assert.Equal(t, "nautilus", execNameFromExecLine("nautilus --new-window %U"))
	assert.Equal(t, "thunar", execNameFromExecLine("/usr/bin/thunar %f"))
	assert.Equal(t, "", execNameFromExecLine(""))
}
