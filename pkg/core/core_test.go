package core

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/showinfm/pkg/errors"
	"github.com/arthur-debert/showinfm/pkg/filemanager"
	"github.com/arthur-debert/showinfm/pkg/normalize"
	"github.com/arthur-debert/showinfm/pkg/platform"
	"github.com/arthur-debert/showinfm/pkg/resolver"
	"github.com/arthur-debert/showinfm/pkg/synthesize"
	"github.com/arthur-debert/showinfm/pkg/testutil"
	"github.com/arthur-debert/showinfm/pkg/wsl"
)

type fakeLauncher struct {
	invs []synthesize.Invocation
	fail bool
}

func (f *fakeLauncher) Run(inv synthesize.Invocation) error {
	f.invs = append(f.invs, inv)
	if f.fail {
		return errors.Newf(errors.ErrLaunch, "failed to launch %s", inv.Executable)
	}
	return nil
}

// gnomeResolver resolves to nautilus: no user preference, everything on PATH.
func gnomeResolver() *resolver.Resolver {
	return &resolver.Resolver{
		LookPath:            func(name string) (string, error) { return "/usr/bin/" + name, nil },
		QueryDefaultHandler: func() (string, error) { return "", os.ErrNotExist },
		LocateDesktopFile:   func(string) (string, error) { return "", os.ErrNotExist },
		Known:               filemanager.Known,
	}
}

func linuxEngine() (*Engine, *fakeLauncher) {
	l := &fakeLauncher{}
	return &Engine{
		Platform: platform.Platform{OS: platform.Linux, Desktop: platform.DesktopGnome},
		Resolver: gnomeResolver(),
		Launcher: l,
	}, l
}

func TestShowNoInputsLaunchesBareCommand(t *testing.T) {
	e, l := linuxEngine()

	err := e.Show(nil, DefaultOptions())
	require.NoError(t, err)

	require.Len(t, l.invs, 1)
	assert.Equal(t, "nautilus", l.invs[0].Executable)
	assert.Empty(t, l.invs[0].Args)
}

func TestShowSelectsFileWithResolvedManager(t *testing.T) {
	e, l := linuxEngine()
	file := testutil.CreateFile(t, t.TempDir(), "report.txt", "")

	err := e.Show([]string{file}, DefaultOptions())
	require.NoError(t, err)

	require.Len(t, l.invs, 1)
	assert.Equal(t, "nautilus", l.invs[0].Executable)
	require.Len(t, l.invs[0].Args, 2)
	assert.Equal(t, "--select", l.invs[0].Args[0])
	assert.Equal(t, normalize.PathToURI(file), l.invs[0].Args[1])
}

func TestShowWithoutConversionKeepsPathForm(t *testing.T) {
	e, l := linuxEngine()
	file := testutil.CreateFile(t, t.TempDir(), "report.txt", "")

	opts := DefaultOptions()
	opts.AllowConversion = false
	err := e.Show([]string{file}, opts)
	require.NoError(t, err)

	// The caller handed over a path with conversion disabled, so the
	// launch must carry the bare path, not its file URI.
	require.Len(t, l.invs, 1)
	assert.Equal(t, []string{"--select", file}, l.invs[0].Args)
}

func TestShowExplicitManagerOverridesResolution(t *testing.T) {
	e, l := linuxEngine()
	e.Resolver = nil // must not be consulted
	file := testutil.CreateFile(t, t.TempDir(), "a.txt", "")

	opts := DefaultOptions()
	opts.FileManager = "dolphin"
	err := e.Show([]string{file}, opts)
	require.NoError(t, err)

	require.Len(t, l.invs, 1)
	assert.Equal(t, "dolphin", l.invs[0].Executable)
}

func TestShowUnknownManagerGetsGenericArguments(t *testing.T) {
	e, l := linuxEngine()
	file := testutil.CreateFile(t, t.TempDir(), "a.txt", "")

	opts := DefaultOptions()
	opts.FileManager = "mystery-fm"
	err := e.Show([]string{file}, opts)
	require.NoError(t, err)

	require.Len(t, l.invs, 1)
	assert.Equal(t, "mystery-fm", l.invs[0].Executable)
	assert.Equal(t, []string{normalize.PathToURI(file)}, l.invs[0].Args)
}

func TestShowNoFileManagerResolves(t *testing.T) {
	l := &fakeLauncher{}
	e := &Engine{
		Platform: platform.Platform{OS: platform.Linux, Desktop: platform.DesktopUnknown},
		Resolver: gnomeResolver(),
		Launcher: l,
	}

	err := e.Show([]string{"/tmp"}, DefaultOptions())
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrResolution))
	assert.Empty(t, l.invs)
}

func TestShowPartialFailureStillSucceeds(t *testing.T) {
	e, l := linuxEngine()
	dir := t.TempDir()
	good := testutil.CreateFile(t, dir, "ok.txt", "")
	bad := filepath.Join(dir, "gone", "missing.txt")

	err := e.Show([]string{bad, good}, DefaultOptions())
	require.NoError(t, err)

	require.Len(t, l.invs, 1)
	assert.Contains(t, l.invs[0].Args[1], "ok.txt")
}

func TestShowAllItemsUnusable(t *testing.T) {
	e, l := linuxEngine()
	bad := filepath.Join(t.TempDir(), "gone", "missing.txt")

	err := e.Show([]string{bad}, DefaultOptions())
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrNormalization))
	assert.Empty(t, l.invs)
}

func TestShowAllLaunchesFail(t *testing.T) {
	e, l := linuxEngine()
	l.fail = true
	file := testutil.CreateFile(t, t.TempDir(), "a.txt", "")

	err := e.Show([]string{file}, DefaultOptions())
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrLaunch))
}

func TestShowEmptyStringsAreSkipped(t *testing.T) {
	e, l := linuxEngine()

	err := e.Show([]string{"", "  "}, DefaultOptions())
	require.NoError(t, err)

	// Nothing usable was passed, so this is the bare launch.
	require.Len(t, l.invs, 1)
	assert.Empty(t, l.invs[0].Args)
}

// wslEngine fakes the wslpath bridge: /mnt/<drive> paths are Windows-side,
// everything else is Linux-side and exists.
func wslEngine(desktop platform.Desktop) (*Engine, *fakeLauncher) {
	l := &fakeLauncher{}
	e := &Engine{
		Platform: platform.Platform{OS: platform.WSL, Desktop: desktop, WSLVersion: platform.WSL2},
		Resolver: gnomeResolver(),
		Launcher: l,
		Transform: func(pathOrURI string, generateWinPath bool) (wsl.Result, error) {
			res := wsl.Result{Exists: true, IsDir: strings.HasSuffix(pathOrURI, "/")}
			p := strings.TrimSuffix(pathOrURI, "/")
			if strings.HasPrefix(p, "/mnt/") {
				res.IsWinLocation = true
				res.LinuxPath = p
				drive := p[len("/mnt/")]
				rest := p[len("/mnt/c"):]
				res.WinURI = "file:///" + string(drive) + ":" + rest
				if res.IsDir {
					res.WinURI += "/"
				}
			} else {
				res.LinuxPath = p
			}
			if generateWinPath && res.WinURI == "" {
				res.WinURI = "file://wsl.localhost/Ubuntu" + p
			}
			return res, nil
		},
	}
	return e, l
}

func TestShowWSLRoutesWindowsItemsToExplorer(t *testing.T) {
	e, l := wslEngine(platform.DesktopGnome)
	notes := testutil.CreateFile(t, t.TempDir(), "notes.txt", "")

	err := e.Show([]string{"/mnt/c/data/report.pdf", notes}, DefaultOptions())
	require.NoError(t, err)

	require.Len(t, l.invs, 2)
	assert.Equal(t, "explorer.exe", l.invs[0].Executable)
	assert.Equal(t, []string{"/select,file:///c:/data/report.pdf"}, l.invs[0].Args)

	// The Linux-side item goes to the desktop's own file manager.
	assert.Equal(t, "nautilus", l.invs[1].Executable)
	assert.Equal(t, []string{"--select", normalize.PathToURI(notes)}, l.invs[1].Args)
}

func TestShowWSLExplicitExplorerTakesEverything(t *testing.T) {
	e, l := wslEngine(platform.DesktopGnome)
	notes := testutil.CreateFile(t, t.TempDir(), "notes.txt", "")

	opts := DefaultOptions()
	opts.FileManager = "explorer.exe"
	err := e.Show([]string{notes}, opts)
	require.NoError(t, err)

	require.Len(t, l.invs, 1)
	assert.Equal(t, "explorer.exe", l.invs[0].Executable)
	assert.Equal(t, []string{"/select,file://wsl.localhost/Ubuntu" + notes}, l.invs[0].Args)
}

func TestShowWSLDirectoryOpensWithoutSelect(t *testing.T) {
	e, l := wslEngine(platform.DesktopGnome)

	err := e.Show([]string{"/mnt/c/data/"}, DefaultOptions())
	require.NoError(t, err)

	require.Len(t, l.invs, 1)
	assert.Equal(t, "explorer.exe", l.invs[0].Executable)
	assert.Equal(t, []string{"file:///c:/data/"}, l.invs[0].Args)
}

func TestShowWSLExplicitLinuxManagerKeepsWindowsItems(t *testing.T) {
	// An explicitly chosen Linux file manager handles Windows-side items
	// itself; only an unspecified manager reroutes them to Explorer.
	e, l := wslEngine(platform.DesktopGnome)
	mounted := testutil.CreateFile(t, t.TempDir(), "report.pdf", "")
	e.Transform = func(pathOrURI string, generateWinPath bool) (wsl.Result, error) {
		return wsl.Result{Exists: true, IsWinLocation: true, LinuxPath: mounted,
			WinURI: "file:///c:/data/report.pdf"}, nil
	}

	opts := DefaultOptions()
	opts.FileManager = "nautilus"
	err := e.Show([]string{"/mnt/c/data/report.pdf"}, opts)
	require.NoError(t, err)

	require.Len(t, l.invs, 1)
	assert.Equal(t, "nautilus", l.invs[0].Executable)
	assert.Equal(t, []string{"--select", normalize.PathToURI(mounted)}, l.invs[0].Args)
}

func TestShowWSLMissingPathIsItemError(t *testing.T) {
	e, l := wslEngine(platform.DesktopGnome)
	e.Transform = func(pathOrURI string, generateWinPath bool) (wsl.Result, error) {
		return wsl.Result{Exists: false}, nil
	}

	err := e.Show([]string{"/mnt/c/gone.txt"}, DefaultOptions())
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrNormalization))
	assert.Empty(t, l.invs)
}

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()
	assert.True(t, opts.OpenNotSelectDirectory)
	assert.True(t, opts.AllowConversion)
	assert.False(t, opts.Verbose)
	assert.Empty(t, opts.FileManager)
}
