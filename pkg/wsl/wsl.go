// Package wsl bridges paths and URIs across the WSL/Windows filesystem
// boundary. Paths under /mnt/<drive> live on the Windows side and are shown
// with Windows Explorer; paths native to the Linux instance are reachable
// from Windows through the wsl.localhost UNC share.
package wsl

import (
	"net/url"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/arthur-debert/showinfm/pkg/errors"
	"github.com/arthur-debert/showinfm/pkg/normalize"
)

// Seams for tests: wslpath invocation and filesystem stat.
var (
	runWslpath = func(arg, path string) (string, error) {
		out, err := exec.Command("wslpath", arg, path).Output()
		if err != nil {
			return "", err
		}
		return strings.TrimSpace(string(out)), nil
	}
	statPath = os.Stat
)

// ToLinuxPath translates a Windows path to its WSL equivalent using wslpath.
func ToLinuxPath(winPath string) (string, error) {
	return runWslpath("-u", winPath)
}

// ToWindowsPath translates a WSL path to its Windows equivalent using wslpath.
func ToWindowsPath(linuxPath string) (string, error) {
	return runWslpath("-w", linuxPath)
}

var drivePattern = regexp.MustCompile(`^[A-Za-z]:`)

// PathIsWindows reports whether a path or file URI refers to the Windows
// side of the bridged filesystem. Anything under /mnt is assumed to be a
// mounted Windows drive; file URIs count when they carry a drive letter or
// a non-localhost host (file://wsl.localhost/... UNC references included).
func PathIsWindows(pathOrURI string) bool {
	if strings.HasPrefix(pathOrURI, "file:") {
		parsed, err := url.Parse(pathOrURI)
		if err != nil {
			return false
		}
		return uriIsWindows(parsed)
	}
	if drivePattern.MatchString(pathOrURI) || strings.HasPrefix(pathOrURI, `\\`) {
		return true
	}
	return strings.HasPrefix(pathOrURI, "/mnt")
}

func uriIsWindows(parsed *url.URL) bool {
	if uriDrivePath(parsed.Path) {
		return true
	}
	return parsed.Host != "" && parsed.Host != "localhost"
}

// uriDrivePath matches the /c:/... form a drive letter takes inside a URI.
func uriDrivePath(path string) bool {
	return len(path) > 2 && path[0] == '/' && isAlpha(path[1]) && path[2] == ':'
}

// Result carries every form of one input needed to dispatch it to either a
// Windows or a Linux file manager.
type Result struct {
	// IsWinLocation: the item lives on a mounted Windows drive.
	IsWinLocation bool

	// WinURI is the Windows Explorer flavored URI, WinPath the Windows
	// native path. Both may be empty when not requested.
	WinURI  string
	WinPath string

	// LinuxPath is the POSIX path inside the WSL instance.
	LinuxPath string

	IsDir  bool
	Exists bool
}

// Transform triages one path or URI for use inside WSL: detects which side
// of the boundary it lives on, translates with wslpath, and produces the URI
// form Windows Explorer accepts. generateWinPath requests Windows forms even
// for Linux-native paths (needed when Explorer will display them).
func Transform(pathOrURI string, generateWinPath bool) (Result, error) {
	var res Result

	switch {
	case strings.HasPrefix(pathOrURI, "file:/"):
		if err := transformURI(pathOrURI, &res); err != nil {
			return res, err
		}
	default:
		if err := transformPath(pathOrURI, &res); err != nil {
			return res, err
		}
	}

	if res.LinuxPath == "" {
		return res, nil
	}

	info, err := statPath(res.LinuxPath)
	if err != nil {
		res.Exists = false
		return res, nil
	}
	res.Exists = true
	res.IsDir = info.IsDir()
	res.IsWinLocation = PathIsWindows(res.LinuxPath)

	if generateWinPath || res.IsWinLocation {
		if res.WinPath == "" {
			winPath, err := ToWindowsPath(res.LinuxPath)
			if err != nil {
				res.Exists = false
				return res, nil
			}
			res.WinPath = winPath
		}
		if res.WinURI == "" {
			if res.IsWinLocation {
				uri, err := normalize.MountedDrivePathToURI(res.LinuxPath)
				if err == nil {
					res.WinURI = uri
				}
			} else {
				res.WinURI = normalize.WindowsPathToURI(res.WinPath)
			}
		}
	}

	normalizeDirForms(&res)
	return res, nil
}

// transformURI handles file scheme inputs, which may be Windows flavored
// (file:///c:/..., file://host/...) or POSIX.
func transformURI(uri string, res *Result) error {
	parsed, err := url.Parse(uri)
	if err != nil {
		return errors.Wrapf(err, errors.ErrBadURI, "could not parse URI %q", uri)
	}
	path := parsed.Path
	if uriDrivePath(path) {
		path = path[1:]
	}

	if uriIsWindows(parsed) {
		res.WinURI = strings.ReplaceAll(uri, " ", "%20")
		res.WinPath = strings.ReplaceAll(path, "/", `\`)
		linuxPath, err := ToLinuxPath(path)
		if err != nil {
			res.Exists = false
			return nil
		}
		res.LinuxPath = linuxPath
	} else {
		res.LinuxPath = path
	}
	return nil
}

// transformPath handles bare path inputs: POSIX absolute, Windows drive or
// UNC, or relative.
func transformPath(path string, res *Result) error {
	if strings.HasPrefix(path, "/") && !strings.HasPrefix(path, "/mnt") {
		res.LinuxPath = path
		return nil
	}

	isUNC := strings.HasPrefix(path, `\\`)
	if drivePattern.MatchString(path) || isUNC {
		res.WinPath = path
		linuxPath, err := ToLinuxPath(path)
		if err != nil {
			res.Exists = false
			return nil
		}
		res.LinuxPath = linuxPath
		if isUNC {
			res.WinURI = normalize.WindowsPathToURI(path)
		} else if uri, err := normalize.MountedDrivePathToURI(linuxPath); err == nil {
			res.WinURI = uri
		}
		return nil
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return errors.Wrapf(err, errors.ErrNormalization, "could not resolve path %q", path)
	}
	res.LinuxPath = abs
	return nil
}

// normalizeDirForms strips trailing separators from directory paths and
// guarantees a trailing slash on directory URIs, which Explorer requires to
// open rather than select.
func normalizeDirForms(res *Result) {
	if !res.IsDir {
		return
	}
	if res.LinuxPath != "/" {
		res.LinuxPath = strings.TrimSuffix(res.LinuxPath, "/")
	}
	res.WinPath = strings.TrimSuffix(res.WinPath, `\`)
	if res.WinURI != "" && !strings.HasSuffix(res.WinURI, "/") {
		res.WinURI += "/"
	}
}

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
