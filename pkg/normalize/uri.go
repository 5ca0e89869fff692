package normalize

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/arthur-debert/showinfm/pkg/errors"
)

// schemePattern matches strings that carry a URI scheme. Single letters are
// excluded so Windows drive references like C:\tmp are classified as paths.
// Desktops hand out non-standard schemes (gphoto2://, mtp://, smb://) which
// must be recognized and passed through untouched.
var schemePattern = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9+.-]+://`)

// IsURI reports whether the string is probably a URI rather than a path.
// Classification never fails; anything not scheme-like is a path.
func IsURI(s string) bool {
	if strings.HasPrefix(s, "file:/") {
		// file:/etc/fstab, a legal single-slash form
		return true
	}
	return schemePattern.MatchString(s)
}

// IsFileURI reports whether the string is a file scheme URI.
func IsFileURI(s string) bool {
	return strings.HasPrefix(s, "file:")
}

// PathToURI converts an absolute POSIX path to an RFC 3986 file URI with
// percent-encoding for reserved and non-ASCII characters.
func PathToURI(absPath string) string {
	u := url.URL{Scheme: "file", Path: absPath}
	return u.String()
}

// WindowsPathToURI converts a Windows-native path to the URI form Windows
// Explorer accepts: file:///c:/path/to/the%20file.txt for drive paths and
// file://host/share/... for UNC paths.
func WindowsPathToURI(winPath string) string {
	if strings.HasPrefix(winPath, `\\`) {
		trimmed := strings.ReplaceAll(winPath[2:], `\`, "/")
		host, rest, _ := strings.Cut(trimmed, "/")
		u := url.URL{Scheme: "file", Host: host, Path: "/" + rest}
		return u.String()
	}

	p := strings.ReplaceAll(winPath, `\`, "/")
	if len(p) >= 2 && isDriveLetter(p[0]) && p[1] == ':' {
		p = strings.ToLower(p[:1]) + p[1:]
	}
	u := url.URL{Scheme: "file", Path: "/" + p}
	return u.String()
}

// MountedDrivePathToURI converts a WSL /mnt/<drive> path to the Windows
// Explorer URI for the underlying drive. Explorer mishandles POSIX-style
// paths with spaces when invoked across the WSL boundary, so drive-backed
// paths are always handed over in URI form.
func MountedDrivePathToURI(linuxPath string) (string, error) {
	if !strings.HasPrefix(linuxPath, "/mnt/") || len(linuxPath) < 6 {
		return "", errors.Newf(errors.ErrBadURI, "path %q is not under a mounted Windows drive", linuxPath)
	}
	drive := linuxPath[5]
	if !isDriveLetter(drive) {
		return "", errors.Newf(errors.ErrBadURI, "path %q is not under a mounted Windows drive", linuxPath)
	}
	rest := linuxPath[6:]
	u := url.URL{Scheme: "file", Path: "/" + strings.ToLower(string(drive)) + ":" + rest}
	return u.String(), nil
}

// URIToPath converts a file URI back to a filesystem path, reversing the
// percent-encoding. Drive-letter and UNC URIs come back in Windows-native
// form, everything else POSIX.
func URIToPath(uri string) (string, error) {
	u, err := url.Parse(uri)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrBadURI, "could not parse URI %q", uri)
	}
	if u.Scheme != "file" {
		return "", errors.Newf(errors.ErrBadURI, "URI %q does not use the file scheme", uri)
	}

	p := u.Path
	if u.Host != "" && u.Host != "localhost" {
		// UNC share, including WSL bridged paths like //wsl.localhost/...
		return `\\` + u.Host + strings.ReplaceAll(p, "/", `\`), nil
	}

	if len(p) >= 3 && p[0] == '/' && isDriveLetter(p[1]) && p[2] == ':' {
		p = p[1:]
		p = strings.ToUpper(p[:1]) + p[1:]
		return strings.ReplaceAll(p, "/", `\`), nil
	}
	return p, nil
}

func isDriveLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
