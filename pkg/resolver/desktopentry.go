package resolver

import (
	"bufio"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"

	"github.com/arthur-debert/showinfm/pkg/errors"
	"github.com/arthur-debert/showinfm/pkg/filemanager"
)

// queryDefaultHandler asks xdg-mime for the .desktop file registered for
// directories.
func queryDefaultHandler() (string, error) {
	out, err := exec.Command("xdg-mime", "query", "default", "inode/directory").Output()
	if err != nil {
		return "", err
	}
	name := strings.TrimSpace(string(out))
	name = strings.TrimSuffix(name, ";")
	if name == "" {
		return "", errors.New(errors.ErrResolution, "xdg-mime returned no default handler for inode/directory")
	}
	return name, nil
}

// locateDesktopFile searches the applications subdirectory of every XDG data
// dir for the named desktop entry.
func locateDesktopFile(name string) (string, error) {
	dirs := append([]string{xdg.DataHome}, xdg.DataDirs...)
	for _, dir := range dirs {
		path := filepath.Join(dir, "applications", name)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}
	return "", errors.Newf(errors.ErrNotFound, "desktop entry %q not found in XDG data dirs", name)
}

// parseDesktopEntryExec extracts the executable name from the Exec= line of
// a .desktop file. Field codes such as %U and %f are placeholders, not
// literal arguments, and everything after the executable token is dropped.
func parseDesktopEntryExec(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrResolution, "could not open desktop entry %q", path)
	}
	defer func() { _ = f.Close() }()

	inDesktopEntry := false
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		switch {
		case strings.HasPrefix(line, "["):
			inDesktopEntry = line == "[Desktop Entry]"
		case inDesktopEntry && strings.HasPrefix(line, "Exec="):
			return execNameFromExecLine(strings.TrimPrefix(line, "Exec=")), nil
		}
	}
	if err := scanner.Err(); err != nil {
		return "", errors.Wrapf(err, errors.ErrResolution, "could not read desktop entry %q", path)
	}
	return "", errors.Newf(errors.ErrResolution, "desktop entry %q has no Exec line", path)
}

// execNameFromExecLine reduces an Exec value to a bare executable name:
// first token, path stripped, quotes stripped.
func execNameFromExecLine(value string) string {
	fields := strings.Fields(value)
	if len(fields) == 0 {
		return ""
	}
	name := filemanager.Basename(fields[0])
	name = strings.ReplaceAll(name, `"`, "")
	name = strings.ReplaceAll(name, "'", "")
	return name
}
