package resolver

import (
	"os/exec"

	"github.com/arthur-debert/showinfm/pkg/errors"
	"github.com/arthur-debert/showinfm/pkg/filemanager"
	"github.com/arthur-debert/showinfm/pkg/logging"
	"github.com/arthur-debert/showinfm/pkg/platform"
)

// stockLinuxFileManager maps a desktop id to the file manager the desktop
// ships with.
var stockLinuxFileManager = map[platform.Desktop]string{
	platform.DesktopGnome:         "nautilus",
	platform.DesktopKDE:           "dolphin",
	platform.DesktopCinnamon:      "nemo",
	platform.DesktopMate:          "caja",
	platform.DesktopXFCE:          "thunar",
	platform.DesktopLXDE:          "pcmanfm",
	platform.DesktopLXQt:          "pcmanfm-qt",
	platform.DesktopDeepin:        "dde-file-manager",
	platform.DesktopPantheon:      "io.elementary.files",
	platform.DesktopUKUI:          "peony",
	platform.DesktopEnlightenment: "pcmanfm",
	platform.DesktopCutefish:      "cutefish-filemanager",
	platform.DesktopLumina:        "lumina-fm",
}

// desktopFamily folds Gnome derivatives onto gnome before the stock lookup.
var desktopFamily = map[platform.Desktop]platform.Desktop{
	platform.DesktopUbuntuGnome: platform.DesktopGnome,
	platform.DesktopPopGnome:    platform.DesktopGnome,
	platform.DesktopZorin:       platform.DesktopGnome,
	platform.DesktopUnity:       platform.DesktopGnome,
}

// Resolver determines which file manager to use. The function fields are
// seams for tests; zero values are filled in by New.
type Resolver struct {
	// LookPath reports whether an executable is reachable on PATH.
	LookPath func(name string) (string, error)

	// QueryDefaultHandler returns the .desktop file registered for the
	// inode/directory MIME type.
	QueryDefaultHandler func() (string, error)

	// LocateDesktopFile finds the named .desktop file in the XDG data dirs.
	LocateDesktopFile func(name string) (string, error)

	// Known reports registry membership for an executable name.
	Known func(name string) bool
}

// New returns a Resolver wired to the real system.
func New() *Resolver {
	return &Resolver{
		LookPath:            exec.LookPath,
		QueryDefaultHandler: queryDefaultHandler,
		LocateDesktopFile:   locateDesktopFile,
		Known:               filemanager.Known,
	}
}

// Stock returns the stock file manager for the platform, or empty when no
// desktop-specific default exists (unknown Linux desktop).
func (r *Resolver) Stock(p platform.Platform) string {
	switch p.OS {
	case platform.Windows:
		return "explorer.exe"
	case platform.MacOS:
		return "open"
	case platform.WSL:
		// A Linux desktop running inside WSL keeps its own stock manager;
		// otherwise everything is shown through the Windows side.
		if fm := r.stockLinux(p.Desktop); fm != "" {
			return fm
		}
		return "explorer.exe"
	default:
		return r.stockLinux(p.Desktop)
	}
}

func (r *Resolver) stockLinux(desktop platform.Desktop) string {
	if family, ok := desktopFamily[desktop]; ok {
		desktop = family
	}
	return stockLinuxFileManager[desktop]
}

// User returns the file manager the user configured as the default handler
// for directories. On Windows and macOS the stock manager is the user
// manager. All recoverable failures collapse to an error the caller treats
// as "no preference found".
func (r *Resolver) User(p platform.Platform) (string, error) {
	switch p.OS {
	case platform.Windows, platform.MacOS:
		return r.Stock(p), nil
	}

	desktopFile, err := r.QueryDefaultHandler()
	if err != nil {
		return "", errors.Wrap(err, errors.ErrResolution, "could not query default directory handler")
	}

	path, err := r.LocateDesktopFile(desktopFile)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrResolution, "could not locate desktop entry %q", desktopFile)
	}

	execName, err := parseDesktopEntryExec(path)
	if err != nil {
		return "", err
	}
	return execName, nil
}

// Valid applies the trust policy: the user preference is used only when its
// executable is present in the capability registry, because desktop MIME
// databases routinely point at programs that are not file managers. It falls
// back to the stock manager, and returns empty when nothing resolves. When
// forceStock is set the user preference is never consulted.
func (r *Resolver) Valid(p platform.Platform, forceStock bool) string {
	logger := logging.GetLogger("resolver")

	fm := ""
	if !forceStock {
		user, err := r.User(p)
		if err != nil {
			logger.Debug().Err(err).Msg("No user file manager preference")
		} else if user != "" && r.Known(user) {
			fm = user
		} else if user != "" {
			logger.Debug().Str("fileManager", user).Msg("User preference not in capability registry, rejecting")
		}
	}

	if fm == "" {
		fm = r.Stock(p)
	}
	if fm == "" {
		return ""
	}

	if _, err := r.LookPath(fm); err != nil {
		logger.Debug().Str("fileManager", fm).Msg("File manager not on PATH")
		// The user preference was chosen but is missing; the stock manager
		// may still be present.
		if stock := r.Stock(p); stock != "" && stock != fm {
			if _, err := r.LookPath(stock); err == nil {
				return stock
			}
		}
		return ""
	}
	return fm
}
