package platform

import (
	"os"
	"runtime"
	"strings"

	"github.com/arthur-debert/showinfm/pkg/logging"
)

// OS is the operating system family the process runs on. WSL is its own
// family: it is Linux with a bridged Windows filesystem, and file manager
// resolution treats it differently from native Linux.
type OS int

const (
	Linux OS = iota
	Windows
	MacOS
	WSL
)

func (o OS) String() string {
	switch o {
	case Linux:
		return "linux"
	case Windows:
		return "windows"
	case MacOS:
		return "macos"
	case WSL:
		return "wsl"
	}
	return "unknown"
}

// WSLVersion distinguishes WSL1 from WSL2. The two differ in how process
// launches cross the Windows boundary.
type WSLVersion int

const (
	NotWSL WSLVersion = iota
	WSL1
	WSL2
)

func (v WSLVersion) String() string {
	switch v {
	case WSL1:
		return "WSL1"
	case WSL2:
		return "WSL2"
	}
	return "none"
}

// Platform is the detected runtime platform. Desktop is only meaningful for
// Linux, WSLVersion and Distro only for WSL.
type Platform struct {
	OS         OS
	Desktop    Desktop
	WSLVersion WSLVersion
	Distro     string
}

// IsWSL reports whether the process runs inside WSL of either version.
func (p Platform) IsWSL() bool {
	return p.OS == WSL
}

// procVersionPath is a var so tests can point it at a fixture.
var procVersionPath = "/proc/version"

// Detect determines the running platform. Detection never fails: an
// unrecognizable Linux desktop yields DesktopUnknown and downstream code
// falls back to generic behavior.
func Detect() Platform {
	logger := logging.GetLogger("platform")

	switch runtime.GOOS {
	case "windows":
		return Platform{OS: Windows}
	case "darwin":
		return Platform{OS: MacOS}
	}

	desktop := ParseDesktop(os.Getenv("XDG_CURRENT_DESKTOP"))

	if v := wslVersion(); v != NotWSL {
		// WSL distros can run a Linux desktop too; keep it so resolution
		// can prefer that desktop's file manager over explorer.exe.
		p := Platform{OS: WSL, Desktop: desktop, WSLVersion: v, Distro: os.Getenv("WSL_DISTRO_NAME")}
		logger.Debug().Int("wslVersion", int(v)).Str("desktop", string(desktop)).Str("distro", p.Distro).Msg("Detected WSL")
		return p
	}

	logger.Debug().Str("desktop", string(desktop)).Msg("Detected Linux desktop")
	return Platform{OS: Linux, Desktop: desktop}
}

// wslVersion inspects the kernel release string. WSL kernels carry a
// "microsoft" marker; WSL2 additionally advertises itself by name.
func wslVersion() WSLVersion {
	data, err := os.ReadFile(procVersionPath)
	if err != nil {
		return NotWSL
	}
	return parseWSLVersion(string(data))
}

func parseWSLVersion(procVersion string) WSLVersion {
	lower := strings.ToLower(procVersion)
	if !strings.Contains(lower, "microsoft") {
		return NotWSL
	}
	if strings.Contains(procVersion, "WSL2") {
		return WSL2
	}
	return WSL1
}
