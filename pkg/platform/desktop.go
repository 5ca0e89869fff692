package platform

import "strings"

// Desktop identifies a Linux desktop environment, normalized to the lower
// case token used as a key into the stock file manager table.
type Desktop string

const (
	DesktopGnome         Desktop = "gnome"
	DesktopUnity         Desktop = "unity"
	DesktopCinnamon      Desktop = "cinnamon"
	DesktopKDE           Desktop = "kde"
	DesktopXFCE          Desktop = "xfce"
	DesktopMate          Desktop = "mate"
	DesktopLXDE          Desktop = "lxde"
	DesktopLXQt          Desktop = "lxqt"
	DesktopUbuntuGnome   Desktop = "ubuntugnome"
	DesktopPopGnome      Desktop = "popgnome"
	DesktopDeepin        Desktop = "deepin"
	DesktopZorin         Desktop = "zorin"
	DesktopUKUI          Desktop = "ukui"
	DesktopPantheon      Desktop = "pantheon"
	DesktopEnlightenment Desktop = "enlightenment"
	DesktopCutefish      Desktop = "cutefish"
	DesktopLumina        Desktop = "lumina"
	DesktopUnknown       Desktop = "unknown"
)

// knownDesktops are the single-token spellings accepted as-is.
var knownDesktops = map[Desktop]bool{
	DesktopGnome:         true,
	DesktopUnity:         true,
	DesktopCinnamon:      true,
	DesktopKDE:           true,
	DesktopXFCE:          true,
	DesktopMate:          true,
	DesktopLXDE:          true,
	DesktopLXQt:          true,
	DesktopUbuntuGnome:   true,
	DesktopPopGnome:      true,
	DesktopDeepin:        true,
	DesktopZorin:         true,
	DesktopUKUI:          true,
	DesktopPantheon:      true,
	DesktopEnlightenment: true,
	DesktopCutefish:      true,
	DesktopLumina:        true,
}

// ParseDesktop normalizes an XDG_CURRENT_DESKTOP value to a Desktop id.
// The variable is a colon-separated list and several distributions ship
// compound spellings; the historical Unity spelling "unity:unity7:ubuntu"
// (in any token order) must resolve to Unity. Unrecognized values yield
// DesktopUnknown, never an error.
func ParseDesktop(value string) Desktop {
	value = strings.ToLower(strings.TrimSpace(value))
	if value == "" {
		return DesktopUnknown
	}

	tokens := strings.Split(value, ":")
	for _, tok := range tokens {
		if tok == "unity" {
			return DesktopUnity
		}
	}

	switch value {
	case "x-cinnamon":
		return DesktopCinnamon
	case "ubuntu:gnome":
		return DesktopUbuntuGnome
	case "pop:gnome":
		return DesktopPopGnome
	case "gnome-classic:gnome", "budgie:gnome":
		return DesktopGnome
	case "zorin:gnome":
		return DesktopZorin
	}

	if knownDesktops[Desktop(value)] {
		return Desktop(value)
	}
	return DesktopUnknown
}
