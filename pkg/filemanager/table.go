package filemanager

import (
	"strings"

	"github.com/arthur-debert/showinfm/pkg/registry"
)

// capabilities is the process-wide capability registry. It is populated once
// in init and never mutated afterwards.
var capabilities registry.Registry[Capability]

func init() {
	capabilities = registry.New[Capability]()
	for _, c := range capabilityTable() {
		registry.MustRegister(capabilities, c.Identifier, c)
	}
}

// capabilityTable returns every file manager this package knows about.
func capabilityTable() []Capability {
	return []Capability{
		// Windows
		{
			Identifier:        "explorer.exe",
			Select:            SelectAlways,
			MultiItem:         SingleWindowPerItem,
			AcceptsURI:        true,
			AcceptsPath:       true,
			SelectFlag:        "/select,",
			Join:              JoinCommaArg,
			NativeMultiSelect: true,
		},

		// macOS
		{
			Identifier:  "open",
			Select:      SelectAlways,
			MultiItem:   SingleWindowPerItem,
			AcceptsURI:  true,
			AcceptsPath: true,
			SelectFlag:  "--reveal",
			Join:        JoinSpaceArgs,
		},

		// Gnome family
		{
			Identifier:  "nautilus",
			Select:      SelectAlways,
			MultiItem:   MultiItemOpensWindows,
			AcceptsURI:  true,
			AcceptsPath: true,
			SelectFlag:  "--select",
			Join:        JoinSpaceArgs,
		},
		{
			Identifier:  "nemo",
			Select:      SelectAlways,
			MultiItem:   MultiItemOpensWindows,
			AcceptsURI:  true,
			AcceptsPath: true,
			Join:        JoinSpaceArgs,
		},
		{
			// elementary OS Files. Selects items passed as bare arguments.
			Identifier:  "io.elementary.files",
			Select:      SelectAlways,
			MultiItem:   MultiItemOpensWindows,
			AcceptsURI:  true,
			AcceptsPath: true,
			Join:        JoinSpaceArgs,
		},
		{
			// Caja gained --select in 1.26. There is no runtime version
			// signal worth trusting, so the flag is assumed to work.
			Identifier:  "caja",
			Select:      SelectVersionGated,
			MultiItem:   MultiItemOpensWindows,
			AcceptsURI:  true,
			AcceptsPath: true,
			SelectFlag:  "--select",
			Join:        JoinSpaceArgs,
		},

		// KDE
		{
			Identifier:  "dolphin",
			Select:      SelectAlways,
			MultiItem:   MultiItemOneWindow,
			AcceptsURI:  true,
			AcceptsPath: true,
			SelectFlag:  "--select",
			Join:        JoinSpaceArgs,
		},
		{
			Identifier:  "krusader",
			Select:      SelectNever,
			MultiItem:   MultiItemOneWindow,
			AcceptsURI:  true,
			AcceptsPath: true,
			Join:        JoinSpaceArgs,
		},
		{
			Identifier:  "index",
			Select:      SelectNever,
			MultiItem:   MultiItemOneWindow,
			AcceptsURI:  true,
			AcceptsPath: true,
			Join:        JoinSpaceArgs,
		},

		// XFCE and the lightweight desktops
		{
			Identifier:  "thunar",
			Select:      SelectNever,
			MultiItem:   MultiItemOpensWindows,
			AcceptsURI:  true,
			AcceptsPath: true,
			Join:        JoinSpaceArgs,
		},
		{
			Identifier:  "pcmanfm",
			Select:      SelectNever,
			MultiItem:   SingleWindowPerItem,
			AcceptsURI:  true,
			AcceptsPath: true,
			Join:        JoinSpaceArgs,
		},
		{
			Identifier:  "pcmanfm-qt",
			Select:      SelectNever,
			MultiItem:   MultiItemOpensWindows,
			AcceptsURI:  true,
			AcceptsPath: true,
			Join:        JoinSpaceArgs,
		},
		{
			Identifier:  "spacefm",
			Select:      SelectNever,
			MultiItem:   MultiItemOpensWindows,
			AcceptsURI:  true,
			AcceptsPath: true,
			Join:        JoinSpaceArgs,
		},

		// Deepin, UKUI, Cutefish, Lumina
		{
			Identifier:  "dde-file-manager",
			Select:      SelectAlways,
			MultiItem:   MultiItemOneWindow,
			AcceptsURI:  true,
			AcceptsPath: true,
			SelectFlag:  "--show-item",
			Join:        JoinSpaceArgs,
		},
		{
			Identifier:  "peony",
			Select:      SelectAlways,
			MultiItem:   MultiItemOneWindow,
			AcceptsURI:  true,
			AcceptsPath: true,
			SelectFlag:  "--show-items",
			Join:        JoinSpaceArgs,
		},
		{
			Identifier:  "cutefish-filemanager",
			Select:      SelectNever,
			MultiItem:   SingleWindowPerItem,
			AcceptsURI:  true,
			AcceptsPath: true,
			Join:        JoinSpaceArgs,
		},
		{
			Identifier:  "lumina-fm",
			Select:      SelectNever,
			MultiItem:   MultiItemOpensWindows,
			AcceptsURI:  false,
			AcceptsPath: true,
			Join:        JoinSpaceArgs,
		},

		// Dual-pane managers: at most one item per pane
		{
			Identifier:  "doublecmd",
			Select:      SelectAlways,
			MultiItem:   MultiItemOneWindow,
			AcceptsURI:  true,
			AcceptsPath: true,
			Join:        JoinLeftRight,
			MaxItems:    2,
		},
		{
			Identifier:  "doublecmd.exe",
			Select:      SelectAlways,
			MultiItem:   MultiItemOneWindow,
			AcceptsURI:  true,
			AcceptsPath: true,
			Join:        JoinLeftRight,
			MaxItems:    2,
		},
		{
			Identifier:  "fman",
			Select:      SelectAlways,
			MultiItem:   MultiItemOneWindow,
			AcceptsURI:  false,
			AcceptsPath: true,
			Join:        JoinLeftRight,
			MaxItems:    2,
		},
		{
			Identifier:  "fman.exe",
			Select:      SelectAlways,
			MultiItem:   MultiItemOneWindow,
			AcceptsURI:  false,
			AcceptsPath: true,
			Join:        JoinLeftRight,
			MaxItems:    2,
		},
	}
}

// Lookup retrieves the capability entry for an executable. The name is
// reduced to its basename first, so both "nautilus" and "/usr/bin/nautilus"
// resolve to the same entry. Lookup is case-sensitive. The second return
// value is false for unknown file managers; that is not an error, callers
// fall back to the generic invocation policy.
func Lookup(name string) (Capability, bool) {
	c, err := capabilities.Get(Basename(name))
	if err != nil {
		return Capability{}, false
	}
	return c, true
}

// Known reports whether the executable is in the capability registry.
func Known(name string) bool {
	return capabilities.Has(Basename(name))
}

// KnownFileManagers returns the identifiers of every registered file manager,
// sorted.
func KnownFileManagers() []string {
	return capabilities.List()
}

// Basename strips directory components from an executable reference,
// accepting both POSIX and Windows separators regardless of host platform.
func Basename(name string) string {
	if i := strings.LastIndexAny(name, `/\`); i >= 0 {
		return name[i+1:]
	}
	return name
}
