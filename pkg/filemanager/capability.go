package filemanager

// SelectSupport describes whether a file manager can select (highlight) items
// rather than opening them.
type SelectSupport int

const (
	// SelectNever means the file manager provides no selection mechanism.
	// Targets degrade to opening the containing folder.
	SelectNever SelectSupport = iota

	// SelectAlways means selection is supported by every deployed version.
	SelectAlways

	// SelectVersionGated means selection is only supported above a version
	// threshold that cannot be probed at runtime. Entries with this value are
	// treated as supported; the caveat is documented on the entry itself.
	SelectVersionGated
)

// Supported reports whether selection is assumed to work for this entry.
func (s SelectSupport) Supported() bool {
	return s != SelectNever
}

// MultiItemBehavior describes how a file manager handles more than one item
// in a single invocation.
type MultiItemBehavior int

const (
	// SingleWindowPerItem: the program accepts one item per invocation.
	// Groups with several members are split into several launches.
	SingleWindowPerItem MultiItemBehavior = iota

	// MultiItemOneWindow: several items in one invocation, one window.
	MultiItemOneWindow

	// MultiItemOpensWindows: several items in one invocation, but the
	// program opens one window per parent directory on its own.
	MultiItemOpensWindows
)

// JoinStyle describes how items are placed on the command line.
type JoinStyle int

const (
	// JoinSpaceArgs: items are passed as separate arguments.
	JoinSpaceArgs JoinStyle = iota

	// JoinCommaArg: Windows Explorer style, a single "/select,URI" argument
	// with no space after the comma. Exactly one item per argument.
	JoinCommaArg

	// JoinLeftRight: dual-pane managers, one item per pane.
	JoinLeftRight
)

// Capability is one row of the file manager capability matrix: what a known
// executable accepts on its command line and how it behaves when asked to
// select items.
type Capability struct {
	// Identifier is the canonical executable name, e.g. "nautilus",
	// "explorer.exe". Unique key into the registry.
	Identifier string

	// Select describes selection support.
	Select SelectSupport

	// MultiItem describes multi-item handling.
	MultiItem MultiItemBehavior

	// AcceptsURI and AcceptsPath describe argument forms the program
	// understands. At least one is always true for registry entries.
	AcceptsURI  bool
	AcceptsPath bool

	// SelectFlag is the flag inserted before items when selection is
	// requested, e.g. "--select". Empty for managers that select items
	// passed as bare arguments.
	SelectFlag string

	// Join is the command line join style.
	Join JoinStyle

	// MaxItems caps items per invocation. Zero means no cap.
	MaxItems int

	// NativeMultiSelect marks the program as reachable through the Windows
	// shell API that selects several items in one window, bypassing the
	// command line entirely.
	NativeMultiSelect bool
}
