// Package synthesize turns invocation groups into concrete command lines,
// or into a native selection descriptor on platforms that offer one. All
// per-file-manager behavior differences are driven by the capability table;
// there are no per-program code paths here.
package synthesize

import (
	"github.com/arthur-debert/showinfm/pkg/filemanager"
	"github.com/arthur-debert/showinfm/pkg/normalize"
)

// Kind discriminates the two ways of asking the OS to show a selection.
type Kind int

const (
	// Command is an ordinary argv launch.
	Command Kind = iota

	// NativeSelect is the Windows shell call that opens one Explorer window
	// with several items selected, bypassing the command line.
	NativeSelect
)

// Invocation is one process launch or native call to perform.
type Invocation struct {
	Kind       Kind
	Executable string
	Args       []string

	// Parent and Items are only set for NativeSelect.
	Parent string
	Items  []string
}

// Options carries the platform-dependent knobs of synthesis.
type Options struct {
	// PreferURI selects the URI argument form when the file manager accepts
	// it. URIs are the more robust form everywhere except Windows and WSL,
	// where native quoted paths behave better.
	PreferURI bool

	// NativeMultiSelect: the running platform offers the native multi-item
	// selection call (native Windows only, not WSL).
	NativeMultiSelect bool
}

// Synthesize produces the invocations for one group. known is false when the
// file manager has no capability entry, in which case the generic policy
// applies: every target as a plain argument, no select flag, no splitting.
func Synthesize(fm string, cap filemanager.Capability, known bool, group normalize.Group, opts Options) []Invocation {
	if !known {
		return []Invocation{{Kind: Command, Executable: fm, Args: genericArgs(group, opts)}}
	}

	if group.OpenDirectory {
		return []Invocation{{Kind: Command, Executable: fm, Args: []string{directoryArg(group, cap, opts)}}}
	}

	if !cap.Select.Supported() {
		// Selection is impossible: open the containing folder instead.
		// Never fall through to passing the file, which would open it.
		return []Invocation{{Kind: Command, Executable: fm, Args: []string{directoryArg(group, cap, opts)}}}
	}

	items := selectableArgs(group, cap, opts)
	if len(items) == 0 {
		// Every member was a degraded missing path; show the parent.
		return []Invocation{{Kind: Command, Executable: fm, Args: []string{directoryArg(group, cap, opts)}}}
	}

	switch cap.Join {
	case filemanager.JoinCommaArg:
		return synthesizeCommaJoin(fm, cap, group, items, opts)
	case filemanager.JoinLeftRight:
		return synthesizeChunked(fm, nil, items, cap.MaxItems)
	default:
		var flag []string
		if cap.SelectFlag != "" {
			flag = []string{cap.SelectFlag}
		}
		max := cap.MaxItems
		if cap.MultiItem == filemanager.SingleWindowPerItem {
			max = 1
		}
		return synthesizeChunked(fm, flag, items, max)
	}
}

// synthesizeCommaJoin emits Explorer style invocations: one
// "/select,<URI>" argument per command, or a single native descriptor when
// the platform supports selecting all items in one window.
func synthesizeCommaJoin(fm string, cap filemanager.Capability, group normalize.Group, items []string, opts Options) []Invocation {
	if opts.NativeMultiSelect && cap.NativeMultiSelect && len(items) > 1 {
		paths := make([]string, 0, len(items))
		for _, t := range group.Targets {
			if t.Exists && !t.PassThrough {
				paths = append(paths, t.AbsPath)
			}
		}
		return []Invocation{{
			Kind:       NativeSelect,
			Executable: fm,
			Parent:     group.Parent,
			Items:      paths,
		}}
	}

	invocations := make([]Invocation, 0, len(items))
	for _, item := range items {
		// No space after the comma; the whole thing is one argument.
		invocations = append(invocations, Invocation{
			Kind:       Command,
			Executable: fm,
			Args:       []string{cap.SelectFlag + item},
		})
	}
	return invocations
}

// synthesizeChunked splits items into ceil(len/max) invocations preserving
// order. max <= 0 means no cap.
func synthesizeChunked(fm string, flag []string, items []string, max int) []Invocation {
	if max <= 0 {
		max = len(items)
	}
	var invocations []Invocation
	for start := 0; start < len(items); start += max {
		end := start + max
		if end > len(items) {
			end = len(items)
		}
		args := append(append([]string{}, flag...), items[start:end]...)
		invocations = append(invocations, Invocation{Kind: Command, Executable: fm, Args: args})
	}
	return invocations
}

// selectableArgs returns the argument form of every target that can appear
// in a selection, deduplicated. Missing paths are dropped (their parent is
// already the group key). Directory targets handed to a flagless manager
// degrade to their parent, since such managers cannot distinguish selecting
// a directory from opening it.
func selectableArgs(group normalize.Group, cap filemanager.Capability, opts Options) []string {
	var args []string
	seen := make(map[string]bool)
	add := func(a string) {
		if a != "" && !seen[a] {
			seen[a] = true
			args = append(args, a)
		}
	}

	for _, t := range group.Targets {
		if t.PassThrough {
			add(t.URI)
			continue
		}
		if !t.Exists {
			continue
		}
		if t.IsDir && cap.SelectFlag == "" && cap.Join == filemanager.JoinSpaceArgs {
			add(argForPath(group.Parent, normalize.PathToURI(group.Parent), t.PathOnly, cap, opts))
			continue
		}
		add(argForPath(t.AbsPath, t.URI, t.PathOnly, cap, opts))
	}
	return args
}

// directoryArg is the single argument for open-the-folder invocations.
func directoryArg(group normalize.Group, cap filemanager.Capability, opts Options) string {
	return argForPath(group.Parent, group.ParentURI(), groupPathOnly(group), cap, opts)
}

// argForPath picks between path and URI forms per the capability entry.
// pathOnly wins over the platform URI preference: the caller supplied a path
// with conversion disabled, so the path form goes out unchanged.
func argForPath(path, uri string, pathOnly bool, cap filemanager.Capability, opts Options) string {
	if pathOnly && cap.AcceptsPath {
		return path
	}
	if opts.PreferURI && cap.AcceptsURI && uri != "" {
		return uri
	}
	if cap.AcceptsPath {
		return path
	}
	return uri
}

// groupPathOnly reports whether any member forbids the URI form.
func groupPathOnly(group normalize.Group) bool {
	for _, t := range group.Targets {
		if t.PathOnly {
			return true
		}
	}
	return false
}

// genericArgs is the unknown-file-manager policy: one invocation per group,
// every target as a plain argument.
func genericArgs(group normalize.Group, opts Options) []string {
	if group.OpenDirectory {
		if opts.PreferURI && !groupPathOnly(group) {
			return []string{group.ParentURI()}
		}
		return []string{group.Parent}
	}

	var args []string
	for _, t := range group.Targets {
		switch {
		case t.PassThrough:
			args = append(args, t.URI)
		case !t.PathOnly && opts.PreferURI && t.URI != "":
			args = append(args, t.URI)
		default:
			args = append(args, t.AbsPath)
		}
	}
	return args
}
