package normalize

import (
	"os"
	"path/filepath"

	"github.com/arthur-debert/showinfm/pkg/errors"
	"github.com/arthur-debert/showinfm/pkg/logging"
)

// Target is one caller-supplied item after normalization. PassThrough
// targets carry a non-file URI that cannot be resolved against the
// filesystem and is forwarded untouched.
type Target struct {
	// Input is the string as the caller supplied it.
	Input string

	// AbsPath is the absolute platform-native path. Empty for PassThrough.
	AbsPath string

	// URI is the RFC 3986 file URI. For PassThrough targets it is the
	// original non-file URI.
	URI string

	// IsDir and Exists come from a filesystem stat. A missing path is not
	// an error; selection degrades to opening the parent.
	IsDir  bool
	Exists bool

	// PassThrough marks a non-file-scheme URI forwarded as-is.
	PassThrough bool

	// PathOnly marks an input that arrived in path form while conversion
	// was disabled. Launch arguments for it keep the path form even when
	// the file manager would otherwise be handed a URI.
	PathOnly bool
}

// Group is a set of targets destined for one file manager invocation. Most
// file managers can only display a selection within a single parent
// directory, so targets are grouped by parent.
type Group struct {
	// Parent is the absolute path of the shared parent directory. When
	// OpenDirectory is set it is the directory itself. Empty for the
	// pass-through group.
	Parent string

	// OpenDirectory means the group opens Parent rather than selecting
	// within it.
	OpenDirectory bool

	Targets []Target
}

// ParentURI returns the group parent as a file URI.
func (g Group) ParentURI() string {
	return PathToURI(g.Parent)
}

// Options controls normalization.
type Options struct {
	// OpenNotSelectDirectory opens directory targets rather than selecting
	// them within their parent. This is the default behavior.
	OpenNotSelectDirectory bool

	// AllowConversion permits rewriting between path and URI forms. When
	// false the caller asserts inputs are already in the form the file
	// manager needs, and URIs are forwarded byte for byte.
	AllowConversion bool
}

// Normalize converts caller inputs to invocation groups. Items that cannot
// be resolved produce per-item errors; the remaining groups still proceed.
// Groups are emitted in encounter order of their first member.
func Normalize(inputs []string, opts Options) ([]Group, []error) {
	logger := logging.GetLogger("normalize")

	var groups []Group
	index := make(map[string]int)
	var itemErrs []error

	appendTo := func(key string, openDir bool, tgt Target) {
		if i, ok := index[key]; ok {
			groups[i].Targets = append(groups[i].Targets, tgt)
			return
		}
		index[key] = len(groups)
		groups = append(groups, Group{Parent: tgt.parentOr(key), OpenDirectory: openDir, Targets: []Target{tgt}})
	}

	for _, input := range inputs {
		if input == "" {
			continue
		}

		if IsURI(input) && !IsFileURI(input) {
			// Non-standard scheme (gphoto2://, mtp://, ...): forward as-is.
			appendTo("\x00passthrough", false, Target{Input: input, URI: input, PassThrough: true})
			continue
		}

		tgt, err := resolveTarget(input, opts)
		if err != nil {
			logger.Debug().Err(err).Str("input", input).Msg("Could not normalize input")
			itemErrs = append(itemErrs, err)
			continue
		}

		switch {
		case tgt.IsDir && opts.OpenNotSelectDirectory:
			appendTo("\x00open:"+tgt.AbsPath, true, tgt)
		default:
			parent := filepath.Dir(tgt.AbsPath)
			appendTo(parent, false, tgt)
		}
	}

	return groups, itemErrs
}

// parentOr computes the group parent for a freshly created group.
func (t Target) parentOr(key string) string {
	if t.PassThrough {
		return ""
	}
	if t.IsDir && len(key) > 0 && key[0] == '\x00' {
		return t.AbsPath
	}
	return filepath.Dir(t.AbsPath)
}

// resolveTarget turns one input into a Target with both path and URI forms.
func resolveTarget(input string, opts Options) (Target, error) {
	var absPath string
	var uri string
	var pathOnly bool

	if IsFileURI(input) {
		p, err := URIToPath(input)
		if err != nil {
			return Target{}, err
		}
		absPath = p
		if opts.AllowConversion {
			uri = PathToURI(absPath)
		} else {
			uri = input
		}
	} else {
		p, err := filepath.Abs(input)
		if err != nil {
			return Target{}, errors.Wrapf(err, errors.ErrNormalization, "could not resolve path %q", input)
		}
		absPath = p
		uri = PathToURI(absPath)
		pathOnly = !opts.AllowConversion
	}

	tgt := Target{Input: input, AbsPath: absPath, URI: uri, PathOnly: pathOnly}

	info, err := os.Stat(absPath)
	switch {
	case err == nil:
		tgt.Exists = true
		tgt.IsDir = info.IsDir()
	default:
		// The path does not exist. Selection degrades to the parent
		// listing, so the parent must at least be reachable.
		parent := filepath.Dir(absPath)
		if _, perr := os.Stat(parent); perr != nil {
			return Target{}, errors.Newf(errors.ErrPathNotFound,
				"neither %q nor its parent directory exist", input)
		}
	}

	return tgt, nil
}
