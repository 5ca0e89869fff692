// Package core wires the pipeline together: detect the platform, resolve a
// file manager, normalize the caller's paths into invocation groups,
// synthesize command lines, and launch them. This is the package library
// consumers import.
package core

import (
	stderrors "errors"
	"strings"

	"github.com/arthur-debert/showinfm/pkg/errors"
	"github.com/arthur-debert/showinfm/pkg/filemanager"
	"github.com/arthur-debert/showinfm/pkg/invoke"
	"github.com/arthur-debert/showinfm/pkg/logging"
	"github.com/arthur-debert/showinfm/pkg/normalize"
	"github.com/arthur-debert/showinfm/pkg/platform"
	"github.com/arthur-debert/showinfm/pkg/resolver"
	"github.com/arthur-debert/showinfm/pkg/synthesize"
	"github.com/arthur-debert/showinfm/pkg/wsl"
)

// Options controls one reveal operation.
type Options struct {
	// FileManager forces a specific executable instead of resolving one.
	// Unrecognized names are still launched, with generic arguments.
	FileManager string

	// OpenNotSelectDirectory opens directory targets rather than selecting
	// them within their parent.
	OpenNotSelectDirectory bool

	// AllowConversion permits rewriting inputs between path and URI forms.
	AllowConversion bool

	// Verbose echoes each command to stdout before launching it.
	Verbose bool
}

// DefaultOptions mirrors the behavior callers get with no configuration:
// directories open rather than select, and inputs are freely converted.
func DefaultOptions() Options {
	return Options{OpenNotSelectDirectory: true, AllowConversion: true}
}

// launcher is satisfied by invoke.Launcher.
type launcher interface {
	Run(inv synthesize.Invocation) error
}

// Engine runs reveal operations against one detected platform. The fields
// are exported so tests can substitute a fake platform, resolver, launcher,
// or WSL transform.
type Engine struct {
	Platform platform.Platform
	Resolver *resolver.Resolver
	Launcher launcher

	// Transform bridges paths across the WSL boundary.
	Transform func(pathOrURI string, generateWinPath bool) (wsl.Result, error)
}

// New builds an Engine against the real system.
func New(opts Options) *Engine {
	p := platform.Detect()
	l := invoke.New(opts.Verbose)
	// Explorer launched from WSL2 is lost unless waited on.
	l.WaitForExplorer = p.WSLVersion == platform.WSL2
	return &Engine{
		Platform:  p,
		Resolver:  resolver.New(),
		Launcher:  l,
		Transform: wsl.Transform,
	}
}

// ShowInFileManager opens the system file manager with the given paths or
// URIs selected. With no inputs the file manager is launched bare. Items
// that cannot be resolved are skipped with a warning; the call fails only
// when no file manager resolves or no launch succeeds.
func ShowInFileManager(inputs []string, opts Options) error {
	return New(opts).Show(inputs, opts)
}

// Show runs one reveal operation.
func (e *Engine) Show(inputs []string, opts Options) error {
	log := logging.GetLogger("core")

	fm := opts.FileManager
	specified := fm != ""
	if !specified {
		fm = e.Resolver.Valid(e.Platform, false)
	}
	if fm == "" {
		return errors.New(errors.ErrResolution, "no file manager is available on this system")
	}
	cap, known := filemanager.Lookup(fm)
	log.Debug().Str("fileManager", fm).Bool("known", known).Msg("Using file manager")

	var targets []string
	for _, in := range inputs {
		if strings.TrimSpace(in) != "" {
			targets = append(targets, in)
		}
	}

	if len(targets) == 0 {
		return e.Launcher.Run(synthesize.Invocation{Kind: synthesize.Command, Executable: fm})
	}

	synthOpts := synthesize.Options{
		PreferURI:         e.Platform.OS != platform.Windows,
		NativeMultiSelect: e.Platform.OS == platform.Windows && fm == "explorer.exe",
	}
	normOpts := normalize.Options{
		OpenNotSelectDirectory: opts.OpenNotSelectDirectory,
		AllowConversion:        opts.AllowConversion,
	}

	var itemErrs []error
	var invocations []synthesize.Invocation

	if e.Platform.IsWSL() {
		var linuxTargets []string
		linuxTargets, invocations, itemErrs = e.routeWSL(targets, fm, specified, opts)
		targets = linuxTargets
	}

	if len(targets) > 0 {
		groups, errs := normalize.Normalize(targets, normOpts)
		itemErrs = append(itemErrs, errs...)
		for _, g := range groups {
			invocations = append(invocations, synthesize.Synthesize(fm, cap, known, g, synthOpts)...)
		}
	}

	if len(invocations) == 0 {
		return errors.Wrap(stderrors.Join(itemErrs...), errors.ErrNormalization,
			"none of the given paths could be shown")
	}

	launched := 0
	var launchErrs []error
	for _, inv := range invocations {
		if err := e.Launcher.Run(inv); err != nil {
			log.Warn().Err(err).Str("executable", inv.Executable).Msg("Launch failed")
			launchErrs = append(launchErrs, err)
			continue
		}
		launched++
	}
	if launched == 0 {
		return errors.Wrap(stderrors.Join(append(itemErrs, launchErrs...)...), errors.ErrLaunch,
			"every file manager launch failed")
	}
	for _, err := range itemErrs {
		log.Warn().Err(err).Msg("Skipped item")
	}
	return nil
}

// routeWSL triages each target across the WSL boundary. Items on the
// Windows side (or everything, when explorer.exe is the file manager) become
// direct Explorer invocations; Linux-side items come back as paths for the
// ordinary pipeline.
func (e *Engine) routeWSL(targets []string, fm string, specified bool, opts Options) (linuxTargets []string, invocations []synthesize.Invocation, itemErrs []error) {
	explorerCap, _ := filemanager.Lookup("explorer.exe")

	var selectURIs, openURIs []string
	for _, t := range targets {
		res, err := e.Transform(t, fm == "explorer.exe")
		if err != nil {
			itemErrs = append(itemErrs, err)
			continue
		}
		if !res.Exists {
			itemErrs = append(itemErrs, errors.Newf(errors.ErrPathNotFound, "path does not exist: %s", t))
			continue
		}

		useExplorer := (res.IsWinLocation && !specified) || fm == "explorer.exe"
		if !useExplorer {
			linuxTargets = append(linuxTargets, res.LinuxPath)
			continue
		}

		if res.WinURI == "" {
			itemErrs = append(itemErrs, errors.Newf(errors.ErrBadURI, "cannot produce a Windows URI for %s", t))
			continue
		}
		if res.IsDir && opts.OpenNotSelectDirectory {
			openURIs = append(openURIs, res.WinURI)
		} else {
			selectURIs = append(selectURIs, res.WinURI)
		}
	}

	// Explorer takes exactly one /select, target per window.
	for _, uri := range selectURIs {
		invocations = append(invocations, synthesize.Invocation{
			Kind:       synthesize.Command,
			Executable: "explorer.exe",
			Args:       []string{explorerCap.SelectFlag + uri},
		})
	}
	for _, uri := range openURIs {
		invocations = append(invocations, synthesize.Invocation{
			Kind:       synthesize.Command,
			Executable: "explorer.exe",
			Args:       []string{uri},
		})
	}
	return linuxTargets, invocations, itemErrs
}
