// Package invoke launches synthesized commands as detached, fire-and-forget
// child processes. Spawned file managers are never waited on, their output is
// not captured, and success means only that the process started.
package invoke

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/arthur-debert/showinfm/pkg/errors"
	"github.com/arthur-debert/showinfm/pkg/logging"
	"github.com/arthur-debert/showinfm/pkg/synthesize"
)

// execCommand is a seam for tests.
var execCommand = exec.Command

// Launcher executes invocations.
type Launcher struct {
	// Verbose echoes the fully assembled command to Out before execution.
	Verbose bool

	// Out is the diagnostic stream, stdout by default.
	Out io.Writer

	// WaitForExplorer works around a WSL2 quirk: an explorer.exe launch
	// that is not waited on can be lost when the caller exits immediately.
	WaitForExplorer bool
}

// New returns a Launcher writing diagnostics to stdout.
func New(verbose bool) *Launcher {
	return &Launcher{Verbose: verbose, Out: os.Stdout}
}

// Run executes one invocation. Launch failures come back as LAUNCH errors
// carrying the executable name; callers continue with remaining invocations.
func (l *Launcher) Run(inv synthesize.Invocation) error {
	if inv.Kind == synthesize.NativeSelect {
		if l.Verbose {
			fmt.Fprintf(l.out(), "Executing Windows shell to open file explorer at %q, selecting %s\n",
				inv.Parent, strings.Join(inv.Items, ", "))
		}
		return nativeSelect(inv.Parent, inv.Items)
	}

	if l.Verbose {
		fmt.Fprintf(l.out(), "Executing %s\n", strings.Join(append([]string{inv.Executable}, inv.Args...), " "))
	}
	logging.LogCommand(inv.Executable, inv.Args)

	cmd := execCommand(inv.Executable, inv.Args...)
	cmd.SysProcAttr = detachAttr()

	if err := cmd.Start(); err != nil {
		return errors.Wrapf(err, errors.ErrLaunch, "failed to launch %s", inv.Executable).
			WithDetail("args", inv.Args)
	}

	if l.WaitForExplorer && inv.Executable == "explorer.exe" {
		// Exit status is irrelevant; explorer.exe reports nonzero even on
		// success.
		_ = cmd.Wait()
		return nil
	}

	// Let go of the child so it outlives us.
	_ = cmd.Process.Release()
	return nil
}

func (l *Launcher) out() io.Writer {
	if l.Out != nil {
		return l.Out
	}
	return os.Stdout
}
