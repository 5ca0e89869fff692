//go:build !windows

package invoke

import "github.com/arthur-debert/showinfm/pkg/errors"

// nativeSelect is only reachable through a synthesis bug on non-Windows
// platforms; the synthesizer never emits native descriptors off Windows.
func nativeSelect(parent string, items []string) error {
	return errors.New(errors.ErrPlatformUnsupported,
		"native multi-item selection is only available on Windows")
}
