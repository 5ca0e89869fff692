package main

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/showinfm/pkg/core"
	"github.com/arthur-debert/showinfm/pkg/filemanager"
	"github.com/arthur-debert/showinfm/pkg/platform"
)

var diagnoseCmd = &cobra.Command{
	Use:   "diagnose",
	Short: "Show what file manager would be used and why",
	Long: `Diagnose prints the detected platform and desktop environment, the
stock file manager for that desktop, the user's configured preference, and
the file manager showinfm will actually launch.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !isatty.IsTerminal(os.Stdout.Fd()) {
			pterm.DisableStyling()
		}

		d := core.Diagnose()

		rows := pterm.TableData{
			{"Platform", d.Platform.OS.String()},
		}
		if d.Platform.OS == platform.Linux || d.Platform.IsWSL() {
			rows = append(rows, []string{"Desktop", string(d.Platform.Desktop)})
		}
		if d.Platform.IsWSL() {
			rows = append(rows, []string{"WSL version", d.Platform.WSLVersion.String()})
			if d.Platform.Distro != "" {
				rows = append(rows, []string{"WSL distro", d.Platform.Distro})
			}
		}

		rows = append(rows, []string{"Stock file manager", orNone(d.Stock)})
		user := d.User
		if d.UserErr != nil {
			user = "(lookup failed: " + d.UserErr.Error() + ")"
		}
		rows = append(rows, []string{"User file manager", orNone(user)})
		rows = append(rows, []string{"Valid file manager", orNone(d.Valid)})

		if err := pterm.DefaultTable.WithData(rows).Render(); err != nil {
			return err
		}

		pterm.DefaultSection.Println("Recognized file managers")
		for _, fm := range filemanager.KnownFileManagers() {
			pterm.Println("  " + fm)
		}
		return nil
	},
}

func orNone(s string) string {
	if s == "" {
		return "(none)"
	}
	return s
}
