package main

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/pterm/pterm"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/showinfm/pkg/config"
	"github.com/arthur-debert/showinfm/pkg/core"
	"github.com/arthur-debert/showinfm/pkg/logging"
)

var (
	verbosity    int
	fileManager  string
	selectFolder bool
	noConversion bool
	verbose      bool
	debug        bool

	rootCmd = &cobra.Command{
		Use:   "showinfm [paths or URIs...]",
		Short: "Open the system file manager and select files in it",
		Long: `showinfm opens the platform's file manager with the given files or
directories selected, rather than opened. With no arguments the file
manager is simply launched.

Paths in different directories produce one window per directory. URIs
with non-file schemes (for example gphoto2://) are passed through
untouched.`,
		Args: cobra.ArbitraryArgs,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if debug && verbosity < 2 {
				verbosity = 2
			}
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := core.DefaultOptions()

			cfg, err := config.Load()
			if err != nil {
				log.Warn().Err(err).Msg("Ignoring unreadable config file")
			} else {
				applyConfig(cmd, cfg)
			}

			opts.FileManager = fileManager
			opts.OpenNotSelectDirectory = !selectFolder
			opts.AllowConversion = !noConversion
			opts.Verbose = verbose

			if err := core.ShowInFileManager(args, opts); err != nil {
				printError(err)
				return err
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       version,
	}
)

// Execute runs the root command. Called by main.main().
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().CountVarP(&verbosity, "log-level", "l", "Increase log verbosity (-l INFO, -ll DEBUG, -lll TRACE)")

	rootCmd.Flags().StringVarP(&fileManager, "file-manager", "f", "", "File manager executable to use instead of the system default")
	rootCmd.Flags().BoolVarP(&selectFolder, "select-folder", "s", false, "Select a folder in its parent window instead of opening it")
	rootCmd.Flags().BoolVar(&noConversion, "no-conversion", false, "Pass paths and URIs to the file manager exactly as given")
	rootCmd.Flags().BoolVar(&verbose, "verbose", false, "Print each command before executing it")
	rootCmd.Flags().BoolVar(&debug, "debug", false, "Print debugging information")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(completionCmd)
	rootCmd.AddCommand(diagnoseCmd)
}

// applyConfig fills in defaults from the config file for flags the user did
// not set on the command line.
func applyConfig(cmd *cobra.Command, cfg config.Config) {
	flags := cmd.Flags()
	if cfg.FileManager != "" && !flags.Changed("file-manager") {
		fileManager = cfg.FileManager
	}
	if cfg.SelectFolder && !flags.Changed("select-folder") {
		selectFolder = true
	}
	if cfg.Verbose && !flags.Changed("verbose") {
		verbose = true
	}
	if cfg.Debug && !flags.Changed("debug") {
		debug = true
		if verbosity < 2 {
			verbosity = 2
			logging.SetupLogger(verbosity)
		}
	}
}

func printError(err error) {
	if isatty.IsTerminal(os.Stderr.Fd()) {
		pterm.Error.WithWriter(os.Stderr).Println(err.Error())
		return
	}
	_, _ = os.Stderr.WriteString("Error: " + err.Error() + "\n")
}
