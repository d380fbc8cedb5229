package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/specialistvlad/choicegen/internal/app"
)

const (
	appName    = "choicegen"
	appVersion = "0.1.0"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	var (
		cfg         app.Config
		showVersion bool
		parsed      *app.Config
	)

	cmd := &cobra.Command{
		Use:   appName + " [flags] [INPUT]",
		Short: "Generate instantiation sources for every compatible choice combination",
		Long: `choicegen reads CHOICES_<name> and LIST_CHOICES_<name> declarations, writes
one comparison macro per request to stdout and one instantiation source per
surviving combination to the output directory.

INPUT is the declarations file. Standard input is read when it is omitted or "-".`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if showVersion {
				_, err := fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", appName, appVersion)
				return err
			}

			if len(args) == 1 {
				if cmd.Flags().Changed("input") && cfg.Input != args[0] {
					return errors.New("options conflict: input given both as argument and --input")
				}
				cfg.Input = args[0]
			}
			cfg.LogFormat = strings.ToLower(cfg.LogFormat)
			cfg.LogLevel = strings.ToLower(cfg.LogLevel)

			c, err := app.NewConfig(cfg)
			if err != nil {
				return err
			}
			parsed = c
			return nil
		},
	}
	cmd.SetOut(output)
	cmd.SetErr(output)
	if args == nil {
		args = []string{}
	}
	cmd.SetArgs(args)

	flags := cmd.Flags()
	flags.StringArrayVarP(&cfg.ConfigPaths, "config", "c", nil, "HCL configuration file or directory. Repeatable, later files win.")
	flags.StringVarP(&cfg.Input, "input", "i", "", "Declarations file. Defaults to standard input.")
	flags.StringVarP(&cfg.OutputDir, "output-dir", "o", "", "Directory for generated sources and dependency lists.")
	flags.StringVar(&cfg.CompareTemplate, "compare-template", "", "Path of the comparison template.")
	flags.StringVar(&cfg.InstantiationTemplate, "instantiation-template", "", "Path of the instantiation template.")
	flags.StringVar(&cfg.Manifest, "manifest", "", "Write a YAML manifest of the generated artifacts to this path.")
	flags.BoolVar(&cfg.RefreshChanged, "refresh-changed", false, "Rewrite existing sources whose content differs.")
	flags.BoolVar(&cfg.DryRun, "dry-run", false, "Print the listing without touching the output directory.")
	flags.StringVar(&cfg.LogFormat, "log-format", "text", "Log output format. Options: 'text' or 'json'.")
	flags.StringVar(&cfg.LogLevel, "log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	flags.BoolVar(&showVersion, "version", false, "Print version and exit.")

	if err := cmd.Execute(); err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	if parsed == nil {
		// Help or version was printed.
		return nil, true, nil
	}
	return parsed, false, nil
}
