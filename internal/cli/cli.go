// Package cli implements the kitreport command-line interface.
//
// kitreport is a single command that turns the kit inventory wire format
// into the compliance report PDF:
//
//	kitreport <operatore> <datiKit> <sede> <revisione> [<firma>] [<logo>]
//
// The report is always written to rapporto_cassette.pdf in the working
// directory. Optional settings (organization name, default revision,
// preview scale) come from a TOML file, kitreport.toml by default.
//
// # Logging
//
// Progress is logged to stderr with charmbracelet/log; --verbose (-v)
// switches to debug level and also logs every pipeline stage event. The
// logger travels in the command context (see withLogger).
//
// # Example
//
//	c := cli.New(os.Stdout, os.Stderr)
//	if err := c.RootCommand().ExecuteContext(ctx); err != nil {
//	    cli.PrintError(os.Stderr, err)
//	    os.Exit(1)
//	}
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/kitreport/pkg/buildinfo"
	"github.com/matzehuels/kitreport/pkg/errors"
	"github.com/matzehuels/kitreport/pkg/pipeline"
)

const (
	appName = "kitreport"

	// defaultConfigFile is read from the working directory when present.
	defaultConfigFile = appName + ".toml"

	usage = appName + " <operatore> <datiKit> <sede> <revisione> [<firma>] [<logo>]"

	// dateFlagLayout is the --date format, dd/MM/yyyy.
	dateFlagLayout = "02/01/2006"
)

// CLI holds shared state for the command.
type CLI struct {
	Stdout io.Writer
	Stderr io.Writer
	Logger *log.Logger
}

// New creates a CLI writing results to stdout and logs to stderr.
func New(stdout, stderr io.Writer) *CLI {
	return &CLI{
		Stdout: stdout,
		Stderr: stderr,
		Logger: newLogger(stderr, log.InfoLevel),
	}
}

type flags struct {
	verbose bool
	config  string
	date    string
	preview bool
}

// RootCommand creates the kitreport command.
func (c *CLI) RootCommand() *cobra.Command {
	var f flags

	root := &cobra.Command{
		Use:   usage,
		Short: "Genera il rapporto di verifica delle cassette di primo soccorso",
		Long: `kitreport checks the minimum content of first-aid kits and writes the
compliance report to ` + pipeline.DefaultOutput + `.

Kit data uses "|" between kits, ";" between items and "," between the seven
item fields: kitCode,location,itemCode,description,quantity,expiryDate,status.`,
		Version:       buildinfo.Version,
		Args:          validateArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if f.verbose {
				c.Logger.SetLevel(log.DebugLevel)
				registerLogHooks(c.Logger)
			}
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runGenerate(cmd, args, f)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.SetOut(c.Stdout)
	root.SetErr(c.Stderr)

	root.Flags().BoolVarP(&f.verbose, "verbose", "v", false, "enable verbose logging")
	root.Flags().StringVar(&f.config, "config", "", "config file (default "+defaultConfigFile+" if present)")
	root.Flags().StringVar(&f.date, "date", "", "report date as dd/MM/yyyy (default today)")
	root.Flags().BoolVar(&f.preview, "preview", false, "also write a PNG preview of every page")

	return root
}

// validateArgs enforces the positional contract: four required arguments
// and two optional image paths.
func validateArgs(_ *cobra.Command, args []string) error {
	if len(args) < 4 || len(args) > 6 {
		return errors.New(errors.ErrCodeInvalidInput, "uso: %s", usage)
	}
	return nil
}
