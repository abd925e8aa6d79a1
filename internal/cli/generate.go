package cli

import (
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/kitreport/pkg/errors"
	"github.com/matzehuels/kitreport/pkg/pipeline"
)

// positional argument indexes
const (
	argOperator = iota
	argKits
	argSite
	argRevision
	argSignature
	argLogo
)

func (c *CLI) runGenerate(cmd *cobra.Command, args []string, f flags) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	cfg, err := loadConfig(f.config)
	if err != nil {
		return err
	}

	opts, err := buildOptions(args, f, cfg)
	if err != nil {
		return err
	}
	opts.Logger = logger

	res, err := pipeline.NewRunner(logger).Execute(ctx, opts)
	if err != nil {
		return err
	}

	printSuccess(c.Stdout, "Rapporto generato con successo: %s", res.Output)
	printStats(c.Stdout, res)
	for _, p := range res.Previews {
		printFile(c.Stdout, p)
	}
	if res.Skipped > 0 {
		printWarning(c.Stdout, "%d record non validi ignorati", res.Skipped)
	}
	return nil
}

// buildOptions maps positional arguments, flags and config onto pipeline
// options. Arguments win over the config file.
func buildOptions(args []string, f flags, cfg Config) (pipeline.Options, error) {
	opts := pipeline.Options{
		Operator:     args[argOperator],
		KitsData:     args[argKits],
		Site:         args[argSite],
		Revision:     strings.TrimSpace(args[argRevision]),
		Organization: cfg.Organization,
		Preview:      f.preview,
		PreviewScale: cfg.Preview.Scale,
	}
	if len(args) > argSignature {
		opts.SignaturePath = args[argSignature]
	}
	if len(args) > argLogo {
		opts.LogoPath = args[argLogo]
	}
	if opts.Revision == "" {
		opts.Revision = cfg.DefaultRevision
	}

	if f.date != "" {
		d, err := time.ParseInLocation(dateFlagLayout, f.date, time.Local)
		if err != nil {
			return pipeline.Options{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid --date %q (expected dd/MM/yyyy)", f.date)
		}
		opts.Date = d
	}
	return opts, nil
}
