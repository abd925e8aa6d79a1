// Package pipeline runs the complete kit report: import → layout and
// render → write.
//
// It is the one place that turns CLI input into files on disk, so the
// defaults below are the single source of truth for every entry point.
//
// # Stages
//
//  1. Import: parse the kit wire format into inventory sections
//     (see [pkgio.ParseKits]); malformed records are skipped and counted.
//  2. Render: lay out and draw the sections into a PDF (and optionally a
//     PNG preview per page) with [report.Generate].
//  3. Write: replace the output file atomically, so a failed run never
//     leaves a truncated report behind.
//
// # Usage
//
//	runner := pipeline.NewRunner(logger)
//	res, err := runner.Execute(ctx, pipeline.Options{
//	    Operator: "Mario Rossi",
//	    KitsData: data,
//	    Site:     "Stabilimento Nord",
//	})
//
// [pkgio.ParseKits]: github.com/matzehuels/kitreport/pkg/io.ParseKits
// [report.Generate]: github.com/matzehuels/kitreport/pkg/render/report.Generate
package pipeline

import (
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/kitreport/pkg/errors"
	"github.com/matzehuels/kitreport/pkg/render/report"
)

const (
	// DefaultOutput is the report file name, relative to the working directory.
	DefaultOutput = "rapporto_cassette.pdf"

	// DefaultRevision is printed when the revision argument is empty.
	DefaultRevision = "Rev.05"

	// DefaultOrganization is the company named in the header subtitle.
	DefaultOrganization = report.DefaultOrganization

	// DefaultPreviewScale is the preview resolution in pixels per point.
	DefaultPreviewScale = 1.5
)

// Options contains everything one report run needs.
type Options struct {
	Operator      string
	KitsData      string
	Site          string
	Revision      string
	SignaturePath string
	LogoPath      string

	Organization string
	Date         time.Time // report date; today when zero
	Output       string
	Preview      bool
	PreviewScale float64

	// Runtime options
	Now    func() time.Time
	Logger *log.Logger

	validated bool
}

// Result describes a finished run.
type Result struct {
	ReportID string
	Output   string
	Previews []string
	Pages    int
	Sections int
	Items    int
	Blocked  int
	Skipped  int
	Stats    Stats
}

// Stats contains stage timings.
type Stats struct {
	ImportTime time.Duration
	RenderTime time.Duration
	WriteTime  time.Duration
}

// ValidateAndSetDefaults checks the header fields and fills in defaults.
// Calling it more than once has no further effect.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}

	o.Operator = strings.TrimSpace(o.Operator)
	o.Site = strings.TrimSpace(o.Site)
	o.Revision = strings.TrimSpace(o.Revision)
	o.Organization = strings.TrimSpace(o.Organization)

	for _, f := range []struct{ name, value string }{
		{"operator", o.Operator},
		{"site", o.Site},
		{"revision", o.Revision},
		{"organization", o.Organization},
	} {
		if err := errors.ValidateLabel(f.name, f.value, false); err != nil {
			return err
		}
	}
	if err := errors.ValidateAssetPath("signature", o.SignaturePath); err != nil {
		return err
	}
	if err := errors.ValidateAssetPath("logo", o.LogoPath); err != nil {
		return err
	}

	if o.Revision == "" {
		o.Revision = DefaultRevision
	}
	if o.Organization == "" {
		o.Organization = DefaultOrganization
	}
	if o.Output == "" {
		o.Output = DefaultOutput
	}
	if o.PreviewScale <= 0 {
		o.PreviewScale = DefaultPreviewScale
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	if o.Date.IsZero() {
		o.Date = o.Now()
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}

	o.validated = true
	return nil
}
