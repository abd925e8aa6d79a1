package pipeline

import (
	"bytes"
	"context"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/kitreport/pkg/buildinfo"
	"github.com/matzehuels/kitreport/pkg/errors"
	"github.com/matzehuels/kitreport/pkg/inventory"
	pkgio "github.com/matzehuels/kitreport/pkg/io"
	"github.com/matzehuels/kitreport/pkg/observability"
	"github.com/matzehuels/kitreport/pkg/render/canvas"
	"github.com/matzehuels/kitreport/pkg/render/report"
	"github.com/matzehuels/kitreport/pkg/render/report/sink"
)

const (
	formatPDF = "pdf"
	formatPNG = "png"

	documentTitle = "Check verifica contenuto minimo cassette di primo soccorso"
)

// Runner executes report runs. It holds no per-run state, so one runner
// can serve several runs.
type Runner struct {
	Logger *log.Logger
}

// NewRunner creates a runner. A nil logger logs to the charm default.
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger}
}

// Execute runs import → render → write and returns what was produced.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	logger := opts.Logger
	hooks := observability.Pipeline()
	res := &Result{ReportID: uuid.NewString(), Output: opts.Output}

	// Stage 1: Import
	start := time.Now()
	hooks.OnImportStart(ctx, len(opts.KitsData))
	sections, parsed := pkgio.ParseKits(opts.KitsData, opts.Date)
	res.Stats.ImportTime = time.Since(start)
	res.Sections = len(sections)
	res.Skipped = parsed.Skipped
	hooks.OnImportComplete(ctx, len(sections), parsed.Skipped, res.Stats.ImportTime, nil)

	logger.Info("parsed kits",
		"sections", len(sections),
		"records", parsed.Records(),
		"duration", res.Stats.ImportTime)
	if parsed.Skipped > 0 {
		logger.Warn("skipped malformed records", "count", parsed.Skipped)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	ropts, err := r.reportOptions(opts)
	if err != nil {
		return nil, err
	}

	// Stage 2: Render
	start = time.Now()
	doc := sink.NewPDF(sink.WithCreationDate(ropts.GeneratedAt), sink.WithProducer(buildinfo.Producer()))
	doc.SetInfo(canvas.Info{
		Title:    documentTitle,
		Author:   opts.Operator,
		Subject:  opts.Site,
		Keywords: res.ReportID,
		Creator:  buildinfo.Producer(),
	})
	rep, pdf, err := render(ctx, formatPDF, doc, sections, ropts)
	if err != nil {
		return nil, err
	}
	res.Stats.RenderTime = time.Since(start)
	res.Pages = rep.Pages
	res.Items = rep.Items
	res.Blocked = rep.Blocked

	logger.Info("rendered report",
		"pages", rep.Pages,
		"items", rep.Items,
		"blocked", rep.Blocked,
		"duration", res.Stats.RenderTime)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Stage 3: Write
	start = time.Now()
	if err := write(ctx, opts.Output, pdf); err != nil {
		return nil, err
	}
	res.Stats.WriteTime = time.Since(start)
	logger.Debug("wrote report", "path", opts.Output, "bytes", len(pdf), "id", res.ReportID)

	if opts.Preview {
		previews, err := r.preview(ctx, opts, sections, ropts)
		if err != nil {
			return nil, err
		}
		res.Previews = previews
	}
	return res, nil
}

// reportOptions resolves header content and loads the optional images.
func (r *Runner) reportOptions(opts Options) (report.Options, error) {
	logo, err := report.LoadImage(opts.LogoPath)
	if err != nil {
		return report.Options{}, err
	}
	signature, err := report.LoadImage(opts.SignaturePath)
	if err != nil {
		return report.Options{}, err
	}
	opts.Logger.Debug("loaded assets", "logo", logo != nil, "signature", signature != nil)

	return report.Options{
		Site:         opts.Site,
		Operator:     opts.Operator,
		Revision:     opts.Revision,
		Organization: opts.Organization,
		Date:         opts.Date,
		GeneratedAt:  opts.Now(),
		Logo:         logo,
		Signature:    signature,
	}, nil
}

// render draws sections on doc and returns the saved bytes.
func render(ctx context.Context, format string, doc canvas.Document, sections []*inventory.Section, ropts report.Options) (*report.Result, []byte, error) {
	hooks := observability.Pipeline()
	start := time.Now()
	hooks.OnRenderStart(ctx, format, len(sections))

	rep, err := report.Generate(doc, sections, ropts)
	if err != nil {
		hooks.OnRenderComplete(ctx, format, 0, time.Since(start), err)
		return nil, nil, err
	}
	var buf bytes.Buffer
	if err := doc.Save(&buf); err != nil {
		err = errors.Wrap(errors.ErrCodeRender, err, "save %s", format)
		hooks.OnRenderComplete(ctx, format, rep.Pages, time.Since(start), err)
		return nil, nil, err
	}
	hooks.OnRenderComplete(ctx, format, rep.Pages, time.Since(start), nil)
	return rep, buf.Bytes(), nil
}

func write(ctx context.Context, path string, data []byte) error {
	err := writeFileAtomic(path, data, 0o644)
	observability.Pipeline().OnWrite(ctx, path, len(data), err)
	if err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "write %s", path)
	}
	return nil
}

// preview renders the report again as PNG and writes one file per page.
func (r *Runner) preview(ctx context.Context, opts Options, sections []*inventory.Section, ropts report.Options) ([]string, error) {
	doc := sink.NewPNG(sink.WithScale(opts.PreviewScale))
	hooks := observability.Pipeline()
	start := time.Now()
	hooks.OnRenderStart(ctx, formatPNG, len(sections))
	rep, err := report.Generate(doc, sections, ropts)
	hooks.OnRenderComplete(ctx, formatPNG, doc.PageCount(), time.Since(start), err)
	if err != nil {
		return nil, err
	}

	paths := make([]string, 0, rep.Pages)
	for i := 0; i < rep.Pages; i++ {
		var buf bytes.Buffer
		if err := doc.EncodePage(i, &buf); err != nil {
			return nil, errors.Wrap(errors.ErrCodeRender, err, "encode preview page %d", i+1)
		}
		path := previewPath(opts.Output, i)
		if err := write(ctx, path, buf.Bytes()); err != nil {
			return nil, err
		}
		paths = append(paths, path)
	}
	opts.Logger.Info("wrote previews", "files", len(paths), "scale", opts.PreviewScale)
	return paths, nil
}
