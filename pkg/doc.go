// Package pkg provides the core libraries for kitreport, the first-aid kit
// compliance report generator.
//
// # Overview
//
// A report is built from a line-oriented kit export. Each record carries one
// inventory item; records are grouped into kits, each kit becomes a table on
// an A4 page laid out in two columns. Items are shown in FEFO order (first
// expired, first out) and coloured by status.
//
//	sections, res := io.ParseKits(data, time.Now())
//	doc := sink.NewPDF()
//	out, err := report.Generate(doc, sections, report.Options{
//	    Site:     "Magazzino 3",
//	    Operator: "Mario Rossi",
//	    Date:     time.Now(),
//	})
//
// Most callers should use [pipeline] instead, which also loads image assets,
// writes the file atomically and optionally renders a PNG preview.
//
// # Main Packages
//
// [inventory] - Items, kits (sections), status classification and FEFO
// ordering.
//
// [io] - Parser for the kit wire format.
//
// [render/canvas] - The drawing primitive: documents, pages and surfaces in
// PDF points with a bottom-left origin.
//
// [render/report] - Header, kit tables, blocked item lists, signature footer
// and page numbering.
//
//   - [render/report/layout]: text wrapping, height estimation, column planner
//   - [render/report/styles]: palette, cell truncation, Italian dates
//   - [render/report/sink]: PDF (fpdf) and PNG preview (gg) backends
//
// [pipeline] - Validate, import, render and write, used by the CLI.
//
// [errors] - Coded errors and input validation.
//
// [fonts] - Embedded Go fonts for raster measurement and drawing.
//
// [observability] - Hooks for pipeline events.
//
// [buildinfo] - Version information injected at build time.
//
// [inventory]: https://pkg.go.dev/github.com/matzehuels/kitreport/pkg/inventory
// [io]: https://pkg.go.dev/github.com/matzehuels/kitreport/pkg/io
// [render/canvas]: https://pkg.go.dev/github.com/matzehuels/kitreport/pkg/render/canvas
// [render/report]: https://pkg.go.dev/github.com/matzehuels/kitreport/pkg/render/report
// [render/report/layout]: https://pkg.go.dev/github.com/matzehuels/kitreport/pkg/render/report/layout
// [render/report/styles]: https://pkg.go.dev/github.com/matzehuels/kitreport/pkg/render/report/styles
// [render/report/sink]: https://pkg.go.dev/github.com/matzehuels/kitreport/pkg/render/report/sink
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/kitreport/pkg/pipeline
// [errors]: https://pkg.go.dev/github.com/matzehuels/kitreport/pkg/errors
// [fonts]: https://pkg.go.dev/github.com/matzehuels/kitreport/pkg/fonts
// [observability]: https://pkg.go.dev/github.com/matzehuels/kitreport/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/kitreport/pkg/buildinfo
package pkg
