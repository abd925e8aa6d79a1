// Package sink provides the page backends the report draws on.
//
// Both backends implement [canvas.Document]:
//
//   - [PDF] writes the report with go-pdf/fpdf using the core Helvetica
//     faces, text encoded as Windows-1252.
//   - [PNG] rasterizes pages with fogleman/gg for a quick preview; Save
//     writes all pages stacked into one image.
//
// Basic usage:
//
//	doc := sink.NewPDF(sink.WithCreationDate(now))
//	res, err := report.Generate(doc, sections, opts)
//	err = doc.Save(w)
//
// Both convert from the canvas coordinate system (bottom-left origin) to
// their own top-left one at the last moment, so the report code never sees
// backend coordinates.
//
// [canvas.Document]: github.com/matzehuels/kitreport/pkg/render/canvas.Document
package sink
