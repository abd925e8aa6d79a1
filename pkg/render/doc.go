// Package render holds the report rendering stack.
//
// # Subpackages
//
//   - canvas: the page primitive the report draws on (documents, pages,
//     drawing surfaces, fonts, colors, images)
//   - report: header, kit tables, footer and page numbering
//   - report/layout: text wrapping, height estimation and column placement
//   - report/styles: palette, truncation and date formatting
//   - report/sink: canvas backends (PDF via fpdf, PNG preview via gg)
package render
