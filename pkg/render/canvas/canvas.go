// Package canvas defines the page-rendering primitive used by the report.
//
// A [Document] is a sequence of fixed-size pages. Drawing happens on a
// [Surface], which is opened for exactly one page at a time and must be
// closed before another one is opened. Surfaces can be re-opened on a
// finished page to append content, which is how page numbers are stamped
// once the total page count is known.
//
// All coordinates are in PDF points with the origin at the bottom-left corner
// of the page and Y growing upward. Text is positioned by its baseline.
package canvas

import (
	"errors"
	"image"
	"io"
)

// A4 page size in points.
const (
	A4Width  = 595.28
	A4Height = 841.89
)

// Errors reported by backends when the surface discipline is broken.
var (
	ErrSurfaceOpen   = errors.New("canvas: a page surface is already open")
	ErrSurfaceClosed = errors.New("canvas: surface already closed")
	ErrNoSuchPage    = errors.New("canvas: no such page")
)

// Font selects one of the document's built-in faces.
type Font struct {
	Bold bool
	Size float64 // points
}

// Regular returns the regular face at size.
func Regular(size float64) Font { return Font{Size: size} }

// Bold returns the bold face at size.
func Bold(size float64) Font { return Font{Bold: true, Size: size} }

// Color is an opaque RGB color.
type Color struct {
	R, G, B uint8
}

// Common colors.
var (
	Black     = Color{0, 0, 0}
	White     = Color{255, 255, 255}
	Red       = Color{255, 0, 0}
	LightGray = Color{192, 192, 192}
)

// Measurer answers string-width queries. Widths are in points.
type Measurer interface {
	StringWidth(s string, f Font) float64
}

// Image is a decoded raster image registered with a document.
type Image struct {
	ID  string
	Src image.Image
}

// Width returns the pixel width of the image.
func (im *Image) Width() int { return im.Src.Bounds().Dx() }

// Height returns the pixel height of the image.
func (im *Image) Height() int { return im.Src.Bounds().Dy() }

// Surface draws on one page.
type Surface interface {
	// Page returns the zero-based page index the surface draws on.
	Page() int

	// Text draws s with its baseline starting at (x, y).
	Text(x, y float64, s string, f Font, c Color)

	// StrokeRect outlines the rectangle with lower-left corner (x, y).
	StrokeRect(x, y, w, h, lineWidth float64, c Color)

	// FillRect fills the rectangle with lower-left corner (x, y).
	FillRect(x, y, w, h float64, c Color)

	// Line draws a straight segment.
	Line(x1, y1, x2, y2, lineWidth float64, c Color)

	// Image draws im scaled into the box with lower-left corner (x, y).
	Image(im *Image, x, y, w, h float64)

	// Close finishes drawing on the page. Closing twice returns
	// ErrSurfaceClosed.
	Close() error
}

// Document is a paginated output being built.
type Document interface {
	Measurer

	// PageSize returns the page width and height in points.
	PageSize() (w, h float64)

	// NewPage appends a page and opens a surface on it. It fails with
	// ErrSurfaceOpen while another surface is open.
	NewPage() (Surface, error)

	// Reopen opens a surface on an existing page to append content.
	Reopen(page int) (Surface, error)

	// PageCount returns the number of pages added so far.
	PageCount() int

	// AddImage registers img for drawing. The returned handle is valid
	// for the lifetime of the document.
	AddImage(img image.Image) (*Image, error)

	// SetInfo records document metadata.
	SetInfo(info Info)

	// Save writes the finished document. It fails with ErrSurfaceOpen if
	// a surface is still open.
	Save(w io.Writer) error
}

// Info is document metadata.
type Info struct {
	Title    string
	Author   string
	Subject  string
	Keywords string
	Creator  string
}
