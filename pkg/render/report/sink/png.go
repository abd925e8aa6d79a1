package sink

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"math"

	"github.com/fogleman/gg"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"

	"github.com/matzehuels/kitreport/pkg/fonts"
	"github.com/matzehuels/kitreport/pkg/render/canvas"
)

const (
	defaultScale = 1.5
	sheetGap     = 12 // pixels between pages in the saved sheet
)

// PNGOption configures the PNG preview backend.
type PNGOption func(*PNG)

// WithScale sets the pixels per point (default 1.5).
func WithScale(s float64) PNGOption {
	return func(p *PNG) {
		if s > 0 {
			p.scale = s
		}
	}
}

// PNG is a [canvas.Document] that rasterizes every page.
type PNG struct {
	scale  float64
	w, h   float64
	pages  []*gg.Context
	images int
	open   *pngSurface
	faces  *fonts.Cache
}

// NewPNG returns an empty A4 preview.
func NewPNG(opts ...PNGOption) *PNG {
	p := &PNG{scale: defaultScale, w: canvas.A4Width, h: canvas.A4Height, faces: fonts.NewCache()}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *PNG) face(f canvas.Font) (font.Face, error) {
	return p.faces.Face(f.Bold, f.Size*p.scale)
}

// StringWidth measures s in points.
func (p *PNG) StringWidth(s string, f canvas.Font) float64 {
	face, err := p.face(f)
	if err != nil {
		return 0
	}
	return float64(font.MeasureString(face, s)) / 64 / p.scale
}

// PageSize returns the page size in points.
func (p *PNG) PageSize() (float64, float64) { return p.w, p.h }

// PageCount returns the number of pages added so far.
func (p *PNG) PageCount() int { return len(p.pages) }

// Pages returns the rendered pages.
func (p *PNG) Pages() []image.Image {
	out := make([]image.Image, len(p.pages))
	for i, dc := range p.pages {
		out[i] = dc.Image()
	}
	return out
}

// EncodePage writes page i as a PNG.
func (p *PNG) EncodePage(i int, w io.Writer) error {
	if i < 0 || i >= len(p.pages) {
		return fmt.Errorf("%w: %d", canvas.ErrNoSuchPage, i)
	}
	return p.pages[i].EncodePNG(w)
}

func (p *PNG) px(v float64) float64 { return v * p.scale }

// NewPage appends a white page and opens a surface on it.
func (p *PNG) NewPage() (canvas.Surface, error) {
	if p.open != nil {
		return nil, canvas.ErrSurfaceOpen
	}
	dc := gg.NewContext(int(math.Ceil(p.px(p.w))), int(math.Ceil(p.px(p.h))))
	dc.SetColor(color.White)
	dc.Clear()
	p.pages = append(p.pages, dc)
	return p.surface(len(p.pages) - 1), nil
}

// Reopen opens a surface on an existing page.
func (p *PNG) Reopen(page int) (canvas.Surface, error) {
	if p.open != nil {
		return nil, canvas.ErrSurfaceOpen
	}
	if page < 0 || page >= len(p.pages) {
		return nil, fmt.Errorf("%w: %d", canvas.ErrNoSuchPage, page)
	}
	return p.surface(page), nil
}

func (p *PNG) surface(page int) *pngSurface {
	p.open = &pngSurface{doc: p, dc: p.pages[page], page: page}
	return p.open
}

// AddImage wraps img; raster pages draw it directly.
func (p *PNG) AddImage(img image.Image) (*canvas.Image, error) {
	p.images++
	return &canvas.Image{ID: fmt.Sprintf("img%d", p.images), Src: img}, nil
}

// SetInfo is a no-op; PNG carries no document metadata.
func (p *PNG) SetInfo(canvas.Info) {}

// Save writes all pages top to bottom into one PNG.
func (p *PNG) Save(w io.Writer) error {
	if p.open != nil {
		return canvas.ErrSurfaceOpen
	}
	if len(p.pages) == 0 {
		return fmt.Errorf("png: no pages")
	}
	pw := p.pages[0].Width()
	ph := p.pages[0].Height()
	sheet := gg.NewContext(pw, len(p.pages)*ph+(len(p.pages)-1)*sheetGap)
	sheet.SetRGB255(128, 128, 128)
	sheet.Clear()
	for i, dc := range p.pages {
		sheet.DrawImage(dc.Image(), 0, i*(ph+sheetGap))
	}
	defer p.faces.Close()
	return sheet.EncodePNG(w)
}

type pngSurface struct {
	doc    *PNG
	dc     *gg.Context
	page   int
	closed bool
}

func (s *pngSurface) Page() int { return s.page }

func (s *pngSurface) x(v float64) float64 { return s.doc.px(v) }
func (s *pngSurface) y(v float64) float64 { return s.doc.px(s.doc.h - v) }

func (s *pngSurface) setColor(c canvas.Color) {
	s.dc.SetRGB255(int(c.R), int(c.G), int(c.B))
}

func (s *pngSurface) Text(x, y float64, str string, f canvas.Font, c canvas.Color) {
	face, err := s.doc.face(f)
	if err != nil {
		return
	}
	s.dc.SetFontFace(face)
	s.setColor(c)
	s.dc.DrawString(str, s.x(x), s.y(y))
}

func (s *pngSurface) StrokeRect(x, y, w, h, lineWidth float64, c canvas.Color) {
	s.dc.DrawRectangle(s.x(x), s.y(y+h), s.doc.px(w), s.doc.px(h))
	s.dc.SetLineWidth(s.doc.px(lineWidth))
	s.setColor(c)
	s.dc.Stroke()
}

func (s *pngSurface) FillRect(x, y, w, h float64, c canvas.Color) {
	s.dc.DrawRectangle(s.x(x), s.y(y+h), s.doc.px(w), s.doc.px(h))
	s.setColor(c)
	s.dc.Fill()
}

func (s *pngSurface) Line(x1, y1, x2, y2, lineWidth float64, c canvas.Color) {
	s.dc.DrawLine(s.x(x1), s.y(y1), s.x(x2), s.y(y2))
	s.dc.SetLineWidth(s.doc.px(lineWidth))
	s.setColor(c)
	s.dc.Stroke()
}

func (s *pngSurface) Image(im *canvas.Image, x, y, w, h float64) {
	dw := int(math.Round(s.doc.px(w)))
	dh := int(math.Round(s.doc.px(h)))
	if dw <= 0 || dh <= 0 {
		return
	}
	dst := image.NewRGBA(image.Rect(0, 0, dw, dh))
	draw.CatmullRom.Scale(dst, dst.Bounds(), im.Src, im.Src.Bounds(), draw.Over, nil)
	s.dc.DrawImage(dst, int(math.Round(s.x(x))), int(math.Round(s.y(y+h))))
}

func (s *pngSurface) Close() error {
	if s.closed {
		return canvas.ErrSurfaceClosed
	}
	s.closed = true
	if s.doc.open == s {
		s.doc.open = nil
	}
	return nil
}
