package sink

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"io"
	"time"

	"github.com/go-pdf/fpdf"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"

	"github.com/matzehuels/kitreport/pkg/render/canvas"
)

const pdfFamily = "Helvetica"

// PDFOption configures the PDF backend.
type PDFOption func(*PDF)

// WithCreationDate fixes the creation date written into the document.
func WithCreationDate(t time.Time) PDFOption {
	return func(p *PDF) { p.created = t }
}

// WithCompression toggles stream compression (on by default).
func WithCompression(on bool) PDFOption {
	return func(p *PDF) { p.compress = on }
}

// WithProducer sets the producer string in the document metadata.
func WithProducer(s string) PDFOption {
	return func(p *PDF) { p.producer = s }
}

// PDF is a [canvas.Document] backed by fpdf.
type PDF struct {
	pdf      *fpdf.Fpdf
	enc      *encoding.Encoder
	open     *pdfSurface
	images   int
	w, h     float64
	created  time.Time
	compress bool
	producer string
}

// NewPDF returns an empty A4 portrait document.
func NewPDF(opts ...PDFOption) *PDF {
	p := &PDF{compress: true}
	for _, opt := range opts {
		opt(p)
	}

	f := fpdf.New("P", "pt", "A4", "")
	f.SetMargins(0, 0, 0)
	f.SetAutoPageBreak(false, 0)
	f.SetCompression(p.compress)
	if !p.created.IsZero() {
		f.SetCreationDate(p.created)
		f.SetModificationDate(p.created)
	}
	if p.producer != "" {
		f.SetProducer(p.producer, true)
	}

	p.pdf = f
	p.enc = encoding.ReplaceUnsupported(charmap.Windows1252.NewEncoder())
	p.w, p.h = f.GetPageSize()
	return p
}

// encode converts s to the single-byte encoding of the core fonts.
// Characters outside Windows-1252 become '?'.
func (p *PDF) encode(s string) string {
	out, err := p.enc.String(s)
	if err != nil {
		return s
	}
	return out
}

func (p *PDF) setFont(f canvas.Font) {
	style := ""
	if f.Bold {
		style = "B"
	}
	p.pdf.SetFont(pdfFamily, style, f.Size)
}

// StringWidth measures s in points.
func (p *PDF) StringWidth(s string, f canvas.Font) float64 {
	p.setFont(f)
	return p.pdf.GetStringWidth(p.encode(s))
}

// PageSize returns the page size in points.
func (p *PDF) PageSize() (float64, float64) { return p.w, p.h }

// PageCount returns the number of pages added so far.
func (p *PDF) PageCount() int { return p.pdf.PageCount() }

// NewPage appends a page and opens a surface on it.
func (p *PDF) NewPage() (canvas.Surface, error) {
	if p.open != nil {
		return nil, canvas.ErrSurfaceOpen
	}
	if n := p.pdf.PageCount(); n > 0 {
		// AddPage continues from the current page, which Reopen may
		// have moved back.
		p.pdf.SetPage(n)
	}
	p.pdf.AddPage()
	if err := p.pdf.Error(); err != nil {
		return nil, fmt.Errorf("add page: %w", err)
	}
	return p.surface(p.pdf.PageCount() - 1), nil
}

// Reopen opens a surface on an existing page.
func (p *PDF) Reopen(page int) (canvas.Surface, error) {
	if p.open != nil {
		return nil, canvas.ErrSurfaceOpen
	}
	if page < 0 || page >= p.pdf.PageCount() {
		return nil, fmt.Errorf("%w: %d", canvas.ErrNoSuchPage, page)
	}
	p.pdf.SetPage(page + 1)
	return p.surface(page), nil
}

func (p *PDF) surface(page int) *pdfSurface {
	p.open = &pdfSurface{doc: p, page: page}
	return p.open
}

// AddImage registers img as a PNG resource.
func (p *PDF) AddImage(img image.Image) (*canvas.Image, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode image: %w", err)
	}
	p.images++
	id := fmt.Sprintf("img%d", p.images)
	p.pdf.RegisterImageOptionsReader(id, fpdf.ImageOptions{ImageType: "PNG"}, &buf)
	if err := p.pdf.Error(); err != nil {
		return nil, fmt.Errorf("register image: %w", err)
	}
	return &canvas.Image{ID: id, Src: img}, nil
}

// SetInfo records document metadata.
func (p *PDF) SetInfo(info canvas.Info) {
	p.pdf.SetTitle(info.Title, true)
	p.pdf.SetAuthor(info.Author, true)
	p.pdf.SetSubject(info.Subject, true)
	p.pdf.SetKeywords(info.Keywords, true)
	p.pdf.SetCreator(info.Creator, true)
}

// Save writes the finished document. The document cannot be used after.
func (p *PDF) Save(w io.Writer) error {
	if p.open != nil {
		return canvas.ErrSurfaceOpen
	}
	if err := p.pdf.Output(w); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	return nil
}

type pdfSurface struct {
	doc    *PDF
	page   int
	closed bool
}

func (s *pdfSurface) Page() int { return s.page }

// flip converts a canvas Y to an fpdf Y.
func (s *pdfSurface) flip(y float64) float64 { return s.doc.h - y }

func (s *pdfSurface) Text(x, y float64, str string, f canvas.Font, c canvas.Color) {
	pdf := s.doc.pdf
	s.doc.setFont(f)
	pdf.SetTextColor(int(c.R), int(c.G), int(c.B))
	pdf.Text(x, s.flip(y), s.doc.encode(str))
}

func (s *pdfSurface) StrokeRect(x, y, w, h, lineWidth float64, c canvas.Color) {
	pdf := s.doc.pdf
	pdf.SetLineWidth(lineWidth)
	pdf.SetDrawColor(int(c.R), int(c.G), int(c.B))
	pdf.Rect(x, s.flip(y+h), w, h, "D")
}

func (s *pdfSurface) FillRect(x, y, w, h float64, c canvas.Color) {
	pdf := s.doc.pdf
	pdf.SetFillColor(int(c.R), int(c.G), int(c.B))
	pdf.Rect(x, s.flip(y+h), w, h, "F")
}

func (s *pdfSurface) Line(x1, y1, x2, y2, lineWidth float64, c canvas.Color) {
	pdf := s.doc.pdf
	pdf.SetLineWidth(lineWidth)
	pdf.SetDrawColor(int(c.R), int(c.G), int(c.B))
	pdf.Line(x1, s.flip(y1), x2, s.flip(y2))
}

func (s *pdfSurface) Image(im *canvas.Image, x, y, w, h float64) {
	s.doc.pdf.ImageOptions(im.ID, x, s.flip(y+h), w, h, false, fpdf.ImageOptions{ImageType: "PNG"}, 0, "")
}

func (s *pdfSurface) Close() error {
	if s.closed {
		return canvas.ErrSurfaceClosed
	}
	s.closed = true
	if s.doc.open == s {
		s.doc.open = nil
	}
	return s.doc.pdf.Error()
}
