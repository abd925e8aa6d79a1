package sink

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"testing"
	"time"

	"github.com/matzehuels/kitreport/pkg/render/canvas"
)

var (
	_ canvas.Document = (*PDF)(nil)
	_ canvas.Document = (*PNG)(nil)
)

func backends() map[string]func() canvas.Document {
	return map[string]func() canvas.Document{
		"pdf": func() canvas.Document { return NewPDF(WithCompression(false)) },
		"png": func() canvas.Document { return NewPNG(WithScale(1)) },
	}
}

func TestSurfaceDiscipline(t *testing.T) {
	for name, newDoc := range backends() {
		t.Run(name, func(t *testing.T) {
			doc := newDoc()
			s, err := doc.NewPage()
			if err != nil {
				t.Fatalf("NewPage() error = %v", err)
			}
			if _, err := doc.NewPage(); !errors.Is(err, canvas.ErrSurfaceOpen) {
				t.Errorf("NewPage() with open surface error = %v, want ErrSurfaceOpen", err)
			}
			if err := doc.Save(&bytes.Buffer{}); !errors.Is(err, canvas.ErrSurfaceOpen) {
				t.Errorf("Save() with open surface error = %v, want ErrSurfaceOpen", err)
			}
			if err := s.Close(); err != nil {
				t.Fatalf("Close() error = %v", err)
			}
			if err := s.Close(); !errors.Is(err, canvas.ErrSurfaceClosed) {
				t.Errorf("second Close() error = %v, want ErrSurfaceClosed", err)
			}

			s2, err := doc.NewPage()
			if err != nil {
				t.Fatalf("NewPage() error = %v", err)
			}
			if s2.Page() != 1 {
				t.Errorf("Page() = %d, want 1", s2.Page())
			}
			s2.Close()

			if _, err := doc.Reopen(2); !errors.Is(err, canvas.ErrNoSuchPage) {
				t.Errorf("Reopen(2) error = %v, want ErrNoSuchPage", err)
			}
			r, err := doc.Reopen(0)
			if err != nil {
				t.Fatalf("Reopen(0) error = %v", err)
			}
			r.Text(40, 20, "Pagina 1 di 2", canvas.Regular(10), canvas.Black)
			r.Close()

			s3, err := doc.NewPage()
			if err != nil {
				t.Fatalf("NewPage() after Reopen error = %v", err)
			}
			if s3.Page() != 2 || doc.PageCount() != 3 {
				t.Errorf("page = %d, count = %d, want 2 and 3", s3.Page(), doc.PageCount())
			}
			s3.Close()

			var buf bytes.Buffer
			if err := doc.Save(&buf); err != nil {
				t.Fatalf("Save() error = %v", err)
			}
			if buf.Len() == 0 {
				t.Error("Save() wrote nothing")
			}
		})
	}
}

func TestStringWidth(t *testing.T) {
	for name, newDoc := range backends() {
		t.Run(name, func(t *testing.T) {
			doc := newDoc()
			short := doc.StringWidth("Kit", canvas.Regular(10))
			long := doc.StringWidth("Kit di primo soccorso", canvas.Regular(10))
			if short <= 0 || long <= short {
				t.Errorf("widths short=%v long=%v", short, long)
			}
			big := doc.StringWidth("Kit di primo soccorso", canvas.Regular(20))
			if big < 1.8*long || big > 2.2*long {
				t.Errorf("20pt width %v not about twice 10pt width %v", big, long)
			}
			if bold := doc.StringWidth("Kit", canvas.Bold(10)); bold < short {
				t.Errorf("bold width %v below regular %v", bold, short)
			}
		})
	}
}

func TestPDFOutput(t *testing.T) {
	doc := NewPDF(WithCompression(false), WithCreationDate(time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)))
	doc.SetInfo(canvas.Info{Title: "Rapporto", Keywords: "report-id"})

	s, err := doc.NewPage()
	if err != nil {
		t.Fatal(err)
	}
	s.Text(40, 800, "Lunedì 19 ottobre 2026 • ✓", canvas.Bold(10), canvas.Red)
	s.FillRect(40, 700, 100, 20, canvas.LightGray)
	s.StrokeRect(40, 700, 100, 20, 0.5, canvas.Black)
	s.Line(40, 690, 140, 690, 0.5, canvas.Black)

	img := image.NewRGBA(image.Rect(0, 0, 4, 2))
	im, err := doc.AddImage(img)
	if err != nil {
		t.Fatalf("AddImage() error = %v", err)
	}
	s.Image(im, 40, 600, 40, 20)
	if err := s.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	var buf bytes.Buffer
	if err := doc.Save(&buf); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")) {
		t.Errorf("output does not start with a PDF header: %q", buf.Bytes()[:8])
	}
	if !bytes.Contains(buf.Bytes(), []byte("/Title")) {
		t.Error("title missing from metadata")
	}
}

func TestPNGCoordinates(t *testing.T) {
	doc := NewPNG(WithScale(1))
	s, _ := doc.NewPage()
	// A red square 10pt above the bottom-left corner.
	s.FillRect(0, 10, 20, 20, canvas.Red)
	s.Close()

	page := doc.Pages()[0]
	h := page.Bounds().Dy()
	if got := color.RGBAModel.Convert(page.At(5, h-20)).(color.RGBA); got.R != 255 || got.G != 0 {
		t.Errorf("pixel inside rect = %v, want red", got)
	}
	if got := color.RGBAModel.Convert(page.At(5, h-5)).(color.RGBA); got.G != 255 {
		t.Errorf("pixel below rect = %v, want white", got)
	}

	var buf bytes.Buffer
	if err := doc.Save(&buf); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	sheet, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decode sheet: %v", err)
	}
	if sheet.Bounds().Dy() != h {
		t.Errorf("sheet height = %d, want %d", sheet.Bounds().Dy(), h)
	}
}

func TestPNGSaveEmpty(t *testing.T) {
	if err := NewPNG().Save(&bytes.Buffer{}); err == nil {
		t.Error("Save() of empty preview succeeded")
	}
}
