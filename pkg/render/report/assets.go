package report

import (
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"math"
	"os"

	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/matzehuels/kitreport/pkg/errors"
	"github.com/matzehuels/kitreport/pkg/render/canvas"
)

// pixelsPerPoint caps embedded image resolution (about 216 dpi).
const pixelsPerPoint = 3.0

// LoadImage decodes the image at path. An empty path or a file that does not
// exist yields (nil, nil) and the report draws a placeholder instead. A file
// that exists but cannot be read or decoded is an ErrCodeAsset error.
func LoadImage(path string) (image.Image, error) {
	if path == "" {
		return nil, nil
	}
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeAsset, err, "open image %s", path)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeAsset, err, "decode image %s", path)
	}
	return img, nil
}

// Downscale shrinks img so it has at most pixelsPerPoint pixels per point
// when drawn into a maxW × maxH box. Smaller images are returned as is.
func Downscale(img image.Image, maxW, maxH float64) image.Image {
	b := img.Bounds()
	w, h := canvas.FitWithin(float64(b.Dx()), float64(b.Dy()), maxW*pixelsPerPoint, maxH*pixelsPerPoint)
	dw, dh := int(math.Round(w)), int(math.Round(h))
	if dw >= b.Dx() || dh >= b.Dy() || dw < 1 || dh < 1 {
		return img
	}
	dst := image.NewNRGBA(image.Rect(0, 0, dw, dh))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}

func (r *renderer) registerImages() error {
	var err error
	if r.opts.Logo != nil {
		if r.logo, err = r.doc.AddImage(Downscale(r.opts.Logo, logoMaxWidth, logoMaxHeight)); err != nil {
			return errors.Wrap(errors.ErrCodeAsset, err, "embed logo")
		}
	}
	if r.opts.Signature != nil {
		if r.signature, err = r.doc.AddImage(Downscale(r.opts.Signature, signatureMaxWidth, signatureMaxHeight)); err != nil {
			return errors.Wrap(errors.ErrCodeAsset, err, "embed signature")
		}
	}
	return nil
}
