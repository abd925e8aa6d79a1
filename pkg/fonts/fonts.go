// Package fonts provides the faces used for raster previews.
//
// The Go font family is parsed once from golang.org/x/image/font/gofont and
// faces are cached per style and pixel size, so preview pages can ask for
// the same face repeatedly without re-parsing.
package fonts

import (
	"fmt"
	"sync"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

var (
	parseOnce sync.Once
	regular   *truetype.Font
	bold      *truetype.Font
	parseErr  error
)

func parse() error {
	parseOnce.Do(func() {
		if regular, parseErr = truetype.Parse(goregular.TTF); parseErr != nil {
			parseErr = fmt.Errorf("parse regular font: %w", parseErr)
			return
		}
		if bold, parseErr = truetype.Parse(gobold.TTF); parseErr != nil {
			parseErr = fmt.Errorf("parse bold font: %w", parseErr)
		}
	})
	return parseErr
}

type faceKey struct {
	bold bool
	size float64
}

// Cache hands out faces by style and size. It is safe for concurrent use.
type Cache struct {
	mu    sync.Mutex
	faces map[faceKey]font.Face
}

// NewCache returns an empty face cache.
func NewCache() *Cache {
	return &Cache{faces: make(map[faceKey]font.Face)}
}

// Face returns the regular or bold face at size pixels.
func (c *Cache) Face(isBold bool, size float64) (font.Face, error) {
	if err := parse(); err != nil {
		return nil, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	k := faceKey{bold: isBold, size: size}
	if f, ok := c.faces[k]; ok {
		return f, nil
	}
	ttf := regular
	if isBold {
		ttf = bold
	}
	f := truetype.NewFace(ttf, &truetype.Options{Size: size, DPI: 72, Hinting: font.HintingFull})
	c.faces[k] = f
	return f, nil
}

// Close releases all cached faces.
func (c *Cache) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for k, f := range c.faces {
		f.Close()
		delete(c.faces, k)
	}
	return nil
}
