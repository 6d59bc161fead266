package geogrid

import (
	"fmt"
	"image"
	"path/filepath"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	qrcode "github.com/skip2/go-qrcode"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
)

// ExportOptions controls the high-resolution export.
type ExportOptions struct {
	Dir    string // output directory, "" for the working directory
	Format string // png, svg or pdf; "" means png
	Base   int    // short-axis pixels, 0 for the per-aspect default
	QR     bool   // stamp a QR code of the hash in the lower-left corner
	NoSig  bool   // suppress the signature overlay
}

// DefaultExportBase is the default short-axis size of an export in pixels.
const DefaultExportBase = 1600

// ExportFilename is the canonical name for an exported artwork.
func ExportFilename(hash string, w, h int, ext string) string {
	return fmt.Sprintf("geogrid-%s-%dx%d%s", hash, w, h, ext)
}

// Export renders the configuration at print resolution and writes it
// atomically, returning the path written. PNG goes through the raster
// surface and carries the signature overlay (and optionally a QR stamp of
// the share hash); SVG and PDF go through the vector surface and stay pure
// geometry.
func Export(c *Config, opts ExportOptions) (string, error) {
	base := opts.Base
	if base <= 0 {
		base = DefaultExportBase
	}
	w, h := c.CanvasSize(base)
	hash := c.Hash()

	switch opts.Format {
	case "", "png":
		img, err := renderPNG(c, w, h, opts)
		if err != nil {
			return "", err
		}
		fname := filepath.Join(opts.Dir, ExportFilename(hash, w, h, ".png"))
		if err := SafeWriteImage(img, fname); err != nil {
			return "", err
		}
		return fname, nil
	case "svg", "pdf":
		ctx := NewContext(float64(w), float64(h))
		if err := RenderConfig(ctx, c, float64(w), float64(h)); err != nil {
			return "", err
		}
		fname := filepath.Join(opts.Dir, ExportFilename(hash, w, h, "."+opts.Format))
		if err := SafeWrite(ctx, fname); err != nil {
			return "", err
		}
		return fname, nil
	}
	return "", fmt.Errorf("unsupported export format %q", opts.Format)
}

func renderPNG(c *Config, w, h int, opts ExportOptions) (image.Image, error) {
	r := NewRaster(w, h)
	if err := RenderConfig(r, c, float64(w), float64(h)); err != nil {
		return nil, err
	}
	if !opts.NoSig {
		if err := drawSignature(r.Context(), c, w, h); err != nil {
			return nil, err
		}
	}
	if opts.QR {
		if err := drawQR(r.Context(), c.Hash(), h); err != nil {
			return nil, err
		}
	}
	return r.Image(), nil
}

// drawSignature writes "geogrid <hash>" in the effective signature color
// near the lower-right corner.
func drawSignature(dc *gg.Context, c *Config, w, h int) error {
	sig, err := ParseColor(c.EffectiveSig())
	if err != nil {
		return fmt.Errorf("signature color: %w", err)
	}

	size := float64(h) / 60
	dc.SetFontFace(signatureFace(size))
	dc.SetColor(sig)

	margin := float64(h) / 50
	text := "geogrid " + c.Hash()
	dc.DrawStringAnchored(text, float64(w)-margin, float64(h)-margin, 1, 0)
	return nil
}

// signatureFace builds a truetype face for the overlay, falling back to the
// builtin bitmap face if the embedded font fails to parse.
func signatureFace(size float64) font.Face {
	f, err := truetype.Parse(goregular.TTF)
	if err != nil {
		fmt.Printf("font parse failed, using basicfont: %v\n", err)
		return basicfont.Face7x13
	}
	return truetype.NewFace(f, &truetype.Options{Size: size})
}

func drawQR(dc *gg.Context, hash string, h int) error {
	qr, err := qrcode.New(hash, qrcode.Medium)
	if err != nil {
		return fmt.Errorf("qr encode: %w", err)
	}
	px := ClampInt(h/10, 64, 256)
	margin := h / 50
	dc.DrawImage(qr.Image(px), margin, h-margin-px)
	return nil
}

// Thumbnail regenerates a deterministic preview directly from a share
// hash. Because the pattern generator reseeds an identical stream, the
// thumbnail is the full artwork at reduced scale, not an approximation.
func Thumbnail(hash string, px int) (image.Image, error) {
	c, err := ParseHash(hash)
	if err != nil {
		return nil, err
	}
	if px <= 0 {
		px = 200
	}
	w, h := c.CanvasSize(px)
	r := NewRaster(w, h)
	if err := RenderConfig(r, c, float64(w), float64(h)); err != nil {
		return nil, err
	}
	return r.Image(), nil
}
