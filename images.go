package geogrid

import (
	"fmt"
	"image"
	"os"
	"sync"
)

// DecodeImage opens and decodes one image file.
func DecodeImage(fname string) (image.Image, error) {
	f, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", fname, err)
	}
	return img, nil
}

// DecodeImages decodes a list of image files in parallel. Files that fail
// to open or decode are reported and skipped, so the returned slices may be
// shorter than the input. Order follows the input for the files that
// survive.
func DecodeImages(imageFiles []string) ([]string, []image.Image) {
	imgs := make([]image.Image, len(imageFiles))

	var wg sync.WaitGroup
	for i, fname := range imageFiles {
		wg.Add(1)
		go func(i int, fname string) {
			defer wg.Done()
			img, err := DecodeImage(fname)
			if err != nil {
				fmt.Printf("Skipping %s: %v\n", fname, err)
				return
			}
			imgs[i] = img
		}(i, fname)
	}
	wg.Wait()

	names := make([]string, 0, len(imageFiles))
	kept := make([]image.Image, 0, len(imageFiles))
	for i, img := range imgs {
		if img != nil {
			names = append(names, Basename(imageFiles[i]))
			kept = append(kept, img)
		}
	}
	return names, kept
}

// CenterOffset determines where the origin of an image should be painted
// so it sits centered in a canvas. An image at least as large as the canvas
// pins to (0, 0); a smaller dimension gets half the slack as margin, which
// is the same symmetric-margin rule the tiled renderer uses.
func CenterOffset(img image.Image, canWidth, canHeight int) image.Point {
	xmargin, ymargin := 0, 0
	if img.Bounds().Dx() < canWidth {
		xmargin = (canWidth - img.Bounds().Dx()) / 2
	}
	if img.Bounds().Dy() < canHeight {
		ymargin = (canHeight - img.Bounds().Dy()) / 2
	}
	return image.Point{X: xmargin, Y: ymargin}
}
