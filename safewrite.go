package geogrid

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path"
)

// SafeWrite writes the vector canvas to fname, picking the format from the
// extension. The file appears atomically: output goes to a temp file in the
// same directory which is then renamed into place, so an export that fails
// partway never leaves a truncated file behind.
func SafeWrite(ctx *Context, fname string) error {
	return safeWrite(fname, func(tmp string) error {
		switch path.Ext(fname) {
		case ".png":
			return ctx.WritePNG(tmp)
		case ".svg":
			return ctx.WriteSVG(tmp)
		case ".pdf":
			return ctx.WritePDF(tmp)
		}
		return fmt.Errorf("unsupported file format %s", path.Ext(fname))
	})
}

// SafeWriteImage writes a rendered image to a PNG file with the same
// temp-then-rename discipline.
func SafeWriteImage(img image.Image, fname string) error {
	return safeWrite(fname, func(tmp string) error {
		f, err := os.Create(tmp)
		if err != nil {
			return err
		}
		if err := png.Encode(f, img); err != nil {
			f.Close()
			return err
		}
		return f.Close()
	})
}

func safeWrite(fname string, write func(tmp string) error) error {
	dir := path.Dir(fname)
	if err := MaybeCreateDir(dir); err != nil {
		return err
	}

	// Note: temp file and target need to be on the same drive
	tmpfile, err := os.CreateTemp(dir, "geogrid.*"+path.Ext(fname))
	if err != nil {
		return err
	}
	tmpfile.Close()

	if err := write(tmpfile.Name()); err != nil {
		os.Remove(tmpfile.Name())
		return err
	}
	if err := os.Rename(tmpfile.Name(), fname); err != nil {
		os.Remove(tmpfile.Name())
		return err
	}
	return os.Chmod(fname, 0664)
}
