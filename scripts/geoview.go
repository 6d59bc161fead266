// This package monitors an export folder and displays geogrid renders as
// they appear. Left/right arrows cycle through everything seen so far,
// R resizes the window to the current image, Q or Escape quits.
package main

import (
	"flag"
	"fmt"
	"hash/crc64"
	"image"
	"image/color"
	"image/draw"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	geogrid "github.com/0xJensMalm/GeoGrid"
	"github.com/fsnotify/fsnotify"
	"golang.org/x/exp/shiny/driver"
	"golang.org/x/exp/shiny/screen"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/lifecycle"
	"golang.org/x/mobile/event/paint"
	"golang.org/x/mobile/event/size"
)

var dirFlag = flag.String("dir", "samples", "Export folder to monitor")

type gallery struct {
	mu    sync.Mutex
	names []string
	imgs  []image.Image
	crcs  map[string]uint64
	cur   int
}

func main() {
	flag.Parse()

	g := &gallery{crcs: make(map[string]uint64)}
	g.scan(*dirFlag)

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		fmt.Printf("Failed to create watcher: %v\n", err)
		return
	}
	defer watcher.Close()
	if err := watcher.Add(*dirFlag); err != nil {
		fmt.Printf("Problem adding folder watcher: %v\n", err)
		return
	}
	fmt.Printf("Monitoring folder %q\n", *dirFlag)

	startViewer(g, watcher)
}

// scan loads every image already in the folder, oldest name first.
func (g *gallery) scan(dir string) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return
	}
	var files []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".png") {
			files = append(files, filepath.Join(dir, e.Name()))
		}
	}
	sort.Strings(files)
	names, imgs := geogrid.DecodeImages(files)
	g.names, g.imgs = names, imgs
	g.cur = len(imgs) - 1
	for _, f := range files {
		g.crcs[f] = fileChecksum(f)
	}
}

// add decodes one new file and makes it current. Unchanged files (the
// watcher fires several times per atomic export) are skipped via checksum.
func (g *gallery) add(fname string) bool {
	if !strings.HasSuffix(fname, ".png") {
		return false
	}
	sum := fileChecksum(fname)
	g.mu.Lock()
	if g.crcs[fname] == sum && sum != 0 {
		g.mu.Unlock()
		return false
	}
	g.crcs[fname] = sum
	g.mu.Unlock()

	img, err := geogrid.DecodeImage(fname)
	if err != nil {
		return false
	}
	g.mu.Lock()
	g.names = append(g.names, geogrid.Basename(fname))
	g.imgs = append(g.imgs, img)
	g.cur = len(g.imgs) - 1
	g.mu.Unlock()
	return true
}

func (g *gallery) current() (string, image.Image) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.cur < 0 || g.cur >= len(g.imgs) {
		return "", nil
	}
	return g.names[g.cur], g.imgs[g.cur]
}

func (g *gallery) step(delta int) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if len(g.imgs) == 0 {
		return
	}
	g.cur = (g.cur + delta + len(g.imgs)) % len(g.imgs)
}

func fileChecksum(fname string) uint64 {
	h := crc64.New(crc64.MakeTable(crc64.ECMA))
	bytes, err := os.ReadFile(fname)
	if err != nil {
		return 0
	}
	h.Write(bytes)
	return h.Sum64()
}

func startViewer(g *gallery, watcher *fsnotify.Watcher) {
	driver.Main(func(s screen.Screen) {
		winSize := image.Point{X: 800, Y: 800}
		if _, img := g.current(); img != nil {
			winSize = clampWindow(img.Bounds())
		}

		w, err := s.NewWindow(&screen.NewWindowOptions{
			Width:  winSize.X,
			Height: winSize.Y,
			Title:  "geoview",
		})
		if err != nil {
			fmt.Println(err)
			return
		}
		defer w.Release()

		// Forward file events into the window's event loop.
		go func() {
			for {
				select {
				case ev, ok := <-watcher.Events:
					if !ok {
						return
					}
					if ev.Op&(fsnotify.Create|fsnotify.Write) != 0 {
						if g.add(ev.Name) {
							w.Send(paint.Event{})
						}
					}
				case err, ok := <-watcher.Errors:
					if !ok {
						return
					}
					fmt.Println("ERROR", err)
				}
			}
		}()

		var sz size.Event
		for {
			switch e := w.NextEvent().(type) {
			case key.Event:
				if e.Direction != key.DirPress {
					break
				}
				switch e.Code {
				case key.CodeEscape, key.CodeQ:
					return
				case key.CodeRightArrow:
					g.step(1)
					w.Send(paint.Event{})
				case key.CodeLeftArrow:
					g.step(-1)
					w.Send(paint.Event{})
				case key.CodeR:
					if _, img := g.current(); img != nil {
						r := clampWindow(img.Bounds())
						sz.WidthPx, sz.HeightPx = r.X, r.Y
						w.Send(paint.Event{})
					}
				}

			case paint.Event:
				name, img := g.current()
				if img == nil {
					break
				}
				b, err := s.NewBuffer(image.Point{X: sz.WidthPx, Y: sz.HeightPx})
				if err != nil {
					fmt.Println(err)
					return
				}
				w.Fill(sz.Bounds(), color.Black, draw.Src)
				dp := geogrid.CenterOffset(img, sz.WidthPx, sz.HeightPx)
				draw.Draw(b.RGBA(), b.Bounds(), img, image.Point{}, draw.Src)
				w.Upload(dp, b, b.Bounds())
				b.Release()
				w.Publish()
				fmt.Printf("Showing %s\n", name)

			case size.Event:
				sz = e

			case lifecycle.Event:
				if e.To == lifecycle.StageDead {
					return
				}

			case error:
				fmt.Printf("Screen error: %v\n", e)
				return
			}
		}
	})
}

func clampWindow(r image.Rectangle) image.Point {
	p := image.Point{X: r.Dx(), Y: r.Dy()}
	if p.X > 1000 {
		p.X = 1000
	}
	if p.Y > 768 {
		p.Y = 768
	}
	return p
}
