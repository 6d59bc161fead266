// Manages saved artworks: list, add, rm and thumbs subcommands over the
// favorites file, with interactive prompts where a value is missing.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	geogrid "github.com/0xJensMalm/GeoGrid"
	"github.com/charmbracelet/huh"
)

var (
	favsFlag  = flag.String("favs", geogrid.DefaultFavPath(), "Favorites file")
	hashFlag  = flag.String("hash", "", "Share hash for add/rm")
	nameFlag  = flag.String("name", "", "Name for add, prompts when empty")
	thumbFlag = flag.String("thumbs", "thumbs", "Output directory for the thumbs subcommand")
	pxFlag    = flag.Int("px", 200, "Thumbnail short-axis pixels")
)

func main() {
	flag.Parse()
	store := geogrid.NewFavStore(*favsFlag)

	cmd := flag.Arg(0)
	if cmd == "" {
		cmd = "list"
	}

	var err error
	switch cmd {
	case "list":
		err = list(store)
	case "add":
		err = add(store)
	case "rm":
		err = rm(store)
	case "thumbs":
		err = thumbs(store)
	default:
		err = fmt.Errorf("unknown command %q (want list, add, rm or thumbs)", cmd)
	}
	if err != nil {
		fmt.Printf("%v\n", err)
		os.Exit(1)
	}
}

func list(store *geogrid.FavStore) error {
	favs, err := store.Load()
	if err != nil {
		return err
	}
	if len(favs) == 0 {
		fmt.Println("No favorites saved.")
		return nil
	}
	for _, f := range favs {
		fmt.Printf("%-8s %-24s %-12s %s\n", f.ID, f.Name, f.Date, f.Hash)
	}
	return nil
}

func add(store *geogrid.FavStore) error {
	hash := *hashFlag
	if hash == "" {
		return errors.New("add needs -hash")
	}
	if _, err := geogrid.ParseHash(hash); err != nil {
		return err
	}

	name := *nameFlag
	if name == "" {
		input := huh.NewInput().
			Title("Name this artwork").
			Value(&name)
		if err := input.Run(); err != nil {
			return err
		}
	}
	if name == "" {
		name = hash
	}

	fav, err := store.Add(hash, name)
	if err != nil {
		return err
	}
	fmt.Printf("Saved %q as %s\n", fav.Name, fav.ID)
	return nil
}

func rm(store *geogrid.FavStore) error {
	hash := *hashFlag
	if hash == "" {
		favs, err := store.Load()
		if err != nil {
			return err
		}
		if len(favs) == 0 {
			return errors.New("no favorites to remove")
		}
		opts := make([]huh.Option[string], len(favs))
		for i, f := range favs {
			opts[i] = huh.NewOption(fmt.Sprintf("%s (%s)", f.Name, f.Hash), f.Hash)
		}
		sel := huh.NewSelect[string]().
			Title("Remove which favorite?").
			Options(opts...).
			Value(&hash)
		if err := sel.Run(); err != nil {
			return err
		}
	}

	confirm := false
	if err := huh.NewConfirm().
		Title(fmt.Sprintf("Remove %s?", hash)).
		Value(&confirm).
		Run(); err != nil {
		return err
	}
	if !confirm {
		return nil
	}
	if err := store.Remove(hash); err != nil {
		return err
	}
	fmt.Printf("Removed %s\n", hash)
	return nil
}

// thumbs regenerates a deterministic preview for every saved favorite.
func thumbs(store *geogrid.FavStore) error {
	favs, err := store.Load()
	if err != nil {
		return err
	}
	for _, f := range favs {
		img, err := geogrid.Thumbnail(f.Hash, *pxFlag)
		if err != nil {
			fmt.Printf("Skipping %s: %v\n", f.Hash, err)
			continue
		}
		fname := filepath.Join(*thumbFlag, fmt.Sprintf("fav-%s.png", f.Hash))
		if err := geogrid.SafeWriteImage(img, fname); err != nil {
			return err
		}
		fmt.Printf("Saved to %s\n", fname)
	}
	return nil
}
