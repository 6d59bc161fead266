package geogrid

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	fid "github.com/amterp/flexid"
)

// Favorite is one saved artwork reference. Hash is the uniqueness key; ID
// is a short generated handle for display and CLI selection.
type Favorite struct {
	ID   string `toml:"id"`
	Hash string `toml:"hash"`
	Name string `toml:"name"`
	Date string `toml:"date"`
}

// Store errors.
var (
	ErrDuplicateFavorite = errors.New("favorite already saved")
	ErrFavoriteNotFound  = errors.New("favorite not found")
)

const favSchema = "1"

type favFile struct {
	Schema    string     `toml:"schema"`
	Favorites []Favorite `toml:"favorite"`
}

// FavStore persists favorites as a TOML file.
type FavStore struct {
	path string
}

// NewFavStore returns a store backed by the given file path.
func NewFavStore(path string) *FavStore {
	return &FavStore{path: path}
}

// Path returns the backing file path.
func (s *FavStore) Path() string { return s.path }

// DefaultFavPath is the favorites file under the user's config directory.
func DefaultFavPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "favorites.toml"
	}
	return filepath.Join(home, ".config", "geogrid", "favorites.toml")
}

// Load reads all favorites. A missing file is an empty store.
func (s *FavStore) Load() ([]Favorite, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	var f favFile
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("favorites file %s: %w", s.path, err)
	}
	return f.Favorites, nil
}

// Save writes the full favorite list, atomically via a temp file.
func (s *FavStore) Save(favs []Favorite) error {
	if err := MaybeCreateDir(filepath.Dir(s.path)); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(filepath.Dir(s.path), "favorites.*.toml")
	if err != nil {
		return err
	}
	enc := toml.NewEncoder(tmp)
	if err := enc.Encode(favFile{Schema: favSchema, Favorites: favs}); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), s.path)
}

// Add saves a new favorite for hash. Saving the same hash twice is
// rejected; the hash, not the name, is the identity of the artwork.
func (s *FavStore) Add(hash, name string) (Favorite, error) {
	if _, err := ParseHash(hash); err != nil {
		return Favorite{}, err
	}
	favs, err := s.Load()
	if err != nil {
		return Favorite{}, err
	}
	for _, f := range favs {
		if f.Hash == hash {
			return Favorite{}, fmt.Errorf("%w: %s (%q)", ErrDuplicateFavorite, hash, f.Name)
		}
	}
	fav := Favorite{
		ID:   newFavID(),
		Hash: hash,
		Name: name,
		Date: time.Now().Format("2006-01-02"),
	}
	favs = append(favs, fav)
	if err := s.Save(favs); err != nil {
		return Favorite{}, err
	}
	return fav, nil
}

// Remove deletes the favorite for hash.
func (s *FavStore) Remove(hash string) error {
	favs, err := s.Load()
	if err != nil {
		return err
	}
	for i, f := range favs {
		if f.Hash == hash {
			return s.Save(append(favs[:i], favs[i+1:]...))
		}
	}
	return fmt.Errorf("%w: %s", ErrFavoriteNotFound, hash)
}

// Rename changes the display name of the favorite for hash.
func (s *FavStore) Rename(hash, name string) error {
	favs, err := s.Load()
	if err != nil {
		return err
	}
	for i := range favs {
		if favs[i].Hash == hash {
			favs[i].Name = name
			return s.Save(favs)
		}
	}
	return fmt.Errorf("%w: %s", ErrFavoriteNotFound, hash)
}

var favIDGen *fid.Generator

func init() {
	epoch := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	cfg := fid.NewConfig().
		WithEpoch(epoch).
		WithTickSize(10 * time.Millisecond).
		WithNumRandomChars(3)
	favIDGen = fid.MustNewGenerator(cfg)
}

func newFavID() string {
	return favIDGen.MustGenerate()
}
