package geogrid

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func testStore(t *testing.T) *FavStore {
	t.Helper()
	return NewFavStore(filepath.Join(t.TempDir(), "favorites.toml"))
}

func TestFavStoreEmpty(t *testing.T) {
	s := testStore(t)
	favs, err := s.Load()
	require.NoError(t, err)
	require.Empty(t, favs, "missing file is an empty store")
}

func TestFavStoreAddAndLoad(t *testing.T) {
	s := testStore(t)

	fav, err := s.Add("a-0-2", "first one")
	require.NoError(t, err)
	require.Equal(t, "a-0-2", fav.Hash)
	require.Equal(t, "first one", fav.Name)
	require.NotEmpty(t, fav.ID)
	require.NotEmpty(t, fav.Date)

	_, err = s.Add("1-1-3-1-2-a", "second")
	require.NoError(t, err)

	favs, err := s.Load()
	require.NoError(t, err)
	require.Len(t, favs, 2)
	require.Equal(t, "first one", favs[0].Name)
	require.Equal(t, "second", favs[1].Name)
}

func TestFavStoreRejectsDuplicateHash(t *testing.T) {
	s := testStore(t)
	_, err := s.Add("a-0-2", "original")
	require.NoError(t, err)

	_, err = s.Add("a-0-2", "different name, same artwork")
	require.ErrorIs(t, err, ErrDuplicateFavorite)

	favs, err := s.Load()
	require.NoError(t, err)
	require.Len(t, favs, 1)
}

func TestFavStoreRejectsInvalidHash(t *testing.T) {
	s := testStore(t)
	_, err := s.Add("5-999-2", "bad")
	require.ErrorIs(t, err, ErrInvalidHash)
}

func TestFavStoreRemove(t *testing.T) {
	s := testStore(t)
	_, err := s.Add("a-0-2", "keep")
	require.NoError(t, err)
	_, err = s.Add("b-1-3", "drop")
	require.NoError(t, err)

	require.NoError(t, s.Remove("b-1-3"))
	favs, err := s.Load()
	require.NoError(t, err)
	require.Len(t, favs, 1)
	require.Equal(t, "keep", favs[0].Name)

	require.ErrorIs(t, s.Remove("b-1-3"), ErrFavoriteNotFound)
}

func TestFavStoreRename(t *testing.T) {
	s := testStore(t)
	_, err := s.Add("a-0-2", "old name")
	require.NoError(t, err)

	require.NoError(t, s.Rename("a-0-2", "new name"))
	favs, err := s.Load()
	require.NoError(t, err)
	require.Equal(t, "new name", favs[0].Name)

	require.ErrorIs(t, s.Rename("zz-0-2", "x"), ErrFavoriteNotFound)
}
