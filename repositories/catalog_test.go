package repositories

import (
	"context"
	"log/slog"
	"testing"

	"github.com/blugelabs/bluge"
	"github.com/stretchr/testify/require"

	"soundbridge/domain"
	"soundbridge/errors"
)

func newTestCatalog(t *testing.T) CatalogRepository {
	t.Helper()
	index, err := bluge.OpenWriter(bluge.InMemoryOnlyConfig())
	require.NoError(t, err)
	t.Cleanup(func() { _ = index.Close() })
	return NewCatalogRepository(newTestDB(t), index, slog.Default())
}

func TestCatalogRepository_Songs(t *testing.T) {
	t.Run("should create and read back a song", func(t *testing.T) {
		req := require.New(t)
		catalog := newTestCatalog(t)

		song, err := catalog.CreateSong(domain.Song{
			Title: "So What", Artist: "Miles Davis", Duration: 562,
		})
		req.NoError(err)
		req.NotEmpty(song.ID)
		req.False(song.AddedAt.IsZero())

		found, err := catalog.GetSong(song.ID)
		req.NoError(err)
		req.Equal("So What", found.Title)
	})

	t.Run("should delete and then report the song missing", func(t *testing.T) {
		req := require.New(t)
		catalog := newTestCatalog(t)
		song, err := catalog.CreateSong(domain.Song{Title: "x", Artist: "y"})
		req.NoError(err)

		req.NoError(catalog.DeleteSong(song.ID))

		_, err = catalog.GetSong(song.ID)
		req.ErrorIs(err, errors.ErrSongNotFound)
		req.ErrorIs(catalog.DeleteSong(song.ID), errors.ErrSongNotFound)
	})

	t.Run("should find songs by title and artist words", func(t *testing.T) {
		req := require.New(t)
		catalog := newTestCatalog(t)

		blue, err := catalog.CreateSong(domain.Song{Title: "Blue in Green", Artist: "Miles Davis"})
		req.NoError(err)
		_, err = catalog.CreateSong(domain.Song{Title: "Feeling Good", Artist: "Nina Simone"})
		req.NoError(err)

		byTitle, err := catalog.SearchSongs(context.Background(), "blue", 10)
		req.NoError(err)
		req.Len(byTitle, 1)
		req.Equal(blue.ID, byTitle[0].ID)

		byArtist, err := catalog.SearchSongs(context.Background(), "nina", 10)
		req.NoError(err)
		req.Len(byArtist, 1)
		req.Equal("Feeling Good", byArtist[0].Title)
	})

	t.Run("should drop deleted songs from search results", func(t *testing.T) {
		req := require.New(t)
		catalog := newTestCatalog(t)
		song, err := catalog.CreateSong(domain.Song{Title: "Ephemeral", Artist: "Nobody"})
		req.NoError(err)

		req.NoError(catalog.DeleteSong(song.ID))

		hits, err := catalog.SearchSongs(context.Background(), "ephemeral", 10)
		req.NoError(err)
		req.Empty(hits)
	})
}

func TestCatalogRepository_Albums(t *testing.T) {
	t.Run("should cascade album deletion to its songs", func(t *testing.T) {
		req := require.New(t)
		catalog := newTestCatalog(t)

		album, err := catalog.CreateAlbum(domain.Album{Title: "Kind of Blue", Artist: "Miles Davis"})
		req.NoError(err)
		song, err := catalog.CreateSong(domain.Song{
			Title: "So What", Artist: "Miles Davis", AlbumID: &album.ID,
		})
		req.NoError(err)
		loose, err := catalog.CreateSong(domain.Song{Title: "Loose Track", Artist: "Someone"})
		req.NoError(err)

		req.NoError(catalog.DeleteAlbum(album.ID))

		_, err = catalog.GetAlbum(album.ID)
		req.ErrorIs(err, errors.ErrAlbumNotFound)
		_, err = catalog.GetSong(song.ID)
		req.ErrorIs(err, errors.ErrSongNotFound)
		_, err = catalog.GetSong(loose.ID)
		req.NoError(err)
	})

	t.Run("should list only the album's songs", func(t *testing.T) {
		req := require.New(t)
		catalog := newTestCatalog(t)
		album, err := catalog.CreateAlbum(domain.Album{Title: "A", Artist: "X"})
		req.NoError(err)
		inAlbum, err := catalog.CreateSong(domain.Song{Title: "a1", Artist: "X", AlbumID: &album.ID})
		req.NoError(err)
		_, err = catalog.CreateSong(domain.Song{Title: "loose", Artist: "Y"})
		req.NoError(err)

		songs, err := catalog.AlbumSongs(album.ID)
		req.NoError(err)
		req.Len(songs, 1)
		req.Equal(inAlbum.ID, songs[0].ID)
	})
}

func TestCatalogRepository_Stats(t *testing.T) {
	t.Run("should count artists distinct across songs and albums", func(t *testing.T) {
		req := require.New(t)
		catalog := newTestCatalog(t)

		_, err := catalog.CreateAlbum(domain.Album{Title: "A", Artist: "Miles Davis"})
		req.NoError(err)
		_, err = catalog.CreateSong(domain.Song{Title: "s1", Artist: "Miles Davis"})
		req.NoError(err)
		_, err = catalog.CreateSong(domain.Song{Title: "s2", Artist: "Nina Simone"})
		req.NoError(err)

		stats, err := catalog.Stats()
		req.NoError(err)
		req.Equal(2, stats.TotalSongs)
		req.Equal(1, stats.TotalAlbums)
		req.Equal(2, stats.TotalArtists)
	})
}
