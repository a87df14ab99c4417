//go:generate go run go.uber.org/mock/mockgen -source=catalog.go -destination=../mocks/mock_catalog_repository.go -package=mocks
package repositories

import (
	"context"
	"log/slog"
	"time"

	"github.com/blugelabs/bluge"
	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/samber/lo"

	"soundbridge/domain"
	"soundbridge/errors"
)

type ICatalogRepository interface {
	CreateSong(song domain.Song) (domain.Song, error)
	GetSong(id uuid.UUID) (domain.Song, error)
	ListSongs() ([]domain.Song, error)
	DeleteSong(id uuid.UUID) error
	SearchSongs(ctx context.Context, query string, limit int) ([]domain.Song, error)
	CreateAlbum(album domain.Album) (domain.Album, error)
	GetAlbum(id uuid.UUID) (domain.Album, error)
	ListAlbums() ([]domain.Album, error)
	DeleteAlbum(id uuid.UUID) error
	AlbumSongs(albumID uuid.UUID) ([]domain.Song, error)
	Stats() (domain.CatalogStats, error)
}

// CatalogRepository stores songs and albums in Badger and mirrors the
// searchable song fields into a Bluge index, kept in sync on every
// create and delete.
type CatalogRepository struct {
	db    *badger.DB
	index *bluge.Writer
	log   *slog.Logger
}

func NewCatalogRepository(db *badger.DB, index *bluge.Writer, log *slog.Logger) CatalogRepository {
	return CatalogRepository{db: db, index: index, log: log}
}

func songKey(id uuid.UUID) []byte  { return []byte("song:" + id.String()) }
func albumKey(id uuid.UUID) []byte { return []byte("album:" + id.String()) }

func (c CatalogRepository) CreateSong(song domain.Song) (domain.Song, error) {
	if song.ID == uuid.Nil {
		song.ID = uuid.New()
	}
	if song.AddedAt.IsZero() {
		song.AddedAt = time.Now().UTC()
	}
	bytes, err := json.Marshal(song)
	if err != nil {
		return domain.Song{}, err
	}
	err = c.db.Update(func(txn *badger.Txn) error {
		return txn.Set(songKey(song.ID), bytes)
	})
	if err != nil {
		return domain.Song{}, err
	}

	doc := bluge.NewDocument(song.ID.String()).
		AddField(bluge.NewTextField("title", song.Title).StoreValue()).
		AddField(bluge.NewTextField("artist", song.Artist).StoreValue())
	if err = c.index.Update(doc.ID(), doc); err != nil {
		return domain.Song{}, err
	}
	return song, nil
}

func (c CatalogRepository) GetSong(id uuid.UUID) (domain.Song, error) {
	var song domain.Song
	err := c.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(songKey(id))
		if err == badger.ErrKeyNotFound {
			return errors.ErrSongNotFound
		}
		if err != nil {
			return err
		}
		return item.Value(func(value []byte) error {
			return json.Unmarshal(value, &song)
		})
	})
	return song, err
}

func (c CatalogRepository) ListSongs() ([]domain.Song, error) {
	return scanJSON[domain.Song](c.db, "song:")
}

func (c CatalogRepository) DeleteSong(id uuid.UUID) error {
	err := c.db.Update(func(txn *badger.Txn) error {
		if _, err := txn.Get(songKey(id)); err == badger.ErrKeyNotFound {
			return errors.ErrSongNotFound
		}
		return txn.Delete(songKey(id))
	})
	if err != nil {
		return err
	}
	return c.index.Delete(bluge.NewDocument(id.String()).ID())
}

// SearchSongs runs a match query over title and artist and resolves the
// hits back to full song records.
func (c CatalogRepository) SearchSongs(ctx context.Context, query string, limit int) ([]domain.Song, error) {
	reader, err := c.index.Reader()
	if err != nil {
		return nil, err
	}
	defer reader.Close()

	boolean := bluge.NewBooleanQuery().
		AddShould(bluge.NewMatchQuery(query).SetField("title")).
		AddShould(bluge.NewMatchQuery(query).SetField("artist"))
	matches, err := reader.Search(ctx, bluge.NewTopNSearch(limit, boolean))
	if err != nil {
		return nil, err
	}

	var songs []domain.Song
	for {
		match, err := matches.Next()
		if err != nil {
			return nil, err
		}
		if match == nil {
			break
		}
		var id string
		err = match.VisitStoredFields(func(field string, value []byte) bool {
			if field == "_id" {
				id = string(value)
			}
			return true
		})
		if err != nil {
			return nil, err
		}
		songID, err := uuid.Parse(id)
		if err != nil {
			return nil, err
		}
		song, err := c.GetSong(songID)
		if err != nil {
			// Index can briefly lag a deletion; skip the orphan hit.
			c.log.Debug("search hit without record", "id", id)
			continue
		}
		songs = append(songs, song)
	}
	return songs, nil
}

func (c CatalogRepository) CreateAlbum(album domain.Album) (domain.Album, error) {
	if album.ID == uuid.Nil {
		album.ID = uuid.New()
	}
	if album.AddedAt.IsZero() {
		album.AddedAt = time.Now().UTC()
	}
	bytes, err := json.Marshal(album)
	if err != nil {
		return domain.Album{}, err
	}
	err = c.db.Update(func(txn *badger.Txn) error {
		return txn.Set(albumKey(album.ID), bytes)
	})
	return album, err
}

func (c CatalogRepository) GetAlbum(id uuid.UUID) (domain.Album, error) {
	var album domain.Album
	err := c.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(albumKey(id))
		if err == badger.ErrKeyNotFound {
			return errors.ErrAlbumNotFound
		}
		if err != nil {
			return err
		}
		return item.Value(func(value []byte) error {
			return json.Unmarshal(value, &album)
		})
	})
	return album, err
}

func (c CatalogRepository) ListAlbums() ([]domain.Album, error) {
	return scanJSON[domain.Album](c.db, "album:")
}

// DeleteAlbum removes the album and cascades to its songs.
func (c CatalogRepository) DeleteAlbum(id uuid.UUID) error {
	songs, err := c.AlbumSongs(id)
	if err != nil {
		return err
	}
	for _, song := range songs {
		if err = c.DeleteSong(song.ID); err != nil {
			return err
		}
	}
	return c.db.Update(func(txn *badger.Txn) error {
		if _, err := txn.Get(albumKey(id)); err == badger.ErrKeyNotFound {
			return errors.ErrAlbumNotFound
		}
		return txn.Delete(albumKey(id))
	})
}

func (c CatalogRepository) AlbumSongs(albumID uuid.UUID) ([]domain.Song, error) {
	songs, err := c.ListSongs()
	if err != nil {
		return nil, err
	}
	return lo.Filter(songs, func(song domain.Song, _ int) bool {
		return song.AlbumID != nil && *song.AlbumID == albumID
	}), nil
}

// Stats aggregates catalog totals for the admin dashboard. Artists are
// counted distinct across both songs and albums.
func (c CatalogRepository) Stats() (domain.CatalogStats, error) {
	songs, err := c.ListSongs()
	if err != nil {
		return domain.CatalogStats{}, err
	}
	albums, err := c.ListAlbums()
	if err != nil {
		return domain.CatalogStats{}, err
	}

	artists := make(map[string]struct{})
	for _, song := range songs {
		artists[song.Artist] = struct{}{}
	}
	for _, album := range albums {
		artists[album.Artist] = struct{}{}
	}
	return domain.CatalogStats{
		TotalSongs:   len(songs),
		TotalAlbums:  len(albums),
		TotalArtists: len(artists),
	}, nil
}

func scanJSON[T any](db *badger.DB, prefixStr string) ([]T, error) {
	var out []T
	err := db.View(func(txn *badger.Txn) error {
		prefix := []byte(prefixStr)
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			err := it.Item().Value(func(value []byte) error {
				var record T
				if err := json.Unmarshal(value, &record); err != nil {
					return err
				}
				out = append(out, record)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	return out, err
}
