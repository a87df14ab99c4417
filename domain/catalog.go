package domain

import (
	"time"

	"github.com/google/uuid"
)

// Song is a catalog entry. AudioURL and ImageURL point at the external
// object store; the catalog only records the references.
type Song struct {
	ID       uuid.UUID  `json:"id"`
	Title    string     `json:"title"`
	Artist   string     `json:"artist"`
	AudioURL string     `json:"audioUrl"`
	ImageURL string     `json:"imageUrl"`
	Duration int        `json:"duration"`
	AlbumID  *uuid.UUID `json:"albumId,omitempty"`
	AddedAt  time.Time  `json:"addedAt"`
}

type Album struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Artist      string    `json:"artist"`
	ImageURL    string    `json:"imageUrl"`
	ReleaseYear int       `json:"releaseYear"`
	AddedAt     time.Time `json:"addedAt"`
}

// CatalogStats feeds the admin dashboard.
type CatalogStats struct {
	TotalSongs   int `json:"totalSongs"`
	TotalAlbums  int `json:"totalAlbums"`
	TotalUsers   int `json:"totalUsers"`
	TotalArtists int `json:"totalArtists"`
}
