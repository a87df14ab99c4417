// Command seed fills a fresh database with demo users, albums and
// songs, and prints the Argon2id hash to configure as the admin
// password. Meant for local development; it refuses nothing and
// overwrites nothing.
package main

import (
	"log"
	"log/slog"
	"os"

	"github.com/blugelabs/bluge"
	"github.com/dgraph-io/badger/v4"
	"github.com/gookit/color"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"soundbridge/auth"
	"soundbridge/domain"
	"soundbridge/repositories"
)

type config struct {
	BadgerFilepath string `envconfig:"BADGER_FILEPATH" required:"true"`
	BlugeFilepath  string `envconfig:"BLUGE_FILEPATH" required:"true"`
	AdminPassword  string `envconfig:"ADMIN_PASSWORD" default:"changeme"`
}

func main() {
	_ = godotenv.Load()
	var cfg config
	if err := envconfig.Process("", &cfg); err != nil {
		log.Fatalf("Config error: %v", err)
	}

	db, err := badger.Open(badger.DefaultOptions(cfg.BadgerFilepath).
		WithLoggingLevel(badger.WARNING))
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	index, err := bluge.OpenWriter(bluge.DefaultConfig(cfg.BlugeFilepath))
	if err != nil {
		log.Fatalf("Failed to open search index: %v", err)
	}
	defer index.Close()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	users := repositories.NewUserRepository(db)
	catalog := repositories.NewCatalogRepository(db, index, logger)

	for _, user := range demoUsers() {
		created, err := users.Upsert(user)
		if err != nil {
			log.Fatalf("Failed to seed user %s: %v", user.FullName, err)
		}
		color.Green.Printf("user    %-22s %s\n", created.FullName, created.ID)
	}

	for _, album := range demoAlbums() {
		created, err := catalog.CreateAlbum(album)
		if err != nil {
			log.Fatalf("Failed to seed album %s: %v", album.Title, err)
		}
		color.Cyan.Printf("album   %-22s %s\n", created.Title, created.ID)

		for _, song := range demoSongs(created) {
			createdSong, err := catalog.CreateSong(song)
			if err != nil {
				log.Fatalf("Failed to seed song %s: %v", song.Title, err)
			}
			color.Blue.Printf("song    %-22s %s\n", createdSong.Title, createdSong.ID)
		}
	}

	hash, err := auth.HashPassword(cfg.AdminPassword)
	if err != nil {
		log.Fatalf("Failed to hash admin password: %v", err)
	}
	color.Yellow.Println("\nSet this as ADMIN_PASSWORD_HASH:")
	color.Yellow.Println(hash)
}

func demoUsers() []domain.User {
	return []domain.User{
		{ExternalID: "seed-ada", FullName: "Ada Lovelace",
			Email: "ada@example.com", ImageURL: "/media/avatars/ada.png"},
		{ExternalID: "seed-grace", FullName: "Grace Hopper",
			Email: "grace@example.com", ImageURL: "/media/avatars/grace.png"},
		{ExternalID: "seed-miles", FullName: "Miles Davis",
			Email: "miles@example.com", ImageURL: "/media/avatars/miles.png"},
		{ExternalID: "seed-nina", FullName: "Nina Simone",
			Email: "nina@example.com", ImageURL: "/media/avatars/nina.png"},
	}
}

func demoAlbums() []domain.Album {
	return []domain.Album{
		{Title: "Midnight Sessions", Artist: "The Night Owls",
			ImageURL: "/media/covers/midnight.png", ReleaseYear: 2021},
		{Title: "Urban Echoes", Artist: "City Sound Collective",
			ImageURL: "/media/covers/urban.png", ReleaseYear: 2023},
	}
}

func demoSongs(album domain.Album) []domain.Song {
	return []domain.Song{
		{Title: album.Title + " Pt. 1", Artist: album.Artist, Duration: 214,
			AudioURL: "/media/songs/demo1.mp3", ImageURL: album.ImageURL, AlbumID: &album.ID},
		{Title: album.Title + " Pt. 2", Artist: album.Artist, Duration: 187,
			AudioURL: "/media/songs/demo2.mp3", ImageURL: album.ImageURL, AlbumID: &album.ID},
	}
}
