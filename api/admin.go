package api

import (
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"soundbridge/domain"
	"soundbridge/errors"
)

func (s *Server) handleAdminCheck(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"admin": true})
}

func (s *Server) handleStats(c *fiber.Ctx) error {
	overview, err := s.stats.Overview()
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(overview)
}

// handleCreateSong ingests a multipart form with the song fields plus
// audioFile and imageFile uploads. Files are sniffed by content, not
// trusted by extension, and stored under the media directory.
func (s *Server) handleCreateSong(c *fiber.Ctx) error {
	duration, _ := strconv.Atoi(c.FormValue("duration"))
	song := domain.Song{
		Title:    c.FormValue("title"),
		Artist:   c.FormValue("artist"),
		Duration: duration,
	}
	if song.Title == "" || song.Artist == "" {
		return fail(c, fmt.Errorf("%w: title and artist are required", errors.ErrEmptyContent))
	}
	if albumID := c.FormValue("albumId"); albumID != "" {
		id, err := uuid.Parse(albumID)
		if err != nil {
			return fail(c, errors.ErrAlbumNotFound)
		}
		if _, err = s.catalog.GetAlbum(id); err != nil {
			return fail(c, err)
		}
		song.AlbumID = &id
	}

	var err error
	if song.AudioURL, err = s.saveUpload(c, "audioFile", "audio/"); err != nil {
		return fail(c, err)
	}
	if song.ImageURL, err = s.saveUpload(c, "imageFile", "image/"); err != nil {
		return fail(c, err)
	}

	created, err := s.catalog.CreateSong(song)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

func (s *Server) handleDeleteSong(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fail(c, errors.ErrSongNotFound)
	}
	if err = s.catalog.DeleteSong(id); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "song deleted"})
}

func (s *Server) handleCreateAlbum(c *fiber.Ctx) error {
	releaseYear, _ := strconv.Atoi(c.FormValue("releaseYear"))
	album := domain.Album{
		Title:       c.FormValue("title"),
		Artist:      c.FormValue("artist"),
		ReleaseYear: releaseYear,
	}
	if album.Title == "" || album.Artist == "" {
		return fail(c, fmt.Errorf("%w: title and artist are required", errors.ErrEmptyContent))
	}

	var err error
	if album.ImageURL, err = s.saveUpload(c, "imageFile", "image/"); err != nil {
		return fail(c, err)
	}

	created, err := s.catalog.CreateAlbum(album)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

// handleDeleteAlbum removes the album and all its songs.
func (s *Server) handleDeleteAlbum(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fail(c, errors.ErrAlbumNotFound)
	}
	if err = s.catalog.DeleteAlbum(id); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "album deleted"})
}

// saveUpload sniffs the uploaded file's real content type, refuses
// anything outside the wanted family, and writes it under the media
// directory with a fresh name. Returns the public URL path.
func (s *Server) saveUpload(c *fiber.Ctx, field, wantPrefix string) (string, error) {
	header, err := c.FormFile(field)
	if err != nil {
		return "", fmt.Errorf("%w: missing %s", errors.ErrEmptyContent, field)
	}
	mtype, err := sniffUpload(header)
	if err != nil {
		return "", err
	}
	if !strings.HasPrefix(mtype.String(), wantPrefix) {
		return "", fmt.Errorf("%w: %s is %s", errors.ErrUnsupportedMedia, field, mtype.String())
	}

	name := uuid.New().String() + mtype.Extension()
	if err = c.SaveFile(header, filepath.Join(s.mediaDir, name)); err != nil {
		return "", err
	}
	return "/media/" + name, nil
}

func sniffUpload(header *multipart.FileHeader) (*mimetype.MIME, error) {
	file, err := header.Open()
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return mimetype.DetectReader(file)
}
