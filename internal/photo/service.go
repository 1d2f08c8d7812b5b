package photo

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"strings"

	"github.com/google/uuid"

	"github.com/kiwistay/hotel-booking-backend/internal/pkg/storage"
	"github.com/kiwistay/hotel-booking-backend/internal/roomtype"
)

// maxUploadBytes caps room photo uploads at 10 MiB.
const maxUploadBytes = 10 << 20

type Service interface {
	// Upload stores a room-type photo and its thumbnail, records the photo
	// row and repoints the room type's image URL at it.
	Upload(ctx context.Context, roomTypeID int64, header *multipart.FileHeader) (*Photo, error)

	// Download streams the full-size photo.
	Download(ctx context.Context, id string) (io.ReadCloser, *Photo, error)

	// DownloadThumbnail streams the thumbnail.
	DownloadThumbnail(ctx context.Context, id string) (io.ReadCloser, *Photo, error)
}

type service struct {
	repo    Repository
	rtSvc   roomtype.Service
	storage storage.Storage
	imgProc *storage.ImageProcessor
}

func NewService(repo Repository, rtSvc roomtype.Service, store storage.Storage) Service {
	return &service{
		repo:    repo,
		rtSvc:   rtSvc,
		storage: store,
		imgProc: storage.NewImageProcessor(),
	}
}

func (s *service) Upload(ctx context.Context, roomTypeID int64, header *multipart.FileHeader) (*Photo, error) {
	// Validate the room type exists before touching storage.
	if _, err := s.rtSvc.GetByID(ctx, roomTypeID); err != nil {
		return nil, err
	}

	if header.Size == 0 {
		return nil, ErrEmptyUpload
	}
	if header.Size > maxUploadBytes {
		return nil, ErrImageTooBig
	}
	if !strings.HasPrefix(header.Header.Get("Content-Type"), "image/") {
		return nil, ErrNotAnImage
	}

	src, err := header.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	fileBytes, err := io.ReadAll(io.LimitReader(src, maxUploadBytes+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read file content: %w", err)
	}
	if len(fileBytes) > maxUploadBytes {
		return nil, ErrImageTooBig
	}

	// Re-encode everything to JPEG: display size plus thumbnail. Decoding
	// also proves the upload really is an image.
	display, err := s.imgProc.FitJPEG(bytes.NewReader(fileBytes), 1600, 1200)
	if err != nil {
		return nil, ErrUnreadableIm
	}
	thumb, err := s.imgProc.FitJPEG(bytes.NewReader(fileBytes), 400, 300)
	if err != nil {
		return nil, ErrUnreadableIm
	}

	photoID := uuid.New().String()
	shard := photoID[:2]
	storagePath := fmt.Sprintf("photos/%s/%s.jpg", shard, photoID)
	thumbPath := fmt.Sprintf("photos/%s/%s_thumb.jpg", shard, photoID)

	if err := s.storage.Save(ctx, storagePath, display); err != nil {
		return nil, fmt.Errorf("failed to save photo: %w", err)
	}
	if err := s.storage.Save(ctx, thumbPath, thumb); err != nil {
		_ = s.storage.Delete(ctx, storagePath)
		return nil, fmt.Errorf("failed to save thumbnail: %w", err)
	}

	p := &Photo{
		ID:            photoID,
		RoomTypeID:    roomTypeID,
		Filename:      header.Filename,
		StoragePath:   storagePath,
		ThumbnailPath: thumbPath,
		Size:          header.Size,
	}

	if err := s.repo.Create(ctx, p); err != nil {
		// Cleanup storage if the DB insert fails.
		_ = s.storage.Delete(ctx, storagePath)
		_ = s.storage.Delete(ctx, thumbPath)
		return nil, err
	}

	if err := s.rtSvc.SetImageURL(ctx, roomTypeID, URL(p.ID)); err != nil {
		_ = s.repo.Delete(ctx, p.ID)
		_ = s.storage.Delete(ctx, storagePath)
		_ = s.storage.Delete(ctx, thumbPath)
		return nil, err
	}

	return p, nil
}

func (s *service) Download(ctx context.Context, id string) (io.ReadCloser, *Photo, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	stream, err := s.storage.Get(ctx, p.StoragePath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to retrieve photo from storage: %w", err)
	}

	return stream, p, nil
}

func (s *service) DownloadThumbnail(ctx context.Context, id string) (io.ReadCloser, *Photo, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	stream, err := s.storage.Get(ctx, p.ThumbnailPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to retrieve thumbnail from storage: %w", err)
	}

	return stream, p, nil
}
