package photo

import (
	"net/http"
	"time"

	"github.com/kiwistay/hotel-booking-backend/internal/pkg/apperror"
)

var (
	ErrNotFound     = apperror.New(http.StatusNotFound, "photo not found")
	ErrNotAnImage   = apperror.New(http.StatusBadRequest, "uploaded file must be an image")
	ErrImageTooBig  = apperror.New(http.StatusBadRequest, "uploaded image exceeds the size limit")
	ErrEmptyUpload  = apperror.New(http.StatusBadRequest, "uploaded file is empty")
	ErrUnreadableIm = apperror.New(http.StatusBadRequest, "uploaded image could not be decoded")
)

// Photo is a stored room-type image plus its thumbnail.
type Photo struct {
	ID            string // UUID
	RoomTypeID    int64
	Filename      string
	StoragePath   string
	ThumbnailPath string
	Size          int64
	CreatedAt     time.Time
}

// URL returns the public URL for a photo by its ID.
func URL(id string) string {
	return "/photos/" + id
}

// ThumbnailURL returns the public URL for a photo's thumbnail by its ID.
func ThumbnailURL(id string) string {
	return "/photos/" + id + "/thumbnail"
}
