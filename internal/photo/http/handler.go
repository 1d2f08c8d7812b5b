package http

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kiwistay/hotel-booking-backend/internal/photo"
	"github.com/kiwistay/hotel-booking-backend/internal/pkg/request"
	"github.com/kiwistay/hotel-booking-backend/internal/pkg/response"
)

type Handler struct {
	service photo.Service
}

func NewHandler(service photo.Service) *Handler {
	return &Handler{service: service}
}

// Upload handles POST /admin/room-types/:id/photo.
func (h *Handler) Upload(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid room type id"})
		return
	}

	fileHeader, err := c.FormFile("photo")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "photo file is required"})
		return
	}

	p, err := h.service.Upload(c.Request.Context(), uri.ID, fileHeader)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, UploadResponse{
		PhotoID:      p.ID,
		URL:          photo.URL(p.ID),
		ThumbnailURL: photo.ThumbnailURL(p.ID),
	})
}

// Serve handles GET /photos/:id.
func (h *Handler) Serve(c *gin.Context) {
	h.stream(c, false)
}

// ServeThumbnail handles GET /photos/:id/thumbnail.
func (h *Handler) ServeThumbnail(c *gin.Context) {
	h.stream(c, true)
}

func (h *Handler) stream(c *gin.Context, thumbnail bool) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "photo id is required"})
		return
	}

	var (
		reader io.ReadCloser
		err    error
	)
	if thumbnail {
		reader, _, err = h.service.DownloadThumbnail(c.Request.Context(), id)
	} else {
		reader, _, err = h.service.Download(c.Request.Context(), id)
	}
	if err != nil {
		response.Error(c, err)
		return
	}
	defer reader.Close()

	// Photos are re-encoded to JPEG on upload.
	c.Header("Content-Type", "image/jpeg")
	c.Status(http.StatusOK)
	if _, err := io.Copy(c.Writer, reader); err != nil {
		// Response already started; nothing useful to send.
		return
	}
}
