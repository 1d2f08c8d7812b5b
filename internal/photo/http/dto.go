package http

type UploadResponse struct {
	PhotoID      string `json:"photoId"`
	URL          string `json:"url"`
	ThumbnailURL string `json:"thumbnailUrl"`
}
