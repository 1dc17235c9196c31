package dto

// UploadResponse is returned by the image upload relay.
type UploadResponse struct {
	URL string `json:"url"`
}
