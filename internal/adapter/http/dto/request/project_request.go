package request

type ProjectCreateRequest struct {
	Name string `json:"name" binding:"required"`
}

type LinkCreateRequest struct {
	Title string `json:"title"`
	URL   string `json:"url" binding:"required"`
}

type DeliverableLinkRequest struct {
	Title string `json:"title" binding:"required"`
	URL   string `json:"url" binding:"required"`
	Notes string `json:"notes"`
}

// DeliverableUploadRequest announces a file upload; the response carries the
// presigned URL the file must be PUT to.
type DeliverableUploadRequest struct {
	Title       string `json:"title"`
	Filename    string `json:"filename" binding:"required"`
	ContentType string `json:"content_type"`
	FileSize    int64  `json:"file_size" binding:"gte=0"`
	Notes       string `json:"notes"`
}

// CommentCreateRequest pins a note to a playback position ("M:SS" or seconds).
type CommentCreateRequest struct {
	Timestamp string `json:"timestamp" binding:"required"`
	Text      string `json:"text" binding:"required"`
}
