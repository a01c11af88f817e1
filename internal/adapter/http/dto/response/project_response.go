package response

import (
	"time"

	"fukuro_studio/internal/domain/entities"
	"fukuro_studio/internal/usecase"
)

type CommentResponse struct {
	ID        string    `json:"id"`
	Timestamp float64   `json:"timestamp"`
	Position  string    `json:"position"`
	Text      string    `json:"text"`
	AddedAt   time.Time `json:"added_at"`
}

type DeliverableResponse struct {
	ID          string            `json:"id"`
	Title       string            `json:"title"`
	Type        string            `json:"type"`
	MediaKind   string            `json:"media_kind"`
	URL         string            `json:"url,omitempty"`
	Filename    string            `json:"filename,omitempty"`
	ContentType string            `json:"content_type,omitempty"`
	FileSize    int64             `json:"file_size,omitempty"`
	Notes       string            `json:"notes,omitempty"`
	Approved    bool              `json:"approved"`
	Comments    []CommentResponse `json:"comments"`
	AddedAt     time.Time         `json:"added_at"`
}

type ProjectResponse struct {
	ID           string                `json:"id"`
	Name         string                `json:"name"`
	QuoteCount   int                   `json:"quote_count"`
	Links        []entities.Link       `json:"links"`
	Deliverables []DeliverableResponse `json:"deliverables"`
	CreatedAt    time.Time             `json:"created_at"`
	UpdatedAt    time.Time             `json:"updated_at"`
}

type DashboardResponse struct {
	Project  ProjectResponse `json:"project"`
	Quotes   []QuoteResponse `json:"quotes"`
	Pending  int             `json:"pending"`
	Approved int             `json:"approved"`
}

type UploadTicketResponse struct {
	Project     ProjectResponse     `json:"project"`
	Deliverable DeliverableResponse `json:"deliverable"`
	UploadURL   string              `json:"upload_url"`
	ExpiresAt   time.Time           `json:"expires_at"`
}

type DownloadResponse struct {
	URL string `json:"url"`
}

func FromProject(p entities.Project) ProjectResponse {
	res := ProjectResponse{
		ID:           p.ID,
		Name:         p.Name,
		QuoteCount:   p.QuoteCount,
		Links:        p.Links,
		Deliverables: make([]DeliverableResponse, 0, len(p.Deliverables)),
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
	if res.Links == nil {
		res.Links = []entities.Link{}
	}
	for _, d := range p.Deliverables {
		res.Deliverables = append(res.Deliverables, FromDeliverable(d))
	}
	return res
}

func FromProjects(ps []entities.Project) []ProjectResponse {
	out := make([]ProjectResponse, 0, len(ps))
	for _, p := range ps {
		out = append(out, FromProject(p))
	}
	return out
}

// FromDeliverable omits the object key; files are reached through presigned URLs.
func FromDeliverable(d entities.Deliverable) DeliverableResponse {
	res := DeliverableResponse{
		ID:          d.ID,
		Title:       d.Title,
		Type:        string(d.Type),
		MediaKind:   string(d.MediaKind()),
		URL:         d.URL,
		Filename:    d.Filename,
		ContentType: d.ContentType,
		FileSize:    d.FileSize,
		Notes:       d.Notes,
		Approved:    d.Approved,
		Comments:    make([]CommentResponse, 0, len(d.Comments)),
		AddedAt:     d.AddedAt,
	}
	for _, c := range d.Comments {
		res.Comments = append(res.Comments, CommentResponse{
			ID:        c.ID,
			Timestamp: c.Timestamp,
			Position:  entities.FormatReviewTimestamp(c.Timestamp),
			Text:      c.Text,
			AddedAt:   c.AddedAt,
		})
	}
	return res
}

func FromDashboard(d usecase.ProjectDashboard) DashboardResponse {
	return DashboardResponse{
		Project:  FromProject(d.Project),
		Quotes:   FromQuotes(d.Quotes),
		Pending:  d.Pending,
		Approved: d.Approved,
	}
}

func FromUploadTicket(t usecase.UploadTicket) UploadTicketResponse {
	return UploadTicketResponse{
		Project:     FromProject(t.Project),
		Deliverable: FromDeliverable(t.Deliverable),
		UploadURL:   t.UploadURL,
		ExpiresAt:   t.ExpiresAt,
	}
}
