package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"fukuro_studio/internal/adapter/http/handlers/mocks"
	"fukuro_studio/internal/domain/entities"
	"fukuro_studio/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newProjectRouter(t *testing.T) (*gin.Engine, *mocks.MockIProjectUseCase) {
	t.Helper()
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIProjectUseCase(ctrl)
	h := NewProjectHandler(uc, nil)

	r := gin.New()
	r.GET("/v1/projects", h.ListProjects)
	r.POST("/v1/projects", h.CreateProject)
	r.GET("/v1/projects/:id", h.GetProject)
	r.GET("/v1/projects/:id/share.png", h.ShareQR)
	r.POST("/v1/projects/:id/links", h.AddLink)
	r.DELETE("/v1/projects/:id/links/:link_id", h.DeleteLink)
	r.POST("/v1/projects/:id/deliverables", h.AddDeliverableLink)
	r.POST("/v1/projects/:id/deliverables/uploads", h.RequestUpload)
	r.GET("/v1/projects/:id/deliverables/:deliverable_id/download", h.DownloadDeliverable)
	r.PATCH("/v1/projects/:id/deliverables/:deliverable_id/approval", h.ToggleApproval)
	r.DELETE("/v1/projects/:id/deliverables/:deliverable_id", h.DeleteDeliverable)
	r.POST("/v1/projects/:id/deliverables/:deliverable_id/comments", h.AddComment)
	r.DELETE("/v1/projects/:id/deliverables/:deliverable_id/comments/:comment_id", h.DeleteComment)
	return r, uc
}

func sampleProject() entities.Project {
	return entities.Project{
		ID:   "p-1",
		Name: "Spot Radio",
		Deliverables: []entities.Deliverable{{
			ID: "d-1", Title: "Mezcla", Type: entities.DeliverableTypeFile, Filename: "mix.wav",
		}},
	}
}

func TestProjectHandler_Read(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("list by name", func(t *testing.T) {
		r, uc := newProjectRouter(t)
		uc.EXPECT().GetByName(gomock.Any(), "spot radio").Return(sampleProject(), nil)

		w := performJSON(r, http.MethodGet, "/v1/projects?name=spot%20radio", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("dashboard", func(t *testing.T) {
		r, uc := newProjectRouter(t)
		uc.EXPECT().Dashboard(gomock.Any(), "p-1").Return(usecase.ProjectDashboard{
			Project: sampleProject(),
			Quotes:  []entities.Quote{{ID: "q-1", Status: entities.QuoteStatusPending}},
			Pending: 1,
		}, nil)

		w := performJSON(r, http.MethodGet, "/v1/projects/p-1", "")
		body := decodeBody(t, w)
		if w.Code != http.StatusOK || body["pending"] != 1.0 {
			t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
		}
		d := body["project"].(map[string]any)["deliverables"].([]any)[0].(map[string]any)
		if d["media_kind"] != "audio" {
			t.Fatalf("unexpected deliverable: %v", d)
		}
	})

	t.Run("dashboard not found", func(t *testing.T) {
		r, uc := newProjectRouter(t)
		uc.EXPECT().Dashboard(gomock.Any(), "nope").Return(usecase.ProjectDashboard{}, usecase.ErrProjectNotFound)

		if w := performJSON(r, http.MethodGet, "/v1/projects/nope", ""); w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("share qr", func(t *testing.T) {
		r, uc := newProjectRouter(t)
		uc.EXPECT().ShareQR(gomock.Any(), "p-1").Return([]byte("\x89PNG"), nil)

		w := performJSON(r, http.MethodGet, "/v1/projects/p-1/share.png", "")
		if w.Code != http.StatusOK || w.Header().Get("Content-Type") != "image/png" {
			t.Fatalf("unexpected response %d %q", w.Code, w.Header().Get("Content-Type"))
		}
	})
}

func TestProjectHandler_Mutations(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("create requires name", func(t *testing.T) {
		r, _ := newProjectRouter(t)
		if w := performJSON(r, http.MethodPost, "/v1/projects", `{}`); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("create", func(t *testing.T) {
		r, uc := newProjectRouter(t)
		uc.EXPECT().Upsert(gomock.Any(), "Spot Radio").Return(sampleProject(), nil)

		if w := performJSON(r, http.MethodPost, "/v1/projects", `{"name":"Spot Radio"}`); w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("add link with bad url", func(t *testing.T) {
		r, uc := newProjectRouter(t)
		uc.EXPECT().AddLink(gomock.Any(), "p-1", "Brief", "ftp://x").Return(entities.Project{}, usecase.ErrInvalidLinkURL)

		w := performJSON(r, http.MethodPost, "/v1/projects/p-1/links", `{"title":"Brief","url":"ftp://x"}`)
		if w.Code != http.StatusBadRequest || decodeBody(t, w)["code"] != "INVALID_URL" {
			t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("delete link", func(t *testing.T) {
		r, uc := newProjectRouter(t)
		uc.EXPECT().DeleteLink(gomock.Any(), "p-1", "l-1").Return(sampleProject(), nil)

		if w := performJSON(r, http.MethodDelete, "/v1/projects/p-1/links/l-1", ""); w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("deliverable link", func(t *testing.T) {
		r, uc := newProjectRouter(t)
		uc.EXPECT().AddDeliverableLink(gomock.Any(), "p-1", "Corte", "https://youtu.be/x", "v1").Return(sampleProject(), nil)

		w := performJSON(r, http.MethodPost, "/v1/projects/p-1/deliverables", `{"title":"Corte","url":"https://youtu.be/x","notes":"v1"}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})

	t.Run("upload ticket", func(t *testing.T) {
		r, uc := newProjectRouter(t)
		p := sampleProject()
		uc.EXPECT().RequestUpload(gomock.Any(), "p-1", usecase.UploadRequest{Filename: "mix.wav", FileSize: 2048}).Return(usecase.UploadTicket{
			Project:     p,
			Deliverable: p.Deliverables[0],
			UploadURL:   "https://minio.local/deliverables/x?X-Amz-Signature=abc",
			ExpiresAt:   time.Now().Add(10 * time.Minute),
		}, nil)

		w := performJSON(r, http.MethodPost, "/v1/projects/p-1/deliverables/uploads", `{"filename":"mix.wav","file_size":2048}`)
		if w.Code != http.StatusCreated || decodeBody(t, w)["upload_url"] == "" {
			t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("upload without storage", func(t *testing.T) {
		r, uc := newProjectRouter(t)
		uc.EXPECT().RequestUpload(gomock.Any(), "p-1", gomock.Any()).Return(usecase.UploadTicket{}, usecase.ErrFileStorageNotConfigured)

		w := performJSON(r, http.MethodPost, "/v1/projects/p-1/deliverables/uploads", `{"filename":"mix.wav"}`)
		if w.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", w.Code)
		}
	})

	t.Run("download redirect", func(t *testing.T) {
		r, uc := newProjectRouter(t)
		uc.EXPECT().DownloadURL(gomock.Any(), "p-1", "d-1").Return("https://minio.local/signed", nil)

		w := performJSON(r, http.MethodGet, "/v1/projects/p-1/deliverables/d-1/download?redirect=true", "")
		if w.Code != http.StatusFound || w.Header().Get("Location") != "https://minio.local/signed" {
			t.Fatalf("unexpected response %d %v", w.Code, w.Header())
		}
	})

	t.Run("toggle approval", func(t *testing.T) {
		r, uc := newProjectRouter(t)
		p := sampleProject()
		p.Deliverables[0].Approved = true
		uc.EXPECT().ToggleApproval(gomock.Any(), "p-1", "d-1").Return(p, nil)

		w := performJSON(r, http.MethodPatch, "/v1/projects/p-1/deliverables/d-1/approval", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("delete unknown deliverable", func(t *testing.T) {
		r, uc := newProjectRouter(t)
		uc.EXPECT().DeleteDeliverable(gomock.Any(), "p-1", "d-9").Return(entities.Project{}, usecase.ErrDeliverableNotFound)

		if w := performJSON(r, http.MethodDelete, "/v1/projects/p-1/deliverables/d-9", ""); w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("comment with bad timestamp", func(t *testing.T) {
		r, uc := newProjectRouter(t)
		uc.EXPECT().AddComment(gomock.Any(), "p-1", "d-1", "1:75", "más bajo").
			Return(entities.Project{}, fmt.Errorf("%w: seconds must be below 60", entities.ErrInvalidReviewTimestamp))

		w := performJSON(r, http.MethodPost, "/v1/projects/p-1/deliverables/d-1/comments", `{"timestamp":"1:75","text":"más bajo"}`)
		if w.Code != http.StatusBadRequest || decodeBody(t, w)["code"] != "INVALID_TIMESTAMP" {
			t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("delete comment", func(t *testing.T) {
		r, uc := newProjectRouter(t)
		uc.EXPECT().DeleteComment(gomock.Any(), "p-1", "d-1", "c-1").Return(sampleProject(), nil)

		if w := performJSON(r, http.MethodDelete, "/v1/projects/p-1/deliverables/d-1/comments/c-1", ""); w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("repository failure", func(t *testing.T) {
		r, uc := newProjectRouter(t)
		uc.EXPECT().List(gomock.Any()).Return(nil, errors.New("disk full"))

		if w := performJSON(r, http.MethodGet, "/v1/projects", ""); w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}
