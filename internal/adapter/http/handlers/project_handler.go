package handlers

import (
	"errors"
	"net/http"

	request "fukuro_studio/internal/adapter/http/dto/request"
	response "fukuro_studio/internal/adapter/http/dto/response"
	"fukuro_studio/internal/domain/entities"
	"fukuro_studio/internal/usecase"
	"fukuro_studio/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ProjectHandler serves the project dashboard.
type ProjectHandler struct {
	usecase usecase.IProjectUseCase
	log     *zap.Logger
}

func NewProjectHandler(uc usecase.IProjectUseCase, log *zap.Logger) *ProjectHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &ProjectHandler{usecase: uc, log: log}
}

// ListProjects returns every project, or the one matching ?name= (case-insensitive).
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	if name := c.Query("name"); name != "" {
		p, err := h.usecase.GetByName(c.Request.Context(), name)
		if err != nil {
			abortWithError(c, h.log, mapProjectError(err))
			return
		}
		c.JSON(http.StatusOK, []response.ProjectResponse{response.FromProject(p)})
		return
	}

	projects, err := h.usecase.List(c.Request.Context())
	if err != nil {
		abortWithError(c, h.log, mapProjectError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromProjects(projects))
}

// GetProject godoc
// @Summary  Project dashboard
// @Tags     projects
// @Produce  json
// @Param    id path string true "Project id"
// @Success  200 {object} response.DashboardResponse
// @Failure  404 {object} pkg.HTTPError
// @Router   /projects/{id} [get]
func (h *ProjectHandler) GetProject(c *gin.Context) {
	d, err := h.usecase.Dashboard(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithError(c, h.log, mapProjectError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromDashboard(d))
}

func (h *ProjectHandler) CreateProject(c *gin.Context) {
	var payload request.ProjectCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWithError(c, h.log, errInvalidRequest)
		return
	}
	p, err := h.usecase.Upsert(c.Request.Context(), payload.Name)
	if err != nil {
		abortWithError(c, h.log, mapProjectError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromProject(p))
}

func (h *ProjectHandler) ShareQR(c *gin.Context) {
	png, err := h.usecase.ShareQR(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithError(c, h.log, mapProjectError(err))
		return
	}
	c.Data(http.StatusOK, "image/png", png)
}

func (h *ProjectHandler) AddLink(c *gin.Context) {
	var payload request.LinkCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWithError(c, h.log, errInvalidRequest)
		return
	}
	h.respondProject(c, http.StatusCreated)(h.usecase.AddLink(c.Request.Context(), c.Param("id"), payload.Title, payload.URL))
}

func (h *ProjectHandler) DeleteLink(c *gin.Context) {
	h.respondProject(c, http.StatusOK)(h.usecase.DeleteLink(c.Request.Context(), c.Param("id"), c.Param("link_id")))
}

func (h *ProjectHandler) AddDeliverableLink(c *gin.Context) {
	var payload request.DeliverableLinkRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWithError(c, h.log, errInvalidRequest)
		return
	}
	h.respondProject(c, http.StatusCreated)(h.usecase.AddDeliverableLink(c.Request.Context(), c.Param("id"), payload.Title, payload.URL, payload.Notes))
}

// RequestUpload godoc
// @Summary  Reserve a file deliverable
// @Description Records the deliverable and returns a presigned URL the file must be PUT to.
// @Tags     projects
// @Accept   json
// @Produce  json
// @Security Bearer
// @Param    id   path string true "Project id"
// @Param    body body request.DeliverableUploadRequest true "File"
// @Success  201 {object} response.UploadTicketResponse
// @Failure  413 {object} pkg.HTTPError
// @Failure  503 {object} pkg.HTTPError
// @Router   /projects/{id}/deliverables/uploads [post]
func (h *ProjectHandler) RequestUpload(c *gin.Context) {
	var payload request.DeliverableUploadRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWithError(c, h.log, errInvalidRequest)
		return
	}

	ticket, err := h.usecase.RequestUpload(c.Request.Context(), c.Param("id"), usecase.UploadRequest{
		Title:       payload.Title,
		Filename:    payload.Filename,
		ContentType: payload.ContentType,
		FileSize:    payload.FileSize,
		Notes:       payload.Notes,
	})
	if err != nil {
		abortWithError(c, h.log, mapProjectError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromUploadTicket(ticket))
}

func (h *ProjectHandler) DownloadDeliverable(c *gin.Context) {
	url, err := h.usecase.DownloadURL(c.Request.Context(), c.Param("id"), c.Param("deliverable_id"))
	if err != nil {
		abortWithError(c, h.log, mapProjectError(err))
		return
	}
	if c.Query("redirect") == "true" {
		c.Redirect(http.StatusFound, url)
		return
	}
	c.JSON(http.StatusOK, response.DownloadResponse{URL: url})
}

func (h *ProjectHandler) ToggleApproval(c *gin.Context) {
	h.respondProject(c, http.StatusOK)(h.usecase.ToggleApproval(c.Request.Context(), c.Param("id"), c.Param("deliverable_id")))
}

func (h *ProjectHandler) DeleteDeliverable(c *gin.Context) {
	h.respondProject(c, http.StatusOK)(h.usecase.DeleteDeliverable(c.Request.Context(), c.Param("id"), c.Param("deliverable_id")))
}

func (h *ProjectHandler) AddComment(c *gin.Context) {
	var payload request.CommentCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWithError(c, h.log, errInvalidRequest)
		return
	}
	h.respondProject(c, http.StatusCreated)(h.usecase.AddComment(c.Request.Context(), c.Param("id"), c.Param("deliverable_id"), payload.Timestamp, payload.Text))
}

func (h *ProjectHandler) DeleteComment(c *gin.Context) {
	h.respondProject(c, http.StatusOK)(h.usecase.DeleteComment(c.Request.Context(), c.Param("id"), c.Param("deliverable_id"), c.Param("comment_id")))
}

func (h *ProjectHandler) respondProject(c *gin.Context, status int) func(entities.Project, error) {
	return func(p entities.Project, err error) {
		if err != nil {
			abortWithError(c, h.log, mapProjectError(err))
			return
		}
		c.JSON(status, response.FromProject(p))
	}
}

func mapProjectError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidProjectID), errors.Is(err, usecase.ErrInvalidProjectName):
		return errInvalidRequest
	case errors.Is(err, usecase.ErrInvalidLinkURL):
		return pkg.NewDomainErrorSimple("INVALID_URL", "URL must start with http:// or https://", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidDeliverable):
		return pkg.NewDomainErrorSimple("INVALID_DELIVERABLE", "Invalid deliverable", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrNotAFileDeliverable):
		return pkg.NewDomainErrorSimple("NOT_A_FILE", "Deliverable is a link, not a file", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrEmptyComment):
		return pkg.NewDomainErrorSimple("EMPTY_COMMENT", "Comment text is required", http.StatusBadRequest)
	case errors.Is(err, entities.ErrInvalidReviewTimestamp):
		return pkg.NewDomainErrorSimple("INVALID_TIMESTAMP", "Use M:SS with seconds below 60", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrFileTooLarge):
		return pkg.NewDomainErrorSimple("FILE_TOO_LARGE", "File is too large", http.StatusRequestEntityTooLarge)
	case errors.Is(err, usecase.ErrFileStorageNotConfigured):
		return pkg.NewDomainErrorSimple("FILE_STORAGE_UNAVAILABLE", "File uploads are not available", http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrProjectNotFound):
		return pkg.NewDomainErrorSimple("PROJECT_NOT_FOUND", "Project not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrLinkNotFound):
		return pkg.NewDomainErrorSimple("LINK_NOT_FOUND", "Link not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrDeliverableNotFound):
		return pkg.NewDomainErrorSimple("DELIVERABLE_NOT_FOUND", "Deliverable not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrCommentNotFound):
		return pkg.NewDomainErrorSimple("COMMENT_NOT_FOUND", "Comment not found", http.StatusNotFound)
	default:
		return mapCommonError(err)
	}
}
