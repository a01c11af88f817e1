package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"path"
	"sort"
	"strconv"
	"strings"
	"time"

	"fukuro_studio/internal/domain/entities"
	"fukuro_studio/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// MaxUploadSize caps a single deliverable file.
const MaxUploadSize int64 = 2 << 30

var (
	ErrProjectNotFound          = errors.New("project not found")
	ErrInvalidProjectName       = errors.New("invalid project name")
	ErrInvalidLinkURL           = errors.New("invalid link url")
	ErrLinkNotFound             = errors.New("link not found")
	ErrDeliverableNotFound      = errors.New("deliverable not found")
	ErrInvalidDeliverable       = errors.New("invalid deliverable")
	ErrNotAFileDeliverable      = errors.New("deliverable is not a file")
	ErrFileTooLarge             = errors.New("file too large")
	ErrFileStorageNotConfigured = errors.New("file storage not configured")
	ErrEmptyComment             = errors.New("comment text is required")
	ErrCommentNotFound          = errors.New("comment not found")
)

// ProjectDashboard is a project with its quotes, as shown to the client.
type ProjectDashboard struct {
	Project  entities.Project
	Quotes   []entities.Quote
	Pending  int
	Approved int
}

// UploadRequest describes a file the studio is about to upload as a deliverable.
type UploadRequest struct {
	Title       string
	Filename    string
	ContentType string
	FileSize    int64
	Notes       string
}

// UploadTicket carries the presigned URL the file must be PUT to.
type UploadTicket struct {
	Project     entities.Project
	Deliverable entities.Deliverable
	UploadURL   string
	ExpiresAt   time.Time
}

// IProjectUseCase exposes the project dashboard: reference links, deliverables,
// approvals and timestamped review comments.

type IProjectUseCase interface {
	Upsert(ctx context.Context, name string) (entities.Project, error)
	GetByID(ctx context.Context, id string) (entities.Project, error)
	GetByName(ctx context.Context, name string) (entities.Project, error)
	List(ctx context.Context) ([]entities.Project, error)
	Dashboard(ctx context.Context, id string) (ProjectDashboard, error)
	AddLink(ctx context.Context, projectID, title, rawURL string) (entities.Project, error)
	DeleteLink(ctx context.Context, projectID, linkID string) (entities.Project, error)
	AddDeliverableLink(ctx context.Context, projectID, title, rawURL, notes string) (entities.Project, error)
	RequestUpload(ctx context.Context, projectID string, req UploadRequest) (UploadTicket, error)
	DownloadURL(ctx context.Context, projectID, deliverableID string) (string, error)
	ToggleApproval(ctx context.Context, projectID, deliverableID string) (entities.Project, error)
	DeleteDeliverable(ctx context.Context, projectID, deliverableID string) (entities.Project, error)
	AddComment(ctx context.Context, projectID, deliverableID, timestamp, text string) (entities.Project, error)
	DeleteComment(ctx context.Context, projectID, deliverableID, commentID string) (entities.Project, error)
	ShareQR(ctx context.Context, projectID string) ([]byte, error)
}

type ProjectUseCase struct {
	repo          interfaces.IProjectRepository
	quotes        interfaces.IQuoteRepository
	storage       interfaces.IFileStorage
	clock         interfaces.IClock
	publicBaseURL string
	urlTTL        time.Duration
	log           *zap.Logger
}

var _ IProjectUseCase = (*ProjectUseCase)(nil)

func NewProjectUseCase(
	repo interfaces.IProjectRepository,
	quotes interfaces.IQuoteRepository,
	storage interfaces.IFileStorage,
	clock interfaces.IClock,
	publicBaseURL string,
	urlTTL time.Duration,
	log *zap.Logger,
) *ProjectUseCase {
	if log == nil {
		log = zap.NewNop()
	}
	if urlTTL <= 0 {
		urlTTL = 15 * time.Minute
	}
	return &ProjectUseCase{
		repo:          repo,
		quotes:        quotes,
		storage:       storage,
		clock:         clock,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
		urlTTL:        urlTTL,
		log:           log,
	}
}

// Upsert creates a project or refreshes an existing one matched by name,
// ignoring case. The quote counter is preserved.
func (u *ProjectUseCase) Upsert(ctx context.Context, name string) (entities.Project, error) {
	return touchProject(ctx, u.repo, name, u.clock.Now().UTC(), false)
}

func (u *ProjectUseCase) GetByID(ctx context.Context, id string) (entities.Project, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Project{}, ErrInvalidProjectID
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Project{}, err
	}
	if p.ID == "" {
		return entities.Project{}, ErrProjectNotFound
	}
	return p, nil
}

func (u *ProjectUseCase) GetByName(ctx context.Context, name string) (entities.Project, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return entities.Project{}, ErrInvalidProjectName
	}

	p, err := u.repo.GetByName(ctx, name)
	if err != nil {
		return entities.Project{}, err
	}
	if p.ID == "" {
		return entities.Project{}, ErrProjectNotFound
	}
	return p, nil
}

func (u *ProjectUseCase) List(ctx context.Context) ([]entities.Project, error) {
	projects, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(projects, func(i, j int) bool {
		return projects[i].UpdatedAt.After(projects[j].UpdatedAt)
	})
	return projects, nil
}

// Dashboard loads a project and its quotes concurrently.
func (u *ProjectUseCase) Dashboard(ctx context.Context, id string) (ProjectDashboard, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return ProjectDashboard{}, ErrInvalidProjectID
	}

	var (
		project entities.Project
		quotes  []entities.Quote
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		project, err = u.repo.GetByID(gctx, id)
		return err
	})
	g.Go(func() error {
		var err error
		quotes, err = u.quotes.ListByProjectID(gctx, id)
		return err
	})
	if err := g.Wait(); err != nil {
		u.log.Error("[project][usecase] dashboard load failed", zap.String("project_id", id), zap.Error(err))
		return ProjectDashboard{}, err
	}
	if project.ID == "" {
		return ProjectDashboard{}, ErrProjectNotFound
	}

	sort.SliceStable(quotes, func(i, j int) bool {
		return quotes[i].SubmittedAt.After(quotes[j].SubmittedAt)
	})
	d := ProjectDashboard{Project: project, Quotes: quotes}
	for _, del := range project.Deliverables {
		if del.Approved {
			d.Approved++
		} else {
			d.Pending++
		}
	}
	return d, nil
}

func (u *ProjectUseCase) AddLink(ctx context.Context, projectID, title, rawURL string) (entities.Project, error) {
	rawURL = strings.TrimSpace(rawURL)
	if !isHTTPURL(rawURL) {
		return entities.Project{}, ErrInvalidLinkURL
	}
	title = strings.TrimSpace(title)
	if title == "" {
		title = rawURL
	}

	return u.mutate(ctx, projectID, func(p *entities.Project, now time.Time) error {
		p.Links = append(p.Links, entities.Link{ID: uuid.NewString(), Title: title, URL: rawURL, AddedAt: now})
		return nil
	})
}

func (u *ProjectUseCase) DeleteLink(ctx context.Context, projectID, linkID string) (entities.Project, error) {
	return u.mutate(ctx, projectID, func(p *entities.Project, _ time.Time) error {
		for i, l := range p.Links {
			if l.ID == linkID {
				p.Links = append(p.Links[:i], p.Links[i+1:]...)
				return nil
			}
		}
		return ErrLinkNotFound
	})
}

func (u *ProjectUseCase) AddDeliverableLink(ctx context.Context, projectID, title, rawURL, notes string) (entities.Project, error) {
	rawURL = strings.TrimSpace(rawURL)
	title = strings.TrimSpace(title)
	if title == "" {
		return entities.Project{}, ErrInvalidDeliverable
	}
	if !isHTTPURL(rawURL) {
		return entities.Project{}, ErrInvalidLinkURL
	}

	return u.mutate(ctx, projectID, func(p *entities.Project, now time.Time) error {
		p.Deliverables = append(p.Deliverables, entities.Deliverable{
			ID:      uuid.NewString(),
			Title:   title,
			Type:    entities.DeliverableTypeLink,
			URL:     rawURL,
			Notes:   strings.TrimSpace(notes),
			AddedAt: now,
		})
		return nil
	})
}

// RequestUpload records a file deliverable and returns a presigned PUT URL for it.
func (u *ProjectUseCase) RequestUpload(ctx context.Context, projectID string, req UploadRequest) (UploadTicket, error) {
	if u.storage == nil {
		return UploadTicket{}, ErrFileStorageNotConfigured
	}
	filename := path.Base(strings.ReplaceAll(strings.TrimSpace(req.Filename), "\\", "/"))
	if filename == "" || filename == "." || filename == "/" {
		return UploadTicket{}, ErrInvalidDeliverable
	}
	if req.FileSize < 0 {
		return UploadTicket{}, ErrInvalidDeliverable
	}
	if req.FileSize > MaxUploadSize {
		return UploadTicket{}, ErrFileTooLarge
	}
	title := strings.TrimSpace(req.Title)
	if title == "" {
		title = filename
	}

	deliverable := entities.Deliverable{
		ID:          uuid.NewString(),
		Title:       title,
		Type:        entities.DeliverableTypeFile,
		Filename:    filename,
		ContentType: strings.TrimSpace(req.ContentType),
		FileSize:    req.FileSize,
		Notes:       strings.TrimSpace(req.Notes),
	}

	var ticket UploadTicket
	project, err := u.mutate(ctx, projectID, func(p *entities.Project, now time.Time) error {
		deliverable.ObjectKey = fmt.Sprintf("projects/%s/%s/%s", p.ID, deliverable.ID, filename)
		deliverable.AddedAt = now

		uploadURL, err := u.storage.PresignUpload(ctx, deliverable.ObjectKey, u.urlTTL)
		if err != nil {
			return err
		}
		ticket.UploadURL = uploadURL
		ticket.ExpiresAt = now.Add(u.urlTTL)

		p.Deliverables = append(p.Deliverables, deliverable)
		return nil
	})
	if err != nil {
		return UploadTicket{}, err
	}

	u.log.Info("[project][usecase] upload requested",
		zap.String("project_id", project.ID),
		zap.String("deliverable_id", deliverable.ID),
		zap.Int64("file_size", deliverable.FileSize))
	ticket.Project = project
	ticket.Deliverable = deliverable
	return ticket, nil
}

// DownloadURL returns a presigned GET URL for a file deliverable.
func (u *ProjectUseCase) DownloadURL(ctx context.Context, projectID, deliverableID string) (string, error) {
	if u.storage == nil {
		return "", ErrFileStorageNotConfigured
	}
	p, err := u.GetByID(ctx, projectID)
	if err != nil {
		return "", err
	}
	i := deliverableIndex(p, deliverableID)
	if i < 0 {
		return "", ErrDeliverableNotFound
	}
	d := p.Deliverables[i]
	if d.Type != entities.DeliverableTypeFile || d.ObjectKey == "" {
		return "", ErrNotAFileDeliverable
	}
	return u.storage.PresignDownload(ctx, d.ObjectKey, u.urlTTL)
}

func (u *ProjectUseCase) ToggleApproval(ctx context.Context, projectID, deliverableID string) (entities.Project, error) {
	return u.mutate(ctx, projectID, func(p *entities.Project, _ time.Time) error {
		i := deliverableIndex(*p, deliverableID)
		if i < 0 {
			return ErrDeliverableNotFound
		}
		p.Deliverables[i].Approved = !p.Deliverables[i].Approved
		return nil
	})
}

// DeleteDeliverable removes a deliverable. The stored object of a file
// deliverable is removed best effort.
func (u *ProjectUseCase) DeleteDeliverable(ctx context.Context, projectID, deliverableID string) (entities.Project, error) {
	var removed entities.Deliverable
	p, err := u.mutate(ctx, projectID, func(p *entities.Project, _ time.Time) error {
		i := deliverableIndex(*p, deliverableID)
		if i < 0 {
			return ErrDeliverableNotFound
		}
		removed = p.Deliverables[i]
		p.Deliverables = append(p.Deliverables[:i], p.Deliverables[i+1:]...)
		return nil
	})
	if err != nil {
		return entities.Project{}, err
	}

	if removed.ObjectKey != "" && u.storage != nil {
		if err := u.storage.Remove(ctx, removed.ObjectKey); err != nil {
			u.log.Warn("[project][usecase] object removal failed", zap.String("object_key", removed.ObjectKey), zap.Error(err))
		}
	}
	return p, nil
}

// AddComment pins a review comment to a playback position, given as "M:SS" or
// as plain seconds. Comments stay sorted by position.
func (u *ProjectUseCase) AddComment(ctx context.Context, projectID, deliverableID, timestamp, text string) (entities.Project, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return entities.Project{}, ErrEmptyComment
	}
	seconds, err := parseCommentPosition(timestamp)
	if err != nil {
		return entities.Project{}, err
	}

	return u.mutate(ctx, projectID, func(p *entities.Project, now time.Time) error {
		i := deliverableIndex(*p, deliverableID)
		if i < 0 {
			return ErrDeliverableNotFound
		}
		comments := append(p.Deliverables[i].Comments, entities.Comment{
			ID:        uuid.NewString(),
			Timestamp: seconds,
			Text:      text,
			AddedAt:   now,
		})
		sort.SliceStable(comments, func(a, b int) bool {
			return comments[a].Timestamp < comments[b].Timestamp
		})
		p.Deliverables[i].Comments = comments
		return nil
	})
}

func (u *ProjectUseCase) DeleteComment(ctx context.Context, projectID, deliverableID, commentID string) (entities.Project, error) {
	return u.mutate(ctx, projectID, func(p *entities.Project, _ time.Time) error {
		i := deliverableIndex(*p, deliverableID)
		if i < 0 {
			return ErrDeliverableNotFound
		}
		comments := p.Deliverables[i].Comments
		for j, c := range comments {
			if c.ID == commentID {
				p.Deliverables[i].Comments = append(comments[:j], comments[j+1:]...)
				return nil
			}
		}
		return ErrCommentNotFound
	})
}

// ShareQR renders the public dashboard URL of a project as a PNG QR code.
func (u *ProjectUseCase) ShareQR(ctx context.Context, projectID string) ([]byte, error) {
	p, err := u.GetByID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	return qrcode.Encode(u.ShareURL(p.ID), qrcode.Medium, 256)
}

// ShareURL is the public dashboard address of a project.
func (u *ProjectUseCase) ShareURL(projectID string) string {
	return fmt.Sprintf("%s/project.html?id=%s", u.publicBaseURL, url.QueryEscape(projectID))
}

// mutate loads a project, applies fn and saves the whole item (last writer wins).
func (u *ProjectUseCase) mutate(ctx context.Context, projectID string, fn func(p *entities.Project, now time.Time) error) (entities.Project, error) {
	p, err := u.GetByID(ctx, projectID)
	if err != nil {
		return entities.Project{}, err
	}

	now := u.clock.Now().UTC()
	if err := fn(&p, now); err != nil {
		return entities.Project{}, err
	}
	p.UpdatedAt = now

	saved, err := u.repo.Save(ctx, p)
	if err != nil {
		u.log.Error("[project][usecase] save failed", zap.String("project_id", p.ID), zap.Error(err))
		return entities.Project{}, err
	}
	return saved, nil
}

// touchProject creates the named project or refreshes the existing one.
// countQuote increments the quote counter (a new project starts at 1).
func touchProject(ctx context.Context, repo interfaces.IProjectRepository, name string, now time.Time, countQuote bool) (entities.Project, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return entities.Project{}, ErrInvalidProjectName
	}

	p, err := repo.GetByName(ctx, name)
	if err != nil {
		return entities.Project{}, err
	}

	if p.ID == "" {
		p = entities.Project{
			ID:        uuid.NewString(),
			Name:      name,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if countQuote {
			p.QuoteCount = 1
		}
		return repo.Create(ctx, p)
	}

	if countQuote {
		p.QuoteCount++
	} else {
		p.Name = name
	}
	p.UpdatedAt = now
	return repo.Save(ctx, p)
}

func deliverableIndex(p entities.Project, id string) int {
	for i, d := range p.Deliverables {
		if d.ID == id {
			return i
		}
	}
	return -1
}

func parseCommentPosition(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if strings.Contains(s, ":") {
		seconds, err := entities.ParseReviewTimestamp(s)
		return float64(seconds), err
	}
	seconds, err := strconv.ParseFloat(s, 64)
	if err != nil || seconds < 0 {
		return 0, fmt.Errorf("%w: %q", entities.ErrInvalidReviewTimestamp, s)
	}
	return seconds, nil
}

func isHTTPURL(raw string) bool {
	if validate.Var(raw, "required,url") != nil {
		return false
	}
	parsed, err := url.Parse(raw)
	return err == nil && (parsed.Scheme == "http" || parsed.Scheme == "https")
}
