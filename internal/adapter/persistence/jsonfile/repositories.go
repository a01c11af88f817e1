package jsonfile

import (
	"context"
	"time"

	"fukuro_studio/internal/domain/entities"
	"fukuro_studio/internal/usecase/interfaces"
)

type QuoteRepository struct {
	c *collection[entities.Quote]
}

var _ interfaces.IQuoteRepository = (*QuoteRepository)(nil)

func NewQuoteRepository(dir string) (*QuoteRepository, error) {
	c, err := newCollection(dir, "quotes.json", func(q entities.Quote) string { return q.ID })
	if err != nil {
		return nil, err
	}
	return &QuoteRepository{c: c}, nil
}

func (r *QuoteRepository) Create(_ context.Context, q entities.Quote) (entities.Quote, error) {
	if err := r.c.insert(q); err != nil {
		return entities.Quote{}, err
	}
	return q, nil
}

func (r *QuoteRepository) GetByID(_ context.Context, id string) (entities.Quote, error) {
	return r.c.find(func(q entities.Quote) bool { return q.ID == id })
}

func (r *QuoteRepository) List(_ context.Context) ([]entities.Quote, error) {
	return r.c.all()
}

func (r *QuoteRepository) ListByProjectID(_ context.Context, projectID string) ([]entities.Quote, error) {
	return r.c.filter(func(q entities.Quote) bool { return q.ProjectID == projectID })
}

func (r *QuoteRepository) UpdateStatusByID(_ context.Context, id string, status entities.QuoteStatus) (entities.Quote, error) {
	q, ok, err := r.c.update(id, func(q *entities.Quote) {
		q.Status = status
		q.UpdatedAt = time.Now().UTC()
	})
	if err != nil || !ok {
		return entities.Quote{}, err
	}
	return q, nil
}

type ProjectRepository struct {
	c *collection[entities.Project]
}

var _ interfaces.IProjectRepository = (*ProjectRepository)(nil)

func NewProjectRepository(dir string) (*ProjectRepository, error) {
	c, err := newCollection(dir, "projects.json", func(p entities.Project) string { return p.ID })
	if err != nil {
		return nil, err
	}
	return &ProjectRepository{c: c}, nil
}

func (r *ProjectRepository) Create(_ context.Context, p entities.Project) (entities.Project, error) {
	if err := r.c.insert(p); err != nil {
		return entities.Project{}, err
	}
	return p, nil
}

func (r *ProjectRepository) Save(_ context.Context, p entities.Project) (entities.Project, error) {
	if err := r.c.upsert(p); err != nil {
		return entities.Project{}, err
	}
	return p, nil
}

func (r *ProjectRepository) GetByID(_ context.Context, id string) (entities.Project, error) {
	return r.c.find(func(p entities.Project) bool { return p.ID == id })
}

func (r *ProjectRepository) GetByName(_ context.Context, name string) (entities.Project, error) {
	key := entities.NameKey(name)
	return r.c.find(func(p entities.Project) bool { return entities.NameKey(p.Name) == key })
}

func (r *ProjectRepository) List(_ context.Context) ([]entities.Project, error) {
	return r.c.all()
}

type BillingPaymentRepository struct {
	c *collection[entities.BillingPayment]
}

var _ interfaces.IBillingPaymentRepository = (*BillingPaymentRepository)(nil)

func NewBillingPaymentRepository(dir string) (*BillingPaymentRepository, error) {
	c, err := newCollection(dir, "payments.json", func(p entities.BillingPayment) string { return p.ID })
	if err != nil {
		return nil, err
	}
	return &BillingPaymentRepository{c: c}, nil
}

func (r *BillingPaymentRepository) Create(_ context.Context, p entities.BillingPayment) (entities.BillingPayment, error) {
	if err := r.c.insert(p); err != nil {
		return entities.BillingPayment{}, err
	}
	return p, nil
}

func (r *BillingPaymentRepository) GetByID(_ context.Context, id string) (entities.BillingPayment, error) {
	return r.c.find(func(p entities.BillingPayment) bool { return p.ID == id })
}

func (r *BillingPaymentRepository) ListByQuoteID(_ context.Context, quoteID string) ([]entities.BillingPayment, error) {
	return r.c.filter(func(p entities.BillingPayment) bool { return p.QuoteID == quoteID })
}
