package interfaces

import (
	"context"

	"fukuro_studio/internal/domain/entities"
)

// IProjectRepository abstracts persistence for projects.
//
// Save replaces the whole project (links, deliverables and comments are stored
// inline). Lookups return a zero Project (empty ID) when nothing matches.
type IProjectRepository interface {
	Create(ctx context.Context, p entities.Project) (entities.Project, error)
	Save(ctx context.Context, p entities.Project) (entities.Project, error)
	GetByID(ctx context.Context, id string) (entities.Project, error)
	GetByName(ctx context.Context, name string) (entities.Project, error)
	List(ctx context.Context) ([]entities.Project, error)
}
