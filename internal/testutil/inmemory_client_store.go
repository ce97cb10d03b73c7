package testutil

import (
	"context"
	"strings"

	"github.com/contractorpro/contractorpro/internal/domain/client"
	"github.com/contractorpro/contractorpro/internal/domain/project"
	"github.com/contractorpro/contractorpro/internal/types"
)

type InMemoryClientStore struct {
	*InMemoryStore[client.Client]
}

func NewInMemoryClientStore() *InMemoryClientStore {
	return &InMemoryClientStore{
		InMemoryStore: NewInMemoryStore("Client not found", func(c *client.Client) string { return c.UserID }),
	}
}

func clientFilterFn(filter *types.ClientFilter) FilterFunc[client.Client] {
	return func(c *client.Client) bool {
		if filter == nil || filter.Search == "" {
			return true
		}
		q := strings.ToLower(filter.Search)
		return strings.Contains(strings.ToLower(c.Name), q) || strings.Contains(strings.ToLower(c.Email), q)
	}
}

func (s *InMemoryClientStore) Create(ctx context.Context, c *client.Client) error {
	return s.InMemoryStore.Create(ctx, c.ID, c)
}

func (s *InMemoryClientStore) List(ctx context.Context, filter *types.ClientFilter) ([]*client.Client, error) {
	var page *types.QueryFilter
	if filter != nil {
		page = filter.QueryFilter
	}
	return s.InMemoryStore.List(ctx, page, clientFilterFn(filter), func(a, b *client.Client) bool {
		return newestFirst(a.BaseModel, b.BaseModel)
	})
}

func (s *InMemoryClientStore) Count(ctx context.Context, filter *types.ClientFilter) (int, error) {
	return s.InMemoryStore.Count(ctx, clientFilterFn(filter))
}

func (s *InMemoryClientStore) Update(ctx context.Context, c *client.Client) error {
	return s.InMemoryStore.Update(ctx, c.ID, c)
}

type InMemoryProjectStore struct {
	*InMemoryStore[project.Project]
}

func NewInMemoryProjectStore() *InMemoryProjectStore {
	return &InMemoryProjectStore{
		InMemoryStore: NewInMemoryStore("Project not found", func(p *project.Project) string { return p.UserID }),
	}
}

func projectFilterFn(filter *types.ProjectFilter) FilterFunc[project.Project] {
	return func(p *project.Project) bool {
		if filter == nil {
			return true
		}
		if filter.ClientID != "" && p.ClientID != filter.ClientID {
			return false
		}
		return filter.Status == nil || p.Status == *filter.Status
	}
}

func (s *InMemoryProjectStore) Create(ctx context.Context, p *project.Project) error {
	return s.InMemoryStore.Create(ctx, p.ID, p)
}

func (s *InMemoryProjectStore) List(ctx context.Context, filter *types.ProjectFilter) ([]*project.Project, error) {
	var page *types.QueryFilter
	if filter != nil {
		page = filter.QueryFilter
	}
	return s.InMemoryStore.List(ctx, page, projectFilterFn(filter), func(a, b *project.Project) bool {
		return newestFirst(a.BaseModel, b.BaseModel)
	})
}

func (s *InMemoryProjectStore) Count(ctx context.Context, filter *types.ProjectFilter) (int, error) {
	return s.InMemoryStore.Count(ctx, projectFilterFn(filter))
}

func (s *InMemoryProjectStore) Update(ctx context.Context, p *project.Project) error {
	return s.InMemoryStore.Update(ctx, p.ID, p)
}
