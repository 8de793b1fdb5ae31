package store

import (
	"context"

	"github.com/adrianAraqueG/gaston/internal/collection"
	"github.com/adrianAraqueG/gaston/internal/core"
)

type categoryAPI interface {
	List(ctx context.Context, typ core.TransactionType) ([]core.Category, error)
	Create(ctx context.Context, req core.CreateCategory) (*core.Category, error)
	Update(ctx context.Context, id int64, req core.UpdateCategory) (*core.Category, error)
	Delete(ctx context.Context, id int64) error
}

type Categories struct {
	*collection.Collection[core.Category]
	api    categoryAPI
	notify notifier
}

// NewCategories lists categories of typ, or all of them when typ is empty.
func NewCategories(api categoryAPI, typ core.TransactionType, opts ...Option) *Categories {
	o := buildOptions(opts)
	load := func(ctx context.Context) ([]core.Category, error) { return api.List(ctx, typ) }
	return &Categories{
		Collection: collection.New(load, msgLoadCategories, collection.WithLogger[core.Category](o.logger)),
		api:        api,
		notify:     newNotifier(o),
	}
}

func (s *Categories) Create(ctx context.Context, req core.CreateCategory) (core.Category, error) {
	if err := req.Validate(); err != nil {
		return core.Category{}, err
	}
	created, err := s.Collection.Create(ctx, "Error al crear categoría", func(ctx context.Context) (core.Category, error) {
		return deref(s.api.Create(ctx, req))
	})
	if err == nil {
		s.notify.changed(ctx, core.ResourceCategory, core.OpCreated, created.ID)
	}
	return created, err
}

func (s *Categories) Update(ctx context.Context, id int64, req core.UpdateCategory) (core.Category, error) {
	if req.Name != nil {
		name, err := core.ValidateName(*req.Name)
		if err != nil {
			return core.Category{}, err
		}
		req.Name = &name
	}
	if req.Type != nil && !req.Type.IsValid() {
		return core.Category{}, core.ErrInvalidType
	}
	updated, err := s.Collection.Update(ctx, id, "Error al actualizar categoría", func(ctx context.Context) (core.Category, error) {
		return deref(s.api.Update(ctx, id, req))
	})
	if err == nil {
		s.notify.changed(ctx, core.ResourceCategory, core.OpUpdated, id)
	}
	return updated, err
}

// Delete refuses default categories without calling the API. An id missing
// from the cached list triggers one reload before the check.
func (s *Categories) Delete(ctx context.Context, id int64) error {
	c, err := lookup(ctx, s.Collection, id)
	if err != nil {
		return err
	}
	if c.IsDefault {
		return core.ErrDefaultNotDeletable
	}
	err = s.Collection.Delete(ctx, id, "Error al eliminar categoría", func(ctx context.Context) error {
		return s.api.Delete(ctx, id)
	})
	if err == nil {
		s.notify.changed(ctx, core.ResourceCategory, core.OpDeleted, id)
	}
	return err
}

// lookup finds id in the cached list, refreshing once when it is absent.
// A record the server does not list comes back as the zero value.
func lookup[T collection.Entity](ctx context.Context, c *collection.Collection[T], id int64) (T, error) {
	if item, ok := c.Find(id); ok {
		return item, nil
	}
	if err := c.Refresh(ctx); err != nil {
		var zero T
		return zero, err
	}
	item, _ := c.Find(id)
	return item, nil
}

func deref[T any](v *T, err error) (T, error) {
	if err != nil || v == nil {
		var zero T
		return zero, err
	}
	return *v, nil
}
