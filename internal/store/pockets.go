package store

import (
	"context"

	"github.com/adrianAraqueG/gaston/internal/collection"
	"github.com/adrianAraqueG/gaston/internal/core"
)

type pocketAPI interface {
	List(ctx context.Context) ([]core.Pocket, error)
	Create(ctx context.Context, req core.CreatePocket) (*core.Pocket, error)
	Update(ctx context.Context, id int64, req core.UpdatePocket) (*core.Pocket, error)
	Delete(ctx context.Context, id int64) error
}

type Pockets struct {
	*collection.Collection[core.Pocket]
	api    pocketAPI
	notify notifier
}

func NewPockets(api pocketAPI, opts ...Option) *Pockets {
	o := buildOptions(opts)
	return &Pockets{
		Collection: collection.New(api.List, msgLoadPockets, collection.WithLogger[core.Pocket](o.logger)),
		api:        api,
		notify:     newNotifier(o),
	}
}

func (s *Pockets) Create(ctx context.Context, req core.CreatePocket) (core.Pocket, error) {
	if err := req.Validate(); err != nil {
		return core.Pocket{}, err
	}
	created, err := s.Collection.Create(ctx, "Error al crear bolsillo", func(ctx context.Context) (core.Pocket, error) {
		return deref(s.api.Create(ctx, req))
	})
	if err == nil {
		s.notify.changed(ctx, core.ResourcePocket, core.OpCreated, created.ID)
	}
	return created, err
}

func (s *Pockets) Update(ctx context.Context, id int64, req core.UpdatePocket) (core.Pocket, error) {
	if req.Name != nil {
		name, err := core.ValidateName(*req.Name)
		if err != nil {
			return core.Pocket{}, err
		}
		req.Name = &name
	}
	if req.Description != nil {
		req.Description = core.OptionalText(*req.Description)
	}
	updated, err := s.Collection.Update(ctx, id, "Error al actualizar bolsillo", func(ctx context.Context) (core.Pocket, error) {
		return deref(s.api.Update(ctx, id, req))
	})
	if err == nil {
		s.notify.changed(ctx, core.ResourcePocket, core.OpUpdated, id)
	}
	return updated, err
}

func (s *Pockets) Delete(ctx context.Context, id int64) error {
	p, err := lookup(ctx, s.Collection, id)
	if err != nil {
		return err
	}
	if p.IsDefault {
		return core.ErrDefaultNotDeletable
	}
	err = s.Collection.Delete(ctx, id, "Error al eliminar bolsillo", func(ctx context.Context) error {
		return s.api.Delete(ctx, id)
	})
	if err == nil {
		s.notify.changed(ctx, core.ResourcePocket, core.OpDeleted, id)
	}
	return err
}
