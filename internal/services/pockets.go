package services

import (
	"context"

	"github.com/adrianAraqueG/gaston/internal/apiclient"
	"github.com/adrianAraqueG/gaston/internal/core"
)

const pocketsPath = "/pockets"

type PocketService struct {
	client *apiclient.Client
}

func (s *PocketService) List(ctx context.Context) ([]core.Pocket, error) {
	var out []core.Pocket
	if err := s.client.Get(ctx, pocketsPath, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *PocketService) Get(ctx context.Context, id int64) (*core.Pocket, error) {
	var out core.Pocket
	if err := s.client.Get(ctx, itemPath(pocketsPath, id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *PocketService) Create(ctx context.Context, req core.CreatePocket) (*core.Pocket, error) {
	var out core.Pocket
	if err := s.client.Post(ctx, pocketsPath, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *PocketService) Update(ctx context.Context, id int64, req core.UpdatePocket) (*core.Pocket, error) {
	var out core.Pocket
	if err := s.client.Patch(ctx, itemPath(pocketsPath, id), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *PocketService) Delete(ctx context.Context, id int64) error {
	return s.client.Delete(ctx, itemPath(pocketsPath, id))
}
