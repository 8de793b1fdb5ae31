package services

import (
	"context"
	"net/url"

	"github.com/adrianAraqueG/gaston/internal/apiclient"
	"github.com/adrianAraqueG/gaston/internal/core"
)

const categoriesPath = "/categories"

type CategoryService struct {
	client *apiclient.Client
}

// List returns every category, or only those of typ when it is set.
func (s *CategoryService) List(ctx context.Context, typ core.TransactionType) ([]core.Category, error) {
	endpoint := categoriesPath
	if typ != "" {
		endpoint += "?" + url.Values{"type": {string(typ)}}.Encode()
	}
	var out []core.Category
	if err := s.client.Get(ctx, endpoint, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *CategoryService) Get(ctx context.Context, id int64) (*core.Category, error) {
	var out core.Category
	if err := s.client.Get(ctx, itemPath(categoriesPath, id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *CategoryService) Create(ctx context.Context, req core.CreateCategory) (*core.Category, error) {
	var out core.Category
	if err := s.client.Post(ctx, categoriesPath, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *CategoryService) Update(ctx context.Context, id int64, req core.UpdateCategory) (*core.Category, error) {
	var out core.Category
	if err := s.client.Patch(ctx, itemPath(categoriesPath, id), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *CategoryService) Delete(ctx context.Context, id int64) error {
	return s.client.Delete(ctx, itemPath(categoriesPath, id))
}
