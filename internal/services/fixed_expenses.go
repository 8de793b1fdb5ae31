package services

import (
	"context"

	"github.com/adrianAraqueG/gaston/internal/apiclient"
	"github.com/adrianAraqueG/gaston/internal/core"
)

const fixedExpensesPath = "/fixed-expenses"

type FixedExpenseService struct {
	client *apiclient.Client
}

// List includes the server-computed paidThisMonth flag.
func (s *FixedExpenseService) List(ctx context.Context) ([]core.FixedExpense, error) {
	var out []core.FixedExpense
	if err := s.client.Get(ctx, fixedExpensesPath, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *FixedExpenseService) Create(ctx context.Context, req core.CreateFixedExpense) (*core.FixedExpense, error) {
	var out core.FixedExpense
	if err := s.client.Post(ctx, fixedExpensesPath, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *FixedExpenseService) Update(ctx context.Context, id int64, req core.UpdateFixedExpense) (*core.FixedExpense, error) {
	var out core.FixedExpense
	if err := s.client.Patch(ctx, itemPath(fixedExpensesPath, id), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *FixedExpenseService) Remove(ctx context.Context, id int64) error {
	return s.client.Delete(ctx, itemPath(fixedExpensesPath, id))
}

// Pay records a payment. The server creates the matching expense
// transaction; the response body is ignored.
func (s *FixedExpenseService) Pay(ctx context.Context, id int64, req core.PayFixedExpense) error {
	return s.client.Post(ctx, itemPath(fixedExpensesPath, id)+"/pay", req, nil)
}
