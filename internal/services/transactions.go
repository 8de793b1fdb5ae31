package services

import (
	"context"

	"github.com/adrianAraqueG/gaston/internal/apiclient"
	"github.com/adrianAraqueG/gaston/internal/core"
)

const (
	transactionsPath = "/transactions"
	incomesPath      = "/transactions/incomes"
	exportPath       = "/transactions/export/excel"
)

type TransactionService struct {
	client *apiclient.Client
}

// Expenses lists expense transactions; the base collection path only
// returns expenses.
func (s *TransactionService) Expenses(ctx context.Context) ([]core.Transaction, error) {
	return s.list(ctx, transactionsPath)
}

func (s *TransactionService) Incomes(ctx context.Context) ([]core.Transaction, error) {
	return s.list(ctx, incomesPath)
}

func (s *TransactionService) list(ctx context.Context, endpoint string) ([]core.Transaction, error) {
	var out []core.Transaction
	if err := s.client.Get(ctx, endpoint, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *TransactionService) Get(ctx context.Context, id int64) (*core.Transaction, error) {
	var out core.Transaction
	if err := s.client.Get(ctx, itemPath(transactionsPath, id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *TransactionService) Create(ctx context.Context, req core.CreateTransaction) (*core.Transaction, error) {
	var out core.Transaction
	if err := s.client.Post(ctx, transactionsPath, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *TransactionService) Update(ctx context.Context, id int64, req core.UpdateTransaction) (*core.Transaction, error) {
	var out core.Transaction
	if err := s.client.Patch(ctx, itemPath(transactionsPath, id), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *TransactionService) Delete(ctx context.Context, id int64) error {
	return s.client.Delete(ctx, itemPath(transactionsPath, id))
}

// Export downloads the spreadsheet of all transactions.
func (s *TransactionService) Export(ctx context.Context) (*apiclient.File, error) {
	return s.client.Download(ctx, exportPath)
}
