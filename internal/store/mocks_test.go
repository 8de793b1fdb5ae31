package store

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/adrianAraqueG/gaston/internal/core"
)

type mockCategoryAPI struct{ mock.Mock }

func (m *mockCategoryAPI) List(ctx context.Context, typ core.TransactionType) ([]core.Category, error) {
	args := m.Called(ctx, typ)
	items, _ := args.Get(0).([]core.Category)
	return items, args.Error(1)
}

func (m *mockCategoryAPI) Create(ctx context.Context, req core.CreateCategory) (*core.Category, error) {
	args := m.Called(ctx, req)
	c, _ := args.Get(0).(*core.Category)
	return c, args.Error(1)
}

func (m *mockCategoryAPI) Update(ctx context.Context, id int64, req core.UpdateCategory) (*core.Category, error) {
	args := m.Called(ctx, id, req)
	c, _ := args.Get(0).(*core.Category)
	return c, args.Error(1)
}

func (m *mockCategoryAPI) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type mockPocketAPI struct{ mock.Mock }

func (m *mockPocketAPI) List(ctx context.Context) ([]core.Pocket, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]core.Pocket)
	return items, args.Error(1)
}

func (m *mockPocketAPI) Create(ctx context.Context, req core.CreatePocket) (*core.Pocket, error) {
	args := m.Called(ctx, req)
	p, _ := args.Get(0).(*core.Pocket)
	return p, args.Error(1)
}

func (m *mockPocketAPI) Update(ctx context.Context, id int64, req core.UpdatePocket) (*core.Pocket, error) {
	args := m.Called(ctx, id, req)
	p, _ := args.Get(0).(*core.Pocket)
	return p, args.Error(1)
}

func (m *mockPocketAPI) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type mockTransactionAPI struct{ mock.Mock }

func (m *mockTransactionAPI) Expenses(ctx context.Context) ([]core.Transaction, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]core.Transaction)
	return items, args.Error(1)
}

func (m *mockTransactionAPI) Incomes(ctx context.Context) ([]core.Transaction, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]core.Transaction)
	return items, args.Error(1)
}

func (m *mockTransactionAPI) Create(ctx context.Context, req core.CreateTransaction) (*core.Transaction, error) {
	args := m.Called(ctx, req)
	tx, _ := args.Get(0).(*core.Transaction)
	return tx, args.Error(1)
}

func (m *mockTransactionAPI) Update(ctx context.Context, id int64, req core.UpdateTransaction) (*core.Transaction, error) {
	args := m.Called(ctx, id, req)
	tx, _ := args.Get(0).(*core.Transaction)
	return tx, args.Error(1)
}

func (m *mockTransactionAPI) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type mockFixedExpenseAPI struct{ mock.Mock }

func (m *mockFixedExpenseAPI) List(ctx context.Context) ([]core.FixedExpense, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]core.FixedExpense)
	return items, args.Error(1)
}

func (m *mockFixedExpenseAPI) Create(ctx context.Context, req core.CreateFixedExpense) (*core.FixedExpense, error) {
	args := m.Called(ctx, req)
	f, _ := args.Get(0).(*core.FixedExpense)
	return f, args.Error(1)
}

func (m *mockFixedExpenseAPI) Update(ctx context.Context, id int64, req core.UpdateFixedExpense) (*core.FixedExpense, error) {
	args := m.Called(ctx, id, req)
	f, _ := args.Get(0).(*core.FixedExpense)
	return f, args.Error(1)
}

func (m *mockFixedExpenseAPI) Remove(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockFixedExpenseAPI) Pay(ctx context.Context, id int64, req core.PayFixedExpense) error {
	return m.Called(ctx, id, req).Error(0)
}

type mockPublisher struct{ mock.Mock }

func (m *mockPublisher) PublishChange(ctx context.Context, change core.Change) error {
	return m.Called(ctx, change).Error(0)
}

type countingRefresher struct{ calls int }

func (r *countingRefresher) Refresh(context.Context) error {
	r.calls++
	return nil
}
