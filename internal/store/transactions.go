package store

import (
	"context"
	"slices"

	"golang.org/x/sync/errgroup"

	"github.com/adrianAraqueG/gaston/internal/collection"
	"github.com/adrianAraqueG/gaston/internal/core"
)

type transactionAPI interface {
	Expenses(ctx context.Context) ([]core.Transaction, error)
	Incomes(ctx context.Context) ([]core.Transaction, error)
	Create(ctx context.Context, req core.CreateTransaction) (*core.Transaction, error)
	Update(ctx context.Context, id int64, req core.UpdateTransaction) (*core.Transaction, error)
	Delete(ctx context.Context, id int64) error
}

// Transactions keeps expenses and incomes in one collection. Both lists
// load together; if either request fails neither list changes.
type Transactions struct {
	*collection.Collection[core.Transaction]
	api    transactionAPI
	notify notifier
}

func NewTransactions(api transactionAPI, opts ...Option) *Transactions {
	o := buildOptions(opts)
	s := &Transactions{api: api, notify: newNotifier(o)}
	s.Collection = collection.New(s.loadBoth, msgLoadTransactions, collection.WithLogger[core.Transaction](o.logger))
	return s
}

func (s *Transactions) loadBoth(ctx context.Context) ([]core.Transaction, error) {
	var expenses, incomes []core.Transaction
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		expenses, err = s.api.Expenses(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		incomes, err = s.api.Incomes(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return append(expenses, incomes...), nil
}

func (s *Transactions) Expenses() []core.Transaction {
	return s.ofType(core.Expense)
}

func (s *Transactions) Incomes() []core.Transaction {
	return s.ofType(core.Income)
}

func (s *Transactions) ofType(t core.TransactionType) []core.Transaction {
	all := s.Items()
	return slices.DeleteFunc(all, func(tx core.Transaction) bool { return tx.Type != t })
}

// All returns expenses and incomes together, newest first.
func (s *Transactions) All() []core.Transaction {
	all := s.Items()
	core.SortNewestFirst(all)
	return all
}

func (s *Transactions) Create(ctx context.Context, req core.CreateTransaction) (core.Transaction, error) {
	if err := req.Validate(); err != nil {
		return core.Transaction{}, err
	}
	created, err := s.Collection.Create(ctx, "Error al crear transacción", func(ctx context.Context) (core.Transaction, error) {
		return deref(s.api.Create(ctx, req))
	})
	if err == nil {
		s.notify.changed(ctx, core.ResourceTransaction, core.OpCreated, created.ID)
	}
	return created, err
}

// Update replaces the transaction in place. The type of a transaction is
// fixed, so the pocket rule is checked against the cached record.
func (s *Transactions) Update(ctx context.Context, id int64, req core.UpdateTransaction) (core.Transaction, error) {
	current, _ := s.Find(id)
	if err := req.Validate(current.Type); err != nil {
		return core.Transaction{}, err
	}
	updated, err := s.Collection.Update(ctx, id, "Error al actualizar transacción", func(ctx context.Context) (core.Transaction, error) {
		return deref(s.api.Update(ctx, id, req))
	})
	if err == nil {
		s.notify.changed(ctx, core.ResourceTransaction, core.OpUpdated, id)
	}
	return updated, err
}

func (s *Transactions) Delete(ctx context.Context, id int64) error {
	err := s.Collection.Delete(ctx, id, "Error al eliminar transacción", func(ctx context.Context) error {
		return s.api.Delete(ctx, id)
	})
	if err == nil {
		s.notify.changed(ctx, core.ResourceTransaction, core.OpDeleted, id)
	}
	return err
}
