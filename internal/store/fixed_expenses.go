package store

import (
	"context"
	"sync"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/adrianAraqueG/gaston/internal/collection"
	"github.com/adrianAraqueG/gaston/internal/core"
)

type fixedExpenseAPI interface {
	List(ctx context.Context) ([]core.FixedExpense, error)
	Create(ctx context.Context, req core.CreateFixedExpense) (*core.FixedExpense, error)
	Update(ctx context.Context, id int64, req core.UpdateFixedExpense) (*core.FixedExpense, error)
	Remove(ctx context.Context, id int64) error
	Pay(ctx context.Context, id int64, req core.PayFixedExpense) error
}

type FixedExpenses struct {
	*collection.Collection[core.FixedExpense]
	api        fixedExpenseAPI
	notify     notifier
	dependents []Refresher
}

// NewFixedExpenses keeps newly created fixed expenses ordered by name using
// Spanish collation. Dependents are refreshed after every payment.
func NewFixedExpenses(api fixedExpenseAPI, dependents []Refresher, opts ...Option) *FixedExpenses {
	o := buildOptions(opts)
	return &FixedExpenses{
		Collection: collection.New(api.List, msgLoadFixedExpenses,
			collection.SortOnInsert(byName()),
			collection.WithLogger[core.FixedExpense](o.logger)),
		api:        api,
		notify:     newNotifier(o),
		dependents: dependents,
	}
}

func byName() func(a, b core.FixedExpense) int {
	var mu sync.Mutex
	col := collate.New(language.Spanish, collate.IgnoreCase)
	return func(a, b core.FixedExpense) int {
		mu.Lock()
		defer mu.Unlock()
		return col.CompareString(a.Name, b.Name)
	}
}

func (s *FixedExpenses) Create(ctx context.Context, req core.CreateFixedExpense) (core.FixedExpense, error) {
	if err := req.Validate(); err != nil {
		return core.FixedExpense{}, err
	}
	created, err := s.Collection.Create(ctx, "Error al crear gasto fijo", func(ctx context.Context) (core.FixedExpense, error) {
		return deref(s.api.Create(ctx, req))
	})
	if err == nil {
		s.notify.changed(ctx, core.ResourceFixedExpense, core.OpCreated, created.ID)
	}
	return created, err
}

func (s *FixedExpenses) Update(ctx context.Context, id int64, req core.UpdateFixedExpense) (core.FixedExpense, error) {
	if err := req.Validate(); err != nil {
		return core.FixedExpense{}, err
	}
	updated, err := s.Collection.Update(ctx, id, "Error al actualizar gasto fijo", func(ctx context.Context) (core.FixedExpense, error) {
		return deref(s.api.Update(ctx, id, req))
	})
	if err == nil {
		s.notify.changed(ctx, core.ResourceFixedExpense, core.OpUpdated, id)
	}
	return updated, err
}

func (s *FixedExpenses) Remove(ctx context.Context, id int64) error {
	err := s.Collection.Delete(ctx, id, "Error al eliminar gasto fijo", func(ctx context.Context) error {
		return s.api.Remove(ctx, id)
	})
	if err == nil {
		s.notify.changed(ctx, core.ResourceFixedExpense, core.OpDeleted, id)
	}
	return err
}

// Pay records the payment and then reloads the list and every dependent:
// the paid-this-month flag and the new transaction exist only server-side.
// Reload failures end up in each collection's state, not in the result.
func (s *FixedExpenses) Pay(ctx context.Context, id int64, req core.PayFixedExpense) error {
	if err := req.Validate(); err != nil {
		return err
	}
	if err := s.api.Pay(ctx, id, req); err != nil {
		return normalize(err, "Error al registrar el pago")
	}
	s.notify.changed(ctx, core.ResourceFixedExpense, core.OpPaid, id)

	_ = s.Refresh(ctx)
	for _, d := range s.dependents {
		_ = d.Refresh(ctx)
	}
	return nil
}
