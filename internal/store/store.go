// Package store binds each resource service to an in-memory collection and
// exposes the mutators the pages call.
package store

import (
	"context"

	"github.com/adrianAraqueG/gaston/internal/apiclient"
	"github.com/adrianAraqueG/gaston/internal/core"
	"github.com/adrianAraqueG/gaston/internal/log"
)

// Read fallbacks, shown when the server gives no message.
const (
	msgLoadCategories    = "Error al cargar categorías"
	msgLoadPockets       = "Error al cargar bolsillos"
	msgLoadTransactions  = "Error al cargar transacciones"
	msgLoadFixedExpenses = "Error al cargar gastos fijos"
)

// Publisher receives a Change after every successful mutation.
type Publisher interface {
	PublishChange(ctx context.Context, change core.Change) error
}

// Refresher is satisfied by every store.
type Refresher interface {
	Refresh(ctx context.Context) error
}

type Option func(*options)

type options struct {
	publisher Publisher
	logger    *log.Logger
}

func WithPublisher(p Publisher) Option {
	return func(o *options) { o.publisher = p }
}

func WithLogger(l *log.Logger) Option {
	return func(o *options) { o.logger = l }
}

func buildOptions(opts []Option) options {
	o := options{logger: log.Nop()}
	for _, opt := range opts {
		opt(&o)
	}
	o.logger = o.logger.WithComponent(log.ComponentStore)
	return o
}

// notifier logs the mutation and forwards it to the publisher, if any.
// Publishing problems never fail the mutation.
type notifier struct {
	publisher Publisher
	logger    *log.Logger
	sl        *log.StructuredLogger
}

func newNotifier(o options) notifier {
	return notifier{publisher: o.publisher, logger: o.logger, sl: log.NewStructuredLogger(o.logger)}
}

func (n notifier) changed(ctx context.Context, resource, operation string, id int64) {
	n.sl.LogMutation(ctx, resource, operation, id)
	if n.publisher == nil {
		return
	}
	change := core.Change{Resource: resource, Operation: operation, ID: id}
	if err := n.publisher.PublishChange(ctx, change); err != nil {
		n.logger.WarnContext(ctx, "Failed to publish change",
			log.FieldResource, resource, log.FieldOperation, operation, log.FieldID, id, log.FieldError, err)
	}
}

func normalize(err error, fallback string) error {
	return apiclient.Normalize(err, fallback)
}
