package checkout

import (
	"context"
	"math/rand"
	"sync"
	"sync/atomic"
	"time"

	"github.com/Madhav-Gupta-28/seafood-backend-go/models"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// OrderPersister writes an order keyed by its id.
type OrderPersister interface {
	PersistOrder(ctx context.Context, order *models.Order) error
}

// Notifier delivers a chat message. The bool reports acceptance by the chat service.
type Notifier interface {
	SendNotification(ctx context.Context, token, chatID, message string) (bool, error)
}

type EventPublisher interface {
	PublishOrderCreated(ctx context.Context, order *models.Order) error
}

// FinalizerDeps are shared by every finalizer built for a checkout session.
// Store and Notifier are required, the rest default when zero.
type FinalizerDeps struct {
	Store     OrderPersister
	Notifier  Notifier
	Publisher EventPublisher
	Logger    Logger
	Metrics   Metrics
	Tracer    trace.Tracer
	Location  *time.Location
	Now       func() time.Time
	Intn      func(n int) int
}

// Result reports the order and the outcome of each side effect.
type Result struct {
	Order      models.Order `json:"order"`
	Persisted  bool         `json:"persisted"`
	Notified   bool         `json:"notified"`
	Published  bool         `json:"published"`
	PersistErr error        `json:"-"`
	NotifyErr  error        `json:"-"`
	PublishErr error        `json:"-"`
}

// Finalizer turns a validated draft into an order. One finalizer serves one
// wizard; its guard lets a single Finalize run at a time.
type Finalizer struct {
	deps     FinalizerDeps
	inFlight atomic.Bool
}

func NewFinalizer(deps FinalizerDeps) *Finalizer {
	if deps.Logger == nil {
		deps.Logger = nopLogger{}
	}
	if deps.Metrics == nil {
		deps.Metrics = nopMetrics{}
	}
	if deps.Tracer == nil {
		deps.Tracer = otel.Tracer("github.com/Madhav-Gupta-28/seafood-backend-go/checkout")
	}
	if deps.Location == nil {
		deps.Location = time.Local
	}
	if deps.Now == nil {
		deps.Now = time.Now
	}
	if deps.Intn == nil {
		deps.Intn = rand.Intn
	}
	return &Finalizer{deps: deps}
}

// Finalize builds the order, then persists, notifies and publishes it
// concurrently. Side effect failures are logged and reported in the Result,
// never returned. The only error is ErrSubmitInProgress.
func (f *Finalizer) Finalize(ctx context.Context, info models.ShippingInfo, product models.Product, settings models.SiteSettings) (Result, error) {
	if !f.inFlight.CompareAndSwap(false, true) {
		return Result{}, ErrSubmitInProgress
	}
	defer f.inFlight.Store(false)

	now := f.deps.Now().In(f.deps.Location)
	order := BuildOrder(GenerateOrderID(now, f.deps.Intn), now, info, product, settings)

	ctx, span := f.deps.Tracer.Start(ctx, "checkout.finalize", trace.WithAttributes(
		attribute.String("order.id", order.ID),
		attribute.String("order.status", string(order.Status)),
		attribute.String("order.shipping_type", string(order.ShippingType)),
	))
	defer span.End()

	res := Result{Order: order}
	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		o := order
		if err := f.deps.Store.PersistOrder(ctx, &o); err != nil {
			res.PersistErr = err
			return
		}
		res.Persisted = true
	}()

	if settings.TelegramConfigured() {
		msg := NotificationMessage(order, info, product)
		wg.Add(1)
		go func() {
			defer wg.Done()
			ok, err := f.deps.Notifier.SendNotification(ctx, settings.TelegramBotToken, settings.TelegramChatID, msg)
			if err == nil && !ok {
				err = ErrNotificationFailed
			}
			if err != nil {
				res.NotifyErr = err
				return
			}
			res.Notified = true
		}()
	}

	if f.deps.Publisher != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			o := order
			if err := f.deps.Publisher.PublishOrderCreated(ctx, &o); err != nil {
				res.PublishErr = err
				return
			}
			res.Published = true
		}()
	}

	wg.Wait()

	f.report(span, order.ID, "persist", res.PersistErr)
	f.report(span, order.ID, "notify", res.NotifyErr)
	f.report(span, order.ID, "publish", res.PublishErr)
	f.deps.Metrics.OrderFinalized(string(order.Status))
	f.deps.Logger.Infof("order %s created (%s, %s)", order.ID, order.ShippingType, order.Status)

	return res, nil
}

func (f *Finalizer) report(span trace.Span, orderID, effect string, err error) {
	if err == nil {
		return
	}
	span.RecordError(err, trace.WithAttributes(attribute.String("effect", effect)))
	span.SetStatus(codes.Error, effect+" failed")
	f.deps.Metrics.SideEffectFailed(effect)
	f.deps.Logger.Errorf("Failed to %s order %s: %v", effect, orderID, err)
}
