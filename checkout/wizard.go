package checkout

import (
	"context"
	"fmt"
	"sync"

	"github.com/Madhav-Gupta-28/seafood-backend-go/models"
)

type Step int

const (
	StepShippingForm     Step = 1
	StepReviewAndPayment Step = 2
	StepSuccess          Step = 3
)

// Config is the read-only snapshot a wizard is started with.
type Config struct {
	Product  models.Product
	Settings models.SiteSettings
}

type OutcomeKind string

const (
	OutcomeCancelled OutcomeKind = "cancelled"
	OutcomeCompleted OutcomeKind = "completed"
)

// Outcome is what closing the wizard means for its host. Order is set only
// for OutcomeCompleted.
type Outcome struct {
	Kind  OutcomeKind   `json:"outcome"`
	Order *models.Order `json:"order,omitempty"`
}

// ShippingPatch holds the draft fields to change; nil fields are left alone.
// City is applied before District.
type ShippingPatch struct {
	Name             *string                  `json:"name"`
	Phone            *string                  `json:"phone"`
	AlternativePhone *string                  `json:"alternativePhone"`
	StoreName        *string                  `json:"storeName"`
	City             *string                  `json:"city"`
	District         *string                  `json:"district"`
	Address          *string                  `json:"address"`
	TimeSlot         *models.DeliveryTimeSlot `json:"timeSlot"`
}

type RedirectState struct {
	InProgress bool         `json:"inProgress"`
	Target     RedirectKind `json:"target,omitempty"`
}

// View is a consistent snapshot of a wizard for rendering.
type View struct {
	ID           string              `json:"id"`
	Step         Step                `json:"step"`
	ShippingType models.ShippingType `json:"shippingType"`
	Product      models.Product      `json:"product"`
	Settings     models.SiteSettings `json:"settings"`
	Draft        models.ShippingInfo `json:"draft"`
	Touched      Touched             `json:"touched"`
	Validity     Validity            `json:"validity"`
	Errors       map[Field]string    `json:"errors"`
	Submitting   bool                `json:"submitting"`
	Redirect     RedirectState       `json:"redirect"`
	StoreFlow    SubFlowState        `json:"storeFlow"`
	Provider     *models.StoreType   `json:"provider,omitempty"`
	Stores       []Store             `json:"stores,omitempty"`
	Order        *models.Order       `json:"order,omitempty"`
}

// Wizard is one checkout: shipping form, review and payment, success.
type Wizard struct {
	id           string
	cfg          Config
	shippingType models.ShippingType
	finalizer    *Finalizer
	redirect     *RedirectSimulator
	sub          *ShippingSubFlow

	mu         sync.Mutex
	step       Step
	draft      models.ShippingInfo
	touched    Touched
	submitting bool
	result     *Result
}

func NewWizard(id string, cfg Config, finalizer *Finalizer, redirect *RedirectSimulator) *Wizard {
	w := &Wizard{
		id:           id,
		cfg:          cfg,
		shippingType: cfg.Product.ShippingType(),
		finalizer:    finalizer,
		redirect:     redirect,
		sub:          NewShippingSubFlow(redirect),
	}
	w.enterShippingForm()
	return w
}

func blankDraft() models.ShippingInfo {
	return models.ShippingInfo{
		City:     defaultCity,
		District: firstDistrict(defaultCity),
		TimeSlot: models.TimeSlotUnspecified,
	}
}

func (w *Wizard) enterShippingForm() {
	w.step = StepShippingForm
	w.draft = blankDraft()
	w.touched = Touched{}
}

func (w *Wizard) ID() string { return w.id }

func (w *Wizard) Step() Step {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.step
}

func (w *Wizard) Submitting() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.submitting
}

func (w *Wizard) View() View {
	w.mu.Lock()
	defer w.mu.Unlock()

	validity := Validate(w.draft, w.shippingType, w.cfg.Settings.EnableStoreIntegration)
	touched := make(Touched, len(w.touched))
	for f, t := range w.touched {
		touched[f] = t
	}
	v := View{
		ID:           w.id,
		Step:         w.step,
		ShippingType: w.shippingType,
		Product:      w.cfg.Product,
		Settings:     w.cfg.Settings.Public(),
		Draft:        w.draft,
		Touched:      touched,
		Validity:     validity,
		Errors:       validity.Errors(w.touched),
		Submitting:   w.submitting,
		Redirect:     RedirectState{InProgress: w.redirect.InProgress(), Target: w.redirect.Target()},
		StoreFlow:    w.sub.State(),
		Provider:     w.sub.Provider(),
	}
	if stores, err := w.sub.Stores(); err == nil {
		v.Stores = stores
	}
	if w.result != nil {
		order := w.result.Order
		v.Order = &order
	}
	return v
}

// editable reports why the draft cannot be changed now. Callers hold w.mu.
func (w *Wizard) editable() error {
	if w.step != StepShippingForm {
		return ErrWrongStep
	}
	if w.redirect.InProgress() || w.sub.State() == SubFlowRedirecting {
		return ErrRedirectInProgress
	}
	return nil
}

func (w *Wizard) Update(p ShippingPatch) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.editable(); err != nil {
		return err
	}

	if p.StoreName != nil && w.cfg.Settings.EnableStoreIntegration {
		return ErrStoreFromMap
	}

	draft := w.draft
	if p.City != nil && *p.City != draft.City {
		if Districts(*p.City) == nil {
			return fmt.Errorf("%w: %q", ErrUnknownCity, *p.City)
		}
		draft.City = *p.City
		draft.District = firstDistrict(*p.City)
	}
	if p.District != nil {
		if !HasDistrict(draft.City, *p.District) {
			return fmt.Errorf("%w: %q not in %q", ErrUnknownDistrict, *p.District, draft.City)
		}
		draft.District = *p.District
	}
	if p.TimeSlot != nil {
		if !p.TimeSlot.Valid() {
			return fmt.Errorf("%w: %q", ErrUnknownTimeSlot, *p.TimeSlot)
		}
		draft.TimeSlot = *p.TimeSlot
	}
	if p.Name != nil {
		draft.Name = *p.Name
	}
	if p.Phone != nil {
		draft.Phone = *p.Phone
	}
	if p.AlternativePhone != nil {
		draft.AlternativePhone = *p.AlternativePhone
	}
	if p.Address != nil {
		draft.Address = *p.Address
	}
	if p.StoreName != nil {
		manual := models.StoreTypeManual
		draft.StoreName = *p.StoreName
		draft.StoreType = &manual
	}

	w.draft = draft
	return nil
}

func (w *Wizard) Touch(f Field) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if err := w.editable(); err != nil {
		return err
	}
	w.touched[f] = true
	return nil
}

// pickupMap checks that the store map may be used. Callers hold w.mu.
func (w *Wizard) pickupMap() error {
	if err := w.editable(); err != nil {
		return err
	}
	if w.shippingType != models.ShippingTypePickup {
		return ErrNotPickup
	}
	if !w.cfg.Settings.EnableStoreIntegration {
		return ErrIntegrationDisabled
	}
	return nil
}

// ChooseStoreType opens the map of chain t and returns once it has loaded.
func (w *Wizard) ChooseStoreType(t models.StoreType) error {
	w.mu.Lock()
	if err := w.pickupMap(); err != nil {
		w.mu.Unlock()
		return err
	}
	w.touched[FieldStore] = true
	// The map is marked redirecting before w.mu is released so Next and
	// edits see it.
	err := w.sub.begin(t)
	w.mu.Unlock()
	if err != nil {
		return err
	}

	w.sub.load()
	return nil
}

func (w *Wizard) Reselect() error {
	w.mu.Lock()
	if err := w.pickupMap(); err != nil {
		w.mu.Unlock()
		return err
	}
	w.touched[FieldStore] = true
	err := w.sub.beginReselect()
	w.mu.Unlock()
	if err != nil {
		return err
	}

	w.sub.load()
	return nil
}

func (w *Wizard) Stores() ([]Store, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if err := w.pickupMap(); err != nil {
		return nil, err
	}
	return w.sub.Stores()
}

func (w *Wizard) SelectStore(name string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if err := w.pickupMap(); err != nil {
		return err
	}
	return w.sub.Select(&w.draft, name)
}

func (w *Wizard) DismissMap() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if err := w.pickupMap(); err != nil {
		return err
	}
	w.sub.Dismiss()
	return nil
}

// Next advances one step. From the shipping form it checks the gate; from
// review it submits the order and returns the finalize Result.
func (w *Wizard) Next(ctx context.Context) (*Result, error) {
	w.mu.Lock()
	switch w.step {
	case StepShippingForm:
		defer w.mu.Unlock()
		if w.redirect.InProgress() || w.sub.State() == SubFlowRedirecting {
			return nil, ErrRedirectInProgress
		}
		v := Validate(w.draft, w.shippingType, w.cfg.Settings.EnableStoreIntegration)
		if !v.CanAdvance {
			w.touched.all()
			return nil, &ValidationError{Validity: v}
		}
		w.step = StepReviewAndPayment
		return nil, nil

	case StepReviewAndPayment:
		if w.submitting {
			w.mu.Unlock()
			return nil, ErrSubmitInProgress
		}
		w.submitting = true
		draft := w.draft
		w.mu.Unlock()
		return w.submit(ctx, draft)

	default:
		w.mu.Unlock()
		return nil, ErrWrongStep
	}
}

func (w *Wizard) submit(ctx context.Context, draft models.ShippingInfo) (*Result, error) {
	// The submission outlives the request that started it.
	ctx = context.WithoutCancel(ctx)

	if w.cfg.Settings.EnableOnlinePayment {
		w.redirect.Simulate(PaymentGateway)
	}
	res, err := w.finalizer.Finalize(ctx, draft, w.cfg.Product, w.cfg.Settings)

	w.mu.Lock()
	defer w.mu.Unlock()
	w.submitting = false
	if err != nil {
		return nil, err
	}
	w.step = StepSuccess
	w.result = &res
	return &res, nil
}

// Back returns from review to the shipping form keeping the draft.
func (w *Wizard) Back() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.step != StepReviewAndPayment {
		return ErrWrongStep
	}
	if w.submitting {
		return ErrSubmitInProgress
	}
	w.step = StepShippingForm
	return nil
}

// Result is the finalize result once the wizard reached the success step.
func (w *Wizard) Result() (Result, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.result == nil {
		return Result{}, false
	}
	return *w.result, true
}

// Close reports Completed with the order from the success step and
// Cancelled from any other step. An in-flight submission keeps running.
func (w *Wizard) Close() Outcome {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.step == StepSuccess && w.result != nil {
		order := w.result.Order
		return Outcome{Kind: OutcomeCompleted, Order: &order}
	}
	return Outcome{Kind: OutcomeCancelled}
}
