package checkout

import (
	"fmt"
	"sync"

	"github.com/Madhav-Gupta-28/seafood-backend-go/models"
)

type SubFlowState string

const (
	SubFlowIdle        SubFlowState = "idle"
	SubFlowRedirecting SubFlowState = "redirecting"
	SubFlowSelecting   SubFlowState = "selecting"
)

// ShippingSubFlow drives store selection through the simulated map when store
// integration is enabled. It writes into the draft but never validates it.
type ShippingSubFlow struct {
	redirect *RedirectSimulator

	mu       sync.Mutex
	state    SubFlowState
	provider *models.StoreType
}

func NewShippingSubFlow(redirect *RedirectSimulator) *ShippingSubFlow {
	return &ShippingSubFlow{redirect: redirect, state: SubFlowIdle}
}

func (s *ShippingSubFlow) State() SubFlowState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Provider is the chain of the last map lookup, nil before the first one.
func (s *ShippingSubFlow) Provider() *models.StoreType {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.provider == nil {
		return nil
	}
	p := *s.provider
	return &p
}

// Choose opens the map of chain t and blocks until it has loaded.
func (s *ShippingSubFlow) Choose(t models.StoreType) error {
	if err := s.begin(t); err != nil {
		return err
	}
	s.load()
	return nil
}

// Reselect reopens the map of the previously chosen chain.
func (s *ShippingSubFlow) Reselect() error {
	if err := s.beginReselect(); err != nil {
		return err
	}
	s.load()
	return nil
}

// begin marks the map of chain t as redirecting. The caller finishes with load.
func (s *ShippingSubFlow) begin(t models.StoreType) error {
	if !t.Provider() {
		return fmt.Errorf("%w: %q", ErrInvalidStoreType, t)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == SubFlowRedirecting {
		return ErrRedirectInProgress
	}
	s.state = SubFlowRedirecting
	s.provider = &t
	return nil
}

func (s *ShippingSubFlow) beginReselect() error {
	p := s.Provider()
	if p == nil {
		return ErrNoStoreType
	}
	return s.begin(*p)
}

func (s *ShippingSubFlow) load() {
	s.redirect.Simulate(MapLookup)

	s.mu.Lock()
	s.state = SubFlowSelecting
	s.mu.Unlock()
}

// Stores lists the stores shown by the open map.
func (s *ShippingSubFlow) Stores() ([]Store, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != SubFlowSelecting || s.provider == nil {
		return nil, ErrNoStoreType
	}
	return StoresOf(*s.provider), nil
}

// Select writes the chosen store into info and closes the map.
func (s *ShippingSubFlow) Select(info *models.ShippingInfo, storeName string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == SubFlowRedirecting {
		return ErrRedirectInProgress
	}
	if s.state != SubFlowSelecting || s.provider == nil {
		return ErrNoStoreType
	}
	store, ok := findStore(*s.provider, storeName)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownStore, storeName)
	}

	t := *s.provider
	info.StoreType = &t
	info.StoreName = frozenStoreName(store.Name)
	s.state = SubFlowIdle
	return nil
}

// Dismiss closes the map without selecting a store.
func (s *ShippingSubFlow) Dismiss() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == SubFlowSelecting {
		s.state = SubFlowIdle
	}
}
