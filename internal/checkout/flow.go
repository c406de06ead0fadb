// Package checkout drives the order-placement flow: collect a delivery
// address, then hand the composed order message to the chat dispatcher.
package checkout

import (
	"errors"
	"sync"

	"github.com/example/boutique-shop/internal/cart"
	"github.com/example/boutique-shop/internal/whatsapp"
)

type State string

const (
	StateIdle            State = "idle"
	StateAwaitingAddress State = "awaiting_address"
	StateDispatched      State = "dispatched"
)

var (
	ErrEmptyCart          = errors.New("cart is empty")
	ErrMissingDetails     = errors.New("address and pincode are required")
	ErrNotAwaitingAddress = errors.New("checkout has not been started")
)

// Flow is the per-session checkout state machine:
//
//	Idle -> AwaitingAddress (Begin)
//	AwaitingAddress -> Idle (Cancel)
//	AwaitingAddress -> Dispatched (Confirm, both fields non-empty)
//
// A Confirm with a missing field fails the validation gate and leaves the
// flow in AwaitingAddress. The address is never retained after dispatch.
//
// The flow is shared by every request on the same session and is safe for
// concurrent use; concurrent Confirms dispatch at most once.
type Flow struct {
	mu     sync.Mutex
	state  State
	cart   *cart.Store
	number string
	nav    whatsapp.Navigator
}

// NewFlow builds a checkout flow over the session's cart. The recipient
// number and navigator come from configuration and wiring.
func NewFlow(c *cart.Store, number string, nav whatsapp.Navigator) *Flow {
	return &Flow{state: StateIdle, cart: c, number: number, nav: nav}
}

// State returns the current flow state.
func (f *Flow) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Begin starts address collection. Checkout cannot start on an empty
// cart. Beginning again after a dispatch starts a fresh order.
func (f *Flow) Begin() error {
	if f.cart.Len() == 0 {
		return ErrEmptyCart
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.state = StateAwaitingAddress
	return nil
}

// Cancel abandons address collection and returns to Idle.
func (f *Flow) Cancel() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.state = StateIdle
}

// Confirm validates the delivery details, composes the full order
// message, dispatches the chat link, and returns the link. With an empty
// address or pincode nothing is dispatched and the flow stays in
// AwaitingAddress so the caller can re-prompt.
func (f *Flow) Confirm(address, pincode string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.state != StateAwaitingAddress {
		return "", ErrNotAwaitingAddress
	}
	if address == "" || pincode == "" {
		return "", ErrMissingDetails
	}

	base := f.cart.OrderMessage()
	if base == "" {
		return "", ErrEmptyCart
	}

	chatURL := whatsapp.ChatURL(f.number, whatsapp.DeliveryDetails(base, address, pincode))
	f.nav.OpenChat(chatURL)
	f.state = StateDispatched
	return chatURL, nil
}
