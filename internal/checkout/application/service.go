package application

import (
	"context"
	"time"

	cartdomain "github.com/tokobajusablon/storefront/internal/cart/domain"
	"github.com/tokobajusablon/storefront/internal/checkout/domain"
	"github.com/tokobajusablon/storefront/pkg/logger"
)

// CartAccessor is the slice of the cart service checkout needs.
type CartAccessor interface {
	Get(ctx context.Context, cartID string) (*cartdomain.Cart, error)
	Clear(ctx context.Context, cartID string) error
}

// ContactProvider resolves the store's WhatsApp contact number from
// settings.
type ContactProvider interface {
	WhatsAppNumber(ctx context.Context) (string, error)
}

// Result is the outcome of a successful checkout: the composed order
// message and the hand-off URL the client opens.
type Result struct {
	Message    string `json:"message"`
	HandoffURL string `json:"handoff_url"`
	Total      int64  `json:"total"`
}

// Service orchestrates the irreversible checkout sequence.
type Service struct {
	carts          CartAccessor
	contacts       ContactProvider
	publisher      domain.EventPublisher
	fallbackNumber string
}

// NewService creates the checkout service. publisher may be nil to
// disable event publishing; fallbackNumber substitutes for a missing
// contact setting so checkout never hard-fails on configuration.
func NewService(carts CartAccessor, contacts ContactProvider, publisher domain.EventPublisher, fallbackNumber string) *Service {
	return &Service{
		carts:          carts,
		contacts:       contacts,
		publisher:      publisher,
		fallbackNumber: fallbackNumber,
	}
}

// Checkout validates shipping, composes the order message and hands it
// off. The cart is cleared only after the hand-off URL has been built;
// any validation failure leaves the cart intact.
func (s *Service) Checkout(ctx context.Context, cartID string, shipping domain.ShippingInfo) (*Result, error) {
	if err := shipping.Validate(); err != nil {
		return nil, err
	}

	cart, err := s.carts.Get(ctx, cartID)
	if err != nil {
		return nil, err
	}
	if cart.IsEmpty() {
		return nil, domain.ErrEmptyCart
	}

	contact := s.contactNumber(ctx)
	total := cart.TotalPrice()

	message, err := domain.ComposeOrderMessage(cart.Items, total, shipping)
	if err != nil {
		return nil, err
	}
	handoffURL := domain.HandoffURL(contact, message)

	if s.publisher != nil {
		event := domain.OrderSubmittedEvent{
			CartID:        cartID,
			CustomerName:  shipping.Name,
			CustomerPhone: shipping.Phone,
			ItemCount:     cart.TotalItems(),
			Total:         total,
			ContactNumber: contact,
			Timestamp:     time.Now(),
		}
		if err := s.publisher.Publish(ctx, domain.OrderSubmittedTopic, cartID, event); err != nil {
			logger.Warn(ctx, "order event publish failed", "cart_id", cartID, "error", err)
		}
	}

	// The hand-off is committed; only now may the cart go away.
	if err := s.carts.Clear(ctx, cartID); err != nil {
		logger.Warn(ctx, "cart clear after checkout failed", "cart_id", cartID, "error", err)
	}

	logger.Info(ctx, "order handed off",
		"cart_id", cartID,
		"items", cart.TotalItems(),
		"total", total,
	)

	return &Result{Message: message, HandoffURL: handoffURL, Total: total}, nil
}

// contactNumber resolves the store contact, substituting the fixed
// fallback when the setting is missing or unreadable.
func (s *Service) contactNumber(ctx context.Context) string {
	number, err := s.contacts.WhatsAppNumber(ctx)
	if err != nil || number == "" {
		logger.Warn(ctx, "whatsapp contact unavailable, using fallback", "error", err)
		return s.fallbackNumber
	}
	return number
}
