// Package event publishes storefront domain events to Kafka. Publishing is
// best effort: a broker outage must never fail the user-facing operation, so
// errors are logged and swallowed.
package event

import (
	"context"
	"log/slog"

	"github.com/sweetmoments/storefront/internal/domain"
	"github.com/sweetmoments/storefront/pkg/kafka"
)

const (
	TopicCartUpdated     = "sweetmoments.cart.updated"
	TopicCartCleared     = "sweetmoments.cart.cleared"
	TopicWishlistToggled = "sweetmoments.wishlist.toggled"
	TopicProductCreated  = "sweetmoments.catalog.product_created"
)

const source = "storefront"

// Publisher is the subset of the Kafka producer the event layer needs.
type Publisher interface {
	Publish(ctx context.Context, topic string, event *kafka.Event) error
}

// Producer emits storefront events.
type Producer struct {
	publisher Publisher
	logger    *slog.Logger
}

// NewProducer creates an event producer. A nil publisher disables publishing
// entirely, which keeps local development free of a broker requirement.
func NewProducer(publisher Publisher, logger *slog.Logger) *Producer {
	return &Producer{publisher: publisher, logger: logger}
}

// CartUpdatedPayload describes the cart after a mutation.
type CartUpdatedPayload struct {
	SessionID  string `json:"session_id"`
	TotalItems int    `json:"total_items"`
	TotalPrice int64  `json:"total_price"`
}

// WishlistToggledPayload describes a single wishlist toggle.
type WishlistToggledPayload struct {
	SessionID string `json:"session_id"`
	ProductID string `json:"product_id"`
	Added     bool   `json:"added"`
}

// ProductCreatedPayload describes a newly listed product.
type ProductCreatedPayload struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	Category  string `json:"category"`
	Price     int64  `json:"price"`
	Local     bool   `json:"local"`
}

// CartUpdated emits a cart mutation event.
func (p *Producer) CartUpdated(ctx context.Context, cart *domain.Cart) {
	p.publish(ctx, TopicCartUpdated, cart.SessionID, "cart", CartUpdatedPayload{
		SessionID:  cart.SessionID,
		TotalItems: cart.TotalItems(),
		TotalPrice: cart.TotalPrice(),
	})
}

// CartCleared emits a cart cleared event.
func (p *Producer) CartCleared(ctx context.Context, sessionID string) {
	p.publish(ctx, TopicCartCleared, sessionID, "cart", CartUpdatedPayload{
		SessionID: sessionID,
	})
}

// WishlistToggled emits a wishlist toggle event.
func (p *Producer) WishlistToggled(ctx context.Context, sessionID, productID string, added bool) {
	p.publish(ctx, TopicWishlistToggled, sessionID, "wishlist", WishlistToggledPayload{
		SessionID: sessionID,
		ProductID: productID,
		Added:     added,
	})
}

// ProductCreated emits a product listing event. local marks products that
// were synthesized in-session after a catalog write failure.
func (p *Producer) ProductCreated(ctx context.Context, product *domain.Product, local bool) {
	p.publish(ctx, TopicProductCreated, product.ID, "product", ProductCreatedPayload{
		ProductID: product.ID,
		Name:      product.Name,
		Category:  product.Category,
		Price:     product.EffectivePrice(),
		Local:     local,
	})
}

func (p *Producer) publish(ctx context.Context, topic, aggregateID, aggregateType string, payload any) {
	if p.publisher == nil {
		return
	}
	evt, err := kafka.NewEvent(topic, aggregateID, aggregateType, source, payload)
	if err != nil {
		p.logger.ErrorContext(ctx, "building event",
			slog.String("topic", topic),
			slog.String("error", err.Error()))
		return
	}
	if err := p.publisher.Publish(ctx, topic, evt); err != nil {
		p.logger.WarnContext(ctx, "publishing event failed",
			slog.String("topic", topic),
			slog.String("error", err.Error()))
	}
}
