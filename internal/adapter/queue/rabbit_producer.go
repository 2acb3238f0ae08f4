package queue

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/TajwarSaiyeed/nexora-e-commerce/internal/entity"
	"github.com/TajwarSaiyeed/nexora-e-commerce/internal/usecase"
	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	exchangeName = "order.events"
	routingKey   = "order.placed"
	queueName    = "order.placed.q"
)

// orderPlacedMsg is the wire shape consumed by fulfillment/notification
// workers; it carries the snapshot, not references into the catalog.
type orderPlacedMsg struct {
	OrderID       string             `json:"order_id"`
	UserID        string             `json:"user_id"`
	CustomerEmail string             `json:"customer_email"`
	Total         string             `json:"total"`
	Status        string             `json:"status"`
	Items         []entity.OrderItem `json:"items"`
}

// RabbitProducer implements usecase.OrderEvents.
type RabbitProducer struct {
	ch *amqp.Channel
}

// NewRabbitProducer sets up the exchange, queue, and binding once at startup.
func NewRabbitProducer(ch *amqp.Channel) (*RabbitProducer, error) {
	if err := ch.ExchangeDeclare(
		exchangeName,
		"topic",
		true,  // durable
		false, // auto-delete
		false, // internal
		false, // no-wait
		nil,
	); err != nil {
		return nil, fmt.Errorf("declare exchange: %w", err)
	}

	q, err := ch.QueueDeclare(
		queueName,
		true,  // durable
		false, // auto-delete
		false, // exclusive
		false, // no-wait
		nil,
	)
	if err != nil {
		return nil, fmt.Errorf("declare queue: %w", err)
	}

	if err := ch.QueueBind(q.Name, routingKey, exchangeName, false, nil); err != nil {
		return nil, fmt.Errorf("queue bind: %w", err)
	}

	return &RabbitProducer{ch: ch}, nil
}

// OrderPlaced sends an "order.placed" event to the exchange.
func (p *RabbitProducer) OrderPlaced(ctx context.Context, order *entity.Order) error {
	body, err := json.Marshal(orderPlacedMsg{
		OrderID:       order.ID,
		UserID:        order.UserID,
		CustomerEmail: order.CustomerEmail,
		Total:         order.Total.String(),
		Status:        string(order.Status),
		Items:         order.Items,
	})
	if err != nil {
		return fmt.Errorf("marshal message: %w", err)
	}

	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent, // survive broker restarts
		Body:         body,
	}

	if err := p.ch.PublishWithContext(ctx, exchangeName, routingKey, false, false, pub); err != nil {
		return fmt.Errorf("publish: %w", err)
	}
	return nil
}

var _ usecase.OrderEvents = (*RabbitProducer)(nil)
