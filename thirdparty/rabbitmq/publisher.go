package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rabbitmq/amqp091-go"
)

const (
	historyExchange   = "storefront_history_exchange"
	historyQueue      = "storefront_history_invalidation_queue"
	historyRoutingKey = "history.invalidate"
)

// HistoryInvalidationMessage tells every storefront that a user's order
// history view is stale.
type HistoryInvalidationMessage struct {
	UserID     uint64    `json:"user_id"`
	Reason     string    `json:"reason"`
	OccurredAt time.Time `json:"occurred_at"`
}

type Publisher struct {
	conn    *amqp091.Connection
	channel *amqp091.Channel
}

func dial(host string, port int, user, password string) (*amqp091.Connection, *amqp091.Channel, error) {
	dsn := fmt.Sprintf("amqp://%s:%s@%s:%d/", user, password, host, port)
	conn, err := amqp091.Dial(dsn)
	if err != nil {
		return nil, nil, err
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, nil, err
	}

	if err := declareTopology(channel); err != nil {
		channel.Close()
		conn.Close()
		return nil, nil, err
	}
	return conn, channel, nil
}

func declareTopology(channel *amqp091.Channel) error {
	err := channel.ExchangeDeclare(
		historyExchange, // name
		"direct",        // type
		true,            // durable
		false,           // auto-delete
		false,           // internal
		false,           // no-wait
		nil,             // arguments
	)
	if err != nil {
		return err
	}

	_, err = channel.QueueDeclare(
		historyQueue, // name
		true,         // durable
		false,        // auto-delete
		false,        // exclusive
		false,        // no-wait
		nil,          // arguments
	)
	if err != nil {
		return err
	}

	return channel.QueueBind(
		historyQueue,      // queue name
		historyRoutingKey, // routing key
		historyExchange,   // exchange
		false,             // no-wait
		nil,               // arguments
	)
}

func NewPublisher(host string, port int, user, password string) (*Publisher, error) {
	conn, channel, err := dial(host, port, user, password)
	if err != nil {
		return nil, err
	}
	return &Publisher{conn: conn, channel: channel}, nil
}

func (p *Publisher) PublishHistoryInvalidation(ctx context.Context, msg HistoryInvalidationMessage) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	return p.channel.PublishWithContext(
		ctx,
		historyExchange,   // exchange
		historyRoutingKey, // routing key
		false,             // mandatory
		false,             // immediate
		amqp091.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp091.Persistent,
			Timestamp:    msg.OccurredAt,
			Body:         body,
		},
	)
}

// Invalidate lets the publisher stand in for the order history application
// as the checkout flow's invalidation hook.
func (p *Publisher) Invalidate(ctx context.Context, userID uint64) error {
	return p.PublishHistoryInvalidation(ctx, HistoryInvalidationMessage{
		UserID:     userID,
		Reason:     "checkout_reconciled",
		OccurredAt: time.Now().UTC(),
	})
}

func (p *Publisher) Close() error {
	if p.channel != nil {
		p.channel.Close()
	}
	if p.conn != nil {
		p.conn.Close()
	}
	return nil
}
