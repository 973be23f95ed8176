package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/muhammadheryan/watch-storefront/utils/logger"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// Consumer drains history invalidation events and forwards each one to the
// storefront's internal API.
type Consumer struct {
	conn    *amqp091.Connection
	channel *amqp091.Channel
	apiURL  string
	apiKey  string
	http    *http.Client
}

func NewConsumer(host string, port int, user, password, apiURL, apiKey string) (*Consumer, error) {
	conn, channel, err := dial(host, port, user, password)
	if err != nil {
		return nil, err
	}

	return &Consumer{
		conn:    conn,
		channel: channel,
		apiURL:  apiURL,
		apiKey:  apiKey,
		http:    &http.Client{Timeout: 10 * time.Second},
	}, nil
}

func (c *Consumer) Start(ctx context.Context) error {
	// Set QoS to 1 - process one message at a time
	err := c.channel.Qos(1, 0, false)
	if err != nil {
		return err
	}

	msgs, err := c.channel.Consume(
		historyQueue,
		"",    // consumer tag
		false, // auto-ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		return err
	}

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-msgs:
				if !ok {
					return
				}

				requeue, err := c.handle(ctx, msg.Body)
				if err != nil {
					logger.Error("[Consumer] handle history invalidation", zap.String("error", err.Error()), zap.Bool("requeue", requeue))
					_ = msg.Nack(false, requeue)
					continue
				}
				_ = msg.Ack(false)
			}
		}
	}()

	return nil
}

// handle processes one message body. Malformed bodies are dropped, failed
// API calls are requeued.
func (c *Consumer) handle(ctx context.Context, body []byte) (requeue bool, err error) {
	var msg HistoryInvalidationMessage
	if err := json.Unmarshal(body, &msg); err != nil {
		return false, fmt.Errorf("unmarshal message: %w", err)
	}
	if msg.UserID == 0 {
		return false, fmt.Errorf("message without user id")
	}

	if err := c.callInvalidateAPI(ctx, msg.UserID); err != nil {
		return true, err
	}
	logger.Info("[Consumer] order history invalidated", zap.Uint64("user_id", msg.UserID), zap.String("reason", msg.Reason))
	return false, nil
}

func (c *Consumer) callInvalidateAPI(ctx context.Context, userID uint64) error {
	url := fmt.Sprintf("%s/internal/v1/history/%d/invalidate", c.apiURL, userID)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, nil)
	if err != nil {
		return err
	}

	// internal service key
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.apiKey))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Internal-Service", "history-invalidation-consumer")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("API returned status %d: %s", resp.StatusCode, string(body))
	}

	return nil
}

func (c *Consumer) Close() error {
	if c.channel != nil {
		c.channel.Close()
	}
	if c.conn != nil {
		c.conn.Close()
	}
	return nil
}
