// Package events publishes best-effort domain events to RabbitMQ. The POS
// works fine without a broker; callers hold a nil *Publisher in that case.
package events

import (
	"fmt"
	"log"
	"time"

	amqp "github.com/streadway/amqp"
)

type Config struct {
	URL string
}

// Publisher holds the broker connection and channel. Not safe for
// concurrent Publish calls on the same channel; the checkout flow funnels
// events through a single goroutine at a time.
type Publisher struct {
	conn    *amqp.Connection
	channel *amqp.Channel
}

// NewPublisher connects and declares the orders exchange.
func NewPublisher(cfg Config) (*Publisher, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("connect to broker: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}
	if err := ch.ExchangeDeclare("orders", "topic", true, false, false, false, nil); err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("declare orders exchange: %w", err)
	}
	log.Println("[events] broker connected, orders exchange declared")
	return &Publisher{conn: conn, channel: ch}, nil
}

// Publish sends one persistent JSON message. Nil receivers are a no-op so
// an unconfigured broker costs callers nothing.
func (p *Publisher) Publish(exchange, routingKey string, body []byte) error {
	if p == nil {
		return nil
	}
	return p.channel.Publish(exchange, routingKey, false, false, amqp.Publishing{
		ContentType:  "application/json",
		Body:         body,
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now(),
	})
}

func (p *Publisher) Close() error {
	if p == nil {
		return nil
	}
	var errs []error
	if p.channel != nil {
		if err := p.channel.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	if p.conn != nil {
		if err := p.conn.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("close publisher: %v", errs)
	}
	return nil
}
