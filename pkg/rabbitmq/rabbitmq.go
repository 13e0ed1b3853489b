package rabbitmq

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	amqp "github.com/streadway/amqp"
)

const (
	// ExchangeName is the topic exchange directory events are published to.
	ExchangeName = "staffdir.events"
	// AuditQueue receives every directory event for the audit log.
	AuditQueue = "staffdir_audit"
)

// Event is the envelope published for every directory change.
type Event struct {
	Type       string          `json:"type"`
	OccurredAt time.Time       `json:"occurredAt"`
	Payload    json.RawMessage `json:"payload"`
}

// Client holds the RabbitMQ connection and channel.
type Client struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	// amqp channels are not safe for concurrent publishing
	mu sync.Mutex
}

// Config holds RabbitMQ connection details.
type Config struct {
	URL string
}

// NewClient connects to RabbitMQ and declares the exchange and audit queue.
func NewClient(cfg Config) (*Client, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	if err := declareTopology(ch); err != nil {
		ch.Close()
		conn.Close()
		return nil, err
	}

	log.Printf("RabbitMQ client connected, exchange %s and queue %s declared.", ExchangeName, AuditQueue)

	return &Client{
		conn:    conn,
		channel: ch,
	}, nil
}

func declareTopology(ch *amqp.Channel) error {
	err := ch.ExchangeDeclare(
		ExchangeName, // name
		"topic",      // kind
		true,         // durable
		false,        // auto-deleted
		false,        // internal
		false,        // no-wait
		nil,          // arguments
	)
	if err != nil {
		return fmt.Errorf("failed to declare exchange %s: %w", ExchangeName, err)
	}

	_, err = ch.QueueDeclare(
		AuditQueue, // name
		true,       // durable
		false,      // delete when unused
		false,      // exclusive
		false,      // no-wait
		nil,        // arguments
	)
	if err != nil {
		return fmt.Errorf("failed to declare %s: %w", AuditQueue, err)
	}

	if err := ch.QueueBind(AuditQueue, "#", ExchangeName, false, nil); err != nil {
		return fmt.Errorf("failed to bind %s: %w", AuditQueue, err)
	}
	return nil
}

// Close closes the RabbitMQ connection and channel.
func (c *Client) Close() error {
	var errs []error
	if c.channel != nil {
		if err := c.channel.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close channel: %w", err))
		}
	}
	if c.conn != nil {
		if err := c.conn.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close connection: %w", err))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("multiple errors occurred during RabbitMQ client close: %v", errs)
	}
	return nil
}

// PublishEvent publishes a directory event, routed by its type.
func (c *Client) PublishEvent(eventType string, payload interface{}) error {
	if c.channel == nil {
		return fmt.Errorf("RabbitMQ channel is not available")
	}

	body, err := EncodeEvent(eventType, payload, time.Now())
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	err = c.channel.Publish(
		ExchangeName, // exchange
		eventType,    // routing key
		false,        // mandatory
		false,        // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now(),
		})
	if err != nil {
		return fmt.Errorf("failed to publish %s: %w", eventType, err)
	}
	return nil
}

// EncodeEvent wraps payload in an Event envelope and marshals it.
func EncodeEvent(eventType string, payload interface{}, at time.Time) ([]byte, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal %s payload: %w", eventType, err)
	}
	return json.Marshal(Event{Type: eventType, OccurredAt: at.UTC(), Payload: raw})
}

// ConsumeAuditEvents starts a goroutine that hands every audit queue message to handler.
func (c *Client) ConsumeAuditEvents(handler func(Event) error) error {
	if c.channel == nil {
		return fmt.Errorf("RabbitMQ channel is not available for consumption")
	}

	msgs, err := c.channel.Consume(
		AuditQueue, // queue
		"",         // consumer tag
		false,      // auto-ack
		false,      // exclusive
		false,      // no-local
		false,      // no-wait
		nil,        // args
	)
	if err != nil {
		return fmt.Errorf("failed to register consumer: %w", err)
	}

	go func() {
		for msg := range msgs {
			HandleDelivery(msg, handler)
		}
	}()
	return nil
}

// HandleDelivery decodes one message and acknowledges it according to the outcome.
// Undecodable messages are dropped; handler failures are requeued once.
func HandleDelivery(msg amqp.Delivery, handler func(Event) error) {
	var evt Event
	if err := json.Unmarshal(msg.Body, &evt); err != nil {
		log.Printf("Dropping malformed event %d: %v", msg.DeliveryTag, err)
		if err := msg.Nack(false, false); err != nil {
			log.Printf("Error nacking message %d: %v", msg.DeliveryTag, err)
		}
		return
	}

	if err := handler(evt); err != nil {
		log.Printf("Error processing %s event %d: %v", evt.Type, msg.DeliveryTag, err)
		if err := msg.Nack(false, !msg.Redelivered); err != nil {
			log.Printf("Error nacking message %d: %v", msg.DeliveryTag, err)
		}
		return
	}

	if err := msg.Ack(false); err != nil {
		log.Printf("Error acking message %d: %v", msg.DeliveryTag, err)
	}
}

// LogAuditEvent writes the event to the process log.
func LogAuditEvent(evt Event) error {
	log.Printf("audit: %s at %s %s", evt.Type, evt.OccurredAt.Format(time.RFC3339), string(evt.Payload))
	return nil
}
