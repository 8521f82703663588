package rabbitmq

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	amqp "github.com/streadway/amqp"
)

// Queue carrying kitchen tickets: full tickets for new orders and added-items
// notices for edited ones. A printer/display bridge consumes it.
const kitchenQueue = "kitchen_tickets"

// Ticket kinds.
const (
	TicketNewOrder   = "new_order"
	TicketItemsAdded = "items_added"
)

// TicketLine is one line of a kitchen ticket.
type TicketLine struct {
	MenuItem string `json:"menu_item"`
	Quantity int    `json:"quantity"`
	Notes    string `json:"notes,omitempty"`
}

// Ticket is the message published to the kitchen queue. An items_added ticket
// carries only the newly added quantities, never the full line set.
type Ticket struct {
	Kind      string       `json:"kind"`
	OrderID   string       `json:"order_id"`
	TableName string       `json:"table_name"`
	Waiter    string       `json:"waiter,omitempty"`
	Lines     []TicketLine `json:"lines"`
	Total     float64      `json:"total"`
	CreatedAt time.Time    `json:"created_at"`
}

// Client holds the RabbitMQ connection and channel.
type Client struct {
	conn    *amqp.Connection
	channel *amqp.Channel
}

// Config holds RabbitMQ connection details.
type Config struct {
	URL string
}

// NewClient creates a new RabbitMQ client. It connects to RabbitMQ, sets up a
// channel and declares the kitchen queue.
func NewClient(cfg Config) (*Client, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close() // Close connection if channel creation fails
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	_, err = ch.QueueDeclare(
		kitchenQueue, // name
		true,         // durable (persists messages across broker restarts)
		false,        // delete when unused
		false,        // exclusive
		false,        // no-wait
		nil,          // arguments
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare %s: %w", kitchenQueue, err)
	}

	log.Printf("RabbitMQ client connected and %s declared.", kitchenQueue)

	return &Client{
		conn:    conn,
		channel: ch,
	}, nil
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

// PublishTicket publishes a kitchen ticket to the kitchen queue as a persistent
// JSON message.
func (c *Client) PublishTicket(ticket Ticket) error {
	if c.channel == nil {
		return fmt.Errorf("RabbitMQ channel is not available")
	}

	body, err := json.Marshal(ticket)
	if err != nil {
		return fmt.Errorf("failed to marshal ticket to JSON: %w", err)
	}

	err = c.channel.Publish(
		"",           // exchange: default exchange
		kitchenQueue, // routing key: the queue name
		false,        // mandatory
		false,        // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now(),
		})
	if err != nil {
		return fmt.Errorf("failed to publish ticket: %w", err)
	}

	log.Printf(" [x] Sent kitchen ticket for order %s (%s)", ticket.OrderID, ticket.Kind)
	return nil
}

// ConsumeTickets registers a consumer on the kitchen queue and processes
// messages with the provided handler in a goroutine. Messages are acked on
// success and nacked (requeued) on handler error.
func (c *Client) ConsumeTickets(messageHandler func(msg amqp.Delivery) error) error {
	if c.channel == nil {
		return fmt.Errorf("RabbitMQ channel is not available for consumption")
	}

	queue, err := c.channel.QueueDeclare(
		kitchenQueue, // name
		true,         // durable
		false,        // delete when unused
		false,        // exclusive
		false,        // no-wait
		nil,          // arguments
	)
	if err != nil {
		return fmt.Errorf("failed to declare queue for consuming: %w", err)
	}

	msgs, err := c.channel.Consume(
		queue.Name, // queue
		"",         // consumer tag
		false,      // auto-ack: manual acknowledgement
		false,      // exclusive
		false,      // no-local
		false,      // no-wait
		nil,        // args
	)
	if err != nil {
		return fmt.Errorf("failed to register consumer: %w", err)
	}

	log.Printf(" [*] Waiting for kitchen tickets.")

	go func() {
		for msg := range msgs {
			if err := messageHandler(msg); err != nil {
				log.Printf("Error processing ticket %d: %v", msg.DeliveryTag, err)
				if requeueErr := msg.Nack(false, true); requeueErr != nil {
					log.Printf("Error nacking ticket %d: %v", msg.DeliveryTag, requeueErr)
				}
			} else {
				if ackErr := msg.Ack(false); ackErr != nil {
					log.Printf("Error acking ticket %d: %v", msg.DeliveryTag, ackErr)
				}
			}
		}
	}()

	return nil
}
