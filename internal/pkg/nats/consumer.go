package nats

import (
	"fmt"

	"github.com/nats-io/nats.go"
	"github.com/piresc/armada/internal/pkg/logger"
)

// MessageHandler is a function that processes NATS messages
type MessageHandler func(message []byte) error

// Consumer handles consuming messages from NATS subjects
type Consumer struct {
	conn         *nats.Conn
	subscription *nats.Subscription
	ownsConn     bool
}

// NewConsumer creates a new NATS consumer for a subject, optionally joining
// a queue group so that each message is handled by a single group member
func NewConsumer(subject, queueGroup, address string, handler MessageHandler) (*Consumer, error) {
	// Connect to NATS server
	conn, err := nats.Connect(address)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS server: %w", err)
	}

	consumer, err := newConsumerWithConn(conn, subject, queueGroup, handler)
	if err != nil {
		conn.Close()
		return nil, err
	}
	consumer.ownsConn = true

	return consumer, nil
}

// NewConsumerWithConn creates a consumer over an existing connection
func NewConsumerWithConn(conn *nats.Conn, subject, queueGroup string, handler MessageHandler) (*Consumer, error) {
	return newConsumerWithConn(conn, subject, queueGroup, handler)
}

func newConsumerWithConn(conn *nats.Conn, subject, queueGroup string, handler MessageHandler) (*Consumer, error) {
	wrapped := func(msg *nats.Msg) {
		if err := handler(msg.Data); err != nil {
			logger.Error("Error processing message",
				logger.String("subject", subject),
				logger.String("queue_group", queueGroup),
				logger.Err(err))
		}
	}

	var subscription *nats.Subscription
	var err error
	if queueGroup != "" {
		subscription, err = conn.QueueSubscribe(subject, queueGroup, wrapped)
	} else {
		subscription, err = conn.Subscribe(subject, wrapped)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to subscribe to subject: %w", err)
	}

	return &Consumer{
		conn:         conn,
		subscription: subscription,
	}, nil
}

// Stop unsubscribes and, if the consumer owns the connection, closes it
func (c *Consumer) Stop() {
	if c.subscription != nil {
		_ = c.subscription.Unsubscribe()
	}
	if c.ownsConn && c.conn != nil {
		c.conn.Close()
	}
}
