package nats

import (
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
)

// Client owns the NATS connection shared by a service's producer and
// consumers.
type Client struct {
	conn *nats.Conn
}

// NewClient connects to the NATS server. The connection reconnects
// indefinitely with a short wait so a broker restart does not take the
// service down with it.
func NewClient(url string) (*Client, error) {
	conn, err := nats.Connect(url,
		nats.MaxReconnects(-1),
		nats.ReconnectWait(2*time.Second),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS server: %w", err)
	}

	return &Client{conn: conn}, nil
}

// GetConn returns the underlying NATS connection
func (c *Client) GetConn() *nats.Conn {
	return c.conn
}

// Close closes the NATS connection
func (c *Client) Close() {
	if c.conn != nil {
		c.conn.Close()
	}
}
