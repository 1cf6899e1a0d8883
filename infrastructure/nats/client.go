package nats

import (
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
	"todo-service/pkg/logger"
)

// Client wraps NATS connection
type Client struct {
	conn *nats.Conn
}

// ClientConfig configuration สำหรับ NATS Client
type ClientConfig struct {
	URL  string // nats://localhost:4222
	Name string // ชื่อ connection ที่เห็นใน nats monitoring
}

// NewClient เชื่อมต่อ NATS
func NewClient(cfg ClientConfig) (*Client, error) {
	nc, err := nats.Connect(cfg.URL,
		nats.Name(cfg.Name),
		nats.MaxReconnects(-1), // Reconnect forever
		nats.ReconnectWait(2*time.Second),
		nats.DisconnectErrHandler(func(nc *nats.Conn, err error) {
			if err != nil {
				logger.Warn("NATS disconnected", "error", err)
			}
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			logger.Info("NATS reconnected", "url", nc.ConnectedUrl())
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}

	logger.Info("NATS client initialized", "url", cfg.URL)
	return &Client{conn: nc}, nil
}

// Conn returns the underlying NATS connection
func (c *Client) Conn() *nats.Conn {
	return c.conn
}

// Close flush แล้วปิด NATS connection
func (c *Client) Close() error {
	if c.conn != nil {
		if err := c.conn.FlushTimeout(2 * time.Second); err != nil {
			logger.Warn("NATS flush before close failed", "error", err)
		}
		c.conn.Close()
		logger.Info("NATS connection closed")
	}
	return nil
}
