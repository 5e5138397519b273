package ws

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/coder/websocket"

	"github.com/spcwebgw/spc2mqtt/internal/log"
)

// Handler receives each decoded push message. It must tolerate concurrent
// invocation.
type Handler func(ctx context.Context, message []byte)

// Client maintains a WebSocket subscription to the SPC Web Gateway's event
// stream, reconnecting with exponential backoff when the connection drops.
type Client struct {
	url     string
	handler Handler
	log     *log.Logger
	done    chan struct{}
}

func New(url string, handler Handler, logger *log.Logger) *Client {
	return &Client{
		url:     url,
		handler: handler,
		log:     logger,
		done:    make(chan struct{}),
	}
}

// Start begins listening for events. It returns immediately; the read loop
// runs until ctx is cancelled.
func (c *Client) Start(ctx context.Context) {
	go c.run(ctx)
}

// Done is closed once the read loop has fully stopped.
func (c *Client) Done() <-chan struct{} {
	return c.done
}

func (c *Client) run(ctx context.Context) {
	defer close(c.done)

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = time.Second
	bo.MaxInterval = 30 * time.Second
	bo.MaxElapsedTime = 0 // retry forever

	for {
		connected, err := c.listen(ctx)
		if ctx.Err() != nil {
			return
		}
		if connected {
			bo.Reset()
		}

		wait := bo.NextBackOff()
		c.log.Error("Push channel disconnected: %v (reconnecting in %s)", err, wait)
		select {
		case <-time.After(wait):
		case <-ctx.Done():
			return
		}
	}
}

// listen dials the gateway and reads messages until the connection fails or
// ctx is cancelled. It reports whether a connection was established so the
// caller can reset its backoff.
func (c *Client) listen(ctx context.Context) (bool, error) {
	conn, _, err := websocket.Dial(ctx, c.url, nil)
	if err != nil {
		return false, err
	}
	defer conn.CloseNow()

	// Event payloads are small; the default limit is fine but be explicit.
	conn.SetReadLimit(64 * 1024)

	c.log.Info("Connected to push channel %s", c.url)

	for {
		_, data, err := conn.Read(ctx)
		if err != nil {
			return true, err
		}
		c.handler(ctx, data)
	}
}
