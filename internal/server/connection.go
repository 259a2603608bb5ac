package server

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/gorilla/websocket"
)

const (
	// Time allowed to write a message to the peer
	writeWait = 10 * time.Second

	// Maximum message size allowed from peer
	maxMessageSize = 4096

	// Responses buffered per connection before it is dropped
	sendBufferSize = 64
)

// ErrSendBufferFull is returned when a slow client falls too far behind.
var ErrSendBufferFull = errors.New("send buffer full")

// Connection is one WebSocket client. It owns a read loop, a write loop and an
// idle timer that closes the connection when no request arrives in time.
type Connection struct {
	conn      *websocket.Conn
	send      chan *Response
	server    *Server
	logger    *log.Logger
	ctx       context.Context
	cancel    context.CancelFunc
	closeOnce sync.Once

	mu   sync.Mutex
	idle *quartz.Timer
}

func newConnection(conn *websocket.Conn, s *Server) *Connection {
	ctx, cancel := context.WithCancel(context.Background())
	return &Connection{
		conn:   conn,
		send:   make(chan *Response, sendBufferSize),
		server: s,
		logger: s.logger.WithPrefix("conn").With("remote", conn.RemoteAddr().String()),
		ctx:    ctx,
		cancel: cancel,
	}
}

// Start arms the idle timer and launches the pumps.
func (c *Connection) Start() {
	if c.server.idleTimeout > 0 {
		c.mu.Lock()
		c.idle = c.server.clock.AfterFunc(c.server.idleTimeout, func() {
			c.logger.Info("Closing idle connection", "timeout", c.server.idleTimeout)
			_ = c.Close()
		})
		c.mu.Unlock()
	}
	go c.writePump()
	go c.readPump()
}

// Done is closed once the connection has shut down.
func (c *Connection) Done() <-chan struct{} {
	return c.ctx.Done()
}

// Close tears down the connection. Safe to call more than once.
func (c *Connection) Close() error {
	var err error
	c.closeOnce.Do(func() {
		c.cancel()
		c.mu.Lock()
		if c.idle != nil {
			c.idle.Stop()
		}
		c.mu.Unlock()
		err = c.conn.Close()
	})
	return err
}

// Send queues a response without blocking. A full buffer closes the
// connection.
func (c *Connection) Send(resp *Response) error {
	select {
	case <-c.ctx.Done():
		return c.ctx.Err()
	default:
	}

	select {
	case c.send <- resp:
		return nil
	case <-c.ctx.Done():
		return c.ctx.Err()
	default:
		c.logger.Warn("Connection send buffer full, closing connection")
		_ = c.Close()
		return ErrSendBufferFull
	}
}

func (c *Connection) touch() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.idle != nil {
		c.idle.Reset(c.server.idleTimeout)
	}
}

func (c *Connection) readPump() {
	defer func() { _ = c.Close() }()

	c.conn.SetReadLimit(maxMessageSize)

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.logger.Debug("WebSocket read error", "error", err)
			}
			return
		}
		c.touch()

		var req Request
		if err := json.Unmarshal(data, &req); err != nil {
			if c.Send(NewError("", CodeBadRequest, "invalid JSON: "+err.Error())) != nil {
				return
			}
			continue
		}

		resp := Evaluate(&req, c.server.predictor)
		c.logger.Debug("Evaluated", "id", req.ID, "cards", req.Cards, "type", resp.Type, "category", resp.Category, "code", resp.Code)
		if c.Send(resp) != nil {
			return
		}
	}
}

func (c *Connection) writePump() {
	defer func() { _ = c.Close() }()

	for {
		select {
		case resp := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteJSON(resp); err != nil {
				c.logger.Debug("Failed to write message", "error", err)
				return
			}
		case <-c.ctx.Done():
			return
		}
	}
}
