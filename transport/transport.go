// Package transport carries message.Server/message.Client envelopes between
// a brain and the game server over a websocket connection. Where the
// teacher's client.WebClient accepts an inbound connection from a browser,
// Conn here dials out to the server instead — a robot is the client, not
// the host — but the read/send pump pattern is the same one.
package transport

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"local/catanbrain/message"
)

// Conn is a live connection to the game server: a send channel the brain
// writes outbound actions to, and a receive channel the brain reads inbound
// notifications from. The receive channel closes when the connection
// drops; the send channel closes only when Close is called.
type Conn struct {
	ws *websocket.Conn

	to   chan message.Client
	from chan message.Server
}

// Dial opens a websocket connection to url and starts its read/send pumps.
// The returned Conn is ready to use immediately; callers should range over
// From() until it closes, and must call Close when done sending.
func Dial(url string, header http.Header) (*Conn, error) {
	ws, _, err := websocket.DefaultDialer.Dial(url, header)
	if err != nil {
		return nil, fmt.Errorf("transport: dial %s: %w", url, err)
	}
	c := &Conn{
		ws:   ws,
		to:   make(chan message.Client, 100),
		from: make(chan message.Server, 100),
	}
	go c.readPump()
	go c.sendPump()
	return c, nil
}

// Send queues an outbound action. Safe to call concurrently with From.
func (c *Conn) Send(m message.Client) {
	c.to <- m
}

// From returns the channel of inbound server messages. It closes when the
// underlying connection drops.
func (c *Conn) From() <-chan message.Server {
	return c.from
}

// Close stops the send pump; the read pump stops on its own once the
// server closes the socket.
func (c *Conn) Close() {
	close(c.to)
}

func (c *Conn) sendPump() {
	for m := range c.to {
		b, err := json.Marshal(m)
		if err != nil {
			continue
		}
		if err := c.ws.WriteMessage(websocket.TextMessage, b); err != nil {
			return
		}
	}
}

func (c *Conn) readPump() {
	defer close(c.from)
	defer c.ws.Close()
	for {
		c.ws.SetReadDeadline(time.Now().Add(2 * time.Minute))
		_, b, err := c.ws.ReadMessage()
		if err != nil {
			return
		}
		msg, err := message.UnmarshalServer(b)
		if err != nil {
			continue
		}
		c.from <- msg
	}
}
