// Package ws streams the kitchen board over a WebSocket. Each connection
// owns one poll loop that re-fetches the kitchen queue on a fixed
// interval and pushes the partitioned board; the loop is bound to the
// connection's lifetime, so a torn-down view can never receive a late
// update.
package ws

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/cardapio-pos/web/internal/backend"
	"github.com/cardapio-pos/web/internal/enum"
	"github.com/cardapio-pos/web/internal/nav"
	"github.com/cardapio-pos/web/internal/session"
)

const (
	// Time allowed to write a message to the peer
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer
	pongWait = 60 * time.Second

	// Send pings to peer with this period (must be less than pongWait)
	pingPeriod = (pongWait * 9) / 10

	// DefaultPollInterval is the kitchen board refresh cadence.
	DefaultPollInterval = 30 * time.Second
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // session cookie is the auth boundary
	},
}

// KitchenFeed is the remote call the board polls. Satisfied by
// *backend.OrderService.
type KitchenFeed interface {
	ForKitchen(ctx context.Context, token string) ([]backend.Order, error)
}

// Board serves the live kitchen board connections.
type Board struct {
	feed     KitchenFeed
	sessions *session.Manager
	interval time.Duration
}

func NewBoard(feed KitchenFeed, sessions *session.Manager, interval time.Duration) *Board {
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	return &Board{feed: feed, sessions: sessions, interval: interval}
}

// event is one board push.
type event struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
}

// ServeHTTP authenticates via the session cookie, upgrades, and runs the
// poll loop until the peer disconnects.
func (b *Board) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie(session.CookieName)
	if err != nil || cookie.Value == "" {
		http.Error(w, "não autenticado", http.StatusUnauthorized)
		return
	}
	sess, err := b.sessions.Get(r.Context(), cookie.Value)
	if err != nil {
		http.Error(w, "não autenticado", http.StatusUnauthorized)
		return
	}
	if sess.Role != enum.RoleKitchen && sess.Role != enum.RoleAdmin {
		http.Error(w, "acesso negado", http.StatusForbidden)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("ERROR: websocket upgrade: %v", err)
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	go b.readPump(conn, cancel)
	b.pollLoop(ctx, conn, sess.Token)
}

// readPump discards inbound frames; its only job is detecting the
// disconnect and cancelling the poll loop.
func (b *Board) readPump(conn *websocket.Conn, cancel context.CancelFunc) {
	defer cancel()

	conn.SetReadLimit(512)
	conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("websocket error: %v", err)
			}
			return
		}
	}
}

// pollLoop pushes the board immediately, then on every tick. A failed
// fetch skips the push and leaves the peer's last board standing; an
// authorization rejection ends the connection for good.
func (b *Board) pollLoop(ctx context.Context, conn *websocket.Conn, token string) {
	defer conn.Close()

	poll := time.NewTicker(b.interval)
	defer poll.Stop()
	ping := time.NewTicker(pingPeriod)
	defer ping.Stop()

	if !b.push(ctx, conn, token) {
		return
	}
	for {
		select {
		case <-ctx.Done():
			return
		case <-poll.C:
			if !b.push(ctx, conn, token) {
				return
			}
		case <-ping.C:
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// push fetches and writes one board; it reports whether the loop should
// keep going.
func (b *Board) push(ctx context.Context, conn *websocket.Conn, token string) bool {
	orders, err := b.feed.ForKitchen(ctx, token)
	if err != nil {
		if errors.Is(err, backend.ErrUnauthorized) || ctx.Err() != nil {
			return false
		}
		log.Printf("ERROR: kitchen board poll: %v", err)
		return true
	}

	message, err := json.Marshal(event{Type: "board", Payload: nav.BuildBoard(orders)})
	if err != nil {
		log.Printf("ERROR: encode board event: %v", err)
		return true
	}

	conn.SetWriteDeadline(time.Now().Add(writeWait))
	return conn.WriteMessage(websocket.TextMessage, message) == nil
}
