package server

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/core/types"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/Sauravgopinathek/Food-Supply-Chain/internal/store"
)

type eventClient struct {
	conn      *websocket.Conn
	send      chan []byte
	closeOnce sync.Once
}

// EventHub fans new blocks and indexed batch events out to WebSocket clients.
type EventHub struct {
	mu       sync.RWMutex
	clients  map[*eventClient]struct{}
	upgrader websocket.Upgrader
	log      *zap.SugaredLogger
}

type hubMessage struct {
	Type string `json:"type"`
	Data any    `json:"data"`
}

type BlockMessage struct {
	Number    uint64 `json:"number"`
	Hash      string `json:"hash"`
	Timestamp uint64 `json:"timestamp"`
}

type BatchEventMessage struct {
	BatchID     string    `json:"batchId"`
	EventType   string    `json:"eventType"`
	Details     string    `json:"details"`
	Temperature int64     `json:"temperature"`
	Timestamp   uint64    `json:"timestamp"`
	Actor       string    `json:"actor"`
	TxHash      string    `json:"txHash"`
	BlockNumber uint64    `json:"blockNumber"`
	LogIndex    uint      `json:"logIndex"`
	BlockTime   time.Time `json:"blockTime"`
}

func NewEventHub(log *zap.SugaredLogger) *EventHub {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &EventHub{
		clients: make(map[*eventClient]struct{}),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
		log: log,
	}
}

func (h *EventHub) PublishBatchEvent(event *store.BatchEvent) {
	if h == nil || event == nil {
		return
	}
	h.broadcast("batchEvent", BatchEventMessage{
		BatchID:     event.BatchID,
		EventType:   event.EventType,
		Details:     event.Details,
		Temperature: event.Temperature,
		Timestamp:   event.Timestamp,
		Actor:       event.Actor,
		TxHash:      event.TxHash,
		BlockNumber: event.BlockNumber,
		LogIndex:    event.LogIndex,
		BlockTime:   event.BlockTime,
	})
}

// PublishBlock has the chain.BlockHandler shape so it can be passed to WatchBlocks.
func (h *EventHub) PublishBlock(_ context.Context, head *types.Header) error {
	if h == nil || head == nil || head.Number == nil {
		return nil
	}
	h.broadcast("block", BlockMessage{
		Number:    head.Number.Uint64(),
		Hash:      head.Hash().Hex(),
		Timestamp: head.Time,
	})
	return nil
}

func (h *EventHub) broadcast(kind string, data any) {
	payload, err := json.Marshal(hubMessage{Type: kind, Data: data})
	if err != nil {
		h.log.Warnf("marshal %s: %v", kind, err)
		return
	}
	var slow []*eventClient
	h.mu.RLock()
	for client := range h.clients {
		select {
		case client.send <- payload:
		default:
			slow = append(slow, client)
		}
	}
	h.mu.RUnlock()
	for _, client := range slow {
		h.log.Debug("dropping slow websocket client")
		h.closeClient(client)
	}
}

func (h *EventHub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// ServeWS godoc
// @Summary Stream new blocks and indexed batch events over WebSocket
// @Tags Events
// @Success 101
// @Router /api/v1/events [get]
func (h *EventHub) ServeWS(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Warnf("upgrade websocket: %v", err)
		return
	}
	client := &eventClient{
		conn: conn,
		send: make(chan []byte, 32),
	}
	h.mu.Lock()
	h.clients[client] = struct{}{}
	h.mu.Unlock()

	go client.writePump()
	go client.readPump(func() {
		h.closeClient(client)
	})
}

// Run closes every client once ctx is done.
func (h *EventHub) Run(ctx context.Context) {
	<-ctx.Done()
	h.mu.Lock()
	clients := make([]*eventClient, 0, len(h.clients))
	for client := range h.clients {
		clients = append(clients, client)
	}
	h.mu.Unlock()
	for _, client := range clients {
		h.closeClient(client)
	}
}

func (h *EventHub) closeClient(client *eventClient) {
	h.mu.Lock()
	delete(h.clients, client)
	h.mu.Unlock()
	client.closeOnce.Do(func() {
		close(client.send)
		client.conn.Close()
	})
}

func (c *eventClient) writePump() {
	ticker := time.NewTicker(30 * time.Second)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()
	for {
		select {
		case msg, ok := <-c.send:
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			_ = c.conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (c *eventClient) readPump(onClose func()) {
	defer onClose()
	c.conn.SetReadLimit(1024)
	_ = c.conn.SetReadDeadline(time.Now().Add(60 * time.Second))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(60 * time.Second))
	})
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}
