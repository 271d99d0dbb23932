package server

import (
	"context"
	"encoding/json"
	"math/big"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/core/types"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/Sauravgopinathek/Food-Supply-Chain/internal/store"
)

func TestEventHubBroadcasts(t *testing.T) {
	gin.SetMode(gin.TestMode)
	hub := NewEventHub(nil)
	r := gin.New()
	r.GET("/events", hub.ServeWS)
	srv := httptest.NewServer(r)
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/events"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	deadline := time.Now().Add(time.Second)
	for hub.ClientCount() == 0 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	if hub.ClientCount() != 1 {
		t.Fatalf("clients = %d, want 1", hub.ClientCount())
	}

	_ = hub.PublishBlock(context.Background(), &types.Header{Number: big.NewInt(12), Time: 1_700_000_000})
	hub.PublishBatchEvent(&store.BatchEvent{BatchID: "4", EventType: "Delivered", BlockNumber: 12})

	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var block struct {
		Type string       `json:"type"`
		Data BlockMessage `json:"data"`
	}
	_, raw, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("read block: %v", err)
	}
	if err := json.Unmarshal(raw, &block); err != nil {
		t.Fatalf("decode block: %v", err)
	}
	if block.Type != "block" || block.Data.Number != 12 {
		t.Fatalf("unexpected block message %s", raw)
	}

	var ev struct {
		Type string            `json:"type"`
		Data BatchEventMessage `json:"data"`
	}
	_, raw, err = conn.ReadMessage()
	if err != nil {
		t.Fatalf("read batch event: %v", err)
	}
	if err := json.Unmarshal(raw, &ev); err != nil {
		t.Fatalf("decode batch event: %v", err)
	}
	if ev.Type != "batchEvent" || ev.Data.BatchID != "4" || ev.Data.EventType != "Delivered" {
		t.Fatalf("unexpected batch message %s", raw)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	hub.Run(ctx)
	if hub.ClientCount() != 0 {
		t.Fatalf("clients after shutdown = %d", hub.ClientCount())
	}
}

func TestEventHubIgnoresNil(t *testing.T) {
	var hub *EventHub
	hub.PublishBatchEvent(&store.BatchEvent{})
	if err := hub.PublishBlock(context.Background(), nil); err != nil {
		t.Fatalf("nil hub publish: %v", err)
	}
	NewEventHub(nil).PublishBatchEvent(nil)
}
