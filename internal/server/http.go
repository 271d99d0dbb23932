package server

import (
	"context"
	"errors"
	"net/http"
	"time"
)

type HTTP struct {
	addr   string
	engine http.Handler
	srv    *http.Server
}

func NewHTTP(addr string, h http.Handler) *HTTP {
	return &HTTP{addr: addr, engine: h}
}

// Start blocks until the server stops. A graceful Stop is not an error.
func (h *HTTP) Start() error {
	h.srv = &http.Server{
		Addr:              h.addr,
		Handler:           h.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}
	if err := h.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (h *HTTP) Stop(ctx context.Context) error {
	if h.srv == nil {
		return nil
	}
	return h.srv.Shutdown(ctx)
}
