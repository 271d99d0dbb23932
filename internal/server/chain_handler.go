package server

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	indexersvc "github.com/Sauravgopinathek/Food-Supply-Chain/internal/indexer/service"
)

type chainHandler struct {
	heads   HeadSource
	index   IndexAPI
	chainID uint64
}

func newChainHandler(heads HeadSource, index IndexAPI, chainID uint64) *chainHandler {
	return &chainHandler{heads: heads, index: index, chainID: chainID}
}

type ChainStatusResponse struct {
	ChainID     uint64             `json:"chainId"`
	LatestBlock *uint64            `json:"latestBlock"`
	Indexer     *indexersvc.Status `json:"indexer,omitempty"`
	Error       string             `json:"error,omitempty"`
}

// Status reports the node head and indexer progress. An unreachable node is
// reported in the body, not as a failed request.
// @Summary Node head and indexer progress
// @Tags Chain
// @Produce json
// @Success 200 {object} ChainStatusResponse
// @Router /api/v1/chain/status [get]
func (h *chainHandler) Status(c *gin.Context) {
	resp := ChainStatusResponse{ChainID: h.chainID}
	if h.heads != nil {
		if n, err := h.heads.BlockNumber(c.Request.Context()); err == nil {
			resp.LatestBlock = &n
		} else {
			resp.Error = err.Error()
		}
	}
	if h.index != nil {
		if st, err := h.index.Status(c.Request.Context(), h.chainID); err == nil {
			resp.Indexer = st
		}
	}
	c.JSON(http.StatusOK, resp)
}

// parseLimit reads ?limit=; it writes the 400 itself and reports false on bad input.
func parseLimit(c *gin.Context) (int, bool) {
	raw := strings.TrimSpace(c.Query("limit"))
	if raw == "" {
		return 0, true
	}
	val, err := strconv.Atoi(raw)
	if err != nil || val < 0 {
		writeAPIError(c, http.StatusBadRequest, "invalid limit")
		return 0, false
	}
	return val, true
}
