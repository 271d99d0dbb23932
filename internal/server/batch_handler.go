package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Sauravgopinathek/Food-Supply-Chain/internal/auth"
	"github.com/Sauravgopinathek/Food-Supply-Chain/internal/feedback"
	"github.com/Sauravgopinathek/Food-Supply-Chain/internal/store"
)

type batchHandler struct {
	batches BatchAPI
	index   IndexAPI
	buyers  *feedback.Journal[feedback.BuyerEntry]
	chainID uint64
}

func newBatchHandler(batches BatchAPI, index IndexAPI, buyers *feedback.Journal[feedback.BuyerEntry], chainID uint64) *batchHandler {
	return &batchHandler{batches: batches, index: index, buyers: buyers, chainID: chainID}
}

type createBatchRequest struct {
	Name    string `json:"name"`
	Details string `json:"details"`
}

// List godoc
// @Summary List every batch recorded on-chain
// @Tags Batches
// @Produce json
// @Success 200 {object} BatchListResponse
// @Failure 502 {object} ErrorResponse
// @Router /api/v1/batches [get]
func (h *batchHandler) List(c *gin.Context) {
	records, err := h.batches.QueryBatches(c.Request.Context())
	if err != nil {
		writeChainError(c, err)
		return
	}
	c.JSON(http.StatusOK, BatchListResponse{Items: records})
}

// Detail godoc
// @Summary Batch details with its on-chain event history
// @Tags Batches
// @Produce json
// @Param id path string true "Batch id"
// @Success 200 {object} chain.BatchRecord
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /api/v1/batches/{id} [get]
func (h *batchHandler) Detail(c *gin.Context) {
	record, err := h.batches.GetBatchDetails(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeChainError(c, err)
		return
	}
	c.JSON(http.StatusOK, record)
}

// Create godoc
// @Summary Record a new batch
// @Tags Batches
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body createBatchRequest true "Batch name and details"
// @Success 201 {object} chain.CreateBatchResult
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /api/v1/batches [post]
func (h *batchHandler) Create(c *gin.Context) {
	var req createBatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeAPIError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	res, err := h.batches.CreateBatch(c.Request.Context(), strings.TrimSpace(req.Name), strings.TrimSpace(req.Details))
	if err != nil {
		writeChainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, res)
}

// Timeline godoc
// @Summary Indexed events of one batch, newest first
// @Tags Batches
// @Produce json
// @Param id path string true "Batch id"
// @Param limit query int false "Max events (default 100, max 500)"
// @Success 200 {object} TimelineResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /api/v1/batches/{id}/timeline [get]
func (h *batchHandler) Timeline(c *gin.Context) {
	if h.index == nil {
		writeAPIError(c, http.StatusServiceUnavailable, "indexer disabled")
		return
	}
	limit, ok := parseLimit(c)
	if !ok {
		return
	}
	events, err := h.index.BatchTimeline(c.Request.Context(), h.chainID, c.Param("id"), limit)
	if err != nil {
		writeAPIError(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, TimelineResponse{BatchID: c.Param("id"), Items: events})
}

// Indexed godoc
// @Summary Indexed batch overviews with contamination flags
// @Tags Batches
// @Produce json
// @Param limit query int false "Max batches (default 100, max 500)"
// @Success 200 {object} IndexedBatchesResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /api/v1/batches/indexed [get]
func (h *batchHandler) Indexed(c *gin.Context) {
	if h.index == nil {
		writeAPIError(c, http.StatusServiceUnavailable, "indexer disabled")
		return
	}
	limit, ok := parseLimit(c)
	if !ok {
		return
	}
	items, err := h.index.ListBatches(c.Request.Context(), h.chainID, limit)
	if err != nil {
		writeAPIError(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, IndexedBatchesResponse{Items: items})
}

type buyerRequest struct {
	Address string `json:"address"`
	Name    string `json:"name"`
	Note    string `json:"note"`
}

// ListBuyers godoc
// @Summary Buyer history of a batch, newest first
// @Tags Buyers
// @Produce json
// @Param id path string true "Batch id"
// @Success 200 {object} BuyerListResponse
// @Router /api/v1/batches/{id}/buyers [get]
func (h *batchHandler) ListBuyers(c *gin.Context) {
	c.JSON(http.StatusOK, BuyerListResponse{Items: h.buyers.List(c.Request.Context(), c.Param("id"))})
}

// AddBuyer records a purchase; the buyer defaults to the authenticated wallet.
// @Summary Record a buyer for a batch
// @Tags Buyers
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Batch id"
// @Param request body buyerRequest true "Buyer entry"
// @Success 201 {object} BuyerListResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /api/v1/batches/{id}/buyers [post]
func (h *batchHandler) AddBuyer(c *gin.Context) {
	var req buyerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeAPIError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if store.SanitizeAddress(c.Param("id")) == "" {
		writeAPIError(c, http.StatusBadRequest, "batch id required")
		return
	}
	addr := strings.TrimSpace(req.Address)
	if addr == "" {
		addr = auth.AddressFrom(c)
	}
	items := h.buyers.Add(c.Request.Context(), c.Param("id"), feedback.BuyerEntry{
		Address: addr,
		Name:    strings.TrimSpace(req.Name),
		Note:    strings.TrimSpace(req.Note),
	})
	c.JSON(http.StatusCreated, BuyerListResponse{Items: items})
}

// ClearBuyers godoc
// @Summary Clear the buyer history of a batch
// @Tags Buyers
// @Security BearerAuth
// @Param id path string true "Batch id"
// @Success 204
// @Failure 401 {object} ErrorResponse
// @Router /api/v1/batches/{id}/buyers [delete]
func (h *batchHandler) ClearBuyers(c *gin.Context) {
	h.buyers.Clear(c.Request.Context(), c.Param("id"))
	c.Status(http.StatusNoContent)
}
