package server

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Sauravgopinathek/Food-Supply-Chain/internal/auth"
	"github.com/Sauravgopinathek/Food-Supply-Chain/internal/feedback"
	"github.com/Sauravgopinathek/Food-Supply-Chain/internal/score"
	"github.com/Sauravgopinathek/Food-Supply-Chain/internal/store"
)

type reputationHandler struct {
	scores  ScoreAPI
	sellers *feedback.Journal[feedback.Review]
	dealers *feedback.Journal[feedback.Review]
}

func newReputationHandler(scores ScoreAPI, sellers, dealers *feedback.Journal[feedback.Review]) *reputationHandler {
	return &reputationHandler{scores: scores, sellers: sellers, dealers: dealers}
}

type reviewRequest struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

// SellerScore godoc
// @Summary Composite seller score from reputation and feedback
// @Tags Reputation
// @Produce json
// @Param address path string true "Seller address"
// @Success 200 {object} score.Summary
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/sellers/{address}/score [get]
func (h *reputationHandler) SellerScore(c *gin.Context) {
	h.writeSummary(c, h.scores.Seller)
}

// DealerScore godoc
// @Summary Composite dealer score from reputation and reviews
// @Tags Reputation
// @Produce json
// @Param address path string true "Dealer address"
// @Success 200 {object} score.Summary
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/dealers/{address}/score [get]
func (h *reputationHandler) DealerScore(c *gin.Context) {
	h.writeSummary(c, h.scores.Dealer)
}

func (h *reputationHandler) writeSummary(c *gin.Context, summarize func(context.Context, string) score.Summary) {
	addr := store.SanitizeAddress(c.Param("address"))
	if addr == "" {
		writeAPIError(c, http.StatusBadRequest, "address required")
		return
	}
	c.JSON(http.StatusOK, summarize(c.Request.Context(), addr))
}

// ListSellerFeedback godoc
// @Summary Seller feedback, newest first
// @Tags Reputation
// @Produce json
// @Param address path string true "Seller address"
// @Success 200 {object} ReviewListResponse
// @Router /api/v1/sellers/{address}/feedback [get]
func (h *reputationHandler) ListSellerFeedback(c *gin.Context) {
	listReviews(c, h.sellers)
}

// AddSellerFeedback godoc
// @Summary Leave 1-5 star feedback for a seller
// @Tags Reputation
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param address path string true "Seller address"
// @Param request body reviewRequest true "Rating and comment"
// @Success 201 {object} ReviewListResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /api/v1/sellers/{address}/feedback [post]
func (h *reputationHandler) AddSellerFeedback(c *gin.Context) {
	addReview(c, h.sellers)
}

// ClearSellerFeedback godoc
// @Summary Clear all feedback for a seller
// @Tags Reputation
// @Security BearerAuth
// @Param address path string true "Seller address"
// @Success 204
// @Failure 401 {object} ErrorResponse
// @Router /api/v1/sellers/{address}/feedback [delete]
func (h *reputationHandler) ClearSellerFeedback(c *gin.Context) {
	h.sellers.Clear(c.Request.Context(), c.Param("address"))
	c.Status(http.StatusNoContent)
}

// ListDealerReviews godoc
// @Summary Dealer reviews, newest first
// @Tags Reputation
// @Produce json
// @Param address path string true "Dealer address"
// @Success 200 {object} ReviewListResponse
// @Router /api/v1/dealers/{address}/reviews [get]
func (h *reputationHandler) ListDealerReviews(c *gin.Context) {
	listReviews(c, h.dealers)
}

// AddDealerReview godoc
// @Summary Leave a 1-5 star review for a dealer
// @Tags Reputation
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param address path string true "Dealer address"
// @Param request body reviewRequest true "Rating and comment"
// @Success 201 {object} ReviewListResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /api/v1/dealers/{address}/reviews [post]
func (h *reputationHandler) AddDealerReview(c *gin.Context) {
	addReview(c, h.dealers)
}

// ClearDealerReviews godoc
// @Summary Clear all reviews for a dealer
// @Tags Reputation
// @Security BearerAuth
// @Param address path string true "Dealer address"
// @Success 204
// @Failure 401 {object} ErrorResponse
// @Router /api/v1/dealers/{address}/reviews [delete]
func (h *reputationHandler) ClearDealerReviews(c *gin.Context) {
	h.dealers.Clear(c.Request.Context(), c.Param("address"))
	c.Status(http.StatusNoContent)
}

func listReviews(c *gin.Context, j *feedback.Journal[feedback.Review]) {
	reviews := j.List(c.Request.Context(), c.Param("address"))
	c.JSON(http.StatusOK, ReviewListResponse{Items: reviews, Average: feedback.AverageRating(reviews)})
}

// addReview stores a 1-5 star review authored by the caller, or anonymous.
func addReview(c *gin.Context, j *feedback.Journal[feedback.Review]) {
	var req reviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeAPIError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Rating < 1 || req.Rating > 5 {
		writeAPIError(c, http.StatusBadRequest, "rating must be between 1 and 5")
		return
	}
	subject := store.SanitizeAddress(c.Param("address"))
	if subject == "" {
		writeAPIError(c, http.StatusBadRequest, "address required")
		return
	}
	reviews := j.Add(c.Request.Context(), subject, feedback.Review{
		From:    auth.AddressFrom(c),
		Rating:  req.Rating,
		Comment: strings.TrimSpace(req.Comment),
	})
	c.JSON(http.StatusCreated, ReviewListResponse{Items: reviews, Average: feedback.AverageRating(reviews)})
}
