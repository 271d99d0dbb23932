package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Sauravgopinathek/Food-Supply-Chain/internal/auth"
)

type authHandler struct {
	svc *auth.Service
}

func newAuthHandler(svc *auth.Service) *authHandler {
	return &authHandler{svc: svc}
}

type loginRequest struct {
	Message   string `json:"message" binding:"required"`
	Signature string `json:"signature" binding:"required"`
}

type loginResponse struct {
	Token     string `json:"token"`
	Address   string `json:"address"`
	ExpiresAt int64  `json:"expiresAt"`
}

// Nonce godoc
// @Summary Issue a single-use SIWE nonce
// @Tags Auth
// @Produce json
// @Success 200 {object} NonceResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/nonce [get]
func (h *authHandler) Nonce(c *gin.Context) {
	nonce, err := h.svc.IssueNonce()
	if err != nil {
		writeAPIError(c, http.StatusInternalServerError, "failed to issue nonce")
		return
	}
	c.JSON(http.StatusOK, NonceResponse{Nonce: nonce})
}

// Login godoc
// @Summary Exchange a signed SIWE message for a JWT
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body loginRequest true "SIWE message and signature"
// @Success 200 {object} loginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/login [post]
func (h *authHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeAPIError(c, http.StatusBadRequest, "message and signature are required")
		return
	}
	token, claims, err := h.svc.LoginWithSIWE(c.Request.Context(), req.Message, req.Signature)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			writeAPIError(c, http.StatusUnauthorized, err.Error())
			return
		}
		writeAPIError(c, http.StatusInternalServerError, err.Error())
		return
	}
	resp := loginResponse{Token: token, Address: claims.Address}
	if claims.ExpiresAt != nil {
		resp.ExpiresAt = claims.ExpiresAt.Unix()
	}
	c.JSON(http.StatusOK, resp)
}
