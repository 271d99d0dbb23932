package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Sauravgopinathek/Food-Supply-Chain/internal/chain"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

func writeAPIError(c *gin.Context, status int, msg string) {
	c.JSON(status, ErrorResponse{Error: msg})
}

// chainErrorStatus maps contract errors onto HTTP statuses.
func chainErrorStatus(err error) int {
	switch {
	case errors.Is(err, chain.ErrMissingArgument),
		errors.Is(err, chain.ErrInvalidAddress),
		errors.Is(err, chain.ErrInvalidRole),
		errors.Is(err, chain.ErrRoleAlreadyGranted),
		errors.Is(err, chain.ErrRoleNotGranted):
		return http.StatusBadRequest
	case errors.Is(err, chain.ErrNotAdmin):
		return http.StatusForbidden
	case errors.Is(err, chain.ErrBatchNotFound):
		return http.StatusNotFound
	case errors.Is(err, chain.ErrNoSigner):
		return http.StatusServiceUnavailable
	default:
		return http.StatusBadGateway
	}
}

func writeChainError(c *gin.Context, err error) {
	writeAPIError(c, chainErrorStatus(err), err.Error())
}
