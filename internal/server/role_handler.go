package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

type roleHandler struct {
	batches BatchAPI
}

func newRoleHandler(batches BatchAPI) *roleHandler {
	return &roleHandler{batches: batches}
}

type roleRequest struct {
	Address string   `json:"address"`
	Role    string   `json:"role"`
	Roles   []string `json:"roles"`
}

// UserRoles godoc
// @Summary Contract roles held by an address
// @Tags Roles
// @Produce json
// @Param address path string true "Wallet address"
// @Success 200 {object} chain.Roles
// @Router /api/v1/roles/{address} [get]
func (h *roleHandler) UserRoles(c *gin.Context) {
	c.JSON(http.StatusOK, h.batches.UserRoles(c.Request.Context(), c.Param("address")))
}

// AdminInfo godoc
// @Summary Deployer and signer admin status
// @Tags Roles
// @Produce json
// @Success 200 {object} chain.AdminInfo
// @Router /api/v1/roles/admin [get]
func (h *roleHandler) AdminInfo(c *gin.Context) {
	c.JSON(http.StatusOK, h.batches.AdminInfo(c.Request.Context()))
}

// Grant grants one role, or several when "roles" is set. Partial failures of a
// multi-grant are reported per role with status 200.
// @Summary Grant one or more contract roles
// @Tags Roles
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body roleRequest true "Address with role or roles"
// @Success 200 {object} chain.TxReceipt "single role; a roles list answers with GrantRolesResponse"
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /api/v1/roles/grant [post]
func (h *roleHandler) Grant(c *gin.Context) {
	var req roleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeAPIError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if len(req.Roles) > 0 {
		results, err := h.batches.GrantRoles(c.Request.Context(), req.Address, req.Roles)
		if err != nil {
			writeChainError(c, err)
			return
		}
		c.JSON(http.StatusOK, GrantRolesResponse{Results: results})
		return
	}
	receipt, err := h.batches.GrantRole(c.Request.Context(), strings.TrimSpace(req.Role), req.Address)
	if err != nil {
		writeChainError(c, err)
		return
	}
	c.JSON(http.StatusOK, receipt)
}

// Revoke godoc
// @Summary Revoke a contract role
// @Tags Roles
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body roleRequest true "Address and role"
// @Success 200 {object} chain.TxReceipt
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /api/v1/roles/revoke [post]
func (h *roleHandler) Revoke(c *gin.Context) {
	var req roleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeAPIError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	receipt, err := h.batches.RevokeRole(c.Request.Context(), strings.TrimSpace(req.Role), req.Address)
	if err != nil {
		writeChainError(c, err)
		return
	}
	c.JSON(http.StatusOK, receipt)
}
