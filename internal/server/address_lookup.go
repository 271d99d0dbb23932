package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

type addressHandler struct {
	contract string
}

type AddressLookupResponse struct {
	Address string `json:"address"`
}

func newAddressHandler(contract string) *addressHandler {
	return &addressHandler{contract: contract}
}

// LookupAddress returns the configured supply-chain contract address.
// @Summary Configured contract address
// @Tags Addresses
// @Produce json
// @Param contract query string false "foodtrace, supply_chain or supplychain"
// @Success 200 {object} AddressLookupResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/addresses [get]
func (h *addressHandler) LookupAddress(c *gin.Context) {
	switch strings.ToLower(strings.TrimSpace(c.Query("contract"))) {
	case "foodtrace", "supply_chain", "supplychain", "":
		if h.contract == "" {
			writeAPIError(c, http.StatusNotFound, "contract address not configured")
			return
		}
		c.JSON(http.StatusOK, AddressLookupResponse{Address: h.contract})
	default:
		writeAPIError(c, http.StatusBadRequest, "unsupported contract query")
	}
}
