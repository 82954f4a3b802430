package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kletskov/flightbooking/internal/service/ticket"
)

type TicketHandler struct {
	service ticket.TicketUseCase
}

func NewTicketHandler(service ticket.TicketUseCase) *TicketHandler {
	return &TicketHandler{service: service}
}

func (h *TicketHandler) Register(router *gin.RouterGroup) {
	router.GET("/ticket/:pnr", h.get)
}

func (h *TicketHandler) get(c *gin.Context) {
	booking, err := h.service.GetTicketByPNR(c.Request.Context(), c.Param("pnr"))
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, booking)
}
