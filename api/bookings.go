package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kletskov/flightbooking/internal/service/booking"
)

type BookingHandler struct {
	service booking.BookingUseCase
}

func NewBookingHandler(service booking.BookingUseCase) *BookingHandler {
	return &BookingHandler{service: service}
}

func (h *BookingHandler) Register(router *gin.RouterGroup) {
	router.POST("/:flightId", h.book)
	router.GET("/history/:email", h.history)
	router.DELETE("/cancel/:pnr", h.cancel)
}

func (h *BookingHandler) book(c *gin.Context) {
	var req booking.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		renderBindError(c, err)
		return
	}

	result, err := h.service.Book(c.Request.Context(), c.Param("flightId"), &req)
	if err != nil {
		renderError(c, err)
		return
	}

	c.JSON(http.StatusCreated, result)
}

func (h *BookingHandler) history(c *gin.Context) {
	bookings, err := h.service.History(c.Request.Context(), c.Param("email"))
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

func (h *BookingHandler) cancel(c *gin.Context) {
	message, err := h.service.Cancel(c.Request.Context(), c.Param("pnr"))
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": message})
}
