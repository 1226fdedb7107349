package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"vendorhub.backend/internal/domain/entities"
	"vendorhub.backend/internal/domain/statemachine"
	"vendorhub.backend/internal/interfaces/http/middleware"
	"vendorhub.backend/internal/interfaces/http/response"
	"vendorhub.backend/internal/usecases"
	"vendorhub.backend/pkg/utils"
)

// BookingHandler handles booking endpoints
type BookingHandler struct {
	bookingUsecase    *usecases.BookingUsecase
	transitionUsecase *usecases.TransitionUsecase
}

// NewBookingHandler creates a new booking handler
func NewBookingHandler(
	bookingUsecase *usecases.BookingUsecase,
	transitionUsecase *usecases.TransitionUsecase,
) *BookingHandler {
	return &BookingHandler{
		bookingUsecase:    bookingUsecase,
		transitionUsecase: transitionUsecase,
	}
}

// Create places a booking
// POST /api/v1/bookings
func (h *BookingHandler) Create(c *gin.Context) {
	var input entities.BookingCreateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	booking, err := h.bookingUsecase.Create(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, booking)
}

// Get returns a booking
// GET /api/v1/bookings/:id
func (h *BookingHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	booking, err := h.bookingUsecase.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, booking)
}

// Transition applies a booking status transition
// POST /api/v1/bookings/:id/transition
func (h *BookingHandler) Transition(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req TransitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.transitionUsecase.Apply(c.Request.Context(), statemachine.KindBooking, id,
		req.Status, req.Reason, middleware.GetActorID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, result)
}

// ListByMerchant returns a merchant's bookings
// GET /api/v1/merchants/:id/bookings
func (h *BookingHandler) ListByMerchant(c *gin.Context) {
	merchantID, ok := parseIDParam(c)
	if !ok {
		return
	}

	page, limit := parsePagination(c)
	params := utils.GetPaginationParams(page, limit)
	bookings, total, err := h.bookingUsecase.ListByMerchant(c.Request.Context(), merchantID, params.Limit, params.CalculateOffset())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{
		"items": bookings,
		"meta":  utils.CalculateMeta(int64(total), params.Page, params.Limit),
	})
}

func parsePagination(c *gin.Context) (page, limit int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", "20"))
	return page, limit
}
