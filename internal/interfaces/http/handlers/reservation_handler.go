package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"vendorhub.backend/internal/domain/entities"
	"vendorhub.backend/internal/domain/statemachine"
	"vendorhub.backend/internal/interfaces/http/middleware"
	"vendorhub.backend/internal/interfaces/http/response"
	"vendorhub.backend/internal/usecases"
	"vendorhub.backend/pkg/utils"
)

// ReservationHandler handles reservation endpoints
type ReservationHandler struct {
	reservationUsecase *usecases.ReservationUsecase
	transitionUsecase  *usecases.TransitionUsecase
}

// NewReservationHandler creates a new reservation handler
func NewReservationHandler(
	reservationUsecase *usecases.ReservationUsecase,
	transitionUsecase *usecases.TransitionUsecase,
) *ReservationHandler {
	return &ReservationHandler{
		reservationUsecase: reservationUsecase,
		transitionUsecase:  transitionUsecase,
	}
}

// Create places a reservation
// POST /api/v1/reservations
func (h *ReservationHandler) Create(c *gin.Context) {
	var input entities.ReservationCreateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	reservation, err := h.reservationUsecase.Create(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, reservation)
}

// Get returns a reservation
// GET /api/v1/reservations/:id
func (h *ReservationHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	reservation, err := h.reservationUsecase.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, reservation)
}

// Transition applies a reservation status transition
// POST /api/v1/reservations/:id/transition
func (h *ReservationHandler) Transition(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req TransitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.transitionUsecase.Apply(c.Request.Context(), statemachine.KindReservation, id,
		req.Status, req.Reason, middleware.GetActorID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, result)
}

// ListByMerchant returns a merchant's reservations
// GET /api/v1/merchants/:id/reservations
func (h *ReservationHandler) ListByMerchant(c *gin.Context) {
	merchantID, ok := parseIDParam(c)
	if !ok {
		return
	}

	page, limit := parsePagination(c)
	params := utils.GetPaginationParams(page, limit)
	reservations, total, err := h.reservationUsecase.ListByMerchant(c.Request.Context(), merchantID, params.Limit, params.CalculateOffset())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{
		"items": reservations,
		"meta":  utils.CalculateMeta(int64(total), params.Page, params.Limit),
	})
}
