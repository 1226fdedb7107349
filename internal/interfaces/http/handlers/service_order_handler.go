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

// ServiceOrderHandler handles service order endpoints
type ServiceOrderHandler struct {
	serviceOrderUsecase *usecases.ServiceOrderUsecase
	transitionUsecase   *usecases.TransitionUsecase
}

// NewServiceOrderHandler creates a new service order handler
func NewServiceOrderHandler(
	serviceOrderUsecase *usecases.ServiceOrderUsecase,
	transitionUsecase *usecases.TransitionUsecase,
) *ServiceOrderHandler {
	return &ServiceOrderHandler{
		serviceOrderUsecase: serviceOrderUsecase,
		transitionUsecase:   transitionUsecase,
	}
}

// Create places a service order
// POST /api/v1/service-orders
func (h *ServiceOrderHandler) Create(c *gin.Context) {
	var input entities.ServiceOrderCreateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order, err := h.serviceOrderUsecase.Create(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, order)
}

// Get returns a service order
// GET /api/v1/service-orders/:id
func (h *ServiceOrderHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	order, err := h.serviceOrderUsecase.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, order)
}

// Transition applies a service order status transition
// POST /api/v1/service-orders/:id/transition
func (h *ServiceOrderHandler) Transition(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req TransitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.transitionUsecase.Apply(c.Request.Context(), statemachine.KindServiceOrder, id,
		req.Status, req.Reason, middleware.GetActorID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, result)
}

// ListByMerchant returns a merchant's service orders
// GET /api/v1/merchants/:id/service-orders
func (h *ServiceOrderHandler) ListByMerchant(c *gin.Context) {
	merchantID, ok := parseIDParam(c)
	if !ok {
		return
	}

	page, limit := parsePagination(c)
	params := utils.GetPaginationParams(page, limit)
	orders, total, err := h.serviceOrderUsecase.ListByMerchant(c.Request.Context(), merchantID, params.Limit, params.CalculateOffset())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{
		"items": orders,
		"meta":  utils.CalculateMeta(int64(total), params.Page, params.Limit),
	})
}
