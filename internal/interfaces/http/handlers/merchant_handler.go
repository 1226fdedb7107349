package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"vendorhub.backend/internal/domain/entities"
	domainerrors "vendorhub.backend/internal/domain/errors"
	"vendorhub.backend/internal/domain/statemachine"
	"vendorhub.backend/internal/interfaces/http/middleware"
	"vendorhub.backend/internal/interfaces/http/response"
	"vendorhub.backend/internal/usecases"
)

// MerchantHandler handles merchant endpoints
type MerchantHandler struct {
	merchantUsecase   *usecases.MerchantUsecase
	checklistUsecase  *usecases.ChecklistUsecase
	transitionUsecase *usecases.TransitionUsecase
}

// NewMerchantHandler creates a new merchant handler
func NewMerchantHandler(
	merchantUsecase *usecases.MerchantUsecase,
	checklistUsecase *usecases.ChecklistUsecase,
	transitionUsecase *usecases.TransitionUsecase,
) *MerchantHandler {
	return &MerchantHandler{
		merchantUsecase:   merchantUsecase,
		checklistUsecase:  checklistUsecase,
		transitionUsecase: transitionUsecase,
	}
}

// Register handles merchant registration
// POST /api/v1/merchants
func (h *MerchantHandler) Register(c *gin.Context) {
	var input entities.MerchantRegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	merchant, err := h.merchantUsecase.Register(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, merchant)
}

// Get returns a merchant
// GET /api/v1/merchants/:id
func (h *MerchantHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	merchant, err := h.merchantUsecase.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, merchant)
}

// UpdateProfile applies partial onboarding profile updates
// PUT /api/v1/merchants/:id
func (h *MerchantHandler) UpdateProfile(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var input usecases.MerchantProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	merchant, err := h.merchantUsecase.UpdateProfile(c.Request.Context(), id, &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, merchant)
}

// GetChecklist returns the onboarding checklist
// GET /api/v1/merchants/:id/checklist
func (h *MerchantHandler) GetChecklist(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	checklist, err := h.checklistUsecase.Compute(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, checklist)
}

// Submit performs the checklist-gated submit-for-review transition
// POST /api/v1/merchants/:id/submit
func (h *MerchantHandler) Submit(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	merchant, err := h.merchantUsecase.SubmitForReview(c.Request.Context(), id, middleware.GetActorID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, merchant)
}

// TransitionRequest is the body of a status transition call
type TransitionRequest struct {
	Status string `json:"status" binding:"required"`
	Reason string `json:"reason,omitempty"`
}

// Transition applies an admin status transition
// POST /api/v1/merchants/:id/transition
func (h *MerchantHandler) Transition(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req TransitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.transitionUsecase.Apply(c.Request.Context(), statemachine.KindMerchant, id,
		req.Status, req.Reason, middleware.GetActorID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, result)
}

// AllowedTransitions lists the legal next statuses for the merchant
// GET /api/v1/merchants/:id/transitions
func (h *MerchantHandler) AllowedTransitions(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	allowed, err := h.merchantUsecase.AllowedTransitions(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"allowed": allowed})
}

// Timeline returns the merchant's status change history, oldest first
// GET /api/v1/merchants/:id/timeline
func (h *MerchantHandler) Timeline(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	page, limit := parsePagination(c)
	timeline, err := h.merchantUsecase.GetTimeline(c.Request.Context(), id, page, limit)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, timeline)
}

func parseIDParam(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid id"))
		return uuid.Nil, false
	}
	return id, true
}
