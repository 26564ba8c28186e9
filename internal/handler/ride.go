package handler

import (
	"context"
	"errors"
	"net/http"

	"maogo-api/internal/models"
	"maogo-api/internal/service"

	"github.com/gin-gonic/gin"
)

// RideEstimateRequest names the pickup and dropoff endpoints by address code.
type RideEstimateRequest struct {
	PickupCodigo  string `json:"pickup_codigo" binding:"required"`
	DropoffCodigo string `json:"dropoff_codigo" binding:"required"`
}

// RideHandler handles trip estimate requests
type RideHandler struct {
	service FareService
}

// Service interface for dependency injection
type FareService interface {
	EstimateRide(ctx context.Context, pickupCode, dropoffCode string) (*models.FareEstimate, error)
}

// NewRideHandler creates a new ride handler
func NewRideHandler(svc FareService) *RideHandler {
	return &RideHandler{service: svc}
}

// Estimate handles POST /ride/estimate requests
//
//	@Summary	Estimate distance, duration and fare between two addresses
//	@Accept		json
//	@Param		request	body	RideEstimateRequest	true	"pickup and dropoff codes"
//	@Produce	json
//	@Success	200	{object}	models.FareEstimate
//	@Failure	404	{object}	map[string]string
//	@Router		/ride/estimate [post]
func (h *RideHandler) Estimate(c *gin.Context) {
	var req RideEstimateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing required fields 'pickup_codigo' and 'dropoff_codigo'"})
		return
	}

	estimate, err := h.service.EstimateRide(c.Request.Context(), req.PickupCodigo, req.DropoffCodigo)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "address not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, estimate)
}
