package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"maogo-api/internal/models"
	"maogo-api/internal/service"

	"github.com/gin-gonic/gin"
)

// AddressHandler handles address registry requests
type AddressHandler struct {
	service RegistryService
}

// Service interface for dependency injection
type RegistryService interface {
	Insert(ctx context.Context, draft models.AddressDraft) (*models.Address, error)
	Update(ctx context.Context, code string, patch models.AddressPatch) (*models.Address, error)
	Get(ctx context.Context, code string) (*models.Address, error)
	Search(ctx context.Context, query string, limit int) ([]models.Address, error)
	ListSectors(ctx context.Context) ([]string, error)
}

// NewAddressHandler creates a new address handler
func NewAddressHandler(svc RegistryService) *AddressHandler {
	return &AddressHandler{service: svc}
}

// List handles GET /addresses requests
//
//	@Summary	List or search addresses
//	@Param		q		query	string	false	"substring matched against sector, street, reference and code"
//	@Param		limit	query	int		false	"maximum results"	default(500)
//	@Produce	json
//	@Success	200	{array}	models.Address
//	@Router		/addresses [get]
func (h *AddressHandler) List(c *gin.Context) {
	limit := 0
	if limitStr := c.Query("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit format"})
			return
		}
		limit = parsed
	}

	addresses, err := h.service.Search(c.Request.Context(), c.Query("q"), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, addresses)
}

// Get handles GET /addresses/{code} requests
//
//	@Summary	Fetch a single address by code
//	@Param		code	path	string	true	"address code"
//	@Produce	json
//	@Success	200	{object}	models.Address
//	@Failure	404	{object}	map[string]string
//	@Router		/addresses/{code} [get]
func (h *AddressHandler) Get(c *gin.Context) {
	addr, err := h.service.Get(c.Request.Context(), c.Param("code"))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "address not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, addr)
}

// ListSectors handles GET /sectors requests
//
//	@Summary	List distinct sectors
//	@Produce	json
//	@Success	200	{array}	models.Sector
//	@Router		/sectors [get]
func (h *AddressHandler) ListSectors(c *gin.Context) {
	names, err := h.service.ListSectors(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	sectors := make([]models.Sector, 0, len(names))
	for _, name := range names {
		sectors = append(sectors, models.Sector{Sector: name})
	}

	c.JSON(http.StatusOK, sectors)
}

// Insert handles POST /addresses/insert and POST /addresses/campo requests
//
//	@Summary	Register a new address
//	@Accept		json
//	@Param		address	body	models.AddressDraft	true	"address draft; code is generated when absent"
//	@Produce	json
//	@Success	200	{object}	models.Address
//	@Failure	400	{object}	map[string]string
//	@Router		/addresses/insert [post]
func (h *AddressHandler) Insert(c *gin.Context) {
	var draft models.AddressDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	addr, err := h.service.Insert(c.Request.Context(), draft)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrDuplicateCode):
			c.JSON(http.StatusBadRequest, gin.H{"error": "code already exists"})
		case errors.Is(err, service.ErrMissingSector),
			errors.Is(err, service.ErrInvalidCoordinates):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, addr)
}

// Update handles PUT /addresses/{code} requests
//
//	@Summary	Partially update an existing address
//	@Accept		json
//	@Param		code	path	string				true	"address code"
//	@Param		patch	body	models.AddressPatch	true	"fields to change; absent fields keep their value"
//	@Produce	json
//	@Success	200	{object}	models.Address
//	@Failure	400	{object}	map[string]string
//	@Failure	404	{object}	map[string]string
//	@Router		/addresses/{code} [put]
func (h *AddressHandler) Update(c *gin.Context) {
	var patch models.AddressPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	addr, err := h.service.Update(c.Request.Context(), c.Param("code"), patch)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "address not found"})
		case errors.Is(err, service.ErrNoFieldsToUpdate):
			c.JSON(http.StatusBadRequest, gin.H{"error": "no fields to update"})
		case errors.Is(err, service.ErrInvalidCoordinates):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, addr)
}
