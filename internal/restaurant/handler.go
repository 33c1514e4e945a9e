package restaurant

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

type ownerPayload struct {
	Name  string `json:"name" binding:"required"`
	Phone string `json:"phone" binding:"required"`
	Email string `json:"email" binding:"required"`
}

// --------------------------------------------------
// POST /restaurants
// --------------------------------------------------
func (h *Handler) Create(c *gin.Context) {
	var req struct {
		Name           string       `json:"name" binding:"required"`
		Address        string       `json:"address" binding:"required"`
		Coordinates    [2]float64   `json:"coordinates" binding:"required"`
		HasMenu        bool         `json:"hasMenu"`
		RegistrationID string       `json:"registrationId" binding:"required"`
		CustomName     string       `json:"customName"`
		Owner          ownerPayload `json:"owner" binding:"required"`
		MapID          string       `json:"mapId"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	restaurant, err := h.service.Create(c.Request.Context(), CreateParams{
		Name:           req.Name,
		Address:        req.Address,
		Coordinates:    req.Coordinates,
		HasMenu:        req.HasMenu,
		RegistrationID: req.RegistrationID,
		CustomName:     req.CustomName,
		Owner:          Owner(req.Owner),
		MapID:          req.MapID,
	})
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, restaurant)
}

// --------------------------------------------------
// GET /restaurants and GET /restaurants/search
// --------------------------------------------------
func (h *Handler) Search(c *gin.Context) {
	params := SearchParams{
		Name:           c.Query("name"),
		Address:        c.Query("address"),
		Status:         Status(c.Query("status")),
		RegistrationID: c.Query("registrationId"),
		Search:         c.Query("search"),
		SortOrder:      c.Query("sortOrder"),
	}
	if raw := c.Query("hasMenu"); raw != "" {
		hasMenu := raw == "true"
		params.HasMenu = &hasMenu
	}
	if page, err := strconv.Atoi(c.Query("page")); err == nil {
		params.Page = page
	}
	if limit, err := strconv.Atoi(c.Query("limit")); err == nil {
		params.Limit = limit
	}
	params.Normalize()

	items, total, err := h.service.Search(c.Request.Context(), params)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch restaurants"})
		return
	}

	totalPages := total / params.Limit
	if total%params.Limit != 0 {
		totalPages++
	}

	c.JSON(http.StatusOK, gin.H{
		"data":       items,
		"total":      total,
		"page":       params.Page,
		"limit":      params.Limit,
		"totalPages": totalPages,
	})
}

// --------------------------------------------------
// GET /restaurants/current (resolved from session)
// --------------------------------------------------
func (h *Handler) Current(c *gin.Context) {
	restaurantID := c.GetString("restaurantID")
	if restaurantID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	restaurant, err := h.service.Get(c.Request.Context(), restaurantID)
	if errors.Is(err, ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "restaurant not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch restaurant"})
		return
	}

	c.JSON(http.StatusOK, restaurant)
}

// --------------------------------------------------
// GET /restaurants/:id
// --------------------------------------------------
func (h *Handler) Get(c *gin.Context) {
	restaurant, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if errors.Is(err, ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "restaurant not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch restaurant"})
		return
	}

	c.JSON(http.StatusOK, restaurant)
}

// --------------------------------------------------
// PUT /restaurants/:id
// --------------------------------------------------
func (h *Handler) Update(c *gin.Context) {
	var req struct {
		Name        *string       `json:"name"`
		Address     *string       `json:"address"`
		Coordinates *[2]float64   `json:"coordinates"`
		HasMenu     *bool         `json:"hasMenu"`
		CustomName  *string       `json:"customName"`
		Owner       *ownerPayload `json:"owner"`
		MapID       *string       `json:"mapId"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	params := UpdateParams{
		Name:        req.Name,
		Address:     req.Address,
		Coordinates: req.Coordinates,
		HasMenu:     req.HasMenu,
		CustomName:  req.CustomName,
		MapID:       req.MapID,
	}
	if req.Owner != nil {
		owner := Owner(*req.Owner)
		params.Owner = &owner
	}

	restaurant, err := h.service.Update(c.Request.Context(), c.Param("id"), params)
	if errors.Is(err, ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "restaurant not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, restaurant)
}

// --------------------------------------------------
// PATCH /restaurants/:id/status
// --------------------------------------------------
func (h *Handler) UpdateStatus(c *gin.Context) {
	var req struct {
		Status Status `json:"status" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	restaurant, err := h.service.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status)
	if errors.Is(err, ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "restaurant not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, restaurant)
}

// --------------------------------------------------
// DELETE /restaurants/:id
// --------------------------------------------------
func (h *Handler) Delete(c *gin.Context) {
	err := h.service.Delete(c.Request.Context(), c.Param("id"))
	if errors.Is(err, ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "restaurant not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete restaurant"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "restaurant deleted"})
}
