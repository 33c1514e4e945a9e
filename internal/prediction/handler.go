package prediction

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/EraEKV/restometrics/internal/restaurant"
)

// RestaurantGetter is the slice of the restaurant service needed to
// resolve a session-bound prediction request.
type RestaurantGetter interface {
	Get(ctx context.Context, id string) (*restaurant.Restaurant, error)
}

type Handler struct {
	service     *Service
	demo        *DemoGenerator
	restaurants RestaurantGetter
}

func NewHandler(service *Service, demo *DemoGenerator, restaurants RestaurantGetter) *Handler {
	return &Handler{
		service:     service,
		demo:        demo,
		restaurants: restaurants,
	}
}

// --------------------------------------------------
// POST /predictions/generate
// --------------------------------------------------
func (h *Handler) Generate(c *gin.Context) {
	var req GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, Failure("invalid request body"))
		return
	}

	result, err := h.service.Generate(c.Request.Context(), req)
	if err != nil {
		h.writeGenerateError(c, err)
		return
	}

	c.JSON(http.StatusCreated, Success(result, "prediction generated"))
}

// --------------------------------------------------
// POST /predictions (restaurant resolved from session)
// --------------------------------------------------
func (h *Handler) GenerateForCurrent(c *gin.Context) {
	restaurantID := c.GetString("restaurantID")
	if restaurantID == "" {
		c.JSON(http.StatusUnauthorized, Failure("unauthorized"))
		return
	}

	var req struct {
		DateTime       string `json:"dateTime" binding:"required"`
		PredictionType Type   `json:"predictionType"`
		Period         Period `json:"period"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, Failure("invalid request body"))
		return
	}

	current, err := h.restaurants.Get(c.Request.Context(), restaurantID)
	if errors.Is(err, restaurant.ErrNotFound) {
		c.JSON(http.StatusNotFound, Failure("restaurant not found"))
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, Failure("failed to generate prediction"))
		return
	}

	result, err := h.service.Generate(c.Request.Context(), GenerateRequest{
		Name:    current.Name,
		Address: current.Address,
		Coordinates: Coordinates{
			Lat: current.Lat(),
			Lng: current.Lng(),
		},
		DateTime:       req.DateTime,
		PredictionType: req.PredictionType,
		Period:         req.Period,
	})
	if err != nil {
		h.writeGenerateError(c, err)
		return
	}

	c.JSON(http.StatusCreated, Success(result, "prediction generated"))
}

// --------------------------------------------------
// POST /predictions/demo
// --------------------------------------------------
func (h *Handler) GenerateDemo(c *gin.Context) {
	var req GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, Failure("invalid request body"))
		return
	}

	result, err := h.demo.Generate(req)
	if err != nil {
		h.writeGenerateError(c, err)
		return
	}

	c.JSON(http.StatusCreated, Success(result, "demo prediction generated"))
}

func (h *Handler) writeGenerateError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrInvalidDateTime),
		errors.Is(err, ErrInvalidType),
		errors.Is(err, ErrInvalidPeriod):
		c.JSON(http.StatusBadRequest, Failure(err.Error()))
	default:
		log.Printf("❌ prediction failed: %v", err)
		c.JSON(http.StatusInternalServerError, Failure("failed to generate prediction"))
	}
}
