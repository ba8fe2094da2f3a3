package handler

import (
	appdiscovery "github.com/Unconfirmed2/nearbuy-sub000/internal/application/discovery"
	"github.com/Unconfirmed2/nearbuy-sub000/internal/domain/discovery"
	"github.com/Unconfirmed2/nearbuy-sub000/internal/infrastructure/logger"
	"github.com/Unconfirmed2/nearbuy-sub000/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// DiscoveryHandler serves search, location, and basket endpoints
type DiscoveryHandler struct {
	BaseHandler
	service *appdiscovery.SearchService
}

// NewDiscoveryHandler creates a new DiscoveryHandler
func NewDiscoveryHandler(service *appdiscovery.SearchService) *DiscoveryHandler {
	return &DiscoveryHandler{service: service}
}

// RegisterRoutes registers discovery routes on the API group
func (h *DiscoveryHandler) RegisterRoutes(rg *gin.RouterGroup) {
	group := rg.Group("/discovery")
	{
		group.GET("/search", h.Search)
		group.PUT("/location", h.SetLocation)
		group.GET("/basket", h.Basket)
		group.POST("/basket/items", h.AddBasketItem)
	}
}

// Search runs one ranked page of product or store discovery
func (h *DiscoveryHandler) Search(c *gin.Context) {
	var query dto.SearchQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		h.Error(c, 400, dto.ErrCodeValidation, err.Error())
		return
	}

	travel := discovery.DefaultTravelFilter()
	if query.TravelMode != "" {
		travel.Mode = discovery.TravelMode(query.TravelMode)
	}
	if query.TravelMetric != "" {
		travel.Metric = discovery.TravelMetric(query.TravelMetric)
	}
	if query.Threshold > 0 {
		travel.Threshold = query.Threshold
	}

	result, err := h.service.Search(c.Request.Context(), appdiscovery.SearchRequest{
		Mode:       appdiscovery.SearchMode(query.Mode),
		Query:      query.Q,
		SessionKey: getSessionKey(c),
		Location:   query.Location,
		Travel:     travel,
		Page:       query.Page,
		PageSize:   query.PageSize,
	})
	if err != nil {
		logger.GetGinLogger(c).Warn("search failed", zap.Error(err))
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, result, result.Total, result.Page, result.PageSize)
}

// SetLocation persists the session's origin location
func (h *DiscoveryHandler) SetLocation(c *gin.Context) {
	sessionKey := getSessionKey(c)
	if sessionKey == "" {
		h.BadRequest(c, "X-Session-Key header is required")
		return
	}

	var req dto.SetLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Error(c, 400, dto.ErrCodeValidation, err.Error())
		return
	}

	if err := h.service.SetLocation(c.Request.Context(), sessionKey, discovery.Location(req.Location)); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// Basket returns the session basket
func (h *DiscoveryHandler) Basket(c *gin.Context) {
	sessionKey := getSessionKey(c)
	if sessionKey == "" {
		h.BadRequest(c, "X-Session-Key header is required")
		return
	}

	items, err := h.service.Basket(c.Request.Context(), sessionKey)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, items)
}

// AddBasketItem appends a picked offer to the session basket
func (h *DiscoveryHandler) AddBasketItem(c *gin.Context) {
	sessionKey := getSessionKey(c)
	if sessionKey == "" {
		h.BadRequest(c, "X-Session-Key header is required")
		return
	}

	var req dto.AddBasketItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Error(c, 400, dto.ErrCodeValidation, err.Error())
		return
	}

	err := h.service.AddToBasket(c.Request.Context(), sessionKey, appdiscovery.AddBasketRequest{
		CandidateKey: req.CandidateKey,
		SellerKey:    req.SellerKey,
		DisplayName:  req.DisplayName,
		SellerName:   req.SellerName,
		UnitPrice:    req.UnitPrice,
		Quantity:     req.Quantity,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, gin.H{"added": true})
}
