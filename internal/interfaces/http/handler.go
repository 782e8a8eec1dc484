// @title           Ninja API Forge - Injective Spot APIs
// @version         1.0
// @description     Normalized Injective spot market listings and orderbook snapshots.

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @BasePath  /

package http

import (
	"errors"
	"fmt"
	"net/http"

	appmarketdata "ninja-api-forge/internal/application/service/marketdata"
	domainmarketdata "ninja-api-forge/internal/domain/entity/marketdata"
	"ninja-api-forge/internal/logger"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Options toggles the optional parts of the router.
type Options struct {
	AllowedOrigins []string
	DocsEnabled    bool
}

type Handler struct {
	router     *gin.Engine
	marketdata *appmarketdata.Service
	log        *logger.Log
}

var _ http.Handler = (*Handler)(nil)

func NewHandler(md *appmarketdata.Service, opts Options, log *logger.Log) *Handler {
	router := gin.New()
	router.ContextWithFallback = true
	router.HandleMethodNotAllowed = true
	router.Use(
		requestID(),
		accessLog(log),
		gin.Recovery(),
		corsMiddleware(opts.AllowedOrigins),
	)

	h := &Handler{
		router:     router,
		marketdata: md,
		log:        log,
	}
	h.registerRoutes(opts.DocsEnabled)
	return h
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.router.ServeHTTP(w, r)
}

func (h *Handler) registerRoutes(docs bool) {
	if docs {
		h.router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	h.router.GET("/health", h.health)
	h.router.GET("/upstream/health", h.upstreamHealth)
	h.router.GET("/spot/markets", h.spotMarkets)
	h.router.GET("/orderbook", h.orderBook)

	h.router.NoRoute(func(c *gin.Context) {
		writeError(c, http.StatusNotFound, errors.New(http.StatusText(http.StatusNotFound)))
	})
	h.router.NoMethod(func(c *gin.Context) {
		writeError(c, http.StatusMethodNotAllowed, errors.New(http.StatusText(http.StatusMethodNotAllowed)))
	})
}

// health reports liveness of the gateway itself
// @Summary      Health
// @Description  Liveness probe, never calls an upstream
// @Tags         health
// @Produce      json
// @Success      200  {object}  healthResponse
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, healthResponse{OK: true})
}

// upstreamHealth reports the latest block height seen by the LCD
// @Summary      Upstream health
// @Description  Fetch the latest block from the Injective LCD
// @Tags         health
// @Produce      json
// @Success      200  {object}  domainmarketdata.UpstreamStatus
// @Failure      502  {object}  errorResponse
// @Router       /upstream/health [get]
func (h *Handler) upstreamHealth(c *gin.Context) {
	status, err := h.marketdata.UpstreamStatus(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, status)
}

// spotMarkets lists spot markets
// @Summary      Spot markets
// @Description  Spot market list from the Injective indexer, trimmed to a stable schema
// @Tags         spot
// @Produce      json
// @Param        limit  query     int  false  "Number of markets to return"  minimum(1)  maximum(200)  default(20)
// @Success      200    {object}  domainmarketdata.MarketList
// @Failure      422    {object}  errorResponse
// @Failure      502    {object}  errorResponse
// @Router       /spot/markets [get]
func (h *Handler) spotMarkets(c *gin.Context) {
	if err := rejectEmptyInts(c, "limit"); err != nil {
		writeError(c, http.StatusUnprocessableEntity, err)
		return
	}
	var query spotMarketsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		writeError(c, http.StatusUnprocessableEntity, bindingError(err))
		return
	}
	list, err := h.marketdata.ListSpotMarkets(c.Request.Context(), query.Limit)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// orderBook returns a depth-limited orderbook snapshot
// @Summary      Orderbook snapshot
// @Description  Spot orderbook from the Injective indexer, normalized into bids and asks
// @Tags         spot
// @Produce      json
// @Param        market_id  query     string  true   "Spot marketId (e.g. from /spot/markets)"
// @Param        depth      query     int     false  "Levels to return per side"  minimum(1)  maximum(200)  default(20)
// @Success      200        {object}  domainmarketdata.OrderBookSnapshot
// @Failure      422        {object}  errorResponse
// @Failure      502        {object}  errorResponse
// @Router       /orderbook [get]
func (h *Handler) orderBook(c *gin.Context) {
	// market_id is free-form: only an absent parameter is rejected, blank values go upstream.
	if _, ok := c.GetQuery("market_id"); !ok {
		writeError(c, http.StatusUnprocessableEntity, errMissingQuery("market_id"))
		return
	}
	if err := rejectEmptyInts(c, "depth"); err != nil {
		writeError(c, http.StatusUnprocessableEntity, err)
		return
	}
	var query orderBookQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		writeError(c, http.StatusUnprocessableEntity, bindingError(err))
		return
	}
	snapshot, err := h.marketdata.GetOrderBook(c.Request.Context(), query.MarketID, query.Depth)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, snapshot)
}

// Helpers

// Range tags mirror appmarketdata.MinCount and appmarketdata.MaxCount.
type spotMarketsQuery struct {
	Limit int `form:"limit,default=20" binding:"min=1,max=200"`
}

type orderBookQuery struct {
	MarketID string `form:"market_id"`
	Depth    int    `form:"depth,default=20" binding:"min=1,max=200"`
}

type healthResponse struct {
	OK bool `json:"ok"`
}

type errorResponse struct {
	Detail string `json:"detail"`
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	var upstreamErr *domainmarketdata.UpstreamError
	switch {
	case errors.As(err, &upstreamErr):
		h.log.WithComponent("http").WithFields(logger.Fields{
			"upstream":   upstreamErr.Upstream,
			"url":        upstreamErr.URL,
			"request_id": c.GetString(requestIDKey),
		}).WithError(err).Warn("upstream request failed")
		writeError(c, http.StatusBadGateway, fmt.Errorf("upstream error: %w", err))
	case appmarketdata.IsValidationError(err):
		writeError(c, http.StatusUnprocessableEntity, err)
	default:
		h.log.WithComponent("http").WithError(err).Error("request failed")
		writeError(c, http.StatusInternalServerError, err)
	}
}

func writeError(c *gin.Context, status int, err error) {
	if err == nil {
		status = http.StatusInternalServerError
		err = errors.New("unknown error")
	}
	c.AbortWithStatusJSON(status, errorResponse{Detail: err.Error()})
}
