package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/stockpulse/internal/domain/apperr"
	"github.com/guttosm/stockpulse/internal/domain/dto"
	"github.com/guttosm/stockpulse/internal/service"
)

// Handler provides HTTP handlers for the company, market, historical and
// analysis endpoints.
//
// Responsibilities:
//   - Decode incoming query parameters and JSON bodies
//   - Delegate to the service layer
//   - Translate service results and errors into response DTOs with the
//     appropriate HTTP status codes
type Handler struct {
	svc service.MarketService
}

// NewHandler constructs a new Handler instance.
//
// Parameters:
//   - svc (service.MarketService): Business-logic dependency.
//
// Returns:
//   - *Handler: A handler ready to be registered with the router.
func NewHandler(svc service.MarketService) *Handler {
	return &Handler{svc: svc}
}

// respondError maps a service error to its HTTP status and the standard
// error body. Unclassified errors surface as 500.
func respondError(c *gin.Context, err error) {
	var ae *apperr.Error
	if errors.As(err, &ae) {
		c.JSON(ae.Status(), dto.NewErrorResponse(ae.Message, ae.Err))
		return
	}
	c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("internal server error", err))
}

// GetCompanyInfo handles GET /api/company-info requests.
//
// GetCompanyInfo godoc
// @Summary      Get company profile
// @Description  Returns the company profile (name, sector, officers, ...) for a ticker symbol
// @Tags         company
// @Produce      json
// @Param        symbol  query     string  true  "Ticker symbol" example(AAPL)
// @Success      200     {object}  dto.CompanyInfoResponse  "Success"
// @Failure      400     {object}  dto.ErrorResponse        "Invalid symbol"
// @Failure      404     {object}  dto.ErrorResponse        "Symbol could not be resolved"
// @Failure      502     {object}  dto.ErrorResponse        "Provider unreachable"
// @Router       /api/company-info [get]
func (h *Handler) GetCompanyInfo(c *gin.Context) {
	symbol, info, err := h.svc.CompanyInfo(c.Request.Context(), c.Query("symbol"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewCompanyInfoResponse(symbol, info))
}

// GetMarketData handles GET /api/market-data requests.
//
// GetMarketData godoc
// @Summary      Get market snapshot
// @Description  Returns the current market snapshot (price, change, day range, volume) for a ticker symbol
// @Tags         market
// @Produce      json
// @Param        symbol  query     string  true  "Ticker symbol" example(AAPL)
// @Success      200     {object}  dto.MarketDataResponse  "Success"
// @Failure      400     {object}  dto.ErrorResponse       "Invalid symbol"
// @Failure      502     {object}  dto.ErrorResponse       "Provider unreachable"
// @Router       /api/market-data [get]
func (h *Handler) GetMarketData(c *gin.Context) {
	symbol, info, err := h.svc.MarketSnapshot(c.Request.Context(), c.Query("symbol"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewMarketDataResponse(symbol, info))
}

// PostHistoricalData handles POST /api/historical-data requests.
//
// PostHistoricalData godoc
// @Summary      Fetch historical OHLCV data
// @Description  Downloads the price history for a symbol over an optional date range
// @Tags         historical
// @Accept       json
// @Produce      json
// @Param        request  body      dto.HistoricalDataRequest  true  "Fetch parameters"
// @Success      200      {object}  dto.HistoricalDataResponse  "Success"
// @Failure      400      {object}  dto.ErrorResponse           "Invalid input or no data found"
// @Failure      502      {object}  dto.ErrorResponse           "Provider unreachable"
// @Router       /api/historical-data [post]
func (h *Handler) PostHistoricalData(c *gin.Context) {
	var req dto.HistoricalDataRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("payload is required", err))
		return
	}

	symbol, interval, series, err := h.svc.HistoricalData(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	records := dto.NewPriceRecords(series)
	c.JSON(http.StatusOK, dto.HistoricalDataResponse{
		Symbol:   symbol,
		Interval: interval,
		Count:    len(records),
		Data:     records,
	})
}

// PostAnalysis handles POST /api/analysis requests.
//
// PostAnalysis godoc
// @Summary      Generate price insights
// @Description  Computes trend, volatility, moving average and a momentum recommendation from a historical series, either supplied inline or fetched from the provider
// @Tags         analysis
// @Accept       json
// @Produce      json
// @Param        request  body      dto.AnalysisRequest  true  "Analysis parameters"
// @Success      200      {object}  dto.AnalysisResponse  "Success"
// @Failure      400      {object}  dto.ErrorResponse     "Invalid input or no data found"
// @Failure      502      {object}  dto.ErrorResponse     "Provider unreachable"
// @Router       /api/analysis [post]
func (h *Handler) PostAnalysis(c *gin.Context) {
	var req dto.AnalysisRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("payload is required for analysis", err))
		return
	}

	symbol, report, source, err := h.svc.Insights(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.AnalysisResponse{
		Symbol: symbol,
		Insights: dto.AnalysisInsights{
			InsightReport: *report,
			DataSource:    source,
		},
	})
}
