package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/currency_converter/internal/apperrors"
	portssvc "github.com/SscSPs/currency_converter/internal/core/ports/services"
	"github.com/SscSPs/currency_converter/internal/dto"
	"github.com/SscSPs/currency_converter/internal/middleware"
	"github.com/gin-gonic/gin"
)

// InvalidInputBody is returned as plain text for any rejected conversion request.
const InvalidInputBody = "Invalid input parameters."

// currencyConverterHandler handles HTTP requests for currency conversion.
type currencyConverterHandler struct {
	converter portssvc.CurrencyConverterSvc
}

// newCurrencyConverterHandler creates a new currencyConverterHandler.
func newCurrencyConverterHandler(converter portssvc.CurrencyConverterSvc) *currencyConverterHandler {
	return &currencyConverterHandler{converter: converter}
}

// registerCurrencyConverterRoutes registers the conversion routes under rg.
func registerCurrencyConverterRoutes(rg *gin.RouterGroup, converter portssvc.CurrencyConverterSvc) {
	h := newCurrencyConverterHandler(converter)

	converterRoutes := rg.Group("/CurrencyConverter")
	{
		converterRoutes.GET("/convert", h.convertCurrency)
	}
}

// convertCurrency godoc
// @Summary Convert an amount between currencies
// @Description Converts amount from sourceCurrency to targetCurrency using the configured override or the rate file. Unknown pairs convert at a rate of 0.
// @Tags currency converter
// @Produce  json
// @Param   sourceCurrency query string true "Source currency code" example(USD)
// @Param   targetCurrency query string true "Target currency code" example(EUR)
// @Param   amount         query number true "Amount to convert, greater than zero" example(100)
// @Success 200 {object} dto.ConversionResponse
// @Failure 400 {string} string "Invalid input parameters."
// @Failure 500 {string} string "Internal Server Error"
// @Router /CurrencyConverter/convert [get]
func (h *currencyConverterHandler) convertCurrency(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var query dto.ConvertCurrencyQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		logger.Error(InvalidInputBody, slog.String("error", err.Error()))
		c.String(http.StatusBadRequest, InvalidInputBody)
		return
	}

	req, err := query.ToConversionRequest()
	if err != nil {
		logger.Error(InvalidInputBody, slog.String("error", err.Error()))
		c.String(http.StatusBadRequest, InvalidInputBody)
		return
	}

	conv, err := h.converter.Convert(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.String(http.StatusBadRequest, InvalidInputBody)
		} else {
			logger.Error("Error during currency conversion", slog.String("error", err.Error()))
			c.String(http.StatusInternalServerError, middleware.InternalServerErrorBody)
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToConversionResponse(conv))
}
