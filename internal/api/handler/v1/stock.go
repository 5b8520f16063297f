package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/google/uuid"

	"github.com/kylespence97/stock-api-back-end/internal/api/handler/v1/request"
	"github.com/kylespence97/stock-api-back-end/internal/api/handler/v1/response"
	"github.com/kylespence97/stock-api-back-end/internal/domain"
	"github.com/kylespence97/stock-api-back-end/internal/pkg/retry"
	"github.com/kylespence97/stock-api-back-end/internal/service"
)

type StockService interface {
	GetAllStock(ctx context.Context) ([]domain.Stock, error)
	GetStockByProductID(ctx context.Context, productID uuid.UUID) (domain.Stock, error)
	GetStockByStockLevel(ctx context.Context, stockLevel int) ([]domain.Stock, error)
	GetResellPrice(ctx context.Context, productID uuid.UUID) (domain.ResellPrice, error)
	GetResellHistory(ctx context.Context, productID uuid.UUID) ([]domain.ResellHistory, error)
	SetResellPrice(ctx context.Context, productID uuid.UUID, resellPrice float64) (domain.Stock, error)
	SetStockLevel(ctx context.Context, productID uuid.UUID, stockLevel int) (domain.Stock, error)
}

type StockHandler struct {
	svc   StockService
	retry retry.Policy
}

func NewStockHandler(svc StockService, policy retry.Policy) *StockHandler {
	return &StockHandler{
		svc:   svc,
		retry: policy,
	}
}

// HandleGetAllStock godoc
// @Summary      Get all stock
// @Description  Retrieves every stock record in storage order
// @Tags         stock
// @Produce      json
// @Success      200  {array}   domain.Stock
// @Failure      401  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /stock [get]
// @Security     BearerAuth
func (h *StockHandler) HandleGetAllStock(ctx *gin.Context) {
	stock, err := retry.Do(ctx.Request.Context(), h.retry, h.svc.GetAllStock)
	if err != nil {
		err = fmt.Errorf("HandleGetAllStock -> h.svc.GetAllStock -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(ctx, err))
		return
	}

	ctx.JSON(http.StatusOK, stock)
}

// HandleGetStockByProductID godoc
// @Summary      Get stock by product ID
// @Tags         stock
// @Produce      json
// @Param        productID  path      string  true  "Product ID"
// @Success      200  {object}  domain.Stock
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /stock/{productID} [get]
// @Security     BearerAuth
func (h *StockHandler) HandleGetStockByProductID(ctx *gin.Context) {
	productID, ok := parseProductID(ctx)
	if !ok {
		return
	}

	stock, err := retry.Do(ctx.Request.Context(), h.retry, func(c context.Context) (domain.Stock, error) {
		return h.svc.GetStockByProductID(c, productID)
	})
	if err != nil {
		if errors.Is(err, service.ErrStockNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("stock", "productID", productID))
			return
		}

		err = fmt.Errorf("HandleGetStockByProductID -> h.svc.GetStockByProductID -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(ctx, err))
		return
	}

	ctx.JSON(http.StatusOK, stock)
}

// HandleGetStockByStockLevel godoc
// @Summary      Get stock at or below a stock level
// @Tags         stock
// @Produce      json
// @Param        stockLevel  path      int  true  "Maximum stock level"
// @Success      200  {array}   domain.Stock
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /stock/level/{stockLevel} [get]
// @Security     BearerAuth
func (h *StockHandler) HandleGetStockByStockLevel(ctx *gin.Context) {
	stockLevel, err := strconv.Atoi(ctx.Param("stockLevel"))
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid stock level: %w", err)))
		return
	}

	if err = validation.Validate(stockLevel, validation.Min(0)); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("stock level %w", err)))
		return
	}

	stock, err := retry.Do(ctx.Request.Context(), h.retry, func(c context.Context) ([]domain.Stock, error) {
		return h.svc.GetStockByStockLevel(c, stockLevel)
	})
	if err != nil {
		err = fmt.Errorf("HandleGetStockByStockLevel -> h.svc.GetStockByStockLevel -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(ctx, err))
		return
	}

	ctx.JSON(http.StatusOK, stock)
}

// HandleGetResellPrice godoc
// @Summary      Get the resell price of a product
// @Tags         stock
// @Produce      json
// @Param        productID  path      string  true  "Product ID"
// @Success      200  {object}  domain.ResellPrice
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /stock/{productID}/resell-price [get]
// @Security     BearerAuth
func (h *StockHandler) HandleGetResellPrice(ctx *gin.Context) {
	productID, ok := parseProductID(ctx)
	if !ok {
		return
	}

	price, err := retry.Do(ctx.Request.Context(), h.retry, func(c context.Context) (domain.ResellPrice, error) {
		return h.svc.GetResellPrice(c, productID)
	})
	if err != nil {
		if errors.Is(err, service.ErrStockNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("stock", "productID", productID))
			return
		}

		err = fmt.Errorf("HandleGetResellPrice -> h.svc.GetResellPrice -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(ctx, err))
		return
	}

	ctx.JSON(http.StatusOK, price)
}

// HandleGetResellHistory godoc
// @Summary      Get the resell-price history of a product
// @Description  History rows are append-only and returned oldest first
// @Tags         stock
// @Produce      json
// @Param        productID  path      string  true  "Product ID"
// @Success      200  {array}   domain.ResellHistory
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /stock/{productID}/resell-history [get]
// @Security     BearerAuth
func (h *StockHandler) HandleGetResellHistory(ctx *gin.Context) {
	productID, ok := parseProductID(ctx)
	if !ok {
		return
	}

	history, err := retry.Do(ctx.Request.Context(), h.retry, func(c context.Context) ([]domain.ResellHistory, error) {
		return h.svc.GetResellHistory(c, productID)
	})
	if err != nil {
		err = fmt.Errorf("HandleGetResellHistory -> h.svc.GetResellHistory -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(ctx, err))
		return
	}

	ctx.JSON(http.StatusOK, history)
}

// HandleSetResellPrice godoc
// @Summary      Set the resell price of a product
// @Description  Updates the current price and appends a resell-history entry atomically
// @Tags         stock
// @Accept       json
// @Produce      json
// @Param        productID  path      string                          true  "Product ID"
// @Param        input      body      request.SetResellPriceRequest   true  "New resell price"
// @Success      200  {object}  domain.Stock
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /stock/{productID}/resell-price [put]
// @Security     BearerAuth
func (h *StockHandler) HandleSetResellPrice(ctx *gin.Context) {
	productID, ok := parseProductID(ctx)
	if !ok {
		return
	}

	var input request.SetResellPriceRequest
	if err := ctx.ShouldBindJSON(&input); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := input.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	stock, err := retry.Do(ctx.Request.Context(), h.retry, func(c context.Context) (domain.Stock, error) {
		return h.svc.SetResellPrice(c, productID, *input.ResellPrice)
	})
	if err != nil {
		if errors.Is(err, service.ErrStockNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("stock", "productID", productID))
			return
		}

		err = fmt.Errorf("HandleSetResellPrice -> h.svc.SetResellPrice -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(ctx, err))
		return
	}

	ctx.JSON(http.StatusOK, stock)
}

// HandleSetStockLevel godoc
// @Summary      Set the stock level of a product
// @Description  Stock-level changes are not historized
// @Tags         stock
// @Accept       json
// @Produce      json
// @Param        productID  path      string                         true  "Product ID"
// @Param        input      body      request.SetStockLevelRequest   true  "New stock level"
// @Success      200  {object}  domain.Stock
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /stock/{productID}/stock-level [put]
// @Security     BearerAuth
func (h *StockHandler) HandleSetStockLevel(ctx *gin.Context) {
	productID, ok := parseProductID(ctx)
	if !ok {
		return
	}

	var input request.SetStockLevelRequest
	if err := ctx.ShouldBindJSON(&input); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := input.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	stock, err := retry.Do(ctx.Request.Context(), h.retry, func(c context.Context) (domain.Stock, error) {
		return h.svc.SetStockLevel(c, productID, *input.StockLevel)
	})
	if err != nil {
		if errors.Is(err, service.ErrStockNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("stock", "productID", productID))
			return
		}

		err = fmt.Errorf("HandleSetStockLevel -> h.svc.SetStockLevel -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(ctx, err))
		return
	}

	ctx.JSON(http.StatusOK, stock)
}

func parseProductID(ctx *gin.Context) (uuid.UUID, bool) {
	productID, err := uuid.Parse(ctx.Param("productID"))
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid product ID: %w", err)))
		return uuid.Nil, false
	}

	return productID, true
}
