package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kylespence97/stock-api-back-end/internal/api/handler/v1/request"
	"github.com/kylespence97/stock-api-back-end/internal/api/handler/v1/response"
	"github.com/kylespence97/stock-api-back-end/internal/domain"
	"github.com/kylespence97/stock-api-back-end/internal/pkg/retry"
	"github.com/kylespence97/stock-api-back-end/internal/service"
)

type CustomerService interface {
	GetAllCustomers(ctx context.Context) ([]domain.Customer, error)
	GetCustomerByID(ctx context.Context, id string) (domain.Customer, error)
	SetPurchaseAbility(ctx context.Context, id string, canPurchase bool) (domain.Customer, error)
}

type CustomerHandler struct {
	svc   CustomerService
	retry retry.Policy
}

func NewCustomerHandler(svc CustomerService, policy retry.Policy) *CustomerHandler {
	return &CustomerHandler{
		svc:   svc,
		retry: policy,
	}
}

// HandleGetAllCustomers godoc
// @Summary      Get all customers
// @Tags         customers
// @Produce      json
// @Success      200  {array}   domain.Customer
// @Failure      401  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /customers [get]
// @Security     BearerAuth
func (h *CustomerHandler) HandleGetAllCustomers(ctx *gin.Context) {
	customers, err := retry.Do(ctx.Request.Context(), h.retry, h.svc.GetAllCustomers)
	if err != nil {
		err = fmt.Errorf("HandleGetAllCustomers -> h.svc.GetAllCustomers -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(ctx, err))
		return
	}

	ctx.JSON(http.StatusOK, customers)
}

// HandleGetCustomerByID godoc
// @Summary      Get a customer by ID
// @Tags         customers
// @Produce      json
// @Param        customerID  path      string  true  "Customer ID"
// @Success      200  {object}  domain.Customer
// @Failure      401  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /customers/{customerID} [get]
// @Security     BearerAuth
func (h *CustomerHandler) HandleGetCustomerByID(ctx *gin.Context) {
	customerID := ctx.Param("customerID")

	customer, err := retry.Do(ctx.Request.Context(), h.retry, func(c context.Context) (domain.Customer, error) {
		return h.svc.GetCustomerByID(c, customerID)
	})
	if err != nil {
		if errors.Is(err, service.ErrCustomerNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("customer", "customerID", customerID))
			return
		}

		err = fmt.Errorf("HandleGetCustomerByID -> h.svc.GetCustomerByID -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(ctx, err))
		return
	}

	ctx.JSON(http.StatusOK, customer)
}

// HandleSetPurchaseAbility godoc
// @Summary      Set a customer's purchase ability
// @Tags         customers
// @Accept       json
// @Produce      json
// @Param        customerID  path      string                              true  "Customer ID"
// @Param        input       body      request.SetPurchaseAbilityRequest   true  "New purchase ability"
// @Success      200  {object}  domain.Customer
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /customers/{customerID}/purchase-ability [put]
// @Security     BearerAuth
func (h *CustomerHandler) HandleSetPurchaseAbility(ctx *gin.Context) {
	customerID := ctx.Param("customerID")

	var input request.SetPurchaseAbilityRequest
	if err := ctx.ShouldBindJSON(&input); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := input.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	customer, err := retry.Do(ctx.Request.Context(), h.retry, func(c context.Context) (domain.Customer, error) {
		return h.svc.SetPurchaseAbility(c, customerID, *input.CanPurchase)
	})
	if err != nil {
		if errors.Is(err, service.ErrCustomerNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("customer", "customerID", customerID))
			return
		}

		err = fmt.Errorf("HandleSetPurchaseAbility -> h.svc.SetPurchaseAbility -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(ctx, err))
		return
	}

	ctx.JSON(http.StatusOK, customer)
}
