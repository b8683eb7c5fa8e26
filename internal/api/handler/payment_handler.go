package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Thasmi-03/FitFlow-Api/internal/core/domain"
	"github.com/Thasmi-03/FitFlow-Api/internal/core/ports"
)

// PaymentHandler handles HTTP requests for payment records.
type PaymentHandler struct {
	service ports.PaymentService
}

func NewPaymentHandler(service ports.PaymentService) *PaymentHandler {
	return &PaymentHandler{service: service}
}

type createPaymentRequest struct {
	Amount      float64 `json:"amount"      validate:"required,gt=0"`
	Currency    string  `json:"currency"    validate:"omitempty,len=3"`
	Method      string  `json:"method"      validate:"required,oneof=card paypal stripe bank_transfer inapp"`
	Description string  `json:"description"`
}

type updatePaymentRequest struct {
	Status      *string `json:"status" validate:"omitempty,oneof=pending completed failed refunded"`
	Description *string `json:"description"`
}

type listPaymentsResponse struct {
	Data []*domain.Payment `json:"data"`
	Meta ports.PageMeta    `json:"meta"`
}

func paymentFilter(c echo.Context) ports.PaymentFilter {
	return ports.PaymentFilter{
		Status: domain.PaymentStatus(c.QueryParam("status")),
		Method: domain.PaymentMethod(c.QueryParam("method")),
	}
}

// Create records a charge initiated with the external processor.
//
// @Summary      Record a payment
// @Tags         payments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createPaymentRequest  true  "Payment details"
// @Success      201   {object}  domain.Payment
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /api/payments [post]
func (h *PaymentHandler) Create(c echo.Context) error {
	var req createPaymentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	payment, err := h.service.Create(c.Request().Context(), caller(c), ports.CreatePaymentInput{
		Amount:      req.Amount,
		Currency:    req.Currency,
		Method:      domain.PaymentMethod(req.Method),
		Description: req.Description,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, payment)
}

// Get returns one payment; only the owner or an admin may see it.
//
// @Summary      Get a payment
// @Tags         payments
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Payment id"
// @Success      200  {object}  domain.Payment
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/payments/{id} [get]
func (h *PaymentHandler) Get(c echo.Context) error {
	payment, err := h.service.Get(c.Request().Context(), caller(c), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, payment)
}

// Update reconciles a payment's status or description.
//
// @Summary      Update a payment
// @Tags         payments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                true  "Payment id"
// @Param        body  body      updatePaymentRequest  true  "Fields to change"
// @Success      200   {object}  domain.Payment
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/payments/{id} [put]
func (h *PaymentHandler) Update(c echo.Context) error {
	var req updatePaymentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	input := ports.UpdatePaymentInput{Description: req.Description}
	if req.Status != nil {
		s := domain.PaymentStatus(*req.Status)
		input.Status = &s
	}

	payment, err := h.service.Update(c.Request().Context(), caller(c), c.Param("id"), input)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, payment)
}

// Delete removes an owned payment record.
//
// @Summary      Delete a payment
// @Tags         payments
// @Security     BearerAuth
// @Param        id  path  string  true  "Payment id"
// @Success      204
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/payments/{id} [delete]
func (h *PaymentHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), caller(c), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// List returns the caller's payments, or everything for admins.
//
// @Summary      List payments
// @Tags         payments
// @Produce      json
// @Security     BearerAuth
// @Param        page   query     int     false  "Page number"
// @Param        limit  query     int     false  "Page size"
// @Success      200    {object}  listPaymentsResponse
// @Failure      401    {object}  errorResponse
// @Router       /api/payments [get]
func (h *PaymentHandler) List(c echo.Context) error {
	page, err := h.service.List(c.Request().Context(), caller(c), paymentFilter(c), pageRequest(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, listPaymentsResponse{Data: page.Items, Meta: page.Meta})
}
