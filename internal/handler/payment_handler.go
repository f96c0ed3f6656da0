package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sumaiya48/summer-camp-server/internal/model"
	"github.com/sumaiya48/summer-camp-server/internal/response"
	"github.com/sumaiya48/summer-camp-server/internal/service"
)

// PaymentHandler handles payment-intent creation and payment records.
type PaymentHandler struct {
	paymentService *service.PaymentService
}

// NewPaymentHandler creates a new PaymentHandler.
func NewPaymentHandler(paymentService *service.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService}
}

// CreateIntentRequest carries the major-unit total. The amount is not
// validated here; the processor decides what it accepts.
type CreateIntentRequest struct {
	TotalPrice float64 `json:"totalPrice"`
}

// CreateIntent godoc
// POST /create-payment-intent
// Stages a card payment and returns the client secret.
func (h *PaymentHandler) CreateIntent(c *gin.Context) {
	var req CreateIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrValidation)
		return
	}

	secret, err := h.paymentService.CreateIntent(c.Request.Context(), req.TotalPrice)
	if err != nil {
		response.Fail(c, http.StatusBadGateway, response.ErrPaymentProvider)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"clientSecret": secret})
}

// Record godoc
// POST /payments
// Appends the payment record and removes the referenced selection.
func (h *PaymentHandler) Record(c *gin.Context) {
	var payment model.Payment
	if err := c.ShouldBindJSON(&payment); err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrValidation)
		return
	}
	if payment.Date.IsZero() {
		payment.Date = time.Now().UTC()
	}

	ack, err := h.paymentService.Record(c.Request.Context(), &payment)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusOK, ack)
}
