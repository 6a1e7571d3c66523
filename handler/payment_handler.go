package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/keerthi6166/insurance-backend/apperr"
	"github.com/keerthi6166/insurance-backend/dto"
	paymentpkg "github.com/keerthi6166/insurance-backend/payment"
)

// PaymentHandler bundles dependencies for payment-related HTTP handlers.
type PaymentHandler struct {
	service paymentpkg.PaymentService
}

// NewPaymentHandler constructs a PaymentHandler.
func NewPaymentHandler(svc paymentpkg.PaymentService) *PaymentHandler {
	return &PaymentHandler{service: svc}
}

func (h *PaymentHandler) GetAllPayments() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		result, err := h.service.GetAllPayments(ctx)
		if err != nil {
			c.Error(err)
			return
		}
		c.JSON(http.StatusOK, result)
	}
}

func (h *PaymentHandler) GetPaymentByTransactionID() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		result, err := h.service.GetPaymentByTransactionID(ctx, c.Param("transactionId"))
		if err != nil {
			c.Error(err)
			return
		}
		c.JSON(http.StatusOK, result)
	}
}

func (h *PaymentHandler) GetPaymentsByPolicyNumber() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		result, err := h.service.GetPaymentsByPolicyNumber(ctx, c.Param("policyNumber"))
		if err != nil {
			c.Error(err)
			return
		}
		c.JSON(http.StatusOK, result)
	}
}

func (h *PaymentHandler) AddNewPayment() gin.HandlerFunc {
	return func(c *gin.Context) {
		var d dto.PaymentDto
		if err := c.ShouldBindJSON(&d); err != nil {
			c.Error(apperr.Validation("invalid request payload"))
			return
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		result, err := h.service.AddNewPayment(ctx, &d)
		if err != nil {
			c.Error(err)
			return
		}
		c.JSON(http.StatusOK, result)
	}
}

func (h *PaymentHandler) UpdatePayment() gin.HandlerFunc {
	return func(c *gin.Context) {
		var d dto.PaymentDto
		if err := c.ShouldBindJSON(&d); err != nil {
			c.Error(apperr.Validation("invalid request payload"))
			return
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		result, err := h.service.UpdatePayment(ctx, &d)
		if err != nil {
			c.Error(err)
			return
		}
		c.JSON(http.StatusOK, result)
	}
}

func (h *PaymentHandler) DeletePayment() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		result, err := h.service.DeletePayment(ctx, c.Param("transactionId"))
		if err != nil {
			c.Error(err)
			return
		}
		c.JSON(http.StatusOK, result)
	}
}
