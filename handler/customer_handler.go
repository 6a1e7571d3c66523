package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/keerthi6166/insurance-backend/apperr"
	customerpkg "github.com/keerthi6166/insurance-backend/customer"
	"github.com/keerthi6166/insurance-backend/dto"
)

// CustomerHandler bundles dependencies for customer-related HTTP handlers.
// Handlers pass results through unchanged and attach faults to the context
// for the error translator.
type CustomerHandler struct {
	service customerpkg.CustomerService
}

// NewCustomerHandler constructs a CustomerHandler.
func NewCustomerHandler(svc customerpkg.CustomerService) *CustomerHandler {
	return &CustomerHandler{service: svc}
}

func (h *CustomerHandler) GetAllCustomers() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		result, err := h.service.GetAllCustomers(ctx)
		if err != nil {
			c.Error(err)
			return
		}
		c.JSON(http.StatusOK, result)
	}
}

func (h *CustomerHandler) GetCustomerByEmail() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		result, err := h.service.GetCustomerByEmail(ctx, c.Param("email"))
		if err != nil {
			c.Error(err)
			return
		}
		c.JSON(http.StatusOK, result)
	}
}

func (h *CustomerHandler) AddNewCustomer() gin.HandlerFunc {
	return func(c *gin.Context) {
		var d dto.CustomerDto
		if err := c.ShouldBindJSON(&d); err != nil {
			c.Error(apperr.Validation("invalid request payload"))
			return
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		result, err := h.service.AddNewCustomer(ctx, &d)
		if err != nil {
			c.Error(err)
			return
		}
		c.JSON(http.StatusOK, result)
	}
}

func (h *CustomerHandler) UpdateCustomer() gin.HandlerFunc {
	return func(c *gin.Context) {
		var d dto.CustomerDto
		if err := c.ShouldBindJSON(&d); err != nil {
			c.Error(apperr.Validation("invalid request payload"))
			return
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		result, err := h.service.UpdateCustomer(ctx, &d)
		if err != nil {
			c.Error(err)
			return
		}
		c.JSON(http.StatusOK, result)
	}
}

func (h *CustomerHandler) DeleteCustomer() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		result, err := h.service.DeleteCustomer(ctx, c.Param("email"))
		if err != nil {
			c.Error(err)
			return
		}
		c.JSON(http.StatusOK, result)
	}
}
