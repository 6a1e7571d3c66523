package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/keerthi6166/insurance-backend/apperr"
	"github.com/keerthi6166/insurance-backend/dto"
	policypkg "github.com/keerthi6166/insurance-backend/policy"
)

// PolicyHandler bundles dependencies for policy-related HTTP handlers.
type PolicyHandler struct {
	service policypkg.PolicyService
}

// NewPolicyHandler constructs a PolicyHandler.
func NewPolicyHandler(svc policypkg.PolicyService) *PolicyHandler {
	return &PolicyHandler{service: svc}
}

func (h *PolicyHandler) GetAllPolicies() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		result, err := h.service.GetAllPolicies(ctx)
		if err != nil {
			c.Error(err)
			return
		}
		c.JSON(http.StatusOK, result)
	}
}

func (h *PolicyHandler) GetPolicyByPolicyNumber() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		result, err := h.service.GetPolicyByPolicyNumber(ctx, c.Param("policyNumber"))
		if err != nil {
			c.Error(err)
			return
		}
		c.JSON(http.StatusOK, result)
	}
}

func (h *PolicyHandler) GetPoliciesByCustomerEmail() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		result, err := h.service.GetPoliciesByCustomerEmail(ctx, c.Param("email"))
		if err != nil {
			c.Error(err)
			return
		}
		c.JSON(http.StatusOK, result)
	}
}

func (h *PolicyHandler) AddNewPolicy() gin.HandlerFunc {
	return func(c *gin.Context) {
		var d dto.PolicyDto
		if err := c.ShouldBindJSON(&d); err != nil {
			c.Error(apperr.Validation("invalid request payload"))
			return
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		result, err := h.service.AddNewPolicy(ctx, &d)
		if err != nil {
			c.Error(err)
			return
		}
		c.JSON(http.StatusOK, result)
	}
}

func (h *PolicyHandler) UpdatePolicy() gin.HandlerFunc {
	return func(c *gin.Context) {
		var d dto.PolicyDto
		if err := c.ShouldBindJSON(&d); err != nil {
			c.Error(apperr.Validation("invalid request payload"))
			return
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		result, err := h.service.UpdatePolicy(ctx, &d)
		if err != nil {
			c.Error(err)
			return
		}
		c.JSON(http.StatusOK, result)
	}
}

func (h *PolicyHandler) DeletePolicy() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		result, err := h.service.DeletePolicy(ctx, c.Param("policyNumber"))
		if err != nil {
			c.Error(err)
			return
		}
		c.JSON(http.StatusOK, result)
	}
}
