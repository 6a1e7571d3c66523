package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/keerthi6166/insurance-backend/apperr"
	claimpkg "github.com/keerthi6166/insurance-backend/claim"
	"github.com/keerthi6166/insurance-backend/dto"
)

// ClaimHandler bundles dependencies for claim-related HTTP handlers.
type ClaimHandler struct {
	service claimpkg.ClaimService
}

// NewClaimHandler constructs a ClaimHandler.
func NewClaimHandler(svc claimpkg.ClaimService) *ClaimHandler {
	return &ClaimHandler{service: svc}
}

func (h *ClaimHandler) GetAllClaims() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		result, err := h.service.GetAllClaims(ctx)
		if err != nil {
			c.Error(err)
			return
		}
		c.JSON(http.StatusOK, result)
	}
}

func (h *ClaimHandler) GetClaimByClaimNumber() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		result, err := h.service.GetClaimByClaimNumber(ctx, c.Param("claimNumber"))
		if err != nil {
			c.Error(err)
			return
		}
		c.JSON(http.StatusOK, result)
	}
}

func (h *ClaimHandler) GetClaimsByPolicyNumber() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		result, err := h.service.GetClaimsByPolicyNumber(ctx, c.Param("policyNumber"))
		if err != nil {
			c.Error(err)
			return
		}
		c.JSON(http.StatusOK, result)
	}
}

func (h *ClaimHandler) AddNewClaim() gin.HandlerFunc {
	return func(c *gin.Context) {
		var d dto.ClaimDto
		if err := c.ShouldBindJSON(&d); err != nil {
			c.Error(apperr.Validation("invalid request payload"))
			return
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		result, err := h.service.AddNewClaim(ctx, &d)
		if err != nil {
			c.Error(err)
			return
		}
		c.JSON(http.StatusOK, result)
	}
}

// UpdateClaim takes the claim number from the route, separate from the body,
// so the body may carry a renamed claim number.
func (h *ClaimHandler) UpdateClaim() gin.HandlerFunc {
	return func(c *gin.Context) {
		var d dto.ClaimDto
		if err := c.ShouldBindJSON(&d); err != nil {
			c.Error(apperr.Validation("invalid request payload"))
			return
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		result, err := h.service.UpdateClaim(ctx, c.Param("claimNumber"), &d)
		if err != nil {
			c.Error(err)
			return
		}
		c.JSON(http.StatusOK, result)
	}
}

func (h *ClaimHandler) DeleteClaim() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		result, err := h.service.DeleteClaim(ctx, c.Param("claimNumber"))
		if err != nil {
			c.Error(err)
			return
		}
		c.JSON(http.StatusOK, result)
	}
}
