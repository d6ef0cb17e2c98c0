package v1handler

import (
	"net/http"
	"studiohub/internal/tenancy"
	"studiohub/pkg/domain"

	"github.com/gin-gonic/gin"
)

type ChangePlanRequest struct {
	Tier   *string `json:"tier"`
	Status *string `json:"status"`
}

type FeatureOverrideRequest struct {
	Enabled *bool `binding:"required" json:"enabled"`
}

// ChangePlan applies a billing event to a studio.
func (h Handler) ChangePlan(c *gin.Context) {
	tenantID, err := pathID[domain.TenantID](c, "id", "tenant id")
	if err != nil {
		h.abort(c, err)

		return
	}

	var req ChangePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.abort(c, badRequest(err))

		return
	}

	tenant, err := h.deps.Tenancy.ChangePlan(c.Request.Context(), tenantID, tenancy.PlanChange{
		Tier:   req.Tier,
		Status: req.Status,
	})
	if err != nil {
		h.abort(c, err)

		return
	}

	c.JSON(http.StatusOK, tenant)
}

func (h Handler) TenantFeatures(c *gin.Context) {
	tenantID, err := pathID[domain.TenantID](c, "id", "tenant id")
	if err != nil {
		h.abort(c, err)

		return
	}

	h.features(c, tenantID)
}

func (h Handler) SetFeatureOverride(c *gin.Context) {
	tenantID, err := pathID[domain.TenantID](c, "id", "tenant id")
	if err != nil {
		h.abort(c, err)

		return
	}

	var req FeatureOverrideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.abort(c, badRequest(err))

		return
	}

	err = h.deps.Tenancy.SetFeatureOverride(c.Request.Context(), tenantID, domain.Feature(c.Param("feature")), *req.Enabled)
	if err != nil {
		h.abort(c, err)

		return
	}

	c.Status(http.StatusNoContent)
}

func (h Handler) ClearFeatureOverride(c *gin.Context) {
	tenantID, err := pathID[domain.TenantID](c, "id", "tenant id")
	if err != nil {
		h.abort(c, err)

		return
	}

	if err := h.deps.Tenancy.ClearFeatureOverride(c.Request.Context(), tenantID, domain.Feature(c.Param("feature"))); err != nil {
		h.abort(c, err)

		return
	}

	c.Status(http.StatusNoContent)
}
