package v1handler

import (
	"net/http"
	"strconv"
	"studiohub/internal/tenancy"
	"studiohub/pkg/domain"

	"github.com/gin-gonic/gin"
)

type SignupRequest struct {
	Slug       string `binding:"required"         json:"slug"`
	StudioName string `binding:"required,max=200" json:"studioName"`
	OwnerName  string `binding:"required,max=200" json:"ownerName"`
	Email      string `binding:"required"         json:"email"`
	Password   string `binding:"required"         json:"password"`
}

type LoginRequest struct {
	Email    string `binding:"required" json:"email"`
	Password string `binding:"required" json:"password"`
}

type LoginResponse struct {
	Token string `json:"token"`
}

type PasswordResetRequest struct {
	Email string `binding:"required" json:"email"`
}

type ResetPasswordRequest struct {
	Token    string `binding:"required" json:"token"`
	Password string `binding:"required" json:"password"`
}

type CustomDomainRequest struct {
	// Domain is the studio's own host name; empty clears it.
	Domain string `json:"domain"`
}

type APIKeyResponse struct {
	APIKey string `json:"apiKey"`
}

type InviteMemberRequest struct {
	Email string `binding:"required"                     json:"email"`
	Name  string `binding:"required,max=200"             json:"name"`
	Role  string `binding:"required,oneof=viewer editor admin" json:"role"`
}

type CreateProductRequest struct {
	Name        string `binding:"required,max=200" json:"name"`
	Description string `json:"description"`
	Price       int64  `binding:"min=0"            json:"price"`
}

func (h Handler) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.abort(c, badRequest(err))

		return
	}

	res, err := h.deps.Tenancy.Signup(c.Request.Context(), tenancy.SignupInput{
		Slug:       req.Slug,
		StudioName: req.StudioName,
		OwnerName:  req.OwnerName,
		Email:      req.Email,
		Password:   req.Password,
		ClientIP:   clientIP(c),
	})
	if err != nil {
		h.abort(c, err)

		return
	}

	c.JSON(http.StatusCreated, res)
}

// Login signs a member of the studio addressed by the host in.
func (h Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.abort(c, badRequest(err))

		return
	}

	token, err := h.deps.Tenancy.Login(c.Request.Context(), tenancy.LoginInput{
		TenantID: hostTenant(c).ID,
		Email:    req.Email,
		Password: req.Password,
		ClientIP: clientIP(c),
	})
	if err != nil {
		h.abort(c, err)

		return
	}

	c.JSON(http.StatusOK, LoginResponse{Token: token})
}

// RequestPasswordReset always answers 202 so callers cannot discover
// accounts.
func (h Handler) RequestPasswordReset(c *gin.Context) {
	var req PasswordResetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.abort(c, badRequest(err))

		return
	}

	err := h.deps.Tenancy.RequestPasswordReset(c.Request.Context(), hostTenant(c).ID, req.Email, clientIP(c))
	if err != nil {
		h.abort(c, err)

		return
	}

	c.Status(http.StatusAccepted)
}

// ResetPassword sets a new password with the token of a password reset or
// invitation e-mail.
func (h Handler) ResetPassword(c *gin.Context) {
	var req ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.abort(c, badRequest(err))

		return
	}

	err := h.deps.Tenancy.ResetPassword(c.Request.Context(), tenancy.ResetPasswordInput{
		TenantID: hostTenant(c).ID,
		Token:    req.Token,
		Password: req.Password,
		ClientIP: clientIP(c),
	})
	if err != nil {
		h.abort(c, err)

		return
	}

	c.Status(http.StatusNoContent)
}

func (h Handler) GetStudio(c *gin.Context) {
	tenant, err := h.deps.Tenancy.Get(c.Request.Context(), sessionTenant(c))
	if err != nil {
		h.abort(c, err)

		return
	}

	c.JSON(http.StatusOK, tenant)
}

func (h Handler) StudioFeatures(c *gin.Context) {
	h.features(c, sessionTenant(c))
}

func (h Handler) features(c *gin.Context, tenantID domain.TenantID) {
	all, err := h.deps.Tenancy.Features(c.Request.Context(), tenantID)
	if err != nil {
		h.abort(c, err)

		return
	}

	c.JSON(http.StatusOK, all)
}

func (h Handler) SetCustomDomain(c *gin.Context) {
	var req CustomDomainRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.abort(c, badRequest(err))

		return
	}

	tenant, err := h.deps.Tenancy.SetCustomDomain(c.Request.Context(), sessionTenant(c), req.Domain)
	if err != nil {
		h.abort(c, err)

		return
	}

	c.JSON(http.StatusOK, tenant)
}

func (h Handler) RotateAPIKey(c *gin.Context) {
	key, err := h.deps.Tenancy.RotateAPIKey(c.Request.Context(), sessionTenant(c))
	if err != nil {
		h.abort(c, err)

		return
	}

	c.JSON(http.StatusCreated, APIKeyResponse{APIKey: key})
}

func (h Handler) ListMembers(c *gin.Context) {
	users, err := h.deps.Tenancy.Members(c.Request.Context(), sessionTenant(c))
	if err != nil {
		h.abort(c, err)

		return
	}

	c.JSON(http.StatusOK, Page[domain.User]{Items: users})
}

func (h Handler) InviteMember(c *gin.Context) {
	var req InviteMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.abort(c, badRequest(err))

		return
	}

	user, err := h.deps.Tenancy.InviteMember(c.Request.Context(), sessionTenant(c), tenancy.InviteInput{
		Email: req.Email,
		Name:  req.Name,
		Role:  req.Role,
	})
	if err != nil {
		h.abort(c, err)

		return
	}

	c.JSON(http.StatusCreated, user)
}

func (h Handler) ListProducts(c *gin.Context) {
	activeOnly, _ := strconv.ParseBool(c.Query("active"))
	h.products(c, sessionTenant(c), activeOnly)
}

// PublicProducts lists what clients of the host studio can order.
func (h Handler) PublicProducts(c *gin.Context) {
	h.products(c, hostTenant(c).ID, true)
}

func (h Handler) products(c *gin.Context, tenantID domain.TenantID, activeOnly bool) {
	products, err := h.deps.Tenancy.ListProducts(c.Request.Context(), tenantID, activeOnly)
	if err != nil {
		h.abort(c, err)

		return
	}

	c.JSON(http.StatusOK, Page[domain.Product]{Items: products})
}

func (h Handler) CreateProduct(c *gin.Context) {
	var req CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.abort(c, badRequest(err))

		return
	}

	product, err := h.deps.Tenancy.CreateProduct(c.Request.Context(), sessionTenant(c), tenancy.ProductInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
	})
	if err != nil {
		h.abort(c, err)

		return
	}

	c.JSON(http.StatusCreated, product)
}
