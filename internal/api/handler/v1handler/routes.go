package v1handler

import (
	"studiohub/pkg/domain"

	"github.com/gin-gonic/gin"
)

// Register mounts every v1 endpoint on r.
func (h Handler) Register(r gin.IRouter) {
	r.Use(FeatureCache(), h.Authenticate())

	viewer := h.RequireRole(domain.RoleViewer)
	editor := h.RequireRole(domain.RoleEditor)
	admin := h.RequireRole(domain.RoleAdmin)
	owner := h.RequireRole(domain.RoleOwner)

	// anonymous
	r.POST("/signup", h.Signup)
	r.POST("/webhooks/payments", h.PaymentWebhook)

	auth := r.Group("/auth", h.ResolveTenant())
	auth.POST("/login", h.Login)
	auth.POST("/password-reset", h.RequestPasswordReset)
	auth.POST("/password-reset/confirm", h.ResetPassword)

	public := r.Group("/public")
	public.GET("/galleries/:code", h.LookupGallery)
	public.GET("/galleries/:code/favorites", h.Favorites)
	public.PUT("/galleries/:code/favorites/:photoId", h.AddFavorite)
	public.DELETE("/galleries/:code/favorites/:photoId", h.RemoveFavorite)
	public.POST("/orders", h.PlaceOrder)
	public.GET("/orders/:token", h.LookupOrder)
	public.GET("/products", h.ResolveTenant(), h.PublicProducts)

	// studio dashboard
	studio := r.Group("/studio")
	studio.GET("", viewer, h.GetStudio)
	studio.GET("/features", viewer, h.StudioFeatures)
	studio.PUT("/domain", owner, h.SetCustomDomain)
	studio.POST("/api-key", owner, h.RotateAPIKey)
	studio.GET("/members", admin, h.ListMembers)
	studio.POST("/members", admin, h.InviteMember)
	studio.GET("/products", viewer, h.ListProducts)
	studio.POST("/products", admin, h.CreateProduct)

	gals := r.Group("/galleries")
	gals.GET("", viewer, h.ListGalleries)
	gals.POST("", editor, h.CreateGallery)
	gals.GET("/:id", viewer, h.GetGallery)
	gals.PATCH("/:id", editor, h.UpdateGallery)
	gals.POST("/:id/publish", editor, h.PublishGallery)
	gals.POST("/:id/archive", admin, h.ArchiveGallery)
	gals.GET("/:id/photos", viewer, h.ListPhotos)
	gals.POST("/:id/photos", editor, h.UploadPhoto)
	gals.DELETE("/:id/photos/:photoId", editor, h.DeletePhoto)

	ords := r.Group("/orders")
	ords.GET("", viewer, h.ListOrders)
	ords.GET("/:id", viewer, h.GetOrder)
	ords.PATCH("/:id/status", editor, h.UpdateOrderStatus)

	// billing and support
	platform := r.Group("/platform/tenants/:id", h.RequireStaff())
	platform.PATCH("/plan", h.ChangePlan)
	platform.GET("/features", h.TenantFeatures)
	platform.PUT("/features/:feature", h.SetFeatureOverride)
	platform.DELETE("/features/:feature", h.ClearFeatureOverride)
}
