package v1handler

import (
	"net/http"
	"studiohub/internal/orders"
	"studiohub/pkg/domain"
	"studiohub/pkg/storage"

	"github.com/gin-gonic/gin"
)

type OrderLineRequest struct {
	ProductID domain.ProductID `json:"productId"`
	PhotoID   *domain.PhotoID  `json:"photoId"`
	Quantity  int              `binding:"min=1,max=10000" json:"quantity"`
}

type PlaceOrderRequest struct {
	GalleryCode string `binding:"required" json:"galleryCode"`
	Customer    struct {
		Name  string `binding:"required,max=200" json:"name"`
		Email string `binding:"required"         json:"email"`
		Phone string `binding:"max=50"           json:"phone"`
	} `json:"customer"`
	Items []OrderLineRequest `binding:"required,min=1,dive" json:"items"`
}

type UpdateOrderStatusRequest struct {
	Status string `binding:"required" json:"status"`
}

// PlaceOrder takes a cart from a gallery client. The response carries the
// access token the client needs to follow the order.
func (h Handler) PlaceOrder(c *gin.Context) {
	var req PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.abort(c, badRequest(err))

		return
	}

	items := make([]orders.LineInput, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, orders.LineInput{ProductID: it.ProductID, PhotoID: it.PhotoID, Quantity: it.Quantity})
	}

	res, err := h.deps.Orders.Place(c.Request.Context(), orders.PlaceInput{
		GalleryCode:   req.GalleryCode,
		ClientIP:      clientIP(c),
		CustomerName:  req.Customer.Name,
		CustomerEmail: req.Customer.Email,
		CustomerPhone: req.Customer.Phone,
		Items:         items,
	})
	if err != nil {
		h.abort(c, err)

		return
	}

	c.JSON(http.StatusCreated, res)
}

func (h Handler) LookupOrder(c *gin.Context) {
	o, err := h.deps.Orders.LookupByToken(c.Request.Context(), c.Param("token"))
	if err != nil {
		h.abort(c, err)

		return
	}

	c.JSON(http.StatusOK, o)
}

func (h Handler) ListOrders(c *gin.Context) {
	cursor, limit, err := pagination(c)
	if err != nil {
		h.abort(c, err)

		return
	}

	page, err := h.deps.Orders.List(c.Request.Context(), sessionTenant(c), storage.OrderFilter{
		Status: domain.OrderStatus(c.Query("status")),
		Cursor: cursor,
		Limit:  limit,
	})
	if err != nil {
		h.abort(c, err)

		return
	}

	c.JSON(http.StatusOK, Page[domain.Order]{Items: page.Orders, NextCursor: page.NextCursor})
}

func (h Handler) GetOrder(c *gin.Context) {
	id, err := pathID[domain.OrderID](c, "id", "order id")
	if err != nil {
		h.abort(c, err)

		return
	}

	o, err := h.deps.Orders.Get(c.Request.Context(), sessionTenant(c), id)
	if err != nil {
		h.abort(c, err)

		return
	}

	c.JSON(http.StatusOK, o)
}

func (h Handler) UpdateOrderStatus(c *gin.Context) {
	id, err := pathID[domain.OrderID](c, "id", "order id")
	if err != nil {
		h.abort(c, err)

		return
	}

	var req UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.abort(c, badRequest(err))

		return
	}

	o, err := h.deps.Orders.UpdateStatus(c.Request.Context(), sessionTenant(c), id, req.Status)
	if err != nil {
		h.abort(c, err)

		return
	}

	c.JSON(http.StatusOK, o)
}
