package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/huozturk-art/dr.burgerweb-sub000/pkg/resp"
	"github.com/huozturk-art/dr.burgerweb-sub000/repository"
	"github.com/huozturk-art/dr.burgerweb-sub000/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type KitchenController struct {
	Orders *services.OrderService
	Repo   *repository.OrderRepository
}

func NewKitchenController(s *services.OrderService, r *repository.OrderRepository) *KitchenController {
	return &KitchenController{Orders: s, Repo: r}
}

// GET /kitchen/orders?filter=active|all|paid — the board's reconciliation
// poll. The count lets old clients keep their "count went up → ring" check.
func (kc *KitchenController) List(c *gin.Context) {
	filter := c.DefaultQuery("filter", "active")
	orders, total, err := kc.Repo.ListForBoard(filter)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"orders": orders, "count": total, "filter": filter})
}

func (kc *KitchenController) orderID(c *gin.Context) (uint, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		resp.BadRequest(c, "invalid order id")
		return 0, false
	}
	return uint(id), true
}

// PATCH /kitchen/orders/:id/advance
func (kc *KitchenController) Advance(c *gin.Context) {
	id, ok := kc.orderID(c)
	if !ok {
		return
	}
	o, err := kc.Orders.Advance(id)
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		resp.NotFound(c, "order not found")
	case errors.Is(err, services.ErrStatusConflict):
		resp.Conflict(c, err.Error())
	case errors.Is(err, services.ErrTerminalStatus):
		resp.BadRequest(c, err.Error())
	case err != nil:
		resp.ServerError(c, err)
	default:
		resp.OK(c, o)
	}
}

// PATCH /kitchen/orders/:id/cancel
func (kc *KitchenController) Cancel(c *gin.Context) {
	id, ok := kc.orderID(c)
	if !ok {
		return
	}
	o, err := kc.Orders.Cancel(id)
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		resp.NotFound(c, "order not found")
	case errors.Is(err, services.ErrStatusConflict):
		resp.Conflict(c, err.Error())
	case errors.Is(err, services.ErrTerminalStatus):
		resp.BadRequest(c, err.Error())
	case err != nil:
		resp.ServerError(c, err)
	default:
		resp.OK(c, o)
	}
}

// GET /kitchen/orders/:id/receipt — printable HTML document.
func (kc *KitchenController) Receipt(c *gin.Context) {
	id, ok := kc.orderID(c)
	if !ok {
		return
	}
	o, err := kc.Orders.Detail(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		resp.NotFound(c, "order not found")
		return
	}
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	html, err := services.RenderReceipt(o)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}
