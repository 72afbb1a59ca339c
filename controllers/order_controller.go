package controllers

import (
	"errors"

	"github.com/huozturk-art/dr.burgerweb-sub000/pkg/resp"
	"github.com/huozturk-art/dr.burgerweb-sub000/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type OrderController struct {
	Orders *services.OrderService
}

func NewOrderController(s *services.OrderService) *OrderController {
	return &OrderController{Orders: s}
}

// POST /orders/checkout/:token — standard cart checkout. Payment is
// simulated; the order goes straight to pending.
func (oc *OrderController) Checkout(c *gin.Context) {
	var req services.CheckoutReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	out, err := oc.Orders.CheckoutFromCart(c.Param("token"), &req)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "cart not found")
			return
		}
		resp.BadRequest(c, err.Error())
		return
	}
	resp.Created(c, out)
}

// GET /orders/:orderNo — order tracking for the success screen.
func (oc *OrderController) DetailByNo(c *gin.Context) {
	o, err := oc.Orders.DetailByNo(c.Param("orderNo"))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		resp.NotFound(c, "order not found")
		return
	}
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, o)
}

type manualOrderReq struct {
	SavedBurgerID uint  `json:"savedBurgerId" binding:"required"`
	TableNo       int   `json:"tableNo"`
	BranchID      *uint `json:"branchId"`
}

// POST /admin/orders/manual — re-order a customer's saved design found via
// phone lookup. Tables 0 and 99 mark phone and takeaway orders.
func (oc *OrderController) CreateManual(c *gin.Context) {
	var req manualOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if req.TableNo < 0 {
		resp.BadRequest(c, "invalid table number")
		return
	}
	out, err := oc.Orders.CreateFromSaved(req.SavedBurgerID, req.TableNo, req.BranchID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "saved burger not found")
			return
		}
		resp.BadRequest(c, err.Error())
		return
	}
	resp.Created(c, out)
}
