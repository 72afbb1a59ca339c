package controllers

import (
	"errors"
	"strconv"

	"github.com/huozturk-art/dr.burgerweb-sub000/pkg/resp"
	"github.com/huozturk-art/dr.burgerweb-sub000/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CartController struct {
	Carts *services.CartService
}

func NewCartController(s *services.CartService) *CartController {
	return &CartController{Carts: s}
}

// GET /cart/:token
func (cc *CartController) Get(c *gin.Context) {
	out, err := cc.Carts.Get(c.Param("token"))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		resp.NotFound(c, "cart not found")
		return
	}
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, out)
}

// POST /cart/:token/items
func (cc *CartController) AddItem(c *gin.Context) {
	var in services.AddItemIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := cc.Carts.Add(c.Param("token"), &in); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "cart not found")
			return
		}
		resp.BadRequest(c, err.Error())
		return
	}
	out, err := cc.Carts.Get(c.Param("token"))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, out)
}

type updateQtyReq struct {
	Delta int `json:"delta" binding:"required"`
}

// PATCH /cart/:token/items/:id
func (cc *CartController) UpdateQty(c *gin.Context) {
	itemID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid item id")
		return
	}
	var req updateQtyReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := cc.Carts.UpdateQty(c.Param("token"), uint(itemID), req.Delta); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "item not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	out, err := cc.Carts.Get(c.Param("token"))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, out)
}

// DELETE /cart/:token/items/:id
func (cc *CartController) RemoveItem(c *gin.Context) {
	itemID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid item id")
		return
	}
	if err := cc.Carts.RemoveItem(c.Param("token"), uint(itemID)); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"removed": itemID})
}

// DELETE /cart/:token
func (cc *CartController) Clear(c *gin.Context) {
	if err := cc.Carts.Clear(c.Param("token")); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"cleared": true})
}
