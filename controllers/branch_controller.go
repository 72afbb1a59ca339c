package controllers

import (
	"errors"
	"strconv"

	"github.com/huozturk-art/dr.burgerweb-sub000/entity"
	"github.com/huozturk-art/dr.burgerweb-sub000/pkg/resp"
	"github.com/huozturk-art/dr.burgerweb-sub000/repository"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type BranchController struct {
	Catalog *repository.CatalogRepository
}

func NewBranchController(cat *repository.CatalogRepository) *BranchController {
	return &BranchController{Catalog: cat}
}

type branchReq struct {
	Name    string `json:"name" binding:"required"`
	Address string `json:"address" binding:"required"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	MapLink string `json:"mapLink"`
}

// POST /admin/branches
func (bc *BranchController) Create(c *gin.Context) {
	var req branchReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	b := entity.Branch{
		Name:    req.Name,
		Address: req.Address,
		Phone:   req.Phone,
		Email:   req.Email,
		MapLink: req.MapLink,
	}
	if err := bc.Catalog.CreateBranch(&b); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, b)
}

// PATCH /admin/branches/:id
func (bc *BranchController) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid id")
		return
	}
	b, err := bc.Catalog.GetBranch(uint(id))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		resp.NotFound(c, "branch not found")
		return
	}
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	var req branchReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	b.Name = req.Name
	b.Address = req.Address
	b.Phone = req.Phone
	b.Email = req.Email
	b.MapLink = req.MapLink
	if err := bc.Catalog.UpdateBranch(b); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, b)
}

// DELETE /admin/branches/:id
func (bc *BranchController) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid id")
		return
	}
	if err := bc.Catalog.DeleteBranch(uint(id)); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": id})
}

// GET /admin/tables/:n/link — per-table deep link for the QR generator;
// rendering the QR itself stays on the client.
func (bc *BranchController) TableLink(c *gin.Context) {
	n, err := strconv.Atoi(c.Param("n"))
	if err != nil || n < 0 {
		resp.BadRequest(c, "invalid table number")
		return
	}
	link := "/custom?table=" + strconv.Itoa(n)
	if b := c.Query("branch"); b != "" {
		link += "&branch=" + b
	}
	resp.OK(c, gin.H{"table": n, "link": link})
}
