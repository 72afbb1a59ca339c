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

type ProductController struct {
	Catalog *repository.CatalogRepository
}

func NewProductController(cat *repository.CatalogRepository) *ProductController {
	return &ProductController{Catalog: cat}
}

type productReq struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"required,gt=0"`
	Image       string  `json:"image"`
	Category    string  `json:"category" binding:"required"`
}

// GET /admin/products
func (pc *ProductController) List(c *gin.Context) {
	products, err := pc.Catalog.ListProducts()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": products})
}

// POST /admin/products
func (pc *ProductController) Create(c *gin.Context) {
	var req productReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	p := entity.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Image:       req.Image,
		Category:    req.Category,
	}
	if err := pc.Catalog.CreateProduct(&p); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, p)
}

// PATCH /admin/products/:id
func (pc *ProductController) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid id")
		return
	}
	p, err := pc.Catalog.GetProduct(uint(id))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		resp.NotFound(c, "product not found")
		return
	}
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	var req productReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	p.Name = req.Name
	p.Description = req.Description
	p.Price = req.Price
	p.Image = req.Image
	p.Category = req.Category
	if err := pc.Catalog.UpdateProduct(p); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, p)
}

// DELETE /admin/products/:id
func (pc *ProductController) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid id")
		return
	}
	if err := pc.Catalog.DeleteProduct(uint(id)); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": id})
}
