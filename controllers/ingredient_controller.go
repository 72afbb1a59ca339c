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

type IngredientController struct {
	Repo *repository.IngredientRepository
}

func NewIngredientController(r *repository.IngredientRepository) *IngredientController {
	return &IngredientController{Repo: r}
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		resp.BadRequest(c, "invalid id")
		return 0, false
	}
	return uint(id), true
}

// GET /admin/ingredient-categories — full catalog including hidden items.
func (ic *IngredientController) ListCategories(c *gin.Context) {
	cats, err := ic.Repo.ListCategories(false)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"categories": cats})
}

type categoryReq struct {
	Name       string `json:"name" binding:"required"`
	NameEn     string `json:"nameEn"`
	Icon       string `json:"icon"`
	SortOrder  int    `json:"sortOrder"`
	IsRequired bool   `json:"isRequired"`
	MinSelect  int    `json:"minSelect"`
	MaxSelect  int    `json:"maxSelect"`
}

func (r *categoryReq) validate() string {
	if r.MinSelect < 0 || r.MaxSelect < 0 {
		return "selection bounds must not be negative"
	}
	if r.MinSelect > r.MaxSelect {
		return "minSelect must not exceed maxSelect"
	}
	if r.IsRequired && r.MinSelect == 0 {
		return "a required category needs minSelect >= 1"
	}
	return ""
}

// POST /admin/ingredient-categories
func (ic *IngredientController) CreateCategory(c *gin.Context) {
	var req categoryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if msg := req.validate(); msg != "" {
		resp.BadRequest(c, msg)
		return
	}
	cat := entity.IngredientCategory{
		Name:       req.Name,
		NameEn:     req.NameEn,
		Icon:       req.Icon,
		SortOrder:  req.SortOrder,
		IsRequired: req.IsRequired,
		MinSelect:  req.MinSelect,
		MaxSelect:  req.MaxSelect,
	}
	if err := ic.Repo.CreateCategory(&cat); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, cat)
}

// PATCH /admin/ingredient-categories/:id
func (ic *IngredientController) UpdateCategory(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	cat, err := ic.Repo.GetCategory(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		resp.NotFound(c, "category not found")
		return
	}
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	var req categoryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if msg := req.validate(); msg != "" {
		resp.BadRequest(c, msg)
		return
	}
	cat.Name = req.Name
	cat.NameEn = req.NameEn
	cat.Icon = req.Icon
	cat.SortOrder = req.SortOrder
	cat.IsRequired = req.IsRequired
	cat.MinSelect = req.MinSelect
	cat.MaxSelect = req.MaxSelect
	if err := ic.Repo.UpdateCategory(cat); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, cat)
}

// DELETE /admin/ingredient-categories/:id
func (ic *IngredientController) DeleteCategory(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := ic.Repo.DeleteCategory(id); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": id})
}

type ingredientReq struct {
	IngredientCategoryID uint     `json:"ingredientCategoryId" binding:"required"`
	Name                 string   `json:"name" binding:"required"`
	Description          string   `json:"description"`
	Price                float64  `json:"price" binding:"gte=0"`
	Calories             int      `json:"calories" binding:"gte=0"`
	Allergens            []string `json:"allergens"`
	IsAvailable          bool     `json:"isAvailable"`
	SortOrder            int      `json:"sortOrder"`
	Image                string   `json:"image"`
}

// POST /admin/ingredients
func (ic *IngredientController) CreateIngredient(c *gin.Context) {
	var req ingredientReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if _, err := ic.Repo.GetCategory(req.IngredientCategoryID); err != nil {
		resp.BadRequest(c, "category not found")
		return
	}
	ing := entity.Ingredient{
		IngredientCategoryID: req.IngredientCategoryID,
		Name:                 req.Name,
		Description:          req.Description,
		Price:                req.Price,
		Calories:             req.Calories,
		Allergens:            req.Allergens,
		IsAvailable:          req.IsAvailable,
		SortOrder:            req.SortOrder,
		Image:                req.Image,
	}
	if err := ic.Repo.CreateIngredient(&ing); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, ing)
}

// PATCH /admin/ingredients/:id
func (ic *IngredientController) UpdateIngredient(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	ing, err := ic.Repo.GetIngredient(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		resp.NotFound(c, "ingredient not found")
		return
	}
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	var req ingredientReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	ing.IngredientCategoryID = req.IngredientCategoryID
	ing.Name = req.Name
	ing.Description = req.Description
	ing.Price = req.Price
	ing.Calories = req.Calories
	ing.Allergens = req.Allergens
	ing.IsAvailable = req.IsAvailable
	ing.SortOrder = req.SortOrder
	ing.Image = req.Image
	if err := ic.Repo.UpdateIngredient(ing); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, ing)
}

// DELETE /admin/ingredients/:id
func (ic *IngredientController) DeleteIngredient(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := ic.Repo.DeleteIngredient(id); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": id})
}

type availabilityReq struct {
	IsAvailable *bool `json:"isAvailable" binding:"required"`
}

// PATCH /admin/ingredients/:id/availability — inline toggle.
func (ic *IngredientController) SetAvailability(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req availabilityReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := ic.Repo.SetAvailability(id, *req.IsAvailable); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"id": id, "isAvailable": *req.IsAvailable})
}

type priceReq struct {
	Price *float64 `json:"price" binding:"required,gte=0"`
}

// PATCH /admin/ingredients/:id/price — inline price edit.
func (ic *IngredientController) SetPrice(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req priceReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := ic.Repo.SetPrice(id, *req.Price); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"id": id, "price": *req.Price})
}
