package controllers

import (
	"github.com/huozturk-art/dr.burgerweb-sub000/entity"
	"github.com/huozturk-art/dr.burgerweb-sub000/pkg/resp"
	"github.com/huozturk-art/dr.burgerweb-sub000/repository"

	"github.com/gin-gonic/gin"
)

// MenuController serves the public storefront reads: menu, branches,
// builder catalog, site content.
type MenuController struct {
	Catalog *repository.CatalogRepository
	IngRepo *repository.IngredientRepository
	ContentRepo *repository.ContentRepository
}

func NewMenuController(cat *repository.CatalogRepository, ir *repository.IngredientRepository, cr *repository.ContentRepository) *MenuController {
	return &MenuController{Catalog: cat, IngRepo: ir, ContentRepo: cr}
}

// GET /menu — products grouped by category label for the anchored menu page.
func (mc *MenuController) Menu(c *gin.Context) {
	products, err := mc.Catalog.ListProducts()
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	grouped := make(map[string][]entity.Product)
	categories := make([]string, 0)
	for _, p := range products {
		if _, ok := grouped[p.Category]; !ok {
			categories = append(categories, p.Category)
		}
		grouped[p.Category] = append(grouped[p.Category], p)
	}
	resp.OK(c, gin.H{"categories": categories, "products": grouped})
}

// GET /branches
func (mc *MenuController) Branches(c *gin.Context) {
	branches, err := mc.Catalog.ListBranches()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": branches})
}

// GET /ingredients — the builder catalog, available ingredients only.
func (mc *MenuController) Ingredients(c *gin.Context) {
	cats, err := mc.IngRepo.ListCategories(true)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"categories": cats})
}

// GET /content — singleton site content; hardcoded fallbacks live in the
// seed, so an empty row only happens on a fresh unseeded database.
func (mc *MenuController) Content(c *gin.Context) {
	content, err := mc.ContentRepo.GetContent()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	if content == nil {
		resp.OK(c, entity.SiteContent{HeroTitle: "Dr. Burger"})
		return
	}
	resp.OK(c, content)
}
