package controllers

import (
	"encoding/json"
	"errors"

	"github.com/huozturk-art/dr.burgerweb-sub000/builder"
	"github.com/huozturk-art/dr.burgerweb-sub000/pkg/resp"
	"github.com/huozturk-art/dr.burgerweb-sub000/repository"
	"github.com/huozturk-art/dr.burgerweb-sub000/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BuilderController struct {
	Store     *builder.Store
	IngRepo   *repository.IngredientRepository
	SavedRepo *repository.SavedBurgerRepository
	Orders    *services.OrderService
}

func NewBuilderController(store *builder.Store, ir *repository.IngredientRepository, sr *repository.SavedBurgerRepository, os *services.OrderService) *BuilderController {
	return &BuilderController{Store: store, IngRepo: ir, SavedRepo: sr, Orders: os}
}

// POST /builder — open a wizard session over the current catalog.
// Only available ingredients are offered; the step order follows the
// categories' display order.
func (bc *BuilderController) Start(c *gin.Context) {
	cats, err := bc.IngRepo.ListCategories(true)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	if len(cats) == 0 {
		resp.BadRequest(c, "no ingredient categories configured")
		return
	}

	steps := make([]builder.Step, 0, len(cats))
	for _, cat := range cats {
		steps = append(steps, builder.Step{Category: cat, Ingredients: cat.Ingredients})
	}

	sess := builder.NewSession(uuid.NewString(), steps)
	bc.Store.Put(sess)
	resp.Created(c, sess.State())
}

func (bc *BuilderController) session(c *gin.Context) (*builder.Session, bool) {
	sess, ok := bc.Store.Get(c.Param("token"))
	if !ok {
		resp.NotFound(c, "builder session not found")
		return nil, false
	}
	return sess, true
}

// GET /builder/:token
func (bc *BuilderController) State(c *gin.Context) {
	if sess, ok := bc.session(c); ok {
		resp.OK(c, sess.State())
	}
}

type toggleReq struct {
	IngredientID uint `json:"ingredientId" binding:"required"`
}

// POST /builder/:token/toggle
func (bc *BuilderController) Toggle(c *gin.Context) {
	sess, ok := bc.session(c)
	if !ok {
		return
	}
	var req toggleReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := sess.Toggle(req.IngredientID); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.OK(c, sess.State())
}

type qtyReq struct {
	IngredientID uint `json:"ingredientId" binding:"required"`
	Delta        int  `json:"delta" binding:"required"`
}

// PATCH /builder/:token/qty
func (bc *BuilderController) UpdateQty(c *gin.Context) {
	sess, ok := bc.session(c)
	if !ok {
		return
	}
	var req qtyReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	sess.UpdateQty(req.IngredientID, req.Delta)
	resp.OK(c, sess.State())
}

// POST /builder/:token/next
func (bc *BuilderController) Next(c *gin.Context) {
	sess, ok := bc.session(c)
	if !ok {
		return
	}
	if err := sess.Next(); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.OK(c, sess.State())
}

// POST /builder/:token/back
func (bc *BuilderController) Back(c *gin.Context) {
	sess, ok := bc.session(c)
	if !ok {
		return
	}
	sess.Back()
	resp.OK(c, sess.State())
}

// POST /builder/:token/reset
func (bc *BuilderController) Reset(c *gin.Context) {
	sess, ok := bc.session(c)
	if !ok {
		return
	}
	sess.Reset()
	resp.OK(c, sess.State())
}

type applyFavoriteReq struct {
	SavedBurgerID uint `json:"savedBurgerId" binding:"required"`
}

// POST /builder/:token/favorite — load a saved design into the wizard.
// Snapshot entries the current catalog no longer carries are dropped and
// listed so the UI can warn about them.
func (bc *BuilderController) ApplyFavorite(c *gin.Context) {
	sess, ok := bc.session(c)
	if !ok {
		return
	}
	var req applyFavoriteReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	saved, err := bc.SavedRepo.Get(req.SavedBurgerID)
	if err != nil {
		resp.NotFound(c, "saved burger not found")
		return
	}
	var items []builder.SnapshotItem
	if err := json.Unmarshal([]byte(saved.Ingredients), &items); err != nil {
		resp.ServerError(c, errors.New("saved burger snapshot is corrupt"))
		return
	}

	dropped := sess.ApplySnapshot(items)
	resp.OK(c, gin.H{"state": sess.State(), "dropped": dropped})
}

type builderSubmitReq struct {
	TableNo       int    `json:"tableNo"`
	BranchID      *uint  `json:"branchId"`
	CustomerName  string `json:"customerName"`
	CustomerPhone string `json:"customerPhone"`
	Notes         string `json:"notes"`
	BurgerName    string `json:"burgerName"`
	SaveFavorite  bool   `json:"saveFavorite"`
}

// POST /builder/:token/submit
func (bc *BuilderController) Submit(c *gin.Context) {
	sess, ok := bc.session(c)
	if !ok {
		return
	}
	if !sess.OnOrderForm() {
		resp.BadRequest(c, "wizard is not on the order form yet")
		return
	}
	if sess.OrderNo() != "" {
		resp.BadRequest(c, "order already submitted")
		return
	}

	var req builderSubmitReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if req.SaveFavorite && len(req.CustomerPhone) < 10 {
		resp.BadRequest(c, "a valid phone is required to save a favorite")
		return
	}

	out, err := bc.Orders.CreateFromBuilder(&services.BuilderSubmitIn{
		TableNo:       req.TableNo,
		BranchID:      req.BranchID,
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		Notes:         req.Notes,
		BurgerName:    req.BurgerName,
		SaveFavorite:  req.SaveFavorite,
		Selections:    sess.Selections(),
	})
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	sess.Complete(out.OrderNo)
	resp.Created(c, gin.H{"order": out, "state": sess.State()})
}
