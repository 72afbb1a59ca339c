package controllers

import (
	"strconv"
	"time"

	"github.com/huozturk-art/dr.burgerweb-sub000/entity"
	"github.com/huozturk-art/dr.burgerweb-sub000/pkg/resp"
	"github.com/huozturk-art/dr.burgerweb-sub000/repository"

	"github.com/gin-gonic/gin"
)

type ApplicationController struct {
	Repo *repository.ContentRepository
}

func NewApplicationController(r *repository.ContentRepository) *ApplicationController {
	return &ApplicationController{Repo: r}
}

type applyReq struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"phone" binding:"required,min=10"`
	Position string `json:"position" binding:"required"`
	Message  string `json:"message"`
}

// POST /applications — careers form, write-once.
func (ac *ApplicationController) Apply(c *gin.Context) {
	var req applyReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	a := entity.Application{
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		Position:    req.Position,
		Message:     req.Message,
		SubmittedAt: time.Now(),
	}
	if err := ac.Repo.CreateApplication(&a); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, gin.H{"id": a.ID})
}

// GET /admin/applications
func (ac *ApplicationController) List(c *gin.Context) {
	items, err := ac.Repo.ListApplications()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items})
}

// DELETE /admin/applications/:id
func (ac *ApplicationController) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid id")
		return
	}
	if err := ac.Repo.DeleteApplication(uint(id)); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": id})
}
