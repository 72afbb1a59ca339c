package controllers

import (
	"errors"

	"github.com/huozturk-art/dr.burgerweb-sub000/pkg/resp"
	"github.com/huozturk-art/dr.burgerweb-sub000/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type SessionController struct {
	Sessions *services.SessionService
}

func NewSessionController(s *services.SessionService) *SessionController {
	return &SessionController{Sessions: s}
}

// POST /session — resolve table/branch from the scanned deep link
// (?table=&branch= on the storefront) or fall back to the stored session.
func (sc *SessionController) Resolve(c *gin.Context) {
	var in services.ResolveIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	out, err := sc.Sessions.Resolve(&in)
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.OK(c, out)
}

// GET /session/:token
func (sc *SessionController) Get(c *gin.Context) {
	cart, err := sc.Sessions.Get(c.Param("token"))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		resp.NotFound(c, "session not found")
		return
	}
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, cart)
}
