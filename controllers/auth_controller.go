package controllers

import (
	"errors"

	"github.com/huozturk-art/dr.burgerweb-sub000/configs"
	"github.com/huozturk-art/dr.burgerweb-sub000/entity"
	"github.com/huozturk-art/dr.burgerweb-sub000/pkg/resp"
	"github.com/huozturk-art/dr.burgerweb-sub000/utils"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthController struct {
	DB  *gorm.DB
	Cfg *configs.Config
}

func NewAuthController(db *gorm.DB, cfg *configs.Config) *AuthController {
	return &AuthController{DB: db, Cfg: cfg}
}

type LoginReq struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// POST /auth/login — full admin login.
func (ac *AuthController) Login(c *gin.Context) {
	var req LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	var user entity.User
	err := ac.DB.Where("email = ?", req.Email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		resp.Unauthorized(c, "invalid credentials")
		return
	}
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)) != nil {
		resp.Unauthorized(c, "invalid credentials")
		return
	}

	token, err := utils.GenerateToken(user.ID, user.Role, ac.Cfg.JWTSecret, ac.Cfg.JWTTTL)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"token": token, "role": user.Role, "name": user.Name})
}

type PinLoginReq struct {
	Pin string `json:"pin" binding:"required,len=4,numeric"`
}

// POST /auth/pin — kitchen terminal gate. The PIN mints a short-lived token
// with the kitchen role; there is no client-side auth flag to bypass.
func (ac *AuthController) PinLogin(c *gin.Context) {
	var req PinLoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if req.Pin != ac.Cfg.KitchenPIN {
		resp.Unauthorized(c, "wrong pin")
		return
	}

	token, err := utils.GenerateToken(0, "kitchen", ac.Cfg.JWTSecret, ac.Cfg.KitchenTTL)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"token": token, "role": "kitchen"})
}
