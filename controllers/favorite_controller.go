package controllers

import (
	"github.com/huozturk-art/dr.burgerweb-sub000/pkg/resp"
	"github.com/huozturk-art/dr.burgerweb-sub000/repository"

	"github.com/gin-gonic/gin"
)

type FavoriteController struct {
	Repo *repository.SavedBurgerRepository
}

func NewFavoriteController(r *repository.SavedBurgerRepository) *FavoriteController {
	return &FavoriteController{Repo: r}
}

// GET /favorites?phone= — saved designs for a phone number. Zero matches is
// a 404 so the wizard shows its "nothing saved" error; more than one match
// is the client's disambiguation list.
func (fc *FavoriteController) Search(c *gin.Context) {
	phone := c.Query("phone")
	if len(phone) < 10 {
		resp.BadRequest(c, "a valid phone is required")
		return
	}
	items, err := fc.Repo.FindByPhone(phone)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	if len(items) == 0 {
		resp.NotFound(c, "no saved burger for this phone")
		return
	}
	resp.OK(c, gin.H{"items": items})
}
