package controllers

import (
	"github.com/huozturk-art/dr.burgerweb-sub000/pkg/resp"
	"github.com/huozturk-art/dr.burgerweb-sub000/repository"

	"github.com/gin-gonic/gin"
)

type ContentController struct {
	Repo *repository.ContentRepository
}

func NewContentController(r *repository.ContentRepository) *ContentController {
	return &ContentController{Repo: r}
}

// Only known columns may be patched; the admin form sends just the fields
// the operator touched.
var contentFields = map[string]string{
	"heroTitle":    "hero_title",
	"heroSubtitle": "hero_subtitle",
	"aboutTitle":   "about_title",
	"aboutText":    "about_text",
	"footerText":   "footer_text",
	"contactPhone": "contact_phone",
	"contactEmail": "contact_email",
	"workingHours": "working_hours",
}

// PATCH /admin/content
func (cc *ContentController) Update(c *gin.Context) {
	var body map[string]any
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	updates := make(map[string]any)
	for key, val := range body {
		col, ok := contentFields[key]
		if !ok {
			resp.BadRequest(c, "unknown field: "+key)
			return
		}
		s, ok := val.(string)
		if !ok {
			resp.BadRequest(c, "field must be a string: "+key)
			return
		}
		updates[col] = s
	}

	if err := cc.Repo.UpdateContent(updates); err != nil {
		resp.ServerError(c, err)
		return
	}
	content, err := cc.Repo.GetContent()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, content)
}
