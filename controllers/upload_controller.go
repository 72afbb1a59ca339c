package controllers

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/huozturk-art/dr.burgerweb-sub000/pkg/resp"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type UploadController struct {
	Dir string
}

func NewUploadController(dir string) *UploadController {
	return &UploadController{Dir: dir}
}

var allowedImageExt = map[string]bool{
	".jpg": true, ".jpeg": true, ".png": true, ".webp": true, ".gif": true,
}

// POST /admin/upload — multipart image into the static uploads dir,
// responds with the public path.
func (uc *UploadController) Upload(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		resp.BadRequest(c, "image file is required")
		return
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedImageExt[ext] {
		resp.BadRequest(c, "unsupported image type")
		return
	}

	if err := os.MkdirAll(uc.Dir, 0755); err != nil {
		resp.ServerError(c, err)
		return
	}
	name := uuid.NewString() + ext
	if err := c.SaveUploadedFile(file, filepath.Join(uc.Dir, name)); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, gin.H{"path": "/uploads/" + name})
}
