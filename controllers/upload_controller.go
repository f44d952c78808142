package controllers

import (
	"io"
	"os"
	"path/filepath"

	"github.com/Vitnet1814/qrmenu-sub000/pkg/resp"
	"github.com/Vitnet1814/qrmenu-sub000/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type UploadController struct {
	Dir string
}

func NewUploadController(dir string) *UploadController {
	return &UploadController{Dir: dir}
}

const maxUploadBytes = 10 << 20

// POST /api/upload-image
func (ctl *UploadController) UploadImage(c *gin.Context) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		resp.BadRequest(c, "image file is required")
		return
	}
	if fileHeader.Size > maxUploadBytes {
		resp.BadRequest(c, "image too large")
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	img, err := utils.NormalizeImage(data)
	if err != nil {
		resp.BadRequest(c, "unsupported image format")
		return
	}

	if err := os.MkdirAll(ctl.Dir, 0o755); err != nil {
		resp.ServerError(c, err)
		return
	}
	name := uuid.New().String() + ".jpg"
	if err := os.WriteFile(filepath.Join(ctl.Dir, name), img.Data, 0o644); err != nil {
		resp.ServerError(c, err)
		return
	}

	resp.Created(c, gin.H{
		"url":    "/uploads/" + name,
		"width":  img.Width,
		"height": img.Height,
	})
}
