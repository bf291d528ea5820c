package file

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"workforce/backend/foundation/web"
	"workforce/backend/internal/service"
	"workforce/backend/internal/service/hashing"
)

type Controller struct {
	*web.App
	fileServerBasePath string
}

func NewController(app *web.App, fileServerBasePath string) *Controller {
	return &Controller{app, fileServerBasePath}
}

// Upload stores a jpeg/png under the media root and answers with the plain
// path plus a 24h expiring link token.
func (cf Controller) Upload(c *web.Context) error {
	file, err := c.FormFile("file")
	if err != nil {
		return c.RespondError(web.NewRequestError(err, http.StatusBadRequest))
	}

	folder := c.PostForm("folder")
	if folder == "" {
		folder = "uploads"
	}

	path, err := service.Upload(file, folder)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data": map[string]string{
			"path": path,
			"link": hashing.Hash("/"+path, time.Now().UTC().Add(24*time.Hour)),
		},
		"status": true,
	}, http.StatusCreated)
}

// File serves media either by plain path or by an expiring hashed link
// produced with hashing.Hash.
func (cf Controller) File(c *gin.Context) {
	fs := gin.Dir(cf.fileServerBasePath, false)

	file := c.Param("filepath")
	if !strings.Contains(file[1:], "/") {
		opened := hashing.OpenHash(file)
		list := strings.Split(opened, " ")
		if len(list) != 3 {
			c.JSON(http.StatusBadRequest, map[string]any{
				"error":  "incorrect link",
				"status": false,
			})
			return
		}

		linkTime, err := time.Parse("02.01.2006 15:04:05", list[1]+" "+list[2])
		if err != nil {
			c.JSON(http.StatusBadRequest, map[string]any{
				"error":  "incorrect link",
				"status": false,
			})
			return
		}
		if linkTime.Before(time.Now().UTC()) {
			c.JSON(http.StatusBadRequest, map[string]any{
				"error":  "expired link",
				"status": false,
			})
			return
		}

		f, err := fs.Open(list[0])
		if err != nil {
			c.JSON(http.StatusNotFound, map[string]any{
				"error":  "file not found",
				"status": false,
			})
			return
		}
		f.Close()

		http.ServeFile(c.Writer, c.Request, cf.fileServerBasePath+list[0])
		return
	}

	f, err := fs.Open(file)
	if err != nil {
		c.JSON(http.StatusNotFound, map[string]any{
			"error":  "file not found",
			"status": false,
		})
		return
	}
	f.Close()

	http.ServeFile(c.Writer, c.Request, cf.fileServerBasePath+file)
}
