package handlers

import (
	"io"
	"net/http"
	"path"

	"github.com/Hernadil/tracker/internal/repository"
	"github.com/Hernadil/tracker/internal/storage"
	"github.com/Hernadil/tracker/pkg/response"
	"github.com/Hernadil/tracker/pkg/utils"
	"github.com/gin-gonic/gin"
)

type FootageHandler struct {
	store *storage.FootageStore
	repos *repository.Repos
}

func NewFootageHandler(store *storage.FootageStore, repos *repository.Repos) *FootageHandler {
	return &FootageHandler{store: store, repos: repos}
}

// UploadFootage godoc
// @Summary Attach a raw footage file to a video title
// @Tags footage
// @Accept multipart/form-data
// @Produce json
// @Param id path int true "Project ID"
// @Param title_id path int true "Title ID"
// @Param file formData file true "Raw footage file"
// @Success 200 {object} worklog.VideoTitle
// @Failure 403 {object} response.ErrorResponse "Not a member of this project"
// @Failure 404 {object} response.ErrorResponse "Title not found"
// @Router /projects/{id}/titles/{title_id}/footage [post]
func (h *FootageHandler) UploadFootage(c *gin.Context) {
	if h.store == nil {
		c.JSON(http.StatusServiceUnavailable, response.ErrorResponse{Error: "footage storage is not configured"})
		return
	}
	uid, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}
	pid, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid project id"})
		return
	}
	tid, err := utils.ParseIDParam(c, "title_id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid title id"})
		return
	}
	member, err := h.repos.Membership.Exists(uid, pid)
	if err != nil || !member {
		c.JSON(http.StatusForbidden, response.ErrorResponse{Error: "not a member of this project"})
		return
	}
	title, err := h.repos.VideoTitle.GetProjectTitle(pid, tid)
	if err != nil {
		c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "title not found"})
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "file is required"})
		return
	}
	src, err := file.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	defer src.Close()

	contentType := file.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	key, err := h.store.UploadFootage(c.Request.Context(), pid, tid, file.Filename, contentType, src, file.Size)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}

	title.FootageKey = &key
	if err := h.repos.VideoTitle.UpdateTitle(&title); err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, title)
}

// DownloadFootage godoc
// @Summary Stream a title's stored raw footage
// @Tags footage
// @Produce octet-stream
// @Param id path int true "Project ID"
// @Param title_id path int true "Title ID"
// @Success 200 {file} binary
// @Failure 404 {object} response.ErrorResponse "No footage stored for this title"
// @Router /projects/{id}/titles/{title_id}/footage [get]
func (h *FootageHandler) DownloadFootage(c *gin.Context) {
	if h.store == nil {
		c.JSON(http.StatusServiceUnavailable, response.ErrorResponse{Error: "footage storage is not configured"})
		return
	}
	uid, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}
	pid, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid project id"})
		return
	}
	tid, err := utils.ParseIDParam(c, "title_id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid title id"})
		return
	}
	claims, err := utils.GetClaimsFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}
	if !claims.IsBoss {
		member, err := h.repos.Membership.Exists(uid, pid)
		if err != nil || !member {
			c.JSON(http.StatusForbidden, response.ErrorResponse{Error: "not a member of this project"})
			return
		}
	}
	title, err := h.repos.VideoTitle.GetProjectTitle(pid, tid)
	if err != nil {
		c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "title not found"})
		return
	}
	if title.FootageKey == nil {
		c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "no footage stored for this title"})
		return
	}

	obj, err := h.store.DownloadFootage(c.Request.Context(), *title.FootageKey)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	defer obj.Close()

	c.Header("Content-Disposition", "attachment; filename=\""+path.Base(*title.FootageKey)+"\"")
	c.Header("Content-Type", "application/octet-stream")
	c.Status(http.StatusOK)
	_, _ = io.Copy(c.Writer, obj)
}
