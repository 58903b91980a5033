package rest

import (
	"io"
	"net/http"
	"path"
	"path/filepath"
	"strings"

	"github.com/molcom/timeclock-backend/internal/domain"
	"github.com/molcom/timeclock-backend/pkg/ctxutil"
)

// maxMultipartMemory bounds the in-memory part of multipart parsing; larger
// uploads spill to temp files.
const maxMultipartMemory = 4 << 20

var allowedPhotoExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

func (h *Handlers) uploadPhoto(w http.ResponseWriter, r *http.Request) {
	if _, ok := ctxutil.UserIDFromCtx(r.Context()); !ok {
		handleError(w, r, h.log, domain.ErrUnauthorized)
		return
	}

	if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
		handleError(w, r, h.log, domain.NewValidationError("photo", "invalid multipart form"))
		return
	}

	file, header, err := r.FormFile("photo")
	if err != nil {
		handleError(w, r, h.log, domain.NewValidationError("photo", "file is required"))
		return
	}
	defer file.Close()

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !allowedPhotoExts[ext] {
		handleError(w, r, h.log, domain.NewValidationError("photo", "only image files are allowed"))
		return
	}

	relPath, err := h.photos.Save(header.Filename, file)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"photoPath": relPath})
}

func (h *Handlers) servePhoto(w http.ResponseWriter, r *http.Request) {
	relPath := path.Clean(r.PathValue("path"))
	if relPath == "." || strings.HasPrefix(relPath, "..") {
		writeError(w, http.StatusNotFound, "Not found")
		return
	}

	f, err := h.photos.Open(relPath)
	if err != nil {
		writeError(w, http.StatusNotFound, "Not found")
		return
	}
	defer f.Close()

	if ct := contentTypeForExt(filepath.Ext(relPath)); ct != "" {
		w.Header().Set("Content-Type", ct)
	}
	_, _ = io.Copy(w, f)
}

func contentTypeForExt(ext string) string {
	switch strings.ToLower(ext) {
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".png":
		return "image/png"
	case ".gif":
		return "image/gif"
	case ".webp":
		return "image/webp"
	default:
		return ""
	}
}
