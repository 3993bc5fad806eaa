package http

import (
	"encoding/json"
	"io"
	"net/http"
	"path/filepath"
	"time"

	"rentora-backend/internal/storage"

	"github.com/gorilla/mux"
)

// UploadHandler serves the local stand-in for presigned photo uploads:
// clients ask for an upload URL, PUT the bytes to it, and reference the
// resulting file URL in maintenance requests or property listings.
type UploadHandler struct {
	store storage.Storage
}

func NewUploadHandler(store storage.Storage) *UploadHandler {
	return &UploadHandler{store: store}
}

type uploadURLRequest struct {
	Filename    string `json:"filename"`
	ContentType string `json:"content_type"`
}

type uploadURLResponse struct {
	Key         string `json:"key"`
	UploadURL   string `json:"upload_url"`
	DownloadURL string `json:"download_url"`
}

// RequestUploadURL issues an upload URL for a new photo.
func (h *UploadHandler) RequestUploadURL(w http.ResponseWriter, r *http.Request) {
	var req uploadURLRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, errorResponse{Error: "invalid request body"}, http.StatusBadRequest)
		return
	}
	if req.Filename == "" {
		writeJSON(w, errorResponse{Error: "filename is required"}, http.StatusBadRequest)
		return
	}

	key := storage.NewPhotoKey(req.Filename)
	uploadURL, err := h.store.GenerateUploadURL(r.Context(), key, req.ContentType, 15*time.Minute)
	if err != nil {
		writeError(w, r, err)
		return
	}
	downloadURL, err := h.store.GenerateDownloadURL(r.Context(), key, 0)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, uploadURLResponse{Key: key, UploadURL: uploadURL, DownloadURL: downloadURL}, http.StatusCreated)
}

// HandleUpload accepts PUT requests to previously issued upload URLs.
func (h *UploadHandler) HandleUpload(w http.ResponseWriter, r *http.Request) {
	key := r.URL.Query().Get("key")
	if key == "" {
		writeJSON(w, errorResponse{Error: "missing key parameter"}, http.StatusBadRequest)
		return
	}

	contentType := r.Header.Get("Content-Type")
	if contentType != "image/jpeg" && contentType != "image/png" && contentType != "image/gif" {
		writeJSON(w, errorResponse{Error: "invalid content type"}, http.StatusBadRequest)
		return
	}

	if err := h.store.SaveFile(key, r.Body); err != nil {
		writeJSON(w, errorResponse{Error: "failed to save file"}, http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
}

// HandleDownload streams a stored photo back to the client.
func (h *UploadHandler) HandleDownload(w http.ResponseWriter, r *http.Request) {
	key := mux.Vars(r)["key"]
	if key == "" {
		writeJSON(w, errorResponse{Error: "missing key"}, http.StatusBadRequest)
		return
	}

	file, err := h.store.ReadFile(key)
	if err != nil {
		writeJSON(w, errorResponse{Error: "file not found"}, http.StatusNotFound)
		return
	}
	defer file.Close()

	contentType := "application/octet-stream"
	switch filepath.Ext(key) {
	case ".jpg", ".jpeg":
		contentType = "image/jpeg"
	case ".png":
		contentType = "image/png"
	case ".gif":
		contentType = "image/gif"
	}
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Cache-Control", "public, max-age=3600")
	_, _ = io.Copy(w, file)
}
