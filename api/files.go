package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/condohub/condohub/internal/storage"
	"github.com/condohub/condohub/pkg/models"
	"github.com/condohub/condohub/pkg/repository"
)

// maxUploadSize bounds property document uploads.
const maxUploadSize = 7 << 20

type FilesHandler struct {
	fileRepo  repository.FileRepo
	store     storage.ObjectStore
	signedTTL time.Duration
}

func NewFilesHandler(fr repository.FileRepo, store storage.ObjectStore, signedTTL time.Duration) *FilesHandler {
	return &FilesHandler{fileRepo: fr, store: store, signedTTL: signedTTL}
}

type uploadFileResponse struct {
	Message   string      `json:"message"`
	Data      models.File `json:"data"`
	SignedURL string      `json:"signedUrl"`
}

// UploadFile stores a property document: bytes to object storage, then a
// signed URL, then the metadata row. If the metadata insert fails the
// uploaded object is deleted best-effort so it does not linger unreferenced.
func (h *FilesHandler) UploadFile(w http.ResponseWriter, r *http.Request) {
	claims, ok := ClaimsFrom(r)
	if !ok {
		writeError(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	if claims.Role != models.RoleCompany {
		writeError(w, "Unauthorized: Access is limited to company accounts only.", http.StatusUnauthorized)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		writeError(w, "No file was uploaded.", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, "No file was uploaded.", http.StatusBadRequest)
		return
	}
	defer file.Close()

	propertyID, err := strconv.ParseInt(r.FormValue("property_id"), 10, 64)
	if err != nil || propertyID <= 0 {
		writeError(w, "Invalid or missing property ID.", http.StatusBadRequest)
		return
	}
	fileType := r.FormValue("file_type")
	description := r.FormValue("description")

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	ctx := r.Context()

	// Same property + same filename share a key; re-upload overwrites.
	key := storage.BuildKey(propertyID, header.Filename)

	if err := h.store.Upload(ctx, key, file, contentType); err != nil {
		logger.Error("upload object", "key", key, "err", err)
		writeError(w, "Failed to upload file", http.StatusInternalServerError)
		return
	}

	signedURL, err := h.store.SignedURL(ctx, key, h.signedTTL)
	if err != nil {
		logger.Error("sign url", "key", key, "err", err)
		h.compensate(r, key)
		writeError(w, "Failed to upload file", http.StatusInternalServerError)
		return
	}

	entry := models.File{
		FileKey:     key,
		FileType:    fileType,
		CompanyID:   claims.ID,
		PropertyID:  propertyID,
		Description: description,
		SignedURL:   signedURL,
	}
	id, err := h.fileRepo.CreateFile(ctx, &entry)
	if err != nil {
		logger.Error("persist file metadata", "key", key, "err", err)
		h.compensate(r, key)
		writeError(w, "Failed to upload file", http.StatusInternalServerError)
		return
	}
	entry.ID = id

	writeJSON(w, uploadFileResponse{
		Message:   "File uploaded successfully",
		Data:      entry,
		SignedURL: signedURL,
	}, http.StatusOK)
}

// compensate deletes an uploaded object whose metadata never made it to the
// database. Failure here leaves an orphan, which is logged for cleanup.
func (h *FilesHandler) compensate(r *http.Request, key string) {
	if err := h.store.Delete(r.Context(), key); err != nil {
		logger.Error("orphaned object: compensating delete failed", "key", key, "err", err)
	}
}

type listFilesResponse struct {
	Files []models.File `json:"files"`
}

// ListFiles returns the document metadata for a property. Companies see only
// their own rows; residents may read any property's documents by id. Signed
// URLs are regenerated per read so callers never receive an expired link.
func (h *FilesHandler) ListFiles(w http.ResponseWriter, r *http.Request) {
	claims, ok := ClaimsFrom(r)
	if !ok {
		writeError(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	propertyID, err := strconv.ParseInt(r.URL.Query().Get("property_id"), 10, 64)
	if err != nil || propertyID <= 0 {
		writeError(w, "Invalid or missing property ID.", http.StatusBadRequest)
		return
	}

	ctx := r.Context()

	var files []models.File
	switch claims.Role {
	case models.RoleCompany:
		files, err = h.fileRepo.ListFilesByPropertyAndCompany(ctx, propertyID, claims.ID)
	case models.RolePublicUser:
		files, err = h.fileRepo.ListFilesByProperty(ctx, propertyID)
	default:
		writeError(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	if err != nil {
		logger.Error("list files", "err", err)
		writeError(w, "Failed to list files due to server error.", http.StatusInternalServerError)
		return
	}

	if len(files) == 0 {
		// existing clients treat "no files" as an error, not an empty list
		writeError(w, "No files found for the specified property.", http.StatusNotFound)
		return
	}

	for i := range files {
		url, err := h.store.SignedURL(ctx, files[i].FileKey, h.signedTTL)
		if err != nil {
			logger.Error("refresh signed url", "key", files[i].FileKey, "err", err)
			writeError(w, "Failed to list files due to server error.", http.StatusInternalServerError)
			return
		}
		files[i].SignedURL = url
	}

	writeJSON(w, listFilesResponse{Files: files}, http.StatusOK)
}
