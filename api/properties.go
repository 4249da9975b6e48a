package api

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/condohub/condohub/pkg/models"
	"github.com/condohub/condohub/pkg/repository"
)

type PropertiesHandler struct {
	propertyRepo repository.PropertyRepo
}

func NewPropertiesHandler(pr repository.PropertyRepo) *PropertiesHandler {
	return &PropertiesHandler{propertyRepo: pr}
}

type createPropertyRequest struct {
	Address string `json:"address"`
}

type createPropertyResponse struct {
	ID int64 `json:"id"`
}

func (h *PropertiesHandler) CreateProperty(w http.ResponseWriter, r *http.Request) {
	claims, ok := ClaimsFrom(r)
	if !ok || claims.Role != models.RoleCompany {
		writeError(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req createPropertyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "Invalid request", http.StatusBadRequest)
		return
	}
	req.Address = strings.TrimSpace(req.Address)
	if req.Address == "" {
		writeError(w, "Missing address", http.StatusBadRequest)
		return
	}

	id, err := h.propertyRepo.CreateProperty(r.Context(), &models.Property{
		Address:   req.Address,
		CompanyID: claims.ID,
	})
	if err != nil {
		logger.Error("create property", "err", err)
		writeError(w, "Failed to create property", http.StatusInternalServerError)
		return
	}

	writeJSON(w, createPropertyResponse{ID: id}, http.StatusOK)
}

func (h *PropertiesHandler) ListProperties(w http.ResponseWriter, r *http.Request) {
	claims, ok := ClaimsFrom(r)
	if !ok || claims.Role != models.RoleCompany {
		writeError(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	list, err := h.propertyRepo.ListPropertiesByCompany(r.Context(), claims.ID)
	if err != nil {
		logger.Error("list properties", "err", err)
		writeError(w, "Failed to list properties", http.StatusInternalServerError)
		return
	}
	if list == nil {
		list = []models.Property{}
	}

	writeJSON(w, list, http.StatusOK)
}
