package api

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/condohub/condohub/pkg/models"
	"github.com/condohub/condohub/pkg/repository"
	"github.com/gorilla/mux"
	"github.com/qri-io/jsonschema"
)

type RequestsHandler struct {
	requestRepo  repository.RequestRepo
	employeeRepo repository.EmployeeRepo
	propertyRepo repository.PropertyRepo
}

func NewRequestsHandler(rr repository.RequestRepo, er repository.EmployeeRepo, pr repository.PropertyRepo) *RequestsHandler {
	return &RequestsHandler{requestRepo: rr, employeeRepo: er, propertyRepo: pr}
}

// Schema for the create-request payload. Priority is free-form on purpose:
// unrecognized values fall back to low instead of failing.
const createRequestSchema = `{
	"type": "object",
	"required": ["propertyId", "requestType", "requestReason"],
	"properties": {
		"propertyId": {"type": "string", "minLength": 1},
		"requestType": {"type": "string", "minLength": 1},
		"requestReason": {"type": "string", "minLength": 1},
		"priority": {"type": "string"},
		"dateNeeded": {"type": "integer"}
	}
}`

var createRequestValidator = mustCompileSchema(createRequestSchema)

func mustCompileSchema(raw string) *jsonschema.Schema {
	rs := &jsonschema.Schema{}
	if err := json.Unmarshal([]byte(raw), rs); err != nil {
		panic(err)
	}
	return rs
}

type createRequestBody struct {
	PropertyID    string `json:"propertyId"`
	RequestType   string `json:"requestType"`
	RequestReason string `json:"requestReason"`
	Priority      string `json:"priority"`
	DateNeeded    *int64 `json:"dateNeeded,omitempty"`
}

type createRequestResponse struct {
	ID int64 `json:"id"`
}

// CreateRequest opens a new maintenance request. Residents only.
func (h *RequestsHandler) CreateRequest(w http.ResponseWriter, r *http.Request) {
	claims, ok := ClaimsFrom(r)
	if !ok {
		writeError(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	if claims.Role != models.RolePublicUser {
		writeError(w, "Unauthorized: only residents can open requests", http.StatusUnauthorized)
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, "Invalid request", http.StatusBadRequest)
		return
	}

	ctx := r.Context()

	keyErrs, err := createRequestValidator.ValidateBytes(ctx, body)
	if err != nil || len(keyErrs) > 0 {
		writeError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	var req createRequestBody
	if err := json.Unmarshal(body, &req); err != nil {
		writeError(w, "Invalid request", http.StatusBadRequest)
		return
	}

	propertyID, err := strconv.ParseInt(strings.TrimSpace(req.PropertyID), 10, 64)
	if err != nil || propertyID <= 0 {
		writeError(w, "Invalid property id", http.StatusBadRequest)
		return
	}

	rec := &models.Request{
		Title:        req.RequestType,
		Description:  req.RequestReason,
		Priority:     models.ParsePriority(req.Priority),
		CondoOwnerID: claims.ID,
		DateNeeded:   req.DateNeeded,
		PropertyID:   propertyID,
		Status:       models.StatusOpen,
	}

	id, err := h.requestRepo.CreateRequest(ctx, rec)
	if err != nil {
		logger.Error("create request", "err", err)
		writeError(w, "Failed to create request", http.StatusInternalServerError)
		return
	}

	writeJSON(w, createRequestResponse{ID: id}, http.StatusOK)
}

// ListRequests returns the requests visible to the caller's role: companies
// see requests on their properties, residents their own requests, employees
// the requests assigned to them.
func (h *RequestsHandler) ListRequests(w http.ResponseWriter, r *http.Request) {
	claims, ok := ClaimsFrom(r)
	if !ok {
		writeError(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	ctx := r.Context()

	var (
		list []models.RequestWithAddress
		err  error
	)
	switch claims.Role {
	case models.RoleCompany:
		list, err = h.requestRepo.ListRequestsByCompany(ctx, claims.ID)
	case models.RolePublicUser:
		list, err = h.requestRepo.ListRequestsByOwner(ctx, claims.ID)
	case models.RoleEmployee:
		list, err = h.requestRepo.ListRequestsByEmployee(ctx, claims.ID)
	default:
		writeError(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	if err != nil {
		logger.Error("list requests", "err", err)
		writeError(w, "Error fetching requests", http.StatusInternalServerError)
		return
	}

	if list == nil {
		list = []models.RequestWithAddress{}
	}

	writeJSON(w, list, http.StatusOK)
}

// GetRequest fetches one request by id. The caller must own it: companies via
// the property, residents as the issuer, employees as the assignee. Anything
// else reads as not found so request ids cannot be probed.
func (h *RequestsHandler) GetRequest(w http.ResponseWriter, r *http.Request) {
	claims, ok := ClaimsFrom(r)
	if !ok {
		writeError(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || id <= 0 {
		writeError(w, "Invalid request id", http.StatusBadRequest)
		return
	}

	ctx := r.Context()

	req, err := h.requestRepo.GetRequestByID(ctx, id)
	if err != nil {
		logger.Error("get request", "err", err)
		writeError(w, "Error fetching requests", http.StatusInternalServerError)
		return
	}
	if req == nil {
		writeError(w, "Request not found", http.StatusNotFound)
		return
	}

	allowed := false
	switch claims.Role {
	case models.RolePublicUser:
		allowed = req.CondoOwnerID == claims.ID
	case models.RoleEmployee:
		allowed = req.EmployeeID != nil && *req.EmployeeID == claims.ID
	case models.RoleCompany:
		prop, err := h.propertyRepo.GetPropertyByID(ctx, req.PropertyID)
		if err != nil {
			logger.Error("get property", "err", err)
			writeError(w, "Error fetching requests", http.StatusInternalServerError)
			return
		}
		allowed = prop != nil && prop.CompanyID == claims.ID
	}
	if !allowed {
		writeError(w, "Request not found", http.StatusNotFound)
		return
	}

	writeJSON(w, req, http.StatusOK)
}

type updateRequestBody struct {
	RequestID  int64  `json:"requestId"`
	EmployeeID *int64 `json:"employeeId,omitempty"`
	NewStatus  string `json:"newStatus,omitempty"`
}

// UpdateRequest applies up to two independent effects: assigning an employee
// (which moves the request to in_progress) and marking the request completed.
// Completion needs no assignment.
func (h *RequestsHandler) UpdateRequest(w http.ResponseWriter, r *http.Request) {
	claims, ok := ClaimsFrom(r)
	if !ok {
		writeError(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	if claims.Role != models.RoleCompany {
		writeError(w, "Unauthorized: only companies can update requests", http.StatusUnauthorized)
		return
	}

	var req updateRequestBody
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "Invalid request", http.StatusBadRequest)
		return
	}
	if req.RequestID <= 0 {
		writeError(w, "Missing request id", http.StatusBadRequest)
		return
	}

	ctx := r.Context()

	rec, err := h.requestRepo.GetRequestByID(ctx, req.RequestID)
	if err != nil {
		logger.Error("get request", "err", err)
		writeError(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	if rec == nil {
		writeError(w, "Request not found", http.StatusNotFound)
		return
	}

	if req.EmployeeID != nil {
		employee, err := h.employeeRepo.GetEmployeeByUserID(ctx, *req.EmployeeID)
		if err != nil {
			logger.Error("get employee", "err", err)
			writeError(w, "Internal server error", http.StatusInternalServerError)
			return
		}
		if employee == nil {
			writeError(w, "Employee not found", http.StatusNotFound)
			return
		}
		if err := h.requestRepo.AssignEmployee(ctx, req.RequestID, *req.EmployeeID); err != nil {
			logger.Error("assign employee", "err", err)
			writeError(w, "Internal server error", http.StatusInternalServerError)
			return
		}
	}

	if req.NewStatus == string(models.StatusCompleted) {
		if err := h.requestRepo.SetRequestStatus(ctx, req.RequestID, models.StatusCompleted); err != nil {
			logger.Error("set status", "err", err)
			writeError(w, "Internal server error", http.StatusInternalServerError)
			return
		}
	}

	writeJSON(w, map[string]string{"message": "Request updated successfully"}, http.StatusOK)
}
