package api

import (
	"encoding/json"
	"net/http"

	"github.com/condohub/condohub/pkg/models"
	"github.com/condohub/condohub/pkg/repository"
	"golang.org/x/crypto/bcrypt"
)

type EmployeesHandler struct {
	userRepo     repository.UserRepo
	employeeRepo repository.EmployeeRepo
}

func NewEmployeesHandler(ur repository.UserRepo, er repository.EmployeeRepo) *EmployeesHandler {
	return &EmployeesHandler{userRepo: ur, employeeRepo: er}
}

type addEmployeeRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	JobTitle string `json:"jobTitle,omitempty"`
}

type addEmployeeResponse struct {
	UserID int64 `json:"userId"`
}

// AddEmployee provisions a staff account owned by the calling company.
func (h *EmployeesHandler) AddEmployee(w http.ResponseWriter, r *http.Request) {
	claims, ok := ClaimsFrom(r)
	if !ok || claims.Role != models.RoleCompany {
		writeError(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req addEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "Invalid request", http.StatusBadRequest)
		return
	}
	if req.Email == "" || req.Password == "" || req.Name == "" {
		writeError(w, "Missing fields", http.StatusBadRequest)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		writeError(w, "Error hashing password", http.StatusInternalServerError)
		return
	}

	ctx := r.Context()

	userID, err := h.userRepo.CreateUser(ctx, &models.User{
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         models.RoleEmployee,
	})
	if err != nil {
		writeError(w, "Error creating user", http.StatusInternalServerError)
		return
	}

	if _, err := h.employeeRepo.CreateEmployee(ctx, &models.Employee{
		UserID:    userID,
		CompanyID: claims.ID,
		Name:      req.Name,
		JobTitle:  req.JobTitle,
	}); err != nil {
		writeError(w, "Error creating employee", http.StatusInternalServerError)
		return
	}

	writeJSON(w, addEmployeeResponse{UserID: userID}, http.StatusOK)
}

func (h *EmployeesHandler) ListEmployees(w http.ResponseWriter, r *http.Request) {
	claims, ok := ClaimsFrom(r)
	if !ok || claims.Role != models.RoleCompany {
		writeError(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	list, err := h.employeeRepo.ListEmployeesByCompany(r.Context(), claims.ID)
	if err != nil {
		logger.Error("list employees", "err", err)
		writeError(w, "Failed to list employees", http.StatusInternalServerError)
		return
	}
	if list == nil {
		list = []models.Employee{}
	}

	writeJSON(w, list, http.StatusOK)
}
