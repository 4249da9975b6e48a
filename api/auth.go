package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/condohub/condohub/pkg/models"
	"github.com/condohub/condohub/pkg/repository"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

type AuthHandler struct {
	userRepo      repository.UserRepo
	publicRepo    repository.PublicUserRepo
	companyRepo   repository.CompanyRepo
	jwtSecret     string
	tokenDuration time.Duration
}

// NewAuthHandler creates a new AuthHandler with required dependencies.
func NewAuthHandler(ur repository.UserRepo, pr repository.PublicUserRepo, cr repository.CompanyRepo, jwtSecret string, tokenDuration time.Duration) *AuthHandler {
	return &AuthHandler{userRepo: ur, publicRepo: pr, companyRepo: cr, jwtSecret: jwtSecret, tokenDuration: tokenDuration}
}

type signupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`

	// public user profile fields
	FirstName   string `json:"firstName,omitempty"`
	LastName    string `json:"lastName,omitempty"`
	PhoneNumber string `json:"phoneNumber,omitempty"`

	// company profile fields
	CompanyName string `json:"companyName,omitempty"`
	UnitCount   int64  `json:"unitCount,omitempty"`
}

type signinRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authResponse struct {
	Token string `json:"token"`
}

func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "Invalid request", http.StatusBadRequest)
		return
	}
	if req.Email == "" || req.Password == "" || req.Role == "" {
		writeError(w, "Missing fields", http.StatusBadRequest)
		return
	}

	role, ok := models.ParseRole(req.Role)
	if !ok || role == models.RoleEmployee {
		// employee accounts are provisioned by their company, not self-signup
		writeError(w, "Invalid role", http.StatusBadRequest)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		writeError(w, "Error hashing password", http.StatusInternalServerError)
		return
	}

	ctx := r.Context()

	user := models.User{
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         role,
	}

	userID, err := h.userRepo.CreateUser(ctx, &user)
	if err != nil {
		writeError(w, "Error creating user", http.StatusInternalServerError)
		return
	}

	// Create the role-matching profile row linked to the new user id
	switch role {
	case models.RolePublicUser:
		profile := models.PublicProfile{
			UserID:      userID,
			FirstName:   req.FirstName,
			LastName:    req.LastName,
			PhoneNumber: req.PhoneNumber,
		}
		if _, err := h.publicRepo.CreatePublicProfile(ctx, &profile); err != nil {
			writeError(w, "Error creating user profile", http.StatusInternalServerError)
			return
		}
	case models.RoleCompany:
		profile := models.CompanyProfile{
			UserID:      userID,
			CompanyName: req.CompanyName,
			PhoneNumber: req.PhoneNumber,
			UnitCount:   req.UnitCount,
		}
		if _, err := h.companyRepo.CreateCompanyProfile(ctx, &profile); err != nil {
			writeError(w, "Error creating company profile", http.StatusInternalServerError)
			return
		}
	}

	tokenStr, err := signToken(h.jwtSecret, h.tokenDuration, userID, role, req.Email)
	if err != nil {
		writeError(w, "Error signing token", http.StatusInternalServerError)
		return
	}

	json.NewEncoder(w).Encode(authResponse{Token: tokenStr})
}

func (h *AuthHandler) Signin(w http.ResponseWriter, r *http.Request) {
	var req signinRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "Invalid request", http.StatusBadRequest)
		return
	}
	if req.Email == "" || req.Password == "" {
		writeError(w, "Missing fields", http.StatusBadRequest)
		return
	}

	ctx := r.Context()

	user, err := h.userRepo.GetUserByEmail(ctx, req.Email)
	if err != nil || user == nil {
		writeError(w, "Credentials not found", http.StatusUnauthorized)
		return
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		writeError(w, "Credentials not found", http.StatusUnauthorized)
		return
	}

	tokenStr, err := signToken(h.jwtSecret, h.tokenDuration, user.ID, user.Role, user.Email)
	if err != nil {
		writeError(w, "Error signing token", http.StatusInternalServerError)
		return
	}

	json.NewEncoder(w).Encode(authResponse{Token: tokenStr})
}

func (h *AuthHandler) Signout(w http.ResponseWriter, r *http.Request) {
	// For stateless JWT, signout is client-side (just delete token)
	writeJSON(w, map[string]string{"message": "signed out"}, http.StatusOK)
}

// signToken issues an HS256 token carrying the identity under a `data` claim,
// the layout the frontend already consumes.
func signToken(secret string, d time.Duration, id int64, role models.Role, email string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"data": map[string]any{
			"id":    id,
			"role":  string(role),
			"email": email,
		},
		"exp": time.Now().Add(d).Unix(),
	})
	return token.SignedString([]byte(secret))
}
