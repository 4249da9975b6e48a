package api

import (
	"net/http"

	"github.com/condohub/condohub/pkg/models"
	"github.com/condohub/condohub/pkg/repository"
)

type ProfileHandler struct {
	publicRepo  repository.PublicUserRepo
	companyRepo repository.CompanyRepo
}

func NewProfileHandler(pr repository.PublicUserRepo, cr repository.CompanyRepo) *ProfileHandler {
	return &ProfileHandler{publicRepo: pr, companyRepo: cr}
}

// Each role gets its own response shape; neither leaks the other's fields.

type companyProfileResponse struct {
	Email       string `json:"email"`
	CompanyName string `json:"companyName"`
	PhoneNumber string `json:"phoneNumber"`
	UnitCount   int64  `json:"unitCount"`
}

type publicProfileResponse struct {
	Email           string `json:"email"`
	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName"`
	PhoneNumber     string `json:"phoneNumber"`
	Role            string `json:"role"`
	SubRole         string `json:"subRole,omitempty"`
	ProfileImageKey string `json:"profileImageKey,omitempty"`
}

func (h *ProfileHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	claims, ok := ClaimsFrom(r)
	if !ok {
		writeError(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	ctx := r.Context()

	switch claims.Role {
	case models.RoleCompany:
		company, err := h.companyRepo.GetCompanyProfile(ctx, claims.ID)
		if err != nil {
			logger.Error("get company profile", "err", err)
			writeError(w, "Unexpected error", http.StatusInternalServerError)
			return
		}
		if company == nil {
			writeError(w, "Profile not found", http.StatusNotFound)
			return
		}
		writeJSON(w, companyProfileResponse{
			Email:       claims.Email,
			CompanyName: company.CompanyName,
			PhoneNumber: company.PhoneNumber,
			UnitCount:   company.UnitCount,
		}, http.StatusOK)
	case models.RolePublicUser:
		user, err := h.publicRepo.GetPublicProfile(ctx, claims.ID)
		if err != nil {
			logger.Error("get public profile", "err", err)
			writeError(w, "Unexpected error", http.StatusInternalServerError)
			return
		}
		if user == nil {
			writeError(w, "Profile not found", http.StatusNotFound)
			return
		}
		writeJSON(w, publicProfileResponse{
			Email:           claims.Email,
			FirstName:       user.FirstName,
			LastName:        user.LastName,
			PhoneNumber:     user.PhoneNumber,
			Role:            string(claims.Role),
			SubRole:         user.SubRole,
			ProfileImageKey: user.ProfileImageKey,
		}, http.StatusOK)
	default:
		writeError(w, "Unauthorized", http.StatusUnauthorized)
	}
}
