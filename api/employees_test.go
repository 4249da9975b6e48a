package api_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/condohub/condohub/api"
	"github.com/condohub/condohub/pkg/models"
	"github.com/condohub/condohub/pkg/repository/mock"
)

func TestAddEmployee(t *testing.T) {
	companyClaims := &api.Claims{ID: 1, Role: models.RoleCompany}

	tests := []struct {
		name       string
		claims     *api.Claims
		body       any
		wantStatus int
		check      func(t *testing.T, m *mock.Mocks)
	}{
		{
			name:       "NotCompany",
			claims:     &api.Claims{ID: 10, Role: models.RolePublicUser},
			body:       map[string]string{"email": "sam@example.com", "password": "pw", "name": "Sam"},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "MissingFields",
			claims:     companyClaims,
			body:       map[string]string{"email": "sam@example.com"},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "Success",
			claims:     companyClaims,
			body:       map[string]string{"email": "sam@example.com", "password": "pw", "name": "Sam", "jobTitle": "plumber"},
			wantStatus: http.StatusOK,
			check: func(t *testing.T, m *mock.Mocks) {
				if m.Users.Stored == nil || m.Users.Stored.Role != models.RoleEmployee {
					t.Fatalf("employee user not created: %#v", m.Users.Stored)
				}
				if len(m.Employees.Stored) != 1 || m.Employees.Stored[0].CompanyID != 1 {
					t.Fatalf("employee row not linked to the calling company: %#v", m.Employees.Stored)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mocks := mock.NewMocks()
			h := api.NewEmployeesHandler(mocks.Users, mocks.Employees)

			b, _ := json.Marshal(tt.body)
			req := httptest.NewRequest(http.MethodPost, "/v1/employees", bytes.NewReader(b))
			req = withClaims(req, tt.claims)
			w := httptest.NewRecorder()
			h.AddEmployee(w, req)

			if w.Result().StatusCode != tt.wantStatus {
				body, _ := io.ReadAll(w.Result().Body)
				t.Fatalf("expected status %d got %d body=%s", tt.wantStatus, w.Result().StatusCode, string(body))
			}
			if tt.check != nil {
				tt.check(t, mocks)
			}
		})
	}
}

func TestListEmployees(t *testing.T) {
	mocks := mock.NewMocks()
	mocks.Employees.Stored = []models.Employee{
		{ID: 1, UserID: 3, CompanyID: 1, Name: "Sam"},
		{ID: 2, UserID: 4, CompanyID: 2, Name: "Robin"},
	}
	h := api.NewEmployeesHandler(mocks.Users, mocks.Employees)

	req := withClaims(httptest.NewRequest(http.MethodGet, "/v1/employees", nil),
		&api.Claims{ID: 1, Role: models.RoleCompany})
	w := httptest.NewRecorder()
	h.ListEmployees(w, req)

	if w.Result().StatusCode != http.StatusOK {
		t.Fatalf("expected 200 got %d", w.Result().StatusCode)
	}
	var got []models.Employee
	if err := json.NewDecoder(w.Result().Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got) != 1 || got[0].Name != "Sam" {
		t.Fatalf("expected only own employees, got %#v", got)
	}
}
