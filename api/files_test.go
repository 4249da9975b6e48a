package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/condohub/condohub/api"
	"github.com/condohub/condohub/pkg/models"
	"github.com/condohub/condohub/pkg/repository/mock"
)

// fakeStore is an in-memory ObjectStore standing in for S3.
type fakeStore struct {
	Objects   map[string][]byte
	Deleted   []string
	UploadErr error
	SignErr   error
}

func newFakeStore() *fakeStore {
	return &fakeStore{Objects: map[string][]byte{}}
}

func (f *fakeStore) Upload(ctx context.Context, key string, body io.Reader, contentType string) error {
	if f.UploadErr != nil {
		return f.UploadErr
	}
	b, err := io.ReadAll(body)
	if err != nil {
		return err
	}
	f.Objects[key] = b
	return nil
}

func (f *fakeStore) SignedURL(ctx context.Context, key string, ttl time.Duration) (string, error) {
	if f.SignErr != nil {
		return "", f.SignErr
	}
	return "https://signed.example/" + key, nil
}

func (f *fakeStore) Delete(ctx context.Context, key string) error {
	f.Deleted = append(f.Deleted, key)
	delete(f.Objects, key)
	return nil
}

func multipartUpload(t *testing.T, filename, content string, fields map[string]string) *http.Request {
	t.Helper()
	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)
	if filename != "" {
		fw, err := mw.CreateFormFile("file", filename)
		if err != nil {
			t.Fatalf("create form file: %v", err)
		}
		if _, err := fw.Write([]byte(content)); err != nil {
			t.Fatalf("write form file: %v", err)
		}
	}
	for k, v := range fields {
		if err := mw.WriteField(k, v); err != nil {
			t.Fatalf("write field: %v", err)
		}
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("close multipart writer: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/v1/files", body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestUploadFile(t *testing.T) {
	companyClaims := &api.Claims{ID: 1, Role: models.RoleCompany, Email: "mgmt@example.com"}

	t.Run("NotCompany", func(t *testing.T) {
		mocks := mock.NewMocks()
		store := newFakeStore()
		h := api.NewFilesHandler(mocks.Files, store, time.Hour)

		req := multipartUpload(t, "report.pdf", "pdf bytes", map[string]string{"property_id": "5"})
		req = withClaims(req, &api.Claims{ID: 10, Role: models.RolePublicUser})
		w := httptest.NewRecorder()
		h.UploadFile(w, req)

		if w.Result().StatusCode != http.StatusUnauthorized {
			t.Fatalf("expected 401 got %d", w.Result().StatusCode)
		}
		if len(store.Objects) != 0 {
			t.Fatalf("nothing may be uploaded on a rejected call")
		}
	})

	t.Run("NoFile", func(t *testing.T) {
		mocks := mock.NewMocks()
		h := api.NewFilesHandler(mocks.Files, newFakeStore(), time.Hour)

		req := multipartUpload(t, "", "", map[string]string{"property_id": "5"})
		req = withClaims(req, companyClaims)
		w := httptest.NewRecorder()
		h.UploadFile(w, req)

		if w.Result().StatusCode != http.StatusBadRequest {
			t.Fatalf("expected 400 got %d", w.Result().StatusCode)
		}
	})

	t.Run("MissingPropertyID", func(t *testing.T) {
		mocks := mock.NewMocks()
		h := api.NewFilesHandler(mocks.Files, newFakeStore(), time.Hour)

		req := multipartUpload(t, "report.pdf", "pdf bytes", nil)
		req = withClaims(req, companyClaims)
		w := httptest.NewRecorder()
		h.UploadFile(w, req)

		if w.Result().StatusCode != http.StatusBadRequest {
			t.Fatalf("expected 400 got %d", w.Result().StatusCode)
		}
	})

	t.Run("Success", func(t *testing.T) {
		mocks := mock.NewMocks()
		store := newFakeStore()
		h := api.NewFilesHandler(mocks.Files, store, time.Hour)

		req := multipartUpload(t, "report.pdf", "pdf bytes", map[string]string{
			"property_id": "5",
			"file_type":   "financial",
			"description": "annual report",
		})
		req = withClaims(req, companyClaims)
		w := httptest.NewRecorder()
		h.UploadFile(w, req)

		res := w.Result()
		body, _ := io.ReadAll(res.Body)
		if res.StatusCode != http.StatusOK {
			t.Fatalf("expected 200 got %d body=%s", res.StatusCode, string(body))
		}

		wantKey := "property-files/5/report.pdf"
		if got, ok := store.Objects[wantKey]; !ok || string(got) != "pdf bytes" {
			t.Fatalf("object not stored under %s: %v", wantKey, store.Objects)
		}

		var resp struct {
			Message   string      `json:"message"`
			Data      models.File `json:"data"`
			SignedURL string      `json:"signedUrl"`
		}
		if err := json.Unmarshal(body, &resp); err != nil {
			t.Fatalf("unmarshal response: %v", err)
		}
		if resp.Data.FileKey != wantKey {
			t.Fatalf("expected file_key %s got %s", wantKey, resp.Data.FileKey)
		}
		if resp.Data.CompanyID != 1 || resp.Data.PropertyID != 5 {
			t.Fatalf("wrong metadata row: %#v", resp.Data)
		}
		if resp.Data.FileType != "financial" || resp.Data.Description != "annual report" {
			t.Fatalf("wrong metadata row: %#v", resp.Data)
		}
		if resp.SignedURL != "https://signed.example/"+wantKey {
			t.Fatalf("unexpected signed url %s", resp.SignedURL)
		}
		if len(mocks.Files.Stored) != 1 {
			t.Fatalf("metadata row not persisted")
		}
	})

	t.Run("MetadataFailureCompensates", func(t *testing.T) {
		mocks := mock.NewMocks()
		mocks.Files.CreateErr = fmt.Errorf("db gone")
		store := newFakeStore()
		h := api.NewFilesHandler(mocks.Files, store, time.Hour)

		req := multipartUpload(t, "report.pdf", "pdf bytes", map[string]string{"property_id": "5"})
		req = withClaims(req, companyClaims)
		w := httptest.NewRecorder()
		h.UploadFile(w, req)

		if w.Result().StatusCode != http.StatusInternalServerError {
			t.Fatalf("expected 500 got %d", w.Result().StatusCode)
		}
		wantKey := "property-files/5/report.pdf"
		if len(store.Deleted) != 1 || store.Deleted[0] != wantKey {
			t.Fatalf("uploaded object must be deleted on metadata failure, deleted=%v", store.Deleted)
		}
	})

	t.Run("SignFailureCompensates", func(t *testing.T) {
		mocks := mock.NewMocks()
		store := newFakeStore()
		store.SignErr = fmt.Errorf("presign broken")
		h := api.NewFilesHandler(mocks.Files, store, time.Hour)

		req := multipartUpload(t, "report.pdf", "pdf bytes", map[string]string{"property_id": "5"})
		req = withClaims(req, companyClaims)
		w := httptest.NewRecorder()
		h.UploadFile(w, req)

		if w.Result().StatusCode != http.StatusInternalServerError {
			t.Fatalf("expected 500 got %d", w.Result().StatusCode)
		}
		if len(store.Deleted) != 1 {
			t.Fatalf("uploaded object must be deleted on sign failure, deleted=%v", store.Deleted)
		}
		if len(mocks.Files.Stored) != 0 {
			t.Fatalf("no metadata may be persisted on sign failure")
		}
	})
}

func TestListFiles(t *testing.T) {
	seed := func(m *mock.Mocks) {
		m.Files.Stored = []models.File{
			{ID: 1, FileKey: "property-files/5/a.pdf", CompanyID: 1, PropertyID: 5, SignedURL: "https://stale.example/a"},
			{ID: 2, FileKey: "property-files/5/b.pdf", CompanyID: 2, PropertyID: 5, SignedURL: "https://stale.example/b"},
			{ID: 3, FileKey: "property-files/6/c.pdf", CompanyID: 1, PropertyID: 6, SignedURL: "https://stale.example/c"},
		}
	}

	tests := []struct {
		name       string
		claims     *api.Claims
		query      string
		wantStatus int
		wantKeys   []string
	}{
		{
			name:       "BadPropertyID",
			claims:     &api.Claims{ID: 1, Role: models.RoleCompany},
			query:      "?property_id=abc",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "EmployeeRejected",
			claims:     &api.Claims{ID: 7, Role: models.RoleEmployee},
			query:      "?property_id=5",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "CompanySeesOnlyOwnRows",
			claims:     &api.Claims{ID: 1, Role: models.RoleCompany},
			query:      "?property_id=5",
			wantStatus: http.StatusOK,
			wantKeys:   []string{"property-files/5/a.pdf"},
		},
		{
			name:       "PublicUserSeesAllRowsForProperty",
			claims:     &api.Claims{ID: 10, Role: models.RolePublicUser},
			query:      "?property_id=5",
			wantStatus: http.StatusOK,
			wantKeys:   []string{"property-files/5/a.pdf", "property-files/5/b.pdf"},
		},
		{
			name:       "NoFilesIsNotFound",
			claims:     &api.Claims{ID: 1, Role: models.RoleCompany},
			query:      "?property_id=99",
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mocks := mock.NewMocks()
			seed(mocks)
			h := api.NewFilesHandler(mocks.Files, newFakeStore(), time.Hour)

			req := httptest.NewRequest(http.MethodGet, "/v1/files"+tt.query, nil)
			req = withClaims(req, tt.claims)
			w := httptest.NewRecorder()
			h.ListFiles(w, req)

			if w.Result().StatusCode != tt.wantStatus {
				t.Fatalf("expected status %d got %d", tt.wantStatus, w.Result().StatusCode)
			}
			if tt.wantStatus != http.StatusOK {
				return
			}

			var resp struct {
				Files []models.File `json:"files"`
			}
			if err := json.NewDecoder(w.Result().Body).Decode(&resp); err != nil {
				t.Fatalf("decode response: %v", err)
			}
			if len(resp.Files) != len(tt.wantKeys) {
				t.Fatalf("expected %d files got %d", len(tt.wantKeys), len(resp.Files))
			}
			for i, key := range tt.wantKeys {
				if resp.Files[i].FileKey != key {
					t.Fatalf("expected key %s got %s", key, resp.Files[i].FileKey)
				}
				// stored stale URLs are replaced with a fresh one per read
				if resp.Files[i].SignedURL != "https://signed.example/"+key {
					t.Fatalf("signed url not refreshed: %s", resp.Files[i].SignedURL)
				}
			}
		})
	}
}
