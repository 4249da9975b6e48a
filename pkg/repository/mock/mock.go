package mock

import (
	"context"

	"github.com/condohub/condohub/pkg/models"
)

// Test helpers and mocks
type Mocks struct {
	Users      *mockUserRepo
	Publics    *mockPublicUserRepo
	Companies  *mockCompanyRepo
	Employees  *mockEmployeeRepo
	Properties *mockPropertyRepo
	Requests   *mockRequestRepo
	Files      *mockFileRepo
}

func NewMocks() *Mocks {
	return &Mocks{
		Users:      &mockUserRepo{},
		Publics:    &mockPublicUserRepo{},
		Companies:  &mockCompanyRepo{},
		Employees:  &mockEmployeeRepo{},
		Properties: &mockPropertyRepo{Stored: map[int64]*models.Property{}},
		Requests:   &mockRequestRepo{Stored: map[int64]*models.Request{}},
		Files:      &mockFileRepo{},
	}
}

type mockUserRepo struct {
	Stored    *models.User
	CreateErr error
}

func (m *mockUserRepo) CreateUser(ctx context.Context, u *models.User) (int64, error) {
	if m.CreateErr != nil {
		return 0, m.CreateErr
	}
	m.Stored = &models.User{ID: 1, Email: u.Email, PasswordHash: u.PasswordHash, Role: u.Role}
	return 1, nil
}

func (m *mockUserRepo) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	if m.Stored != nil && m.Stored.ID == id {
		return m.Stored, nil
	}
	return nil, nil
}

func (m *mockUserRepo) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	if m.Stored != nil && m.Stored.Email == email {
		return m.Stored, nil
	}
	return nil, nil
}

type mockPublicUserRepo struct {
	Stored    *models.PublicProfile
	CreateErr error
}

func (m *mockPublicUserRepo) CreatePublicProfile(ctx context.Context, p *models.PublicProfile) (int64, error) {
	if m.CreateErr != nil {
		return 0, m.CreateErr
	}
	m.Stored = p
	return 1, nil
}

func (m *mockPublicUserRepo) GetPublicProfile(ctx context.Context, userID int64) (*models.PublicProfile, error) {
	if m.Stored != nil && m.Stored.UserID == userID {
		return m.Stored, nil
	}
	return nil, nil
}

type mockCompanyRepo struct {
	Stored    *models.CompanyProfile
	CreateErr error
}

func (m *mockCompanyRepo) CreateCompanyProfile(ctx context.Context, c *models.CompanyProfile) (int64, error) {
	if m.CreateErr != nil {
		return 0, m.CreateErr
	}
	m.Stored = c
	return 1, nil
}

func (m *mockCompanyRepo) GetCompanyProfile(ctx context.Context, userID int64) (*models.CompanyProfile, error) {
	if m.Stored != nil && m.Stored.UserID == userID {
		return m.Stored, nil
	}
	return nil, nil
}

type mockEmployeeRepo struct {
	Stored    []models.Employee
	CreateErr error
	GetErr    error
}

func (m *mockEmployeeRepo) CreateEmployee(ctx context.Context, e *models.Employee) (int64, error) {
	if m.CreateErr != nil {
		return 0, m.CreateErr
	}
	id := int64(len(m.Stored) + 1)
	stored := *e
	stored.ID = id
	m.Stored = append(m.Stored, stored)
	return id, nil
}

func (m *mockEmployeeRepo) GetEmployeeByUserID(ctx context.Context, userID int64) (*models.Employee, error) {
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	for i := range m.Stored {
		if m.Stored[i].UserID == userID {
			return &m.Stored[i], nil
		}
	}
	return nil, nil
}

func (m *mockEmployeeRepo) ListEmployeesByCompany(ctx context.Context, companyID int64) ([]models.Employee, error) {
	var out []models.Employee
	for _, e := range m.Stored {
		if e.CompanyID == companyID {
			out = append(out, e)
		}
	}
	return out, nil
}

type mockPropertyRepo struct {
	Stored    map[int64]*models.Property
	NextID    int64
	CreateErr error
}

func (m *mockPropertyRepo) CreateProperty(ctx context.Context, p *models.Property) (int64, error) {
	if m.CreateErr != nil {
		return 0, m.CreateErr
	}
	m.NextID++
	stored := *p
	stored.ID = m.NextID
	m.Stored[stored.ID] = &stored
	return stored.ID, nil
}

func (m *mockPropertyRepo) GetPropertyByID(ctx context.Context, id int64) (*models.Property, error) {
	return m.Stored[id], nil
}

func (m *mockPropertyRepo) ListPropertiesByCompany(ctx context.Context, companyID int64) ([]models.Property, error) {
	var out []models.Property
	for _, p := range m.Stored {
		if p.CompanyID == companyID {
			out = append(out, *p)
		}
	}
	return out, nil
}

type mockRequestRepo struct {
	Stored     map[int64]*models.Request
	NextID     int64
	CreateErr  error
	ByCompany  []models.RequestWithAddress
	ByOwner    []models.RequestWithAddress
	ByEmployee []models.RequestWithAddress
}

func (m *mockRequestRepo) CreateRequest(ctx context.Context, r *models.Request) (int64, error) {
	if m.CreateErr != nil {
		return 0, m.CreateErr
	}
	m.NextID++
	stored := *r
	stored.ID = m.NextID
	m.Stored[stored.ID] = &stored
	return stored.ID, nil
}

func (m *mockRequestRepo) GetRequestByID(ctx context.Context, id int64) (*models.Request, error) {
	return m.Stored[id], nil
}

func (m *mockRequestRepo) ListRequestsByCompany(ctx context.Context, companyID int64) ([]models.RequestWithAddress, error) {
	return m.ByCompany, nil
}

func (m *mockRequestRepo) ListRequestsByOwner(ctx context.Context, ownerID int64) ([]models.RequestWithAddress, error) {
	return m.ByOwner, nil
}

func (m *mockRequestRepo) ListRequestsByEmployee(ctx context.Context, employeeID int64) ([]models.RequestWithAddress, error) {
	return m.ByEmployee, nil
}

func (m *mockRequestRepo) AssignEmployee(ctx context.Context, requestID, employeeID int64) error {
	if r, ok := m.Stored[requestID]; ok {
		r.EmployeeID = &employeeID
		r.Status = models.StatusInProgress
	}
	return nil
}

func (m *mockRequestRepo) SetRequestStatus(ctx context.Context, requestID int64, status models.RequestStatus) error {
	if r, ok := m.Stored[requestID]; ok {
		r.Status = status
	}
	return nil
}

type mockFileRepo struct {
	Stored    []models.File
	NextID    int64
	CreateErr error
}

func (m *mockFileRepo) CreateFile(ctx context.Context, f *models.File) (int64, error) {
	if m.CreateErr != nil {
		return 0, m.CreateErr
	}
	m.NextID++
	stored := *f
	stored.ID = m.NextID
	m.Stored = append(m.Stored, stored)
	return stored.ID, nil
}

func (m *mockFileRepo) ListFilesByProperty(ctx context.Context, propertyID int64) ([]models.File, error) {
	var out []models.File
	for _, f := range m.Stored {
		if f.PropertyID == propertyID {
			out = append(out, f)
		}
	}
	return out, nil
}

func (m *mockFileRepo) ListFilesByPropertyAndCompany(ctx context.Context, propertyID, companyID int64) ([]models.File, error) {
	var out []models.File
	for _, f := range m.Stored {
		if f.PropertyID == propertyID && f.CompanyID == companyID {
			out = append(out, f)
		}
	}
	return out, nil
}
