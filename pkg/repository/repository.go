package repository

import (
	"context"

	"github.com/condohub/condohub/pkg/models"
)

// Repository interfaces for domain entities. These are the public contracts
// consumers should depend on; concrete implementations live under internal/.

type UserRepo interface {
	CreateUser(ctx context.Context, u *models.User) (int64, error)
	GetUserByID(ctx context.Context, id int64) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
}

type PublicUserRepo interface {
	CreatePublicProfile(ctx context.Context, p *models.PublicProfile) (int64, error)
	GetPublicProfile(ctx context.Context, userID int64) (*models.PublicProfile, error)
}

type CompanyRepo interface {
	CreateCompanyProfile(ctx context.Context, c *models.CompanyProfile) (int64, error)
	GetCompanyProfile(ctx context.Context, userID int64) (*models.CompanyProfile, error)
}

type EmployeeRepo interface {
	CreateEmployee(ctx context.Context, e *models.Employee) (int64, error)
	GetEmployeeByUserID(ctx context.Context, userID int64) (*models.Employee, error)
	ListEmployeesByCompany(ctx context.Context, companyID int64) ([]models.Employee, error)
}

type PropertyRepo interface {
	CreateProperty(ctx context.Context, p *models.Property) (int64, error)
	GetPropertyByID(ctx context.Context, id int64) (*models.Property, error)
	ListPropertiesByCompany(ctx context.Context, companyID int64) ([]models.Property, error)
}

type RequestRepo interface {
	CreateRequest(ctx context.Context, r *models.Request) (int64, error)
	GetRequestByID(ctx context.Context, id int64) (*models.Request, error)
	ListRequestsByCompany(ctx context.Context, companyID int64) ([]models.RequestWithAddress, error)
	ListRequestsByOwner(ctx context.Context, ownerID int64) ([]models.RequestWithAddress, error)
	ListRequestsByEmployee(ctx context.Context, employeeID int64) ([]models.RequestWithAddress, error)
	// AssignEmployee sets the assignee and moves the request to in_progress.
	AssignEmployee(ctx context.Context, requestID, employeeID int64) error
	SetRequestStatus(ctx context.Context, requestID int64, status models.RequestStatus) error
}

type FileRepo interface {
	CreateFile(ctx context.Context, f *models.File) (int64, error)
	ListFilesByProperty(ctx context.Context, propertyID int64) ([]models.File, error)
	ListFilesByPropertyAndCompany(ctx context.Context, propertyID, companyID int64) ([]models.File, error)
}
