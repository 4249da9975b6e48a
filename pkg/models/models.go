package models

// Domain models matching the database schema in db/migrations/0001_init.sql

// Role determines which operations a caller is permitted to perform.
type Role string

const (
	RolePublicUser Role = "publicUser"
	RoleCompany    Role = "company"
	RoleEmployee   Role = "employee"
)

// ParseRole maps a raw string onto a known role.
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RolePublicUser, RoleCompany, RoleEmployee:
		return Role(s), true
	}
	return "", false
}

// Priority of a maintenance request.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// ParsePriority maps a raw string onto a priority. Unrecognized input falls
// back to low rather than failing.
func ParsePriority(s string) Priority {
	switch Priority(s) {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return Priority(s)
	}
	return PriorityLow
}

// RequestStatus of a maintenance request. A new request starts as open,
// enters in_progress via employee assignment only, and may be completed from
// any state.
type RequestStatus string

const (
	StatusOpen       RequestStatus = "open"
	StatusInProgress RequestStatus = "in_progress"
	StatusCompleted  RequestStatus = "completed"
)

type User struct {
	ID           int64  `json:"id" db:"id"`
	Email        string `json:"email" db:"email"`
	PasswordHash string `json:"-" db:"password_hash"`
	Role         Role   `json:"role" db:"role"`
	Created      int64  `json:"created" db:"created"`
}

type PublicProfile struct {
	ID              int64  `json:"id" db:"id"`
	UserID          int64  `json:"user_id" db:"user_id"`
	FirstName       string `json:"first_name" db:"first_name"`
	LastName        string `json:"last_name" db:"last_name"`
	PhoneNumber     string `json:"phone_number" db:"phone_number"`
	SubRole         string `json:"sub_role,omitempty" db:"sub_role"`
	ProfileImageKey string `json:"profile_image_key,omitempty" db:"profile_image_key"`
}

type CompanyProfile struct {
	ID          int64  `json:"id" db:"id"`
	UserID      int64  `json:"user_id" db:"user_id"`
	CompanyName string `json:"company_name" db:"company_name"`
	PhoneNumber string `json:"phone_number" db:"phone_number"`
	UnitCount   int64  `json:"unit_count" db:"unit_count"`
}

type Employee struct {
	ID        int64  `json:"id" db:"id"`
	UserID    int64  `json:"user_id" db:"user_id"`
	CompanyID int64  `json:"company_id" db:"company_id"`
	Name      string `json:"name" db:"name"`
	JobTitle  string `json:"job_title,omitempty" db:"job_title"`
}

type Property struct {
	ID        int64  `json:"id" db:"id"`
	Address   string `json:"address" db:"address"`
	CompanyID int64  `json:"company_id" db:"company_id"`
}

type Request struct {
	ID           int64         `json:"id" db:"id"`
	Title        string        `json:"title" db:"title"`
	Description  string        `json:"description" db:"description"`
	Priority     Priority      `json:"priority" db:"priority"`
	IssuedAt     int64         `json:"issued_at" db:"issued_at"`
	CondoOwnerID int64         `json:"condo_owner_id" db:"condo_owner_id"`
	EmployeeID   *int64        `json:"employee_id,omitempty" db:"employee_id"`
	DateNeeded   *int64        `json:"date_needed,omitempty" db:"date_needed"`
	PropertyID   int64         `json:"property_id" db:"property_id"`
	Status       RequestStatus `json:"status" db:"status"`
}

// RequestWithAddress is a request joined with its property address, the shape
// the listing endpoints return.
type RequestWithAddress struct {
	Request
	Address string `json:"address" db:"address"`
}

type File struct {
	ID          int64  `json:"id" db:"id"`
	FileKey     string `json:"file_key" db:"file_key"`
	FileType    string `json:"file_type" db:"file_type"`
	CompanyID   int64  `json:"company_id" db:"company_id"`
	PropertyID  int64  `json:"property_id" db:"property_id"`
	Description string `json:"description" db:"description"`
	SignedURL   string `json:"signed_url" db:"signed_url"`
	Created     int64  `json:"created" db:"created"`
}
