package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/condohub/condohub/pkg/models"
)

func (r *SQLiteRepo) CreateRequest(ctx context.Context, req *models.Request) (int64, error) {
	if req == nil {
		return 0, fmt.Errorf("request is nil")
	}
	if req.IssuedAt == 0 {
		req.IssuedAt = now()
	}
	if req.Status == "" {
		req.Status = models.StatusOpen
	}

	res, err := r.conn.Exec(ctx, `INSERT INTO requests (title, description, priority, issued_at, condo_owner_id, employee_id, date_needed, property_id, status) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		req.Title, req.Description, string(req.Priority), req.IssuedAt, req.CondoOwnerID, req.EmployeeID, req.DateNeeded, req.PropertyID, string(req.Status))
	if err != nil {
		return 0, err
	}

	return res.LastInsertId()
}

func (r *SQLiteRepo) GetRequestByID(ctx context.Context, id int64) (*models.Request, error) {
	row := r.conn.QueryRow(ctx, `SELECT id, title, description, priority, issued_at, condo_owner_id, employee_id, date_needed, property_id, status FROM requests WHERE id = ?`, id)
	var req models.Request
	var desc sql.NullString
	var employeeID, dateNeeded sql.NullInt64
	var priority, status string
	if err := row.Scan(&req.ID, &req.Title, &desc, &priority, &req.IssuedAt, &req.CondoOwnerID, &employeeID, &dateNeeded, &req.PropertyID, &status); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}

		return nil, err
	}
	req.Description = desc.String
	req.Priority = models.Priority(priority)
	req.Status = models.RequestStatus(status)
	if employeeID.Valid {
		req.EmployeeID = &employeeID.Int64
	}
	if dateNeeded.Valid {
		req.DateNeeded = &dateNeeded.Int64
	}

	return &req, nil
}

const requestWithAddressCols = `r.id, r.title, r.description, r.priority, r.issued_at, r.condo_owner_id, r.employee_id, r.date_needed, r.property_id, r.status, p.address`

// ListRequestsByCompany returns every request raised against a property owned
// by the given company, with the property address attached.
func (r *SQLiteRepo) ListRequestsByCompany(ctx context.Context, companyID int64) ([]models.RequestWithAddress, error) {
	rows, err := r.conn.Query(ctx, `SELECT `+requestWithAddressCols+` FROM requests r JOIN properties p ON r.property_id = p.id WHERE p.company_id = ? ORDER BY r.id`, companyID)
	if err != nil {
		return nil, err
	}

	return scanRequestsWithAddress(rows)
}

func (r *SQLiteRepo) ListRequestsByOwner(ctx context.Context, ownerID int64) ([]models.RequestWithAddress, error) {
	rows, err := r.conn.Query(ctx, `SELECT `+requestWithAddressCols+` FROM requests r JOIN properties p ON r.property_id = p.id WHERE r.condo_owner_id = ? ORDER BY r.id`, ownerID)
	if err != nil {
		return nil, err
	}

	return scanRequestsWithAddress(rows)
}

func (r *SQLiteRepo) ListRequestsByEmployee(ctx context.Context, employeeID int64) ([]models.RequestWithAddress, error) {
	rows, err := r.conn.Query(ctx, `SELECT `+requestWithAddressCols+` FROM requests r JOIN properties p ON r.property_id = p.id WHERE r.employee_id = ? ORDER BY r.id`, employeeID)
	if err != nil {
		return nil, err
	}

	return scanRequestsWithAddress(rows)
}

func scanRequestsWithAddress(rows *sql.Rows) ([]models.RequestWithAddress, error) {
	defer rows.Close()

	var out []models.RequestWithAddress
	for rows.Next() {
		var req models.RequestWithAddress
		var desc sql.NullString
		var employeeID, dateNeeded sql.NullInt64
		var priority, status string
		if err := rows.Scan(&req.ID, &req.Title, &desc, &priority, &req.IssuedAt, &req.CondoOwnerID, &employeeID, &dateNeeded, &req.PropertyID, &status, &req.Address); err != nil {
			return nil, err
		}
		req.Description = desc.String
		req.Priority = models.Priority(priority)
		req.Status = models.RequestStatus(status)
		if employeeID.Valid {
			req.EmployeeID = &employeeID.Int64
		}
		if dateNeeded.Valid {
			req.DateNeeded = &dateNeeded.Int64
		}
		out = append(out, req)
	}

	return out, rows.Err()
}

func (r *SQLiteRepo) AssignEmployee(ctx context.Context, requestID, employeeID int64) error {
	_, err := r.conn.Exec(ctx, `UPDATE requests SET employee_id = ?, status = ? WHERE id = ?`, employeeID, string(models.StatusInProgress), requestID)
	return err
}

func (r *SQLiteRepo) SetRequestStatus(ctx context.Context, requestID int64, status models.RequestStatus) error {
	_, err := r.conn.Exec(ctx, `UPDATE requests SET status = ? WHERE id = ?`, string(status), requestID)
	return err
}
