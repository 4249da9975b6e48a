package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/condohub/condohub/pkg/models"
)

func (r *SQLiteRepo) CreateEmployee(ctx context.Context, e *models.Employee) (int64, error) {
	if e == nil {
		return 0, fmt.Errorf("employee is nil")
	}

	res, err := r.conn.Exec(ctx, `INSERT INTO employee_users (user_id, company_id, name, job_title) VALUES (?, ?, ?, ?)`,
		e.UserID, e.CompanyID, e.Name, e.JobTitle)
	if err != nil {
		return 0, err
	}

	return res.LastInsertId()
}

func (r *SQLiteRepo) GetEmployeeByUserID(ctx context.Context, userID int64) (*models.Employee, error) {
	row := r.conn.QueryRow(ctx, `SELECT id, user_id, company_id, name, job_title FROM employee_users WHERE user_id = ?`, userID)
	var e models.Employee
	var name, title sql.NullString
	if err := row.Scan(&e.ID, &e.UserID, &e.CompanyID, &name, &title); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}

		return nil, err
	}
	e.Name = name.String
	e.JobTitle = title.String

	return &e, nil
}

func (r *SQLiteRepo) ListEmployeesByCompany(ctx context.Context, companyID int64) ([]models.Employee, error) {
	rows, err := r.conn.Query(ctx, `SELECT id, user_id, company_id, name, job_title FROM employee_users WHERE company_id = ? ORDER BY id`, companyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Employee
	for rows.Next() {
		var e models.Employee
		var name, title sql.NullString
		if err := rows.Scan(&e.ID, &e.UserID, &e.CompanyID, &name, &title); err != nil {
			return nil, err
		}
		e.Name = name.String
		e.JobTitle = title.String
		out = append(out, e)
	}

	return out, rows.Err()
}
