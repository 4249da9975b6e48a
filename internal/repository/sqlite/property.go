package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/condohub/condohub/pkg/models"
)

func (r *SQLiteRepo) CreateProperty(ctx context.Context, p *models.Property) (int64, error) {
	if p == nil {
		return 0, fmt.Errorf("property is nil")
	}

	res, err := r.conn.Exec(ctx, `INSERT INTO properties (address, company_id) VALUES (?, ?)`, p.Address, p.CompanyID)
	if err != nil {
		return 0, err
	}

	return res.LastInsertId()
}

func (r *SQLiteRepo) GetPropertyByID(ctx context.Context, id int64) (*models.Property, error) {
	row := r.conn.QueryRow(ctx, `SELECT id, address, company_id FROM properties WHERE id = ?`, id)
	var p models.Property
	if err := row.Scan(&p.ID, &p.Address, &p.CompanyID); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}

		return nil, err
	}

	return &p, nil
}

func (r *SQLiteRepo) ListPropertiesByCompany(ctx context.Context, companyID int64) ([]models.Property, error) {
	rows, err := r.conn.Query(ctx, `SELECT id, address, company_id FROM properties WHERE company_id = ? ORDER BY id`, companyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Property
	for rows.Next() {
		var p models.Property
		if err := rows.Scan(&p.ID, &p.Address, &p.CompanyID); err != nil {
			return nil, err
		}
		out = append(out, p)
	}

	return out, rows.Err()
}
