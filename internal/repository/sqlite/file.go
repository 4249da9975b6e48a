package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/condohub/condohub/pkg/models"
)

func (r *SQLiteRepo) CreateFile(ctx context.Context, f *models.File) (int64, error) {
	if f == nil {
		return 0, fmt.Errorf("file is nil")
	}

	res, err := r.conn.Exec(ctx, `INSERT INTO files (file_key, file_type, company_id, property_id, description, signed_url, created) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		f.FileKey, f.FileType, f.CompanyID, f.PropertyID, f.Description, f.SignedURL, now())
	if err != nil {
		return 0, err
	}

	return res.LastInsertId()
}

func (r *SQLiteRepo) ListFilesByProperty(ctx context.Context, propertyID int64) ([]models.File, error) {
	rows, err := r.conn.Query(ctx, `SELECT id, file_key, file_type, company_id, property_id, description, signed_url, created FROM files WHERE property_id = ? ORDER BY id`, propertyID)
	if err != nil {
		return nil, err
	}

	return scanFiles(rows)
}

func (r *SQLiteRepo) ListFilesByPropertyAndCompany(ctx context.Context, propertyID, companyID int64) ([]models.File, error) {
	rows, err := r.conn.Query(ctx, `SELECT id, file_key, file_type, company_id, property_id, description, signed_url, created FROM files WHERE property_id = ? AND company_id = ? ORDER BY id`, propertyID, companyID)
	if err != nil {
		return nil, err
	}

	return scanFiles(rows)
}

func scanFiles(rows *sql.Rows) ([]models.File, error) {
	defer rows.Close()

	var out []models.File
	for rows.Next() {
		var f models.File
		var fileType, desc, url sql.NullString
		if err := rows.Scan(&f.ID, &f.FileKey, &fileType, &f.CompanyID, &f.PropertyID, &desc, &url, &f.Created); err != nil {
			return nil, err
		}
		f.FileType = fileType.String
		f.Description = desc.String
		f.SignedURL = url.String
		out = append(out, f)
	}

	return out, rows.Err()
}
