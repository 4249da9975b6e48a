package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/condohub/condohub/pkg/models"
)

func (r *SQLiteRepo) CreatePublicProfile(ctx context.Context, p *models.PublicProfile) (int64, error) {
	if p == nil {
		return 0, fmt.Errorf("profile is nil")
	}

	res, err := r.conn.Exec(ctx, `INSERT INTO public_users (user_id, first_name, last_name, phone_number, sub_role, profile_image_key) VALUES (?, ?, ?, ?, ?, ?)`,
		p.UserID, p.FirstName, p.LastName, p.PhoneNumber, p.SubRole, p.ProfileImageKey)
	if err != nil {
		return 0, err
	}

	return res.LastInsertId()
}

func (r *SQLiteRepo) GetPublicProfile(ctx context.Context, userID int64) (*models.PublicProfile, error) {
	row := r.conn.QueryRow(ctx, `SELECT id, user_id, first_name, last_name, phone_number, sub_role, profile_image_key FROM public_users WHERE user_id = ?`, userID)
	var p models.PublicProfile
	var first, last, phone, subRole, imageKey sql.NullString
	if err := row.Scan(&p.ID, &p.UserID, &first, &last, &phone, &subRole, &imageKey); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}

		return nil, err
	}
	p.FirstName = first.String
	p.LastName = last.String
	p.PhoneNumber = phone.String
	p.SubRole = subRole.String
	p.ProfileImageKey = imageKey.String

	return &p, nil
}

func (r *SQLiteRepo) CreateCompanyProfile(ctx context.Context, c *models.CompanyProfile) (int64, error) {
	if c == nil {
		return 0, fmt.Errorf("profile is nil")
	}

	res, err := r.conn.Exec(ctx, `INSERT INTO management_companies (user_id, company_name, phone_number, unit_count) VALUES (?, ?, ?, ?)`,
		c.UserID, c.CompanyName, c.PhoneNumber, c.UnitCount)
	if err != nil {
		return 0, err
	}

	return res.LastInsertId()
}

func (r *SQLiteRepo) GetCompanyProfile(ctx context.Context, userID int64) (*models.CompanyProfile, error) {
	row := r.conn.QueryRow(ctx, `SELECT id, user_id, company_name, phone_number, unit_count FROM management_companies WHERE user_id = ?`, userID)
	var c models.CompanyProfile
	var name, phone sql.NullString
	var units sql.NullInt64
	if err := row.Scan(&c.ID, &c.UserID, &name, &phone, &units); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}

		return nil, err
	}
	c.CompanyName = name.String
	c.PhoneNumber = phone.String
	c.UnitCount = units.Int64

	return &c, nil
}
