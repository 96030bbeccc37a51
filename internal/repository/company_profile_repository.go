package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/job-board/internal/domain"
)

// CompanyProfileRepository manages company profile persistence. Uniqueness
// per owner is a database constraint on user_id.
type CompanyProfileRepository interface {
	Create(ctx context.Context, profile *domain.CompanyProfile) error
	Update(ctx context.Context, profile *domain.CompanyProfile) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.CompanyProfile, error)
	GetByUserID(ctx context.Context, userID string) (*domain.CompanyProfile, error)
}

type companyProfileRepository struct {
	pool *pgxpool.Pool
}

// NewCompanyProfileRepository instantiates repository.
func NewCompanyProfileRepository(pool *pgxpool.Pool) CompanyProfileRepository {
	return &companyProfileRepository{pool: pool}
}

const companyProfileColumns = `id, user_id, company_name, company_logo, company_description, industry, company_size, location, created_at, updated_at`

func (r *companyProfileRepository) Create(ctx context.Context, profile *domain.CompanyProfile) error {
	const query = `
        INSERT INTO company_profiles (user_id, company_name, company_logo, company_description, industry, company_size, location)
        VALUES ($1,$2,$3,$4,$5,$6,$7)
        RETURNING id, created_at, updated_at`
	return r.pool.QueryRow(ctx, query,
		profile.UserID,
		profile.CompanyName,
		profile.CompanyLogo,
		profile.CompanyDescription,
		profile.Industry,
		profile.CompanySize,
		profile.Location,
	).Scan(&profile.ID, &profile.CreatedAt, &profile.UpdatedAt)
}

func (r *companyProfileRepository) Update(ctx context.Context, profile *domain.CompanyProfile) error {
	const query = `
        UPDATE company_profiles SET company_name=$1, company_logo=$2, company_description=$3, industry=$4, company_size=$5, location=$6, updated_at=NOW()
        WHERE id=$7`
	cmd, err := r.pool.Exec(ctx, query,
		profile.CompanyName,
		profile.CompanyLogo,
		profile.CompanyDescription,
		profile.Industry,
		profile.CompanySize,
		profile.Location,
		profile.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *companyProfileRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM company_profiles WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *companyProfileRepository) GetByID(ctx context.Context, id string) (*domain.CompanyProfile, error) {
	return r.fetchSingle(ctx, `SELECT `+companyProfileColumns+` FROM company_profiles WHERE id=$1`, id)
}

func (r *companyProfileRepository) GetByUserID(ctx context.Context, userID string) (*domain.CompanyProfile, error) {
	return r.fetchSingle(ctx, `SELECT `+companyProfileColumns+` FROM company_profiles WHERE user_id=$1`, userID)
}

func (r *companyProfileRepository) fetchSingle(ctx context.Context, query string, arg any) (*domain.CompanyProfile, error) {
	var profile domain.CompanyProfile
	if err := r.pool.QueryRow(ctx, query, arg).Scan(
		&profile.ID,
		&profile.UserID,
		&profile.CompanyName,
		&profile.CompanyLogo,
		&profile.CompanyDescription,
		&profile.Industry,
		&profile.CompanySize,
		&profile.Location,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &profile, nil
}
