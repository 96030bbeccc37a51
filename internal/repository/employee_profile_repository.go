package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/job-board/internal/domain"
)

// EmployeeProfileRepository manages employee profile persistence.
type EmployeeProfileRepository interface {
	Create(ctx context.Context, profile *domain.EmployeeProfile) error
	Update(ctx context.Context, profile *domain.EmployeeProfile) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.EmployeeProfile, error)
	GetByUserID(ctx context.Context, userID string) (*domain.EmployeeProfile, error)
	List(ctx context.Context, limit, offset int) ([]domain.EmployeeProfile, error)
}

type employeeProfileRepository struct {
	pool *pgxpool.Pool
}

// NewEmployeeProfileRepository instantiates repository.
func NewEmployeeProfileRepository(pool *pgxpool.Pool) EmployeeProfileRepository {
	return &employeeProfileRepository{pool: pool}
}

const employeeProfileColumns = `p.id, p.user_id, p.profile_image, p.resume, p.degree, p.skills, p.experience, p.phone, p.created_at, p.updated_at, u.email, u.username`

const employeeProfileFrom = ` FROM employee_profiles p JOIN users u ON u.id = p.user_id`

func (r *employeeProfileRepository) Create(ctx context.Context, profile *domain.EmployeeProfile) error {
	const query = `
        INSERT INTO employee_profiles (user_id, profile_image, resume, degree, skills, experience, phone)
        VALUES ($1,$2,$3,$4,$5,$6,$7)
        RETURNING id, created_at, updated_at`
	return r.pool.QueryRow(ctx, query,
		profile.UserID,
		profile.ProfileImage,
		profile.Resume,
		profile.Degree,
		profile.Skills,
		profile.Experience,
		profile.Phone,
	).Scan(&profile.ID, &profile.CreatedAt, &profile.UpdatedAt)
}

func (r *employeeProfileRepository) Update(ctx context.Context, profile *domain.EmployeeProfile) error {
	const query = `
        UPDATE employee_profiles SET profile_image=$1, resume=$2, degree=$3, skills=$4, experience=$5, phone=$6, updated_at=NOW()
        WHERE id=$7`
	cmd, err := r.pool.Exec(ctx, query,
		profile.ProfileImage,
		profile.Resume,
		profile.Degree,
		profile.Skills,
		profile.Experience,
		profile.Phone,
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

func (r *employeeProfileRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM employee_profiles WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *employeeProfileRepository) GetByID(ctx context.Context, id string) (*domain.EmployeeProfile, error) {
	return r.fetchSingle(ctx, `SELECT `+employeeProfileColumns+employeeProfileFrom+` WHERE p.id=$1`, id)
}

func (r *employeeProfileRepository) GetByUserID(ctx context.Context, userID string) (*domain.EmployeeProfile, error) {
	return r.fetchSingle(ctx, `SELECT `+employeeProfileColumns+employeeProfileFrom+` WHERE p.user_id=$1`, userID)
}

func (r *employeeProfileRepository) fetchSingle(ctx context.Context, query string, arg any) (*domain.EmployeeProfile, error) {
	var profile domain.EmployeeProfile
	if err := r.pool.QueryRow(ctx, query, arg).Scan(
		&profile.ID,
		&profile.UserID,
		&profile.ProfileImage,
		&profile.Resume,
		&profile.Degree,
		&profile.Skills,
		&profile.Experience,
		&profile.Phone,
		&profile.CreatedAt,
		&profile.UpdatedAt,
		&profile.UserEmail,
		&profile.UserName,
	); err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *employeeProfileRepository) List(ctx context.Context, limit, offset int) ([]domain.EmployeeProfile, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	query := `SELECT ` + employeeProfileColumns + employeeProfileFrom + ` ORDER BY p.created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.EmployeeProfile
	for rows.Next() {
		var profile domain.EmployeeProfile
		if err := rows.Scan(
			&profile.ID,
			&profile.UserID,
			&profile.ProfileImage,
			&profile.Resume,
			&profile.Degree,
			&profile.Skills,
			&profile.Experience,
			&profile.Phone,
			&profile.CreatedAt,
			&profile.UpdatedAt,
			&profile.UserEmail,
			&profile.UserName,
		); err != nil {
			return nil, err
		}
		result = append(result, profile)
	}
	return result, rows.Err()
}
