package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/job-board/internal/domain"
)

// ApplicationRepository encapsulates job application persistence. The
// composite unique constraint on (job_id, applicant_id) is the duplicate
// application guard.
type ApplicationRepository interface {
	Create(ctx context.Context, application *domain.JobApplication) error
	Update(ctx context.Context, application *domain.JobApplication) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.JobApplication, error)
	ListByApplicant(ctx context.Context, applicantID string, limit, offset int) ([]domain.JobApplication, error)
	ListByJobOwner(ctx context.Context, employerID string, limit, offset int) ([]domain.JobApplication, error)
}

type applicationRepository struct {
	pool *pgxpool.Pool
}

// NewApplicationRepository instantiates repository.
func NewApplicationRepository(pool *pgxpool.Pool) ApplicationRepository {
	return &applicationRepository{pool: pool}
}

const applicationColumns = `a.id, a.job_id, a.applicant_id, a.status, a.cover_letter, a.applied_at, a.updated_at`

const applicationFrom = applicationColumns + `, ` + jobColumns + `
        FROM job_applications a
        JOIN jobs j ON j.id = a.job_id
        JOIN users u ON u.id = j.employer_id
        LEFT JOIN company_profiles cp ON cp.user_id = j.employer_id`

func (r *applicationRepository) Create(ctx context.Context, application *domain.JobApplication) error {
	const query = `
        INSERT INTO job_applications (job_id, applicant_id, status, cover_letter)
        VALUES ($1,$2,$3,$4)
        RETURNING id, applied_at, updated_at`
	return r.pool.QueryRow(ctx, query,
		application.JobID,
		application.ApplicantID,
		application.Status,
		application.CoverLetter,
	).Scan(&application.ID, &application.AppliedAt, &application.UpdatedAt)
}

func (r *applicationRepository) Update(ctx context.Context, application *domain.JobApplication) error {
	const query = `
        UPDATE job_applications SET status=$1, cover_letter=$2, updated_at=NOW()
        WHERE id=$3`
	cmd, err := r.pool.Exec(ctx, query,
		application.Status,
		application.CoverLetter,
		application.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *applicationRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM job_applications WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *applicationRepository) GetByID(ctx context.Context, id string) (*domain.JobApplication, error) {
	query := `SELECT ` + applicationFrom + ` WHERE a.id=$1`
	var application domain.JobApplication
	var job domain.Job
	if err := r.pool.QueryRow(ctx, query, id).Scan(applicationScanTargets(&application, &job)...); err != nil {
		return nil, err
	}
	application.Job = &job
	return &application, nil
}

func (r *applicationRepository) ListByApplicant(ctx context.Context, applicantID string, limit, offset int) ([]domain.JobApplication, error) {
	query := `SELECT ` + applicationFrom + ` WHERE a.applicant_id=$1 ORDER BY a.applied_at DESC LIMIT $2 OFFSET $3`
	return r.list(ctx, query, applicantID, normalizeLimit(limit), normalizeOffset(offset))
}

func (r *applicationRepository) ListByJobOwner(ctx context.Context, employerID string, limit, offset int) ([]domain.JobApplication, error) {
	query := `SELECT ` + applicationFrom + ` WHERE j.employer_id=$1 ORDER BY a.applied_at DESC LIMIT $2 OFFSET $3`
	return r.list(ctx, query, employerID, normalizeLimit(limit), normalizeOffset(offset))
}

func (r *applicationRepository) list(ctx context.Context, query string, args ...any) ([]domain.JobApplication, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.JobApplication
	for rows.Next() {
		var application domain.JobApplication
		var job domain.Job
		if err := rows.Scan(applicationScanTargets(&application, &job)...); err != nil {
			return nil, err
		}
		application.Job = &job
		result = append(result, application)
	}
	return result, rows.Err()
}

func applicationScanTargets(application *domain.JobApplication, job *domain.Job) []any {
	targets := []any{
		&application.ID,
		&application.JobID,
		&application.ApplicantID,
		&application.Status,
		&application.CoverLetter,
		&application.AppliedAt,
		&application.UpdatedAt,
	}
	return append(targets, jobScanTargets(job)...)
}

func normalizeLimit(limit int) int {
	if limit <= 0 {
		return 50
	}
	return limit
}

func normalizeOffset(offset int) int {
	if offset < 0 {
		return 0
	}
	return offset
}
