package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/job-board/internal/domain"
)

// JobFilter captures catalog listing parameters. JobType matches exactly,
// Location matches case-insensitive substrings; both are optional.
type JobFilter struct {
	JobType    *domain.JobType
	Location   *string
	EmployerID *string
	Limit      int
	Offset     int
}

// JobRepository encapsulates job posting persistence. Mutations are scoped to
// the owning employer; a non-owned target behaves as absent.
type JobRepository interface {
	Create(ctx context.Context, job *domain.Job) error
	Update(ctx context.Context, job *domain.Job) error
	Delete(ctx context.Context, id, employerID string) error
	GetByID(ctx context.Context, id string) (*domain.Job, error)
	GetByIDForEmployer(ctx context.Context, id, employerID string) (*domain.Job, error)
	ListWithFilter(ctx context.Context, filter JobFilter) ([]domain.Job, error)
}

type jobRepository struct {
	pool *pgxpool.Pool
}

// NewJobRepository instantiates repository.
func NewJobRepository(pool *pgxpool.Pool) JobRepository {
	return &jobRepository{pool: pool}
}

const jobColumns = `j.id, j.employer_id, j.title, j.description, j.requirements, j.salary_range,
               j.location, j.job_type, j.deadline, j.created_at, j.updated_at,
               COALESCE(cp.company_name, u.username)`

const jobFrom = `FROM jobs j
             JOIN users u ON u.id = j.employer_id
             LEFT JOIN company_profiles cp ON cp.user_id = j.employer_id`

func (r *jobRepository) Create(ctx context.Context, job *domain.Job) error {
	const query = `
        INSERT INTO jobs (employer_id, title, description, requirements, salary_range, location, job_type, deadline)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
        RETURNING id, created_at, updated_at`
	return r.pool.QueryRow(ctx, query,
		job.EmployerID,
		job.Title,
		job.Description,
		job.Requirements,
		job.SalaryRange,
		job.Location,
		job.JobType,
		job.Deadline,
	).Scan(&job.ID, &job.CreatedAt, &job.UpdatedAt)
}

func (r *jobRepository) Update(ctx context.Context, job *domain.Job) error {
	const query = `
        UPDATE jobs SET title=$1, description=$2, requirements=$3, salary_range=$4, location=$5,
            job_type=$6, deadline=$7, updated_at=NOW()
        WHERE id=$8 AND employer_id=$9`
	cmd, err := r.pool.Exec(ctx, query,
		job.Title,
		job.Description,
		job.Requirements,
		job.SalaryRange,
		job.Location,
		job.JobType,
		job.Deadline,
		job.ID,
		job.EmployerID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *jobRepository) Delete(ctx context.Context, id, employerID string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM jobs WHERE id=$1 AND employer_id=$2`, id, employerID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *jobRepository) GetByID(ctx context.Context, id string) (*domain.Job, error) {
	query := `SELECT ` + jobColumns + ` ` + jobFrom + ` WHERE j.id=$1`
	return r.fetchSingle(ctx, query, id)
}

func (r *jobRepository) GetByIDForEmployer(ctx context.Context, id, employerID string) (*domain.Job, error) {
	query := `SELECT ` + jobColumns + ` ` + jobFrom + ` WHERE j.id=$1 AND j.employer_id=$2`
	var job domain.Job
	if err := r.pool.QueryRow(ctx, query, id, employerID).Scan(jobScanTargets(&job)...); err != nil {
		return nil, err
	}
	return &job, nil
}

func (r *jobRepository) fetchSingle(ctx context.Context, query string, arg any) (*domain.Job, error) {
	var job domain.Job
	if err := r.pool.QueryRow(ctx, query, arg).Scan(jobScanTargets(&job)...); err != nil {
		return nil, err
	}
	return &job, nil
}

func (r *jobRepository) ListWithFilter(ctx context.Context, filter JobFilter) ([]domain.Job, error) {
	clauses := []string{"1=1"}
	args := []any{}

	if filter.JobType != nil {
		args = append(args, *filter.JobType)
		clauses = append(clauses, fmt.Sprintf("j.job_type=$%d", len(args)))
	}
	if filter.Location != nil && strings.TrimSpace(*filter.Location) != "" {
		args = append(args, "%"+strings.TrimSpace(*filter.Location)+"%")
		clauses = append(clauses, fmt.Sprintf("j.location ILIKE $%d", len(args)))
	}
	if filter.EmployerID != nil {
		args = append(args, *filter.EmployerID)
		clauses = append(clauses, fmt.Sprintf("j.employer_id=$%d", len(args)))
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 50
	}
	offset := filter.Offset
	if offset < 0 {
		offset = 0
	}

	query := fmt.Sprintf(`SELECT %s %s WHERE %s ORDER BY j.created_at DESC LIMIT %d OFFSET %d`,
		jobColumns, jobFrom, strings.Join(clauses, " AND "), limit, offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanJobs(rows)
}

func jobScanTargets(job *domain.Job) []any {
	return []any{
		&job.ID,
		&job.EmployerID,
		&job.Title,
		&job.Description,
		&job.Requirements,
		&job.SalaryRange,
		&job.Location,
		&job.JobType,
		&job.Deadline,
		&job.CreatedAt,
		&job.UpdatedAt,
		&job.CompanyName,
	}
}

func scanJobs(rows pgx.Rows) ([]domain.Job, error) {
	var result []domain.Job
	for rows.Next() {
		var job domain.Job
		if err := rows.Scan(jobScanTargets(&job)...); err != nil {
			return nil, err
		}
		result = append(result, job)
	}
	return result, rows.Err()
}
