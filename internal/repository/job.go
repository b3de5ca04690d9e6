package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jobportal/jobportal-go/internal/model"
)

var ErrJobNotFound = errors.New("job not found")

const jobColumns = `id, company, position, status, work_type, work_location, created_by, created_at, updated_at`

// JobRepository handles job persistence operations.
type JobRepository struct {
	db *sql.DB
}

// NewJobRepository creates a new JobRepository.
func NewJobRepository(db *sql.DB) *JobRepository {
	return &JobRepository{db: db}
}

// Create inserts a new job and sets the generated ID and timestamps on the job struct.
func (r *JobRepository) Create(ctx context.Context, job *model.Job) error {
	query := `INSERT INTO jobs (company, position, status, work_type, work_location, created_by, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	now := time.Now().UTC().Truncate(time.Millisecond)
	result, err := r.db.ExecContext(ctx, query,
		job.Company, job.Position, string(job.Status), string(job.WorkType),
		job.WorkLocation, job.CreatedBy, now, now,
	)
	if err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}

	job.ID = id
	job.CreatedAt = now
	job.UpdatedAt = now
	return nil
}

// GetByID retrieves a job by ID regardless of owner.
func (r *JobRepository) GetByID(ctx context.Context, id int64) (*model.Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs WHERE id = ?`

	job := &model.Job{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(jobScanDest(job)...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}

	return job, nil
}

// List returns one page of the owner's jobs matching the query, plus the
// total number of matching jobs across all pages.
func (r *JobRepository) List(ctx context.Context, q model.JobQuery) ([]model.Job, int, error) {
	where, args := jobFilter(q)

	var total int
	countQuery := `SELECT COUNT(*) FROM jobs WHERE ` + where
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	pageQuery := `SELECT ` + jobColumns + ` FROM jobs WHERE ` + where +
		` ORDER BY ` + jobOrder(q.Sort) + ` LIMIT ? OFFSET ?`
	pageArgs := append(args, q.Limit, q.Offset())

	rows, err := r.db.QueryContext(ctx, pageQuery, pageArgs...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	jobs := []model.Job{}
	for rows.Next() {
		var j model.Job
		if err := rows.Scan(jobScanDest(&j)...); err != nil {
			return nil, 0, err
		}
		jobs = append(jobs, j)
	}

	return jobs, total, rows.Err()
}

// UpdateOwned applies a partial update to the job only if ownerID owns it.
// It reports whether a row matched; nil patch fields keep their stored values.
func (r *JobRepository) UpdateOwned(ctx context.Context, id, ownerID int64, patch model.JobPatch) (bool, error) {
	query := `UPDATE jobs SET
			company       = COALESCE(?, company),
			position      = COALESCE(?, position),
			status        = COALESCE(?, status),
			work_type     = COALESCE(?, work_type),
			work_location = COALESCE(?, work_location),
			updated_at    = ?
		WHERE id = ? AND created_by = ?`

	result, err := r.db.ExecContext(ctx, query,
		nullable(patch.Company),
		nullable(patch.Position),
		nullable(patch.Status),
		nullable(patch.WorkType),
		nullable(patch.WorkLocation),
		time.Now().UTC().Truncate(time.Millisecond),
		id, ownerID,
	)
	if err != nil {
		return false, err
	}

	n, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// DeleteOwned removes the job only if ownerID owns it and reports whether a row matched.
func (r *JobRepository) DeleteOwned(ctx context.Context, id, ownerID int64) (bool, error) {
	query := `DELETE FROM jobs WHERE id = ? AND created_by = ?`

	result, err := r.db.ExecContext(ctx, query, id, ownerID)
	if err != nil {
		return false, err
	}

	n, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// CountByStatus returns the owner's job counts grouped by status. Statuses
// without jobs are absent from the map.
func (r *JobRepository) CountByStatus(ctx context.Context, ownerID int64) (map[model.JobStatus]int, error) {
	query := `SELECT status, COUNT(*) FROM jobs WHERE created_by = ? GROUP BY status`

	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[model.JobStatus]int)
	for rows.Next() {
		var status string
		var n int
		if err := rows.Scan(&status, &n); err != nil {
			return nil, err
		}
		counts[model.JobStatus(status)] = n
	}

	return counts, rows.Err()
}

func jobScanDest(j *model.Job) []any {
	return []any{
		&j.ID, &j.Company, &j.Position, &j.Status, &j.WorkType,
		&j.WorkLocation, &j.CreatedBy, &j.CreatedAt, &j.UpdatedAt,
	}
}

// nullable turns an optional string-like field into a driver value, nil when unset.
func nullable[T ~string](p *T) any {
	if p == nil {
		return nil
	}
	return string(*p)
}
