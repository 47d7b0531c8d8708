package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"talent-sonar/internal/database"
	"talent-sonar/internal/domain/job"
)

var ErrJobNotFound = errors.New("job not found")

type JobFilter struct {
	Title      string
	Department string
	Status     job.Status
}

type JobRepository interface {
	Insert(ctx context.Context, j job.Job) error
	FindByID(ctx context.Context, jobID uuid.UUID) (job.Job, error)
	ExistsByID(ctx context.Context, jobID uuid.UUID) (bool, error)
	List(ctx context.Context, filter JobFilter) ([]job.Job, error)
	UpdateStatus(ctx context.Context, jobID uuid.UUID, status job.Status) error
	CountAll(ctx context.Context) (int, error)
}

type PostgresJobRepository struct {
	db database.DB
}

func NewPostgresJobRepository(db database.DB) *PostgresJobRepository {
	return &PostgresJobRepository{db: db}
}

func (r *PostgresJobRepository) Insert(ctx context.Context, j job.Job) error {
	var industry, size, reporting, notes *string
	if cc := j.CompanyContext; cc != nil {
		industry, size, reporting, notes = &cc.Industry, &cc.CompanySize, &cc.ReportingStructure, &cc.RoleContextNotes
	}

	_, err := r.db.Exec(ctx,
		`INSERT INTO jobs
			(id, title, department, location, description, required_skills, posted_at, status,
			 company_industry, company_size, reporting_structure, role_context_notes, created_at)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)`,
		j.ID, j.Title, j.Department, j.Location, j.Description, j.RequiredSkills,
		nullableTime(j.PostedAt), string(j.Status),
		industry, size, reporting, notes,
		orNow(j.CreatedAt),
	)
	return err
}

const jobColumns = `id, title, department, location, description, required_skills,
	COALESCE(posted_at, created_at), status,
	company_industry, company_size, reporting_structure, role_context_notes, created_at`

func (r *PostgresJobRepository) FindByID(ctx context.Context, jobID uuid.UUID) (job.Job, error) {
	row := r.db.QueryRow(ctx, `SELECT `+jobColumns+` FROM jobs WHERE id = $1`, jobID)
	j, err := scanJob(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows) {
			return job.Job{}, ErrJobNotFound
		}
		return job.Job{}, err
	}
	return j, nil
}

func (r *PostgresJobRepository) ExistsByID(ctx context.Context, jobID uuid.UUID) (bool, error) {
	var exists bool
	row := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM jobs WHERE id = $1)`, jobID)
	if err := row.Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *PostgresJobRepository) List(ctx context.Context, filter JobFilter) ([]job.Job, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+jobColumns+`
		 FROM jobs
		 WHERE ($1 = '' OR title ILIKE '%' || $1 || '%' OR department ILIKE '%' || $1 || '%')
		   AND ($2 = '' OR department = $2)
		   AND ($3 = '' OR status = $3)
		 ORDER BY created_at DESC`,
		filter.Title, filter.Department, string(filter.Status),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]job.Job, 0)
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, j)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresJobRepository) UpdateStatus(ctx context.Context, jobID uuid.UUID, status job.Status) error {
	affected, err := r.db.Exec(ctx, `UPDATE jobs SET status = $2 WHERE id = $1`, jobID, string(status))
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrJobNotFound
	}
	return nil
}

func (r *PostgresJobRepository) CountAll(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM jobs`).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

func scanJob(row database.Row) (job.Job, error) {
	var j job.Job
	var status string
	var industry, size, reporting, notes *string

	err := row.Scan(
		&j.ID, &j.Title, &j.Department, &j.Location, &j.Description, &j.RequiredSkills,
		&j.PostedAt, &status,
		&industry, &size, &reporting, &notes, &j.CreatedAt,
	)
	if err != nil {
		return job.Job{}, err
	}

	j.Status = job.Status(status)
	if industry != nil || size != nil || reporting != nil || notes != nil {
		j.CompanyContext = &job.CompanyContext{
			Industry:           deref(industry),
			CompanySize:        deref(size),
			ReportingStructure: deref(reporting),
			RoleContextNotes:   deref(notes),
		}
	}
	return j, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func nullableTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}

func orNow(t time.Time) time.Time {
	if t.IsZero() {
		return time.Now().UTC()
	}
	return t
}
