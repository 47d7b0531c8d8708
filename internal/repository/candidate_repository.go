package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"talent-sonar/internal/database"
	"talent-sonar/internal/domain/candidate"
)

var ErrCandidateNotFound = errors.New("candidate not found")

// CandidateUpdate carries the editable profile fields. Nil fields are
// left unchanged.
type CandidateUpdate struct {
	Name             *string
	Email            *string
	Skills           []string
	ProfileStatus    *candidate.ProfileStatus
	EmploymentStatus *candidate.EmploymentStatus
	IsHiddenGem      *bool
}

type CandidateRepository interface {
	InsertBatch(ctx context.Context, candidates []candidate.Candidate) error
	FindByID(ctx context.Context, id uuid.UUID) (candidate.Candidate, error)
	ListAll(ctx context.Context) ([]candidate.Candidate, error)
	ListByType(ctx context.Context, t candidate.Type) ([]candidate.Candidate, error)
	Update(ctx context.Context, id uuid.UUID, upd CandidateUpdate) error
}

// profilePayload is the jsonb shape for variant-specific fields. One
// sub-object is set, matching the candidate type.
type profilePayload struct {
	Internal *candidate.InternalProfile `json:"internal,omitempty"`
	Past     *candidate.PastProfile     `json:"past,omitempty"`
	Uploaded *candidate.UploadedProfile `json:"uploaded,omitempty"`
}

type PostgresCandidateRepository struct {
	db database.DB
}

func NewPostgresCandidateRepository(db database.DB) *PostgresCandidateRepository {
	return &PostgresCandidateRepository{db: db}
}

func (r *PostgresCandidateRepository) InsertBatch(ctx context.Context, candidates []candidate.Candidate) error {
	if len(candidates) == 0 {
		return nil
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	for _, c := range candidates {
		profile, err := json.Marshal(profilePayload{Internal: c.Internal, Past: c.Past, Uploaded: c.Uploaded})
		if err != nil {
			return err
		}

		profileStatus := c.ProfileStatus
		if profileStatus == "" {
			profileStatus = candidate.ProfilePartial
		}
		employment := c.EmploymentStatus
		if employment == "" {
			employment = candidate.EmploymentAvailable
		}

		_, err = tx.Exec(ctx,
			`INSERT INTO candidates
				(id, type, name, email, skills, profile, profile_status, employment_status, is_hidden_gem, created_at)
			 VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)`,
			c.ID, string(c.Type), c.Name, c.Email, c.Skills, profile,
			string(profileStatus), string(employment), c.IsHiddenGem, orNow(c.CreatedAt),
		)
		if err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

const candidateColumns = `id, type, name, email, skills, profile, profile_status, employment_status, is_hidden_gem, created_at`

func (r *PostgresCandidateRepository) FindByID(ctx context.Context, id uuid.UUID) (candidate.Candidate, error) {
	row := r.db.QueryRow(ctx, `SELECT `+candidateColumns+` FROM candidates WHERE id = $1`, id)
	c, err := scanCandidate(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows) {
			return candidate.Candidate{}, ErrCandidateNotFound
		}
		return candidate.Candidate{}, err
	}

	out := []candidate.Candidate{c}
	if err := r.attachMaps(ctx, out); err != nil {
		return candidate.Candidate{}, err
	}
	return out[0], nil
}

func (r *PostgresCandidateRepository) ListAll(ctx context.Context) ([]candidate.Candidate, error) {
	return r.list(ctx, `SELECT `+candidateColumns+` FROM candidates ORDER BY created_at DESC`)
}

func (r *PostgresCandidateRepository) ListByType(ctx context.Context, t candidate.Type) ([]candidate.Candidate, error) {
	return r.list(ctx, `SELECT `+candidateColumns+` FROM candidates WHERE type = $1 ORDER BY created_at DESC`, string(t))
}

func (r *PostgresCandidateRepository) list(ctx context.Context, query string, args ...any) ([]candidate.Candidate, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]candidate.Candidate, 0)
	for rows.Next() {
		c, err := scanCandidate(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := r.attachMaps(ctx, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresCandidateRepository) Update(ctx context.Context, id uuid.UUID, upd CandidateUpdate) error {
	affected, err := r.db.Exec(ctx,
		`UPDATE candidates SET
			name = COALESCE($2, name),
			email = COALESCE($3, email),
			skills = COALESCE($4, skills),
			profile_status = COALESCE($5, profile_status),
			employment_status = COALESCE($6, employment_status),
			is_hidden_gem = COALESCE($7, is_hidden_gem)
		 WHERE id = $1`,
		id, upd.Name, upd.Email, upd.Skills,
		statusOrNil(upd.ProfileStatus), employmentOrNil(upd.EmploymentStatus), upd.IsHiddenGem,
	)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrCandidateNotFound
	}
	return nil
}

// attachMaps assembles the per-job score, rationale and feedback maps
// from their relations. The maps are what the ranking engine consumes;
// the relations keep the "no entry for a vanished job" invariant
// enforceable through foreign keys.
func (r *PostgresCandidateRepository) attachMaps(ctx context.Context, candidates []candidate.Candidate) error {
	if len(candidates) == 0 {
		return nil
	}

	byID := make(map[uuid.UUID]*candidate.Candidate, len(candidates))
	ids := make([]uuid.UUID, 0, len(candidates))
	for i := range candidates {
		candidates[i].MatchScores = make(map[uuid.UUID]int)
		candidates[i].MatchRationales = make(map[uuid.UUID]string)
		candidates[i].Feedback = make(map[uuid.UUID]candidate.FeedbackValue)
		byID[candidates[i].ID] = &candidates[i]
		ids = append(ids, candidates[i].ID)
	}

	rows, err := r.db.Query(ctx,
		`SELECT candidate_id, job_id, score, rationale FROM match_scores WHERE candidate_id = ANY($1)`, ids)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var candID, jobID uuid.UUID
		var score int
		var rationale string
		if err := rows.Scan(&candID, &jobID, &score, &rationale); err != nil {
			return err
		}
		if c, ok := byID[candID]; ok {
			c.MatchScores[jobID] = score
			c.MatchRationales[jobID] = rationale
		}
	}
	if err := rows.Err(); err != nil {
		return err
	}

	fbRows, err := r.db.Query(ctx,
		`SELECT candidate_id, job_id, value FROM feedback WHERE candidate_id = ANY($1)`, ids)
	if err != nil {
		return err
	}
	defer fbRows.Close()

	for fbRows.Next() {
		var candID, jobID uuid.UUID
		var value string
		if err := fbRows.Scan(&candID, &jobID, &value); err != nil {
			return err
		}
		if c, ok := byID[candID]; ok {
			c.Feedback[jobID] = candidate.FeedbackValue(value)
		}
	}
	return fbRows.Err()
}

func scanCandidate(row database.Row) (candidate.Candidate, error) {
	var c candidate.Candidate
	var typ, profileStatus, employment string
	var profile []byte
	var created time.Time

	err := row.Scan(&c.ID, &typ, &c.Name, &c.Email, &c.Skills, &profile,
		&profileStatus, &employment, &c.IsHiddenGem, &created)
	if err != nil {
		return candidate.Candidate{}, err
	}

	c.Type = candidate.Type(typ)
	c.ProfileStatus = candidate.ProfileStatus(profileStatus)
	c.EmploymentStatus = candidate.EmploymentStatus(employment)
	c.CreatedAt = created

	var payload profilePayload
	if len(profile) > 0 {
		if err := json.Unmarshal(profile, &payload); err != nil {
			return candidate.Candidate{}, err
		}
	}
	c.Internal, c.Past, c.Uploaded = payload.Internal, payload.Past, payload.Uploaded

	return c, nil
}

func statusOrNil(s *candidate.ProfileStatus) *string {
	if s == nil {
		return nil
	}
	v := string(*s)
	return &v
}

func employmentOrNil(s *candidate.EmploymentStatus) *string {
	if s == nil {
		return nil
	}
	v := string(*s)
	return &v
}
