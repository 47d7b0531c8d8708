package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"talent-sonar/internal/database"
	"talent-sonar/internal/domain/candidate"
)

// stubDB serves canned rows per relation so the repository's scan and
// map-assembly logic can be exercised without a database.
type stubDB struct {
	candidateRows [][]any
	scoreRows     [][]any
	feedbackRows  [][]any
}

func (db *stubDB) Ping(context.Context) error { return nil }
func (db *stubDB) Close() error               { return nil }

func (db *stubDB) Exec(context.Context, string, ...any) (int64, error) {
	return 0, nil
}

func (db *stubDB) Begin(context.Context) (database.Tx, error) {
	return nil, errors.New("stub: transactions not supported")
}

func (db *stubDB) Query(_ context.Context, query string, _ ...any) (database.Rows, error) {
	switch {
	case strings.Contains(query, "FROM match_scores"):
		return &stubRows{rows: db.scoreRows}, nil
	case strings.Contains(query, "FROM feedback"):
		return &stubRows{rows: db.feedbackRows}, nil
	case strings.Contains(query, "FROM candidates"):
		return &stubRows{rows: db.candidateRows}, nil
	}
	return nil, fmt.Errorf("stub: unexpected query %q", query)
}

func (db *stubDB) QueryRow(_ context.Context, query string, _ ...any) database.Row {
	if !strings.Contains(query, "FROM candidates") {
		return stubRow{err: fmt.Errorf("stub: unexpected query %q", query)}
	}
	if len(db.candidateRows) == 0 {
		return stubRow{err: pgx.ErrNoRows}
	}
	return stubRow{vals: db.candidateRows[0]}
}

type stubRow struct {
	vals []any
	err  error
}

func (r stubRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	return assignRow(dest, r.vals)
}

type stubRows struct {
	rows [][]any
	pos  int
}

func (r *stubRows) Close() {}

func (r *stubRows) Next() bool {
	if r.pos >= len(r.rows) {
		return false
	}
	r.pos++
	return true
}

func (r *stubRows) Scan(dest ...any) error { return assignRow(dest, r.rows[r.pos-1]) }
func (r *stubRows) Err() error             { return nil }

func assignRow(dest, vals []any) error {
	if len(dest) != len(vals) {
		return fmt.Errorf("stub: scan expects %d columns, row has %d", len(dest), len(vals))
	}
	for i, d := range dest {
		switch p := d.(type) {
		case *uuid.UUID:
			*p = vals[i].(uuid.UUID)
		case *string:
			*p = vals[i].(string)
		case *int:
			*p = vals[i].(int)
		case *bool:
			*p = vals[i].(bool)
		case *[]string:
			*p = vals[i].([]string)
		case *[]byte:
			*p = vals[i].([]byte)
		case *time.Time:
			*p = vals[i].(time.Time)
		default:
			return fmt.Errorf("stub: unsupported scan target %T", d)
		}
	}
	return nil
}

func candidateRow(id uuid.UUID, name string, skills []string) []any {
	return []any{
		id, string(candidate.TypeUploaded), name, name + "@example.com", skills,
		[]byte(`{}`), string(candidate.ProfileComplete), string(candidate.EmploymentAvailable),
		false, time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC),
	}
}

func TestCandidateRepository_FindByID_AttachesMaps(t *testing.T) {
	candID := uuid.New()
	jobID := uuid.New()
	db := &stubDB{
		candidateRows: [][]any{candidateRow(candID, "Anna", []string{"Go"})},
		scoreRows:     [][]any{{candID, jobID, 85, "Matches 2 of 3 required skills."}},
		feedbackRows:  [][]any{{candID, jobID, string(candidate.FeedbackPositive)}},
	}

	c, err := NewPostgresCandidateRepository(db).FindByID(context.Background(), candID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := c.MatchScores[jobID]; got != 85 {
		t.Fatalf("expected stored score 85, got %d", got)
	}
	if got := c.MatchRationales[jobID]; got != "Matches 2 of 3 required skills." {
		t.Fatalf("unexpected rationale %q", got)
	}
	if got := c.FeedbackFor(jobID); got != candidate.FeedbackPositive {
		t.Fatalf("expected positive feedback, got %q", got)
	}
}

func TestCandidateRepository_FindByID_NoRelations(t *testing.T) {
	candID := uuid.New()
	db := &stubDB{candidateRows: [][]any{candidateRow(candID, "Bence", nil)}}

	c, err := NewPostgresCandidateRepository(db).FindByID(context.Background(), candID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if c.MatchScores == nil || c.MatchRationales == nil || c.Feedback == nil {
		t.Fatal("expected initialized empty maps")
	}
	if len(c.MatchScores) != 0 {
		t.Fatalf("expected no scores, got %v", c.MatchScores)
	}
	if got := c.FeedbackFor(uuid.New()); got != candidate.FeedbackNone {
		t.Fatalf("expected none feedback, got %q", got)
	}
}

func TestCandidateRepository_FindByID_NotFound(t *testing.T) {
	_, err := NewPostgresCandidateRepository(&stubDB{}).FindByID(context.Background(), uuid.New())
	if !errors.Is(err, ErrCandidateNotFound) {
		t.Fatalf("expected ErrCandidateNotFound, got %v", err)
	}
}

func TestCandidateRepository_ListAll_AttachesMapsPerCandidate(t *testing.T) {
	scoredID := uuid.New()
	plainID := uuid.New()
	jobID := uuid.New()
	db := &stubDB{
		candidateRows: [][]any{
			candidateRow(scoredID, "Csilla", []string{"Go", "PostgreSQL"}),
			candidateRow(plainID, "Dani", []string{"Figma"}),
		},
		scoreRows:    [][]any{{scoredID, jobID, 62, "Matches 1 of 2 required skills."}},
		feedbackRows: [][]any{{scoredID, jobID, string(candidate.FeedbackNegative)}},
	}

	out, err := NewPostgresCandidateRepository(db).ListAll(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("expected 2 candidates, got %d", len(out))
	}

	byID := make(map[uuid.UUID]candidate.Candidate, len(out))
	for _, c := range out {
		byID[c.ID] = c
	}

	if got := byID[scoredID].MatchScores[jobID]; got != 62 {
		t.Fatalf("expected score 62 on scored candidate, got %d", got)
	}
	if got := byID[scoredID].FeedbackFor(jobID); got != candidate.FeedbackNegative {
		t.Fatalf("expected negative feedback, got %q", got)
	}
	if len(byID[plainID].MatchScores) != 0 || len(byID[plainID].Feedback) != 0 {
		t.Fatal("expected empty maps on the unscored candidate")
	}
}
