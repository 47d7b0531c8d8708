package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"talent-sonar/internal/ai"
	"talent-sonar/internal/domain/candidate"
	"talent-sonar/internal/domain/job"
)

type contentGenerator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

// Analyzer implements ai.Analyzer on top of the Gemini generator. Every
// failure mode (transport error, empty output, malformed JSON, score
// out of range) collapses into one returned error so the caller can
// treat the call as a single recoverable step.
type Analyzer struct {
	generator contentGenerator
	logger    *zap.Logger
}

func NewAnalyzer(generator contentGenerator, logger *zap.Logger) *Analyzer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Analyzer{generator: generator, logger: logger}
}

const fitPromptTemplate = `You are an expert technical recruiter assessing how well a candidate fits a job requisition.

Job requisition:
{{JOB_JSON}}

Candidate profile:
{{CANDIDATE_JSON}}

Respond with a single JSON object, no markdown fences, with exactly these fields:
- "matchScore": integer 0-100, overall fit
- "matchRationale": one or two sentences justifying the score
- "strengths": array of short strings
- "gaps": array of short strings
- "dimensions": array of {"dimension", "score", "rationale"} objects covering technical alignment, transferable skills, career stage and learning agility
- "hiddenGem": boolean, true only when the candidate is a strong unconventional fit despite weak direct skill overlap`

func (a *Analyzer) AnalyzeFit(ctx context.Context, j job.Job, c candidate.Candidate) (*ai.FitAnalysis, error) {
	prompt, err := buildFitPrompt(j, c)
	if err != nil {
		return nil, err
	}

	a.logger.Debug("fit analysis request",
		zap.String("job_id", j.ID.String()),
		zap.String("candidate_id", c.ID.String()),
		zap.Int("prompt_length", len(prompt)),
	)

	raw, err := a.generator.GenerateContent(ctx, prompt)
	if err != nil {
		return nil, err
	}

	result, err := parseFitResponse(raw)
	if err != nil {
		return nil, err
	}

	a.logger.Debug("fit analysis response",
		zap.String("job_id", j.ID.String()),
		zap.String("candidate_id", c.ID.String()),
		zap.Int("match_score", result.MatchScore),
	)

	return result, nil
}

func buildFitPrompt(j job.Job, c candidate.Candidate) (string, error) {
	jobPayload := map[string]any{
		"title":          j.Title,
		"department":     j.Department,
		"location":       j.Location,
		"description":    j.Description,
		"requiredSkills": j.RequiredSkills,
	}
	if j.CompanyContext != nil {
		jobPayload["companyContext"] = map[string]any{
			"industry":           j.CompanyContext.Industry,
			"companySize":        j.CompanyContext.CompanySize,
			"reportingStructure": j.CompanyContext.ReportingStructure,
			"notes":              j.CompanyContext.RoleContextNotes,
		}
	}

	candPayload := map[string]any{
		"name":   c.Name,
		"type":   string(c.Type),
		"skills": c.Skills,
	}
	switch {
	case c.Internal != nil:
		candPayload["currentRole"] = c.Internal.CurrentRole
		candPayload["department"] = c.Internal.Department
		candPayload["performanceRating"] = c.Internal.PerformanceRating
		candPayload["learningAgility"] = c.Internal.LearningAgility
		candPayload["careerAspirations"] = c.Internal.CareerAspirations
	case c.Past != nil:
		candPayload["previousRoleAppliedFor"] = c.Past.PreviousRoleAppliedFor
		candPayload["notes"] = c.Past.Notes
	case c.Uploaded != nil:
		candPayload["summary"] = c.Uploaded.Summary
		candPayload["experienceYears"] = c.Uploaded.ExperienceYears
	}

	jobJSON, err := json.MarshalIndent(jobPayload, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal job payload: %w", err)
	}
	candJSON, err := json.MarshalIndent(candPayload, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal candidate payload: %w", err)
	}

	prompt := strings.ReplaceAll(fitPromptTemplate, "{{JOB_JSON}}", string(jobJSON))
	prompt = strings.ReplaceAll(prompt, "{{CANDIDATE_JSON}}", string(candJSON))
	return prompt, nil
}

func parseFitResponse(raw string) (*ai.FitAnalysis, error) {
	cleaned := extractJSON(raw)

	var result ai.FitAnalysis
	if err := json.Unmarshal([]byte(cleaned), &result); err != nil {
		return nil, fmt.Errorf("parse fit analysis response: %w", err)
	}

	if result.MatchScore < 0 || result.MatchScore > 100 {
		return nil, fmt.Errorf("match score %d out of range", result.MatchScore)
	}
	if strings.TrimSpace(result.MatchRationale) == "" {
		return nil, fmt.Errorf("fit analysis response missing rationale")
	}

	result.Raw = raw
	return &result, nil
}

// extractJSON strips optional markdown code fences around the model
// output.
func extractJSON(raw string) string {
	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(raw, "```") {
		raw = strings.TrimPrefix(raw, "```json")
		raw = strings.TrimPrefix(raw, "```")
		raw = strings.TrimSpace(raw)
		if idx := strings.LastIndex(raw, "```"); idx != -1 {
			raw = raw[:idx]
		}
	}
	raw = strings.Trim(raw, "`")
	return strings.TrimSpace(raw)
}
