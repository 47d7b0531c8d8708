package seeder

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"talent-sonar/internal/domain/candidate"
	"talent-sonar/internal/domain/job"
	"talent-sonar/internal/repository"
	"talent-sonar/internal/scoring"
)

// DemoSeeder loads a starter dataset on an empty database so the
// dashboard has something to show on first run. It goes through the
// repositories and the scoring pass, so seeded candidates land with
// complete score maps exactly as ingested ones would.
type DemoSeeder struct {
	jobs       repository.JobRepository
	candidates repository.CandidateRepository
	scores     repository.MatchScoreRepository
	logger     *zap.Logger
}

func NewDemoSeeder(jobs repository.JobRepository, candidates repository.CandidateRepository, scores repository.MatchScoreRepository, logger *zap.Logger) *DemoSeeder {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DemoSeeder{jobs: jobs, candidates: candidates, scores: scores, logger: logger}
}

func (s *DemoSeeder) Name() string { return "demo" }

func (s *DemoSeeder) Run(ctx context.Context) error {
	count, err := s.jobs.CountAll(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		s.logger.Debug("demo seed skipped, jobs table not empty", zap.Int("jobs", count))
		return nil
	}

	jobs := demoJobs()
	for _, j := range jobs {
		if err := s.jobs.Insert(ctx, j); err != nil {
			return err
		}
	}

	scored, _ := scoring.ScoreAllForNewCandidates(demoCandidates(), jobs)
	if err := s.candidates.InsertBatch(ctx, scored); err != nil {
		return err
	}

	now := time.Now().UTC()
	batch := make([]repository.MatchScoreUpsert, 0, len(scored)*len(jobs))
	for _, c := range scored {
		for jobID, score := range c.MatchScores {
			batch = append(batch, repository.MatchScoreUpsert{
				CandidateID: c.ID,
				JobID:       jobID,
				Score:       score,
				Rationale:   c.MatchRationales[jobID],
				Provenance:  repository.ProvenanceHeuristic,
				ScoredAt:    now,
			})
		}
	}
	if err := s.scores.UpsertBatch(ctx, batch); err != nil {
		return err
	}

	s.logger.Info("demo data seeded",
		zap.Int("jobs", len(jobs)),
		zap.Int("candidates", len(scored)),
	)
	return nil
}

func demoJobs() []job.Job {
	posted := func(s string) time.Time {
		t, _ := time.Parse("2006-01-02", s)
		return t
	}

	return []job.Job{
		{
			ID:             uuid.New(),
			Title:          "Senior Software Engineer (React)",
			Department:     "Technology",
			Location:       "Budapest, Hungary",
			Description:    "Join our dynamic tech team to build next-generation software solutions. Responsible for full software development lifecycle, from conception to deployment.",
			RequiredSkills: []string{"React", "Node.js", "TypeScript", "AWS", "Agile", "Microservices"},
			PostedAt:       posted("2025-05-28"),
			Status:         job.StatusOpen,
			CompanyContext: &job.CompanyContext{
				Industry:           "SaaS",
				CompanySize:        "500-1000 employees",
				ReportingStructure: "Reports to Engineering Manager",
				RoleContextNotes:   "Senior implies team mentorship and architectural input. Progression is to Staff Engineer.",
			},
		},
		{
			ID:             uuid.New(),
			Title:          "Marketing Manager",
			Department:     "Marketing",
			Location:       "Debrecen, Hungary",
			Description:    "Lead our marketing strategy and execution. Develop and implement innovative campaigns to drive brand awareness and customer acquisition.",
			RequiredSkills: []string{"Digital Marketing", "SEO/SEM", "Content Strategy", "Social Media Marketing", "Analytics"},
			PostedAt:       posted("2025-05-25"),
			Status:         job.StatusOpen,
			CompanyContext: &job.CompanyContext{
				Industry:           "E-commerce",
				CompanySize:        "200-500 employees",
				ReportingStructure: "Reports to Head of Marketing",
			},
		},
		{
			ID:             uuid.New(),
			Title:          "HR Business Partner",
			Department:     "Human Resources",
			Location:       "Budapest, Hungary",
			Description:    "Partner with business leaders to provide HR guidance and support. Focus on talent management, employee relations, and organizational development.",
			RequiredSkills: []string{"Employee Relations", "Talent Management", "HR Policies", "Performance Management", "Hungarian Labor Law"},
			PostedAt:       posted("2025-05-20"),
			Status:         job.StatusOnHold,
		},
		{
			ID:             uuid.New(),
			Title:          "Data Scientist",
			Department:     "Business Intelligence",
			Location:       "Budapest, Hungary (Hybrid)",
			Description:    "Analyze large amounts of raw information to find patterns and build data products that extract valuable business insights.",
			RequiredSkills: []string{"Python", "R", "SQL", "Machine Learning", "TensorFlow", "Scikit-learn", "Data Visualization"},
			PostedAt:       posted("2025-05-18"),
			Status:         job.StatusOpen,
		},
		{
			ID:             uuid.New(),
			Title:          "DevOps Engineer",
			Department:     "Technology",
			Location:       "Remote (Hungary)",
			Description:    "Manage and improve our CI/CD pipelines, cloud infrastructure and monitoring systems. We are an AWS-native company.",
			RequiredSkills: []string{"AWS", "Kubernetes", "Docker", "Terraform", "CI/CD", "Linux"},
			PostedAt:       posted("2025-05-10"),
			Status:         job.StatusOpen,
		},
		{
			ID:             uuid.New(),
			Title:          "Senior QA Automation Engineer",
			Department:     "Technology",
			Location:       "Budapest, Hungary",
			Description:    "Design and develop automation frameworks for our applications, creating and maintaining automated test scripts.",
			RequiredSkills: []string{"Test Automation", "Selenium", "Cypress", "JavaScript", "CI/CD", "API Testing"},
			PostedAt:       posted("2025-05-12"),
			Status:         job.StatusClosed,
		},
		{
			ID:             uuid.New(),
			Title:          "UI/UX Designer",
			Department:     "Product",
			Location:       "Budapest, Hungary",
			Description:    "Create amazing user experiences, translating high-level requirements into interaction flows and intuitive interfaces.",
			RequiredSkills: []string{"UI Design", "UX Research", "Figma", "Prototyping", "Wireframing"},
			PostedAt:       posted("2025-05-08"),
			Status:         job.StatusOpen,
		},
	}
}

func demoCandidates() []candidate.Candidate {
	return []candidate.Candidate{
		{
			ID:     uuid.New(),
			Type:   candidate.TypeInternal,
			Name:   "Eszter Kovács",
			Email:  "eszter.kovacs@example.com",
			Skills: []string{"React", "TypeScript", "Node.js", "Agile"},
			Internal: &candidate.InternalProfile{
				CurrentRole:       "Software Engineer II",
				Department:        "Technology",
				ExperienceYears:   5,
				PerformanceRating: 4,
				CareerAspirations: "Grow into a senior frontend role with mentorship responsibility.",
				LearningAgility:   4,
			},
			ProfileStatus:    candidate.ProfileComplete,
			EmploymentStatus: candidate.EmploymentAvailable,
		},
		{
			ID:     uuid.New(),
			Type:   candidate.TypeInternal,
			Name:   "Gábor Szabó",
			Email:  "gabor.szabo@example.com",
			Skills: []string{"Python", "SQL", "Data Visualization", "Excel"},
			Internal: &candidate.InternalProfile{
				CurrentRole:       "Business Analyst",
				Department:        "Business Intelligence",
				ExperienceYears:   3,
				PerformanceRating: 5,
				CareerAspirations: "Move from analytics into a data science position.",
				DevelopmentGoals:  "Complete a machine learning certification.",
				LearningAgility:   5,
			},
			ProfileStatus:    candidate.ProfileComplete,
			EmploymentStatus: candidate.EmploymentAvailable,
		},
		{
			ID:     uuid.New(),
			Type:   candidate.TypePast,
			Name:   "Anna Tóth",
			Email:  "anna.toth@example.com",
			Skills: []string{"Digital Marketing", "Content Strategy", "Analytics", "Social Media Marketing"},
			Past: &candidate.PastProfile{
				PreviousRoleAppliedFor: "Marketing Specialist",
				LastContactDate:        "2024-11-03",
				Notes:                  "Strong second-place finish; keep warm for senior marketing openings.",
			},
			ProfileStatus:    candidate.ProfileComplete,
			EmploymentStatus: candidate.EmploymentAvailable,
		},
		{
			ID:     uuid.New(),
			Type:   candidate.TypePast,
			Name:   "Péter Nagy",
			Email:  "peter.nagy@example.com",
			Skills: []string{"AWS", "Docker", "Linux", "CI/CD"},
			Past: &candidate.PastProfile{
				PreviousRoleAppliedFor: "Site Reliability Engineer",
				LastContactDate:        "2025-01-22",
				Notes:                  "Declined previous offer on compensation; open to remote roles.",
			},
			ProfileStatus:    candidate.ProfileComplete,
			EmploymentStatus: candidate.EmploymentAvailable,
		},
		{
			ID:     uuid.New(),
			Type:   candidate.TypeUploaded,
			Name:   "Dóra Horváth",
			Email:  "dora.horvath@example.com",
			Skills: []string{"UI Design", "Figma", "Prototyping", "UX Research"},
			Uploaded: &candidate.UploadedProfile{
				Summary:         "Product designer with six years across early-stage startups, strong portfolio in design systems.",
				ExperienceYears: 6,
				FileName:        "dora_horvath_cv.pdf",
			},
			ProfileStatus:    candidate.ProfileComplete,
			EmploymentStatus: candidate.EmploymentAvailable,
		},
		{
			ID:     uuid.New(),
			Type:   candidate.TypeUploaded,
			Name:   "Bence Varga",
			Email:  "bence.varga@example.com",
			Skills: []string{"Kubernetes", "Terraform", "AWS", "Go"},
			Uploaded: &candidate.UploadedProfile{
				Summary:         "Platform engineer focused on infrastructure as code and cluster operations.",
				ExperienceYears: 4,
				FileName:        "bence_varga_cv.pdf",
			},
			ProfileStatus:    candidate.ProfileComplete,
			EmploymentStatus: candidate.EmploymentAvailable,
		},
		{
			ID:               uuid.New(),
			Type:             candidate.TypeUploaded,
			Name:             "Réka Kiss",
			Email:            "reka.kiss@example.com",
			Skills:           []string{},
			Uploaded:         &candidate.UploadedProfile{FileName: "reka_kiss_cv.pdf"},
			ProfileStatus:    candidate.ProfilePlaceholder,
			EmploymentStatus: candidate.EmploymentAvailable,
		},
	}
}
