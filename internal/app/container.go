package app

import (
	"context"
	"time"

	"go.uber.org/zap"

	"talent-sonar/internal/ai"
	"talent-sonar/internal/ai/gemini"
	"talent-sonar/internal/config"
	"talent-sonar/internal/database"
	"talent-sonar/internal/database/migration"
	dbpostgres "talent-sonar/internal/database/postgres"
	"talent-sonar/internal/database/seeder"
	"talent-sonar/internal/infrastructure/cache"
	"talent-sonar/internal/pkg/jwt"
	"talent-sonar/internal/repository"
	"talent-sonar/internal/usecase"
	"talent-sonar/internal/ws"
)

// Container owns every long-lived dependency. Construction order is
// config, database, cache, repositories, AI client, usecases.
type Container struct {
	Config config.Config
	Logger *zap.Logger
	DB     database.DB
	Cache  *cache.Redis
	Hub    *ws.Hub
	JWT    jwt.Service

	Jobs       usecase.JobUsecase
	Candidates usecase.CandidateUsecase
	Ranking    usecase.RankingUsecase
	Feedback   usecase.FeedbackUsecase
	Analysis   usecase.AnalysisUsecase
}

func NewContainer(cfg config.Config, logger *zap.Logger) (*Container, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	if err := (migration.Runner{}).Run(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	redisCache := cache.NewRedis(cfg.Redis, logger)

	jobRepo := repository.NewPostgresJobRepository(db)
	candidateRepo := repository.NewPostgresCandidateRepository(db)
	scoreRepo := repository.NewPostgresMatchScoreRepository(db)
	feedbackRepo := repository.NewPostgresFeedbackRepository(db)

	if err := seeder.NewDemoSeeder(jobRepo, candidateRepo, scoreRepo, logger).Run(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	var analyzer ai.Analyzer
	var batch *ai.BatchRunner
	if cfg.Gemini.APIKey != "" {
		gen, err := gemini.NewGenerator(ctx, cfg.Gemini.APIKey, cfg.Gemini.Model)
		if err != nil {
			_ = db.Close()
			return nil, err
		}
		analyzer = gemini.NewAnalyzer(gen, logger)
		batch = ai.NewBatchRunner(analyzer, cfg.Scoring.BatchAnalysisDelay, logger)
	} else {
		logger.Warn("GEMINI_API_KEY not set, AI analysis endpoints disabled")
	}

	hub := ws.NewHub(logger)
	ws.SetDefaultHub(hub)

	c := &Container{
		Config: cfg,
		Logger: logger,
		DB:     db,
		Cache:  redisCache,
		Hub:    hub,
		JWT:    jwt.NewHMACService(cfg.JWT.Secret, cfg.JWT.ExpiresIn),

		Jobs:       usecase.NewJobUsecase(jobRepo, candidateRepo, scoreRepo, redisCache, logger),
		Candidates: usecase.NewCandidateUsecase(candidateRepo, jobRepo, scoreRepo, redisCache, cfg.Scoring, logger),
		Ranking:    usecase.NewRankingUsecase(jobRepo, candidateRepo, redisCache, logger),
		Feedback:   usecase.NewFeedbackUsecase(candidateRepo, jobRepo, feedbackRepo, logger),
		Analysis:   usecase.NewAnalysisUsecase(jobRepo, candidateRepo, scoreRepo, analyzer, batch, redisCache, logger),
	}
	return c, nil
}

func (c *Container) Close() error {
	if c == nil || c.DB == nil {
		return nil
	}
	return c.DB.Close()
}
