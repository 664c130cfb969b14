package usecase

import (
	"math/rand"
	"sync"
	"time"

	"trustrate-srv/internal/analysis"
	"trustrate-srv/internal/analysis/repository"
	"trustrate-srv/pkg/classifier"
	"trustrate-srv/pkg/log"
)

// Config - knobs for the analysis pipeline.
type Config struct {
	// HealthTimeout bounds the classifier health check.
	HealthTimeout time.Duration
	// ClassifyTimeout bounds the whole concurrent batch dispatch; expiry is
	// treated as gateway failure and triggers the local fallback.
	ClassifyTimeout time.Duration
}

// DefaultConfig - default pipeline configuration.
func DefaultConfig() Config {
	return Config{
		HealthTimeout:   3 * time.Second,
		ClassifyTimeout: 2 * time.Minute,
	}
}

// implUseCase - Implementation of the UseCase interface.
type implUseCase struct {
	classifier   classifier.IClassifier
	cacheRepo    repository.CacheRepository
	postgresRepo repository.PostgresRepository
	publisher    analysis.EventPublisher
	l            log.Logger
	cfg          Config

	// rng backs the random stratum of stratified sampling. rand.Rand is not
	// safe for concurrent use, hence the mutex.
	rngMu sync.Mutex
	rng   *rand.Rand
}

// New - Factory function. cacheRepo, postgresRepo and publisher may be nil;
// the pipeline then skips the corresponding side effects.
func New(
	cl classifier.IClassifier,
	cacheRepo repository.CacheRepository,
	postgresRepo repository.PostgresRepository,
	publisher analysis.EventPublisher,
	l log.Logger,
	cfg Config,
) analysis.UseCase {
	if cfg.HealthTimeout <= 0 {
		cfg.HealthTimeout = DefaultConfig().HealthTimeout
	}
	if cfg.ClassifyTimeout <= 0 {
		cfg.ClassifyTimeout = DefaultConfig().ClassifyTimeout
	}
	return &implUseCase{
		classifier:   cl,
		cacheRepo:    cacheRepo,
		postgresRepo: postgresRepo,
		publisher:    publisher,
		l:            l,
		cfg:          cfg,
		rng:          rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}
