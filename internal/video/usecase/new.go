package usecase

import (
	"trustrate-srv/internal/video"
	"trustrate-srv/pkg/log"
	"trustrate-srv/pkg/youtube"
)

// Config - knobs for video retrieval.
type Config struct {
	// MaxComments caps how many top-level comments one fetch may pull.
	MaxComments int
}

// DefaultConfig - default retrieval configuration.
func DefaultConfig() Config {
	return Config{
		MaxComments: 1000,
	}
}

// implUseCase - Implementation of the UseCase interface.
type implUseCase struct {
	yt  youtube.IYouTube
	l   log.Logger
	cfg Config
}

// New - Factory function.
func New(yt youtube.IYouTube, l log.Logger, cfg Config) video.UseCase {
	if cfg.MaxComments <= 0 {
		cfg.MaxComments = DefaultConfig().MaxComments
	}
	return &implUseCase{
		yt:  yt,
		l:   l,
		cfg: cfg,
	}
}
