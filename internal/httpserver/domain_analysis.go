package httpserver

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	"trustrate-srv/internal/analysis"
	analysisHTTP "trustrate-srv/internal/analysis/delivery/http"
	analysisKafka "trustrate-srv/internal/analysis/delivery/kafka"
	analysisPostgre "trustrate-srv/internal/analysis/repository/postgre"
	analysisRedis "trustrate-srv/internal/analysis/repository/redis"
	analysisUsecase "trustrate-srv/internal/analysis/usecase"
	"trustrate-srv/internal/middleware"
	videoUsecase "trustrate-srv/internal/video/usecase"
)

// setupAnalysisDomain initializes the analysis domain (repos -> usecases -> delivery).
func (srv *HTTPServer) setupAnalysisDomain(r *gin.RouterGroup, mw middleware.Middleware) error {
	ctx := context.Background()

	// Repositories
	cacheTTL := time.Duration(srv.config.Analysis.CacheTTL) * time.Second
	cacheRepo := analysisRedis.New(srv.redisClient, srv.l, cacheTTL)
	postgresRepo := analysisPostgre.New(srv.postgresDB, srv.l)

	// Event publisher (optional)
	var publisher analysis.EventPublisher
	if srv.kafkaProducer != nil {
		publisher = analysisKafka.NewPublisher(srv.kafkaProducer, srv.l)
	}

	// UseCases
	videoUC := videoUsecase.New(srv.youtubeClient, srv.l, videoUsecase.Config{
		MaxComments: srv.config.YouTube.MaxComments,
	})
	uc := analysisUsecase.New(
		srv.classifierClient,
		cacheRepo,
		postgresRepo,
		publisher,
		srv.l,
		analysisUsecase.Config{
			HealthTimeout:   time.Duration(srv.config.Classifier.HealthTimeout) * time.Second,
			ClassifyTimeout: time.Duration(srv.config.Classifier.ClassifyTimeout) * time.Second,
		},
	)

	// HTTP Handler
	handler := analysisHTTP.New(srv.l, uc, videoUC, srv.discord)
	handler.RegisterRoutes(r, mw)

	srv.l.Infof(ctx, "Analysis domain registered")
	return nil
}
