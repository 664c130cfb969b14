package httpserver

import (
	"database/sql"
	"errors"

	"trustrate-srv/config"
	"trustrate-srv/pkg/classifier"
	"trustrate-srv/pkg/discord"
	pkgJWT "trustrate-srv/pkg/jwt"
	pkgKafka "trustrate-srv/pkg/kafka"
	"trustrate-srv/pkg/log"
	pkgRedis "trustrate-srv/pkg/redis"
	"trustrate-srv/pkg/youtube"

	"github.com/gin-gonic/gin"
)

type HTTPServer struct {
	// Server Configuration
	gin         *gin.Engine
	l           log.Logger
	host        string
	port        int
	mode        string
	environment string

	// Database Configuration
	postgresDB  *sql.DB
	redisClient pkgRedis.IRedis

	// Messaging Configuration (optional)
	kafkaProducer pkgKafka.IProducer

	// External Clients
	youtubeClient    youtube.IYouTube
	classifierClient classifier.IClassifier

	// Authentication & Security Configuration
	config     *config.Config
	jwtManager *pkgJWT.Manager

	// Monitoring & Notification Configuration
	discord discord.IDiscord
}

type Config struct {
	// Server Configuration
	Host        string
	Port        int
	Mode        string
	Environment string

	// Database Configuration
	PostgresDB  *sql.DB
	RedisClient pkgRedis.IRedis

	// Messaging Configuration (optional)
	KafkaProducer pkgKafka.IProducer

	// External Clients
	YouTubeClient    youtube.IYouTube
	ClassifierClient classifier.IClassifier

	// Authentication & Security Configuration
	Config     *config.Config
	JWTManager *pkgJWT.Manager

	// Monitoring & Notification Configuration
	Discord discord.IDiscord
}

// New creates a new HTTPServer instance with the provided configuration.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.New(),
		host:        cfg.Host,
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,

		postgresDB:  cfg.PostgresDB,
		redisClient: cfg.RedisClient,

		kafkaProducer: cfg.KafkaProducer,

		youtubeClient:    cfg.YouTubeClient,
		classifierClient: cfg.ClassifierClient,

		config:     cfg.Config,
		jwtManager: cfg.JWTManager,

		discord: cfg.Discord,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

// validate validates that all required dependencies are provided.
func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	// host can be empty (listen on all interfaces)
	if srv.port == 0 {
		return errors.New("port is required")
	}

	if srv.postgresDB == nil {
		return errors.New("postgresDB is required")
	}
	if srv.redisClient == nil {
		return errors.New("redisClient is required")
	}

	if srv.youtubeClient == nil {
		return errors.New("youtubeClient is required")
	}
	if srv.classifierClient == nil {
		return errors.New("classifierClient is required")
	}

	if srv.config == nil {
		return errors.New("config is required")
	}
	if srv.jwtManager == nil {
		return errors.New("jwtManager is required")
	}

	// kafkaProducer and discord are optional

	return nil
}
