package server

import (
	"context"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"customer-service/genproto/customerpb"
	"customer-service/internal/config"
	"customer-service/internal/events"
	"customer-service/internal/handler"
	"customer-service/internal/repository"
	"customer-service/internal/router"
	"customer-service/internal/service/account"
	"customer-service/pkg/cache"
	"customer-service/pkg/id"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/reflection"
)

// Server owns the two listeners and every connection they depend on.
type Server struct {
	cfg    *config.AppConfig
	logger *zap.Logger

	httpSrv  *http.Server
	grpcSrv  *grpc.Server
	db       *pgxpool.Pool
	store    *cache.Cache
	producer *events.Producer
}

func New(cfg *config.AppConfig, logger *zap.Logger) (*Server, error) {
	db, err := pgxpool.New(context.Background(), cfg.DBConnString)
	if err != nil {
		return nil, err
	}

	sf, err := id.NewSnowflake(cfg.SnowflakeNode)
	if err != nil {
		db.Close()
		return nil, err
	}

	store := cache.NewCache([]string{cfg.RedisAddr}, cfg.RedisPass, false)

	// Producer stays nil when kafka is disabled; the service treats
	// that as "do not publish".
	var producer *events.Producer
	if cfg.KafkaEnabled {
		producer, err = events.NewProducer(cfg.KafkaBrokers, logger)
		if err != nil {
			db.Close()
			store.Close()
			return nil, err
		}
	}

	repo := repository.NewUserCustomerRepository(db)
	svc := account.NewAccountService(repo, sf, producer, logger, cfg.ExcludeDeleted)

	customerHandler := handler.NewCustomerHandler(svc, logger, !cfg.IsProduction())
	grpcHandler := handler.NewGRPCCustomerHandler(svc, logger)

	grpcSrv := grpc.NewServer()
	customerpb.RegisterCustomerServiceServer(grpcSrv, grpcHandler)
	reflection.Register(grpcSrv)

	httpSrv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: router.SetupRoutes(customerHandler, store, cfg, logger),
	}

	return &Server{
		cfg:      cfg,
		logger:   logger,
		httpSrv:  httpSrv,
		grpcSrv:  grpcSrv,
		db:       db,
		store:    store,
		producer: producer,
	}, nil
}

// Run serves both listeners until a shutdown signal or a listener failure.
func (s *Server) Run() error {
	errCh := make(chan error, 2)

	go func() {
		lis, err := net.Listen("tcp", s.cfg.GRPCAddr)
		if err != nil {
			errCh <- err
			return
		}
		s.logger.Info("grpc server listening", zap.String("addr", s.cfg.GRPCAddr))
		errCh <- s.grpcSrv.Serve(lis)
	}()

	go func() {
		s.logger.Info("http server listening", zap.String("addr", s.cfg.HTTPAddr))
		err := s.httpSrv.ListenAndServe()
		if err == http.ErrServerClosed {
			err = nil
		}
		errCh <- err
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-sigChan:
		s.logger.Info("shutdown signal received", zap.String("signal", sig.String()))
	case err := <-errCh:
		if err != nil {
			s.logger.Error("listener failed", zap.Error(err))
			s.shutdown()
			return err
		}
	}

	s.shutdown()
	return nil
}

func (s *Server) shutdown() {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpSrv.Shutdown(shutdownCtx); err != nil {
		s.logger.Warn("http shutdown", zap.Error(err))
	}
	s.grpcSrv.GracefulStop()

	if s.producer != nil {
		if err := s.producer.Close(); err != nil {
			s.logger.Warn("closing kafka producer", zap.Error(err))
		}
	}
	if err := s.store.Close(); err != nil {
		s.logger.Warn("closing redis", zap.Error(err))
	}
	s.db.Close()

	s.logger.Info("graceful shutdown complete")
}
