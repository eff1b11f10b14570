package worker

import (
	"context"
	"errors"
	"sync"

	"github.com/storefront-next/internal/config"
	"github.com/storefront-next/internal/queue"

	"github.com/hibiken/asynq"
)

// Service 异步队列服务
type Service struct {
	name     string
	server   *asynq.Server
	mux      *asynq.ServeMux
	consumer *Consumer

	shutdownOnce sync.Once
}

// NewService 创建异步队列服务
func NewService(cfg *config.QueueConfig, consumer *Consumer) (*Service, error) {
	if cfg == nil || !cfg.Enabled {
		return nil, errors.New("queue disabled")
	}
	if consumer == nil {
		return nil, errors.New("consumer is nil")
	}
	opt, serverCfg := queue.BuildServerConfig(cfg)
	server := asynq.NewServer(opt, serverCfg)
	mux := asynq.NewServeMux()
	consumer.Register(mux)
	return &Service{
		name:     "worker",
		server:   server,
		mux:      mux,
		consumer: consumer,
	}, nil
}

// Name 服务名称
func (s *Service) Name() string {
	if s == nil || s.name == "" {
		return "worker"
	}
	return s.name
}

// Start 启动服务，阻塞至 ctx 结束后关闭
func (s *Service) Start(ctx context.Context) error {
	if s == nil || s.server == nil || s.mux == nil {
		return errors.New("worker not initialized")
	}
	return runUntilDone(ctx, func() error { return s.server.Start(s.mux) }, s.shutdown)
}

// Stop 停止服务
func (s *Service) Stop(ctx context.Context) error {
	if s == nil || s.server == nil {
		return nil
	}
	s.shutdown()
	return nil
}

func (s *Service) shutdown() {
	s.shutdownOnce.Do(s.server.Shutdown)
}

// runUntilDone 启动成功后等待 ctx 结束再关闭
func runUntilDone(ctx context.Context, start func() error, shutdown func()) error {
	if err := start(); err != nil {
		return err
	}
	<-ctx.Done()
	shutdown()
	return nil
}
