package app

import (
	"context"
	"errors"

	"github.com/storefront-next/internal/service"
)

// SessionSweeperService 过期会话清理服务
type SessionSweeperService struct {
	store *service.SessionStore
}

// NewSessionSweeperService 创建会话清理服务
func NewSessionSweeperService(store *service.SessionStore) *SessionSweeperService {
	return &SessionSweeperService{store: store}
}

// Name 服务名称
func (s *SessionSweeperService) Name() string {
	return "session_sweeper"
}

// Start 启动周期清理，阻塞至 ctx 结束
func (s *SessionSweeperService) Start(ctx context.Context) error {
	if s == nil || s.store == nil {
		return errors.New("session store not initialized")
	}
	s.store.StartSweeper()
	<-ctx.Done()
	return nil
}

// Stop 停止清理并关闭全部会话计时器
func (s *SessionSweeperService) Stop(ctx context.Context) error {
	if s == nil || s.store == nil {
		return nil
	}
	_ = ctx
	s.store.Close()
	return nil
}
