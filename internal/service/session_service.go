package service

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/storefront-next/internal/config"
	"github.com/storefront-next/internal/logger"
	"github.com/storefront-next/internal/worker"

	"github.com/google/uuid"
)

const (
	defaultSessionIdleTTL       = 30 * time.Minute
	defaultSessionSweepInterval = time.Minute
	defaultSessionMaxActive     = 10000
)

// SlideSource 新会话的轮播页来源
type SlideSource interface {
	Slides() ([]CarouselSlide, error)
}

// Session 单个浏览会话，独占账本、优惠码、支付方式与展示计时器
type Session struct {
	id        string
	createdAt time.Time
	lastSeen  atomic.Int64

	mu            sync.Mutex
	closed        bool
	ledger        *Ledger
	couponCode    string
	paymentMethod string

	badge    *CartBadge
	carousel *Carousel
	hint     *SearchHint
}

// ID 会话 ID
func (s *Session) ID() string {
	return s.id
}

// CreatedAt 创建时间
func (s *Session) CreatedAt() time.Time {
	return s.createdAt
}

// Do 串行执行会话内操作，会话已关闭时返回 ErrSessionNotFound
func (s *Session) Do(fn func() error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrSessionNotFound
	}
	s.touch(time.Now())
	return fn()
}

// Ledger 购物车账本，仅在 Do 内使用
func (s *Session) Ledger() *Ledger {
	return s.ledger
}

// CouponCode 当前优惠码，仅在 Do 内使用
func (s *Session) CouponCode() string {
	return s.couponCode
}

// SetCouponCode 设置优惠码，仅在 Do 内使用
func (s *Session) SetCouponCode(code string) {
	s.couponCode = code
}

// PaymentMethod 已选支付方式，仅在 Do 内使用
func (s *Session) PaymentMethod() string {
	return s.paymentMethod
}

// SetPaymentMethod 设置支付方式，仅在 Do 内使用
func (s *Session) SetPaymentMethod(id string) {
	s.paymentMethod = id
}

// Badge 购物车角标
func (s *Session) Badge() *CartBadge {
	return s.badge
}

// Carousel 首页轮播
func (s *Session) Carousel() *Carousel {
	return s.carousel
}

// SearchHint 搜索提示语
func (s *Session) SearchHint() *SearchHint {
	return s.hint
}

func (s *Session) touch(now time.Time) {
	s.lastSeen.Store(now.UnixNano())
}

func (s *Session) idleSince(now time.Time) time.Duration {
	return now.Sub(time.Unix(0, s.lastSeen.Load()))
}

// close 标记关闭并停止全部计时器
func (s *Session) close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	s.mu.Unlock()

	s.badge.Stop()
	s.carousel.Stop()
	s.hint.Stop()
}

// SessionStore 会话仓库
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*Session

	idleTTL          time.Duration
	sweepInterval    time.Duration
	carouselInterval time.Duration
	carouselResume   time.Duration
	hintInterval     time.Duration
	bumpDuration     time.Duration
	maxActive        int
	slides           SlideSource

	sweepMu sync.Mutex
	sweeper *worker.IntervalTask
}

// NewSessionStore 创建会话仓库
func NewSessionStore(cfg config.SessionConfig, slides SlideSource) *SessionStore {
	store := &SessionStore{
		sessions:         make(map[string]*Session),
		idleTTL:          secondsOr(cfg.IdleTTLSeconds, defaultSessionIdleTTL),
		sweepInterval:    secondsOr(cfg.SweepIntervalSeconds, defaultSessionSweepInterval),
		carouselInterval: millisOr(cfg.CarouselIntervalMS, defaultCarouselInterval),
		carouselResume:   millisOr(cfg.CarouselResumeMS, defaultCarouselResume),
		hintInterval:     millisOr(cfg.SearchHintIntervalMS, defaultSearchHintInterval),
		bumpDuration:     millisOr(cfg.CartBumpDurationMS, defaultCartBumpDuration),
		maxActive:        defaultSessionMaxActive,
		slides:           slides,
	}
	if cfg.MaxActive > 0 {
		store.maxActive = cfg.MaxActive
	}
	return store
}

// Create 创建新会话
func (s *SessionStore) Create() *Session {
	var slides []CarouselSlide
	if s.slides != nil {
		loaded, err := s.slides.Slides()
		if err != nil {
			logger.Warnw("session_load_slides_failed", "error", err)
		}
		slides = loaded
	}

	ledger := NewLedger()
	session := &Session{
		id:        uuid.NewString(),
		createdAt: time.Now(),
		ledger:    ledger,
		badge:     NewCartBadge(ledger, s.bumpDuration),
		carousel:  NewCarousel(slides, s.carouselInterval, s.carouselResume),
		hint:      NewSearchHint(DefaultSearchHints, s.hintInterval),
	}
	session.touch(session.createdAt)

	s.mu.Lock()
	evicted := s.evictOldestLocked()
	s.sessions[session.id] = session
	total := len(s.sessions)
	s.mu.Unlock()

	for _, old := range evicted {
		old.close()
		logger.Infow("session_evicted", "session_id", old.id, "max_active", s.maxActive)
	}
	logger.Debugw("session_created", "session_id", session.id, "slides", len(slides), "active_sessions", total)
	return session
}

// evictOldestLocked 达到上限时移除最久未活跃的会话，调用方持有写锁
func (s *SessionStore) evictOldestLocked() []*Session {
	evicted := make([]*Session, 0, 1)
	for s.maxActive > 0 && len(s.sessions) >= s.maxActive {
		var oldest *Session
		for _, session := range s.sessions {
			if oldest == nil || session.lastSeen.Load() < oldest.lastSeen.Load() {
				oldest = session
			}
		}
		if oldest == nil {
			break
		}
		delete(s.sessions, oldest.id)
		evicted = append(evicted, oldest)
	}
	return evicted
}

// Get 获取会话并刷新活跃时间
func (s *SessionStore) Get(id string) (*Session, error) {
	if id == "" {
		return nil, ErrSessionNotFound
	}
	s.mu.RLock()
	session, ok := s.sessions[id]
	s.mu.RUnlock()
	if !ok {
		return nil, ErrSessionNotFound
	}
	now := time.Now()
	if session.idleSince(now) > s.idleTTL {
		s.Delete(id)
		return nil, ErrSessionNotFound
	}
	session.touch(now)
	return session, nil
}

// Resolve 获取会话，不存在时新建
func (s *SessionStore) Resolve(id string) (*Session, bool) {
	if session, err := s.Get(id); err == nil {
		return session, false
	}
	return s.Create(), true
}

// Delete 销毁会话并停止其计时器
func (s *SessionStore) Delete(id string) bool {
	s.mu.Lock()
	session, ok := s.sessions[id]
	if ok {
		delete(s.sessions, id)
	}
	s.mu.Unlock()
	if !ok {
		return false
	}
	session.close()
	logger.Debugw("session_closed", "session_id", id)
	return true
}

// Len 活跃会话数
func (s *SessionStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// SweepExpired 清理空闲超时的会话
func (s *SessionStore) SweepExpired(now time.Time) int {
	s.mu.Lock()
	expired := make([]*Session, 0)
	for id, session := range s.sessions {
		if session.idleSince(now) > s.idleTTL {
			expired = append(expired, session)
			delete(s.sessions, id)
		}
	}
	s.mu.Unlock()

	for _, session := range expired {
		session.close()
	}
	if len(expired) > 0 {
		logger.Infow("session_sweep_expired", "expired", len(expired))
	}
	return len(expired)
}

// StartSweeper 启动定期清理
func (s *SessionStore) StartSweeper() {
	s.sweepMu.Lock()
	defer s.sweepMu.Unlock()
	if s.sweeper != nil {
		return
	}
	s.sweeper = worker.StartInterval(s.sweepInterval, func() {
		s.SweepExpired(time.Now())
	})
}

// Close 停止清理并关闭全部会话
func (s *SessionStore) Close() {
	s.sweepMu.Lock()
	sweeper := s.sweeper
	s.sweeper = nil
	s.sweepMu.Unlock()
	if sweeper != nil {
		sweeper.Stop()
	}

	s.mu.Lock()
	sessions := s.sessions
	s.sessions = make(map[string]*Session)
	s.mu.Unlock()
	for _, session := range sessions {
		session.close()
	}
}

func secondsOr(value int, fallback time.Duration) time.Duration {
	if value > 0 {
		return time.Duration(value) * time.Second
	}
	return fallback
}

func millisOr(value int, fallback time.Duration) time.Duration {
	if value > 0 {
		return time.Duration(value) * time.Millisecond
	}
	return fallback
}
