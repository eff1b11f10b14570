package service

import (
	"sync"
	"time"

	"github.com/storefront-next/internal/models"
	"github.com/storefront-next/internal/worker"
)

const (
	defaultCarouselInterval = 5 * time.Second
	defaultCarouselResume   = 10 * time.Second
)

// CarouselSlide 轮播页
type CarouselSlide struct {
	ID        uint   `json:"id"`
	Title     string `json:"title"`
	Subtitle  string `json:"subtitle"`
	Image     string `json:"image"`
	CTA       string `json:"cta"`
	LinkValue string `json:"link_value"`
}

// SlideFromBanner 由 Banner 构建轮播页
func SlideFromBanner(banner models.Banner) CarouselSlide {
	return CarouselSlide{
		ID:        banner.ID,
		Title:     banner.Title,
		Subtitle:  banner.Subtitle,
		Image:     banner.Image,
		CTA:       banner.CTA,
		LinkValue: banner.LinkValue,
	}
}

// CarouselState 轮播状态快照
type CarouselState struct {
	Index    int            `json:"index"`
	Total    int            `json:"total"`
	Slide    *CarouselSlide `json:"slide,omitempty"`
	Autoplay bool           `json:"autoplay"`
}

// Carousel 首页轮播，自动翻页，手动切换后暂停自动播放
type Carousel struct {
	mu          sync.Mutex
	slides      []CarouselSlide
	index       int
	resumeAfter time.Duration
	autoplay    *worker.IntervalTask
}

// NewCarousel 创建轮播并启动自动播放
func NewCarousel(slides []CarouselSlide, interval, resumeAfter time.Duration) *Carousel {
	if interval <= 0 {
		interval = defaultCarouselInterval
	}
	if resumeAfter <= 0 {
		resumeAfter = defaultCarouselResume
	}
	c := &Carousel{
		slides:      append([]CarouselSlide(nil), slides...),
		resumeAfter: resumeAfter,
	}
	if len(c.slides) > 1 {
		c.autoplay = worker.StartInterval(interval, c.advance)
	}
	return c
}

// Next 下一页
func (c *Carousel) Next() CarouselState {
	return c.navigate(func(index, total int) int { return index + 1 })
}

// Prev 上一页
func (c *Carousel) Prev() CarouselState {
	return c.navigate(func(index, total int) int { return index - 1 })
}

// GoTo 跳转到指定页，越界按页数取模
func (c *Carousel) GoTo(target int) CarouselState {
	return c.navigate(func(int, int) int { return target })
}

// State 当前状态
func (c *Carousel) State() CarouselState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stateLocked()
}

// Stop 停止自动播放
func (c *Carousel) Stop() {
	if c == nil || c.autoplay == nil {
		return
	}
	c.autoplay.Stop()
}

func (c *Carousel) navigate(next func(index, total int) int) CarouselState {
	c.mu.Lock()
	total := len(c.slides)
	if total > 0 {
		c.index = wrapIndex(next(c.index, total), total)
	}
	c.mu.Unlock()

	if c.autoplay != nil {
		c.autoplay.Pause(c.resumeAfter)
	}
	return c.State()
}

func (c *Carousel) advance() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if total := len(c.slides); total > 0 {
		c.index = wrapIndex(c.index+1, total)
	}
}

func (c *Carousel) stateLocked() CarouselState {
	state := CarouselState{
		Index:    c.index,
		Total:    len(c.slides),
		Autoplay: c.autoplay != nil && !c.autoplay.Paused(),
	}
	if state.Total > 0 {
		slide := c.slides[c.index]
		state.Slide = &slide
	}
	return state
}

func wrapIndex(index, total int) int {
	if total <= 0 {
		return 0
	}
	index %= total
	if index < 0 {
		index += total
	}
	return index
}
