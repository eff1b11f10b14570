package service

import (
	"strings"
	"time"

	"github.com/storefront-next/internal/constants"
	"github.com/storefront-next/internal/models"
	"github.com/storefront-next/internal/repository"
)

const maxHeroSlides = 10

// BannerService Banner 业务服务
type BannerService struct {
	repo repository.BannerRepository
}

// NewBannerService 创建 Banner 服务
func NewBannerService(repo repository.BannerRepository) *BannerService {
	return &BannerService{repo: repo}
}

// ListPublic 获取公开 Banner 列表
func (s *BannerService) ListPublic(position string, limit int) ([]models.Banner, error) {
	return s.repo.ListValidByPosition(normalizeBannerPosition(position), limit, time.Now())
}

// Slides 首页轮播页
func (s *BannerService) Slides() ([]CarouselSlide, error) {
	banners, err := s.ListPublic(constants.BannerPositionHomeHero, maxHeroSlides)
	if err != nil {
		return nil, err
	}
	slides := make([]CarouselSlide, 0, len(banners))
	for _, banner := range banners {
		slides = append(slides, SlideFromBanner(banner))
	}
	return slides, nil
}

func normalizeBannerPosition(position string) string {
	position = strings.ToLower(strings.TrimSpace(position))
	if position == "" {
		return constants.BannerPositionHomeHero
	}
	return position
}
