package service

import (
	"github.com/storefront-next/internal/models"
	"github.com/storefront-next/internal/repository"
)

// CategoryService 分类业务服务
type CategoryService struct {
	repo repository.CategoryRepository
}

// NewCategoryService 创建分类服务
func NewCategoryService(repo repository.CategoryRepository) *CategoryService {
	return &CategoryService{repo: repo}
}

// ListPublic 首页分类导航
func (s *CategoryService) ListPublic() ([]models.Category, error) {
	return s.repo.ListActive()
}
