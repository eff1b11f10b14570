package repository

// ProductListFilter 查询商品列表的过滤条件
type ProductListFilter struct {
	Page         int
	PageSize     int
	CategoryID   uint
	CategorySlug string
	Section      string
	Search       string
	OnlyActive   bool
	WithCategory bool
}

// BannerListFilter 查询 Banner 列表的过滤条件
type BannerListFilter struct {
	Page      int
	PageSize  int
	Position  string
	IsActive  *bool
	OnlyValid bool
}
