package constants

// 首页栏目常量
const (
	ProductSectionDeals       = "deals"
	ProductSectionTrending    = "trending"
	ProductSectionFashion     = "fashion"
	ProductSectionRecommended = "recommended"
)

// 轮播图投放位置
const (
	BannerPositionHomeHero = "home_hero"
)

// 优惠码类型常量
const (
	CouponTypeFixed   = "fixed"
	CouponTypePercent = "percent"
)

// 内置优惠码
const (
	CouponCodeSave10  = "SAVE10"
	CouponCodeFlat500 = "FLAT500"
)

// 支付方式分组
const (
	PaymentGroupCOD        = "cod"
	PaymentGroupCard       = "card"
	PaymentGroupUPI        = "upi"
	PaymentGroupNetBanking = "netbanking"
)

// 异步任务类型
const (
	TaskOrderPlaced = "order:placed"
)

// 异步队列名称
const (
	QueueDefault = "default"
)

// 购物车单行数量上限
const (
	MaxLineQuantity = 999
)

// 会话请求头
const (
	SessionHeader     = "X-Session-ID"
	SessionContextKey = "storefront_session"
)

// IsValidProductSection 判断栏目是否合法
func IsValidProductSection(section string) bool {
	switch section {
	case ProductSectionDeals, ProductSectionTrending, ProductSectionFashion, ProductSectionRecommended:
		return true
	}
	return false
}
