package repository

import "time"

// ProductListFilter 查询商品列表的过滤条件
type ProductListFilter struct {
	Page         int
	PageSize     int
	Category     string
	Color        string
	FabricType   string
	Search       string
	IsNew        *bool
	IsBestSeller *bool
	InStock      *bool
	OrderBy      string
}

// OrderListFilter 查询订单列表的过滤条件
type OrderListFilter struct {
	Page        int
	PageSize    int
	UserID      uint
	Status      string
	OrderNo     string
	Phone       string
	CreatedFrom *time.Time
	CreatedTo   *time.Time
}

// CouponListFilter 查询优惠券列表的过滤条件
type CouponListFilter struct {
	Page       int
	PageSize   int
	Code       string
	ActiveOnly bool
}

// InquiryListFilter 查询商品咨询列表的过滤条件
type InquiryListFilter struct {
	Page      int
	PageSize  int
	ProductID uint
	Status    string
}

// StockNotificationListFilter 查询到货通知登记列表的过滤条件
type StockNotificationListFilter struct {
	Page      int
	PageSize  int
	ProductID uint
	Status    string
}

// UserListFilter 查询客户列表的过滤条件
type UserListFilter struct {
	Page        int
	PageSize    int
	Keyword     string
	Status      string
	CreatedFrom *time.Time
	CreatedTo   *time.Time
}
