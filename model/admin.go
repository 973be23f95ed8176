package model

import (
	"sort"
	"time"

	"github.com/muhammadheryan/watch-storefront/constant"
	"github.com/shopspring/decimal"
)

type CategoryUpsertRequest struct {
	Name        string `json:"name" validate:"required,max=100"`
	Description string `json:"description"`
}

type BrandUpsertRequest struct {
	Name        string `json:"name" validate:"required,max=100"`
	Image       string `json:"image" validate:"omitempty,url"`
	Description string `json:"description"`
}

type UpdateUserRolesRequest struct {
	Roles []string `json:"roles" validate:"required,min=1,dive,oneof=USER ADMIN"`
}

// Comment is a product review as shown on the moderation screen.
type Comment struct {
	ID        uint64                 `json:"id"`
	ProductID uint64                 `json:"productId"`
	UserID    uint64                 `json:"userId"`
	Username  string                 `json:"username"`
	Content   string                 `json:"content"`
	Rating    int                    `json:"rating"`
	Status    constant.CommentStatus `json:"status"`
	CreatedAt time.Time              `json:"createdAt"`
}

type CommentFilter struct {
	ProductID uint64
	Status    constant.CommentStatus
}

type UpdateCommentStatusRequest struct {
	Status constant.CommentStatus `json:"status" validate:"required"`
}

type MonthlyRevenue struct {
	Month   string          `json:"month"`
	Orders  int             `json:"orders"`
	Revenue decimal.Decimal `json:"revenue"`
}

// Dashboard holds the back-office chart data.
type Dashboard struct {
	TotalOrders    int                          `json:"totalOrders"`
	TotalUsers     int                          `json:"totalUsers"`
	Revenue        decimal.Decimal              `json:"revenue"`
	OrdersByStatus map[constant.OrderStatus]int `json:"ordersByStatus"`
	MonthlyRevenue []MonthlyRevenue             `json:"monthlyRevenue"`
}

// BuildDashboard aggregates orders into the dashboard. Cancelled orders are
// counted by status but earn no revenue; months are in ascending order.
func BuildDashboard(orders []AdminOrder, totalUsers int) *Dashboard {
	d := &Dashboard{
		TotalOrders:    len(orders),
		TotalUsers:     totalUsers,
		Revenue:        decimal.Zero,
		OrdersByStatus: map[constant.OrderStatus]int{},
		MonthlyRevenue: []MonthlyRevenue{},
	}

	months := map[string]*MonthlyRevenue{}
	for _, o := range orders {
		d.OrdersByStatus[o.Status]++
		if o.Status == constant.OrderStatusCancel {
			continue
		}
		d.Revenue = d.Revenue.Add(o.TotalPrice)

		key := o.CreatedAt.UTC().Format("2006-01")
		m, ok := months[key]
		if !ok {
			m = &MonthlyRevenue{Month: key, Revenue: decimal.Zero}
			months[key] = m
		}
		m.Orders++
		m.Revenue = m.Revenue.Add(o.TotalPrice)
	}

	for _, m := range months {
		d.MonthlyRevenue = append(d.MonthlyRevenue, *m)
	}
	sort.Slice(d.MonthlyRevenue, func(i, j int) bool {
		return d.MonthlyRevenue[i].Month < d.MonthlyRevenue[j].Month
	})
	return d
}
