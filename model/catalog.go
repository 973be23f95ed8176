package model

import "github.com/shopspring/decimal"

type Product struct {
	ID           uint64          `json:"id"`
	Name         string          `json:"name"`
	Description  string          `json:"description,omitempty"`
	Price        decimal.Decimal `json:"price"`
	Image        string          `json:"image"`
	Stock        int64           `json:"stock"`
	CategoryID   uint64          `json:"categoryId"`
	CategoryName string          `json:"categoryName,omitempty"`
	BrandID      uint64          `json:"brandId"`
	BrandName    string          `json:"brandName,omitempty"`
}

type Category struct {
	ID          uint64 `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

type Brand struct {
	ID          uint64 `json:"id"`
	Name        string `json:"name"`
	Image       string `json:"image,omitempty"`
	Description string `json:"description,omitempty"`
}

type ProductFilter struct {
	CategoryID uint64
	BrandID    uint64
	Keyword    string
	Page       int
	Size       int
}

type ProductListResponse struct {
	Items      []Product `json:"items"`
	TotalCount int64     `json:"totalCount"`
	Page       int       `json:"page"`
	Size       int       `json:"size"`
}

type ProductUpsertRequest struct {
	Name        string          `json:"name" validate:"required"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Image       string          `json:"image"`
	Stock       int64           `json:"stock" validate:"min=0"`
	CategoryID  uint64          `json:"categoryId" validate:"required"`
	BrandID     uint64          `json:"brandId" validate:"required"`
}

// User is an account as listed in the back-office.
type User struct {
	ID       uint64   `json:"id"`
	Username string   `json:"username"`
	Email    string   `json:"email"`
	Phone    string   `json:"phone,omitempty"`
	Roles    []string `json:"roles"`
}
