package domain

import (
	"time"

	"gorm.io/gorm"
)

// CREATE TABLE public.products (
//     id              BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
//     product_id      TEXT UNIQUE,
//     seller_id       BIGINT,
//     product_name    TEXT,
//     product_category TEXT,
//     description     TEXT,
//     normal_price    NUMERIC,
//     sale_price      NUMERIC,
//     discount        NUMERIC,
//     stock           NUMERIC,
//     created_at      TIMESTAMPTZ DEFAULT NOW()
// );

type Product struct {
	ID              uint64         `gorm:"primaryKey;autoIncrement" json:"id"`
	ProductID       string         `gorm:"column:product_id;type:text;uniqueIndex" json:"product_id"`
	SellerID        uint           `gorm:"column:seller_id" json:"seller_id"`
	ProductName     string         `gorm:"column:product_name;type:text" json:"product_name"`
	ProductCategory string         `gorm:"column:product_category;type:text" json:"product_category"`
	Description     string         `gorm:"column:description;type:text" json:"description"`
	NormalPrice     float64        `gorm:"column:normal_price;type:numeric" json:"normal_price"`
	SalePrice       float64        `gorm:"column:sale_price;type:numeric" json:"sale_price"`
	Discount        float64        `gorm:"column:discount;type:numeric" json:"discount"`
	Stock           float64        `gorm:"column:stock;type:numeric" json:"stock"`
	CreatedAt       time.Time      `gorm:"column:created_at" json:"created_at"`
	UpdatedAt       time.Time      `gorm:"column:updated_at" json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Product) TableName() string {
	return "products"
}
