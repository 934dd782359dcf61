package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Article es una variante de precio de un producto.
type Article struct {
	ID          string
	ProductID   string
	Name        string
	Price       decimal.Decimal
	Active      bool
	DateCreated time.Time
	DateUpdated time.Time
}
