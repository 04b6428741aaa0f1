package domain

import "time"

// Product описывает товар каталога
type Product struct {
	ID          string
	Name        string
	Description string
	Price       int64 // Цена хранится в динарах
	Category    string
	Image       string
	Stock       int
	CreatedAt   time.Time
}

func NewProduct(id, name, description string, price int64, category, image string, stock int, createdAt time.Time) *Product {
	return &Product{
		ID:          id,
		Name:        name,
		Description: description,
		Price:       price,
		Category:    category,
		Image:       image,
		Stock:       stock,
		CreatedAt:   createdAt,
	}
}
