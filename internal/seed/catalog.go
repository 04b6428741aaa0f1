package seed

import (
	"time"

	"github.com/ecommerce-dz/go-store/internal/domain"
)

// Catalog возвращает встроенный набор товаров, которым заполняется пустое
// хранилище при первом запуске.
func Catalog() []domain.Product {
	return []domain.Product{
		{
			ID:          "1",
			Name:        "Smartphone Samsung Galaxy A54",
			Description: `Smartphone 5G avec écran Super AMOLED 6.4", triple caméra 50MP, 128GB`,
			Price:       45000,
			Category:    "Electronics",
			Image:       "https://images.pexels.com/photos/404280/pexels-photo-404280.jpeg?auto=compress&cs=tinysrgb&w=500",
			Stock:       15,
			CreatedAt:   time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC),
		},
		{
			ID:          "2",
			Name:        "Nike Air Max 270",
			Description: "Chaussures de sport Nike Air Max 270 pour homme, confort et style",
			Price:       18000,
			Category:    "Fashion",
			Image:       "https://images.pexels.com/photos/2529148/pexels-photo-2529148.jpeg?auto=compress&cs=tinysrgb&w=500",
			Stock:       8,
			CreatedAt:   time.Date(2024, 1, 16, 14, 30, 0, 0, time.UTC),
		},
		{
			ID:          "3",
			Name:        "MacBook Air M2",
			Description: `MacBook Air 13" avec puce M2, 8GB RAM, 256GB SSD`,
			Price:       165000,
			Category:    "Electronics",
			Image:       "https://images.pexels.com/photos/18105/pexels-photo.jpg?auto=compress&cs=tinysrgb&w=500",
			Stock:       5,
			CreatedAt:   time.Date(2024, 1, 17, 9, 15, 0, 0, time.UTC),
		},
		{
			ID:          "4",
			Name:        "Robe Élégante",
			Description: "Robe élégante pour femme, parfaite pour les occasions spéciales",
			Price:       8500,
			Category:    "Fashion",
			Image:       "https://images.pexels.com/photos/985635/pexels-photo-985635.jpeg?auto=compress&cs=tinysrgb&w=500",
			Stock:       12,
			CreatedAt:   time.Date(2024, 1, 18, 16, 45, 0, 0, time.UTC),
		},
		{
			ID:          "5",
			Name:        "Canapé 3 Places",
			Description: "Canapé confortable 3 places en tissu, couleur gris moderne",
			Price:       55000,
			Category:    "Home & Garden",
			Image:       "https://images.pexels.com/photos/1350789/pexels-photo-1350789.jpeg?auto=compress&cs=tinysrgb&w=500",
			Stock:       3,
			CreatedAt:   time.Date(2024, 1, 19, 11, 20, 0, 0, time.UTC),
		},
		{
			ID:          "6",
			Name:        "Ballon de Football",
			Description: "Ballon de football professionnel, taille officielle",
			Price:       3200,
			Category:    "Sports & Fitness",
			Image:       "https://images.pexels.com/photos/274506/pexels-photo-274506.jpeg?auto=compress&cs=tinysrgb&w=500",
			Stock:       20,
			CreatedAt:   time.Date(2024, 1, 20, 13, 10, 0, 0, time.UTC),
		},
	}
}
