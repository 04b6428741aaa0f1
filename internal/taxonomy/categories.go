package taxonomy

// Categories — закрытый список категорий каталога.
// Хранилище трактует категорию как непрозрачную строку; список нужен только
// формам и фильтрам.
var Categories = []string{
	"Electronics",
	"Fashion",
	"Home & Garden",
	"Sports & Fitness",
	"Books & Stationery",
	"Beauty & Health",
}

// ValidCategory сообщает, входит ли категория в список.
func ValidCategory(category string) bool {
	for _, c := range Categories {
		if c == category {
			return true
		}
	}

	return false
}
