package taxonomy

// Wilayas — список алжирских вилай для адреса доставки.
var Wilayas = []string{
	"Adrar", "Chlef", "Laghouat", "Oum El Bouaghi", "Batna", "Béjaïa", "Biskra",
	"Béchar", "Blida", "Bouira", "Tamanrasset", "Tébessa", "Tlemcen", "Tiaret",
	"Tizi Ouzou", "Alger", "Djelfa", "Jijel", "Sétif", "Saïda", "Skikda",
	"Sidi Bel Abbès", "Annaba", "Guelma", "Constantine", "Médéa", "Mostaganem",
	"M'Sila", "Mascara", "Ouargla", "Oran", "El Bayadh", "Illizi",
	"Bordj Bou Arréridj", "Boumerdès", "El Tarf", "Tindouf", "Tissemsilt",
	"El Oued", "Khenchela", "Souk Ahras", "Tipaza", "Mila", "Aïn Defla",
	"Naâma", "Aïn Témouchent", "Ghardaïa", "Relizane", "Timimoun",
	"Bordj Badji Mokhtar", "Ouled Djellal", "Béni Abbès", "In Salah",
	"In Guezzam", "Touggourt", "Djanet", "El M'Ghair", "El Meniaa",
}

// ValidWilaya сообщает, входит ли вилая в список.
func ValidWilaya(wilaya string) bool {
	for _, w := range Wilayas {
		if w == wilaya {
			return true
		}
	}

	return false
}
