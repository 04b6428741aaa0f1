// Package currency форматирует суммы в алжирских динарах для вывода.
package currency

import "strconv"

// FormatDZD возвращает сумму вида "45 000 DA".
// Цены хранятся целыми динарами, дробной части нет.
func FormatDZD(amount int64) string {
	negative := amount < 0
	if negative {
		amount = -amount
	}

	digits := strconv.FormatInt(amount, 10)

	var out []byte
	for i, d := range []byte(digits) {
		if i > 0 && (len(digits)-i)%3 == 0 {
			out = append(out, ' ')
		}
		out = append(out, d)
	}

	if negative {
		out = append([]byte{'-'}, out...)
	}

	return string(out) + " DA"
}
