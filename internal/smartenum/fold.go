package smartenum

import (
	"strings"
	"unicode"
)

// fold приводит строку к ключу регистронезависимого индекса. Свёртка
// посимвольная и простая (как strings.EqualFold): длина в рунах не
// меняется, "ß" не равно "SS", лигатура "ﬀ" не равна "FF".
func fold(s string) string {
	return strings.Map(foldRune, s)
}

// foldRune возвращает наименьшую руну из орбиты unicode.SimpleFold.
func foldRune(r rune) rune {
	lo := r
	for f := unicode.SimpleFold(r); f != r; f = unicode.SimpleFold(f) {
		if f < lo {
			lo = f
		}
	}
	return lo
}

// EqualFold сравнивает строки без учёта регистра так же, как индексы семейства.
func EqualFold(a, b string) bool {
	return fold(a) == fold(b)
}
