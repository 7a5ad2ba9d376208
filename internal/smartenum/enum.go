package smartenum

import "fmt"

// Member — контракт члена семейства. Его реализует Abbreviated и любая
// структура, которая его встраивает.
type Member interface {
	Name() string
	Value() int
	Abbreviation() string
	IgnoreCase() bool
}

// Abbreviated — базовое значение перечисления. Поля закрыты: после
// конструирования член не меняется, иначе индексы семейства разойдутся
// с состоянием экземпляра.
type Abbreviated struct {
	name         string
	value        int
	abbreviation string
	ignoreCase   bool
}

// New создаёт член семейства. ignoreCase по умолчанию false.
func New(name string, value int, abbreviation string, ignoreCase ...bool) Abbreviated {
	a := Abbreviated{name: name, value: value, abbreviation: abbreviation}
	if len(ignoreCase) > 0 {
		a.ignoreCase = ignoreCase[0]
	}
	return a
}

func (a Abbreviated) Name() string         { return a.name }
func (a Abbreviated) Value() int           { return a.value }
func (a Abbreviated) Abbreviation() string { return a.abbreviation }

// IgnoreCase — настройка, с которой член был объявлен. Для семейства она
// учитывается, только если WithIgnoreCase не задан явно.
func (a Abbreviated) IgnoreCase() bool { return a.ignoreCase }

func (a Abbreviated) String() string { return a.name }

// GoString для отладочного вывода (%#v).
func (a Abbreviated) GoString() string {
	return fmt.Sprintf("smartenum.New(%q, %d, %q, %t)", a.name, a.value, a.abbreviation, a.ignoreCase)
}
