// Package builtin содержит семейства, объявленные в коде.
package builtin

import (
	"smartenum/internal/reference"
	"smartenum/internal/smartenum"
)

type Status struct{ smartenum.Abbreviated }

var (
	StatusActive   = Status{smartenum.New("Active", 1, "A")}
	StatusInactive = Status{smartenum.New("Inactive", 2, "I")}
)

var Statuses = smartenum.NewFamily("status", func() []Status {
	return []Status{StatusActive, StatusInactive}
})

type Weekday struct{ smartenum.Abbreviated }

var (
	Monday    = Weekday{smartenum.New("Monday", 1, "Mon", true)}
	Tuesday   = Weekday{smartenum.New("Tuesday", 2, "Tue", true)}
	Wednesday = Weekday{smartenum.New("Wednesday", 3, "Wed", true)}
	Thursday  = Weekday{smartenum.New("Thursday", 4, "Thu", true)}
	Friday    = Weekday{smartenum.New("Friday", 5, "Fri", true)}
	Saturday  = Weekday{smartenum.New("Saturday", 6, "Sat", true)}
	Sunday    = Weekday{smartenum.New("Sunday", 7, "Sun", true)}
)

var Weekdays = smartenum.NewFamily("weekday", func() []Weekday {
	return []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}
}, smartenum.WithIgnoreCase(true))

// Register добавляет встроенные семейства в каталог.
func Register(c reference.Catalog) error {
	for _, v := range []smartenum.View{Statuses.View(), Weekdays.View()} {
		if err := c.Add(v); err != nil {
			return err
		}
	}
	return nil
}
