// Package smartenum реализует "умные" перечисления с аббревиатурами.
//
// Член семейства — неизменяемое значение с именем, целым значением и
// строковой аббревиатурой. Семейство (Family) — закрытый набор членов одного
// типа, объявленный явным списком. Список вызывается ровно один раз, при
// первом обращении; после этого индексы только читаются и доступны из любого
// числа горутин без блокировок.
//
// Ошибка инициализации кэшируется навсегда: если объявление семейства
// некорректно (дубликат аббревиатуры, пустой список), каждый следующий вызов
// вернёт ту же ошибку до перезапуска процесса. Для раннего обнаружения
// вызывайте Init при старте.
//
// Пример:
//
//	type Status struct{ smartenum.Abbreviated }
//
//	var (
//	    Active   = Status{smartenum.New("Active", 1, "A")}
//	    Inactive = Status{smartenum.New("Inactive", 2, "I")}
//	)
//
//	var Statuses = smartenum.NewFamily("status", func() []Status {
//	    return []Status{Active, Inactive}
//	})
//
//	s, err := Statuses.FromAbbreviation("A")
package smartenum
