package smartenum

import "errors"

var (
	// ErrNotFound — ключ отсутствует в выбранном индексе.
	ErrNotFound = errors.New("smartenum: not found")
	// ErrDuplicateKey — две аббревиатуры совпали (точно или без учёта регистра).
	ErrDuplicateKey = errors.New("smartenum: duplicate abbreviation")
	// ErrDuplicateName — два члена семейства с одинаковым именем.
	ErrDuplicateName = errors.New("smartenum: duplicate name")
	// ErrEmptyFamily — объявление семейства не вернуло ни одного члена.
	ErrEmptyFamily = errors.New("smartenum: empty family")
)
