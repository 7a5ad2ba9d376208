package reference

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"smartenum/internal/smartenum"
)

// Catalog — справочники по имени.
type Catalog map[string]smartenum.View

// Add регистрирует семейство; повтор имени — ошибка.
func (c Catalog) Add(v smartenum.View) error {
	if v == nil || strings.TrimSpace(v.Name()) == "" {
		return errors.New("reference: empty catalog name")
	}
	if _, exists := c[v.Name()]; exists {
		return fmt.Errorf("reference: duplicate catalog %q", v.Name())
	}
	c[v.Name()] = v
	return nil
}

// Names возвращает имена справочников в лексикографическом порядке.
func (c Catalog) Names() []string {
	names := make([]string, 0, len(c))
	for n := range c {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Lookup ищет справочник: сначала точное имя, затем единственное
// совпадение без учёта регистра.
func (c Catalog) Lookup(name string) (smartenum.View, bool) {
	if name == "" {
		return nil, false
	}
	if v, ok := c[name]; ok {
		return v, true
	}
	var found smartenum.View
	for n, v := range c {
		if smartenum.EqualFold(n, name) {
			if found != nil { // неуникально
				return nil, false
			}
			found = v
		}
	}
	return found, found != nil
}

type Issue struct {
	Catalog string `json:"catalog"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Validate инициализирует все семейства и собирает ошибки.
// Ошибки кэшируются в семействах: исправление требует перезапуска.
func (c Catalog) Validate() []Issue {
	var issues []Issue
	for _, name := range c.Names() {
		err := c[name].Init()
		if err == nil {
			continue
		}
		issues = append(issues, Issue{Catalog: name, Code: IssueCode(err), Message: err.Error()})
	}
	return issues
}

// IssueCode переводит ошибку инициализации в машинный код.
func IssueCode(err error) string {
	switch {
	case errors.Is(err, smartenum.ErrDuplicateKey):
		return "duplicate_abbreviation"
	case errors.Is(err, smartenum.ErrDuplicateName):
		return "duplicate_name"
	case errors.Is(err, smartenum.ErrEmptyFamily):
		return "empty_family"
	default:
		return "init_failed"
	}
}
