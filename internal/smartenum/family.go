package smartenum

import (
	"fmt"
	"log"
	"sort"
	"strconv"
	"sync"
	"sync/atomic"
)

// State — состояние семейства. Переход из Uninitialized происходит один раз
// и необратим.
type State int32

const (
	Uninitialized State = iota
	Ready
	Failed
)

func (s State) String() string {
	switch s {
	case Uninitialized:
		return "uninitialized"
	case Ready:
		return "ready"
	case Failed:
		return "failed"
	default:
		return "state(" + strconv.Itoa(int(s)) + ")"
	}
}

type options struct {
	ignoreCase *bool
	logger     *log.Logger
}

// Option настраивает семейство.
type Option func(*options)

// WithIgnoreCase явно задаёт режим сравнения аббревиатур по умолчанию.
// Без этой опции режим берётся у первого по имени члена.
func WithIgnoreCase(v bool) Option {
	return func(o *options) { o.ignoreCase = &v }
}

// WithLogger включает лог результата инициализации.
func WithLogger(l *log.Logger) Option {
	return func(o *options) { o.logger = l }
}

// Family — закрытое семейство членов типа T и его индексы.
type Family[T Member] struct {
	name    string
	declare func() []T
	opt     options

	once       sync.Once
	state      atomic.Int32
	discovered atomic.Int64
	err        error

	// заполняются один раз под once, дальше только чтение
	members    []T
	byName     map[string]T
	byNameFold map[string]T
	byValue    map[int]T
	byAbbr     map[string]T
	byAbbrFold map[string]T

	ignoreCase atomic.Bool
}

// NewFamily объявляет семейство. declare вызывается лениво, ровно один раз.
func NewFamily[T Member](name string, declare func() []T, opts ...Option) *Family[T] {
	var o options
	for _, fn := range opts {
		fn(&o)
	}
	return &Family[T]{name: name, declare: declare, opt: o}
}

func (f *Family[T]) Name() string { return f.name }

// State сообщает текущее состояние без запуска инициализации.
func (f *Family[T]) State() State { return State(f.state.Load()) }

// DiscoveryCount — сколько раз вызывалось объявление (0 или 1).
func (f *Family[T]) DiscoveryCount() int64 { return f.discovered.Load() }

// Init выполняет обнаружение и построение индексов, если они ещё не
// выполнены. Возвращает закэшированную ошибку при повторных вызовах.
func (f *Family[T]) Init() error {
	f.once.Do(func() {
		f.err = f.build()
		if f.err != nil {
			f.state.Store(int32(Failed))
			f.logf("smartenum: family %s failed: %v", f.name, f.err)
			return
		}
		f.state.Store(int32(Ready))
		f.logf("smartenum: family %s ready: %d members, ignoreCase=%t", f.name, len(f.members), f.ignoreCase.Load())
	})
	return f.err
}

// Err возвращает ошибку инициализации, не запуская её.
func (f *Family[T]) Err() error {
	if f.State() == Uninitialized {
		return nil
	}
	return f.err
}

func (f *Family[T]) logf(format string, args ...any) {
	if f.opt.logger != nil {
		f.opt.logger.Printf(format, args...)
	}
}

func (f *Family[T]) build() error {
	f.discovered.Add(1)

	var members []T
	if f.declare != nil {
		members = append(members, f.declare()...)
	}
	if len(members) == 0 {
		return fmt.Errorf("%w: %s", ErrEmptyFamily, f.name)
	}
	sort.SliceStable(members, func(i, j int) bool {
		return members[i].Name() < members[j].Name()
	})

	byName := make(map[string]T, len(members))
	byNameFold := make(map[string]T, len(members))
	byValue := make(map[int]T, len(members))
	byAbbr := make(map[string]T, len(members))
	byAbbrFold := make(map[string]T, len(members))

	for _, m := range members {
		if _, dup := byName[m.Name()]; dup {
			return fmt.Errorf("%w: %s: %q", ErrDuplicateName, f.name, m.Name())
		}
		byName[m.Name()] = m

		// имена, совпадающие без учёта регистра: выигрывает первый по порядку
		if k := fold(m.Name()); !hasKey(byNameFold, k) {
			byNameFold[k] = m
		}
		// значения-синонимы допустимы, выигрывает первый по имени
		if _, ok := byValue[m.Value()]; !ok {
			byValue[m.Value()] = m
		}

		a := m.Abbreviation()
		if prev, dup := byAbbr[a]; dup {
			return fmt.Errorf("%w: %s: %q shared by %s and %s", ErrDuplicateKey, f.name, a, prev.Name(), m.Name())
		}
		byAbbr[a] = m

		fa := fold(a)
		if prev, dup := byAbbrFold[fa]; dup {
			return fmt.Errorf("%w: %s: %q and %q collide ignoring case (%s, %s)",
				ErrDuplicateKey, f.name, prev.Abbreviation(), a, prev.Name(), m.Name())
		}
		byAbbrFold[fa] = m
	}

	ignore := members[0].IgnoreCase()
	if f.opt.ignoreCase != nil {
		ignore = *f.opt.ignoreCase
	}

	f.members = members
	f.byName = byName
	f.byNameFold = byNameFold
	f.byValue = byValue
	f.byAbbr = byAbbr
	f.byAbbrFold = byAbbrFold
	f.ignoreCase.Store(ignore)
	return nil
}

func hasKey[T any](m map[string]T, k string) bool {
	_, ok := m[k]
	return ok
}

// IgnoreCase — текущий режим сравнения по умолчанию для FromAbbreviation.
func (f *Family[T]) IgnoreCase() bool {
	_ = f.Init()
	return f.ignoreCase.Load()
}

// SetIgnoreCase переназначает режим по умолчанию. Инициализация выполняется
// до записи, чтобы опубликованное при построении значение не затёрло новое.
func (f *Family[T]) SetIgnoreCase(v bool) {
	_ = f.Init()
	f.ignoreCase.Store(v)
}

// Members возвращает копию членов семейства, отсортированных по имени.
func (f *Family[T]) Members() ([]T, error) {
	if err := f.Init(); err != nil {
		return nil, err
	}
	return append([]T(nil), f.members...), nil
}

// List — как Members, но nil при ошибке инициализации.
func (f *Family[T]) List() []T {
	out, _ := f.Members()
	return out
}

// FromAbbreviation ищет член по аббревиатуре в режиме семейства по умолчанию.
// Отсутствие ключа — ошибка ErrNotFound.
func (f *Family[T]) FromAbbreviation(abbreviation string) (T, error) {
	var zero T
	if err := f.Init(); err != nil {
		return zero, err
	}
	idx, key := f.byAbbr, abbreviation
	if f.ignoreCase.Load() {
		idx, key = f.byAbbrFold, fold(abbreviation)
	}
	if m, ok := idx[key]; ok {
		return m, nil
	}
	return zero, fmt.Errorf("%w: abbreviation %q in %s", ErrNotFound, abbreviation, f.name)
}

// MustFromAbbreviation паникует там, где FromAbbreviation вернул бы ошибку.
func (f *Family[T]) MustFromAbbreviation(abbreviation string) T {
	m, err := f.FromAbbreviation(abbreviation)
	if err != nil {
		panic(err)
	}
	return m
}

// TryFromAbbreviation ищет член в режиме, заданном ignoreCase, независимо
// от режима семейства. Пустая строка — сразу "не найдено".
// Ошибок не возвращает: при сбое инициализации результат (zero, false).
func (f *Family[T]) TryFromAbbreviation(abbreviation string, ignoreCase bool) (T, bool) {
	var zero T
	if abbreviation == "" {
		return zero, false
	}
	if f.Init() != nil {
		return zero, false
	}
	if ignoreCase {
		m, ok := f.byAbbrFold[fold(abbreviation)]
		return m, ok
	}
	m, ok := f.byAbbr[abbreviation]
	return m, ok
}

// FromName ищет член по точному имени.
func (f *Family[T]) FromName(name string) (T, error) {
	if m, ok := f.TryFromName(name, false); ok {
		return m, nil
	}
	var zero T
	if err := f.Init(); err != nil {
		return zero, err
	}
	return zero, fmt.Errorf("%w: name %q in %s", ErrNotFound, name, f.name)
}

func (f *Family[T]) TryFromName(name string, ignoreCase bool) (T, bool) {
	var zero T
	if name == "" || f.Init() != nil {
		return zero, false
	}
	if ignoreCase {
		m, ok := f.byNameFold[fold(name)]
		return m, ok
	}
	m, ok := f.byName[name]
	return m, ok
}

// FromValue ищет член по значению. При синонимах — первый по имени.
func (f *Family[T]) FromValue(value int) (T, error) {
	var zero T
	if err := f.Init(); err != nil {
		return zero, err
	}
	if m, ok := f.byValue[value]; ok {
		return m, nil
	}
	return zero, fmt.Errorf("%w: value %d in %s", ErrNotFound, value, f.name)
}

func (f *Family[T]) TryFromValue(value int) (T, bool) {
	var zero T
	if f.Init() != nil {
		return zero, false
	}
	m, ok := f.byValue[value]
	return m, ok
}
