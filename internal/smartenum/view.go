package smartenum

// View — необобщённое представление семейства. Нужно, когда в одном
// каталоге лежат семейства разных конкретных типов.
type View interface {
	Name() string
	Init() error
	State() State
	IgnoreCase() bool
	Members() ([]Member, error)
	FromAbbreviation(abbreviation string) (Member, error)
	TryFromAbbreviation(abbreviation string, ignoreCase bool) (Member, bool)
	FromName(name string) (Member, error)
	TryFromName(name string, ignoreCase bool) (Member, bool)
	FromValue(value int) (Member, error)
}

// View возвращает представление семейства. Инициализацию не запускает.
func (f *Family[T]) View() View { return familyView[T]{f} }

type familyView[T Member] struct{ f *Family[T] }

func (v familyView[T]) Name() string     { return v.f.Name() }
func (v familyView[T]) Init() error      { return v.f.Init() }
func (v familyView[T]) State() State     { return v.f.State() }
func (v familyView[T]) IgnoreCase() bool { return v.f.IgnoreCase() }

func (v familyView[T]) Members() ([]Member, error) {
	ms, err := v.f.Members()
	if err != nil {
		return nil, err
	}
	out := make([]Member, len(ms))
	for i, m := range ms {
		out[i] = m
	}
	return out, nil
}

func (v familyView[T]) FromAbbreviation(abbreviation string) (Member, error) {
	return member[T](v.f.FromAbbreviation(abbreviation))
}

func (v familyView[T]) TryFromAbbreviation(abbreviation string, ignoreCase bool) (Member, bool) {
	return tryMember[T](v.f.TryFromAbbreviation(abbreviation, ignoreCase))
}

func (v familyView[T]) FromName(name string) (Member, error) {
	return member[T](v.f.FromName(name))
}

func (v familyView[T]) TryFromName(name string, ignoreCase bool) (Member, bool) {
	return tryMember[T](v.f.TryFromName(name, ignoreCase))
}

func (v familyView[T]) FromValue(value int) (Member, error) {
	return member[T](v.f.FromValue(value))
}

// не отдаём наружу нулевой T, упакованный в интерфейс
func member[T Member](m T, err error) (Member, error) {
	if err != nil {
		return nil, err
	}
	return m, nil
}

func tryMember[T Member](m T, ok bool) (Member, bool) {
	if !ok {
		return nil, false
	}
	return m, true
}
