package reference

import "smartenum/internal/smartenum"

// EnumDirectory описывает один справочник (файл) с аббревиатурами.
type EnumDirectory struct {
	Name string `yaml:"name" toml:"name"`
	// Режим сравнения аббревиатур по умолчанию. Если не задан — берётся
	// у первого по имени элемента.
	IgnoreCase *bool      `yaml:"ignore_case,omitempty" toml:"ignore_case"`
	Items      []EnumItem `yaml:"items" toml:"items"`
}

type EnumItem struct {
	Name         string `yaml:"name" toml:"name"`
	Value        int    `yaml:"value" toml:"value"`
	Abbreviation string `yaml:"abbreviation" toml:"abbreviation"`
	// Code — старое имя поля аббревиатуры, читаем для совместимости
	Code       string `yaml:"code,omitempty" toml:"code"`
	IgnoreCase bool   `yaml:"ignore_case,omitempty" toml:"ignore_case"`
	ValidFrom  string `yaml:"valid_from,omitempty" toml:"valid_from"`
	ValidTo    string `yaml:"valid_to,omitempty" toml:"valid_to"`
}

// Item — член семейства, объявленного справочником.
type Item struct {
	smartenum.Abbreviated
	ValidFrom string
	ValidTo   string
}

func (it EnumItem) abbreviation() string {
	if it.Abbreviation != "" {
		return it.Abbreviation
	}
	return it.Code
}

// Family строит семейство по справочнику. Индексы строятся лениво,
// при первом поиске или вызове Init.
func (d EnumDirectory) Family(opts ...smartenum.Option) *smartenum.Family[Item] {
	items := append([]EnumItem(nil), d.Items...)
	opts = append([]smartenum.Option(nil), opts...)
	if d.IgnoreCase != nil {
		opts = append(opts, smartenum.WithIgnoreCase(*d.IgnoreCase))
	}
	return smartenum.NewFamily(d.Name, func() []Item {
		out := make([]Item, 0, len(items))
		for _, it := range items {
			out = append(out, Item{
				Abbreviated: smartenum.New(it.Name, it.Value, it.abbreviation(), it.IgnoreCase),
				ValidFrom:   it.ValidFrom,
				ValidTo:     it.ValidTo,
			})
		}
		return out
	}, opts...)
}
