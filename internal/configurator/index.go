package configurator

import (
	"sort"

	"configurator-backend/internal/domain"
)

// CatalogIndex — нормализованный каталог одной категории: быстрые выборки
// по части и по ID опции. Строится один раз на снимок каталога и дальше
// только читается.
type CatalogIndex struct {
	parts         []domain.Part                   // отсортированы по Step
	byPartID      map[string][]*domain.PartOption // опции части в порядке появления
	optionByID    map[string]*domain.PartOption
	partByID      map[string]*domain.Part
	partByName    map[string]*domain.Part
	partOfOptByID map[string]*domain.Part // optionID -> его часть
}

// NewCatalogIndex строит индекс по частям и опциям. Порядок опций внутри
// части — порядок появления во входном слайсе, движок его не пересортирует.
func NewCatalogIndex(parts []domain.Part, options []domain.PartOption) *CatalogIndex {
	idx := &CatalogIndex{
		parts:         make([]domain.Part, len(parts)),
		byPartID:      make(map[string][]*domain.PartOption, len(parts)),
		optionByID:    make(map[string]*domain.PartOption, len(options)),
		partByID:      make(map[string]*domain.Part, len(parts)),
		partByName:    make(map[string]*domain.Part, len(parts)),
		partOfOptByID: make(map[string]*domain.Part, len(options)),
	}

	copy(idx.parts, parts)
	sort.SliceStable(idx.parts, func(i, j int) bool {
		return idx.parts[i].Step < idx.parts[j].Step
	})
	for i := range idx.parts {
		p := &idx.parts[i]
		idx.partByID[p.ID] = p
		idx.partByName[p.Name] = p
	}

	for i := range options {
		o := options[i]
		stored := &o
		idx.optionByID[o.ID] = stored
		idx.byPartID[o.PartID] = append(idx.byPartID[o.PartID], stored)
		if p, ok := idx.partByID[o.PartID]; ok {
			idx.partOfOptByID[o.ID] = p
		}
	}

	return idx
}

// Parts возвращает части категории в порядке шагов конфигуратора.
func (x *CatalogIndex) Parts() []domain.Part {
	out := make([]domain.Part, len(x.parts))
	copy(out, x.parts)
	return out
}

// OptionsForPart возвращает опции части в исходном порядке.
// Для неизвестной части — пустой слайс, это не ошибка.
func (x *CatalogIndex) OptionsForPart(partID string) []*domain.PartOption {
	return x.byPartID[partID]
}

// OptionByID возвращает опцию по ID или nil.
func (x *CatalogIndex) OptionByID(id string) *domain.PartOption {
	return x.optionByID[id]
}

// PartByName возвращает часть по имени или nil.
func (x *CatalogIndex) PartByName(name string) *domain.Part {
	return x.partByName[name]
}

// PartOfOption возвращает часть, которой принадлежит опция, или nil.
func (x *CatalogIndex) PartOfOption(optionID string) *domain.Part {
	return x.partOfOptByID[optionID]
}
