package configurator

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"configurator-backend/internal/domain"
)

// Session — живая конфигурация одного покупателя (или админа, собирающего
// преднастроенный товар): текущий выбор по частям плюс все резолверы.
// Сессия однопоточная: ей владеет ровно одно взаимодействие, блокировки
// не нужны. После финализации сессию выбрасывают, а не переиспользуют.
type Session struct {
	category domain.Category
	index    *CatalogIndex
	compat   *CompatibilityChecker
	prices   *PriceResolver
	stock    *StockLedger

	selection Selection
}

// OptionState — всё, что нужно витрине по одной опции: выбираемость,
// причина блокировки, действующая цена и бейджи наличия. И покупательский
// конфигуратор, и админский билдер рисуют ровно эту структуру.
type OptionState struct {
	Option         *domain.PartOption `json:"option"`
	Selected       bool               `json:"selected"`
	Selectable     bool               `json:"selectable"`
	Reason         string             `json:"reason,omitempty"`
	EffectivePrice decimal.Decimal    `json:"effectivePrice"`
	InStock        bool               `json:"inStock"`
	LowStock       bool               `json:"lowStock"`
}

// NewSession создаёт пустую сессию поверх неизменяемого снимка
// (индекс, правила и остатки уже построены вызывающей стороной).
func NewSession(category domain.Category, index *CatalogIndex, compat *CompatibilityChecker, prices *PriceResolver, stock *StockLedger) *Session {
	return &Session{
		category:  category,
		index:     index,
		compat:    compat,
		prices:    prices,
		stock:     stock,
		selection: make(Selection),
	}
}

// SessionFromPreconfigured создаёт сессию, преднаполненную опциями
// сохранённого товара. Каждая опция проходит через обычный Select,
// так что устаревший состав (снятая с продажи опция, новое правило
// несовместимости) всплывёт ошибкой, а не молча попадёт в заказ.
func SessionFromPreconfigured(category domain.Category, index *CatalogIndex, compat *CompatibilityChecker, prices *PriceResolver, stock *StockLedger, p *domain.PreconfiguredProduct) (*Session, error) {
	s := NewSession(category, index, compat, prices, stock)
	for _, optionID := range p.OptionIDs {
		part := index.PartOfOption(optionID)
		if part == nil {
			return nil, &ConfigurationError{Kind: ErrUnknownOption, Subject: optionID}
		}
		if err := s.Select(part.Name, optionID); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Category возвращает активную категорию сессии.
func (s *Session) Category() domain.Category {
	return s.category
}

// Selection возвращает копию текущего выбора (имя части -> ID опции).
func (s *Session) Selection() Selection {
	out := make(Selection, len(s.selection))
	for k, v := range s.selection {
		out[k] = v
	}
	return out
}

// Select выбирает опцию для части, перезаписывая прежний выбор части.
// Неизвестная часть/опция, чужая опция или опция, заблокированная
// правилом несовместимости, возвращают *ConfigurationError —
// молча вернуть неверные цифры хуже, чем отказать.
func (s *Session) Select(partName, optionID string) error {
	part := s.index.PartByName(partName)
	if part == nil {
		return &ConfigurationError{Kind: ErrUnknownPart, Subject: partName}
	}
	opt := s.index.OptionByID(optionID)
	if opt == nil {
		return &ConfigurationError{Kind: ErrUnknownOption, Subject: optionID}
	}
	if opt.PartID != part.ID {
		return &ConfigurationError{Kind: ErrWrongPart, Subject: optionID}
	}
	if verdict := s.compat.Check(optionID, s.selection); !verdict.Selectable {
		return &ConfigurationError{Kind: ErrBlocked, Subject: optionID, Reason: verdict.Reason}
	}

	s.selection[part.Name] = optionID
	return nil
}

// Deselect снимает выбор с части. Нужен админскому билдеру;
// для ненастроенной части — no-op.
func (s *Session) Deselect(partName string) {
	delete(s.selection, partName)
}

// Selectability — вердикт по опции при текущем выборе.
func (s *Session) Selectability(optionID string) (Selectability, error) {
	if s.index.OptionByID(optionID) == nil {
		return Selectability{}, &ConfigurationError{Kind: ErrUnknownOption, Subject: optionID}
	}
	return s.compat.Check(optionID, s.selection), nil
}

// EffectivePrice — действующая цена опции при текущем выборе.
func (s *Session) EffectivePrice(optionID string) (decimal.Decimal, error) {
	opt := s.index.OptionByID(optionID)
	if opt == nil {
		return decimal.Decimal{}, &ConfigurationError{Kind: ErrUnknownOption, Subject: optionID}
	}
	return s.prices.EffectivePrice(opt, s.selection), nil
}

// OptionStates — состояние всех опций части для отрисовки одного шага
// конфигуратора. Часть должна существовать в активной категории.
func (s *Session) OptionStates(partName string) ([]OptionState, error) {
	part := s.index.PartByName(partName)
	if part == nil {
		return nil, &ConfigurationError{Kind: ErrUnknownPart, Subject: partName}
	}

	opts := s.index.OptionsForPart(part.ID)
	states := make([]OptionState, 0, len(opts))
	for _, opt := range opts {
		verdict := s.compat.Check(opt.ID, s.selection)
		states = append(states, OptionState{
			Option:         opt,
			Selected:       s.selection[part.Name] == opt.ID,
			Selectable:     verdict.Selectable,
			Reason:         verdict.Reason,
			EffectivePrice: s.prices.EffectivePrice(opt, s.selection),
			InStock:        s.stock.InStock(opt.ID),
			LowStock:       s.stock.LowStock(opt.ID),
		})
	}
	return states, nil
}

// IsComplete — настроена ли каждая часть активной категории.
func (s *Session) IsComplete() bool {
	for _, p := range s.index.parts {
		if _, ok := s.selection[p.Name]; !ok {
			return false
		}
	}
	return true
}

// firstUnselected — имя первой (по шагам) ненастроенной части, либо "".
func (s *Session) firstUnselected() string {
	for _, p := range s.index.parts {
		if _, ok := s.selection[p.Name]; !ok {
			return p.Name
		}
	}
	return ""
}

// Summary — строки конфигурации в порядке шагов каталога: по одной на
// каждую настроенную часть, с действующими ценами. Для незавершённой
// сессии вернёт то, что выбрано; годность к заказу проверяется отдельно
// через IsComplete.
func (s *Session) Summary() []domain.LineItem {
	items := make([]domain.LineItem, 0, len(s.selection))
	for _, p := range s.index.parts {
		optionID, ok := s.selection[p.Name]
		if !ok {
			continue
		}
		opt := s.index.OptionByID(optionID)
		items = append(items, domain.LineItem{
			PartName:       p.Name,
			OptionID:       opt.ID,
			OptionName:     opt.Name,
			EffectivePrice: s.prices.EffectivePrice(opt, s.selection),
		})
	}
	return items
}

// TotalPrice — сумма действующих цен по строкам Summary.
// Считается только через Summary, отдельной формулы нет — иначе
// однажды разъедутся.
func (s *Session) TotalPrice() decimal.Decimal {
	total := decimal.Zero
	for _, item := range s.Summary() {
		total = total.Add(item.EffectivePrice)
	}
	return total
}

// FinalizeOrder собирает черновик заказа из завершённой конфигурации.
// Для незавершённой — ошибка с именем первой ненастроенной части,
// до любых попыток что-то куда-то записать.
func (s *Session) FinalizeOrder() (*domain.Order, error) {
	if !s.IsComplete() {
		return nil, &ConfigurationError{Kind: ErrIncomplete, Subject: s.firstUnselected()}
	}
	lines := s.Summary()
	return &domain.Order{
		ID:         uuid.NewString(),
		CategoryID: s.category.ID,
		Lines:      lines,
		Total:      s.TotalPrice(),
		CreatedAt:  time.Now(),
	}, nil
}

// FinalizePreconfigured сохраняет завершённую конфигурацию как
// преднастроенный товар: имя, категория, базовая цена = итог,
// состав — ID выбранных опций в порядке шагов.
func (s *Session) FinalizePreconfigured(name string) (*domain.PreconfiguredProduct, error) {
	if !s.IsComplete() {
		return nil, &ConfigurationError{Kind: ErrIncomplete, Subject: s.firstUnselected()}
	}

	lines := s.Summary()
	optionIDs := make([]string, 0, len(lines))
	for _, l := range lines {
		optionIDs = append(optionIDs, l.OptionID)
	}

	token := domain.GenerateShareToken()
	return &domain.PreconfiguredProduct{
		ID:         uuid.NewString(),
		Name:       name,
		CategoryID: s.category.ID,
		BasePrice:  s.TotalPrice(),
		OptionIDs:  optionIDs,
		CreatedAt:  time.Now(),
		ShareToken: token,
		SharePath:  "/p/" + s.category.ID + "/" + token,
	}, nil
}
