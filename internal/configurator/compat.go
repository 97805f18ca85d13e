package configurator

import "configurator-backend/internal/domain"

// Selection — текущий выбор покупателя: имя части -> ID выбранной опции.
// Часть без записи ещё не настроена.
type Selection map[string]string

// Selectability — вердикт по опции: можно ли её выбрать сейчас,
// и если нельзя — почему (текст правила несовместимости).
type Selectability struct {
	Selectable bool   `json:"selectable"`
	Reason     string `json:"reason,omitempty"`
}

// CompatibilityChecker отвечает на вопрос "можно ли выбрать опцию X при
// текущем выборе". Список правил один раз разворачивается в карту смежности
// optionID -> (конфликтующий optionID -> сообщение), дальше каждая проверка
// пары — O(1).
type CompatibilityChecker struct {
	index *CatalogIndex
	adj   map[string]map[string]string
}

// NewCompatibilityChecker строит чекер по симметричным правилам.
// Правило (A,B) раскладывается в обе стороны. Если пара встречается
// в нескольких правилах, сообщение берётся из первого — на вердикт
// дубликаты не влияют.
func NewCompatibilityChecker(index *CatalogIndex, rules []domain.IncompatibilityRule) *CompatibilityChecker {
	c := &CompatibilityChecker{
		index: index,
		adj:   make(map[string]map[string]string, len(rules)*2),
	}
	for _, r := range rules {
		c.addEdge(r.OptionA, r.OptionB, r.Message)
		c.addEdge(r.OptionB, r.OptionA, r.Message)
	}
	return c
}

func (c *CompatibilityChecker) addEdge(from, to, msg string) {
	m := c.adj[from]
	if m == nil {
		m = make(map[string]string)
		c.adj[from] = m
	}
	if _, exists := m[to]; !exists {
		m[to] = msg
	}
}

// Check проверяет, можно ли выбрать кандидата при текущем выборе.
// Повторный выбор уже выбранной опции своей части — всегда можно (no-op).
// Иначе смотрим опции, выбранные для других частей: первый найденный
// конфликт решает, его сообщение уходит покупателю.
func (c *CompatibilityChecker) Check(candidateID string, sel Selection) Selectability {
	ownPart := c.index.PartOfOption(candidateID)
	if ownPart != nil && sel[ownPart.Name] == candidateID {
		return Selectability{Selectable: true}
	}

	conflicts := c.adj[candidateID]
	if len(conflicts) == 0 {
		return Selectability{Selectable: true}
	}

	// идём по частям в порядке шагов, чтобы ответ был детерминированным
	for _, p := range c.index.parts {
		if ownPart != nil && p.ID == ownPart.ID {
			// опция своей же части всё равно будет перезаписана выбором
			continue
		}
		selected, ok := sel[p.Name]
		if !ok {
			continue
		}
		if msg, clash := conflicts[selected]; clash {
			return Selectability{Selectable: false, Reason: msg}
		}
	}
	return Selectability{Selectable: true}
}
