package configurator

import "configurator-backend/internal/domain"

// LowStockThreshold — фиксированный порог "остаток на исходе".
// Это политика магазина, не настройка.
const LowStockThreshold = 5

// StockLedger — снимок остатков по опциям. Отсутствие записи по опции
// означает нулевой остаток. Снимок неизменяемый: один и тот же запрос
// в рамках сессии всегда даёт один и тот же ответ.
type StockLedger struct {
	qty map[string]int
}

// NewStockLedger строит леджер по записям остатков.
func NewStockLedger(records []domain.StockRecord) *StockLedger {
	l := &StockLedger{qty: make(map[string]int, len(records))}
	for _, r := range records {
		l.qty[r.OptionID] = r.Quantity
	}
	return l
}

// QuantityOf возвращает остаток опции (0, если записи нет).
func (l *StockLedger) QuantityOf(optionID string) int {
	return l.qty[optionID]
}

// InStock — есть ли опция в наличии.
func (l *StockLedger) InStock(optionID string) bool {
	return l.qty[optionID] > 0
}

// LowStock — остаток есть, но не больше порога.
func (l *StockLedger) LowStock(optionID string) bool {
	q := l.qty[optionID]
	return q > 0 && q <= LowStockThreshold
}
