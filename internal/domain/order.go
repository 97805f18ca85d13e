package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// LineItem — одна строка итоговой конфигурации: часть, выбранная опция
// и её действующая цена (с учётом сработавших корректировок).
// Именно этот список сохраняется как позиции заказа или как состав
// преднастроенного товара.
type LineItem struct {
	PartName       string          `json:"partName"`
	OptionID       string          `json:"optionId"`
	OptionName     string          `json:"optionName"`
	EffectivePrice decimal.Decimal `json:"effectivePrice"`
}

// Order — черновик заказа, собранный из завершённой конфигурации.
// Отправка заказа во внешний сервис — не наша забота: мы только собираем
// структуру с уже рассчитанными ценами.
type Order struct {
	ID         string          `json:"id"`
	CategoryID string          `json:"categoryId"`
	Lines      []LineItem      `json:"lines"`
	Total      decimal.Decimal `json:"total"`
	CreatedAt  time.Time       `json:"createdAt"`
}
