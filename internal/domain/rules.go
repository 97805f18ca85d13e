package domain

import "github.com/shopspring/decimal"

// IncompatibilityRule — симметричный запрет: опции A и B не могут
// оказаться в одной конфигурации. Пара неупорядоченная: правило (A,B)
// действует и как (B,A). Пары вида (A,A) невалидны — опция не может
// конфликтовать сама с собой, а опции одной части и так взаимоисключающие.
type IncompatibilityRule struct {
	OptionA string `json:"optionA"`
	OptionB string `json:"optionB"`
	Message string `json:"message"` // текст, который показываем покупателю
}

// PriceAdjustmentRule — направленное правило корректировки цены:
// если в конфигурации выбрана ConditionOption, то к базовой цене
// AffectedOption прибавляется AdjustedPrice.
//
// AdjustedPrice — это дельта (может быть отрицательной), а не абсолютная
// замена цены. Если на одну опцию сработало несколько правил,
// их дельты суммируются.
type PriceAdjustmentRule struct {
	ConditionOption string          `json:"conditionOption"`
	AffectedOption  string          `json:"affectedOption"`
	AdjustedPrice   decimal.Decimal `json:"adjustedPrice"`
}
