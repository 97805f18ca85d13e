package configurator

import (
	"github.com/shopspring/decimal"

	"configurator-backend/internal/domain"
)

// PriceResolver считает действующую цену опции при текущем выборе.
// Правила корректировки один раз индексируются по затрагиваемой опции;
// сами цены не кэшируются: любое изменение выбора может поменять
// корректировки для любой другой опции.
type PriceResolver struct {
	byAffected map[string][]domain.PriceAdjustmentRule
}

// NewPriceResolver строит резолвер по списку правил корректировки.
func NewPriceResolver(rules []domain.PriceAdjustmentRule) *PriceResolver {
	r := &PriceResolver{byAffected: make(map[string][]domain.PriceAdjustmentRule)}
	for _, rule := range rules {
		r.byAffected[rule.AffectedOption] = append(r.byAffected[rule.AffectedOption], rule)
	}
	return r
}

// EffectivePrice — базовая цена опции плюс сумма дельт всех правил,
// чья опция-условие сейчас выбрана где угодно в конфигурации
// (в том числе в части самой оцениваемой опции — условие специально
// не исключает "свою" часть). Вся арифметика — decimal.
func (r *PriceResolver) EffectivePrice(opt *domain.PartOption, sel Selection) decimal.Decimal {
	price := opt.BasePrice
	rules := r.byAffected[opt.ID]
	if len(rules) == 0 {
		return price
	}

	selected := make(map[string]bool, len(sel))
	for _, optionID := range sel {
		selected[optionID] = true
	}

	for _, rule := range rules {
		if selected[rule.ConditionOption] {
			price = price.Add(rule.AdjustedPrice)
		}
	}
	return price
}
