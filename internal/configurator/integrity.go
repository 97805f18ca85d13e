package configurator

import (
	"fmt"

	"configurator-backend/internal/domain"
)

// CheckRuleIntegrity проверяет, что все правила ссылаются на существующие
// опции каталога и что правило несовместимости не замкнуто само на себя.
// Запускается один раз на снимок, до создания сессий: висячая ссылка —
// это ошибка данных, а не повод молча считать пару совместимой
// или корректировку нулевой.
func CheckRuleIntegrity(index *CatalogIndex, incompat []domain.IncompatibilityRule, adjust []domain.PriceAdjustmentRule) error {
	for _, r := range incompat {
		name := fmt.Sprintf("incompatibility(%s, %s)", r.OptionA, r.OptionB)
		if r.OptionA == r.OptionB {
			return &IntegrityError{Rule: name, Detail: "option paired with itself"}
		}
		if index.OptionByID(r.OptionA) == nil {
			return &IntegrityError{Rule: name, OptionID: r.OptionA}
		}
		if index.OptionByID(r.OptionB) == nil {
			return &IntegrityError{Rule: name, OptionID: r.OptionB}
		}
	}

	for _, r := range adjust {
		name := fmt.Sprintf("priceAdjustment(%s -> %s)", r.ConditionOption, r.AffectedOption)
		if index.OptionByID(r.ConditionOption) == nil {
			return &IntegrityError{Rule: name, OptionID: r.ConditionOption}
		}
		if index.OptionByID(r.AffectedOption) == nil {
			return &IntegrityError{Rule: name, OptionID: r.AffectedOption}
		}
	}

	return nil
}
