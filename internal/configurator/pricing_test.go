package configurator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"configurator-backend/internal/configurator"
	"configurator-backend/internal/domain"
)

func TestPriceResolver(t *testing.T) {
	t.Parallel()

	idx := newTestIndex()
	aero := idx.OptionByID("aero")

	t.Run("no rules means base price", func(t *testing.T) {
		r := configurator.NewPriceResolver(nil)
		got := r.EffectivePrice(aero, configurator.Selection{"Frame": "carbon"})
		assert.Equal(t, "300", got.String())
	})

	t.Run("triggered delta is added", func(t *testing.T) {
		r := configurator.NewPriceResolver([]domain.PriceAdjustmentRule{
			{ConditionOption: "carbon", AffectedOption: "aero", AdjustedPrice: dec("50")},
		})
		sel := configurator.Selection{"Frame": "carbon", "Wheels": "aero"}
		assert.Equal(t, "350", r.EffectivePrice(aero, sel).String())
	})

	t.Run("untriggered rule leaves price alone", func(t *testing.T) {
		r := configurator.NewPriceResolver([]domain.PriceAdjustmentRule{
			{ConditionOption: "carbon", AffectedOption: "aero", AdjustedPrice: dec("50")},
		})
		sel := configurator.Selection{"Frame": "aluminum"}
		assert.Equal(t, "300", r.EffectivePrice(aero, sel).String())
	})

	t.Run("multiple triggered deltas sum", func(t *testing.T) {
		// два правила на одну опцию: дельты накапливаются, не заменяются
		r := configurator.NewPriceResolver([]domain.PriceAdjustmentRule{
			{ConditionOption: "carbon", AffectedOption: "aero", AdjustedPrice: dec("50")},
			{ConditionOption: "aero", AffectedOption: "aero", AdjustedPrice: dec("-20")},
		})
		sel := configurator.Selection{"Frame": "carbon", "Wheels": "aero"}
		assert.Equal(t, "330", r.EffectivePrice(aero, sel).String())
	})

	t.Run("condition on the option's own part still fires", func(t *testing.T) {
		// дегенеративный случай: условие — сама оцениваемая опция
		r := configurator.NewPriceResolver([]domain.PriceAdjustmentRule{
			{ConditionOption: "aero", AffectedOption: "aero", AdjustedPrice: dec("10")},
		})
		sel := configurator.Selection{"Wheels": "aero"}
		assert.Equal(t, "310", r.EffectivePrice(aero, sel).String())
	})

	t.Run("unrelated selection change never shifts price", func(t *testing.T) {
		r := configurator.NewPriceResolver([]domain.PriceAdjustmentRule{
			{ConditionOption: "carbon", AffectedOption: "aero", AdjustedPrice: dec("50")},
		})
		before := r.EffectivePrice(aero, configurator.Selection{"Frame": "carbon"})
		after := r.EffectivePrice(aero, configurator.Selection{"Frame": "carbon", "Wheels": "standard"})
		assert.True(t, before.Equal(after), "before=%s after=%s", before, after)
	})

	t.Run("decimal deltas stay exact", func(t *testing.T) {
		r := configurator.NewPriceResolver([]domain.PriceAdjustmentRule{
			{ConditionOption: "carbon", AffectedOption: "aero", AdjustedPrice: dec("0.10")},
			{ConditionOption: "standard", AffectedOption: "aero", AdjustedPrice: dec("0.20")},
		})
		// standard не выбран, его правило не срабатывает
		sel := configurator.Selection{"Frame": "carbon"}
		assert.Equal(t, "300.1", r.EffectivePrice(aero, sel).String())
	})
}
