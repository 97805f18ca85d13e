package configurator_test

import (
	"github.com/shopspring/decimal"

	"configurator-backend/internal/configurator"
	"configurator-backend/internal/domain"
)

// Тестовый каталог: велосипед из двух частей.
// Frame: Aluminum 200 / Carbon 500; Wheels: Standard 100 / Aero 300.

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func testParts() []domain.Part {
	return []domain.Part{
		{ID: "frame", Name: "Frame", CategoryID: "bicycles", Step: 1},
		{ID: "wheels", Name: "Wheels", CategoryID: "bicycles", Step: 2},
	}
}

func testOptions() []domain.PartOption {
	return []domain.PartOption{
		{ID: "aluminum", PartID: "frame", Name: "Aluminum", BasePrice: dec("200")},
		{ID: "carbon", PartID: "frame", Name: "Carbon", BasePrice: dec("500")},
		{ID: "standard", PartID: "wheels", Name: "Standard", BasePrice: dec("100")},
		{ID: "aero", PartID: "wheels", Name: "Aero", BasePrice: dec("300")},
	}
}

func newTestIndex() *configurator.CatalogIndex {
	return configurator.NewCatalogIndex(testParts(), testOptions())
}

func testCategory() domain.Category {
	return domain.Category{ID: "bicycles", Name: "Bicycles"}
}

// newTestSession собирает сессию с заданными правилами и остатками
func newTestSession(incompat []domain.IncompatibilityRule, adjust []domain.PriceAdjustmentRule, stock []domain.StockRecord) *configurator.Session {
	idx := newTestIndex()
	return configurator.NewSession(
		testCategory(),
		idx,
		configurator.NewCompatibilityChecker(idx, incompat),
		configurator.NewPriceResolver(adjust),
		configurator.NewStockLedger(stock),
	)
}
