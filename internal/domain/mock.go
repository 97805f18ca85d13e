package domain

import "github.com/shopspring/decimal"

// CatalogSnapshot — всё, что нужно движку конфигуратора для одной категории:
// каталог, правила и остатки. Снимок неизменяемый на время жизни сессии;
// обновлять его между сессиями — забота вызывающей стороны.
type CatalogSnapshot struct {
	Category          Category              `json:"category"`
	Parts             []Part                `json:"parts"`
	Options           []PartOption          `json:"options"`
	Incompatibilities []IncompatibilityRule `json:"incompatibilities"`
	PriceAdjustments  []PriceAdjustmentRule `json:"priceAdjustments"`
	Stock             []StockRecord         `json:"stock"`
}

// MockCatalogSnapshot — демо-каталог велосипедов для старта без внешнего
// сервиса каталога: четыре части, пара несовместимостей и одна корректировка
// цены (матовая покраска дороже для двухподвесной рамы).
func MockCatalogSnapshot() *CatalogSnapshot {
	price := func(s string) decimal.Decimal { return decimal.RequireFromString(s) }

	return &CatalogSnapshot{
		Category: Category{
			ID:          "bicycles",
			Name:        "Велосипеды",
			Description: "Сборка велосипеда под заказ: рама, колёса, обод, покраска.",
		},
		Parts: []Part{
			{ID: "frame", Name: "Frame", CategoryID: "bicycles", Step: 1, Description: "Тип рамы"},
			{ID: "wheels", Name: "Wheels", CategoryID: "bicycles", Step: 2, Description: "Тип колёс"},
			{ID: "rim", Name: "Rim color", CategoryID: "bicycles", Step: 3, Description: "Цвет обода"},
			{ID: "finish", Name: "Finish", CategoryID: "bicycles", Step: 4, Description: "Покраска рамы"},
		},
		Options: []PartOption{
			{ID: "frame_full", PartID: "frame", Name: "Full-suspension", BasePrice: price("130")},
			{ID: "frame_diamond", PartID: "frame", Name: "Diamond", BasePrice: price("100")},
			{ID: "wheels_road", PartID: "wheels", Name: "Road wheels", BasePrice: price("80")},
			{ID: "wheels_mountain", PartID: "wheels", Name: "Mountain wheels", BasePrice: price("95")},
			{ID: "wheels_fat", PartID: "wheels", Name: "Fat bike wheels", BasePrice: price("120")},
			{ID: "rim_red", PartID: "rim", Name: "Red", BasePrice: price("20")},
			{ID: "rim_blue", PartID: "rim", Name: "Blue", BasePrice: price("20")},
			{ID: "finish_matte", PartID: "finish", Name: "Matte", BasePrice: price("35")},
			{ID: "finish_shiny", PartID: "finish", Name: "Shiny", BasePrice: price("30")},
		},
		Incompatibilities: []IncompatibilityRule{
			{
				OptionA: "wheels_mountain",
				OptionB: "frame_diamond",
				Message: "Горные колёса ставятся только на двухподвесную раму",
			},
			{
				OptionA: "wheels_fat",
				OptionB: "rim_red",
				Message: "Для fat-колёс красный обод недоступен",
			},
		},
		PriceAdjustments: []PriceAdjustmentRule{
			// матовая покраска большой рамы трудозатратнее
			{ConditionOption: "frame_full", AffectedOption: "finish_matte", AdjustedPrice: price("15")},
		},
		Stock: []StockRecord{
			{OptionID: "frame_full", Quantity: 12},
			{OptionID: "frame_diamond", Quantity: 7},
			{OptionID: "wheels_road", Quantity: 25},
			{OptionID: "wheels_mountain", Quantity: 4}, // остаток на исходе
			{OptionID: "wheels_fat", Quantity: 0},      // закончились
			{OptionID: "rim_red", Quantity: 30},
			{OptionID: "rim_blue", Quantity: 30},
			{OptionID: "finish_matte", Quantity: 100},
			{OptionID: "finish_shiny", Quantity: 100},
		},
	}
}
