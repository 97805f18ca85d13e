package app

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"configurator-backend/internal/domain"
)

// Слой загрузки снимка каталога. Внешний сервис каталога отдаёт JSON
// довольно вольной формы: числовые поля могут приезжать и числом,
// и строкой. Здесь всё приводится к строгим типам domain ДО того,
// как хоть одно правило начнёт считаться.

var validate = validator.New()

//
// ---- Сырые формы из внешнего API ----------------------------------------
//

type rawCategory struct {
	ID          string `json:"id" validate:"required"`
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}

type rawPart struct {
	ID          string      `json:"id" validate:"required"`
	Name        string      `json:"name" validate:"required"`
	CategoryID  string      `json:"categoryId" validate:"required"`
	Step        json.Number `json:"step" validate:"required"`
	Description string      `json:"description"`
}

type rawOption struct {
	ID          string `json:"id" validate:"required"`
	PartID      string `json:"partId" validate:"required"`
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`

	// decimal.Decimal принимает из JSON и число, и строку
	BasePrice              decimal.Decimal  `json:"basePrice"`
	MinimumPaymentFraction *decimal.Decimal `json:"minimumPaymentFraction"`
}

type rawIncompatibility struct {
	OptionA string `json:"optionA" validate:"required"`
	OptionB string `json:"optionB" validate:"required"`
	Message string `json:"message" validate:"required"`
}

type rawAdjustment struct {
	ConditionOption string          `json:"conditionOption" validate:"required"`
	AffectedOption  string          `json:"affectedOption" validate:"required"`
	AdjustedPrice   decimal.Decimal `json:"adjustedPrice"`
}

type rawStockRecord struct {
	OptionID string      `json:"optionId" validate:"required"`
	Quantity json.Number `json:"quantity" validate:"required"`
}

type rawSnapshot struct {
	Category          rawCategory          `json:"category"`
	Parts             []rawPart            `json:"parts" validate:"min=1,dive"`
	Options           []rawOption          `json:"options" validate:"min=1,dive"`
	Incompatibilities []rawIncompatibility `json:"incompatibilities" validate:"dive"`
	PriceAdjustments  []rawAdjustment      `json:"priceAdjustments" validate:"dive"`
	Stock             []rawStockRecord     `json:"stock" validate:"dive"`
}

//
// ---- Загрузка и приведение к domain -------------------------------------
//

// LoadSnapshot читает снимок каталога из JSON-файла, валидирует сырую
// форму и приводит её к строгим типам domain.
func LoadSnapshot(path string) (*domain.CatalogSnapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read snapshot: %w", err)
	}
	return ParseSnapshot(data)
}

// ParseSnapshot разбирает снимок каталога из JSON-байтов.
func ParseSnapshot(data []byte) (*domain.CatalogSnapshot, error) {
	var raw rawSnapshot
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	if err := validate.Struct(&raw); err != nil {
		return nil, fmt.Errorf("validate snapshot: %w", err)
	}
	return coerceSnapshot(&raw)
}

func coerceSnapshot(raw *rawSnapshot) (*domain.CatalogSnapshot, error) {
	snap := &domain.CatalogSnapshot{
		Category: domain.Category{
			ID:          raw.Category.ID,
			Name:        raw.Category.Name,
			Description: raw.Category.Description,
		},
	}

	for _, p := range raw.Parts {
		step, err := p.Step.Int64()
		if err != nil {
			return nil, fmt.Errorf("part %q: bad step %q: %w", p.ID, p.Step.String(), err)
		}
		snap.Parts = append(snap.Parts, domain.Part{
			ID:          p.ID,
			Name:        p.Name,
			CategoryID:  p.CategoryID,
			Step:        int(step),
			Description: p.Description,
		})
	}

	for _, o := range raw.Options {
		if o.BasePrice.IsNegative() {
			return nil, fmt.Errorf("option %q: negative base price %s", o.ID, o.BasePrice)
		}
		if f := o.MinimumPaymentFraction; f != nil {
			if f.IsNegative() || f.GreaterThan(decimal.NewFromInt(1)) {
				return nil, fmt.Errorf("option %q: minimum payment fraction %s out of [0,1]", o.ID, f)
			}
		}
		snap.Options = append(snap.Options, domain.PartOption{
			ID:                     o.ID,
			PartID:                 o.PartID,
			Name:                   o.Name,
			BasePrice:              o.BasePrice,
			ImageURL:               o.ImageURL,
			Description:            o.Description,
			MinimumPaymentFraction: o.MinimumPaymentFraction,
		})
	}

	for _, r := range raw.Incompatibilities {
		snap.Incompatibilities = append(snap.Incompatibilities, domain.IncompatibilityRule{
			OptionA: r.OptionA,
			OptionB: r.OptionB,
			Message: r.Message,
		})
	}

	// дельта может быть отрицательной — это скидка, не ошибка
	for _, r := range raw.PriceAdjustments {
		snap.PriceAdjustments = append(snap.PriceAdjustments, domain.PriceAdjustmentRule{
			ConditionOption: r.ConditionOption,
			AffectedOption:  r.AffectedOption,
			AdjustedPrice:   r.AdjustedPrice,
		})
	}

	for _, s := range raw.Stock {
		qty, err := s.Quantity.Int64()
		if err != nil {
			return nil, fmt.Errorf("stock %q: bad quantity %q: %w", s.OptionID, s.Quantity.String(), err)
		}
		if qty < 0 {
			return nil, fmt.Errorf("stock %q: negative quantity %d", s.OptionID, qty)
		}
		snap.Stock = append(snap.Stock, domain.StockRecord{
			OptionID: s.OptionID,
			Quantity: int(qty),
		})
	}

	return snap, nil
}
