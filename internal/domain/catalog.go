package domain

import "github.com/shopspring/decimal"

// Category — категория настраиваемых товаров (например, велосипеды)
type Category struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Part — настраиваемый "слот" внутри категории (рама, колёса и т.п.)
// Step задаёт порядок шагов конфигуратора внутри категории;
// каталог-источник гарантирует, что шаги внутри категории не повторяются.
type Part struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	CategoryID  string `json:"categoryId"`
	Step        int    `json:"step"`
	Description string `json:"description,omitempty"`
}

// PartOption — один конкретный вариант для Part со своей базовой ценой.
// Цены считаем только через decimal, float64 для денег не используем.
type PartOption struct {
	ID          string          `json:"id"`
	PartID      string          `json:"partId"`
	Name        string          `json:"name"`
	BasePrice   decimal.Decimal `json:"basePrice"`
	ImageURL    string          `json:"imageUrl,omitempty"`
	Description string          `json:"description,omitempty"`

	// Минимальная доля предоплаты (0..1), если задана
	MinimumPaymentFraction *decimal.Decimal `json:"minimumPaymentFraction,omitempty"`
}

// FindPart ищет часть по ID в слайсе частей
func FindPart(parts []Part, id string) *Part {
	for i := range parts {
		if parts[i].ID == id {
			return &parts[i]
		}
	}
	return nil
}

// FindPartByName ищет часть по имени (ключ выбора в сессии — имя части)
func FindPartByName(parts []Part, name string) *Part {
	for i := range parts {
		if parts[i].Name == name {
			return &parts[i]
		}
	}
	return nil
}

// FindOption ищет опцию по ID в слайсе опций
func FindOption(options []PartOption, id string) *PartOption {
	for i := range options {
		if options[i].ID == id {
			return &options[i]
		}
	}
	return nil
}
