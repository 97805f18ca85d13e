package domain

import (
	"crypto/rand"
	"encoding/hex"
	"time"

	"github.com/shopspring/decimal"
)

// PreconfiguredProduct — "канонная" конфигурация, собранная админом:
// готовый набор опций, который покупатель может взять как стартовую точку.
// BasePrice — итоговая цена конфигурации на момент сохранения.
type PreconfiguredProduct struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	CategoryID string          `json:"categoryId"`
	BasePrice  decimal.Decimal `json:"basePrice"`
	OptionIDs  []string        `json:"optionIds"`
	CreatedAt  time.Time       `json:"createdAt"`

	// Токен и путь для публичной ссылки на преднастроенный товар
	ShareToken string `json:"shareToken"`
	SharePath  string `json:"sharePath"`
}

// GenerateShareToken — простой генератор токена для публичной ссылки
func GenerateShareToken() string {
	const size = 16
	b := make([]byte, size)
	if _, err := rand.Read(b); err != nil {
		// в крайнем случае — fallback, чтобы не паниковать
		return time.Now().Format("20060102150405")
	}
	return hex.EncodeToString(b)
}
