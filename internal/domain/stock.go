package domain

// StockRecord — остаток по одной опции. Если записи по опции нет вообще,
// считаем остаток нулевым/неизвестным.
type StockRecord struct {
	OptionID string `json:"optionId"`
	Quantity int    `json:"quantity"`
}
