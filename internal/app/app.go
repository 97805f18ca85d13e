package app

import (
	"fmt"

	"configurator-backend/internal/configurator"
	"configurator-backend/internal/domain"
)

// Config — настройки приложения. Пустой SnapshotPath означает
// работу на демо-каталоге.
type Config struct {
	SnapshotPath string
}

// App держит неизменяемый снимок каталога и построенные по нему
// резолверы. Сессии конфигурирования создаются поверх этого снимка;
// чтобы подхватить обновлённый каталог/правила/остатки, приложение
// пересобирают заново (между сессиями, не посреди).
type App struct {
	Snapshot *domain.CatalogSnapshot

	Index  *configurator.CatalogIndex
	Stock  *configurator.StockLedger
	Compat *configurator.CompatibilityChecker
	Prices *configurator.PriceResolver
}

func New(cfg Config) (*App, error) {
	// 1. Снимок каталога: из файла или демо-данные
	var snap *domain.CatalogSnapshot
	if cfg.SnapshotPath != "" {
		loaded, err := LoadSnapshot(cfg.SnapshotPath)
		if err != nil {
			return nil, fmt.Errorf("load snapshot: %w", err)
		}
		snap = loaded
	} else {
		snap = domain.MockCatalogSnapshot()
	}

	// 2. Индекс каталога
	index := configurator.NewCatalogIndex(snap.Parts, snap.Options)

	// 3. Целостность правил: висячие ссылки ловим здесь, а не в сессии
	if err := configurator.CheckRuleIntegrity(index, snap.Incompatibilities, snap.PriceAdjustments); err != nil {
		return nil, err
	}

	// 4. Леджер остатков и резолверы
	stock := configurator.NewStockLedger(snap.Stock)
	compat := configurator.NewCompatibilityChecker(index, snap.Incompatibilities)
	prices := configurator.NewPriceResolver(snap.PriceAdjustments)

	return &App{
		Snapshot: snap,
		Index:    index,
		Stock:    stock,
		Compat:   compat,
		Prices:   prices,
	}, nil
}

// NewSession — пустая сессия конфигурирования поверх текущего снимка.
func (a *App) NewSession() *configurator.Session {
	return configurator.NewSession(a.Snapshot.Category, a.Index, a.Compat, a.Prices, a.Stock)
}

// SessionFromPreconfigured — сессия, преднаполненная сохранённым товаром.
func (a *App) SessionFromPreconfigured(p *domain.PreconfiguredProduct) (*configurator.Session, error) {
	return configurator.SessionFromPreconfigured(a.Snapshot.Category, a.Index, a.Compat, a.Prices, a.Stock, p)
}
