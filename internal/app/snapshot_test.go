package app_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"configurator-backend/internal/app"
)

// снимок в том виде, как его отдаёт внешний каталог:
// числа местами приезжают строками
const looseSnapshot = `{
  "category": {"id": "bicycles", "name": "Bicycles"},
  "parts": [
    {"id": "frame", "name": "Frame", "categoryId": "bicycles", "step": "1"},
    {"id": "wheels", "name": "Wheels", "categoryId": "bicycles", "step": 2}
  ],
  "options": [
    {"id": "aluminum", "partId": "frame", "name": "Aluminum", "basePrice": "200"},
    {"id": "carbon", "partId": "frame", "name": "Carbon", "basePrice": 500,
     "minimumPaymentFraction": "0.25"},
    {"id": "standard", "partId": "wheels", "name": "Standard", "basePrice": 100},
    {"id": "aero", "partId": "wheels", "name": "Aero", "basePrice": "300.50"}
  ],
  "incompatibilities": [
    {"optionA": "carbon", "optionB": "aero", "message": "Carbon frames require standard wheels"}
  ],
  "priceAdjustments": [
    {"conditionOption": "carbon", "affectedOption": "aero", "adjustedPrice": "-20.5"}
  ],
  "stock": [
    {"optionId": "aero", "quantity": "3"},
    {"optionId": "standard", "quantity": 25}
  ]
}`

func TestParseSnapshot(t *testing.T) {
	t.Parallel()

	t.Run("coerces loose numerics into strict types", func(t *testing.T) {
		snap, err := app.ParseSnapshot([]byte(looseSnapshot))
		require.NoError(t, err)

		require.Len(t, snap.Parts, 2)
		assert.Equal(t, 1, snap.Parts[0].Step)
		assert.Equal(t, 2, snap.Parts[1].Step)

		require.Len(t, snap.Options, 4)
		assert.Equal(t, "200", snap.Options[0].BasePrice.String())
		assert.Equal(t, "300.5", snap.Options[3].BasePrice.String())
		require.NotNil(t, snap.Options[1].MinimumPaymentFraction)
		assert.Equal(t, "0.25", snap.Options[1].MinimumPaymentFraction.String())

		require.Len(t, snap.PriceAdjustments, 1)
		assert.Equal(t, "-20.5", snap.PriceAdjustments[0].AdjustedPrice.String())

		require.Len(t, snap.Stock, 2)
		assert.Equal(t, 3, snap.Stock[0].Quantity)
	})

	t.Run("rejects bad json", func(t *testing.T) {
		_, err := app.ParseSnapshot([]byte(`{"parts": [`))
		assert.Error(t, err)
	})

	t.Run("rejects missing required fields", func(t *testing.T) {
		_, err := app.ParseSnapshot([]byte(`{
			"category": {"id": "c", "name": "C"},
			"parts": [{"id": "p", "categoryId": "c", "step": 1}],
			"options": [{"id": "o", "partId": "p", "name": "O", "basePrice": 1}]
		}`))
		assert.Error(t, err, "part without name must not pass")
	})

	t.Run("rejects negative base price", func(t *testing.T) {
		_, err := app.ParseSnapshot([]byte(`{
			"category": {"id": "c", "name": "C"},
			"parts": [{"id": "p", "name": "P", "categoryId": "c", "step": 1}],
			"options": [{"id": "o", "partId": "p", "name": "O", "basePrice": "-1"}]
		}`))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "negative base price")
	})

	t.Run("rejects payment fraction out of range", func(t *testing.T) {
		_, err := app.ParseSnapshot([]byte(`{
			"category": {"id": "c", "name": "C"},
			"parts": [{"id": "p", "name": "P", "categoryId": "c", "step": 1}],
			"options": [{"id": "o", "partId": "p", "name": "O", "basePrice": 1,
				"minimumPaymentFraction": "1.5"}]
		}`))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "fraction")
	})

	t.Run("rejects negative stock quantity", func(t *testing.T) {
		_, err := app.ParseSnapshot([]byte(`{
			"category": {"id": "c", "name": "C"},
			"parts": [{"id": "p", "name": "P", "categoryId": "c", "step": 1}],
			"options": [{"id": "o", "partId": "p", "name": "O", "basePrice": 1}],
			"stock": [{"optionId": "o", "quantity": -2}]
		}`))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "negative quantity")
	})
}

func TestAppNew(t *testing.T) {
	t.Parallel()

	t.Run("empty path falls back to demo catalog", func(t *testing.T) {
		a, err := app.New(app.Config{})
		require.NoError(t, err)
		assert.NotEmpty(t, a.Snapshot.Parts)
		assert.NotNil(t, a.Index)

		s := a.NewSession()
		assert.False(t, s.IsComplete())
	})

	t.Run("loads snapshot from file and serves sessions", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "snapshot.json")
		require.NoError(t, os.WriteFile(path, []byte(looseSnapshot), 0o644))

		a, err := app.New(app.Config{SnapshotPath: path})
		require.NoError(t, err)

		s := a.NewSession()
		require.NoError(t, s.Select("Frame", "carbon"))

		// правило из снимка реально блокирует aero
		err = s.Select("Wheels", "aero")
		assert.Error(t, err)
		require.NoError(t, s.Select("Wheels", "standard"))
		assert.True(t, s.IsComplete())
	})

	t.Run("dangling rule reference fails construction", func(t *testing.T) {
		bad := `{
			"category": {"id": "c", "name": "C"},
			"parts": [{"id": "p", "name": "P", "categoryId": "c", "step": 1}],
			"options": [{"id": "o", "partId": "p", "name": "O", "basePrice": 1}],
			"incompatibilities": [{"optionA": "o", "optionB": "ghost", "message": "stale"}]
		}`
		path := filepath.Join(t.TempDir(), "bad.json")
		require.NoError(t, os.WriteFile(path, []byte(bad), 0o644))

		_, err := app.New(app.Config{SnapshotPath: path})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "ghost")
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := app.New(app.Config{SnapshotPath: "/no/such/snapshot.json"})
		assert.Error(t, err)
	})
}
