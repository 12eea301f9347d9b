package ui

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piwi3910/FloorCalc/internal/model"
)

func TestPriceSummary(t *testing.T) {
	r := model.NewRoom("Hall", 4, 9, model.MaterialVinyl, model.PatternStraight)
	assert.Equal(t, "-", priceSummary(r, model.UnitsImperial))

	r.CostPerUnit = 2.5
	assert.Equal(t, "$2.50/sq ft", priceSummary(r, model.UnitsImperial))

	r.PackageCoverage = 23.64
	assert.Equal(t, "$2.50/sq m, 23.64 sq m/box", priceSummary(r, model.UnitsMetric))
}

func TestOptionalAmount(t *testing.T) {
	v, err := optionalAmount("cost", "")
	require.NoError(t, err)
	assert.Zero(t, v)

	v, err = optionalAmount("cost", "3.25")
	require.NoError(t, err)
	assert.Equal(t, 3.25, v)

	_, err = optionalAmount("cost", "-1")
	assert.Error(t, err)
	_, err = optionalAmount("cost", "abc")
	assert.Error(t, err)
}

func TestSignedMoney(t *testing.T) {
	assert.Equal(t, "+$12.50", signedMoney(12.5))
	assert.Equal(t, "-$3.00", signedMoney(-3))
	assert.Equal(t, "+$0.00", signedMoney(0))
}

func TestLabelsRoundTripThroughParsers(t *testing.T) {
	test.NewTempApp(t)

	for _, m := range model.Materials {
		s := newMaterialSelect(m)
		assert.Equal(t, m, selectedMaterial(s))
	}
	for _, p := range model.Patterns {
		s := newPatternSelect(p)
		assert.Equal(t, p, selectedPattern(s))
	}

	// Unknown values fall back to the blank-form defaults
	assert.Equal(t, model.MaterialTile, selectedMaterial(newMaterialSelect(model.Material("cork"))))
	assert.Equal(t, model.PatternStraight, selectedPattern(newPatternSelect(model.Pattern("basketweave"))))
}

func TestAmountText(t *testing.T) {
	assert.Equal(t, "", amountText(0))
	assert.Equal(t, "", amountText(-2))
	assert.Equal(t, "1.99", amountText(1.99))
}
