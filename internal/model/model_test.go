package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMaterial(t *testing.T) {
	tests := []struct {
		in   string
		want Material
	}{
		{"tile", MaterialTile},
		{"  Tile ", MaterialTile},
		{"HARDWOOD", MaterialHardwood},
		{"laminate", MaterialLaminate},
		{"Vinyl/LVP", MaterialVinyl},
		{"lvp", MaterialVinyl},
		{"carpet", MaterialCarpet},
	}
	for _, tt := range tests {
		got, err := ParseMaterial(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := ParseMaterial("marble")
	assert.Error(t, err)
}

func TestParsePattern(t *testing.T) {
	tests := []struct {
		in   string
		want Pattern
	}{
		{"straight", PatternStraight},
		{"Standard", PatternStraight},
		{"", PatternStraight},
		{"diagonal", PatternDiagonal},
		{"45", PatternDiagonal},
		{"Herringbone", PatternHerringbone},
		{"chevron", PatternHerringbone},
	}
	for _, tt := range tests {
		got, err := ParsePattern(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := ParsePattern("basketweave")
	assert.Error(t, err)
}

func TestMaterialLabels(t *testing.T) {
	assert.Equal(t, "Vinyl/LVP", MaterialVinyl.Label())
	assert.Equal(t, "Tile", MaterialTile.Label())
	assert.Equal(t, "Herringbone/Chevron", PatternHerringbone.Label())
	assert.True(t, MaterialCarpet.Valid())
	assert.False(t, Material("cork").Valid())
	assert.False(t, AnyPattern.Valid())
}

func TestUnitLabels(t *testing.T) {
	assert.Equal(t, "ft", UnitsImperial.LengthLabel())
	assert.Equal(t, "sq ft", UnitsImperial.AreaLabel())
	assert.Equal(t, "m", UnitsMetric.LengthLabel())
	assert.Equal(t, "sq m", UnitsMetric.AreaLabel())
	assert.Equal(t, "Length (meters)", UnitsMetric.LengthFieldLabel())
	assert.Equal(t, "Width (feet)", UnitsImperial.WidthFieldLabel())
	// Unknown unit systems render as imperial
	assert.Equal(t, "sq ft", UnitSystem("").AreaLabel())
}

func TestRoomDisplayName(t *testing.T) {
	r := NewRoom("", 10, 12, MaterialTile, PatternStraight)
	assert.Equal(t, "Room 3", r.DisplayName(3))

	r.Name = "  "
	assert.Equal(t, "Room 1", r.DisplayName(1))

	r.Name = "Kitchen"
	assert.Equal(t, "Kitchen", r.DisplayName(7))
}

func TestNewRoomGeneratesID(t *testing.T) {
	a := NewRoom("A", 1, 1, MaterialTile, PatternStraight)
	b := NewRoom("B", 1, 1, MaterialTile, PatternStraight)
	assert.Len(t, a.ID, 8)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestOutlineBoundingBoxAndArea(t *testing.T) {
	o := Outline{{X: 2, Y: 1}, {X: 14, Y: 1}, {X: 14, Y: 11}, {X: 2, Y: 11}}
	min, max := o.BoundingBox()
	assert.Equal(t, Point2D{X: 2, Y: 1}, min)
	assert.Equal(t, Point2D{X: 14, Y: 11}, max)
	assert.InDelta(t, 120.0, o.Area(), 1e-9)

	// L-shaped room: 10x10 minus a 5x5 corner
	l := Outline{{0, 0}, {10, 0}, {10, 5}, {5, 5}, {5, 10}, {0, 10}}
	assert.InDelta(t, 75.0, l.Area(), 1e-9)

	assert.Zero(t, Outline{}.Area())
}

func TestMaterialsIn(t *testing.T) {
	rooms := []Room{
		NewRoom("A", 1, 1, MaterialTile, PatternStraight),
		NewRoom("B", 1, 1, MaterialVinyl, PatternStraight),
		NewRoom("C", 1, 1, MaterialTile, PatternDiagonal),
	}
	set := MaterialsIn(rooms)
	assert.Len(t, set, 2)
	assert.True(t, set.Has(MaterialTile))
	assert.True(t, set.Has(MaterialCarpet, MaterialVinyl))
	assert.False(t, set.Has(MaterialHardwood, MaterialLaminate))
}

func TestAuxiliaryIsEmpty(t *testing.T) {
	assert.True(t, AuxiliaryMaterials{UnderlaymentRolls: 3}.IsEmpty())
	assert.False(t, AuxiliaryMaterials{NeedsGrout: true}.IsEmpty())
}

func TestNewProject(t *testing.T) {
	p := NewProject()
	assert.Equal(t, "Untitled", p.Name)
	assert.Equal(t, UnitsImperial, p.Units)
	assert.NotNil(t, p.Rooms)
	assert.Nil(t, p.Result)
}
