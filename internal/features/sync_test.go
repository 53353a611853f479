package features

import (
    "testing"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"
)

func TestPairTypeInsideRangeMovesSlider(t *testing.T) {
    f := Field{ID: "stellar_temp", Min: 2000, Max: 12000, Default: 5778}
    for _, v := range []string{"2000", "12000", "6500.5", " 3000 "} {
        p := NewPair(f)
        assert.True(t, p.Type(v), v)
        want, _ := ParseNumber(v)
        assert.Equal(t, want, p.Slider)
        assert.Equal(t, v, p.Text)
    }
}

func TestPairTypeOutsideRangeLeavesSlider(t *testing.T) {
    f := Field{ID: "stellar_temp", Min: 2000, Max: 12000, Default: 5778}
    for _, v := range []string{"1999.99", "12000.01", "", "-", "5e", "abc"} {
        p := NewPair(f)
        assert.False(t, p.Type(v), v)
        assert.Equal(t, 5778.0, p.Slider)
        assert.Equal(t, v, p.Text)
    }
}

func TestPairSlideCopiesIntoText(t *testing.T) {
    p := NewPair(Field{ID: "stellar_mass", Min: 0.1, Max: 5, Default: 1})
    p.Type("garbage")
    p.Slide(2.25)
    assert.Equal(t, 2.25, p.Slider)
    assert.Equal(t, "2.25", p.Text)

    p.Slide(9)
    assert.Equal(t, 5.0, p.Slider)
    assert.Equal(t, "5", p.Text)
}

func TestPanelWiresEveryManualField(t *testing.T) {
    panel := NewPanel(ManualFields)
    require.Len(t, panel.Pairs(), len(ManualFields))
    for i, f := range ManualFields {
        assert.Equal(t, f.ID, panel.Pairs()[i].Field.ID)
    }

    period, ok := panel.Pair("orbital_period")
    require.True(t, ok)
    period.Type("42")

    radius, _ := panel.Pair("planet_radius")
    assert.Equal(t, 1.2, radius.Slider, "pairs are independent")
    assert.Equal(t, "42", panel.Text("orbital_period"))
    assert.Equal(t, "", panel.Text("nope"))

    _, ok = panel.Pair("nope")
    assert.False(t, ok)
}
