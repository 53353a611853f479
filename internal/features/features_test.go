package features

import (
    "math"
    "testing"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"
)

func manualLookup(vals map[string]string) func(string) string {
    return func(id string) string { return vals[id] }
}

func TestFromManualKeepsFieldOrder(t *testing.T) {
    v, err := FromManual(manualLookup(map[string]string{
        "stellar_mass":   "1.0",
        "orbital_period": "10.5",
        "stellar_temp":   "5778",
        "transit_depth":  "0.002",
        "planet_radius":  " 1.2 ",
    }))
    require.NoError(t, err)
    assert.Equal(t, ManualInput, v.Origin)
    assert.Equal(t, []float64{10.5, 0.002, 1.2, 5778, 1.0}, v.Values)
    assert.NoError(t, v.Validate())
}

func TestFromManualRejectsNonNumeric(t *testing.T) {
    for _, bad := range []string{"", "abc", "NaN", "inf", "1,5"} {
        t.Run(bad, func(t *testing.T) {
            _, err := FromManual(manualLookup(map[string]string{
                "orbital_period": "10.5",
                "transit_depth":  bad,
                "planet_radius":  "1.2",
                "stellar_temp":   "5778",
                "stellar_mass":   "1.0",
            }))
            assert.ErrorIs(t, err, ErrInvalidManual)
        })
    }
}

func TestIndexColumnsReportsFirstMissing(t *testing.T) {
    _, err := IndexColumns([]string{"koi_period", "koi_fpflag_nt"})
    var missing *MissingColumnError
    require.ErrorAs(t, err, &missing)
    assert.Equal(t, "koi_fpflag_ss", missing.Column)
    assert.Contains(t, err.Error(), "koi_fpflag_ss")

    _, err = IndexColumns([]string{"koi_period", "koi_fpflag_nt", "koi_fpflag_ss"})
    require.ErrorAs(t, err, &missing)
    assert.Equal(t, "koi_fpflag_co", missing.Column)
}

func TestIndexColumnsTrimsHeader(t *testing.T) {
    idx, err := IndexColumns([]string{"name", " koi_fpflag_co", "koi_period ", "koi_fpflag_ss", "koi_fpflag_nt", "koi_period"})
    require.NoError(t, err)
    assert.Equal(t, ColumnIndex{"koi_period": 2, "koi_fpflag_nt": 4, "koi_fpflag_ss": 3, "koi_fpflag_co": 1}, idx)
}

func TestFromRow(t *testing.T) {
    idx, err := IndexColumns([]string{"koi_fpflag_co", "koi_period", "koi_fpflag_ss", "koi_fpflag_nt"})
    require.NoError(t, err)

    v, err := FromRow(1, []string{"1", " 10 ", "0", "0"}, idx)
    require.NoError(t, err)
    assert.Equal(t, Vector{Origin: CatalogRow, Values: []float64{10, 0, 0, 1}}, v)

    _, err = FromRow(2, []string{"1", "ten", "0", "0"}, idx)
    var invalid *InvalidRowError
    require.ErrorAs(t, err, &invalid)
    assert.Equal(t, 2, invalid.Row)
    assert.Equal(t, "koi_period", invalid.Column)
    assert.EqualError(t, err, "Row 2: Invalid numeric data")

    _, err = FromRow(3, []string{"1", "10"}, idx)
    require.ErrorAs(t, err, &invalid)
    assert.Equal(t, "koi_fpflag_ss", invalid.Column)
}

func TestVectorValidate(t *testing.T) {
    assert.NoError(t, Vector{Origin: CatalogRow, Values: []float64{1, 0, 0, 0}}.Validate())
    assert.Error(t, Vector{Origin: CatalogRow, Values: []float64{1, 0, 0, 0, 0}}.Validate())
    assert.Error(t, Vector{Origin: ManualInput, Values: []float64{1, 0, 0, 0}}.Validate())
    assert.Error(t, Vector{Origin: CatalogRow, Values: []float64{math.NaN(), 0, 0, 0}}.Validate())
    assert.Error(t, Vector{Values: []float64{}}.Validate())
}
