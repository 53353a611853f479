package features

import (
    "errors"
    "fmt"
    "math"
    "strconv"
    "strings"

    "exoplanet/internal/data"
)

// Origin tells which quantities a Vector carries. Vectors of different
// origins have different lengths and meanings and are never mixed.
type Origin uint8

const (
    ManualInput Origin = iota + 1
    CatalogRow
)

func (o Origin) String() string {
    switch o {
    case ManualInput:
        return "manual"
    case CatalogRow:
        return "catalog"
    default:
        return "unknown"
    }
}

// Width is the number of features a vector of this origin must hold.
func (o Origin) Width() int {
    switch o {
    case ManualInput:
        return len(ManualFields)
    case CatalogRow:
        return len(RequiredColumns)
    default:
        return 0
    }
}

// Field describes one manual input: its form id and the range of its slider.
type Field struct {
    ID      string
    Label   string
    Unit    string
    Min     float64
    Max     float64
    Step    float64
    Default float64
}

func (f Field) SliderID() string { return f.ID + "_slider" }

// Contains reports whether v lies in the slider's inclusive range.
func (f Field) Contains(v float64) bool { return v >= f.Min && v <= f.Max }

// ManualFields lists the manual form inputs in the order they are sent.
var ManualFields = []Field{
    {ID: "orbital_period", Label: "Orbital period", Unit: "days", Min: 0.1, Max: 1000, Step: 0.1, Default: 10.5},
    {ID: "transit_depth", Label: "Transit depth", Unit: "ppm", Min: 0, Max: 50000, Step: 1, Default: 500},
    {ID: "planet_radius", Label: "Planet radius", Unit: "Earth radii", Min: 0.1, Max: 50, Step: 0.1, Default: 1.2},
    {ID: "stellar_temp", Label: "Stellar temperature", Unit: "K", Min: 2000, Max: 12000, Step: 1, Default: 5778},
    {ID: "stellar_mass", Label: "Stellar mass", Unit: "solar masses", Min: 0.1, Max: 5, Step: 0.01, Default: 1.0},
}

// RequiredColumns lists the CSV columns a batch upload must carry, in the
// order their values are sent.
var RequiredColumns = []string{
    data.ColPeriod,
    data.ColFlagNotTransit,
    data.ColFlagStellarEclipse,
    data.ColFlagCentroidOffset,
}

var ErrInvalidManual = errors.New("manual fields must all be numbers")

// MissingColumnError names the first required column absent from a CSV header.
type MissingColumnError struct {
    Column string
}

func (e *MissingColumnError) Error() string {
    return "Missing required column: " + e.Column
}

// InvalidRowError marks a CSV data row with a missing or non-numeric required cell.
type InvalidRowError struct {
    Row    int
    Column string
}

func (e *InvalidRowError) Error() string {
    return fmt.Sprintf("Row %d: Invalid numeric data", e.Row)
}

// Vector is an ordered feature vector. Position defines meaning.
type Vector struct {
    Origin Origin
    Values []float64
}

func (v Vector) Len() int { return len(v.Values) }

func (v Vector) Validate() error {
    if want := v.Origin.Width(); want == 0 || len(v.Values) != want {
        return fmt.Errorf("%s vector has %d features, want %d", v.Origin, len(v.Values), want)
    }
    for i, x := range v.Values {
        if math.IsNaN(x) || math.IsInf(x, 0) {
            return fmt.Errorf("%s feature %d is not a finite number", v.Origin, i)
        }
    }
    return nil
}

// ParseNumber parses a trimmed decimal value and rejects NaN and infinities.
func ParseNumber(s string) (float64, bool) {
    s = strings.TrimSpace(s)
    if s == "" { return 0, false }
    x, err := strconv.ParseFloat(s, 64)
    if err != nil || math.IsNaN(x) || math.IsInf(x, 0) {
        return 0, false
    }
    return x, true
}

// FromManual reads the manual fields through lookup in their fixed order.
func FromManual(lookup func(id string) string) (Vector, error) {
    vals := make([]float64, 0, len(ManualFields))
    for _, f := range ManualFields {
        x, ok := ParseNumber(lookup(f.ID))
        if !ok { return Vector{}, ErrInvalidManual }
        vals = append(vals, x)
    }
    return Vector{Origin: ManualInput, Values: vals}, nil
}

// ColumnIndex maps each required column to its position in a CSV header.
type ColumnIndex map[string]int

// IndexColumns resolves RequiredColumns against header. Header tokens are
// trimmed; the first required column that is absent is reported.
func IndexColumns(header []string) (ColumnIndex, error) {
    pos := make(map[string]int, len(header))
    for i, h := range header {
        h = strings.TrimSpace(h)
        if _, dup := pos[h]; !dup {
            pos[h] = i
        }
    }
    idx := make(ColumnIndex, len(RequiredColumns))
    for _, col := range RequiredColumns {
        i, ok := pos[col]
        if !ok { return nil, &MissingColumnError{Column: col} }
        idx[col] = i
    }
    return idx, nil
}

// FromRow builds the catalog vector for data row number row.
func FromRow(row int, values []string, idx ColumnIndex) (Vector, error) {
    vals := make([]float64, 0, len(RequiredColumns))
    for _, col := range RequiredColumns {
        i, ok := idx[col]
        if !ok || i >= len(values) {
            return Vector{}, &InvalidRowError{Row: row, Column: col}
        }
        x, ok := ParseNumber(values[i])
        if !ok { return Vector{}, &InvalidRowError{Row: row, Column: col} }
        vals = append(vals, x)
    }
    return Vector{Origin: CatalogRow, Values: vals}, nil
}
