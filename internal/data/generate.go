package data

import (
    "encoding/csv"
    "fmt"
    "io"
    "math"
    "math/rand"
    "strconv"
)

// CatalogOptions controls the synthetic KOI catalog written by GenerateCatalog.
type CatalogOptions struct {
    Rows int
    // InvalidRate is the fraction of rows whose period cell is left non-numeric.
    InvalidRate float64
    Seed        int64
}

// CatalogHeader includes a couple of catalog columns the classifier ignores,
// so uploads exercise header lookup by name rather than by position.
var CatalogHeader = []string{"kepoi_name", ColFlagNotTransit, ColPeriod, "koi_disposition", ColFlagStellarEclipse, ColFlagCentroidOffset}

func GenerateCatalog(w io.Writer, opts CatalogOptions) error {
    if opts.Rows < 0 { return fmt.Errorf("rows must not be negative: %d", opts.Rows) }
    rng := rand.New(rand.NewSource(opts.Seed))

    cw := csv.NewWriter(w)
    if err := cw.Write(CatalogHeader); err != nil {
        return err
    }

    for i := 0; i < opts.Rows; i++ {
        name := fmt.Sprintf("K%05d.%02d", 752+i, 1+rng.Intn(3))

        // log-uniform between 0.3 and 700 days
        period := math.Exp(math.Log(0.3) + rng.Float64()*(math.Log(700)-math.Log(0.3)))
        periodCell := strconv.FormatFloat(period, 'f', 6, 64)
        if rng.Float64() < opts.InvalidRate {
            periodCell = "n/a"
        }

        nt, ss, co := flag(rng, 0.15), flag(rng, 0.2), flag(rng, 0.1)
        disposition := "CANDIDATE"
        if nt+ss+co > 0 {
            disposition = "FALSE POSITIVE"
        } else if rng.Float64() < 0.4 {
            disposition = "CONFIRMED"
        }

        rec := []string{
            name,
            strconv.Itoa(nt),
            periodCell,
            disposition,
            strconv.Itoa(ss),
            strconv.Itoa(co),
        }
        if err := cw.Write(rec); err != nil {
            return err
        }
    }
    cw.Flush()
    return cw.Error()
}

func flag(rng *rand.Rand, p float64) int {
    if rng.Float64() < p { return 1 }
    return 0
}
