package data

// Label is the classification returned by the prediction endpoint.
type Label string

const (
    Confirmed     Label = "CONFIRMED"
    Candidate     Label = "CANDIDATE"
    FalsePositive Label = "FALSE POSITIVE"
)

// Known reports whether l is one of the labels the renderer treats as positive.
func (l Label) Known() bool {
    return l == Confirmed || l == Candidate
}

// Bucket folds every unrecognized label into FalsePositive.
func (l Label) Bucket() Label {
    if l.Known() { return l }
    return FalsePositive
}

// Columns of the Kepler Object of Interest catalog that the classifier consumes.
const (
    ColPeriod             = "koi_period"
    ColFlagNotTransit     = "koi_fpflag_nt"
    ColFlagStellarEclipse = "koi_fpflag_ss"
    ColFlagCentroidOffset = "koi_fpflag_co"
)
