package plate

// WellMeasurement is one row of the instrument's per-well results table, with
// the Ct column already normalized by the loader.
type WellMeasurement struct {
	Well        Well
	SampleLabel string
	Ct          Ct
}

// TaggedMeasurement pairs a measurement with the primer target assigned to
// its plate row.
type TaggedMeasurement struct {
	WellMeasurement
	Primer PrimerTarget
}
