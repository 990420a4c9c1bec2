package pattern

// DefaultTopN matches the reference report length.
const DefaultTopN = 5

// DefaultFieldSpec returns the column names used by the antenna measurement
// exports this tool was built around.
func DefaultFieldSpec() FieldSpec {
	return FieldSpec{
		CoordA: "Phi[deg]",
		CoordB: "Theta[deg]",
		Value:  "dB10normalize(GainTotal)",
	}
}
