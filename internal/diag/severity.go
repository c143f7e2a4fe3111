package diag

// Severity ranks a diagnostic. Ordering matters: the bag sorts and
// filters with >= comparisons, so higher values mean more severe.
type Severity uint8

const (
	// SevInfo carries advice that never affects the compile result.
	SevInfo Severity = iota
	// SevWarning flags suspect input the compiler still accepts, such
	// as an empty :layout: block.
	SevWarning
	// SevError marks input the compiler rejects; any error fails the
	// run and stops the stages that follow.
	SevError
)

// String returns the uppercase label used in rendered diagnostics.
func (s Severity) String() string {
	switch s {
	case SevWarning:
		return "WARNING"
	case SevError:
		return "ERROR"
	case SevInfo:
		return "INFO"
	}
	return "UNKNOWN"
}
