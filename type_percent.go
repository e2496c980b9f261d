package printsales

import "fmt"

// Percent is a tax rate expressed in percent (20 means 20%).
type Percent float64

func (p Percent) Equal(q Percent) bool {
	// it has to be compared with some precision
	const precision = 0.0001
	diff := p - q
	if diff < 0 {
		diff = -diff
	}
	return diff < precision
}

func (p Percent) String() string {
	return fmt.Sprintf("%.2f%%", p)
}

// Value returns the rate as a bare number, the way it is entered and
// exported ("20", "17.5").
func (p Percent) Value() string {
	return trimFloat(float64(p))
}
