package ca

// Density returns the mean cell value, in [0,1]. Empty input yields 0 by
// convention.
func Density(cells []uint8) float64 {
	if len(cells) == 0 {
		return 0
	}
	sum := 0
	for _, c := range cells {
		sum += int(c)
	}
	return float64(sum) / float64(len(cells))
}

// Density returns the mean cell value of the grid.
func (g Grid) Density() float64 { return Density(g.cells) }
