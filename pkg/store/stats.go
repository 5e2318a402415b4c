package store

import "fmt"

// FleetStats are aggregate figures over a set of batteries. The index view
// computes them over the whole fleet regardless of any active status
// filter; the CLI prints the same numbers.
type FleetStats struct {
	Count           int
	TotalInvestment float64
	// Voltages counts batteries per "<N>V" bucket.
	Voltages map[string]int
	// Statuses counts batteries per status.
	Statuses map[string]int
}

// Stats aggregates the given batteries in memory.
func Stats(batteries []Battery) FleetStats {
	s := FleetStats{
		Count:    len(batteries),
		Voltages: map[string]int{},
		Statuses: map[string]int{},
	}
	for i := range batteries {
		b := &batteries[i]
		if b.Price != nil {
			s.TotalInvestment += *b.Price
		}
		s.Voltages[fmt.Sprintf("%dV", b.Voltage)]++
		s.Statuses[b.Status]++
	}
	return s
}

// Investment sums the non-null prices of the given batteries.
func Investment(batteries []Battery) float64 {
	var total float64
	for i := range batteries {
		if batteries[i].Price != nil {
			total += *batteries[i].Price
		}
	}
	return total
}
