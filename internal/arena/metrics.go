package arena

// SizeInUse returns the number of bytes handed out, including alignment
// padding and blocks abandoned by Grow.
func (a *Arena) SizeInUse() int {
	sum := 0
	for _, p := range a.pages {
		sum += p.used
	}
	return sum
}

// NumPages returns the number of pages the arena holds.
func (a *Arena) NumPages() int {
	return len(a.pages)
}

// Capacity returns the total size of all pages.
func (a *Arena) Capacity() int {
	return a.reserved
}

// Utilization returns SizeInUse / Capacity, or 0 for an empty arena.
func (a *Arena) Utilization() float64 {
	if a.reserved == 0 {
		return 0
	}
	return float64(a.SizeInUse()) / float64(a.reserved)
}

// PageSize returns the minimum page size.
func (a *Arena) PageSize() int {
	return a.pageSize
}

// Stats returns a snapshot of arena usage.
func (a *Arena) Stats() Stats {
	return Stats{
		SizeInUse:   a.SizeInUse(),
		Capacity:    a.Capacity(),
		NumPages:    a.NumPages(),
		PageSize:    a.PageSize(),
		Utilization: a.Utilization(),
	}
}

// Stats describes arena memory usage.
type Stats struct {
	SizeInUse   int     // Bytes handed out
	Capacity    int     // Bytes reserved in pages
	NumPages    int     // Number of pages
	PageSize    int     // Minimum page size
	Utilization float64 // SizeInUse / Capacity
}
