package searcher

// Progress is invoked once per completed simulation, outside the search
// machinery, for long-search feedback displays.
type Progress func(done, total int, label string)
