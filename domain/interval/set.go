package interval

import (
	"slices"
)

// Minimum returns the smallest start among the non-empty intervals of set.
// The boolean is false when set holds no non-empty interval.
func Minimum(set []Interval) (uint64, bool) {
	var (
		lowest uint64
		found  bool
	)
	for _, iv := range set {
		if iv.IsEmpty() {
			continue
		}
		if !found || iv.start < lowest {
			lowest = iv.start
			found = true
		}
	}
	return lowest, found
}

// Compact returns set without its empty intervals. The input is not modified.
func Compact(set []Interval) []Interval {
	out := make([]Interval, 0, len(set))
	for _, iv := range set {
		if !iv.IsEmpty() {
			out = append(out, iv)
		}
	}
	return out
}

// Merge returns a sorted copy of set in which overlapping and touching
// intervals are joined. Empty intervals are dropped.
func Merge(set []Interval) []Interval {
	sorted := Compact(set)
	slices.SortFunc(sorted, func(a, b Interval) int {
		switch {
		case a.start < b.start:
			return -1
		case a.start > b.start:
			return 1
		default:
			return 0
		}
	})

	merged := sorted[:0]
	for _, iv := range sorted {
		n := len(merged)
		if n > 0 && iv.start <= merged[n-1].end {
			if iv.end > merged[n-1].end {
				merged[n-1].end = iv.end
			}
			continue
		}
		merged = append(merged, iv)
	}
	return merged
}

// TotalLen returns the summed length of every interval in set.
func TotalLen(set []Interval) uint64 {
	var total uint64
	for _, iv := range set {
		total += iv.Len()
	}
	return total
}

// Chunk splits iv into consecutive pieces no longer than size. A size of
// zero returns iv unchanged.
func Chunk(iv Interval, size uint64) []Interval {
	if iv.IsEmpty() {
		return nil
	}
	if size == 0 || iv.Len() <= size {
		return []Interval{iv}
	}
	chunks := make([]Interval, 0, iv.Len()/size+1)
	for start := iv.start; start < iv.end; {
		end := iv.end
		if iv.end-start > size {
			end = start + size
		}
		chunks = append(chunks, Interval{start: start, end: end})
		start = end
	}
	return chunks
}
