// Package bloom wraps a bloom filter for probabilistic URL dedup during
// crawls.
package bloom

import (
	"github.com/bits-and-blooms/bloom/v3"
)

// Filter tracks URLs already queued for fetching. False positives skip a
// page; false negatives cannot occur, so no URL is fetched twice.
type Filter struct {
	inner *bloom.BloomFilter
	count uint
}

// NewFilter sizes a filter for n expected URLs at the given false
// positive rate.
func NewFilter(n uint, fpRate float64) *Filter {
	return &Filter{
		inner: bloom.NewWithEstimates(n, fpRate),
	}
}

// Add records a URL as seen.
func (f *Filter) Add(url string) {
	f.inner.AddString(url)
	f.count++
}

// Test reports whether a URL was probably seen before.
func (f *Filter) Test(url string) bool {
	return f.inner.TestString(url)
}

// TestAndAdd records a URL and reports whether it was probably already
// present.
func (f *Filter) TestAndAdd(url string) bool {
	seen := f.inner.TestAndAddString(url)
	if !seen {
		f.count++
	}
	return seen
}

// Count returns the number of distinct URLs added.
func (f *Filter) Count() uint {
	return f.count
}
