/*
Copyright 2011-2026 Frederic Langlet
Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
you may obtain a copy of the License at

                http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package dispatch

// CodeCount is the (count, total bits) pair accumulated for a single
// Kind.
type CodeCount struct {
	Count     uint64
	TotalBits uint64
}

// AverageBits returns the mean encoded length for this Kind, or 0 if
// nothing has been recorded.
func (c CodeCount) AverageBits() float64 {
	if c.Count == 0 {
		return 0
	}

	return float64(c.TotalBits) / float64(c.Count)
}

// CodeStats accumulates, per Kind, the number of values encoded and the
// total bits spent encoding them, so a caller can compare the cost of
// different code families over the same dataset and pick the one with
// the smallest total. Merge makes it a commutative, associative monoid,
// keyed by Kind rather than folded into a single scalar, so that
// partial statistics gathered by independent workers can be combined in
// any order without losing per-family resolution.
type CodeStats map[Kind]CodeCount

// NewCodeStats returns an empty CodeStats accumulator.
func NewCodeStats() CodeStats {
	return make(CodeStats)
}

// Update measures the length Write would spend on n using c, and adds
// it to the bucket for c.Kind.
func (s CodeStats) Update(c Code, n uint64) error {
	l, err := c.Len(n)
	if err != nil {
		return err
	}

	entry := s[c.Kind]
	entry.Count++
	entry.TotalBits += l
	s[c.Kind] = entry
	return nil
}

// UpdateMany calls Update for c against every value in ns, stopping at
// the first error.
func (s CodeStats) UpdateMany(c Code, ns []uint64) error {
	for _, n := range ns {
		if err := s.Update(c, n); err != nil {
			return err
		}
	}

	return nil
}

// Get returns the accumulated count for kind, or the zero CodeCount if
// nothing has been recorded for it.
func (s CodeStats) Get(kind Kind) CodeCount {
	return s[kind]
}

// Merge returns a new CodeStats holding the bucket-by-bucket sum of s
// and other, leaving both inputs untouched. Merge is commutative and
// associative: a.Merge(b).Merge(c) == a.Merge(b.Merge(c)). Because it
// never mutates its receiver, independent goroutines can each hold
// their own CodeStats and Merge them together (e.g. via a reduction
// tree or a single accumulating goroutine) without synchronizing
// access to the originals.
func (s CodeStats) Merge(other CodeStats) CodeStats {
	merged := make(CodeStats, len(s)+len(other))

	for kind, entry := range s {
		merged[kind] = entry
	}

	for kind, entry := range other {
		acc := merged[kind]
		acc.Count += entry.Count
		acc.TotalBits += entry.TotalBits
		merged[kind] = acc
	}

	return merged
}

// Best returns the Kind with the smallest total bits among those
// present in s, and ok=false if s is empty.
func (s CodeStats) Best() (kind Kind, ok bool) {
	first := true
	var bestBits uint64

	for k, entry := range s {
		if first || entry.TotalBits < bestBits {
			kind = k
			bestBits = entry.TotalBits
			first = false
		}
	}

	return kind, !first
}
