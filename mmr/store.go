package mmr

// Store accumulates a Merkle Mountain Range's leaves in memory so the
// Prover can answer both the incremental-append proof a ClientUpdate
// needs and position-indexed inclusion proofs for any slot already
// covered. Unlike a persisted flat node array (the reference MMR
// library's approach), Store keeps only the leaves and rebuilds each
// mountain's internal nodes on demand -- simpler to get right, at the
// cost of O(mountain size) work per proof instead of O(log n) node
// lookups. A Prover holds at most one Store per Client, scoped to that
// Client's lifetime.
type Store struct {
	leaves []Digest
}

// NewStore returns an empty Store.
func NewStore() *Store { return &Store{} }

// Push appends a new leaf digest.
func (s *Store) Push(leaf Digest) { s.leaves = append(s.leaves, leaf) }

// Size returns the flat-array MMR size for the leaves pushed so far.
func (s *Store) Size() uint64 {
	if len(s.leaves) == 0 {
		return 0
	}
	return leafIndexToMMRSize(uint64(len(s.leaves)) - 1)
}

// Root returns the current MMR root: every peak's digest bagged together.
func (s *Store) Root() Digest {
	return bagPeaks(s.peakDigests())
}

type leafRange struct{ start, count uint64 }

// peakLeafRanges partitions the current leaves into the consecutive,
// strictly-decreasing power-of-two ranges each peak/mountain covers, tallest
// (leftmost) first -- the leaf-index-space counterpart of getPeaks.
func (s *Store) peakLeafRanges() []leafRange {
	n := uint64(len(s.leaves))
	var ranges []leafRange
	start := uint64(0)
	for n > 0 {
		h := topLeafPeakHeight(n)
		count := uint64(1) << h
		ranges = append(ranges, leafRange{start, count})
		start += count
		n -= count
	}
	return ranges
}

// topLeafPeakHeight returns the height of the tallest perfect binary tree
// (2^h leaves) not exceeding n.
func topLeafPeakHeight(n uint64) uint64 {
	h := uint64(0)
	for (uint64(1) << (h + 1)) <= n {
		h++
	}
	return h
}

func (s *Store) peakDigests() []Digest {
	ranges := s.peakLeafRanges()
	digests := make([]Digest, len(ranges))
	for i, r := range ranges {
		digests[i] = merkleizeRange(s.leaves[r.start : r.start+r.count])
	}
	return digests
}

// merkleizeRange folds a mountain's leaves into its peak digest using the
// same pairwise merge the verifier's climb uses.
func merkleizeRange(leaves []Digest) Digest {
	layer := leaves
	for len(layer) > 1 {
		next := make([]Digest, len(layer)/2)
		for i := range next {
			next[i] = merge(layer[2*i], layer[2*i+1])
		}
		layer = next
	}
	return layer[0]
}

// mountainProof returns the sibling path from the leaf at index up to its
// mountain's peak.
func mountainProof(leaves []Digest, index uint64) []Digest {
	layer := leaves
	idx := index
	var proof []Digest
	for len(layer) > 1 {
		proof = append(proof, layer[idx^1])
		next := make([]Digest, len(layer)/2)
		for i := range next {
			next[i] = merge(layer[2*i], layer[2*i+1])
		}
		layer = next
		idx /= 2
	}
	return proof
}

// InclusionProof builds the witness VerifyInclusion needs to prove the
// leaf at leafIndex belongs to the MMR at the store's current size: the
// sibling path up through its own mountain, followed by every other
// mountain's peak digest in peak order -- matching VerifyInclusion's walk
// from leaf to its own peak, then across the remaining bagged peaks.
func (s *Store) InclusionProof(leafIndex uint64) []Digest {
	ranges := s.peakLeafRanges()
	var proof []Digest
	for _, r := range ranges {
		if leafIndex >= r.start && leafIndex < r.start+r.count {
			proof = append(proof, mountainProof(s.leaves[r.start:r.start+r.count], leafIndex-r.start)...)
			break
		}
	}
	for _, r := range ranges {
		if leafIndex >= r.start && leafIndex < r.start+r.count {
			continue
		}
		proof = append(proof, merkleizeRange(s.leaves[r.start:r.start+r.count]))
	}
	return proof
}

// Snapshot captures the store's current size and peak digests, for use as
// the "old" side of VerifyIncremental before further leaves are pushed.
func (s *Store) Snapshot() Proof {
	return Proof{MMRSize: s.Size(), Items: s.peakDigests()}
}
