package mmr

// Proof is the witness a verifier needs to recompute an MMR root it does
// not itself hold: Items supplies the sibling digests (and, towards the
// end, entire untouched peaks) a verifier cannot derive on its own.
type Proof struct {
	MMRSize uint64
	Items   []Digest
}

// VerifyInclusion checks that leaf sits at position pos in an MMR of size
// mmrSize whose root is root, given the sibling-and-peak witness proof. It
// is the algorithm behind lightclient.VerifyTransactionProof: a header is proven a
// member of the accumulated chain by walking its leaf up to its peak and
// then bagging every peak together.
func VerifyInclusion(root Digest, mmrSize uint64, pos uint64, leaf Digest, proof []Digest) bool {
	peaks := getPeaks(mmrSize)
	if len(peaks) == 0 {
		return false
	}

	cur := leaf
	curPos := pos
	idx := 0

	for !isOneOf(curPos, peaks) {
		if idx >= len(proof) {
			return false
		}
		sibling := proof[idx]
		idx++

		h := posHeightInTree(curPos)
		if isRightChild(curPos) {
			cur = merge(sibling, cur)
			curPos++
		} else {
			cur = merge(cur, sibling)
			curPos += uint64(1) << (h + 1)
		}
	}

	peakDigests := make([]Digest, len(peaks))
	for i, pk := range peaks {
		if pk == curPos {
			peakDigests[i] = cur
			continue
		}
		if idx >= len(proof) {
			return false
		}
		peakDigests[i] = proof[idx]
		idx++
	}
	if idx != len(proof) {
		return false
	}
	return bagPeaks(peakDigests) == root
}

// VerifyIncremental checks that appending newLeaves to the MMR whose root
// was oldRoot produces an MMR whose root is newRoot. proof supplies the
// digests of oldRoot's peaks (verified against oldRoot before use), from
// which the post-append peaks -- and so newRoot -- can be recomputed by
// simulating the append.
func VerifyIncremental(newRoot, oldRoot Digest, newLeaves []Digest, proof Proof) bool {
	if bagPeaks(proof.Items) != oldRoot {
		return false
	}

	oldPeakPositions := getPeaks(proof.MMRSize)
	if len(oldPeakPositions) != len(proof.Items) {
		return false
	}

	stack := make([]peakEntry, len(proof.Items))
	for i, pos := range oldPeakPositions {
		stack[i] = peakEntry{height: posHeightInTree(pos), digest: proof.Items[i]}
	}

	stack = appendLeaves(stack, newLeaves)

	finalPeaks := make([]Digest, len(stack))
	for i, e := range stack {
		finalPeaks[i] = e.digest
	}
	return bagPeaks(finalPeaks) == newRoot
}

// peakEntry pairs a peak's height (so append knows when two peaks are
// equal-height and must merge) with its digest.
type peakEntry struct {
	height uint64
	digest Digest
}

// appendLeaves pushes each new leaf onto the peak stack and merges equal
// height peaks, exactly as a binary counter carries: this is the only way
// an MMR ever grows, so replaying it is sufficient to derive new peaks
// from old peaks plus new leaves without touching any other node.
func appendLeaves(peaks []peakEntry, leaves []Digest) []peakEntry {
	stack := append([]peakEntry(nil), peaks...)
	for _, leaf := range leaves {
		stack = append(stack, peakEntry{height: 0, digest: leaf})
		for len(stack) >= 2 && stack[len(stack)-1].height == stack[len(stack)-2].height {
			right := stack[len(stack)-1]
			left := stack[len(stack)-2]
			stack = stack[:len(stack)-2]
			stack = append(stack, peakEntry{height: left.height + 1, digest: merge(left.digest, right.digest)})
		}
	}
	return stack
}

// bagPeaks folds a left-to-right, tallest-to-shortest list of peaks into a
// single root, right to left, using mergePeaks' swapped argument order.
func bagPeaks(peaks []Digest) Digest {
	if len(peaks) == 0 {
		return Digest{}
	}
	acc := peaks[len(peaks)-1]
	for i := len(peaks) - 2; i >= 0; i-- {
		acc = mergePeaks(peaks[i], acc)
	}
	return acc
}

func isOneOf(pos uint64, positions []uint64) bool {
	for _, p := range positions {
		if p == pos {
			return true
		}
	}
	return false
}

// isRightChild reports whether pos is the right child of its parent: the
// position immediately after pos belongs to a node one level higher,
// which only happens when pos completed that parent as its right child.
func isRightChild(pos uint64) bool {
	h := posHeightInTree(pos)
	return posHeightInTree(pos+1) == h+1
}

// LeafIndexToPos exposes leafIndexToPos for callers (e.g. the prover and
// the Client) that need to translate a slot-relative leaf index into its
// flat-array MMR position.
func LeafIndexToPos(index uint64) uint64 { return leafIndexToPos(index) }

// LeafIndexToMMRSize exposes leafIndexToMMRSize for callers that need the
// size of the smallest MMR containing a given number of leaves.
func LeafIndexToMMRSize(index uint64) uint64 { return leafIndexToMMRSize(index) }
