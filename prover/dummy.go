package prover

import "github.com/eth2030/beaconbridge/lightclient"

// NewDummyChain fabricates a self-consistent, minimal chain entirely in
// memory: n sequential non-empty headers starting at startSlot, each
// parented to the previous one (the first has a zero parent root). It is
// the Go counterpart of the original prover's DummyLightClient, supplying
// a network-free harness for exercising bootstrap, update, and
// transaction-proof construction in tests.
func NewDummyChain(startSlot uint64, n int, seed byte) []lightclient.Header {
	headers := make([]lightclient.Header, n)
	parent := [32]byte{}
	for i := 0; i < n; i++ {
		h := lightclient.Header{
			Slot:          startSlot + uint64(i),
			ProposerIndex: uint64(i) + 1,
			ParentRoot:    parent,
			StateRoot:     dummyRoot(seed, 's', i),
			BodyRoot:      dummyRoot(seed, 'b', i),
		}
		headers[i] = h
		parent = h.TreeHash()
	}
	return headers
}

func dummyRoot(seed byte, tag byte, i int) [32]byte {
	var root [32]byte
	root[0] = seed
	root[1] = tag
	root[2] = byte(i)
	root[3] = byte(i >> 8)
	return root
}
