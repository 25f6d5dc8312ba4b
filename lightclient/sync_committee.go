package lightclient

import (
	"github.com/eth2030/beaconbridge/crypto"
	"github.com/eth2030/beaconbridge/specs"
	"github.com/eth2030/beaconbridge/ssz"
)

// SyncCommitteeSize is the fixed committee size, re-exported for callers
// that validate a decoded committee's pubkey count before constructing one.
const SyncCommitteeSize = specs.SyncCommitteeSize

// SyncCommittee is the full set of 512 sync-committee member public keys
// plus their aggregate, as it sits in beacon state.
type SyncCommittee struct {
	Pubkeys         [SyncCommitteeSize][48]byte
	AggregatePubkey [48]byte
}

// TreeHash computes the SSZ hash tree root of the committee container.
func (c SyncCommittee) TreeHash() [32]byte {
	pubkeyRoots := make([][32]byte, SyncCommitteeSize)
	for i, pk := range c.Pubkeys {
		pubkeyRoots[i] = ssz.HashTreeRootBasicVector(pk[:])
	}
	pubkeysRoot := ssz.HashTreeRootVector(pubkeyRoots)
	aggregateRoot := ssz.HashTreeRootBasicVector(c.AggregatePubkey[:])
	return ssz.HashTreeRootContainer([][32]byte{pubkeysRoot, aggregateRoot})
}

// SyncAggregate is a sync committee's vote on a single attested header: a
// 512-bit participation bitfield plus the aggregate BLS signature of every
// participant who voted.
type SyncAggregate struct {
	SyncCommitteeBits      [64]byte // Bitvector[512], byte i/8 bit i%8
	SyncCommitteeSignature [96]byte
}

// participationBitvector interprets the raw 64-byte field as an SSZ
// Bitvector[512], giving indexed bit access without hand-rolled shifting.
func (a SyncAggregate) participationBitvector() ssz.Bitvector {
	bv, _ := ssz.BitvectorFromBytes(a.SyncCommitteeBits[:], SyncCommitteeSize)
	return bv
}

// ParticipantCount returns the number of set bits in the participation
// bitfield.
func (a SyncAggregate) ParticipantCount() int {
	return a.participationBitvector().Count()
}

// HasSupermajority reports whether at least two thirds of the committee
// participated: set_bits * 3 >= SyncCommitteeSize * 2, i.e. >= 342 votes.
func (a SyncAggregate) HasSupermajority() bool {
	return a.ParticipantCount()*3 >= SyncCommitteeSize*2
}

// filterParticipantPubkeys returns the subset of pubkeys whose participation
// bit is set, in committee order.
func (a SyncAggregate) filterParticipantPubkeys(pubkeys [SyncCommitteeSize][48]byte) [][]byte {
	bits := a.participationBitvector()
	participants := make([][]byte, 0, SyncCommitteeSize)
	for i := 0; i < SyncCommitteeSize; i++ {
		if !bits.Get(i) {
			continue
		}
		pk := pubkeys[i]
		participants = append(participants, pk[:])
	}
	return participants
}

// FastAggregateVerify checks a's aggregate signature against message,
// using only the committee members a's bitfield marks as participants.
func (a SyncAggregate) FastAggregateVerify(committee SyncCommittee, message [32]byte) bool {
	participants := a.filterParticipantPubkeys(committee.Pubkeys)
	if len(participants) == 0 {
		return false
	}
	return crypto.DefaultBLSBackend().FastAggregateVerify(participants, message[:], a.SyncCommitteeSignature[:])
}
