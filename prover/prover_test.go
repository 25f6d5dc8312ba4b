package prover

import (
	"testing"

	"github.com/eth2030/beaconbridge/lightclient"
	"github.com/eth2030/beaconbridge/mmr"
)

func bootstrapHeader() lightclient.Header {
	return lightclient.Header{
		Slot:          100,
		ProposerIndex: 1,
		ParentRoot:    [32]byte{0xaa},
		StateRoot:     [32]byte{0xbb},
		BodyRoot:      [32]byte{0xcc},
	}
}

func TestNewTrackedClientSeedsSingleLeafMmr(t *testing.T) {
	header := bootstrapHeader()
	committee := lightclient.ClientSyncCommittee{Period: lightclient.ComputeSyncCommitteePeriod(header.Slot)}

	tc := NewTrackedClient(header, committee)

	if tc.State.MinimalSlot != header.Slot || tc.State.MaximalSlot != header.Slot {
		t.Errorf("expected both slots to equal the bootstrap header's slot %d, got min=%d max=%d",
			header.Slot, tc.State.MinimalSlot, tc.State.MaximalSlot)
	}
	if tc.State.TipHeaderRoot != header.TreeHash() {
		t.Error("TipHeaderRoot should equal the bootstrap header's tree hash")
	}
	if tc.State.HeadersMmrRoot != mmr.Digest(header.TreeHash()) {
		t.Error("a single-leaf MMR's root should equal the leaf itself")
	}
}

func TestApplyFinalityUpdateProducesVerifiableMmrProof(t *testing.T) {
	header := bootstrapHeader()
	tc := NewTrackedClient(header, lightclient.ClientSyncCommittee{})

	oldRoot := tc.State.HeadersMmrRoot
	newHeaders := NewDummyChain(header.Slot+1, 4, 0x42)

	update, newState := tc.ApplyFinalityUpdate(newHeaders, newHeaders[len(newHeaders)-1], nil, lightclient.SyncAggregate{}, newHeaders[len(newHeaders)-1].Slot+1)

	leaves := make([]mmr.Digest, len(newHeaders))
	for i, h := range newHeaders {
		leaves[i] = mmr.Digest(h.TreeHash())
	}

	if !mmr.VerifyIncremental(mmr.Digest(update.NewHeadersMmrRoot), mmr.Digest(oldRoot), leaves, update.NewHeadersMmrProof) {
		t.Error("ApplyFinalityUpdate's incremental MMR proof should verify against the pre-update root")
	}
	if newState.MaximalSlot != newHeaders[len(newHeaders)-1].Slot {
		t.Errorf("MaximalSlot = %d, want %d", newState.MaximalSlot, newHeaders[len(newHeaders)-1].Slot)
	}
	if newState.TipHeaderRoot != newHeaders[len(newHeaders)-1].TreeHash() {
		t.Error("TipHeaderRoot should advance to the last appended header's tree hash")
	}
	if newState.HeadersMmrRoot != update.NewHeadersMmrRoot {
		t.Error("state's HeadersMmrRoot should match the update witness's NewHeadersMmrRoot")
	}
}

func TestHeaderMmrProofVerifiesInclusionAfterUpdate(t *testing.T) {
	header := bootstrapHeader()
	tc := NewTrackedClient(header, lightclient.ClientSyncCommittee{})

	newHeaders := NewDummyChain(header.Slot+1, 6, 0x7)
	tc.ApplyFinalityUpdate(newHeaders, newHeaders[len(newHeaders)-1], nil, lightclient.SyncAggregate{}, newHeaders[len(newHeaders)-1].Slot+1)

	for _, h := range newHeaders {
		proof := tc.HeaderMmrProof(h.Slot)
		leafIndex := h.Slot - tc.State.MinimalSlot
		pos := mmr.LeafIndexToPos(leafIndex)
		size := tc.store.Size()
		if !mmr.VerifyInclusion(mmr.Digest(tc.State.HeadersMmrRoot), size, pos, mmr.Digest(h.TreeHash()), proof) {
			t.Errorf("header at slot %d: inclusion proof did not verify", h.Slot)
		}
	}
}

func TestBuildSyncCommitteeUpdateAdvancesPeriod(t *testing.T) {
	attested := lightclient.Header{Slot: 8192 * 3, ProposerIndex: 1}
	currentPeriod := lightclient.ComputeSyncCommitteePeriod(attested.Slot)

	update, next := BuildSyncCommitteeUpdate(attested, attested.Slot+1, lightclient.SyncAggregate{}, nil, lightclient.SyncCommittee{})

	if next.Period != currentPeriod+1 {
		t.Errorf("next.Period = %d, want %d", next.Period, currentPeriod+1)
	}
	if update.AttestedHeader.Slot != attested.Slot {
		t.Error("update should carry the attested header through unchanged")
	}
}
