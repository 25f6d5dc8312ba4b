package specs

import "testing"

func TestComputeEpochAtSlot(t *testing.T) {
	cases := []struct{ slot, want uint64 }{
		{0, 0},
		{31, 0},
		{32, 1},
		{AltairForkEpoch * SlotsPerEpoch, AltairForkEpoch},
	}
	for _, c := range cases {
		if got := ComputeEpochAtSlot(c.slot); got != c.want {
			t.Errorf("ComputeEpochAtSlot(%d) = %d, want %d", c.slot, got, c.want)
		}
	}
}

func TestComputeStartSlotAtEpochRoundTripsWithComputeEpochAtSlot(t *testing.T) {
	for _, epoch := range []uint64{0, 1, 100, AltairForkEpoch, BellatrixForkEpoch, CapellaForkEpoch} {
		slot := ComputeStartSlotAtEpoch(epoch)
		if ComputeEpochAtSlot(slot) != epoch {
			t.Errorf("epoch %d: start slot %d maps back to epoch %d", epoch, slot, ComputeEpochAtSlot(slot))
		}
	}
}

func TestComputeSyncCommitteePeriodAtSlotBoundaries(t *testing.T) {
	periodZeroLastSlot := SlotsPerSyncCommitteePeriod - 1
	periodOneFirstSlot := SlotsPerSyncCommitteePeriod

	if p := ComputeSyncCommitteePeriodAtSlot(periodZeroLastSlot); p != 0 {
		t.Errorf("last slot of period 0 (%d) mapped to period %d, want 0", periodZeroLastSlot, p)
	}
	if p := ComputeSyncCommitteePeriodAtSlot(periodOneFirstSlot); p != 1 {
		t.Errorf("first slot of period 1 (%d) mapped to period %d, want 1", periodOneFirstSlot, p)
	}
}

func TestForkVersionAtSlotBoundaries(t *testing.T) {
	bellatrixStart := ComputeStartSlotAtEpoch(BellatrixForkEpoch)
	capellaStart := ComputeStartSlotAtEpoch(CapellaForkEpoch)

	cases := []struct {
		name string
		slot uint64
		want [4]byte
	}{
		{"last altair slot", bellatrixStart - 1, AltairForkVersion},
		{"first bellatrix slot", bellatrixStart, BellatrixForkVersion},
		{"last bellatrix slot", capellaStart - 1, BellatrixForkVersion},
		{"first capella slot", capellaStart, CapellaForkVersion},
	}
	for _, c := range cases {
		if got := ForkVersionAtSlot(c.slot); got != c.want {
			t.Errorf("%s: ForkVersionAtSlot(%d) = %v, want %v", c.name, c.slot, got, c.want)
		}
	}
}

func TestDepthAndSubtreeIndexRoundTripsToGeneralizedIndex(t *testing.T) {
	for _, gi := range []uint64{FinalizedRootIndex, CurrentSyncCommitteeIndex, NextSyncCommitteeIndex} {
		depth, index := DepthAndSubtreeIndex(gi)
		if reconstructed := (uint64(1) << depth) | index; reconstructed != gi {
			t.Errorf("gi=%d: (depth=%d, index=%d) reconstructs to %d", gi, depth, index, reconstructed)
		}
	}
}

func TestTransactionInBlockBodyOffsetUnchangedAcrossForkBoundary(t *testing.T) {
	bellatrixStart := ComputeStartSlotAtEpoch(BellatrixForkEpoch)
	capellaStart := ComputeStartSlotAtEpoch(CapellaForkEpoch)

	before := TransactionInBlockBodyOffset(capellaStart - 1)
	after := TransactionInBlockBodyOffset(capellaStart)
	if before != after {
		t.Error("TransactionInBlockBodyOffset should not change across the Capella boundary: both forks' field counts pad to 16 leaves")
	}
	if got := TransactionInBlockBodyOffset(bellatrixStart); got != before {
		t.Error("TransactionInBlockBodyOffset should be constant across the whole Bellatrix/pre-Capella window")
	}
}

func TestReceiptsRootInBlockBodyUnchangedAcrossForkBoundary(t *testing.T) {
	capellaStart := ComputeStartSlotAtEpoch(CapellaForkEpoch)

	before := ReceiptsRootInBlockBody(capellaStart - 1)
	after := ReceiptsRootInBlockBody(capellaStart)
	if before != after {
		t.Error("ReceiptsRootInBlockBody should not change across the Capella boundary: both forks' field counts pad to 16 leaves")
	}
}

func TestIsAtOrAfterCapella(t *testing.T) {
	capellaStart := ComputeStartSlotAtEpoch(CapellaForkEpoch)
	if isAtOrAfterCapella(capellaStart - 1) {
		t.Error("slot just before Capella should not be at-or-after Capella")
	}
	if !isAtOrAfterCapella(capellaStart) {
		t.Error("Capella's first slot should be at-or-after Capella")
	}
}
