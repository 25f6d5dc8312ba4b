package prover

import (
	"testing"

	"github.com/eth2030/beaconbridge/block"
	"github.com/eth2030/beaconbridge/lightclient"
	"github.com/eth2030/beaconbridge/specs"
	"github.com/eth2030/beaconbridge/types"
)

func newTestCachedBlock(t *testing.T, slot uint64) *block.CachedBeaconBlock {
	t.Helper()

	txs := [][]byte{{0x01, 0x02}, {0x03, 0x04, 0x05}}
	receipts := []*types.Receipt{
		{Type: 0, Status: types.ReceiptStatusSuccessful, CumulativeGasUsed: 21000},
		{Type: 2, Status: types.ReceiptStatusSuccessful, CumulativeGasUsed: 40000},
	}

	executionPayloadFieldRoots := make([][32]byte, specs.BellatrixExecutionPayloadFieldsCount)
	for i := range executionPayloadFieldRoots {
		executionPayloadFieldRoots[i][0] = byte(i + 1)
	}
	blockBodyFieldRoots := make([][32]byte, specs.BellatrixBlockBodyFieldsCount)
	for i := range blockBodyFieldRoots {
		blockBodyFieldRoots[i][0] = byte(i + 50)
	}

	cached, err := block.NewCachedBeaconBlock(slot, txs, receipts, executionPayloadFieldRoots, blockBodyFieldRoots)
	if err != nil {
		t.Fatalf("NewCachedBeaconBlock: %v", err)
	}
	return cached
}

// TestBuildTransactionProofVerifiesEndToEnd exercises the full prover-to-
// verifier round trip: bootstrap a client from a header whose BodyRoot is
// that header's cached block's body root, apply a finality update so the
// block's own slot is covered by the client's header MMR, build a
// transaction proof, and check it against both lightclient.VerifyTransactionProof
// (the header-MMR membership claim) and VerifyTransactionPayload (the SSZ
// and MPT claims tying the transaction/receipt to that header).
func TestBuildTransactionProofVerifiesEndToEnd(t *testing.T) {
	bootstrapSlot := specs.BellatrixForkEpoch * specs.SlotsPerEpoch
	blockSlot := bootstrapSlot + 1

	cached := newTestCachedBlock(t, blockSlot)

	header := lightclient.Header{
		Slot:          blockSlot,
		ProposerIndex: 7,
		ParentRoot:    [32]byte{0x11},
		StateRoot:     [32]byte{0x22},
		BodyRoot:      cached.BodyRoot(),
	}

	bootstrap := lightclient.Header{
		Slot:          bootstrapSlot,
		ProposerIndex: 1,
		ParentRoot:    [32]byte{0x01},
		StateRoot:     [32]byte{0x02},
		BodyRoot:      [32]byte{0x03},
	}
	tc := NewTrackedClient(bootstrap, lightclient.ClientSyncCommittee{})

	_, newState := tc.ApplyFinalityUpdate([]lightclient.Header{header}, header, nil, lightclient.SyncAggregate{}, header.Slot+1)

	for i := range cached.Transactions {
		proof, payload, err := tc.BuildTransactionProof(header, cached, i)
		if err != nil {
			t.Fatalf("BuildTransactionProof(%d): %v", i, err)
		}

		if err := lightclient.VerifyTransactionProof(newState, proof); err != nil {
			t.Errorf("transaction %d: VerifyTransactionProof: %v", i, err)
		}
		if err := lightclient.VerifyTransactionPayload(proof, payload); err != nil {
			t.Errorf("transaction %d: VerifyTransactionPayload: %v", i, err)
		}
	}
}
