package block

import (
	"testing"

	"github.com/eth2030/beaconbridge/rlp"
	"github.com/eth2030/beaconbridge/specs"
	"github.com/eth2030/beaconbridge/ssz"
	"github.com/eth2030/beaconbridge/trie"
	"github.com/eth2030/beaconbridge/types"
)

// bellatrixSlot is any slot inside the Bellatrix fork window (before Capella).
const bellatrixSlot = specs.BellatrixForkEpoch * specs.SlotsPerEpoch

func fieldRoot(b byte) [32]byte {
	var r [32]byte
	r[0] = b
	return r
}

func newTestBlock(t *testing.T) *CachedBeaconBlock {
	t.Helper()

	txs := [][]byte{
		{0x01, 0x02, 0x03},
		{0x04, 0x05},
		{0x06, 0x07, 0x08, 0x09},
	}
	receipts := []*types.Receipt{
		{Type: 0, Status: types.ReceiptStatusSuccessful, CumulativeGasUsed: 21000},
		{Type: 2, Status: types.ReceiptStatusSuccessful, CumulativeGasUsed: 42000},
		{Type: 0, Status: types.ReceiptStatusFailed, CumulativeGasUsed: 63000},
	}

	executionPayloadFieldRoots := make([][32]byte, specs.BellatrixExecutionPayloadFieldsCount)
	for i := range executionPayloadFieldRoots {
		executionPayloadFieldRoots[i] = fieldRoot(byte(i + 1))
	}
	blockBodyFieldRoots := make([][32]byte, specs.BellatrixBlockBodyFieldsCount)
	for i := range blockBodyFieldRoots {
		blockBodyFieldRoots[i] = fieldRoot(byte(i + 100))
	}

	cached, err := NewCachedBeaconBlock(bellatrixSlot, txs, receipts, executionPayloadFieldRoots, blockBodyFieldRoots)
	if err != nil {
		t.Fatalf("NewCachedBeaconBlock: %v", err)
	}
	return cached
}

func TestNewCachedBeaconBlockFillsFieldRoots(t *testing.T) {
	cached := newTestBlock(t)

	txIdx, receiptsIdx := fieldIndices(cached.Slot)
	if cached.ExecutionPayloadFieldRoots[txIdx] == (fieldRoot(byte(txIdx + 1))) {
		t.Error("transactions field root should have been overwritten with the real list root")
	}
	if cached.ExecutionPayloadFieldRoots[receiptsIdx] != cached.ReceiptsRoot() {
		t.Error("receipts_root field slot should hold the receipts trie root")
	}
}

func TestProveReceiptVerifiesAgainstReceiptsRoot(t *testing.T) {
	cached := newTestBlock(t)
	root := cached.ReceiptsRoot()

	for i := range cached.Receipts {
		proof, err := cached.ProveReceipt(i)
		if err != nil {
			t.Fatalf("ProveReceipt(%d): %v", i, err)
		}
		key, err := rlp.EncodeToBytes(uint64(i))
		if err != nil {
			t.Fatalf("encode key: %v", err)
		}
		result, err := trie.VerifyMPTProof(types.Hash(root), key, proof)
		if err != nil {
			t.Fatalf("VerifyMPTProof(%d): %v", i, err)
		}
		if !result.Exists {
			t.Errorf("receipt %d should exist in the proof", i)
		}
		want, err := cached.Receipts[i].EncodeRLP()
		if err != nil {
			t.Fatalf("EncodeRLP(%d): %v", i, err)
		}
		if string(result.Value) != string(want) {
			t.Errorf("receipt %d value mismatch", i)
		}
	}
}

func TestProveTransactionVerifiesAgainstBodyRoot(t *testing.T) {
	cached := newTestBlock(t)
	bodyRoot := cached.BodyRoot()

	for i, tx := range cached.Transactions {
		proof := cached.ProveTransaction(i)
		txRoot := ssz.HashTreeRootByteList(tx, specs.MaxBytesPerTransaction)
		genIndex := specs.TransactionInBlockBodyOffset(cached.Slot) + uint64(i)

		if !ssz.VerifyMerkleBranch(bodyRoot, txRoot, proof, genIndex) {
			t.Errorf("transaction %d proof did not verify against the body root", i)
		}
	}
}

func TestProveReceiptsRootVerifiesAgainstBodyRoot(t *testing.T) {
	cached := newTestBlock(t)
	bodyRoot := cached.BodyRoot()

	proof := cached.ProveReceiptsRoot()
	genIndex := specs.ReceiptsRootInBlockBody(cached.Slot)

	if !ssz.VerifyMerkleBranch(bodyRoot, cached.ReceiptsRoot(), proof, genIndex) {
		t.Error("receipts_root proof did not verify against the body root")
	}
}
