// Package block builds the prover-side CachedBeaconBlock: a beacon block
// with every field it will ever need to prove pre-hashed, so an SSZ branch
// for any transaction or the receipts root can be produced in O(log N)
// additional hashing rather than re-walking the whole block.
package block

import (
	"github.com/eth2030/beaconbridge/rlp"
	"github.com/eth2030/beaconbridge/specs"
	"github.com/eth2030/beaconbridge/ssz"
	"github.com/eth2030/beaconbridge/trie"
	"github.com/eth2030/beaconbridge/types"
)

// CachedBeaconBlock holds one block's execution payload and beacon block
// body as flat field-root arrays (fork-dependent length: Bellatrix has 14
// ExecutionPayload fields and 10 BlockBody fields, Capella 15 and 11), plus
// the raw transactions and receipts needed to answer transaction and
// receipt inclusion queries.
type CachedBeaconBlock struct {
	Slot uint64

	Transactions [][]byte
	Receipts     []*types.Receipt

	// ExecutionPayloadFieldRoots holds the hash tree root of every
	// ExecutionPayload field in spec order; the caller fills every field
	// it does not care about with its real root and leaves the
	// transactions/receipts_root slots for NewCachedBeaconBlock to compute.
	ExecutionPayloadFieldRoots [][32]byte
	// BlockBodyFieldRoots holds the hash tree root of every
	// BeaconBlockBody field in spec order, similarly.
	BlockBodyFieldRoots [][32]byte

	transactionRoots [][32]byte
	receiptsRoot     [32]byte
	receiptsTrie     *trie.Trie
}

// NewCachedBeaconBlock computes the transactions-list root and the
// receipts trie root from txs and receipts, writes them into the supplied
// ExecutionPayload/BlockBody field-root arrays at the fork's known field
// indices, and returns the assembled CachedBeaconBlock.
func NewCachedBeaconBlock(slot uint64, txs [][]byte, receipts []*types.Receipt, executionPayloadFieldRoots, blockBodyFieldRoots [][32]byte) (*CachedBeaconBlock, error) {
	txRoots := make([][32]byte, len(txs))
	for i, tx := range txs {
		txRoots[i] = ssz.HashTreeRootByteList(tx, specs.MaxBytesPerTransaction)
	}
	txListRoot := ssz.HashTreeRootList(txRoots, specs.MaxTransactionsPerPayload)

	receiptsTrie := trie.New()
	for i, r := range receipts {
		key, err := rlp.EncodeToBytes(uint64(i))
		if err != nil {
			return nil, err
		}
		enc, err := r.EncodeRLP()
		if err != nil {
			return nil, err
		}
		if err := receiptsTrie.Put(key, enc); err != nil {
			return nil, err
		}
	}
	receiptsRoot := receiptsTrie.Hash()

	txIdx, receiptsIdx := fieldIndices(slot)
	executionPayloadFieldRoots[txIdx] = txListRoot
	executionPayloadFieldRoots[receiptsIdx] = [32]byte(receiptsRoot)

	return &CachedBeaconBlock{
		Slot:                       slot,
		Transactions:               txs,
		Receipts:                   receipts,
		ExecutionPayloadFieldRoots: executionPayloadFieldRoots,
		BlockBodyFieldRoots:        blockBodyFieldRoots,
		transactionRoots:           txRoots,
		receiptsRoot:               [32]byte(receiptsRoot),
		receiptsTrie:               receiptsTrie,
	}, nil
}

// ReceiptsRoot returns the root of the block's receipts trie.
func (b *CachedBeaconBlock) ReceiptsRoot() [32]byte { return b.receiptsRoot }

// BodyRoot returns the hash tree root of the cached BeaconBlockBody.
func (b *CachedBeaconBlock) BodyRoot() [32]byte {
	return ssz.HashTreeRootContainer(b.BlockBodyFieldRoots)
}

func fieldIndices(slot uint64) (transactionsIndex, receiptsRootIndex int) {
	if isCapella(slot) {
		return specs.CapellaTransactionsFieldIndex, specs.CapellaReceiptsRootFieldIndex
	}
	return specs.BellatrixTransactionsFieldIndex, specs.BellatrixReceiptsRootFieldIndex
}

func executionPayloadFieldIndex(slot uint64) int {
	if isCapella(slot) {
		return specs.CapellaExecutionPayloadFieldIndex
	}
	return specs.BellatrixExecutionPayloadFieldIndex
}

func isCapella(slot uint64) bool {
	return specs.ComputeEpochAtSlot(slot) >= specs.CapellaForkEpoch
}
