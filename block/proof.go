package block

import (
	"github.com/eth2030/beaconbridge/rlp"
	"github.com/eth2030/beaconbridge/specs"
	"github.com/eth2030/beaconbridge/ssz"
)

// ProveTransaction builds the SSZ branch tying transaction index i to the
// cached block's BeaconBlockBody root: first through the transaction-list
// tree to the transactions-field root, then the list's mix-in-length
// sibling, then up through ExecutionPayload and BlockBody. Its length and
// order match specs.TransactionInBlockBodyOffset's generalized index so
// ssz.VerifyMerkleBranch can check it directly.
func (b *CachedBeaconBlock) ProveTransaction(i int) [][32]byte {
	proof := ssz.MerkleProve(b.transactionRoots, i, specs.MaxTransactionsPerPayload)
	proof = append(proof, ssz.LengthHash(uint64(len(b.transactionRoots))))

	txIdx, _ := fieldIndices(b.Slot)
	proof = append(proof, ssz.ContainerProve(b.ExecutionPayloadFieldRoots, txIdx)...)
	proof = append(proof, ssz.ContainerProve(b.BlockBodyFieldRoots, executionPayloadFieldIndex(b.Slot))...)
	return proof
}

// ProveReceiptsRoot builds the SSZ branch tying the block's receipts_root
// field to the BeaconBlockBody root.
func (b *CachedBeaconBlock) ProveReceiptsRoot() [][32]byte {
	_, receiptsIdx := fieldIndices(b.Slot)
	proof := ssz.ContainerProve(b.ExecutionPayloadFieldRoots, receiptsIdx)
	proof = append(proof, ssz.ContainerProve(b.BlockBodyFieldRoots, executionPayloadFieldIndex(b.Slot))...)
	return proof
}

// ProveReceipt builds the MPT inclusion proof for the receipt stored at
// index i in the block's receipts trie, keyed by rlp(i) per EIP-2718.
func (b *CachedBeaconBlock) ProveReceipt(i int) ([][]byte, error) {
	key, err := rlp.EncodeToBytes(uint64(i))
	if err != nil {
		return nil, err
	}
	return b.receiptsTrie.Prove(key)
}
