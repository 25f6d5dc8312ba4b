package specs

import "github.com/eth2030/beaconbridge/ssz"

// Depths of the per-fork container trees, derived from their field counts
// and (for the transactions list) its maximum length.
var (
	transactionsDepth = ssz.CeilDepth(MaxTransactionsPerPayload)

	bellatrixExecutionPayloadDepth = ssz.CeilDepth(BellatrixExecutionPayloadFieldsCount)
	bellatrixBlockBodyDepth        = ssz.CeilDepth(BellatrixBlockBodyFieldsCount)

	capellaExecutionPayloadDepth = ssz.CeilDepth(CapellaExecutionPayloadFieldsCount)
	capellaBlockBodyDepth        = ssz.CeilDepth(CapellaBlockBodyFieldsCount)
)

// generalizedIndexOffset computes the generalized index of a field at
// fieldIndex within a container merkleized at the given depth, expressed as
// an offset to be added to a child generalized index one level down (used
// to walk a transaction's or receipts_root's index up through nested
// containers one container at a time).
func generalizedIndexOffset(depth uint, fieldsCount, fieldIndex int) uint64 {
	size := uint64(1) << depth
	fieldsPow2 := uint64(nextPowerOfTwo(fieldsCount))
	return size + size/fieldsPow2*uint64(fieldIndex)
}

func nextPowerOfTwo(n int) int {
	if n <= 1 {
		return 1
	}
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}

// TransactionInTransactionsDataOffset is the generalized index of a
// transaction's root within the flat list of transaction roots
// (transactions_data), before any list-length or container wrapping.
func TransactionInTransactionsDataOffset() uint64 {
	return uint64(1) << transactionsDepth
}

// TransactionInTransactionsOffset additionally accounts for the extra tree
// level the length-mix-in of the SSZ List[Transaction, N] type adds.
func TransactionInTransactionsOffset() uint64 {
	return uint64(1) << (transactionsDepth + 1)
}

// TransactionInExecutionPayloadOffset returns the generalized-index offset
// of a transaction within its ExecutionPayload container, for the fork
// whose field layout is active at slot.
func TransactionInExecutionPayloadOffset(slot uint64) uint64 {
	if isAtOrAfterCapella(slot) {
		return generalizedIndexOffset(transactionsDepth+1+capellaExecutionPayloadDepth,
			CapellaExecutionPayloadFieldsCount, CapellaTransactionsFieldIndex)
	}
	return generalizedIndexOffset(transactionsDepth+1+bellatrixExecutionPayloadDepth,
		BellatrixExecutionPayloadFieldsCount, BellatrixTransactionsFieldIndex)
}

// TransactionInBlockBodyOffset returns the generalized-index offset of a
// transaction within its BeaconBlockBody, for the fork active at slot. Add
// a transaction's index within transactions_data to this value (see
// TransactionInTransactionsDataOffset) to get its full generalized index
// against the block body root.
func TransactionInBlockBodyOffset(slot uint64) uint64 {
	if isAtOrAfterCapella(slot) {
		depth := transactionsDepth + 1 + capellaExecutionPayloadDepth + capellaBlockBodyDepth
		size := uint64(1) << depth
		fields1 := uint64(nextPowerOfTwo(CapellaExecutionPayloadFieldsCount))
		fields2 := uint64(nextPowerOfTwo(CapellaBlockBodyFieldsCount))
		return size + size/fields2*uint64(CapellaExecutionPayloadFieldIndex) +
			size/fields2/fields1*uint64(CapellaTransactionsFieldIndex)
	}
	depth := transactionsDepth + 1 + bellatrixExecutionPayloadDepth + bellatrixBlockBodyDepth
	size := uint64(1) << depth
	fields1 := uint64(nextPowerOfTwo(BellatrixExecutionPayloadFieldsCount))
	fields2 := uint64(nextPowerOfTwo(BellatrixBlockBodyFieldsCount))
	return size + size/fields2*uint64(BellatrixExecutionPayloadFieldIndex) +
		size/fields2/fields1*uint64(BellatrixTransactionsFieldIndex)
}

// ReceiptsRootInExecutionPayload returns the generalized index of
// receipts_root within ExecutionPayload, for the fork active at slot.
func ReceiptsRootInExecutionPayload(slot uint64) uint64 {
	if isAtOrAfterCapella(slot) {
		return generalizedIndexOffset(capellaExecutionPayloadDepth,
			CapellaExecutionPayloadFieldsCount, CapellaReceiptsRootFieldIndex)
	}
	return generalizedIndexOffset(bellatrixExecutionPayloadDepth,
		BellatrixExecutionPayloadFieldsCount, BellatrixReceiptsRootFieldIndex)
}

// ReceiptsRootInBlockBody returns the generalized index of receipts_root
// within BeaconBlockBody, for the fork active at slot.
func ReceiptsRootInBlockBody(slot uint64) uint64 {
	if isAtOrAfterCapella(slot) {
		depth := capellaExecutionPayloadDepth + capellaBlockBodyDepth
		size := uint64(1) << depth
		fields1 := uint64(nextPowerOfTwo(CapellaExecutionPayloadFieldsCount))
		fields2 := uint64(nextPowerOfTwo(CapellaBlockBodyFieldsCount))
		return size + size/fields2*uint64(CapellaExecutionPayloadFieldIndex) +
			size/fields2/fields1*uint64(CapellaReceiptsRootFieldIndex)
	}
	depth := bellatrixExecutionPayloadDepth + bellatrixBlockBodyDepth
	size := uint64(1) << depth
	fields1 := uint64(nextPowerOfTwo(BellatrixExecutionPayloadFieldsCount))
	fields2 := uint64(nextPowerOfTwo(BellatrixBlockBodyFieldsCount))
	return size + size/fields2*uint64(BellatrixExecutionPayloadFieldIndex) +
		size/fields2/fields1*uint64(BellatrixReceiptsRootFieldIndex)
}

// DepthAndSubtreeIndex splits a fixed generalized index (one of
// FinalizedRootIndex, CurrentSyncCommitteeIndex, NextSyncCommitteeIndex)
// into the (depth, subtree index) pair VerifyMerkleBranch-style callers
// need. These three indices do not move across the forks this package
// models, so no slot argument is needed.
func DepthAndSubtreeIndex(generalizedIndex uint64) (depth uint, subtreeIndex uint64) {
	depth = ssz.FloorDepth(generalizedIndex)
	subtreeIndex = ssz.GetSubtreeIndex(generalizedIndex)
	return
}
