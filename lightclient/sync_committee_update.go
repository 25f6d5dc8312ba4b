package lightclient

import (
	"github.com/eth2030/beaconbridge/specs"
	"github.com/eth2030/beaconbridge/ssz"
)

// SyncCommitteeUpdate is the witness verify_sync_committee_update
// consumes: an attested header signed by the outgoing committee, plus the
// SSZ branch proving the incoming committee sits in that header's state.
type SyncCommitteeUpdate struct {
	AttestedHeader        Header
	SignatureSlot         uint64
	SyncAggregate         SyncAggregate
	NextSyncCommitteeBranch [][32]byte
	NextCommittee         SyncCommittee
}

// VerifySyncCommitteeUpdate checks that nextCommittee is the legitimate
// successor to currentCommittee, rotating in at the next period boundary.
func VerifySyncCommitteeUpdate(lastClientMaxSlot uint64, genesisValidatorsRoot [32]byte, currentCommittee ClientSyncCommittee, update SyncCommitteeUpdate, nextCommittee ClientSyncCommittee) error {
	attested := update.AttestedHeader
	if attested.IsEmpty() {
		return ErrAttestedHeaderIsEmpty
	}
	if !(attested.Slot < update.SignatureSlot) {
		return ErrBadSignatureSlot
	}

	if currentCommittee.Period != ComputeSyncCommitteePeriod(lastClientMaxSlot) {
		return ErrBadCurrentPeriod
	}
	if currentCommittee.Period != ComputeSyncCommitteePeriod(update.SignatureSlot) {
		return ErrSignatureInNextPeriod
	}

	if !update.SyncAggregate.HasSupermajority() {
		return ErrNotSupermajorityParticipation
	}
	signingRoot := specs.ComputeSigningRootAtSignatureSlot(attested.TreeHash(), update.SignatureSlot, specs.DomainSyncCommittee, genesisValidatorsRoot)
	if !update.SyncAggregate.FastAggregateVerify(currentCommittee.Committee, signingRoot) {
		return ErrFailedToVerifyTheAttestedHeader
	}

	if nextCommittee.Period != currentCommittee.Period+1 {
		return ErrNoncontinuousPeriods
	}
	if len(update.NextCommittee.Pubkeys) != SyncCommitteeSize {
		return ErrUnexpectedNextSyncCommitteeSize
	}
	if nextCommittee.Committee != update.NextCommittee {
		return ErrInvalidNextSyncCommitteeBranch
	}

	depth, index := specs.DepthAndSubtreeIndex(specs.NextSyncCommitteeIndex)
	nextCommitteeRoot := update.NextCommittee.TreeHash()
	if !ssz.VerifyMerkleBranch(attested.StateRoot, nextCommitteeRoot, update.NextSyncCommitteeBranch, leftPad(index, depth)) {
		return ErrInvalidNextSyncCommitteeBranch
	}

	return nil
}
