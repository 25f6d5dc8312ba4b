package lightclient

import (
	"github.com/eth2030/beaconbridge/mmr"
	"github.com/eth2030/beaconbridge/specs"
	"github.com/eth2030/beaconbridge/ssz"
)

// Client is the verifier's entire knowledge of the Ethereum chain: the
// contiguous slot range its header MMR covers, the MMR's root, and the
// root of the most recent non-empty header in that range.
type Client struct {
	ID             uint64
	MinimalSlot    uint64
	MaximalSlot    uint64
	TipHeaderRoot  [32]byte
	HeadersMmrRoot mmr.Digest
}

// ClientInfo is a singleton peer of Client holding state shared across
// every client a host ledger might track: the next id to allocate, the
// chain's genesis validators root (needed for BLS domain computation), and
// an advisory minimum batch size for updates.
type ClientInfo struct {
	NextID                uint64
	GenesisValidatorsRoot [32]byte
	MinimalHeadersCount   uint64
}

// ClientSyncCommittee binds a sync committee to the period it serves.
type ClientSyncCommittee struct {
	Period    uint64
	Committee SyncCommittee
}

// ClientBootstrap is the witness verify_client_bootstrap consumes: a
// trusted header plus the SSZ branch proving its current sync committee.
type ClientBootstrap struct {
	Header                     Header
	CurrentSyncCommitteeBranch [][32]byte
}

// VerifyClientBootstrap initializes a Client from a trusted checkpoint
// header and the committee claimed to be authoritative for its period.
func VerifyClientBootstrap(bootstrap ClientBootstrap, claimed ClientSyncCommittee) (Client, error) {
	header := bootstrap.Header
	if header.IsEmpty() {
		return Client{}, ErrHeaderIsEmpty
	}
	if claimed.Period != specs.ComputeSyncCommitteePeriodAtSlot(header.Slot) {
		return Client{}, ErrIncorrectPeriod
	}
	if len(claimed.Committee.Pubkeys) != SyncCommitteeSize {
		return Client{}, ErrUnexpectedSyncCommitteeSize
	}

	depth, index := specs.DepthAndSubtreeIndex(specs.CurrentSyncCommitteeIndex)
	committeeRoot := claimed.Committee.TreeHash()
	if !ssz.VerifyMerkleBranch(header.StateRoot, committeeRoot, bootstrap.CurrentSyncCommitteeBranch, leftPad(index, depth)) {
		return Client{}, ErrInvalidSyncCommitteeBranch
	}

	headerRoot := header.TreeHash()
	mmrRoot := mmr.Digest(headerRoot)

	return Client{
		ID:             0,
		MinimalSlot:    header.Slot,
		MaximalSlot:    header.Slot,
		TipHeaderRoot:  headerRoot,
		HeadersMmrRoot: mmrRoot,
	}, nil
}

// leftPad turns a subtree index at a known depth back into a generalized
// index by setting the implicit leading bit: VerifyMerkleBranch always
// wants a full generalized index, not a bare (depth, subtreeIndex) pair.
func leftPad(subtreeIndex uint64, depth uint) uint64 {
	return (uint64(1) << depth) | subtreeIndex
}

// ClientUpdate is the witness verify_client_update consumes: an attested
// header plus its finality branch and sync-committee signature, the run of
// headers being appended to the client's known range, and the incremental
// MMR proof that appending them reaches the claimed new MMR root.
type ClientUpdate struct {
	AttestedHeader     Header
	FinalityBranch     [][32]byte
	SyncAggregate      SyncAggregate
	SignatureSlot      uint64
	Headers            []Header
	NewHeadersMmrRoot  mmr.Digest
	NewHeadersMmrProof mmr.Proof
}

// VerifyClientUpdate checks that newClient is a valid extension of
// oldClient under the given witness, signed by currentCommittee.
func VerifyClientUpdate(oldClient Client, genesisValidatorsRoot [32]byte, currentCommittee ClientSyncCommittee, update ClientUpdate, newClient Client) error {
	attested := update.AttestedHeader
	if attested.IsEmpty() {
		return ErrAttestedHeaderIsEmpty
	}
	if !(attested.Slot < update.SignatureSlot) {
		return ErrBadSignatureSlot
	}
	if len(update.Headers) == 0 {
		return ErrEmptyHeaders
	}
	if update.Headers[0].Slot != oldClient.MaximalSlot+1 {
		return ErrFirstHeaderSlot
	}
	if !update.Headers[0].IsEmpty() && update.Headers[0].ParentRoot != oldClient.TipHeaderRoot {
		return ErrFirstHeaderParentRoot
	}

	prevTipRoot := oldClient.TipHeaderRoot
	lastNonEmptyRoot := oldClient.TipHeaderRoot
	leaves := make([]mmr.Digest, len(update.Headers))
	for i, h := range update.Headers {
		if i > 0 {
			prev := update.Headers[i-1]
			if h.Slot != prev.Slot+1 {
				return ErrUncontinuousSlot
			}
			if !prev.IsEmpty() && !h.IsEmpty() && h.ParentRoot != prevTipRoot {
				return ErrUnmatchedParentRoot
			}
		}
		root := h.TreeHash()
		leaves[i] = mmr.Digest(root)
		if !h.IsEmpty() {
			prevTipRoot = root
			lastNonEmptyRoot = root
		}
	}

	if !mmr.VerifyIncremental(mmr.Digest(update.NewHeadersMmrRoot), mmr.Digest(oldClient.HeadersMmrRoot), leaves, update.NewHeadersMmrProof) {
		return ErrHeadersMmrProof
	}
	if newClient.HeadersMmrRoot != update.NewHeadersMmrRoot {
		return ErrHeadersMmrProof
	}

	if ComputeSyncCommitteePeriod(update.SignatureSlot) != currentCommittee.Period {
		return ErrMismatchedSyncCommittee
	}
	if !update.SyncAggregate.HasSupermajority() {
		return ErrNotSupermajorityParticipation
	}

	signingRoot := specs.ComputeSigningRootAtSignatureSlot(attested.TreeHash(), update.SignatureSlot, specs.DomainSyncCommittee, genesisValidatorsRoot)
	if !update.SyncAggregate.FastAggregateVerify(currentCommittee.Committee, signingRoot) {
		return ErrFailedToVerifyTheAttestedHeader
	}

	finalizedHeader := update.Headers[len(update.Headers)-1]
	for i := len(update.Headers) - 1; i >= 0; i-- {
		if !update.Headers[i].IsEmpty() {
			finalizedHeader = update.Headers[i]
			break
		}
	}
	if finalizedHeader.IsEmpty() {
		return ErrFinalizedHeaderIsEmpty
	}
	if !(finalizedHeader.Slot < attested.Slot) {
		return ErrFinalizedShouldBeAfterAttested
	}
	depth, index := specs.DepthAndSubtreeIndex(specs.FinalizedRootIndex)
	if !ssz.VerifyMerkleBranch(attested.StateRoot, finalizedHeader.TreeHash(), update.FinalityBranch, leftPad(index, depth)) {
		return ErrInvalidFinalityBranch
	}

	if newClient.ID != oldClient.ID {
		return ErrClientIdChanged
	}
	if newClient.MinimalSlot != oldClient.MinimalSlot {
		return ErrClientMinimalSlotChanged
	}
	if newClient.MaximalSlot != update.Headers[len(update.Headers)-1].Slot {
		return ErrClientMaximalSlot
	}
	if newClient.TipHeaderRoot != lastNonEmptyRoot {
		return ErrClientTipHeaderRoot
	}

	return nil
}

// ComputeSyncCommitteePeriod exposes specs.ComputeSyncCommitteePeriodAtSlot
// under the name the state machine's checks read most naturally.
func ComputeSyncCommitteePeriod(slot uint64) uint64 {
	return specs.ComputeSyncCommitteePeriodAtSlot(slot)
}
