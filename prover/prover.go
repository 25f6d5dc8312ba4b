// Package prover builds the witness objects lightclient's Verify* functions
// check: the mirror image of the verifier, run by an off-chain process that
// watches a consensus node. Every Build* function here corresponds to one
// verify function in lightclient, taking the inputs a real beacon node API
// would return rather than an already-assembled witness.
package prover

import (
	"github.com/eth2030/beaconbridge/lightclient"
	"github.com/eth2030/beaconbridge/mmr"
)

// TrackedClient pairs a verified Client with the MMR store backing it: the
// store holds one leaf per slot in [State.MinimalSlot, State.MaximalSlot],
// mirroring the teacher's DummyLightClient pattern of pairing a core.Client
// with its own MemStore-backed MMR.
type TrackedClient struct {
	State         lightclient.Client
	SyncCommittee lightclient.ClientSyncCommittee
	store         *mmr.Store
}

// NewTrackedClient seeds a TrackedClient and its MMR store from a verified
// bootstrap header, mirroring DummyLightClient::new: push the bootstrap
// header as the sole leaf, and adopt the committee the bootstrap claimed.
func NewTrackedClient(header lightclient.Header, committee lightclient.ClientSyncCommittee) TrackedClient {
	store := mmr.NewStore()
	store.Push(mmr.Digest(header.TreeHash()))
	return TrackedClient{
		State: lightclient.Client{
			ID:             0,
			MinimalSlot:    header.Slot,
			MaximalSlot:    header.Slot,
			TipHeaderRoot:  header.TreeHash(),
			HeadersMmrRoot: store.Root(),
		},
		SyncCommittee: committee,
		store:         store,
	}
}

// BuildClientBootstrap assembles the ClientBootstrap witness from a
// beacon-node-served header and current-sync-committee branch; the branch
// itself is not computed here because the Beacon API serves it pre-built
// (it is a proof against the *beacon state*, which this engine does not
// itself construct, only verify).
func BuildClientBootstrap(header lightclient.Header, currentSyncCommitteeBranch [][32]byte) lightclient.ClientBootstrap {
	return lightclient.ClientBootstrap{
		Header:                     header,
		CurrentSyncCommitteeBranch: currentSyncCommitteeBranch,
	}
}

// HeaderMmrProof returns the inclusion witness for the header at slot, for
// use in a TransactionProof.
func (c *TrackedClient) HeaderMmrProof(slot uint64) []mmr.Digest {
	leafIndex := slot - c.State.MinimalSlot
	return c.store.InclusionProof(leafIndex)
}

// ApplyFinalityUpdate extends the client with headers (one per slot,
// contiguous, immediately following the current MaximalSlot) and returns
// the ClientUpdate witness plus the resulting Client state -- mirroring
// DummyLightClient::apply_finality_update, but returning the new state
// instead of mutating a shared cell, matching
// lightclient.VerifyClientUpdate's value-in/value-out contract.
func (c *TrackedClient) ApplyFinalityUpdate(headers []lightclient.Header, attestedHeader lightclient.Header, finalityBranch [][32]byte, syncAggregate lightclient.SyncAggregate, signatureSlot uint64) (lightclient.ClientUpdate, lightclient.Client) {
	oldSnapshot := c.store.Snapshot()

	tipHeaderRoot := c.State.TipHeaderRoot
	for _, h := range headers {
		c.store.Push(mmr.Digest(h.TreeHash()))
		if !h.IsEmpty() {
			tipHeaderRoot = h.TreeHash()
		}
	}

	newHeadersMmrRoot := c.store.Root()
	newState := lightclient.Client{
		ID:             c.State.ID,
		MinimalSlot:    c.State.MinimalSlot,
		MaximalSlot:    headers[len(headers)-1].Slot,
		TipHeaderRoot:  tipHeaderRoot,
		HeadersMmrRoot: newHeadersMmrRoot,
	}

	update := lightclient.ClientUpdate{
		AttestedHeader:     attestedHeader,
		FinalityBranch:     finalityBranch,
		SyncAggregate:      syncAggregate,
		SignatureSlot:      signatureSlot,
		Headers:            headers,
		NewHeadersMmrRoot:  newHeadersMmrRoot,
		NewHeadersMmrProof: oldSnapshot,
	}

	c.State = newState
	return update, newState
}

// BuildSyncCommitteeUpdate assembles the witness that rotates the
// committee to the next period, mirroring
// LightClientUpdate::build_sync_committee_update /
// build_next_client_sync_committee.
func BuildSyncCommitteeUpdate(attestedHeader lightclient.Header, signatureSlot uint64, syncAggregate lightclient.SyncAggregate, nextSyncCommitteeBranch [][32]byte, nextCommittee lightclient.SyncCommittee) (lightclient.SyncCommitteeUpdate, lightclient.ClientSyncCommittee) {
	period := lightclient.ComputeSyncCommitteePeriod(attestedHeader.Slot) + 1
	update := lightclient.SyncCommitteeUpdate{
		AttestedHeader:          attestedHeader,
		SignatureSlot:           signatureSlot,
		SyncAggregate:           syncAggregate,
		NextSyncCommitteeBranch: nextSyncCommitteeBranch,
		NextCommittee:           nextCommittee,
	}
	next := lightclient.ClientSyncCommittee{Period: period, Committee: nextCommittee}
	return update, next
}
