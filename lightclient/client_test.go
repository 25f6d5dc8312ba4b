package lightclient

import (
	"testing"

	"github.com/eth2030/beaconbridge/specs"
	"github.com/eth2030/beaconbridge/ssz"
)

// buildCommitteeBranch places committeeRoot as the leaf at
// specs.CurrentSyncCommitteeIndex's subtree position within a tree sized to
// match that generalized index's depth, and returns the resulting state
// root plus the sibling-path proof leading to it -- enough to make
// ssz.VerifyMerkleBranch (and so VerifyClientBootstrap) accept it.
func buildCommitteeBranch(committeeRoot [32]byte) (stateRoot [32]byte, branch [][32]byte) {
	depth, index := specs.DepthAndSubtreeIndex(specs.CurrentSyncCommitteeIndex)
	limit := 1 << depth

	leaves := make([][32]byte, limit)
	leaves[index] = committeeRoot
	for i := range leaves {
		if uint64(i) != index {
			leaves[i][0] = byte(i + 1)
		}
	}

	root := ssz.Merkleize(leaves, limit)
	proof := ssz.MerkleProve(leaves, int(index), limit)
	return root, proof
}

func testCommittee() SyncCommittee {
	var c SyncCommittee
	for i := range c.Pubkeys {
		c.Pubkeys[i][0] = byte(i)
	}
	return c
}

func TestVerifyClientBootstrapAccepts(t *testing.T) {
	committee := testCommittee()
	committeeRoot := committee.TreeHash()
	stateRoot, branch := buildCommitteeBranch(committeeRoot)

	header := Header{
		Slot:          specs.BellatrixForkEpoch * specs.SlotsPerEpoch,
		ProposerIndex: 3,
		ParentRoot:    [32]byte{0x01},
		StateRoot:     stateRoot,
		BodyRoot:      [32]byte{0x02},
	}
	bootstrap := ClientBootstrap{Header: header, CurrentSyncCommitteeBranch: branch}
	claimed := ClientSyncCommittee{
		Period:    specs.ComputeSyncCommitteePeriodAtSlot(header.Slot),
		Committee: committee,
	}

	client, err := VerifyClientBootstrap(bootstrap, claimed)
	if err != nil {
		t.Fatalf("VerifyClientBootstrap: %v", err)
	}
	if client.MinimalSlot != header.Slot || client.MaximalSlot != header.Slot {
		t.Errorf("client slot range = [%d,%d], want [%d,%d]", client.MinimalSlot, client.MaximalSlot, header.Slot, header.Slot)
	}
	if client.TipHeaderRoot != header.TreeHash() {
		t.Error("TipHeaderRoot should equal the bootstrap header's tree hash")
	}
}

func TestVerifyClientBootstrapRejectsEmptyHeader(t *testing.T) {
	bootstrap := ClientBootstrap{Header: Header{Slot: 10}}
	_, err := VerifyClientBootstrap(bootstrap, ClientSyncCommittee{Committee: testCommittee()})
	if err != ErrHeaderIsEmpty {
		t.Errorf("err = %v, want ErrHeaderIsEmpty", err)
	}
}

func TestVerifyClientBootstrapRejectsWrongPeriod(t *testing.T) {
	committee := testCommittee()
	committeeRoot := committee.TreeHash()
	stateRoot, branch := buildCommitteeBranch(committeeRoot)

	header := Header{
		Slot:          specs.BellatrixForkEpoch * specs.SlotsPerEpoch,
		ProposerIndex: 3,
		ParentRoot:    [32]byte{0x01},
		StateRoot:     stateRoot,
		BodyRoot:      [32]byte{0x02},
	}
	bootstrap := ClientBootstrap{Header: header, CurrentSyncCommitteeBranch: branch}
	claimed := ClientSyncCommittee{
		Period:    specs.ComputeSyncCommitteePeriodAtSlot(header.Slot) + 1,
		Committee: committee,
	}

	_, err := VerifyClientBootstrap(bootstrap, claimed)
	if err != ErrIncorrectPeriod {
		t.Errorf("err = %v, want ErrIncorrectPeriod", err)
	}
}

func TestVerifyClientBootstrapRejectsBadBranch(t *testing.T) {
	committee := testCommittee()
	committeeRoot := committee.TreeHash()
	stateRoot, branch := buildCommitteeBranch(committeeRoot)
	branch[0][0] ^= 0xff // corrupt the proof

	header := Header{
		Slot:          specs.BellatrixForkEpoch * specs.SlotsPerEpoch,
		ProposerIndex: 3,
		ParentRoot:    [32]byte{0x01},
		StateRoot:     stateRoot,
		BodyRoot:      [32]byte{0x02},
	}
	bootstrap := ClientBootstrap{Header: header, CurrentSyncCommitteeBranch: branch}
	claimed := ClientSyncCommittee{
		Period:    specs.ComputeSyncCommitteePeriodAtSlot(header.Slot),
		Committee: committee,
	}

	_, err := VerifyClientBootstrap(bootstrap, claimed)
	if err != ErrInvalidSyncCommitteeBranch {
		t.Errorf("err = %v, want ErrInvalidSyncCommitteeBranch", err)
	}
}

func TestVerifyClientUpdateRejectsEmptyHeaders(t *testing.T) {
	oldClient := Client{MaximalSlot: 100}
	update := ClientUpdate{AttestedHeader: Header{Slot: 200, ProposerIndex: 1}, SignatureSlot: 201}
	err := VerifyClientUpdate(oldClient, [32]byte{}, ClientSyncCommittee{}, update, Client{})
	if err != ErrEmptyHeaders {
		t.Errorf("err = %v, want ErrEmptyHeaders", err)
	}
}

func TestVerifyClientUpdateRejectsBadFirstHeaderSlot(t *testing.T) {
	oldClient := Client{MaximalSlot: 100}
	badHeader := Header{Slot: 105, ProposerIndex: 1} // should be 101
	update := ClientUpdate{
		AttestedHeader: Header{Slot: 200, ProposerIndex: 1},
		SignatureSlot:  201,
		Headers:        []Header{badHeader},
	}
	err := VerifyClientUpdate(oldClient, [32]byte{}, ClientSyncCommittee{}, update, Client{})
	if err != ErrFirstHeaderSlot {
		t.Errorf("err = %v, want ErrFirstHeaderSlot", err)
	}
}
