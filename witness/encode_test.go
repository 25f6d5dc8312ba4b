package witness

import (
	"bytes"
	"testing"

	"github.com/eth2030/beaconbridge/lightclient"
	"github.com/eth2030/beaconbridge/mmr"
)

func testHeader(seed byte) lightclient.Header {
	return lightclient.Header{
		Slot:          uint64(seed) * 100,
		ProposerIndex: uint64(seed),
		ParentRoot:    [32]byte{seed, 1},
		StateRoot:     [32]byte{seed, 2},
		BodyRoot:      [32]byte{seed, 3},
	}
}

func TestHeaderRoundTrip(t *testing.T) {
	w := NewWriter()
	h := testHeader(7)
	EncodeHeader(w, h)

	got, err := DecodeHeader(NewReader(w.Bytes()))
	if err != nil {
		t.Fatalf("DecodeHeader: %v", err)
	}
	if got != h {
		t.Errorf("got %+v, want %+v", got, h)
	}
}

func TestSyncAggregateRoundTrip(t *testing.T) {
	var a lightclient.SyncAggregate
	a.SyncCommitteeBits[3] = 0xaa
	a.SyncCommitteeSignature[10] = 0xbb

	w := NewWriter()
	EncodeSyncAggregate(w, a)
	got, err := DecodeSyncAggregate(NewReader(w.Bytes()))
	if err != nil {
		t.Fatalf("DecodeSyncAggregate: %v", err)
	}
	if got != a {
		t.Errorf("got %+v, want %+v", got, a)
	}
}

func TestSyncCommitteeRoundTrip(t *testing.T) {
	var c lightclient.SyncCommittee
	for i := range c.Pubkeys {
		c.Pubkeys[i][0] = byte(i)
	}
	c.AggregatePubkey[0] = 0xff

	w := NewWriter()
	EncodeSyncCommittee(w, c)
	got, err := DecodeSyncCommittee(NewReader(w.Bytes()))
	if err != nil {
		t.Fatalf("DecodeSyncCommittee: %v", err)
	}
	if got != c {
		t.Error("decoded committee does not match the encoded one")
	}
}

func TestMerkleBranchRoundTrip(t *testing.T) {
	branch := [][32]byte{{1}, {2}, {3}}
	w := NewWriter()
	EncodeMerkleBranch(w, branch)

	got, err := DecodeMerkleBranch(NewReader(w.Bytes()))
	if err != nil {
		t.Fatalf("DecodeMerkleBranch: %v", err)
	}
	if len(got) != len(branch) {
		t.Fatalf("len = %d, want %d", len(got), len(branch))
	}
	for i := range branch {
		if got[i] != branch[i] {
			t.Errorf("branch[%d] = %v, want %v", i, got[i], branch[i])
		}
	}
}

func TestMerkleBranchRoundTripEmpty(t *testing.T) {
	w := NewWriter()
	EncodeMerkleBranch(w, nil)
	got, err := DecodeMerkleBranch(NewReader(w.Bytes()))
	if err != nil {
		t.Fatalf("DecodeMerkleBranch: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("len = %d, want 0", len(got))
	}
}

func TestMmrDigestsRoundTrip(t *testing.T) {
	digests := []mmr.Digest{{1}, {2}, {3}, {4}}
	w := NewWriter()
	EncodeMmrDigests(w, digests)

	got, err := DecodeMmrDigests(NewReader(w.Bytes()))
	if err != nil {
		t.Fatalf("DecodeMmrDigests: %v", err)
	}
	if len(got) != len(digests) {
		t.Fatalf("len = %d, want %d", len(got), len(digests))
	}
	for i := range digests {
		if got[i] != digests[i] {
			t.Errorf("digests[%d] = %v, want %v", i, got[i], digests[i])
		}
	}
}

func TestClientRoundTrip(t *testing.T) {
	c := lightclient.Client{
		ID:             3,
		MinimalSlot:    10,
		MaximalSlot:    20,
		TipHeaderRoot:  [32]byte{0x11},
		HeadersMmrRoot: mmr.Digest{0x22},
	}
	w := NewWriter()
	EncodeClient(w, c)

	got, err := DecodeClient(NewReader(w.Bytes()))
	if err != nil {
		t.Fatalf("DecodeClient: %v", err)
	}
	if got != c {
		t.Errorf("got %+v, want %+v", got, c)
	}
}

func TestClientBootstrapRoundTrip(t *testing.T) {
	b := lightclient.ClientBootstrap{
		Header:                     testHeader(1),
		CurrentSyncCommitteeBranch: [][32]byte{{1}, {2}},
	}
	w := NewWriter()
	EncodeClientBootstrap(w, b)

	got, err := DecodeClientBootstrap(NewReader(w.Bytes()))
	if err != nil {
		t.Fatalf("DecodeClientBootstrap: %v", err)
	}
	if got.Header != b.Header {
		t.Error("header mismatch after round trip")
	}
	if len(got.CurrentSyncCommitteeBranch) != len(b.CurrentSyncCommitteeBranch) {
		t.Error("branch length mismatch after round trip")
	}
}

func TestClientUpdateRoundTrip(t *testing.T) {
	u := lightclient.ClientUpdate{
		AttestedHeader:    testHeader(2),
		FinalityBranch:    [][32]byte{{9}, {8}},
		SyncAggregate:     lightclient.SyncAggregate{},
		SignatureSlot:     500,
		Headers:           []lightclient.Header{testHeader(3), testHeader(4)},
		NewHeadersMmrRoot: mmr.Digest{0x33},
		NewHeadersMmrProof: mmr.Proof{
			MMRSize: 7,
			Items:   []mmr.Digest{{1}, {2}},
		},
	}
	w := NewWriter()
	EncodeClientUpdate(w, u)

	got, err := DecodeClientUpdate(NewReader(w.Bytes()))
	if err != nil {
		t.Fatalf("DecodeClientUpdate: %v", err)
	}
	if got.SignatureSlot != u.SignatureSlot || len(got.Headers) != len(u.Headers) {
		t.Fatal("scalar/header-count mismatch after round trip")
	}
	if got.NewHeadersMmrRoot != u.NewHeadersMmrRoot {
		t.Error("NewHeadersMmrRoot mismatch after round trip")
	}
	if got.NewHeadersMmrProof.MMRSize != u.NewHeadersMmrProof.MMRSize {
		t.Error("MMRSize mismatch after round trip")
	}
	for i := range u.Headers {
		if got.Headers[i] != u.Headers[i] {
			t.Errorf("Headers[%d] mismatch after round trip", i)
		}
	}
}

func TestSyncCommitteeUpdateRoundTrip(t *testing.T) {
	var committee lightclient.SyncCommittee
	committee.Pubkeys[0][0] = 0x55

	u := lightclient.SyncCommitteeUpdate{
		AttestedHeader:          testHeader(5),
		SignatureSlot:           900,
		SyncAggregate:           lightclient.SyncAggregate{},
		NextSyncCommitteeBranch: [][32]byte{{7}},
		NextCommittee:           committee,
	}
	w := NewWriter()
	EncodeSyncCommitteeUpdate(w, u)

	got, err := DecodeSyncCommitteeUpdate(NewReader(w.Bytes()))
	if err != nil {
		t.Fatalf("DecodeSyncCommitteeUpdate: %v", err)
	}
	if got.AttestedHeader != u.AttestedHeader || got.SignatureSlot != u.SignatureSlot {
		t.Error("header/signature-slot mismatch after round trip")
	}
	if got.NextCommittee != u.NextCommittee {
		t.Error("NextCommittee mismatch after round trip")
	}
}

func TestTransactionProofRoundTrip(t *testing.T) {
	p := lightclient.TransactionProof{
		Header:               testHeader(6),
		TransactionIndex:     2,
		ReceiptsRoot:         [32]byte{0x44},
		HeaderMmrProof:       []mmr.Digest{{1}, {2}},
		TransactionSszProof:  [][32]byte{{3}, {4}},
		ReceiptMptProof:      [][]byte{{0x01, 0x02}, {0x03}},
		ReceiptsRootSszProof: [][32]byte{{5}},
	}
	w := NewWriter()
	EncodeTransactionProof(w, p)

	got, err := DecodeTransactionProof(NewReader(w.Bytes()))
	if err != nil {
		t.Fatalf("DecodeTransactionProof: %v", err)
	}
	if got.Header != p.Header || got.TransactionIndex != p.TransactionIndex {
		t.Error("header/index mismatch after round trip")
	}
	if got.ReceiptsRoot != p.ReceiptsRoot {
		t.Error("ReceiptsRoot mismatch after round trip")
	}
	if len(got.ReceiptMptProof) != len(p.ReceiptMptProof) {
		t.Fatalf("ReceiptMptProof length = %d, want %d", len(got.ReceiptMptProof), len(p.ReceiptMptProof))
	}
	for i := range p.ReceiptMptProof {
		if !bytes.Equal(got.ReceiptMptProof[i], p.ReceiptMptProof[i]) {
			t.Errorf("ReceiptMptProof[%d] mismatch", i)
		}
	}
}

func TestTransactionPayloadRoundTrip(t *testing.T) {
	p := lightclient.TransactionPayload{
		Transaction: []byte{0x01, 0x02, 0x03},
		Receipt:     []byte{0xaa, 0xbb},
	}
	w := NewWriter()
	EncodeTransactionPayload(w, p)

	got, err := DecodeTransactionPayload(NewReader(w.Bytes()))
	if err != nil {
		t.Fatalf("DecodeTransactionPayload: %v", err)
	}
	if !bytes.Equal(got.Transaction, p.Transaction) || !bytes.Equal(got.Receipt, p.Receipt) {
		t.Error("payload mismatch after round trip")
	}
}

func TestReaderDoneAfterFullyConsumed(t *testing.T) {
	w := NewWriter()
	w.PutUint64(42)
	r := NewReader(w.Bytes())
	if r.Done() {
		t.Fatal("reader should not be done before consuming the buffer")
	}
	if _, err := r.Uint64(); err != nil {
		t.Fatalf("Uint64: %v", err)
	}
	if !r.Done() {
		t.Error("reader should be done after consuming the whole buffer")
	}
}
