package witness

import (
	"github.com/eth2030/beaconbridge/lightclient"
	"github.com/eth2030/beaconbridge/mmr"
)

// EncodeHeader appends a Header: slot, proposer_index, then the three
// 32-byte roots in field order.
func EncodeHeader(w *Writer, h lightclient.Header) {
	w.PutUint64(h.Slot)
	w.PutUint64(h.ProposerIndex)
	w.PutFixed(h.ParentRoot[:])
	w.PutFixed(h.StateRoot[:])
	w.PutFixed(h.BodyRoot[:])
}

// DecodeHeader reads a Header in the field order EncodeHeader wrote it.
func DecodeHeader(r *Reader) (lightclient.Header, error) {
	var h lightclient.Header
	var err error
	if h.Slot, err = r.Uint64(); err != nil {
		return h, err
	}
	if h.ProposerIndex, err = r.Uint64(); err != nil {
		return h, err
	}
	if err := readHash(r, &h.ParentRoot); err != nil {
		return h, err
	}
	if err := readHash(r, &h.StateRoot); err != nil {
		return h, err
	}
	if err := readHash(r, &h.BodyRoot); err != nil {
		return h, err
	}
	return h, nil
}

func readHash(r *Reader, out *[32]byte) error {
	b, err := r.Fixed(32)
	if err != nil {
		return err
	}
	copy(out[:], b)
	return nil
}

// EncodeSyncAggregate appends the 64-byte participation bitfield followed
// by the 96-byte aggregate signature.
func EncodeSyncAggregate(w *Writer, a lightclient.SyncAggregate) {
	w.PutFixed(a.SyncCommitteeBits[:])
	w.PutFixed(a.SyncCommitteeSignature[:])
}

// DecodeSyncAggregate is EncodeSyncAggregate's inverse.
func DecodeSyncAggregate(r *Reader) (lightclient.SyncAggregate, error) {
	var a lightclient.SyncAggregate
	bits, err := r.Fixed(64)
	if err != nil {
		return a, err
	}
	copy(a.SyncCommitteeBits[:], bits)
	sig, err := r.Fixed(96)
	if err != nil {
		return a, err
	}
	copy(a.SyncCommitteeSignature[:], sig)
	return a, nil
}

// EncodeSyncCommittee appends 512 flat 48-byte pubkeys followed by the
// 48-byte aggregate pubkey.
func EncodeSyncCommittee(w *Writer, c lightclient.SyncCommittee) {
	for _, pk := range c.Pubkeys {
		w.PutFixed(pk[:])
	}
	w.PutFixed(c.AggregatePubkey[:])
}

// DecodeSyncCommittee is EncodeSyncCommittee's inverse.
func DecodeSyncCommittee(r *Reader) (lightclient.SyncCommittee, error) {
	var c lightclient.SyncCommittee
	for i := range c.Pubkeys {
		pk, err := r.Fixed(48)
		if err != nil {
			return c, err
		}
		copy(c.Pubkeys[i][:], pk)
	}
	agg, err := r.Fixed(48)
	if err != nil {
		return c, err
	}
	copy(c.AggregatePubkey[:], agg)
	return c, nil
}

// EncodeMerkleBranch appends a count-prefixed sequence of 32-byte sibling
// hashes, used for every SSZ branch this package carries (MMR digest lists
// go through EncodeMmrDigests).
func EncodeMerkleBranch(w *Writer, branch [][32]byte) {
	w.PutUint32(uint32(len(branch)))
	for _, h := range branch {
		w.PutFixed(h[:])
	}
}

// DecodeMerkleBranch is EncodeMerkleBranch's inverse.
func DecodeMerkleBranch(r *Reader) ([][32]byte, error) {
	n, err := r.Uint32()
	if err != nil {
		return nil, err
	}
	branch := make([][32]byte, n)
	for i := range branch {
		if err := readHash(r, &branch[i]); err != nil {
			return nil, err
		}
	}
	return branch, nil
}

// EncodeMmrDigests appends a count-prefixed sequence of 32-byte MMR
// digests.
func EncodeMmrDigests(w *Writer, digests []mmr.Digest) {
	w.PutUint32(uint32(len(digests)))
	for _, d := range digests {
		w.PutFixed(d[:])
	}
}

// DecodeMmrDigests is EncodeMmrDigests's inverse.
func DecodeMmrDigests(r *Reader) ([]mmr.Digest, error) {
	n, err := r.Uint32()
	if err != nil {
		return nil, err
	}
	digests := make([]mmr.Digest, n)
	for i := range digests {
		b, err := r.Fixed(32)
		if err != nil {
			return nil, err
		}
		copy(digests[i][:], b)
	}
	return digests, nil
}

// EncodeClient appends a Client record.
func EncodeClient(w *Writer, c lightclient.Client) {
	w.PutUint64(c.ID)
	w.PutUint64(c.MinimalSlot)
	w.PutUint64(c.MaximalSlot)
	w.PutFixed(c.TipHeaderRoot[:])
	w.PutFixed(c.HeadersMmrRoot[:])
}

// DecodeClient is EncodeClient's inverse.
func DecodeClient(r *Reader) (lightclient.Client, error) {
	var c lightclient.Client
	var err error
	if c.ID, err = r.Uint64(); err != nil {
		return c, err
	}
	if c.MinimalSlot, err = r.Uint64(); err != nil {
		return c, err
	}
	if c.MaximalSlot, err = r.Uint64(); err != nil {
		return c, err
	}
	if err := readHash(r, &c.TipHeaderRoot); err != nil {
		return c, err
	}
	var root [32]byte
	if err := readHash(r, &root); err != nil {
		return c, err
	}
	c.HeadersMmrRoot = mmr.Digest(root)
	return c, nil
}

// EncodeClientBootstrap appends a ClientBootstrap witness.
func EncodeClientBootstrap(w *Writer, b lightclient.ClientBootstrap) {
	EncodeHeader(w, b.Header)
	EncodeMerkleBranch(w, b.CurrentSyncCommitteeBranch)
}

// DecodeClientBootstrap is EncodeClientBootstrap's inverse.
func DecodeClientBootstrap(r *Reader) (lightclient.ClientBootstrap, error) {
	var b lightclient.ClientBootstrap
	var err error
	if b.Header, err = DecodeHeader(r); err != nil {
		return b, err
	}
	if b.CurrentSyncCommitteeBranch, err = DecodeMerkleBranch(r); err != nil {
		return b, err
	}
	return b, nil
}

// EncodeClientUpdate appends a ClientUpdate witness.
func EncodeClientUpdate(w *Writer, u lightclient.ClientUpdate) {
	EncodeHeader(w, u.AttestedHeader)
	EncodeMerkleBranch(w, u.FinalityBranch)
	EncodeSyncAggregate(w, u.SyncAggregate)
	w.PutUint64(u.SignatureSlot)
	w.PutUint32(uint32(len(u.Headers)))
	for _, h := range u.Headers {
		EncodeHeader(w, h)
	}
	w.PutFixed(u.NewHeadersMmrRoot[:])
	w.PutUint64(u.NewHeadersMmrProof.MMRSize)
	EncodeMmrDigests(w, u.NewHeadersMmrProof.Items)
}

// DecodeClientUpdate is EncodeClientUpdate's inverse.
func DecodeClientUpdate(r *Reader) (lightclient.ClientUpdate, error) {
	var u lightclient.ClientUpdate
	var err error
	if u.AttestedHeader, err = DecodeHeader(r); err != nil {
		return u, err
	}
	if u.FinalityBranch, err = DecodeMerkleBranch(r); err != nil {
		return u, err
	}
	if u.SyncAggregate, err = DecodeSyncAggregate(r); err != nil {
		return u, err
	}
	if u.SignatureSlot, err = r.Uint64(); err != nil {
		return u, err
	}
	n, err := r.Uint32()
	if err != nil {
		return u, err
	}
	u.Headers = make([]lightclient.Header, n)
	for i := range u.Headers {
		if u.Headers[i], err = DecodeHeader(r); err != nil {
			return u, err
		}
	}
	var root [32]byte
	if err := readHash(r, &root); err != nil {
		return u, err
	}
	u.NewHeadersMmrRoot = mmr.Digest(root)
	if u.NewHeadersMmrProof.MMRSize, err = r.Uint64(); err != nil {
		return u, err
	}
	if u.NewHeadersMmrProof.Items, err = DecodeMmrDigests(r); err != nil {
		return u, err
	}
	return u, nil
}

// EncodeSyncCommitteeUpdate appends a SyncCommitteeUpdate witness.
func EncodeSyncCommitteeUpdate(w *Writer, u lightclient.SyncCommitteeUpdate) {
	EncodeHeader(w, u.AttestedHeader)
	w.PutUint64(u.SignatureSlot)
	EncodeSyncAggregate(w, u.SyncAggregate)
	EncodeMerkleBranch(w, u.NextSyncCommitteeBranch)
	EncodeSyncCommittee(w, u.NextCommittee)
}

// DecodeSyncCommitteeUpdate is EncodeSyncCommitteeUpdate's inverse.
func DecodeSyncCommitteeUpdate(r *Reader) (lightclient.SyncCommitteeUpdate, error) {
	var u lightclient.SyncCommitteeUpdate
	var err error
	if u.AttestedHeader, err = DecodeHeader(r); err != nil {
		return u, err
	}
	if u.SignatureSlot, err = r.Uint64(); err != nil {
		return u, err
	}
	if u.SyncAggregate, err = DecodeSyncAggregate(r); err != nil {
		return u, err
	}
	if u.NextSyncCommitteeBranch, err = DecodeMerkleBranch(r); err != nil {
		return u, err
	}
	if u.NextCommittee, err = DecodeSyncCommittee(r); err != nil {
		return u, err
	}
	return u, nil
}

// EncodeTransactionProof appends a TransactionProof witness.
func EncodeTransactionProof(w *Writer, p lightclient.TransactionProof) {
	EncodeHeader(w, p.Header)
	w.PutUint64(p.TransactionIndex)
	w.PutFixed(p.ReceiptsRoot[:])
	EncodeMmrDigests(w, p.HeaderMmrProof)
	EncodeMerkleBranch(w, p.TransactionSszProof)
	w.PutUint32(uint32(len(p.ReceiptMptProof)))
	for _, node := range p.ReceiptMptProof {
		w.PutBytes(node)
	}
	EncodeMerkleBranch(w, p.ReceiptsRootSszProof)
}

// DecodeTransactionProof is EncodeTransactionProof's inverse.
func DecodeTransactionProof(r *Reader) (lightclient.TransactionProof, error) {
	var p lightclient.TransactionProof
	var err error
	if p.Header, err = DecodeHeader(r); err != nil {
		return p, err
	}
	if p.TransactionIndex, err = r.Uint64(); err != nil {
		return p, err
	}
	if err := readHash(r, &p.ReceiptsRoot); err != nil {
		return p, err
	}
	if p.HeaderMmrProof, err = DecodeMmrDigests(r); err != nil {
		return p, err
	}
	if p.TransactionSszProof, err = DecodeMerkleBranch(r); err != nil {
		return p, err
	}
	n, err := r.Uint32()
	if err != nil {
		return p, err
	}
	p.ReceiptMptProof = make([][]byte, n)
	for i := range p.ReceiptMptProof {
		if p.ReceiptMptProof[i], err = r.Bytes(); err != nil {
			return p, err
		}
	}
	if p.ReceiptsRootSszProof, err = DecodeMerkleBranch(r); err != nil {
		return p, err
	}
	return p, nil
}

// EncodeTransactionPayload appends a TransactionPayload witness.
func EncodeTransactionPayload(w *Writer, p lightclient.TransactionPayload) {
	w.PutBytes(p.Transaction)
	w.PutBytes(p.Receipt)
}

// DecodeTransactionPayload is EncodeTransactionPayload's inverse.
func DecodeTransactionPayload(r *Reader) (lightclient.TransactionPayload, error) {
	var p lightclient.TransactionPayload
	var err error
	if p.Transaction, err = r.Bytes(); err != nil {
		return p, err
	}
	if p.Receipt, err = r.Bytes(); err != nil {
		return p, err
	}
	return p, nil
}
