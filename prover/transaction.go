package prover

import (
	"github.com/eth2030/beaconbridge/block"
	"github.com/eth2030/beaconbridge/lightclient"
)

// BuildTransactionProof assembles a TransactionProof/TransactionPayload
// pair for the transaction at index i in cached, binding it to the
// client's header-MMR root via the header's own inclusion witness.
// Mirrors the composition CachedBeaconBlock's proof generators support in
// the original prover, driven instead by the single TrackedClient that
// owns the MMR store.
func (c *TrackedClient) BuildTransactionProof(header lightclient.Header, cached *block.CachedBeaconBlock, i int) (lightclient.TransactionProof, lightclient.TransactionPayload, error) {
	receiptProof, err := cached.ProveReceipt(i)
	if err != nil {
		return lightclient.TransactionProof{}, lightclient.TransactionPayload{}, err
	}

	proof := lightclient.TransactionProof{
		Header:               header,
		TransactionIndex:     uint64(i),
		ReceiptsRoot:         cached.ReceiptsRoot(),
		HeaderMmrProof:       c.HeaderMmrProof(header.Slot),
		TransactionSszProof:  cached.ProveTransaction(i),
		ReceiptMptProof:      receiptProof,
		ReceiptsRootSszProof: cached.ProveReceiptsRoot(),
	}
	receiptRLP, err := cached.Receipts[i].EncodeRLP()
	if err != nil {
		return lightclient.TransactionProof{}, lightclient.TransactionPayload{}, err
	}
	payload := lightclient.TransactionPayload{
		Transaction: cached.Transactions[i],
		Receipt:     receiptRLP,
	}
	return proof, payload, nil
}
