package types

import "math/big"

// Receipt status values.
const (
	ReceiptStatusFailed     = uint64(0)
	ReceiptStatusSuccessful = uint64(1)
)

// Receipt represents the results of a transaction.
type Receipt struct {
	// Consensus fields
	Type              uint8
	PostState         []byte
	Status            uint64
	CumulativeGasUsed uint64
	Bloom             Bloom
	Logs              []*Log

	// Derived fields (filled in by node)
	TxHash            Hash
	ContractAddress   Address
	GasUsed           uint64
	EffectiveGasPrice *big.Int

	// EIP-4844 blob transaction fields
	BlobGasUsed  uint64
	BlobGasPrice *big.Int

	// EIP-7706 calldata gas fields
	CalldataGasUsed  uint64
	CalldataGasPrice *big.Int

	// Inclusion information
	BlockHash        Hash
	BlockNumber      *big.Int
	TransactionIndex uint
}

// Succeeded returns true if the receipt indicates a successful transaction
// (post-Byzantium status field equals 1).
func (r *Receipt) Succeeded() bool {
	return r.Status == ReceiptStatusSuccessful
}
