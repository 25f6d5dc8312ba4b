package lightclient

import "errors"

// Bootstrap verification errors.
var (
	ErrHeaderIsEmpty             = errors.New("lightclient: bootstrap header is empty")
	ErrIncorrectPeriod           = errors.New("lightclient: claimed committee period does not match header slot")
	ErrUnexpectedSyncCommitteeSize = errors.New("lightclient: sync committee does not have 512 members")
	ErrInvalidSyncCommitteeBranch  = errors.New("lightclient: current sync committee branch does not verify")
)

// Client update errors.
var (
	ErrAttestedHeaderIsEmpty      = errors.New("lightclient: attested header is empty")
	ErrBadSignatureSlot           = errors.New("lightclient: attested header slot is not before signature slot")
	ErrEmptyHeaders               = errors.New("lightclient: update carries no headers")
	ErrFirstHeaderSlot            = errors.New("lightclient: first header slot does not continue the client's maximal slot")
	ErrFirstHeaderParentRoot      = errors.New("lightclient: first header parent root does not match client tip")
	ErrUncontinuousSlot           = errors.New("lightclient: header slots are not contiguous")
	ErrUnmatchedParentRoot        = errors.New("lightclient: header parent root does not match the preceding non-empty header")
	ErrHeadersMmrProof            = errors.New("lightclient: incremental MMR proof does not extend the old root to the new root")
	ErrFinalizedHeaderIsEmpty     = errors.New("lightclient: finalized header is empty")
	ErrClientIdChanged            = errors.New("lightclient: client id changed across update")
	ErrClientMinimalSlotChanged   = errors.New("lightclient: client minimal slot changed across update")
	ErrClientMaximalSlot          = errors.New("lightclient: new client maximal slot does not match the last header's slot")
	ErrClientTipHeaderRoot        = errors.New("lightclient: new client tip header root does not match the last non-empty header")
	ErrMismatchedSyncCommittee    = errors.New("lightclient: current committee's period does not match the signature slot's period")
	ErrNotSupermajorityParticipation = errors.New("lightclient: sync aggregate does not reach supermajority participation")
	ErrFailedToVerifyTheAttestedHeader = errors.New("lightclient: sync aggregate does not verify against the attested header")
	ErrFinalizedShouldBeAfterAttested = errors.New("lightclient: finalized header slot is not before attested header slot")
	ErrInvalidFinalityBranch      = errors.New("lightclient: finality branch does not verify against the attested header's state root")
	ErrMmrError                   = errors.New("lightclient: mmr proof verification failed")
	ErrBlsPublicKeyBytesError     = errors.New("lightclient: malformed BLS public key bytes")
	ErrBlsAggregateSignatureError = errors.New("lightclient: malformed BLS aggregate signature bytes")
)

// Sync-committee update errors, beyond those shared with client update.
var (
	ErrBadCurrentPeriod               = errors.New("lightclient: current committee's period does not match the last client maximal slot's period")
	ErrSignatureInNextPeriod          = errors.New("lightclient: signature slot has rolled into a later period than the current committee")
	ErrNoncontinuousPeriods           = errors.New("lightclient: next committee's period does not follow the current committee's period")
	ErrUnexpectedNextSyncCommitteeSize = errors.New("lightclient: next sync committee does not have 512 members")
	ErrInvalidNextSyncCommitteeBranch = errors.New("lightclient: next sync committee branch does not verify")
)

// Transaction verification errors.
var (
	ErrUnsynchronized      = errors.New("lightclient: header slot falls outside the client's synced range")
	ErrHeaderMmrProof      = errors.New("lightclient: header MMR inclusion proof failed")
	ErrTransactionSszProof = errors.New("lightclient: transaction SSZ branch does not verify against the block body root")
	ErrReceiptMptProof     = errors.New("lightclient: receipt MPT inclusion proof failed")
	ErrReceiptsRootSszProof = errors.New("lightclient: receipts root SSZ branch does not verify against the block body root")
	ErrSszError            = errors.New("lightclient: malformed SSZ proof input")
)
