package specs

import "github.com/eth2030/beaconbridge/ssz"

// ComputeForkDataRoot returns the root of the ForkData container: the
// current fork version and the chain's genesis validators root, hashed
// together so a signing domain can't be replayed across chains or forks.
func ComputeForkDataRoot(currentVersion [4]byte, genesisValidatorsRoot [32]byte) [32]byte {
	versionRoot := ssz.HashTreeRootBasicVector(currentVersion[:])
	return ssz.HashTreeRootContainer([][32]byte{versionRoot, genesisValidatorsRoot})
}

// ComputeDomain returns the signing domain for domainType under the given
// fork version and genesis validators root: the domain type in the first 4
// bytes, the leading 28 bytes of the fork data root filling the rest.
func ComputeDomain(domainType [4]byte, forkVersion [4]byte, genesisValidatorsRoot [32]byte) [32]byte {
	forkDataRoot := ComputeForkDataRoot(forkVersion, genesisValidatorsRoot)
	var domain [32]byte
	copy(domain[:4], domainType[:])
	copy(domain[4:], forkDataRoot[:28])
	return domain
}

// ComputeSigningRoot returns the root of the SigningData container: the
// object's own root mixed with the domain it was signed under. This, not
// the object root alone, is what a BLS signature is actually computed over.
func ComputeSigningRoot(objectRoot [32]byte, domain [32]byte) [32]byte {
	return ssz.HashTreeRootContainer([][32]byte{objectRoot, domain})
}

// ComputeSigningRootAtSignatureSlot returns the signing root a sync
// committee signature over signedRoot must be checked against, given the
// slot the signature itself was produced at.
//
// Per the light-client sync protocol, a signature's domain is derived from
// the fork active one slot before its own signature_slot (not the fork
// active at signature_slot itself): this lets a signature produced in the
// last slot before a fork boundary still verify under the pre-fork domain,
// since sync committee members sign for the *next* slot's block.
func ComputeSigningRootAtSignatureSlot(signedRoot [32]byte, signatureSlot uint64, domainType [4]byte, genesisValidatorsRoot [32]byte) [32]byte {
	forkVersionSlot := uint64(0)
	if signatureSlot > 0 {
		forkVersionSlot = signatureSlot - 1
	}
	forkVersion := ForkVersionAtSlot(forkVersionSlot)
	domain := ComputeDomain(domainType, forkVersion, genesisValidatorsRoot)
	return ComputeSigningRoot(signedRoot, domain)
}
