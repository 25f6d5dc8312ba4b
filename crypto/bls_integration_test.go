package crypto

import "testing"

func TestPureGoBLSBackendVerifiesOwnTestVectors(t *testing.T) {
	backend := &PureGoBLSBackend{}
	for _, v := range GetBLSTestVectors() {
		t.Run(v.Name, func(t *testing.T) {
			if !backend.Verify(v.Pubkey[:], v.Message, v.Signature[:]) {
				t.Error("Verify should accept a signature produced for the matching secret key")
			}
		})
	}
}

func TestPureGoBLSBackendRejectsWrongMessage(t *testing.T) {
	backend := &PureGoBLSBackend{}
	vectors := GetBLSTestVectors()
	if len(vectors) < 2 {
		t.Fatal("need at least two test vectors")
	}
	v := vectors[0]
	if backend.Verify(v.Pubkey[:], vectors[1].Message, v.Signature[:]) {
		t.Error("Verify should reject a signature checked against the wrong message")
	}
}

func TestPureGoBLSBackendRejectsWrongPubkey(t *testing.T) {
	backend := &PureGoBLSBackend{}
	vectors := GetBLSTestVectors()
	if len(vectors) < 2 {
		t.Fatal("need at least two test vectors")
	}
	v := vectors[0]
	if backend.Verify(vectors[1].Pubkey[:], v.Message, v.Signature[:]) {
		t.Error("Verify should reject a signature checked against the wrong pubkey")
	}
}

func TestPureGoBLSBackendFastAggregateVerify(t *testing.T) {
	backend := &PureGoBLSBackend{}
	vectors := GetBLSTestVectors()

	msg := []byte("shared sync committee message")
	pubkeys := make([][]byte, 0, len(vectors))
	sigs := make([][BLSSignatureSize]byte, 0, len(vectors))
	for _, v := range vectors {
		sig := BLSSign(v.SecretKey, msg)
		pubkeys = append(pubkeys, v.Pubkey[:])
		sigs = append(sigs, sig)
	}
	aggSig := AggregateSignatures(sigs)

	if !backend.FastAggregateVerify(pubkeys, msg, aggSig[:]) {
		t.Error("FastAggregateVerify should accept an aggregate of signatures over the same message")
	}
}

func TestPureGoBLSBackendFastAggregateVerifyRejectsMissingSigner(t *testing.T) {
	backend := &PureGoBLSBackend{}
	vectors := GetBLSTestVectors()
	if len(vectors) < 2 {
		t.Fatal("need at least two test vectors")
	}

	msg := []byte("shared sync committee message")
	sigs := make([][BLSSignatureSize]byte, 0, len(vectors))
	pubkeys := make([][]byte, 0, len(vectors))
	for _, v := range vectors {
		sig := BLSSign(v.SecretKey, msg)
		sigs = append(sigs, sig)
		pubkeys = append(pubkeys, v.Pubkey[:])
	}
	aggSig := AggregateSignatures(sigs)

	if backend.FastAggregateVerify(pubkeys[:len(pubkeys)-1], msg, aggSig[:]) {
		t.Error("FastAggregateVerify should reject an aggregate when a claimed signer's pubkey is dropped")
	}
}

func TestPureGoBLSBackendAggregateVerify(t *testing.T) {
	backend := &PureGoBLSBackend{}
	vectors := GetBLSTestVectors()

	pubkeys := make([][]byte, 0, len(vectors))
	msgs := make([][]byte, 0, len(vectors))
	sigs := make([][BLSSignatureSize]byte, 0, len(vectors))
	for _, v := range vectors {
		pubkeys = append(pubkeys, v.Pubkey[:])
		msgs = append(msgs, v.Message)
		sigs = append(sigs, v.Signature)
	}
	aggSig := AggregateSignatures(sigs)

	if !backend.AggregateVerify(pubkeys, msgs, aggSig[:]) {
		t.Error("AggregateVerify should accept an aggregate over distinct per-signer messages")
	}
}

func TestValidateBLSPubkeyRejectsWrongLength(t *testing.T) {
	if err := ValidateBLSPubkey(make([]byte, 10)); err != ErrBLSInvalidPubkeyLen {
		t.Errorf("err = %v, want ErrBLSInvalidPubkeyLen", err)
	}
}

func TestValidateBLSPubkeyAcceptsTestVectorKeys(t *testing.T) {
	for _, v := range GetBLSTestVectors() {
		if err := ValidateBLSPubkey(v.Pubkey[:]); err != nil {
			t.Errorf("%s: ValidateBLSPubkey: %v", v.Name, err)
		}
	}
}

func TestValidateBLSSignatureRejectsWrongLength(t *testing.T) {
	if err := ValidateBLSSignature(make([]byte, 10)); err != ErrBLSInvalidSigLen {
		t.Errorf("err = %v, want ErrBLSInvalidSigLen", err)
	}
}

func TestValidateBLSSignatureAcceptsTestVectorSignatures(t *testing.T) {
	for _, v := range GetBLSTestVectors() {
		if err := ValidateBLSSignature(v.Signature[:]); err != nil {
			t.Errorf("%s: ValidateBLSSignature: %v", v.Name, err)
		}
	}
}

func TestDefaultBLSBackendName(t *testing.T) {
	backend := DefaultBLSBackend()
	if backend == nil {
		t.Fatal("DefaultBLSBackend returned nil")
	}
	if backend.Name() == "" {
		t.Error("backend should report a non-empty name")
	}
}
