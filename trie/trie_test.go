package trie

import "testing"

func buildTestTrie(t *testing.T) *Trie {
	t.Helper()
	tr := New()
	entries := map[string]string{
		"doe":   "reindeer",
		"dog":   "puppy",
		"dogglesworth": "cat",
	}
	for k, v := range entries {
		if err := tr.Put([]byte(k), []byte(v)); err != nil {
			t.Fatalf("Put(%q): %v", k, err)
		}
	}
	return tr
}

func TestTrieGetReturnsPutValues(t *testing.T) {
	tr := buildTestTrie(t)
	got, err := tr.Get([]byte("dog"))
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if string(got) != "puppy" {
		t.Errorf("Get(dog) = %q, want puppy", got)
	}
}

func TestTrieGetMissingKeyReturnsErrNotFound(t *testing.T) {
	tr := buildTestTrie(t)
	if _, err := tr.Get([]byte("cat")); err != ErrNotFound {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestEmptyTrieHashIsEmptyRoot(t *testing.T) {
	tr := New()
	if tr.Hash() != emptyRoot {
		t.Error("an empty trie's hash should equal emptyRoot")
	}
}

func TestTrieProveVerifiesAgainstHash(t *testing.T) {
	tr := buildTestTrie(t)
	root := tr.Hash()

	for _, key := range []string{"doe", "dog", "dogglesworth"} {
		proof, err := tr.Prove([]byte(key))
		if err != nil {
			t.Fatalf("Prove(%q): %v", key, err)
		}
		result, err := VerifyMPTProof(root, []byte(key), proof)
		if err != nil {
			t.Fatalf("VerifyMPTProof(%q): %v", key, err)
		}
		if !result.Exists {
			t.Errorf("key %q should exist", key)
		}
	}
}

func TestTrieProveAbsenceForMissingKey(t *testing.T) {
	tr := buildTestTrie(t)
	root := tr.Hash()

	proof, err := tr.ProveAbsence([]byte("cat"))
	if err != nil {
		t.Fatalf("ProveAbsence: %v", err)
	}
	if err := VerifyMPTAbsence(root, []byte("cat"), proof); err != nil {
		t.Errorf("VerifyMPTAbsence(cat): %v", err)
	}
}

func TestTrieProveAbsenceOnEmptyTrie(t *testing.T) {
	tr := New()
	proof, err := tr.ProveAbsence([]byte("anything"))
	if err != nil {
		t.Fatalf("ProveAbsence: %v", err)
	}
	if proof != nil {
		t.Error("an empty trie's absence proof should be nil")
	}
	if err := VerifyMPTAbsence(tr.Hash(), []byte("anything"), proof); err != nil {
		t.Errorf("VerifyMPTAbsence: %v", err)
	}
}

func TestTrieDeleteRemovesKey(t *testing.T) {
	tr := buildTestTrie(t)
	if err := tr.Delete([]byte("dog")); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := tr.Get([]byte("dog")); err != ErrNotFound {
		t.Errorf("err = %v, want ErrNotFound after delete", err)
	}
	// siblings sharing the "dog" prefix must survive the deletion
	got, err := tr.Get([]byte("dogglesworth"))
	if err != nil || string(got) != "cat" {
		t.Errorf("Get(dogglesworth) = (%q, %v), want (cat, nil)", got, err)
	}
}

func TestTrieProveRejectsTamperedProof(t *testing.T) {
	tr := buildTestTrie(t)
	root := tr.Hash()

	proof, err := tr.Prove([]byte("dog"))
	if err != nil {
		t.Fatalf("Prove: %v", err)
	}
	tampered := make([][]byte, len(proof))
	copy(tampered, proof)
	last := append([]byte{}, tampered[len(tampered)-1]...)
	last[0] ^= 0xff
	tampered[len(tampered)-1] = last

	if _, err := VerifyMPTProof(root, []byte("dog"), tampered); err == nil {
		t.Error("VerifyMPTProof should reject a tampered proof node")
	}
}

func TestTrieHashIsOrderIndependent(t *testing.T) {
	a := New()
	b := New()
	keys := []string{"alpha", "beta", "gamma", "delta"}
	for _, k := range keys {
		a.Put([]byte(k), []byte("v-"+k))
	}
	for i := len(keys) - 1; i >= 0; i-- {
		k := keys[i]
		b.Put([]byte(k), []byte("v-"+k))
	}
	if a.Hash() != b.Hash() {
		t.Error("insertion order should not affect the resulting root hash")
	}
}

func TestTrieLenAndEmpty(t *testing.T) {
	tr := New()
	if !tr.Empty() {
		t.Error("a fresh trie should be Empty")
	}
	tr.Put([]byte("k"), []byte("v"))
	if tr.Empty() {
		t.Error("trie should not be Empty after Put")
	}
	if tr.Len() != 1 {
		t.Errorf("Len() = %d, want 1", tr.Len())
	}
}

func TestVerifyMPTProofRejectsNilKey(t *testing.T) {
	tr := buildTestTrie(t)
	if _, err := VerifyMPTProof(tr.Hash(), nil, [][]byte{{0x00}}); err != ErrProofNilInput {
		t.Errorf("err = %v, want ErrProofNilInput", err)
	}
}

func TestVerifyMPTProofRejectsEmptyProofAgainstNonEmptyRoot(t *testing.T) {
	tr := buildTestTrie(t)
	if _, err := VerifyMPTProof(tr.Hash(), []byte("dog"), nil); err != ErrProofEmpty {
		t.Errorf("err = %v, want ErrProofEmpty", err)
	}
}
