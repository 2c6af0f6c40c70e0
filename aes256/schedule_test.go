package aes256

import (
	"bytes"
	"testing"
)

func TestExpandKeyRejectsWrongSize(t *testing.T) {
	for _, n := range []int{0, 16, 24, 31, 33, 64} {
		if _, err := ExpandKey(make([]byte, n)); err != ErrKeySize {
			t.Fatalf("ExpandKey with %d-byte key: got %v, want ErrKeySize", n, err)
		}
	}
}

func TestExpandKeyRoundZeroIsRawKey(t *testing.T) {
	key := make([]byte, KeySize)
	for i := range key {
		key[i] = byte(i * 7)
	}
	ks, err := ExpandKey(key)
	if err != nil {
		t.Fatalf("ExpandKey: %v", err)
	}
	if !bytes.Equal(ks.Material()[:KeySize], key) {
		t.Fatalf("first two round keys should equal the raw key")
	}
}

func TestExpandKeyDeterministic(t *testing.T) {
	key := make([]byte, KeySize)
	for i := range key {
		key[i] = byte(255 - i)
	}
	a, err := ExpandKey(key)
	if err != nil {
		t.Fatalf("ExpandKey: %v", err)
	}
	b, err := ExpandKey(key)
	if err != nil {
		t.Fatalf("ExpandKey: %v", err)
	}
	if !bytes.Equal(a.Material(), b.Material()) {
		t.Fatalf("two expansions of the same key differ")
	}
	if len(a.Material()) != 240 {
		t.Fatalf("schedule is %d bytes, want 240", len(a.Material()))
	}
}

func TestExpandKeyDoesNotAliasCaller(t *testing.T) {
	key := make([]byte, KeySize)
	ks, err := ExpandKey(key)
	if err != nil {
		t.Fatalf("ExpandKey: %v", err)
	}
	before := ks.Material()
	key[0] = 0xff
	if !bytes.Equal(before, ks.Material()) {
		t.Fatalf("mutating the caller's key changed the schedule")
	}
}
