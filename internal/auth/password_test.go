package auth

import "testing"

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("pw123", 4)
	if err != nil {
		t.Fatalf("HashPassword() unexpected error: %v", err)
	}
	if hash == "" {
		t.Fatal("HashPassword() returned empty string")
	}
	if hash == "pw123" {
		t.Fatal("HashPassword() returned the raw password")
	}
}

func TestComparePassword(t *testing.T) {
	hash, err := HashPassword("pw123", 4)
	if err != nil {
		t.Fatalf("HashPassword() unexpected error: %v", err)
	}

	if err := ComparePassword(hash, "pw123"); err != nil {
		t.Errorf("ComparePassword() error = %v for correct password", err)
	}
	if err := ComparePassword(hash, "wrong"); err == nil {
		t.Error("ComparePassword() expected error for wrong password")
	}
}

func TestHashPasswordDistinctSalts(t *testing.T) {
	h1, err := HashPassword("pw123", 4)
	if err != nil {
		t.Fatalf("HashPassword() unexpected error: %v", err)
	}
	h2, err := HashPassword("pw123", 4)
	if err != nil {
		t.Fatalf("HashPassword() unexpected error: %v", err)
	}
	if h1 == h2 {
		t.Error("two hashes of the same password are identical; salt missing")
	}
}
