package identity

import (
	"strings"
	"testing"
)

func TestNormalizeCanonicalIsIdempotent(t *testing.T) {
	in := "b7a9c111-2233-4455-6677-8899aabbccdd"
	got, err := Normalize(in, "test")
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if got != in {
		t.Fatalf("canonical input changed: %q -> %q", in, got)
	}
}

func TestNormalizeCanonicalizesUppercase(t *testing.T) {
	got, err := Normalize("B7A9C111-2233-4455-6677-8899AABBCCDD", "test")
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if got != "b7a9c111-2233-4455-6677-8899aabbccdd" {
		t.Fatalf("not canonical: %q", got)
	}
}

func TestNormalizeCanonicalizesBracedForm(t *testing.T) {
	got, err := Normalize("{b7a9c111-2233-4455-6677-8899aabbccdd}", "test")
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if got != "b7a9c111-2233-4455-6677-8899aabbccdd" {
		t.Fatalf("not canonical: %q", got)
	}
}

func TestNormalizeMalformedCarriesLabel(t *testing.T) {
	_, err := Normalize("not-an-identifier", "group member")
	if err == nil {
		t.Fatalf("expected error")
	}
	if !strings.Contains(err.Error(), "group member") {
		t.Fatalf("error lacks label: %v", err)
	}
}
