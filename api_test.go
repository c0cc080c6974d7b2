package versort

import (
	"reflect"
	"testing"
)

func TestSorted(t *testing.T) {
	t.Parallel()

	got, err := Sorted([]string{"2.0.0", "1.0.0"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"1.0.0", "2.0.0"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Sorted got %v; want %v", got, want)
	}

	// Same failure policy as Sort.
	if _, err := Sorted([]string{"junk"}); err == nil {
		t.Fatalf("Sorted accepted unparsable input")
	}
}

func TestLatest(t *testing.T) {
	t.Parallel()

	in := []string{"1.0.0", "junk", "2.0.0-rc.1", "2.0.0", "v1.9"}

	got, ok := Latest(in, Options{})
	if !ok || got != "2.0.0" {
		t.Fatalf("Latest = (%q, %v); want (%q, true)", got, ok, "2.0.0")
	}

	// Unparsable tags never abort Latest.
	if _, ok := Latest([]string{"junk", "more junk"}, Options{}); ok {
		t.Fatalf("Latest reported ok with no parsable tags")
	}

	if _, ok := Latest(nil, Options{}); ok {
		t.Fatalf("Latest reported ok on empty input")
	}
}

func TestLatest_Counter(t *testing.T) {
	t.Parallel()

	got, ok := Latest([]string{"1.0", "1.0b", "1.0a"}, Options{Counter: true})
	if !ok || got != "1.0b" {
		t.Fatalf("Latest = (%q, %v); want (%q, true)", got, ok, "1.0b")
	}
}
