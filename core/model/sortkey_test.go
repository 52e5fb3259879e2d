package model

import (
	"errors"
	"testing"
)

func TestParseSortKey(t *testing.T) {
	cases := map[string]SortKey{
		"Max Profit":    SortMaxObjective,
		"max_benefit":   SortMaxObjective,
		"Min Duration":  SortMinPrimary,
		"min-cost":      SortMinPrimary,
		"Best Ratio":    SortBestRatio,
		"":              SortBestRatio,
		"max_objective": SortMaxObjective,
	}
	for in, want := range cases {
		got, err := ParseSortKey(in)
		if err != nil {
			t.Fatalf("%q: unexpected error %v", in, err)
		}
		if got != want {
			t.Fatalf("%q: expected %v got %v", in, want, got)
		}
	}
	if _, err := ParseSortKey("fastest"); !errors.Is(err, ErrUnknownSortKey) {
		t.Fatalf("expected ErrUnknownSortKey got %v", err)
	}
}

func TestSortKeyLabelRoundTrip(t *testing.T) {
	for _, d := range Domains {
		for _, k := range []SortKey{SortMaxObjective, SortMinPrimary, SortBestRatio} {
			got, err := ParseSortKey(k.Label(d))
			if err != nil || got != k {
				t.Fatalf("%s/%s: got %v err %v", d, k, got, err)
			}
			if k.Strategy(d) == "unknown strategy" {
				t.Fatalf("%s/%s: missing strategy text", d, k)
			}
		}
	}
	if SortKey(9).Valid() {
		t.Fatalf("out of range key reported valid")
	}
}

func TestWorkingSetCopies(t *testing.T) {
	ws := NewWorkingSet(Resource{Name: "a", Cost: 1})
	ws.Add(Resource{Name: "b", Cost: 2})
	items := ws.Items()
	items[0].Name = "changed"
	if ws.Items()[0].Name != "a" {
		t.Fatalf("Items must return a copy")
	}
	if ws.Len() != 2 {
		t.Fatalf("expected 2 records got %d", ws.Len())
	}
}

func TestParseDomain(t *testing.T) {
	d, err := ParseDomain("resources")
	if err != nil || d != DomainResources {
		t.Fatalf("got %v %v", d, err)
	}
	if _, err := ParseDomain("cars"); err == nil {
		t.Fatalf("expected error")
	}
}
