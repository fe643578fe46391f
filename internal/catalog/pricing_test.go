package catalog

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestDerivePrice_CopiesCatalogPrice(t *testing.T) {
	services := []Service{
		{ID: 1, Name: "Wash", Price: decimal.NewFromInt(15000)},
		{ID: 2, Name: "Iron", Price: decimal.NewFromInt(10000)},
	}
	got := DerivePrice(services, "Wash", decimal.Zero)
	if !got.Equal(decimal.NewFromInt(15000)) {
		t.Fatalf("price=%s, want 15000", got)
	}
}

func TestDerivePrice_UnknownNameKeepsPrevious(t *testing.T) {
	services := []Service{{ID: 1, Name: "Wash", Price: decimal.NewFromInt(15000)}}
	prev := decimal.NewFromInt(7500)
	got := DerivePrice(services, "Unknown", prev)
	if !got.Equal(prev) {
		t.Fatalf("price=%s, want previous %s", got, prev)
	}
}

func TestDerivePrice_FirstMatchWinsOnDuplicateNames(t *testing.T) {
	services := []Service{
		{ID: 1, Name: "Wash", Price: decimal.NewFromInt(15000)},
		{ID: 2, Name: "Wash", Price: decimal.NewFromInt(20000)},
	}
	got := DerivePrice(services, "Wash", decimal.Zero)
	if !got.Equal(decimal.NewFromInt(15000)) {
		t.Fatalf("price=%s, want first match 15000", got)
	}
}

func TestDerivePrice_EmptyCatalog(t *testing.T) {
	prev := decimal.NewFromInt(123)
	if got := DerivePrice(nil, "Wash", prev); !got.Equal(prev) {
		t.Fatalf("price=%s, want previous %s", got, prev)
	}
}

func TestDerivePrice_ExactNameMatchOnly(t *testing.T) {
	services := []Service{{ID: 1, Name: "Wash", Price: decimal.NewFromInt(15000)}}
	prev := decimal.NewFromInt(1)
	if got := DerivePrice(services, "wash", prev); !got.Equal(prev) {
		t.Fatalf("case-insensitive match not expected, got %s", got)
	}
}
