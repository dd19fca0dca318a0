package cities

import (
	"errors"
	"testing"
)

func TestAllKeepsPickerOrder(t *testing.T) {
	all := All()
	want := []string{"madrid", "barcelona", "sevilla", "bilbao", "valencia"}
	if len(all) != len(want) {
		t.Fatalf("expected %d cities, got %d", len(want), len(all))
	}
	for i, w := range all {
		if w.Key != want[i] {
			t.Fatalf("position %d: expected %s, got %s", i, want[i], w.Key)
		}
	}
}

func TestLookup(t *testing.T) {
	w, err := Lookup("bilbao")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if w.City != "Bilbao" || w.Temperature != 16 || w.Humidity != 85 || w.Icon != IconGrain {
		t.Fatalf("unexpected record: %+v", w)
	}

	if _, err := Lookup("Madrid"); !errors.Is(err, ErrUnknownCity) {
		t.Fatalf("lookups are case-sensitive, expected ErrUnknownCity, got %v", err)
	}
}

func TestTableIsReadOnly(t *testing.T) {
	all := All()
	all[0].Temperature = -40

	w, _ := Lookup("madrid")
	if w.Temperature != 22 {
		t.Fatalf("table was modified through All(): %v", w.Temperature)
	}
}
