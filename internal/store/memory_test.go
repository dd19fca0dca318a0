package store

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/i474232898/weather-forecast/internal/weather"
)

func TestMemoryRegistryLoadOrCreate(t *testing.T) {
	reg := NewMemoryRegistry()

	var created int32
	create := func() *weather.Request {
		atomic.AddInt32(&created, 1)
		return weather.NewRequest(nil, weather.RequestOptions{})
	}

	var wg sync.WaitGroup
	results := make([]*weather.Request, 16)
	for i := range results {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i] = reg.LoadOrCreate("308526", create)
		}()
	}
	wg.Wait()

	if got := atomic.LoadInt32(&created); got != 1 {
		t.Fatalf("expected create to run once, ran %d times", got)
	}
	for i, r := range results {
		if r != results[0] {
			t.Fatalf("result %d is a different request", i)
		}
	}

	got, err := reg.Get("308526")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != results[0] {
		t.Fatal("Get returned a different request")
	}
}

func TestMemoryRegistryGetMissing(t *testing.T) {
	reg := NewMemoryRegistry()
	if _, err := reg.Get("nope"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestMemoryRegistryKeysSorted(t *testing.T) {
	reg := NewMemoryRegistry()
	for _, k := range []string{"valencia", "bilbao", "madrid"} {
		reg.LoadOrCreate(k, func() *weather.Request { return weather.NewRequest(nil, weather.RequestOptions{}) })
	}

	keys := reg.Keys()
	want := []string{"bilbao", "madrid", "valencia"}
	if len(keys) != len(want) {
		t.Fatalf("expected %v, got %v", want, keys)
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, keys)
		}
	}
}
