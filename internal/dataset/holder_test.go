package dataset

import (
	"errors"
	"sync"
	"testing"
)

func TestHolder(t *testing.T) {
	var h Holder
	if _, err := h.Get(); !errors.Is(err, ErrNotReady) {
		t.Fatalf("before publish: %v", err)
	}
	if h.Ready() {
		t.Fatalf("ready before publish")
	}
	first := New(nil, nil, nil, nil)
	if !h.Set(first) {
		t.Fatalf("first Set should publish")
	}
	if h.Set(New(nil, nil, nil, nil)) {
		t.Fatalf("second Set must be ignored")
	}
	got, err := h.Get()
	if err != nil || got != first {
		t.Fatalf("Get: %v %v", got, err)
	}
}

func TestHolderConcurrentReaders(t *testing.T) {
	var h Holder
	d := New(nil, nil, nil, nil)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				if got, err := h.Get(); err == nil && got != d {
					t.Errorf("unexpected dataset")
					return
				}
			}
		}()
	}
	h.Set(d)
	wg.Wait()
}

func TestNewIndexesFirstStore(t *testing.T) {
	d := New(nil, nil, nil, nil)
	if _, ok := d.StoreByID("x"); ok {
		t.Fatalf("empty dataset lookup")
	}
	if len(d.Agents(true)) != 0 || d.Visits("bogus") != nil {
		t.Fatalf("empty accessors")
	}
}
