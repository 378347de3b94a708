package dataset

import "sync/atomic"

// Holder publishes the dataset exactly once. Readers never block: before
// publication Get fails with ErrNotReady.
type Holder struct {
	p atomic.Pointer[Dataset]
}

// Set publishes d. Later calls are ignored so the dataset is never replaced.
func (h *Holder) Set(d *Dataset) bool {
	return h.p.CompareAndSwap(nil, d)
}

func (h *Holder) Get() (*Dataset, error) {
	d := h.p.Load()
	if d == nil {
		return nil, ErrNotReady
	}
	return d, nil
}

func (h *Holder) Ready() bool { return h.p.Load() != nil }
