// Package view owns the live chart handles of one word history page and
// implements the point-activation contract.
package view

import (
	"errors"
	"fmt"
	"sync"
)

// Slot identifies a chart position on the page
type Slot string

const (
	SlotMain      Slot = "main"
	SlotBreakdown Slot = "breakdown"
)

// Handle is a rendered chart owned by a ViewController
type Handle interface {
	Release() error
}

// ViewController holds at most one live handle per slot
type ViewController struct {
	mu    sync.Mutex
	slots map[Slot]Handle
}

// NewViewController creates a controller with no live charts
func NewViewController() *ViewController {
	return &ViewController{slots: make(map[Slot]Handle)}
}

// Replace releases the handle live in slot, then installs h. The new handle
// is installed even if releasing the old one fails; the release error is
// returned so the caller can report it.
func (vc *ViewController) Replace(slot Slot, h Handle) error {
	vc.mu.Lock()
	defer vc.mu.Unlock()

	var err error
	if old, ok := vc.slots[slot]; ok {
		if relErr := old.Release(); relErr != nil {
			err = fmt.Errorf("failed to release %s chart: %w", slot, relErr)
		}
		delete(vc.slots, slot)
	}
	if h != nil {
		vc.slots[slot] = h
	}
	return err
}

// Release releases and removes the handle live in slot, if any
func (vc *ViewController) Release(slot Slot) error {
	return vc.Replace(slot, nil)
}

// Live returns the handle currently installed in slot
func (vc *ViewController) Live(slot Slot) (Handle, bool) {
	vc.mu.Lock()
	defer vc.mu.Unlock()
	h, ok := vc.slots[slot]
	return h, ok
}

// Close releases every live handle
func (vc *ViewController) Close() error {
	vc.mu.Lock()
	defer vc.mu.Unlock()

	var errs []error
	for slot, h := range vc.slots {
		if err := h.Release(); err != nil {
			errs = append(errs, fmt.Errorf("failed to release %s chart: %w", slot, err))
		}
		delete(vc.slots, slot)
	}
	return errors.Join(errs...)
}
