package kyc

import (
	"context"
	"sync"
	"time"
)

// DefaultDetectDelay is the input-inactivity window before an automatic
// bank-account resolution fires.
const DefaultDetectDelay = 500 * time.Millisecond

// AccountDetector drives the bank-account auto-detection sub-protocol:
// once the observed account number reaches a valid length and a bank
// code is known, it resolves the account after a debounce window.
//
// At most one detection is in flight at a time, and an account number
// is only ever attempted once until the marker is cleared (manual mode)
// or a different number is observed.
type AccountDetector struct {
	workflow *Workflow
	delay    time.Duration
	apply    func(accountNumber string, result *BankAccountResult)

	mu            sync.Mutex
	timer         *time.Timer
	current       string
	bankCode      string
	fullName      string
	lastAttempted string
	resolving     bool
}

// NewAccountDetector builds a detector over the workflow's detection
// call. apply receives each fresh (non-stale) result. A zero delay
// selects DefaultDetectDelay.
func NewAccountDetector(workflow *Workflow, delay time.Duration, apply func(string, *BankAccountResult)) *AccountDetector {
	if delay <= 0 {
		delay = DefaultDetectDelay
	}
	return &AccountDetector{
		workflow: workflow,
		delay:    delay,
		apply:    apply,
	}
}

// Observe records the latest account-number input. Each call restarts
// the debounce window; a pending detection for an earlier value is
// discarded.
func (d *AccountDetector) Observe(ctx context.Context, accountNumber string, bankCode string, fullName string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.current = accountNumber
	d.bankCode = bankCode
	d.fullName = fullName

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}

	if !ValidAccountNumber(accountNumber) || bankCode == "" {
		return
	}

	d.timer = time.AfterFunc(d.delay, func() {
		d.fire(ctx)
	})
}

// SetManual switches to manual entry: the idempotency marker is cleared
// and any in-flight detection flag reset, so a later switch back to
// auto-detection starts clean.
func (d *AccountDetector) SetManual() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.lastAttempted = ""
	d.resolving = false
}

func (d *AccountDetector) fire(ctx context.Context) {
	d.mu.Lock()
	number := d.current
	bankCode := d.bankCode
	fullName := d.fullName

	if d.resolving || number == d.lastAttempted || !ValidAccountNumber(number) {
		d.mu.Unlock()
		return
	}
	d.lastAttempted = number
	d.resolving = true
	d.mu.Unlock()

	result, err := d.workflow.DetectBankAccount(ctx, number, bankCode, fullName)

	d.mu.Lock()
	d.resolving = false
	stale := d.current != number
	// A value observed while this resolution was in flight lost its
	// debounce timer; give it a fresh one now.
	if stale && d.current != d.lastAttempted && ValidAccountNumber(d.current) && d.bankCode != "" {
		if d.timer != nil {
			d.timer.Stop()
		}
		d.timer = time.AfterFunc(d.delay, func() {
			d.fire(ctx)
		})
	}
	d.mu.Unlock()

	if err != nil {
		if d.workflow.logger != nil {
			d.workflow.logger.Error("bank account auto-detection failed", err)
		}
		return
	}
	// A result that arrives after the input changed again is discarded
	if stale {
		return
	}

	d.apply(number, result)
}
