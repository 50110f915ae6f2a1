package gov

import (
	"fmt"
	"strconv"
)

// Balance returns the pool's current holdings.
func (e *Engine) Balance() Amount {
	ptr := e.state.Get(treasuryKey())
	if ptr == nil {
		return 0
	}
	balance, err := strconv.ParseInt(*ptr, 10, 64)
	if err != nil {
		return 0
	}
	return Amount(balance)
}

// setBalance stores the balance as decimal text for the host kv.
func (e *Engine) setBalance(amount Amount) {
	e.state.Set(treasuryKey(), strconv.FormatInt(int64(amount), 10))
}

// Deposit credits an unconditional incoming transfer. Any source is
// accepted and nothing beyond the balance changes.
func (e *Engine) Deposit(from Address, now int64, amount Amount) error {
	if _, err := e.requireConfig(); err != nil {
		return err
	}
	if amount <= 0 {
		return fmt.Errorf("%w: deposit must be positive", ErrInvalidAmount)
	}
	e.setBalance(e.Balance() + amount)
	return nil
}

// Withdraw moves funds from the pool to the owner. Owner only; the whole
// call fails atomically when the transfer reports failure.
func (e *Engine) Withdraw(caller Address, now int64, amount Amount) error {
	cfg, err := e.requireConfig()
	if err != nil {
		return err
	}
	if caller != cfg.Owner {
		return fmt.Errorf("%w: only owner may withdraw", ErrUnauthorized)
	}
	if amount <= 0 {
		return fmt.Errorf("%w: withdrawal must be positive", ErrInvalidAmount)
	}
	balance := e.Balance()
	if balance < amount {
		return fmt.Errorf("%w: need %d, hold %d", ErrInsufficientBalance, amount, balance)
	}
	if err := e.bank.Transfer(cfg.Owner, amount); err != nil {
		return fmt.Errorf("%w: %v", ErrTransferFailed, err)
	}
	e.setBalance(balance - amount)
	return nil
}
