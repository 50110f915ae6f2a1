package gov

import "fmt"

// ExecuteProposal attempts the approved transfer. Open to any caller.
//
// All guards run before any mutation. A proposal that misses quorum or
// majority has no terminal rejected state; it stays retryable forever, the
// tally just can never change once voting closed.
//
// The executed flag flips and persists before the transfer is invoked so a
// re-entrant execution attempt observes it set; if the transfer reports
// failure the flip is rolled back and the proposal stays eligible for a
// later retry. The host's per-request atomicity guarantee makes the
// flip-transfer-rollback sequence indivisible to other requests.
func (e *Engine) ExecuteProposal(caller Address, now int64, id uint64) error {
	cfg, err := e.requireConfig()
	if err != nil {
		return err
	}
	prpsl, err := e.loadProposal(id)
	if err != nil {
		return err
	}
	if prpsl.Executed {
		return fmt.Errorf("%w: proposal %d", ErrAlreadyExecuted, id)
	}
	if now <= prpsl.VotingDeadline {
		return fmt.Errorf("%w: voting still open until %d", ErrExecutionNotReady, prpsl.VotingDeadline)
	}
	if now <= prpsl.VotingDeadline+cfg.Params.ExecutionDelay {
		return fmt.Errorf("%w: execution delay not elapsed, ready after %d",
			ErrExecutionNotReady, prpsl.VotingDeadline+cfg.Params.ExecutionDelay)
	}
	if prpsl.VotesFor+prpsl.VotesAgainst < cfg.Params.MinimumQuorum {
		return fmt.Errorf("%w: quorum not met, %d of %d votes",
			ErrExecutionNotReady, prpsl.VotesFor+prpsl.VotesAgainst, cfg.Params.MinimumQuorum)
	}
	if prpsl.VotesFor <= prpsl.VotesAgainst {
		return fmt.Errorf("%w: majority not met, %d for vs %d against",
			ErrExecutionNotReady, prpsl.VotesFor, prpsl.VotesAgainst)
	}
	balance := e.Balance()
	if balance < prpsl.Value {
		return fmt.Errorf("%w: need %d, hold %d", ErrInsufficientBalance, prpsl.Value, balance)
	}

	prpsl.Executed = true
	e.saveProposal(prpsl)
	if err := e.bank.Transfer(prpsl.Recipient, prpsl.Value); err != nil {
		prpsl.Executed = false
		e.saveProposal(prpsl)
		return fmt.Errorf("%w: %v", ErrTransferFailed, err)
	}
	e.setBalance(balance - prpsl.Value)
	e.emitProposalExecuted(id, caller.String(), prpsl.Value, prpsl.Recipient.String())
	return nil
}
