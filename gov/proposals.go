package gov

import "fmt"

// saveProposal persists the encoded record under the id-scoped key.
func (e *Engine) saveProposal(prpsl *Proposal) {
	e.state.Set(proposalKey(prpsl.ID), string(EncodeProposal(prpsl)))
}

// loadProposal only serves ids the counter has issued; the caller-facing
// guard lives in the transitions so never-created ids surface
// ErrUnknownProposal instead of silently decoding zero-valued state.
func (e *Engine) loadProposal(id uint64) (*Proposal, error) {
	if id >= e.getCount(ProposalsCount) {
		return nil, fmt.Errorf("%w: id %d", ErrUnknownProposal, id)
	}
	ptr := e.state.Get(proposalKey(id))
	if ptr == nil || *ptr == "" {
		return nil, fmt.Errorf("%w: id %d", ErrUnknownProposal, id)
	}
	prpsl, err := DecodeProposal([]byte(*ptr))
	if err != nil {
		return nil, fmt.Errorf("failed to decode proposal %d: %w", id, err)
	}
	return prpsl, nil
}

// CreateProposal registers a transfer of value to recipient, subject to
// vote. Members only. No funds-sufficiency check happens here; proposals may
// exceed the current balance and the check is deferred to execution.
func (e *Engine) CreateProposal(caller Address, now int64, description string, value Amount, recipient Address) (uint64, error) {
	cfg, err := e.requireConfig()
	if err != nil {
		return 0, err
	}
	if !e.IsMember(caller) {
		return 0, fmt.Errorf("%w: only members may create proposals", ErrUnauthorized)
	}
	if value < 0 {
		return 0, fmt.Errorf("%w: negative proposal value", ErrInvalidAmount)
	}

	id := e.getCount(ProposalsCount)
	prpsl := &Proposal{
		ID:             id,
		Proposer:       caller,
		Description:    description,
		Value:          value,
		Recipient:      recipient,
		CreatedAt:      now,
		VotingDeadline: now + cfg.Params.VotingDuration,
	}
	e.saveProposal(prpsl)
	e.setCount(ProposalsCount, id+1)
	e.emitNewProposal(id, caller.String(), value, recipient.String())
	return id, nil
}
