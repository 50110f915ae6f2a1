package gov

import "fmt"

// saveVote persists the receipt; receipts are never updated or deleted.
func (e *Engine) saveVote(id uint64, voter Address, vr *VoteRecord) {
	e.state.Set(voteKey(id, voter), string(EncodeVoteRecord(vr)))
}

// loadVoteRecord returns nil when the (proposal, voter) pair never voted.
func (e *Engine) loadVoteRecord(id uint64, voter Address) *VoteRecord {
	ptr := e.state.Get(voteKey(id, voter))
	if ptr == nil || *ptr == "" {
		return nil
	}
	vr, err := DecodeVoteRecord([]byte(*ptr))
	if err != nil {
		return nil
	}
	return vr
}

// VoteProposal records the caller's choice on an open proposal. Members
// only, one vote per member per proposal, permanent once cast. The deadline
// comparison is strictly less-than: a vote at exactly the deadline is
// rejected.
func (e *Engine) VoteProposal(caller Address, now int64, id uint64, approve bool) error {
	if _, err := e.requireConfig(); err != nil {
		return err
	}
	if !e.IsMember(caller) {
		return fmt.Errorf("%w: only members may vote", ErrUnauthorized)
	}
	prpsl, err := e.loadProposal(id)
	if err != nil {
		return err
	}
	if now >= prpsl.VotingDeadline {
		return fmt.Errorf("%w: proposal %d deadline %d", ErrVotingClosed, id, prpsl.VotingDeadline)
	}
	if e.loadVoteRecord(id, caller) != nil {
		return fmt.Errorf("%w: proposal %d voter %s", ErrDuplicateVote, id, caller)
	}

	e.saveVote(id, caller, &VoteRecord{Approve: approve, VotedAt: now})
	if approve {
		prpsl.VotesFor++
	} else {
		prpsl.VotesAgainst++
	}
	e.saveProposal(prpsl)
	e.emitVoteCasted(id, caller.String(), approve)
	return nil
}

// HasVoted reports whether the address holds a receipt for the proposal.
func (e *Engine) HasVoted(id uint64, voter Address) bool {
	return e.loadVoteRecord(id, voter) != nil
}
