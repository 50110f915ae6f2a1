package gov

import "fmt"

// Logger is where the engine drops its event lines. Hosts forward them to
// whatever indexing or log pipeline they run; tests record them.
type Logger interface {
	Log(msg string)
}

// emit tolerates a nil logger so library users can opt out of events.
func (e *Engine) emit(msg string) {
	if e.log == nil {
		return
	}
	e.log.Log(msg)
}

// emitNewMember writes a tiny "nm" line so watchers know someone fresh holds a seat.
func (e *Engine) emitNewMember(memberAddress string, joinedAt int64) {
	e.emit(fmt.Sprintf(
		"nm|addr:%s|at:%d",
		memberAddress,
		joinedAt,
	))
}

// emitRemovedMember mirrors the join ping but signals a seat freed up.
func (e *Engine) emitRemovedMember(memberAddress string, removedAt int64) {
	e.emit(fmt.Sprintf(
		"rm|addr:%s|at:%d",
		memberAddress,
		removedAt,
	))
}

// emitNewProposal keeps observers updated with a short np line for every new transfer idea.
func (e *Engine) emitNewProposal(proposalId uint64, proposerAddress string, value Amount, recipientAddress string) {
	e.emit(fmt.Sprintf(
		"np|id:%d|by:%s|val:%d|to:%s",
		proposalId,
		proposerAddress,
		int64(value),
		recipientAddress,
	))
}

// emitVoteCasted includes the raw choice so tallies can be replayed from logs only.
func (e *Engine) emitVoteCasted(proposalId uint64, voterAddress string, approve bool) {
	e.emit(fmt.Sprintf(
		"vc|id:%d|by:%s|f:%t",
		proposalId,
		voterAddress,
		approve,
	))
}

// emitProposalExecuted leaves a hint that funds moved after a confirmed transfer.
func (e *Engine) emitProposalExecuted(proposalId uint64, executorAddress string, value Amount, recipientAddress string) {
	e.emit(fmt.Sprintf(
		"pe|id:%d|by:%s|val:%d|to:%s",
		proposalId,
		executorAddress,
		int64(value),
		recipientAddress,
	))
}
