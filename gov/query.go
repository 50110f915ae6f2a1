package gov

// Read-only projections served to external callers. All JSON marshaling for
// these goes through the tinyjson codecs in query_tinyjson.go.

//tinyjson:json
type ProposalDetails struct {
	ID             uint64 `json:"id"`
	Proposer       string `json:"proposer"`
	Description    string `json:"description"`
	Value          int64  `json:"value"`
	Recipient      string `json:"recipient"`
	CreatedAt      int64  `json:"created_at"`
	VotingDeadline int64  `json:"voting_deadline"`
	VotesFor       uint64 `json:"votes_for"`
	VotesAgainst   uint64 `json:"votes_against"`
	Executed       bool   `json:"executed"`
}

//tinyjson:json
type MemberInfo struct {
	Address  string `json:"address"`
	Member   bool   `json:"member"`
	JoinedAt int64  `json:"joined_at,omitempty"`
}

//tinyjson:json
type EngineInfo struct {
	Owner          string `json:"owner"`
	MemberCount    uint64 `json:"member_count"`
	ProposalCount  uint64 `json:"proposal_count"`
	Balance        int64  `json:"balance"`
	MinimumQuorum  uint64 `json:"minimum_quorum"`
	VotingDuration int64  `json:"voting_duration"`
	ExecutionDelay int64  `json:"execution_delay"`
}

// ProposalDetails returns the proposal projection. Unknown ids return a
// zero-valued record; queries have no failure modes.
func (e *Engine) ProposalDetails(id uint64) ProposalDetails {
	prpsl, err := e.loadProposal(id)
	if err != nil {
		return ProposalDetails{}
	}
	return ProposalDetails{
		ID:             prpsl.ID,
		Proposer:       prpsl.Proposer.String(),
		Description:    prpsl.Description,
		Value:          int64(prpsl.Value),
		Recipient:      prpsl.Recipient.String(),
		CreatedAt:      prpsl.CreatedAt,
		VotingDeadline: prpsl.VotingDeadline,
		VotesFor:       prpsl.VotesFor,
		VotesAgainst:   prpsl.VotesAgainst,
		Executed:       prpsl.Executed,
	}
}

// MemberDetails returns the membership projection for an address.
func (e *Engine) MemberDetails(addr Address) MemberInfo {
	member, ok := e.loadMember(addr)
	if !ok {
		return MemberInfo{Address: addr.String()}
	}
	return MemberInfo{
		Address:  member.Address.String(),
		Member:   true,
		JoinedAt: member.JoinedAt,
	}
}

// Info returns the scalar reads in one projection.
func (e *Engine) Info() EngineInfo {
	cfg := e.loadConfig()
	if cfg == nil {
		return EngineInfo{}
	}
	return EngineInfo{
		Owner:          cfg.Owner.String(),
		MemberCount:    e.MemberCount(),
		ProposalCount:  e.ProposalCount(),
		Balance:        int64(e.Balance()),
		MinimumQuorum:  cfg.Params.MinimumQuorum,
		VotingDuration: cfg.Params.VotingDuration,
		ExecutionDelay: cfg.Params.ExecutionDelay,
	}
}
