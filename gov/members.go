package gov

import "fmt"

// saveMember writes the encoded record under the address-scoped key.
func (e *Engine) saveMember(member *Member) {
	e.state.Set(memberKey(member.Address), string(EncodeMember(member)))
}

// loadMember decodes stored bytes and reports presence.
func (e *Engine) loadMember(addr Address) (*Member, bool) {
	ptr := e.state.Get(memberKey(addr))
	if ptr == nil || *ptr == "" {
		return nil, false
	}
	member, err := DecodeMember([]byte(*ptr))
	if err != nil {
		return nil, false
	}
	return member, true
}

// deleteMember evicts the record entirely; there is no tombstone.
func (e *Engine) deleteMember(addr Address) {
	e.state.Delete(memberKey(addr))
}

// AddMember admits an address into the membership set. Owner only.
func (e *Engine) AddMember(caller Address, now int64, addr Address) error {
	cfg, err := e.requireConfig()
	if err != nil {
		return err
	}
	if caller != cfg.Owner {
		return fmt.Errorf("%w: only owner may add members", ErrUnauthorized)
	}
	if !addr.IsValid() {
		return fmt.Errorf("%w: empty member address", ErrNotAMember)
	}
	if _, ok := e.loadMember(addr); ok {
		return ErrAlreadyMember
	}

	e.saveMember(&Member{Address: addr, JoinedAt: now})
	e.setCount(MembersCount, e.getCount(MembersCount)+1)
	e.emitNewMember(addr.String(), now)
	return nil
}

// RemoveMember deletes an address from the membership set. Owner only.
// Removal does not retract votes the member already cast on open proposals
// and does not disqualify proposals they authored; both stand as recorded.
func (e *Engine) RemoveMember(caller Address, now int64, addr Address) error {
	cfg, err := e.requireConfig()
	if err != nil {
		return err
	}
	if caller != cfg.Owner {
		return fmt.Errorf("%w: only owner may remove members", ErrUnauthorized)
	}
	if _, ok := e.loadMember(addr); !ok {
		return ErrNotAMember
	}

	e.deleteMember(addr)
	e.setCount(MembersCount, e.getCount(MembersCount)-1)
	e.emitRemovedMember(addr.String(), now)
	return nil
}

// IsMember reports current membership; read-only, any caller.
func (e *Engine) IsMember(addr Address) bool {
	_, ok := e.loadMember(addr)
	return ok
}
