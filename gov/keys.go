package gov

// Storage key prefixes. Records share the flat host kv space, so every kind
// gets its own leading byte.
const (
	// kConfig stores the encoded Config blob (owner + governance parameters).
	kConfig byte = 0x01
	// kTreasury stores the pool balance as decimal text.
	kTreasury byte = 0x02
	// kMember houses encoded Member structs keyed by address.
	kMember byte = 0x04
	// kProposal contains encoded Proposal records keyed by sequential id.
	kProposal byte = 0x10
	// kVoteReceipt stores one VoteRecord per (proposal id, voter) pair.
	kVoteReceipt byte = 0x20
)

// Counter keys.
const (
	// MembersCount mirrors the cardinality of the membership set.
	MembersCount = "count:members"
	// ProposalsCount holds the next proposal id; ids start at zero.
	ProposalsCount = "count:props"
)

// packU64LEInline sprinkles a uint64 into dst in little-endian order so our keys stay compact.
func packU64LEInline(x uint64, dst []byte) {
	dst[0] = byte(x)
	dst[1] = byte(x >> 8)
	dst[2] = byte(x >> 16)
	dst[3] = byte(x >> 24)
	dst[4] = byte(x >> 32)
	dst[5] = byte(x >> 40)
	dst[6] = byte(x >> 48)
	dst[7] = byte(x >> 56)
}

// packU64LE appends the encoded number to dst and returns the new slice.
func packU64LE(x uint64, dst []byte) []byte {
	return append(dst,
		byte(x),
		byte(x>>8),
		byte(x>>16),
		byte(x>>24),
		byte(x>>32),
		byte(x>>40),
		byte(x>>48),
		byte(x>>56),
	)
}

// configKey is a single prefix byte since there is exactly one config blob.
func configKey() string {
	return string([]byte{kConfig})
}

// treasuryKey mirrors configKey for the one pool balance.
func treasuryKey() string {
	return string([]byte{kTreasury})
}

// memberKey appends the address bytes to avoid nested maps in host storage.
func memberKey(addr Address) string {
	addrStr := AddressToString(addr)
	buf := make([]byte, 0, 1+len(addrStr))
	buf = append(buf, kMember)
	buf = append(buf, addrStr...)
	return string(buf)
}

// proposalKey encodes the id under the 0x10 prefix keeping records contiguous.
func proposalKey(id uint64) string {
	var buf [9]byte
	buf[0] = kProposal
	packU64LEInline(id, buf[1:])
	return string(buf[:])
}

// voteKey mixes proposal id plus voter address so each pair maps to one slot.
func voteKey(id uint64, voter Address) string {
	addrStr := AddressToString(voter)
	buf := make([]byte, 0, 1+8+len(addrStr))
	buf = append(buf, kVoteReceipt)
	buf = packU64LE(id, buf)
	buf = append(buf, addrStr...)
	return string(buf)
}
