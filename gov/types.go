package gov

import "math"

// AmountScale defines the precision multiplier for converting floats to int64.
const AmountScale = 1000

type Amount int64

// FloatToAmount scales human floats by AmountScale and rounds to int64 so storage stays precise.
// Example payload: FloatToAmount(1.234)
func FloatToAmount(v float64) Amount {
	return Amount(math.Round(v * AmountScale))
}

// AmountToFloat converts back to float64 for reporting or events.
// Example payload: AmountToFloat(FloatToAmount(2.5))
func AmountToFloat(v Amount) float64 {
	return float64(v) / AmountScale
}

// AmountToInt64 exposes the raw scaled int64 for host transfer functions.
// Example payload: AmountToInt64(FloatToAmount(3.14))
func AmountToInt64(v Amount) int64 {
	return int64(v)
}

// Address is an opaque account identifier authenticated by the host.
type Address string

// String returns the literal representation of the address.
func (a Address) String() string {
	return string(a)
}

// IsValid is a light sanity check; the host owns real identity verification.
func (a Address) IsValid() bool {
	return a != ""
}

// AddressFromString converts a human string to the address wrapper.
// Example payload: AddressFromString("hive:alice")
func AddressFromString(s string) Address { return Address(s) }

// AddressToString turns the wrapped type back into the underlying string.
// Example payload: AddressToString(AddressFromString("hive:bob"))
func AddressToString(a Address) string { return a.String() }

// Params holds the governance parameters. Set once at construction,
// immutable thereafter.
type Params struct {
	// MinimumQuorum is an absolute vote-count threshold (for + against), not a percentage.
	MinimumQuorum uint64
	// VotingDuration is added to the creation timestamp to form the voting deadline.
	VotingDuration int64
	// ExecutionDelay is the mandatory waiting period after the voting deadline.
	ExecutionDelay int64
}

// Config is the one-time construction record: the privileged owner plus the
// governance parameters. Owner status is not itself a membership grant.
type Config struct {
	Owner  Address
	Params Params
}

type Member struct {
	Address  Address
	JoinedAt int64
}

type Proposal struct {
	ID             uint64
	Proposer       Address
	Description    string
	Value          Amount
	Recipient      Address
	CreatedAt      int64
	VotingDeadline int64
	VotesFor       uint64
	VotesAgainst   uint64
	Executed       bool
}

// VoteRecord is keyed by (proposal id, voter address) in storage; a record,
// once written, is never changed or deleted.
type VoteRecord struct {
	Approve bool
	VotedAt int64
}
