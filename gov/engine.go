// Package gov implements a governance engine: a fixed set of authorized
// members collectively controls a pooled balance by proposing, voting on,
// and executing time-locked fund transfers.
//
// The engine is a pure state machine. The host environment delivers one
// request at a time in a single total order, supplies the authenticated
// caller identity and a monotonically non-decreasing logical timestamp for
// each, and guarantees each request applies atomically. Caller and timestamp
// are therefore explicit parameters of every transition, never ambient
// state. Fund transfers go through the narrow Bank capability; durable
// storage through State.
package gov

import "fmt"

// Bank is the outward transfer capability provided by the host. A non-nil
// error means no funds moved; the engine rolls the triggering request back
// in full. The host integration must guarantee no callback re-enters the
// engine before Transfer returns.
type Bank interface {
	Transfer(to Address, amount Amount) error
}

type Engine struct {
	state State
	bank  Bank
	log   Logger
}

// New wires an engine over host-provided storage, transfer capability and
// event sink. It does not touch state; call Construct exactly once on a
// fresh store, or use New alone to rehydrate an existing one.
func New(state State, bank Bank, log Logger) *Engine {
	return &Engine{
		state: state,
		bank:  bank,
		log:   log,
	}
}

// Construct initializes governance with the caller as owner and as the
// first member. Governance parameters are immutable afterwards.
func (e *Engine) Construct(caller Address, now int64, params Params) error {
	if e.initialized() {
		return ErrAlreadyInitialized
	}
	if !caller.IsValid() {
		return fmt.Errorf("%w: empty caller address", ErrUnauthorized)
	}

	cfg := Config{
		Owner:  caller,
		Params: params,
	}
	e.saveConfig(&cfg)

	e.saveMember(&Member{Address: caller, JoinedAt: now})
	e.setCount(MembersCount, 1)
	e.emitNewMember(caller.String(), now)
	return nil
}

// initialized reports whether the one-time construction happened.
func (e *Engine) initialized() bool {
	ptr := e.state.Get(configKey())
	return ptr != nil && *ptr != ""
}

// loadConfig returns nil when the engine was never constructed.
func (e *Engine) loadConfig() *Config {
	ptr := e.state.Get(configKey())
	if ptr == nil || *ptr == "" {
		return nil
	}
	cfg, err := DecodeConfig([]byte(*ptr))
	if err != nil {
		return nil
	}
	return cfg
}

func (e *Engine) saveConfig(cfg *Config) {
	e.state.Set(configKey(), string(EncodeConfig(cfg)))
}

// requireConfig is the shared guard every transition runs first.
func (e *Engine) requireConfig() (*Config, error) {
	cfg := e.loadConfig()
	if cfg == nil {
		return nil, ErrNotInitialized
	}
	return cfg, nil
}

// Owner returns the privileged administrator address, empty when not constructed.
func (e *Engine) Owner() Address {
	cfg := e.loadConfig()
	if cfg == nil {
		return ""
	}
	return cfg.Owner
}

// Params returns the immutable governance parameters, zero when not constructed.
func (e *Engine) Params() Params {
	cfg := e.loadConfig()
	if cfg == nil {
		return Params{}
	}
	return cfg.Params
}

// MemberCount always equals the cardinality of the membership set.
func (e *Engine) MemberCount() uint64 {
	return e.getCount(MembersCount)
}

// ProposalCount is the number of proposals ever created; also the next id.
func (e *Engine) ProposalCount() uint64 {
	return e.getCount(ProposalsCount)
}
