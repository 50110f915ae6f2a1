package gov_test

import (
	"testing"

	"simple_dao/gov"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// Construction Tests
// =============================================================================

// TestConstructSeatsOwner checks the one-time construction flow so we dont break it again.
func TestConstructSeatsOwner(t *testing.T) {
	env := setupEngine(t, defaultParams())

	assert.Equal(t, ownerAddress, env.engine.Owner())
	assert.Equal(t, defaultParams(), env.engine.Params())
	assert.True(t, env.engine.IsMember(ownerAddress))
	assert.Equal(t, uint64(1), env.engine.MemberCount())
	assert.Equal(t, uint64(0), env.engine.ProposalCount())
	require.Len(t, env.logs.lines, 1)
	assert.Equal(t, "nm|addr:hive:tibfox|at:1000", env.logs.lines[0])
}

// TestConstructOnlyOnce checks that a second construction is rejected.
func TestConstructOnlyOnce(t *testing.T) {
	env := setupEngine(t, defaultParams())

	err := env.engine.Construct(outsider, genesisTime+1, defaultParams())
	require.ErrorIs(t, err, gov.ErrAlreadyInitialized)
	assert.Equal(t, ownerAddress, env.engine.Owner())
}

// TestOperationsRequireConstruction checks every transition fails on a fresh store.
func TestOperationsRequireConstruction(t *testing.T) {
	engine := gov.New(gov.NewMemState(), &recordingBank{}, nil)

	assert.ErrorIs(t, engine.AddMember(ownerAddress, genesisTime, memberOne), gov.ErrNotInitialized)
	assert.ErrorIs(t, engine.RemoveMember(ownerAddress, genesisTime, memberOne), gov.ErrNotInitialized)
	_, err := engine.CreateProposal(ownerAddress, genesisTime, "x", 1, outsider)
	assert.ErrorIs(t, err, gov.ErrNotInitialized)
	assert.ErrorIs(t, engine.VoteProposal(ownerAddress, genesisTime, 0, true), gov.ErrNotInitialized)
	assert.ErrorIs(t, engine.ExecuteProposal(ownerAddress, genesisTime, 0), gov.ErrNotInitialized)
	assert.ErrorIs(t, engine.Deposit(outsider, genesisTime, 1), gov.ErrNotInitialized)
	assert.ErrorIs(t, engine.Withdraw(ownerAddress, genesisTime, 1), gov.ErrNotInitialized)
}

// TestQueriesOnFreshStore checks queries stay total before construction.
func TestQueriesOnFreshStore(t *testing.T) {
	engine := gov.New(gov.NewMemState(), &recordingBank{}, nil)

	assert.Equal(t, gov.Address(""), engine.Owner())
	assert.Equal(t, gov.Params{}, engine.Params())
	assert.Equal(t, uint64(0), engine.MemberCount())
	assert.Equal(t, gov.Amount(0), engine.Balance())
	assert.False(t, engine.IsMember(ownerAddress))
	assert.Equal(t, gov.EngineInfo{}, engine.Info())
}
