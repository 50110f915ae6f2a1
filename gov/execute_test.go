package gov_test

import (
	"testing"

	"simple_dao/gov"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// Execution Tests
// =============================================================================

// approvedProposal sets up a funded pool and a proposal already past quorum
// and majority: quorum 3, votes 2 for / 1 against, deadline 1100, delay 50.
func approvedProposal(t *testing.T, env *testEnv) uint64 {
	t.Helper()
	seatMembers(t, env, memberOne, memberTwo, memberThree)
	fundTreasury(t, env, 500)
	id, err := env.engine.CreateProposal(memberOne, genesisTime, "payout", 200, outsider)
	require.NoError(t, err)
	require.NoError(t, env.engine.VoteProposal(memberOne, genesisTime+1, id, true))
	require.NoError(t, env.engine.VoteProposal(memberTwo, genesisTime+2, id, true))
	require.NoError(t, env.engine.VoteProposal(memberThree, genesisTime+3, id, false))
	return id
}

func executionParams() gov.Params {
	return gov.Params{MinimumQuorum: 3, VotingDuration: 100, ExecutionDelay: 50}
}

// TestExecuteFullCycle checks the full propose-vote-wait-execute flow so we dont break it again.
func TestExecuteFullCycle(t *testing.T) {
	env := setupEngine(t, executionParams())
	id := approvedProposal(t, env)
	deadline := env.engine.ProposalDetails(id).VotingDeadline

	// voting still open
	err := env.engine.ExecuteProposal(memberOne, deadline-1, id)
	require.ErrorIs(t, err, gov.ErrExecutionNotReady)

	// deadline passed but delay not elapsed; boundary included
	err = env.engine.ExecuteProposal(memberOne, deadline+1, id)
	require.ErrorIs(t, err, gov.ErrExecutionNotReady)
	err = env.engine.ExecuteProposal(memberOne, deadline+50, id)
	require.ErrorIs(t, err, gov.ErrExecutionNotReady)

	require.NoError(t, env.engine.ExecuteProposal(memberOne, deadline+51, id))
	assert.Equal(t, gov.Amount(300), env.engine.Balance())
	require.Len(t, env.bank.transfers, 1)
	assert.Equal(t, bankTransfer{To: outsider, Amount: 200}, env.bank.transfers[0])
	assert.True(t, env.engine.ProposalDetails(id).Executed)
	assert.Contains(t, env.logs.lines, "pe|id:0|by:hive:someone|val:200|to:hive:outsider")
}

// TestExecuteOpenToAnyone checks execution needs no membership, only a ripe proposal.
func TestExecuteOpenToAnyone(t *testing.T) {
	env := setupEngine(t, executionParams())
	id := approvedProposal(t, env)

	require.NoError(t, env.engine.ExecuteProposal(outsider, genesisTime+200, id))
}

// TestExecuteOnlyOnce checks the executed flag is terminal.
func TestExecuteOnlyOnce(t *testing.T) {
	env := setupEngine(t, executionParams())
	id := approvedProposal(t, env)

	require.NoError(t, env.engine.ExecuteProposal(memberOne, genesisTime+200, id))
	err := env.engine.ExecuteProposal(memberOne, genesisTime+201, id)
	require.ErrorIs(t, err, gov.ErrAlreadyExecuted)
	assert.Equal(t, gov.Amount(300), env.engine.Balance())
	require.Len(t, env.bank.transfers, 1)
}

// TestExecuteQuorumNotMet checks the absolute participation threshold.
func TestExecuteQuorumNotMet(t *testing.T) {
	env := setupEngine(t, executionParams())
	seatMembers(t, env, memberOne)
	fundTreasury(t, env, 500)
	id, err := env.engine.CreateProposal(memberOne, genesisTime, "payout", 200, outsider)
	require.NoError(t, err)
	require.NoError(t, env.engine.VoteProposal(memberOne, genesisTime+1, id, true))
	require.NoError(t, env.engine.VoteProposal(ownerAddress, genesisTime+2, id, true))

	err = env.engine.ExecuteProposal(memberOne, genesisTime+200, id)
	require.ErrorIs(t, err, gov.ErrExecutionNotReady)
	assert.False(t, env.engine.ProposalDetails(id).Executed)
	assert.Empty(t, env.bank.transfers)
}

// TestExecuteTieFails checks a for/against tie never passes.
func TestExecuteTieFails(t *testing.T) {
	env := setupEngine(t, gov.Params{MinimumQuorum: 2, VotingDuration: 100, ExecutionDelay: 0})
	seatMembers(t, env, memberOne)
	fundTreasury(t, env, 500)
	id, err := env.engine.CreateProposal(memberOne, genesisTime, "payout", 200, outsider)
	require.NoError(t, err)
	require.NoError(t, env.engine.VoteProposal(memberOne, genesisTime+1, id, true))
	require.NoError(t, env.engine.VoteProposal(ownerAddress, genesisTime+2, id, false))

	err = env.engine.ExecuteProposal(memberOne, genesisTime+200, id)
	require.ErrorIs(t, err, gov.ErrExecutionNotReady)
}

// TestExecuteInsufficientBalance checks the funds guard keeps the proposal retryable.
func TestExecuteInsufficientBalance(t *testing.T) {
	env := setupEngine(t, executionParams())
	id := approvedProposal(t, env)
	require.NoError(t, env.engine.Withdraw(ownerAddress, genesisTime+4, 400))

	err := env.engine.ExecuteProposal(memberOne, genesisTime+200, id)
	require.ErrorIs(t, err, gov.ErrInsufficientBalance)
	assert.False(t, env.engine.ProposalDetails(id).Executed)

	// refund the pool and retry
	fundTreasury(t, env, 400)
	require.NoError(t, env.engine.ExecuteProposal(memberOne, genesisTime+201, id))
}

// TestExecuteTransferFailureRollsBack checks a failed host transfer leaves the
// proposal unexecuted and the balance untouched, then retries cleanly.
func TestExecuteTransferFailureRollsBack(t *testing.T) {
	env := setupEngine(t, executionParams())
	id := approvedProposal(t, env)

	env.bank.failNext = true
	err := env.engine.ExecuteProposal(memberOne, genesisTime+200, id)
	require.ErrorIs(t, err, gov.ErrTransferFailed)
	assert.False(t, env.engine.ProposalDetails(id).Executed)
	assert.Equal(t, gov.Amount(500), env.engine.Balance())
	assert.Empty(t, env.bank.transfers)

	require.NoError(t, env.engine.ExecuteProposal(memberOne, genesisTime+201, id))
	assert.Equal(t, gov.Amount(300), env.engine.Balance())
	assert.True(t, env.engine.ProposalDetails(id).Executed)
}

// TestExecuteUnknownProposal checks execution of a never-issued id fails.
func TestExecuteUnknownProposal(t *testing.T) {
	env := setupEngine(t, executionParams())

	err := env.engine.ExecuteProposal(ownerAddress, genesisTime, 9)
	require.ErrorIs(t, err, gov.ErrUnknownProposal)
}

// TestExecuteRejectedStaysRetryable checks a lost vote has no terminal state;
// execution keeps failing the same way on every retry.
func TestExecuteRejectedStaysRetryable(t *testing.T) {
	env := setupEngine(t, gov.Params{MinimumQuorum: 2, VotingDuration: 100, ExecutionDelay: 0})
	seatMembers(t, env, memberOne, memberTwo)
	fundTreasury(t, env, 500)
	id, err := env.engine.CreateProposal(memberOne, genesisTime, "payout", 200, outsider)
	require.NoError(t, err)
	require.NoError(t, env.engine.VoteProposal(memberOne, genesisTime+1, id, false))
	require.NoError(t, env.engine.VoteProposal(memberTwo, genesisTime+2, id, false))

	for i := int64(0); i < 3; i++ {
		err = env.engine.ExecuteProposal(memberOne, genesisTime+200+i, id)
		require.ErrorIs(t, err, gov.ErrExecutionNotReady)
	}
}
