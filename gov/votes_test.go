package gov_test

import (
	"testing"

	"simple_dao/gov"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// Voting Tests
// =============================================================================

// TestVoteProposal checks the voting flow so we dont break it again.
func TestVoteProposal(t *testing.T) {
	env := setupEngine(t, defaultParams())
	seatMembers(t, env, memberOne, memberTwo)
	id, err := env.engine.CreateProposal(memberOne, genesisTime, "x", 10, outsider)
	require.NoError(t, err)

	require.NoError(t, env.engine.VoteProposal(memberOne, genesisTime+1, id, true))
	require.NoError(t, env.engine.VoteProposal(memberTwo, genesisTime+2, id, false))

	details := env.engine.ProposalDetails(id)
	assert.Equal(t, uint64(1), details.VotesFor)
	assert.Equal(t, uint64(1), details.VotesAgainst)
	assert.True(t, env.engine.HasVoted(id, memberOne))
	assert.True(t, env.engine.HasVoted(id, memberTwo))
	assert.False(t, env.engine.HasVoted(id, outsider))
	assert.Contains(t, env.logs.lines, "vc|id:0|by:hive:someone|f:true")
	assert.Contains(t, env.logs.lines, "vc|id:0|by:hive:someoneelse|f:false")
}

// TestVoteRequiresMembership checks outsiders cannot vote.
func TestVoteRequiresMembership(t *testing.T) {
	env := setupEngine(t, defaultParams())
	id, err := env.engine.CreateProposal(ownerAddress, genesisTime, "x", 10, outsider)
	require.NoError(t, err)

	err = env.engine.VoteProposal(outsider, genesisTime+1, id, true)
	require.ErrorIs(t, err, gov.ErrUnauthorized)
	assert.Zero(t, env.engine.ProposalDetails(id).VotesFor)
}

// TestVoteUnknownProposal checks voting a never-issued id fails.
func TestVoteUnknownProposal(t *testing.T) {
	env := setupEngine(t, defaultParams())

	err := env.engine.VoteProposal(ownerAddress, genesisTime, 7, true)
	require.ErrorIs(t, err, gov.ErrUnknownProposal)
}

// TestVoteDeadlineBoundary checks a vote at the exact deadline is already too late.
func TestVoteDeadlineBoundary(t *testing.T) {
	env := setupEngine(t, defaultParams())
	seatMembers(t, env, memberOne)
	id, err := env.engine.CreateProposal(ownerAddress, genesisTime, "x", 10, outsider)
	require.NoError(t, err)
	deadline := env.engine.ProposalDetails(id).VotingDeadline

	require.NoError(t, env.engine.VoteProposal(ownerAddress, deadline-1, id, true))

	err = env.engine.VoteProposal(memberOne, deadline, id, true)
	require.ErrorIs(t, err, gov.ErrVotingClosed)
	err = env.engine.VoteProposal(memberOne, deadline+1, id, true)
	require.ErrorIs(t, err, gov.ErrVotingClosed)
	assert.Equal(t, uint64(1), env.engine.ProposalDetails(id).VotesFor)
}

// TestVoteDuplicate checks one member cannot vote twice, not even flipping sides.
func TestVoteDuplicate(t *testing.T) {
	env := setupEngine(t, defaultParams())
	id, err := env.engine.CreateProposal(ownerAddress, genesisTime, "x", 10, outsider)
	require.NoError(t, err)

	require.NoError(t, env.engine.VoteProposal(ownerAddress, genesisTime+1, id, true))
	err = env.engine.VoteProposal(ownerAddress, genesisTime+2, id, false)
	require.ErrorIs(t, err, gov.ErrDuplicateVote)

	details := env.engine.ProposalDetails(id)
	assert.Equal(t, uint64(1), details.VotesFor)
	assert.Zero(t, details.VotesAgainst)
}

// TestVotesSurviveRemoval checks cast votes stand after the voter loses their seat.
func TestVotesSurviveRemoval(t *testing.T) {
	env := setupEngine(t, defaultParams())
	seatMembers(t, env, memberOne)
	id, err := env.engine.CreateProposal(ownerAddress, genesisTime, "x", 10, outsider)
	require.NoError(t, err)

	require.NoError(t, env.engine.VoteProposal(memberOne, genesisTime+1, id, true))
	require.NoError(t, env.engine.RemoveMember(ownerAddress, genesisTime+2, memberOne))

	assert.Equal(t, uint64(1), env.engine.ProposalDetails(id).VotesFor)
	assert.True(t, env.engine.HasVoted(id, memberOne))
}

// TestVotesScopedPerProposal checks voting on one proposal leaves others open to the member.
func TestVotesScopedPerProposal(t *testing.T) {
	env := setupEngine(t, defaultParams())
	first, err := env.engine.CreateProposal(ownerAddress, genesisTime, "a", 1, outsider)
	require.NoError(t, err)
	second, err := env.engine.CreateProposal(ownerAddress, genesisTime, "b", 2, outsider)
	require.NoError(t, err)

	require.NoError(t, env.engine.VoteProposal(ownerAddress, genesisTime+1, first, true))
	require.NoError(t, env.engine.VoteProposal(ownerAddress, genesisTime+1, second, false))
	assert.Equal(t, uint64(1), env.engine.ProposalDetails(first).VotesFor)
	assert.Equal(t, uint64(1), env.engine.ProposalDetails(second).VotesAgainst)
}
