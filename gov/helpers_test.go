package gov_test

import (
	"errors"
	"testing"

	"simple_dao/gov"

	"github.com/stretchr/testify/require"
)

const ownerAddress = gov.Address("hive:tibfox")
const memberOne = gov.Address("hive:someone")
const memberTwo = gov.Address("hive:someoneelse")
const memberThree = gov.Address("hive:member2")
const outsider = gov.Address("hive:outsider")

const genesisTime = int64(1_000)

// recordingBank captures transfers and can be flipped into failure mode to
// exercise rollback paths.
type recordingBank struct {
	transfers []bankTransfer
	failNext  bool
}

type bankTransfer struct {
	To     gov.Address
	Amount gov.Amount
}

func (b *recordingBank) Transfer(to gov.Address, amount gov.Amount) error {
	if b.failNext {
		b.failNext = false
		return errors.New("host transfer rejected")
	}
	b.transfers = append(b.transfers, bankTransfer{To: to, Amount: amount})
	return nil
}

// recordingLogger keeps emitted event lines for assertions.
type recordingLogger struct {
	lines []string
}

func (l *recordingLogger) Log(msg string) {
	l.lines = append(l.lines, msg)
}

type testEnv struct {
	engine *gov.Engine
	state  *gov.MemState
	bank   *recordingBank
	logs   *recordingLogger
}

// setupEngine constructs a fresh engine with the owner already seated.
func setupEngine(t *testing.T, params gov.Params) *testEnv {
	t.Helper()
	env := &testEnv{
		state: gov.NewMemState(),
		bank:  &recordingBank{},
		logs:  &recordingLogger{},
	}
	env.engine = gov.New(env.state, env.bank, env.logs)
	require.NoError(t, env.engine.Construct(ownerAddress, genesisTime, params))
	return env
}

// defaultParams keeps quorum low so small membership sets can pass votes.
func defaultParams() gov.Params {
	return gov.Params{
		MinimumQuorum:  2,
		VotingDuration: 100,
		ExecutionDelay: 50,
	}
}

// seatMembers admits the addresses as owner at genesis time.
func seatMembers(t *testing.T, env *testEnv, members ...gov.Address) {
	t.Helper()
	for _, addr := range members {
		require.NoError(t, env.engine.AddMember(ownerAddress, genesisTime, addr))
	}
}

// fundTreasury deposits into the pool so executions have something to move.
func fundTreasury(t *testing.T, env *testEnv, amount gov.Amount) {
	t.Helper()
	require.NoError(t, env.engine.Deposit(outsider, genesisTime, amount))
}
