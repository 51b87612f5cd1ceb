package usecase_test

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math/big"
	"sync"
	"testing"

	"cosmossdk.io/math"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"

	"github.com/safevoice-org/voicebridge/internal/adapters/repository/queue"
	"github.com/safevoice-org/voicebridge/internal/config"
	"github.com/safevoice-org/voicebridge/internal/domain/models"
)

var testAccount = common.HexToAddress("0xAAAA00000000000000000000000000000000AAAA")

// fakeGateway is an in-memory ChainGateway double. Write calls record
// themselves and hand out sequential hashes.
type fakeGateway struct {
	mu         sync.Mutex
	account    common.Address
	hasAccount bool
	connected  bool
	balance    math.LegacyDec
	balanceErr error
	stakes     map[uint64]*big.Int
	receipts   map[string]*models.Receipt
	receiptErr error
	sendErr    error
	calls      []string
}

func newFakeGateway() *fakeGateway {
	return &fakeGateway{
		account:    testAccount,
		hasAccount: true,
		connected:  true,
		balance:    math.LegacyNewDec(1000),
		stakes:     make(map[uint64]*big.Int),
		receipts:   make(map[string]*models.Receipt),
	}
}

func (f *fakeGateway) record(format string, args ...any) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, fmt.Sprintf(format, args...))
	return fmt.Sprintf("0xhash%04d", len(f.calls))
}

func (f *fakeGateway) Account() (common.Address, bool) {
	return f.account, f.hasAccount
}

func (f *fakeGateway) Connected(ctx context.Context) bool {
	return f.connected
}

func (f *fakeGateway) TokenBalance(ctx context.Context, owner common.Address) (math.LegacyDec, error) {
	if f.balanceErr != nil {
		return math.LegacyDec{}, f.balanceErr
	}
	f.record("balanceOf(%s)", owner.Hex())
	return f.balance, nil
}

func (f *fakeGateway) MintRewards(ctx context.Context, recipient common.Address, wei *big.Int) (string, error) {
	if f.sendErr != nil {
		return "", f.sendErr
	}
	return f.record("mint(%s,%s)", recipient.Hex(), wei), nil
}

func (f *fakeGateway) BurnFrom(ctx context.Context, owner common.Address, wei *big.Int) (string, error) {
	if f.sendErr != nil {
		return "", f.sendErr
	}
	return f.record("burnFrom(%s,%s)", owner.Hex(), wei), nil
}

func (f *fakeGateway) Stake(ctx context.Context, wei *big.Int, lockPeriod uint64) (string, error) {
	if f.sendErr != nil {
		return "", f.sendErr
	}
	return f.record("stake(%s,%d)", wei, lockPeriod), nil
}

func (f *fakeGateway) Unstake(ctx context.Context, stakeID uint64) (string, error) {
	if f.sendErr != nil {
		return "", f.sendErr
	}
	return f.record("unstake(%d)", stakeID), nil
}

func (f *fakeGateway) StakeAmount(ctx context.Context, owner common.Address, stakeID uint64) (*big.Int, error) {
	if wei, ok := f.stakes[stakeID]; ok {
		return wei, nil
	}
	return big.NewInt(0), nil
}

func (f *fakeGateway) MintBadge(ctx context.Context, recipient common.Address, tokenID uint64) (string, error) {
	if f.sendErr != nil {
		return "", f.sendErr
	}
	return f.record("badgeMint(%s,%d)", recipient.Hex(), tokenID), nil
}

func (f *fakeGateway) CastVote(ctx context.Context, proposalID uint64, support uint8) (string, error) {
	if f.sendErr != nil {
		return "", f.sendErr
	}
	return f.record("castVote(%d,%d)", proposalID, support), nil
}

func (f *fakeGateway) CastVoteWithReason(ctx context.Context, proposalID uint64, support uint8, reason string) (string, error) {
	if f.sendErr != nil {
		return "", f.sendErr
	}
	return f.record("castVoteWithReason(%d,%d,%s)", proposalID, support, reason), nil
}

func (f *fakeGateway) TransactionReceipt(ctx context.Context, hash string) (*models.Receipt, error) {
	if f.receiptErr != nil {
		return nil, f.receiptErr
	}
	return f.receipts[hash], nil
}

// lastCall returns the most recent recorded chain call.
func (f *fakeGateway) lastCall() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.calls) == 0 {
		return ""
	}
	return f.calls[len(f.calls)-1]
}

// fakeBus records published events.
type fakeBus struct {
	mu     sync.Mutex
	events []busEvent
}

type busEvent struct {
	topic string
	args  []any
}

func (f *fakeBus) Publish(topic string, args ...any) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, busEvent{topic: topic, args: args})
}

func (f *fakeBus) byTopic(topic string) []busEvent {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []busEvent
	for _, ev := range f.events {
		if ev.topic == topic {
			out = append(out, ev)
		}
	}
	return out
}

// fakeNotifier records toasts.
type fakeNotifier struct {
	mu        sync.Mutex
	successes []string
	errors    []string
}

func (f *fakeNotifier) Success(title, message string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.successes = append(f.successes, title)
}

func (f *fakeNotifier) Error(title, message string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.errors = append(f.errors, title)
}

// testEnv wires a real file repository against the fakes.
type testEnv struct {
	cfg    *config.RuntimeConfig
	repo   *queue.FileRepository
	chain  *fakeGateway
	bus    *fakeBus
	notify *fakeNotifier
	log    *slog.Logger
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	repo, err := queue.NewFileRepository(t.TempDir())
	require.NoError(t, err)

	return &testEnv{
		cfg: &config.RuntimeConfig{
			Enabled: true,
			ChainID: 31337,
			Chain: &config.Chain{
				Name:    "localhost",
				ChainID: 31337,
				RPCURL:  "http://localhost:8545",
				Contracts: config.Contracts{
					Token:    "0x1000000000000000000000000000000000000001",
					Staking:  "0x1000000000000000000000000000000000000002",
					Badge:    "0x1000000000000000000000000000000000000003",
					Governor: "0x1000000000000000000000000000000000000004",
				},
			},
		},
		repo:   repo,
		chain:  newFakeGateway(),
		bus:    &fakeBus{},
		notify: &fakeNotifier{},
		log:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}
