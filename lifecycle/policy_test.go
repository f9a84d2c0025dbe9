package lifecycle_test

import (
	"context"
	"testing"
	"time"

	"github.com/bebop-dex/go-sdk/lifecycle"
	"github.com/bebop-dex/go-sdk/protocol"
	"github.com/stretchr/testify/suite"
)

type PolicyTestSuite struct {
	suite.Suite
}

func TestRunPolicyTestSuite(t *testing.T) {
	suite.Run(t, new(PolicyTestSuite))
}

func (s *PolicyTestSuite) Test_Poll_FirstCheckImmediate() {
	policy := lifecycle.Policy{Attempts: 3, Interval: time.Hour}

	start := time.Now()
	polls, done, err := policy.Poll(context.Background(), func(ctx context.Context) bool {
		return true
	})

	s.Nil(err)
	s.True(done)
	s.Equal(1, polls)
	s.Less(time.Since(start), time.Second)
}

func (s *PolicyTestSuite) Test_Poll_ExhaustsBudget() {
	policy := lifecycle.Policy{Attempts: 10, Interval: time.Millisecond}
	checks := 0

	polls, done, err := policy.Poll(context.Background(), func(ctx context.Context) bool {
		checks++
		return false
	})

	s.Nil(err)
	s.False(done)
	s.Equal(10, polls)
	s.Equal(10, checks)
}

func (s *PolicyTestSuite) Test_Poll_WaitsBetweenChecks() {
	policy := lifecycle.Policy{Attempts: 3, Interval: 20 * time.Millisecond}

	start := time.Now()
	_, _, err := policy.Poll(context.Background(), func(ctx context.Context) bool {
		return false
	})

	s.Nil(err)
	s.GreaterOrEqual(time.Since(start), 40*time.Millisecond)
}

func (s *PolicyTestSuite) Test_Poll_Cancelled() {
	policy := lifecycle.Policy{Attempts: 5, Interval: time.Hour}
	ctx, cancel := context.WithCancel(context.Background())

	polls, done, err := policy.Poll(ctx, func(ctx context.Context) bool {
		cancel()
		return false
	})

	s.ErrorIs(err, context.Canceled)
	s.False(done)
	s.Equal(1, polls)
}

func (s *PolicyTestSuite) Test_Poll_ZeroAttemptsChecksOnce() {
	checks := 0

	polls, _, _ := lifecycle.Policy{}.Poll(context.Background(), func(ctx context.Context) bool {
		checks++
		return false
	})

	s.Equal(1, polls)
	s.Equal(1, checks)
}

type StateTestSuite struct {
	suite.Suite
}

func TestRunStateTestSuite(t *testing.T) {
	suite.Run(t, new(StateTestSuite))
}

func (s *StateTestSuite) Test_Transitions() {
	s.True(lifecycle.StateQuoteReceived.CanTransition(lifecycle.StateSigned))
	s.True(lifecycle.StateSigned.CanTransition(lifecycle.StateSubmitted))
	s.True(lifecycle.StatePending.CanTransition(lifecycle.StatePending))
	s.True(lifecycle.StatePending.CanTransition(lifecycle.StateTimedOut))

	s.False(lifecycle.StateSubmitted.CanTransition(lifecycle.StateSigned))
	s.False(lifecycle.StatePending.CanTransition(lifecycle.StateSigned))
	s.False(lifecycle.StateQuoteReceived.CanTransition(lifecycle.StateSubmitted))
	s.False(lifecycle.StateSettled.CanTransition(lifecycle.StateFailed))
	s.False(lifecycle.StateTimedOut.CanTransition(lifecycle.StatePending))
}

func (s *StateTestSuite) Test_Terminal() {
	s.True(lifecycle.StateSettled.Terminal())
	s.True(lifecycle.StateConfirmed.Terminal())
	s.True(lifecycle.StateFailed.Terminal())
	s.True(lifecycle.StateTimedOut.Terminal())
	s.False(lifecycle.StatePending.Terminal())
	s.False(lifecycle.StateSubmitted.Terminal())

	s.True(lifecycle.StateConfirmed.Success())
	s.False(lifecycle.StateTimedOut.Success())
}

func (s *StateTestSuite) Test_StateFromStatus() {
	s.Equal(lifecycle.StateSettled, lifecycle.StateFromStatus(protocol.OrderStatusSettled))
	s.Equal(lifecycle.StateConfirmed, lifecycle.StateFromStatus(protocol.OrderStatusConfirmed))
	s.Equal(lifecycle.StateFailed, lifecycle.StateFromStatus(protocol.OrderStatusFailed))
	s.Equal(lifecycle.StatePending, lifecycle.StateFromStatus(protocol.OrderStatusSuccess))
	s.Equal(lifecycle.StatePending, lifecycle.StateFromStatus(protocol.OrderStatusPending))
	s.Equal(lifecycle.StatePending, lifecycle.StateFromStatus("Unknown"))
}
