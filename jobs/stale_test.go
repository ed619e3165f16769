package jobs_test

import (
	"context"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/omnivault/vault-accounting/bridge"
	"github.com/omnivault/vault-accounting/composer"
	"github.com/omnivault/vault-accounting/jobs"
	mock_jobs "github.com/omnivault/vault-accounting/jobs/mock"
)

type StaleRequestJobTestSuite struct {
	suite.Suite

	mockRefunder *mock_jobs.MockDepositRefunder
	mockLedger   *mock_jobs.MockRequestLedger
	mockMetrics  *mock_jobs.MockPendingMetrics
}

func TestRunStaleRequestJobTestSuite(t *testing.T) {
	suite.Run(t, new(StaleRequestJobTestSuite))
}

func (s *StaleRequestJobTestSuite) SetupTest() {
	ctrl := gomock.NewController(s.T())

	s.mockRefunder = mock_jobs.NewMockDepositRefunder(ctrl)
	s.mockLedger = mock_jobs.NewMockRequestLedger(ctrl)
	s.mockMetrics = mock_jobs.NewMockPendingMetrics(ctrl)
}

func (s *StaleRequestJobTestSuite) Test_StaleDepositRefunded() {
	guid := common.HexToHash("0x01")
	staleDeposit := &composer.PendingDeposit{
		GUID:      guid,
		CreatedAt: time.Now().Add(-time.Hour),
	}
	s.mockRefunder.EXPECT().PendingDeposits().Return([]*composer.PendingDeposit{staleDeposit}).AnyTimes()
	s.mockLedger.EXPECT().PendingRequests().Return(nil).AnyTimes()
	s.mockMetrics.EXPECT().TrackPendingRequests(0).AnyTimes()

	refunded := make(chan struct{}, 1)
	s.mockRefunder.EXPECT().RefundDeposit(gomock.Any(), guid).DoAndReturn(
		func(ctx context.Context, guid common.Hash) error {
			select {
			case refunded <- struct{}{}:
			default:
			}
			return nil
		}).AnyTimes()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go jobs.StartStaleRequestJob(ctx, time.Millisecond*10, time.Minute*30, s.mockRefunder, s.mockLedger, s.mockMetrics)

	select {
	case <-refunded:
	case <-time.After(time.Second):
		s.Fail("stale deposit was not refunded")
	}
}

func (s *StaleRequestJobTestSuite) Test_FreshDepositKept() {
	freshDeposit := &composer.PendingDeposit{
		GUID:      common.HexToHash("0x02"),
		CreatedAt: time.Now(),
	}
	s.mockRefunder.EXPECT().PendingDeposits().Return([]*composer.PendingDeposit{freshDeposit}).AnyTimes()
	s.mockLedger.EXPECT().PendingRequests().Return(nil).AnyTimes()
	s.mockMetrics.EXPECT().TrackPendingRequests(0).AnyTimes()

	ctx, cancel := context.WithCancel(context.Background())
	go jobs.StartStaleRequestJob(ctx, time.Millisecond*10, time.Minute*30, s.mockRefunder, s.mockLedger, s.mockMetrics)

	time.Sleep(time.Millisecond * 100)
	cancel()
}

func (s *StaleRequestJobTestSuite) Test_PendingRequestCountTracked() {
	s.mockRefunder.EXPECT().PendingDeposits().Return(nil).AnyTimes()
	s.mockLedger.EXPECT().PendingRequests().Return([]*bridge.RequestInfo{
		{GUID: common.HexToHash("0x03"), CreatedAt: time.Now()},
		{GUID: common.HexToHash("0x04"), CreatedAt: time.Now()},
	}).AnyTimes()

	tracked := make(chan int, 1)
	s.mockMetrics.EXPECT().TrackPendingRequests(gomock.Any()).DoAndReturn(
		func(count int) {
			select {
			case tracked <- count:
			default:
			}
		}).AnyTimes()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go jobs.StartStaleRequestJob(ctx, time.Millisecond*10, time.Minute*30, s.mockRefunder, s.mockLedger, s.mockMetrics)

	select {
	case count := <-tracked:
		s.Equal(2, count)
	case <-time.After(time.Second):
		s.Fail("pending request count was not tracked")
	}
}
