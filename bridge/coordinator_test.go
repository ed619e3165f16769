package bridge_test

import (
	"context"
	"fmt"
	"math/big"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/omnivault/vault-accounting/bridge"
	mock_bridge "github.com/omnivault/vault-accounting/bridge/mock"
	"github.com/omnivault/vault-accounting/price"
	"github.com/omnivault/vault-accounting/topology"
)

type memKV struct {
	data map[string][]byte
}

func newMemKV() *memKV {
	return &memKV{data: make(map[string][]byte)}
}

func (m *memKV) GetByKey(key []byte) ([]byte, error) {
	data, ok := m.data[string(key)]
	if !ok {
		return nil, fmt.Errorf("key not found")
	}

	return data, nil
}

func (m *memKV) SetByKey(key []byte, value []byte) error {
	m.data[string(key)] = value
	return nil
}

func e(base int64, decimals int64) *big.Int {
	return new(big.Int).Mul(big.NewInt(base), new(big.Int).Exp(big.NewInt(10), big.NewInt(decimals), nil))
}

type CoordinatorTestSuite struct {
	suite.Suite

	mockVault      *mock_bridge.MockVault
	mockDispatcher *mock_bridge.MockReadDispatcher
	mockOracle     *mock_bridge.MockAssetOracle
	mockSpokeFeeds *mock_bridge.MockSpokeFeeds
	mockTopology   *mock_bridge.MockTopology
	mockMetrics    *mock_bridge.MockRequestMetrics

	coordinator *bridge.Coordinator
	outcomeChn  chan *bridge.RequestOutcome

	vaultAddr common.Address
	assetAddr common.Address
	manager   common.Address
	initiator common.Address
	receiver  common.Address
}

func TestRunCoordinatorTestSuite(t *testing.T) {
	suite.Run(t, new(CoordinatorTestSuite))
}

func (s *CoordinatorTestSuite) SetupTest() {
	ctrl := gomock.NewController(s.T())

	s.vaultAddr = common.HexToAddress("0x5c7BCd6E7De5423a257D81B442095A1a6ced35C5")
	s.assetAddr = common.HexToAddress("0xC02aaA39b223FE8D0A0e5C4F27eAD9083C756Cc2")
	s.manager = common.HexToAddress("0x1886a1EB051C10F20C7386576A6a0716B20b2734")
	s.initiator = common.HexToAddress("0xbe526bA5d1ad94cC59D7A79d99A59F607d31A657")
	s.receiver = common.HexToAddress("0xde526bA5d1ad94cC59D7A79d99A59F607d31A657")

	s.mockVault = mock_bridge.NewMockVault(ctrl)
	s.mockVault.EXPECT().Address().Return(s.vaultAddr).AnyTimes()
	s.mockVault.EXPECT().Asset().Return(s.assetAddr).AnyTimes()
	s.mockVault.EXPECT().AssetDecimals().Return(uint8(18)).AnyTimes()

	s.mockDispatcher = mock_bridge.NewMockReadDispatcher(ctrl)
	s.mockOracle = mock_bridge.NewMockAssetOracle(ctrl)
	s.mockSpokeFeeds = mock_bridge.NewMockSpokeFeeds(ctrl)
	s.mockTopology = mock_bridge.NewMockTopology(ctrl)
	s.mockMetrics = mock_bridge.NewMockRequestMetrics(ctrl)

	s.outcomeChn = make(chan *bridge.RequestOutcome, 1)
	s.coordinator = bridge.NewCoordinator(
		1,
		s.mockVault,
		bridge.NewRequestStore(newMemKV()),
		s.mockDispatcher,
		s.mockOracle,
		s.mockSpokeFeeds,
		s.mockTopology,
		s.manager,
		s.mockMetrics,
		s.outcomeChn,
	)
}

func (s *CoordinatorTestSuite) initRequest(
	action bridge.ActionType,
	encodedCall []byte,
	minAmountOut *big.Int,
	snapshot *big.Int,
) common.Hash {
	guid := common.HexToHash("0x93a9d5e32f5c81cbd17ceb842edc65002e3a79da4efbdc9f1e1f7e97fbcd669b")

	s.mockDispatcher.EXPECT().QuoteValueRead(uint64(1), s.vaultAddr).Return(big.NewInt(100), nil)
	s.mockVault.EXPECT().TotalAssets(gomock.Any()).Return(snapshot, nil)
	s.mockDispatcher.EXPECT().DispatchValueRead(
		gomock.Any(), uint64(1), s.vaultAddr, s.initiator, action, big.NewInt(100),
	).Return(guid, nil)
	s.mockMetrics.EXPECT().StartRequest(guid)

	_, err := s.coordinator.InitVaultActionRequest(
		context.Background(), s.initiator, action, encodedCall, minAmountOut, big.NewInt(100),
	)
	s.Nil(err)

	return guid
}

func (s *CoordinatorTestSuite) fulfill(guid common.Hash, aggregatedUsd *big.Int) {
	s.mockOracle.EXPECT().Price(gomock.Any(), s.assetAddr).Return(&price.Price{
		Value:     e(2, 8),
		UpdatedAt: time.Now(),
	}, nil)

	err := s.coordinator.UpdateAccountingInfoForRequest(context.Background(), s.manager, guid, aggregatedUsd, true)
	s.Nil(err)
}

func (s *CoordinatorTestSuite) Test_InitVaultActionRequest_InsideMulticall() {
	ctx := bridge.WithBatchMode(context.Background())

	_, err := s.coordinator.InitVaultActionRequest(
		ctx, s.initiator, bridge.DepositAction, []byte{}, big.NewInt(0), big.NewInt(100),
	)

	s.ErrorIs(err, bridge.ErrActionInMulticall)
}

func (s *CoordinatorTestSuite) Test_InitVaultActionRequest_OracleAccountingEnabled() {
	s.mockTopology.EXPECT().Spokes(uint64(1), s.vaultAddr).Return([]topology.Spoke{{Eid: 40161}})
	s.mockSpokeFeeds.EXPECT().HasFeed(uint32(40161)).Return(true)
	s.Nil(s.coordinator.SetOraclesCrossChainAccounting(true))

	_, err := s.coordinator.InitVaultActionRequest(
		context.Background(), s.initiator, bridge.DepositAction, []byte{}, big.NewInt(0), big.NewInt(100),
	)

	s.ErrorIs(err, bridge.ErrAccountingViaOracles)
}

func (s *CoordinatorTestSuite) Test_InitVaultActionRequest_NotEnoughFee() {
	s.mockDispatcher.EXPECT().QuoteValueRead(uint64(1), s.vaultAddr).Return(big.NewInt(100), nil)

	_, err := s.coordinator.InitVaultActionRequest(
		context.Background(), s.initiator, bridge.DepositAction, []byte{}, big.NewInt(0), big.NewInt(50),
	)

	feeErr := &bridge.NotEnoughFeeError{}
	s.ErrorAs(err, &feeErr)
	s.Equal(big.NewInt(100), feeErr.Quoted)
	s.Empty(s.coordinator.PendingRequests())
}

func (s *CoordinatorTestSuite) Test_InitVaultActionRequest_Successful() {
	call, _ := bridge.AmountCall{Amount: e(100, 18), Receiver: s.receiver}.Encode()
	guid := s.initRequest(bridge.DepositAction, call, e(50, 18), e(1000, 18))

	r, err := s.coordinator.RequestInfo(guid)
	s.Nil(err)
	s.Equal(e(1000, 18), r.TotalAssetsSnapshot)
	s.False(r.Fulfilled)
	s.False(r.Finalized)
	s.Len(s.coordinator.PendingRequests(), 1)
}

func (s *CoordinatorTestSuite) Test_UpdateAccountingInfoForRequest_InvalidCaller() {
	err := s.coordinator.UpdateAccountingInfoForRequest(
		context.Background(), s.initiator, common.Hash{}, e(1000, 8), true,
	)

	s.ErrorIs(err, bridge.ErrOnlyAccountingManager)
}

func (s *CoordinatorTestSuite) Test_UpdateAccountingInfoForRequest_FailedRead() {
	call, _ := bridge.AmountCall{Amount: e(100, 18), Receiver: s.receiver}.Encode()
	guid := s.initRequest(bridge.DepositAction, call, e(50, 18), e(1000, 18))

	err := s.coordinator.UpdateAccountingInfoForRequest(context.Background(), s.manager, guid, nil, false)
	s.Nil(err)

	r, err := s.coordinator.RequestInfo(guid)
	s.Nil(err)
	s.False(r.Fulfilled)
	s.Equal(e(1000, 18), r.TotalAssetsSnapshot)
}

func (s *CoordinatorTestSuite) Test_UpdateAccountingInfoForRequest_Successful() {
	call, _ := bridge.AmountCall{Amount: e(100, 18), Receiver: s.receiver}.Encode()
	guid := s.initRequest(bridge.DepositAction, call, e(50, 18), e(1000, 18))

	// 1000 USD of spoke value at a 2 USD asset price adds 500 units
	s.fulfill(guid, e(1000, 8))

	r, err := s.coordinator.RequestInfo(guid)
	s.Nil(err)
	s.True(r.Fulfilled)
	s.Equal(e(1500, 18), r.TotalAssetsSnapshot)
}

func (s *CoordinatorTestSuite) Test_UpdateAccountingInfoForRequest_AlreadyFulfilled() {
	call, _ := bridge.AmountCall{Amount: e(100, 18), Receiver: s.receiver}.Encode()
	guid := s.initRequest(bridge.DepositAction, call, e(50, 18), e(1000, 18))
	s.fulfill(guid, e(1000, 8))

	s.mockOracle.EXPECT().Price(gomock.Any(), s.assetAddr).Return(&price.Price{
		Value:     e(2, 8),
		UpdatedAt: time.Now(),
	}, nil)
	err := s.coordinator.UpdateAccountingInfoForRequest(context.Background(), s.manager, guid, e(1000, 8), true)

	s.ErrorIs(err, bridge.ErrRequestAlreadyFulfilled)

	r, _ := s.coordinator.RequestInfo(guid)
	s.Equal(e(1500, 18), r.TotalAssetsSnapshot)
}

func (s *CoordinatorTestSuite) Test_ExecuteRequest_NotFound() {
	_, err := s.coordinator.ExecuteRequest(context.Background(), common.Hash{})

	s.ErrorIs(err, bridge.ErrRequestNotFound)
}

func (s *CoordinatorTestSuite) Test_ExecuteRequest_NotFulfilled() {
	call, _ := bridge.AmountCall{Amount: e(100, 18), Receiver: s.receiver}.Encode()
	guid := s.initRequest(bridge.DepositAction, call, e(50, 18), e(1000, 18))

	_, err := s.coordinator.ExecuteRequest(context.Background(), guid)

	s.ErrorIs(err, bridge.ErrRequestNotFulfilled)
}

func (s *CoordinatorTestSuite) Test_ExecuteRequest_Deposit() {
	call, _ := bridge.AmountCall{Amount: e(100, 18), Receiver: s.receiver}.Encode()
	guid := s.initRequest(bridge.DepositAction, call, e(50, 18), big.NewInt(0))
	s.fulfill(guid, big.NewInt(0))

	s.mockVault.EXPECT().TotalSupply(gomock.Any()).Return(big.NewInt(0), nil)
	s.mockVault.EXPECT().Deposit(gomock.Any(), e(100, 18), s.receiver).Return(nil)
	s.mockMetrics.EXPECT().FinalizeRequest(guid)

	_, err := s.coordinator.ExecuteRequest(context.Background(), guid)
	s.Nil(err)

	outcome := <-s.outcomeChn
	s.Equal(guid, outcome.GUID)
	s.Equal(bridge.DepositAction, outcome.ActionType)
	s.Equal(e(100, 18), outcome.Amount)

	r, _ := s.coordinator.RequestInfo(guid)
	s.True(r.Finalized)
}

func (s *CoordinatorTestSuite) Test_ExecuteRequest_AlreadyFinalized() {
	call, _ := bridge.AmountCall{Amount: e(100, 18), Receiver: s.receiver}.Encode()
	guid := s.initRequest(bridge.DepositAction, call, e(50, 18), big.NewInt(0))
	s.fulfill(guid, big.NewInt(0))

	s.mockVault.EXPECT().TotalSupply(gomock.Any()).Return(big.NewInt(0), nil)
	s.mockVault.EXPECT().Deposit(gomock.Any(), e(100, 18), s.receiver).Return(nil)
	s.mockMetrics.EXPECT().FinalizeRequest(guid)
	_, err := s.coordinator.ExecuteRequest(context.Background(), guid)
	s.Nil(err)

	_, err = s.coordinator.ExecuteRequest(context.Background(), guid)

	s.ErrorIs(err, bridge.ErrRequestAlreadyFinalized)
}

func (s *CoordinatorTestSuite) Test_ExecuteRequest_VaultFailureReleasesClaim() {
	call, _ := bridge.AmountCall{Amount: e(100, 18), Receiver: s.receiver}.Encode()
	guid := s.initRequest(bridge.DepositAction, call, e(50, 18), big.NewInt(0))
	s.fulfill(guid, big.NewInt(0))

	s.mockVault.EXPECT().TotalSupply(gomock.Any()).Return(big.NewInt(0), nil)
	s.mockVault.EXPECT().Deposit(gomock.Any(), e(100, 18), s.receiver).Return(fmt.Errorf("execution reverted"))
	_, err := s.coordinator.ExecuteRequest(context.Background(), guid)
	s.NotNil(err)

	r, _ := s.coordinator.RequestInfo(guid)
	s.False(r.Finalized)

	s.mockVault.EXPECT().TotalSupply(gomock.Any()).Return(big.NewInt(0), nil)
	s.mockVault.EXPECT().Deposit(gomock.Any(), e(100, 18), s.receiver).Return(nil)
	s.mockMetrics.EXPECT().FinalizeRequest(guid)
	_, err = s.coordinator.ExecuteRequest(context.Background(), guid)
	s.Nil(err)

	r, _ = s.coordinator.RequestInfo(guid)
	s.True(r.Finalized)
}

func (s *CoordinatorTestSuite) Test_ExecuteRequest_SlippageRetry() {
	call, _ := bridge.AmountCall{Amount: e(100, 18), Receiver: s.receiver}.Encode()
	guid := s.initRequest(bridge.DepositAction, call, e(150, 18), big.NewInt(0))
	s.fulfill(guid, big.NewInt(0))

	s.mockVault.EXPECT().TotalSupply(gomock.Any()).Return(big.NewInt(0), nil)
	_, err := s.coordinator.ExecuteRequest(context.Background(), guid)

	slippageErr := &bridge.SlippageError{}
	s.ErrorAs(err, &slippageErr)
	s.Equal(e(100, 18), slippageErr.Actual)

	r, _ := s.coordinator.RequestInfo(guid)
	s.True(r.Fulfilled)
	s.False(r.Finalized)

	err = s.coordinator.UpdateRequestSlippage(s.receiver, guid, e(100, 18))
	s.ErrorIs(err, bridge.ErrOnlyInitiator)

	s.Nil(s.coordinator.UpdateRequestSlippage(s.initiator, guid, e(100, 18)))

	s.mockVault.EXPECT().TotalSupply(gomock.Any()).Return(big.NewInt(0), nil)
	s.mockVault.EXPECT().Deposit(gomock.Any(), e(100, 18), s.receiver).Return(nil)
	s.mockMetrics.EXPECT().FinalizeRequest(guid)
	outcome, err := s.coordinator.ExecuteRequest(context.Background(), guid)
	s.Nil(err)
	s.Equal(e(100, 18), outcome.Amount)
}

func (s *CoordinatorTestSuite) Test_ExecuteRequest_WithdrawRoundsAgainstCaller() {
	call, _ := bridge.OwnedCall{Amount: e(100, 18), Receiver: s.receiver, Owner: s.initiator}.Encode()
	guid := s.initRequest(bridge.WithdrawAction, call, e(40, 18), e(1000, 18))

	// spoke value doubles the snapshot, 100 assets burn 50 shares
	s.fulfill(guid, e(2000, 8))

	s.mockVault.EXPECT().TotalSupply(gomock.Any()).Return(e(1000, 18), nil)
	_, err := s.coordinator.ExecuteRequest(context.Background(), guid)

	slippageErr := &bridge.SlippageError{}
	s.ErrorAs(err, &slippageErr)
	s.Equal(e(50, 18), slippageErr.Actual)

	s.Nil(s.coordinator.UpdateRequestSlippage(s.initiator, guid, e(60, 18)))

	s.mockVault.EXPECT().TotalSupply(gomock.Any()).Return(e(1000, 18), nil)
	s.mockVault.EXPECT().Withdraw(gomock.Any(), e(100, 18), s.receiver, s.initiator).Return(nil)
	s.mockMetrics.EXPECT().FinalizeRequest(guid)
	outcome, err := s.coordinator.ExecuteRequest(context.Background(), guid)
	s.Nil(err)
	s.Equal(e(50, 18), outcome.Amount)
}

func (s *CoordinatorTestSuite) Test_SetOraclesCrossChainAccounting_MissingFeed() {
	s.mockTopology.EXPECT().Spokes(uint64(1), s.vaultAddr).Return([]topology.Spoke{
		{Eid: 40161},
		{Eid: 40232},
	})
	s.mockSpokeFeeds.EXPECT().HasFeed(uint32(40161)).Return(true)
	s.mockSpokeFeeds.EXPECT().HasFeed(uint32(40232)).Return(false)

	err := s.coordinator.SetOraclesCrossChainAccounting(true)

	oracleErr := &bridge.NoOracleForSpokeError{}
	s.ErrorAs(err, &oracleErr)
	s.Equal(uint32(40232), oracleErr.Eid)
	s.False(s.coordinator.OraclesCrossChainAccounting())
}

func (s *CoordinatorTestSuite) Test_SetOraclesCrossChainAccounting_Toggle() {
	// disabling an already disabled mode is a no-op
	s.Nil(s.coordinator.SetOraclesCrossChainAccounting(false))

	s.mockTopology.EXPECT().Spokes(uint64(1), s.vaultAddr).Return([]topology.Spoke{{Eid: 40161}})
	s.mockSpokeFeeds.EXPECT().HasFeed(uint32(40161)).Return(true)
	s.Nil(s.coordinator.SetOraclesCrossChainAccounting(true))
	s.True(s.coordinator.OraclesCrossChainAccounting())

	err := s.coordinator.SetOraclesCrossChainAccounting(true)
	s.ErrorIs(err, bridge.ErrAlreadySet)

	s.Nil(s.coordinator.SetOraclesCrossChainAccounting(false))
	s.False(s.coordinator.OraclesCrossChainAccounting())
}

func (s *CoordinatorTestSuite) Test_Accounting_ReadsMode() {
	_, _, err := s.coordinator.Accounting(context.Background())

	s.ErrorIs(err, bridge.ErrAccountingViaReads)
}

func (s *CoordinatorTestSuite) Test_Accounting_SumsSpokeFeeds() {
	ctrl := gomock.NewController(s.T())
	feedA := mock_bridge.NewMockValueFeed(ctrl)
	feedB := mock_bridge.NewMockValueFeed(ctrl)

	s.mockTopology.EXPECT().Spokes(uint64(1), s.vaultAddr).Return([]topology.Spoke{
		{Eid: 40161},
		{Eid: 40232},
	}).Times(2)
	s.mockSpokeFeeds.EXPECT().HasFeed(gomock.Any()).Return(true).Times(2)
	s.Nil(s.coordinator.SetOraclesCrossChainAccounting(true))

	s.mockSpokeFeeds.EXPECT().Feed(uint32(40161)).Return(feedA, nil)
	s.mockSpokeFeeds.EXPECT().Feed(uint32(40232)).Return(feedB, nil)
	feedA.EXPECT().Value(gomock.Any()).Return(e(600, 8), nil)
	feedB.EXPECT().Value(gomock.Any()).Return(e(400, 8), nil)
	s.mockOracle.EXPECT().Price(gomock.Any(), s.assetAddr).Return(&price.Price{
		Value:     e(2, 8),
		UpdatedAt: time.Now(),
	}, nil)

	value, positive, err := s.coordinator.Accounting(context.Background())

	s.Nil(err)
	s.True(positive)
	s.Equal(e(500, 18), value)
}
