package composer_test

import (
	"context"
	"fmt"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/omnivault/vault-accounting/bridge"
	"github.com/omnivault/vault-accounting/composer"
	mock_composer "github.com/omnivault/vault-accounting/composer/mock"
	"github.com/omnivault/vault-accounting/messaging"
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

type ComposerTestSuite struct {
	suite.Suite

	mockVault       *mock_composer.MockVault
	mockMover       *mock_composer.MockTokenMover
	mockCoordinator *mock_composer.MockRequestInitiator
	mockBridge      *mock_composer.MockBridge
	mockTopology    *mock_composer.MockTopology
	mockMetrics     *mock_composer.MockDepositMetrics

	composer *composer.Composer
	deposits *composer.DepositStore

	composerAddr common.Address
	vaultAddr    common.Address
	assetAddr    common.Address
	oftAddr      common.Address
	shareOFT     common.Address
	depositor    common.Address
	receiver     common.Address
	guid         common.Hash
}

func TestRunComposerTestSuite(t *testing.T) {
	suite.Run(t, new(ComposerTestSuite))
}

func (s *ComposerTestSuite) SetupTest() {
	ctrl := gomock.NewController(s.T())

	s.composerAddr = common.HexToAddress("0x1886a1EB051C10F20C7386576A6a0716B20b2734")
	s.vaultAddr = common.HexToAddress("0x5c7BCd6E7De5423a257D81B442095A1a6ced35C5")
	s.assetAddr = common.HexToAddress("0xC02aaA39b223FE8D0A0e5C4F27eAD9083C756Cc2")
	s.oftAddr = common.HexToAddress("0x01")
	s.shareOFT = common.HexToAddress("0x02")
	s.depositor = common.HexToAddress("0xbe526bA5d1ad94cC59D7A79d99A59F607d31A657")
	s.receiver = common.HexToAddress("0xde526bA5d1ad94cC59D7A79d99A59F607d31A657")
	s.guid = common.HexToHash("0x93a9d5e32f5c81cbd17ceb842edc65002e3a79da4efbdc9f1e1f7e97fbcd669b")

	s.mockVault = mock_composer.NewMockVault(ctrl)
	s.mockVault.EXPECT().Asset().Return(s.assetAddr).AnyTimes()
	s.mockMover = mock_composer.NewMockTokenMover(ctrl)
	s.mockCoordinator = mock_composer.NewMockRequestInitiator(ctrl)
	s.mockBridge = mock_composer.NewMockBridge(ctrl)
	s.mockTopology = mock_composer.NewMockTopology(ctrl)
	s.mockMetrics = mock_composer.NewMockDepositMetrics(ctrl)

	s.deposits = composer.NewDepositStore(newMemKV())
	s.composer = composer.NewComposer(
		1,
		30101,
		s.composerAddr,
		s.mockVault,
		s.mockMover,
		s.mockCoordinator,
		s.mockBridge,
		s.mockTopology,
		s.deposits,
		s.mockMetrics,
	)
}

func (s *ComposerTestSuite) payload(dstEid uint32, minReadFee *big.Int) []byte {
	data, err := composer.ComposePayload{
		Vault:        s.vaultAddr,
		Receiver:     s.receiver,
		DstEid:       dstEid,
		ShareOFT:     s.shareOFT,
		MinAmountOut: e(50, 18),
		MinReadFee:   minReadFee,
	}.Encode()
	s.Nil(err)
	return data
}

func (s *ComposerTestSuite) registerHubDeposit() {
	s.mockBridge.EXPECT().IsTrustedOFT(s.oftAddr).Return(true)
	s.mockTopology.EXPECT().IsCrossChainVault(uint64(1), s.vaultAddr).Return(true)
	s.mockBridge.EXPECT().QuoteValueRead(uint64(1), s.vaultAddr).Return(big.NewInt(120), nil)
	s.mockCoordinator.EXPECT().InitVaultActionRequest(
		gomock.Any(), s.composerAddr, bridge.DepositAction, gomock.Any(), e(50, 18), big.NewInt(120),
	).Return(s.guid, nil)

	err := s.composer.HandleCompose(
		context.Background(), s.oftAddr, s.depositor, 8453,
		s.payload(30101, big.NewInt(100)), e(100, 18), big.NewInt(200),
	)
	s.Nil(err)
}

func (s *ComposerTestSuite) Test_HandleCompose_UntrustedOFT() {
	s.mockBridge.EXPECT().IsTrustedOFT(s.oftAddr).Return(false)

	err := s.composer.HandleCompose(
		context.Background(), s.oftAddr, s.depositor, 8453,
		s.payload(30101, big.NewInt(100)), e(100, 18), big.NewInt(200),
	)

	untrustedErr := &messaging.UntrustedOFTError{}
	s.ErrorAs(err, &untrustedErr)
	s.Empty(s.composer.PendingDeposits())
}

func (s *ComposerTestSuite) Test_HandleCompose_InvalidPayload() {
	s.mockBridge.EXPECT().IsTrustedOFT(s.oftAddr).Return(true)
	s.mockMetrics.EXPECT().DepositRefunded()
	s.mockMover.EXPECT().TransferAsset(gomock.Any(), s.assetAddr, s.depositor, e(100, 18)).Return(nil)
	s.mockMover.EXPECT().RefundNative(gomock.Any(), s.depositor, big.NewInt(200)).Return(nil)

	err := s.composer.HandleCompose(
		context.Background(), s.oftAddr, s.depositor, 8453,
		[]byte{0x01, 0x02}, e(100, 18), big.NewInt(200),
	)

	s.NotNil(err)
	s.Empty(s.composer.PendingDeposits())
}

func (s *ComposerTestSuite) Test_HandleCompose_LocalWithMsgValue() {
	s.mockBridge.EXPECT().IsTrustedOFT(s.oftAddr).Return(true)
	s.mockTopology.EXPECT().IsCrossChainVault(uint64(1), s.vaultAddr).Return(false)
	s.mockMetrics.EXPECT().DepositRefunded()
	s.mockMover.EXPECT().TransferAsset(gomock.Any(), s.assetAddr, s.depositor, e(100, 18)).Return(nil)
	s.mockMover.EXPECT().RefundNative(gomock.Any(), s.depositor, big.NewInt(200)).Return(nil)

	err := s.composer.HandleCompose(
		context.Background(), s.oftAddr, s.depositor, 8453,
		s.payload(30101, big.NewInt(100)), e(100, 18), big.NewInt(200),
	)

	s.ErrorIs(err, composer.ErrNoMsgValueExpected)
}

func (s *ComposerTestSuite) Test_HandleCompose_LocalDeposit() {
	s.mockBridge.EXPECT().IsTrustedOFT(s.oftAddr).Return(true)
	s.mockTopology.EXPECT().IsCrossChainVault(uint64(1), s.vaultAddr).Return(false)
	s.mockVault.EXPECT().Deposit(gomock.Any(), e(100, 18), s.receiver).Return(nil)
	s.mockMetrics.EXPECT().DepositCompleted()

	err := s.composer.HandleCompose(
		context.Background(), s.oftAddr, s.depositor, 8453,
		s.payload(30101, big.NewInt(100)), e(100, 18), big.NewInt(0),
	)

	s.Nil(err)
	s.Empty(s.composer.PendingDeposits())
}

func (s *ComposerTestSuite) Test_HandleCompose_InsufficientMsgValue() {
	s.mockBridge.EXPECT().IsTrustedOFT(s.oftAddr).Return(true)
	s.mockTopology.EXPECT().IsCrossChainVault(uint64(1), s.vaultAddr).Return(true)
	s.mockMetrics.EXPECT().DepositRefunded()
	s.mockMover.EXPECT().TransferAsset(gomock.Any(), s.assetAddr, s.depositor, e(100, 18)).Return(nil)
	s.mockMover.EXPECT().RefundNative(gomock.Any(), s.depositor, big.NewInt(50)).Return(nil)

	err := s.composer.HandleCompose(
		context.Background(), s.oftAddr, s.depositor, 8453,
		s.payload(30101, big.NewInt(100)), e(100, 18), big.NewInt(50),
	)

	feeErr := &composer.InsufficientMsgValueError{}
	s.ErrorAs(err, &feeErr)
	s.Equal(big.NewInt(100), feeErr.Expected)
	s.Empty(s.composer.PendingDeposits())
}

func (s *ComposerTestSuite) Test_HandleCompose_MsgValueBelowQuote() {
	s.mockBridge.EXPECT().IsTrustedOFT(s.oftAddr).Return(true)
	s.mockTopology.EXPECT().IsCrossChainVault(uint64(1), s.vaultAddr).Return(true)
	s.mockBridge.EXPECT().QuoteValueRead(uint64(1), s.vaultAddr).Return(big.NewInt(300), nil)
	s.mockMetrics.EXPECT().DepositRefunded()
	s.mockMover.EXPECT().TransferAsset(gomock.Any(), s.assetAddr, s.depositor, e(100, 18)).Return(nil)
	s.mockMover.EXPECT().RefundNative(gomock.Any(), s.depositor, big.NewInt(200)).Return(nil)

	err := s.composer.HandleCompose(
		context.Background(), s.oftAddr, s.depositor, 8453,
		s.payload(30101, big.NewInt(100)), e(100, 18), big.NewInt(200),
	)

	feeErr := &composer.InsufficientMsgValueError{}
	s.ErrorAs(err, &feeErr)
	s.Equal(big.NewInt(300), feeErr.Expected)
	s.Empty(s.composer.PendingDeposits())
}

func (s *ComposerTestSuite) Test_HandleCompose_HubDeposit() {
	s.registerHubDeposit()

	pending := s.composer.PendingDeposits()
	s.Len(pending, 1)
	s.Equal(s.guid, pending[0].GUID)
	s.Equal(s.depositor, pending[0].Depositor)
	s.Equal(e(100, 18), pending[0].Amount)
	s.Equal(big.NewInt(80), pending[0].AccountingFee)
}

func (s *ComposerTestSuite) Test_CompleteDeposit_NotFound() {
	err := s.composer.CompleteDeposit(context.Background(), s.guid)

	s.ErrorIs(err, composer.ErrDepositNotFound)
}

func (s *ComposerTestSuite) Test_CompleteDeposit_LocalShares() {
	s.registerHubDeposit()

	s.mockCoordinator.EXPECT().ExecuteRequest(gomock.Any(), s.guid).Return(&bridge.RequestOutcome{
		GUID:       s.guid,
		ActionType: bridge.DepositAction,
		Amount:     e(100, 18),
	}, nil)
	s.mockVault.EXPECT().TransferShares(gomock.Any(), s.receiver, e(100, 18)).Return(nil)
	s.mockMetrics.EXPECT().DepositCompleted()

	s.Nil(s.composer.CompleteDeposit(context.Background(), s.guid))
	s.Empty(s.composer.PendingDeposits())

	err := s.composer.CompleteDeposit(context.Background(), s.guid)
	s.ErrorIs(err, composer.ErrDepositNotFound)
}

func (s *ComposerTestSuite) Test_CompleteDeposit_OutboundShares() {
	s.mockBridge.EXPECT().IsTrustedOFT(s.oftAddr).Return(true)
	s.mockTopology.EXPECT().IsCrossChainVault(uint64(1), s.vaultAddr).Return(true)
	s.mockBridge.EXPECT().QuoteValueRead(uint64(1), s.vaultAddr).Return(big.NewInt(120), nil)
	s.mockCoordinator.EXPECT().InitVaultActionRequest(
		gomock.Any(), s.composerAddr, bridge.DepositAction, gomock.Any(), e(50, 18), big.NewInt(120),
	).Return(s.guid, nil)
	s.Nil(s.composer.HandleCompose(
		context.Background(), s.oftAddr, s.depositor, 8453,
		s.payload(40161, big.NewInt(100)), e(100, 18), big.NewInt(200),
	))

	s.mockCoordinator.EXPECT().ExecuteRequest(gomock.Any(), s.guid).Return(&bridge.RequestOutcome{
		GUID:       s.guid,
		ActionType: bridge.DepositAction,
		Amount:     e(100, 18),
	}, nil)
	s.mockTopology.EXPECT().ChainID(uint32(40161)).Return(uint64(8453), true)

	p := messaging.SendParams{
		OFT:       s.shareOFT,
		DstEid:    40161,
		To:        s.receiver,
		Amount:    e(100, 18),
		MinAmount: e(50, 18),
	}
	s.mockBridge.EXPECT().QuoteSend(p).Return(big.NewInt(30), nil)
	s.mockBridge.EXPECT().Send(gomock.Any(), uint64(8453), p, big.NewInt(30)).Return(common.Hash{}, nil)
	s.mockMetrics.EXPECT().DepositCompleted()

	s.Nil(s.composer.CompleteDeposit(context.Background(), s.guid))
	s.Empty(s.composer.PendingDeposits())
}

func (s *ComposerTestSuite) Test_CompleteDeposit_RetryAfterDeliveryFailure() {
	s.registerHubDeposit()

	s.mockCoordinator.EXPECT().ExecuteRequest(gomock.Any(), s.guid).Return(&bridge.RequestOutcome{
		GUID:       s.guid,
		ActionType: bridge.DepositAction,
		Amount:     e(100, 18),
	}, nil)
	s.mockVault.EXPECT().TransferShares(gomock.Any(), s.receiver, e(100, 18)).Return(fmt.Errorf("error"))

	err := s.composer.CompleteDeposit(context.Background(), s.guid)
	s.NotNil(err)

	// the retry delivers without executing the request again
	s.mockVault.EXPECT().TransferShares(gomock.Any(), s.receiver, e(100, 18)).Return(nil)
	s.mockMetrics.EXPECT().DepositCompleted()
	s.Nil(s.composer.CompleteDeposit(context.Background(), s.guid))
}

func (s *ComposerTestSuite) Test_RefundDeposit_ExactlyOnce() {
	s.registerHubDeposit()

	s.mockMetrics.EXPECT().DepositRefunded()
	s.mockMover.EXPECT().TransferAsset(gomock.Any(), s.assetAddr, s.depositor, e(100, 18)).Return(nil)
	s.mockMover.EXPECT().RefundNative(gomock.Any(), s.depositor, big.NewInt(80)).Return(nil)

	s.Nil(s.composer.RefundDeposit(context.Background(), s.guid))

	err := s.composer.RefundDeposit(context.Background(), s.guid)
	s.ErrorIs(err, composer.ErrDepositNotFound)
}

func (s *ComposerTestSuite) Test_RefundDeposit_AfterExecution() {
	s.registerHubDeposit()

	s.mockCoordinator.EXPECT().ExecuteRequest(gomock.Any(), s.guid).Return(&bridge.RequestOutcome{
		GUID:       s.guid,
		ActionType: bridge.DepositAction,
		Amount:     e(100, 18),
	}, nil)
	s.mockVault.EXPECT().TransferShares(gomock.Any(), s.receiver, e(100, 18)).Return(fmt.Errorf("error"))
	s.NotNil(s.composer.CompleteDeposit(context.Background(), s.guid))

	err := s.composer.RefundDeposit(context.Background(), s.guid)
	s.NotNil(err)
	s.NotErrorIs(err, composer.ErrDepositNotFound)
}
