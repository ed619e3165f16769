package handlers_test

import (
	"encoding/json"
	"fmt"
	"math/big"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/omnivault/vault-accounting/api/handlers"
	mock_handlers "github.com/omnivault/vault-accounting/api/handlers/mock"
	"github.com/omnivault/vault-accounting/bridge"
)

type StatusHandlerTestSuite struct {
	suite.Suite

	mockCache *mock_handlers.MockOutcomeCacher
	handler   *handlers.StatusHandler
}

func TestRunStatusHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(StatusHandlerTestSuite))
}

func (s *StatusHandlerTestSuite) SetupTest() {
	ctrl := gomock.NewController(s.T())

	chains := make(map[uint64]struct{})
	chains[1] = struct{}{}

	s.mockCache = mock_handlers.NewMockOutcomeCacher(ctrl)
	s.handler = handlers.NewStatusHandler(s.mockCache, chains)
}

func (s *StatusHandlerTestSuite) Test_HandleRequest_InvalidChainID() {
	req := httptest.NewRequest(http.MethodGet, "/v1/vaults/1/requests/0x01", nil)
	req = mux.SetURLVars(req, map[string]string{
		"chainId": "invalid",
	})

	recorder := httptest.NewRecorder()
	s.handler.HandleRequest(recorder, req)

	s.Equal(http.StatusBadRequest, recorder.Code)
}

func (s *StatusHandlerTestSuite) Test_HandleRequest_ChainNotSupported() {
	req := httptest.NewRequest(http.MethodGet, "/v1/vaults/2/requests/0x01", nil)
	req = mux.SetURLVars(req, map[string]string{
		"chainId":   "2",
		"requestId": "0x01",
	})

	recorder := httptest.NewRecorder()
	s.handler.HandleRequest(recorder, req)

	s.Equal(http.StatusNotFound, recorder.Code)
}

func (s *StatusHandlerTestSuite) Test_HandleRequest_StreamsOutcome() {
	guid := common.HexToHash("0x93a9d0b1efd04532b1ee8b1bb9e79cc306e60d6aa3c44c77582d0c0fbeb85e2f")
	expectedOutcome := &bridge.RequestOutcome{
		GUID:       guid,
		ActionType: bridge.DepositAction,
		Amount:     big.NewInt(100),
	}
	s.mockCache.EXPECT().Subscribe(gomock.Any(), guid, gomock.Any()).Do(
		func(ctx interface{}, guid common.Hash, outcomeChn chan *bridge.RequestOutcome) {
			outcomeChn <- expectedOutcome
		})

	req := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/v1/vaults/1/requests/%s", guid.Hex()), nil)
	req = mux.SetURLVars(req, map[string]string{
		"chainId":   "1",
		"requestId": guid.Hex(),
	})

	recorder := httptest.NewRecorder()
	s.handler.HandleRequest(recorder, req)

	s.Equal("text/event-stream", recorder.Header().Get("Content-Type"))

	expectedData, _ := json.Marshal(expectedOutcome)
	s.Equal(fmt.Sprintf("data: %s\n\n", expectedData), recorder.Body.String())
}

type InfoHandlerTestSuite struct {
	suite.Suite

	mockReader *mock_handlers.MockRequestReader
	handler    *handlers.InfoHandler
}

func TestRunInfoHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(InfoHandlerTestSuite))
}

func (s *InfoHandlerTestSuite) SetupTest() {
	ctrl := gomock.NewController(s.T())

	s.mockReader = mock_handlers.NewMockRequestReader(ctrl)
	s.handler = handlers.NewInfoHandler(map[uint64]handlers.RequestReader{
		1: s.mockReader,
	})
}

func (s *InfoHandlerTestSuite) Test_HandleRequest_ChainNotSupported() {
	req := httptest.NewRequest(http.MethodGet, "/v1/vaults/2/requests/0x01/info", nil)
	req = mux.SetURLVars(req, map[string]string{
		"chainId":   "2",
		"requestId": "0x01",
	})

	recorder := httptest.NewRecorder()
	s.handler.HandleRequest(recorder, req)

	s.Equal(http.StatusNotFound, recorder.Code)
}

func (s *InfoHandlerTestSuite) Test_HandleRequest_RequestNotFound() {
	s.mockReader.EXPECT().RequestInfo(gomock.Any()).Return(nil, fmt.Errorf("request not found"))

	req := httptest.NewRequest(http.MethodGet, "/v1/vaults/1/requests/0x01/info", nil)
	req = mux.SetURLVars(req, map[string]string{
		"chainId":   "1",
		"requestId": "0x01",
	})

	recorder := httptest.NewRecorder()
	s.handler.HandleRequest(recorder, req)

	s.Equal(http.StatusNotFound, recorder.Code)
}

func (s *InfoHandlerTestSuite) Test_HandleRequest_ReturnsLedgerState() {
	guid := common.HexToHash("0x93a9d0b1efd04532b1ee8b1bb9e79cc306e60d6aa3c44c77582d0c0fbeb85e2f")
	s.mockReader.EXPECT().RequestInfo(guid).Return(&bridge.RequestInfo{
		GUID:         guid,
		Initiator:    common.HexToAddress("0x5ECF7351930e4A251193aA022Ef06249C6cBfa27"),
		ActionType:   bridge.WithdrawAction,
		MinAmountOut: big.NewInt(50),
		Fulfilled:    true,
		CreatedAt:    time.Now(),
	}, nil)

	req := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/v1/vaults/1/requests/%s/info", guid.Hex()), nil)
	req = mux.SetURLVars(req, map[string]string{
		"chainId":   "1",
		"requestId": guid.Hex(),
	})

	recorder := httptest.NewRecorder()
	s.handler.HandleRequest(recorder, req)

	s.Equal(http.StatusOK, recorder.Code)

	resp := &handlers.RequestInfoResponse{}
	err := json.Unmarshal(recorder.Body.Bytes(), resp)
	s.Nil(err)
	s.Equal(guid.Hex(), resp.RequestId)
	s.Equal("Withdraw", resp.Action)
	s.Equal(big.NewInt(50), resp.MinAmountOut.Int)
	s.True(resp.Fulfilled)
	s.False(resp.Finalized)
}
