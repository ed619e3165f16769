package bridge_test

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/suite"

	"github.com/omnivault/vault-accounting/bridge"
)

type ActionTestSuite struct {
	suite.Suite
}

func TestRunActionTestSuite(t *testing.T) {
	suite.Run(t, new(ActionTestSuite))
}

func (s *ActionTestSuite) Test_DecodeOwnedCall() {
	owner := common.HexToAddress("0xbe526bA5d1ad94cC59D7A79d99A59F607d31A657")
	receiver := common.HexToAddress("0xde526bA5d1ad94cC59D7A79d99A59F607d31A657")
	data, err := bridge.OwnedCall{Amount: e(100, 18), Receiver: receiver, Owner: owner}.Encode()
	s.Nil(err)

	call, err := bridge.DecodeOwnedCall(data)

	s.Nil(err)
	s.Equal(e(100, 18), call.Amount)
	s.Equal(receiver, call.Receiver)
	s.Equal(owner, call.Owner)
}

func (s *ActionTestSuite) Test_DecodeOwnedCall_TruncatedData() {
	_, err := bridge.DecodeOwnedCall([]byte{0x01, 0x02})

	s.NotNil(err)
}
