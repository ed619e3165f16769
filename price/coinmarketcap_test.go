package price_test

import (
	"context"
	"fmt"
	"math/big"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/suite"

	"github.com/omnivault/vault-accounting/price"
)

type CoinmarketcapAPITestSuite struct {
	suite.Suite
	api        *price.CoinmarketcapAPI
	testServer *httptest.Server

	asset       common.Address
	lastUpdated time.Time
}

func TestRunCoinmarketcapAPITestSuite(t *testing.T) {
	suite.Run(t, new(CoinmarketcapAPITestSuite))
}

func (s *CoinmarketcapAPITestSuite) SetupTest() {
	s.asset = common.HexToAddress("0xc02aaa39b223fe8d0a0e5c4f27ead9083c756cc2")
	s.lastUpdated = time.Now()

	// Mock server to simulate CoinMarketCap API responses
	s.testServer = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/v1/cryptocurrency/quotes/latest" && r.URL.Query().Get("symbol") == "ETH" {
			w.WriteHeader(http.StatusOK)
			fmt.Fprintf(w, `{
				"status": {"error_code": 0},
				"data": {"ETH": {"quote": {"USD": {
					"price": 2000.00,
					"last_updated": %q
				}}}}
			}`, s.lastUpdated.Format(time.RFC3339))
			return
		}

		w.WriteHeader(http.StatusBadRequest)
	}))

	s.api = price.NewCoinmarketcapAPI(
		s.testServer.URL,
		"test-api-key",
		time.Hour,
		map[common.Address]string{
			s.asset: "ETH",
		})
}

func (s *CoinmarketcapAPITestSuite) TearDownTest() {
	s.testServer.Close()
}

func (s *CoinmarketcapAPITestSuite) Test_Price_Success() {
	p, err := s.api.Price(context.Background(), s.asset)

	s.Nil(err)
	s.Equal(big.NewInt(2000e8), p.Value)
}

func (s *CoinmarketcapAPITestSuite) Test_Price_UnknownAsset() {
	_, err := s.api.Price(context.Background(), common.HexToAddress("0x82af49447d8a07e3bd95bd0d56f35241523fbab1"))

	s.NotNil(err)
}

func (s *CoinmarketcapAPITestSuite) Test_Price_Stale() {
	s.lastUpdated = time.Now().Add(-2 * time.Hour)

	_, err := s.api.Price(context.Background(), s.asset)

	var stale *price.StalePriceError
	s.ErrorAs(err, &stale)
}
