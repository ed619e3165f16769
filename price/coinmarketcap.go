package price

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math/big"
	"net/http"
	"time"

	"github.com/ethereum/go-ethereum/common"
)

type CoinmarketcapResponse struct {
	Status struct {
		ErrorCode    int    `json:"error_code"`
		ErrorMessage string `json:"error_message"`
	} `json:"status"`
	Data map[string]struct {
		Quote struct {
			USD struct {
				Price       float64   `json:"price"`
				LastUpdated time.Time `json:"last_updated"`
			} `json:"USD"`
		} `json:"quote"`
	} `json:"data"`
}

// CoinmarketcapAPI is the fallback asset oracle for assets without an
// on-chain feed. Symbols are resolved through the configured token store.
type CoinmarketcapAPI struct {
	url     string
	apiKey  string
	maxAge  time.Duration
	symbols map[common.Address]string
}

func NewCoinmarketcapAPI(url string, apiKey string, maxAge time.Duration, symbols map[common.Address]string) *CoinmarketcapAPI {
	return &CoinmarketcapAPI{
		url:     url,
		apiKey:  apiKey,
		maxAge:  maxAge,
		symbols: symbols,
	}
}

func (c *CoinmarketcapAPI) Price(ctx context.Context, asset common.Address) (*Price, error) {
	symbol, ok := c.symbols[asset]
	if !ok {
		return nil, fmt.Errorf("no symbol known for asset %s", asset.Hex())
	}

	url := fmt.Sprintf("%s/v1/cryptocurrency/quotes/latest?symbol=%s", c.url, symbol)

	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accepts", "application/json")
	req.Header.Set("X-CMC_PRO_API_KEY", c.apiKey)

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP request failed with status code %d", resp.StatusCode)
	}

	response, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	var cmcResponse CoinmarketcapResponse
	err = json.Unmarshal(response, &cmcResponse)
	if err != nil {
		return nil, err
	}

	if cmcResponse.Status.ErrorCode != 0 {
		return nil, fmt.Errorf("API Error: %d - %s", cmcResponse.Status.ErrorCode, cmcResponse.Status.ErrorMessage)
	}

	quote := cmcResponse.Data[symbol].Quote.USD
	if c.maxAge != 0 && time.Since(quote.LastUpdated) > c.maxAge {
		return nil, &StalePriceError{Asset: asset, UpdatedAt: quote.LastUpdated}
	}

	value, _ := new(big.Float).Mul(
		big.NewFloat(quote.Price),
		big.NewFloat(1e8),
	).Int(nil)
	return &Price{
		Value:     value,
		UpdatedAt: quote.LastUpdated,
	}, nil
}
