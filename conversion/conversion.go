// Package conversion holds the pure numeric helpers shared by the bridge
// coordinator and the composer: rebasing between the 8 decimal USD convention
// used by oracles and cross-chain value reads, native asset units and 18
// decimal share units.
package conversion

import (
	"fmt"
	"math/big"
)

const (
	// UsdDecimals is the fixed point precision of oracle prices and of the
	// aggregated valuations returned by spoke value reads.
	UsdDecimals = 8
	// ShareDecimals is the fixed point precision of vault shares.
	ShareDecimals = 18
)

// UsdToAsset converts an 8 decimal USD valuation into native asset units using
// an 8 decimal USD price. Precision loss is limited to integer truncation.
func UsdToAsset(usd *big.Int, price *big.Int, assetDecimals uint8) (*big.Int, error) {
	if price == nil || price.Sign() <= 0 {
		return nil, fmt.Errorf("invalid asset price %v", price)
	}

	amount := new(big.Int).Mul(usd, exp10(int(assetDecimals)))
	return amount.Div(amount, price), nil
}

// AssetToUsd converts native asset units into an 8 decimal USD valuation.
func AssetToUsd(amount *big.Int, price *big.Int, assetDecimals uint8) *big.Int {
	usd := new(big.Int).Mul(amount, price)
	return usd.Div(usd, exp10(int(assetDecimals)))
}

// ScaleDecimals rebases an amount between fixed point precisions.
func ScaleDecimals(amount *big.Int, from uint8, to uint8) *big.Int {
	if from == to {
		return new(big.Int).Set(amount)
	}
	if from < to {
		return new(big.Int).Mul(amount, exp10(int(to-from)))
	}
	return new(big.Int).Div(amount, exp10(int(from-to)))
}

// SharesForAssets returns the shares minted for a deposit of assets given the
// vault supply and the authoritative total assets figure. Rounds down.
// An empty vault bootstraps 1:1 with asset units rebased to share precision.
func SharesForAssets(assets, totalSupply, totalAssets *big.Int, assetDecimals uint8) *big.Int {
	if totalSupply.Sign() == 0 || totalAssets.Sign() == 0 {
		return ScaleDecimals(assets, assetDecimals, ShareDecimals)
	}

	shares := new(big.Int).Mul(assets, totalSupply)
	return shares.Div(shares, totalAssets)
}

// AssetsForShares returns the assets redeemable for shares. Rounds down.
func AssetsForShares(shares, totalSupply, totalAssets *big.Int, assetDecimals uint8) *big.Int {
	if totalSupply.Sign() == 0 {
		return ScaleDecimals(shares, ShareDecimals, assetDecimals)
	}

	assets := new(big.Int).Mul(shares, totalAssets)
	return assets.Div(assets, totalSupply)
}

// AssetsForSharesUp is AssetsForShares rounding up. Used for the mint
// direction where the vault charges the depositor.
func AssetsForSharesUp(shares, totalSupply, totalAssets *big.Int, assetDecimals uint8) *big.Int {
	if totalSupply.Sign() == 0 {
		return ScaleDecimals(shares, ShareDecimals, assetDecimals)
	}

	assets := new(big.Int).Mul(shares, totalAssets)
	return divUp(assets, totalSupply)
}

// SharesForAssetsUp is SharesForAssets rounding up. Used for the withdraw
// direction where the vault burns shares from the owner.
func SharesForAssetsUp(assets, totalSupply, totalAssets *big.Int, assetDecimals uint8) *big.Int {
	if totalSupply.Sign() == 0 || totalAssets.Sign() == 0 {
		return ScaleDecimals(assets, assetDecimals, ShareDecimals)
	}

	shares := new(big.Int).Mul(assets, totalSupply)
	return divUp(shares, totalAssets)
}

func divUp(a, b *big.Int) *big.Int {
	q, r := new(big.Int).QuoRem(a, b, new(big.Int))
	if r.Sign() != 0 {
		q.Add(q, big.NewInt(1))
	}
	return q
}

func exp10(n int) *big.Int {
	return new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(n)), nil)
}
