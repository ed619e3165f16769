package conversion_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/omnivault/vault-accounting/conversion"
)

type ConversionTestSuite struct {
	suite.Suite
}

func TestRunConversionTestSuite(t *testing.T) {
	suite.Run(t, new(ConversionTestSuite))
}

func e(base int64, decimals int64) *big.Int {
	return new(big.Int).Mul(
		big.NewInt(base),
		new(big.Int).Exp(big.NewInt(10), big.NewInt(decimals), nil))
}

func (s *ConversionTestSuite) Test_UsdToAsset_RoundTrip() {
	// 1000 USD at 2 USD per asset with an 18 decimal asset
	amount, err := conversion.UsdToAsset(e(1000, 8), e(2, 8), 18)

	s.Nil(err)
	s.Equal(e(500, 18), amount)
}

func (s *ConversionTestSuite) Test_UsdToAsset_SixDecimalAsset() {
	amount, err := conversion.UsdToAsset(e(1000, 8), e(1, 8), 6)

	s.Nil(err)
	s.Equal(e(1000, 6), amount)
}

func (s *ConversionTestSuite) Test_UsdToAsset_TruncatesRemainder() {
	amount, err := conversion.UsdToAsset(big.NewInt(100), big.NewInt(3), 0)

	s.Nil(err)
	s.Equal(big.NewInt(33), amount)
}

func (s *ConversionTestSuite) Test_UsdToAsset_InvalidPrice() {
	_, err := conversion.UsdToAsset(e(1000, 8), big.NewInt(0), 18)
	s.NotNil(err)

	_, err = conversion.UsdToAsset(e(1000, 8), nil, 18)
	s.NotNil(err)
}

func (s *ConversionTestSuite) Test_AssetToUsd_Inverse() {
	usd := conversion.AssetToUsd(e(500, 18), e(2, 8), 18)

	s.Equal(e(1000, 8), usd)
}

func (s *ConversionTestSuite) Test_ScaleDecimals() {
	s.Equal(e(5, 18), conversion.ScaleDecimals(e(5, 6), 6, 18))
	s.Equal(e(5, 6), conversion.ScaleDecimals(e(5, 18), 18, 6))
	s.Equal(e(5, 8), conversion.ScaleDecimals(e(5, 8), 8, 8))
}

func (s *ConversionTestSuite) Test_SharesForAssets_EmptyVault() {
	shares := conversion.SharesForAssets(e(100, 6), big.NewInt(0), big.NewInt(0), 6)

	s.Equal(e(100, 18), shares)
}

func (s *ConversionTestSuite) Test_SharesForAssets_ProRata() {
	// supply 1000e18 over 2000e6 assets -> 0.5 shares per asset unit
	shares := conversion.SharesForAssets(e(100, 6), e(1000, 18), e(2000, 6), 6)

	s.Equal(e(50, 18), shares)
}

func (s *ConversionTestSuite) Test_AssetsForShares_ProRata() {
	assets := conversion.AssetsForShares(e(50, 18), e(1000, 18), e(2000, 6), 6)

	s.Equal(e(100, 6), assets)
}

func (s *ConversionTestSuite) Test_RoundingDirections() {
	supply := big.NewInt(3)
	totalAssets := big.NewInt(10)

	down := conversion.AssetsForShares(big.NewInt(1), supply, totalAssets, 0)
	up := conversion.AssetsForSharesUp(big.NewInt(1), supply, totalAssets, 0)
	s.Equal(big.NewInt(3), down)
	s.Equal(big.NewInt(4), up)

	down = conversion.SharesForAssets(big.NewInt(1), supply, totalAssets, 0)
	up = conversion.SharesForAssetsUp(big.NewInt(1), supply, totalAssets, 0)
	s.Equal(big.NewInt(0), down)
	s.Equal(big.NewInt(1), up)
}
