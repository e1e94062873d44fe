package auction

import (
	"math/big"
)

var bpsDenominator = big.NewInt(10000)

// SplitProceeds divides a winning bid between the platform and the seller.
// The platform cut is taken only from the portion above the reserve price, so
// a bid that exactly meets the reserve pays no fee. Inputs are never mutated.
func SplitProceeds(winningBid, reservePrice *big.Int, feeBps int64) (platformCut, sellerAmount *big.Int) {
	platformCut = big.NewInt(0)
	if winningBid.Cmp(reservePrice) > 0 && feeBps > 0 {
		excess := new(big.Int).Sub(winningBid, reservePrice)
		platformCut = excess.Mul(excess, big.NewInt(feeBps))
		platformCut = platformCut.Div(platformCut, bpsDenominator)
	}
	sellerAmount = new(big.Int).Sub(winningBid, platformCut)
	return platformCut, sellerAmount
}
