package contract

import (
	"github.com/ethereum/go-ethereum/common"

	bCtx "github.com/pricy-xyz/goauction/base/ctx"
	"github.com/pricy-xyz/goauction/domain"
	"github.com/pricy-xyz/goauction/domain/auction"
	"github.com/pricy-xyz/goauction/service/chain"
)

// Account inspects caller accounts on chain. An address with deployed code
// is a contract account; the bid path rejects those outright rather than
// guessing from call depth.
type Account struct {
	chainService chain.Client
}

func NewAccount(chainService chain.Client) auction.AccountInspector {
	return &Account{
		chainService: chainService,
	}
}

func (a *Account) IsContract(ctx bCtx.Ctx, chainId domain.ChainId, account domain.Address) (bool, error) {
	code, err := a.chainService.CodeAt(ctx, int32(chainId), common.HexToAddress(string(account)))
	if err != nil {
		return false, err
	}
	return len(code) > 0, nil
}
