package contract

import (
	"math/big"

	ethabi "github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"

	baseabi "github.com/pricy-xyz/goauction/base/abi"
	bCtx "github.com/pricy-xyz/goauction/base/ctx"
	"github.com/pricy-xyz/goauction/domain"
	"github.com/pricy-xyz/goauction/domain/auction"
	"github.com/pricy-xyz/goauction/service/chain"
)

// Erc20 adapts an on-chain ERC-20 token to the engine's payment interface.
// Pull requires the bidder to have granted allowance to the operator escrow
// account; Push spends from that account.
type Erc20 struct {
	chainService chain.Client
	abi          ethabi.ABI
}

func NewErc20(chainService chain.Client) auction.PaymentToken {
	return &Erc20{
		abi:          baseabi.ERC20TokenABI,
		chainService: chainService,
	}
}

func (e *Erc20) Pull(ctx bCtx.Ctx, chainId domain.ChainId, token, from domain.Address, amount *big.Int) (domain.TxHash, error) {
	hash, err := e.chainService.Transact(ctx, int32(chainId), common.HexToAddress(string(token)), e.abi, "transferFrom",
		common.HexToAddress(string(from)), e.chainService.Operator(), amount)
	if err != nil {
		return "", err
	}
	return domain.TxHash(hash.Hex()), nil
}

func (e *Erc20) Push(ctx bCtx.Ctx, chainId domain.ChainId, token, to domain.Address, amount *big.Int) (domain.TxHash, error) {
	hash, err := e.chainService.Transact(ctx, int32(chainId), common.HexToAddress(string(token)), e.abi, "transfer",
		common.HexToAddress(string(to)), amount)
	if err != nil {
		return "", err
	}
	return domain.TxHash(hash.Hex()), nil
}

func (e *Erc20) BalanceOf(ctx bCtx.Ctx, chainId domain.ChainId, token, account domain.Address) (*big.Int, error) {
	unpacked, err := e.chainService.Call(ctx, int32(chainId), common.HexToAddress(string(token)), nil, e.abi, "balanceOf",
		common.HexToAddress(string(account)))
	if err != nil {
		return nil, err
	}
	return unpacked[0].(*big.Int), nil
}
