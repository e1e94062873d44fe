package contract

import (
	"strings"

	ethabi "github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"

	baseabi "github.com/pricy-xyz/goauction/base/abi"
	bCtx "github.com/pricy-xyz/goauction/base/ctx"
	"github.com/pricy-xyz/goauction/domain"
	"github.com/pricy-xyz/goauction/domain/auction"
	"github.com/pricy-xyz/goauction/service/chain"
)

// Erc721 adapts an on-chain ERC-721 registry to the engine's asset
// ownership interface. The engine's operator account is the transfer
// operator sellers approve.
type Erc721 struct {
	chainService chain.Client
	abi          ethabi.ABI
}

func NewErc721(chainService chain.Client) auction.AssetOwnership {
	return &Erc721{
		abi:          baseabi.ERC721TokenABI,
		chainService: chainService,
	}
}

func (e *Erc721) OwnerOf(ctx bCtx.Ctx, chainId domain.ChainId, contract domain.Address, tokenId domain.TokenId) (domain.Address, error) {
	id, err := tokenId.ToBigInt()
	if err != nil {
		return "", err
	}
	unpacked, err := e.chainService.Call(ctx, int32(chainId), common.HexToAddress(string(contract)), nil, e.abi, "ownerOf", id)
	if err != nil {
		if strings.Contains(err.Error(), "nonexistent token") {
			return "", domain.ErrNonexistentAsset
		}
		return "", err
	}
	return domain.Address(unpacked[0].(common.Address).Hex()).ToLower(), nil
}

func (e *Erc721) IsApproved(ctx bCtx.Ctx, chainId domain.ChainId, contract domain.Address, tokenId domain.TokenId, owner domain.Address) (bool, error) {
	id, err := tokenId.ToBigInt()
	if err != nil {
		return false, err
	}
	operator := e.chainService.Operator()

	unpacked, err := e.chainService.Call(ctx, int32(chainId), common.HexToAddress(string(contract)), nil, e.abi, "getApproved", id)
	if err != nil {
		return false, err
	}
	if unpacked[0].(common.Address) == operator {
		return true, nil
	}

	unpacked, err = e.chainService.Call(ctx, int32(chainId), common.HexToAddress(string(contract)), nil, e.abi, "isApprovedForAll",
		common.HexToAddress(string(owner)), operator)
	if err != nil {
		return false, err
	}
	return unpacked[0].(bool), nil
}

func (e *Erc721) Transfer(ctx bCtx.Ctx, chainId domain.ChainId, contract domain.Address, tokenId domain.TokenId, from, to domain.Address) (domain.TxHash, error) {
	id, err := tokenId.ToBigInt()
	if err != nil {
		return "", err
	}
	hash, err := e.chainService.Transact(ctx, int32(chainId), common.HexToAddress(string(contract)), e.abi, "safeTransferFrom",
		common.HexToAddress(string(from)), common.HexToAddress(string(to)), id)
	if err != nil {
		return "", err
	}
	return domain.TxHash(hash.Hex()), nil
}
