package chain

import (
	"crypto/ecdsa"
	"errors"
	"math/big"
	"time"

	goEthereum "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"

	"github.com/pricy-xyz/goauction/base/backoff"
	bCtx "github.com/pricy-xyz/goauction/base/ctx"
	"github.com/pricy-xyz/goauction/base/ethereum"
	"github.com/pricy-xyz/goauction/base/log"
)

var (
	ErrUnsupportedChain = errors.New("unsupported chain")
	ErrTxReverted       = errors.New("transaction reverted")
)

type ClientCfg struct {
	RpcUrls map[int32]string
	// OperatorKey signs escrow transfers; hex encoded without 0x prefix
	OperatorKey string
	// MaxRpcConcurrency caps in-flight calls per chain, 0 means no cap
	MaxRpcConcurrency int
}

// Client wraps one ethclient per chain. Reads go through Call; escrow
// mutations go through Transact, signed by the operator account which is the
// engine's funds holder.
type Client interface {
	Call(c bCtx.Ctx, chainId int32, addr common.Address, blk *big.Int, abi abi.ABI, method string, params ...interface{}) ([]interface{}, error)
	Transact(c bCtx.Ctx, chainId int32, addr common.Address, abi abi.ABI, method string, params ...interface{}) (common.Hash, error)
	CodeAt(c bCtx.Ctx, chainId int32, addr common.Address) ([]byte, error)
	Operator() common.Address
}

type clientImpl struct {
	clients     map[int32]*ethereum.ThrottledClient
	operatorKey *ecdsa.PrivateKey
	operator    common.Address
}

func NewClient(ctx bCtx.Ctx, cfg *ClientCfg) (Client, error) {
	var anyerr error
	clients := make(map[int32]*ethereum.ThrottledClient)
	for chainId, url := range cfg.RpcUrls {
		client, err := dialWithRetry(ctx, url)
		if err != nil {
			anyerr = err
			ctx.WithFields(log.Fields{
				"err":     err,
				"chainId": chainId,
				"url":     url,
			}).Warn("failed to dial rpc")
			// soft warning, still let the server start
			continue
		}
		concurrency := cfg.MaxRpcConcurrency
		if concurrency <= 0 {
			concurrency = 16
		}
		clients[chainId] = ethereum.NewThrottledClient(client, concurrency)
	}

	key, err := crypto.HexToECDSA(cfg.OperatorKey)
	if err != nil {
		ctx.WithField("err", err).Error("invalid operator key")
		return nil, err
	}

	return &clientImpl{
		clients:     clients,
		operatorKey: key,
		operator:    crypto.PubkeyToAddress(key.PublicKey),
	}, anyerr
}

func dialWithRetry(ctx bCtx.Ctx, url string) (*ethclient.Client, error) {
	bo := backoff.NewExponential(time.Second, 8*time.Second)
	var lastErr error
	for i := 0; i < 4; i++ {
		client, err := ethclient.DialContext(ctx, url)
		if err == nil {
			return client, nil
		}
		lastErr = err
		if err := bo.Backoff(ctx); err != nil {
			return nil, err
		}
	}
	return nil, lastErr
}

func (c *clientImpl) Operator() common.Address {
	return c.operator
}

func (c *clientImpl) client(chainId int32) (*ethereum.ThrottledClient, error) {
	client, ok := c.clients[chainId]
	if !ok {
		return nil, ErrUnsupportedChain
	}
	return client, nil
}

func (c *clientImpl) Call(ctx bCtx.Ctx, chainId int32, addr common.Address, blk *big.Int, _abi abi.ABI, method string, params ...interface{}) ([]interface{}, error) {
	client, err := c.client(chainId)
	if err != nil {
		return nil, err
	}

	data, err := _abi.Pack(method, params...)
	if err != nil {
		ctx.WithFields(log.Fields{
			"method": method,
			"params": params,
			"err":    err,
		}).Error("abi.Pack failed")
		return nil, err
	}
	msg := goEthereum.CallMsg{
		To:   &addr,
		Data: data,
	}
	res, err := client.CallContract(ctx, msg, blk)
	if err != nil {
		ctx.WithField("err", err).Error("client.CallContract failed")
		return nil, err
	}
	unpacked, err := _abi.Unpack(method, res)
	if err != nil {
		ctx.WithField("err", err).Error("abi.Unpack failed")
		return nil, err
	}
	return unpacked, nil
}

func (c *clientImpl) CodeAt(ctx bCtx.Ctx, chainId int32, addr common.Address) ([]byte, error) {
	client, err := c.client(chainId)
	if err != nil {
		return nil, err
	}
	code, err := client.CodeAt(ctx, addr, nil)
	if err != nil {
		ctx.WithField("err", err).Error("client.CodeAt failed")
		return nil, err
	}
	return code, nil
}

// Transact signs and sends a contract call from the operator account and
// waits for it to be mined. A reverted receipt surfaces as ErrTxReverted so
// callers never mistake a failed transfer for a settled one.
func (c *clientImpl) Transact(ctx bCtx.Ctx, chainId int32, addr common.Address, _abi abi.ABI, method string, params ...interface{}) (common.Hash, error) {
	client, err := c.client(chainId)
	if err != nil {
		return common.Hash{}, err
	}

	data, err := _abi.Pack(method, params...)
	if err != nil {
		ctx.WithFields(log.Fields{
			"method": method,
			"err":    err,
		}).Error("abi.Pack failed")
		return common.Hash{}, err
	}

	nonce, err := client.PendingNonceAt(ctx, c.operator)
	if err != nil {
		ctx.WithField("err", err).Error("client.PendingNonceAt failed")
		return common.Hash{}, err
	}
	gasPrice, err := client.SuggestGasPrice(ctx)
	if err != nil {
		ctx.WithField("err", err).Error("client.SuggestGasPrice failed")
		return common.Hash{}, err
	}
	gasLimit, err := client.EstimateGas(ctx, goEthereum.CallMsg{
		From: c.operator,
		To:   &addr,
		Data: data,
	})
	if err != nil {
		ctx.WithFields(log.Fields{
			"method": method,
			"err":    err,
		}).Error("client.EstimateGas failed")
		return common.Hash{}, err
	}

	tx := types.NewTx(&types.LegacyTx{
		Nonce:    nonce,
		To:       &addr,
		Gas:      gasLimit,
		GasPrice: gasPrice,
		Data:     data,
	})
	signed, err := types.SignTx(tx, types.LatestSignerForChainID(big.NewInt(int64(chainId))), c.operatorKey)
	if err != nil {
		ctx.WithField("err", err).Error("types.SignTx failed")
		return common.Hash{}, err
	}
	if err := client.SendTransaction(ctx, signed); err != nil {
		ctx.WithField("err", err).Error("client.SendTransaction failed")
		return common.Hash{}, err
	}

	receipt, err := bind.WaitMined(ctx, client, signed)
	if err != nil {
		ctx.WithFields(log.Fields{
			"tx":  signed.Hash(),
			"err": err,
		}).Error("bind.WaitMined failed")
		return common.Hash{}, err
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		ctx.WithField("tx", signed.Hash()).Error("transaction reverted")
		return common.Hash{}, ErrTxReverted
	}
	return signed.Hash(), nil
}
