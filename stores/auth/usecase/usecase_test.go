package usecase

import (
	"testing"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pricy-xyz/goauction/base/clock"
	bCtx "github.com/pricy-xyz/goauction/base/ctx"
	"github.com/pricy-xyz/goauction/base/ethereum"
	"github.com/pricy-xyz/goauction/domain"
)

const signingMsg = "Welcome to the auction house. Sign this message to log in."

func TestSignAndParseToken(t *testing.T) {
	ctx := bCtx.Background()
	uc := New("secret", signingMsg, clock.New())

	privateKey, publicKey, err := ethereum.GenerateKey()
	require.NoError(t, err)
	address := crypto.PubkeyToAddress(*publicKey).Hex()

	hash := accounts.TextHash([]byte(signingMsg))
	signature, err := crypto.Sign(hash, privateKey)
	require.NoError(t, err)

	token, err := uc.SignToken(ctx, domain.Address(address), hexutil.Encode(signature))
	require.NoError(t, err)
	require.NotEmpty(t, token)

	parsed, err := uc.ParseToken(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, domain.Address(address).ToLowerStr(), parsed)
}

func TestSignTokenWrongSigner(t *testing.T) {
	ctx := bCtx.Background()
	uc := New("secret", signingMsg, clock.New())

	privateKey, _, err := ethereum.GenerateKey()
	require.NoError(t, err)
	_, otherPub, err := ethereum.GenerateKey()
	require.NoError(t, err)
	other := crypto.PubkeyToAddress(*otherPub).Hex()

	hash := accounts.TextHash([]byte(signingMsg))
	signature, err := crypto.Sign(hash, privateKey)
	require.NoError(t, err)

	_, err = uc.SignToken(ctx, domain.Address(other), hexutil.Encode(signature))
	assert.ErrorIs(t, err, domain.ErrInvalidSignature)
}

func TestSignTokenBadAddress(t *testing.T) {
	ctx := bCtx.Background()
	uc := New("secret", signingMsg, clock.New())

	_, err := uc.SignToken(ctx, "not-an-address", "0x00")
	assert.ErrorIs(t, err, domain.ErrInvalidAddress)
}

func TestParseTokenForged(t *testing.T) {
	ctx := bCtx.Background()
	uc := New("secret", signingMsg, clock.New())
	forged := New("other-secret", signingMsg, clock.New())

	privateKey, publicKey, err := ethereum.GenerateKey()
	require.NoError(t, err)
	address := crypto.PubkeyToAddress(*publicKey).Hex()

	hash := accounts.TextHash([]byte(signingMsg))
	signature, err := crypto.Sign(hash, privateKey)
	require.NoError(t, err)

	token, err := forged.SignToken(ctx, domain.Address(address), hexutil.Encode(signature))
	require.NoError(t, err)

	_, err = uc.ParseToken(ctx, token)
	assert.Error(t, err)
}
