package usecase

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/pricy-xyz/goauction/base/ctx"
	"github.com/pricy-xyz/goauction/domain"
	mockPaytoken "github.com/pricy-xyz/goauction/domain/mocks"
)

var (
	mockCtx = ctx.Background()
)

type testsuite struct {
	suite.Suite
	mockPaytoken *mockPaytoken.PayTokenRepo
	subject      *impl
}

func Test(t *testing.T) {
	suite.Run(t, new(testsuite))
}

func (t *testsuite) SetupTest() {
	t.mockPaytoken = &mockPaytoken.PayTokenRepo{}
	t.subject = &impl{
		paytoken: t.mockPaytoken,
	}
}

func (t *testsuite) TestIsAllowed() {
	var (
		chainId = domain.ChainId(1)
		listed  = domain.Address("0xaaa")
		unknown = domain.Address("0xbbb")
	)

	t.mockPaytoken.
		On("FindOne", mockCtx, chainId, listed).
		Return(&domain.PayToken{ChainId: chainId, Address: listed}, nil)
	t.mockPaytoken.
		On("FindOne", mockCtx, chainId, unknown).
		Return(nil, nil)

	allowed, err := t.subject.IsAllowed(mockCtx, chainId, listed)
	t.NoError(err)
	t.True(allowed)

	allowed, err = t.subject.IsAllowed(mockCtx, chainId, unknown)
	t.NoError(err)
	t.False(allowed)
}

func (t *testsuite) TestIsAllowedRepoError() {
	var (
		chainId = domain.ChainId(1)
		addr    = domain.Address("0xaaa")
	)

	t.mockPaytoken.
		On("FindOne", mockCtx, chainId, addr).
		Return(nil, errors.New("boom"))

	allowed, err := t.subject.IsAllowed(mockCtx, chainId, addr)
	t.Error(err)
	t.False(allowed)
}

func (t *testsuite) TestGet() {
	var (
		chainId = domain.ChainId(1)
		addr    = domain.Address("0xaaa")
		token   = &domain.PayToken{
			Name:          "Wrapped Ether",
			Symbol:        "WETH",
			TokenDecimals: 18,
			ChainId:       chainId,
			Address:       addr,
		}
	)

	t.mockPaytoken.
		On("FindOne", mockCtx, chainId, addr).
		Return(token, nil)

	res, err := t.subject.Get(mockCtx, chainId, addr)
	t.NoError(err)
	t.Equal(token, res)
}

func (t *testsuite) TestGetNotFound() {
	var (
		chainId = domain.ChainId(1)
		addr    = domain.Address("0xccc")
	)

	t.mockPaytoken.
		On("FindOne", mockCtx, chainId, addr).
		Return(nil, nil)

	res, err := t.subject.Get(mockCtx, chainId, addr)
	t.ErrorIs(err, domain.ErrNotFound)
	t.Nil(res)
}

func (t *testsuite) TestRegister() {
	token := &domain.PayToken{
		Symbol:        "USDC",
		TokenDecimals: 6,
		ChainId:       domain.ChainId(1),
		Address:       domain.Address("0xaaa"),
	}

	t.mockPaytoken.
		On("Upsert", mockCtx, token).
		Return(nil)

	t.NoError(t.subject.Register(mockCtx, token))
	t.mockPaytoken.AssertExpectations(t.T())
}

func (t *testsuite) TestUnregister() {
	var (
		chainId = domain.ChainId(1)
		addr    = domain.Address("0xaaa")
	)

	t.mockPaytoken.
		On("Remove", mockCtx, chainId, addr).
		Return(nil)

	t.NoError(t.subject.Unregister(mockCtx, chainId, addr))
	t.mockPaytoken.AssertExpectations(t.T())
}
