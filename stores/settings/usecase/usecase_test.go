package usecase

import (
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/pricy-xyz/goauction/base/ctx"
	"github.com/pricy-xyz/goauction/base/ptr"
	"github.com/pricy-xyz/goauction/domain"
	"github.com/pricy-xyz/goauction/domain/settings"
	mockSettings "github.com/pricy-xyz/goauction/domain/settings/mocks"
)

var (
	mockCtx = ctx.Background()
	admin   = domain.Address("0xAdminAdminAdminAdminAdminAdminAdminAdmi")
	rando   = domain.Address("0xrando")
)

type testsuite struct {
	suite.Suite
	mockSettings *mockSettings.Repo
	subject      *impl
}

func Test(t *testing.T) {
	suite.Run(t, new(testsuite))
}

func (t *testsuite) SetupTest() {
	t.mockSettings = &mockSettings.Repo{}
	t.subject = &impl{
		settings:       t.mockSettings,
		adminAddresses: []string{admin.ToLowerStr()},
	}
}

func (t *testsuite) TestIsAdmin() {
	t.True(t.subject.IsAdmin(admin))
	t.True(t.subject.IsAdmin(admin.ToLower()))
	t.False(t.subject.IsAdmin(rando))
}

func (t *testsuite) TestUpdatePlatformFee() {
	t.mockSettings.
		On("Patch", mockCtx, &settings.Patchable{PlatformFeeBps: ptr.Int64(500)}).
		Return(nil).Once()

	t.NoError(t.subject.UpdatePlatformFee(mockCtx, admin, 500))
	t.mockSettings.AssertExpectations(t.T())
}

func (t *testsuite) TestUpdatePlatformFeeOutOfRange() {
	t.ErrorIs(t.subject.UpdatePlatformFee(mockCtx, admin, -1), domain.ErrBadParamInput)
	t.ErrorIs(t.subject.UpdatePlatformFee(mockCtx, admin, 10001), domain.ErrBadParamInput)
	t.mockSettings.AssertNotCalled(t.T(), "Patch", mock.Anything, mock.Anything)
}

func (t *testsuite) TestUpdatePlatformFeeNotAdmin() {
	t.ErrorIs(t.subject.UpdatePlatformFee(mockCtx, rando, 500), domain.ErrUnauthorized)
	t.mockSettings.AssertNotCalled(t.T(), "Patch", mock.Anything, mock.Anything)
}

func (t *testsuite) TestUpdatePlatformFeeRecipient() {
	recipient := domain.Address("0xFeeFeeFee").ToLower()

	t.mockSettings.
		On("Patch", mockCtx, &settings.Patchable{PlatformFeeRecipient: &recipient}).
		Return(nil).Once()

	t.NoError(t.subject.UpdatePlatformFeeRecipient(mockCtx, admin, domain.Address("0xFeeFeeFee")))
	t.mockSettings.AssertExpectations(t.T())
}

func (t *testsuite) TestUpdatePlatformFeeRecipientEmpty() {
	err := t.subject.UpdatePlatformFeeRecipient(mockCtx, admin, domain.Address(""))
	t.ErrorIs(err, domain.ErrInvalidConfiguration)
	t.mockSettings.AssertNotCalled(t.T(), "Patch", mock.Anything, mock.Anything)
}

func (t *testsuite) TestUpdateBidWithdrawalLockTime() {
	t.mockSettings.
		On("Patch", mockCtx, &settings.Patchable{BidWithdrawalLockSeconds: ptr.Int64(900)}).
		Return(nil).Once()

	t.NoError(t.subject.UpdateBidWithdrawalLockTime(mockCtx, admin, 900))
	t.ErrorIs(t.subject.UpdateBidWithdrawalLockTime(mockCtx, admin, -1), domain.ErrBadParamInput)
	t.mockSettings.AssertExpectations(t.T())
}

func (t *testsuite) TestUpdateMinBidIncrement() {
	t.mockSettings.
		On("Patch", mockCtx, &settings.Patchable{MinBidIncrement: ptr.String("100000000000000000")}).
		Return(nil).Once()

	t.NoError(t.subject.UpdateMinBidIncrement(mockCtx, admin, "100000000000000000"))
	t.mockSettings.AssertExpectations(t.T())
}

func (t *testsuite) TestUpdateMinBidIncrementNotANumber() {
	t.Error(t.subject.UpdateMinBidIncrement(mockCtx, admin, "1.5e18"))
	t.mockSettings.AssertNotCalled(t.T(), "Patch", mock.Anything, mock.Anything)
}

func (t *testsuite) TestTogglePause() {
	t.mockSettings.
		On("Get", mockCtx).
		Return(&settings.Settings{Paused: false}, nil).Once()
	t.mockSettings.
		On("Patch", mockCtx, &settings.Patchable{Paused: ptr.Bool(true)}).
		Return(nil).Once()

	paused, err := t.subject.TogglePause(mockCtx, admin)
	t.NoError(err)
	t.True(paused)

	t.mockSettings.
		On("Get", mockCtx).
		Return(&settings.Settings{Paused: true}, nil).Once()
	t.mockSettings.
		On("Patch", mockCtx, &settings.Patchable{Paused: ptr.Bool(false)}).
		Return(nil).Once()

	paused, err = t.subject.TogglePause(mockCtx, admin)
	t.NoError(err)
	t.False(paused)
	t.mockSettings.AssertExpectations(t.T())
}

func (t *testsuite) TestTogglePauseNotAdmin() {
	_, err := t.subject.TogglePause(mockCtx, rando)
	t.ErrorIs(err, domain.ErrUnauthorized)
	t.mockSettings.AssertNotCalled(t.T(), "Get", mock.Anything)
}
