package usecase

import (
	"github.com/pricy-xyz/goauction/base/ctx"
	"github.com/pricy-xyz/goauction/base/log"
	"github.com/pricy-xyz/goauction/base/ptr"
	"github.com/pricy-xyz/goauction/domain"
	"github.com/pricy-xyz/goauction/domain/settings"
)

type impl struct {
	settings       settings.Repo
	adminAddresses []string
}

func New(settings settings.Repo, adminAddresses []string) settings.Usecase {
	return &impl{settings, adminAddresses}
}

func (im *impl) Get(c ctx.Ctx) (*settings.Settings, error) {
	res, err := im.settings.Get(c)
	if err != nil {
		c.WithField("err", err).Error("settings.Get failed")
		return nil, err
	}
	return res, nil
}

func (im *impl) IsAdmin(address domain.Address) bool {
	for _, admin := range im.adminAddresses {
		if domain.Address(admin).Equals(address) {
			return true
		}
	}
	return false
}

func (im *impl) UpdatePlatformFee(c ctx.Ctx, caller domain.Address, bps int64) error {
	if !im.IsAdmin(caller) {
		return domain.ErrUnauthorized
	}
	if bps < 0 || bps > 10000 {
		return domain.ErrBadParamInput
	}
	return im.patch(c, &settings.Patchable{PlatformFeeBps: ptr.Int64(bps)})
}

func (im *impl) UpdatePlatformFeeRecipient(c ctx.Ctx, caller, recipient domain.Address) error {
	if !im.IsAdmin(caller) {
		return domain.ErrUnauthorized
	}
	if recipient.IsEmpty() {
		return domain.ErrInvalidConfiguration
	}
	recipient = recipient.ToLower()
	return im.patch(c, &settings.Patchable{PlatformFeeRecipient: &recipient})
}

func (im *impl) UpdateBidWithdrawalLockTime(c ctx.Ctx, caller domain.Address, seconds int64) error {
	if !im.IsAdmin(caller) {
		return domain.ErrUnauthorized
	}
	if seconds < 0 {
		return domain.ErrBadParamInput
	}
	return im.patch(c, &settings.Patchable{BidWithdrawalLockSeconds: ptr.Int64(seconds)})
}

func (im *impl) UpdateMinBidIncrement(c ctx.Ctx, caller domain.Address, increment string) error {
	if !im.IsAdmin(caller) {
		return domain.ErrUnauthorized
	}
	if _, err := domain.ToAmount(increment); err != nil {
		return err
	}
	return im.patch(c, &settings.Patchable{MinBidIncrement: ptr.String(increment)})
}

func (im *impl) TogglePause(c ctx.Ctx, caller domain.Address) (bool, error) {
	if !im.IsAdmin(caller) {
		return false, domain.ErrUnauthorized
	}
	current, err := im.settings.Get(c)
	if err != nil {
		c.WithField("err", err).Error("settings.Get failed")
		return false, err
	}
	paused := !current.Paused
	if err := im.patch(c, &settings.Patchable{Paused: ptr.Bool(paused)}); err != nil {
		return false, err
	}
	return paused, nil
}

func (im *impl) patch(c ctx.Ctx, p *settings.Patchable) error {
	if err := im.settings.Patch(c, p); err != nil {
		c.WithFields(log.Fields{
			"err":   err,
			"patch": p,
		}).Error("settings.Patch failed")
		return err
	}
	return nil
}
