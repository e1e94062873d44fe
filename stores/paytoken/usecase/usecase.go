package usecase

import (
	"github.com/pricy-xyz/goauction/base/ctx"
	"github.com/pricy-xyz/goauction/domain"
)

type impl struct {
	paytoken domain.PayTokenRepo
}

func New(paytoken domain.PayTokenRepo) domain.PayTokenUsecase {
	return &impl{paytoken}
}

func (im *impl) IsAllowed(c ctx.Ctx, chainId domain.ChainId, address domain.Address) (bool, error) {
	if res, err := im.paytoken.FindOne(c, chainId, address); err != nil {
		c.WithField("err", err).Error("paytoken.FindOne failed")
		return false, err
	} else {
		return res != nil, nil
	}
}

func (im *impl) Get(c ctx.Ctx, chainId domain.ChainId, address domain.Address) (*domain.PayToken, error) {
	res, err := im.paytoken.FindOne(c, chainId, address)
	if err != nil {
		c.WithField("err", err).Error("paytoken.FindOne failed")
		return nil, err
	}
	if res == nil {
		return nil, domain.ErrNotFound
	}
	return res, nil
}

func (im *impl) Register(c ctx.Ctx, payToken *domain.PayToken) error {
	if err := im.paytoken.Upsert(c, payToken); err != nil {
		c.WithField("err", err).Error("paytoken.Upsert failed")
		return err
	}
	return nil
}

func (im *impl) Unregister(c ctx.Ctx, chainId domain.ChainId, address domain.Address) error {
	if err := im.paytoken.Remove(c, chainId, address); err != nil {
		c.WithField("err", err).Error("paytoken.Remove failed")
		return err
	}
	return nil
}
