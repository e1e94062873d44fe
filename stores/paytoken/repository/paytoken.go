package repository

import (
	"fmt"
	"time"

	bCtx "github.com/pricy-xyz/goauction/base/ctx"
	"github.com/pricy-xyz/goauction/base/database/mongoclient"
	"github.com/pricy-xyz/goauction/base/log"
	"github.com/pricy-xyz/goauction/domain"
	"github.com/pricy-xyz/goauction/service/cache"
	"github.com/pricy-xyz/goauction/service/cache/provider/primitive"
	"github.com/pricy-xyz/goauction/service/query"
)

type payTokenMongoRepo struct {
	q     query.Mongo
	cache cache.Service
}

func NewPayTokenRepo(q query.Mongo) domain.PayTokenRepo {
	return &payTokenMongoRepo{
		q: q,
		cache: cache.New(cache.ServiceConfig{
			Ttl:   time.Minute,
			Pfx:   "paytoken",
			Cache: primitive.NewPrimitive("paytoken", 2),
		}),
	}
}

func cacheKey(chainId domain.ChainId, tokenAddress domain.Address) string {
	return fmt.Sprintf("%d:%s", chainId, tokenAddress.ToLower())
}

func (r *payTokenMongoRepo) FindOne(ctx bCtx.Ctx, chainId domain.ChainId, tokenAddress domain.Address) (*domain.PayToken, error) {
	payToken := &domain.PayToken{}
	err := r.cache.GetByFunc(ctx, cacheKey(chainId, tokenAddress), payToken, func() (interface{}, error) {
		return r.findOne(ctx, chainId, tokenAddress)
	})
	if err == domain.ErrNotFound {
		return nil, nil
	} else if err != nil {
		return nil, err
	}
	return payToken, nil
}

func (r *payTokenMongoRepo) findOne(ctx bCtx.Ctx, chainId domain.ChainId, tokenAddress domain.Address) (*domain.PayToken, error) {
	payToken := &domain.PayToken{}
	qry, err := mongoclient.MakeBsonM(&domain.PayToken{ChainId: chainId, Address: tokenAddress.ToLower()})
	if err != nil {
		ctx.WithField("err", err).Error("mongoclient.MakeBsonM failed")
		return nil, err
	}
	if err := r.q.FindOne(ctx, domain.TablePayTokens, qry, payToken); err == query.ErrNotFound {
		return nil, domain.ErrNotFound
	} else if err != nil {
		ctx.WithField("err", err).Error("q.FindOne failed")
		return nil, err
	}
	return payToken, nil
}

func (r *payTokenMongoRepo) Upsert(ctx bCtx.Ctx, payToken *domain.PayToken) error {
	payToken.Address = payToken.Address.ToLower()
	selector, err := mongoclient.MakeBsonM(payToken.ToId())
	if err != nil {
		ctx.WithField("err", err).Error("mongoclient.MakeBsonM failed")
		return err
	}
	if err := r.q.Upsert(ctx, domain.TablePayTokens, selector, payToken); err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
			"id":  payToken.ToId(),
		}).Error("q.Upsert failed")
		return err
	}
	if err := r.cache.Del(ctx, cacheKey(payToken.ChainId, payToken.Address)); err != nil && err != cache.ErrNotFound {
		ctx.WithField("err", err).Warn("cache.Del failed")
	}
	return nil
}

func (r *payTokenMongoRepo) Remove(ctx bCtx.Ctx, chainId domain.ChainId, tokenAddress domain.Address) error {
	selector, err := mongoclient.MakeBsonM(&domain.PayTokenId{ChainId: chainId, Address: tokenAddress.ToLower()})
	if err != nil {
		ctx.WithField("err", err).Error("mongoclient.MakeBsonM failed")
		return err
	}
	if err := r.q.Remove(ctx, domain.TablePayTokens, selector); err != nil && err != query.ErrNotFound {
		ctx.WithField("err", err).Error("q.Remove failed")
		return err
	}
	if err := r.cache.Del(ctx, cacheKey(chainId, tokenAddress)); err != nil && err != cache.ErrNotFound {
		ctx.WithField("err", err).Warn("cache.Del failed")
	}
	return nil
}
