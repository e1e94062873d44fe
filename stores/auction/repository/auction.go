package repository

import (
	"go.mongodb.org/mongo-driver/bson"

	bCtx "github.com/pricy-xyz/goauction/base/ctx"
	"github.com/pricy-xyz/goauction/base/database/mongoclient"
	"github.com/pricy-xyz/goauction/base/log"
	"github.com/pricy-xyz/goauction/domain"
	"github.com/pricy-xyz/goauction/domain/auction"
	"github.com/pricy-xyz/goauction/service/query"
)

type auctionMongoRepo struct {
	q query.Mongo
}

func NewAuctionRepo(q query.Mongo) auction.Repo {
	return &auctionMongoRepo{q}
}

func idSelector(id auction.Id) (bson.M, error) {
	id.AssetContract = id.AssetContract.ToLower()
	return mongoclient.MakeBsonM(&id)
}

func (r *auctionMongoRepo) FindOne(ctx bCtx.Ctx, id auction.Id) (*auction.Auction, error) {
	selector, err := idSelector(id)
	if err != nil {
		ctx.WithField("err", err).Error("mongoclient.MakeBsonM failed")
		return nil, err
	}
	res := &auction.Auction{}
	if err := r.q.FindOne(ctx, domain.TableAuctions, selector, res); err == query.ErrNotFound {
		return nil, nil
	} else if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
			"id":  id,
		}).Error("q.FindOne failed")
		return nil, err
	}
	return res, nil
}

func (r *auctionMongoRepo) FindAll(ctx bCtx.Ctx, optFns ...auction.FindAllOptionsFunc) ([]*auction.Auction, error) {
	opts, err := auction.GetFindAllOptions(optFns...)
	if err != nil {
		ctx.WithField("err", err).Error("auction.GetFindAllOptions failed")
		return nil, err
	}

	qry := bson.M{}
	if opts.ChainId != nil {
		qry["chainId"] = *opts.ChainId
	}
	if opts.PayToken != nil {
		qry["payToken"] = *opts.PayToken
	}
	if opts.Resulted != nil {
		qry["resulted"] = *opts.Resulted
	}

	res := []*auction.Auction{}
	if err := r.q.Search(ctx, domain.TableAuctions, 0, 0, "", qry, &res); err != nil {
		ctx.WithField("err", err).Error("q.Search failed")
		return nil, err
	}
	return res, nil
}

func (r *auctionMongoRepo) Create(ctx bCtx.Ctx, a *auction.Auction) error {
	a.AssetContract = a.AssetContract.ToLower()
	a.PayToken = a.PayToken.ToLower()
	if err := r.q.Insert(ctx, domain.TableAuctions, a); err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
			"id":  a.ToId(),
		}).Error("q.Insert failed")
		if err == query.ErrDuplicateKey {
			return domain.ErrAuctionAlreadyExists
		}
		return err
	}
	return nil
}

func (r *auctionMongoRepo) Patch(ctx bCtx.Ctx, id auction.Id, patchable *auction.AuctionPatchable) error {
	selector, err := idSelector(id)
	if err != nil {
		ctx.WithField("err", err).Error("mongoclient.MakeBsonM failed")
		return err
	}
	if err := r.q.Patch(ctx, domain.TableAuctions, selector, patchable); err == query.ErrNotFound {
		return domain.ErrNotFound
	} else if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
			"id":  id,
		}).Error("q.Patch failed")
		return err
	}
	return nil
}

func (r *auctionMongoRepo) Delete(ctx bCtx.Ctx, id auction.Id) error {
	selector, err := idSelector(id)
	if err != nil {
		ctx.WithField("err", err).Error("mongoclient.MakeBsonM failed")
		return err
	}
	if err := r.q.Remove(ctx, domain.TableAuctions, selector); err == query.ErrNotFound {
		return domain.ErrNotFound
	} else if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
			"id":  id,
		}).Error("q.Remove failed")
		return err
	}
	return nil
}
