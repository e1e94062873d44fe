package repository

import (
	bCtx "github.com/pricy-xyz/goauction/base/ctx"
	"github.com/pricy-xyz/goauction/base/log"
	"github.com/pricy-xyz/goauction/domain"
	"github.com/pricy-xyz/goauction/domain/auction"
	"github.com/pricy-xyz/goauction/service/query"
)

type highestBidMongoRepo struct {
	q query.Mongo
}

func NewHighestBidRepo(q query.Mongo) auction.HighestBidRepo {
	return &highestBidMongoRepo{q}
}

func (r *highestBidMongoRepo) FindOne(ctx bCtx.Ctx, id auction.Id) (*auction.HighestBid, error) {
	selector, err := idSelector(id)
	if err != nil {
		ctx.WithField("err", err).Error("mongoclient.MakeBsonM failed")
		return nil, err
	}
	res := &auction.HighestBid{}
	if err := r.q.FindOne(ctx, domain.TableHighestBids, selector, res); err == query.ErrNotFound {
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

func (r *highestBidMongoRepo) Upsert(ctx bCtx.Ctx, bid *auction.HighestBid) error {
	bid.AssetContract = bid.AssetContract.ToLower()
	bid.Bidder = bid.Bidder.ToLower()
	selector, err := idSelector(bid.ToId())
	if err != nil {
		ctx.WithField("err", err).Error("mongoclient.MakeBsonM failed")
		return err
	}
	if err := r.q.Upsert(ctx, domain.TableHighestBids, selector, bid); err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
			"id":  bid.ToId(),
		}).Error("q.Upsert failed")
		return err
	}
	return nil
}

func (r *highestBidMongoRepo) Delete(ctx bCtx.Ctx, id auction.Id) error {
	selector, err := idSelector(id)
	if err != nil {
		ctx.WithField("err", err).Error("mongoclient.MakeBsonM failed")
		return err
	}
	if err := r.q.Remove(ctx, domain.TableHighestBids, selector); err != nil && err != query.ErrNotFound {
		ctx.WithFields(log.Fields{
			"err": err,
			"id":  id,
		}).Error("q.Remove failed")
		return err
	}
	return nil
}
