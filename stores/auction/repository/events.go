package repository

import (
	bCtx "github.com/pricy-xyz/goauction/base/ctx"
	"github.com/pricy-xyz/goauction/domain"
	"github.com/pricy-xyz/goauction/domain/auction"
	"github.com/pricy-xyz/goauction/service/query"
)

type eventMongoRepo struct {
	q query.Mongo
}

func NewEventRepo(q query.Mongo) auction.EventRepo {
	return &eventMongoRepo{q}
}

func (r *eventMongoRepo) Insert(ctx bCtx.Ctx, ev *auction.Event) error {
	ev.AssetContract = ev.AssetContract.ToLower()
	ev.Account = ev.Account.ToLower()
	if err := r.q.Insert(ctx, domain.TableAuctionEvents, ev); err != nil {
		ctx.WithField("err", err).Error("q.Insert failed")
		return err
	}
	return nil
}

func (r *eventMongoRepo) FindAllByAsset(ctx bCtx.Ctx, id auction.Id) ([]*auction.Event, error) {
	selector, err := idSelector(id)
	if err != nil {
		ctx.WithField("err", err).Error("mongoclient.MakeBsonM failed")
		return nil, err
	}
	res := []*auction.Event{}
	if err := r.q.Search(ctx, domain.TableAuctionEvents, 0, 0, "time", selector, &res); err != nil {
		ctx.WithField("err", err).Error("q.Search failed")
		return nil, err
	}
	return res, nil
}
