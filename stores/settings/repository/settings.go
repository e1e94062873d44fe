package repository

import (
	"go.mongodb.org/mongo-driver/bson"

	bCtx "github.com/pricy-xyz/goauction/base/ctx"
	"github.com/pricy-xyz/goauction/domain"
	"github.com/pricy-xyz/goauction/domain/settings"
	"github.com/pricy-xyz/goauction/service/query"
)

// the engine keeps exactly one settings record
const settingsKey = "global"

type settingsDoc struct {
	Key               string `bson:"key"`
	settings.Settings `bson:",inline"`
}

type settingsMongoRepo struct {
	q query.Mongo
}

func NewSettingsRepo(q query.Mongo) settings.Repo {
	return &settingsMongoRepo{q}
}

func (r *settingsMongoRepo) Get(ctx bCtx.Ctx) (*settings.Settings, error) {
	doc := &settingsDoc{}
	if err := r.q.FindOne(ctx, domain.TableSettings, bson.M{"key": settingsKey}, doc); err == query.ErrNotFound {
		return nil, domain.ErrNotFound
	} else if err != nil {
		ctx.WithField("err", err).Error("q.FindOne failed")
		return nil, err
	}
	return &doc.Settings, nil
}

func (r *settingsMongoRepo) Init(ctx bCtx.Ctx, s *settings.Settings) error {
	if _, err := r.Get(ctx); err == nil {
		return nil
	} else if err != domain.ErrNotFound {
		return err
	}
	if err := r.q.Insert(ctx, domain.TableSettings, &settingsDoc{Key: settingsKey, Settings: *s}); err != nil && err != query.ErrDuplicateKey {
		ctx.WithField("err", err).Error("q.Insert failed")
		return err
	}
	return nil
}

func (r *settingsMongoRepo) Patch(ctx bCtx.Ctx, p *settings.Patchable) error {
	if err := r.q.Patch(ctx, domain.TableSettings, bson.M{"key": settingsKey}, p); err != nil {
		ctx.WithField("err", err).Error("q.Patch failed")
		return err
	}
	return nil
}
