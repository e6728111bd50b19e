package data

import (
	"github.com/google/wire"
	"github.com/redis/go-redis/v9"
	kredis "github.com/yola1107/kratos/v2/library/db/redis"
	"github.com/yola1107/kratos/v2/log"

	"github.com/harshitajammula/ludo/internal/conf"
)

// ProviderSet is data providers.
var ProviderSet = wire.NewSet(NewData, NewDataRepo, NewRedis)

// Data wraps the storage clients shared by the repo implementations.
type Data struct {
	redis *redis.Client
}

func NewData(c *conf.Data, logger log.Logger, rdb *redis.Client) (*Data, func(), error) {
	cleanup := func() {
		log.NewHelper(logger).Info("closing the data resources")
		if rdb != nil {
			_ = rdb.Close()
		}
	}
	return &Data{redis: rdb}, cleanup, nil
}

func NewRedis(c *conf.Data) *redis.Client {
	return kredis.NewClient(
		kredis.WithAddress(c.Redis.Addr),
		kredis.WithPassword(c.Redis.Password),
		kredis.WithDB(int(c.Redis.Db)),
	)
}
