package data

import (
	"context"
	"errors"
	"fmt"

	"github.com/yola1107/kratos/v2/library/xgo"
	"github.com/yola1107/kratos/v2/log"

	"github.com/harshitajammula/ludo/internal/biz"
	"github.com/harshitajammula/ludo/internal/biz/player"
)

var errRedisNil = errors.New("redis no exist player")

const (
	playerUIDField        = "uid"
	playerNickNameField   = "nickName"
	playerAvatarField     = "avatar"
	playerTotalBoardField = "totalBoard"
	playerTotalWinField   = "totalWin"
)

var allBaseDataFields = []string{
	playerUIDField,
	playerNickNameField,
	playerAvatarField,
	playerTotalBoardField,
	playerTotalWinField,
}

func playerKey(uid int64) string {
	return fmt.Sprintf("ludo:player:%d", uid)
}

type dataRepo struct {
	data *Data
	log  *log.Helper
}

func NewDataRepo(data *Data, logger log.Logger) biz.DataRepo {
	return &dataRepo{
		data: data,
		log:  log.NewHelper(logger),
	}
}

func (r *dataRepo) SaveProfile(ctx context.Context, base *player.BaseData) error {
	return r.data.redis.HMSet(ctx, playerKey(base.UID), toRedisMap(base)).Err()
}

func (r *dataRepo) LoadProfile(ctx context.Context, uid int64) (*player.BaseData, error) {
	key := playerKey(uid)

	v, err := r.data.redis.Exists(ctx, key).Result()
	if err != nil {
		return nil, err
	}
	if v == 0 {
		return nil, errRedisNil
	}

	values, err := r.data.redis.HMGet(ctx, key, allBaseDataFields...).Result()
	if err != nil {
		return nil, err
	}
	if len(values) == 0 {
		return nil, errRedisNil
	}
	return fromRedisData(uid, zipFields(allBaseDataFields, values)), nil
}

// RecordResult bumps the per-player round counters in one pipeline.
func (r *dataRepo) RecordResult(ctx context.Context, winners, losers []int64) error {
	pipe := r.data.redis.Pipeline()
	for _, uid := range winners {
		if uid <= 0 {
			continue // robots are not persisted
		}
		pipe.HIncrBy(ctx, playerKey(uid), playerTotalBoardField, 1)
		pipe.HIncrBy(ctx, playerKey(uid), playerTotalWinField, 1)
	}
	for _, uid := range losers {
		if uid <= 0 {
			continue
		}
		pipe.HIncrBy(ctx, playerKey(uid), playerTotalBoardField, 1)
	}
	_, err := pipe.Exec(ctx)
	return err
}

func zipFields(keys []string, values []any) map[string]string {
	m := map[string]string{}
	for i, v := range values {
		if v == nil {
			continue
		}
		m[keys[i]] = fmt.Sprintf("%v", v)
	}
	return m
}

func fromRedisData(uid int64, data map[string]string) *player.BaseData {
	return &player.BaseData{
		UID:        uid,
		NickName:   data[playerNickNameField],
		Avatar:     data[playerAvatarField],
		TotalBoard: xgo.StrToInt32(data[playerTotalBoardField]),
		TotalWin:   xgo.StrToInt32(data[playerTotalWinField]),
	}
}

func toRedisMap(b *player.BaseData) map[string]string {
	return map[string]string{
		playerUIDField:        xgo.Int64ToStr(b.UID),
		playerNickNameField:   b.NickName,
		playerAvatarField:     b.Avatar,
		playerTotalBoardField: xgo.Int32ToStr(b.TotalBoard),
		playerTotalWinField:   xgo.Int32ToStr(b.TotalWin),
	}
}
