package conf

import (
	"flag"
	"fmt"
	"os"

	"github.com/yola1107/kratos/v2/config"
	"github.com/yola1107/kratos/v2/config/file"
	"github.com/yola1107/kratos/v2/log"
)

const Name = "ludo"
const Version = "v0.1.0"
const GameID = 137

var ServerID = "" // room instance ID

func init() {
	flag.StringVar(&ServerID, "sid", os.Getenv("HOSTNAME"), "specify the server ID.")
}

type (
	Bootstrap struct {
		Server *Server
		Data   *Data
		Room   *Room
	}

	Server struct {
		Http *HTTP
	}
	HTTP struct {
		Network string
		Addr    string
		Timeout int64 // seconds
	}

	Data struct {
		Redis *Redis
	}
	Redis struct {
		Addr     string
		Password string
		Db       int32
	}

	Room struct {
		Table    *Table
		Game     *Game
		Robot    *Robot
		LogCache *LogCache
	}
	Table struct {
		TableNum int32 // tables managed by this room
		ChairNum int32 // seats per table
	}
	Game struct {
		MinStartPlayers int32 // seated+ready players needed to start
		AutoReady       bool
		TeamMode        bool
		TurnTimeoutSec  int64 // per-turn deadline before auto-play
		MissedTurnLimit int32 // missed turns before elimination
		BonusOnFinish   bool  // finishing a token grants a bonus turn
	}
	Robot struct {
		Open          bool
		TableMaxCount int32 // robots allowed per table
		MinPlayCount  int32 // tables reserved for robot-only play
	}
	LogCache struct {
		Open bool
	}
)

// LoadConfig loads and validates the bootstrap config from the given path.
func LoadConfig(flagconf string) (config.Config, *Bootstrap) {
	c := config.New(
		config.WithSource(
			file.NewSource(flagconf),
		),
	)
	if err := c.Load(); err != nil {
		panic(err)
	}

	var bc Bootstrap
	if err := c.Scan(&bc); err != nil {
		panic(fmt.Errorf("bootstrap config invalid: %v", err))
	}
	if err := bc.validate(); err != nil {
		panic(err)
	}
	return c, &bc
}

func (b *Bootstrap) validate() error {
	switch {
	case b.Server == nil || b.Server.Http == nil || b.Server.Http.Addr == "":
		return fmt.Errorf("config: server.http.addr required")
	case b.Data == nil || b.Data.Redis == nil || b.Data.Redis.Addr == "":
		return fmt.Errorf("config: data.redis.addr required")
	case b.Room == nil || b.Room.Table == nil || b.Room.Game == nil:
		return fmt.Errorf("config: room.table and room.game required")
	}
	if b.Room.Table.TableNum <= 0 || b.Room.Table.ChairNum < 2 || b.Room.Table.ChairNum > 4 {
		return fmt.Errorf("config: room.table needs tableNum > 0 and chairNum in 2..4")
	}
	g := b.Room.Game
	if g.MinStartPlayers < 2 {
		g.MinStartPlayers = 2
	}
	if g.TurnTimeoutSec <= 0 {
		g.TurnTimeoutSec = 30
	}
	if g.MissedTurnLimit <= 0 {
		g.MissedTurnLimit = 5
	}
	if b.Room.Robot == nil {
		b.Room.Robot = &Robot{}
	}
	if b.Room.LogCache == nil {
		b.Room.LogCache = &LogCache{}
	}
	return nil
}

// WatchConfig subscribes to hot-reloadable room sections.
func WatchConfig(c config.Config, bc *Bootstrap) error {
	for key, apply := range map[string]func(config.Value) error{
		"room.game": func(v config.Value) error {
			var g Game
			if err := v.Scan(&g); err != nil {
				return err
			}
			*bc.Room.Game = g
			return nil
		},
		"room.robot": func(v config.Value) error {
			var r Robot
			if err := v.Scan(&r); err != nil {
				return err
			}
			*bc.Room.Robot = r
			return nil
		},
		"room.logCache": func(v config.Value) error {
			var l LogCache
			if err := v.Scan(&l); err != nil {
				return err
			}
			*bc.Room.LogCache = l
			return nil
		},
	} {
		key, apply := key, apply
		if err := c.Watch(key, func(_ string, v config.Value) {
			if err := apply(v); err != nil {
				log.Errorf("[config] scan failed: key=%q, err=%v", key, err)
				return
			}
			log.Warnf("[config] %q updated", key)
		}); err != nil {
			return fmt.Errorf("watch %q failed: %w", key, err)
		}
	}
	return nil
}
