package repository

import (
	"time"

	"github.com/gomodule/redigo/redis"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"locale-gateway-go/pkg/logging"
)

// RedisPool 连接池。本服务只读写语言槽位这一个键，连接量很小。
var RedisPool *redis.Pool

func InitRedis() {
	addr := viper.GetString("redis.addr")
	password := viper.GetString("redis.password")
	db := viper.GetInt("redis.db")

	maxIdle := viper.GetInt("redis.max_idle")
	if maxIdle <= 0 {
		maxIdle = 3
	}

	RedisPool = &redis.Pool{
		MaxIdle:     maxIdle,
		IdleTimeout: 240 * time.Second,
		Dial: func() (redis.Conn, error) {
			conn, err := redis.Dial("tcp", addr)
			if err != nil {
				logging.Logger.Error("Failed to connect Redis",
					zap.String("addr", addr),
					zap.Error(err),
				)
				return nil, err
			}

			// 如果设置了密码，执行 AUTH
			if password != "" {
				if _, authErr := conn.Do("AUTH", password); authErr != nil {
					if closeErr := conn.Close(); closeErr != nil {
						logging.Logger.Error("Failed to close redis connection after AUTH failure",
							zap.String("addr", addr),
							zap.Error(closeErr),
						)
					}
					logging.Logger.Error("Redis AUTH failed",
						zap.String("addr", addr),
						zap.Error(authErr),
					)
					return nil, authErr
				}
			}

			if db > 0 {
				if _, selectErr := conn.Do("SELECT", db); selectErr != nil {
					_ = conn.Close()
					logging.Logger.Error("Redis SELECT failed",
						zap.String("addr", addr),
						zap.Int("db", db),
						zap.Error(selectErr),
					)
					return nil, selectErr
				}
			}

			logging.Logger.Info("Redis connection established",
				zap.String("addr", addr),
				zap.Bool("auth", password != ""),
			)

			return conn, nil
		},
		TestOnBorrow: func(c redis.Conn, t time.Time) error {
			if time.Since(t) > time.Minute {
				_, err := c.Do("PING")
				if err != nil {
					logging.Logger.Warn("Redis connection health check failed",
						zap.String("addr", addr),
						zap.Error(err),
					)
				}
				return err
			}
			return nil
		},
	}
}
