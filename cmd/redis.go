package main

import (
	"github.com/redis/go-redis/v9"
)

func (a *App) initRedis() error {
	opt, err := redis.ParseURL(a.Config.RedisUrl)
	if err != nil {
		return err
	}

	a.Redis = redis.NewClient(opt)

	return nil
}
