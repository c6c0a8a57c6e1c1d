package redisstorage

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/go-redis/redis/v8"
	"github.com/sgostarter/i/commerr"
	"github.com/sgostarter/i/l"
	"github.com/sgostarter/libalgebra/archive"
	"github.com/spf13/cast"
)

func NewRedisArchiveStorage(preKey string, redisCli *redis.Client, logger l.Wrapper) archive.Storage {
	if logger == nil {
		logger = l.NewNopLoggerWrapper()
	}

	logger = logger.WithFields(l.StringField(l.ClsKey, "archiveStorage"))

	if redisCli == nil {
		logger.Fatal("no redis client")
	}

	return &redisStorageImpl{
		logger:   logger,
		preKey:   preKey,
		redisCli: redisCli,
	}
}

type redisStorageImpl struct {
	logger   l.Wrapper
	preKey   string
	redisCli *redis.Client
}

func (impl *redisStorageImpl) recordsKey() string {
	return impl.preKey + ":archive:records"
}

func (impl *redisStorageImpl) Save(r *archive.Record) error {
	d, err := json.Marshal(r)
	if err != nil {
		return err
	}

	ok, err := impl.redisCli.HSetNX(context.Background(), impl.recordsKey(),
		cast.ToString(r.ID), d).Result()
	if err != nil {
		return err
	}

	if !ok {
		return commerr.ErrAlreadyExists
	}

	return nil
}

func (impl *redisStorageImpl) Load(id uint64) (r *archive.Record, err error) {
	d, err := impl.redisCli.HGet(context.Background(), impl.recordsKey(),
		cast.ToString(id)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			err = commerr.ErrNotFound
		}

		return
	}

	r = &archive.Record{}
	err = json.Unmarshal([]byte(d), r)

	return
}

func (impl *redisStorageImpl) List() (rs []*archive.Record, err error) {
	m, err := impl.redisCli.HGetAll(context.Background(), impl.recordsKey()).Result()
	if err != nil {
		return
	}

	for _, d := range m {
		r := &archive.Record{}

		if e := json.Unmarshal([]byte(d), r); e != nil {
			impl.logger.WithFields(l.ErrorField(e)).Error("unmarshal record failed")

			continue
		}

		rs = append(rs, r)
	}

	return
}

func (impl *redisStorageImpl) Remove(id uint64) error {
	n, err := impl.redisCli.HDel(context.Background(), impl.recordsKey(),
		cast.ToString(id)).Result()
	if err != nil {
		return err
	}

	if n == 0 {
		return commerr.ErrNotFound
	}

	return nil
}
