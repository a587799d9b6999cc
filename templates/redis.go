// Copyright 2024 Tomas Machalek <tomas.machalek@gmail.com>
// Copyright 2024 Institute of the Czech National Corpus,
//                Faculty of Arts, Charles University
//   This file is part of CQLBUILD.
//
//  CQLBUILD is free software: you can redistribute it and/or modify
//  it under the terms of the GNU General Public License as published by
//  the Free Software Foundation, either version 3 of the License, or
//  (at your option) any later version.
//
//  CQLBUILD is distributed in the hope that it will be useful,
//  but WITHOUT ANY WARRANTY; without even the implied warranty of
//  MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
//  GNU General Public License for more details.
//
//  You should have received a copy of the GNU General Public License
//  along with CQLBUILD.  If not, see <https://www.gnu.org/licenses/>.

package templates

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"cqlbuild/builder"
	"cqlbuild/cqerror"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	DefaultStorageKey = "cqlbuildTemplates"

	connectionRetryInterval = 2 * time.Second
)

// errCorruptData marks a stored list which cannot be decoded. Unlike
// a transport failure this does not go away by retrying, so Save may
// replace the value; any other failure must leave the stored data
// untouched.
var errCorruptData = cqerror.PersistenceError{Msg: "stored template list is corrupted"}

// Conf configures the Redis connection the template store uses.
type Conf struct {
	Host     string `json:"host"`
	Port     int    `json:"port"`
	DB       int    `json:"db"`
	Password string `json:"password"`

	// StorageKey is the single key the whole template list lives under.
	StorageKey string `json:"storageKey"`
}

// templateStorage is the raw value access the repository builds on.
type templateStorage interface {
	read(ctx context.Context) (data string, found bool, err error)
	write(ctx context.Context, data string) error
}

type redisStorage struct {
	c   *redis.Client
	key string
}

func (s *redisStorage) read(ctx context.Context) (string, bool, error) {
	cmd := s.c.Get(ctx, s.key)
	if cmd.Err() == redis.Nil {
		return "", false, nil

	} else if cmd.Err() != nil {
		return "", false, cmd.Err()
	}
	return cmd.Val(), true, nil
}

func (s *redisStorage) write(ctx context.Context, data string) error {
	return s.c.Set(ctx, s.key, data, 0).Err()
}

// RedisRepository keeps all templates as one JSON-encoded list under
// a single key. The read-modify-write cycle is guarded by a mutex so
// the most-recent-first ordering survives concurrent saves.
type RedisRepository struct {
	c       *redis.Client
	storage templateStorage
	tz      *time.Location
	lock    sync.Mutex
}

func (repo *RedisRepository) TestConnection(timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	for {
		err := repo.c.Ping(ctx).Err()
		if err == nil {
			return nil
		}
		log.Warn().Err(err).Msg("Waiting for Redis...")
		select {
		case <-ctx.Done():
			return fmt.Errorf("failed to connect to Redis: %w", ctx.Err())
		case <-time.After(connectionRetryInterval):
		}
	}
}

func (repo *RedisRepository) load(ctx context.Context) ([]*CQLTemplate, error) {
	data, found, err := repo.storage.read(ctx)
	if err != nil {
		return []*CQLTemplate{}, cqerror.PersistenceError{
			Msg: fmt.Sprintf("failed to read templates: %s", err),
		}
	}
	if !found {
		return []*CQLTemplate{}, nil
	}
	var items []*CQLTemplate
	if err := json.Unmarshal([]byte(data), &items); err != nil {
		log.Warn().Err(err).Msg("stored template list is corrupted")
		return []*CQLTemplate{}, errCorruptData
	}
	return items, nil
}

func (repo *RedisRepository) write(ctx context.Context, items []*CQLTemplate) error {
	data, err := json.Marshal(items)
	if err != nil {
		return cqerror.PersistenceError{
			Msg: fmt.Sprintf("failed to encode templates: %s", err),
		}
	}
	if err := repo.storage.write(ctx, string(data)); err != nil {
		return cqerror.PersistenceError{
			Msg: fmt.Sprintf("failed to write templates: %s", err),
		}
	}
	return nil
}

func (repo *RedisRepository) Save(
	ctx context.Context,
	name, cql string,
	elements []builder.BuilderElement,
) (*CQLTemplate, error) {
	tpl, err := newTemplate(name, cql, elements, repo.tz)
	if err != nil {
		return nil, err
	}
	repo.lock.Lock()
	defer repo.lock.Unlock()
	items, err := repo.load(ctx)
	if err != nil {
		// a transient read failure must not wipe the stored
		// list; only a list nobody can decode gets replaced
		if !errors.Is(err, errCorruptData) {
			return nil, err
		}
		log.Warn().Msg("replacing corrupted template list")
	}
	items = append([]*CQLTemplate{tpl}, items...)
	if err := repo.write(ctx, items); err != nil {
		return nil, err
	}
	return tpl, nil
}

// List returns stored templates, most recently saved first. On a
// persistence failure it degrades to an empty list and returns the
// problem alongside so a caller can show the data it has plus
// a warning.
func (repo *RedisRepository) List(ctx context.Context) ([]*CQLTemplate, error) {
	repo.lock.Lock()
	defer repo.lock.Unlock()
	return repo.load(ctx)
}

func (repo *RedisRepository) Delete(ctx context.Context, templateID string) error {
	repo.lock.Lock()
	defer repo.lock.Unlock()
	items, err := repo.load(ctx)
	if err != nil {
		return err
	}
	ans := make([]*CQLTemplate, 0, len(items))
	var found bool
	for _, item := range items {
		if item.ID == templateID {
			found = true
			continue
		}
		ans = append(ans, item)
	}
	if !found {
		return cqerror.InputError{Msg: fmt.Sprintf("template `%s` not found", templateID)}
	}
	return repo.write(ctx, ans)
}

func NewRedisRepository(conf *Conf, tz *time.Location) *RedisRepository {
	key := conf.StorageKey
	if key == "" {
		key = DefaultStorageKey
		log.Warn().
			Str("key", key).
			Msg("templates storage key not specified, using default")
	}
	c := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", conf.Host, conf.Port),
		Password: conf.Password,
		DB:       conf.DB,
	})
	return &RedisRepository{
		c:       c,
		storage: &redisStorage{c: c, key: key},
		tz:      tz,
	}
}
