// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/talent/internal/assessment/internal/domain"
	"github.com/pkg/errors"
)

var ErrBlueprintNotFound = errors.New("测评卷没找到")

const expiration = 24 * time.Hour

type BlueprintCache interface {
	Get(ctx context.Context, id int64) (domain.Blueprint, error)
	Set(ctx context.Context, bp domain.Blueprint) error
	Del(ctx context.Context, id int64) error
}

type BlueprintECache struct {
	ec ecache.Cache
}

func NewBlueprintECache(ec ecache.Cache) BlueprintCache {
	return &BlueprintECache{
		ec: &ecache.NamespaceCache{
			Namespace: "blueprint:",
			C:         ec,
		},
	}
}

func (c *BlueprintECache) Get(ctx context.Context, id int64) (domain.Blueprint, error) {
	val := c.ec.Get(ctx, c.key(id))
	if val.KeyNotFound() {
		return domain.Blueprint{}, ErrBlueprintNotFound
	}
	if val.Err != nil {
		return domain.Blueprint{}, errors.Wrap(val.Err, "查询缓存出错")
	}
	var bp domain.Blueprint
	err := json.Unmarshal([]byte(val.Val.(string)), &bp)
	if err != nil {
		return domain.Blueprint{}, errors.Wrap(err, "反序列化测评卷失败")
	}
	return bp, nil
}

func (c *BlueprintECache) Set(ctx context.Context, bp domain.Blueprint) error {
	data, err := json.Marshal(bp)
	if err != nil {
		return errors.Wrap(err, "序列化测评卷失败")
	}
	return c.ec.Set(ctx, c.key(bp.ID), string(data), expiration)
}

func (c *BlueprintECache) Del(ctx context.Context, id int64) error {
	_, err := c.ec.Delete(ctx, c.key(id))
	return err
}

func (c *BlueprintECache) key(id int64) string {
	return fmt.Sprintf("detail:%d", id)
}
