package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"skill_graph_backend/internal/model"
	"skill_graph_backend/internal/util"
	"time"

	"github.com/go-redis/redis/v8"
)

// SkillGraphCache 以用户为键缓存已计算的技能图谱
type SkillGraphCache struct {
	Redis *redis.Client
	TTL   time.Duration
}

func NewSkillGraphCache(rdb *redis.Client, ttl time.Duration) *SkillGraphCache {
	return &SkillGraphCache{Redis: rdb, TTL: ttl}
}

func skillGraphKey(userID uint) string {
	return fmt.Sprintf("skill_graph:user:%d", userID)
}

func (c *SkillGraphCache) Get(ctx context.Context, userID uint) (*model.SkillGraph, error) {
	data, err := c.Redis.Get(ctx, skillGraphKey(userID)).Bytes()
	if err == redis.Nil {
		return nil, util.ErrCacheMiss
	}
	if err != nil {
		return nil, err
	}

	var graph model.SkillGraph
	if err := json.Unmarshal(data, &graph); err != nil {
		return nil, fmt.Errorf("decode cached skill graph: %w", err)
	}
	return &graph, nil
}

func (c *SkillGraphCache) Set(ctx context.Context, userID uint, graph *model.SkillGraph) error {
	data, err := json.Marshal(graph)
	if err != nil {
		return err
	}
	return c.Redis.Set(ctx, skillGraphKey(userID), data, c.TTL).Err()
}

// Invalidate 删除全部技能图谱缓存，雷达配置变更后调用
func (c *SkillGraphCache) Invalidate(ctx context.Context) error {
	iter := c.Redis.Scan(ctx, 0, "skill_graph:user:*", 100).Iterator()
	for iter.Next(ctx) {
		if err := c.Redis.Del(ctx, iter.Val()).Err(); err != nil {
			return err
		}
	}
	return iter.Err()
}
