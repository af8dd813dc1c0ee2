package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/Xushengqwer/board_service/constant"
	"github.com/Xushengqwer/board_service/models/vo"
	"github.com/Xushengqwer/board_service/myErrors"
)

// HotPostsCacheRepository 读写热门帖子榜单缓存。
// 榜单由定时任务整体刷新，以单个 JSON 串存储，读路径不做部分更新。
type HotPostsCacheRepository interface {
	// SetHotPosts 以 JSON 覆盖写入榜单并设置过期时间。
	SetHotPosts(ctx context.Context, posts []vo.PostSummaryVO) error

	// GetHotPosts 读取榜单。
	// - Key 不存在（过期或尚未刷新）时返回 myErrors.ErrCacheMiss。
	GetHotPosts(ctx context.Context) ([]vo.PostSummaryVO, error)
}

type hotPostsCacheRepository struct {
	client *redis.Client
	logger *zap.Logger
}

// NewHotPostsCacheRepository 是 hotPostsCacheRepository 的构造函数。
func NewHotPostsCacheRepository(client *redis.Client, logger *zap.Logger) HotPostsCacheRepository {
	return &hotPostsCacheRepository{
		client: client,
		logger: logger,
	}
}

func (r *hotPostsCacheRepository) SetHotPosts(ctx context.Context, posts []vo.PostSummaryVO) error {
	data, err := json.Marshal(posts)
	if err != nil {
		return fmt.Errorf("序列化热门帖子榜单失败: %w", err)
	}
	if err := r.client.Set(ctx, constant.HotPostsCacheKey, data, constant.HotPostsCacheTTL).Err(); err != nil {
		r.logger.Error("写入热门帖子缓存失败", zap.Error(err))
		return fmt.Errorf("写入热门帖子缓存失败: %w", err)
	}
	return nil
}

func (r *hotPostsCacheRepository) GetHotPosts(ctx context.Context) ([]vo.PostSummaryVO, error) {
	data, err := r.client.Get(ctx, constant.HotPostsCacheKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, myErrors.ErrCacheMiss
		}
		r.logger.Error("读取热门帖子缓存失败", zap.Error(err))
		return nil, fmt.Errorf("读取热门帖子缓存失败: %w", err)
	}
	var posts []vo.PostSummaryVO
	if err := json.Unmarshal(data, &posts); err != nil {
		// 缓存内容损坏按未命中处理，等待下一轮刷新覆盖
		r.logger.Warn("热门帖子缓存内容无法解析，按未命中处理", zap.Error(err))
		return nil, myErrors.ErrCacheMiss
	}
	return posts, nil
}
