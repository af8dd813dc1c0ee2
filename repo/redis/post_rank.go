package redis

import (
	"context"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/Xushengqwer/board_service/constant"
)

// PostRankRepository 维护帖子浏览热度榜（Redis ZSet）。
// 这是一份非权威的旁路数据: 浏览量的权威计数在 MySQL 中，
// 这里的分数仅用于定时任务截取热榜，丢失可以重建。
type PostRankRepository interface {
	// IncrViewRank 将帖子在热度榜中的分数加一。
	// - 在详情读取的旁路异步调用，失败只记日志不影响主流程。
	IncrViewRank(ctx context.Context, postID uint64) error

	// GetTopPostIDs 取热度榜分数最高的前 n 个帖子 ID。
	GetTopPostIDs(ctx context.Context, n int64) ([]uint64, error)

	// RemovePost 将帖子从热度榜中移除，帖子删除时调用。
	RemovePost(ctx context.Context, postID uint64) error
}

type postRankRepository struct {
	client *redis.Client
	logger *zap.Logger
}

// NewPostRankRepository 是 postRankRepository 的构造函数。
func NewPostRankRepository(client *redis.Client, logger *zap.Logger) PostRankRepository {
	return &postRankRepository{
		client: client,
		logger: logger,
	}
}

func (r *postRankRepository) IncrViewRank(ctx context.Context, postID uint64) error {
	member := strconv.FormatUint(postID, 10)
	if err := r.client.ZIncrBy(ctx, constant.PostsRankKey, 1, member).Err(); err != nil {
		r.logger.Warn("热度榜分数自增失败", zap.Uint64("postID", postID), zap.Error(err))
		return fmt.Errorf("热度榜分数自增失败: %w", err)
	}
	return nil
}

func (r *postRankRepository) GetTopPostIDs(ctx context.Context, n int64) ([]uint64, error) {
	members, err := r.client.ZRevRange(ctx, constant.PostsRankKey, 0, n-1).Result()
	if err != nil {
		return nil, fmt.Errorf("读取热度榜失败: %w", err)
	}
	ids := make([]uint64, 0, len(members))
	for _, m := range members {
		id, parseErr := strconv.ParseUint(m, 10, 64)
		if parseErr != nil {
			// 脏成员跳过即可，热度榜不是权威数据
			r.logger.Warn("热度榜中存在非法成员", zap.String("member", m))
			continue
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func (r *postRankRepository) RemovePost(ctx context.Context, postID uint64) error {
	member := strconv.FormatUint(postID, 10)
	if err := r.client.ZRem(ctx, constant.PostsRankKey, member).Err(); err != nil {
		return fmt.Errorf("从热度榜移除帖子失败: %w", err)
	}
	return nil
}
