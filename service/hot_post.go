package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/Xushengqwer/board_service/constant"
	"github.com/Xushengqwer/board_service/models/dto"
	"github.com/Xushengqwer/board_service/models/vo"
	"github.com/Xushengqwer/board_service/myErrors"
	redisRepo "github.com/Xushengqwer/board_service/repo/redis"
)

// HotPostService 提供热门帖子榜单的读取与刷新。
// 榜单排名优先取 Redis 热度榜 ZSet 的 Top N（配合数据库补水装配摘要），
// 热度榜为空或不可用时退回按浏览量排序的第一页。
// 读路径优先走整单缓存，未命中时现场重建并写回。刷新由定时任务周期性触发。
type HotPostService interface {
	// GetHotPosts 读取热门帖子榜单。
	GetHotPosts(ctx context.Context) ([]vo.PostSummaryVO, error)

	// RefreshHotPosts 从数据库重建榜单并覆盖缓存，定时任务调用。
	RefreshHotPosts(ctx context.Context) error
}

type hotPostService struct {
	listService PostListService
	cacheRepo   redisRepo.HotPostsCacheRepository
	rankRepo    redisRepo.PostRankRepository
	logger      *zap.Logger
}

// NewHotPostService 是 hotPostService 的构造函数。
// - cacheRepo 与 rankRepo 允许为 nil，对应路径退化为纯数据库查询。
func NewHotPostService(
	listService PostListService,
	cacheRepo redisRepo.HotPostsCacheRepository,
	rankRepo redisRepo.PostRankRepository,
	logger *zap.Logger,
) HotPostService {
	return &hotPostService{
		listService: listService,
		cacheRepo:   cacheRepo,
		rankRepo:    rankRepo,
		logger:      logger,
	}
}

// GetHotPosts 缓存优先，未命中回源并写回。
func (s *hotPostService) GetHotPosts(ctx context.Context) ([]vo.PostSummaryVO, error) {
	if s.cacheRepo != nil {
		posts, err := s.cacheRepo.GetHotPosts(ctx)
		if err == nil {
			return posts, nil
		}
		if !errors.Is(err, myErrors.ErrCacheMiss) {
			// Redis 故障降级回源，不把故障传染给读路径
			s.logger.Warn("读取热门帖子缓存异常，回源数据库", zap.Error(err))
		}
	}

	posts, err := s.loadHotPostsFromDB(ctx)
	if err != nil {
		return nil, err
	}

	if s.cacheRepo != nil {
		go func() {
			cacheCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
			defer cancel()
			if err := s.cacheRepo.SetHotPosts(cacheCtx, posts); err != nil {
				s.logger.Warn("回填热门帖子缓存失败", zap.Error(err))
			}
		}()
	}
	return posts, nil
}

// RefreshHotPosts 重建榜单缓存。
func (s *hotPostService) RefreshHotPosts(ctx context.Context) error {
	posts, err := s.loadHotPostsFromDB(ctx)
	if err != nil {
		return err
	}
	if s.cacheRepo == nil {
		return nil
	}
	if err := s.cacheRepo.SetHotPosts(ctx, posts); err != nil {
		return err
	}
	s.logger.Info("热门帖子缓存已刷新", zap.Int("count", len(posts)))
	return nil
}

// loadHotPostsFromDB 重建榜单: 先按热度榜 ZSet 排名，兜底按浏览量排序。
func (s *hotPostService) loadHotPostsFromDB(ctx context.Context) ([]vo.PostSummaryVO, error) {
	if s.rankRepo != nil {
		ids, err := s.rankRepo.GetTopPostIDs(ctx, constant.HotPostsCacheSize)
		if err != nil {
			// 热度榜不可用时降级，榜单照常可读
			s.logger.Warn("读取热度榜排名失败，改用浏览量排序", zap.Error(err))
		} else if len(ids) > 0 {
			posts, err := s.listService.SummarizeByIDs(ctx, ids)
			if err != nil {
				return nil, err
			}
			if len(posts) > 0 {
				return posts, nil
			}
			// ZSet 里的帖子已全部被删，走兜底路径重建
		}
	}

	page, err := s.listService.ListPosts(ctx, dto.PostPageQuery{
		Page: 0,
		Size: constant.HotPostsCacheSize,
		Sort: dto.SortViews,
	})
	if err != nil {
		return nil, err
	}
	return page.Posts, nil
}
