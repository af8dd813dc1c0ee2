package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/Xushengqwer/board_service/models/dto"
	"github.com/Xushengqwer/board_service/models/entities"
	"github.com/Xushengqwer/board_service/models/vo"
	"github.com/Xushengqwer/board_service/repo/mysql"
)

// PostListService 定义了帖子列表页的业务逻辑接口。
type PostListService interface {
	// ListPosts 执行搜索、排序、分页三个正交维度组合的列表查询，
	// 并为每条摘要装配标签、点赞数、评论数与 isNew 标记。
	// - 返回体中的全站统计与过滤条件无关，搜索零命中时照常返回。
	ListPosts(ctx context.Context, query dto.PostPageQuery) (*vo.PostListPageVO, error)

	// SummarizeByIDs 按给定的 ID 顺序装配帖子摘要。
	// - 热度榜读取路径使用: ID 序列来自 Redis ZSet，顺序即排名。
	// - 已不存在的帖子被跳过，结果可能短于入参。
	SummarizeByIDs(ctx context.Context, postIDs []uint64) ([]vo.PostSummaryVO, error)
}

type postListService struct {
	listRepo    mysql.PostListRepository
	postRepo    mysql.PostRepository
	hashtagRepo mysql.HashtagRepository
	commentRepo mysql.CommentRepository
	likeRepo    mysql.LikeRepository
	logger      *zap.Logger
}

// NewPostListService 是 postListService 的构造函数。
func NewPostListService(
	listRepo mysql.PostListRepository,
	postRepo mysql.PostRepository,
	hashtagRepo mysql.HashtagRepository,
	commentRepo mysql.CommentRepository,
	likeRepo mysql.LikeRepository,
	logger *zap.Logger,
) PostListService {
	return &postListService{
		listRepo:    listRepo,
		postRepo:    postRepo,
		hashtagRepo: hashtagRepo,
		commentRepo: commentRepo,
		likeRepo:    likeRepo,
		logger:      logger,
	}
}

// ListPosts 查询一页帖子并批量装配摘要所需的派生数据。
func (s *postListService) ListPosts(ctx context.Context, query dto.PostPageQuery) (*vo.PostListPageVO, error) {
	posts, total, err := s.listRepo.ListPosts(ctx, query)
	if err != nil {
		return nil, err
	}

	summaries, err := s.assembleSummaries(ctx, posts)
	if err != nil {
		return nil, err
	}

	// 全站统计是口径独立的两个数字，不受搜索条件影响
	totalPostCount, err := s.postRepo.CountPosts(ctx)
	if err != nil {
		return nil, err
	}
	totalCommentCount, err := s.commentRepo.CountAllActive(ctx)
	if err != nil {
		return nil, err
	}

	totalPages := total / int64(query.Size)
	if total%int64(query.Size) != 0 {
		totalPages++
	}

	return &vo.PostListPageVO{
		Posts:             summaries,
		Page:              query.Page,
		Size:              query.Size,
		TotalElements:     total,
		TotalPages:        totalPages,
		TotalPostCount:    totalPostCount,
		TotalCommentCount: totalCommentCount,
	}, nil
}

// SummarizeByIDs 按外部给定的排名顺序装配摘要。
func (s *postListService) SummarizeByIDs(ctx context.Context, postIDs []uint64) ([]vo.PostSummaryVO, error) {
	posts, err := s.postRepo.GetPostsByIDs(ctx, postIDs)
	if err != nil {
		return nil, err
	}
	return s.assembleSummaries(ctx, posts)
}

// assembleSummaries 以三次批量查询装配整页摘要，避免逐帖的 N+1 查询。
func (s *postListService) assembleSummaries(ctx context.Context, posts []*entities.Post) ([]vo.PostSummaryVO, error) {
	postIDs := make([]uint64, 0, len(posts))
	for _, p := range posts {
		postIDs = append(postIDs, p.ID)
	}

	hashtags, err := s.hashtagRepo.GetHashtagsByPostIDs(ctx, postIDs)
	if err != nil {
		return nil, err
	}
	likeCounts, err := s.likeRepo.CountByPostIDs(ctx, postIDs)
	if err != nil {
		return nil, err
	}
	commentCounts, err := s.commentRepo.CountActiveByPostIDs(ctx, postIDs)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	summaries := make([]vo.PostSummaryVO, 0, len(posts))
	for _, p := range posts {
		summaries = append(summaries, vo.NewPostSummaryVO(
			p,
			hashtags[p.ID],
			likeCounts[p.ID],
			commentCounts[p.ID],
			now,
		))
	}
	return summaries, nil
}
