package service

import (
	"context"
	"errors"

	"github.com/Xushengqwer/go-common/commonerrors"
	"go.uber.org/zap"

	"github.com/Xushengqwer/board_service/models/entities"
	"github.com/Xushengqwer/board_service/models/vo"
	"github.com/Xushengqwer/board_service/myErrors"
	"github.com/Xushengqwer/board_service/repo/mysql"
)

// LikeService 定义了点赞业务逻辑接口。
// 一个访客对一个帖子至多一个赞；点赞与取消都是显式操作，不做 toggle。
// 重复点赞返回 ErrAlreadyLiked，取消不存在的赞返回 ErrNotLiked，
// 两者都不改变数据，调用方可据此提示而非静默吞掉。
type LikeService interface {
	// LikePost 访客点赞帖子，返回操作后的点赞数与状态。
	LikePost(ctx context.Context, postID uint64, guestID string) (*vo.LikeVO, error)

	// UnlikePost 访客取消点赞，返回操作后的点赞数与状态。
	UnlikePost(ctx context.Context, postID uint64, guestID string) (*vo.LikeVO, error)
}

type likeService struct {
	postRepo mysql.PostRepository
	likeRepo mysql.LikeRepository
	logger   *zap.Logger
}

// NewLikeService 是 likeService 的构造函数。
func NewLikeService(postRepo mysql.PostRepository, likeRepo mysql.LikeRepository, logger *zap.Logger) LikeService {
	return &likeService{
		postRepo: postRepo,
		likeRepo: likeRepo,
		logger:   logger,
	}
}

// LikePost 插入点赞记录。唯一索引兜底并发下的重复点赞。
func (s *likeService) LikePost(ctx context.Context, postID uint64, guestID string) (*vo.LikeVO, error) {
	if err := s.ensurePostExists(ctx, postID); err != nil {
		return nil, err
	}

	like := &entities.PostLike{
		PostID:  postID,
		GuestID: guestID,
	}
	if err := s.likeRepo.CreateLike(ctx, like); err != nil {
		// ErrAlreadyLiked 原样上抛，由控制器映射为冲突
		return nil, err
	}

	s.logger.Info("帖子获得点赞",
		zap.Uint64("postID", postID),
		zap.String("guestID", guestID))

	count, err := s.likeRepo.CountByPostID(ctx, postID)
	if err != nil {
		return nil, err
	}
	return &vo.LikeVO{LikeCount: count, Liked: true}, nil
}

// UnlikePost 删除点赞记录。
func (s *likeService) UnlikePost(ctx context.Context, postID uint64, guestID string) (*vo.LikeVO, error) {
	if err := s.ensurePostExists(ctx, postID); err != nil {
		return nil, err
	}

	if err := s.likeRepo.DeleteLike(ctx, postID, guestID); err != nil {
		// ErrNotLiked 原样上抛
		return nil, err
	}

	s.logger.Info("帖子点赞被取消",
		zap.Uint64("postID", postID),
		zap.String("guestID", guestID))

	count, err := s.likeRepo.CountByPostID(ctx, postID)
	if err != nil {
		return nil, err
	}
	return &vo.LikeVO{LikeCount: count, Liked: false}, nil
}

func (s *likeService) ensurePostExists(ctx context.Context, postID uint64) error {
	if _, err := s.postRepo.GetPostByID(ctx, postID); err != nil {
		if errors.Is(err, commonerrors.ErrRepoNotFound) {
			return myErrors.ErrPostNotFound
		}
		return err
	}
	return nil
}
