package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Xushengqwer/go-common/commonerrors"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Xushengqwer/board_service/constant"
	"github.com/Xushengqwer/board_service/models/dto"
	"github.com/Xushengqwer/board_service/models/entities"
	"github.com/Xushengqwer/board_service/models/events"
	"github.com/Xushengqwer/board_service/models/vo"
	"github.com/Xushengqwer/board_service/mq/producer"
	"github.com/Xushengqwer/board_service/myErrors"
	"github.com/Xushengqwer/board_service/repo/mysql"
	"github.com/Xushengqwer/board_service/repo/redis"
	"github.com/Xushengqwer/board_service/security"
)

// 旁路异步操作（Kafka 事件、热度榜）的独立超时。
// 不继承请求的 ctx: 请求返回后旁路操作仍需完成。
const asyncSideEffectTimeout = 5 * time.Second

// PostService 定义了处理帖子核心业务逻辑的接口。
// 所有带副作用的操作都遵循同一个鉴权次序:
// 先确认资源存在（不存在返回 ErrPostNotFound），再比对密码（不匹配返回 ErrPasswordMismatch）。
// 对不存在的资源提交错误密码，得到的是"不存在"而不是"密码错误"。
type PostService interface {
	// CreatePost 处理访客发布新帖子的业务流程。
	// - 密码在入库前被哈希，原文不落库也不出现在返回值中。
	// - 帖子与标签在同一事务中原子写入。
	// - 成功创建后，异步发送 Kafka 事件通知下游。
	CreatePost(ctx context.Context, req *dto.CreatePostRequest) (*vo.PostVO, error)

	// GetPostDetail 获取单个帖子的详细信息。
	// - 每次读取都将浏览量原子加一，返回的是加一之后的值。
	// - 返回体携带点赞数、活跃评论数与第一页根评论。
	// - guestID 非空时附带该访客的点赞状态，空串表示匿名读取。
	// - 浏览热度旁路写入 Redis 热度榜，失败不影响读取。
	GetPostDetail(ctx context.Context, postID uint64, guestID string) (*vo.PostDetailVO, error)

	// UpdatePost 整体更新帖子的标题、内容与标签，需密码鉴权。
	// - 标签为替换语义: 省略即清空。
	UpdatePost(ctx context.Context, postID uint64, req *dto.UpdatePostRequest) (*vo.PostVO, error)

	// ChangePassword 修改帖子密码，需旧密码鉴权。
	ChangePassword(ctx context.Context, postID uint64, req *dto.ChangePostPasswordRequest) error

	// DeletePost 硬删除帖子及其全部附属数据（评论、点赞、标签），需密码鉴权。
	// - 删除在单个事务中完成，次序为评论、点赞、标签、帖子本体。
	// - 成功后异步发送删除事件并清理热度榜。
	DeletePost(ctx context.Context, postID uint64, password string) error
}

// postService 是 PostService 接口的具体实现。
type postService struct {
	db          *gorm.DB                     // GORM 数据库实例，主要用于事务管理
	postRepo    mysql.PostRepository         // 帖子的 MySQL 操作
	hashtagRepo mysql.HashtagRepository      // 标签的 MySQL 操作
	commentRepo mysql.CommentRepository      // 评论的 MySQL 操作
	likeRepo    mysql.LikeRepository         // 点赞的 MySQL 操作
	rankRepo    redis.PostRankRepository     // 热度榜的 Redis 操作，可为 nil（未启用 Redis 时）
	encryptor   security.PasswordEncryptor   // 密码哈希器
	kafkaSvc    *producer.KafkaProducer      // Kafka 生产者，可为 nil（未启用 Kafka 时）
	logger      *zap.Logger                  // 日志记录器
}

// NewPostService 是 postService 的构造函数，通过依赖注入初始化服务实例。
// - rankRepo 与 kafkaSvc 允许为 nil，对应的旁路副作用会被跳过。
func NewPostService(
	db *gorm.DB,
	postRepo mysql.PostRepository,
	hashtagRepo mysql.HashtagRepository,
	commentRepo mysql.CommentRepository,
	likeRepo mysql.LikeRepository,
	rankRepo redis.PostRankRepository,
	encryptor security.PasswordEncryptor,
	kafkaSvc *producer.KafkaProducer,
	logger *zap.Logger,
) PostService {
	return &postService{
		db:          db,
		postRepo:    postRepo,
		hashtagRepo: hashtagRepo,
		commentRepo: commentRepo,
		likeRepo:    likeRepo,
		rankRepo:    rankRepo,
		encryptor:   encryptor,
		kafkaSvc:    kafkaSvc,
		logger:      logger,
	}
}

// CreatePost 处理发帖流程。
func (s *postService) CreatePost(ctx context.Context, req *dto.CreatePostRequest) (*vo.PostVO, error) {
	hashedPassword, err := s.encryptor.Hash(req.Password)
	if err != nil {
		s.logger.Error("发帖时哈希密码失败", zap.Error(err))
		return nil, fmt.Errorf("哈希密码失败: %w", err)
	}

	post := &entities.Post{
		Title:    req.Title,
		Content:  req.Content,
		Author:   req.Author,
		Password: hashedPassword,
	}

	// 帖子与标签原子写入
	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.postRepo.CreatePost(ctx, tx, post); err != nil {
			return err
		}
		return s.hashtagRepo.ReplaceHashtags(ctx, tx, post.ID, req.Hashtags)
	})
	if err != nil {
		s.logger.Error("发帖事务失败", zap.Error(err))
		return nil, err
	}

	s.logger.Info("帖子创建成功",
		zap.Uint64("postID", post.ID),
		zap.String("author", post.Author))

	// 旁路异步通知下游，失败只记日志
	if s.kafkaSvc != nil {
		postData := events.PostData{
			ID:        post.ID,
			Title:     post.Title,
			Content:   post.Content,
			Author:    post.Author,
			Hashtags:  req.Hashtags,
			CreatedAt: post.CreatedAt,
		}
		go func() {
			sendCtx, cancel := context.WithTimeout(context.Background(), asyncSideEffectTimeout)
			defer cancel()
			if err := s.kafkaSvc.SendPostCreatedEvent(sendCtx, postData); err != nil {
				s.logger.Warn("发送帖子创建事件失败", zap.Uint64("postID", post.ID), zap.Error(err))
			}
		}()
	}

	result := vo.NewPostVO(post, req.Hashtags)
	return &result, nil
}

// GetPostDetail 读取帖子详情并自增浏览量。
func (s *postService) GetPostDetail(ctx context.Context, postID uint64, guestID string) (*vo.PostDetailVO, error) {
	post, err := s.getPostOrNotFound(ctx, postID)
	if err != nil {
		return nil, err
	}

	// 浏览量权威计数在 MySQL，原子自增；
	// 帖子在读取与自增之间被并发删除时按不存在处理
	if err := s.postRepo.IncrementViewCount(ctx, postID); err != nil {
		if errors.Is(err, commonerrors.ErrRepoNotFound) {
			return nil, myErrors.ErrPostNotFound
		}
		return nil, err
	}
	post.ViewCount++

	// 热度榜分数旁路异步加一
	if s.rankRepo != nil {
		go func() {
			rankCtx, cancel := context.WithTimeout(context.Background(), asyncSideEffectTimeout)
			defer cancel()
			// 错误在仓库层已记日志
			_ = s.rankRepo.IncrViewRank(rankCtx, postID)
		}()
	}

	hashtags, err := s.hashtagRepo.GetHashtagsByPostID(ctx, postID)
	if err != nil {
		return nil, err
	}
	likeCount, err := s.likeRepo.CountByPostID(ctx, postID)
	if err != nil {
		return nil, err
	}
	var liked bool
	if guestID != "" {
		liked, err = s.likeRepo.Exists(ctx, postID, guestID)
		if err != nil {
			return nil, err
		}
	}
	commentCount, err := s.commentRepo.CountActiveByPostID(ctx, postID)
	if err != nil {
		return nil, err
	}

	// 详情页附带第一页根评论，完整评论走评论分页接口
	firstPage, err := assembleRootCommentPage(ctx, s.commentRepo, postID, 0, constant.DetailCommentPageSize)
	if err != nil {
		return nil, err
	}

	detail := &vo.PostDetailVO{
		PostVO:       vo.NewPostVO(post, hashtags),
		LikeCount:    likeCount,
		Liked:        liked,
		CommentCount: commentCount,
		Comments:     *firstPage,
	}
	return detail, nil
}

// UpdatePost 密码鉴权后整体替换帖子内容与标签。
func (s *postService) UpdatePost(ctx context.Context, postID uint64, req *dto.UpdatePostRequest) (*vo.PostVO, error) {
	post, err := s.getPostOrNotFound(ctx, postID)
	if err != nil {
		return nil, err
	}
	if err := s.verifyPassword(req.Password, post.Password); err != nil {
		return nil, err
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.postRepo.UpdatePost(ctx, tx, postID, req.Title, req.Content); err != nil {
			return err
		}
		return s.hashtagRepo.ReplaceHashtags(ctx, tx, postID, req.Hashtags)
	})
	if err != nil {
		if errors.Is(err, commonerrors.ErrRepoNotFound) {
			return nil, myErrors.ErrPostNotFound
		}
		s.logger.Error("更新帖子事务失败", zap.Uint64("postID", postID), zap.Error(err))
		return nil, err
	}

	// 重新读取，拿到数据库刷新后的 updated_at
	updated, err := s.getPostOrNotFound(ctx, postID)
	if err != nil {
		return nil, err
	}
	result := vo.NewPostVO(updated, req.Hashtags)
	return &result, nil
}

// ChangePassword 旧密码鉴权后落库新密码的哈希。
func (s *postService) ChangePassword(ctx context.Context, postID uint64, req *dto.ChangePostPasswordRequest) error {
	post, err := s.getPostOrNotFound(ctx, postID)
	if err != nil {
		return err
	}
	if err := s.verifyPassword(req.OldPassword, post.Password); err != nil {
		return err
	}

	hashedPassword, err := s.encryptor.Hash(req.NewPassword)
	if err != nil {
		s.logger.Error("改密时哈希新密码失败", zap.Uint64("postID", postID), zap.Error(err))
		return fmt.Errorf("哈希新密码失败: %w", err)
	}
	if err := s.postRepo.UpdatePassword(ctx, postID, hashedPassword); err != nil {
		if errors.Is(err, commonerrors.ErrRepoNotFound) {
			return myErrors.ErrPostNotFound
		}
		return err
	}

	s.logger.Info("帖子密码已更新", zap.Uint64("postID", postID))
	return nil
}

// DeletePost 密码鉴权后在单个事务中级联硬删除。
func (s *postService) DeletePost(ctx context.Context, postID uint64, password string) error {
	post, err := s.getPostOrNotFound(ctx, postID)
	if err != nil {
		return err
	}
	if err := s.verifyPassword(password, post.Password); err != nil {
		return err
	}

	// 附属数据先删，帖子本体最后删
	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.commentRepo.DeleteByPostID(ctx, tx, postID); err != nil {
			return err
		}
		if err := s.likeRepo.DeleteByPostID(ctx, tx, postID); err != nil {
			return err
		}
		if err := s.hashtagRepo.DeleteByPostID(ctx, tx, postID); err != nil {
			return err
		}
		return s.postRepo.DeletePost(ctx, tx, postID)
	})
	if err != nil {
		if errors.Is(err, commonerrors.ErrRepoNotFound) {
			return myErrors.ErrPostNotFound
		}
		s.logger.Error("删除帖子事务失败", zap.Uint64("postID", postID), zap.Error(err))
		return err
	}

	s.logger.Info("帖子已删除", zap.Uint64("postID", postID))

	// 旁路清理热度榜并通知下游
	go func() {
		cleanCtx, cancel := context.WithTimeout(context.Background(), asyncSideEffectTimeout)
		defer cancel()
		if s.rankRepo != nil {
			if err := s.rankRepo.RemovePost(cleanCtx, postID); err != nil {
				s.logger.Warn("从热度榜移除帖子失败", zap.Uint64("postID", postID), zap.Error(err))
			}
		}
		if s.kafkaSvc != nil {
			if err := s.kafkaSvc.SendPostDeletedEvent(cleanCtx, postID); err != nil {
				s.logger.Warn("发送帖子删除事件失败", zap.Uint64("postID", postID), zap.Error(err))
			}
		}
	}()

	return nil
}

// getPostOrNotFound 查询帖子并把仓库层的未找到翻译为领域错误。
func (s *postService) getPostOrNotFound(ctx context.Context, postID uint64) (*entities.Post, error) {
	post, err := s.postRepo.GetPostByID(ctx, postID)
	if err != nil {
		if errors.Is(err, commonerrors.ErrRepoNotFound) {
			return nil, myErrors.ErrPostNotFound
		}
		return nil, err
	}
	return post, nil
}

// verifyPassword 比对明文与哈希，不匹配返回 ErrPasswordMismatch。
func (s *postService) verifyPassword(plain, hashed string) error {
	ok, err := s.encryptor.Verify(plain, hashed)
	if err != nil {
		s.logger.Error("比对密码失败", zap.Error(err))
		return fmt.Errorf("比对密码失败: %w", err)
	}
	if !ok {
		return myErrors.ErrPasswordMismatch
	}
	return nil
}
