package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/Xushengqwer/go-common/commonerrors"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Xushengqwer/board_service/constant"
	"github.com/Xushengqwer/board_service/models/dto"
	"github.com/Xushengqwer/board_service/models/entities"
	"github.com/Xushengqwer/board_service/models/vo"
	"github.com/Xushengqwer/board_service/myErrors"
	"github.com/Xushengqwer/board_service/repo/mysql"
	"github.com/Xushengqwer/board_service/security"
)

// CommentService 定义了评论与回复的业务逻辑接口。
// 回复深度固定为一层: 回复的目标必须是根评论，对回复的回复会被拒绝，
// 即使目标回复已被软删除也一样（软删除不改变它"不是根评论"的事实）。
type CommentService interface {
	// CreateComment 在帖子下创建根评论。
	// - 帖子不存在时返回 ErrPostNotFound。
	CreateComment(ctx context.Context, postID uint64, req *dto.CreateCommentRequest) (*vo.CommentVO, error)

	// CreateReply 在根评论下创建回复。
	// - 父评论不存在时返回 ErrCommentNotFound。
	// - 父评论本身是回复时返回 ErrNestedReplyNotAllowed。
	// - 父评论已被软删除不阻止新回复（上下文仍在，只是内容被掩码）。
	CreateReply(ctx context.Context, parentID uint64, req *dto.CreateReplyRequest) (*vo.CommentVO, error)

	// DeleteComment 软删除一条评论，需评论自身的密码鉴权。
	// - 已删除的评论重复删除是幂等的（先过密码关）。
	DeleteComment(ctx context.Context, commentID uint64, password string) error

	// ListComments 分页查询帖子的根评论，按创建时间倒序。
	// - 软删除的条目以掩码形式保留在结果中。
	ListComments(ctx context.Context, postID uint64, page, size int) (*vo.CommentPageVO, error)

	// ListReplies 分页查询根评论下的回复，按创建时间正序。
	ListReplies(ctx context.Context, parentID uint64, page, size int) (*vo.ReplyPageVO, error)
}

type commentService struct {
	db          *gorm.DB
	postRepo    mysql.PostRepository
	commentRepo mysql.CommentRepository
	encryptor   security.PasswordEncryptor
	logger      *zap.Logger
}

// NewCommentService 是 commentService 的构造函数。
func NewCommentService(
	db *gorm.DB,
	postRepo mysql.PostRepository,
	commentRepo mysql.CommentRepository,
	encryptor security.PasswordEncryptor,
	logger *zap.Logger,
) CommentService {
	return &commentService{
		db:          db,
		postRepo:    postRepo,
		commentRepo: commentRepo,
		encryptor:   encryptor,
		logger:      logger,
	}
}

// CreateComment 创建根评论。
func (s *commentService) CreateComment(ctx context.Context, postID uint64, req *dto.CreateCommentRequest) (*vo.CommentVO, error) {
	// 先确认帖子存在，给悬空评论关门
	if _, err := s.postRepo.GetPostByID(ctx, postID); err != nil {
		if errors.Is(err, commonerrors.ErrRepoNotFound) {
			return nil, myErrors.ErrPostNotFound
		}
		return nil, err
	}

	hashedPassword, err := s.encryptor.Hash(req.Password)
	if err != nil {
		s.logger.Error("评论时哈希密码失败", zap.Error(err))
		return nil, fmt.Errorf("哈希密码失败: %w", err)
	}

	comment := &entities.Comment{
		PostID:   postID,
		Author:   req.Author,
		Password: hashedPassword,
		Content:  req.Content,
	}
	if err := s.commentRepo.CreateComment(ctx, comment); err != nil {
		return nil, err
	}

	s.logger.Info("根评论创建成功",
		zap.Uint64("postID", postID),
		zap.Uint64("commentID", comment.ID))

	result := vo.NewCommentVO(comment, 0)
	return &result, nil
}

// CreateReply 创建回复，并拒绝超过一层的嵌套。
func (s *commentService) CreateReply(ctx context.Context, parentID uint64, req *dto.CreateReplyRequest) (*vo.CommentVO, error) {
	parent, err := s.commentRepo.GetCommentByID(ctx, parentID)
	if err != nil {
		if errors.Is(err, commonerrors.ErrRepoNotFound) {
			return nil, myErrors.ErrCommentNotFound
		}
		return nil, err
	}
	// 父评论是回复（ParentID 非空）即拒绝，软删除与否不影响该判定
	if parent.ParentID != nil {
		return nil, myErrors.ErrNestedReplyNotAllowed
	}

	hashedPassword, err := s.encryptor.Hash(req.Password)
	if err != nil {
		s.logger.Error("回复时哈希密码失败", zap.Error(err))
		return nil, fmt.Errorf("哈希密码失败: %w", err)
	}

	reply := &entities.Comment{
		PostID:   parent.PostID,
		ParentID: &parent.ID,
		Author:   req.Author,
		Password: hashedPassword,
		Content:  req.Content,
	}
	if err := s.commentRepo.CreateComment(ctx, reply); err != nil {
		return nil, err
	}

	s.logger.Info("回复创建成功",
		zap.Uint64("parentID", parentID),
		zap.Uint64("replyID", reply.ID))

	result := vo.NewCommentVO(reply, 0)
	return &result, nil
}

// DeleteComment 密码鉴权后软删除。
func (s *commentService) DeleteComment(ctx context.Context, commentID uint64, password string) error {
	comment, err := s.commentRepo.GetCommentByID(ctx, commentID)
	if err != nil {
		if errors.Is(err, commonerrors.ErrRepoNotFound) {
			return myErrors.ErrCommentNotFound
		}
		return err
	}

	ok, err := s.encryptor.Verify(password, comment.Password)
	if err != nil {
		s.logger.Error("比对评论密码失败", zap.Uint64("commentID", commentID), zap.Error(err))
		return fmt.Errorf("比对评论密码失败: %w", err)
	}
	if !ok {
		return myErrors.ErrPasswordMismatch
	}

	if err := s.commentRepo.MarkDeleted(ctx, commentID); err != nil {
		if errors.Is(err, commonerrors.ErrRepoNotFound) {
			return myErrors.ErrCommentNotFound
		}
		return err
	}

	s.logger.Info("评论已软删除", zap.Uint64("commentID", commentID))
	return nil
}

// ListComments 分页查询根评论。
func (s *commentService) ListComments(ctx context.Context, postID uint64, page, size int) (*vo.CommentPageVO, error) {
	if _, err := s.postRepo.GetPostByID(ctx, postID); err != nil {
		if errors.Is(err, commonerrors.ErrRepoNotFound) {
			return nil, myErrors.ErrPostNotFound
		}
		return nil, err
	}
	if size <= 0 {
		size = constant.DefaultCommentPageSize
	}
	return assembleRootCommentPage(ctx, s.commentRepo, postID, page, size)
}

// ListReplies 分页查询回复。
func (s *commentService) ListReplies(ctx context.Context, parentID uint64, page, size int) (*vo.ReplyPageVO, error) {
	parent, err := s.commentRepo.GetCommentByID(ctx, parentID)
	if err != nil {
		if errors.Is(err, commonerrors.ErrRepoNotFound) {
			return nil, myErrors.ErrCommentNotFound
		}
		return nil, err
	}
	if parent.ParentID != nil {
		// 回复没有自己的回复区
		return nil, myErrors.ErrNestedReplyNotAllowed
	}
	if size <= 0 {
		size = constant.DefaultCommentPageSize
	}

	replies, err := s.commentRepo.ListReplies(ctx, parentID, page*size, size)
	if err != nil {
		return nil, err
	}
	total, err := s.commentRepo.CountReplies(ctx, parentID)
	if err != nil {
		return nil, err
	}

	items := make([]vo.CommentVO, 0, len(replies))
	for _, r := range replies {
		items = append(items, vo.NewCommentVO(r, 0))
	}
	return &vo.ReplyPageVO{
		Replies:       items,
		Page:          page,
		Size:          size,
		TotalElements: total,
		HasMore:       vo.HasMorePages(page, size, total),
	}, nil
}

// assembleRootCommentPage 装配一页根评论（含掩码与各自的活跃回复数）。
// 帖子详情页的首屏评论与评论分页接口共用这段装配逻辑。
func assembleRootCommentPage(ctx context.Context, repo mysql.CommentRepository, postID uint64, page, size int) (*vo.CommentPageVO, error) {
	comments, err := repo.ListRootComments(ctx, postID, page*size, size)
	if err != nil {
		return nil, err
	}
	total, err := repo.CountRootComments(ctx, postID)
	if err != nil {
		return nil, err
	}

	parentIDs := make([]uint64, 0, len(comments))
	for _, c := range comments {
		parentIDs = append(parentIDs, c.ID)
	}
	replyCounts, err := repo.CountActiveRepliesByParentIDs(ctx, parentIDs)
	if err != nil {
		return nil, err
	}

	items := make([]vo.CommentVO, 0, len(comments))
	for _, c := range comments {
		items = append(items, vo.NewCommentVO(c, replyCounts[c.ID]))
	}
	return &vo.CommentPageVO{
		Comments:      items,
		Page:          page,
		Size:          size,
		TotalElements: total,
		HasMore:       vo.HasMorePages(page, size, total),
	}, nil
}
