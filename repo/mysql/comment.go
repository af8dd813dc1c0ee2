package mysql

import (
	"context"
	"errors"
	"fmt"

	"github.com/Xushengqwer/go-common/commonerrors"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Xushengqwer/board_service/models/entities"
)

// CommentRepository 定义了评论数据的持久化操作接口。
// 根评论与回复存在同一张表中，靠 parent_id 是否为空区分。
// 注意计数口径: "活跃"指未被软删除；分页的 total 则包含软删除条目，
// 因为被删评论在列表中以掩码形式保留位置。
type CommentRepository interface {
	// CreateComment 持久化一条评论（根评论或回复）。
	CreateComment(ctx context.Context, comment *entities.Comment) error

	// GetCommentByID 根据主键查询评论。
	// - 未找到时返回 commonerrors.ErrRepoNotFound。
	GetCommentByID(ctx context.Context, id uint64) (*entities.Comment, error)

	// MarkDeleted 将评论置为软删除状态。
	// - 置位不可逆；重复置位是幂等的。
	MarkDeleted(ctx context.Context, id uint64) error

	// DeleteByPostID 按帖子批量硬删除评论，用于帖子级联删除。
	DeleteByPostID(ctx context.Context, db *gorm.DB, postID uint64) error

	// ListRootComments 分页查询根评论，按创建时间倒序。
	// - 软删除的条目照常返回，掩码由视图层处理。
	ListRootComments(ctx context.Context, postID uint64, offset, limit int) ([]*entities.Comment, error)

	// CountRootComments 统计帖子的根评论总数（含软删除）。
	CountRootComments(ctx context.Context, postID uint64) (int64, error)

	// ListReplies 分页查询某根评论下的回复，按创建时间正序。
	ListReplies(ctx context.Context, parentID uint64, offset, limit int) ([]*entities.Comment, error)

	// CountReplies 统计某根评论下的回复总数（含软删除）。
	CountReplies(ctx context.Context, parentID uint64) (int64, error)

	// CountActiveRepliesByParentIDs 批量统计各根评论下未删除的回复数。
	CountActiveRepliesByParentIDs(ctx context.Context, parentIDs []uint64) (map[uint64]int64, error)

	// CountActiveByPostID 统计帖子下未删除的评论数（根评论与回复一并计入）。
	CountActiveByPostID(ctx context.Context, postID uint64) (int64, error)

	// CountActiveByPostIDs 批量统计多个帖子的活跃评论数。
	CountActiveByPostIDs(ctx context.Context, postIDs []uint64) (map[uint64]int64, error)

	// CountAllActive 统计全站未删除的评论总数，与过滤条件无关。
	CountAllActive(ctx context.Context) (int64, error)
}

type commentRepository struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewCommentRepository 是 commentRepository 的构造函数。
func NewCommentRepository(db *gorm.DB, logger *zap.Logger) CommentRepository {
	return &commentRepository{
		db:     db,
		logger: logger,
	}
}

func (r *commentRepository) CreateComment(ctx context.Context, comment *entities.Comment) error {
	if err := r.db.WithContext(ctx).Create(comment).Error; err != nil {
		r.logger.Error("创建评论失败", zap.Uint64("postID", comment.PostID), zap.Error(err))
		return fmt.Errorf("创建评论记录失败: %w", err)
	}
	return nil
}

func (r *commentRepository) GetCommentByID(ctx context.Context, id uint64) (*entities.Comment, error) {
	var comment entities.Comment
	err := r.db.WithContext(ctx).First(&comment, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, commonerrors.ErrRepoNotFound
		}
		r.logger.Error("查询评论失败", zap.Uint64("commentID", id), zap.Error(err))
		return nil, fmt.Errorf("查询评论(ID: %d)失败: %w", id, err)
	}
	return &comment, nil
}

// MarkDeleted 软删除。不校验 deleted 原值，重复删除等同于一次。
func (r *commentRepository) MarkDeleted(ctx context.Context, id uint64) error {
	result := r.db.WithContext(ctx).
		Model(&entities.Comment{}).
		Where("id = ?", id).
		Update("deleted", true)
	if result.Error != nil {
		r.logger.Error("软删除评论失败", zap.Uint64("commentID", id), zap.Error(result.Error))
		return fmt.Errorf("软删除评论(ID: %d)失败: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		// RowsAffected 为 0 可能是记录不存在，也可能是 deleted 已为 true；
		// 这里再查一次来区分，保证幂等删除不报错
		var count int64
		if err := r.db.WithContext(ctx).Model(&entities.Comment{}).
			Where("id = ?", id).Count(&count).Error; err != nil {
			return fmt.Errorf("软删除评论(ID: %d)后复核失败: %w", id, err)
		}
		if count == 0 {
			return commonerrors.ErrRepoNotFound
		}
	}
	return nil
}

func (r *commentRepository) DeleteByPostID(ctx context.Context, db *gorm.DB, postID uint64) error {
	if err := db.WithContext(ctx).
		Where("post_id = ?", postID).
		Delete(&entities.Comment{}).Error; err != nil {
		return fmt.Errorf("删除帖子(ID: %d)评论失败: %w", postID, err)
	}
	return nil
}

func (r *commentRepository) ListRootComments(ctx context.Context, postID uint64, offset, limit int) ([]*entities.Comment, error) {
	var comments []*entities.Comment
	err := r.db.WithContext(ctx).
		Where("post_id = ? AND parent_id IS NULL", postID).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&comments).Error
	if err != nil {
		r.logger.Error("查询根评论失败", zap.Uint64("postID", postID), zap.Error(err))
		return nil, fmt.Errorf("查询帖子(ID: %d)根评论失败: %w", postID, err)
	}
	return comments, nil
}

func (r *commentRepository) CountRootComments(ctx context.Context, postID uint64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entities.Comment{}).
		Where("post_id = ? AND parent_id IS NULL", postID).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("统计帖子(ID: %d)根评论失败: %w", postID, err)
	}
	return count, nil
}

func (r *commentRepository) ListReplies(ctx context.Context, parentID uint64, offset, limit int) ([]*entities.Comment, error) {
	var replies []*entities.Comment
	err := r.db.WithContext(ctx).
		Where("parent_id = ?", parentID).
		Order("created_at ASC").
		Offset(offset).
		Limit(limit).
		Find(&replies).Error
	if err != nil {
		r.logger.Error("查询回复失败", zap.Uint64("parentID", parentID), zap.Error(err))
		return nil, fmt.Errorf("查询评论(ID: %d)回复失败: %w", parentID, err)
	}
	return replies, nil
}

func (r *commentRepository) CountReplies(ctx context.Context, parentID uint64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entities.Comment{}).
		Where("parent_id = ?", parentID).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("统计评论(ID: %d)回复失败: %w", parentID, err)
	}
	return count, nil
}

func (r *commentRepository) CountActiveRepliesByParentIDs(ctx context.Context, parentIDs []uint64) (map[uint64]int64, error) {
	result := make(map[uint64]int64, len(parentIDs))
	if len(parentIDs) == 0 {
		return result, nil
	}
	var rows []struct {
		ParentID uint64
		Count    int64
	}
	err := r.db.WithContext(ctx).
		Model(&entities.Comment{}).
		Select("parent_id AS parent_id, COUNT(*) AS count").
		Where("parent_id IN ? AND deleted = ?", parentIDs, false).
		Group("parent_id").
		Scan(&rows).Error
	if err != nil {
		r.logger.Error("批量统计回复数失败", zap.Int("parentCount", len(parentIDs)), zap.Error(err))
		return nil, fmt.Errorf("批量统计回复数失败: %w", err)
	}
	for _, row := range rows {
		result[row.ParentID] = row.Count
	}
	return result, nil
}

func (r *commentRepository) CountActiveByPostID(ctx context.Context, postID uint64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entities.Comment{}).
		Where("post_id = ? AND deleted = ?", postID, false).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("统计帖子(ID: %d)活跃评论失败: %w", postID, err)
	}
	return count, nil
}

func (r *commentRepository) CountActiveByPostIDs(ctx context.Context, postIDs []uint64) (map[uint64]int64, error) {
	result := make(map[uint64]int64, len(postIDs))
	if len(postIDs) == 0 {
		return result, nil
	}
	var rows []struct {
		PostID uint64
		Count  int64
	}
	err := r.db.WithContext(ctx).
		Model(&entities.Comment{}).
		Select("post_id AS post_id, COUNT(*) AS count").
		Where("post_id IN ? AND deleted = ?", postIDs, false).
		Group("post_id").
		Scan(&rows).Error
	if err != nil {
		r.logger.Error("批量统计评论数失败", zap.Int("postCount", len(postIDs)), zap.Error(err))
		return nil, fmt.Errorf("批量统计评论数失败: %w", err)
	}
	for _, row := range rows {
		result[row.PostID] = row.Count
	}
	return result, nil
}

func (r *commentRepository) CountAllActive(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entities.Comment{}).
		Where("deleted = ?", false).
		Count(&count).Error
	if err != nil {
		r.logger.Error("统计全站评论总数失败", zap.Error(err))
		return 0, fmt.Errorf("统计全站评论总数失败: %w", err)
	}
	return count, nil
}
