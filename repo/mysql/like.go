package mysql

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-sql-driver/mysql"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Xushengqwer/board_service/models/entities"
	"github.com/Xushengqwer/board_service/myErrors"
)

// MySQL 唯一键冲突的错误码
const mysqlErrDuplicateEntry = 1062

// LikeRepository 定义了点赞数据的持久化操作接口。
// 幂等性由 (post_id, guest_id) 的唯一索引兜底:
// 并发的重复点赞最终只有一条能插入成功，冲突的那条被翻译为 ErrAlreadyLiked。
type LikeRepository interface {
	// CreateLike 插入一条点赞记录。
	// - 唯一键冲突时返回 myErrors.ErrAlreadyLiked。
	CreateLike(ctx context.Context, like *entities.PostLike) error

	// DeleteLike 删除访客对帖子的点赞记录。
	// - 记录不存在时返回 myErrors.ErrNotLiked。
	DeleteLike(ctx context.Context, postID uint64, guestID string) error

	// Exists 查询访客是否已点赞该帖子。
	Exists(ctx context.Context, postID uint64, guestID string) (bool, error)

	// DeleteByPostID 按帖子批量删除点赞，用于帖子级联删除。
	DeleteByPostID(ctx context.Context, db *gorm.DB, postID uint64) error

	// CountByPostID 统计帖子的点赞总数。
	CountByPostID(ctx context.Context, postID uint64) (int64, error)

	// CountByPostIDs 批量统计多个帖子的点赞数，供列表页装配摘要。
	CountByPostIDs(ctx context.Context, postIDs []uint64) (map[uint64]int64, error)
}

type likeRepository struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewLikeRepository 是 likeRepository 的构造函数。
func NewLikeRepository(db *gorm.DB, logger *zap.Logger) LikeRepository {
	return &likeRepository{
		db:     db,
		logger: logger,
	}
}

// CreateLike 插入点赞记录，并把唯一键冲突翻译为领域错误。
func (r *likeRepository) CreateLike(ctx context.Context, like *entities.PostLike) error {
	if err := r.db.WithContext(ctx).Create(like).Error; err != nil {
		var mysqlErr *mysql.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlErrDuplicateEntry {
			return myErrors.ErrAlreadyLiked
		}
		r.logger.Error("创建点赞记录失败",
			zap.Uint64("postID", like.PostID),
			zap.String("guestID", like.GuestID),
			zap.Error(err))
		return fmt.Errorf("创建点赞记录失败: %w", err)
	}
	return nil
}

// DeleteLike 删除点赞记录，RowsAffected 为 0 说明本来就没点过。
func (r *likeRepository) DeleteLike(ctx context.Context, postID uint64, guestID string) error {
	result := r.db.WithContext(ctx).
		Where("post_id = ? AND guest_id = ?", postID, guestID).
		Delete(&entities.PostLike{})
	if result.Error != nil {
		r.logger.Error("删除点赞记录失败",
			zap.Uint64("postID", postID),
			zap.String("guestID", guestID),
			zap.Error(result.Error))
		return fmt.Errorf("删除点赞记录失败: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return myErrors.ErrNotLiked
	}
	return nil
}

func (r *likeRepository) Exists(ctx context.Context, postID uint64, guestID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entities.PostLike{}).
		Where("post_id = ? AND guest_id = ?", postID, guestID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("查询点赞状态失败: %w", err)
	}
	return count > 0, nil
}

func (r *likeRepository) DeleteByPostID(ctx context.Context, db *gorm.DB, postID uint64) error {
	if err := db.WithContext(ctx).
		Where("post_id = ?", postID).
		Delete(&entities.PostLike{}).Error; err != nil {
		return fmt.Errorf("删除帖子(ID: %d)点赞失败: %w", postID, err)
	}
	return nil
}

func (r *likeRepository) CountByPostID(ctx context.Context, postID uint64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entities.PostLike{}).
		Where("post_id = ?", postID).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("统计帖子(ID: %d)点赞数失败: %w", postID, err)
	}
	return count, nil
}

func (r *likeRepository) CountByPostIDs(ctx context.Context, postIDs []uint64) (map[uint64]int64, error) {
	result := make(map[uint64]int64, len(postIDs))
	if len(postIDs) == 0 {
		return result, nil
	}
	var rows []struct {
		PostID uint64
		Count  int64
	}
	err := r.db.WithContext(ctx).
		Model(&entities.PostLike{}).
		Select("post_id AS post_id, COUNT(*) AS count").
		Where("post_id IN ?", postIDs).
		Group("post_id").
		Scan(&rows).Error
	if err != nil {
		r.logger.Error("批量统计点赞数失败", zap.Int("postCount", len(postIDs)), zap.Error(err))
		return nil, fmt.Errorf("批量统计点赞数失败: %w", err)
	}
	for _, row := range rows {
		result[row.PostID] = row.Count
	}
	return result, nil
}
