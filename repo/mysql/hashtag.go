package mysql

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Xushengqwer/board_service/models/entities"
)

// HashtagRepository 定义了帖子话题标签的持久化操作接口。
// 标签始终作为帖子的附属数据被整体替换，不提供单条增删。
type HashtagRepository interface {
	// ReplaceHashtags 以"先清后插"的方式整体替换帖子的标签集合。
	// - 必须与帖子本身的写操作处于同一事务中。
	// - hashtags 为空切片时效果等同于清空全部标签。
	ReplaceHashtags(ctx context.Context, db *gorm.DB, postID uint64, hashtags []string) error

	// GetHashtagsByPostID 查询单个帖子的标签，按提交顺序返回。
	GetHashtagsByPostID(ctx context.Context, postID uint64) ([]string, error)

	// GetHashtagsByPostIDs 批量查询多个帖子的标签，返回 postID 到标签列表的映射。
	// - 供列表页一次性装配摘要使用，避免逐帖查询。
	GetHashtagsByPostIDs(ctx context.Context, postIDs []uint64) (map[uint64][]string, error)

	// DeleteByPostID 删除帖子的全部标签行，用于帖子级联删除。
	DeleteByPostID(ctx context.Context, db *gorm.DB, postID uint64) error
}

type hashtagRepository struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewHashtagRepository 是 hashtagRepository 的构造函数。
func NewHashtagRepository(db *gorm.DB, logger *zap.Logger) HashtagRepository {
	return &hashtagRepository{
		db:     db,
		logger: logger,
	}
}

// ReplaceHashtags 先删除旧标签再按顺序插入新标签。
func (r *hashtagRepository) ReplaceHashtags(ctx context.Context, db *gorm.DB, postID uint64, hashtags []string) error {
	if err := db.WithContext(ctx).
		Where("post_id = ?", postID).
		Delete(&entities.PostHashtag{}).Error; err != nil {
		return fmt.Errorf("清理帖子(ID: %d)旧标签失败: %w", postID, err)
	}
	if len(hashtags) == 0 {
		return nil
	}
	rows := make([]entities.PostHashtag, 0, len(hashtags))
	for i, tag := range hashtags {
		rows = append(rows, entities.PostHashtag{
			PostID:    postID,
			Hashtag:   tag,
			SortOrder: i,
		})
	}
	if err := db.WithContext(ctx).Create(&rows).Error; err != nil {
		return fmt.Errorf("写入帖子(ID: %d)标签失败: %w", postID, err)
	}
	return nil
}

// GetHashtagsByPostID 查询单帖标签。
func (r *hashtagRepository) GetHashtagsByPostID(ctx context.Context, postID uint64) ([]string, error) {
	var rows []entities.PostHashtag
	err := r.db.WithContext(ctx).
		Where("post_id = ?", postID).
		Order("sort_order ASC").
		Find(&rows).Error
	if err != nil {
		r.logger.Error("查询帖子标签失败", zap.Uint64("postID", postID), zap.Error(err))
		return nil, fmt.Errorf("查询帖子(ID: %d)标签失败: %w", postID, err)
	}
	tags := make([]string, 0, len(rows))
	for _, row := range rows {
		tags = append(tags, row.Hashtag)
	}
	return tags, nil
}

// GetHashtagsByPostIDs 批量查询标签并按帖子分组。
func (r *hashtagRepository) GetHashtagsByPostIDs(ctx context.Context, postIDs []uint64) (map[uint64][]string, error) {
	result := make(map[uint64][]string, len(postIDs))
	if len(postIDs) == 0 {
		return result, nil
	}
	var rows []entities.PostHashtag
	err := r.db.WithContext(ctx).
		Where("post_id IN ?", postIDs).
		Order("post_id ASC, sort_order ASC").
		Find(&rows).Error
	if err != nil {
		r.logger.Error("批量查询帖子标签失败", zap.Int("postCount", len(postIDs)), zap.Error(err))
		return nil, fmt.Errorf("批量查询帖子标签失败: %w", err)
	}
	for _, row := range rows {
		result[row.PostID] = append(result[row.PostID], row.Hashtag)
	}
	return result, nil
}

// DeleteByPostID 级联清理帖子标签。
func (r *hashtagRepository) DeleteByPostID(ctx context.Context, db *gorm.DB, postID uint64) error {
	if err := db.WithContext(ctx).
		Where("post_id = ?", postID).
		Delete(&entities.PostHashtag{}).Error; err != nil {
		return fmt.Errorf("删除帖子(ID: %d)标签失败: %w", postID, err)
	}
	return nil
}
