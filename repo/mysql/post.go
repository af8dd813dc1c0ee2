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

// PostRepository 定义了帖子数据在 MySQL 中的持久化操作接口。
// 接口的设计旨在将数据访问逻辑与业务逻辑（服务层）解耦。
// 凡是需要参与外部事务的方法，都显式接收 db *gorm.DB 参数。
type PostRepository interface {
	// CreatePost 持久化一个新的帖子记录。
	// - 这是帖子生命周期的起点，对应访客发布帖子的操作。
	// - 创建成功后，post 对象会携带数据库分配的 ID 与时间戳。
	CreatePost(ctx context.Context, db *gorm.DB, post *entities.Post) error

	// GetPostByID 根据单个 ID 检索帖子信息。
	// - 如果未找到帖子，返回 commonerrors.ErrRepoNotFound 错误。
	GetPostByID(ctx context.Context, id uint64) (*entities.Post, error)

	// GetPostsByIDs 批量检索帖子，结果保持 ids 的顺序。
	// - 不存在的 ID 被静默跳过，不视为错误。
	GetPostsByIDs(ctx context.Context, ids []uint64) ([]*entities.Post, error)

	// UpdatePost 整体更新帖子的标题与内容，并刷新修改时间。
	// - 标签的替换由 HashtagRepository 在同一事务内完成。
	// - 记录不存在时返回 commonerrors.ErrRepoNotFound。
	UpdatePost(ctx context.Context, db *gorm.DB, postID uint64, title, content string) error

	// UpdatePassword 更新帖子的密码哈希。
	// - 旧密码的校验在服务层完成，这里只负责落库。
	UpdatePassword(ctx context.Context, postID uint64, hashedPassword string) error

	// IncrementViewCount 将帖子的浏览量原子加一。
	// - 通过 UpdateColumn 执行 "view_count = view_count + 1"，
	//   并发读取各自生效；刻意不触碰 updated_at。
	// - 记录不存在时返回 commonerrors.ErrRepoNotFound。
	IncrementViewCount(ctx context.Context, postID uint64) error

	// DeletePost 对指定帖子执行硬删除。
	// - 必须在事务中调用，且先于它清理评论、点赞与标签。
	DeletePost(ctx context.Context, db *gorm.DB, id uint64) error

	// CountPosts 返回全站帖子总数，与任何过滤条件无关。
	CountPosts(ctx context.Context) (int64, error)
}

// postRepository 是 PostRepository 接口针对 MySQL 的具体实现。
type postRepository struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewPostRepository 是 postRepository 的构造函数。
func NewPostRepository(db *gorm.DB, logger *zap.Logger) PostRepository {
	return &postRepository{
		db:     db,
		logger: logger,
	}
}

// CreatePost 实现帖子的数据库插入操作。
func (r *postRepository) CreatePost(ctx context.Context, db *gorm.DB, post *entities.Post) error {
	if err := db.WithContext(ctx).Create(post).Error; err != nil {
		// 仓库层直接返回数据库错误，由服务层决定如何处理或包装
		return fmt.Errorf("创建帖子记录失败: %w", err)
	}
	return nil
}

// GetPostByID 根据主键查询帖子。
func (r *postRepository) GetPostByID(ctx context.Context, id uint64) (*entities.Post, error) {
	var post entities.Post
	err := r.db.WithContext(ctx).First(&post, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, commonerrors.ErrRepoNotFound
		}
		r.logger.Error("查询帖子失败", zap.Uint64("postID", id), zap.Error(err))
		return nil, fmt.Errorf("查询帖子(ID: %d)失败: %w", id, err)
	}
	return &post, nil
}

// GetPostsByIDs 按 ID 列表批量查询并还原入参顺序。
// 调用方（热度榜装配）的 ID 序列本身就是排序结果，这里不能打乱。
func (r *postRepository) GetPostsByIDs(ctx context.Context, ids []uint64) ([]*entities.Post, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var rows []*entities.Post
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&rows).Error; err != nil {
		r.logger.Error("批量查询帖子失败", zap.Int("count", len(ids)), zap.Error(err))
		return nil, fmt.Errorf("批量查询帖子失败: %w", err)
	}
	byID := make(map[uint64]*entities.Post, len(rows))
	for _, p := range rows {
		byID[p.ID] = p
	}
	ordered := make([]*entities.Post, 0, len(rows))
	for _, id := range ids {
		if p, ok := byID[id]; ok {
			ordered = append(ordered, p)
		}
	}
	return ordered, nil
}

// UpdatePost 整体替换帖子的标题与内容。
func (r *postRepository) UpdatePost(ctx context.Context, db *gorm.DB, postID uint64, title, content string) error {
	result := db.WithContext(ctx).
		Model(&entities.Post{}).
		Where("id = ?", postID).
		Updates(map[string]interface{}{
			"title":   title,
			"content": content,
		})
	if result.Error != nil {
		r.logger.Error("更新帖子失败", zap.Uint64("postID", postID), zap.Error(result.Error))
		return fmt.Errorf("更新帖子(ID: %d)失败: %w", postID, result.Error)
	}
	if result.RowsAffected == 0 {
		return commonerrors.ErrRepoNotFound
	}
	return nil
}

// UpdatePassword 落库新的密码哈希。
func (r *postRepository) UpdatePassword(ctx context.Context, postID uint64, hashedPassword string) error {
	result := r.db.WithContext(ctx).
		Model(&entities.Post{}).
		Where("id = ?", postID).
		Update("password", hashedPassword)
	if result.Error != nil {
		r.logger.Error("更新帖子密码失败", zap.Uint64("postID", postID), zap.Error(result.Error))
		return fmt.Errorf("更新帖子密码(ID: %d)失败: %w", postID, result.Error)
	}
	if result.RowsAffected == 0 {
		return commonerrors.ErrRepoNotFound
	}
	return nil
}

// IncrementViewCount 原子自增浏览量。
// UpdateColumn 跳过 GORM 的钩子与时间戳追踪，updated_at 保持不变。
func (r *postRepository) IncrementViewCount(ctx context.Context, postID uint64) error {
	result := r.db.WithContext(ctx).
		Model(&entities.Post{}).
		Where("id = ?", postID).
		UpdateColumn("view_count", gorm.Expr("view_count + ?", 1))
	if result.Error != nil {
		r.logger.Error("自增帖子浏览量失败", zap.Uint64("postID", postID), zap.Error(result.Error))
		return fmt.Errorf("自增帖子浏览量(ID: %d)失败: %w", postID, result.Error)
	}
	if result.RowsAffected == 0 {
		return commonerrors.ErrRepoNotFound
	}
	return nil
}

// DeletePost 从数据库中物理删除帖子行。
func (r *postRepository) DeletePost(ctx context.Context, db *gorm.DB, id uint64) error {
	result := db.WithContext(ctx).Delete(&entities.Post{}, id)
	if result.Error != nil {
		r.logger.Error("删除帖子失败", zap.Uint64("postID", id), zap.Error(result.Error))
		return fmt.Errorf("删除帖子(ID: %d)失败: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return commonerrors.ErrRepoNotFound
	}
	return nil
}

// CountPosts 统计全站帖子总数。
func (r *postRepository) CountPosts(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entities.Post{}).Count(&count).Error; err != nil {
		r.logger.Error("统计帖子总数失败", zap.Error(err))
		return 0, fmt.Errorf("统计帖子总数失败: %w", err)
	}
	return count, nil
}
