package mysql

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Xushengqwer/board_service/models/dto"
	"github.com/Xushengqwer/board_service/models/entities"
)

// PostListRepository 定义了帖子列表引擎的查询接口。
// 搜索与排序是两个彼此正交的维度，各自编译为一个 GORM Scope 后组合执行:
// 4 种搜索 x 3 种排序的 12 种组合不需要写 12 个查询。
type PostListRepository interface {
	// ListPosts 按查询对象执行分页检索。
	// - 返回当前页的帖子与过滤条件下的命中总数。
	// - query 必须是 Normalize 之后的结果: Sort 非空，未知 SearchType 已清空。
	ListPosts(ctx context.Context, query dto.PostPageQuery) ([]*entities.Post, int64, error)
}

type postListRepository struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewPostListRepository 是 postListRepository 的构造函数。
func NewPostListRepository(db *gorm.DB, logger *zap.Logger) PostListRepository {
	return &postListRepository{
		db:     db,
		logger: logger,
	}
}

// searchScope 将搜索维度编译为查询条件。
// - title/content/author 做忽略大小写的包含匹配，两侧显式 LOWER，
//   不依赖列排序规则恰好是 _ci
// - hashtag 走 post_hashtags 表做等值 JOIN，"javascript" 不会命中 "java"
// - SearchType 为空时不加任何条件
func searchScope(searchType, keyword string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		switch searchType {
		case dto.SearchTypeTitle:
			return db.Where("LOWER(posts.title) LIKE LOWER(?)", "%"+keyword+"%")
		case dto.SearchTypeContent:
			return db.Where("LOWER(posts.content) LIKE LOWER(?)", "%"+keyword+"%")
		case dto.SearchTypeAuthor:
			return db.Where("LOWER(posts.author) LIKE LOWER(?)", "%"+keyword+"%")
		case dto.SearchTypeHashtag:
			return db.Joins("JOIN post_hashtags ON post_hashtags.post_id = posts.id").
				Where("post_hashtags.hashtag = ?", keyword)
		default:
			return db
		}
	}
}

// sortScope 将排序维度编译为 ORDER BY。
// - latest: 创建时间倒序，ID 倒序兜底（同一秒内插入的行保持稳定顺序）
// - views:  浏览量倒序，创建时间倒序打平
// - likes:  LEFT JOIN 点赞表按 COUNT 倒序，零赞的帖子也要出现在结果里，
//   创建时间倒序打平
func sortScope(sort string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		switch sort {
		case dto.SortViews:
			return db.Order("posts.view_count DESC, posts.created_at DESC")
		case dto.SortLikes:
			return db.
				Joins("LEFT JOIN post_likes ON post_likes.post_id = posts.id").
				Group("posts.id").
				Order("COUNT(post_likes.id) DESC, posts.created_at DESC")
		default:
			return db.Order("posts.created_at DESC, posts.id DESC")
		}
	}
}

// ListPosts 组合搜索与排序两个 Scope 执行分页查询。
func (r *postListRepository) ListPosts(ctx context.Context, query dto.PostPageQuery) ([]*entities.Post, int64, error) {
	search := searchScope(query.SearchType, query.Keyword)

	// 计数查询只带搜索条件，不带排序。
	// 标签搜索的 JOIN 可能放大行数，因此按 posts.id 去重计数。
	var total int64
	countDB := r.db.WithContext(ctx).
		Model(&entities.Post{}).
		Scopes(search)
	if query.SearchType == dto.SearchTypeHashtag {
		countDB = countDB.Distinct("posts.id")
	}
	if err := countDB.Count(&total).Error; err != nil {
		r.logger.Error("统计帖子列表命中数失败",
			zap.String("searchType", query.SearchType),
			zap.String("keyword", query.Keyword),
			zap.Error(err))
		return nil, 0, fmt.Errorf("统计帖子列表命中数失败: %w", err)
	}

	var posts []*entities.Post
	listDB := r.db.WithContext(ctx).
		Model(&entities.Post{}).
		Select("posts.*").
		Scopes(search, sortScope(query.Sort)).
		Offset(query.Page * query.Size).
		Limit(query.Size)
	if query.SearchType == dto.SearchTypeHashtag && query.Sort != dto.SortLikes {
		// likes 排序已有 GROUP BY posts.id 去重，其余排序需显式去重
		listDB = listDB.Distinct("posts.*")
	}
	if err := listDB.Find(&posts).Error; err != nil {
		r.logger.Error("查询帖子列表失败",
			zap.String("searchType", query.SearchType),
			zap.String("sort", query.Sort),
			zap.Error(err))
		return nil, 0, fmt.Errorf("查询帖子列表失败: %w", err)
	}
	return posts, total, nil
}
