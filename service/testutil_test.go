package service

import (
	"context"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/Xushengqwer/go-common/commonerrors"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Xushengqwer/board_service/models/dto"
	"github.com/Xushengqwer/board_service/models/entities"
	"github.com/Xushengqwer/board_service/myErrors"
)

// newTestDB 返回一个由 sqlmock 驱动的 gorm.DB，用于覆盖事务路径。
// 仓库操作都走内存假仓库，mock 只需应答 Begin/Commit。
func newTestDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("创建 sqlmock 失败: %v", err)
	}
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("初始化 gorm 失败: %v", err)
	}
	return db, mock
}

// expectTx 注册一组 Begin/Commit 期望，对应服务层的一次事务。
func expectTx(mock sqlmock.Sqlmock) {
	mock.ExpectBegin()
	mock.ExpectCommit()
}

// plainEncryptor 是测试用密码哈希器，避免 bcrypt 拖慢用例。
type plainEncryptor struct{}

func (plainEncryptor) Hash(plain string) (string, error) {
	return "hashed:" + plain, nil
}

func (plainEncryptor) Verify(plain, hashed string) (bool, error) {
	return hashed == "hashed:"+plain, nil
}

// fakeStore 是覆盖全部 MySQL 仓库接口的内存实现。
// 读操作返回副本，行为上与真实数据库一致: 调用方改动返回值不会影响存储。
type fakeStore struct {
	mu sync.Mutex

	posts    map[uint64]*entities.Post
	hashtags map[uint64][]string
	comments map[uint64]*entities.Comment
	likes    map[uint64]map[string]*entities.PostLike

	nextPostID    uint64
	nextCommentID uint64
	seq           int
	base          time.Time
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		posts:    make(map[uint64]*entities.Post),
		hashtags: make(map[uint64][]string),
		comments: make(map[uint64]*entities.Comment),
		likes:    make(map[uint64]map[string]*entities.PostLike),
		base:     time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

// nextTime 单调递增的假时钟，保证插入顺序可复现
func (s *fakeStore) nextTime() time.Time {
	s.seq++
	return s.base.Add(time.Duration(s.seq) * time.Second)
}

func copyPost(p *entities.Post) *entities.Post {
	cp := *p
	return &cp
}

func copyComment(c *entities.Comment) *entities.Comment {
	cp := *c
	if c.ParentID != nil {
		pid := *c.ParentID
		cp.ParentID = &pid
	}
	return &cp
}

// --- PostRepository ---

func (s *fakeStore) CreatePost(_ context.Context, _ *gorm.DB, post *entities.Post) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextPostID++
	post.ID = s.nextPostID
	if post.CreatedAt.IsZero() {
		post.CreatedAt = s.nextTime()
	}
	post.UpdatedAt = post.CreatedAt
	s.posts[post.ID] = copyPost(post)
	return nil
}

func (s *fakeStore) GetPostByID(_ context.Context, id uint64) (*entities.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	post, ok := s.posts[id]
	if !ok {
		return nil, commonerrors.ErrRepoNotFound
	}
	return copyPost(post), nil
}

func (s *fakeStore) GetPostsByIDs(_ context.Context, ids []uint64) ([]*entities.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	result := make([]*entities.Post, 0, len(ids))
	for _, id := range ids {
		if p, ok := s.posts[id]; ok {
			result = append(result, copyPost(p))
		}
	}
	return result, nil
}

func (s *fakeStore) UpdatePost(_ context.Context, _ *gorm.DB, postID uint64, title, content string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	post, ok := s.posts[postID]
	if !ok {
		return commonerrors.ErrRepoNotFound
	}
	post.Title = title
	post.Content = content
	post.UpdatedAt = s.nextTime()
	return nil
}

func (s *fakeStore) UpdatePassword(_ context.Context, postID uint64, hashedPassword string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	post, ok := s.posts[postID]
	if !ok {
		return commonerrors.ErrRepoNotFound
	}
	post.Password = hashedPassword
	return nil
}

func (s *fakeStore) IncrementViewCount(_ context.Context, postID uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	post, ok := s.posts[postID]
	if !ok {
		return commonerrors.ErrRepoNotFound
	}
	post.ViewCount++
	return nil
}

func (s *fakeStore) DeletePost(_ context.Context, _ *gorm.DB, id uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.posts[id]; !ok {
		return commonerrors.ErrRepoNotFound
	}
	delete(s.posts, id)
	return nil
}

func (s *fakeStore) CountPosts(_ context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return int64(len(s.posts)), nil
}

// --- HashtagRepository ---

func (s *fakeStore) ReplaceHashtags(_ context.Context, _ *gorm.DB, postID uint64, hashtags []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hashtags[postID] = append([]string(nil), hashtags...)
	return nil
}

func (s *fakeStore) GetHashtagsByPostID(_ context.Context, postID uint64) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.hashtags[postID]...), nil
}

func (s *fakeStore) GetHashtagsByPostIDs(_ context.Context, postIDs []uint64) (map[uint64][]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	result := make(map[uint64][]string, len(postIDs))
	for _, id := range postIDs {
		if tags, ok := s.hashtags[id]; ok && len(tags) > 0 {
			result[id] = append([]string(nil), tags...)
		}
	}
	return result, nil
}

// DeleteByPostID 同时满足标签、评论、点赞三个接口的级联清理方法。
func (s *fakeStore) DeleteByPostID(_ context.Context, _ *gorm.DB, postID uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.hashtags, postID)
	delete(s.likes, postID)
	for id, c := range s.comments {
		if c.PostID == postID {
			delete(s.comments, id)
		}
	}
	return nil
}

// --- CommentRepository ---

func (s *fakeStore) CreateComment(_ context.Context, comment *entities.Comment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextCommentID++
	comment.ID = s.nextCommentID
	if comment.CreatedAt.IsZero() {
		comment.CreatedAt = s.nextTime()
	}
	s.comments[comment.ID] = copyComment(comment)
	return nil
}

func (s *fakeStore) GetCommentByID(_ context.Context, id uint64) (*entities.Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	comment, ok := s.comments[id]
	if !ok {
		return nil, commonerrors.ErrRepoNotFound
	}
	return copyComment(comment), nil
}

func (s *fakeStore) MarkDeleted(_ context.Context, id uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	comment, ok := s.comments[id]
	if !ok {
		return commonerrors.ErrRepoNotFound
	}
	comment.Deleted = true
	return nil
}

func (s *fakeStore) rootComments(postID uint64) []*entities.Comment {
	var roots []*entities.Comment
	for _, c := range s.comments {
		if c.PostID == postID && c.ParentID == nil {
			roots = append(roots, c)
		}
	}
	sort.Slice(roots, func(i, j int) bool {
		return roots[i].CreatedAt.After(roots[j].CreatedAt)
	})
	return roots
}

func (s *fakeStore) ListRootComments(_ context.Context, postID uint64, offset, limit int) ([]*entities.Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	roots := s.rootComments(postID)
	if offset >= len(roots) {
		return nil, nil
	}
	end := offset + limit
	if end > len(roots) {
		end = len(roots)
	}
	page := make([]*entities.Comment, 0, end-offset)
	for _, c := range roots[offset:end] {
		page = append(page, copyComment(c))
	}
	return page, nil
}

func (s *fakeStore) CountRootComments(_ context.Context, postID uint64) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return int64(len(s.rootComments(postID))), nil
}

func (s *fakeStore) ListReplies(_ context.Context, parentID uint64, offset, limit int) ([]*entities.Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var replies []*entities.Comment
	for _, c := range s.comments {
		if c.ParentID != nil && *c.ParentID == parentID {
			replies = append(replies, c)
		}
	}
	sort.Slice(replies, func(i, j int) bool {
		return replies[i].CreatedAt.Before(replies[j].CreatedAt)
	})
	if offset >= len(replies) {
		return nil, nil
	}
	end := offset + limit
	if end > len(replies) {
		end = len(replies)
	}
	page := make([]*entities.Comment, 0, end-offset)
	for _, c := range replies[offset:end] {
		page = append(page, copyComment(c))
	}
	return page, nil
}

func (s *fakeStore) CountReplies(_ context.Context, parentID uint64) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var count int64
	for _, c := range s.comments {
		if c.ParentID != nil && *c.ParentID == parentID {
			count++
		}
	}
	return count, nil
}

func (s *fakeStore) CountActiveRepliesByParentIDs(_ context.Context, parentIDs []uint64) (map[uint64]int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	result := make(map[uint64]int64, len(parentIDs))
	for _, pid := range parentIDs {
		for _, c := range s.comments {
			if c.ParentID != nil && *c.ParentID == pid && !c.Deleted {
				result[pid]++
			}
		}
	}
	return result, nil
}

func (s *fakeStore) CountActiveByPostID(_ context.Context, postID uint64) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var count int64
	for _, c := range s.comments {
		if c.PostID == postID && !c.Deleted {
			count++
		}
	}
	return count, nil
}

func (s *fakeStore) CountActiveByPostIDs(_ context.Context, postIDs []uint64) (map[uint64]int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	result := make(map[uint64]int64, len(postIDs))
	for _, id := range postIDs {
		for _, c := range s.comments {
			if c.PostID == id && !c.Deleted {
				result[id]++
			}
		}
	}
	return result, nil
}

func (s *fakeStore) CountAllActive(_ context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var count int64
	for _, c := range s.comments {
		if !c.Deleted {
			count++
		}
	}
	return count, nil
}

// --- LikeRepository ---

func (s *fakeStore) CreateLike(_ context.Context, like *entities.PostLike) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	guests, ok := s.likes[like.PostID]
	if !ok {
		guests = make(map[string]*entities.PostLike)
		s.likes[like.PostID] = guests
	}
	if _, exists := guests[like.GuestID]; exists {
		return myErrors.ErrAlreadyLiked
	}
	like.CreatedAt = s.nextTime()
	cp := *like
	guests[like.GuestID] = &cp
	return nil
}

func (s *fakeStore) DeleteLike(_ context.Context, postID uint64, guestID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	guests := s.likes[postID]
	if _, exists := guests[guestID]; !exists {
		return myErrors.ErrNotLiked
	}
	delete(guests, guestID)
	return nil
}

func (s *fakeStore) Exists(_ context.Context, postID uint64, guestID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, exists := s.likes[postID][guestID]
	return exists, nil
}

func (s *fakeStore) CountByPostID(_ context.Context, postID uint64) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return int64(len(s.likes[postID])), nil
}

func (s *fakeStore) CountByPostIDs(_ context.Context, postIDs []uint64) (map[uint64]int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	result := make(map[uint64]int64, len(postIDs))
	for _, id := range postIDs {
		if n := len(s.likes[id]); n > 0 {
			result[id] = int64(n)
		}
	}
	return result, nil
}

// --- PostListRepository ---

func (s *fakeStore) ListPosts(_ context.Context, query dto.PostPageQuery) ([]*entities.Post, int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var matched []*entities.Post
	for _, p := range s.posts {
		if s.matches(p, query.SearchType, query.Keyword) {
			matched = append(matched, p)
		}
	}

	switch query.Sort {
	case dto.SortViews:
		sort.Slice(matched, func(i, j int) bool {
			if matched[i].ViewCount != matched[j].ViewCount {
				return matched[i].ViewCount > matched[j].ViewCount
			}
			return matched[i].CreatedAt.After(matched[j].CreatedAt)
		})
	case dto.SortLikes:
		sort.Slice(matched, func(i, j int) bool {
			li, lj := len(s.likes[matched[i].ID]), len(s.likes[matched[j].ID])
			if li != lj {
				return li > lj
			}
			return matched[i].CreatedAt.After(matched[j].CreatedAt)
		})
	default:
		sort.Slice(matched, func(i, j int) bool {
			if !matched[i].CreatedAt.Equal(matched[j].CreatedAt) {
				return matched[i].CreatedAt.After(matched[j].CreatedAt)
			}
			return matched[i].ID > matched[j].ID
		})
	}

	total := int64(len(matched))
	offset := query.Page * query.Size
	if offset >= len(matched) {
		return nil, total, nil
	}
	end := offset + query.Size
	if end > len(matched) {
		end = len(matched)
	}
	page := make([]*entities.Post, 0, end-offset)
	for _, p := range matched[offset:end] {
		page = append(page, copyPost(p))
	}
	return page, total, nil
}

// 文本搜索忽略大小写，与生产查询的 LOWER(...) LIKE LOWER(?) 行为一致
func (s *fakeStore) matches(p *entities.Post, searchType, keyword string) bool {
	kw := strings.ToLower(keyword)
	switch searchType {
	case dto.SearchTypeTitle:
		return strings.Contains(strings.ToLower(p.Title), kw)
	case dto.SearchTypeContent:
		return strings.Contains(strings.ToLower(p.Content), kw)
	case dto.SearchTypeAuthor:
		return strings.Contains(strings.ToLower(p.Author), kw)
	case dto.SearchTypeHashtag:
		for _, tag := range s.hashtags[p.ID] {
			if tag == keyword {
				return true
			}
		}
		return false
	default:
		return true
	}
}
