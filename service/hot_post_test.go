package service

import (
	"context"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Xushengqwer/board_service/models/dto"
	"github.com/Xushengqwer/board_service/models/vo"
	"github.com/Xushengqwer/board_service/myErrors"
)

// fakeHotCache 是内存版的热门帖子缓存，未写入前一律未命中。
// 写回发生在异步 goroutine 里，加锁以通过 -race。
type fakeHotCache struct {
	mu        sync.Mutex
	posts     []vo.PostSummaryVO
	populated bool
	setCalls  int
}

func (c *fakeHotCache) SetHotPosts(_ context.Context, posts []vo.PostSummaryVO) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.posts = append([]vo.PostSummaryVO(nil), posts...)
	c.populated = true
	c.setCalls++
	return nil
}

func (c *fakeHotCache) GetHotPosts(_ context.Context) ([]vo.PostSummaryVO, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.populated {
		return nil, myErrors.ErrCacheMiss
	}
	return append([]vo.PostSummaryVO(nil), c.posts...), nil
}

func (c *fakeHotCache) isPopulated() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.populated
}

func (c *fakeHotCache) snapshot() ([]vo.PostSummaryVO, int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]vo.PostSummaryVO(nil), c.posts...), c.setCalls
}

// fakeRankRepo 是内存版热度榜，按分数倒序给出 Top N。
type fakeRankRepo struct {
	mu     sync.Mutex
	scores map[uint64]float64
}

func newFakeRankRepo() *fakeRankRepo {
	return &fakeRankRepo{scores: make(map[uint64]float64)}
}

func (r *fakeRankRepo) IncrViewRank(_ context.Context, postID uint64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.scores[postID]++
	return nil
}

func (r *fakeRankRepo) GetTopPostIDs(_ context.Context, n int64) ([]uint64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	ids := make([]uint64, 0, len(r.scores))
	for id := range r.scores {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		return r.scores[ids[i]] > r.scores[ids[j]]
	})
	if int64(len(ids)) > n {
		ids = ids[:n]
	}
	return ids, nil
}

func (r *fakeRankRepo) RemovePost(_ context.Context, postID uint64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.scores, postID)
	return nil
}

func newHotPostServiceForTest(t *testing.T) (HotPostService, PostService, *fakeHotCache) {
	t.Helper()
	db, mock := newTestDB(t)
	store := newFakeStore()
	listSvc := NewPostListService(store, store, store, store, store, zap.NewNop())
	postSvc := NewPostService(db, store, store, store, store, nil, plainEncryptor{}, nil, zap.NewNop())
	cache := &fakeHotCache{}
	hotSvc := NewHotPostService(listSvc, cache, nil, zap.NewNop())

	// 预置三条帖子并制造浏览量差异
	ctx := context.Background()
	for _, title := range []string{"第一", "第二", "第三"} {
		expectTx(mock)
		_, err := postSvc.CreatePost(ctx, &dto.CreatePostRequest{
			Title: title, Content: "c", Author: "a", Password: "1234",
		})
		require.NoError(t, err)
	}
	return hotSvc, postSvc, cache
}

func TestHotPostService_MissFallsBackToDB(t *testing.T) {
	hotSvc, postSvc, cache := newHotPostServiceForTest(t)
	ctx := context.Background()

	// 第二篇浏览两次，登上榜首
	for i := 0; i < 2; i++ {
		_, err := postSvc.GetPostDetail(ctx, 2, "")
		require.NoError(t, err)
	}

	posts, err := hotSvc.GetHotPosts(ctx)
	require.NoError(t, err)
	require.Len(t, posts, 3)
	assert.Equal(t, "第二", posts[0].Title)
	assert.Equal(t, int64(2), posts[0].ViewCount)

	// 回源结果异步写回缓存
	assert.Eventually(t, cache.isPopulated, time.Second, 10*time.Millisecond)
}

func TestHotPostService_CacheHit(t *testing.T) {
	hotSvc, _, cache := newHotPostServiceForTest(t)
	ctx := context.Background()

	// 缓存命中时直接返回缓存内容，不回源
	cached := []vo.PostSummaryVO{{ID: 42, Title: "缓存里的帖子"}}
	require.NoError(t, cache.SetHotPosts(ctx, cached))

	posts, err := hotSvc.GetHotPosts(ctx)
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, uint64(42), posts[0].ID)
}

func TestHotPostService_Refresh(t *testing.T) {
	hotSvc, postSvc, cache := newHotPostServiceForTest(t)
	ctx := context.Background()

	_, err := postSvc.GetPostDetail(ctx, 3, "")
	require.NoError(t, err)

	require.NoError(t, hotSvc.RefreshHotPosts(ctx))
	assert.True(t, cache.isPopulated())
	posts, _ := cache.snapshot()
	require.NotEmpty(t, posts)
	assert.Equal(t, "第三", posts[0].Title)

	// 再次刷新覆盖旧榜单
	_, err = postSvc.GetPostDetail(ctx, 1, "")
	require.NoError(t, err)
	_, err = postSvc.GetPostDetail(ctx, 1, "")
	require.NoError(t, err)
	require.NoError(t, hotSvc.RefreshHotPosts(ctx))
	posts, setCalls := cache.snapshot()
	assert.Equal(t, "第一", posts[0].Title)
	assert.Equal(t, 2, setCalls)
}

// 榜单排名由热度榜 ZSet 决定，而不是数据库浏览量
func TestHotPostService_RankDrivenOrder(t *testing.T) {
	db, mock := newTestDB(t)
	store := newFakeStore()
	listSvc := NewPostListService(store, store, store, store, store, zap.NewNop())
	postSvc := NewPostService(db, store, store, store, store, nil, plainEncryptor{}, nil, zap.NewNop())
	cache := &fakeHotCache{}
	rank := newFakeRankRepo()
	hotSvc := NewHotPostService(listSvc, cache, rank, zap.NewNop())
	ctx := context.Background()

	for _, title := range []string{"第一", "第二", "第三"} {
		expectTx(mock)
		_, err := postSvc.CreatePost(ctx, &dto.CreatePostRequest{
			Title: title, Content: "c", Author: "a", Password: "1234",
		})
		require.NoError(t, err)
	}

	// 帖子 3 分数最高，帖子 1 次之，帖子 2 不在榜上
	for i := 0; i < 5; i++ {
		require.NoError(t, rank.IncrViewRank(ctx, 3))
	}
	for i := 0; i < 2; i++ {
		require.NoError(t, rank.IncrViewRank(ctx, 1))
	}

	require.NoError(t, hotSvc.RefreshHotPosts(ctx))
	posts, _ := cache.snapshot()
	require.Len(t, posts, 2)
	assert.Equal(t, uint64(3), posts[0].ID)
	assert.Equal(t, uint64(1), posts[1].ID)
}

// 热度榜里残留的已删帖子 ID 被跳过；榜单全部失效时退回浏览量排序
func TestHotPostService_RankFallbacks(t *testing.T) {
	db, mock := newTestDB(t)
	store := newFakeStore()
	listSvc := NewPostListService(store, store, store, store, store, zap.NewNop())
	postSvc := NewPostService(db, store, store, store, store, nil, plainEncryptor{}, nil, zap.NewNop())
	rank := newFakeRankRepo()
	// 不挂缓存，每次读取都现场重建，便于观察排名路径
	hotSvc := NewHotPostService(listSvc, nil, rank, zap.NewNop())
	ctx := context.Background()

	for _, title := range []string{"第一", "第二"} {
		expectTx(mock)
		_, err := postSvc.CreatePost(ctx, &dto.CreatePostRequest{
			Title: title, Content: "c", Author: "a", Password: "1234",
		})
		require.NoError(t, err)
	}

	// 榜上只有一个已删除的帖子 ID，重建时走浏览量兜底
	require.NoError(t, rank.IncrViewRank(ctx, 99))
	posts, err := hotSvc.GetHotPosts(ctx)
	require.NoError(t, err)
	assert.Len(t, posts, 2)

	// 榜上混有存活与已删帖子时，只保留存活的
	require.NoError(t, rank.IncrViewRank(ctx, 2))
	require.NoError(t, rank.IncrViewRank(ctx, 2))
	posts, err = hotSvc.GetHotPosts(ctx)
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, uint64(2), posts[0].ID)
}

func TestHotPostService_NilCacheDegradesGracefully(t *testing.T) {
	db, mock := newTestDB(t)
	store := newFakeStore()
	listSvc := NewPostListService(store, store, store, store, store, zap.NewNop())
	postSvc := NewPostService(db, store, store, store, store, nil, plainEncryptor{}, nil, zap.NewNop())
	hotSvc := NewHotPostService(listSvc, nil, nil, zap.NewNop())
	ctx := context.Background()

	expectTx(mock)
	_, err := postSvc.CreatePost(ctx, &dto.CreatePostRequest{
		Title: "t", Content: "c", Author: "a", Password: "1234",
	})
	require.NoError(t, err)

	posts, err := hotSvc.GetHotPosts(ctx)
	require.NoError(t, err)
	assert.Len(t, posts, 1)
	assert.NoError(t, hotSvc.RefreshHotPosts(ctx))
}
