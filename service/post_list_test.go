package service

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Xushengqwer/board_service/models/dto"
	"github.com/Xushengqwer/board_service/models/entities"
)

func newPostListServiceForTest(t *testing.T) (PostListService, PostService, *fakeStore, sqlmock.Sqlmock) {
	t.Helper()
	db, mock := newTestDB(t)
	store := newFakeStore()
	listSvc := NewPostListService(store, store, store, store, store, zap.NewNop())
	postSvc := NewPostService(db, store, store, store, store, nil, plainEncryptor{}, nil, zap.NewNop())
	return listSvc, postSvc, store, mock
}

// seedPost 造一条指定标题/内容/作者/标签的帖子
func seedPost(t *testing.T, svc PostService, mock sqlmock.Sqlmock, title, content, author string, hashtags ...string) uint64 {
	t.Helper()
	return mustCreatePost(t, svc, mock, &dto.CreatePostRequest{
		Title: title, Content: content, Author: author, Password: "1234",
		Hashtags: hashtags,
	})
}

func TestPostListService_SearchByTitle(t *testing.T) {
	listSvc, postSvc, _, mock := newPostListServiceForTest(t)
	ctx := context.Background()

	seedPost(t, postSvc, mock, "Go 并发模式", "c", "a")
	seedPost(t, postSvc, mock, "Rust 入门", "c", "a")
	seedPost(t, postSvc, mock, "Go 泛型实践", "c", "a")

	page, err := listSvc.ListPosts(ctx, dto.PostPageQuery{
		Page: 0, Size: 10, SearchType: dto.SearchTypeTitle, Keyword: "Go", Sort: dto.SortLatest,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2), page.TotalElements)
	for _, p := range page.Posts {
		assert.Contains(t, p.Title, "Go")
	}
}

func TestPostListService_SearchByContentAndAuthor(t *testing.T) {
	listSvc, postSvc, _, mock := newPostListServiceForTest(t)
	ctx := context.Background()

	seedPost(t, postSvc, mock, "t1", "今天聊聊缓存穿透", "张三")
	seedPost(t, postSvc, mock, "t2", "数据库索引原理", "李四")

	page, err := listSvc.ListPosts(ctx, dto.PostPageQuery{
		Page: 0, Size: 10, SearchType: dto.SearchTypeContent, Keyword: "缓存", Sort: dto.SortLatest,
	})
	require.NoError(t, err)
	require.Equal(t, int64(1), page.TotalElements)
	assert.Equal(t, "t1", page.Posts[0].Title)

	page, err = listSvc.ListPosts(ctx, dto.PostPageQuery{
		Page: 0, Size: 10, SearchType: dto.SearchTypeAuthor, Keyword: "李", Sort: dto.SortLatest,
	})
	require.NoError(t, err)
	require.Equal(t, int64(1), page.TotalElements)
	assert.Equal(t, "李四", page.Posts[0].Author)
}

// 文本搜索忽略大小写
func TestPostListService_SearchCaseInsensitive(t *testing.T) {
	listSvc, postSvc, _, mock := newPostListServiceForTest(t)
	ctx := context.Background()

	seedPost(t, postSvc, mock, "java tips", "c", "Alice")
	seedPost(t, postSvc, mock, "rust tips", "c", "bob")

	page, err := listSvc.ListPosts(ctx, dto.PostPageQuery{
		Page: 0, Size: 10, SearchType: dto.SearchTypeTitle, Keyword: "JAVA", Sort: dto.SortLatest,
	})
	require.NoError(t, err)
	require.Equal(t, int64(1), page.TotalElements)
	assert.Equal(t, "java tips", page.Posts[0].Title)

	page, err = listSvc.ListPosts(ctx, dto.PostPageQuery{
		Page: 0, Size: 10, SearchType: dto.SearchTypeAuthor, Keyword: "alice", Sort: dto.SortLatest,
	})
	require.NoError(t, err)
	require.Equal(t, int64(1), page.TotalElements)
	assert.Equal(t, "Alice", page.Posts[0].Author)
}

// 标签搜索是精确匹配: 搜 java 不应命中 javascript，反之亦然
func TestPostListService_SearchByHashtagExact(t *testing.T) {
	listSvc, postSvc, _, mock := newPostListServiceForTest(t)
	ctx := context.Background()

	javaID := seedPost(t, postSvc, mock, "Java 帖", "c", "a", "java")
	jsID := seedPost(t, postSvc, mock, "JS 帖", "c", "a", "javascript")

	page, err := listSvc.ListPosts(ctx, dto.PostPageQuery{
		Page: 0, Size: 10, SearchType: dto.SearchTypeHashtag, Keyword: "java", Sort: dto.SortLatest,
	})
	require.NoError(t, err)
	require.Equal(t, int64(1), page.TotalElements)
	assert.Equal(t, javaID, page.Posts[0].ID)

	page, err = listSvc.ListPosts(ctx, dto.PostPageQuery{
		Page: 0, Size: 10, SearchType: dto.SearchTypeHashtag, Keyword: "javascript", Sort: dto.SortLatest,
	})
	require.NoError(t, err)
	require.Equal(t, int64(1), page.TotalElements)
	assert.Equal(t, jsID, page.Posts[0].ID)
}

// 未知 searchType 归一化后等于无过滤
func TestPostListService_UnknownSearchTypeUnfiltered(t *testing.T) {
	listSvc, postSvc, _, mock := newPostListServiceForTest(t)
	ctx := context.Background()

	seedPost(t, postSvc, mock, "t1", "c", "a")
	seedPost(t, postSvc, mock, "t2", "c", "a")

	req := &dto.ListPostsRequest{SearchType: "emoji", Keyword: "whatever", Size: 10}
	query := req.Normalize()
	assert.Empty(t, query.SearchType)
	assert.Empty(t, query.Keyword)

	page, err := listSvc.ListPosts(ctx, query)
	require.NoError(t, err)
	assert.Equal(t, int64(2), page.TotalElements)
}

func TestPostListService_SortByViews(t *testing.T) {
	listSvc, postSvc, _, mock := newPostListServiceForTest(t)
	ctx := context.Background()

	lowID := seedPost(t, postSvc, mock, "low", "c", "a")
	highID := seedPost(t, postSvc, mock, "high", "c", "a")

	// 浏览 3 次 vs 1 次
	for i := 0; i < 3; i++ {
		_, err := postSvc.GetPostDetail(ctx, highID, "")
		require.NoError(t, err)
	}
	_, err := postSvc.GetPostDetail(ctx, lowID, "")
	require.NoError(t, err)

	page, err := listSvc.ListPosts(ctx, dto.PostPageQuery{
		Page: 0, Size: 10, Sort: dto.SortViews,
	})
	require.NoError(t, err)
	require.Len(t, page.Posts, 2)
	assert.Equal(t, highID, page.Posts[0].ID)
	assert.Equal(t, int64(3), page.Posts[0].ViewCount)
	assert.Equal(t, lowID, page.Posts[1].ID)
}

func TestPostListService_SortByLikes(t *testing.T) {
	db, mock := newTestDB(t)
	store := newFakeStore()
	listSvc := NewPostListService(store, store, store, store, store, zap.NewNop())
	postSvc := NewPostService(db, store, store, store, store, nil, plainEncryptor{}, nil, zap.NewNop())
	likeSvc := NewLikeService(store, store, zap.NewNop())
	ctx := context.Background()

	popularID := seedPost(t, postSvc, mock, "popular", "c", "a")
	quietID := seedPost(t, postSvc, mock, "quiet", "c", "a")

	for _, g := range []string{"g1", "g2", "g3"} {
		_, err := likeSvc.LikePost(ctx, popularID, g)
		require.NoError(t, err)
	}
	_, err := likeSvc.LikePost(ctx, quietID, "g1")
	require.NoError(t, err)

	page, err := listSvc.ListPosts(ctx, dto.PostPageQuery{
		Page: 0, Size: 10, Sort: dto.SortLikes,
	})
	require.NoError(t, err)
	require.Len(t, page.Posts, 2)
	assert.Equal(t, popularID, page.Posts[0].ID)
	assert.Equal(t, int64(3), page.Posts[0].LikeCount)
	assert.Equal(t, quietID, page.Posts[1].ID)
}

func TestPostListService_SortLatestDefault(t *testing.T) {
	listSvc, postSvc, _, mock := newPostListServiceForTest(t)
	ctx := context.Background()

	seedPost(t, postSvc, mock, "older", "c", "a")
	newerID := seedPost(t, postSvc, mock, "newer", "c", "a")

	page, err := listSvc.ListPosts(ctx, dto.PostPageQuery{
		Page: 0, Size: 10, Sort: dto.SortLatest,
	})
	require.NoError(t, err)
	require.Len(t, page.Posts, 2)
	assert.Equal(t, newerID, page.Posts[0].ID)
}

func TestPostListService_Pagination(t *testing.T) {
	listSvc, postSvc, _, mock := newPostListServiceForTest(t)
	ctx := context.Background()

	for i := 0; i < 25; i++ {
		seedPost(t, postSvc, mock, "t", "c", "a")
	}

	page0, err := listSvc.ListPosts(ctx, dto.PostPageQuery{Page: 0, Size: 10, Sort: dto.SortLatest})
	require.NoError(t, err)
	assert.Len(t, page0.Posts, 10)
	assert.Equal(t, int64(25), page0.TotalElements)
	assert.Equal(t, int64(3), page0.TotalPages)

	page2, err := listSvc.ListPosts(ctx, dto.PostPageQuery{Page: 2, Size: 10, Sort: dto.SortLatest})
	require.NoError(t, err)
	assert.Len(t, page2.Posts, 5)

	// 越过末页返回空列表而不是报错
	page9, err := listSvc.ListPosts(ctx, dto.PostPageQuery{Page: 9, Size: 10, Sort: dto.SortLatest})
	require.NoError(t, err)
	assert.Empty(t, page9.Posts)
	assert.Equal(t, int64(25), page9.TotalElements)
}

// 全站统计与搜索条件无关: 搜索零命中时仍返回全站帖子数与评论数
func TestPostListService_GlobalTotalsIndependentOfFilter(t *testing.T) {
	db, mock := newTestDB(t)
	store := newFakeStore()
	listSvc := NewPostListService(store, store, store, store, store, zap.NewNop())
	postSvc := NewPostService(db, store, store, store, store, nil, plainEncryptor{}, nil, zap.NewNop())
	commentSvc := NewCommentService(db, store, store, plainEncryptor{}, zap.NewNop())
	ctx := context.Background()

	postID := seedPost(t, postSvc, mock, "唯一的帖子", "c", "a")
	_, err := commentSvc.CreateComment(ctx, postID, &dto.CreateCommentRequest{
		Content: "评论", Author: "b", Password: "5678",
	})
	require.NoError(t, err)

	page, err := listSvc.ListPosts(ctx, dto.PostPageQuery{
		Page: 0, Size: 10, SearchType: dto.SearchTypeTitle, Keyword: "不存在的关键词", Sort: dto.SortLatest,
	})
	require.NoError(t, err)
	assert.Empty(t, page.Posts)
	assert.Equal(t, int64(0), page.TotalElements)
	assert.Equal(t, int64(1), page.TotalPostCount)
	assert.Equal(t, int64(1), page.TotalCommentCount)
}

// 已删除评论不计入全站评论数
func TestPostListService_GlobalCommentCountExcludesDeleted(t *testing.T) {
	db, mock := newTestDB(t)
	store := newFakeStore()
	listSvc := NewPostListService(store, store, store, store, store, zap.NewNop())
	postSvc := NewPostService(db, store, store, store, store, nil, plainEncryptor{}, nil, zap.NewNop())
	commentSvc := NewCommentService(db, store, store, plainEncryptor{}, zap.NewNop())
	ctx := context.Background()

	postID := seedPost(t, postSvc, mock, "t", "c", "a")
	_, err := commentSvc.CreateComment(ctx, postID, &dto.CreateCommentRequest{
		Content: "保留", Author: "b", Password: "5678",
	})
	require.NoError(t, err)
	doomed, err := commentSvc.CreateComment(ctx, postID, &dto.CreateCommentRequest{
		Content: "待删", Author: "b", Password: "5678",
	})
	require.NoError(t, err)
	require.NoError(t, commentSvc.DeleteComment(ctx, doomed.ID, "5678"))

	page, err := listSvc.ListPosts(ctx, dto.PostPageQuery{Page: 0, Size: 10, Sort: dto.SortLatest})
	require.NoError(t, err)
	assert.Equal(t, int64(1), page.TotalCommentCount)
	require.Len(t, page.Posts, 1)
	assert.Equal(t, int64(1), page.Posts[0].CommentCount)
}

func TestPostListService_IsNewFlag(t *testing.T) {
	listSvc, postSvc, store, mock := newPostListServiceForTest(t)
	ctx := context.Background()

	// 假时钟造出来的帖子相对当前时间早已过期
	oldID := seedPost(t, postSvc, mock, "old", "c", "a")

	// 直接落库一条创建时间为"现在"的帖子
	fresh := &entities.Post{
		Title: "fresh", Content: "c", Author: "a", Password: "hashed:1234",
		CreatedAt: time.Now(),
	}
	require.NoError(t, store.CreatePost(ctx, nil, fresh))

	page, err := listSvc.ListPosts(ctx, dto.PostPageQuery{Page: 0, Size: 10, Sort: dto.SortLatest})
	require.NoError(t, err)
	require.Len(t, page.Posts, 2)
	for _, p := range page.Posts {
		switch p.ID {
		case fresh.ID:
			assert.True(t, p.IsNew)
		case oldID:
			assert.False(t, p.IsNew)
		}
	}
}

// 超长内容在摘要中被截断
func TestPostListService_ExcerptTruncated(t *testing.T) {
	listSvc, postSvc, _, mock := newPostListServiceForTest(t)
	ctx := context.Background()

	long := ""
	for i := 0; i < 30; i++ {
		long += "这是很长的内容"
	}
	seedPost(t, postSvc, mock, "t", long, "a")

	page, err := listSvc.ListPosts(ctx, dto.PostPageQuery{Page: 0, Size: 10, Sort: dto.SortLatest})
	require.NoError(t, err)
	require.Len(t, page.Posts, 1)
	excerpt := []rune(page.Posts[0].Excerpt)
	assert.Len(t, excerpt, 101)
	assert.Equal(t, '…', excerpt[100])
}
