package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestListPostsRequest_Normalize(t *testing.T) {
	// 空请求取默认值
	q := (&ListPostsRequest{}).Normalize()
	assert.Equal(t, 10, q.Size)
	assert.Equal(t, SortLatest, q.Sort)
	assert.Empty(t, q.SearchType)

	// 合法搜索参数原样保留
	q = (&ListPostsRequest{
		Page: 2, Size: 20, SearchType: SearchTypeHashtag, Keyword: "golang", Sort: SortViews,
	}).Normalize()
	assert.Equal(t, 2, q.Page)
	assert.Equal(t, 20, q.Size)
	assert.Equal(t, SearchTypeHashtag, q.SearchType)
	assert.Equal(t, "golang", q.Keyword)
	assert.Equal(t, SortViews, q.Sort)

	// 未知搜索类型整体清空，等价于无过滤
	q = (&ListPostsRequest{SearchType: "emoji", Keyword: "whatever"}).Normalize()
	assert.Empty(t, q.SearchType)
	assert.Empty(t, q.Keyword)

	// 关键词为空时搜索类型不生效
	q = (&ListPostsRequest{SearchType: SearchTypeTitle}).Normalize()
	assert.Empty(t, q.SearchType)
}
