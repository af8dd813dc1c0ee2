package dto

// ListPostsRequest 定义帖子列表的查询参数
// - page 从 0 开始，负数在绑定阶段被拒绝
// - size 只允许 10 或 20 两档，省略时取 10
// - searchType 刻意不做 oneof 约束: 未知取值按"无过滤"处理而非报错，
//   便于前端增量上线新的搜索入口
// - sort 省略或传空串时按 latest 处理
type ListPostsRequest struct {
	Page       int    `form:"page" binding:"omitempty,gte=0"`
	Size       int    `form:"size" binding:"omitempty,oneof=10 20"`
	SearchType string `form:"searchType" binding:"omitempty,max=20"`
	Keyword    string `form:"keyword" binding:"omitempty,max=200"`
	Sort       string `form:"sort" binding:"omitempty,oneof=latest views likes"`
}

// 搜索类型取值。title/content/author 做包含匹配，hashtag 做精确匹配。
const (
	SearchTypeTitle   = "title"
	SearchTypeContent = "content"
	SearchTypeAuthor  = "author"
	SearchTypeHashtag = "hashtag"
)

// 排序方式取值
const (
	SortLatest = "latest"
	SortViews  = "views"
	SortLikes  = "likes"
)

// PostPageQuery 是服务层与仓库层之间的列表查询对象
// - 由控制器在补齐默认值后从 ListPostsRequest 归一化而来:
//   Size 已落在 {10,20}，Sort 已非空，未知 SearchType 已清空
type PostPageQuery struct {
	Page       int
	Size       int
	SearchType string
	Keyword    string
	Sort       string
}

// Normalize 将外部入参整理为仓库层可直接执行的查询对象
func (req *ListPostsRequest) Normalize() PostPageQuery {
	q := PostPageQuery{
		Page:       req.Page,
		Size:       req.Size,
		SearchType: req.SearchType,
		Keyword:    req.Keyword,
		Sort:       req.Sort,
	}
	if q.Size == 0 {
		q.Size = 10
	}
	if q.Sort == "" {
		q.Sort = SortLatest
	}
	switch q.SearchType {
	case SearchTypeTitle, SearchTypeContent, SearchTypeAuthor, SearchTypeHashtag:
		// 关键词为空时搜索条件不生效
		if q.Keyword == "" {
			q.SearchType = ""
		}
	default:
		q.SearchType = ""
		q.Keyword = ""
	}
	return q
}
