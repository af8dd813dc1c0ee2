package constant

import "time"

// Redis Key 相关常量 (导出)
const (
	// PostsRankKey 是全局帖子浏览热度榜的 Key 名称。
	// 这是一个 Sorted Set (ZSet)，成员是帖子 ID (postID)，分数是浏览量。
	// 每次帖子详情被读取后异步 ZINCRBY，仅用于热榜，不参与浏览量的权威计数
	// （权威计数在 MySQL 中以原子 UPDATE 维护）。
	// Redis 类型: Sorted Set
	PostsRankKey = "board:post_rank"

	// HotPostsCacheKey 是热门帖子榜单缓存的 Key 名称。
	// 由定时任务从数据库按浏览量截取 Top N 摘要后以 JSON 形式写入。
	// Redis 类型: String (JSON 数组)
	HotPostsCacheKey = "board:hot_posts"
)

// HotPostsCacheTTL 热门帖子榜单缓存的过期时间。
// 略大于刷新周期，保证定时任务短暂失败时榜单仍可读。
const HotPostsCacheTTL = 15 * time.Minute

// HotPostsCacheCronSpec 热门帖子缓存刷新任务的调度表达式（分钟级）
const HotPostsCacheCronSpec = "*/5 * * * *"

// HotPostsCacheSize 热榜缓存的帖子条数
const HotPostsCacheSize = 20
