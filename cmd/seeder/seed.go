package main

import (
	"context"
	"fmt"
	"sync"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Xushengqwer/board_service/models/dto"
	"github.com/Xushengqwer/board_service/service"
)

// seedPassword 是所有造出来的帖子与评论共用的密码，方便手工测试变更操作
const seedPassword = "seed1234"

// Seed 通过服务层灌入测试数据: 帖子、根评论、回复与点赞。
// 走服务层而不是直插数据库，密码哈希、层级校验等业务规则顺带得到验证。
func Seed(
	ctx context.Context,
	postSvc service.PostService,
	commentSvc service.CommentService,
	likeSvc service.LikeService,
	logger *zap.Logger,
	numPosts int,
) {
	logger.Info("开始填充测试数据 (通过服务层)...", zap.Int("数量", numPosts))

	var wg sync.WaitGroup
	concurrencyLimit := 10
	semaphore := make(chan struct{}, concurrencyLimit)

	for i := 0; i < numPosts; i++ {
		wg.Add(1)
		semaphore <- struct{}{}

		go func(itemIndex int) {
			defer wg.Done()
			defer func() { <-semaphore }()

			hashtags := make([]string, 0, 3)
			for j := 0; j < gofakeit.Number(0, 3); j++ {
				hashtags = append(hashtags, gofakeit.Word())
			}

			createReq := &dto.CreatePostRequest{
				Title:    gofakeit.Sentence(gofakeit.Number(3, 10)),
				Content:  gofakeit.Paragraph(2, 4, 15, "\n\n"),
				Author:   gofakeit.Username(),
				Password: seedPassword,
				Hashtags: hashtags,
			}

			post, err := postSvc.CreatePost(ctx, createReq)
			if err != nil {
				logger.Error(fmt.Sprintf("创建帖子 %d/%d 失败", itemIndex+1, numPosts),
					zap.Error(err),
					zap.String("title", createReq.Title))
				return
			}
			logger.Info(fmt.Sprintf("成功创建帖子 %d/%d", itemIndex+1, numPosts),
				zap.Uint64("post_id", post.ID),
				zap.String("title", post.Title))

			seedCommentsAndLikes(ctx, commentSvc, likeSvc, logger, post.ID)
		}(i)
	}

	wg.Wait()
	logger.Info("测试数据填充完毕 (通过服务层)。")
}

// seedCommentsAndLikes 为单个帖子生成若干评论、回复与点赞。
func seedCommentsAndLikes(
	ctx context.Context,
	commentSvc service.CommentService,
	likeSvc service.LikeService,
	logger *zap.Logger,
	postID uint64,
) {
	// 根评论 + 部分回复
	for i := 0; i < gofakeit.Number(0, 6); i++ {
		comment, err := commentSvc.CreateComment(ctx, postID, &dto.CreateCommentRequest{
			Content:  gofakeit.Sentence(gofakeit.Number(5, 20)),
			Author:   gofakeit.Username(),
			Password: seedPassword,
		})
		if err != nil {
			logger.Warn("创建测试评论失败", zap.Uint64("postID", postID), zap.Error(err))
			continue
		}

		for j := 0; j < gofakeit.Number(0, 3); j++ {
			if _, err := commentSvc.CreateReply(ctx, comment.ID, &dto.CreateReplyRequest{
				Content:  gofakeit.Sentence(gofakeit.Number(3, 12)),
				Author:   gofakeit.Username(),
				Password: seedPassword,
			}); err != nil {
				logger.Warn("创建测试回复失败", zap.Uint64("commentID", comment.ID), zap.Error(err))
			}
		}
	}

	// 随机数量的访客点赞，访客标识用 UUID 模拟
	for i := 0; i < gofakeit.Number(0, 10); i++ {
		guestID := uuid.New().String()
		if _, err := likeSvc.LikePost(ctx, postID, guestID); err != nil {
			logger.Warn("创建测试点赞失败", zap.Uint64("postID", postID), zap.Error(err))
		}
	}
}
