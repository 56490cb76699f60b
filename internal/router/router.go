package router

import (
	"mcaverse/internal/config"
	"mcaverse/internal/handlers"
	"mcaverse/internal/middleware"
	"mcaverse/internal/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// New 创建 gin 引擎并挂载全局中间件和全部路由
func New(cfg config.Config, verifier middleware.TokenVerifier, limiters middleware.FormLimiters) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.SecurityHeaders())
	r.Use(cors.New(corsConfig(cfg.CORSOrigin)))
	r.Use(middleware.LoadUser(verifier))

	RegisterRoutes(r, cfg, limiters)
	return r
}

func corsConfig(origin string) cors.Config {
	c := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Admin-Token"},
		ExposeHeaders: []string{"Content-Length"},
	}
	if origin == "" || origin == "*" {
		c.AllowAllOrigins = true
	} else {
		c.AllowOrigins = []string{origin}
		c.AllowCredentials = true
	}
	return c
}

func RegisterRoutes(r *gin.Engine, cfg config.Config, limiters middleware.FormLimiters) {
	youtube := services.NewYouTubeClient(cfg.YouTube.APIKey, cfg.YouTube.CacheTTL)

	// Handlers
	discussionHandler := handlers.NewDiscussionHandler()
	storyHandler := handlers.NewStoryHandler()
	practiceHandler := handlers.NewPracticeHandler()
	userHandler := handlers.NewUserHandler()
	mockTestHandler := handlers.NewMockTestHandler(services.NIMCETFullLength)
	reportHandler := handlers.NewReportHandler()
	podcastHandler := handlers.NewPodcastHandler(youtube, cfg.YouTube.PodcastPlaylistID)
	videoHandler := handlers.NewVideoHandler(youtube)

	auth := middleware.AuthRequired()
	admin := middleware.AdminRequired(cfg.AdminToken)

	r.GET("/healthz", handlers.Health)

	api := r.Group("/api")

	// 社区讨论
	api.GET("/discussions", discussionHandler.List)
	api.GET("/discussions/:id", discussionHandler.Detail)
	api.POST("/discussions", auth, discussionHandler.Create)
	api.POST("/discussions/vote", auth, discussionHandler.Vote)
	api.POST("/discussions/delete", auth, discussionHandler.Delete)
	api.POST("/discussions/reply", auth, discussionHandler.Reply)
	api.POST("/discussions/reply/delete", auth, discussionHandler.DeleteReply)

	// 上岸故事
	api.GET("/success-stories", storyHandler.List)
	api.POST("/success-stories", middleware.RateLimit(limiters.Story), storyHandler.Submit)
	api.POST("/success-stories/:id/approve", admin, storyHandler.Approve)
	api.DELETE("/success-stories/:id", admin, storyHandler.Delete)
	api.POST("/stories/like", auth, storyHandler.Like)

	// 每日一题
	api.GET("/dpp/daily-question", practiceHandler.DailyQuestion)
	api.POST("/dpp/submit", auth, practiceHandler.Submit)

	// 用户
	api.GET("/user/streak", auth, practiceHandler.Streak)
	api.GET("/user/practice-history", practiceHandler.History)
	api.GET("/user/subject-performance", auth, userHandler.SubjectPerformance)
	api.GET("/leaderboard", userHandler.Leaderboard)
	api.GET("/profile", userHandler.Profile)
	api.POST("/profile", auth, userHandler.UpdateProfile)

	// 模拟考试
	api.GET("/mock-tests/history", auth, mockTestHandler.History)
	api.GET("/mock-tests/recent-attempts", auth, mockTestHandler.RecentAttempts)
	api.GET("/mock-tests/:testId", mockTestHandler.Show)
	api.GET("/mock-tests/:testId/results/:attemptId", auth, mockTestHandler.Results)
	api.POST("/mock-tests/submit", auth, mockTestHandler.Submit)
	api.POST("/mock-tests/create-custom", auth, mockTestHandler.CreateCustom)

	api.POST("/question-reports", auth, middleware.RateLimit(limiters.Report), reportHandler.Create)

	// 播客
	api.POST("/guest-application", middleware.RateLimit(limiters.Guest), podcastHandler.Apply)
	api.GET("/podcast/episodes", podcastHandler.Episodes)

	// 管理后台
	adminAPI := api.Group("/admin", admin)
	adminAPI.GET("/success-stories", storyHandler.ListAll)
	adminAPI.POST("/mock-tests/generate-full-length", mockTestHandler.GenerateFullLength)

	// 视频课程
	api.GET("/course-data", videoHandler.CourseData)
	api.GET("/video-progress", videoHandler.Progress)
	api.POST("/video-progress", auth, videoHandler.UpdateProgress)
}
