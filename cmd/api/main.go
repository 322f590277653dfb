package main

import (
	"context"

	"Vega_Blog/internal/config"
	"Vega_Blog/internal/handler"
	"Vega_Blog/internal/model"
	"Vega_Blog/internal/pkg"
	"Vega_Blog/internal/repository/mysql"
	"Vega_Blog/internal/repository/redis"
	"Vega_Blog/internal/router"
	"Vega_Blog/internal/service"

	"go.uber.org/zap"
)

func main() {
	config.Init()
	cfg := config.AppConfig

	pkg.InitLogger(cfg.LogLevel)
	defer pkg.Logger.Sync()
	pkg.SessionSecret = []byte(cfg.SessionSecret)

	if err := mysql.InitDB(cfg.DBDSN); err != nil {
		panic(err)
	}

	if err := redis.Init(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB); err != nil {
		panic(err)
	}
	defer redis.Close()

	// 自动建表（开发阶段 OK）
	mysql.DB.AutoMigrate(
		&model.User{},
		&model.Profile{},
		&model.Group{},
		&model.Tag{},
		&model.Post{},
		&model.Comment{},
		&model.Follow{},
		&model.Like{},
		&model.SocialOutbox{},
	)

	// 仓储
	userRepo := &mysql.UserRepository{DB: mysql.DB}
	postRepo := &mysql.PostRepository{DB: mysql.DB}
	groupRepo := &mysql.GroupRepository{DB: mysql.DB}
	tagRepo := &mysql.TagRepository{DB: mysql.DB}
	commentRepo := &mysql.CommentRepository{DB: mysql.DB}
	followRepo := &mysql.FollowRepository{DB: mysql.DB}
	likeRepo := &mysql.LikeRepository{DB: mysql.DB}
	outboxRepo := &mysql.OutboxRepository{DB: mysql.DB}
	sessionRepo := &redis.UserRepository{}
	feedCache := redis.NewFeedCacheRepository()

	smtp := pkg.SMTPConfig{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		Username: cfg.SMTPUsername,
		Password: cfg.SMTPPassword,
		From:     cfg.SMTPFrom,
	}

	// 服务
	feedSvc := service.NewFeedService(postRepo, groupRepo, tagRepo, userRepo)
	postSvc := service.NewPostService(postRepo, commentRepo, likeRepo)
	commentSvc := service.NewCommentService(commentRepo, postRepo)
	followSvc := service.NewFollowService(followRepo, userRepo)
	likeSvc := service.NewLikeService(likeRepo, postRepo)
	groupSvc := service.NewGroupService(groupRepo)
	userSvc := service.NewUserService(userRepo, sessionRepo, smtp)

	// 社交事件投递：配了 Kafka 就投 Kafka，否则降级打日志
	sender := service.LogSender
	if len(cfg.KafkaBrokers) > 0 {
		producer, err := pkg.NewKafkaProducer(pkg.KafkaConfig{
			Brokers: cfg.KafkaBrokers,
			Topic:   cfg.KafkaTopic,
		})
		if err != nil {
			panic(err)
		}
		defer producer.Close()
		sender = service.KafkaSender(producer)
	}
	relayer := service.NewOutboxRelayer(outboxRepo, sender)
	go relayer.Run(context.Background())

	r := router.InitRouter(&router.Handlers{
		Feed:      handler.NewFeedHandler(feedSvc, followSvc),
		Post:      handler.NewPostHandler(postSvc, cfg.UploadDir),
		Comment:   handler.NewCommentHandler(commentSvc),
		Follow:    handler.NewFollowHandler(followSvc),
		Like:      handler.NewLikeHandler(likeSvc),
		User:      handler.NewUserHandler(userSvc, cfg.UploadDir),
		Ops:       handler.NewOpsHandler(feedCache, groupSvc),
		FeedCache: feedCache,
		UploadDir: cfg.UploadDir,
	})

	pkg.Logger.Info("server starting", zap.String("addr", cfg.Addr))
	if err := r.Run(cfg.Addr); err != nil {
		pkg.Logger.Fatal("server exited", zap.Error(err))
	}
}
