package db

import (
	"fmt"
	"log"
	"mcaverse/internal/models"
	"strings"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// Init 连接数据库、迁移并写入初始数据，失败直接退出
func Init(databaseURL string) {
	var err error
	DB, err = Open(databaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	log.Println("Database connection established")

	if err := Migrate(DB); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	log.Println("Database migration completed")

	// Seed initial curriculum
	seedCurriculum(DB)
}

// Open 根据 DATABASE_URL 前缀选择驱动：
// postgres:// / postgresql:// 或 key=value DSN 走 PostgreSQL，sqlite:// 走纯 Go 的 SQLite
func Open(databaseURL string) (*gorm.DB, error) {
	var dialector gorm.Dialector
	isSQLite := false

	switch {
	case strings.HasPrefix(databaseURL, "postgres://"), strings.HasPrefix(databaseURL, "postgresql://"):
		dialector = postgres.Open(databaseURL)
	case strings.HasPrefix(databaseURL, "sqlite://"):
		dialector = sqlite.Open(strings.TrimPrefix(databaseURL, "sqlite://"))
		isSQLite = true
	case strings.Contains(databaseURL, "host="):
		dialector = postgres.Open(databaseURL)
	default:
		return nil, fmt.Errorf("unsupported DATABASE_URL %q: must start with postgres:// or sqlite://", databaseURL)
	}

	conn, err := gorm.Open(dialector, &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := conn.DB()
	if err != nil {
		return nil, err
	}
	if isSQLite {
		// SQLite 只有一个写者，单连接避免 database is locked
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxIdleConns(10)
		sqlDB.SetMaxOpenConns(100)
	}

	return conn, nil
}

func Migrate(conn *gorm.DB) error {
	return conn.AutoMigrate(
		&models.User{},
		&models.Discussion{},
		&models.DiscussionVote{},
		&models.Reply{},
		&models.SuccessStory{},
		&models.StoryLike{},
		&models.Question{},
		&models.MockTest{},
		&models.Attempt{},
		&models.DailySolve{},
		&models.Contribution{},
		&models.PointLog{},
		&models.QuestionReport{},
		&models.GuestApplication{},
		&models.LectureMark{},
		&models.CurriculumTopic{},
	)
}

func seedCurriculum(conn *gorm.DB) {
	// 检查是否已有大纲数据
	var count int64
	conn.Model(&models.CurriculumTopic{}).Count(&count)
	if count > 0 {
		log.Println("Curriculum already seeded, skipping")
		return
	}

	// 预设大纲，播放列表 ID 上线后在库里补
	curriculum := []struct {
		subject string
		topics  []string
	}{
		{"Mathematics", []string{"Algebra", "Calculus", "Vectors", "Trigonometry"}},
		{"Logical Reasoning", []string{"Puzzles", "Series"}},
		{"Computer Science", []string{"Data Structures", "Operating Systems"}},
		{"English", []string{"Grammar", "Vocabulary"}},
	}

	for i, s := range curriculum {
		for j, name := range s.topics {
			topic := models.CurriculumTopic{
				Subject:      s.subject,
				SubjectOrder: i + 1,
				Name:         name,
				Position:     j,
			}
			if err := conn.Create(&topic).Error; err != nil {
				log.Printf("Failed to create topic %s/%s: %v", s.subject, name, err)
			}
		}
	}
	log.Println("Initial curriculum created successfully")
}
