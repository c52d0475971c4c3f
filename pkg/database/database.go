package database

import (
	"fmt"
	"log"
	"skill_graph_backend/internal/config"
	"skill_graph_backend/internal/model"
	"skill_graph_backend/internal/repository"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func InitDB(cfg *config.DatabaseConfig, mode string) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.DBName,
		cfg.Charset,
		cfg.ParseTime,
	)

	logLevel := logger.Warn
	if mode == "debug" {
		logLevel = logger.Info
	}

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")
	return db, nil
}

// Migrate 建表，并在课程表为空时写入内置模拟数据
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&model.User{},
		&model.Course{},
		&model.Enrollment{},
		&model.CompletedLevel{},
	)
	if err != nil {
		return err
	}

	log.Println("Database migration completed")

	var count int64
	if err := db.Model(&model.Course{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	return Seed(db, repository.MockCourses(), repository.MockUsers())
}

// Seed 写入课程与用户；用户报名记录上的进度取自课程数据
func Seed(db *gorm.DB, courses []model.Course, users []model.User) error {
	return db.Transaction(func(tx *gorm.DB) error {
		progressByCourse := make(map[uint]*float64, len(courses))
		for i := range courses {
			if err := tx.Create(&courses[i]).Error; err != nil {
				return err
			}
			progressByCourse[courses[i].ID] = courses[i].Progress
		}

		for i := range users {
			user := users[i]
			if err := tx.Create(&user).Error; err != nil {
				return err
			}
			for _, courseID := range user.CoursesEnrolled {
				enrollment := model.Enrollment{UserID: user.ID, CourseID: courseID, Progress: progressByCourse[courseID]}
				if err := tx.Create(&enrollment).Error; err != nil {
					return err
				}
			}
			for _, levelID := range user.CompletedLevels {
				if err := tx.Create(&model.CompletedLevel{UserID: user.ID, LevelID: levelID}).Error; err != nil {
					return err
				}
			}
		}

		log.Printf("Seeded %d courses and %d users", len(courses), len(users))
		return nil
	})
}
