package database

import (
	"fmt"
	"kidslearn_backend/internal/config"
	"kidslearn_backend/internal/model"
	"log"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// InitDB opens the MySQL connection and, when migrate is set, runs
// AutoMigrate plus first-boot seeding. Release deployments migrate
// explicitly via the -migrate flag.
func InitDB(cfg *config.DatabaseConfig, migrate bool) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.DBName,
		cfg.Charset,
		cfg.ParseTime,
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})
	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	if !migrate {
		return db, nil
	}

	err = db.AutoMigrate(
		&model.User{},
		&model.Child{},
		&model.Package{},
		&model.PackageProblem{},
		&model.Assignment{},
		&model.MathProblem{},
		&model.ReadingQuestion{},
		&model.AnswerRecord{},
		&model.Wallet{},
		&model.Collectible{},
		&model.ChildCollectible{},
		&model.CurriculumObjective{},
		&model.AuditEntry{},
		&model.ImportJob{},
	)
	if err != nil {
		return nil, err
	}

	log.Println("Database migration completed")

	seedCollectibles(db)
	seedObjectives(db)

	return db, nil
}

// Default shop catalog, inserted once on an empty table.
func seedCollectibles(db *gorm.DB) {
	var count int64
	db.Model(&model.Collectible{}).Count(&count)
	if count > 0 {
		return
	}
	defaults := []model.Collectible{
		{Name: "Bronze Star", Emoji: "⭐", Rarity: "common", Cost: 50, Position: 1},
		{Name: "Rocket", Emoji: "🚀", Rarity: "common", Cost: 75, Position: 2},
		{Name: "Rainbow", Emoji: "🌈", Rarity: "rare", Cost: 150, Position: 3},
		{Name: "Unicorn", Emoji: "🦄", Rarity: "epic", Cost: 300, Position: 4},
		{Name: "Dragon", Emoji: "🐉", Rarity: "epic", Cost: 400, Position: 5},
		{Name: "Golden Trophy", Emoji: "🏆", Rarity: "legendary", Cost: 1000, Position: 6},
	}
	for i := range defaults {
		defaults[i].Enabled = true
		db.Create(&defaults[i])
	}
}

// A starter curriculum so coverage reports are meaningful out of the box.
func seedObjectives(db *gorm.DB) {
	var count int64
	db.Model(&model.CurriculumObjective{}).Count(&count)
	if count > 0 {
		return
	}
	defaults := []model.CurriculumObjective{
		{Code: "math.add.20", Title: "Addition within 20", Subject: model.SubjectMath, GradeLevel: 1, Enabled: true},
		{Code: "math.sub.20", Title: "Subtraction within 20", Subject: model.SubjectMath, GradeLevel: 1, Enabled: true},
		{Code: "math.mul.basic", Title: "Multiplication tables", Subject: model.SubjectMath, GradeLevel: 2, Enabled: true},
		{Code: "math.frac.intro", Title: "Introduction to fractions", Subject: model.SubjectMath, GradeLevel: 3, Enabled: true},
		{Code: "read.comp.short", Title: "Short passage comprehension", Subject: model.SubjectReading, GradeLevel: 1, Enabled: true},
		{Code: "read.vocab.core", Title: "Core vocabulary", Subject: model.SubjectReading, GradeLevel: 2, Enabled: true},
	}
	for _, o := range defaults {
		db.Create(&o)
	}
}
