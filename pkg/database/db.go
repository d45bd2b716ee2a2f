package database

import (
	"Couture/config"
	"Couture/pkg/log"

	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDB 初始化数据库连接
func NewDB(conf *config.Config) *gorm.DB {
	dsn := conf.MySQL.Dsn()
	gormLogger := logger.Default.LogMode(logger.Warn)
	if conf.Debug() {
		gormLogger = logger.Default.LogMode(logger.Info)
	}

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger:         gormLogger,
		TranslateError: true,
	})
	if err != nil {
		log.L.Fatal("failed to connect database", zap.Error(err))
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.L.Fatal("failed to get sql.DB", zap.Error(err))
	}
	sqlDB.SetMaxOpenConns(conf.MySQL.MaxOpenConns)
	sqlDB.SetMaxIdleConns(conf.MySQL.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(conf.MySQL.ConnMaxLifetime)

	log.L.Info("connect database success",
		zap.String("host", conf.MySQL.Host),
		zap.String("database", conf.MySQL.Database),
		zap.Int("max_open_conns", conf.MySQL.MaxOpenConns),
	)
	return db
}
