package main

import (
	"flag"
	stdlog "log"

	"go.uber.org/zap"

	"github.com/Anmol-Srv/blog-api/config"
	"github.com/Anmol-Srv/blog-api/pkg/database"
	"github.com/Anmol-Srv/blog-api/pkg/logger"
)

// 独立的建表 + 样例数据工具。-drop 先删全部表再重建。
func main() {
	drop := flag.Bool("drop", false, "drop all tables before migrating")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		stdlog.Fatalf("load config: %v", err)
	}
	if err := logger.Init(cfg.Log.Level, cfg.Log.Format); err != nil {
		stdlog.Fatalf("init logger: %v", err)
	}
	defer logger.Sync()

	db, err := database.InitDB(cfg)
	if err != nil {
		logger.Fatal("init database", zap.Error(err))
	}

	if *drop {
		if err := database.Drop(db); err != nil {
			logger.Fatal("drop tables", zap.Error(err))
		}
		logger.Info("tables dropped")
	}
	if err := database.Migrate(db); err != nil {
		logger.Fatal("migrate", zap.Error(err))
	}
	if err := database.Seed(db); err != nil {
		logger.Fatal("seed", zap.Error(err))
	}
	logger.Info("done")
}
