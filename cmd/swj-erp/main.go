package main

import (
	"log"

	"github.com/dafeige-xiaozu/swj-erp/internal/config"
	"github.com/dafeige-xiaozu/swj-erp/internal/persist"
	"github.com/dafeige-xiaozu/swj-erp/internal/store"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

var (
	Version   = "dev"
	BuildTime = "unknown"
)

// 数据核心的冒烟入口：恢复快照、打印工作台汇总后退出。
// 业务操作不走命令行，界面层直接使用 internal/store。
func main() {
	// 加载 .env 文件
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables")
	}

	// 加载配置
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 初始化日志
	zapLogger, err := initLogger(cfg.Log)
	if err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer zapLogger.Sync()

	zapLogger.Info("Starting swj-erp store",
		zap.String("version", Version),
		zap.String("build_time", BuildTime),
	)

	// 打开本地快照库
	blobs, err := persist.OpenSQLite(cfg.Storage.Path)
	if err != nil {
		zapLogger.Fatal("Failed to open snapshot storage", zap.Error(err))
	}

	// 恢复 Store
	st, err := store.New(
		store.WithLogger(zapLogger),
		store.WithBlobStore(blobs, cfg.Storage.SnapshotName),
	)
	if err != nil {
		zapLogger.Fatal("Failed to restore store", zap.Error(err))
	}

	if u, ok := st.CurrentUser(); ok {
		zapLogger.Info("Current user",
			zap.String("id", u.ID),
			zap.String("name", u.Name),
			zap.String("role", u.Role),
		)
	}

	stats := st.Stats()
	zapLogger.Info("Dashboard summary",
		zap.Int("active_orders", stats.ActiveOrders),
		zap.Int("pending_orders", stats.PendingOrders),
		zap.Int("active_customers", stats.ActiveCustomers),
		zap.Int("pending_quotes", stats.PendingQuotes),
		zap.Int("active_samples", stats.ActiveSamples),
		zap.Int("urgent_orders", stats.UrgentOrders),
		zap.Int("monthly_orders", stats.MonthlyOrders),
		zap.Float64("monthly_sales", stats.MonthlySales),
	)
}

func initLogger(cfg config.LogConfig) (*zap.Logger, error) {
	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
	}
	switch cfg.Level {
	case "debug":
		zapCfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	case "info":
		zapCfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	case "warn":
		zapCfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	case "error":
		zapCfg.Level = zap.NewAtomicLevelAt(zap.ErrorLevel)
	}
	return zapCfg.Build()
}
