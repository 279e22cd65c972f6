package main

import (
	"net/http"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/arencloud/hestia/internal/api"
	"github.com/arencloud/hestia/internal/config"
	"github.com/arencloud/hestia/internal/db"
	"github.com/arencloud/hestia/internal/events"
	"github.com/arencloud/hestia/internal/logging"
	"github.com/arencloud/hestia/internal/provisioner"
	"github.com/arencloud/hestia/internal/s3"
)

func main() {
	cfg := config.Load()
	logger := logging.New(cfg.Env)
	defer logger.Sync()

	gdb, err := db.Open(cfg.DBDsn, logger)
	if err != nil {
		logger.Fatal("failed to open db", zap.Error(err))
	}
	store := db.NewTenantStore(gdb)

	// in-process trail: every lifecycle event at debug
	trail := events.NewChannelPublisher(256)
	go func() {
		for e := range trail.Events() {
			logger.Debug("event",
				zap.String("type", string(e.Type)),
				zap.String("tenant", e.TenantKey),
				zap.String("bucket", e.Bucket))
		}
	}()

	publishers := []events.Publisher{trail}
	if cfg.RedisAddr != "" {
		rcfg := events.DefaultRedisConfig(cfg.RedisAddr)
		rcfg.Password = cfg.RedisPassword
		rcfg.Channel = cfg.RedisChannel
		pub, err := events.NewRedisPublisher(rcfg, logger)
		if err != nil {
			logger.Fatal("failed to connect redis", zap.Error(err))
		}
		publishers = append(publishers, pub)
	}
	bus := events.NewBus(logger, publishers...)
	defer bus.Close()

	manager := provisioner.NewManager(provisioner.Config{
		Client: s3.Config{
			Endpoint:     cfg.S3Endpoint,
			Region:       cfg.S3Region,
			UsePathStyle: cfg.S3UsePathStyle,
		},
		Credentials: s3.Credentials{
			AccessKey: cfg.S3AccessKey,
			SecretKey: cfg.S3SecretKey,
		},
		BucketPrefix: cfg.BucketPrefix,
	}, store, bus, logger)

	r := api.Router(cfg, store, manager, logger)

	srv := &http.Server{
		Addr:              ":" + cfg.HttpPort,
		Handler:           r,
		ReadHeaderTimeout: 15 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}
	logger.Info("server starting", zap.String("addr", srv.Addr))
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("server error", zap.Error(err))
		os.Exit(1)
	}
}
