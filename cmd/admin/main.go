package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	identityapp "github.com/praveenjayakumarramesh/st-joseph-church/internal/application/identity"
	"github.com/praveenjayakumarramesh/st-joseph-church/internal/infrastructure/auth"
	"github.com/praveenjayakumarramesh/st-joseph-church/internal/infrastructure/config"
	"github.com/praveenjayakumarramesh/st-joseph-church/internal/infrastructure/logger"
	"github.com/praveenjayakumarramesh/st-joseph-church/internal/infrastructure/persistence"
	"go.uber.org/zap"
	gormlogger "gorm.io/gorm/logger"
)

// passwordEnv lets scripts pass the password without it showing up in ps
const passwordEnv = "PARISH_ADMIN_PASSWORD"

func main() {
	var (
		username string
		password string
		logLevel string
	)

	flag.StringVar(&username, "username", "admin", "Admin username")
	flag.StringVar(&password, "password", "", "Admin password (or set "+passwordEnv+")")
	flag.StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		printUsage()
		os.Exit(1)
	}
	command := args[0]
	if password == "" {
		password = os.Getenv(passwordEnv)
	}

	log, err := logger.New(&logger.Config{
		Level:      logLevel,
		Format:     "console",
		Output:     "stdout",
		TimeFormat: "2006-01-02 15:04:05",
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration", zap.Error(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	db, err := persistence.NewDatabase(ctx, &cfg.Database, persistence.Options{
		Logger:   log,
		LogLevel: gormlogger.Silent,
	})
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		_ = db.Close()
	}()

	// a reset must reach tokens held by the running server, so share its blacklist
	var blacklist auth.TokenBlacklist
	if cfg.Redis.Enabled {
		redisBlacklist, err := auth.NewRedisTokenBlacklist(ctx, cfg.Redis)
		if err != nil {
			log.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		defer func() {
			_ = redisBlacklist.Close()
		}()
		blacklist = redisBlacklist
	}

	admin := identityapp.NewAdminService(persistence.NewGormUserRepository(db.DB), blacklist, cfg.JWT.Expiration, log)

	switch command {
	case "create":
		requirePassword(log, password)
		info, err := admin.Create(ctx, username, password)
		if err != nil {
			log.Fatal("Failed to create admin user", zap.Error(err))
		}
		log.Info("Admin user ready",
			zap.String("username", info.Username),
			zap.String("role", info.Role),
			zap.String("id", info.ID.String()),
		)

	case "verify":
		info, err := admin.Verify(ctx, username)
		if err != nil {
			log.Fatal("Failed to look up admin user", zap.Error(err))
		}
		if info == nil {
			log.Error("Admin user not found", zap.String("username", username))
			os.Exit(2)
		}
		log.Info("Admin user exists",
			zap.String("username", info.Username),
			zap.String("role", info.Role),
			zap.String("id", info.ID.String()),
		)

	case "password":
		requirePassword(log, password)
		if err := admin.ResetPassword(ctx, username, password); err != nil {
			log.Fatal("Failed to reset password", zap.Error(err))
		}
		if blacklist == nil {
			log.Warn("Redis is disabled, tokens issued before the reset stay valid until they expire")
		}

	default:
		log.Error("Unknown command", zap.String("command", command))
		printUsage()
		os.Exit(1)
	}
}

func requirePassword(log *zap.Logger, password string) {
	if password == "" {
		log.Fatal("Password required. Use -password or " + passwordEnv)
	}
}

func printUsage() {
	fmt.Println(`Parish Admin Tool

Usage:
  admin [flags] <command>

Commands:
  create      Create the admin user with a bcrypt-hashed password
  verify      Report whether the admin user exists and its role
  password    Reset the admin user's password and revoke its tokens

Flags:
  -username string      Admin username (default: admin)
  -password string      Admin password (or set PARISH_ADMIN_PASSWORD)
  -log-level string     Log level: debug, info, warn, error (default: info)

Examples:
  PARISH_ADMIN_PASSWORD=s3cret admin create
  admin -username treasurer verify`)
}
