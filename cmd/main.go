package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/ardanlabs/conf"
	"github.com/redis/go-redis/v9"

	"workforce/backend/foundation/web"
	"workforce/backend/internal/auth"
	"workforce/backend/internal/commands"
	"workforce/backend/internal/jobs"
	"workforce/backend/internal/pkg/config"
	"workforce/backend/internal/pkg/repository/postgresql"
	"workforce/backend/internal/router"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("startup error: %v", err)
	}
}

func run() error {
	var flags struct {
		ConfigPath string `conf:"default:config.yaml"`
		Port       string `conf:"default::8080"`
		MediaPath  string `conf:"default:./statics"`
	}

	if err := conf.Parse(os.Args[1:], "WORKFORCE", &flags); err != nil {
		if err == conf.ErrHelpWanted {
			usage, err := conf.Usage("WORKFORCE", &flags)
			if err != nil {
				return err
			}
			fmt.Println(usage)
			return nil
		}
		return err
	}

	cfg, err := config.NewConfig(flags.ConfigPath)
	if err != nil {
		return err
	}

	postgresDB := postgresql.NewDatabase(cfg)

	commands.MigrateUP(postgresDB)

	redisDB := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", cfg.RedisHost, cfg.RedisPort),
		Password: cfg.RedisPassword,
	})

	pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := redisDB.Ping(pingCtx).Err(); err != nil {
		return err
	}

	a, err := auth.New(cfg.PrivateKeyPath)
	if err != nil {
		return err
	}

	app := web.NewApp()
	r := router.NewRouter(app, postgresDB, redisDB, flags.Port, a, flags.MediaPath, cfg)

	jobs.StartShiftCloseJob(context.Background(), r.AttendanceRepository(), 15*time.Minute)

	return r.Init()
}
