package main

import (
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/Luxview-Media/luxview/internal/db"
	"github.com/Luxview-Media/luxview/internal/health"
	"github.com/Luxview-Media/luxview/internal/mqtt"
	"github.com/Luxview-Media/luxview/internal/redis"
	"github.com/Luxview-Media/luxview/internal/schedule"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	env := LoadEnvironment()
	if env.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
		log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
	}

	// initialize PostgreSQL
	if err := db.Init(env.DatabaseURL); err != nil {
		log.Fatal().Err(err).Msg("db init failed")
	}

	// run pending migrations
	if err := db.RunMigrations(env.MigrationsPath); err != nil {
		log.Fatal().Err(err).Msg("db migrate failed")
	}

	if env.RedisAddress != "" {
		redis.InitRedis(env.RedisAddress, env.RedisUsername, env.RedisPassword)
	}

	if env.MQTTBrokerURL != "" {
		if err := mqtt.Connect(env.MQTTBrokerURL, "luxview-server"); err != nil {
			// playback still works over plain sync polling
			log.Warn().Err(err).Msg("MQTT unavailable, continuing without push")
		}
		defer mqtt.Disconnect()
	}

	store := db.NewStore()
	engine := schedule.NewEngine(store, nil)

	monitor := health.NewMonitor(store, engine)
	if err := monitor.Start(); err != nil {
		log.Fatal().Err(err).Msg("could not start conflict monitor")
	}
	defer monitor.Stop()

	storageSystem := InitStorage(env)

	r := gin.Default()
	RegisterRoutes(r, env, store, engine, storageSystem)

	log.Info().Str("address", env.ServerAddress).Msg("listening")
	if err := r.Run(env.ServerAddress); err != nil {
		log.Fatal().Err(err).Msg("server error")
	}
}
