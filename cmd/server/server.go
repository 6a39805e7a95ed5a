package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/hexterra/world-api/internal/orchestrators/world"
	"github.com/hexterra/world-api/internal/persistence/kv"
	"github.com/hexterra/world-api/internal/persistence/snapshot"
	"github.com/hexterra/world-api/internal/pkg/clock"
	"github.com/hexterra/world-api/internal/pkg/idgen"
	redisclient "github.com/hexterra/world-api/internal/redis"
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Run the world engine with its background loops",
	RunE:  runServer,
}

func init() {
	serverCmd.Flags().String("redis-addr", "", "redis endpoint (empty runs the in-memory store, dev only)")
	serverCmd.Flags().String("postgres-dsn", "", "postgres DSN for tile snapshots (empty disables the snapshot loop)")
	serverCmd.Flags().Duration("recharge-interval", time.Second, "recharge tick interval")
	serverCmd.Flags().Duration("snapshot-interval", 5*time.Minute, "snapshot flush interval")

	viper.SetEnvPrefix("WORLD")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
	_ = viper.BindPFlags(serverCmd.Flags())
}

func runServer(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	store, err := buildStore()
	if err != nil {
		return err
	}

	sink, closeDB, err := buildSink(ctx)
	if err != nil {
		return err
	}
	if closeDB != nil {
		defer closeDB()
	}

	rules := world.DefaultRules()
	rules.RechargeInterval = viper.GetDuration("recharge-interval")
	rules.SnapshotInterval = viper.GetDuration("snapshot-interval")

	engine, err := world.NewEngine(&world.Config{
		Store: store,
		Sink:  sink,
		Clock: clock.New(),
		IDGen: idgen.NewPrefixed("evt"),
		Rules: rules,
	})
	if err != nil {
		return err
	}

	if err := engine.Start(ctx); err != nil {
		return err
	}

	slog.Info("world engine running")
	<-sigChan
	slog.Info("received shutdown signal, stopping loops")
	engine.Stop()
	return nil
}

func buildStore() (kv.Store, error) {
	redisAddr := viper.GetString("redis-addr")
	if redisAddr == "" {
		slog.Warn("no redis endpoint configured, world state is in-memory and volatile")
		return kv.NewMemory(), nil
	}

	client, err := redisclient.NewClient(redisAddr, nil)
	if err != nil {
		return nil, err
	}
	slog.Info("connected to redis", "addr", redisAddr)
	return kv.NewRedis(&kv.RedisConfig{Client: client})
}

func buildSink(ctx context.Context) (snapshot.Sink, func(), error) {
	dsn := viper.GetString("postgres-dsn")
	if dsn == "" {
		slog.Warn("no postgres DSN configured, snapshot loop disabled")
		return nil, nil, nil
	}

	db, err := sqlx.Open("pgx", dsn)
	if err != nil {
		return nil, nil, err
	}
	sink, err := snapshot.NewSQL(ctx, &snapshot.SQLConfig{DB: db})
	if err != nil {
		_ = db.Close()
		return nil, nil, err
	}
	slog.Info("snapshot sink ready")
	return sink, func() { _ = db.Close() }, nil
}
