package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/steaphangreene/acidmud-sub001/internal/api"
	"github.com/steaphangreene/acidmud-sub001/internal/combat"
	"github.com/steaphangreene/acidmud-sub001/internal/config"
	"github.com/steaphangreene/acidmud-sub001/internal/currency"
	"github.com/steaphangreene/acidmud-sub001/internal/engine"
	"github.com/steaphangreene/acidmud-sub001/internal/eventbus"
	"github.com/steaphangreene/acidmud-sub001/internal/logging"
	"github.com/steaphangreene/acidmud-sub001/internal/observability"
	"github.com/steaphangreene/acidmud-sub001/internal/storage"
	"github.com/steaphangreene/acidmud-sub001/internal/world"
)

func main() {
	configPath := flag.String("config", "", "путь к YAML конфигурации (по умолчанию $GAME_CONFIG)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("❌ Ошибка загрузки конфигурации: %v", err)
	}

	logOpts := logging.OptionsFromEnv()
	if cfg.Logging.Level != "" {
		logOpts.Level = logging.ParseLevel(cfg.Logging.Level)
	}
	if cfg.Logging.Format != "" {
		logOpts.Format = cfg.Logging.Format
	}
	logOpts.Dir = cfg.Logging.Dir
	logging.Configure(logOpts)

	if err := logging.InitDefaultLogger("server"); err != nil {
		log.Fatalf("❌ Ошибка инициализации логирования: %v", err)
	}
	defer logging.CloseDefaultLogger()
	defer logging.GetLoggerManager().CloseAll()

	if err := run(cfg); err != nil {
		logging.Error("❌ %v", err)
		os.Exit(1)
	}
	logging.Info("👋 Сервер успешно остановлен")
}

func run(cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logging.Info("🎮 Запуск мира AcidMUD...")

	// === ТЕЛЕМЕТРИЯ ===
	if cfg.Telemetry.Enabled {
		shutdown, err := observability.InitTelemetry(ctx, observability.Options{
			ServiceName: cfg.Telemetry.ServiceName,
			Endpoint:    cfg.Telemetry.Endpoint,
			Insecure:    cfg.Telemetry.Insecure,
		})
		if err != nil {
			return fmt.Errorf("телеметрия: %w", err)
		}
		defer func() {
			if err := shutdown(context.Background()); err != nil {
				logging.Warn("⚠️ Остановка телеметрии: %v", err)
			}
		}()
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	// === ХРАНИЛИЩЕ ===
	store, err := storage.Open(storage.Options{
		Driver:    cfg.Storage.Driver,
		Path:      cfg.Storage.Path,
		RedisAddr: cfg.Storage.RedisAddr,
	})
	if err != nil {
		return fmt.Errorf("хранилище: %w", err)
	}
	defer store.Close()

	codec, err := storage.NewCodec()
	if err != nil {
		return fmt.Errorf("кодек: %w", err)
	}
	defer codec.Close()
	snaps := storage.NewSnapshots(store, codec)

	w, tick, err := snaps.Load(ctx, cfg.Storage.SnapshotName)
	if err != nil {
		return fmt.Errorf("загрузка снимка: %w", err)
	}
	if w == nil {
		w = world.New()
		logging.Info("🌱 Снимок %q не найден, создан пустой мир", cfg.Storage.SnapshotName)
	} else {
		logging.Info("📂 Мир восстановлен из снимка %q (тик %d, %d узлов)", cfg.Storage.SnapshotName, tick, w.Len())
	}

	denoms := make([]currency.Denomination, 0, len(cfg.World.Denominations))
	for _, d := range cfg.World.Denominations {
		denoms = append(denoms, currency.Denomination{Name: d.Name, Value: d.Value})
	}
	if err := currency.InstallDenominations(w, denoms); err != nil {
		return fmt.Errorf("номиналы: %w", err)
	}

	// === ШИНА СОБЫТИЙ ===
	var bus eventbus.EventBus
	if cfg.EventBus.URL != "" {
		jb, err := eventbus.NewJetStreamBus(cfg.EventBus.URL, cfg.EventBus.Stream,
			time.Duration(cfg.EventBus.Retention)*time.Hour)
		if err != nil {
			return fmt.Errorf("шина событий: %w", err)
		}
		bus = jb
	} else {
		bus = eventbus.NewMemoryBus(cfg.EventBus.Buffer)
	}
	defer bus.Close()

	logSub, err := eventbus.StartLoggingListener(bus)
	if err != nil {
		return fmt.Errorf("слушатель событий: %w", err)
	}
	defer logSub.Unsubscribe()

	exporter := eventbus.NewMetricsExporter(bus, reg)
	exporter.Start(5 * time.Second)
	defer exporter.Stop()

	// === ИГРОВОЙ ЦИКЛ ===
	loop := engine.NewLoop(w,
		engine.WithMetrics(engine.NewMetrics(reg)),
		engine.WithScheduler(engine.NewSchedulerAt(tick)),
	)

	fwd := eventbus.NewForwarder(bus, "world", loop.Now, cfg.EventBus.Buffer)
	fwdCtx, fwdCancel := context.WithCancel(context.Background())
	fwdDone := make(chan struct{})
	go func() {
		defer close(fwdDone)
		fwd.Run(fwdCtx)
	}()
	w.OnChange(fwd.WorldChange)

	seed := cfg.World.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logging.Debug("🎲 Зерно генератора боя: %d", seed)
	fights := combat.New(w, rand.New(rand.NewSource(seed)), fwd, combat.Config{RoundTicks: cfg.World.RoundTicks})
	fights.Attach(loop.Scheduler())

	loop.ScheduleTrashFlush(cfg.World.TrashFlushTicks)
	snapshotter := loop.ScheduleSnapshots(ctx, snaps, cfg.Storage.SnapshotName, cfg.Storage.SnapshotEveryTicks)

	// === HTTP ===
	restServer := api.NewServer(api.Config{
		Port:     fmt.Sprintf(":%d", cfg.Server.GetRESTPort()),
		Loop:     loop,
		Registry: reg,
	})
	go func() {
		if err := restServer.Start(); err != nil {
			logging.Error("❌ Ошибка REST API: %v", err)
			stop()
		}
	}()

	metricsServer := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.GetMetricsPort()),
		Handler:           promhttp.HandlerFor(reg, promhttp.HandlerOpts{}),
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		logging.Info("📊 Prometheus метрики на %s/metrics", metricsServer.Addr)
		if err := metricsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Error("❌ Ошибка сервера метрик: %v", err)
		}
	}()

	logging.Info("✅ Все сервисы запущены")
	logging.Info("   🌐 REST API: http://localhost:%d", cfg.Server.GetRESTPort())
	logging.Info("   ❤️  Health check: http://localhost:%d/health", cfg.Server.GetRESTPort())

	err = loop.Run(ctx, time.Duration(cfg.World.TickMS)*time.Millisecond)
	if err != nil && !errors.Is(err, context.Canceled) {
		logging.Error("❌ Игровой цикл: %v", err)
	}

	// === GRACEFUL SHUTDOWN ===
	logging.Info("📡 Завершение работы...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := restServer.Stop(shutdownCtx); err != nil {
		logging.Error("❌ Ошибка остановки REST API: %v", err)
	}
	if err := metricsServer.Shutdown(shutdownCtx); err != nil {
		logging.Error("❌ Ошибка остановки сервера метрик: %v", err)
	}

	snapshotter.Wait()
	// Цикл остановлен, мир больше никто не трогает.
	final := storage.Capture(w, loop.Now())
	if err := snaps.Save(shutdownCtx, cfg.Storage.SnapshotName, final); err != nil {
		logging.Error("❌ Финальный снимок не сохранён: %v", err)
	} else {
		logging.Info("💾 Финальный снимок сохранён (тик %d)", final.Tick)
	}

	fwdCancel()
	<-fwdDone
	return nil
}
