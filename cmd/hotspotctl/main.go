// Command hotspotctl toggles the machine's mobile hotspot. It resolves
// and persists the wireless adapter to operate on, guards against
// concurrent toggles with a lock file, delays startup when running
// unattended so the network stack has time to come up, and maps the
// toggle result to the process exit code.
package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/spf13/pflag"
	"golang.org/x/term"
	"gopkg.in/natefinch/lumberjack.v2"

	hotspot "github.com/axondata/go-hotspot"
	"github.com/axondata/go-hotspot/internal/adapterstore"
)

// Exit codes
const (
	exitOK          = 0
	exitToggleError = 1
	exitUsage       = 2
	exitLocked      = 3
)

func main() {
	os.Exit(run())
}

func run() int {
	var (
		configPath   string
		adapterName  string
		strategyName string
		dryRun       bool
		logFile      string
		debug        bool
		startupDelay time.Duration
		showVersion  bool
	)

	pflag.StringVarP(&configPath, "config", "c", "", "config file path")
	pflag.StringVarP(&adapterName, "adapter", "a", "", "preferred adapter name or description fragment")
	pflag.StringVar(&strategyName, "strategy", "", "radio cycle strategy (tether-dance|radio-restart)")
	pflag.BoolVarP(&dryRun, "dry-run", "n", false, "toggle a simulated platform instead of the host")
	pflag.StringVar(&logFile, "log-file", "", "log file path (rotated); default stderr")
	pflag.BoolVarP(&debug, "debug", "d", false, "enable debug logging")
	pflag.DurationVar(&startupDelay, "startup-delay", -1, "unattended startup delay (overrides config)")
	pflag.BoolVarP(&showVersion, "version", "V", false, "print version and exit")
	pflag.Parse()

	if showVersion {
		fmt.Println("hotspotctl " + hotspot.Version)
		return exitOK
	}

	cfg, err := loadConfig(configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "hotspotctl:", err)
		return exitUsage
	}

	// Flags override the file
	if adapterName != "" {
		cfg.Adapter = adapterName
	}
	if strategyName != "" {
		cfg.Toggle.Strategy = strategyName
	}
	if logFile != "" {
		cfg.Log.File = logFile
	}
	if debug {
		cfg.Log.Debug = true
	}
	if startupDelay >= 0 {
		cfg.Unattended.StartupDelaySec = int(startupDelay.Seconds())
	}

	strategy, err := hotspot.ParseCycleStrategy(cfg.Toggle.Strategy)
	if err != nil {
		fmt.Fprintln(os.Stderr, "hotspotctl:", err)
		return exitUsage
	}

	logger := hotspot.StdLogger(newLog(cfg), cfg.Log.Debug)

	// Scheduled/unattended invocations fire before the network stack is
	// ready; give it a head start. Interactive runs skip the delay.
	if !term.IsTerminal(int(os.Stdout.Fd())) && cfg.Unattended.StartupDelaySec > 0 {
		delay := time.Duration(cfg.Unattended.StartupDelaySec) * time.Second
		logger.Infof("unattended session, delaying %s before toggle", delay)
		time.Sleep(delay)
	}

	unlock, err := acquireLock(cfg.LockFile)
	if err != nil {
		logger.Errorf("another toggle appears to be running: %v", err)
		return exitLocked
	}
	defer unlock()

	var platform hotspot.Platform
	if dryRun {
		logger.Infof("dry run: using simulated platform")
		sim := hotspot.NewSimulatedPlatform()
		sim.WifiRadio().ForceState(hotspot.RadioOn)
		platform = sim
	} else {
		platform, err = hotspot.NativePlatform()
		if err != nil {
			logger.Errorf("%v", err)
			return exitToggleError
		}
	}

	store := adapterstore.New(cfg.StateFile)
	adapter, err := store.Resolve(radioEnumerator{platform: platform}, cfg.Adapter)
	if err != nil {
		logger.Errorf("resolving adapter: %v", err)
		return exitToggleError
	}

	toggleCfg := hotspot.Config{
		ProfileWait: hotspot.RetryBudget{
			MaxAttempts: cfg.Toggle.ProfileWaitAttempts,
			Interval:    time.Duration(cfg.Toggle.ProfileWaitIntervalSec) * time.Second,
		},
		Strategy:       strategy,
		SettleDelay:    time.Duration(cfg.Toggle.SettleDelaySec) * time.Second,
		RadioOffDelay:  time.Duration(cfg.Toggle.RadioOffDelaySec) * time.Second,
		RadioOnSettle:  time.Duration(cfg.Toggle.RadioOnSettleSec) * time.Second,
		RestartAdapter: cfg.Toggle.RestartAdapter,
	}

	orch := hotspot.New(platform,
		hotspot.WithConfig(toggleCfg),
		hotspot.WithLogger(logger),
		hotspot.WithNotifier(hotspot.LogNotifier(logger)),
	)

	if !orch.ToggleHotspot(context.Background(), adapter) {
		return exitToggleError
	}
	return exitOK
}

// newLog builds the standard logger, writing through lumberjack when a
// log file is configured so unattended runs cannot grow it unbounded.
func newLog(cfg *fileConfig) *log.Logger {
	var w io.Writer = os.Stderr
	if cfg.Log.File != "" {
		w = &lumberjack.Logger{
			Filename:   cfg.Log.File,
			MaxSize:    cfg.Log.MaxSizeMB,
			MaxBackups: cfg.Log.MaxBackups,
		}
	}
	return log.New(w, "hotspotctl ", log.LstdFlags)
}

// acquireLock takes the single-instance lock. Two concurrent toggles
// against the same adapter are undefined behavior, so the second
// invocation backs off instead.
func acquireLock(path string) (func(), error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		if os.IsExist(err) {
			pid, _ := os.ReadFile(path)
			return nil, fmt.Errorf("lock file %s held by pid %s", path, string(pid))
		}
		return nil, err
	}

	_, _ = f.WriteString(strconv.Itoa(os.Getpid()))
	_ = f.Close()

	return func() { _ = os.Remove(path) }, nil
}

// radioEnumerator lists WiFi adapters off the platform's radio
// enumeration for the adapter store.
type radioEnumerator struct {
	platform hotspot.Platform
}

func (e radioEnumerator) WifiAdapters() ([]hotspot.WifiAdapter, error) {
	radios, err := e.platform.Radios()
	if err != nil {
		return nil, err
	}

	var adapters []hotspot.WifiAdapter
	for _, r := range radios {
		if r.Kind() == hotspot.RadioKindWiFi {
			adapters = append(adapters, hotspot.WifiAdapter{Name: r.Name()})
		}
	}
	return adapters, nil
}
