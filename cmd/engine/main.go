package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	_ "net/http/pprof"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/omnitrade/execution-engine/config"
	"github.com/omnitrade/execution-engine/pkg/execution"
	"go.uber.org/zap"
)

func main() {
	var configFile string
	flag.StringVar(&configFile, "config-file", "", "Specify config file path")
	flag.Parse()

	go func() {
		http.ListenAndServe("localhost:6060", nil)
	}()

	cfg, err := config.Load(configFile)
	if err != nil {
		panic(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)

	engine, err := execution.NewEngine(cfg)
	if err != nil {
		zap.S().Errorf("init engine fail with err: %v", err)
		panic(err)
	}

	fmt.Println("Execution Engine service started. Press Ctrl+C to exit.")

	ticker := time.NewTicker(time.Duration(cfg.HeartbeatSeconds) * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			engine.Heartbeat(ctx)
		case <-sigs:
			fmt.Println("Shutting down...")
			cancel()
			fmt.Println("Exited cleanly.")
			return
		}
	}
}
