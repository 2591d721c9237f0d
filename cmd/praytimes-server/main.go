// Command praytimes-server runs the JSON API daemon.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"sync"
	"syscall"

	"github.com/nbouziani/praytimes/internal/log"
	"github.com/nbouziani/praytimes/internal/restserver"
	"github.com/nbouziani/praytimes/pkg/config"
)

const version = "1.0-" + runtime.GOOS + "/" + runtime.GOARCH

func main() {
	cfgFile := flag.String("config", "config.yaml", "Path to YAML configuration file")
	debug := flag.Bool("debug", false, "Turn on debugging output")
	showVersion := flag.Bool("version", false, "Show version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Printf("praytimes-server %s\n", version)
		os.Exit(0)
	}

	if err := log.Init(*debug); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	cfg, err := config.NewConfig(*cfgFile)
	if err != nil {
		log.Errorf("Failed to load configuration: %v", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	wg := &sync.WaitGroup{}
	ctrl, err := restserver.NewController(ctx, wg, cfg, log.GetSugaredLogger())
	if err != nil {
		log.Errorf("Failed to create REST controller: %v", err)
		os.Exit(1)
	}
	if err := ctrl.StartController(); err != nil {
		log.Errorf("Failed to start REST controller: %v", err)
		os.Exit(1)
	}
	log.Infof("praytimes-server %s listening on %s", version, cfg.ListenAddr)

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
	log.Infof("shutting down")
	cancel()
	wg.Wait()
}
