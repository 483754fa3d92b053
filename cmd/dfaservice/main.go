// Command dfaservice serves a library of DFAs over HTTP, with
// optional websocket and MQTT front ends.
//
//	dfaservice -c dfaservice.toml -l :8080 -p dfas.db -w
//
// See Config for the TOML file's keys.  Flags override the file.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"

	"github.com/Comcast/dfareader/storage"
	"github.com/Comcast/dfareader/storage/bolt"
	"github.com/Comcast/dfareader/util"
)

func init() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lmicroseconds | log.LUTC)
}

func main() {
	var (
		configFile = flag.String("c", "", "optional TOML config file")
		listen     = flag.String("l", ":8080", "HTTP service address")
		maxConns   = flag.Int("m", 256, "max concurrent HTTP connections (0 for no limit)")
		storeFile  = flag.String("p", "", "optional bbolt filename for persistence")
		websockets = flag.Bool("w", false, "enable the websocket service at /ws")
		reloadDir  = flag.String("d", "", "directory of descriptions to load")
		reload     = flag.String("reload", "", "cron expression for reloading -d")
		verbose    = flag.Bool("v", false, "verbose logging")
	)

	flag.Parse()

	cfg := DefaultConfig()
	if *configFile != "" {
		var err error
		if cfg, err = LoadConfig(*configFile); err != nil {
			log.Fatal(err)
		}
	}

	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "l":
			cfg.Listen = *listen
		case "m":
			cfg.MaxConns = *maxConns
		case "p":
			cfg.Storage = *storeFile
		case "w":
			cfg.Websockets = *websockets
		case "d":
			cfg.ReloadDir = *reloadDir
		case "reload":
			cfg.Reload = *reload
		case "v":
			cfg.Verbose = *verbose
		}
	})
	if err := cfg.check(); err != nil {
		log.Fatal(err)
	}

	util.Logging = cfg.Verbose

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if err := run(ctx, cfg); err != nil {
		log.Fatal(err)
	}
	log.Printf("main terminating")
}

func run(ctx context.Context, cfg *Config) error {
	var store storage.Storage = storage.NewMemStorage()
	if cfg.Storage != "" {
		s, err := bolt.NewStorage(cfg.Storage)
		if err != nil {
			return err
		}
		s.Debug = cfg.Verbose
		if err = s.Open(ctx); err != nil {
			return err
		}
		defer s.Close(ctx)
		store = s
	}

	lib := NewLibrary(store)

	if cfg.ReloadDir != "" {
		n, err := LoadDir(ctx, lib, cfg.ReloadDir)
		if err != nil {
			util.Warnf("%v", err)
		}
		log.Printf("loaded %d descriptions from %s", n, cfg.ReloadDir)

		if cfg.Reload != "" {
			r, err := NewReloader(cfg.Reload, cfg.ReloadDir, lib)
			if err != nil {
				return err
			}
			go r.Run(ctx)
		}
	}

	svc := NewService(lib)
	svc.Websockets = cfg.Websockets

	if cfg.MQTT != nil {
		if err := NewMQTTCoupling(svc, cfg.MQTT).Start(ctx); err != nil {
			return err
		}
	}

	return svc.Serve(ctx, cfg.Listen, cfg.MaxConns)
}
