package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	log "github.com/go-pkgz/lgr"
	"github.com/umputun/go-flags"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/umputun/jobtrack/app/seed"
	"github.com/umputun/jobtrack/app/tracker"
	"github.com/umputun/jobtrack/app/web"
)

var opts struct {
	Seed string `short:"s" long:"seed" env:"JOBTRACK_SEED" description:"yaml file with initial jobs, embedded dataset if not set"`

	Web struct {
		Address  string  `long:"address" env:"ADDRESS" default:":8080" description:"web server listen address"`
		BaseURL  string  `long:"base-url" env:"BASE_URL" description:"base URL path for reverse proxy, e.g. /jobs"`
		Hostname string  `long:"hostname" env:"HOSTNAME" description:"hostname to display in UI"`
		AuthHash string  `long:"auth-hash" env:"AUTH_HASH" description:"bcrypt hash of basic auth password for user jobtrack"`
		Rate     float64 `long:"rate" env:"RATE" default:"10" description:"max state changes per second per client"`
	} `group:"web" namespace:"web" env-namespace:"JOBTRACK_WEB"`

	Log struct {
		Enabled         bool   `long:"enabled" env:"ENABLED" description:"enable logging"`
		Filename        string `long:"filename" env:"FILENAME" description:"file name to write logs, stdout if not set"`
		MaxSize         int    `long:"max-size" env:"MAX_SIZE" default:"100" description:"max log file size in megabytes"`
		MaxAge          int    `long:"max-age" env:"MAX_AGE" default:"0" description:"max days to retain old log files"`
		MaxBackups      int    `long:"max-backups" env:"MAX_BACKUPS" default:"7" description:"max number of old log files to retain"`
		EnabledCompress bool   `long:"compress" env:"COMPRESS" description:"compress rotated log files"`
	} `group:"log" namespace:"log" env-namespace:"JOBTRACK_LOG"`

	Dbg bool `long:"dbg" env:"JOBTRACK_DEBUG" description:"debug mode"`
}

var revision = "unknown"

func main() {
	fmt.Printf("jobtrack %s\n", revision)

	if _, err := flags.Parse(&opts); err != nil {
		os.Exit(2)
	}
	setupLogs(setupLogOutput(), opts.Dbg)

	defer func() {
		if x := recover(); x != nil {
			log.Printf("[WARN] run time panic:\n%v", x)
			panic(x)
		}
	}()

	ctx, cancel := context.WithCancel(context.Background())
	signals(cancel) // handle SIGQUIT, SIGINT and SIGTERM

	if err := run(ctx); err != nil {
		log.Fatalf("[ERROR] %v", err)
	}
	log.Printf("[INFO] jobtrack stopped")
}

// run loads the seed, makes the store and serves web UI until ctx canceled
func run(ctx context.Context) error {
	store, err := makeStore(opts.Seed)
	if err != nil {
		return err
	}

	srv, err := web.New(web.Config{
		Store:     store,
		BaseURL:   opts.Web.BaseURL,
		Hostname:  makeHostName(),
		Version:   revision,
		AuthHash:  opts.Web.AuthHash,
		RateLimit: opts.Web.Rate,
	})
	if err != nil {
		return fmt.Errorf("failed to create web server: %w", err)
	}
	return srv.Run(ctx, opts.Web.Address)
}

// makeStore makes a tracker store with jobs from the seed file or embedded dataset
func makeStore(seedFile string) (*tracker.Store, error) {
	jobs, err := seed.Load(seedFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load jobs: %w", err)
	}
	store, err := tracker.New(jobs)
	if err != nil {
		return nil, fmt.Errorf("failed to make job store: %w", err)
	}
	log.Printf("[INFO] job store ready, %d jobs", len(jobs))
	return store, nil
}

func makeHostName() string {
	if opts.Web.Hostname != "" {
		return opts.Web.Hostname
	}
	host, err := os.Hostname()
	if err != nil {
		return "unknown"
	}
	return host
}

// setupLogOutput returns the log destination: discard, stdout or a rotated file
func setupLogOutput() io.Writer {
	if !opts.Log.Enabled {
		return io.Discard
	}
	if opts.Log.Filename == "" {
		return os.Stdout
	}
	return &lumberjack.Logger{
		Filename:   opts.Log.Filename,
		MaxSize:    opts.Log.MaxSize,
		MaxAge:     opts.Log.MaxAge,
		MaxBackups: opts.Log.MaxBackups,
		Compress:   opts.Log.EnabledCompress,
	}
}

func setupLogs(out io.Writer, dbg bool) {
	if out == io.Discard {
		log.Setup(log.Out(io.Discard), log.Err(io.Discard))
		return
	}

	if dbg {
		log.Setup(log.Debug, log.Msec, log.CallerFunc, log.CallerPkg, log.CallerFile, log.Out(out), log.Err(out))
		return
	}
	log.Setup(log.Msec, log.Out(out), log.Err(out))
}

func signals(cancel context.CancelFunc) {
	sigChan := make(chan os.Signal, 1)
	go func() {
		stacktrace := make([]byte, 8192)
		for sig := range sigChan {
			if sig == syscall.SIGQUIT { // catch SIGQUIT and print stack traces
				length := runtime.Stack(stacktrace, true)
				fmt.Println(string(stacktrace[:length]))
				continue
			}
			log.Printf("[INFO] signal %s received, shutting down", sig)
			cancel()
		}
	}()
	signal.Notify(sigChan, syscall.SIGQUIT, syscall.SIGTERM, syscall.SIGINT)
}
