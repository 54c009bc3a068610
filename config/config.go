package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/peterbourgon/ff/v4"
	"github.com/peterbourgon/ff/v4/ffhelp"
)

const tokenKeyLength = 32

var ErrInvalidTokenKey = fmt.Errorf("token key must be %d bytes long", tokenKeyLength)

type Config struct {
	CockroachURL    string        `ff:"long: cockroach-url, default: postgresql://root@127.0.0.1:26257/hicampus?sslmode=disable, usage: URL for the CockroachDB database"`
	Port            uint32        `ff:"long: port, short: p, default: 5000, usage: Port for the HTTP server"`
	TokenKey        string        `ff:"long: token-key, default: supersecretkeyyoushouldnotcommit, usage: 32 bytes key used to seal auth tokens"`
	TokenTTL        time.Duration `ff:"long: token-ttl, default: 24h, usage: Lifetime of auth tokens"`
	ShutdownTimeout time.Duration `ff:"long: shutdown-timeout, default: 10s, usage: Time to wait for in-flight requests on shutdown"`
}

func Load() (Config, error) {
	_ = godotenv.Load()

	return parse(os.Args[1:])
}

func parse(args []string) (Config, error) {
	var cfg Config
	fs := ff.NewFlagSetFrom("hicampus", &cfg)
	err := ff.Parse(fs, args, ff.WithEnvVarPrefix("HICAMPUS"))
	if errors.Is(err, ff.ErrHelp) {
		fmt.Println(ffhelp.Flags(fs))
		os.Exit(0)
	}

	if err != nil {
		return cfg, err
	}

	if len(cfg.TokenKey) != tokenKeyLength {
		return cfg, ErrInvalidTokenKey
	}

	return cfg, nil
}
