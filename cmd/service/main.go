package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/2beens/weblogin/internal"
	"github.com/2beens/weblogin/internal/config"
	"github.com/2beens/weblogin/internal/logging"
	"github.com/2beens/weblogin/pkg"

	log "github.com/sirupsen/logrus"
)

const secretKeyLength = 32

func main() {
	fmt.Println("starting ...")

	env := flag.String("env", "development", "environment [prod | production | dev | development]")
	configPath := flag.String("config", "./config.toml", "path for the TOML config file")
	flag.Parse()

	log.Warnf("---->> running in [%s] environment", *env)

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		panic(err)
	}

	sentryDSN := os.Getenv("SENTRY_DSN")
	logsOutput := logging.Setup(logging.LoggerSetupParams{
		LogFileName:      cfg.LogsPath,
		LogToStdout:      cfg.LogToStdout,
		LogLevel:         cfg.LogLevel,
		LogFormatJSON:    cfg.LogFormatJSON,
		Environment:      cfg.Environment,
		SentryEnabled:    cfg.SentryEnabled,
		SentryDSN:        sentryDSN,
		SentryServerName: "weblogin",
	})

	log.Debugf("using port: %d", cfg.Port)
	log.Debugf("using server logs path: [%s]", cfg.LogsPath)

	secretKey, err := sessionSecretKey(cfg.Environment)
	if err != nil {
		log.Fatalf("session secret key: %s", err)
	}

	if cfg.CredentialsBackend == config.CredentialsBackendFile {
		exists, err := pkg.PathExists(cfg.CredentialsPath, false)
		if err != nil {
			log.Errorf("check credentials file: %s", err)
		} else if !exists {
			// not fatal, every login attempt fails until the file shows up
			log.Errorf("credentials file [%s] does not exist", cfg.CredentialsPath)
		}
	}

	redisPassword := os.Getenv("WEBLOGIN_REDIS_PASS")
	if redisPassword == "" && cfg.SessionBackend == config.SessionBackendRedis {
		log.Warnln("redis password not set. use WEBLOGIN_REDIS_PASS")
	}

	postgresPassword := os.Getenv("WEBLOGIN_POSTGRES_PASS")
	if postgresPassword == "" && cfg.CredentialsBackend == config.CredentialsBackendPostgres {
		log.Warnln("postgres password not set. use WEBLOGIN_POSTGRES_PASS")
	}

	chOsInterrupt := make(chan os.Signal, 1)
	signal.Notify(chOsInterrupt, os.Interrupt, syscall.SIGTERM)

	ctx, cancel := context.WithCancel(context.Background())

	server, err := internal.NewServer(
		ctx,
		internal.NewServerParams{
			Config:           cfg,
			SecretKey:        secretKey,
			RedisPassword:    redisPassword,
			PostgresPassword: postgresPassword,
			TraceOutput:      logsOutput,
		},
	)
	if err != nil {
		log.Fatalf("new server: %s", err)
	}

	server.Serve(cfg.Host, cfg.Port)

	receivedSig := <-chOsInterrupt
	log.Warnf("signal [%s] received, killing everything ...", receivedSig)
	cancel()

	server.GracefulShutdown()
}

// sessionSecretKey reads the cookie signing key from WEBLOGIN_SECRET_KEY.
// Outside production a random key is generated when it is missing, so sessions
// do not survive a restart.
func sessionSecretKey(env string) ([]byte, error) {
	if key := os.Getenv("WEBLOGIN_SECRET_KEY"); key != "" {
		return []byte(key), nil
	}

	if config.IsProduction(env) {
		return nil, fmt.Errorf("WEBLOGIN_SECRET_KEY must be set in %s", env)
	}

	log.Warnln("session secret key not set, using a random one. use WEBLOGIN_SECRET_KEY")
	return pkg.GenerateRandomBytes(secretKeyLength)
}
