package internal

import (
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/Netflix/go-env"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

const defaultBaseDirName = "files"

type Config struct {
	Host              string        `env:"HOST,default=0.0.0.0" validate:"required"`
	Port              int           `env:"PORT,default=8085" validate:"min=1,max=65535"`
	NumberOfWorkers   int           `env:"NUMBER_OF_WORKERS,default=4" validate:"min=1"`
	BaseDir           string        `env:"BASE_DIR"`
	LogLevel          string        `env:"LOG_LEVEL,default=INFO" validate:"oneof=DEBUG INFO WARN ERROR"`
	ChunkSizeKb       int           `env:"CHUNK_SIZE_KB,default=64" validate:"min=1,max=16384"`
	BadgerFilepath    string        `env:"BADGER_FILEPATH,default=data/downloads" validate:"required"`
	AuditBufferSize   int           `env:"AUDIT_BUFFER_SIZE,default=1024" validate:"min=1"`
	AuditRetention    time.Duration `env:"AUDIT_RETENTION,default=720h" validate:"min=0"`
	AccessLog         string        `env:"ACCESS_LOG"`
	ReadHeaderTimeout time.Duration `env:"READ_HEADER_TIMEOUT,default=10s" validate:"gt=0"`
	ShutdownTimeout   time.Duration `env:"SHUTDOWN_TIMEOUT,default=15s" validate:"gt=0"`
	DebugPort         int           `env:"DEBUG_PORT,default=8081" validate:"min=1,max=65535"`
}

// LoadConfig reads an optional .env file, then the environment.
func LoadConfig() (Config, error) {
	// A missing .env file is the normal case in production
	_ = godotenv.Load()

	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return Config{}, fmt.Errorf("config error: %w", err)
	}
	if err := validator.New().Struct(config); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	if config.BaseDir == "" {
		dir, err := DefaultBaseDir()
		if err != nil {
			return Config{}, err
		}
		config.BaseDir = dir
	}
	return config, nil
}

// DefaultBaseDir is the "files" directory next to the running executable.
func DefaultBaseDir() (string, error) {
	executable, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("unable to locate executable: %w", err)
	}
	return filepath.Join(filepath.Dir(executable), defaultBaseDirName), nil
}

func (c Config) Address() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}
