package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var (
	mu     sync.RWMutex
	loaded = make(map[string]any)

	defaultEnvLoaded sync.Once
)

// Load populates the provided configuration struct from environment variables
// using `env` field tags. The default .env file is read once per process
// before the first parse; a missing .env file is not an error.
//
// Each configuration type is parsed at most once for the lifetime of the
// process; later calls for the same type return the cached copy. This keeps
// startup deterministic when several components share a config section.
//
// Example:
//
//	type MongoConfig struct {
//		URL    string `env:"MONGODB_URL,required"`
//		DBName string `env:"MONGODB_DB_NAME,required"`
//	}
//
//	var cfg MongoConfig
//	if err := config.Load(&cfg); err != nil {
//		// handle error
//	}
func Load[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}

	defaultEnvLoaded.Do(func() {
		// The .env file might not exist and that's ok
		_ = godotenv.Load()
	})

	typeName := getTypeName[T]()

	mu.RLock()
	cached, ok := loaded[typeName]
	mu.RUnlock()
	if ok {
		*v = cached.(T)
		return nil
	}

	if err := env.Parse(v); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}

	mu.Lock()
	// Store a copy to avoid external modifications
	loaded[typeName] = *v
	mu.Unlock()

	return nil
}

// MustLoad works like Load but panics if configuration loading fails.
// Required values that are absent from the environment abort startup.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}

// getTypeName returns a string identifier for the generic type T
func getTypeName[T any]() string {
	var zero T
	t := reflect.TypeOf(zero)
	if t == nil {
		return fmt.Sprintf("%T", *new(T))
	}
	return t.String()
}
