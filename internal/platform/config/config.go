package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"pet-care-info/internal/platform/logger"

	"github.com/joho/godotenv"
)

const (
	DefaultCareData       = "Pet_Care_Data.xlsx"
	DefaultFactsData      = "Pet_Facts_Data.xlsx"
	DefaultImageTimeout   = 5 * time.Second
	DefaultDatasetTimeout = 10 * time.Second
	DefaultAppName        = "pet-care-info"
)

// Config de la aplicación. Todo sale de env (opcionalmente desde .env).
type Config struct {
	Addr string

	// Referencias de datasets: path local, URL http(s) o postgres://...?table=...
	CareData  string
	FactsData string

	ImageTimeout   time.Duration
	DatasetTimeout time.Duration

	// Si true, la página permite que el operador ingrese otra referencia de dataset.
	AllowPathInput bool

	Log logger.Options
}

// Load lee .env (si existe) y luego el entorno:
// - PORT (8080)
// - CARE_DATA, FACTS_DATA
// - IMAGE_TIMEOUT (5s), DATASET_TIMEOUT (10s)
// - ALLOW_PATH_INPUT (false)
// - LOG_LEVEL, LOG_FORMAT, APP_NAME
func Load(envFiles ...string) (Config, error) {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("load env file: %w", err)
	}
	return FromEnv()
}

// FromEnv arma Config solo desde variables de entorno.
func FromEnv() (Config, error) {
	imageTimeout, err := getEnvDuration("IMAGE_TIMEOUT", DefaultImageTimeout)
	if err != nil {
		return Config{}, err
	}
	datasetTimeout, err := getEnvDuration("DATASET_TIMEOUT", DefaultDatasetTimeout)
	if err != nil {
		return Config{}, err
	}
	allowPathInput, err := getEnvBool("ALLOW_PATH_INPUT", false)
	if err != nil {
		return Config{}, err
	}

	return Config{
		Addr:           ":" + getEnvOrDefault("PORT", "8080"),
		CareData:       getEnvOrDefault("CARE_DATA", DefaultCareData),
		FactsData:      getEnvOrDefault("FACTS_DATA", DefaultFactsData),
		ImageTimeout:   imageTimeout,
		DatasetTimeout: datasetTimeout,
		AllowPathInput: allowPathInput,
		Log: logger.Options{
			Level:  logger.ParseLevel(os.Getenv("LOG_LEVEL")),
			Format: logger.ParseFormat(os.Getenv("LOG_FORMAT")),
			App:    getEnvOrDefault("APP_NAME", DefaultAppName),
		},
	}, nil
}

func getEnvOrDefault(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getEnvDuration(key string, def time.Duration) (time.Duration, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s: invalid duration %q: %w", key, v, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%s: must be positive, got %s", key, v)
	}
	return d, nil
}

func getEnvBool(key string, def bool) (bool, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%s: invalid boolean %q", key, v)
	}
	return b, nil
}
