package cfg

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/ecommerce-dz/go-store/pkg/e"
	"github.com/ecommerce-dz/go-store/pkg/logger"
	"github.com/jimlawless/whereami"
	"github.com/joho/godotenv"
)

// Бэкенды зеркала состояния.
const (
	BackendBolt = "bolt"
	BackendFile = "file"
)

type Config struct {
	Storage  *StorageCfg
	Checkout *CheckoutCfg
}

type StorageCfg struct {
	Backend     string        // bolt или file
	Path        string        // файл базы bbolt
	Dir         string        // каталог JSON-файлов для файлового бэкенда
	OpenTimeout time.Duration // таймаут на захват файла базы
}

type CheckoutCfg struct {
	SubmitDelay time.Duration // имитация сетевой задержки при оформлении
}

// Load безопасно загружает конфигурацию и возвращает ошибку в случае неудачи.
// Файл .env подхватывается, если он есть; его отсутствие — не ошибка.
func Load(log logger.Logger) (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Warnf("failed to load .env: %v", err)
	}

	storage, err := loadStorageCfg(log)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	checkout, err := loadCheckoutCfg(log)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return &Config{
		Storage:  storage,
		Checkout: checkout,
	}, nil
}

func loadStorageCfg(log logger.Logger) (*StorageCfg, error) {
	const (
		defaultBackend     = BackendBolt
		defaultDir         = "data"
		defaultFile        = "store.db"
		defaultOpenTimeout = time.Second
	)

	backend := getEnvOrDefault("STORAGE_BACKEND", defaultBackend)
	if backend != BackendBolt && backend != BackendFile {
		err := fmt.Errorf("unsupported STORAGE_BACKEND: %s", backend)
		log.Errorf(err, "invalid STORAGE_BACKEND")
		return nil, err
	}

	dir := getEnvOrDefault("STORAGE_DIR", defaultDir)

	openTimeout, err := parseDurationEnv("STORAGE_OPEN_TIMEOUT", defaultOpenTimeout)
	if err != nil {
		log.Errorf(err, "invalid STORAGE_OPEN_TIMEOUT")
		return nil, err
	}

	return &StorageCfg{
		Backend:     backend,
		Path:        filepath.Join(dir, defaultFile),
		Dir:         dir,
		OpenTimeout: openTimeout,
	}, nil
}

func loadCheckoutCfg(log logger.Logger) (*CheckoutCfg, error) {
	const defaultSubmitDelay = 2 * time.Second

	submitDelay, err := parseDurationEnv("CHECKOUT_SUBMIT_DELAY", defaultSubmitDelay)
	if err != nil {
		log.Errorf(err, "invalid CHECKOUT_SUBMIT_DELAY")
		return nil, err
	}

	return &CheckoutCfg{SubmitDelay: submitDelay}, nil
}

// getEnvOrDefault возвращает значение переменной окружения или значение по умолчанию.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}

	return defaultValue
}

// parseDurationEnv считывает длительность или возвращает значение по умолчанию.
func parseDurationEnv(key string, defaultValue time.Duration) (time.Duration, error) {
	if v := os.Getenv(key); v != "" {
		return time.ParseDuration(v)
	}

	return defaultValue, nil
}
