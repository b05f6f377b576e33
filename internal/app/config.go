package app

// Поддерживаемые драйверы хранилища.
const (
	StorageDriverMemory   = "memory"
	StorageDriverPostgres = "postgres"
)

// Config описывает настройки запуска приложения.
type Config struct {
	HTTPAddr    string
	MetricsAddr string

	StorageDriver string
	PostgresDSN   string
	// PostgresAutoMigrate применяет миграции при старте.
	PostgresAutoMigrate bool
}

// DefaultConfig возвращает конфигурацию для локального запуска:
// in-memory хранилище, API на :8080, метрики на :9090.
func DefaultConfig() Config {
	return Config{
		HTTPAddr:      ":8080",
		MetricsAddr:   ":9090",
		StorageDriver: StorageDriverMemory,
	}
}

// Validate проверяет согласованность конфигурации.
func (c Config) Validate() error {
	switch c.StorageDriver {
	case StorageDriverMemory:
		return nil
	case StorageDriverPostgres:
		if c.PostgresDSN == "" {
			return errPostgresDSNRequired
		}
		return nil
	default:
		return errUnknownStorageDriver
	}
}
