package configs

const (
	StorageBackendPostgres = "postgres"
	StorageBackendMemory   = "memory"
)

type DB struct {
	URL            string `env:"DATABASE_URL"`
	StorageBackend string `env:"STORAGE_BACKEND" envDefault:"postgres"`
	MigrationsDir  string `env:"MIGRATIONS_DIR" envDefault:"migrations"`
}
