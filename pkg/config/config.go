package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde
// env y opcionalmente archivo).
type Config struct {
	App     AppConfig
	Store   StoreConfig
	Session SessionConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// StoreConfig configuración del store local clave→documento.
type StoreConfig struct {
	Path string // ruta del archivo SQLite que respalda el store
}

// SessionConfig configuración de la sesión persistida.
type SessionConfig struct {
	Secret     string // clave HMAC para firmar el token de sesión
	ExpMinutes int    // vigencia de la sesión persistida
	Issuer     string
	BcryptCost int
}

// Load lee la configuración desde variables de entorno (y opcionalmente
// desde archivo .env). Las env vars tienen prioridad. Nombres esperados:
// APP_ENV, STORE_PATH, SESSION_SECRET, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración .env
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "recluta-track"),
		},
		Store: StoreConfig{
			Path: getString(v, "STORE_PATH", defaultStorePath()),
		},
		Session: SessionConfig{
			Secret:     getString(v, "SESSION_SECRET", "recluta-track-dev-secret"),
			ExpMinutes: getInt(v, "SESSION_EXP_MINUTES", 43200), // 30 días
			Issuer:     getString(v, "SESSION_ISSUER", "recluta-track"),
			BcryptCost: getInt(v, "BCRYPT_COST", 10),
		},
	}

	return cfg, nil
}

// defaultStorePath coloca el store junto a la config del usuario, con
// fallback al directorio actual si el home no es resoluble.
func defaultStorePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "reclutrack.db"
	}
	return filepath.Join(home, ".reclutrack", "store.db")
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, _ := strconv.Atoi(v.GetString(key))
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
