package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config agrupa la configuración de la consola (lectura vía Viper desde env, archivo y flags).
type Config struct {
	App     AppConfig
	Backend BackendConfig
	HTTP    HTTPConfig
	JWT     JWTConfig
	Sesion  SesionConfig
	DB      DBConfig
	Redis   RedisConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string
}

// BackendConfig apunta a la API REST de la tienda que administra la consola.
type BackendConfig struct {
	APIURL  string // ej. https://api.mitienda.pe/api
	Timeout time.Duration
}

// HTTPConfig configuración del servidor HTTP (BFF).
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// JWTConfig firma de la cookie de sesión de la consola.
type JWTConfig struct {
	Secret     string
	Expiration int // minutos
	Issuer     string
}

// SesionConfig almacenamiento de sesiones de administrador.
// Store: "memoria" (por defecto), "postgres" o "redis".
type SesionConfig struct {
	Store      string
	CookieName string
	TTL        time.Duration
}

// DBConfig configuración de PostgreSQL para el almacén de sesiones.
// Si DatabaseURL no está vacío, se usa como connection string completo.
type DBConfig struct {
	DatabaseURL string
	Host        string
	Port        int
	User        string
	Password    string
	DBName      string
	SSLMode     string
}

// ConnectionString devuelve el DSN a usar: DATABASE_URL si está definido, si no el construido con DSN().
func (c DBConfig) ConnectionString() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return c.DSN()
}

// DSN devuelve el connection string para PostgreSQL con URL encoding para caracteres especiales.
func (c DBConfig) DSN() string {
	u := &url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:     "/" + c.DBName,
		RawQuery: fmt.Sprintf("sslmode=%s", c.SSLMode),
	}
	return u.String()
}

// RedisConfig configuración de Redis para el almacén de sesiones.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// Load lee la configuración desde variables de entorno y, opcionalmente, desde archivo.
// Prioridad: flags > env vars > archivo > valores por defecto.
// Nombres esperados: APP_ENV, BACKEND_API_URL, HTTP_PORT, JWT_SECRET, SESION_STORE, etc.
// flags puede ser nil; si no, cada flag se asocia a la clave con su mismo nombre (ej. "backend.api_url").
func Load(flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return nil, fmt.Errorf("config: bind flags: %w", err)
		}
	}

	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "tienda-admin"),
			LogLevel: getString(v, "LOG_LEVEL", "info"),
		},
		Backend: BackendConfig{
			APIURL:  strings.TrimRight(getString(v, "backend.api_url", "http://localhost:8000/api"), "/"),
			Timeout: time.Duration(getInt(v, "backend.timeout_seg", 20)) * time.Second,
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		JWT: JWTConfig{
			Secret:     getString(v, "JWT_SECRET", ""),
			Expiration: getInt(v, "JWT_EXPIRATION_MINUTES", 720),
			Issuer:     getString(v, "JWT_ISSUER", "tienda-admin"),
		},
		Sesion: SesionConfig{
			Store:      getString(v, "sesion.store", "memoria"),
			CookieName: getString(v, "sesion.cookie", "admin_sesion"),
			TTL:        time.Duration(getInt(v, "sesion.ttl_horas", 12)) * time.Hour,
		},
		DB: DBConfig{
			DatabaseURL: getString(v, "DATABASE_URL", ""),
			Host:        getString(v, "DB_HOST", "localhost"),
			Port:        getInt(v, "DB_PORT", 5432),
			User:        getString(v, "DB_USER", "postgres"),
			Password:    getString(v, "DB_PASSWORD", ""),
			DBName:      getString(v, "DB_NAME", "tienda_admin"),
			SSLMode:     getString(v, "DB_SSLMODE", "disable"),
		},
		Redis: RedisConfig{
			Addr:     getString(v, "REDIS_ADDR", "localhost:6379"),
			Password: getString(v, "REDIS_PASSWORD", ""),
			DB:       getInt(v, "REDIS_DB", 0),
		},
	}

	if _, err := url.ParseRequestURI(cfg.Backend.APIURL); err != nil {
		return nil, fmt.Errorf("config: BACKEND_API_URL inválida: %w", err)
	}
	switch cfg.Sesion.Store {
	case "memoria", "postgres", "redis":
	default:
		return nil, fmt.Errorf("config: SESION_STORE desconocido %q", cfg.Sesion.Store)
	}
	return cfg, nil
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
			n, err := strconv.Atoi(v.GetString(key))
			if err != nil {
				return def
			}
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
