package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App             App             `mapstructure:",squash"`
	Server          Server          `mapstructure:",squash"`
	Store           Store           `mapstructure:",squash"`
	Auth            Auth            `mapstructure:",squash"`
	Analytics       Analytics       `mapstructure:",squash"`
	SnapshotRefresh SnapshotRefresh `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

// Store configura o acesso ao data store de coleções (estilo json-server)
type Store struct {
	BaseURL        string        `mapstructure:"store_base_url"`
	AccessToken    string        `mapstructure:"store_access_token"`
	RequestTimeout time.Duration `mapstructure:"-"`
	TimeoutSeconds int           `mapstructure:"store_timeout_seconds"`
}

type Auth struct {
	Secret          string `mapstructure:"auth_secret"`
	InviteCode      string `mapstructure:"invite_code"`
	TokenTTLMinutes int    `mapstructure:"auth_token_ttl_minutes"`
}

// Analytics configura o comportamento da camada de vinculação de consultas
type Analytics struct {
	CacheTTLSeconds  int `mapstructure:"analytics_cache_ttl_seconds"`
	SearchDebounceMS int `mapstructure:"search_debounce_ms"`
	TopProductsLimit int `mapstructure:"top_products_default_limit"`
}

// SnapshotRefresh configura o agendador de reaquecimento das visões do dashboard
type SnapshotRefresh struct {
	CronSchedule string `mapstructure:"snapshot_refresh_cron"`
	Enabled      bool   `mapstructure:"snapshot_refresh_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("LOG_LEVEL", "debug")

	viper.SetDefault("STORE_BASE_URL", "http://localhost:3001/api")
	viper.SetDefault("STORE_ACCESS_TOKEN", "")
	viper.SetDefault("STORE_TIMEOUT_SECONDS", 30)

	viper.SetDefault("AUTH_SECRET", "your_auth_secret")
	viper.SetDefault("AUTH_TOKEN_TTL_MINUTES", 480) // 8 horas
	viper.SetDefault("INVITE_CODE", "")             // vazio: usar /settings do store

	viper.SetDefault("ANALYTICS_CACHE_TTL_SECONDS", 60)
	viper.SetDefault("SEARCH_DEBOUNCE_MS", 400) // janela de quiescência da busca livre
	viper.SetDefault("TOP_PRODUCTS_DEFAULT_LIMIT", 5)

	viper.SetDefault("SNAPSHOT_REFRESH_CRON", "*/10 * * * *") // a cada 10 minutos
	viper.SetDefault("SNAPSHOT_REFRESH_ENABLED", false)
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	// Configurar valores padrão
	SetDefaults()

	// Configurar o Viper
	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv() // Isso permite que o Viper leia variáveis de ambiente

	// Tentar ler o arquivo .env com o Viper (opcional, já que usamos godotenv)
	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Store.RequestTimeout = time.Duration(config.Store.TimeoutSeconds) * time.Second

	return config, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../.env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Info("Nenhum arquivo .env encontrado, usando variáveis de ambiente")
}
