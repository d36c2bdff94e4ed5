package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App            App            `mapstructure:",squash"`
	Server         Server         `mapstructure:",squash"`
	Database       Database       `mapstructure:",squash"`
	Auth           Auth           `mapstructure:",squash"`
	Sources        Sources        `mapstructure:",squash"`
	OpenAI         OpenAI         `mapstructure:",squash"`
	Stripe         Stripe         `mapstructure:",squash"`
	Billing        Billing        `mapstructure:",squash"`
	HistoryCleanup HistoryCleanup `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
	BaseURL  string `mapstructure:"app_base_url"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type Auth struct {
	Secret string `mapstructure:"auth_secret"`
}

// Sources concentra as credenciais das fontes de anúncios.
// A ausência de uma credencial é um estado suportado: o adaptador
// correspondente passa a responder com conteúdo de fallback.
type Sources struct {
	GoogleAdsAPIKey      string `mapstructure:"google_ads_api_key"`
	GoogleCustomSearchID string `mapstructure:"google_custom_search_id"`
	FacebookAPIKey       string `mapstructure:"facebook_marketing_api_key"`
	TikTokAPIKey         string `mapstructure:"tiktok_api_key"`
	InstagramAPIKey      string `mapstructure:"instagram_api_key"`
	YouTubeAPIKey        string `mapstructure:"youtube_api_key"`
	SemrushAPIKey        string `mapstructure:"semrush_api_key"`
	SpyFuAPIKey          string `mapstructure:"spyfu_api_key"`

	GoogleSearchURL  string `mapstructure:"google_search_url"`
	FacebookGraphURL string `mapstructure:"facebook_graph_url"`
	TikTokURL        string `mapstructure:"tiktok_url"`
	YouTubeURL       string `mapstructure:"youtube_url"`
	SemrushURL       string `mapstructure:"semrush_url"`
	SpyFuURL         string `mapstructure:"spyfu_url"`
}

type OpenAI struct {
	APIKey string `mapstructure:"openai_api_key"`
	URL    string `mapstructure:"openai_url"`
	Model  string `mapstructure:"openai_model"`
}

type Stripe struct {
	SecretKey  string `mapstructure:"stripe_secret_key"`
	URL        string `mapstructure:"stripe_url"`
	SuccessURL string `mapstructure:"stripe_success_url"`
	CancelURL  string `mapstructure:"stripe_cancel_url"`
}

type Billing struct {
	SignupCredits int `mapstructure:"billing_signup_credits"`
}

type HistoryCleanup struct {
	CronSchedule  string `mapstructure:"history_cleanup_cron"`
	RetentionDays int    `mapstructure:"history_cleanup_retention_days"`
	Enabled       bool   `mapstructure:"history_cleanup_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("LOG_LEVEL", "debug")
	viper.SetDefault("APP_BASE_URL", "http://localhost:3000")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/adgenius")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("AUTH_SECRET", "your_secret_key")

	// Endpoints das fontes de anúncios
	viper.SetDefault("GOOGLE_SEARCH_URL", "https://www.googleapis.com/customsearch/v1")
	viper.SetDefault("FACEBOOK_GRAPH_URL", "https://graph.facebook.com/v18.0")
	viper.SetDefault("TIKTOK_URL", "https://open.tiktokapis.com/v2")
	viper.SetDefault("YOUTUBE_URL", "https://www.googleapis.com/youtube/v3")
	viper.SetDefault("SEMRUSH_URL", "https://api.semrush.com/analytics/ta/api/")
	viper.SetDefault("SPYFU_URL", "https://www.spyfu.com/api/v1")

	viper.SetDefault("OPENAI_URL", "https://api.openai.com/v1")
	viper.SetDefault("OPENAI_MODEL", "gpt-3.5-turbo")

	viper.SetDefault("STRIPE_URL", "https://api.stripe.com/v1")
	viper.SetDefault("STRIPE_SUCCESS_URL", "/thank-you")
	viper.SetDefault("STRIPE_CANCEL_URL", "/upgrade")

	viper.SetDefault("BILLING_SIGNUP_CREDITS", 5)

	// Limpeza de histórico desabilitada por padrão
	viper.SetDefault("HISTORY_CLEANUP_CRON", "0 4 * * *")
	viper.SetDefault("HISTORY_CLEANUP_RETENTION_DAYS", 180)
	viper.SetDefault("HISTORY_CLEANUP_ENABLED", false)
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

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

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../.env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
