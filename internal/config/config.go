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
	App           App           `mapstructure:",squash"`
	Server        Server        `mapstructure:",squash"`
	Database      Database      `mapstructure:",squash"`
	Meta          Meta          `mapstructure:",squash"`
	Auth          Auth          `mapstructure:",squash"`
	Engine        Engine        `mapstructure:",squash"`
	DecisionCycle DecisionCycle `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
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

type Meta struct {
	BaseURL     string `mapstructure:"meta_base_url"`
	URL         string `mapstructure:"meta_url"`
	Version     string `mapstructure:"meta_version"`
	AccessToken string `mapstructure:"meta_access_token"`
}

type Auth struct {
	Secret string `mapstructure:"auth_secret"`
}

// Engine concentra os pesos e limiares do motor de decisão. Os valores padrão
// vieram da operação manual e são empíricos: tratados como configuração, nunca
// como invariantes.
type Engine struct {
	// Pesos dos sub-scores na composição do score geral
	WeightFinancial   float64 `mapstructure:"engine_weight_financial"`
	WeightPerformance float64 `mapstructure:"engine_weight_performance"`
	WeightOperational float64 `mapstructure:"engine_weight_operational"`
	WeightMarket      float64 `mapstructure:"engine_weight_market"`

	// Limiares financeiros
	TargetROAS             float64 `mapstructure:"engine_target_roas"`
	BudgetUtilizationWarn  float64 `mapstructure:"engine_budget_utilization_warn"`
	BudgetUtilizationLimit float64 `mapstructure:"engine_budget_utilization_limit"`

	// Limiares de desempenho
	MinCTR          float64 `mapstructure:"engine_min_ctr"`
	MaxFrequency    float64 `mapstructure:"engine_max_frequency"`
	MinQualityScore float64 `mapstructure:"engine_min_quality_score"`

	// Limiares operacionais
	StaleAfterDays int `mapstructure:"engine_stale_after_days"`

	// Bandas de classificação do score geral
	MediumRiskScore   float64 `mapstructure:"engine_medium_risk_score"`
	HighRiskScore     float64 `mapstructure:"engine_high_risk_score"`
	CriticalRiskScore float64 `mapstructure:"engine_critical_risk_score"`

	// RulesFile aponta para um arquivo YAML com a tabela de regras. Vazio usa
	// a tabela padrão embutida.
	RulesFile string `mapstructure:"engine_rules_file"`

	// AutoActionsEnabled libera a execução automática de pause/adjust_budget
	// contra a plataforma. Alertas e aprovações nunca são auto-executados.
	AutoActionsEnabled bool `mapstructure:"engine_auto_actions_enabled"`
}

type DecisionCycle struct {
	CronSchedule        string `mapstructure:"decision_cycle_cron"`
	MaxConcurrentJobs   int    `mapstructure:"decision_cycle_max_concurrent_jobs"`
	RequestDelaySeconds int    `mapstructure:"decision_cycle_request_delay_seconds"`
	LookbackHours       int    `mapstructure:"decision_cycle_lookback_hours"`
	Enabled             bool   `mapstructure:"decision_cycle_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/guardian")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("META_BASE_URL", "https://graph.facebook.com")
	viper.SetDefault("META_VERSION", "v22.0")
	viper.SetDefault("META_ACCESS_TOKEN", "your_access_token") // ONLY LOCAL

	viper.SetDefault("AUTH_SECRET", "your_auth_secret")

	// Pesos 40/30/20/10 herdados da operação manual
	viper.SetDefault("ENGINE_WEIGHT_FINANCIAL", 0.4)
	viper.SetDefault("ENGINE_WEIGHT_PERFORMANCE", 0.3)
	viper.SetDefault("ENGINE_WEIGHT_OPERATIONAL", 0.2)
	viper.SetDefault("ENGINE_WEIGHT_MARKET", 0.1)

	viper.SetDefault("ENGINE_TARGET_ROAS", 2.0)
	viper.SetDefault("ENGINE_BUDGET_UTILIZATION_WARN", 80.0)
	viper.SetDefault("ENGINE_BUDGET_UTILIZATION_LIMIT", 95.0)

	viper.SetDefault("ENGINE_MIN_CTR", 0.8)
	viper.SetDefault("ENGINE_MAX_FREQUENCY", 3.0)
	viper.SetDefault("ENGINE_MIN_QUALITY_SCORE", 6.0)

	viper.SetDefault("ENGINE_STALE_AFTER_DAYS", 30)

	viper.SetDefault("ENGINE_MEDIUM_RISK_SCORE", 40.0)
	viper.SetDefault("ENGINE_HIGH_RISK_SCORE", 70.0)
	viper.SetDefault("ENGINE_CRITICAL_RISK_SCORE", 85.0)

	viper.SetDefault("ENGINE_RULES_FILE", "")
	viper.SetDefault("ENGINE_AUTO_ACTIONS_ENABLED", false) // Liberar ações automáticas

	// Defaults do ciclo de avaliação
	viper.SetDefault("DECISION_CYCLE_CRON", "0 * * * *")        // A cada hora
	viper.SetDefault("DECISION_CYCLE_MAX_CONCURRENT_JOBS", 3)   // 3 entidades em paralelo
	viper.SetDefault("DECISION_CYCLE_REQUEST_DELAY_SECONDS", 2) // 2 segundos entre requisições
	viper.SetDefault("DECISION_CYCLE_LOOKBACK_HOURS", 24)       // Janela de 24 horas
	viper.SetDefault("DECISION_CYCLE_ENABLED", false)           // Habilitar ciclo agendado

	viper.SetDefault("LOG_LEVEL", "debug")
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
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
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

	config.Meta.URL = fmt.Sprintf("%s/%s", config.Meta.BaseURL, config.Meta.Version)

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
	// Obter diretório atual
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../.env"),            // Diretório acima
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
