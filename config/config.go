package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const ENV_FILE = ".env"
const CONFIG_FILE = "config.yaml"

type AppConfig struct {
	Logging LoggingConfig `yaml:"logging"`
	Server  ServerConfig  `yaml:"server"`
	LLM     LLMConfig     `yaml:"llm"`
	History HistoryConfig `yaml:"history"`
}

type LoggingConfig struct {
	Level string `yaml:"level" env:"LOG_LEVEL"`
}

type ServerConfig struct {
	Port               int           `yaml:"port" env:"SUMMARIZER_PORT"`
	CORSAllowedOrigins []string      `yaml:"cors_allowed_origins" env:"CORS_ALLOWED_ORIGINS" envSeparator:","`
	ReadTimeout        time.Duration `yaml:"read_timeout"`
	WriteTimeout       time.Duration `yaml:"write_timeout"`
	ShutdownTimeout    time.Duration `yaml:"shutdown_timeout"`
}

// LLMConfig 는 요약에 사용하는 Gemini 모델 호출 설정이다.
type LLMConfig struct {
	Provider        string        `yaml:"provider"`
	ModelName       string        `yaml:"model_name" env:"GEMINI_MODEL"`
	APIKey          string        `yaml:"-" env:"GEMINI_API_KEY"`
	Temperature     float32       `yaml:"temperature"`
	TopP            float32       `yaml:"top_p"`
	TopK            float32       `yaml:"top_k"`
	MaxOutputTokens int32         `yaml:"max_output_tokens"`
	Timeout         time.Duration `yaml:"timeout"`
}

// HistoryConfig 는 요약 히스토리 파일 위치를 정의한다.
// 상대 경로는 config.yaml 이 위치한 디렉터리 기준으로 해석한다.
type HistoryConfig struct {
	Path string `yaml:"path" env:"HISTORY_PATH"`
}

// Addr 는 http.Server 에 넘길 listen 주소를 반환한다.
func (c ServerConfig) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// Default 는 config.yaml 이 없을 때 사용하는 기본 설정이다.
func Default() AppConfig {
	return AppConfig{
		Logging: LoggingConfig{Level: "info"},
		Server: ServerConfig{
			Port:               8000,
			CORSAllowedOrigins: []string{"*"},
			ReadTimeout:        30 * time.Second,
			WriteTimeout:       120 * time.Second,
			ShutdownTimeout:    10 * time.Second,
		},
		LLM: LLMConfig{
			Provider:        "google",
			ModelName:       "gemini-2.0-flash",
			Temperature:     0.7,
			TopP:            0.8,
			TopK:            40,
			MaxOutputTokens: 2048,
			Timeout:         90 * time.Second,
		},
		History: HistoryConfig{Path: filepath.Join("data", "summaries.json")},
	}
}

var config *AppConfig

func InitApp() {
	c, err := Load(GetBasePath())
	if err != nil {
		panic(err)
	}
	config = c
}

// Load 는 basePath 의 .env 와 config.yaml 을 읽고 환경변수로 덮어쓴 설정을 반환한다.
// config.yaml 이 없으면 기본값에 환경변수만 적용한다.
func Load(basePath string) (*AppConfig, error) {
	// .env 는 선택 사항이다.
	_ = godotenv.Load(filepath.Join(basePath, ENV_FILE))

	c := Default()
	data, err := os.ReadFile(filepath.Join(basePath, CONFIG_FILE))
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &c); err != nil {
			return nil, fmt.Errorf("parse %s: %w", CONFIG_FILE, err)
		}
	case errors.Is(err, fs.ErrNotExist):
	default:
		return nil, fmt.Errorf("read %s: %w", CONFIG_FILE, err)
	}

	if err := env.Parse(&c); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}

	if c.History.Path != "" && !filepath.IsAbs(c.History.Path) && basePath != "" {
		c.History.Path = filepath.Join(basePath, c.History.Path)
	}
	return &c, nil
}

func GetConfig() AppConfig {
	if config == nil {
		InitApp()
	}

	return *config
}

func GetBasePath() string {
	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}

	dir := cwd
	for {
		cfgPath := filepath.Join(dir, CONFIG_FILE)
		if info, err := os.Stat(cfgPath); err == nil && !info.IsDir() {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return cwd
}
