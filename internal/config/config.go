package config

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	Port     string `json:"port"`
	EnumsDir string `json:"enumsDir"`
	GinMode  string `json:"ginMode"` // debug | release | test
	// FailFast: инициализировать все семейства при старте и падать
	// на первой ошибке, а не при первом поиске
	FailFast bool `json:"failFast"`
}

func def() Config {
	return Config{
		Port:     "8080",
		EnumsDir: "reference/enums",
		GinMode:  "release",
		FailFast: true,
	}
}

func loadJSON(path string) (Config, error) {
	c := def()
	b, err := os.ReadFile(path)
	if err != nil {
		return c, err
	}
	if err := json.Unmarshal(b, &c); err != nil {
		return c, err
	}
	return c, nil
}

func getenv(k, fallback string) string {
	if v, ok := os.LookupEnv(k); ok && strings.TrimSpace(v) != "" {
		return v
	}
	return fallback
}

func parseBool(v string, fallback bool) bool {
	switch strings.TrimSpace(strings.ToLower(v)) {
	case "1", "true", "yes":
		return true
	case "0", "false", "no":
		return false
	}
	return fallback
}

func getenvBool(k string, fallback bool) bool {
	if v, ok := os.LookupEnv(k); ok {
		return parseBool(v, fallback)
	}
	return fallback
}

// Load читает JSON по указанному пути, потом применяет ENV и флаги из args.
// Флаг -config с другим путём перечитывает всё заново.
func Load(jsonPath string, args []string) (Config, error) {
	cfg := def()

	// JSON (если файл существует)
	if st, err := os.Stat(jsonPath); err == nil && !st.IsDir() {
		c2, err := loadJSON(jsonPath)
		if err != nil {
			return cfg, err
		}
		cfg = c2
	}

	// ENV overrides
	cfg.Port = getenv("SMARTENUM_PORT", cfg.Port)
	cfg.EnumsDir = getenv("SMARTENUM_ENUMS_DIR", cfg.EnumsDir)
	cfg.GinMode = getenv("SMARTENUM_GIN_MODE", cfg.GinMode)
	cfg.FailFast = getenvBool("SMARTENUM_FAIL_FAST", cfg.FailFast)

	// Flags overrides
	fs := flag.NewFlagSet("smartenum", flag.ContinueOnError)
	configPath := fs.String("config", jsonPath, "Path to config JSON")
	port := fs.String("port", cfg.Port, "HTTP port")
	enums := fs.String("enums", cfg.EnumsDir, "Path to enums directory")
	mode := fs.String("gin-mode", cfg.GinMode, "gin mode (debug/release/test)")
	failFast := fs.String("fail-fast", strconv.FormatBool(cfg.FailFast), "Validate all families at startup (true/false)")

	if err := fs.Parse(args); err != nil {
		return cfg, err
	}

	// Если через флаг передали другой конфиг — перечитаем
	if *configPath != jsonPath {
		return Load(*configPath, args)
	}

	cfg.Port = strings.TrimSpace(*port)
	cfg.EnumsDir = strings.TrimSpace(*enums)
	cfg.GinMode = strings.TrimSpace(*mode)
	cfg.FailFast = parseBool(*failFast, cfg.FailFast)

	// gin.SetMode паникует на неизвестном режиме — отсекаем здесь
	switch cfg.GinMode {
	case "debug", "release", "test":
	default:
		return cfg, fmt.Errorf("config: unknown gin mode %q (allowed: debug|release|test)", cfg.GinMode)
	}
	return cfg, nil
}
