package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/bnema/clickup-cli/internal/adapters/clickup"
	credfile "github.com/bnema/clickup-cli/internal/adapters/credentials/file"
	"github.com/bnema/clickup-cli/internal/adapters/output"
	"github.com/bnema/clickup-cli/internal/application"
	"github.com/bnema/clickup-cli/internal/ports"
	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	settingsBaseURL  = "api.base_url"
	settingsEnvToken = "api.token"
	settingsLogLevel = "log.level"
	settingsOutput   = "output.format"

	settingsFileName = "settings"
	settingsFileType = "toml"
	envPrefix        = "CLICKUP"

	defaultLogLevel = "warn"
	requestTimeout  = 30 * time.Second
)

type app struct {
	settings   *viper.Viper
	logger     *log.Logger
	store      *credfile.Store
	service    *application.Service
	format     output.Format
	token      string
	asJSON     bool
	httpClient *http.Client
	now        func() time.Time
}

// newSettings binds the settings keys to CLICKUP_* environment variables,
// e.g. api.base_url to CLICKUP_API_BASE_URL.
func newSettings() *viper.Viper {
	settings := viper.New()
	settings.SetConfigName(settingsFileName)
	settings.SetConfigType(settingsFileType)
	settings.SetEnvPrefix(envPrefix)
	settings.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	settings.AutomaticEnv()

	settings.SetDefault(settingsBaseURL, clickup.DefaultBaseURL)
	settings.SetDefault(settingsLogLevel, defaultLogLevel)
	settings.SetDefault(settingsOutput, string(output.FormatText))

	return settings
}

func newApp() *app {
	return &app{
		settings:   newSettings(),
		httpClient: &http.Client{Timeout: requestTimeout},
		now:        time.Now,
	}
}

// wire runs once flags are parsed. It must not touch the network.
func (a *app) wire(cmd *cobra.Command) error {
	if err := loadDotEnv(); err != nil {
		return err
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("resolve home directory: %w", err)
	}
	a.settings.AddConfigPath(filepath.Join(homeDir, credfile.ConfigDirName))
	if err := a.settings.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("read settings: %w", err)
		}
	}

	level, err := log.ParseLevel(a.settings.GetString(settingsLogLevel))
	if err != nil {
		return fmt.Errorf("parse log level: %w", err)
	}
	a.logger = log.NewWithOptions(cmd.ErrOrStderr(), log.Options{
		Level:  level,
		Prefix: "clickup",
	})

	a.format, err = output.ParseFormat(a.settings.GetString(settingsOutput))
	if err != nil {
		return err
	}
	if a.asJSON {
		a.format = output.FormatJSON
	}

	a.store, err = credfile.NewStore(a.settings, a.logger)
	if err != nil {
		return fmt.Errorf("wire credential store: %w", err)
	}

	a.service = application.NewService(a.store, a.newClient, a.settings.GetString(settingsEnvToken))
	a.logger.Debug("wired", "config", a.store.Path(), "base_url", a.settings.GetString(settingsBaseURL))

	return nil
}

func (a *app) newClient(token string) (ports.ClickUp, error) {
	client, err := clickup.NewClient(clickup.Config{
		AccessToken: token,
		BaseURL:     a.settings.GetString(settingsBaseURL),
		HTTPClient:  a.httpClient,
		Logger:      a.logger,
	})
	if err != nil {
		return nil, err
	}
	return client, nil
}

// loadDotEnv reads ./.env without overriding variables that are already set.
func loadDotEnv() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load .env: %w", err)
	}
	return nil
}
