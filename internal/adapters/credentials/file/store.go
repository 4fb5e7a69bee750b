package file

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/bnema/clickup-cli/internal/domain"
	"github.com/bnema/clickup-cli/internal/ports"
	"github.com/charmbracelet/log"
	"github.com/spf13/viper"
)

const (
	CredentialsPathKey = "credentials.path"
	ConfigDirName      = ".clickup-cli"
	ConfigFileName     = "config.json"

	credentialsFileMode = 0o600
	credentialsDirMode  = 0o700
	tempFilePattern     = ".config-*.json.tmp"
)

// document is the whole on-disk JSON object. Keys the domain type does not
// know about survive a read-modify-write cycle.
type document map[string]json.RawMessage

type Store struct {
	path   string
	logger *log.Logger
	mu     *sync.RWMutex
}

var (
	lockRegistryMu sync.Mutex
	pathLockMap    = map[string]*sync.RWMutex{}
)

var _ ports.CredentialStore = (*Store)(nil)

// NewStore resolves the credentials path from cfg (falling back to
// ~/.clickup-cli/config.json) and makes sure its directory exists.
func NewStore(cfg *viper.Viper, logger *log.Logger) (*Store, error) {
	if cfg == nil {
		cfg = viper.New()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	path := cfg.GetString(CredentialsPathKey)
	if path == "" {
		defaultPath, err := DefaultPath()
		if err != nil {
			return nil, err
		}
		path = defaultPath
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve credentials path: %w", err)
	}
	absPath = filepath.Clean(absPath)

	store := &Store{path: absPath, logger: logger, mu: lockForPath(absPath)}
	if err := store.EnsureDir(); err != nil {
		return nil, err
	}

	return store, nil
}

func DefaultPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(homeDir, ConfigDirName, ConfigFileName), nil
}

func (s *Store) Path() string {
	return s.path
}

func (s *Store) EnsureDir() error {
	if err := os.MkdirAll(filepath.Dir(s.path), credentialsDirMode); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	return nil
}

// Load never fails on a missing or corrupt file; both read as an empty
// document. Only a cancelled context is reported.
func (s *Store) Load(ctx context.Context) (domain.Credentials, error) {
	if err := ctx.Err(); err != nil {
		return domain.Credentials{}, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	data, ok := s.readFile()
	if !ok {
		return domain.Credentials{}, nil
	}

	var creds domain.Credentials
	if err := json.Unmarshal(data, &creds); err != nil {
		s.logger.Warn("failed to load config, using empty config", "path", s.path, "err", err)
		return domain.Credentials{}, nil
	}

	return creds, nil
}

func (s *Store) Save(ctx context.Context, creds domain.Credentials) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.write(creds)
}

// Update is a shallow merge: keys present in the patch overwrite (an empty
// value removes the key), everything else is kept as stored.
func (s *Store) Update(ctx context.Context, patch domain.CredentialsPatch) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	doc := s.readDocument()
	for key, value := range patch.Fields() {
		if *value == "" {
			delete(doc, string(key))
			continue
		}
		encoded, err := json.Marshal(*value)
		if err != nil {
			return fmt.Errorf("encode %s: %w", key, err)
		}
		doc[string(key)] = encoded
	}

	return s.write(doc)
}

func (s *Store) Get(ctx context.Context, key domain.CredentialKey) (string, error) {
	creds, err := s.Load(ctx)
	if err != nil {
		return "", err
	}
	return creds.Value(key)
}

func (s *Store) Set(ctx context.Context, key domain.CredentialKey, value string) error {
	patch, err := domain.PatchFor(key, value)
	if err != nil {
		return err
	}
	return s.Update(ctx, patch)
}

func (s *Store) Unset(ctx context.Context, key domain.CredentialKey) error {
	return s.Set(ctx, key, "")
}

func (s *Store) readFile() ([]byte, bool) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			s.logger.Warn("failed to read config, using empty config", "path", s.path, "err", err)
		}
		return nil, false
	}
	return data, true
}

func (s *Store) readDocument() document {
	doc := document{}

	data, ok := s.readFile()
	if !ok {
		return doc
	}
	if err := json.Unmarshal(data, &doc); err != nil || doc == nil {
		if err != nil {
			s.logger.Warn("failed to load config, using empty config", "path", s.path, "err", err)
		}
		return document{}
	}

	return doc
}

func (s *Store) write(value any) error {
	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return fmt.Errorf("encode config file: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), credentialsDirMode); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	tempFile, err := os.CreateTemp(filepath.Dir(s.path), tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp config file: %w", err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp config file: %w", err)
	}

	if err := tempFile.Chmod(credentialsFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp config file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp config file: %w", err)
	}

	if err := os.Rename(tempName, s.path); err != nil {
		return fmt.Errorf("replace config file: %w", err)
	}

	cleanup = false
	return nil
}

func lockForPath(path string) *sync.RWMutex {
	lockRegistryMu.Lock()
	defer lockRegistryMu.Unlock()

	if mu, ok := pathLockMap[path]; ok {
		return mu
	}

	mu := &sync.RWMutex{}
	pathLockMap[path] = mu
	return mu
}
