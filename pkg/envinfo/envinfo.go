// Package envinfo exposes facts about the running process and host.
// Lookups that can fail return an ex.Result and are cached for Config.CacheTTL.
package envinfo

import (
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/zeebo/errs"

	"github.com/ib-77/ex/internal/config"
	"github.com/ib-77/ex/pkg/ex"
)

const (
	keyAppDirectory    = "app_directory"
	keyConfigDirectory = "config_directory"
	keyHostname        = "hostname"

	defaultCacheTTL = 5 * time.Minute
)

type Config struct {
	Environment string        `env:"GO_ENVIRONMENT" envDefault:"development"`
	AppName     string        `env:"EX_APP_NAME"`
	// CacheTTL <= 0 falls back to five minutes.
	CacheTTL    time.Duration `env:"EX_CACHE_TTL" envDefault:"5m"`
}

// LoadConfig reads Config from the environment. An empty AppName falls back to
// the executable's base name.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := config.ParseEnv(&cfg); err != nil {
		return cfg, err
	}
	if cfg.AppName == "" && len(os.Args) > 0 {
		cfg.AppName = filepath.Base(os.Args[0])
	}
	return cfg, nil
}

type inMemoryCache interface {
	Set(k string, v any, t time.Duration)
	Get(k string) (any, bool)
	Delete(k string)
}

type Service struct {
	Config Config

	once  sync.Once
	cache inMemoryCache

	executable func() (string, error)
	configDir  func() (string, error)
	hostname   func() (string, error)
	now        func() time.Time
}

func New(cfg Config) *Service {
	return &Service{
		Config:     cfg,
		executable: os.Executable,
		configDir:  os.UserConfigDir,
		hostname:   os.Hostname,
		now:        time.Now,
	}
}

func (s *Service) init() {
	s.once.Do(func() {
		if s.cache == nil {
			s.cache = cache.New(s.cacheTTL(), 2*s.cacheTTL())
		}
	})
}

// Args returns the command-line arguments without the program name.
func (s *Service) Args() []string {
	if len(os.Args) < 2 {
		return []string{}
	}
	return append([]string{}, os.Args[1:]...)
}

func (s *Service) AppName() string {
	return s.Config.AppName
}

// AppDirectory is the directory holding the running executable.
func (s *Service) AppDirectory() ex.Result[string] {
	return s.cached(keyAppDirectory, func() (string, error) {
		exe, err := s.executable()
		if err != nil {
			return "", errs.Wrap(err)
		}
		return filepath.Dir(exe), nil
	})
}

// ConfigDirectory is the per-user configuration directory for this
// application, <user config dir>/<AppName>. It is not created.
func (s *Service) ConfigDirectory() ex.Result[string] {
	return s.cached(keyConfigDirectory, func() (string, error) {
		dir, err := s.configDir()
		if err != nil {
			return "", errs.Wrap(err)
		}
		return filepath.Join(dir, s.Config.AppName), nil
	})
}

func (s *Service) Hostname() ex.Result[string] {
	return s.cached(keyHostname, func() (string, error) {
		h, err := s.hostname()
		if err != nil {
			return "", errs.Wrap(err)
		}
		return h, nil
	})
}

// Forget drops every cached lookup.
func (s *Service) Forget() {
	s.init()
	for _, k := range []string{keyAppDirectory, keyConfigDirectory, keyHostname} {
		s.cache.Delete(k)
	}
}

func (s *Service) Now() time.Time {
	return s.now()
}

func (s *Service) UTCNow() time.Time {
	return s.now().UTC()
}

func (s *Service) NumCPU() int {
	return runtime.NumCPU()
}

func (s *Service) IsLinux() bool {
	return runtime.GOOS == "linux"
}

func (s *Service) IsWindows() bool {
	return runtime.GOOS == "windows"
}

func (s *Service) IsMacOS() bool {
	return runtime.GOOS == "darwin"
}

// RuntimeIdentifier is "<os>-<arch>", e.g. linux-amd64.
func (s *Service) RuntimeIdentifier() string {
	return runtime.GOOS + "-" + runtime.GOARCH
}

func (s *Service) Environment() string {
	return s.Config.Environment
}

func (s *Service) IsProduction() bool {
	return s.Config.Environment == "production"
}

func (s *Service) cacheTTL() time.Duration {
	if s.Config.CacheTTL <= 0 {
		return defaultCacheTTL
	}
	return s.Config.CacheTTL
}

// Only successful lookups are cached.
func (s *Service) cached(key string, lookup func() (string, error)) ex.Result[string] {
	s.init()

	if v, ok := s.cache.Get(key); ok {
		if res, ok := v.(ex.Result[string]); ok {
			return res
		}
	}

	res := ex.OfErr(lookup)
	if res.IsSuccess() {
		s.cache.Set(key, res, cache.DefaultExpiration)
	}
	return res
}
