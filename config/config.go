package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

const (
	defaultPath = "."

	defaultWeeklyLimit   = 3
	defaultResetInterval = 7 * 24 * time.Hour

	defaultMaxEdge           = 800
	defaultSoftLimitBytes    = 2 << 20
	defaultHardLimitBytes    = 3 << 20
	defaultFirstPassQuality  = 85
	defaultSecondPassQuality = 60
	defaultSecondPassMaxEdge = 640

	defaultOutboundTimeout = 20 * time.Second
	defaultMaxResponseSize = 1 << 20

	defaultLocalHistoryLimit = 50
	defaultLocalStoreURL     = "file://./data?create_dir=true"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port     int `json:"port" yaml:"port"`
		Timeouts struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	SecretKey struct {
		Access string `json:"access" yaml:"access"`
	} `json:"secretKey" yaml:"secretKey"`

	// Entitlement configuration for the weekly scan quota
	Entitlement *EntitlementConfig `json:"entitlement" yaml:"entitlement"`

	// Packager configuration for the image packaging pipeline
	Packager *PackagerConfig `json:"packager" yaml:"packager"`

	// Analysis configuration for the remote analysis collaborator
	Analysis *AnalysisConfig `json:"analysis" yaml:"analysis"`

	// Billing configuration for the purchase verification collaborator
	Billing *BillingConfig `json:"billing" yaml:"billing"`

	// History configuration for the scan history stores
	History *HistoryConfig `json:"history" yaml:"history"`

	// LocalStore configuration for the device-local blob store
	LocalStore *LocalStoreConfig `json:"localStore" yaml:"localStore"`

	// Firebase configuration for the authenticated remote store
	Firebase *FirebaseConfig `json:"firebase" yaml:"firebase"`

	// PubSub configuration for scan-completed event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// EntitlementConfig defines the weekly quota parameters.
type EntitlementConfig struct {
	WeeklyLimit   uint          `json:"weeklyLimit" yaml:"weeklyLimit"`
	ResetInterval time.Duration `json:"resetInterval" yaml:"resetInterval"`
}

// PackagerConfig defines the image packaging thresholds. The soft limit is the
// target of the aggressive second pass; the hard limit is the wire ceiling.
type PackagerConfig struct {
	MaxEdge           int `json:"maxEdge" yaml:"maxEdge"`
	SoftLimitBytes    int `json:"softLimitBytes" yaml:"softLimitBytes"`
	HardLimitBytes    int `json:"hardLimitBytes" yaml:"hardLimitBytes"`
	FirstPassQuality  int `json:"firstPassQuality" yaml:"firstPassQuality"`
	SecondPassQuality int `json:"secondPassQuality" yaml:"secondPassQuality"`
	SecondPassMaxEdge int `json:"secondPassMaxEdge" yaml:"secondPassMaxEdge"`
}

// AnalysisConfig defines the remote analysis service client settings.
type AnalysisConfig struct {
	Endpoint        string        `json:"endpoint" yaml:"endpoint"`
	Timeout         time.Duration `json:"timeout" yaml:"timeout"`
	MaxResponseSize int64         `json:"maxResponseSize" yaml:"maxResponseSize"`
}

// BillingConfig defines the billing verifier client settings.
type BillingConfig struct {
	Endpoint        string        `json:"endpoint" yaml:"endpoint"`
	Timeout         time.Duration `json:"timeout" yaml:"timeout"`
	ClaimSigningKey string        `json:"claimSigningKey" yaml:"claimSigningKey"`
}

// HistoryConfig defines scan history bounds.
type HistoryConfig struct {
	// LocalLimit bounds the anonymous local history; oldest records beyond it are evicted.
	LocalLimit int `json:"localLimit" yaml:"localLimit"`
}

// LocalStoreConfig defines the device-local blob store location.
type LocalStoreConfig struct {
	// URL is a gocloud.dev blob URL, e.g. file://./data or gs://bucket.
	URL string `json:"url" yaml:"url"`
}

// FirebaseConfig defines Firebase settings for the authenticated remote store.
type FirebaseConfig struct {
	ProjectID       string `json:"projectId" yaml:"projectId"`
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing.
type PubSubConfig struct {
	// Provider type: "local" for local HTTP or "google" for Google Pub/Sub
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	// Try to find and load the config file
	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	// Load YAML config file
	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: PACKAGER_MAXEDGE -> packager.maxEdge (not packager.maxedge)
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	// Unmarshal into the config struct (case-insensitive to match env vars)
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching for env var overrides
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	applyDefaults(cfg)

	return cfg, nil
}

// applyDefaults fills in zero-valued tunables with product defaults.
func applyDefaults(cfg *Config) {
	if cfg.Entitlement == nil {
		cfg.Entitlement = &EntitlementConfig{}
	}
	if cfg.Entitlement.WeeklyLimit == 0 {
		cfg.Entitlement.WeeklyLimit = defaultWeeklyLimit
	}
	if cfg.Entitlement.ResetInterval == 0 {
		cfg.Entitlement.ResetInterval = defaultResetInterval
	}

	if cfg.Packager == nil {
		cfg.Packager = &PackagerConfig{}
	}
	if cfg.Packager.MaxEdge == 0 {
		cfg.Packager.MaxEdge = defaultMaxEdge
	}
	if cfg.Packager.SoftLimitBytes == 0 {
		cfg.Packager.SoftLimitBytes = defaultSoftLimitBytes
	}
	if cfg.Packager.HardLimitBytes == 0 {
		cfg.Packager.HardLimitBytes = defaultHardLimitBytes
	}
	if cfg.Packager.FirstPassQuality == 0 {
		cfg.Packager.FirstPassQuality = defaultFirstPassQuality
	}
	if cfg.Packager.SecondPassQuality == 0 {
		cfg.Packager.SecondPassQuality = defaultSecondPassQuality
	}
	if cfg.Packager.SecondPassMaxEdge == 0 {
		cfg.Packager.SecondPassMaxEdge = defaultSecondPassMaxEdge
	}

	if cfg.Analysis == nil {
		cfg.Analysis = &AnalysisConfig{}
	}
	if cfg.Analysis.Timeout == 0 {
		cfg.Analysis.Timeout = defaultOutboundTimeout
	}
	if cfg.Analysis.MaxResponseSize == 0 {
		cfg.Analysis.MaxResponseSize = defaultMaxResponseSize
	}

	if cfg.Billing == nil {
		cfg.Billing = &BillingConfig{}
	}
	if cfg.Billing.Timeout == 0 {
		cfg.Billing.Timeout = defaultOutboundTimeout
	}

	if cfg.History == nil {
		cfg.History = &HistoryConfig{}
	}
	if cfg.History.LocalLimit == 0 {
		cfg.History.LocalLimit = defaultLocalHistoryLimit
	}

	if cfg.LocalStore == nil {
		cfg.LocalStore = &LocalStoreConfig{}
	}
	if strings.TrimSpace(cfg.LocalStore.URL) == "" {
		cfg.LocalStore.URL = defaultLocalStoreURL
	}
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}
