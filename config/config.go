package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const defaultPath = "."

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port int `json:"port" yaml:"port"`

		Timeouts struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	// Recommend holds the tuning knobs of the ranking engines.
	Recommend *RecommendConfig `json:"recommend" yaml:"recommend"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// RecommendConfig defines the tunable thresholds of the recommendation
// engines. Zero values are replaced with the platform defaults so a
// missing section still yields a working configuration.
type RecommendConfig struct {
	// MinReviews is the default review-count floor for popularity
	// ranking. It doubles as the shrinkage constant of the popularity
	// score.
	MinReviews int `json:"minReviews" yaml:"minReviews"`

	// TrendingDaysBack is the default trending window in days.
	TrendingDaysBack int `json:"trendingDaysBack" yaml:"trendingDaysBack"`

	// TrendingMinReviews is the minimum review count inside the trending
	// window for a book to qualify.
	TrendingMinReviews int `json:"trendingMinReviews" yaml:"trendingMinReviews"`

	// ProfileMinRating is the lowest rating that counts as a genre
	// preference signal when deriving a taste profile.
	ProfileMinRating int `json:"profileMinRating" yaml:"profileMinRating"`

	// ProfileMaxGenres caps the number of favorite genres in a profile.
	ProfileMaxGenres int `json:"profileMaxGenres" yaml:"profileMaxGenres"`

	// GenreShare is the fraction of a personal recommendation list drawn
	// from the user's favorite genres; the rest comes from collaborative
	// filtering and popular backfill.
	GenreShare float64 `json:"genreShare" yaml:"genreShare"`

	// NeighborMinShared is the minimum number of co-rated books before
	// another user counts as a neighbor.
	NeighborMinShared int `json:"neighborMinShared" yaml:"neighborMinShared"`

	// NeighborLimit caps how many neighbors feed the collaborative step.
	NeighborLimit int `json:"neighborLimit" yaml:"neighborLimit"`

	// MinEndorsements is the minimum number of distinct neighbors that
	// must have high-rated a book before it becomes a candidate.
	MinEndorsements int `json:"minEndorsements" yaml:"minEndorsements"`

	// EndorsementMinRating is the lowest neighbor rating that counts as
	// an endorsement.
	EndorsementMinRating int `json:"endorsementMinRating" yaml:"endorsementMinRating"`
}

// Default recommendation thresholds, matching the platform's API defaults.
const (
	defaultMinReviews           = 5
	defaultTrendingDaysBack     = 30
	defaultTrendingMinReviews   = 3
	defaultProfileMinRating     = 4
	defaultProfileMaxGenres     = 5
	defaultGenreShare           = 0.6
	defaultNeighborMinShared    = 2
	defaultNeighborLimit        = 10
	defaultMinEndorsements      = 2
	defaultEndorsementMinRating = 4
)

// applyDefaults fills zero values with the platform defaults.
func (cfg *RecommendConfig) applyDefaults() {
	if cfg.MinReviews <= 0 {
		cfg.MinReviews = defaultMinReviews
	}
	if cfg.TrendingDaysBack <= 0 {
		cfg.TrendingDaysBack = defaultTrendingDaysBack
	}
	if cfg.TrendingMinReviews <= 0 {
		cfg.TrendingMinReviews = defaultTrendingMinReviews
	}
	if cfg.ProfileMinRating <= 0 {
		cfg.ProfileMinRating = defaultProfileMinRating
	}
	if cfg.ProfileMaxGenres <= 0 {
		cfg.ProfileMaxGenres = defaultProfileMaxGenres
	}
	if cfg.GenreShare <= 0 || cfg.GenreShare > 1 {
		cfg.GenreShare = defaultGenreShare
	}
	if cfg.NeighborMinShared <= 0 {
		cfg.NeighborMinShared = defaultNeighborMinShared
	}
	if cfg.NeighborLimit <= 0 {
		cfg.NeighborLimit = defaultNeighborLimit
	}
	if cfg.MinEndorsements <= 0 {
		cfg.MinEndorsements = defaultMinEndorsements
	}
	if cfg.EndorsementMinRating <= 0 {
		cfg.EndorsementMinRating = defaultEndorsementMinRating
	}
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
			// Example: POSTGRES_SSLMODE -> postgres.sslMode (not postgres.sslmode)
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

	if cfg.Recommend == nil {
		cfg.Recommend = &RecommendConfig{}
	}
	cfg.Recommend.applyDefaults()

	// Build replicas from environment variables (POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, etc.)
	cfg.Postgres.Replicas = buildReplicasFromEnv()

	return cfg, nil
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

// buildReplicasFromEnv builds the replicas slice from environment variables.
// Environment variable format: POSTGRES_REPLICAS_{index}_{field}
// Example: POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, POSTGRES_REPLICAS_0_USERNAME, POSTGRES_REPLICAS_0_PASSWORD
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			// No more replicas or incomplete configuration.
			break
		}

		replica := postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		}

		replicas = append(replicas, replica)
	}

	return replicas
}
