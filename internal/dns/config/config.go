package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"

	"github.com/haukened/rr-wire/internal/dns/dnssec"
)

// AppConfig holds configuration values parsed from environment variables.
type AppConfig struct {
	// Env is the runtime environment, either "dev" or "prod".
	Env string `koanf:"env" validate:"required,oneof=dev prod"`

	// LogLevel controls log verbosity: "debug", "info", "warn", or "error".
	LogLevel string `koanf:"log_level" validate:"required,oneof=debug info warn error"`

	// KeystorePath is the Bolt database holding generated signing keys.
	KeystorePath string `koanf:"keystore_path" validate:"required"`

	// Algorithm is the default signing algorithm mnemonic for keygen.
	Algorithm string `koanf:"algorithm" validate:"required,dnssec_alg"`

	// DigestType is the default DS digest type: 1 (SHA-1), 2 (SHA-256),
	// 3 (GOST 94), or 4 (SHA-384).
	DigestType uint8 `koanf:"digest_type" validate:"required,gte=1,lte=4"`

	// AnchorCache is the trust-anchor verdict cache capacity; 0 disables it.
	AnchorCache int `koanf:"anchor_cache" validate:"gte=0"`
}

// DEFAULT_APP_CONFIG defines the default settings for the key tool: a
// production environment, Ed25519 keys, SHA-256 DS digests, and the
// standard keystore location.
var DEFAULT_APP_CONFIG = AppConfig{
	Env:          "prod",
	LogLevel:     "info",
	KeystorePath: "/var/lib/rr-wire/keys.db",
	Algorithm:    "ED25519",
	DigestType:   2,
	AnchorCache:  1024,
}

// validAlgorithm validates that the field names a DNSSEC algorithm this
// build can generate keys for.
func validAlgorithm(fl validator.FieldLevel) bool {
	alg, ok := dnssec.AlgorithmFromString[strings.ToUpper(fl.Field().String())]
	if !ok {
		return false
	}
	switch alg {
	case dnssec.AlgRSASHA1, dnssec.AlgRSASHA1NSEC3SHA1, dnssec.AlgRSASHA256, dnssec.AlgRSASHA512,
		dnssec.AlgECDSAP256SHA256, dnssec.AlgECDSAP384SHA384, dnssec.AlgED25519, dnssec.AlgED448:
		return true
	default:
		return false
	}
}

// envLoader loads environment variables with the prefix "RRW_",
// lowercasing keys and trimming the prefix. It can be mocked in tests.
var envLoader = func(k *koanf.Koanf) error {
	return k.Load(env.Provider(".", env.Opt{
		Prefix: "RRW_",
		TransformFunc: func(key, value string) (string, any) {
			key = strings.ToLower(strings.TrimPrefix(key, "RRW_"))
			return key, strings.TrimSpace(value)
		},
	}), nil)
}

// defaultLoader loads default configuration values into the provided Koanf
// instance using the structs provider.
var defaultLoader = func(k *koanf.Koanf) error {
	return k.Load(structs.Provider(DEFAULT_APP_CONFIG, "koanf"), nil)
}

// registerValidation associates the "dnssec_alg" tag with validAlgorithm.
var registerValidation = func(v *validator.Validate) error {
	return v.RegisterValidation("dnssec_alg", validAlgorithm)
}

// Load parses environment variables and returns an AppConfig instance.
// It applies default values and runs validation automatically.
func Load() (*AppConfig, error) {
	k := koanf.New(".")

	err := defaultLoader(k)
	if err != nil {
		return nil, fmt.Errorf("error loading default config: %w", err)
	}

	err = envLoader(k)
	if err != nil {
		return nil, fmt.Errorf("error loading env: %w", err)
	}

	var cfg AppConfig
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	validate := validator.New(validator.WithRequiredStructEnabled())
	err = registerValidation(validate)
	if err != nil {
		return nil, fmt.Errorf("error registering validation: %w", err)
	}

	err = validate.Struct(&cfg)
	if err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	return &cfg, nil
}

// AlgorithmNumber resolves the configured algorithm mnemonic.
func (c *AppConfig) AlgorithmNumber() uint8 {
	return dnssec.AlgorithmFromString[strings.ToUpper(c.Algorithm)]
}
