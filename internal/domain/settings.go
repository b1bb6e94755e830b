package domain

import "fmt"

// Bounds for Settings.MaxSynonyms.
const (
	MinSynonyms = 3
	MaxSynonyms = 20
)

// Settings is a read-only snapshot of the user's lookup policy.
// It is owned by the host and never mutated by the resolver.
//
// Fields that default to true carry no env-default: cleanenv would apply it
// over an explicit false. Start from DefaultSettings instead.
type Settings struct {
	EnableOnlineLookup        bool      `yaml:"enable_online_lookup"         env:"SYNONYMS_ENABLE_ONLINE_LOOKUP"`
	APISource                 APISource `yaml:"api_source"                   env:"SYNONYMS_API_SOURCE"                   env-default:"svenskaSe"`
	APIKey                    string    `yaml:"api_key"                      env:"SYNONYMS_API_KEY"`
	MaxSynonyms               int       `yaml:"max_synonyms"                 env:"SYNONYMS_MAX_SYNONYMS"                 env-default:"10"`
	FallbackToLocalDictionary bool      `yaml:"fallback_to_local_dictionary" env:"SYNONYMS_FALLBACK_TO_LOCAL_DICTIONARY"`
	AlwaysTryOnline           bool      `yaml:"always_try_online"            env:"SYNONYMS_ALWAYS_TRY_ONLINE"            env-default:"false"`
}

// DefaultSettings returns the settings a fresh installation starts with.
func DefaultSettings() Settings {
	return Settings{
		EnableOnlineLookup:        true,
		APISource:                 APISourceSvenskaSe,
		MaxSynonyms:               10,
		FallbackToLocalDictionary: true,
		AlwaysTryOnline:           false,
	}
}

// Validate checks that every field holds a recognized value.
func (s Settings) Validate() error {
	var errs []FieldError
	if s.MaxSynonyms < MinSynonyms || s.MaxSynonyms > MaxSynonyms {
		errs = append(errs, FieldError{
			Field:   "max_synonyms",
			Message: fmt.Sprintf("must be between %d and %d (got %d)", MinSynonyms, MaxSynonyms, s.MaxSynonyms),
		})
	}
	if !s.APISource.IsValid() {
		errs = append(errs, FieldError{
			Field:   "api_source",
			Message: fmt.Sprintf("unknown source %q", s.APISource),
		})
	}
	if len(errs) > 0 {
		return NewValidationErrors(errs)
	}
	return nil
}
