package config

import "time"

// applyDefaults fills in values that are safe to assume when no source
// provided them. Secrets and the database DSN deliberately have no default.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = ":8080"
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = 30 * time.Second
	}
	if cfg.App.TokenDuration == 0 {
		cfg.App.TokenDuration = 30 * time.Minute
	}
	if cfg.App.TokenIssuer == "" {
		cfg.App.TokenIssuer = "camtrack"
	}
	if cfg.Query.DefaultLimit == 0 {
		cfg.Query.DefaultLimit = 100
	}
}

// validate checks that the final merged [StructuredConfig] satisfies the
// invariants the application needs at startup.
//
// Returns nil if the configuration is valid, or a descriptive error
// otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.App.TokenSignKey == "" {
		return ErrInvalidAppConfigs
	}

	return nil
}
