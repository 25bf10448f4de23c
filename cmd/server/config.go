package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/rpg-skill-simulator/internal/errors"
)

// serverConfig is everything the server command needs. It comes from the
// flags, optionally layered over a YAML file.
type serverConfig struct {
	Port       int            `yaml:"port"`
	RequestIDs string         `yaml:"request_ids"`
	Catalog    catalogOptions `yaml:"catalog"`
}

// Validate checks the resolved settings
func (c *serverConfig) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Port <= 0 || c.Port > 65535 {
		vb.Field("port", "must be between 1 and 65535")
	}
	if c.RequestIDs != "ulid" && c.RequestIDs != "uuid" {
		vb.InvalidField("request_ids", "must be ulid or uuid")
	}

	switch c.Catalog.Source {
	case sourceSnapshot:
		errors.ValidateRequired("catalog.armor_snapshot", c.Catalog.ArmorSnapshot, vb)
	case sourceRedis:
		errors.ValidateRequired("catalog.redis_addr", c.Catalog.RedisAddr, vb)
	default:
		vb.InvalidField("catalog.source", "must be snapshot or redis")
	}

	return vb.Build()
}

// loadServerConfig reads a YAML server config file
func loadServerConfig(path string) (*serverConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg serverConfig
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return &cfg, nil
}

// resolveServerConfig starts from the flag values and, when a file is given,
// takes every file setting whose flag was not set on the command line.
func resolveServerConfig(path string, flagCfg *serverConfig, changed func(name string) bool) (*serverConfig, error) {
	cfg := *flagCfg
	if path != "" {
		fileCfg, err := loadServerConfig(path)
		if err != nil {
			return nil, err
		}

		overlayInt(&cfg.Port, fileCfg.Port, changed("port"))
		overlayString(&cfg.RequestIDs, fileCfg.RequestIDs, changed("request-ids"))
		overlayString(&cfg.Catalog.Source, fileCfg.Catalog.Source, changed("catalog-source"))
		overlayString(&cfg.Catalog.ArmorSnapshot, fileCfg.Catalog.ArmorSnapshot, changed("armor-snapshot"))
		overlayString(&cfg.Catalog.WeaponSnapshot, fileCfg.Catalog.WeaponSnapshot, changed("weapon-snapshot"))
		overlayString(&cfg.Catalog.SkillSnapshot, fileCfg.Catalog.SkillSnapshot, changed("skill-snapshot"))
		overlayString(&cfg.Catalog.WeaponSkillSnapshot, fileCfg.Catalog.WeaponSkillSnapshot, changed("weapon-skill-snapshot"))
		overlayString(&cfg.Catalog.RedisAddr, fileCfg.Catalog.RedisAddr, changed("redis-addr"))
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func overlayString(dst *string, fromFile string, flagSet bool) {
	if !flagSet && fromFile != "" {
		*dst = fromFile
	}
}

func overlayInt(dst *int, fromFile int, flagSet bool) {
	if !flagSet && fromFile != 0 {
		*dst = fromFile
	}
}
