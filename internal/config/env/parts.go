package envconfig

import "github.com/caarlos0/env/v11"

type partsEnv struct {
	StorageDriver string `env:"STORAGE_DRIVER" envDefault:"mongo"`
	LegacyCreate  bool   `env:"PARTS_LEGACY_CREATE" envDefault:"false"`
	FixturesPath  string `env:"PARTS_FIXTURES_PATH"`
	Bootstrap     bool   `env:"PARTS_BOOTSTRAP" envDefault:"false"`
}

type parts struct {
	raw partsEnv
}

func NewPartsConfig() (*parts, error) {
	var raw partsEnv
	if err := env.Parse(&raw); err != nil {
		return nil, err
	}
	return &parts{raw: raw}, nil
}

func (cfg *parts) StorageDriver() string { return cfg.raw.StorageDriver }
func (cfg *parts) LegacyCreate() bool    { return cfg.raw.LegacyCreate }
func (cfg *parts) FixturesPath() string  { return cfg.raw.FixturesPath }
func (cfg *parts) Bootstrap() bool       { return cfg.raw.Bootstrap }
