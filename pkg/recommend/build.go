package recommend

import (
	"github.com/sirupsen/logrus"
)

func BuildRegistry() (*Registry, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, err
	}

	return NewRegistryFromConfig(cfg)
}

func NewRegistryFromConfig(cfg *Config) (*Registry, error) {
	validationErr := cfg.Validate()
	if validationErr.HasErrors() {
		return nil, validationErr
	}

	profiles := BuiltinProfiles()

	if cfg.ProfilesFile != "" {
		fileProfiles, err := LoadProfilesFile(cfg.ProfilesFile)
		if err != nil {
			return nil, err
		}

		logrus.Infof("loaded %d engine profiles from %q", len(fileProfiles), cfg.ProfilesFile)
		profiles = append(profiles, fileProfiles...)
	}

	return NewRegistry(cfg.DefaultProfile, profiles...)
}
