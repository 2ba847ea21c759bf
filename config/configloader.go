package config

import (
	"fmt"
)

// LoadConfigFromFile reads a JSON config file into appConfig.
func LoadConfigFromFile(filePath string, appConfig any) error {
	configSource, err := newFile(filePath)
	if err != nil {
		return fmt.Errorf("failed to create file config source: %w", err)
	}

	if err := Load(configSource, appConfig); err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	return nil
}

// LoadConfigFromRigel loads appConfig from a rigel schema stored in etcd.
func LoadConfigFromRigel(etcdEndpoints, app, module string, version int, configName string, appConfig any) error {
	rigelClient, err := NewRigelClient(etcdEndpoints, app, module, version, configName)
	if err != nil {
		return fmt.Errorf("failed to create rigel client: %w", err)
	}

	if err := Load(&Rigel{Client: rigelClient}, appConfig); err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	return nil
}
