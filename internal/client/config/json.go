package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/accountcli/internal/flagx"
)

// jsonConfig is the DTO for the optional config file. Absent keys leave the
// corresponding Config fields untouched.
type jsonConfig struct {
	ServerEndpointAddr *string `json:"server_endpoint_addr"`
	DatabaseFilePath   *string `json:"database_file_path"`
	LogLevel           *string `json:"log_level"`
}

// parseJSON overlays cfg with values from the file named by -c/-config.
// No flag, no file read. Read or decode failures panic — a broken config
// file should stop the client immediately.
func parseJSON(cfg *Config) {
	path := flagx.ConfigFileFlags()
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc jsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.ServerEndpointAddr != nil {
		cfg.ServerEndpointAddr = *jc.ServerEndpointAddr
	}
	if jc.DatabaseFilePath != nil {
		cfg.DatabaseFilePath = *jc.DatabaseFilePath
	}
	if jc.LogLevel != nil {
		cfg.LogLevel = *jc.LogLevel
	}
}
