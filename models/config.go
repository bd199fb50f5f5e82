package models

type ScanConfig struct {
	Recursive bool  `mapstructure:"recursive"`
	MinSize   int64 `mapstructure:"min_size"`
}

type ServerConfig struct {
	Port int `mapstructure:"port"`
}

type HistoryConfig struct {
	DBPath string `mapstructure:"db_path"`
}

type AppConfig struct {
	Server    ServerConfig  `mapstructure:"server"`
	RootPaths []string      `mapstructure:"root_paths"`
	Scan      ScanConfig    `mapstructure:"scan"`
	History   HistoryConfig `mapstructure:"history"`
}
