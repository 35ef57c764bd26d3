package conf

import "time"

// Bootstrap is the root of the configuration file.
type Bootstrap struct {
	Server    *Server    `json:"server"`
	Data      *Data      `json:"data"`
	Shortener *Shortener `json:"shortener"`
	Log       *Log       `json:"log"`
}

type Server struct {
	Http *Server_HTTP `json:"http"`
	Grpc *Server_GRPC `json:"grpc"`
}

type Server_HTTP struct {
	Network string `json:"network"`
	Addr    string `json:"addr"`
	Timeout string `json:"timeout"`
}

type Server_GRPC struct {
	Network string `json:"network"`
	Addr    string `json:"addr"`
	Timeout string `json:"timeout"`
}

type Data struct {
	Database *Data_Database `json:"database"`
	Redis    *Data_Redis    `json:"redis"`
}

type Data_Database struct {
	// Driver is "sqlite3" or "postgres".
	Driver string `json:"driver"`
	Source string `json:"source"`
}

type Data_Redis struct {
	// Addr left empty disables the link cache.
	Addr     string `json:"addr"`
	Password string `json:"password"`
	Db       int    `json:"db"`
	CacheTtl string `json:"cache_ttl"`
}

type Shortener struct {
	// BaseUrl prefixes codes in the short links handed to clients.
	BaseUrl string `json:"base_url"`
}

type Log struct {
	Level  string `json:"level"`
	Format string `json:"format"`
}

// Duration parses s, returning def when s is empty or malformed.
func Duration(s string, def time.Duration) time.Duration {
	if s == "" {
		return def
	}
	d, err := time.ParseDuration(s)
	if err != nil || d <= 0 {
		return def
	}
	return d
}
