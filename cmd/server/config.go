package main

import "time"

type Config struct {
	BadgerFilepath            string        `env:"BADGER_FILEPATH,required=true"`
	BlugeFilepath             string        `env:"BLUGE_FILEPATH,required=true"`
	MediaDir                  string        `env:"MEDIA_DIR,default=./media"`
	LogLevel                  string        `env:"LOG_LEVEL,default=info"`
	Host                      string        `env:"HOST,default=localhost"`
	Port                      int           `env:"PORT,default=8080"`
	JWTSecret                 string        `env:"JWT_SECRET,required=true"`
	TokenTTL                  time.Duration `env:"TOKEN_TTL,default=168h"`
	AdminEmail                string        `env:"ADMIN_EMAIL"`
	AdminPasswordHash         string        `env:"ADMIN_PASSWORD_HASH"`
	ModerationCharReplacement rune          `env:"MODERATION_CHARACTER_REPLACEMENT,default=*"`
	TelemetryInterval         time.Duration `env:"TELEMETRY_INTERVAL,default=30s"`
	StorageGCInterval         time.Duration `env:"STORAGE_GC_INTERVAL,default=10m"`
}
