package internal

import "time"

// Config is the shared environment configuration. The archiver binary only
// reads the storage and archival fields; the token and moderation fields
// are consumed by whatever surface embeds the services.
type Config struct {
	BadgerFilepath    string        `env:"BADGER_FILEPATH,required=true"`
	LogLevel          string        `env:"LOG_LEVEL,required=true"`
	TokenSecret       string        `env:"TOKEN_SECRET"`
	AuthTokenDuration time.Duration `env:"AUTH_TOKEN_DURATION,default=24h"`
	LimitMessages     *int          `env:"LIMIT_MESSAGES"`
	MessageRetention  time.Duration `env:"MESSAGE_RETENTION,default=2160h"`
	ArchiveChunkSize  int           `env:"ARCHIVE_CHUNK_SIZE,default=100"`
	ArchiveInterval   time.Duration `env:"ARCHIVE_INTERVAL,default=1h"`
	CensoredWords     string        `env:"CENSORED_WORDS"`
	CensoredChar      string        `env:"CENSORED_CHAR,default=*"`
}
