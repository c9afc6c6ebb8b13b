package config

import (
	"flag"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

var portCmd = flag.Int("port", 3000, "HTTP server port")

const (
	// DefaultSegmentSizeLimit: seal the active segment and start a new one
	// once its size exceeds this many bytes, checked before each write.
	DefaultSegmentSizeLimit = 1024 * 1024
	DefaultDataDirectory    = "data"
)

type Config struct {
	ServerPort        int
	DataDirectory     string
	SegmentSizeLimit  int64
	ChangeFeedAddress string
	MonitorUrl        string
}

func LoadConfig() Config {
	godotenv.Load(".env")
	return Config{
		ServerPort:        *portCmd,
		DataDirectory:     envOr("DATA_DIRECTORY", DefaultDataDirectory),
		SegmentSizeLimit:  envInt64Or("SEGMENT_SIZE_LIMIT", DefaultSegmentSizeLimit),
		ChangeFeedAddress: os.Getenv("CHANGE_FEED_ADDRESS"),
		MonitorUrl:        os.Getenv("MONITOR_URL"),
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt64Or(key string, fallback int64) int64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return fallback
	}
	return n
}
