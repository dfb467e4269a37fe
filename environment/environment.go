package environment

import (
	"os"
	"time"
)

var httpTimeout = os.Getenv("HTTP_TIMEOUT")

func GetHTTPTimeout() time.Duration {
	if httpTimeout != "" {
		if d, err := time.ParseDuration(httpTimeout); err == nil {
			return d
		}
	}
	return 30 * time.Second
}

var userAgent = os.Getenv("HTTP_USER_AGENT")

func GetUserAgent() string {
	if userAgent != "" {
		return userAgent
	}
	return "Mozilla/5.0 (compatible; vidprobe/1.0)"
}

var port = os.Getenv("PORT")

func GetPort() string {
	if port != "" {
		return port
	}
	return "8080"
}

func IsDebug() bool {
	return os.Getenv("DEBUG") != ""
}
