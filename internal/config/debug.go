package config

import "os"

func IsDebug() bool {
	return os.Getenv("PIXIE_DEBUG") == "1"
}
