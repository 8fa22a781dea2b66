package config

import "os"

func IsDebug() bool {
	return os.Getenv("GROUND_DEBUG") == "1"
}
