package helpers

import "os"

// GetEnv returns the value of key or fallback when the variable is unset.
func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
