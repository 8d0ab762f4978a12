package setup

import "fmt"

// MissingConfigError reports a config key that setup cannot run without.
type MissingConfigError struct {
	Key string
}

func (e MissingConfigError) Error() string {
	return fmt.Sprintf("config value %q not set", e.Key)
}
