// Package config turns command-line arguments and environment state into the
// search configuration, and loads optional YAML defaults.
package config

import "errors"

// Errors returned by Build when a required argument is absent.
var (
	ErrMissingQuery    = errors.New("didn't get a query string")
	ErrMissingFilePath = errors.New("didn't get a file path")
)

// Config holds the settings for one search.
type Config struct {
	// Query is the substring to look for.
	Query string

	// FilePath is the file to search. It is not checked for existence here.
	FilePath string

	// IgnoreCase selects case-insensitive matching.
	IgnoreCase bool
}

// LookupEnvFunc reports the value of an environment variable and whether it
// is set. os.LookupEnv satisfies it.
type LookupEnvFunc func(key string) (string, bool)

// Build creates a Config from an argument list whose first element is the
// program name. The second and third elements become the query and the file
// path; anything after them is ignored. IgnoreCase is true when EnvIgnoreCase
// is set to any value, including the empty string. A nil lookupEnv behaves
// like an empty environment.
func Build(args []string, lookupEnv LookupEnvFunc) (Config, error) {
	if len(args) > 0 {
		args = args[1:]
	}

	if len(args) < 1 {
		return Config{}, ErrMissingQuery
	}
	query := args[0]

	if len(args) < 2 {
		return Config{}, ErrMissingFilePath
	}
	filePath := args[1]

	return Config{
		Query:      query,
		FilePath:   filePath,
		IgnoreCase: isSet(lookupEnv, EnvIgnoreCase),
	}, nil
}

func isSet(lookupEnv LookupEnvFunc, key string) bool {
	if lookupEnv == nil {
		return false
	}
	_, ok := lookupEnv(key)
	return ok
}
