package config

import "errors"

// CaseInsensitiveEnv switches searches to case-insensitive mode when set to
// any value, including the empty string.
const CaseInsensitiveEnv = "CASE_INSENSITIVE"

var (
	ErrMissingQuery    = errors.New("didn't get a query string")
	ErrMissingFilename = errors.New("didn't get a file name")
)

// Config is what one run searches for and where.
type Config struct {
	Query         string
	Filename      string
	CaseSensitive bool
}

// LookupFunc reports the value of an environment variable and whether it is
// set. os.LookupEnv satisfies it.
type LookupFunc func(key string) (string, bool)

// Resolve builds a Config from a full argument list, program name first.
// Arguments after the file name are ignored.
func Resolve(args []string, lookup LookupFunc) (Config, error) {
	if len(args) > 0 {
		args = args[1:]
	}
	if len(args) < 1 {
		return Config{}, ErrMissingQuery
	}
	if len(args) < 2 {
		return Config{}, ErrMissingFilename
	}
	_, insensitive := lookup(CaseInsensitiveEnv)
	return Config{
		Query:         args[0],
		Filename:      args[1],
		CaseSensitive: !insensitive,
	}, nil
}
