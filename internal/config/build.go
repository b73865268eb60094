package config

import (
	"errors"
	"os"
)

// IgnoreCaseEnv enables case-insensitive search when present, whatever its value.
const IgnoreCaseEnv = "IGNORE_CASE"

type Argument string

const (
	ArgQuery    Argument = "query"
	ArgFilePath Argument = "file path"
)

var ErrMissingArgument = errors.New("missing argument")

type MissingArgumentError struct {
	Argument Argument
}

func (e *MissingArgumentError) Error() string {
	return "missing " + string(e.Argument) + " argument"
}

func (e *MissingArgumentError) Is(target error) bool { return target == ErrMissingArgument }

// LookupFunc has the shape of os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// Build resolves a Config from os.Args-style tokens and the process environment.
func Build(args []string) (Config, error) { return BuildWith(args, os.LookupEnv) }

// BuildWith is Build with an explicit environment lookup. args[0] is the
// program name; the query and the file path follow it.
func BuildWith(args []string, lookup LookupFunc) (Config, error) {
	if len(args) < 2 {
		return Config{}, &MissingArgumentError{Argument: ArgQuery}
	}
	if len(args) < 3 {
		return Config{}, &MissingArgumentError{Argument: ArgFilePath}
	}
	_, ignoreCase := lookup(IgnoreCaseEnv)
	return Config{
		Query:      args[1],
		FilePath:   args[2],
		IgnoreCase: ignoreCase,
	}, nil
}
