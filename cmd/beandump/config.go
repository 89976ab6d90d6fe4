/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package main

import (
	"errors"
	"fmt"
	"io/fs"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment variables read by beandump.
const (
	envLogLevel  = "MAPPERCONFIG_LOG_LEVEL"
	envLogFormat = "MAPPERCONFIG_LOG_FORMAT"
	envFailFast  = "MAPPERCONFIG_FAIL_FAST"
	envTable     = "MAPPERCONFIG_DDB_TABLE"

	envAWSAccessKey = "AWS_ACCESS_KEY"
	envAWSSecretKey = "AWS_SECRET_KEY"
	envAWSRegion    = "AWS_REGION"
	envAWSTable     = "AWS_DDB_TABLE"
)

type config struct {
	LogLevel  string
	LogFormat string
	FailFast  bool

	Table        string
	AWSAccessKey string
	AWSSecretKey string
	AWSRegion    string
}

// lookupFunc matches os.LookupEnv.
type lookupFunc func(key string) (string, bool)

// loadConfig reads settings from the environment, falling back to the
// values in envFile. A missing envFile is not an error.
func loadConfig(envFile string, lookup lookupFunc) (config, error) {
	fileVals := map[string]string{}
	if envFile != "" {
		vals, err := godotenv.Read(envFile)
		switch {
		case err == nil:
			fileVals = vals
		case errors.Is(err, fs.ErrNotExist):
		default:
			return config{}, fmt.Errorf("failed to read %s: %w", envFile, err)
		}
	}

	get := func(key, fallback string) string {
		if v, ok := lookup(key); ok && v != "" {
			return v
		}
		if v, ok := fileVals[key]; ok && v != "" {
			return v
		}
		return fallback
	}

	cfg := config{
		LogLevel:     get(envLogLevel, "info"),
		LogFormat:    get(envLogFormat, "text"),
		Table:        get(envTable, get(envAWSTable, "")),
		AWSAccessKey: get(envAWSAccessKey, ""),
		AWSSecretKey: get(envAWSSecretKey, ""),
		AWSRegion:    get(envAWSRegion, ""),
	}

	if raw := get(envFailFast, ""); raw != "" {
		failFast, err := strconv.ParseBool(raw)
		if err != nil {
			return config{}, fmt.Errorf("invalid %s value %q: %w", envFailFast, raw, err)
		}
		cfg.FailFast = failFast
	}
	return cfg, nil
}
