package cmd

import "errors"

var errCircuitNotFound = errors.New("circuit not found")
var errProviderNotFound = errors.New("provider not found")
