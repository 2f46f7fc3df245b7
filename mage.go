//go:build mage

package main

import (
	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	jetOutput          = "gen"
	sqliteFileLocation = "samples.sqlite"
	serverBin          = "./bin/statcard"
)

const (
	toolsDir    = "tools/"
	toolsBinDir = toolsDir + "bin/"
	lintTool    = toolsBinDir + "golangci-lint"
	jetTool     = toolsBinDir + "jet"
)

func goModDownload() error {
	return sh.Run("go", "mod", "download")
}

// Build builds the statcard binary
func Build() error {
	mg.Deps(goModDownload)
	return sh.Run("go", "build", "-o", serverBin, "cmd/main.go")
}

// Run starts the web server
func Run() error {
	mg.Deps(Build)
	return sh.Run(serverBin, "-serve")
}

// Card generates a single card for the default player
func Card() error {
	mg.Deps(Build)
	return sh.Run(serverBin)
}

// GenJet regenerates the go-jet model/table code from the samples DB
func GenJet() error {
	return sh.Run(jetTool, "-source", "sqlite", "-dsn", sqliteFileLocation, "-path", jetOutput)
}

// Test runs the unit tests
func Test() error {
	return sh.Run("go", "test", "./...")
}

// Lint runs golangci-lint
func Lint() error {
	return sh.Run(lintTool, "run", "./...")
}
