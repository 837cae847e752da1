//go:build mage

// Package main contains Mage build targets for confluence-export developer tooling.
package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/magefile/mage/mg"
)

// All vets, tests, and builds the module.
func All() {
	mg.SerialDeps(Vet, Test, Build)
}

const (
	binDir  = "bin"
	binName = "confluence-export"
	cmdPkg  = "./cmd/confluence-export"
)

// projectDirs lists the working directories an export run expects.
var projectDirs = []string{
	"outputs",
}

// Init creates the output directory and a starter urls.txt if none exists.
func Init() error {
	for _, dir := range projectDirs {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating %s: %w", dir, err)
		}
		fmt.Println("  ", dir)
	}

	if _, err := os.Stat("urls.txt"); os.IsNotExist(err) {
		template := "# One Confluence page URL per line. Blank lines and # comments are ignored.\n"
		if err := os.WriteFile("urls.txt", []byte(template), 0o644); err != nil {
			return fmt.Errorf("creating urls.txt: %w", err)
		}
		fmt.Println("   urls.txt")
	}

	fmt.Println("Project files initialized.")
	return nil
}

// Build compiles the CLI binary into bin/.
func Build() error {
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", binDir, err)
	}
	out := filepath.Join(binDir, binName)
	if err := run("go", "build", "-o", out, cmdPkg); err != nil {
		return err
	}
	fmt.Printf("Built %s\n", out)
	return nil
}

// Test runs the full test suite.
func Test() error {
	return run("go", "test", "./...")
}

// Vet runs go vet over the module.
func Vet() error {
	return run("go", "vet", "./...")
}

// Tidy synchronizes go.mod with the source imports.
func Tidy() error {
	return run("go", "mod", "tidy")
}

func run(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s %v: %w", name, args, err)
	}
	return nil
}
