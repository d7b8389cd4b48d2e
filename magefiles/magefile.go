//go:build mage

// Package main contains Mage build targets for biogenerator developer tooling.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// projectDirs lists the working directories the CLI expects.
var projectDirs = []string{
	"ledger",
	"scenarios",
}

const (
	binDir  = "bin"
	binName = "biogenerator"
	cmdPkg  = "./cmd/biogenerator"
)

// Init creates the project directory structure and a starter scenario.
func Init() error {
	for _, dir := range projectDirs {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating %s: %w", dir, err)
		}
		fmt.Println("  ", dir)
	}

	starter := filepath.Join("scenarios", "starter.yaml")
	if _, err := os.Stat(starter); os.IsNotExist(err) {
		if err := os.WriteFile(starter, []byte(starterScenario), 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", starter, err)
		}
		fmt.Println("  ", starter)
	}
	fmt.Println("Project directories initialized.")
	return nil
}

// Build compiles the CLI binary into bin/.
func Build() error {
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", binDir, err)
	}
	out := filepath.Join(binDir, binName)
	version, err := sh.Output("git", "describe", "--tags", "--always", "--dirty")
	if err != nil {
		version = "dev"
	}
	ldflags := "-X main.version=" + strings.TrimSpace(version)
	if err := sh.RunV("go", "build", "-ldflags", ldflags, "-o", out, cmdPkg); err != nil {
		return fmt.Errorf("go build: %w", err)
	}
	fmt.Printf("Built %s\n", out)
	return nil
}

// Test runs the unit tests.
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Check runs vet and the tests.
func Check() error {
	mg.Deps(Vet)
	mg.Deps(Test)
	return nil
}

// Vet runs go vet.
func Vet() error {
	return sh.RunV("go", "vet", "./...")
}

// Demo builds the CLI, initializes the project and dumps the starter bag
// into the starter biogenerator.
func Demo() error {
	mg.Deps(Build, Init)
	bin := filepath.Join(binDir, binName)
	scenario := "--scenario=" + filepath.Join("scenarios", "starter.yaml")
	if err := sh.RunV(bin, scenario, "--dry-run", "dump", "biogen", "plant-bag"); err != nil {
		return err
	}
	return sh.RunV(bin, "ledger", "balance")
}

// Stats prints project metrics: Go production and test LOC.
func Stats() error {
	prodLines, err := countGoLines(".", false)
	if err != nil {
		return err
	}
	testLines, err := countGoLines(".", true)
	if err != nil {
		return err
	}

	fmt.Printf("Lines of code (Go, production): %d\n", prodLines)
	fmt.Printf("Lines of code (Go, tests):      %d\n", testLines)
	return nil
}

// countGoLines walks the directory tree and counts non-blank lines in Go files.
// If testOnly is true, count only _test.go files; otherwise count non-test .go files.
func countGoLines(root string, testOnly bool) (int, error) {
	total := 0
	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			if strings.HasPrefix(info.Name(), "_") && path != root {
				return filepath.SkipDir
			}
			return nil
		}
		if filepath.Ext(path) != ".go" {
			return nil
		}
		if strings.HasSuffix(path, "_test.go") != testOnly {
			return nil
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
		for _, line := range strings.Split(string(data), "\n") {
			if strings.TrimSpace(line) != "" {
				total++
			}
		}
		return nil
	})
	return total, err
}

const starterScenario = `reagents: [Nutriment, Vitamin, Water, Sugar]
entities:
  - id: biogen
    name: biogenerator
    power: {powered: true}
    extractor:
      extraction_reagents: [Nutriment]
      extracted_material: Biomass
      extract_sound: /Audio/Effects/waterswirl.ogg
  - id: player
    name: botanist
  - id: wheat
    produce: {}
    solutions:
      food:
        - {reagent: Nutriment, quantity: 3.7}
        - {reagent: Water, quantity: 5}
  - id: banana
    produce: {}
    solutions:
      food:
        - {reagent: Nutriment, quantity: 6}
        - {reagent: Vitamin, quantity: 2}
  - id: sugarcane
    produce: {}
    solutions:
      food:
        - {reagent: Sugar, quantity: 10}
  - id: plant-bag
    name: plant bag
    storage:
      items:
        - {id: wheat, location: "0,0"}
        - {id: banana, location: "1,0"}
        - {id: sugarcane, location: "2,0"}
`
