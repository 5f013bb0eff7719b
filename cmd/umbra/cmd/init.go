package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/go-umbra/umbra/cmd/umbra/internal/templates"
)

func init() {
	RegisterCommand(&Command{
		Name:  "init",
		Short: "Create a new Umbra project",
		Long: `Create a new Umbra project in a new directory.

This command creates:
  - A new directory at the specified path
  - go.mod with the specified module path
  - main.go and components.go with a starter component
  - umbra.yaml with project defaults

The project name is derived from the directory basename.
The module path defaults to the project name if not specified.

Examples:
  umbra init myapp
  umbra init myapp github.com/username/myapp
  umbra init ./projects/myapp`,
		Usage: "umbra init <directory> [module-path]",
		Run:   runInit,
	})
}

// runInit creates a new Umbra project. The first argument is the directory
// path to create. The project name is derived from the directory's basename.
// An optional second argument overrides the Go module path, which otherwise
// defaults to the project name.
func runInit(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("directory is required\n\nUsage: umbra init <directory> [module-path]")
	}

	raw := args[0]
	if strings.HasPrefix(raw, "~") {
		return fmt.Errorf("tilde (~) is not expanded by umbra; use an absolute path or $HOME instead")
	}

	dir := filepath.Clean(raw)

	if err := validateDirectory(dir); err != nil {
		return err
	}

	projectName := filepath.Base(dir)
	modulePath := projectName
	if len(args) > 1 {
		modulePath = args[1]
	}
	if modulePath == "" {
		return fmt.Errorf("module path cannot be empty")
	}

	if err := validateProjectName(projectName); err != nil {
		return fmt.Errorf("invalid project name %q (derived from directory basename): %w", projectName, err)
	}

	if err := scaffoldProject(dir, projectName, modulePath); err != nil {
		return err
	}

	fmt.Println()
	fmt.Printf("Project created successfully!\n\n")
	fmt.Printf("Next steps:\n")
	fmt.Printf("  cd %s\n", dir)
	fmt.Printf("  go mod tidy\n")
	fmt.Printf("  go run .\n")

	return nil
}

// scaffoldProject creates the project directory and writes the template
// files. It has no side effects beyond the filesystem, making it safe to
// call from tests.
func scaffoldProject(dir, projectName, modulePath string) error {
	if _, err := os.Stat(dir); err == nil {
		return fmt.Errorf("directory %q already exists", dir)
	}

	fmt.Printf("Creating new Umbra project: %s\n", projectName)

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	data := &templates.InitData{
		ModulePath: modulePath,
		AppName:    projectName,
	}

	initFiles := []struct {
		templatePath string
		destName     string
	}{
		{"init/go.mod.tmpl", "go.mod"},
		{"init/main.go.tmpl", "main.go"},
		{"init/component.go.tmpl", "components.go"},
		{"init/umbra.yaml.tmpl", "umbra.yaml"},
	}

	for _, f := range initFiles {
		if err := writeInitTemplate(dir, f.templatePath, f.destName, data); err != nil {
			safeRemoveAll(dir)
			return err
		}
		fmt.Printf("  Created %s\n", f.destName)
	}

	return nil
}

func writeInitTemplate(projectDir, templatePath, destName string, data *templates.InitData) error {
	content, err := templates.ReadFile(templatePath)
	if err != nil {
		return fmt.Errorf("failed to read template %s: %w", templatePath, err)
	}

	out, err := templates.ProcessTemplate(string(content), data)
	if err != nil {
		return fmt.Errorf("failed to process template %s: %w", templatePath, err)
	}

	destPath := filepath.Join(projectDir, destName)
	if err := os.WriteFile(destPath, []byte(out), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", destName, err)
	}

	return nil
}

// validateDirectory rejects directory paths that would be dangerous to
// create or clean up: filesystem roots, the current/parent directory, and
// root-level absolute paths (e.g. /etc, C:\Users).
func validateDirectory(dir string) error {
	// "" is not reachable via runInit (filepath.Clean converts it to "."),
	// but is included for direct callers. "/" is kept explicitly because
	// isVolumeRoot won't match "/" on Windows.
	switch dir {
	case "", "/", ".", "..":
		return fmt.Errorf("directory %q is not a valid project location", dir)
	}
	if isVolumeRoot(dir) {
		return fmt.Errorf("directory %q is not a valid project location", dir)
	}
	if filepath.IsAbs(dir) && isVolumeRoot(filepath.Dir(dir)) {
		return fmt.Errorf("refusing to create project at root-level path %q", dir)
	}
	return nil
}

// isVolumeRoot reports whether dir is a filesystem root. On Unix this is
// "/", on Windows this covers drive roots like "C:\" and the bare root "\".
func isVolumeRoot(dir string) bool {
	return dir == filepath.VolumeName(dir)+string(filepath.Separator)
}

// safeRemoveAll removes a directory only if the path passes
// validateDirectory. It silently no-ops for dangerous paths rather than
// returning an error, since it runs on cleanup paths where the original
// error should not be masked.
func safeRemoveAll(dir string) {
	if validateDirectory(dir) != nil {
		return
	}
	os.RemoveAll(dir)
}

var validProjectName = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9_-]*$`)

// validateProjectName checks that a project name (derived from the directory
// basename) starts with a letter and contains only letters, digits,
// underscores, and hyphens.
func validateProjectName(name string) error {
	if name == "" {
		return fmt.Errorf("project name is empty")
	}
	if !validProjectName.MatchString(name) {
		return fmt.Errorf("must start with a letter and contain only letters, digits, underscores, and hyphens")
	}
	return nil
}
