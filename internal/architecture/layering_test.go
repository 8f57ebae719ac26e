package architecture_test

import (
	"fmt"
	"go/parser"
	"go/token"
	"io/fs"
	"path/filepath"
	"strings"
	"testing"
)

const modulePrefix = "inkwell/internal/modules/"

var layers = []string{"adapter/in", "adapter/out", "usecase", "service", "domain", "port/in", "port/out", "dto"}

func TestModuleLayerImports(t *testing.T) {
	t.Parallel()
	for path, imports := range collectImports(t, filepath.Join("..", "modules")) {
		module, layer := placeOf(path)
		if module == "" || layer == "" {
			continue
		}
		for _, imp := range imports {
			if !strings.HasPrefix(imp, modulePrefix) {
				continue
			}
			if reason := ruleBroken(module, layer, imp); reason != "" {
				t.Errorf("%s: %s imports %s (%s)", path, layer, imp, reason)
			}
		}
	}
}

// Views talk to modules through dto values and interfaces they declare
// themselves; bootstrap hands them the usecases.
func TestUIImportsModulesViaDTO(t *testing.T) {
	t.Parallel()
	for path, imports := range collectImports(t, filepath.Join("..", "ui")) {
		for _, imp := range imports {
			if strings.HasPrefix(imp, modulePrefix) && !strings.HasSuffix(imp, "/dto") {
				t.Errorf("%s: ui imports %s, module access goes through dto", path, imp)
			}
		}
	}
}

func TestPlatformStandsAlone(t *testing.T) {
	t.Parallel()
	for path, imports := range collectImports(t, filepath.Join("..", "platform")) {
		for _, imp := range imports {
			if strings.HasPrefix(imp, modulePrefix) || strings.HasPrefix(imp, "inkwell/internal/ui/") {
				t.Errorf("%s: platform must not import %s", path, imp)
			}
		}
	}
}

func collectImports(t *testing.T, root string) map[string][]string {
	t.Helper()
	fset := token.NewFileSet()
	byFile := map[string][]string{}
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".go") || strings.HasSuffix(path, "_test.go") {
			return nil
		}
		node, parseErr := parser.ParseFile(fset, path, nil, parser.ImportsOnly)
		if parseErr != nil {
			return fmt.Errorf("parse %s: %w", path, parseErr)
		}
		for _, imp := range node.Imports {
			key := filepath.ToSlash(path)
			byFile[key] = append(byFile[key], strings.Trim(imp.Path.Value, `"`))
		}
		return nil
	})
	if err != nil {
		t.Fatalf("walk %s: %v", root, err)
	}
	return byFile
}

func placeOf(path string) (module, layer string) {
	parts := strings.Split(path, "/")
	for i, part := range parts {
		if part == "modules" && i+1 < len(parts) {
			module = parts[i+1]
			break
		}
	}
	for _, candidate := range layers {
		if strings.Contains(path, "/"+candidate+"/") {
			layer = candidate
			break
		}
	}
	return module, layer
}

func ruleBroken(module, layer, imp string) string {
	rest := strings.TrimPrefix(imp, modulePrefix)
	impModule, impPkg, ok := strings.Cut(rest, "/")
	if !ok {
		return ""
	}
	if impModule != module {
		if impPkg != "port/in" && impPkg != "dto" {
			return "cross-module imports are limited to port/in and dto"
		}
		return ""
	}
	switch layer {
	case "adapter/in":
		if impPkg != "port/in" && impPkg != "dto" {
			return "adapter/in sees only port/in and dto"
		}
	case "usecase":
		if strings.HasPrefix(impPkg, "adapter") {
			return "usecase must not reach adapters"
		}
	case "service":
		if strings.HasPrefix(impPkg, "adapter") || strings.HasPrefix(impPkg, "usecase") {
			return "service must not reach adapters or usecases"
		}
	case "domain":
		if strings.HasPrefix(impPkg, "adapter") || strings.HasPrefix(impPkg, "usecase") || strings.HasPrefix(impPkg, "service") {
			return "domain depends on nothing above it"
		}
	}
	return ""
}
