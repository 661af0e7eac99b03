package recording

import (
	"fmt"
	"net/url"
	"os"
	"path"
	"strings"

	"golang.org/x/mod/modfile"
)

// ModulePath converts the import path of a package into a module path whose first segment is
// the last element of the Go module path, followed by the package's directories within the
// module. For module example.com/widgets, package example.com/widgets/store/sql becomes
// "widgets::store::sql". The module path is read from the go.mod file at goModPath.
func ModulePath(importPath, goModPath string) (string, error) {
	data, err := os.ReadFile(goModPath)
	if err != nil {
		return "", err
	}
	module := modfile.ModulePath(data)
	if module == "" {
		return "", fmt.Errorf("%s does not declare a module path", goModPath)
	}
	return modulePathFor(module, importPath)
}

func modulePathFor(module, importPath string) (string, error) {
	importPath = strings.TrimSuffix(importPath, "_test")
	if importPath != module && !strings.HasPrefix(importPath, module+"/") {
		return "", fmt.Errorf("package %q is not part of module %q", importPath, module)
	}
	segments := []string{path.Base(module)}
	if rel := strings.TrimPrefix(strings.TrimPrefix(importPath, module), "/"); rel != "" {
		segments = append(segments, strings.Split(rel, "/")...)
	}
	return strings.Join(segments, ModuleSeparator), nil
}

// PackageOfFunc returns the import path of the package that declares the function with the
// given fully-qualified name, as reported by runtime.FuncForPC.
func PackageOfFunc(funcName string) string {
	// The last slash separates the import path directory from "pkg.Func.func1".
	slash := strings.LastIndex(funcName, "/")
	dot := strings.Index(funcName[slash+1:], ".")
	if dot < 0 {
		return funcName
	}
	dir, last := funcName[:slash+1], funcName[slash+1:slash+1+dot]
	// Symbol names escape dots in the last element, so example.com/foo.v2 appears as foo%2ev2.
	if unescaped, err := url.PathUnescape(last); err == nil {
		last = unescaped
	}
	return dir + last
}
