// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package compiler

import (
	"path/filepath"

	"gopkg.microglot.org/javac.go/internal/fs"
	"gopkg.microglot.org/javac.go/internal/idl"
)

// NewDefaultFS searches the working directory followed by each entry of the
// CLASSPATH environment variable, which is also where javac looks for
// sources when no source path is given. Archive entries are skipped.
func NewDefaultFS(lookup func(string) (string, bool)) (idl.FileSystem, error) {
	roots := getDefaultRoots(lookup)
	f := make(fs.FileSystemMulti, 0, len(roots))
	for _, root := range roots {
		absRoot, errAbs := filepath.Abs(root)
		if errAbs != nil {
			return nil, errAbs
		}
		rf, err := fs.NewFileSystemLocal(absRoot)
		if err != nil {
			return nil, err
		}
		f = append(f, rf)
	}
	return f, nil
}

func getDefaultRoots(lookup func(string) (string, bool)) []string {
	roots := []string{"."}
	classPath, ok := lookup("CLASSPATH")
	if !ok {
		return roots
	}
	for _, entry := range filepath.SplitList(classPath) {
		switch filepath.Ext(entry) {
		case ".jar", ".zip":
			continue
		}
		if entry == "" || entry == "." {
			continue
		}
		roots = append(roots, entry)
	}
	return roots
}
