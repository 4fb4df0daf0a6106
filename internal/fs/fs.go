// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package fs

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	"gopkg.microglot.org/javac.go/internal/exc"
	"gopkg.microglot.org/javac.go/internal/idl"
)

const (
	javaExt = ".java"
)

var knownExts = map[string]idl.FileKind{
	javaExt: idl.FileKindJava,
}

// KindOf returns the file kind implied by the name's extension.
func KindOf(name string) idl.FileKind {
	return knownExts[path.Ext(name)]
}

var _ idl.FileSystem = FileSystemMulti{}

// FileSystemMulti is an ordered set of FileSystem implementations, like a
// source path. The first one that can open a target wins. Writes must be
// made on an individual backend.
type FileSystemMulti []idl.FileSystem

func (r FileSystemMulti) Open(ctx context.Context, uri string) ([]idl.File, error) {
	for _, fs := range r {
		files, err := fs.Open(ctx, uri)
		if err != nil {
			continue
		}
		return files, nil
	}
	return nil, exc.New(exc.Location{URI: uri}, exc.CodeFileNotFound, fmt.Sprintf("could not open %s from any source root", uri))
}

func (r FileSystemMulti) Write(ctx context.Context, uri string, content string) error {
	return exc.New(exc.Location{URI: uri}, exc.CodeUnsuportedFileSystemOperation, "cannot write to a composite file system")
}

// FileFilter selects which files to open when a target is a directory.
type FileFilter func(ctx context.Context, fname string) bool

type FileSystemLocalOption func(*fileSystemLocal)

// WithOptionFSFactory replaces os.DirFS as the source of the underlying
// file system handle. The factory receives the absolute root.
func WithOptionFSFactory(v func(root string) fs.FS) FileSystemLocalOption {
	return func(rfs *fileSystemLocal) {
		rfs.fsFactory = v
	}
}

// WithOptionFileFilter replaces the default filter, which keeps files with a
// known source extension.
func WithOptionFileFilter(v FileFilter) FileSystemLocalOption {
	return func(rfs *fileSystemLocal) {
		rfs.fileFilter = v
	}
}

type fileSystemLocal struct {
	root       string
	fsFactory  func(string) fs.FS
	fileFilter FileFilter
}

// NewFileSystemLocal creates a FileSystem rooted at a local directory. Every
// uri given to Open or Write is resolved against the root.
func NewFileSystemLocal(root string, options ...FileSystemLocalOption) (idl.FileSystem, error) {
	absroot, err := filepath.Abs(root)
	if err != nil {
		return nil, exc.WrapUnknown(exc.Location{URI: root}, err)
	}
	result := &fileSystemLocal{
		root:      absroot,
		fsFactory: os.DirFS,
		fileFilter: func(ctx context.Context, fname string) bool {
			return KindOf(fname) != idl.FileKindNone
		},
	}
	for _, option := range options {
		option(result)
	}
	return result, nil
}

// relPath turns a rooted path or file URI into the un-rooted form fs.FS
// expects. The root itself is ".".
func relPath(uri string) string {
	p := uri
	if u, err := url.Parse(uri); err == nil {
		p = u.Path
	}
	p = strings.TrimPrefix(path.Clean("/"+filepath.ToSlash(p)), "/")
	if p == "" {
		return "."
	}
	return p
}

// Open returns the file at uri or, for a directory, every selected file
// below it in lexical order. Package directories nest so the walk is
// recursive. Hidden directories such as .git are skipped.
func (r *fileSystemLocal) Open(ctx context.Context, uri string) ([]idl.File, error) {
	dir := r.fsFactory(r.root)
	p := relPath(uri)
	stat, err := fs.Stat(dir, p)
	if err != nil {
		return nil, fsErr(p, err)
	}
	if !stat.IsDir() {
		return []idl.File{r.file(dir, p)}, nil
	}
	files := make([]idl.File, 0)
	walkErr := fs.WalkDir(dir, p, func(dfPath string, df fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if df.IsDir() {
			if dfPath != p && strings.HasPrefix(df.Name(), ".") {
				return fs.SkipDir
			}
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if r.fileFilter(ctx, df.Name()) {
			files = append(files, r.file(dir, dfPath))
		}
		return nil
	})
	if walkErr != nil {
		if errors.Is(walkErr, context.Canceled) || errors.Is(walkErr, context.DeadlineExceeded) {
			return nil, walkErr
		}
		return nil, fsErr(p, walkErr)
	}
	if len(files) < 1 {
		return nil, exc.New(exc.Location{URI: "/" + p}, exc.CodeFileNotFound, fmt.Sprintf("found directory /%s but it holds no source files", p))
	}
	return files, nil
}

func (r *fileSystemLocal) file(dir fs.FS, p string) idl.File {
	return NewFileFN("/"+p, func() (io.ReadCloser, error) {
		return dir.Open(p)
	}, KindOf(p))
}

func (r *fileSystemLocal) Write(ctx context.Context, uri string, content string) error {
	p := filepath.Join(r.root, filepath.FromSlash(relPath(uri)))
	d := filepath.Dir(p)
	if err := os.MkdirAll(d, os.ModeDir|0o755); err != nil {
		return fsErr(d, err)
	}
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		return fsErr(p, err)
	}
	return nil
}

func fsErr(path string, err error) error {
	var errT *fs.PathError
	if !errors.As(err, &errT) {
		return exc.WrapUnknown(exc.Location{URI: path}, err)
	}
	switch {
	case errors.Is(errT.Err, fs.ErrNotExist):
		return exc.Wrap(exc.Location{URI: errT.Path}, exc.CodeFileNotFound, errT)
	case errors.Is(errT.Err, fs.ErrPermission):
		return exc.Wrap(exc.Location{URI: errT.Path}, exc.CodePermissionDenied, errT)
	default:
		return exc.WrapUnknown(exc.Location{URI: errT.Path}, errT)
	}
}
