package template

import (
	"archive/tar"
	"bytes"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spurkit/spur/internal/errors"
)

// extractTarball unpacks a gzipped tarball into dest. Entry names are
// validated so an archive can never write outside dest.
func extractTarball(data []byte, dest string) error {
	gz, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return errors.New(errors.CategoryTemplate, "extract template", err)
	}
	defer gz.Close()

	tr := tar.NewReader(gz)
	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return errors.New(errors.CategoryTemplate, "extract template", err)
		}

		target, err := safeJoin(dest, hdr.Name)
		if err != nil {
			return err
		}

		switch hdr.Typeflag {
		case tar.TypeDir:
			if err := os.MkdirAll(target, 0o755); err != nil {
				return errors.New(errors.CategoryIO, "extract template", err)
			}
		case tar.TypeReg:
			if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
				return errors.New(errors.CategoryIO, "extract template", err)
			}
			if err := writeEntry(target, tr, hdr.FileInfo().Mode()); err != nil {
				return err
			}
		default:
			// Symlinks and devices are not part of template repos; skip them
			// rather than risk links escaping the extraction root.
		}
	}
}

func writeEntry(target string, r io.Reader, mode os.FileMode) error {
	f, err := os.OpenFile(target, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, mode.Perm())
	if err != nil {
		return errors.New(errors.CategoryIO, "extract template", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		return errors.New(errors.CategoryIO, "extract template", err)
	}
	return nil
}

// safeJoin joins an archive entry name to dest, rejecting absolute names and
// anything resolving outside dest.
func safeJoin(dest, name string) (string, error) {
	if filepath.IsAbs(name) {
		return "", errors.New(errors.CategoryTemplate, "extract template",
			fmt.Errorf("archive entry %q has an absolute path", name))
	}
	target := filepath.Join(dest, name)
	if !strings.HasPrefix(target, filepath.Clean(dest)+string(filepath.Separator)) {
		return "", errors.New(errors.CategoryTemplate, "extract template",
			fmt.Errorf("archive entry %q escapes the extraction directory", name))
	}
	return target, nil
}

// copyTemplate locates templateName inside the extracted repository and
// copies its tree into dest. GitHub tarballs wrap the repo in a single
// "<owner>-<repo>-<sha>" directory, so the first extracted directory is the
// repository root.
func copyTemplate(extractedDir, templateName, dest string) error {
	entries, err := os.ReadDir(extractedDir)
	if err != nil {
		return errors.New(errors.CategoryIO, "read extracted template", err)
	}

	var roots []string
	for _, e := range entries {
		if e.IsDir() {
			roots = append(roots, e.Name())
		}
	}
	if len(roots) == 0 {
		return errors.New(errors.CategoryTemplate, "locate template",
			fmt.Errorf("downloaded archive contains no directories"))
	}
	sort.Strings(roots)

	templatePath := filepath.Join(extractedDir, roots[0], templateName)
	if info, err := os.Stat(templatePath); err != nil || !info.IsDir() {
		return errors.New(errors.CategoryTemplate, "locate template",
			fmt.Errorf("template %q not found in repository", templateName)).
			WithSuggestion("templates are top-level directories of the template repository")
	}

	return copyDir(templatePath, dest)
}

// copyDir copies the tree rooted at src into dst, creating directories as
// needed and preserving file modes.
func copyDir(src, dst string) error {
	if err := os.MkdirAll(dst, 0o755); err != nil {
		return errors.New(errors.CategoryIO, "copy template", err)
	}

	walkErr := filepath.WalkDir(src, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		if rel == "." {
			return nil
		}
		target := filepath.Join(dst, rel)

		if d.IsDir() {
			return os.MkdirAll(target, 0o755)
		}

		info, err := d.Info()
		if err != nil {
			return err
		}
		return copyFile(path, target, info.Mode())
	})

	if walkErr != nil {
		return errors.New(errors.CategoryIO, "copy template", walkErr)
	}
	return nil
}

func copyFile(src, dst string, mode os.FileMode) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return err
	}

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, mode.Perm())
	if err != nil {
		return err
	}
	defer out.Close()

	_, err = io.Copy(out, in)
	return err
}
