// Package source turns paths, archives and URLs into class file buffers
// and decodes them.
package source

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/tliron/commonlog"
)

var log = commonlog.GetLogger("classread.source")

// Class is one class file buffer. Name is the path it came from, with
// archive members written as archive.jar!/pkg/Name.class.
type Class struct {
	Name string
	Data []byte
}

// Open resolves a location to the class files it names. A location is a
// .class file, a directory, a .jar or .zip archive, a file: URL or a
// jar:file:...!/entry URL.
func Open(location string) ([]Class, error) {
	switch {
	case strings.HasPrefix(location, "jar:"):
		return openJarURL(location)
	case strings.HasPrefix(location, "file:"):
		path, err := fileURLPath(location)
		if err != nil {
			return nil, err
		}
		return openPath(path)
	default:
		return openPath(location)
	}
}

func fileURLPath(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("invalid URL %q: %w", rawURL, err)
	}
	if u.Scheme != "file" {
		return "", fmt.Errorf("unsupported URL scheme %q", u.Scheme)
	}
	if u.Path != "" {
		return filepath.FromSlash(u.Path), nil
	}
	return filepath.FromSlash(u.Opaque), nil
}

func openJarURL(location string) ([]Class, error) {
	archiveURL, entry, ok := strings.Cut(strings.TrimPrefix(location, "jar:"), "!/")
	if !ok {
		return nil, fmt.Errorf("jar URL %q has no !/ separator", location)
	}
	path, err := fileURLPath(archiveURL)
	if err != nil {
		return nil, err
	}
	classes, err := openArchive(path)
	if err != nil {
		return nil, err
	}
	if entry == "" {
		return classes, nil
	}
	want := path + "!/" + entry
	for _, class := range classes {
		if class.Name == want {
			return []Class{class}, nil
		}
	}
	return nil, fmt.Errorf("%s: %w", want, fs.ErrNotExist)
}

func openPath(path string) ([]Class, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return openDir(path)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jar", ".zip":
		return openArchive(path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return []Class{{Name: path, Data: data}}, nil
}

func openDir(root string) ([]Class, error) {
	var classes []Class
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || filepath.Ext(path) != ".class" {
			return nil
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		classes = append(classes, Class{Name: path, Data: data})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", root, err)
	}
	log.Debugf("found %d class files under %s", len(classes), root)
	return classes, nil
}

func openArchive(path string) ([]Class, error) {
	r, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("open archive %s: %w", path, err)
	}
	defer r.Close()

	classes, err := readArchive(&r.Reader, path, true)
	if err != nil {
		return nil, err
	}
	log.Debugf("found %d class files in %s", len(classes), path)
	return classes, nil
}

// readArchive collects .class members. Jars inside the archive are read
// one level deep.
func readArchive(r *zip.Reader, name string, nested bool) ([]Class, error) {
	var classes []Class
	for _, f := range r.File {
		if f.FileInfo().IsDir() {
			continue
		}
		member := name + "!/" + f.Name
		switch filepath.Ext(f.Name) {
		case ".class":
			data, err := readMember(f)
			if err != nil {
				return nil, fmt.Errorf("read %s: %w", member, err)
			}
			classes = append(classes, Class{Name: member, Data: data})
		case ".jar":
			if !nested {
				log.Debugf("skipping jar nested twice: %s", member)
				continue
			}
			data, err := readMember(f)
			if err != nil {
				return nil, fmt.Errorf("read %s: %w", member, err)
			}
			inner, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
			if err != nil {
				log.Warningf("skipping unreadable nested jar %s: %s", member, err)
				continue
			}
			innerClasses, err := readArchive(inner, member, false)
			if err != nil {
				return nil, err
			}
			classes = append(classes, innerClasses...)
		}
	}
	return classes, nil
}

func readMember(f *zip.File) ([]byte, error) {
	rc, err := f.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return io.ReadAll(rc)
}
