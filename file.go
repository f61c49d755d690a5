package main

import (
	"errors"
	"io"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"
)

// stdio names the standard input or output in place of a path.
const stdio = "-"

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return !errors.Is(err, os.ErrNotExist)
}

func openInput(path string) (io.ReadCloser, error) {
	if path == stdio {
		return io.NopCloser(os.Stdin), nil
	}
	if !fileExists(path) {
		return nil, newConfigError("input file %q doesn't exist", absPath(path))
	}
	return os.Open(path)
}

func openOutput(path string) (io.WriteCloser, error) {
	if path == stdio {
		return nopCloser{os.Stdout}, nil
	}
	return os.Create(path)
}

func closeFile(name string, closer io.Closer) {
	if err := closer.Close(); err != nil {
		log.WithFields(log.Fields{
			"error": err,
			"file":  name,
		}).Error("Error closing file")
	}
}

func absPath(file string) string {
	path, err := filepath.Abs(file)
	if err != nil {
		return file
	}
	return path
}
