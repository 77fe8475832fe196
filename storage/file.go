package storage

import (
	"os"
	"path/filepath"
)

const (
	dirMode  = 0o755
	fileMode = 0o644
)

type (
	// AppendSink adds one line to the end of the file at path, creating the
	// file and its directory when missing.
	AppendSink struct{}

	// OverwriteSink replaces the file at path with the single given line.
	OverwriteSink struct{}
)

func (AppendSink) Write(path, line string) error {
	if err := os.MkdirAll(filepath.Dir(path), dirMode); err != nil {
		return err
	}

	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, fileMode)

	if err != nil {
		return err
	}

	if _, err := file.WriteString(line + "\n"); err != nil {
		_ = file.Close()
		return err
	}

	return file.Close()
}

func (OverwriteSink) Write(path, line string) error {
	if err := os.MkdirAll(filepath.Dir(path), dirMode); err != nil {
		return err
	}

	return os.WriteFile(path, []byte(line+"\n"), fileMode)
}
