// Copyright (c) marcwadey 2026. All rights reserved.
// SPDX-License-Identifier: MIT

package archive

import (
	"encoding/json"
	"errors"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/spf13/afero"

	"github.com/marcwadey/sciutil/deferred"
)

// FsFactory returns the filesystem used for all reads and writes.
var FsFactory = func() afero.Fs {
	return afero.NewOsFs()
}

var (
	// ErrEncode is returned when a parameter mapping cannot be encoded.
	ErrEncode = errors.New("archive: failed to encode parameters")
	// ErrDecode is returned when a parameter file cannot be decoded.
	ErrDecode = errors.New("archive: failed to decode parameters")
	// ErrWriteFile is returned when the parameter file cannot be written.
	ErrWriteFile = errors.New("archive: failed to write parameter file")
	// ErrReadFile is returned when the parameter file cannot be read.
	ErrReadFile = errors.New("archive: failed to read parameter file")
)

const filePerm os.FileMode = 0o644

// SaveJSON writes the exported parameters of obj to path as indented JSON.
func SaveJSON(path string, obj deferred.Object) error {
	data, err := json.MarshalIndent(deferred.Export(obj), "", "  ")
	if err != nil {
		return errors.Join(ErrEncode, err)
	}

	return write(path, append(data, '\n'))
}

// LoadJSON reads a parameter file written by [SaveJSON] and restores obj from
// it. The object's Init runs as part of the restore; a file missing a
// required parameter fails there.
func LoadJSON(path string, obj deferred.Object) error {
	data, err := read(path)
	if err != nil {
		return err
	}

	var params map[string]any
	if err := json.Unmarshal(data, &params); err != nil {
		return errors.Join(ErrDecode, err)
	}

	return deferred.Restore(obj, params)
}

// SaveYAML writes the exported parameters of obj to path as YAML.
func SaveYAML(path string, obj deferred.Object) error {
	data, err := yaml.Marshal(deferred.Export(obj))
	if err != nil {
		return errors.Join(ErrEncode, err)
	}

	return write(path, data)
}

// LoadYAML reads a parameter file written by [SaveYAML] and restores obj from it.
func LoadYAML(path string, obj deferred.Object) error {
	data, err := read(path)
	if err != nil {
		return err
	}

	var params map[string]any
	if err := yaml.Unmarshal(data, &params); err != nil {
		return errors.Join(ErrDecode, err)
	}

	return deferred.Restore(obj, params)
}

func write(path string, data []byte) error {
	if err := afero.WriteFile(FsFactory(), path, data, filePerm); err != nil {
		return errors.Join(ErrWriteFile, err)
	}

	return nil
}

func read(path string) ([]byte, error) {
	data, err := afero.ReadFile(FsFactory(), path)
	if err != nil {
		return nil, errors.Join(ErrReadFile, err)
	}

	return data, nil
}
