// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package settings provides a typed view of the records office configuration document.
package settings

import (
	"log/slog"
	"time"

	"github.com/z5labs/brrcs/config"
)

// Config mirrors the sections of config.json.
type Config struct {
	AppName   string    `config:"app_name"`
	Version   string    `config:"version"`
	Database  Database  `config:"database"`
	Templates Templates `config:"templates"`
	Output    Output    `config:"output"`
	GUI       GUI       `config:"gui"`
	Logging   Logging   `config:"logging"`
}

// Database locates the resident records workbook and its backups.
type Database struct {
	Path        string        `config:"path"`
	Sheet       string        `config:"sheet"`
	BackupDir   string        `config:"backup_dir"`
	MaxBackups  int           `config:"max_backups"`
	LockTimeout time.Duration `config:"lock_timeout"`
}

// Templates locates the certificate and clearance templates.
type Templates struct {
	Dir         string `config:"dir"`
	Certificate string `config:"certificate"`
	Clearance   string `config:"clearance"`
	Indigency   string `config:"indigency"`
}

// Output controls where generated documents are written.
type Output struct {
	Dir               string `config:"dir"`
	OpenAfterGenerate bool   `config:"open_after_generate"`
}

// GUI holds display settings for the main window.
type GUI struct {
	Title  string `config:"title"`
	Width  int    `config:"width"`
	Height int    `config:"height"`
	Theme  string `config:"theme"`
}

// Logging configures the application log.
type Logging struct {
	Level  slog.Level `config:"level"`
	Format string     `config:"format"`
	Dir    string     `config:"dir"`
}

// Default returns the document written for a fresh installation.
func Default() config.Map {
	return config.Map{
		"app_name": "BRRCS",
		"version":  "1.0.0",
		"database": map[string]any{
			"path":         "data/sample_residents.xlsx",
			"sheet":        "Residents",
			"backup_dir":   "backups",
			"max_backups":  10,
			"lock_timeout": "5s",
		},
		"templates": map[string]any{
			"dir":         "templates",
			"certificate": "certificate_of_residency.docx",
			"clearance":   "barangay_clearance.docx",
			"indigency":   "certificate_of_indigency.docx",
		},
		"output": map[string]any{
			"dir":                 "output",
			"open_after_generate": true,
		},
		"gui": map[string]any{
			"title":  "Barangay 6 Resident Records and Certification System",
			"width":  1200,
			"height": 800,
			"theme":  "light",
		},
		"logging": map[string]any{
			"level":  "info",
			"format": "text",
			"dir":    "logs",
		},
	}
}

// Read decodes the store's document into a Config. Settings absent from
// the document keep their [Default] values.
func Read(s *config.Store) (Config, error) {
	var cfg Config
	err := config.Unmarshal(Default(), &cfg)
	if err != nil {
		return cfg, err
	}

	err = s.Unmarshal(&cfg)
	if err != nil {
		return cfg, err
	}
	return cfg, nil
}
