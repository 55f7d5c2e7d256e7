// /home/cmb/go/src/github.com/CatherineMariaBastin/Zaathi/common/common.go
// -*- mode: go; coding: utf-8; -*-
// Created on 08. 02. 2025 by Catherine Maria Bastin
// (c) 2025 Catherine Maria Bastin
// Time-stamp: <2025-06-21 17:48:02 cmb>

// Package common provides constants and helpers used throughout
// the application.
package common

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/CatherineMariaBastin/Zaathi/logdomain"
	"github.com/hashicorp/logutils"
	"github.com/odeke-em/go-uuid"
)

// Debug, if set, causes the application to log additional messages.
// AppName is the name under which the application identifies itself
// to the outside world.
const (
	Debug                    = true
	AppName                  = "Zaathi"
	Version                  = "0.3.1"
	TimestampFormat          = "2006-01-02 15:04:05"
	TimestampFormatDate      = "2006-01-02"
	TimestampFormatTime      = "15:04:05"
	TimestampFormatMinute    = "15:04"
	TimestampFormatSubSecond = "2006-01-02 15:04:05.0000 MST"
	DefaultPort              = 7202
)

// LogLevels are the names of the log levels supported by the logger.
var LogLevels = []logutils.LogLevel{
	"TRACE",
	"DEBUG",
	"INFO",
	"WARN",
	"ERROR",
	"CRITICAL",
	"CANTHAPPEN",
	"SILENT",
}

// PackageLevels defines minimum log levels per package.
var PackageLevels = make(map[logdomain.ID]logutils.LogLevel, len(LogLevels))

func init() {
	for _, id := range logdomain.AllDomains() {
		PackageLevels[id] = MinLogLevel
	}
} // func init()

// MinLogLevel is the minimum level a log message must have to get logged.
var MinLogLevel logutils.LogLevel = "TRACE"

// BuildStamp is the time the binary was built. It is meant to be set by
// the linker (go build -ldflags "-X ...").
var BuildStamp = "unknown"

// BaseDir is the folder where all application-specific files
// (database, log files, etc.) are stored.
var BaseDir = filepath.Join(
	os.Getenv("HOME"),
	fmt.Sprintf(".%s.d", strings.ToLower(AppName)))

// LogPath is the filename of the log file.
var LogPath = filepath.Join(BaseDir, strings.ToLower(AppName)+".log")

// DbPath is the filename of the database.
var DbPath = filepath.Join(BaseDir, strings.ToLower(AppName)+".db")

// SetBaseDir sets the application's base directory. This should only be
// done at startup, before any log files or databases are opened.
func SetBaseDir(path string) error {
	fmt.Printf("Setting BaseDir to %s\n", path)

	BaseDir = path
	LogPath = filepath.Join(BaseDir, strings.ToLower(AppName)+".log")
	DbPath = filepath.Join(BaseDir, strings.ToLower(AppName)+".db")

	if err := InitApp(); err != nil {
		fmt.Printf("Error initializing application environment: %s\n",
			err.Error())
		return err
	}

	return nil
} // func SetBaseDir(path string) error

// GetLogger tries to create a Logger for the given log domain.
func GetLogger(dom logdomain.ID) (*log.Logger, error) {
	var (
		err  error
		name = fmt.Sprintf("%s.%s",
			AppName,
			dom)
	)

	if err = InitApp(); err != nil {
		return nil, fmt.Errorf("Error initializing application environment: %s",
			err.Error())
	}

	var logfile *os.File

	if logfile, err = os.OpenFile(LogPath, os.O_RDWR|os.O_APPEND|os.O_CREATE, 0644); err != nil {
		var msg = fmt.Sprintf("Error opening log file %s: %s",
			LogPath,
			err.Error())
		fmt.Println(msg)
		return nil, errors.New(msg)
	}

	var writer = io.MultiWriter(os.Stderr, logfile)

	var filter = &logutils.LevelFilter{
		Levels:   LogLevels,
		MinLevel: PackageLevels[dom],
		Writer:   writer,
	}

	var logger = log.New(filter, name+" ", log.Ldate|log.Ltime|log.Lshortfile)

	return logger, nil
} // func GetLogger(dom logdomain.ID) (*log.Logger, error)

// InitApp performs some basic preparations for the application to run.
// Currently, this means creating the BaseDir if it does not exist.
func InitApp() error {
	var err error

	if err = os.Mkdir(BaseDir, 0755); err != nil {
		if !os.IsExist(err) {
			return fmt.Errorf("Error creating BaseDir %s: %s",
				BaseDir,
				err.Error())
		}
	}

	return nil
} // func InitApp() error

// GetUUID returns a freshly generated UUID.
func GetUUID() string {
	return uuid.NewRandom().String()
} // func GetUUID() string
