// /home/cmb/go/src/github.com/CatherineMariaBastin/Zaathi/database/main_test.go
// -*- mode: go; coding: utf-8; -*-
// Created on 01. 03. 2025 by Catherine Maria Bastin
// (c) 2025 Catherine Maria Bastin
// Time-stamp: <2025-03-01 18:22:54 cmb>

package database

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/CatherineMariaBastin/Zaathi/common"
)

func TestMain(m *testing.M) {
	var (
		err     error
		result  int
		stamp   = time.Now().Format("20060102_150405")
		baseDir = filepath.Join(
			os.TempDir(),
			fmt.Sprintf("zaathi_database_test_%s", stamp))
	)

	if err = common.SetBaseDir(baseDir); err != nil {
		fmt.Printf("Cannot set base directory to %s: %s\n",
			baseDir,
			err.Error())
		os.Exit(1)
	} else if result = m.Run(); result == 0 {
		os.RemoveAll(baseDir) // nolint: errcheck
	}

	os.Exit(result)
} // func TestMain(m *testing.M)
