// /home/cmb/go/src/github.com/CatherineMariaBastin/Zaathi/backend/99_backend_shutdown_test.go
// -*- mode: go; coding: utf-8; -*-
// Created on 12. 04. 2025 by Catherine Maria Bastin
// (c) 2025 Catherine Maria Bastin
// Time-stamp: <2025-04-12 17:02:44 cmb>

package backend

import "testing"

func TestBanish(t *testing.T) {
	if back == nil {
		t.SkipNow()
	} else if !back.IsAlive() {
		t.SkipNow()
	}

	var err error

	if err = back.Banish(); err != nil {
		t.Errorf("Failed to banish Daemon: %s", err.Error())
	}

	if back.engine.IsRunning() {
		t.Error("Reminder engine is still running after Banish")
	}
} // func TestBanish(t *testing.T)
