// /home/cmb/go/src/github.com/CatherineMariaBastin/Zaathi/i18n/01_i18n_test.go
// -*- mode: go; coding: utf-8; -*-
// Created on 02. 03. 2025 by Catherine Maria Bastin
// (c) 2025 Catherine Maria Bastin
// Time-stamp: <2025-06-14 19:40:12 cmb>

package i18n

import (
	"strings"
	"testing"

	"github.com/CatherineMariaBastin/Zaathi/objects/language"
)

// Languages without a table of their own must fall back to English
// rather than crash or return empty phrases.
func TestGetFallback(t *testing.T) {
	var en = Get(language.EN)

	for _, l := range language.All() {
		var s = Get(l)

		if s == nil {
			t.Fatalf("No Strings for language %s", l)
		}

		if s.DoseDue == "" {
			t.Errorf("Empty DoseDue phrase for language %s", l)
		}
	}

	if Get(language.HI) != en {
		t.Error("Hindi did not fall back to English")
	}
} // func TestGetFallback(t *testing.T)

func TestDoseDueMsg(t *testing.T) {
	var msg = Get(language.EN).DoseDueMsg("Achamma", "Amlodipine")

	if !strings.Contains(msg, "Achamma") || !strings.Contains(msg, "Amlodipine") {
		t.Errorf("Dose announcement is missing patient or medicine: %q",
			msg)
	}
} // func TestDoseDueMsg(t *testing.T)
