// /home/cmb/go/src/github.com/CatherineMariaBastin/Zaathi/report/01_report_test.go
// -*- mode: go; coding: utf-8; -*-
// Created on 23. 03. 2025 by Catherine Maria Bastin
// (c) 2025 Catherine Maria Bastin
// Time-stamp: <2025-06-14 21:18:56 cmb>

package report

import (
	"strings"
	"testing"
	"time"

	"github.com/CatherineMariaBastin/Zaathi/objects"
)

func TestBuild(t *testing.T) {
	var (
		now = time.Date(2025, 6, 14, 21, 15, 0, 0, time.Local)
		p   = &objects.Patient{
			ID:        1,
			Name:      "Achamma",
			Age:       74,
			Condition: "Hypertension",
			Medicines: []objects.Medicine{
				{Name: "Amlodipine", Dosage: "5mg", Schedule: "08:00", Stock: 12},
			},
			Notes: []objects.Note{
				{
					Body:      "Blood pressure stable this week.",
					Timestamp: time.Date(2025, 6, 10, 9, 0, 0, 0, time.Local),
				},
			},
		}
	)

	var rpt = Build(p, now)

	var fragments = []string{
		"DOCTOR VISIT REPORT",
		"Generated on: 2025-06-14 21:15:00",
		"Name: Achamma",
		"Age: 74",
		"Primary Condition: Hypertension",
		"- Amlodipine: 5mg (Scheduled at 08:00). Current Stock: 12",
		"[2025-06-10] Blood pressure stable this week.",
		"End of Report",
	}

	for _, f := range fragments {
		if !strings.Contains(rpt, f) {
			t.Errorf("Report is missing %q:\n%s",
				f,
				rpt)
		}
	}
} // func TestBuild(t *testing.T)

func TestBuildEmpty(t *testing.T) {
	var (
		now = time.Now()
		p   = &objects.Patient{
			ID:        2,
			Name:      "Krishnan",
			Age:       81,
			Condition: "Diabetes",
		}
	)

	var rpt = Build(p, now)

	if !strings.Contains(rpt, "No medications listed.") {
		t.Error("Report does not mention the empty medication list")
	}

	if !strings.Contains(rpt, "No observation notes available.") {
		t.Error("Report does not mention the missing notes")
	}
} // func TestBuildEmpty(t *testing.T)
