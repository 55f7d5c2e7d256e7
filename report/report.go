// /home/cmb/go/src/github.com/CatherineMariaBastin/Zaathi/report/report.go
// -*- mode: go; coding: utf-8; -*-
// Created on 22. 03. 2025 by Catherine Maria Bastin
// (c) 2025 Catherine Maria Bastin
// Time-stamp: <2025-06-14 21:06:48 cmb>

// Package report assembles the plain-text doctor visit report for a
// Patient: personal data, current medications, and the caregiver's
// visit notes.
package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/CatherineMariaBastin/Zaathi/common"
	"github.com/CatherineMariaBastin/Zaathi/objects"
)

const rule = "-------------------"

// Build renders the visit report for the given Patient.
func Build(p *objects.Patient, now time.Time) string {
	var buf strings.Builder

	buf.WriteString("DOCTOR VISIT REPORT\n")
	buf.WriteString(rule)
	buf.WriteString("\n")
	fmt.Fprintf(&buf, "Generated on: %s\n\n",
		now.Format(common.TimestampFormat))

	buf.WriteString("PATIENT INFORMATION\n")
	fmt.Fprintf(&buf, "Name: %s\n", p.Name)
	fmt.Fprintf(&buf, "Age: %d\n", p.Age)
	fmt.Fprintf(&buf, "Primary Condition: %s\n\n", p.Condition)

	buf.WriteString("CURRENT MEDICATIONS\n")
	if len(p.Medicines) == 0 {
		buf.WriteString("No medications listed.\n")
	} else {
		for idx := range p.Medicines {
			var m = &p.Medicines[idx]
			fmt.Fprintf(&buf, "- %s: %s (Scheduled at %s). Current Stock: %d\n",
				m.Name,
				m.Dosage,
				m.Schedule,
				m.Stock)
		}
	}

	buf.WriteString("\nVISIT NOTES & OBSERVATIONS\n")
	if len(p.Notes) == 0 {
		buf.WriteString("No observation notes available.\n")
	} else {
		for idx := range p.Notes {
			var n = &p.Notes[idx]
			fmt.Fprintf(&buf, "[%s] %s\n\n",
				n.Timestamp.Format(common.TimestampFormatDate),
				n.Body)
		}
	}

	buf.WriteString(rule)
	buf.WriteString("\nEnd of Report\n")

	return buf.String()
} // func Build(p *objects.Patient, now time.Time) string
