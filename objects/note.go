// /home/cmb/go/src/github.com/CatherineMariaBastin/Zaathi/objects/note.go
// -*- mode: go; coding: utf-8; -*-
// Created on 15. 02. 2025 by Catherine Maria Bastin
// (c) 2025 Catherine Maria Bastin
// Time-stamp: <2025-05-11 16:02:29 cmb>

package objects

import "time"

//go:generate ffjson note.go

// Note is a free-form observation the caregiver recorded about a
// Patient, e.g. during a doctor visit. Notes are immutable once created.
type Note struct {
	ID        int64
	PatientID int64
	Body      string
	UUID      string
	Timestamp time.Time
}
