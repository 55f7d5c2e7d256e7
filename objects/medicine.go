// /home/cmb/go/src/github.com/CatherineMariaBastin/Zaathi/objects/medicine.go
// -*- mode: go; coding: utf-8; -*-
// Created on 15. 02. 2025 by Catherine Maria Bastin
// (c) 2025 Catherine Maria Bastin
// Time-stamp: <2025-06-18 19:35:02 cmb>

package objects

import (
	"fmt"
	"time"

	"github.com/CatherineMariaBastin/Zaathi/common"
)

//go:generate ffjson medicine.go

// Medicine is a drug prescribed to a Patient, to be taken every day at
// the wall-clock time given by Schedule ("HH:MM", 24-hour clock).
// A Schedule that does not have that form never matches and thus
// never triggers an alarm.
type Medicine struct {
	ID        int64
	PatientID int64
	Name      string
	Dosage    string
	Schedule  string
	Stock     int
	LastTaken time.Time
	UUID      string
}

// DueAt returns true if the Medicine's scheduled time of day equals
// the time of day of the given reference time, truncated to the minute.
func (m *Medicine) DueAt(ref time.Time) bool {
	return m.Schedule == ref.Format(common.TimestampFormatMinute)
} // func (m *Medicine) DueAt(ref time.Time) bool

// WasTaken returns true if a dose of the Medicine has ever been
// recorded as taken.
func (m *Medicine) WasTaken() bool {
	return !m.LastTaken.IsZero()
} // func (m *Medicine) WasTaken() bool

func (m *Medicine) String() string {
	return fmt.Sprintf("Medicine{ ID: %d, Name: %q, Dosage: %q, Schedule: %q, Stock: %d }",
		m.ID,
		m.Name,
		m.Dosage,
		m.Schedule,
		m.Stock)
} // func (m *Medicine) String() string
