// /home/cmb/go/src/github.com/CatherineMariaBastin/Zaathi/objects/alarm.go
// -*- mode: go; coding: utf-8; -*-
// Created on 22. 02. 2025 by Catherine Maria Bastin
// (c) 2025 Catherine Maria Bastin
// Time-stamp: <2025-06-21 18:11:54 cmb>

package objects

import (
	"fmt"
	"time"

	"github.com/CatherineMariaBastin/Zaathi/common"
)

//go:generate ffjson alarm.go

// Alarm is a dose reminder that has been raised and is waiting for the
// caregiver to resolve it. The names are display snapshots taken at the
// moment the Alarm was raised.
type Alarm struct {
	Key          string
	PatientID    int64
	MedicineID   int64
	PatientName  string
	MedicineName string
	Raised       time.Time
}

// AlarmKey computes the identity under which a single day's dose
// occurrence is tracked. Note that the schedule string is part of the
// key, so editing a Medicine's schedule mid-day yields a fresh key.
func AlarmKey(day time.Time, patientID, medicineID int64, schedule string) string {
	return fmt.Sprintf("%s-%d-%d-%s",
		day.Format(common.TimestampFormatDate),
		patientID,
		medicineID,
		schedule)
} // func AlarmKey(day time.Time, patientID, medicineID int64, schedule string) string

// Payload returns the Alarm's title and body for display to the user.
func (a *Alarm) Payload() (string, string) {
	return a.MedicineName,
		fmt.Sprintf("It is time for %s to take %s",
			a.PatientName,
			a.MedicineName)
} // func (a *Alarm) Payload() (string, string)

func (a *Alarm) String() string {
	return fmt.Sprintf("Alarm{ Key: %q, Patient: %q, Medicine: %q, Raised: %s }",
		a.Key,
		a.PatientName,
		a.MedicineName,
		a.Raised.Format(common.TimestampFormat))
} // func (a *Alarm) String() string
