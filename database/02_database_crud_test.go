// /home/cmb/go/src/github.com/CatherineMariaBastin/Zaathi/database/02_database_crud_test.go
// -*- mode: go; coding: utf-8; -*-
// Created on 02. 03. 2025 by Catherine Maria Bastin
// (c) 2025 Catherine Maria Bastin
// Time-stamp: <2025-06-21 19:10:33 cmb>

package database

import (
	"fmt"
	"testing"
	"time"

	"github.com/CatherineMariaBastin/Zaathi/common"
	"github.com/CatherineMariaBastin/Zaathi/objects"
)

const (
	patientCnt     = 8
	medPerPatient  = 3
	notePerPatient = 4
)

var patients []*objects.Patient

func init() {
	patients = make([]*objects.Patient, patientCnt)

	for i := range patients {
		var p = &objects.Patient{
			Name:      fmt.Sprintf("Test Patient #%03d", i+1),
			Age:       60 + i,
			Condition: fmt.Sprintf("Test Condition #%03d", i+1),
			UUID:      common.GetUUID(),
			Timestamp: time.Now(),
		}

		patients[i] = p
	}
}

func TestPatientAdd(t *testing.T) {
	if db == nil {
		t.SkipNow()
	}

	for _, p := range patients {
		var err error

		if err = db.PatientAdd(p); err != nil {
			t.Fatalf("Cannot add Patient %s: %s",
				p.Name,
				err.Error())
		} else if p.ID == 0 {
			t.Errorf("ID of Patient %q is 0", p.Name)
		}
	}
} // func TestPatientAdd(t *testing.T)

func TestMedicineAdd(t *testing.T) {
	if db == nil {
		t.SkipNow()
	}

	for _, p := range patients {
		for i := 0; i < medPerPatient; i++ {
			var (
				err error
				m   = &objects.Medicine{
					PatientID: p.ID,
					Name:      fmt.Sprintf("Test Medicine #%03d", i+1),
					Dosage:    "500mg",
					Schedule:  fmt.Sprintf("%02d:00", 8+i*4),
					Stock:     30,
					UUID:      common.GetUUID(),
				}
			)

			if err = db.MedicineAdd(m); err != nil {
				t.Fatalf("Cannot add Medicine %s for Patient %s: %s",
					m.Name,
					p.Name,
					err.Error())
			} else if m.ID == 0 {
				t.Errorf("ID of Medicine %q is 0", m.Name)
			}

			p.Medicines = append(p.Medicines, *m)
		}
	}
} // func TestMedicineAdd(t *testing.T)

func TestNoteAdd(t *testing.T) {
	if db == nil {
		t.SkipNow()
	}

	var now = time.Now()

	for _, p := range patients {
		for i := 0; i < notePerPatient; i++ {
			var (
				err error
				n   = &objects.Note{
					PatientID: p.ID,
					Body: fmt.Sprintf("Observation #%03d for %s",
						i+1,
						p.Name),
					UUID:      common.GetUUID(),
					Timestamp: now.Add(time.Hour * time.Duration(i)),
				}
			)

			if err = db.NoteAdd(n); err != nil {
				t.Fatalf("Cannot add Note for Patient %s: %s",
					p.Name,
					err.Error())
			} else if n.ID == 0 {
				t.Errorf("ID of Note for Patient %q is 0", p.Name)
			}
		}
	}
} // func TestNoteAdd(t *testing.T)

func TestPatientGetAll(t *testing.T) {
	if db == nil {
		t.SkipNow()
	}

	var (
		err error
		all []objects.Patient
	)

	if all, err = db.PatientGetAll(); err != nil {
		t.Fatalf("Cannot fetch all Patients: %s",
			err.Error())
	} else if len(all) != len(patients) {
		t.Fatalf("Unexpected number of Patients: %d (expected %d)",
			len(all),
			len(patients))
	}

	for idx := range all {
		var p = &all[idx]

		if len(p.Medicines) != medPerPatient {
			t.Errorf("Patient %q has %d Medicines (expected %d)",
				p.Name,
				len(p.Medicines),
				medPerPatient)
		}

		if len(p.Notes) != notePerPatient {
			t.Errorf("Patient %q has %d Notes (expected %d)",
				p.Name,
				len(p.Notes),
				notePerPatient)
		}
	}
} // func TestPatientGetAll(t *testing.T)

func TestPatientGetByID(t *testing.T) {
	if db == nil {
		t.SkipNow()
	}

	var (
		err error
		ref = patients[0]
		p   *objects.Patient
	)

	if p, err = db.PatientGetByID(ref.ID); err != nil {
		t.Fatalf("Cannot fetch Patient #%d: %s",
			ref.ID,
			err.Error())
	} else if p == nil {
		t.Fatalf("Patient #%d was not found", ref.ID)
	} else if p.Name != ref.Name {
		t.Errorf("Unexpected name for Patient #%d: %q (expected %q)",
			ref.ID,
			p.Name,
			ref.Name)
	}

	if p, err = db.PatientGetByID(4093867); err != nil {
		t.Fatalf("Error looking up non-existent Patient: %s",
			err.Error())
	} else if p != nil {
		t.Errorf("Lookup of non-existent Patient returned %q",
			p.Name)
	}
} // func TestPatientGetByID(t *testing.T)

func TestNoteGetByPatient(t *testing.T) {
	if db == nil {
		t.SkipNow()
	}

	var (
		err   error
		notes []objects.Note
		ref   = patients[0]
	)

	if notes, err = db.NoteGetByPatient(ref.ID); err != nil {
		t.Fatalf("Cannot fetch Notes for Patient %q: %s",
			ref.Name,
			err.Error())
	} else if len(notes) != notePerPatient {
		t.Fatalf("Unexpected number of Notes for Patient %q: %d (expected %d)",
			ref.Name,
			len(notes),
			notePerPatient)
	}

	// Newest first
	for i := 1; i < len(notes); i++ {
		if notes[i].Timestamp.After(notes[i-1].Timestamp) {
			t.Errorf("Notes are not sorted by Timestamp in descending order: %s > %s",
				notes[i].Timestamp.Format(common.TimestampFormat),
				notes[i-1].Timestamp.Format(common.TimestampFormat))
		}
	}
} // func TestNoteGetByPatient(t *testing.T)

func TestMedicineSetSchedule(t *testing.T) {
	if db == nil {
		t.SkipNow()
	}

	var (
		err error
		m   = &patients[0].Medicines[0]
	)

	if err = db.MedicineSetSchedule(m, "21:30"); err != nil {
		t.Fatalf("Cannot set schedule of Medicine %q: %s",
			m.Name,
			err.Error())
	} else if m.Schedule != "21:30" {
		t.Errorf("Schedule of Medicine %q was not updated: %q",
			m.Name,
			m.Schedule)
	}
} // func TestMedicineSetSchedule(t *testing.T)

func TestMedicineTaken(t *testing.T) {
	if db == nil {
		t.SkipNow()
	}

	var (
		err  error
		m    = &patients[0].Medicines[0]
		when = time.Now()
		res  *objects.Medicine
	)

	if res, err = db.MedicineTaken(m.ID, when); err != nil {
		t.Fatalf("Cannot record dose of Medicine %q as taken: %s",
			m.Name,
			err.Error())
	} else if res == nil {
		t.Fatalf("MedicineTaken did not return the updated Medicine")
	} else if res.Stock != m.Stock-1 {
		t.Errorf("Unexpected stock for Medicine %q: %d (expected %d)",
			m.Name,
			res.Stock,
			m.Stock-1)
	} else if !res.WasTaken() {
		t.Errorf("Medicine %q has no last-taken stamp", m.Name)
	}
} // func TestMedicineTaken(t *testing.T)

// The stock must not go below zero, no matter how often a dose is taken.
func TestMedicineTakenStockFloor(t *testing.T) {
	if db == nil {
		t.SkipNow()
	}

	var (
		err error
		m   = &patients[1].Medicines[0]
		res *objects.Medicine
	)

	if err = db.MedicineSetStock(m, 1); err != nil {
		t.Fatalf("Cannot set stock of Medicine %q: %s",
			m.Name,
			err.Error())
	}

	for i := 0; i < 3; i++ {
		if res, err = db.MedicineTaken(m.ID, time.Now()); err != nil {
			t.Fatalf("Cannot record dose of Medicine %q as taken: %s",
				m.Name,
				err.Error())
		} else if res.Stock < 0 {
			t.Fatalf("Stock of Medicine %q went below zero: %d",
				m.Name,
				res.Stock)
		}
	}

	if res.Stock != 0 {
		t.Errorf("Unexpected stock for Medicine %q: %d (expected 0)",
			m.Name,
			res.Stock)
	}
} // func TestMedicineTakenStockFloor(t *testing.T)

func TestMedicineDelete(t *testing.T) {
	if db == nil {
		t.SkipNow()
	}

	var (
		err error
		m   = &patients[patientCnt-1].Medicines[0]
		res *objects.Medicine
	)

	if err = db.MedicineDelete(m); err != nil {
		t.Fatalf("Cannot delete Medicine %q: %s",
			m.Name,
			err.Error())
	} else if res, err = db.MedicineGetByID(m.ID); err != nil {
		t.Fatalf("Error looking up deleted Medicine %q: %s",
			m.Name,
			err.Error())
	} else if res != nil {
		t.Errorf("Medicine %q was not deleted", m.Name)
	}
} // func TestMedicineDelete(t *testing.T)

// Deleting a Patient must take their Medicines and Notes with them.
func TestPatientDelete(t *testing.T) {
	if db == nil {
		t.SkipNow()
	}

	var (
		err  error
		p    = patients[patientCnt-1]
		meds []objects.Medicine
	)

	if err = db.PatientDelete(p); err != nil {
		t.Fatalf("Cannot delete Patient %q: %s",
			p.Name,
			err.Error())
	} else if meds, err = db.MedicineGetByPatient(p.ID); err != nil {
		t.Fatalf("Error looking up Medicines of deleted Patient %q: %s",
			p.Name,
			err.Error())
	} else if len(meds) != 0 {
		t.Errorf("Deleted Patient %q still has %d Medicines",
			p.Name,
			len(meds))
	}
} // func TestPatientDelete(t *testing.T)
