// /home/cmb/go/src/github.com/CatherineMariaBastin/Zaathi/database/query/query.go
// -*- mode: go; coding: utf-8; -*-
// Created on 22. 02. 2025 by Catherine Maria Bastin
// (c) 2025 Catherine Maria Bastin
// Time-stamp: <2025-06-07 21:14:36 cmb>

// Package query provides symbolic constants for identifying SQL queries.
package query

//go:generate stringer -type=ID

type ID uint8

const (
	PatientAdd ID = iota
	PatientDelete
	PatientGetByID
	PatientGetAll
	MedicineAdd
	MedicineDelete
	MedicineGetByID
	MedicineGetByPatient
	MedicineSetSchedule
	MedicineSetStock
	MedicineTaken
	NoteAdd
	NoteGetByPatient
)
