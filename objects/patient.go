// /home/cmb/go/src/github.com/CatherineMariaBastin/Zaathi/objects/patient.go
// -*- mode: go; coding: utf-8; -*-
// Created on 15. 02. 2025 by Catherine Maria Bastin
// (c) 2025 Catherine Maria Bastin
// Time-stamp: <2025-06-18 19:33:40 cmb>

// Package objects provides the data types used by the application.
package objects

import (
	"fmt"
	"time"
)

//go:generate ffjson patient.go

// Patient is a person in the caregiver's charge, along with their
// prescribed Medicines and visit Notes (newest first).
type Patient struct {
	ID        int64
	Name      string
	Age       int
	Condition string
	Medicines []Medicine
	Notes     []Note
	UUID      string
	Timestamp time.Time
}

func (p *Patient) String() string {
	return fmt.Sprintf("Patient{ ID: %d, Name: %q, Age: %d, Medicines: %d, Notes: %d }",
		p.ID,
		p.Name,
		p.Age,
		len(p.Medicines),
		len(p.Notes))
} // func (p *Patient) String() string

// UniqueID returns an identifier that is unique across instances.
func (p *Patient) UniqueID() string {
	return p.UUID
} // func (p *Patient) UniqueID() string
