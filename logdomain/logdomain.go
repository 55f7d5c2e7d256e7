// /home/cmb/go/src/github.com/CatherineMariaBastin/Zaathi/logdomain/logdomain.go
// -*- mode: go; coding: utf-8; -*-
// Created on 08. 02. 2025 by Catherine Maria Bastin
// (c) 2025 Catherine Maria Bastin
// Time-stamp: <2025-05-30 18:22:41 cmb>

// Package logdomain provides symbolic constants to identify the various
// "areas" of the application that perform logging.
package logdomain

//go:generate stringer -type=ID

// ID represents an area of concern.
type ID uint8

// These constants identify the various log sources.
const (
	Common ID = iota
	Backend
	Client
	Database
	DBPool
	Extraction
	Reminder
	Speech
)

// AllDomains returns a slice of all the known log sources.
func AllDomains() []ID {
	return []ID{
		Common,
		Backend,
		Client,
		Database,
		DBPool,
		Extraction,
		Reminder,
		Speech,
	}
} // func AllDomains() []ID
