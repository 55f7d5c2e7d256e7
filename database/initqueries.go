// /home/cmb/go/src/github.com/CatherineMariaBastin/Zaathi/database/initqueries.go
// -*- mode: go; coding: utf-8; -*-
// Created on 22. 02. 2025 by Catherine Maria Bastin
// (c) 2025 Catherine Maria Bastin
// Time-stamp: <2025-06-07 21:20:12 cmb>

package database

var initQueries = []string{
	`
CREATE TABLE patient (
    id        INTEGER PRIMARY KEY,
    name      TEXT NOT NULL,
    age       INTEGER NOT NULL DEFAULT 0,
    condition TEXT NOT NULL DEFAULT '',
    uuid      TEXT UNIQUE NOT NULL,
    timestamp INTEGER NOT NULL,
    CHECK (age >= 0)
)
`,
	`
CREATE TABLE medicine (
    id         INTEGER PRIMARY KEY,
    patient_id INTEGER NOT NULL,
    name       TEXT NOT NULL,
    dosage     TEXT NOT NULL DEFAULT '',
    schedule   TEXT NOT NULL,
    stock      INTEGER NOT NULL DEFAULT 0,
    last_taken INTEGER,
    uuid       TEXT UNIQUE NOT NULL,
    FOREIGN KEY (patient_id) REFERENCES patient (id)
        ON DELETE CASCADE
        ON UPDATE RESTRICT,
    CHECK (stock >= 0)
)
`,
	`
CREATE TABLE note (
    id         INTEGER PRIMARY KEY,
    patient_id INTEGER NOT NULL,
    body       TEXT NOT NULL,
    uuid       TEXT UNIQUE NOT NULL,
    timestamp  INTEGER NOT NULL,
    FOREIGN KEY (patient_id) REFERENCES patient (id)
        ON DELETE CASCADE
        ON UPDATE RESTRICT
)
`,
	"CREATE INDEX medicine_patient_idx ON medicine (patient_id)",
	"CREATE INDEX medicine_schedule_idx ON medicine (schedule)",
	"CREATE INDEX note_patient_idx ON note (patient_id)",
	"CREATE INDEX note_time_idx ON note (timestamp)",
}
