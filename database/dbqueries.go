// /home/cmb/go/src/github.com/CatherineMariaBastin/Zaathi/database/dbqueries.go
// -*- mode: go; coding: utf-8; -*-
// Created on 22. 02. 2025 by Catherine Maria Bastin
// (c) 2025 Catherine Maria Bastin
// Time-stamp: <2025-06-14 20:48:51 cmb>

package database

import "github.com/CatherineMariaBastin/Zaathi/database/query"

var dbQueries = map[query.ID]string{
	query.PatientAdd: `
INSERT INTO patient (name, age, condition, uuid, timestamp)
VALUES              (   ?,   ?,         ?,    ?,         ?)
`,
	query.PatientDelete: "DELETE FROM patient WHERE id = ?",
	query.PatientGetByID: `
SELECT
    name,
    age,
    condition,
    uuid,
    timestamp
FROM patient
WHERE id = ?
`,
	query.PatientGetAll: `
SELECT
    id,
    name,
    age,
    condition,
    uuid,
    timestamp
FROM patient
ORDER BY timestamp, name
`,
	query.MedicineAdd: `
INSERT INTO medicine (patient_id, name, dosage, schedule, stock, uuid)
VALUES               (         ?,    ?,      ?,        ?,     ?,    ?)
`,
	query.MedicineDelete: "DELETE FROM medicine WHERE id = ?",
	query.MedicineGetByID: `
SELECT
    patient_id,
    name,
    dosage,
    schedule,
    stock,
    last_taken,
    uuid
FROM medicine
WHERE id = ?
`,
	query.MedicineGetByPatient: `
SELECT
    id,
    name,
    dosage,
    schedule,
    stock,
    last_taken,
    uuid
FROM medicine
WHERE patient_id = ?
ORDER BY schedule, name
`,
	query.MedicineSetSchedule: `
UPDATE medicine
SET schedule = ?
WHERE id = ?
`,
	query.MedicineSetStock: `
UPDATE medicine
SET stock = MAX(?, 0)
WHERE id = ?
`,
	query.MedicineTaken: `
UPDATE medicine
SET stock = MAX(stock - 1, 0), last_taken = ?
WHERE id = ?
`,
	query.NoteAdd: `
INSERT INTO note (patient_id, body, uuid, timestamp)
VALUES           (         ?,    ?,    ?,         ?)
`,
	query.NoteGetByPatient: `
SELECT
    id,
    body,
    uuid,
    timestamp
FROM note
WHERE patient_id = ?
ORDER BY timestamp DESC
`,
}
