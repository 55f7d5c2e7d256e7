// /home/cmb/go/src/github.com/CatherineMariaBastin/Zaathi/database/database.go
// -*- mode: go; coding: utf-8; -*-
// Created on 22. 02. 2025 by Catherine Maria Bastin
// (c) 2025 Catherine Maria Bastin
// Time-stamp: <2025-06-21 19:02:33 cmb>

// Package database persists the patient records - patients, their
// prescribed medicines, and the caregiver's visit notes - in an SQLite
// database.
package database

import (
	"database/sql"
	"errors"
	"fmt"
	"log"
	"os"
	"regexp"
	"sync"
	"time"

	"github.com/CatherineMariaBastin/Zaathi/common"
	"github.com/CatherineMariaBastin/Zaathi/database/query"
	"github.com/CatherineMariaBastin/Zaathi/logdomain"
	"github.com/CatherineMariaBastin/Zaathi/objects"
	"github.com/blicero/krylib"
	_ "github.com/mattn/go-sqlite3" // Import the database driver
)

var (
	openLock sync.Mutex
	idCnt    int64
)

// ErrTxInProgress indicates that an attempt to initiate a transaction failed
// because there is already one in progress.
var ErrTxInProgress = errors.New("A Transaction is already in progress")

// ErrNoTxInProgress indicates that an attempt was made to finish a
// transaction when none was active.
var ErrNoTxInProgress = errors.New("There is no transaction in progress")

// If a query returns an error and the error text is matched by this regex, we
// consider the error to be transient and try again after a short delay.
var retryPat = regexp.MustCompile("(?i)database is (?:locked|busy)")

// worthARetry returns true if an error returned from the database
// is matched by the retryPat regex.
func worthARetry(e error) bool {
	return retryPat.MatchString(e.Error())
} // func worthARetry(e error) bool

// retryDelay is the amount of time we wait before we repeat a database
// operation that failed due to a transient error.
const retryDelay = 25 * time.Millisecond

func waitForRetry() {
	time.Sleep(retryDelay)
} // func waitForRetry()

// Database wraps a connection to the underlying data store and
// provides the operations the application needs on it.
type Database struct {
	id      int64
	db      *sql.DB
	tx      *sql.Tx
	log     *log.Logger
	path    string
	queries map[query.ID]*sql.Stmt
}

// Open opens a Database. If the database specified by the path does not
// exist yet, it is created and initialized.
func Open(path string) (*Database, error) {
	var (
		err      error
		dbExists bool
		db       = &Database{
			path:    path,
			queries: make(map[query.ID]*sql.Stmt, len(dbQueries)),
		}
	)

	openLock.Lock()
	defer openLock.Unlock()
	idCnt++
	db.id = idCnt

	if db.log, err = common.GetLogger(logdomain.Database); err != nil {
		return nil, err
	}

	var connstring = fmt.Sprintf("%s?_locking=NORMAL&_journal=WAL&_fk=1&recursive_triggers=0",
		path)

	if dbExists, err = krylib.Fexists(path); err != nil {
		db.log.Printf("[ERROR] Failed to check if database file %s exists: %s\n",
			path,
			err.Error())
		return nil, err
	} else if db.db, err = sql.Open("sqlite3", connstring); err != nil {
		db.log.Printf("[ERROR] Failed to open %s: %s\n",
			path,
			err.Error())
		return nil, err
	}

	if !dbExists {
		if err = db.initialize(); err != nil {
			var e2 error
			if e2 = db.db.Close(); e2 != nil {
				db.log.Printf("[CRITICAL] Failed to close database: %s\n",
					e2.Error())
				return nil, e2
			} else if e2 = os.Remove(path); e2 != nil {
				db.log.Printf("[CRITICAL] Failed to remove database file %s: %s\n",
					db.path,
					e2.Error())
			}
			return nil, err
		}
		db.log.Printf("[INFO] Database at %s has been initialized\n",
			path)
	}

	return db, nil
} // func Open(path string) (*Database, error)

func (db *Database) initialize() error {
	var (
		err error
		tx  *sql.Tx
	)

	if tx, err = db.db.Begin(); err != nil {
		db.log.Printf("[ERROR] Cannot begin transaction: %s\n",
			err.Error())
		return err
	}

	for _, q := range initQueries {
		db.log.Printf("[TRACE] Execute init query:\n%s\n",
			q)
		if _, err = tx.Exec(q); err != nil {
			db.log.Printf("[ERROR] Cannot execute init query: %s\n%s\n",
				err.Error(),
				q)
			if rbErr := tx.Rollback(); rbErr != nil {
				db.log.Printf("[CANTHAPPEN] Cannot rollback transaction: %s\n",
					rbErr.Error())
				return rbErr
			}
			return err
		}
	}

	if err = tx.Commit(); err != nil {
		db.log.Printf("[CANTHAPPEN] Failed to commit init transaction: %s\n",
			err.Error())
		return err
	}

	return nil
} // func (db *Database) initialize() error

// Close closes the database.
// If there is a pending transaction, it is rolled back.
func (db *Database) Close() error {
	var err error

	if db.tx != nil {
		if err = db.tx.Rollback(); err != nil {
			db.log.Printf("[CRITICAL] Cannot roll back pending transaction: %s\n",
				err.Error())
			return err
		}
		db.tx = nil
	}

	for key, stmt := range db.queries {
		if err = stmt.Close(); err != nil {
			db.log.Printf("[CRITICAL] Cannot close statement handle %s: %s\n",
				key,
				err.Error())
			return err
		}
		delete(db.queries, key)
	}

	if err = db.db.Close(); err != nil {
		db.log.Printf("[CRITICAL] Cannot close database: %s\n",
			err.Error())
		return err
	}

	db.db = nil
	return nil
} // func (db *Database) Close() error

func (db *Database) getQuery(id query.ID) (*sql.Stmt, error) {
	var (
		stmt *sql.Stmt
		ok   bool
		err  error
	)

	if stmt, ok = db.queries[id]; ok {
		return stmt, nil
	} else if _, ok = dbQueries[id]; !ok {
		return nil, fmt.Errorf("Unknown query %d", id)
	}

PREPARE_QUERY:
	if stmt, err = db.db.Prepare(dbQueries[id]); err != nil {
		if worthARetry(err) {
			waitForRetry()
			goto PREPARE_QUERY
		}

		db.log.Printf("[ERROR] Cannot parse query %s: %s\n%s\n",
			id,
			err.Error(),
			dbQueries[id])
		return nil, err
	}

	db.queries[id] = stmt
	return stmt, nil
} // func (db *Database) getQuery(query.ID) (*sql.Stmt, error)

// Begin begins an explicit database transaction.
// Only one transaction can be in progress at once, attempting to start one
// while another transaction is already in progress yields ErrTxInProgress.
func (db *Database) Begin() error {
	var err error

	db.log.Printf("[DEBUG] Database#%d Begin Transaction\n",
		db.id)

	if db.tx != nil {
		return ErrTxInProgress
	}

BEGIN_TX:
	for db.tx == nil {
		if db.tx, err = db.db.Begin(); err != nil {
			if worthARetry(err) {
				waitForRetry()
				continue BEGIN_TX
			} else {
				db.log.Printf("[ERROR] Failed to start transaction: %s\n",
					err.Error())
				return err
			}
		}
	}

	return nil
} // func (db *Database) Begin() error

// Commit ends the active transaction, making any changes made during that
// transaction permanent and visible to other connections.
func (db *Database) Commit() error {
	var err error

	db.log.Printf("[DEBUG] Database#%d Commit Transaction\n",
		db.id)

	if db.tx == nil {
		return ErrNoTxInProgress
	} else if err = db.tx.Commit(); err != nil {
		return fmt.Errorf("Cannot commit transaction: %s",
			err.Error())
	}

	db.tx = nil
	return nil
} // func (db *Database) Commit() error

// Rollback terminates a pending transaction, undoing any changes to the
// database made during that transaction.
func (db *Database) Rollback() error {
	var err error

	db.log.Printf("[DEBUG] Database#%d Roll back Transaction\n",
		db.id)

	if db.tx == nil {
		return ErrNoTxInProgress
	} else if err = db.tx.Rollback(); err != nil {
		return fmt.Errorf("Cannot roll back transaction: %s",
			err.Error())
	}

	db.tx = nil
	return nil
} // func (db *Database) Rollback() error

// PatientAdd adds a new Patient to the database.
func (db *Database) PatientAdd(p *objects.Patient) error {
	const qid query.ID = query.PatientAdd
	var (
		err  error
		msg  string
		stmt *sql.Stmt
		tx   *sql.Tx
	)

	if stmt, err = db.getQuery(qid); err != nil {
		db.log.Printf("[ERROR] Cannot prepare query %s: %s\n",
			qid,
			err.Error())
		return err
	}

	var status bool

	if db.tx != nil {
		tx = db.tx
	} else {
	BEGIN_AD_HOC:
		if tx, err = db.db.Begin(); err != nil {
			if worthARetry(err) {
				waitForRetry()
				goto BEGIN_AD_HOC
			}

			msg = fmt.Sprintf("Error starting transaction: %s",
				err.Error())
			db.log.Printf("[ERROR] %s\n", msg)
			return errors.New(msg)
		}

		defer func() {
			var err2 error
			if status {
				if err2 = tx.Commit(); err2 != nil {
					db.log.Printf("[ERROR] Failed to commit ad-hoc transaction: %s\n",
						err2.Error())
				}
			} else if err2 = tx.Rollback(); err2 != nil {
				db.log.Printf("[ERROR] Rollback of ad-hoc transaction failed: %s\n",
					err2.Error())
			}
		}()
	}

	stmt = tx.Stmt(stmt)
	var res sql.Result

EXEC_QUERY:
	if res, err = stmt.Exec(p.Name, p.Age, p.Condition, p.UUID, p.Timestamp.Unix()); err != nil {
		if worthARetry(err) {
			waitForRetry()
			goto EXEC_QUERY
		}

		msg = fmt.Sprintf("Cannot add Patient %q to database: %s",
			p.Name,
			err.Error())
		db.log.Printf("[ERROR] %s\n", msg)
		return errors.New(msg)
	}

	var id int64

	if id, err = res.LastInsertId(); err != nil {
		msg = fmt.Sprintf("Cannot get ID of new Patient %q: %s",
			p.Name,
			err.Error())
		db.log.Printf("[ERROR] %s\n", msg)
		return errors.New(msg)
	}

	status = true
	p.ID = id
	return nil
} // func (db *Database) PatientAdd(p *objects.Patient) error

// PatientDelete removes a Patient from the database. The Patient's
// Medicines and Notes are removed along with it.
func (db *Database) PatientDelete(p *objects.Patient) error {
	const qid query.ID = query.PatientDelete
	var (
		err  error
		msg  string
		stmt *sql.Stmt
		tx   *sql.Tx
	)

	if stmt, err = db.getQuery(qid); err != nil {
		db.log.Printf("[ERROR] Cannot prepare query %s: %s\n",
			qid,
			err.Error())
		return err
	}

	var status bool

	if db.tx != nil {
		tx = db.tx
	} else {
	BEGIN_AD_HOC:
		if tx, err = db.db.Begin(); err != nil {
			if worthARetry(err) {
				waitForRetry()
				goto BEGIN_AD_HOC
			}

			msg = fmt.Sprintf("Error starting transaction: %s",
				err.Error())
			db.log.Printf("[ERROR] %s\n", msg)
			return errors.New(msg)
		}

		defer func() {
			var err2 error
			if status {
				if err2 = tx.Commit(); err2 != nil {
					db.log.Printf("[ERROR] Failed to commit ad-hoc transaction: %s\n",
						err2.Error())
				}
			} else if err2 = tx.Rollback(); err2 != nil {
				db.log.Printf("[ERROR] Rollback of ad-hoc transaction failed: %s\n",
					err2.Error())
			}
		}()
	}

	stmt = tx.Stmt(stmt)

EXEC_QUERY:
	if _, err = stmt.Exec(p.ID); err != nil {
		if worthARetry(err) {
			waitForRetry()
			goto EXEC_QUERY
		}

		msg = fmt.Sprintf("Cannot delete Patient %q (%d): %s",
			p.Name,
			p.ID,
			err.Error())
		db.log.Printf("[ERROR] %s\n", msg)
		return errors.New(msg)
	}

	status = true
	return nil
} // func (db *Database) PatientDelete(p *objects.Patient) error

// PatientGetByID looks up a Patient by its ID, including its Medicines
// and Notes. If no such Patient exists, it returns nil, but no error.
func (db *Database) PatientGetByID(id int64) (*objects.Patient, error) {
	const qid query.ID = query.PatientGetByID
	var (
		err  error
		msg  string
		stmt *sql.Stmt
	)

	if stmt, err = db.getQuery(qid); err != nil {
		db.log.Printf("[ERROR] Cannot prepare query %s: %s\n",
			qid,
			err.Error())
		return nil, err
	} else if db.tx != nil {
		stmt = db.tx.Stmt(stmt)
	}

	var rows *sql.Rows

EXEC_QUERY:
	if rows, err = stmt.Query(id); err != nil {
		if worthARetry(err) {
			waitForRetry()
			goto EXEC_QUERY
		}

		msg = fmt.Sprintf("Cannot look up Patient %d: %s",
			id,
			err.Error())
		db.log.Printf("[ERROR] %s\n", msg)
		return nil, errors.New(msg)
	}

	var p *objects.Patient

	if rows.Next() {
		var stamp int64

		p = &objects.Patient{ID: id}

		if err = rows.Scan(&p.Name, &p.Age, &p.Condition, &p.UUID, &stamp); err != nil {
			msg = fmt.Sprintf("Cannot scan row for Patient %d: %s",
				id,
				err.Error())
			db.log.Printf("[ERROR] %s\n", msg)
			rows.Close() // nolint: errcheck,gosec
			return nil, errors.New(msg)
		}

		p.Timestamp = time.Unix(stamp, 0)
	}

	rows.Close() // nolint: errcheck,gosec

	if p == nil {
		db.log.Printf("[INFO] Patient %d was not found in database\n",
			id)
		return nil, nil
	} else if p.Medicines, err = db.MedicineGetByPatient(p.ID); err != nil {
		return nil, err
	} else if p.Notes, err = db.NoteGetByPatient(p.ID); err != nil {
		return nil, err
	}

	return p, nil
} // func (db *Database) PatientGetByID(id int64) (*objects.Patient, error)

// PatientGetAll returns all Patients, each with its Medicines and Notes
// attached (Notes newest first).
func (db *Database) PatientGetAll() ([]objects.Patient, error) {
	const qid query.ID = query.PatientGetAll
	var (
		err  error
		msg  string
		stmt *sql.Stmt
	)

	if stmt, err = db.getQuery(qid); err != nil {
		db.log.Printf("[ERROR] Cannot prepare query %s: %s\n",
			qid,
			err.Error())
		return nil, err
	} else if db.tx != nil {
		stmt = db.tx.Stmt(stmt)
	}

	var rows *sql.Rows

EXEC_QUERY:
	if rows, err = stmt.Query(); err != nil {
		if worthARetry(err) {
			waitForRetry()
			goto EXEC_QUERY
		}

		msg = fmt.Sprintf("Cannot load Patients: %s",
			err.Error())
		db.log.Printf("[ERROR] %s\n", msg)
		return nil, errors.New(msg)
	}

	var patients = make([]objects.Patient, 0, 16)

	for rows.Next() {
		var (
			p     objects.Patient
			stamp int64
		)

		if err = rows.Scan(&p.ID, &p.Name, &p.Age, &p.Condition, &p.UUID, &stamp); err != nil {
			msg = fmt.Sprintf("Cannot scan Patient row: %s",
				err.Error())
			db.log.Printf("[ERROR] %s\n", msg)
			rows.Close() // nolint: errcheck,gosec
			return nil, errors.New(msg)
		}

		p.Timestamp = time.Unix(stamp, 0)
		patients = append(patients, p)
	}

	rows.Close() // nolint: errcheck,gosec

	for idx := range patients {
		var p = &patients[idx]

		if p.Medicines, err = db.MedicineGetByPatient(p.ID); err != nil {
			return nil, err
		} else if p.Notes, err = db.NoteGetByPatient(p.ID); err != nil {
			return nil, err
		}
	}

	return patients, nil
} // func (db *Database) PatientGetAll() ([]objects.Patient, error)

// MedicineAdd adds a new Medicine for the given Patient.
func (db *Database) MedicineAdd(m *objects.Medicine) error {
	const qid query.ID = query.MedicineAdd
	var (
		err  error
		msg  string
		stmt *sql.Stmt
		tx   *sql.Tx
	)

	if stmt, err = db.getQuery(qid); err != nil {
		db.log.Printf("[ERROR] Cannot prepare query %s: %s\n",
			qid,
			err.Error())
		return err
	}

	var status bool

	if db.tx != nil {
		tx = db.tx
	} else {
	BEGIN_AD_HOC:
		if tx, err = db.db.Begin(); err != nil {
			if worthARetry(err) {
				waitForRetry()
				goto BEGIN_AD_HOC
			}

			msg = fmt.Sprintf("Error starting transaction: %s",
				err.Error())
			db.log.Printf("[ERROR] %s\n", msg)
			return errors.New(msg)
		}

		defer func() {
			var err2 error
			if status {
				if err2 = tx.Commit(); err2 != nil {
					db.log.Printf("[ERROR] Failed to commit ad-hoc transaction: %s\n",
						err2.Error())
				}
			} else if err2 = tx.Rollback(); err2 != nil {
				db.log.Printf("[ERROR] Rollback of ad-hoc transaction failed: %s\n",
					err2.Error())
			}
		}()
	}

	stmt = tx.Stmt(stmt)
	var res sql.Result

EXEC_QUERY:
	if res, err = stmt.Exec(m.PatientID, m.Name, m.Dosage, m.Schedule, m.Stock, m.UUID); err != nil {
		if worthARetry(err) {
			waitForRetry()
			goto EXEC_QUERY
		}

		msg = fmt.Sprintf("Cannot add Medicine %q to database: %s",
			m.Name,
			err.Error())
		db.log.Printf("[ERROR] %s\n", msg)
		return errors.New(msg)
	}

	var id int64

	if id, err = res.LastInsertId(); err != nil {
		msg = fmt.Sprintf("Cannot get ID of new Medicine %q: %s",
			m.Name,
			err.Error())
		db.log.Printf("[ERROR] %s\n", msg)
		return errors.New(msg)
	}

	status = true
	m.ID = id
	return nil
} // func (db *Database) MedicineAdd(m *objects.Medicine) error

// MedicineDelete removes a Medicine from the database.
func (db *Database) MedicineDelete(m *objects.Medicine) error {
	const qid query.ID = query.MedicineDelete
	var (
		err  error
		msg  string
		stmt *sql.Stmt
		tx   *sql.Tx
	)

	if stmt, err = db.getQuery(qid); err != nil {
		db.log.Printf("[ERROR] Cannot prepare query %s: %s\n",
			qid,
			err.Error())
		return err
	}

	var status bool

	if db.tx != nil {
		tx = db.tx
	} else {
	BEGIN_AD_HOC:
		if tx, err = db.db.Begin(); err != nil {
			if worthARetry(err) {
				waitForRetry()
				goto BEGIN_AD_HOC
			}

			msg = fmt.Sprintf("Error starting transaction: %s",
				err.Error())
			db.log.Printf("[ERROR] %s\n", msg)
			return errors.New(msg)
		}

		defer func() {
			var err2 error
			if status {
				if err2 = tx.Commit(); err2 != nil {
					db.log.Printf("[ERROR] Failed to commit ad-hoc transaction: %s\n",
						err2.Error())
				}
			} else if err2 = tx.Rollback(); err2 != nil {
				db.log.Printf("[ERROR] Rollback of ad-hoc transaction failed: %s\n",
					err2.Error())
			}
		}()
	}

	stmt = tx.Stmt(stmt)

EXEC_QUERY:
	if _, err = stmt.Exec(m.ID); err != nil {
		if worthARetry(err) {
			waitForRetry()
			goto EXEC_QUERY
		}

		msg = fmt.Sprintf("Cannot delete Medicine %q (%d): %s",
			m.Name,
			m.ID,
			err.Error())
		db.log.Printf("[ERROR] %s\n", msg)
		return errors.New(msg)
	}

	status = true
	return nil
} // func (db *Database) MedicineDelete(m *objects.Medicine) error

// MedicineGetByID looks up a single Medicine by its ID.
// If no such Medicine exists, it returns nil, but no error.
func (db *Database) MedicineGetByID(id int64) (*objects.Medicine, error) {
	const qid query.ID = query.MedicineGetByID
	var (
		err  error
		msg  string
		stmt *sql.Stmt
	)

	if stmt, err = db.getQuery(qid); err != nil {
		db.log.Printf("[ERROR] Cannot prepare query %s: %s\n",
			qid,
			err.Error())
		return nil, err
	} else if db.tx != nil {
		stmt = db.tx.Stmt(stmt)
	}

	var rows *sql.Rows

EXEC_QUERY:
	if rows, err = stmt.Query(id); err != nil {
		if worthARetry(err) {
			waitForRetry()
			goto EXEC_QUERY
		}

		msg = fmt.Sprintf("Cannot look up Medicine %d: %s",
			id,
			err.Error())
		db.log.Printf("[ERROR] %s\n", msg)
		return nil, errors.New(msg)
	}

	defer rows.Close() // nolint: errcheck,gosec

	if rows.Next() {
		var (
			m     = &objects.Medicine{ID: id}
			taken sql.NullInt64
		)

		if err = rows.Scan(&m.PatientID, &m.Name, &m.Dosage, &m.Schedule, &m.Stock, &taken, &m.UUID); err != nil {
			msg = fmt.Sprintf("Cannot scan row for Medicine %d: %s",
				id,
				err.Error())
			db.log.Printf("[ERROR] %s\n", msg)
			return nil, errors.New(msg)
		}

		if taken.Valid {
			m.LastTaken = time.Unix(taken.Int64, 0)
		}

		return m, nil
	}

	db.log.Printf("[INFO] Medicine %d was not found in database\n",
		id)
	return nil, nil
} // func (db *Database) MedicineGetByID(id int64) (*objects.Medicine, error)

// MedicineGetByPatient loads all Medicines prescribed to the given Patient.
func (db *Database) MedicineGetByPatient(patientID int64) ([]objects.Medicine, error) {
	const qid query.ID = query.MedicineGetByPatient
	var (
		err  error
		msg  string
		stmt *sql.Stmt
	)

	if stmt, err = db.getQuery(qid); err != nil {
		db.log.Printf("[ERROR] Cannot prepare query %s: %s\n",
			qid,
			err.Error())
		return nil, err
	} else if db.tx != nil {
		stmt = db.tx.Stmt(stmt)
	}

	var rows *sql.Rows

EXEC_QUERY:
	if rows, err = stmt.Query(patientID); err != nil {
		if worthARetry(err) {
			waitForRetry()
			goto EXEC_QUERY
		}

		msg = fmt.Sprintf("Cannot load Medicines of Patient %d: %s",
			patientID,
			err.Error())
		db.log.Printf("[ERROR] %s\n", msg)
		return nil, errors.New(msg)
	}

	defer rows.Close() // nolint: errcheck,gosec

	var medicines = make([]objects.Medicine, 0, 4)

	for rows.Next() {
		var (
			m     = objects.Medicine{PatientID: patientID}
			taken sql.NullInt64
		)

		if err = rows.Scan(&m.ID, &m.Name, &m.Dosage, &m.Schedule, &m.Stock, &taken, &m.UUID); err != nil {
			msg = fmt.Sprintf("Cannot scan Medicine row: %s",
				err.Error())
			db.log.Printf("[ERROR] %s\n", msg)
			return nil, errors.New(msg)
		}

		if taken.Valid {
			m.LastTaken = time.Unix(taken.Int64, 0)
		}

		medicines = append(medicines, m)
	}

	return medicines, nil
} // func (db *Database) MedicineGetByPatient(patientID int64) ([]objects.Medicine, error)

// MedicineSetSchedule updates the scheduled time of day for the given
// Medicine. Note that this changes the identity of the day's dose
// occurrence as seen by the reminder engine.
func (db *Database) MedicineSetSchedule(m *objects.Medicine, schedule string) error {
	const qid query.ID = query.MedicineSetSchedule
	var (
		err  error
		msg  string
		stmt *sql.Stmt
		tx   *sql.Tx
	)

	if stmt, err = db.getQuery(qid); err != nil {
		db.log.Printf("[ERROR] Cannot prepare query %s: %s\n",
			qid,
			err.Error())
		return err
	}

	var status bool

	if db.tx != nil {
		tx = db.tx
	} else {
	BEGIN_AD_HOC:
		if tx, err = db.db.Begin(); err != nil {
			if worthARetry(err) {
				waitForRetry()
				goto BEGIN_AD_HOC
			}

			msg = fmt.Sprintf("Error starting transaction: %s",
				err.Error())
			db.log.Printf("[ERROR] %s\n", msg)
			return errors.New(msg)
		}

		defer func() {
			var err2 error
			if status {
				if err2 = tx.Commit(); err2 != nil {
					db.log.Printf("[ERROR] Failed to commit ad-hoc transaction: %s\n",
						err2.Error())
				}
			} else if err2 = tx.Rollback(); err2 != nil {
				db.log.Printf("[ERROR] Rollback of ad-hoc transaction failed: %s\n",
					err2.Error())
			}
		}()
	}

	stmt = tx.Stmt(stmt)

EXEC_QUERY:
	if _, err = stmt.Exec(schedule, m.ID); err != nil {
		if worthARetry(err) {
			waitForRetry()
			goto EXEC_QUERY
		}

		msg = fmt.Sprintf("Cannot update schedule of Medicine %q (%d): %s",
			m.Name,
			m.ID,
			err.Error())
		db.log.Printf("[ERROR] %s\n", msg)
		return errors.New(msg)
	}

	status = true
	m.Schedule = schedule
	return nil
} // func (db *Database) MedicineSetSchedule(m *objects.Medicine, schedule string) error

// MedicineSetStock sets the stock count of the given Medicine.
// Negative values are clamped to zero.
func (db *Database) MedicineSetStock(m *objects.Medicine, stock int) error {
	const qid query.ID = query.MedicineSetStock
	var (
		err  error
		msg  string
		stmt *sql.Stmt
		tx   *sql.Tx
	)

	if stmt, err = db.getQuery(qid); err != nil {
		db.log.Printf("[ERROR] Cannot prepare query %s: %s\n",
			qid,
			err.Error())
		return err
	}

	var status bool

	if db.tx != nil {
		tx = db.tx
	} else {
	BEGIN_AD_HOC:
		if tx, err = db.db.Begin(); err != nil {
			if worthARetry(err) {
				waitForRetry()
				goto BEGIN_AD_HOC
			}

			msg = fmt.Sprintf("Error starting transaction: %s",
				err.Error())
			db.log.Printf("[ERROR] %s\n", msg)
			return errors.New(msg)
		}

		defer func() {
			var err2 error
			if status {
				if err2 = tx.Commit(); err2 != nil {
					db.log.Printf("[ERROR] Failed to commit ad-hoc transaction: %s\n",
						err2.Error())
				}
			} else if err2 = tx.Rollback(); err2 != nil {
				db.log.Printf("[ERROR] Rollback of ad-hoc transaction failed: %s\n",
					err2.Error())
			}
		}()
	}

	stmt = tx.Stmt(stmt)

EXEC_QUERY:
	if _, err = stmt.Exec(stock, m.ID); err != nil {
		if worthARetry(err) {
			waitForRetry()
			goto EXEC_QUERY
		}

		msg = fmt.Sprintf("Cannot update stock of Medicine %q (%d): %s",
			m.Name,
			m.ID,
			err.Error())
		db.log.Printf("[ERROR] %s\n", msg)
		return errors.New(msg)
	}

	status = true
	if stock < 0 {
		stock = 0
	}
	m.Stock = stock
	return nil
} // func (db *Database) MedicineSetStock(m *objects.Medicine, stock int) error

// MedicineTaken records that a dose of the given Medicine was taken at
// the given time: the stock count is decremented by one (but never
// below zero) and the last-taken stamp is updated. It returns the
// updated Medicine.
func (db *Database) MedicineTaken(id int64, when time.Time) (*objects.Medicine, error) {
	const qid query.ID = query.MedicineTaken
	var (
		err  error
		msg  string
		stmt *sql.Stmt
		tx   *sql.Tx
	)

	if stmt, err = db.getQuery(qid); err != nil {
		db.log.Printf("[ERROR] Cannot prepare query %s: %s\n",
			qid,
			err.Error())
		return nil, err
	}

	var status bool

	if db.tx != nil {
		tx = db.tx
	} else {
	BEGIN_AD_HOC:
		if tx, err = db.db.Begin(); err != nil {
			if worthARetry(err) {
				waitForRetry()
				goto BEGIN_AD_HOC
			}

			msg = fmt.Sprintf("Error starting transaction: %s",
				err.Error())
			db.log.Printf("[ERROR] %s\n", msg)
			return nil, errors.New(msg)
		}

		defer func() {
			var err2 error
			if status {
				if err2 = tx.Commit(); err2 != nil {
					db.log.Printf("[ERROR] Failed to commit ad-hoc transaction: %s\n",
						err2.Error())
				}
			} else if err2 = tx.Rollback(); err2 != nil {
				db.log.Printf("[ERROR] Rollback of ad-hoc transaction failed: %s\n",
					err2.Error())
			}
		}()
	}

	stmt = tx.Stmt(stmt)

EXEC_QUERY:
	if _, err = stmt.Exec(when.Unix(), id); err != nil {
		if worthARetry(err) {
			waitForRetry()
			goto EXEC_QUERY
		}

		msg = fmt.Sprintf("Cannot record dose of Medicine %d as taken: %s",
			id,
			err.Error())
		db.log.Printf("[ERROR] %s\n", msg)
		return nil, errors.New(msg)
	}

	// Re-read the Medicine within the same transaction, or we would not
	// see the update we just made.
	if stmt, err = db.getQuery(query.MedicineGetByID); err != nil {
		db.log.Printf("[ERROR] Cannot prepare query %s: %s\n",
			query.MedicineGetByID,
			err.Error())
		return nil, err
	}

	stmt = tx.Stmt(stmt)

	var rows *sql.Rows

FETCH_QUERY:
	if rows, err = stmt.Query(id); err != nil {
		if worthARetry(err) {
			waitForRetry()
			goto FETCH_QUERY
		}

		msg = fmt.Sprintf("Cannot look up Medicine %d: %s",
			id,
			err.Error())
		db.log.Printf("[ERROR] %s\n", msg)
		return nil, errors.New(msg)
	}

	defer rows.Close() // nolint: errcheck,gosec

	if rows.Next() {
		var (
			m     = &objects.Medicine{ID: id}
			taken sql.NullInt64
		)

		if err = rows.Scan(&m.PatientID, &m.Name, &m.Dosage, &m.Schedule, &m.Stock, &taken, &m.UUID); err != nil {
			msg = fmt.Sprintf("Cannot scan row for Medicine %d: %s",
				id,
				err.Error())
			db.log.Printf("[ERROR] %s\n", msg)
			return nil, errors.New(msg)
		}

		if taken.Valid {
			m.LastTaken = time.Unix(taken.Int64, 0)
		}

		status = true
		return m, nil
	}

	db.log.Printf("[INFO] Medicine %d was not found in database\n",
		id)
	status = true
	return nil, nil
} // func (db *Database) MedicineTaken(id int64, when time.Time) (*objects.Medicine, error)

// NoteAdd adds a visit Note for the given Patient.
func (db *Database) NoteAdd(n *objects.Note) error {
	const qid query.ID = query.NoteAdd
	var (
		err  error
		msg  string
		stmt *sql.Stmt
		tx   *sql.Tx
	)

	if stmt, err = db.getQuery(qid); err != nil {
		db.log.Printf("[ERROR] Cannot prepare query %s: %s\n",
			qid,
			err.Error())
		return err
	}

	var status bool

	if db.tx != nil {
		tx = db.tx
	} else {
	BEGIN_AD_HOC:
		if tx, err = db.db.Begin(); err != nil {
			if worthARetry(err) {
				waitForRetry()
				goto BEGIN_AD_HOC
			}

			msg = fmt.Sprintf("Error starting transaction: %s",
				err.Error())
			db.log.Printf("[ERROR] %s\n", msg)
			return errors.New(msg)
		}

		defer func() {
			var err2 error
			if status {
				if err2 = tx.Commit(); err2 != nil {
					db.log.Printf("[ERROR] Failed to commit ad-hoc transaction: %s\n",
						err2.Error())
				}
			} else if err2 = tx.Rollback(); err2 != nil {
				db.log.Printf("[ERROR] Rollback of ad-hoc transaction failed: %s\n",
					err2.Error())
			}
		}()
	}

	stmt = tx.Stmt(stmt)
	var res sql.Result

EXEC_QUERY:
	if res, err = stmt.Exec(n.PatientID, n.Body, n.UUID, n.Timestamp.Unix()); err != nil {
		if worthARetry(err) {
			waitForRetry()
			goto EXEC_QUERY
		}

		msg = fmt.Sprintf("Cannot add Note for Patient %d to database: %s",
			n.PatientID,
			err.Error())
		db.log.Printf("[ERROR] %s\n", msg)
		return errors.New(msg)
	}

	var id int64

	if id, err = res.LastInsertId(); err != nil {
		msg = fmt.Sprintf("Cannot get ID of new Note for Patient %d: %s",
			n.PatientID,
			err.Error())
		db.log.Printf("[ERROR] %s\n", msg)
		return errors.New(msg)
	}

	status = true
	n.ID = id
	return nil
} // func (db *Database) NoteAdd(n *objects.Note) error

// NoteGetByPatient loads all Notes for the given Patient, newest first.
func (db *Database) NoteGetByPatient(patientID int64) ([]objects.Note, error) {
	const qid query.ID = query.NoteGetByPatient
	var (
		err  error
		msg  string
		stmt *sql.Stmt
	)

	if stmt, err = db.getQuery(qid); err != nil {
		db.log.Printf("[ERROR] Cannot prepare query %s: %s\n",
			qid,
			err.Error())
		return nil, err
	} else if db.tx != nil {
		stmt = db.tx.Stmt(stmt)
	}

	var rows *sql.Rows

EXEC_QUERY:
	if rows, err = stmt.Query(patientID); err != nil {
		if worthARetry(err) {
			waitForRetry()
			goto EXEC_QUERY
		}

		msg = fmt.Sprintf("Cannot load Notes of Patient %d: %s",
			patientID,
			err.Error())
		db.log.Printf("[ERROR] %s\n", msg)
		return nil, errors.New(msg)
	}

	defer rows.Close() // nolint: errcheck,gosec

	var notes = make([]objects.Note, 0, 8)

	for rows.Next() {
		var (
			n     = objects.Note{PatientID: patientID}
			stamp int64
		)

		if err = rows.Scan(&n.ID, &n.Body, &n.UUID, &stamp); err != nil {
			msg = fmt.Sprintf("Cannot scan Note row: %s",
				err.Error())
			db.log.Printf("[ERROR] %s\n", msg)
			return nil, errors.New(msg)
		}

		n.Timestamp = time.Unix(stamp, 0)
		notes = append(notes, n)
	}

	return notes, nil
} // func (db *Database) NoteGetByPatient(patientID int64) ([]objects.Note, error)
