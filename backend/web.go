// /home/cmb/go/src/github.com/CatherineMariaBastin/Zaathi/backend/web.go
// -*- mode: go; coding: utf-8; -*-
// Created on 06. 04. 2025 by Catherine Maria Bastin
// (c) 2025 Catherine Maria Bastin
// Time-stamp: <2025-06-21 22:31:48 cmb>

package backend

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/CatherineMariaBastin/Zaathi/common"
	"github.com/CatherineMariaBastin/Zaathi/database"
	"github.com/CatherineMariaBastin/Zaathi/extraction"
	"github.com/CatherineMariaBastin/Zaathi/i18n"
	"github.com/CatherineMariaBastin/Zaathi/objects"
	"github.com/CatherineMariaBastin/Zaathi/objects/language"
	"github.com/CatherineMariaBastin/Zaathi/report"
	"github.com/gorilla/mux"
	"github.com/pquerna/ffjson/ffjson"
)

// Defaults applied to a Medicine when the caregiver (or the extraction
// service) did not supply a value.
const (
	defaultMedName     = "Unknown"
	defaultMedDosage   = "N/A"
	defaultMedSchedule = "12:00"
	defaultMedStock    = 30
)

func (d *Daemon) initWebHandlers() error {
	d.router.HandleFunc("/patient/add", d.handlePatientAdd)
	d.router.HandleFunc("/patient/all", d.handlePatientGetAll)
	d.router.HandleFunc("/patient/{id:(?:\\d+)}/get", d.handlePatientGet)
	d.router.HandleFunc("/patient/{id:(?:\\d+)}/delete", d.handlePatientDelete)
	d.router.HandleFunc("/patient/{id:(?:\\d+)}/report", d.handlePatientReport)
	d.router.HandleFunc("/medicine/add", d.handleMedicineAdd)
	d.router.HandleFunc("/medicine/{id:(?:\\d+)}/delete", d.handleMedicineDelete)
	d.router.HandleFunc("/note/add", d.handleNoteAdd)
	d.router.HandleFunc("/alarm/active", d.handleAlarmActive)
	d.router.HandleFunc("/alarm/taken", d.handleAlarmTaken)
	d.router.HandleFunc("/alarm/snooze", d.handleAlarmSnooze)
	d.router.HandleFunc("/alarm/dismiss", d.handleAlarmDismiss)
	d.router.HandleFunc("/extract/patient", d.handleExtractPatient)
	d.router.HandleFunc("/extract/medicine", d.handleExtractMedicine)
	d.router.HandleFunc("/language/set", d.handleLanguageSet)

	return nil
} // func (d *Daemon) initWebHandlers() error

func (d *Daemon) serveHTTP() {
	var err error

	defer d.log.Println("[INFO] Web server is shutting down")

	d.log.Printf("[INFO] Web frontend is going online at %s\n", d.web.Addr)
	http.Handle("/", d.router)

	if err = d.web.ListenAndServe(); err != nil {
		if err != http.ErrServerClosed {
			d.log.Printf("[ERROR] ListenAndServe returned an error: %s\n",
				err.Error())
		} else {
			d.log.Println("[INFO] HTTP Server has shut down.")
		}
	}
} // func (d *Daemon) serveHTTP()

func (d *Daemon) handlePatientAdd(w http.ResponseWriter, r *http.Request) {
	d.log.Printf("[TRACE] Handle %s from %s\n",
		r.URL,
		r.RemoteAddr)

	var (
		err         error
		pat         objects.Patient
		db          *database.Database
		agestr, msg string
		response    = objects.Response{ID: d.getID()}
	)

	if err = r.ParseForm(); err != nil {
		d.log.Printf("[ERROR] Cannot parse form data: %s\n",
			err.Error())
		response.Message = err.Error()
		goto SEND_RESPONSE
	}

	pat.Name = r.PostFormValue("name")
	pat.Condition = r.PostFormValue("condition")
	agestr = r.PostFormValue("age")

	if pat.Name == "" {
		msg = "Patient name must not be empty"
		d.log.Printf("[ERROR] %s\n", msg)
		response.Message = msg
		goto SEND_RESPONSE
	}

	if pat.Age, err = strconv.Atoi(agestr); err != nil {
		msg = fmt.Sprintf("Cannot parse age %q: %s",
			agestr,
			err.Error())
		d.log.Printf("[ERROR] %s\n", msg)
		response.Message = msg
		goto SEND_RESPONSE
	}

	pat.UUID = common.GetUUID()
	pat.Timestamp = time.Now()

	db = d.pool.Get()
	defer d.pool.Put(db)

	if err = db.PatientAdd(&pat); err != nil {
		msg = fmt.Sprintf("Cannot add Patient %q to database: %s",
			pat.Name,
			err.Error())
		d.log.Printf("[ERROR] %s\n", msg)
		response.Message = msg
		goto SEND_RESPONSE
	}

	response.Message = pat.UUID
	response.Status = true
	d.Announce(fmt.Sprintf("%s %s",
		i18n.Get(d.Language()).Added,
		pat.Name))

SEND_RESPONSE:
	d.sendResponseJSON(w, &response)
} // func (d *Daemon) handlePatientAdd(w http.ResponseWriter, r *http.Request)

func (d *Daemon) handlePatientGetAll(w http.ResponseWriter, r *http.Request) {
	d.log.Printf("[TRACE] Handle %s from %s\n",
		r.URL,
		r.RemoteAddr)

	var (
		err      error
		db       *database.Database
		patients []objects.Patient
		buf      []byte
	)

	db = d.pool.Get()
	defer d.pool.Put(db)

	if patients, err = db.PatientGetAll(); err != nil {
		d.log.Printf("[ERROR] Cannot load Patients: %s\n",
			err.Error())

	} else if buf, err = ffjson.Marshal(patients); err != nil {
		d.log.Printf("[ERROR] Cannot serialize Patient list: %s\n",
			err.Error())

	}

	defer ffjson.Pool(buf)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(200)
	w.Write(buf) // nolint: errcheck
} // func (d *Daemon) handlePatientGetAll(w http.ResponseWriter, r *http.Request)

func (d *Daemon) handlePatientGet(w http.ResponseWriter, r *http.Request) {
	d.log.Printf("[TRACE] Handle %s from %s\n",
		r.URL,
		r.RemoteAddr)

	var (
		err   error
		vars  map[string]string
		idstr string
		id    int64
		db    *database.Database
		pat   *objects.Patient
		buf   []byte
	)

	vars = mux.Vars(r)

	idstr = vars["id"]

	if id, err = strconv.ParseInt(idstr, 10, 64); err != nil {
		d.log.Printf("[CANTHAPPEN] Cannot parse ID %q: %s\n",
			idstr,
			err.Error())
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	db = d.pool.Get()
	defer d.pool.Put(db)

	if pat, err = db.PatientGetByID(id); err != nil {
		d.log.Printf("[ERROR] Cannot look up Patient #%d: %s\n",
			id,
			err.Error())
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	} else if pat == nil {
		d.log.Printf("[DEBUG] Patient #%d was not found in database\n",
			id)
		http.Error(w, fmt.Sprintf("Patient %d was not found", id), http.StatusNotFound)
		return
	} else if buf, err = ffjson.Marshal(pat); err != nil {
		d.log.Printf("[ERROR] Cannot serialize Patient %q: %s\n",
			pat.Name,
			err.Error())
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	defer ffjson.Pool(buf)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(200)
	w.Write(buf) // nolint: errcheck
} // func (d *Daemon) handlePatientGet(w http.ResponseWriter, r *http.Request)

func (d *Daemon) handlePatientDelete(w http.ResponseWriter, r *http.Request) {
	d.log.Printf("[TRACE] Handle %s from %s\n",
		r.URL,
		r.RemoteAddr)

	var (
		err        error
		vars       map[string]string
		idstr, msg string
		id         int64
		db         *database.Database
		pat        *objects.Patient
		res        = objects.Response{ID: d.getID()}
	)

	vars = mux.Vars(r)

	idstr = vars["id"]

	if id, err = strconv.ParseInt(idstr, 10, 64); err != nil {
		msg = fmt.Sprintf("Cannot parse ID %q: %s",
			idstr,
			err.Error())
		d.log.Printf("[ERROR] %s\n", msg)
		res.Message = msg
		goto SEND_RESPONSE
	}

	db = d.pool.Get()
	defer d.pool.Put(db)

	if pat, err = db.PatientGetByID(id); err != nil {
		msg = fmt.Sprintf("Cannot look up Patient by ID %d: %s",
			id,
			err.Error())
		d.log.Printf("[ERROR] %s\n", msg)
		res.Message = msg
		goto SEND_RESPONSE
	} else if pat == nil {
		msg = fmt.Sprintf("Did not find Patient %d in database", id)
		d.log.Printf("[INFO] %s\n", msg)
		res.Message = msg
		goto SEND_RESPONSE
	} else if err = db.PatientDelete(pat); err != nil {
		msg = fmt.Sprintf("Failed to delete Patient %d (%q): %s",
			id,
			pat.Name,
			err.Error())
		d.log.Printf("[ERROR] %s\n", msg)
		res.Message = msg
		goto SEND_RESPONSE
	}

	res.Message = fmt.Sprintf("Patient %d (%q) was deleted",
		id,
		pat.Name)
	res.Status = true

SEND_RESPONSE:
	d.sendResponseJSON(w, &res)
} // func (d *Daemon) handlePatientDelete(w http.ResponseWriter, r *http.Request)

func (d *Daemon) handlePatientReport(w http.ResponseWriter, r *http.Request) {
	d.log.Printf("[TRACE] Handle %s from %s\n",
		r.URL,
		r.RemoteAddr)

	var (
		err   error
		vars  map[string]string
		idstr string
		id    int64
		db    *database.Database
		pat   *objects.Patient
	)

	vars = mux.Vars(r)

	idstr = vars["id"]

	if id, err = strconv.ParseInt(idstr, 10, 64); err != nil {
		d.log.Printf("[CANTHAPPEN] Cannot parse ID %q: %s\n",
			idstr,
			err.Error())
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	db = d.pool.Get()
	defer d.pool.Put(db)

	if pat, err = db.PatientGetByID(id); err != nil {
		d.log.Printf("[ERROR] Cannot look up Patient #%d: %s\n",
			id,
			err.Error())
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	} else if pat == nil {
		d.log.Printf("[DEBUG] Patient #%d was not found in database\n",
			id)
		http.Error(w, fmt.Sprintf("Patient %d was not found", id), http.StatusNotFound)
		return
	}

	var rpt = report.Build(pat, time.Now())

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(200)
	w.Write([]byte(rpt)) // nolint: errcheck
} // func (d *Daemon) handlePatientReport(w http.ResponseWriter, r *http.Request)

func (d *Daemon) handleMedicineAdd(w http.ResponseWriter, r *http.Request) {
	d.log.Printf("[TRACE] Handle %s from %s\n",
		r.URL,
		r.RemoteAddr)

	var (
		err                   error
		med                   objects.Medicine
		db                    *database.Database
		pat                   *objects.Patient
		pidstr, stockstr, msg string
		response              = objects.Response{ID: d.getID()}
	)

	if err = r.ParseForm(); err != nil {
		d.log.Printf("[ERROR] Cannot parse form data: %s\n",
			err.Error())
		response.Message = err.Error()
		goto SEND_RESPONSE
	}

	pidstr = r.PostFormValue("patient")
	med.Name = r.PostFormValue("name")
	med.Dosage = r.PostFormValue("dosage")
	med.Schedule = r.PostFormValue("schedule")
	stockstr = r.PostFormValue("stock")

	if med.PatientID, err = strconv.ParseInt(pidstr, 10, 64); err != nil {
		msg = fmt.Sprintf("Cannot parse patient ID %q: %s",
			pidstr,
			err.Error())
		d.log.Printf("[ERROR] %s\n", msg)
		response.Message = msg
		goto SEND_RESPONSE
	}

	if med.Name == "" {
		med.Name = defaultMedName
	}
	if med.Dosage == "" {
		med.Dosage = defaultMedDosage
	}
	if med.Schedule == "" {
		med.Schedule = defaultMedSchedule
	} else if _, err = time.Parse(common.TimestampFormatMinute, med.Schedule); err != nil {
		msg = fmt.Sprintf("Cannot parse schedule %q: %s",
			med.Schedule,
			err.Error())
		d.log.Printf("[ERROR] %s\n", msg)
		response.Message = msg
		goto SEND_RESPONSE
	}

	if med.Stock, err = strconv.Atoi(stockstr); err != nil {
		med.Stock = defaultMedStock
	} else if med.Stock < 0 {
		med.Stock = 0
	}

	med.UUID = common.GetUUID()

	db = d.pool.Get()
	defer d.pool.Put(db)

	if pat, err = db.PatientGetByID(med.PatientID); err != nil {
		msg = fmt.Sprintf("Cannot look up Patient #%d: %s",
			med.PatientID,
			err.Error())
		d.log.Printf("[ERROR] %s\n", msg)
		response.Message = msg
		goto SEND_RESPONSE
	} else if pat == nil {
		msg = fmt.Sprintf("Patient #%d was not found in database",
			med.PatientID)
		d.log.Printf("[DEBUG] %s\n", msg)
		response.Message = msg
		goto SEND_RESPONSE
	} else if err = db.MedicineAdd(&med); err != nil {
		msg = fmt.Sprintf("Cannot add Medicine %q to database: %s",
			med.Name,
			err.Error())
		d.log.Printf("[ERROR] %s\n", msg)
		response.Message = msg
		goto SEND_RESPONSE
	}

	response.Message = med.UUID
	response.Status = true
	d.Announce(fmt.Sprintf("%s %s",
		i18n.Get(d.Language()).Added,
		med.Name))

SEND_RESPONSE:
	d.sendResponseJSON(w, &response)
} // func (d *Daemon) handleMedicineAdd(w http.ResponseWriter, r *http.Request)

func (d *Daemon) handleMedicineDelete(w http.ResponseWriter, r *http.Request) {
	d.log.Printf("[TRACE] Handle %s from %s\n",
		r.URL,
		r.RemoteAddr)

	var (
		err        error
		vars       map[string]string
		idstr, msg string
		id         int64
		db         *database.Database
		med        *objects.Medicine
		res        = objects.Response{ID: d.getID()}
	)

	vars = mux.Vars(r)

	idstr = vars["id"]

	if id, err = strconv.ParseInt(idstr, 10, 64); err != nil {
		msg = fmt.Sprintf("Cannot parse ID %q: %s",
			idstr,
			err.Error())
		d.log.Printf("[ERROR] %s\n", msg)
		res.Message = msg
		goto SEND_RESPONSE
	}

	db = d.pool.Get()
	defer d.pool.Put(db)

	if med, err = db.MedicineGetByID(id); err != nil {
		msg = fmt.Sprintf("Cannot look up Medicine by ID %d: %s",
			id,
			err.Error())
		d.log.Printf("[ERROR] %s\n", msg)
		res.Message = msg
		goto SEND_RESPONSE
	} else if med == nil {
		msg = fmt.Sprintf("Did not find Medicine %d in database", id)
		d.log.Printf("[INFO] %s\n", msg)
		res.Message = msg
		goto SEND_RESPONSE
	} else if err = db.MedicineDelete(med); err != nil {
		msg = fmt.Sprintf("Failed to delete Medicine %d (%q): %s",
			id,
			med.Name,
			err.Error())
		d.log.Printf("[ERROR] %s\n", msg)
		res.Message = msg
		goto SEND_RESPONSE
	}

	res.Message = fmt.Sprintf("Medicine %d (%q) was deleted",
		id,
		med.Name)
	res.Status = true

SEND_RESPONSE:
	d.sendResponseJSON(w, &res)
} // func (d *Daemon) handleMedicineDelete(w http.ResponseWriter, r *http.Request)

func (d *Daemon) handleNoteAdd(w http.ResponseWriter, r *http.Request) {
	d.log.Printf("[TRACE] Handle %s from %s\n",
		r.URL,
		r.RemoteAddr)

	var (
		err         error
		note        objects.Note
		db          *database.Database
		pat         *objects.Patient
		pidstr, msg string
		response    = objects.Response{ID: d.getID()}
	)

	if err = r.ParseForm(); err != nil {
		d.log.Printf("[ERROR] Cannot parse form data: %s\n",
			err.Error())
		response.Message = err.Error()
		goto SEND_RESPONSE
	}

	pidstr = r.PostFormValue("patient")
	note.Body = r.PostFormValue("body")

	if note.PatientID, err = strconv.ParseInt(pidstr, 10, 64); err != nil {
		msg = fmt.Sprintf("Cannot parse patient ID %q: %s",
			pidstr,
			err.Error())
		d.log.Printf("[ERROR] %s\n", msg)
		response.Message = msg
		goto SEND_RESPONSE
	} else if note.Body == "" {
		msg = "Note body must not be empty"
		d.log.Printf("[ERROR] %s\n", msg)
		response.Message = msg
		goto SEND_RESPONSE
	}

	note.UUID = common.GetUUID()
	note.Timestamp = time.Now()

	db = d.pool.Get()
	defer d.pool.Put(db)

	if pat, err = db.PatientGetByID(note.PatientID); err != nil {
		msg = fmt.Sprintf("Cannot look up Patient #%d: %s",
			note.PatientID,
			err.Error())
		d.log.Printf("[ERROR] %s\n", msg)
		response.Message = msg
		goto SEND_RESPONSE
	} else if pat == nil {
		msg = fmt.Sprintf("Patient #%d was not found in database",
			note.PatientID)
		d.log.Printf("[DEBUG] %s\n", msg)
		response.Message = msg
		goto SEND_RESPONSE
	} else if err = db.NoteAdd(&note); err != nil {
		msg = fmt.Sprintf("Cannot add Note for Patient %q to database: %s",
			pat.Name,
			err.Error())
		d.log.Printf("[ERROR] %s\n", msg)
		response.Message = msg
		goto SEND_RESPONSE
	}

	response.Message = note.UUID
	response.Status = true
	d.Announce(i18n.Get(d.Language()).NoteSaved)

SEND_RESPONSE:
	d.sendResponseJSON(w, &response)
} // func (d *Daemon) handleNoteAdd(w http.ResponseWriter, r *http.Request)

func (d *Daemon) handleAlarmActive(w http.ResponseWriter, r *http.Request) {
	d.log.Printf("[TRACE] Handle %s from %s\n",
		r.URL,
		r.RemoteAddr)

	var (
		err   error
		buf   []byte
		alarm = d.engine.Active()
	)

	if alarm == nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(200)
		w.Write([]byte("null")) // nolint: errcheck
		return
	}

	if buf, err = ffjson.Marshal(alarm); err != nil {
		d.log.Printf("[ERROR] Cannot serialize Alarm %s: %s\n",
			alarm.Key,
			err.Error())
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	defer ffjson.Pool(buf)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(200)
	w.Write(buf) // nolint: errcheck
} // func (d *Daemon) handleAlarmActive(w http.ResponseWriter, r *http.Request)

func (d *Daemon) handleAlarmTaken(w http.ResponseWriter, r *http.Request) {
	d.log.Printf("[TRACE] Handle %s from %s\n",
		r.URL,
		r.RemoteAddr)

	var (
		err error
		res = objects.Response{ID: d.getID()}
	)

	if err = d.engine.MarkTaken(); err != nil {
		res.Message = fmt.Sprintf("Cannot record dose as taken: %s",
			err.Error())
		d.log.Printf("[ERROR] %s\n", res.Message)
	} else {
		res.Status = true
		res.Message = "OK"
	}

	d.sendResponseJSON(w, &res)
} // func (d *Daemon) handleAlarmTaken(w http.ResponseWriter, r *http.Request)

func (d *Daemon) handleAlarmSnooze(w http.ResponseWriter, r *http.Request) {
	d.log.Printf("[TRACE] Handle %s from %s\n",
		r.URL,
		r.RemoteAddr)

	var res = objects.Response{ID: d.getID()}

	d.engine.Snooze()
	res.Status = true
	res.Message = "OK"

	d.sendResponseJSON(w, &res)
} // func (d *Daemon) handleAlarmSnooze(w http.ResponseWriter, r *http.Request)

func (d *Daemon) handleAlarmDismiss(w http.ResponseWriter, r *http.Request) {
	d.log.Printf("[TRACE] Handle %s from %s\n",
		r.URL,
		r.RemoteAddr)

	var res = objects.Response{ID: d.getID()}

	d.engine.Dismiss()
	res.Status = true
	res.Message = "OK"

	d.sendResponseJSON(w, &res)
} // func (d *Daemon) handleAlarmDismiss(w http.ResponseWriter, r *http.Request)

func (d *Daemon) handleExtractPatient(w http.ResponseWriter, r *http.Request) {
	d.log.Printf("[TRACE] Handle %s from %s\n",
		r.URL,
		r.RemoteAddr)

	var (
		err       error
		text, msg string
		info      *extraction.PatientInfo
		buf       []byte
		response  = objects.Response{ID: d.getID()}
	)

	if d.gateway == nil {
		response.Message = "extraction service is not configured"
		d.log.Printf("[DEBUG] %s\n", response.Message)
		d.sendResponseJSON(w, &response)
		return
	}

	if err = r.ParseForm(); err != nil {
		d.log.Printf("[ERROR] Cannot parse form data: %s\n",
			err.Error())
		response.Message = err.Error()
		d.sendResponseJSON(w, &response)
		return
	}

	text = r.PostFormValue("text")

	if info, err = d.gateway.ParsePatient(text); err != nil {
		msg = fmt.Sprintf("Cannot extract patient details: %s",
			err.Error())
		d.log.Printf("[ERROR] %s\n", msg)
		response.Message = msg
		d.sendResponseJSON(w, &response)
		return
	} else if buf, err = ffjson.Marshal(info); err != nil {
		msg = fmt.Sprintf("Cannot serialize extracted patient details: %s",
			err.Error())
		d.log.Printf("[ERROR] %s\n", msg)
		response.Message = msg
		d.sendResponseJSON(w, &response)
		return
	}

	defer ffjson.Pool(buf)

	d.Announce(i18n.Get(d.Language()).Extracted)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(200)
	w.Write(buf) // nolint: errcheck
} // func (d *Daemon) handleExtractPatient(w http.ResponseWriter, r *http.Request)

func (d *Daemon) handleExtractMedicine(w http.ResponseWriter, r *http.Request) {
	d.log.Printf("[TRACE] Handle %s from %s\n",
		r.URL,
		r.RemoteAddr)

	var (
		err       error
		text, msg string
		info      *extraction.MedicineInfo
		buf       []byte
		response  = objects.Response{ID: d.getID()}
	)

	if d.gateway == nil {
		response.Message = "extraction service is not configured"
		d.log.Printf("[DEBUG] %s\n", response.Message)
		d.sendResponseJSON(w, &response)
		return
	}

	if err = r.ParseForm(); err != nil {
		d.log.Printf("[ERROR] Cannot parse form data: %s\n",
			err.Error())
		response.Message = err.Error()
		d.sendResponseJSON(w, &response)
		return
	}

	text = r.PostFormValue("text")

	if info, err = d.gateway.ParseMedicine(text); err != nil {
		msg = fmt.Sprintf("Cannot extract medicine details: %s",
			err.Error())
		d.log.Printf("[ERROR] %s\n", msg)
		response.Message = msg
		d.sendResponseJSON(w, &response)
		return
	}

	if info.Name == "" {
		info.Name = defaultMedName
	}
	if info.Dosage == "" {
		info.Dosage = defaultMedDosage
	}
	if info.Schedule == "" {
		info.Schedule = defaultMedSchedule
	}
	if info.Stock <= 0 {
		info.Stock = defaultMedStock
	}

	if buf, err = ffjson.Marshal(info); err != nil {
		msg = fmt.Sprintf("Cannot serialize extracted medicine details: %s",
			err.Error())
		d.log.Printf("[ERROR] %s\n", msg)
		response.Message = msg
		d.sendResponseJSON(w, &response)
		return
	}

	defer ffjson.Pool(buf)

	d.Announce(i18n.Get(d.Language()).Extracted)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(200)
	w.Write(buf) // nolint: errcheck
} // func (d *Daemon) handleExtractMedicine(w http.ResponseWriter, r *http.Request)

func (d *Daemon) handleLanguageSet(w http.ResponseWriter, r *http.Request) {
	d.log.Printf("[TRACE] Handle %s from %s\n",
		r.URL,
		r.RemoteAddr)

	var (
		err       error
		lstr, msg string
		lang      language.Language
		res       = objects.Response{ID: d.getID()}
	)

	if err = r.ParseForm(); err != nil {
		d.log.Printf("[ERROR] Cannot parse form data: %s\n",
			err.Error())
		res.Message = err.Error()
		goto SEND_RESPONSE
	}

	lstr = r.FormValue("lang")

	if lang, err = language.Parse(lstr); err != nil {
		msg = fmt.Sprintf("Cannot parse language %q: %s",
			lstr,
			err.Error())
		d.log.Printf("[ERROR] %s\n", msg)
		res.Message = msg
		goto SEND_RESPONSE
	}

	d.SetLanguage(lang)
	res.Status = true
	res.Message = lang.String()

SEND_RESPONSE:
	d.sendResponseJSON(w, &res)
} // func (d *Daemon) handleLanguageSet(w http.ResponseWriter, r *http.Request)

//////////////////////////////////////////////////////////////////////////////////////////////////
/// Helpers //////////////////////////////////////////////////////////////////////////////////////
//////////////////////////////////////////////////////////////////////////////////////////////////

func (d *Daemon) sendResponseJSON(w http.ResponseWriter, res *objects.Response) {
	var (
		err error
		buf []byte
	)

	if buf, err = ffjson.Marshal(res); err != nil {
		d.log.Printf("[ERROR] Cannot serialize Response object %#v: %s\n",
			res,
			err.Error())
		return
	}

	defer ffjson.Pool(buf)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(200)
	w.Write(buf) // nolint: errcheck
} // func (d *Daemon) sendResponseJSON(w http.ResponseWriter, res *objects.Response)

func (d *Daemon) getID() int64 {
	d.idLock.Lock()
	d.idCnt++
	var id = d.idCnt
	d.idLock.Unlock()
	return id
} // func (d *Daemon) getID() int64
