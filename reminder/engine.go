// /home/cmb/go/src/github.com/CatherineMariaBastin/Zaathi/reminder/engine.go
// -*- mode: go; coding: utf-8; -*-
// Created on 08. 03. 2025 by Catherine Maria Bastin
// (c) 2025 Catherine Maria Bastin
// Time-stamp: <2025-06-21 21:17:45 cmb>

// Package reminder implements the dose reminder engine. It periodically
// scans the patient records for medicines whose scheduled time of day
// has arrived (or whose snooze period has elapsed), raises at most one
// alarm at a time, and tracks per-day completion so that a dose that
// has been marked taken or dismissed does not alarm again until the
// next day.
package reminder

import (
	"log"
	"sync"
	"time"

	"github.com/CatherineMariaBastin/Zaathi/common"
	"github.com/CatherineMariaBastin/Zaathi/i18n"
	"github.com/CatherineMariaBastin/Zaathi/logdomain"
	"github.com/CatherineMariaBastin/Zaathi/objects"
	"github.com/CatherineMariaBastin/Zaathi/objects/language"
)

// CheckInterval is the period of the evaluation cycle. It must be
// shorter than a minute, or doses could be missed entirely.
// SnoozeDelay is how long a snoozed alarm stays quiet.
const (
	CheckInterval = time.Second * 5
	SnoozeDelay   = time.Minute * 5
	lowStockLevel = 5
	dismissedMark = "dismissed"
)

// RecordSource gives the Engine access to the patient records: a
// snapshot of all patients with their medicines for each evaluation
// cycle, and a way to record a dose as taken.
type RecordSource interface {
	RecordSnapshot() ([]objects.Patient, error)
	MedicineTaken(medicineID int64, when time.Time) (*objects.Medicine, error)
}

// Announcer delivers a message to the user. Implementations must be
// non-blocking and must swallow any failures; an announcement is
// strictly best-effort.
type Announcer interface {
	Announce(text string)
}

// Engine is the reminder engine.
type Engine struct {
	log       *log.Logger
	src       RecordSource
	announcer Announcer
	clock     func() time.Time
	lock      sync.RWMutex
	lang      language.Language
	active    *objects.Alarm
	snooze    map[string]time.Time
	completed map[string]string
	running   bool
}

// New creates an Engine reading from the given RecordSource and
// announcing through the given Announcer (which may be nil).
func New(src RecordSource, announcer Announcer) (*Engine, error) {
	var (
		err error
		eng = &Engine{
			src:       src,
			announcer: announcer,
			clock:     time.Now,
			snooze:    make(map[string]time.Time),
			completed: make(map[string]string),
		}
	)

	if eng.log, err = common.GetLogger(logdomain.Reminder); err != nil {
		return nil, err
	}

	return eng, nil
} // func New(src RecordSource, announcer Announcer) (*Engine, error)

// Start kicks off the periodic evaluation cycle.
func (e *Engine) Start() {
	e.lock.Lock()
	defer e.lock.Unlock()

	if e.running {
		return
	}

	e.running = true
	go e.loop()
} // func (e *Engine) Start()

// Stop cancels the periodic evaluation cycle. The evaluation goroutine
// notices within one CheckInterval.
func (e *Engine) Stop() {
	e.lock.Lock()
	e.running = false
	e.lock.Unlock()
} // func (e *Engine) Stop()

// IsRunning returns true if the Engine's evaluation cycle is active.
func (e *Engine) IsRunning() bool {
	e.lock.RLock()
	var running = e.running
	e.lock.RUnlock()
	return running
} // func (e *Engine) IsRunning() bool

func (e *Engine) loop() {
	defer e.log.Println("[TRACE] Reminder engine is shutting down")

	var tick = time.NewTicker(CheckInterval)
	defer tick.Stop()

	for e.IsRunning() {
		<-tick.C
		e.Check()
	}
} // func (e *Engine) loop()

// SetLanguage sets the language used for announcements.
func (e *Engine) SetLanguage(l language.Language) {
	e.lock.Lock()
	e.lang = l
	e.lock.Unlock()
} // func (e *Engine) SetLanguage(l language.Language)

// Active returns a copy of the currently active Alarm, or nil if no
// alarm is active.
func (e *Engine) Active() *objects.Alarm {
	e.lock.RLock()
	defer e.lock.RUnlock()

	if e.active == nil {
		return nil
	}

	var a = *e.active
	return &a
} // func (e *Engine) Active() *objects.Alarm

// Check runs one evaluation cycle: if no alarm is active, it scans all
// patients' medicines and raises an alarm for the first dose that is
// due. Scanning stops as soon as an alarm is raised; any other doses
// that are due stay due and get their turn on a later cycle, once the
// active alarm has been resolved.
func (e *Engine) Check() {
	e.lock.Lock()
	defer e.lock.Unlock()

	if e.active != nil {
		return
	}

	var (
		err      error
		patients []objects.Patient
		now      = e.clock()
		tstr     = now.Format(common.TimestampFormatMinute)
	)

	if patients, err = e.src.RecordSnapshot(); err != nil {
		e.log.Printf("[ERROR] Cannot get snapshot of patient records: %s\n",
			err.Error())
		return
	}

	for pIdx := range patients {
		var p = &patients[pIdx]

		for mIdx := range p.Medicines {
			var (
				m   = &p.Medicines[mIdx]
				key = objects.AlarmKey(now, p.ID, m.ID, m.Schedule)
			)

			if _, done := e.completed[key]; done {
				continue
			}

			var (
				scheduled      = m.Schedule == tstr
				wake, snoozing = e.snooze[key]
				snoozeOver     = snoozing && !wake.After(now)
			)

			if !scheduled && !snoozeOver {
				continue
			}

			if snoozeOver {
				delete(e.snooze, key)
			}

			e.active = &objects.Alarm{
				Key:          key,
				PatientID:    p.ID,
				MedicineID:   m.ID,
				PatientName:  p.Name,
				MedicineName: m.Name,
				Raised:       now,
			}

			e.log.Printf("[INFO] Raising alarm %s\n",
				e.active)

			var t = i18n.Get(e.lang)
			e.say(t.DoseDueMsg(p.Name, m.Name))
			return
		}
	}
} // func (e *Engine) Check()

// MarkTaken resolves the active alarm by recording the dose as taken:
// the medicine's stock is decremented (floor zero), its last-taken
// stamp is set, and the alarm's key is marked completed for the day.
// If no alarm is active, MarkTaken is a no-op.
func (e *Engine) MarkTaken() error {
	e.lock.Lock()
	defer e.lock.Unlock()

	if e.active == nil {
		return nil
	}

	var (
		err error
		med *objects.Medicine
		now = e.clock()
		a   = e.active
	)

	if med, err = e.src.MedicineTaken(a.MedicineID, now); err != nil {
		e.log.Printf("[ERROR] Cannot record dose of %s as taken: %s\n",
			a.MedicineName,
			err.Error())
		return err
	}

	e.completed[a.Key] = now.Format(common.TimestampFormatTime)
	delete(e.snooze, a.Key)
	e.active = nil

	var t = i18n.Get(e.lang)
	e.say(t.MedTaken)

	if med != nil {
		if med.Stock == 0 {
			e.say(t.OutOfStock)
		} else if med.Stock < lowStockLevel {
			e.say(t.LowStock)
		}
	}

	return nil
} // func (e *Engine) MarkTaken() error

// Snooze resolves the active alarm by deferring it: the same dose will
// alarm again once the snooze delay has elapsed. If no alarm is
// active, Snooze is a no-op.
func (e *Engine) Snooze() {
	e.lock.Lock()
	defer e.lock.Unlock()

	if e.active == nil {
		return
	}

	e.snooze[e.active.Key] = e.clock().Add(SnoozeDelay)
	e.log.Printf("[DEBUG] Snoozing alarm %s until %s\n",
		e.active.Key,
		e.snooze[e.active.Key].Format(common.TimestampFormat))
	e.active = nil
} // func (e *Engine) Snooze()

// Dismiss resolves the active alarm without recording the dose as
// taken. The alarm's key is marked completed for the day, so it will
// not alarm again until tomorrow; the stock count is unaffected.
// If no alarm is active, Dismiss is a no-op.
func (e *Engine) Dismiss() {
	e.lock.Lock()
	defer e.lock.Unlock()

	if e.active == nil {
		return
	}

	e.completed[e.active.Key] = dismissedMark
	delete(e.snooze, e.active.Key)
	e.log.Printf("[DEBUG] Dismissing alarm %s\n",
		e.active.Key)
	e.active = nil
} // func (e *Engine) Dismiss()

func (e *Engine) say(text string) {
	if e.announcer != nil {
		e.announcer.Announce(text)
	}
} // func (e *Engine) say(text string)
