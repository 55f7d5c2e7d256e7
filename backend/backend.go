// /home/cmb/go/src/github.com/CatherineMariaBastin/Zaathi/backend/backend.go
// -*- mode: go; coding: utf-8; -*-
// Created on 05. 04. 2025 by Catherine Maria Bastin
// (c) 2025 Catherine Maria Bastin
// Time-stamp: <2025-06-21 22:03:11 cmb>

// Package backend implements the daemon at the heart of the
// application: it owns the patient records, runs the reminder engine,
// and serves the HTTP API the clients talk to.
package backend

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/CatherineMariaBastin/Zaathi/common"
	"github.com/CatherineMariaBastin/Zaathi/database"
	"github.com/CatherineMariaBastin/Zaathi/extraction"
	"github.com/CatherineMariaBastin/Zaathi/logdomain"
	"github.com/CatherineMariaBastin/Zaathi/objects"
	"github.com/CatherineMariaBastin/Zaathi/objects/language"
	"github.com/CatherineMariaBastin/Zaathi/reminder"
	"github.com/CatherineMariaBastin/Zaathi/speech"
	"github.com/godbus/dbus/v5"
	"github.com/gorilla/mux"
	"github.com/grandcat/zeroconf"
)

const (
	notifyObj    = "org.freedesktop.Notifications"
	notifyPath   = "/org/freedesktop/Notifications"
	notifyMethod = "org.freedesktop.Notifications.Notify"
	queueDepth   = 5
	queueTimeout = time.Second * 2
	poolSize     = 4
)

// Daemon is the centerpiece of the backend, coordinating between the
// database, the reminder engine, and the clients.
type Daemon struct {
	log        *log.Logger
	pool       *database.Pool
	bus        *dbus.Conn
	lock       sync.RWMutex
	active     bool
	lang       language.Language
	Queue      chan objects.Notification
	web        http.Server
	router     *mux.Router
	listenAddr string
	hostname   string
	dnssd      *zeroconf.Server
	engine     *reminder.Engine
	speaker    *speech.Speaker
	gateway    *extraction.Client
	idLock     sync.Mutex
	idCnt      int64
}

// Summon summons a Daemon and returns it. No sacrifice or idolatry is required.
// The apiKey is for the extraction service; if it is empty, smart input
// is disabled, but everything else works normally.
func Summon(addr, apiKey string) (*Daemon, error) {
	var (
		err error
		d   = &Daemon{
			listenAddr: addr,
			active:     true,
			Queue:      make(chan objects.Notification, queueDepth),
			router:     mux.NewRouter(),
		}
	)

	if d.log, err = common.GetLogger(logdomain.Backend); err != nil {
		fmt.Printf("ERROR initializing Logger: %s\n",
			err.Error())
		return nil, err
	} else if d.pool, err = database.NewPool(poolSize); err != nil {
		d.log.Printf("[ERROR] Cannot initialize database pool: %s\n",
			err.Error())
		return nil, err
	} else if d.speaker, err = speech.NewSpeaker(); err != nil {
		d.log.Printf("[ERROR] Cannot initialize speech output: %s\n",
			err.Error())
		return nil, err
	} else if d.engine, err = reminder.New(d, d); err != nil {
		d.log.Printf("[ERROR] Cannot initialize reminder engine: %s\n",
			err.Error())
		return nil, err
	}

	if d.hostname, err = os.Hostname(); err != nil {
		d.log.Printf("[WARN] Cannot determine hostname: %s\n",
			err.Error())
		d.hostname = "localhost"
	}

	if d.bus, err = dbus.SessionBus(); err != nil {
		d.log.Printf("[WARN] Cannot connect to DBus session bus, desktop notifications are disabled: %s\n",
			err.Error())
		d.bus = nil
	}

	if apiKey != "" {
		if d.gateway, err = extraction.NewClient(apiKey); err != nil {
			d.log.Printf("[WARN] Cannot initialize extraction gateway: %s\n",
				err.Error())
			d.gateway = nil
		}
	} else {
		d.log.Println("[INFO] No API key for the extraction service, smart input is disabled")
	}

	d.web.Addr = addr
	d.web.ErrorLog = d.log
	d.web.Handler = d.router

	if err = d.initWebHandlers(); err != nil {
		d.log.Printf("[ERROR] Failed to initialize web server: %s\n",
			err.Error())
		return nil, err
	}

	if err = d.initDNSSd(); err != nil {
		d.log.Printf("[WARN] Cannot advertise service via DNS-SD: %s\n",
			err.Error())
	}

	go d.notifyLoop()
	go d.serveHTTP()
	d.engine.Start()

	return d, nil
} // func Summon(addr, apiKey string) (*Daemon, error)

// IsAlive returns true if the Daemon's active flag is set.
func (d *Daemon) IsAlive() bool {
	d.lock.RLock()
	var alive = d.active
	d.lock.RUnlock()

	return alive
} // func (d *Daemon) IsAlive() bool

// Banish clears the Daemon's active flag, telling components to shut down.
func (d *Daemon) Banish() error {
	var (
		err         error
		ctx, cancel = context.WithTimeout(context.Background(), time.Second*3)
	)
	defer cancel()

	d.engine.Stop()

	if d.dnssd != nil {
		d.dnssd.Shutdown()
		d.dnssd = nil
	}

	if err = d.web.Shutdown(ctx); err != nil {
		d.log.Printf("[ERROR] Failed to shutdown web server: %s\n",
			err.Error())
	}

	if ctx.Err() != nil {
		err = ctx.Err()
		d.log.Printf("[ERROR] Failed to gracefully shut down web server: %s\n",
			ctx.Err().Error())
		d.web.Close() // nolint: errcheck
	}

	if e := d.pool.Close(); e != nil {
		d.log.Printf("[ERROR] Failed to close database pool: %s\n",
			e.Error())
		if err == nil {
			err = e
		}
	}

	d.lock.Lock()
	d.active = false
	d.lock.Unlock()
	return err
} // func (d *Daemon) Banish() error

// Language returns the language the Daemon currently speaks to its users in.
func (d *Daemon) Language() language.Language {
	d.lock.RLock()
	var l = d.lang
	d.lock.RUnlock()

	return l
} // func (d *Daemon) Language() language.Language

// SetLanguage sets the language the Daemon speaks to its users in.
func (d *Daemon) SetLanguage(l language.Language) {
	d.lock.Lock()
	d.lang = l
	d.lock.Unlock()

	d.engine.SetLanguage(l)
} // func (d *Daemon) SetLanguage(l language.Language)

// RecordSnapshot returns the current state of all patient records.
// It is part of the reminder engine's view of the Daemon.
func (d *Daemon) RecordSnapshot() ([]objects.Patient, error) {
	var db = d.pool.Get()
	defer d.pool.Put(db)

	return db.PatientGetAll()
} // func (d *Daemon) RecordSnapshot() ([]objects.Patient, error)

// MedicineTaken records a dose of the given Medicine as taken.
// It is part of the reminder engine's view of the Daemon.
func (d *Daemon) MedicineTaken(medicineID int64, when time.Time) (*objects.Medicine, error) {
	var db = d.pool.Get()
	defer d.pool.Put(db)

	return db.MedicineTaken(medicineID, when)
} // func (d *Daemon) MedicineTaken(medicineID int64, when time.Time) (*objects.Medicine, error)

// Announce delivers a message to the user, both as a desktop
// notification and spoken aloud. It never blocks and never fails.
func (d *Daemon) Announce(text string) {
	var note = &objects.Message{
		Title: common.AppName,
		Body:  text,
	}

	select {
	case d.Queue <- note:
	default:
		d.log.Printf("[DEBUG] Notification queue is full, dropping %q\n",
			text)
	}

	d.speaker.Speak(d.Language(), text)
} // func (d *Daemon) Announce(text string)

func (d *Daemon) notifyLoop() {
	defer d.log.Println("[TRACE] Quitting notifyLoop")

	var (
		err  error
		tick = time.NewTicker(queueTimeout)
	)
	defer tick.Stop()

	for d.IsAlive() {
		select {
		case <-tick.C:
			continue
		case m := <-d.Queue:
			var title, body = m.Payload()
			d.log.Printf("[DEBUG] Received Notification: %s\n%s\n",
				title,
				body)

			if err = d.notify(m); err != nil {
				d.log.Printf("[ERROR] Failed to post Notification %q: %s\n",
					title,
					err.Error())
			}
		}
	}
} // func (d *Daemon) notifyLoop()

func (d *Daemon) notify(n objects.Notification) error {
	if d.bus == nil {
		return nil
	}

	var (
		err        error
		obj        = d.bus.Object(notifyObj, notifyPath)
		head, body string
	)

	if obj == nil {
		err = fmt.Errorf("Did not find object %s (%s) on session bus",
			notifyObj,
			notifyPath)
		d.log.Printf("[ERROR] %s\n", err.Error())
		return err
	}

	head, body = n.Payload()

	var res = obj.Call(
		notifyMethod,
		0,
		common.AppName,
		uint32(0),
		"",
		head,
		body,
		[]string{},
		map[string]dbus.Variant{},
		int32(0),
	)

	if res.Err != nil {
		d.log.Printf("[ERROR] Cannot send Notification %q: %s\n",
			head,
			res.Err.Error())
		return res.Err
	}

	return nil
} // func (d *Daemon) notify(n objects.Notification) error
