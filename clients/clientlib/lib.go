// /home/cmb/go/src/github.com/CatherineMariaBastin/Zaathi/clients/clientlib/lib.go
// -*- mode: go; coding: utf-8; -*-
// Created on 24. 05. 2025 by Catherine Maria Bastin
// (c) 2025 Catherine Maria Bastin
// Time-stamp: <2025-06-21 22:52:30 cmb>

// Package clientlib provides the basic framework for building clients
// that talk to the backend: adding patients, medicines and notes, and
// resolving alarms.
package clientlib

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/CatherineMariaBastin/Zaathi/common"
	"github.com/CatherineMariaBastin/Zaathi/logdomain"
	"github.com/CatherineMariaBastin/Zaathi/objects"
	"github.com/pquerna/ffjson/ffjson"
)

const (
	patientAddPath  = "/patient/add"
	patientAllPath  = "/patient/all"
	medicineAddPath = "/medicine/add"
	noteAddPath     = "/note/add"
	alarmActivePath = "/alarm/active"
)

// Client implements the fundamental communication with the backend.
type Client struct {
	Server *url.URL
	Client http.Client
	log    *log.Logger
}

// NewClient creates a new Client.
func NewClient(srv string) (*Client, error) {
	var (
		err error
		c   = &Client{
			Client: http.Client{
				Timeout: time.Second * 10,
			},
		}
	)

	if c.log, err = common.GetLogger(logdomain.Client); err != nil {
		fmt.Fprintf(
			os.Stderr,
			"Cannot create Logger: %s\n",
			err.Error())
		return nil, err
	} else if c.Server, err = url.Parse(srv); err != nil {
		c.log.Printf("[ERROR] Cannot parse URL %q: %s\n",
			srv,
			err.Error())
		return nil, err
	}

	c.Server.Scheme = "http"

	return c, nil
} // func NewClient(srv string) (*Client, error)

func (c *Client) GetLogger() *log.Logger {
	return c.log
} // func (c *Client) GetLogger() *log.Logger

// SubmitPatient adds a new Patient to the backend.
func (c *Client) SubmitPatient(p *objects.Patient) error {
	var values = make(url.Values)

	values["name"] = []string{p.Name}
	values["age"] = []string{strconv.Itoa(p.Age)}
	values["condition"] = []string{p.Condition}

	return c.postForm(patientAddPath, values)
} // func (c *Client) SubmitPatient(p *objects.Patient) error

// SubmitMedicine adds a new Medicine to the backend.
func (c *Client) SubmitMedicine(m *objects.Medicine) error {
	var values = make(url.Values)

	values["patient"] = []string{strconv.FormatInt(m.PatientID, 10)}
	values["name"] = []string{m.Name}
	values["dosage"] = []string{m.Dosage}
	values["schedule"] = []string{m.Schedule}
	values["stock"] = []string{strconv.Itoa(m.Stock)}

	return c.postForm(medicineAddPath, values)
} // func (c *Client) SubmitMedicine(m *objects.Medicine) error

// SubmitNote adds a new Note to the backend.
func (c *Client) SubmitNote(n *objects.Note) error {
	var values = make(url.Values)

	values["patient"] = []string{strconv.FormatInt(n.PatientID, 10)}
	values["body"] = []string{n.Body}

	return c.postForm(noteAddPath, values)
} // func (c *Client) SubmitNote(n *objects.Note) error

// GetPatients fetches all patient records from the backend.
func (c *Client) GetPatients() ([]objects.Patient, error) {
	var (
		err      error
		rcvBuf   bytes.Buffer
		hres     *http.Response
		patients []objects.Patient
		addr     = *c.Server
	)

	addr.Path = patientAllPath

	if hres, err = c.Client.Get(addr.String()); err != nil {
		c.log.Printf("[ERROR] Failed to GET Patient list from %s: %s\n",
			&addr,
			err.Error())
		return nil, err
	}

	defer hres.Body.Close() // nolint: errcheck

	if hres.StatusCode != http.StatusOK {
		err = fmt.Errorf("Unexpected status from %s: %s",
			&addr,
			hres.Status)
		c.log.Printf("[ERROR] %s\n", err.Error())
		return nil, err
	} else if _, err = io.Copy(&rcvBuf, hres.Body); err != nil {
		c.log.Printf("[ERROR] Failed to read Response body from %s: %s\n",
			&addr,
			err.Error())
		return nil, err
	} else if err = ffjson.Unmarshal(rcvBuf.Bytes(), &patients); err != nil {
		c.log.Printf("[ERROR] Cannot de-serialize Patient list from %s: %s\n",
			&addr,
			err.Error())
		return nil, err
	}

	return patients, nil
} // func (c *Client) GetPatients() ([]objects.Patient, error)

// GetActiveAlarm fetches the currently active Alarm from the backend.
// If no alarm is active, it returns nil.
func (c *Client) GetActiveAlarm() (*objects.Alarm, error) {
	var (
		err    error
		rcvBuf bytes.Buffer
		hres   *http.Response
		alarm  objects.Alarm
		addr   = *c.Server
	)

	addr.Path = alarmActivePath

	if hres, err = c.Client.Get(addr.String()); err != nil {
		c.log.Printf("[ERROR] Failed to GET active alarm from %s: %s\n",
			&addr,
			err.Error())
		return nil, err
	}

	defer hres.Body.Close() // nolint: errcheck

	if hres.StatusCode != http.StatusOK {
		err = fmt.Errorf("Unexpected status from %s: %s",
			&addr,
			hres.Status)
		c.log.Printf("[ERROR] %s\n", err.Error())
		return nil, err
	} else if _, err = io.Copy(&rcvBuf, hres.Body); err != nil {
		c.log.Printf("[ERROR] Failed to read Response body from %s: %s\n",
			&addr,
			err.Error())
		return nil, err
	}

	if bytes.Equal(bytes.TrimSpace(rcvBuf.Bytes()), []byte("null")) {
		return nil, nil
	} else if err = ffjson.Unmarshal(rcvBuf.Bytes(), &alarm); err != nil {
		c.log.Printf("[ERROR] Cannot de-serialize Alarm from %s: %s\n",
			&addr,
			err.Error())
		return nil, err
	}

	return &alarm, nil
} // func (c *Client) GetActiveAlarm() (*objects.Alarm, error)

// ResolveAlarm resolves the active alarm. The action must be one of
// "taken", "snooze" or "dismiss".
func (c *Client) ResolveAlarm(action string) error {
	switch action {
	case "taken", "snooze", "dismiss":
		// ok
	default:
		return fmt.Errorf("Invalid alarm action %q", action)
	}

	return c.postForm("/alarm/"+action, make(url.Values))
} // func (c *Client) ResolveAlarm(action string) error

func (c *Client) postForm(path string, values url.Values) error {
	var (
		err    error
		msg    string
		rcvBuf bytes.Buffer
		hres   *http.Response
		ores   objects.Response
		addr   = *c.Server
	)

	addr.Path = path

	if hres, err = c.Client.PostForm(addr.String(), values); err != nil {
		c.log.Printf("[ERROR] Failed to POST to %s: %s\n",
			&addr,
			err.Error())
		return err
	} else if hres.StatusCode != http.StatusOK {
		msg = fmt.Sprintf("Unexpected status from %s: %s",
			&addr,
			hres.Status)
		c.log.Printf("[ERROR] %s\n", msg)
		return errors.New(msg)
	} else if _, err = io.Copy(&rcvBuf, hres.Body); err != nil {
		c.log.Printf("[ERROR] Failed to read Response body from %s: %s\n",
			&addr,
			err.Error())
		return err
	} else if err = ffjson.Unmarshal(rcvBuf.Bytes(), &ores); err != nil {
		c.log.Printf("[ERROR] Cannot de-serialize Response from %s: %s\n",
			&addr,
			err.Error())
		return err
	} else if !ores.Status {
		err = fmt.Errorf("Request to %s failed: %s",
			&addr,
			ores.Message)
		c.log.Printf("[ERROR] %s\n",
			err.Error())
		return err
	}

	c.log.Printf("[DEBUG] Request to %s was successful: %s\n",
		&addr,
		ores.Message)

	return nil
} // func (c *Client) postForm(path string, values url.Values) error
