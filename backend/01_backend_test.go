// /home/cmb/go/src/github.com/CatherineMariaBastin/Zaathi/backend/01_backend_test.go
// -*- mode: go; coding: utf-8; -*-
// Created on 12. 04. 2025 by Catherine Maria Bastin
// (c) 2025 Catherine Maria Bastin
// Time-stamp: <2025-06-21 23:18:02 cmb>

package backend

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"testing"
	"time"

	"github.com/CatherineMariaBastin/Zaathi/common"
	"github.com/CatherineMariaBastin/Zaathi/objects"
	"github.com/pquerna/ffjson/ffjson"
)

var (
	back     *Daemon
	testAddr = fmt.Sprintf("localhost:%d", common.DefaultPort+1)
)

func TestSummon(t *testing.T) {
	var err error

	if back, err = Summon(testAddr, ""); err != nil {
		back = nil
		t.Errorf("Cannot create Daemon: %s",
			err.Error())
		return
	}

	// Give the web server a moment to bind its port.
	time.Sleep(time.Second / 4)
} // func TestSummon(t *testing.T)

func TestNotify(t *testing.T) {
	if back == nil {
		t.SkipNow()
	}

	var (
		err error
		msg = &objects.Message{
			Title: "Testing, one, two",
			Body:  "This is just a simple test, nothing to see here.",
		}
	)

	if err = back.notify(msg); err != nil {
		t.Errorf("Cannot send notification via DBus: %s",
			err.Error())
	}
} // func TestNotify(t *testing.T)

func TestPatientRoundtrip(t *testing.T) {
	if back == nil {
		t.SkipNow()
	}

	var (
		err      error
		hres     *http.Response
		rcvBuf   bytes.Buffer
		response objects.Response
		values   = url.Values{
			"name":      []string{"Achamma"},
			"age":       []string{"74"},
			"condition": []string{"Hypertension"},
		}
		client http.Client
		uri    = fmt.Sprintf("http://%s/patient/add", testAddr)
	)

	if hres, err = client.PostForm(uri, values); err != nil {
		t.Fatalf("Cannot POST to %s: %s",
			uri,
			err.Error())
	}

	defer hres.Body.Close() // nolint: errcheck

	if hres.StatusCode != http.StatusOK {
		t.Fatalf("Unexpected HTTP status: %s", hres.Status)
	} else if _, err = io.Copy(&rcvBuf, hres.Body); err != nil {
		t.Fatalf("Cannot read response body: %s", err.Error())
	} else if err = ffjson.Unmarshal(rcvBuf.Bytes(), &response); err != nil {
		t.Fatalf("Cannot de-serialize Response: %s", err.Error())
	} else if !response.Status {
		t.Fatalf("Adding Patient failed: %s", response.Message)
	}

	var (
		listBuf  bytes.Buffer
		patients []objects.Patient
		listURI  = fmt.Sprintf("http://%s/patient/all", testAddr)
	)

	if hres, err = client.Get(listURI); err != nil {
		t.Fatalf("Cannot GET %s: %s",
			listURI,
			err.Error())
	}

	defer hres.Body.Close() // nolint: errcheck

	if _, err = io.Copy(&listBuf, hres.Body); err != nil {
		t.Fatalf("Cannot read response body: %s", err.Error())
	} else if err = ffjson.Unmarshal(listBuf.Bytes(), &patients); err != nil {
		t.Fatalf("Cannot de-serialize Patient list: %s", err.Error())
	} else if len(patients) != 1 {
		t.Fatalf("Unexpected number of Patients: %d (expected 1)",
			len(patients))
	} else if patients[0].Name != "Achamma" {
		t.Errorf("Unexpected Patient name: %q", patients[0].Name)
	}
} // func TestPatientRoundtrip(t *testing.T)

func TestMedicineAddDefaults(t *testing.T) {
	if back == nil {
		t.SkipNow()
	}

	var (
		err      error
		hres     *http.Response
		rcvBuf   bytes.Buffer
		response objects.Response
		values   = url.Values{
			"patient": []string{"1"},
		}
		client http.Client
		uri    = fmt.Sprintf("http://%s/medicine/add", testAddr)
	)

	if hres, err = client.PostForm(uri, values); err != nil {
		t.Fatalf("Cannot POST to %s: %s",
			uri,
			err.Error())
	}

	defer hres.Body.Close() // nolint: errcheck

	if _, err = io.Copy(&rcvBuf, hres.Body); err != nil {
		t.Fatalf("Cannot read response body: %s", err.Error())
	} else if err = ffjson.Unmarshal(rcvBuf.Bytes(), &response); err != nil {
		t.Fatalf("Cannot de-serialize Response: %s", err.Error())
	} else if !response.Status {
		t.Fatalf("Adding Medicine failed: %s", response.Message)
	}

	var (
		meds []objects.Medicine
		db   = back.pool.Get()
	)
	defer back.pool.Put(db)

	if meds, err = db.MedicineGetByPatient(1); err != nil {
		t.Fatalf("Cannot load Medicines: %s", err.Error())
	} else if len(meds) != 1 {
		t.Fatalf("Unexpected number of Medicines: %d (expected 1)",
			len(meds))
	}

	var m = &meds[0]

	if m.Name != defaultMedName {
		t.Errorf("Unexpected Medicine name: %q (expected %q)",
			m.Name,
			defaultMedName)
	}
	if m.Dosage != defaultMedDosage {
		t.Errorf("Unexpected dosage: %q (expected %q)",
			m.Dosage,
			defaultMedDosage)
	}
	if m.Schedule != defaultMedSchedule {
		t.Errorf("Unexpected schedule: %q (expected %q)",
			m.Schedule,
			defaultMedSchedule)
	}
	if m.Stock != defaultMedStock {
		t.Errorf("Unexpected stock: %d (expected %d)",
			m.Stock,
			defaultMedStock)
	}
} // func TestMedicineAddDefaults(t *testing.T)

func TestAlarmActiveEmpty(t *testing.T) {
	if back == nil {
		t.SkipNow()
	}

	var (
		err    error
		hres   *http.Response
		rcvBuf bytes.Buffer
		client http.Client
		uri    = fmt.Sprintf("http://%s/alarm/active", testAddr)
	)

	if hres, err = client.Get(uri); err != nil {
		t.Fatalf("Cannot GET %s: %s",
			uri,
			err.Error())
	}

	defer hres.Body.Close() // nolint: errcheck

	if _, err = io.Copy(&rcvBuf, hres.Body); err != nil {
		t.Fatalf("Cannot read response body: %s", err.Error())
	} else if s := string(bytes.TrimSpace(rcvBuf.Bytes())); s != "null" {
		t.Errorf("Expected no active alarm, got %q", s)
	}
} // func TestAlarmActiveEmpty(t *testing.T)

func TestExtractWithoutGateway(t *testing.T) {
	if back == nil {
		t.SkipNow()
	}

	var (
		err      error
		hres     *http.Response
		rcvBuf   bytes.Buffer
		response objects.Response
		values   = url.Values{
			"text": []string{"Paracetamol 500mg at 8am, 20 tablets"},
		}
		client http.Client
		uri    = fmt.Sprintf("http://%s/extract/medicine", testAddr)
	)

	if hres, err = client.PostForm(uri, values); err != nil {
		t.Fatalf("Cannot POST to %s: %s",
			uri,
			err.Error())
	}

	defer hres.Body.Close() // nolint: errcheck

	if _, err = io.Copy(&rcvBuf, hres.Body); err != nil {
		t.Fatalf("Cannot read response body: %s", err.Error())
	} else if err = ffjson.Unmarshal(rcvBuf.Bytes(), &response); err != nil {
		t.Fatalf("Cannot de-serialize Response: %s", err.Error())
	} else if response.Status {
		t.Error("Extraction succeeded although no gateway is configured")
	}
} // func TestExtractWithoutGateway(t *testing.T)
