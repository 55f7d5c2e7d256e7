// /home/cmb/go/src/github.com/CatherineMariaBastin/Zaathi/extraction/01_extraction_test.go
// -*- mode: go; coding: utf-8; -*-
// Created on 30. 03. 2025 by Catherine Maria Bastin
// (c) 2025 Catherine Maria Bastin
// Time-stamp: <2025-06-21 21:58:14 cmb>

package extraction

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
)

// mkService fakes the extraction service: it wraps the given payload in
// the wire format the real service uses.
func mkService(t *testing.T, payload string) *httptest.Server {
	t.Helper()

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("key") == "" {
			http.Error(w, "missing API key", http.StatusForbidden)
			return
		}

		var body = fmt.Sprintf(`{"candidates":[{"content":{"parts":[{"text":%s}]}}]}`,
			strconv.Quote(payload))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(200)
		w.Write([]byte(body)) // nolint: errcheck
	}))
} // func mkService(t *testing.T, payload string) *httptest.Server

func TestNewClientNoKey(t *testing.T) {
	if c, err := NewClient(""); err == nil {
		t.Error("NewClient accepted an empty API key")
	} else if c != nil {
		t.Error("NewClient returned both a Client and an error")
	}
} // func TestNewClientNoKey(t *testing.T)

func TestParsePatient(t *testing.T) {
	var srv = mkService(t, `{"name": "Achamma", "age": 74, "condition": "Hypertension"}`)
	defer srv.Close()

	var (
		err  error
		c    *Client
		info *PatientInfo
	)

	if c, err = NewClient("test-key"); err != nil {
		t.Fatalf("Cannot create Client: %s", err.Error())
	}

	c.endpoint = srv.URL

	if info, err = c.ParsePatient("Achamma is 74 and has high blood pressure"); err != nil {
		t.Fatalf("ParsePatient failed: %s", err.Error())
	} else if info.Name != "Achamma" {
		t.Errorf("Unexpected name: %q", info.Name)
	} else if info.Age != 74 {
		t.Errorf("Unexpected age: %d", info.Age)
	} else if info.Condition != "Hypertension" {
		t.Errorf("Unexpected condition: %q", info.Condition)
	}
} // func TestParsePatient(t *testing.T)

func TestParseMedicine(t *testing.T) {
	var srv = mkService(t, `{"name": "Paracetamol", "dosage": "500mg", "schedule": "08:00", "stock": 20}`)
	defer srv.Close()

	var (
		err  error
		c    *Client
		info *MedicineInfo
	)

	if c, err = NewClient("test-key"); err != nil {
		t.Fatalf("Cannot create Client: %s", err.Error())
	}

	c.endpoint = srv.URL

	if info, err = c.ParseMedicine("Paracetamol 500mg at 8am, 20 tablets"); err != nil {
		t.Fatalf("ParseMedicine failed: %s", err.Error())
	} else if info.Name != "Paracetamol" {
		t.Errorf("Unexpected name: %q", info.Name)
	} else if info.Schedule != "08:00" {
		t.Errorf("Unexpected schedule: %q", info.Schedule)
	} else if info.Stock != 20 {
		t.Errorf("Unexpected stock: %d", info.Stock)
	}
} // func TestParseMedicine(t *testing.T)

// A client error from the service must not be retried.
func TestParseClientError(t *testing.T) {
	var requests int

	var srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		http.Error(w, "no such model", http.StatusNotFound)
	}))
	defer srv.Close()

	var (
		err error
		c   *Client
	)

	if c, err = NewClient("test-key"); err != nil {
		t.Fatalf("Cannot create Client: %s", err.Error())
	}

	c.endpoint = srv.URL

	if _, err = c.ParseMedicine("Paracetamol 500mg at 8am"); err == nil {
		t.Error("ParseMedicine did not report the service error")
	} else if requests != 1 {
		t.Errorf("Service was called %d times (expected 1)", requests)
	}
} // func TestParseClientError(t *testing.T)
