// /home/cmb/go/src/github.com/CatherineMariaBastin/Zaathi/extraction/extraction.go
// -*- mode: go; coding: utf-8; -*-
// Created on 29. 03. 2025 by Catherine Maria Bastin
// (c) 2025 Catherine Maria Bastin
// Time-stamp: <2025-06-21 21:44:09 cmb>

// Package extraction talks to an external text-understanding service
// to turn free-form descriptions of patients and medicines into
// structured records. The input may be in any of the supported
// languages; the service is asked to return its findings in English.
package extraction

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/CatherineMariaBastin/Zaathi/common"
	"github.com/CatherineMariaBastin/Zaathi/logdomain"
	"github.com/cenkalti/backoff"
	"github.com/pquerna/ffjson/ffjson"
)

const (
	defaultModel   = "gemini-3-flash-preview"
	apiBase        = "https://generativelanguage.googleapis.com/v1beta/models/%s:generateContent"
	requestTimeout = time.Second * 10
	maxRetries     = 3
)

// PatientInfo is the structured result of extracting a patient
// description. Fields the service could not determine are left at
// their zero values; the caller has to deal with that.
type PatientInfo struct {
	Name      string `json:"name"`
	Age       int    `json:"age"`
	Condition string `json:"condition"`
}

// MedicineInfo is the structured result of extracting a medicine
// description.
type MedicineInfo struct {
	Name     string `json:"name"`
	Dosage   string `json:"dosage"`
	Schedule string `json:"schedule"`
	Stock    int    `json:"stock"`
}

var patientSchema = json.RawMessage(`{
  "type": "OBJECT",
  "properties": {
    "name": {"type": "STRING", "description": "Full name of the patient"},
    "age": {"type": "NUMBER", "description": "Age in years"},
    "condition": {"type": "STRING", "description": "Detailed medical history or current conditions mentioned"}
  },
  "required": ["name", "age", "condition"]
}`)

var medicineSchema = json.RawMessage(`{
  "type": "OBJECT",
  "properties": {
    "name": {"type": "STRING", "description": "Name of the medicine"},
    "dosage": {"type": "STRING", "description": "Dosage like 500mg or 1 tablet"},
    "schedule": {"type": "STRING", "description": "Time in HH:MM format (24hr clock)"},
    "stock": {"type": "NUMBER", "description": "Quantity of medicine available"}
  },
  "required": ["name", "dosage", "schedule", "stock"]
}`)

const patientPrompt = `You are a medical receptionist. Extract patient details from this conversational input: %q.
If some details are missing, leave them null or 0 for age.
Language might be English, Malayalam, Hindi, Tamil or Kannada. Always return names and conditions in English.`

const medicinePrompt = `Extract medicine details from this input: %q.
Convert times like "8am" to "08:00". If stock isn't mentioned, assume 30.
Translate to English if necessary.`

type part struct {
	Text string `json:"text"`
}

type content struct {
	Parts []part `json:"parts"`
}

type generationConfig struct {
	ResponseMimeType string          `json:"responseMimeType"`
	ResponseSchema   json.RawMessage `json:"responseSchema"`
}

type request struct {
	Contents         []content        `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type reply struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

// Client is a client for the extraction service.
type Client struct {
	log      *log.Logger
	client   http.Client
	apiKey   string
	model    string
	endpoint string
}

// NewClient creates a Client using the given API key.
func NewClient(apiKey string) (*Client, error) {
	if apiKey == "" {
		return nil, errors.New("No API key was given")
	}

	var (
		err error
		c   = &Client{
			apiKey: apiKey,
			model:  defaultModel,
			client: http.Client{
				Timeout: requestTimeout,
			},
		}
	)

	c.endpoint = fmt.Sprintf(apiBase, c.model)

	if c.log, err = common.GetLogger(logdomain.Extraction); err != nil {
		return nil, err
	}

	return c, nil
} // func NewClient(apiKey string) (*Client, error)

// ParsePatient extracts patient details from a free-form description.
func (c *Client) ParsePatient(text string) (*PatientInfo, error) {
	var (
		err  error
		raw  []byte
		info PatientInfo
	)

	if raw, err = c.generate(fmt.Sprintf(patientPrompt, text), patientSchema); err != nil {
		return nil, err
	} else if err = ffjson.Unmarshal(raw, &info); err != nil {
		c.log.Printf("[ERROR] Cannot de-serialize extracted patient data %q: %s\n",
			raw,
			err.Error())
		return nil, err
	}

	return &info, nil
} // func (c *Client) ParsePatient(text string) (*PatientInfo, error)

// ParseMedicine extracts medicine details from a free-form description.
func (c *Client) ParseMedicine(text string) (*MedicineInfo, error) {
	var (
		err  error
		raw  []byte
		info MedicineInfo
	)

	if raw, err = c.generate(fmt.Sprintf(medicinePrompt, text), medicineSchema); err != nil {
		return nil, err
	} else if err = ffjson.Unmarshal(raw, &info); err != nil {
		c.log.Printf("[ERROR] Cannot de-serialize extracted medicine data %q: %s\n",
			raw,
			err.Error())
		return nil, err
	}

	return &info, nil
} // func (c *Client) ParseMedicine(text string) (*MedicineInfo, error)

func (c *Client) generate(prompt string, schema json.RawMessage) ([]byte, error) {
	var (
		err  error
		body []byte
		req  = request{
			Contents: []content{
				{Parts: []part{{Text: prompt}}},
			},
			GenerationConfig: generationConfig{
				ResponseMimeType: "application/json",
				ResponseSchema:   schema,
			},
		}
	)

	if body, err = ffjson.Marshal(&req); err != nil {
		c.log.Printf("[ERROR] Cannot serialize request: %s\n",
			err.Error())
		return nil, err
	}

	defer ffjson.Pool(body)

	var (
		uri    = fmt.Sprintf("%s?key=%s", c.endpoint, c.apiKey)
		result []byte
	)

	var op = func() error {
		var (
			e    error
			hres *http.Response
			rcv  bytes.Buffer
		)

		if hres, e = c.client.Post(uri, "application/json", bytes.NewReader(body)); e != nil {
			c.log.Printf("[DEBUG] POST to extraction service failed: %s\n",
				e.Error())
			return e
		}

		defer hres.Body.Close() // nolint: errcheck

		if _, e = io.Copy(&rcv, hres.Body); e != nil {
			c.log.Printf("[DEBUG] Cannot read response body: %s\n",
				e.Error())
			return e
		} else if hres.StatusCode != http.StatusOK {
			e = fmt.Errorf("Unexpected HTTP status from extraction service: %s",
				hres.Status)
			c.log.Printf("[DEBUG] %s\n", e.Error())
			if hres.StatusCode >= 400 && hres.StatusCode < 500 {
				return backoff.Permanent(e)
			}
			return e
		}

		result = rcv.Bytes()
		return nil
	}

	if err = backoff.Retry(op, backoff.WithMaxRetries(backoff.NewExponentialBackOff(), maxRetries)); err != nil {
		c.log.Printf("[ERROR] Request to extraction service failed: %s\n",
			err.Error())
		return nil, err
	}

	var rep reply

	if err = ffjson.Unmarshal(result, &rep); err != nil {
		c.log.Printf("[ERROR] Cannot de-serialize response from extraction service: %s\n",
			err.Error())
		return nil, err
	} else if len(rep.Candidates) == 0 || len(rep.Candidates[0].Content.Parts) == 0 {
		err = errors.New("The extraction service returned no candidates")
		c.log.Printf("[ERROR] %s\n", err.Error())
		return nil, err
	}

	return []byte(rep.Candidates[0].Content.Parts[0].Text), nil
} // func (c *Client) generate(prompt string, schema json.RawMessage) ([]byte, error)
