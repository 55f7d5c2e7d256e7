// /home/cmb/go/src/github.com/CatherineMariaBastin/Zaathi/i18n/i18n.go
// -*- mode: go; coding: utf-8; -*-
// Created on 01. 03. 2025 by Catherine Maria Bastin
// (c) 2025 Catherine Maria Bastin
// Time-stamp: <2025-06-21 18:40:26 cmb>

// Package i18n provides the phrases the application speaks or displays
// to its users, in the supported languages. Languages without a table
// of their own fall back to English.
package i18n

import (
	"fmt"

	"github.com/CatherineMariaBastin/Zaathi/objects/language"
)

// Strings is the set of phrases used for announcements and notifications.
// DoseDue is a format string taking the patient's name and the
// medicine's name, in that order.
type Strings struct {
	AlarmTitle string
	DoseDue    string
	MedTaken   string
	NoteSaved  string
	Added      string
	Extracted  string
	LowStock   string
	OutOfStock string
}

// DoseDueMsg renders the dose announcement for the given patient and
// medicine.
func (s *Strings) DoseDueMsg(patient, medicine string) string {
	return fmt.Sprintf("%s %s",
		s.AlarmTitle,
		fmt.Sprintf(s.DoseDue, patient, medicine))
} // func (s *Strings) DoseDueMsg(patient, medicine string) string

var tables = map[language.Language]*Strings{
	language.EN: {
		AlarmTitle: "Medicine Alarm!",
		DoseDue:    "It is time for %s to take %s",
		MedTaken:   "Dose recorded. Stock updated.",
		NoteSaved:  "Note saved successfully.",
		Added:      "Successfully added",
		Extracted:  "Information extracted!",
		LowStock:   "Low Stock Alert!",
		OutOfStock: "Out of Stock Alert!",
	},
	language.ML: {
		AlarmTitle: "മരുന്ന് സമയം!",
		DoseDue:    "%s-ന് %s നൽകേണ്ട സമയമായി",
		MedTaken:   "മരുന്ന് നൽകിയതായി രേഖപ്പെടുത്തി.",
		NoteSaved:  "കുറിപ്പ് സംരക്ഷിച്ചു.",
		Added:      "വിജയകരമായി ചേർത്തു",
		Extracted:  "വിവരങ്ങൾ ശേഖരിച്ചു!",
		LowStock:   "സ്റ്റോക്ക് കുറവാണ്!",
		OutOfStock: "സ്റ്റോക്ക് തീർന്നു!",
	},
}

// Get returns the Strings for the given Language, falling back to
// English for languages that do not have a table of their own yet.
func Get(l language.Language) *Strings {
	if s, ok := tables[l]; ok {
		return s
	}

	return tables[language.EN]
} // func Get(l language.Language) *Strings
