// /home/cmb/go/src/github.com/CatherineMariaBastin/Zaathi/objects/language/language.go
// -*- mode: go; coding: utf-8; -*-
// Created on 15. 02. 2025 by Catherine Maria Bastin
// (c) 2025 Catherine Maria Bastin
// Time-stamp: <2025-06-14 20:05:17 cmb>

// Package language contains symbolic constants for the languages
// the application can speak to its users in.
package language

import "fmt"

// Language identifies one of the supported languages.
type Language uint8

// EN is English, ML Malayalam, HI Hindi, TA Tamil, KN Kannada.
const (
	EN Language = iota
	ML
	HI
	TA
	KN
)

// All returns a slice of all supported languages.
func All() []Language {
	return []Language{EN, ML, HI, TA, KN}
} // func All() []Language

func (l Language) String() string {
	switch l {
	case EN:
		return "en"
	case ML:
		return "ml"
	case HI:
		return "hi"
	case TA:
		return "ta"
	case KN:
		return "kn"
	default:
		return fmt.Sprintf("InvalidLanguage(%d)", l)
	}
} // func (l Language) String() string

// Code returns the BCP-47 code of the Language, as used by speech
// engines and the extraction service.
func (l Language) Code() string {
	switch l {
	case EN:
		return "en-US"
	case ML:
		return "ml-IN"
	case HI:
		return "hi-IN"
	case TA:
		return "ta-IN"
	case KN:
		return "kn-IN"
	default:
		return "en-US"
	}
} // func (l Language) Code() string

// Label returns the Language's name in that language.
func (l Language) Label() string {
	switch l {
	case EN:
		return "English"
	case ML:
		return "മലയാളം"
	case HI:
		return "हिन्दी"
	case TA:
		return "தமிழ்"
	case KN:
		return "ಕನ್ನಡ"
	default:
		return fmt.Sprintf("InvalidLanguage(%d)", l)
	}
} // func (l Language) Label() string

// Parse returns the Language for the given string, which may be either
// a two-letter code ("en") or a BCP-47 code ("en-US").
func Parse(s string) (Language, error) {
	for _, l := range All() {
		if s == l.String() || s == l.Code() {
			return l, nil
		}
	}

	return EN, fmt.Errorf("Unknown language %q", s)
} // func Parse(s string) (Language, error)
