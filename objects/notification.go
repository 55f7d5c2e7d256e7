// /home/cmb/go/src/github.com/CatherineMariaBastin/Zaathi/objects/notification.go
// -*- mode: go; coding: utf-8; -*-
// Created on 22. 02. 2025 by Catherine Maria Bastin
// (c) 2025 Catherine Maria Bastin
// Time-stamp: <2025-05-11 16:09:48 cmb>

package objects

// Notification is the common interface for items the user should be
// notified about.
type Notification interface {
	Payload() (string, string)
}

// Message is a plain Notification with no further semantics attached.
type Message struct {
	Title string
	Body  string
}

// Payload returns the Message's title and body.
func (m *Message) Payload() (string, string) {
	return m.Title, m.Body
} // func (m *Message) Payload() (string, string)
