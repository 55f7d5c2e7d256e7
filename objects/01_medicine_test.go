// /home/cmb/go/src/github.com/CatherineMariaBastin/Zaathi/objects/01_medicine_test.go
// -*- mode: go; coding: utf-8; -*-
// Created on 02. 03. 2025 by Catherine Maria Bastin
// (c) 2025 Catherine Maria Bastin
// Time-stamp: <2025-06-14 19:22:37 cmb>

package objects

import (
	"testing"
	"time"
)

func TestMedicineDueAt(t *testing.T) {
	type testCase struct {
		schedule string
		ref      time.Time
		expect   bool
	}

	var day = time.Date(2025, 6, 14, 0, 0, 0, 0, time.Local)

	var cases = []testCase{
		{"08:00", day.Add(time.Hour * 8), true},
		{"08:00", day.Add(time.Hour*8 + time.Second*59), true},
		{"08:00", day.Add(time.Hour*7 + time.Minute*59), false},
		{"08:00", day.Add(time.Hour*8 + time.Minute), false},
		{"23:59", day.Add(time.Hour*24 - time.Second), true},
		{"00:00", day, true},
	}

	for _, c := range cases {
		var m = Medicine{Schedule: c.schedule}

		if due := m.DueAt(c.ref); due != c.expect {
			t.Errorf("DueAt(%s) for schedule %s returned %t (expected %t)",
				c.ref.Format("15:04:05"),
				c.schedule,
				due,
				c.expect)
		}
	}
} // func TestMedicineDueAt(t *testing.T)

func TestMedicineWasTaken(t *testing.T) {
	var m Medicine

	if m.WasTaken() {
		t.Error("Fresh Medicine claims a dose was already taken")
	}

	m.LastTaken = time.Now()

	if !m.WasTaken() {
		t.Error("Medicine with a last-taken stamp claims no dose was taken")
	}
} // func TestMedicineWasTaken(t *testing.T)

// The alarm key identifies one dose occurrence per day: the same
// medicine on a different day, or with a different schedule, gets a
// different key.
func TestAlarmKey(t *testing.T) {
	var (
		day1 = time.Date(2025, 6, 14, 8, 0, 0, 0, time.Local)
		day2 = time.Date(2025, 6, 15, 8, 0, 0, 0, time.Local)
	)

	var key = AlarmKey(day1, 3, 7, "08:00")

	if key != "2025-06-14-3-7-08:00" {
		t.Errorf("Unexpected alarm key: %q", key)
	}

	if k2 := AlarmKey(day2, 3, 7, "08:00"); k2 == key {
		t.Errorf("Alarm keys for different days collide: %q", k2)
	}

	if k3 := AlarmKey(day1, 3, 7, "20:00"); k3 == key {
		t.Errorf("Alarm keys for different schedules collide: %q", k3)
	}

	if k4 := AlarmKey(day1, 4, 7, "08:00"); k4 == key {
		t.Errorf("Alarm keys for different patients collide: %q", k4)
	}
} // func TestAlarmKey(t *testing.T)
