// /home/cmb/go/src/github.com/CatherineMariaBastin/Zaathi/backend/dnssd.go
// -*- mode: go; coding: utf-8; -*-
// Created on 17. 05. 2025 by Catherine Maria Bastin
// (c) 2025 Catherine Maria Bastin
// Time-stamp: <2025-06-14 22:19:40 cmb>

package backend

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/grandcat/zeroconf"
)

const (
	srvName    = "Zaathi"
	srvService = "_http._tcp"
	srvDomain  = "local."
)

var addrPat = regexp.MustCompile(`:(\d+)$`)

func (d *Daemon) initDNSSd() error {
	var (
		err   error
		match []string
		port  int64
		srv   *zeroconf.Server
	)

	if match = addrPat.FindStringSubmatch(d.web.Addr); match == nil {
		err = fmt.Errorf("Cannot extract HTTP port from server address %q",
			d.web.Addr)
		d.log.Printf("[ERROR] %s\n", err.Error())
		return err
	}

	if port, err = strconv.ParseInt(match[1], 10, 16); err != nil {
		d.log.Printf("[ERROR] Cannot parse HTTP port from server address %q: %s\n",
			d.web.Addr,
			err.Error())
		return err
	}

	var txt = []string{"txtv=0", "lo=1", "la=2"}

	var instanceName = fmt.Sprintf("%s@%s",
		srvName,
		d.hostname)

	if srv, err = zeroconf.Register(instanceName, srvService, srvDomain, int(port), txt, nil); err != nil {
		d.log.Printf("[ERROR] Cannot register service with DNS-SD: %s\n",
			err.Error())
		return err
	}

	d.dnssd = srv
	return nil
} // func (d *Daemon) initDNSSd() error
