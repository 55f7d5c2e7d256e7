// /home/cmb/go/src/github.com/CatherineMariaBastin/Zaathi/main.go
// -*- mode: go; coding: utf-8; -*-
// Created on 22. 02. 2025 by Catherine Maria Bastin
// (c) 2025 Catherine Maria Bastin
// Time-stamp: <2025-06-21 23:05:42 cmb>

package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/CatherineMariaBastin/Zaathi/backend"
	"github.com/CatherineMariaBastin/Zaathi/common"
	"github.com/CatherineMariaBastin/Zaathi/objects/language"
)

func main() {
	fmt.Printf("%s %s (built %s)\n",
		common.AppName,
		common.Version,
		common.BuildStamp)

	var (
		err                              error
		daemon                           *backend.Daemon
		appDir, mode, addr, lstr, apiKey string
		lang                             language.Language
	)

	flag.StringVar(
		&appDir,
		"appdir",
		common.BaseDir,
		"The directory where application-specific files live")

	flag.StringVar(
		&mode,
		"mode",
		"backend",
		"Whether to run the *backend* or the *frontend*",
	)

	flag.StringVar(
		&addr,
		"address",
		fmt.Sprintf("localhost:%d", common.DefaultPort),
		"Address to either listen on (backend) or connect to (frontend)",
	)

	flag.StringVar(
		&lstr,
		"lang",
		"en",
		"Language for spoken announcements (en, ml, hi, ta, kn)",
	)

	flag.StringVar(
		&apiKey,
		"api-key",
		os.Getenv("GEMINI_API_KEY"),
		"API key for the extraction service (empty disables smart input)",
	)

	flag.Parse()

	if appDir != common.BaseDir {
		if err = common.SetBaseDir(appDir); err != nil {
			fmt.Fprintf(
				os.Stderr,
				"Cannot set application directory to %s: %s\n",
				appDir,
				err.Error())
			os.Exit(1)
		}
	}

	if lang, err = language.Parse(lstr); err != nil {
		fmt.Fprintf(
			os.Stderr,
			"Unknown language %q\n",
			lstr)
		os.Exit(1)
	}

	if mode == "backend" {
		if daemon, err = backend.Summon(addr, apiKey); err != nil {
			fmt.Fprintf(
				os.Stderr,
				"Failed to initialize backend: %s\n",
				err.Error())
			os.Exit(1)
		}

		daemon.SetLanguage(lang)

		var sigQ = make(chan os.Signal, 1)
		var ticker = time.NewTicker(time.Second * 2)

		signal.Notify(sigQ, syscall.SIGINT, syscall.SIGQUIT, syscall.SIGTERM)

		for daemon.IsAlive() {
			select {
			case sig := <-sigQ:
				fmt.Printf("Quitting on signal %s\n", sig)
				daemon.Banish() // nolint: errcheck
				os.Exit(0)
			case <-ticker.C:
				continue
			}
		}
	} else {
		fmt.Fprintf(
			os.Stderr,
			"Unknown mode %q",
			mode,
		)

		os.Exit(1)
	}
}
