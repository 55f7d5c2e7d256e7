// /home/cmb/go/src/github.com/CatherineMariaBastin/Zaathi/database/pool.go
// -*- mode: go; coding: utf-8; -*-
// Created on 01. 03. 2025 by Catherine Maria Bastin
// (c) 2025 Catherine Maria Bastin
// Time-stamp: <2025-06-07 21:42:18 cmb>

package database

import (
	"log"
	"sync"

	"github.com/CatherineMariaBastin/Zaathi/common"
	"github.com/CatherineMariaBastin/Zaathi/logdomain"
)

// Pool is a pool of database connections.
type Pool struct {
	log  *log.Logger
	lock sync.Mutex
	cond *sync.Cond
	pool []*Database
}

// NewPool opens the given number of database connections and returns
// them as a Pool.
func NewPool(cnt int) (*Pool, error) {
	var (
		err  error
		pool = &Pool{
			pool: make([]*Database, 0, cnt),
		}
	)

	pool.cond = sync.NewCond(&pool.lock)

	if pool.log, err = common.GetLogger(logdomain.DBPool); err != nil {
		return nil, err
	}

	for i := 0; i < cnt; i++ {
		var db *Database

		if db, err = Open(common.DbPath); err != nil {
			pool.log.Printf("[ERROR] Cannot open database at %s: %s\n",
				common.DbPath,
				err.Error())
			pool.Close() // nolint: errcheck
			return nil, err
		}

		pool.pool = append(pool.pool, db)
	}

	return pool, nil
} // func NewPool(cnt int) (*Pool, error)

// Get returns a database connection from the Pool. If the Pool is
// empty, Get blocks until a connection is returned via Put.
func (pool *Pool) Get() *Database {
	pool.lock.Lock()
	defer pool.lock.Unlock()

	for len(pool.pool) == 0 {
		pool.cond.Wait()
	}

	var db = pool.pool[len(pool.pool)-1]
	pool.pool = pool.pool[:len(pool.pool)-1]

	return db
} // func (pool *Pool) Get() *Database

// Put returns a database connection to the Pool.
func (pool *Pool) Put(db *Database) {
	pool.lock.Lock()
	pool.pool = append(pool.pool, db)
	pool.lock.Unlock()
	pool.cond.Signal()
} // func (pool *Pool) Put(db *Database)

// Close closes all database connections currently in the Pool.
func (pool *Pool) Close() error {
	pool.lock.Lock()
	defer pool.lock.Unlock()

	var err error

	for _, db := range pool.pool {
		if e := db.Close(); e != nil {
			pool.log.Printf("[ERROR] Cannot close database connection: %s\n",
				e.Error())
			err = e
		}
	}

	pool.pool = pool.pool[:0]
	return err
} // func (pool *Pool) Close() error
