// Package model holds the organizer domain types shared by the store, the
// services and the transport handlers.
package model

import (
	"fmt"

	"github.com/google/uuid"
)

// ServerVersion and ServerCommit are reported through GetServerInfo. Both
// are stamped at build time.
var (
	ServerVersion = "0.0.0"
	ServerCommit  = ""
)

type NodeKind int32

const (
	NodeFolder NodeKind = iota
	NodeProject
	NodeAction
)

// Node is a user-owned tree element (project, folder or action).
// Parent is nil for root nodes. Version increases by exactly one on every
// successful mutation of the row.
type Node struct {
	ID      uuid.UUID
	User    uuid.UUID
	Name    string
	Kind    NodeKind
	Descr   string
	Active  bool
	Parent  *uuid.UUID
	Version int64
}

// SameParent reports whether the node's parent equals the given one.
func (n Node) SameParent(parent *uuid.UUID) bool {
	if n.Parent == nil || parent == nil {
		return n.Parent == nil && parent == nil
	}
	return *n.Parent == *parent
}

// TreeItem is one level of the per-user node tree. The synthetic root item
// carries no node.
type TreeItem struct {
	Node     *Node
	Children []*TreeItem
}

// Date is a calendar date with a one-based month (1..12), matching the
// database representation. The wire representation uses zero-based months;
// conversion happens at the transport boundary.
type Date struct {
	Year  int
	Month int
	Mday  int
}

// String renders the ANSI form used as the day-table key, e.g. "2024-03-15".
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Mday)
}

// Valid checks the stored ranges (month 1..12, mday 1..31).
func (d Date) Valid() bool {
	return d.Year > 0 && d.Month >= 1 && d.Month <= 12 && d.Mday >= 1 && d.Mday <= 31
}

// ParseDate parses the ANSI form produced by Date.String.
func ParseDate(s string) (Date, error) {
	var d Date
	if _, err := fmt.Sscanf(s, "%4d-%2d-%2d", &d.Year, &d.Month, &d.Mday); err != nil {
		return Date{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	if !d.Valid() {
		return Date{}, fmt.Errorf("parse date %q: out of range", s)
	}
	return d, nil
}

// Day is one diary row. Empty Color/Notes/Report mean absent (stored NULL).
type Day struct {
	Date   Date
	User   uuid.UUID
	Color  string
	Notes  string
	Report string
}

// Empty reports whether the record carries no meaningful data. Such a record
// has no corresponding row in the day table.
func (d Day) Empty() bool {
	return d.Color == "" && d.Notes == "" && d.Report == ""
}

// DaySummary is the month-view projection of a day row: the data presence
// flags without the payload.
type DaySummary struct {
	Date      Date
	User      uuid.UUID
	Color     string
	HasNotes  bool
	HasReport bool
}

// DayColor is one entry of the global day-color catalog.
type DayColor struct {
	ID    uuid.UUID
	Name  string
	Color string
	Score int
}

type TenantKind int32

const (
	TenantGuest TenantKind = iota
	TenantRegular
	TenantSuper
)

type Tenant struct {
	ID         uuid.UUID
	Name       string
	Kind       TenantKind
	Descr      string
	Active     bool
	Properties map[string]string
}

type UserKind int32

const (
	UserRegular UserKind = iota
	UserSuper
)

type User struct {
	ID     uuid.UUID
	Tenant uuid.UUID
	Name   string
	Email  string
	Kind   UserKind
	Active bool
	Descr  string
}

// Identity is the pre-authenticated caller, extracted from request metadata
// by the transport interceptors.
type Identity struct {
	User   uuid.UUID
	Tenant uuid.UUID
}
