// Package model contains domain entities and DTOs used across layers.
// I keep it lean and focused on data shapes without behavior.
package model

import "time"

// Article is a single catalogue entry. Slug is unique across the catalogue.
type Article struct {
	ID          int64     `json:"id"`
	Slug        string    `json:"slug"`
	Title       string    `json:"title"`
	Author      string    `json:"author"`
	Tag         string    `json:"tag"`
	PublishedAt time.Time `json:"published_at"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// PageLink describes one control of a page selector. A gap link carries no page number.
type PageLink struct {
	Page    int  `json:"page,omitempty"`
	Current bool `json:"current,omitempty"`
	Gap     bool `json:"gap,omitempty"`
}

// BrowseResult is one page of the in-memory catalogue view together with the
// data a client needs to render its page selectors.
type BrowseResult struct {
	Items      []Article  `json:"items"`
	Page       int        `json:"page"`
	PerPage    int        `json:"per_page"`
	TotalPages int        `json:"total_pages"`
	TotalItems int        `json:"total_items"`
	IsFirst    bool       `json:"is_first"`
	IsLast     bool       `json:"is_last"`
	PrevPage   *int       `json:"prev_page,omitempty"`
	NextPage   *int       `json:"next_page,omitempty"`
	Pages      []PageLink `json:"pages"`
	Elided     []PageLink `json:"elided"`
}

// WindowResult is one page fetched straight from storage with OFFSET/LIMIT.
// It carries counters only; selectors are the caller's business.
type WindowResult struct {
	Items      []Article `json:"items"`
	Page       int       `json:"page"`
	PerPage    int       `json:"per_page"`
	TotalPages int       `json:"total_pages"`
	TotalItems int       `json:"total_items"`
	Offset     int       `json:"offset"`
	IsFirst    bool      `json:"is_first"`
	IsLast     bool      `json:"is_last"`
}
