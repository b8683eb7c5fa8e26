package service

import "github.com/Thasmi-03/FitFlow-Api/internal/core/ports"

const (
	defaultPageLimit = 10
	maxPageLimit     = 100
)

// normalizePage clamps pagination to sane bounds.
func normalizePage(p ports.PageRequest) ports.PageRequest {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit < 1 {
		p.Limit = defaultPageLimit
	}
	if p.Limit > maxPageLimit {
		p.Limit = maxPageLimit
	}
	return p
}

// pageMeta derives the page metadata from a scoped total.
func pageMeta(total int64, p ports.PageRequest) ports.PageMeta {
	pages := int((total + int64(p.Limit) - 1) / int64(p.Limit))
	if pages < 1 {
		pages = 1
	}
	return ports.PageMeta{Total: total, Page: p.Page, Limit: p.Limit, Pages: pages}
}
