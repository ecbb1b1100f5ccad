package domain

import "errors"

var (
	// ErrAlreadyLoading means a page fetch is already outstanding. It is a guard
	// condition, not a fault: the redundant request is dropped.
	ErrAlreadyLoading = errors.New("page load already in progress")

	// ErrFetchFailed wraps any failure returned by a page fetcher
	ErrFetchFailed = errors.New("failed to fetch page")

	ErrInvalidKind  = errors.New("invalid preview item kind")
	ErrItemNotFound = errors.New("preview item not found")
)
